package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular mask.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if mask has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(mask [][]bool, conn Connectivity) (*GridGraph, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(mask), len(mask[0])
	for _, row := range mask {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]bool, w)
		copy(cells[r], mask[r])
	}
	var offsets [][2]int
	if conn == Conn8 {
		offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	} else {
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Occupied:        cells,
		Conn:            conn,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Height && col >= 0 && col < gg.Width
}

// Index maps (row,col) to a row-major index: row*Width + col.
// Complexity: O(1).
func (gg *GridGraph) Index(row, col int) int {
	return row*gg.Width + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (row, col int) {
	return idx / gg.Width, idx % gg.Width
}

// Count returns the number of occupied cells.
func (gg *GridGraph) Count() int {
	n := 0
	for _, row := range gg.Occupied {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}
