package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the mask has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, right, down, left.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// GridGraph is an immutable occupancy grid viewed as a graph.
// Occupied[row][col] reports whether the cell is a vertex.
type GridGraph struct {
	Width, Height   int
	Occupied        [][]bool
	Conn            Connectivity
	neighborOffsets [][2]int // {dRow, dCol}
}
