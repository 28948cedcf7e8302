package gridgraph

// ConnectedComponents finds all contiguous regions of occupied cells,
// according to gg.Conn connectivity. Components are ordered by their first
// cell in row-major order; each holds row-major cell indices in BFS order.
//
// To convert an index back to (row,col), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			if !gg.Occupied[r][c] {
				continue
			}
			i0 := gg.Index(r, c)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ur, uc := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vr, vc := ur+d[0], uc+d[1]
					if !gg.InBounds(vr, vc) || !gg.Occupied[vr][vc] {
						continue
					}
					vi := gg.Index(vr, vc)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// IsConnected reports whether the occupied cells form exactly one component.
// An empty mask is not connected.
func (gg *GridGraph) IsConnected() bool {
	return len(gg.ConnectedComponents()) == 1
}
