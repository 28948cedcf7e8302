// Package gridgraph treats a rectangular occupancy mask as a graph, so that
// sets of level cells can be checked for connectivity.
//
// What:
//
//   - GridGraph wraps a [][]bool mask (true = occupied) indexed [row][col].
//   - Occupied cells are vertices; neighbors follow Conn4 or Conn8.
//   - ConnectedComponents groups occupied cells by BFS.
//
// Why:
//
//   - A carved main path must be one orthogonally connected region. Building
//     a mask of the path cells and asking IsConnected checks that without
//     trusting the carver's own bookkeeping.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: the mask has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
