// Package roomgrid generates grid-based level layouts: a guaranteed
// walkable main path from a starting cell to the bottom row, with every
// remaining cell filled from a room catalog.
//
// The work is split across subpackages:
//
//	direction/  - the Direction enum and the weighted per-column direction table
//	roomtype/   - the RoomType interface, opening-based shapes and built-in catalogs
//	layout/     - Generator (carve + fill), Validate, Batch and JSON encoding
//	gridgraph/  - 2D occupancy grids as graphs, used for connectivity checks
//	cmd/roomgrid - command-line front end writing layouts as JSON
//
// Quick start:
//
//	g, err := layout.NewGenerator(roomtype.Standard(), layout.Coordinate{Row: 0, Col: 1},
//		layout.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	l, err := g.Generate()
//
// Every Generator owns a seeded *rand.Rand, so equal seeds give equal
// layouts. Batch derives one stream per layout up front, which keeps the
// output independent of the worker count.
package roomgrid
