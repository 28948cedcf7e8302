package layout

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/roomgrid/direction"
	"github.com/katalvlaran/roomgrid/roomtype"
)

// Generator carves and fills layouts of one size from one catalog and start.
// Its configuration is immutable after NewGenerator.
type Generator struct {
	catalog []roomtype.RoomType
	start   Coordinate
	size    Size
	table   *direction.Table
	budget  int
	rng     *rand.Rand
}

// NewGenerator validates the configuration and builds the direction table.
//
// Errors (in check order):
//   - ErrOptionViolation from a recorded option violation.
//   - ErrBadSize if height or width < 1.
//   - ErrStartOutOfBounds if start lies outside the grid.
//   - roomtype.ErrEmptyCatalog, ErrNilRoomType or ErrNoCompatibleRoom if the
//     catalog cannot serve every (enter, exit) pair of the table.
//
// The catalog slice is copied; its entries are shared.
// Complexity: O(W·k + P·C) for table width W, side weight k, P table pairs, C catalog entries.
func NewGenerator(catalog []roomtype.RoomType, start Coordinate, opts ...Option) (*Generator, error) {
	cfg := newGeneratorConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.size.Height < 1 || cfg.size.Width < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadSize, cfg.size.Height, cfg.size.Width)
	}
	if !cfg.size.Contains(start) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrStartOutOfBounds, start, cfg.size.Height, cfg.size.Width)
	}

	table, err := direction.NewTable(cfg.size.Width, direction.WithSideWeight(cfg.sideWeight))
	if err != nil {
		return nil, fmt.Errorf("layout: direction table: %w", err)
	}
	if err := roomtype.Validate(catalog, table.Pairs()); err != nil {
		return nil, fmt.Errorf("layout: catalog: %w", err)
	}

	budget := cfg.budget
	if budget == 0 {
		budget = cfg.size.Cells()
	}

	return &Generator{
		catalog: append([]roomtype.RoomType(nil), catalog...),
		start:   start,
		size:    cfg.size,
		table:   table,
		budget:  budget,
		rng:     cfg.rng,
	}, nil
}

// Size returns the grid dimensions.
func (g *Generator) Size() Size { return g.size }

// Start returns the starting coordinate.
func (g *Generator) Start() Coordinate { return g.start }

// Table returns the direction table used for carving.
func (g *Generator) Table() *direction.Table { return g.table }

// StepBudget returns the carving step limit.
func (g *Generator) StepBudget() int { return g.budget }

// Catalog returns a copy of the catalog.
func (g *Generator) Catalog() []roomtype.RoomType {
	return append([]roomtype.RoomType(nil), g.catalog...)
}

// Generate produces a layout using the generator's own RNG.
// Not safe for concurrent use; see GenerateWith.
func (g *Generator) Generate() (*LevelLayout, error) {
	return g.GenerateWith(g.rng)
}

// GenerateWith produces a layout drawing all randomness from rng. A nil rng
// uses the default deterministic stream. Concurrent calls are safe as long as
// each goroutine passes its own rng.
//
// Complexity: O(H·W·C) worst case (C = catalog size).
func (g *Generator) GenerateWith(rng *rand.Rand) (*LevelLayout, error) {
	if rng == nil {
		rng = rngFromSeed(0)
	}
	l := newLevelLayout(g.size, g.start)
	if err := g.carve(l, rng); err != nil {
		return nil, err
	}
	g.fill(l, rng)
	return l, nil
}
