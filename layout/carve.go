package layout

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/roomgrid/direction"
	"github.com/katalvlaran/roomgrid/roomtype"
)

// carve walks the main path from g.start until it leaves the bottom row.
//
// Each step:
//  1. draws exit from the table entry for (enter, col);
//  2. draws a room uniformly from the catalog entries compatible with (enter, exit);
//  3. assigns it to the (still empty) current cell and records the step;
//  4. moves one cell through exit, which becomes the next enter.
//
// Draw order is exit then room, so a fixed seed fixes the whole path.
func (g *Generator) carve(l *LevelLayout, rng *rand.Rand) error {
	pos := g.start
	enter := direction.None

	for steps := 0; pos.Row < g.size.Height; steps++ {
		if steps >= g.budget {
			return fmt.Errorf("%w: %d steps from %v, last at %v", ErrStepBudgetExceeded, g.budget, g.start, pos)
		}

		exit, err := g.table.Pick(enter, pos.Col, rng)
		if err != nil {
			return fmt.Errorf("layout: carve at %v: %w", pos, err)
		}

		candidates := roomtype.Compatible(g.catalog, enter, exit)
		if len(candidates) == 0 {
			return fmt.Errorf("layout: carve at %v: %w: enter %s, exit %s",
				pos, roomtype.ErrNoCompatibleRoom, enter, exit)
		}
		room := candidates[rng.Intn(len(candidates))]

		if l.Grid[pos.Row][pos.Col] != nil {
			return fmt.Errorf("%w: %v", ErrCellOccupied, pos)
		}
		l.Grid[pos.Row][pos.Col] = room
		l.MainPath = append(l.MainPath, pos)
		l.Steps = append(l.Steps, Step{At: pos, Enter: enter, Exit: exit, Room: room})

		enter = exit
		pos = pos.Move(exit)
	}
	return nil
}
