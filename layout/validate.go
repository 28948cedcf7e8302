package layout

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/roomgrid/direction"
	"github.com/katalvlaran/roomgrid/gridgraph"
)

// Validate checks the structural properties of a finished layout:
//
//   - the grid matches Size and every cell holds a room type;
//   - MainPath is non-empty, starts at Start and agrees with Steps;
//   - the first step enters with None and each later step enters with the
//     previous exit;
//   - consecutive cells differ by exactly the recorded exit;
//   - no path cell is out of bounds or repeated, and the last step leaves
//     the bottom row with Down;
//   - each path room sits in its cell and accepts its (enter, exit) pair;
//   - the path cells form one orthogonally connected region.
//
// The first failure is returned wrapped around ErrInvalidLayout.
// Complexity: O(H·W + P) for P path cells.
func Validate(l *LevelLayout) error {
	if l == nil {
		return fmt.Errorf("%w: nil layout", ErrInvalidLayout)
	}
	if err := validateGrid(l); err != nil {
		return err
	}
	if err := validatePath(l); err != nil {
		return err
	}
	return validateConnected(l)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidLayout, fmt.Sprintf(format, args...))
}

func validateGrid(l *LevelLayout) error {
	if l.Size.Height < 1 || l.Size.Width < 1 {
		return invalid("size %dx%d", l.Size.Height, l.Size.Width)
	}
	if len(l.Grid) != l.Size.Height {
		return invalid("grid has %d rows, size says %d", len(l.Grid), l.Size.Height)
	}
	for r, row := range l.Grid {
		if len(row) != l.Size.Width {
			return invalid("row %d has %d cells, size says %d", r, len(row), l.Size.Width)
		}
		for c, rt := range row {
			if rt == nil {
				return invalid("cell (%d,%d) is empty", r, c)
			}
		}
	}
	return nil
}

func validatePath(l *LevelLayout) error {
	n := len(l.MainPath)
	if n == 0 {
		return invalid("main path is empty")
	}
	if len(l.Steps) != n {
		return invalid("%d steps for %d path cells", len(l.Steps), n)
	}
	if l.MainPath[0] != l.Start {
		return invalid("path starts at %v, start is %v", l.MainPath[0], l.Start)
	}

	seen := mapset.New[Coordinate]()
	prevExit := direction.None
	for i, at := range l.MainPath {
		s := l.Steps[i]
		if s.At != at {
			return invalid("step %d at %v, path cell is %v", i, s.At, at)
		}
		if !l.InBounds(at) {
			return invalid("path cell %d %v out of bounds", i, at)
		}
		if seen.Has(at) {
			return invalid("path revisits %v at step %d", at, i)
		}
		seen.Put(at)

		if s.Enter != prevExit {
			return invalid("step %d enters with %s after exit %s", i, s.Enter, prevExit)
		}
		if !s.Exit.IsValid() || s.Exit == direction.None {
			return invalid("step %d has exit %s", i, s.Exit)
		}
		if s.Room == nil {
			return invalid("step %d has no room", i)
		}
		if cell := l.Grid[at.Row][at.Col]; cell == nil || cell.Name() != s.Room.Name() {
			return invalid("step %d room %s is not in cell %v", i, s.Room.Name(), at)
		}
		if !s.Room.IsCompatible(s.Enter, s.Exit) {
			return invalid("room %s at %v rejects enter %s, exit %s", s.Room.Name(), at, s.Enter, s.Exit)
		}

		next := at.Move(s.Exit)
		if i+1 < n {
			if l.MainPath[i+1] != next {
				return invalid("step %d exits %s from %v but next cell is %v", i, s.Exit, at, l.MainPath[i+1])
			}
		} else if s.Exit != direction.Down || at.Row != l.Size.Height-1 {
			return invalid("path ends at %v exiting %s, not through the bottom row", at, s.Exit)
		}
		prevExit = s.Exit
	}
	return nil
}

func validateConnected(l *LevelLayout) error {
	mask := make([][]bool, l.Size.Height)
	for r := range mask {
		mask[r] = make([]bool, l.Size.Width)
	}
	for _, at := range l.MainPath {
		mask[at.Row][at.Col] = true
	}
	gg, err := gridgraph.NewGridGraph(mask, gridgraph.Conn4)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	if comps := gg.ConnectedComponents(); len(comps) != 1 {
		return invalid("main path splits into %d regions", len(comps))
	}
	return nil
}
