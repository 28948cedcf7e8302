package direction

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// DefaultSideWeight is how many times each sideways exit is repeated in a
// table entry. With 2, an interior cell moves sideways four times out of five.
const DefaultSideWeight = 2

// TableOption customizes NewTable.
type TableOption func(*tableConfig)

type tableConfig struct {
	sideWeight int
}

// WithSideWeight sets how many copies of each sideways exit an entry holds.
// Down always appears once. Panics if k < 1.
func WithSideWeight(k int) TableOption {
	if k < 1 {
		panic("direction: WithSideWeight(k<1)")
	}
	return func(c *tableConfig) {
		c.sideWeight = k
	}
}

// Table is an immutable lookup from (enter direction, column) to the multiset
// of legal exits. It does not depend on the row: every row has the same
// horizontal boundaries.
type Table struct {
	width   int
	entries [][]Direction // entries[enter*width+col]
}

// NewTable builds the exit table for a grid of the given width.
//
// Column classes:
//
//	col == 0         leftmost: no Left exit
//	col == width-1   rightmost: no Right exit
//	otherwise        interior
//
// Entered with None or Down, a cell may leave toward either open side or Down.
// Entered with Left or Right, it may only continue the same way or drop, so a
// horizontal run never revisits a cell.
//
// Returns ErrBadWidth if width < 1.
// Complexity: O(W·k) time and memory.
func NewTable(width int, opts ...TableOption) (*Table, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWidth, width)
	}
	cfg := tableConfig{sideWeight: DefaultSideWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Table{
		width:   width,
		entries: make([][]Direction, count*width),
	}
	for col := 0; col < width; col++ {
		leftmost, rightmost := col == 0, col == width-1

		// Fresh start of a row (or the very first cell).
		var fresh []Direction
		if !leftmost {
			fresh = appendN(fresh, Left, cfg.sideWeight)
		}
		if !rightmost {
			fresh = appendN(fresh, Right, cfg.sideWeight)
		}
		fresh = append(fresh, Down)
		t.set(None, col, fresh)
		t.set(Down, col, fresh)

		// Moving left: arriving at the rightmost column is impossible.
		if !rightmost {
			var e []Direction
			if !leftmost {
				e = appendN(e, Left, cfg.sideWeight)
			}
			t.set(Left, col, append(e, Down))
		}

		// Moving right: arriving at column 0 is impossible.
		if !leftmost {
			var e []Direction
			if !rightmost {
				e = appendN(e, Right, cfg.sideWeight)
			}
			t.set(Right, col, append(e, Down))
		}
	}
	return t, nil
}

func appendN(dst []Direction, d Direction, n int) []Direction {
	for i := 0; i < n; i++ {
		dst = append(dst, d)
	}
	return dst
}

func (t *Table) set(enter Direction, col int, exits []Direction) {
	t.entries[int(enter)*t.width+col] = exits
}

// Width returns the number of columns the table was built for.
func (t *Table) Width() int {
	return t.width
}

func (t *Table) lookup(enter Direction, col int) ([]Direction, error) {
	if !enter.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrBadDirection, int(enter))
	}
	if col < 0 || col >= t.width {
		return nil, fmt.Errorf("%w: col %d, width %d", ErrColumnOutOfRange, col, t.width)
	}
	e := t.entries[int(enter)*t.width+col]
	if len(e) == 0 {
		return nil, fmt.Errorf("%w: enter %s at col %d", ErrUnreachable, enter, col)
	}
	return e, nil
}

// Reachable reports whether a carved path can arrive at col with the given
// enter direction.
func (t *Table) Reachable(enter Direction, col int) bool {
	_, err := t.lookup(enter, col)
	return err == nil
}

// LegalExits returns a copy of the weighted exit multiset for (enter, col).
func (t *Table) LegalExits(enter Direction, col int) ([]Direction, error) {
	e, err := t.lookup(enter, col)
	if err != nil {
		return nil, err
	}
	out := make([]Direction, len(e))
	copy(out, e)
	return out, nil
}

// Pick draws one exit uniformly from the multiset for (enter, col).
// Repeated entries make their direction proportionally more likely.
// Complexity: O(1).
func (t *Table) Pick(enter Direction, col int, rng *rand.Rand) (Direction, error) {
	e, err := t.lookup(enter, col)
	if err != nil {
		return None, err
	}
	return e[rng.Intn(len(e))], nil
}

// Pairs returns every distinct (enter, exit) pair the table can produce, in
// enter-major order. A catalog that covers these pairs can serve any path.
func (t *Table) Pairs() [][2]Direction {
	seen := mapset.New[[2]Direction]()
	var out [][2]Direction
	for _, enter := range All() {
		for col := 0; col < t.width; col++ {
			for _, exit := range t.entries[int(enter)*t.width+col] {
				p := [2]Direction{enter, exit}
				if seen.Has(p) {
					continue
				}
				seen.Put(p)
				out = append(out, p)
			}
		}
	}
	return out
}
