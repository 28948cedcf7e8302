package layout

import (
	"fmt"

	"github.com/katalvlaran/roomgrid/direction"
	"github.com/katalvlaran/roomgrid/roomtype"
)

// Size is the grid dimension in cells.
type Size struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

// DefaultSize returns the 4×4 grid.
func DefaultSize() Size {
	return Size{Height: 4, Width: 4}
}

// Contains reports whether c lies inside the grid.
func (s Size) Contains(c Coordinate) bool {
	return c.Row >= 0 && c.Row < s.Height && c.Col >= 0 && c.Col < s.Width
}

// Cells returns Height×Width.
func (s Size) Cells() int {
	return s.Height * s.Width
}

// Coordinate addresses a grid cell; Row grows downward, Col grows rightward.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move returns c shifted one cell through d.
func (c Coordinate) Move(d direction.Direction) Coordinate {
	dr, dc := d.Delta()
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step records one carved main-path cell.
type Step struct {
	At    Coordinate
	Enter direction.Direction
	Exit  direction.Direction
	Room  roomtype.RoomType
}

// LevelLayout is a generated level. Grid[row][col] is nil while a cell is
// unassigned; a layout returned by Generate has no nil cells.
// MainPath lists the carved cells in walk order, and Steps[i] describes
// MainPath[i].
type LevelLayout struct {
	Size     Size
	Start    Coordinate
	Grid     [][]roomtype.RoomType
	MainPath []Coordinate
	Steps    []Step
}

// newLevelLayout allocates an empty layout for size.
func newLevelLayout(size Size, start Coordinate) *LevelLayout {
	grid := make([][]roomtype.RoomType, size.Height)
	for r := range grid {
		grid[r] = make([]roomtype.RoomType, size.Width)
	}
	return &LevelLayout{
		Size:     size,
		Start:    start,
		Grid:     grid,
		MainPath: make([]Coordinate, 0, size.Height+size.Width),
		Steps:    make([]Step, 0, size.Height+size.Width),
	}
}

// InBounds reports whether c lies inside the layout grid.
func (l *LevelLayout) InBounds(c Coordinate) bool {
	return l.Size.Contains(c)
}

// At returns the room at c, or nil when c is out of bounds or unassigned.
func (l *LevelLayout) At(c Coordinate) roomtype.RoomType {
	if !l.InBounds(c) {
		return nil
	}
	return l.Grid[c.Row][c.Col]
}

// IsPopulated reports whether every cell holds a room type.
func (l *LevelLayout) IsPopulated() bool {
	for _, row := range l.Grid {
		for _, rt := range row {
			if rt == nil {
				return false
			}
		}
	}
	return true
}

// OnMainPath reports whether c was carved.
// Complexity: O(len(MainPath)).
func (l *LevelLayout) OnMainPath(c Coordinate) bool {
	for _, p := range l.MainPath {
		if p == c {
			return true
		}
	}
	return false
}

// End returns the last main-path cell. ok is false for an empty path.
func (l *LevelLayout) End() (c Coordinate, ok bool) {
	if len(l.MainPath) == 0 {
		return Coordinate{}, false
	}
	return l.MainPath[len(l.MainPath)-1], true
}
