package roomtype

import (
	"strings"

	"github.com/katalvlaran/roomgrid/direction"
)

// RoomType is a room variant placed in one grid cell.
// Implementations must be immutable and safe for concurrent reads.
type RoomType interface {
	// Name identifies the type in serialized layouts.
	Name() string
	// IsCompatible reports whether a path entering with enter may leave with exit.
	IsCompatible(enter, exit direction.Direction) bool
}

// Openings is a bit set of the sides of a room a path may cross.
type Openings uint8

const (
	OpenLeft Openings = 1 << iota
	OpenRight
	OpenTop
	OpenBottom
)

// Has reports whether every side in want is open.
func (o Openings) Has(want Openings) bool {
	return o&want == want
}

func (o Openings) String() string {
	if o == 0 {
		return "none"
	}
	var parts []string
	for _, s := range []struct {
		bit  Openings
		name string
	}{{OpenLeft, "left"}, {OpenRight, "right"}, {OpenTop, "top"}, {OpenBottom, "bottom"}} {
		if o&s.bit != 0 {
			parts = append(parts, s.name)
		}
	}
	return strings.Join(parts, "|")
}

// entrySide is the side crossed when arriving with enter. A cell reached by
// moving Left is entered through its right side, and so on. None needs no side.
func entrySide(enter direction.Direction) Openings {
	switch enter {
	case direction.Left:
		return OpenRight
	case direction.Right:
		return OpenLeft
	case direction.Down:
		return OpenTop
	default:
		return 0
	}
}

// exitSide is the side crossed when leaving with exit.
func exitSide(exit direction.Direction) Openings {
	switch exit {
	case direction.Left:
		return OpenLeft
	case direction.Right:
		return OpenRight
	case direction.Down:
		return OpenBottom
	default:
		return 0
	}
}

// Shape is a room defined only by its open sides.
type Shape struct {
	name     string
	openings Openings
}

// NewShape returns a Shape with the given name and open sides.
func NewShape(name string, openings Openings) Shape {
	return Shape{name: name, openings: openings}
}

// Name returns the shape name.
func (s Shape) Name() string { return s.name }

// Openings returns the open sides.
func (s Shape) Openings() Openings { return s.openings }

// IsCompatible requires the entry side and the exit side to be open.
func (s Shape) IsCompatible(enter, exit direction.Direction) bool {
	return s.openings.Has(entrySide(enter) | exitSide(exit))
}

type leftRight struct{}

func (leftRight) Name() string { return "LeftRight" }

func (leftRight) IsCompatible(direction.Direction, direction.Direction) bool { return true }

type funcType struct {
	name string
	fn   func(enter, exit direction.Direction) bool
}

func (f funcType) Name() string { return f.name }

func (f funcType) IsCompatible(enter, exit direction.Direction) bool { return f.fn(enter, exit) }

// Func wraps a predicate as a RoomType. Panics if fn is nil.
func Func(name string, fn func(enter, exit direction.Direction) bool) RoomType {
	if fn == nil {
		panic("roomtype: Func(nil)")
	}
	return funcType{name: name, fn: fn}
}

var (
	// LeftRight accepts every (enter, exit) pair. A catalog holding it is
	// always exhaustive.
	LeftRight RoomType = leftRight{}

	// Corridor is open on both sides only.
	Corridor = NewShape("Corridor", OpenLeft|OpenRight)
	// Drop is a corridor with a hole in the floor.
	Drop = NewShape("Drop", OpenLeft|OpenRight|OpenBottom)
	// Landing is a corridor open to the room above.
	Landing = NewShape("Landing", OpenLeft|OpenRight|OpenTop)
	// Shaft is open on all four sides.
	Shaft = NewShape("Shaft", OpenLeft|OpenRight|OpenTop|OpenBottom)
	// Closed has no openings and only ever appears as filler.
	Closed = NewShape("Closed", 0)
)

// Standard returns a fresh copy of the strict catalog. Together its shapes
// accept every pair a direction table produces.
func Standard() []RoomType {
	return []RoomType{Corridor, Drop, Landing, Shaft, Closed}
}

// Permissive returns a catalog holding only LeftRight.
func Permissive() []RoomType {
	return []RoomType{LeftRight}
}
