package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomgrid/direction"
	"github.com/katalvlaran/roomgrid/layout"
	"github.com/katalvlaran/roomgrid/roomtype"
)

// fixture returns a fresh valid 4×4 layout whose path has at least two cells.
func fixture(t *testing.T) *layout.LevelLayout {
	t.Helper()
	g, err := layout.NewGenerator(roomtype.Standard(), layout.Coordinate{Row: 0, Col: 1}, layout.WithSeed(5))
	require.NoError(t, err)
	l, err := g.Generate()
	require.NoError(t, err)
	require.NoError(t, layout.Validate(l))
	require.GreaterOrEqual(t, len(l.MainPath), 4)
	return l
}

func TestValidate_DetectsBrokenLayouts(t *testing.T) {
	cases := []struct {
		name   string
		tamper func(l *layout.LevelLayout)
	}{
		{"EmptyCell", func(l *layout.LevelLayout) { l.Grid[3][3] = nil }},
		{"ShortRow", func(l *layout.LevelLayout) { l.Grid[1] = l.Grid[1][:2] }},
		{"WrongStart", func(l *layout.LevelLayout) { l.Start = layout.Coordinate{Row: 0, Col: 3} }},
		{"EmptyPath", func(l *layout.LevelLayout) { l.MainPath, l.Steps = nil, nil }},
		{"StepCountMismatch", func(l *layout.LevelLayout) { l.Steps = l.Steps[:len(l.Steps)-1] }},
		{"Truncated", func(l *layout.LevelLayout) {
			l.MainPath = l.MainPath[:len(l.MainPath)-1]
			l.Steps = l.Steps[:len(l.Steps)-1]
		}},
		{"BadFirstEnter", func(l *layout.LevelLayout) { l.Steps[0].Enter = direction.Down }},
		{"ExitMismatch", func(l *layout.LevelLayout) {
			if l.Steps[0].Exit == direction.Down {
				l.Steps[0].Exit = direction.Left
			} else {
				l.Steps[0].Exit = direction.Down
			}
			l.Steps[1].Enter = l.Steps[0].Exit
		}},
		{"RoomNotInCell", func(l *layout.LevelLayout) {
			at := l.MainPath[0]
			l.Grid[at.Row][at.Col] = roomtype.Closed
		}},
		{"IncompatibleRoom", func(l *layout.LevelLayout) {
			at := l.MainPath[0]
			l.Grid[at.Row][at.Col] = roomtype.Closed
			l.Steps[0].Room = roomtype.Closed
		}},
		{"Revisit", func(l *layout.LevelLayout) {
			l.MainPath[1] = l.MainPath[0]
			l.Steps[1].At = l.MainPath[0]
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := fixture(t)
			tc.tamper(l)
			assert.ErrorIs(t, layout.Validate(l), layout.ErrInvalidLayout)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.ErrorIs(t, layout.Validate(nil), layout.ErrInvalidLayout)
}

// TestValidate_HandBuilt checks a layout assembled without the generator.
//
//	Drop     Corridor
//	Landing  Drop
//
// Path: (0,0) exits Down, (1,0) exits Right, (1,1) exits Down.
func TestValidate_HandBuilt(t *testing.T) {
	l := &layout.LevelLayout{
		Size:  layout.Size{Height: 2, Width: 2},
		Start: layout.Coordinate{Row: 0, Col: 0},
		Grid: [][]roomtype.RoomType{
			{roomtype.Drop, roomtype.Corridor},
			{roomtype.Landing, roomtype.Drop},
		},
		MainPath: []layout.Coordinate{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
		Steps: []layout.Step{
			{At: layout.Coordinate{Row: 0, Col: 0}, Enter: direction.None, Exit: direction.Down, Room: roomtype.Drop},
			{At: layout.Coordinate{Row: 1, Col: 0}, Enter: direction.Down, Exit: direction.Right, Room: roomtype.Landing},
			{At: layout.Coordinate{Row: 1, Col: 1}, Enter: direction.Right, Exit: direction.Down, Room: roomtype.Drop},
		},
	}
	require.NoError(t, layout.Validate(l))
	assert.True(t, l.OnMainPath(layout.Coordinate{Row: 1, Col: 1}))
	assert.False(t, l.OnMainPath(layout.Coordinate{Row: 0, Col: 1}))
	assert.Equal(t, roomtype.Corridor, l.At(layout.Coordinate{Row: 0, Col: 1}))
	assert.Nil(t, l.At(layout.Coordinate{Row: 2, Col: 0}))

	// Landing cannot drop further.
	l.Steps[1].Exit = direction.Down
	l.MainPath = l.MainPath[:2]
	l.Steps = l.Steps[:2]
	assert.ErrorIs(t, layout.Validate(l), layout.ErrInvalidLayout)
}
