package layout

import (
	"encoding/json"

	"github.com/katalvlaran/roomgrid/direction"
)

type stepJSON struct {
	At    Coordinate          `json:"at"`
	Enter direction.Direction `json:"enter"`
	Exit  direction.Direction `json:"exit"`
	Room  string              `json:"room"`
}

type layoutJSON struct {
	Size     Size         `json:"size"`
	Start    Coordinate   `json:"start"`
	Grid     [][]string   `json:"grid"`
	MainPath []Coordinate `json:"main_path"`
	Steps    []stepJSON   `json:"steps"`
}

// Names returns the grid as room-type names; unassigned cells are "".
func (l *LevelLayout) Names() [][]string {
	out := make([][]string, len(l.Grid))
	for r, row := range l.Grid {
		out[r] = make([]string, len(row))
		for c, rt := range row {
			if rt != nil {
				out[r][c] = rt.Name()
			}
		}
	}
	return out
}

// MarshalJSON encodes the layout with room types written by name.
func (l *LevelLayout) MarshalJSON() ([]byte, error) {
	steps := make([]stepJSON, len(l.Steps))
	for i, s := range l.Steps {
		steps[i] = stepJSON{At: s.At, Enter: s.Enter, Exit: s.Exit}
		if s.Room != nil {
			steps[i].Room = s.Room.Name()
		}
	}
	return json.Marshal(layoutJSON{
		Size:     l.Size,
		Start:    l.Start,
		Grid:     l.Names(),
		MainPath: l.MainPath,
		Steps:    steps,
	})
}
