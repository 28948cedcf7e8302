package direction

import "fmt"

// Direction is the side through which a path leaves a cell. As an enter
// direction it is the exit of the previous cell, so Down means "entered from
// above" and Left means "entered through the right side".
type Direction int

const (
	// None marks the first path cell, treated as entered from above.
	None Direction = iota
	// Left moves one column toward 0.
	Left
	// Right moves one column toward width-1.
	Right
	// Down moves one row toward height.
	Down
)

// count is the number of enumerated directions; it sizes the table rows.
const count = int(Down) + 1

// All returns every direction in enum order.
func All() []Direction {
	return []Direction{None, Left, Right, Down}
}

// IsValid reports whether d is one of the enumerated directions.
func (d Direction) IsValid() bool {
	return d >= None && d <= Down
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Delta returns the row and column offsets applied when exiting through d.
// None does not move.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	default:
		return 0, 0
	}
}

// Parse converts a direction name back into a Direction.
func Parse(s string) (Direction, error) {
	for _, d := range All() {
		if d.String() == s {
			return d, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// MarshalText encodes d by name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrBadDirection, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
