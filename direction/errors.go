package direction

import "errors"

var (
	// ErrBadWidth indicates a table was requested for a grid narrower than one column.
	ErrBadWidth = errors.New("direction: width must be at least 1")
	// ErrBadDirection indicates a value outside None, Left, Right, Down.
	ErrBadDirection = errors.New("direction: unknown direction")
	// ErrColumnOutOfRange indicates a column outside [0, width).
	ErrColumnOutOfRange = errors.New("direction: column out of range")
	// ErrUnreachable indicates an (enter, column) combination that no carved path can reach.
	ErrUnreachable = errors.New("direction: unreachable enter/column combination")
)
