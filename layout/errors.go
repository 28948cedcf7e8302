// SPDX-License-Identifier: MIT
// Package: roomgrid/layout
//
// errors.go - sentinel errors for the layout package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (coordinates, pairs, budgets) is attached with %w at the call site.
//   • Errors from direction and roomtype pass through wrapped, so
//     errors.Is(err, roomtype.ErrNoCompatibleRoom) works on Generate results.

package layout

import "errors"

// ErrBadSize indicates a grid height or width below 1.
var ErrBadSize = errors.New("layout: height and width must be at least 1")

// ErrStartOutOfBounds indicates a starting coordinate outside the grid.
var ErrStartOutOfBounds = errors.New("layout: starting coordinate out of bounds")

// ErrOptionViolation indicates an option received a meaningless value that is
// reported as an error rather than a panic (e.g. WithStepBudget(0)).
var ErrOptionViolation = errors.New("layout: invalid option value")

// ErrCellOccupied indicates the carver tried to assign a cell twice.
var ErrCellOccupied = errors.New("layout: cell already assigned")

// ErrStepBudgetExceeded indicates carving ran longer than the step budget
// without leaving the bottom row.
var ErrStepBudgetExceeded = errors.New("layout: step budget exceeded")

// ErrInvalidLayout indicates Validate found a broken structural property.
var ErrInvalidLayout = errors.New("layout: invalid layout")
