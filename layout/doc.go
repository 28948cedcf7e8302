// Package layout generates fixed-size grid level layouts.
//
// A layout is a height×width grid of room types. Generation runs in two passes:
//
//  1. Carving. Starting from a configured coordinate, the generator walks a
//     main path until it drops out of the bottom row. At every cell it draws
//     an exit from the direction table, then draws a room type from the
//     catalog entries compatible with the (enter, exit) pair.
//  2. Filling. Every cell the path did not visit receives a uniformly random
//     room type from the whole catalog, with no compatibility check.
//
// Guarantees:
//
//   - Determinism: the same catalog, start, options and seed produce identical
//     layouts, including under Batch with any worker count.
//   - Fail fast: NewGenerator rejects bad sizes, out-of-bounds starts and
//     catalogs that cannot serve some (enter, exit) pair of the table.
//   - Bounded carving: a path longer than the step budget (height×width by
//     default, the longest simple path) is reported as ErrStepBudgetExceeded.
//   - No panics at runtime; only option constructors panic on meaningless input.
//
// Concurrency:
//
//   - A Generator's own RNG is not goroutine-safe; call Generate from one
//     goroutine. GenerateWith and Batch take goroutine-confined RNGs.
//
// Validate re-checks every structural property of a finished layout and is
// intended for tests and for layouts received from elsewhere.
package layout
