// Package direction defines the movement directions of a carved level path
// and the weighted table of exits that are legal at each grid column.
//
// What:
//
//   - Direction enumerates None, Left, Right and Down. A path only ever moves
//     sideways or downward; None marks the first cell, which is entered from above.
//   - Table maps (enter direction, column) to a multiset of legal exits.
//     Repeated entries bias the uniform pick toward sideways movement.
//
// Why:
//
//   - Boundary rules live in one immutable lookup instead of branching code:
//     no Left exit from column 0, no Right exit from the last column, and a
//     horizontal run never turns back on itself.
//
// Layout:
//
//   - Entries are stored in a flat slice indexed by enter*width + col.
//   - The two impossible combinations (arriving at the last column by moving
//     Left, arriving at column 0 by moving Right) are empty and are reported as
//     ErrUnreachable when queried.
//
// Complexity:
//
//   - NewTable: O(W·k), Memory: O(W·k) (k = side weight).
//   - LegalExits, Pick, Reachable: O(1) besides the copy in LegalExits.
//
// Errors:
//
//   - ErrBadWidth: table width < 1.
//   - ErrBadDirection: enter direction outside the enum.
//   - ErrColumnOutOfRange: column outside [0, width).
//   - ErrUnreachable: queried combination cannot occur on a carved path.
package direction
