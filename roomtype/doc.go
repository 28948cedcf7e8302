// Package roomtype defines the room types a level layout is assembled from.
//
// A RoomType has exactly one capability: it reports whether a path may enter
// it with one direction and leave it with another. Catalogs are plain ordered
// slices of RoomType values, shared read-only by every generation.
//
// Built-in types:
//
//   - LeftRight: the permissive room, compatible with every pair.
//   - Shape: a room described by its open sides (OpenLeft, OpenRight,
//     OpenTop, OpenBottom). Corridor, Drop, Landing, Shaft and Closed are the
//     standard shapes; Standard() returns them as an exhaustive catalog.
//   - Func: adapts any predicate into a RoomType.
//
// Validate checks a catalog against the (enter, exit) pairs a direction table
// can produce, so a generator can fail before carving instead of mid-path.
package roomtype
