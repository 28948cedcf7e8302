package roomtype

import (
	"fmt"

	"github.com/katalvlaran/roomgrid/direction"
)

// Compatible returns the catalog entries that accept (enter, exit), in
// catalog order. Nil entries are skipped.
// Complexity: O(len(catalog)).
func Compatible(catalog []RoomType, enter, exit direction.Direction) []RoomType {
	var out []RoomType
	for _, rt := range catalog {
		if rt != nil && rt.IsCompatible(enter, exit) {
			out = append(out, rt)
		}
	}
	return out
}

// Validate checks that catalog is non-empty, holds no nil entries, and has at
// least one compatible entry for every pair in pairs (normally
// direction.Table.Pairs()). The first failure is returned, wrapped around
// ErrEmptyCatalog, ErrNilRoomType or ErrNoCompatibleRoom.
// Complexity: O(len(pairs)·len(catalog)).
func Validate(catalog []RoomType, pairs [][2]direction.Direction) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}
	for i, rt := range catalog {
		if rt == nil {
			return fmt.Errorf("%w: index %d", ErrNilRoomType, i)
		}
	}
	for _, p := range pairs {
		if len(Compatible(catalog, p[0], p[1])) == 0 {
			return fmt.Errorf("%w: enter %s, exit %s", ErrNoCompatibleRoom, p[0], p[1])
		}
	}
	return nil
}

// Names returns the names of the catalog entries in order.
func Names(catalog []RoomType) []string {
	out := make([]string, len(catalog))
	for i, rt := range catalog {
		if rt != nil {
			out[i] = rt.Name()
		}
	}
	return out
}

// Lookup returns the first entry named name.
func Lookup(catalog []RoomType, name string) (RoomType, bool) {
	for _, rt := range catalog {
		if rt != nil && rt.Name() == name {
			return rt, true
		}
	}
	return nil, false
}
