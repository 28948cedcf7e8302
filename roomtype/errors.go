package roomtype

import "errors"

var (
	// ErrEmptyCatalog indicates a catalog with no room types.
	ErrEmptyCatalog = errors.New("roomtype: catalog is empty")
	// ErrNilRoomType indicates a nil entry in a catalog.
	ErrNilRoomType = errors.New("roomtype: nil room type in catalog")
	// ErrNoCompatibleRoom indicates no catalog entry accepts an (enter, exit) pair.
	ErrNoCompatibleRoom = errors.New("roomtype: no compatible room type")
)
