package folder

import "errors"

// Sentinel errors returned by New and Registry operations.
var (
	// ErrNoPath is returned when a handle is requested for an empty path.
	ErrNoPath = errors.New("no folder path given")

	// ErrDuplicateOwnership is returned when the path is already owned by a live handle.
	ErrDuplicateOwnership = errors.New("folder path already owned by another handle")

	// ErrClosed is returned by operations that need an open handle.
	ErrClosed = errors.New("handle is closed")

	// ErrSymlinkRoot is reported by Delete when the handle's path is a symbolic link.
	ErrSymlinkRoot = errors.New("refusing to delete through a symbolic link")

	// ErrNoRegistry is returned when New is called without a registry.
	ErrNoRegistry = errors.New("no ownership registry given")
)
