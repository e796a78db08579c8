package displayer

import "errors"

// Common displayer errors.
var (
	// ErrNilBackend is returned by New when no backend is given.
	ErrNilBackend = errors.New("displayer: nil backend")

	// ErrUnsupportedSurface is returned by MakeCurrent when a backend
	// cannot draw on the given target.
	ErrUnsupportedSurface = errors.New("displayer: unsupported surface")

	// ErrInvalidSurfaceSize is returned when a surface would have a
	// non-positive or excessive size.
	ErrInvalidSurfaceSize = errors.New("displayer: invalid surface size")

	// ErrNoSurface is returned by drawing calls made before MakeCurrent.
	ErrNoSurface = errors.New("displayer: no current surface")
)
