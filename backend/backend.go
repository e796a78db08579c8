package backend

import "errors"

// Backend name constants.
const (
	// BackendRaster is the software rasterizer drawing into an *image.RGBA.
	BackendRaster = "raster"
	// BackendEbitengine draws onto *ebiten.Image targets.
	BackendEbitengine = "ebitengine"
	// BackendX11 draws into X11 drawables over the core protocol.
	BackendX11 = "x11"
	// BackendRecording records drawing commands for replay.
	BackendRecording = "recording"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")
)
