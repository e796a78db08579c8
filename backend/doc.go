// Package backend selects rendering backends for displayer by name.
//
// Backends register themselves from init() when their package is
// imported, following the database/sql driver pattern:
//
//	import (
//		"github.com/laxkit/displayer/backend"
//		_ "github.com/laxkit/displayer/backend/raster"
//	)
//
//	d, err := backend.Open("raster", displayer.WithScreen(800, 600))
//
// # Backend Selection
//
// Use Open with an empty name, or Default, to get the best available
// backend, or Get to request a specific one:
//
//	b := backend.Get("x11")
//
// # Available Backends
//
//   - "raster": software rasterizer into an *image.RGBA
//   - "ebitengine": GPU drawing onto *ebiten.Image
//   - "x11": X11 core protocol drawing into windows and pixmaps
//   - "recording": command recorder for tests and replay
//
// There is no process-wide displayer; each Open returns an independent
// Displayer with its own backend instance.
package backend
