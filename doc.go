// Package displayer provides the drawing surface of the Laxkit toolkit.
//
// # Overview
//
// A Displayer pairs a View, which maps real (model) coordinates onto a
// window, with a Backend that does the pixel work. Shapes, arrows, text
// and images are described in real coordinates and transformed once, on
// the client side, into screen space paths that every backend can draw.
//
// # Quick Start
//
//	import (
//		"github.com/laxkit/displayer"
//		"github.com/laxkit/displayer/backend"
//		_ "github.com/laxkit/displayer/backend/raster"
//	)
//
//	d, err := backend.Open(backend.BackendRaster,
//		displayer.WithScreen(400, 300),
//		displayer.WithSpace(-10, 10, -10, 10))
//	if err != nil {
//		return err
//	}
//	defer d.Release()
//
//	d.SetForeground(displayer.Red)
//	d.Circle(displayer.Pt(0, 0), 3, displayer.FillOnly)
//	d.Flush()
//
// # Backends
//
// Backends register themselves with the backend package when imported:
//   - raster: software rendering into an *image.RGBA
//   - ebitengine: triangles on an *ebiten.Image
//   - x11: core protocol drawing into a window or pixmap
//   - recording: a replayable command list (package recording)
//
// # Coordinate System
//
// Screen coordinates have the origin at the top left with y increasing
// down. The real coordinate system is whatever the view transform makes
// it; WithSpace and FitBounds give the usual y up orientation. Angles are
// in radians and increase from the real x axis toward the real y axis.
//
// # Errors
//
// Drawing calls do not return errors. The first backend failure is kept
// and reported by Err, and every failure is logged through the logger set
// with SetLogger.
package displayer
