// Package raster provides the software displayer backend. It draws on an
// *image.RGBA or any draw.Image with anti-aliased coverage, every
// CompositeOp and an alpha mask clip stack.
//
// Importing the package registers the backend under the name "raster":
//
//	import _ "github.com/laxkit/displayer/backend/raster"
//
//	d, err := backend.Open("raster", displayer.WithScreen(640, 480))
//	...
//	err = d.Backend().(*raster.Backend).WritePNG(f)
package raster
