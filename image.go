package displayer

import (
	"fmt"
	"image"
	"math"
)

// ImageResult reports what an ImageOut call did. Negative values are
// failures.
type ImageResult int

const (
	ImageDrawn       ImageResult = 0
	ImageOffScreen   ImageResult = 1
	ImageTooSmall    ImageResult = 2
	ImageNil         ImageResult = -1
	ImageUnavailable ImageResult = -3
)

// String returns the name of the result.
func (r ImageResult) String() string {
	switch r {
	case ImageDrawn:
		return "drawn"
	case ImageOffScreen:
		return "off screen"
	case ImageTooSmall:
		return "too small"
	case ImageNil:
		return "nil image"
	case ImageUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("ImageResult(%d)", int(r))
	}
}

// ImageOut draws img at its pixel size with its upper left corner at
// (x, y).
func (d *Displayer) ImageOut(img image.Image, x, y float64) ImageResult {
	s := d.toScreen(Pt(x, y))
	return d.imageOut(img, Translate(s.X, s.Y))
}

// ImageOutScaled draws img filling the box with corner (x, y), width w
// and height h in drawing coordinates.
func (d *Displayer) ImageOutScaled(img image.Image, x, y, w, h float64) ImageResult {
	iw, ih, ok := imageSize(img)
	if !ok {
		return ImageNil
	}
	m := Translate(x, y).Multiply(Scale(w/iw, h/ih))
	return d.imageOut(img, d.drawingToScreen(m))
}

// ImageOutRotated draws img centred on (x, y) turned and scaled so that its
// upper left corner lands at (x+ulx, y+uly). The aspect ratio is kept.
func (d *Displayer) ImageOutRotated(img image.Image, x, y, ulx, uly float64) ImageResult {
	iw, ih, ok := imageSize(img)
	if !ok {
		return ImageNil
	}
	// Complex division (ulx + i*uly) / (-iw/2 - i*ih/2) gives the
	// similarity taking the image's centre-to-corner vector to ul.
	cx, cy := -iw/2, -ih/2
	den := cx*cx + cy*cy
	re := (ulx*cx + uly*cy) / den
	im := (uly*cx - ulx*cy) / den
	m := Translate(x, y).
		Multiply(Matrix{A: re, B: -im, D: im, E: re}).
		Multiply(Translate(cx, cy))
	return d.imageOut(img, d.drawingToScreen(m))
}

// ImageOutSkewed draws img with its upper left corner at (x, y), its top
// edge along xaxis and its left edge along yaxis. The axes span the whole
// image.
func (d *Displayer) ImageOutSkewed(img image.Image, x, y float64, xaxis, yaxis Point) ImageResult {
	iw, ih, ok := imageSize(img)
	if !ok {
		return ImageNil
	}
	m := Axes(Pt(x, y), xaxis.Div(iw), yaxis.Div(ih))
	return d.imageOut(img, d.drawingToScreen(m))
}

// ImageOutMatrix draws img with m mapping image pixels to drawing
// coordinates.
func (d *Displayer) ImageOutMatrix(img image.Image, m Matrix) ImageResult {
	return d.imageOut(img, d.drawingToScreen(m))
}

func (d *Displayer) drawingToScreen(m Matrix) Matrix {
	if d.realCoords {
		return d.Transform().Multiply(m)
	}
	return m
}

func imageSize(img image.Image) (w, h float64, ok bool) {
	if img == nil {
		return 0, 0, false
	}
	b := img.Bounds()
	if b.Empty() {
		return 0, 0, false
	}
	return float64(b.Dx()), float64(b.Dy()), true
}

// imageOut checks visibility of img under the image to screen matrix m and
// hands it to the backend.
func (d *Displayer) imageOut(img image.Image, m Matrix) ImageResult {
	iw, ih, ok := imageSize(img)
	if !ok {
		return ImageNil
	}
	if !m.IsInvertible() {
		return ImageTooSmall
	}
	bb := Rect{MaxX: iw, MaxY: ih}.Transform(m)
	if bb.Width() < 1 && bb.Height() < 1 {
		return ImageTooSmall
	}
	scr := d.Screen()
	if bb.MaxX <= float64(scr.MinX) || bb.MinX >= float64(scr.MaxX) ||
		bb.MaxY <= float64(scr.MinY) || bb.MinY >= float64(scr.MaxY) {
		return ImageOffScreen
	}
	if math.IsNaN(bb.MinX) || math.IsNaN(bb.MinY) {
		return ImageUnavailable
	}
	if !d.check("image", d.backend.ImageOut(img, m)) {
		return ImageUnavailable
	}
	return ImageDrawn
}
