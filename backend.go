package displayer

import "image"

// TextMetrics describes the extent of a run of text in screen pixels.
// Ascent and Descent are both positive distances from the baseline.
type TextMetrics struct {
	Width   float64
	Height  float64
	Ascent  float64
	Descent float64
}

// Backend rasterizes screen space paths, text and images onto a surface.
// The Displayer does all coordinate work and hands backends screen
// coordinates only.
//
// Backends are selected by name through the backend package registry, or
// passed directly to New.
type Backend interface {
	// Name returns the backend identifier (e.g., "raster", "x11").
	Name() string

	// MakeCurrent directs drawing to target. Each backend documents the
	// target types it accepts and returns ErrUnsupportedSurface otherwise.
	MakeCurrent(target any) error

	// ResizeSurface replaces the backend's own surface with a new one of
	// the given size.
	ResizeSurface(width, height int) error

	// Size returns the surface size in pixels.
	Size() (width, height int)

	// ClearWindow fills the whole surface with bg, ignoring clip and blend
	// mode.
	ClearWindow(bg RGBA) error

	SetForeground(c RGBA)
	SetBackground(c RGBA)

	// LineAttributes sets the stroke style used by Stroke.
	LineAttributes(style LineStyle)

	// BlendMode sets the compositing operator and returns the previous one.
	// Backends that cannot render op fall back to OpOver.
	BlendMode(op CompositeOp) CompositeOp

	// Fill fills p with the foreground color.
	Fill(p *Path, rule FillRule) error

	// Stroke strokes p with the foreground color and current line style.
	Stroke(p *Path) error

	// Clip sets the clip region to p, or to its intersection with the
	// current clip when intersect is true.
	Clip(p *Path, rule FillRule, intersect bool) error

	// PushClip saves the clip region. With startFresh the clip is then
	// removed until the matching PopClip.
	PushClip(startFresh bool)
	PopClip()
	ClearClip()

	// TextExtent measures s at the given pixel size.
	TextExtent(s string, size float64) TextMetrics

	// TextOut draws s with its baseline origin at (x, y).
	TextOut(s string, x, y, size float64) error

	// ImageOut draws img with m mapping image pixel coordinates to screen
	// coordinates.
	ImageOut(img image.Image, m Matrix) error

	// Flush pushes pending drawing to the target.
	Flush() error

	// Close releases backend resources.
	Close() error
}

// FontSetter is implemented by backends that can load font files.
type FontSetter interface {
	SetFont(data []byte) error
}
