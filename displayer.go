package displayer

import (
	"fmt"
	"math"
)

// FillMode selects how the closed shape helpers render.
type FillMode int

const (
	// StrokeOnly strokes the outline with the foreground color.
	StrokeOnly FillMode = iota
	// FillOnly fills with the foreground color.
	FillOnly
	// FillThenStroke fills with the background color, then strokes the
	// outline with the foreground color.
	FillThenStroke
)

// String returns the name of the fill mode.
func (m FillMode) String() string {
	switch m {
	case StrokeOnly:
		return "StrokeOnly"
	case FillOnly:
		return "FillOnly"
	case FillThenStroke:
		return "FillThenStroke"
	default:
		return fmt.Sprintf("FillMode(%d)", int(m))
	}
}

// Displayer draws paths, shapes, text and images through a Backend. The
// embedded View holds the real to screen transform; drawing coordinates
// are real coordinates unless SetRealCoordinates(false) is in effect.
//
// In immediate mode (the default) each shape helper fills or strokes
// as soon as it is built. With immediate mode off the helpers only
// append to the current path, which the caller then renders with Fill
// or Stroke.
//
// A Displayer is not safe for concurrent use.
type Displayer struct {
	*View

	backend Backend
	path    *Path

	fg, bg RGBA
	line   LineStyle
	rule   FillRule
	op     CompositeOp

	realCoords bool
	immediate  bool
	fontSize   float64

	err error
}

// New creates a Displayer drawing through b.
//
// With WithTarget the backend draws on that target and the screen is
// sized to it. Otherwise WithScreen sizes a surface owned by the backend.
func New(b Backend, opts ...Option) (*Displayer, error) {
	if b == nil {
		return nil, ErrNilBackend
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Displayer{
		View:       NewView(),
		backend:    b,
		path:       NewPath(),
		line:       DefaultLineStyle(),
		rule:       FillNonZero,
		op:         OpOver,
		realCoords: o.realCoords,
		immediate:  true,
		fontSize:   o.fontSize,
	}
	d.log = o.logger
	d.noShear = o.noShear
	d.degrees = o.degrees
	d.SetZoomBounds(o.lower, o.upper)

	switch {
	case o.target != nil:
		if err := b.MakeCurrent(o.target); err != nil {
			return nil, fmt.Errorf("displayer: make current on %s: %w", b.Name(), err)
		}
	case o.width > 0 || o.height > 0:
		if err := b.ResizeSurface(o.width, o.height); err != nil {
			return nil, fmt.Errorf("displayer: resize %s surface: %w", b.Name(), err)
		}
	}
	if o.font != nil {
		fs, ok := b.(FontSetter)
		if !ok {
			return nil, fmt.Errorf("displayer: %s backend cannot load fonts: %w", b.Name(), ErrUnsupportedSurface)
		}
		if err := fs.SetFont(o.font); err != nil {
			return nil, fmt.Errorf("displayer: load font: %w", err)
		}
	}

	old := d.SetUpdates(false)
	if o.space != nil {
		d.SetSpace(o.space.MinX, o.space.MaxX, o.space.MinY, o.space.MaxY)
	}
	w, h := b.Size()
	d.WrapWindow(w, h)
	d.SetUpdates(old)
	if o.pan != nil {
		d.UsePanController(o.pan, o.panOwner)
	}

	d.SetForeground(o.fg)
	d.SetBackground(o.bg)
	d.applyLine()
	d.backend.BlendMode(d.op)

	d.logger().Debug("displayer: created", "backend", b.Name(), "width", w, "height", h)
	return d, nil
}

// Backend returns the backend the Displayer draws through.
func (d *Displayer) Backend() Backend { return d.backend }

// Err returns the first backend error seen since the last ResetErr.
func (d *Displayer) Err() error { return d.err }

// ResetErr clears the sticky backend error.
func (d *Displayer) ResetErr() { d.err = nil }

// check records a backend failure. Drawing carries on after one.
func (d *Displayer) check(op string, err error) bool {
	if err == nil {
		return true
	}
	if d.err == nil {
		d.err = err
	}
	d.logger().Warn("displayer: backend operation failed", "backend", d.backend.Name(), "op", op, "err", err)
	return false
}

// SetRealCoordinates selects real (true) or screen (false) drawing
// coordinates and returns the old setting.
func (d *Displayer) SetRealCoordinates(on bool) (old bool) {
	old = d.realCoords
	d.realCoords = on
	return old
}

// RealCoordinates reports whether drawing coordinates are real.
func (d *Displayer) RealCoordinates() bool { return d.realCoords }

// SetImmediate turns immediate rendering of shape helpers on or off and
// returns the old setting.
func (d *Displayer) SetImmediate(on bool) (old bool) {
	old = d.immediate
	d.immediate = on
	return old
}

// Immediate reports whether shape helpers render as they are built.
func (d *Displayer) Immediate() bool { return d.immediate }

// toScreen maps a drawing coordinate to the screen.
func (d *Displayer) toScreen(p Point) Point {
	if d.realCoords {
		return d.RealToScreen(p)
	}
	return p
}

// toScreenVector maps a drawing space displacement to the screen.
func (d *Displayer) toScreenVector(v Point) Point {
	if d.realCoords {
		return d.Transform().TransformVector(v)
	}
	return v
}

// MoveTo starts a new subpath at p.
func (d *Displayer) MoveTo(p Point) {
	s := d.toScreen(p)
	d.path.MoveTo(s.X, s.Y)
}

// LineTo adds a line to p. Without a current point it acts as MoveTo.
func (d *Displayer) LineTo(p Point) {
	s := d.toScreen(p)
	d.path.LineTo(s.X, s.Y)
}

// CurveTo adds a cubic bezier with control points c1 and c2 ending at p.
func (d *Displayer) CurveTo(c1, c2, p Point) {
	a, b, s := d.toScreen(c1), d.toScreen(c2), d.toScreen(p)
	d.path.CubicTo(a.X, a.Y, b.X, b.Y, s.X, s.Y)
}

// Close closes the current subpath.
func (d *Displayer) Close() { d.path.Close() }

// CloseOpen ends the current subpath without closing it.
func (d *Displayer) CloseOpen() { d.path.CloseOpen() }

// ClearPath discards the current path.
func (d *Displayer) ClearPath() { d.path.Clear() }

// Path returns the current path in screen coordinates. The path is owned
// by the Displayer.
func (d *Displayer) Path() *Path { return d.path }

// SetFillRule sets the fill rule and returns the old one.
func (d *Displayer) SetFillRule(rule FillRule) (old FillRule) {
	old = d.rule
	d.rule = rule
	return old
}

// FillRule returns the fill rule.
func (d *Displayer) FillRule() FillRule { return d.rule }

// Fill fills the current path with the foreground color. The path is
// cleared unless preserve is true.
func (d *Displayer) Fill(preserve bool) {
	if d.path.Len() == 0 {
		return
	}
	d.check("fill", d.backend.Fill(d.path, d.rule))
	if !preserve {
		d.path.Clear()
	}
}

// Stroke strokes the current path with the foreground color and line
// style. The path is cleared unless preserve is true.
func (d *Displayer) Stroke(preserve bool) {
	if d.path.Len() == 0 {
		return
	}
	d.check("stroke", d.backend.Stroke(d.path))
	if !preserve {
		d.path.Clear()
	}
}

// finish renders the path built by a shape helper when in immediate mode.
func (d *Displayer) finish(mode FillMode) {
	if !d.immediate {
		return
	}
	switch mode {
	case FillOnly:
		d.Fill(false)
	case FillThenStroke:
		fg := d.fg
		d.SetForeground(d.bg)
		d.Fill(true)
		d.SetForeground(fg)
		d.Stroke(false)
	default:
		d.Stroke(false)
	}
}

// SetForeground sets the color used by fills and strokes and returns the
// old one.
func (d *Displayer) SetForeground(c RGBA) (old RGBA) {
	old = d.fg
	d.fg = c
	d.backend.SetForeground(c)
	return old
}

// SetForegroundRGBA is SetForeground with components in [0, 1].
func (d *Displayer) SetForegroundRGBA(r, g, b, a float64) RGBA {
	return d.SetForeground(NewRGBA(r, g, b, a))
}

// Foreground returns the foreground color.
func (d *Displayer) Foreground() RGBA { return d.fg }

// SetBackground sets the color used by ClearWindow and FillThenStroke
// fills and returns the old one.
func (d *Displayer) SetBackground(c RGBA) (old RGBA) {
	old = d.bg
	d.bg = c
	d.backend.SetBackground(c)
	return old
}

// SetBackgroundRGBA is SetBackground with components in [0, 1].
func (d *Displayer) SetBackgroundRGBA(r, g, b, a float64) RGBA {
	return d.SetBackground(NewRGBA(r, g, b, a))
}

// Background returns the background color.
func (d *Displayer) Background() RGBA { return d.bg }

// SetBlendMode sets the compositing operator and returns the old one.
// Invalid operators are ignored.
func (d *Displayer) SetBlendMode(op CompositeOp) (old CompositeOp) {
	old = d.op
	if !op.Valid() {
		return old
	}
	d.op = op
	d.backend.BlendMode(op)
	return old
}

// BlendMode returns the compositing operator.
func (d *Displayer) BlendMode() CompositeOp { return d.op }

func (d *Displayer) applyLine() {
	d.backend.LineAttributes(d.line)
}

// SetLineWidth sets the stroke width. In real coordinates w is a real
// length, converted with the current magnification at the time of the
// call; otherwise it is in pixels. Negative widths are ignored.
func (d *Displayer) SetLineWidth(w float64) {
	if w < 0 || math.IsNaN(w) {
		return
	}
	if d.realCoords {
		w *= math.Sqrt(math.Abs(d.Transform().Determinant()))
	}
	d.line.Width = w
	d.applyLine()
}

// SetLineWidthScreen sets the stroke width in pixels regardless of the
// coordinate mode.
func (d *Displayer) SetLineWidthScreen(w float64) {
	if w < 0 || math.IsNaN(w) {
		return
	}
	d.line.Width = w
	d.applyLine()
}

// LineWidth returns the stroke width in pixels.
func (d *Displayer) LineWidth() float64 { return d.line.Width }

// SetLineCap sets the cap style for open subpath ends.
func (d *Displayer) SetLineCap(c LineCap) {
	d.line.Cap = c
	d.applyLine()
}

// SetLineJoin sets the join style between segments.
func (d *Displayer) SetLineJoin(j LineJoin) {
	d.line.Join = j
	d.applyLine()
}

// SetMiterLimit sets the miter limit used by JoinMiter.
func (d *Displayer) SetMiterLimit(limit float64) {
	if limit < 1 {
		limit = 1
	}
	d.line.MiterLimit = limit
	d.applyLine()
}

// SetDash sets a dash pattern in pixels. An empty or all zero pattern
// turns dashing off.
func (d *Displayer) SetDash(pattern []float64, offset float64) {
	dash := NewDash(pattern...)
	if dash != nil {
		dash.Offset = offset
	}
	d.line.Dash = dash
	d.applyLine()
}

// LineStyle returns a copy of the stroke style.
func (d *Displayer) LineStyle() LineStyle { return d.line }

// SetFontSize sets the text size in pixels.
func (d *Displayer) SetFontSize(size float64) {
	if size > 0 {
		d.fontSize = size
	}
}

// FontSize returns the text size in pixels.
func (d *Displayer) FontSize() float64 { return d.fontSize }

// SetFont loads a TrueType or OpenType font into the backend.
func (d *Displayer) SetFont(data []byte) error {
	fs, ok := d.backend.(FontSetter)
	if !ok {
		return fmt.Errorf("displayer: %s backend cannot load fonts: %w", d.backend.Name(), ErrUnsupportedSurface)
	}
	return fs.SetFont(data)
}

// MakeCurrent points the backend at target and wraps the view around the
// target's size.
func (d *Displayer) MakeCurrent(target any) error {
	if err := d.backend.MakeCurrent(target); err != nil {
		return fmt.Errorf("displayer: make current on %s: %w", d.backend.Name(), err)
	}
	d.WrapWindow(d.backend.Size())
	return nil
}

// Resize gives the backend a new w by h surface and wraps the view
// around it.
func (d *Displayer) Resize(w, h int) error {
	if err := d.backend.ResizeSurface(w, h); err != nil {
		return fmt.Errorf("displayer: resize %s surface: %w", d.backend.Name(), err)
	}
	d.WrapWindow(w, h)
	return nil
}

// ClearWindow fills the surface with the background color.
func (d *Displayer) ClearWindow() {
	d.check("clear", d.backend.ClearWindow(d.bg))
}

// Flush pushes pending drawing to the target.
func (d *Displayer) Flush() error {
	err := d.backend.Flush()
	d.check("flush", err)
	return err
}

// Release closes the backend. The Displayer must not be used afterwards.
func (d *Displayer) Release() error {
	return d.backend.Close()
}
