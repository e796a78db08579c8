package x11

import (
	"fmt"
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/laxkit/displayer"
	"github.com/laxkit/displayer/backend"
	"github.com/laxkit/displayer/internal/clip"
)

func init() {
	backend.Register(backend.BackendX11, func() displayer.Backend {
		return New()
	})
}

const (
	// tolerance is the curve flattening tolerance in pixels.
	tolerance = 0.5
	// DefaultFont is the core font opened for text.
	DefaultFont = "fixed"
	// windowTitle names windows opened by ResizeSurface.
	windowTitle = "Laxkit"
)

// Target is an X11 drawable to draw into. A zero Depth is read from the
// server.
type Target struct {
	Conn     *xgb.Conn
	Drawable xproto.Drawable
	Depth    byte
}

// Backend draws into an X11 drawable. MakeCurrent accepts a Target or a
// *Window. Without a target, ResizeSurface opens a window on $DISPLAY.
//
// A Backend is not safe for concurrent use.
type Backend struct {
	conn   *xgb.Conn
	d      xproto.Drawable
	depth  byte
	msb    bool
	maxReq int
	w, h   int
	win    *Window

	gc, gcClear xproto.Gcontext
	font        xproto.Font

	fg, bg displayer.RGBA
	line   displayer.LineStyle
	op     displayer.CompositeOp
	rule   displayer.FillRule
	clip   clip.Rects
}

var _ displayer.Backend = (*Backend)(nil)

// New returns a backend with no target.
func New() *Backend {
	return &Backend{
		fg:   displayer.Black,
		bg:   displayer.White,
		line: displayer.DefaultLineStyle(),
		op:   displayer.OpOver,
	}
}

// Name implements displayer.Backend.
func (b *Backend) Name() string { return backend.BackendX11 }

// MakeCurrent implements displayer.Backend.
func (b *Backend) MakeCurrent(target any) error {
	var t Target
	switch v := target.(type) {
	case Target:
		t = v
	case *Window:
		if v == nil {
			return displayer.ErrUnsupportedSurface
		}
		t = v.Target()
	default:
		return fmt.Errorf("%w: %T", displayer.ErrUnsupportedSurface, target)
	}
	if t.Conn == nil {
		return fmt.Errorf("%w: no connection", displayer.ErrUnsupportedSurface)
	}
	return b.attach(t)
}

// attach points the backend at t, creating graphics contexts when the
// connection changes.
func (b *Backend) attach(t Target) error {
	geom, err := xproto.GetGeometry(t.Conn, t.Drawable).Reply()
	if err != nil {
		return fmt.Errorf("x11: get geometry: %w", err)
	}
	depth := t.Depth
	if depth == 0 {
		depth = geom.Depth
	}
	if depth != 24 && depth != 32 {
		return fmt.Errorf("%w: depth %d", displayer.ErrUnsupportedSurface, depth)
	}
	if b.conn != t.Conn {
		b.release()
		if b.win != nil {
			b.win.Close()
			b.win = nil
		}
		b.conn = t.Conn
		if err := b.createGCs(t.Drawable); err != nil {
			b.conn = nil
			return err
		}
		setup := xproto.Setup(t.Conn)
		b.msb = setup.ImageByteOrder == xproto.ImageOrderMSBFirst
		b.maxReq = int(setup.MaximumRequestLength) * 4
	}
	b.d, b.depth = t.Drawable, depth
	b.w, b.h = int(geom.Width), int(geom.Height)
	b.applyClip()
	displayer.Logger().Debug("x11: drawable set", "drawable", t.Drawable, "width", b.w, "height", b.h, "depth", depth)
	return nil
}

func (b *Backend) createGCs(d xproto.Drawable) error {
	font, err := xproto.NewFontId(b.conn)
	if err != nil {
		return fmt.Errorf("x11: allocate font id: %w", err)
	}
	if err := xproto.OpenFontChecked(b.conn, font, uint16(len(DefaultFont)), DefaultFont).Check(); err != nil {
		return fmt.Errorf("x11: open font %q: %w", DefaultFont, err)
	}
	b.font = font

	fn, _ := gcFunction(b.op)
	lv := lineValues(b.line)
	if b.gc, err = xproto.NewGcontextId(b.conn); err != nil {
		return fmt.Errorf("x11: allocate gc id: %w", err)
	}
	if err := xproto.CreateGCChecked(b.conn, b.gc, d,
		xproto.GcFunction|xproto.GcForeground|xproto.GcBackground|
			xproto.GcLineWidth|xproto.GcLineStyle|xproto.GcCapStyle|xproto.GcJoinStyle|
			xproto.GcFillRule|xproto.GcFont|xproto.GcGraphicsExposures,
		[]uint32{
			fn, b.fg.Pixel(), b.bg.Pixel(),
			lv[0], lv[1], lv[2], lv[3],
			fillRule(b.rule), uint32(font), 0,
		},
	).Check(); err != nil {
		return fmt.Errorf("x11: create gc: %w", err)
	}
	b.setDashes()

	if b.gcClear, err = xproto.NewGcontextId(b.conn); err != nil {
		return fmt.Errorf("x11: allocate gc id: %w", err)
	}
	if err := xproto.CreateGCChecked(b.conn, b.gcClear, d,
		xproto.GcForeground|xproto.GcGraphicsExposures,
		[]uint32{b.bg.Pixel(), 0},
	).Check(); err != nil {
		return fmt.Errorf("x11: create gc: %w", err)
	}
	return nil
}

// release frees the server resources held on the current connection.
func (b *Backend) release() {
	if b.conn == nil {
		return
	}
	if b.gc != 0 {
		xproto.FreeGC(b.conn, b.gc)
	}
	if b.gcClear != 0 {
		xproto.FreeGC(b.conn, b.gcClear)
	}
	if b.font != 0 {
		xproto.CloseFont(b.conn, b.font)
	}
	b.gc, b.gcClear, b.font = 0, 0, 0
}

// ResizeSurface implements displayer.Backend. Without a target a window
// is opened on $DISPLAY; a window opened that way is resized. For other
// drawables the size is taken as given.
func (b *Backend) ResizeSurface(width, height int) error {
	if width <= 0 || height <= 0 || width > 0xffff || height > 0xffff {
		return fmt.Errorf("%w: %dx%d", displayer.ErrInvalidSurfaceSize, width, height)
	}
	switch {
	case b.conn == nil:
		w, err := Dial(width, height, windowTitle)
		if err != nil {
			return err
		}
		if err := b.attach(w.Target()); err != nil {
			w.Close()
			return err
		}
		b.win = w
		// The window may not be mapped at its full size yet.
		b.w, b.h = width, height
	case b.win != nil:
		b.win.Resize(width, height)
		b.w, b.h = width, height
	default:
		b.w, b.h = width, height
	}
	b.applyClip()
	return nil
}

// Size implements displayer.Backend.
func (b *Backend) Size() (int, int) { return b.w, b.h }

// Window returns the window opened by ResizeSurface, or nil.
func (b *Backend) Window() *Window { return b.win }

// ClearWindow implements displayer.Backend.
func (b *Backend) ClearWindow(bg displayer.RGBA) error {
	if b.conn == nil {
		return displayer.ErrNoSurface
	}
	xproto.ChangeGC(b.conn, b.gcClear, xproto.GcForeground, []uint32{bg.Pixel()})
	xproto.PolyFillRectangle(b.conn, b.d, b.gcClear, []xproto.Rectangle{xRect(image.Rect(0, 0, b.w, b.h))})
	return nil
}

// SetForeground implements displayer.Backend.
func (b *Backend) SetForeground(c displayer.RGBA) {
	b.fg = c
	if b.conn != nil {
		xproto.ChangeGC(b.conn, b.gc, xproto.GcForeground, []uint32{c.Pixel()})
	}
}

// SetBackground implements displayer.Backend.
func (b *Backend) SetBackground(c displayer.RGBA) {
	b.bg = c
	if b.conn != nil {
		xproto.ChangeGC(b.conn, b.gc, xproto.GcBackground, []uint32{c.Pixel()})
	}
}

// LineAttributes implements displayer.Backend.
func (b *Backend) LineAttributes(style displayer.LineStyle) {
	b.line = style
	if b.conn == nil {
		return
	}
	xproto.ChangeGC(b.conn, b.gc,
		xproto.GcLineWidth|xproto.GcLineStyle|xproto.GcCapStyle|xproto.GcJoinStyle,
		lineValues(style))
	b.setDashes()
}

func (b *Backend) setDashes() {
	off, dashes := dashList(b.line.Dash)
	if len(dashes) > 0 {
		xproto.SetDashes(b.conn, b.gc, off, uint16(len(dashes)), dashes)
	}
}

// BlendMode implements displayer.Backend.
func (b *Backend) BlendMode(op displayer.CompositeOp) displayer.CompositeOp {
	old := b.op
	fn, ok := gcFunction(op)
	if !ok {
		displayer.Logger().Debug("x11: blend mode not supported, using Over", "op", op)
	}
	b.op = op
	if b.conn != nil {
		xproto.ChangeGC(b.conn, b.gc, xproto.GcFunction, []uint32{fn})
	}
	return old
}

func fillRule(r displayer.FillRule) uint32 {
	if r == displayer.FillEvenOdd {
		return xproto.FillRuleEvenOdd
	}
	return xproto.FillRuleWinding
}

// maxPoints returns how many points fit in one poly request.
func (b *Backend) maxPoints() int {
	return (b.maxReq - 16) / 4
}

// Fill implements displayer.Backend.
func (b *Backend) Fill(p *displayer.Path, rule displayer.FillRule) error {
	if b.conn == nil {
		return displayer.ErrNoSurface
	}
	pts := fillPoints(p.Flatten(tolerance))
	if len(pts) == 0 {
		return nil
	}
	if len(pts) > b.maxPoints() {
		return fmt.Errorf("x11: polygon of %d points is too large for one request", len(pts))
	}
	if rule != b.rule {
		b.rule = rule
		xproto.ChangeGC(b.conn, b.gc, xproto.GcFillRule, []uint32{fillRule(rule)})
	}
	xproto.FillPoly(b.conn, b.d, b.gc, xproto.PolyShapeComplex, xproto.CoordModeOrigin, pts)
	return nil
}

// Stroke implements displayer.Backend. Dashes are drawn by the server.
func (b *Backend) Stroke(p *displayer.Path) error {
	if b.conn == nil {
		return displayer.ErrNoSurface
	}
	for _, pl := range p.Flatten(tolerance) {
		pts := linePoints(pl)
		if pts == nil {
			continue
		}
		for _, run := range chunkPoints(pts, b.maxPoints()) {
			xproto.PolyLine(b.conn, xproto.CoordModeOrigin, b.d, b.gc, run)
		}
	}
	return nil
}

// Clip implements displayer.Backend. The region is the bounding
// rectangle of p.
func (b *Backend) Clip(p *displayer.Path, _ displayer.FillRule, intersect bool) error {
	if b.conn == nil {
		return displayer.ErrNoSurface
	}
	b.clip.Set(clip.PixelBounds(p.Bounds()), intersect)
	b.applyClip()
	return nil
}

// PushClip implements displayer.Backend.
func (b *Backend) PushClip(startFresh bool) {
	b.clip.Push(startFresh)
	b.applyClip()
}

// PopClip implements displayer.Backend.
func (b *Backend) PopClip() {
	if !b.clip.Pop() {
		displayer.Logger().Debug("x11: unbalanced PopClip ignored")
		return
	}
	b.applyClip()
}

// ClearClip implements displayer.Backend.
func (b *Backend) ClearClip() {
	b.clip.Clear()
	b.applyClip()
}

// applyClip sends the clip region to the drawing GC.
func (b *Backend) applyClip() {
	if b.conn == nil {
		return
	}
	if !b.clip.Active() {
		xproto.ChangeGC(b.conn, b.gc, xproto.GcClipMask, []uint32{xproto.PixmapNone})
		return
	}
	var rects []xproto.Rectangle
	if r, ok := b.clip.Bounds(b.w, b.h); ok {
		rects = append(rects, xRect(r))
	}
	xproto.SetClipRectangles(b.conn, xproto.ClipOrderingUnsorted, b.gc, 0, 0, rects)
}

// TextExtent implements displayer.Backend. Without a connection the
// extent is estimated for a monospaced font of the given size.
func (b *Backend) TextExtent(s string, size float64) displayer.TextMetrics {
	text := encodeText(s)
	if b.conn == nil {
		return displayer.TextMetrics{
			Width:   0.6 * size * float64(len(text)),
			Height:  size,
			Ascent:  0.8 * size,
			Descent: 0.2 * size,
		}
	}
	r, err := xproto.QueryTextExtents(b.conn, xproto.Fontable(b.font), char2b(text), uint16(len(text))).Reply()
	if err != nil || r == nil {
		displayer.Logger().Warn("x11: query text extents failed", "err", err)
		return displayer.TextMetrics{}
	}
	return displayer.TextMetrics{
		Width:   float64(r.OverallWidth),
		Height:  float64(r.FontAscent) + float64(r.FontDescent),
		Ascent:  float64(r.FontAscent),
		Descent: float64(r.FontDescent),
	}
}

// TextOut implements displayer.Backend.
func (b *Backend) TextOut(s string, x, y, _ float64) error {
	if b.conn == nil {
		return displayer.ErrNoSurface
	}
	items := textItems(encodeText(s))
	if len(items) == 0 {
		return nil
	}
	pt := xPoint(displayer.Pt(x, y))
	xproto.PolyText8(b.conn, b.d, b.gc, pt.X, pt.Y, items)
	return nil
}

// ImageOut implements displayer.Backend. The covered pixels are read
// back, the image is composited over them on the client and the result
// is written with PutImage through the clipped GC.
func (b *Backend) ImageOut(img image.Image, m displayer.Matrix) error {
	if b.conn == nil {
		return displayer.ErrNoSurface
	}
	sr := img.Bounds()
	box := displayer.Rect{MaxX: float64(sr.Dx()), MaxY: float64(sr.Dy())}.Transform(m)
	r := clip.PixelBounds(box)
	cr, ok := b.clip.Bounds(b.w, b.h)
	if !ok {
		return nil
	}
	if r = r.Intersect(cr); r.Empty() {
		return nil
	}

	reply, err := xproto.GetImage(b.conn, xproto.ImageFormatZPixmap, b.d,
		int16(r.Min.X), int16(r.Min.Y), uint16(r.Dx()), uint16(r.Dy()), 0xffffffff).Reply()
	if err != nil {
		return fmt.Errorf("x11: get image: %w", err)
	}
	layer := decodeZPixmap(reply.Data, r, b.msb)

	s2d := f64.Aff3{
		m.A, m.B, m.C - m.A*float64(sr.Min.X) - m.B*float64(sr.Min.Y),
		m.D, m.E, m.F - m.D*float64(sr.Min.X) - m.E*float64(sr.Min.Y),
	}
	op := xdraw.Over
	if b.op == displayer.OpSource {
		op = xdraw.Src
	}
	xdraw.CatmullRom.Transform(layer, s2d, img, sr, op, nil)
	b.putImage(layer)
	return nil
}

// putImage sends img in bands that fit the maximum request length.
func (b *Backend) putImage(img *image.RGBA) {
	r := img.Rect
	rows := max(1, (b.maxReq-24)/(r.Dx()*4))
	for y := r.Min.Y; y < r.Max.Y; y += rows {
		y1 := min(y+rows, r.Max.Y)
		xproto.PutImage(b.conn, xproto.ImageFormatZPixmap, b.d, b.gc,
			uint16(r.Dx()), uint16(y1-y), int16(r.Min.X), int16(y), 0, b.depth,
			encodeZPixmap(img, y, y1, b.msb))
	}
}

// Flush implements displayer.Backend. It waits for the server to
// process all requests sent so far.
func (b *Backend) Flush() error {
	if b.conn == nil {
		return nil
	}
	if _, err := xproto.GetInputFocus(b.conn).Reply(); err != nil {
		return fmt.Errorf("x11: sync: %w", err)
	}
	return nil
}

// Close implements displayer.Backend. A window opened by ResizeSurface
// is destroyed along with its connection.
func (b *Backend) Close() error {
	b.release()
	if b.win != nil {
		b.win.Close()
		b.win = nil
	}
	b.conn, b.d = nil, 0
	b.w, b.h = 0, 0
	b.clip = clip.Rects{}
	return nil
}
