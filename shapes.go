package displayer

import (
	"math"
	"strconv"
)

// LengthMode says how Arrow interprets its length argument.
type LengthMode int

const (
	// ScreenLength is a length in screen pixels.
	ScreenLength LengthMode = iota
	// RealLength is a length in drawing coordinates.
	RealLength
	// VectorScaled multiplies the length by the length of the vector.
	VectorScaled
)

// Arrow head bits for Arrow.
const (
	HeadLeft  = 1
	HeadRight = 2
	HeadBoth  = HeadLeft | HeadRight
)

// Line draws a segment from p1 to p2. In immediate mode it is stroked.
func (d *Displayer) Line(p1, p2 Point) {
	d.MoveTo(p1)
	d.LineTo(p2)
	d.CloseOpen()
	if d.immediate {
		d.Stroke(false)
	}
}

// Rectangle draws the rectangle with corner (x, y), width w and height h.
func (d *Displayer) Rectangle(x, y, w, h float64, mode FillMode) {
	d.MoveTo(Pt(x, y))
	d.LineTo(Pt(x+w, y))
	d.LineTo(Pt(x+w, y+h))
	d.LineTo(Pt(x, y+h))
	d.Close()
	d.finish(mode)
}

// Polygon draws lines through points, closing the outline when closed is
// true.
func (d *Displayer) Polygon(points []Point, closed bool, mode FillMode) {
	if len(points) == 0 {
		return
	}
	d.MoveTo(points[0])
	for _, p := range points[1:] {
		d.LineTo(p)
	}
	if closed {
		d.Close()
	} else {
		d.CloseOpen()
	}
	d.finish(mode)
}

// BezierPath draws a cubic bezier path from points in c-v-c layout: each
// vertex is preceded by its incoming control point and followed by its
// outgoing one. Trailing points that do not make a whole triple are
// ignored.
func (d *Displayer) BezierPath(points []Point, closed bool, mode FillMode) {
	n := len(points) / 3
	if n == 0 {
		return
	}
	d.MoveTo(points[1])
	for i := 1; i < n; i++ {
		d.CurveTo(points[3*i-1], points[3*i], points[3*i+1])
	}
	if closed {
		d.CurveTo(points[3*n-1], points[0], points[1])
		d.Close()
	} else {
		d.CloseOpen()
	}
	d.finish(mode)
}

// Circle draws a circle of radius r about center.
func (d *Displayer) Circle(center Point, r float64, mode FillMode) {
	d.Ellipse(center, r, r, 0, 0, mode)
}

// Ellipse draws an axis aligned ellipse about center with radii xr and yr.
// When start equals end the whole ellipse is drawn, otherwise the arc
// between the two angles, measured from the +x axis.
func (d *Displayer) Ellipse(center Point, xr, yr, start, end float64, mode FillMode) {
	xr, yr = math.Abs(xr), math.Abs(yr)
	if xr == 0 || yr == 0 {
		return
	}
	whole := start == end
	var f1, f2 Point
	var c, shift float64
	if xr >= yr {
		f := math.Sqrt(xr*xr - yr*yr)
		f1, f2 = center.Sub(Pt(f, 0)), center.Add(Pt(f, 0))
		c = 2 * xr
	} else {
		f := math.Sqrt(yr*yr - xr*xr)
		f1, f2 = center.Sub(Pt(0, f)), center.Add(Pt(0, f))
		c = 2 * yr
		shift = -math.Pi / 2
	}
	if !whole {
		start = d.radians(start) + shift
		end = d.radians(end) + shift
	}
	d.focusEllipse(f1, f2, c, start, end, whole, mode)
}

// EllipseFromFoci draws the ellipse of points whose distances to f1 and f2
// sum to c. Angles are measured from the f1 to f2 direction. Input with
// c shorter than the distance between the foci draws nothing.
func (d *Displayer) EllipseFromFoci(f1, f2 Point, c, start, end float64, mode FillMode) {
	if c <= 0 {
		return
	}
	whole := start == end
	if !whole {
		start, end = d.radians(start), d.radians(end)
	}
	d.focusEllipse(f1, f2, c, start, end, whole, mode)
}

func (d *Displayer) focusEllipse(f1, f2 Point, c, start, end float64, whole bool, mode FillMode) {
	p := f1.Add(f2).Div(2)
	x := f2.Sub(f1)
	a := c / 2
	bb := a*a - x.LengthSquared()/4
	if bb < 0 {
		return
	}
	b := math.Sqrt(bb)
	if x.LengthSquared() > 0 {
		x = x.Normalize()
	} else {
		x = Pt(1, 0)
	}
	y := x.Transpose()

	if whole {
		pts := bezEllipse(p, a, b, x, y, 0, 0, 4, true)
		d.MoveTo(pts[1])
		for i := 1; i < 4; i++ {
			d.CurveTo(pts[3*i-1], pts[3*i], pts[3*i+1])
		}
		d.CurveTo(pts[11], pts[0], pts[1])
		d.Close()
		d.finish(mode)
		return
	}

	pts := bezEllipse(p, a, b, x, y, start, end, 4, false)
	d.MoveTo(pts[1])
	for i := 1; i < 5; i++ {
		d.CurveTo(pts[3*i-1], pts[3*i], pts[3*i+1])
	}
	if mode != StrokeOnly {
		d.LineTo(p)
		d.Close()
	} else {
		d.CloseOpen()
	}
	d.finish(mode)
}

// Arrow draws a line along v starting at p, with optional half heads at
// the far end selected by the HeadLeft and HeadRight bits. The start is
// moved sideways by rFromP. length is interpreted per lengthMode.
func (d *Displayer) Arrow(p, v Point, rFromP, length float64, lengthMode LengthMode, heads int) {
	vv := v.LengthSquared()
	if vv == 0 {
		return
	}
	vl := math.Sqrt(vv)
	switch lengthMode {
	case ScreenLength:
		if d.realCoords {
			sl := d.RealToScreen(p.Add(v)).Sub(d.RealToScreen(p)).Length()
			if sl == 0 {
				return
			}
			length = length * vl / sl
		}
	case VectorScaled:
		length *= vl
	}

	u := v.Div(vl)
	p = p.Add(u.Transpose().Mul(rFromP))
	w := u.Mul(length)
	p2 := p.Add(w)

	d.Line(p, p2)
	if heads&HeadLeft != 0 {
		d.Line(p2, p2.Sub(w.Div(3)).Add(w.Transpose().Div(4)))
	}
	if heads&HeadRight != 0 {
		d.Line(p2, p2.Sub(w.Div(3)).Sub(w.Transpose().Div(4)))
	}
}

// Point draws a dot of the given screen pixel radius at p.
func (d *Displayer) Point(p Point, radius float64, mode FillMode) {
	s := d.toScreen(p)
	old := d.SetRealCoordinates(false)
	d.Circle(s, radius, mode)
	d.SetRealCoordinates(old)
}

// Axes draws the real x axis in translucent red and the real y axis in
// translucent green, each length real units long.
func (d *Displayer) Axes(length float64) {
	oldReal := d.SetRealCoordinates(true)
	fg := d.fg

	d.SetForeground(NewRGBA(1, 0, 0, .4))
	d.MoveTo(Point{})
	d.LineTo(Pt(length, 0))
	d.CloseOpen()
	d.Stroke(false)

	d.SetForeground(NewRGBA(0, 1, 0, .4))
	d.MoveTo(Point{})
	d.LineTo(Pt(0, length))
	d.CloseOpen()
	d.Stroke(false)

	d.SetForeground(fg)
	d.SetRealCoordinates(oldReal)
}

// RealLine draws the infinite line through the real points p1 and p2 as
// far as it crosses the screen rectangle.
func (d *Displayer) RealLine(p1, p2 Point) {
	s1, s2 := d.RealToScreen(p1), d.RealToScreen(p2)
	a, b, ok := clipLine(s1, s2.Sub(s1), d.Screen())
	if !ok {
		return
	}
	old := d.SetRealCoordinates(false)
	d.MoveTo(a)
	d.LineTo(b)
	d.CloseOpen()
	d.Stroke(false)
	d.SetRealCoordinates(old)
}

// clipLine returns where the infinite line p + t*dir enters and leaves r.
func clipLine(p, dir Point, r IntRect) (Point, Point, bool) {
	if dir.LengthSquared() == 0 || r.Empty() {
		return Point{}, Point{}, false
	}
	t0, t1 := math.Inf(-1), math.Inf(1)
	axis := func(p, d, lo, hi float64) bool {
		if d == 0 {
			return p >= lo && p <= hi
		}
		a, b := (lo-p)/d, (hi-p)/d
		if a > b {
			a, b = b, a
		}
		t0 = math.Max(t0, a)
		t1 = math.Min(t1, b)
		return true
	}
	if !axis(p.X, dir.X, float64(r.MinX), float64(r.MaxX)) ||
		!axis(p.Y, dir.Y, float64(r.MinY), float64(r.MaxY)) ||
		t0 > t1 {
		return Point{}, Point{}, false
	}
	return p.Add(dir.Mul(t0)), p.Add(dir.Mul(t1)), true
}

// Number writes n centred on p, shifted as needed to stay on screen.
func (d *Displayer) Number(p Point, n int) {
	s := strconv.Itoa(n)
	m := d.TextExtent(s)
	c := d.toScreen(p)
	scr := d.Screen()

	x := c.X - m.Width/2
	y := c.Y + (m.Ascent-m.Descent)/2
	x = math.Max(math.Min(x, float64(scr.MaxX)-m.Width), float64(scr.MinX))
	y = math.Max(math.Min(y, float64(scr.MaxY)-m.Descent), float64(scr.MinY)+m.Ascent)
	d.check("text", d.backend.TextOut(s, x, y, d.fontSize))
}
