package displayer

import "math"

// ShiftScreen moves the view by a screen space delta.
func (v *View) ShiftScreen(dx, dy float64) {
	n := v.ctm
	n.C += dx
	n.F += dy
	v.SetTransform(n)
}

// ShiftReal moves the view by a real space delta: the real origin moves
// to where the real point (dx, dy) used to be drawn.
func (v *View) ShiftReal(dx, dy float64) {
	n := v.ctm
	n.C += dx*n.A + dy*n.B
	n.F += dx*n.D + dy*n.E
	v.SetTransform(n)
}

// zoomAllowed reports whether scaling both axes by m keeps their screen
// lengths within the zoom bounds.
func (v *View) zoomAllowed(m float64) bool {
	if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return false
	}
	xl := v.ctm.XAxis().Length() * m
	yl := v.ctm.YAxis().Length() * m
	if m < 1 && (xl < v.lowerBound || yl < v.lowerBound) {
		return false
	}
	if m > 1 && (xl > v.upperBound || yl > v.upperBound) {
		return false
	}
	return true
}

func scaleLinear(m Matrix, f float64) Matrix {
	m.A *= f
	m.B *= f
	m.D *= f
	m.E *= f
	return m
}

// Zoom scales the axes by m about the screen image of the real origin.
// It returns false, changing nothing, when m is not positive or the
// result would leave the zoom bounds.
func (v *View) Zoom(m float64) bool {
	if !v.zoomAllowed(m) {
		return false
	}
	return v.SetTransform(scaleLinear(v.ctm, m))
}

// ZoomAt scales the axes by m keeping the screen point s fixed.
func (v *View) ZoomAt(m float64, s Point) bool {
	if !v.zoomAllowed(m) {
		return false
	}
	p := v.ScreenToReal(s)
	n := scaleLinear(v.ctm, m)
	q := n.TransformPoint(p)
	n.C += s.X - q.X
	n.F += s.Y - q.Y
	return v.SetTransform(n)
}

// ZoomAroundReal scales the axes by m keeping the screen position of the
// real point p fixed.
func (v *View) ZoomAroundReal(m float64, p Point) bool {
	return v.ZoomAt(m, v.RealToScreen(p))
}

// pivoted returns n shifted so that real point p lands on screen point s.
func pivoted(n Matrix, p, s Point) Matrix {
	q := n.TransformPoint(p)
	n.C += s.X - q.X
	n.F += s.Y - q.Y
	return n
}

// Rotate turns the axes by angle about the screen point pivot. The angle
// is in degrees when degree mode is on.
func (v *View) Rotate(angle float64, pivot Point) bool {
	p := v.ScreenToReal(pivot)
	n := Rotate(v.radians(angle)).Multiply(v.ctm)
	return v.SetTransform(pivoted(n, p, pivot))
}

// RotateAbsolute turns the axes about the screen point pivot so that the
// real x axis points at angle on screen.
func (v *View) RotateAbsolute(angle float64, pivot Point) bool {
	cur := math.Atan2(v.ctm.D, v.ctm.A)
	p := v.ScreenToReal(pivot)
	n := Rotate(v.radians(angle) - cur).Multiply(v.ctm)
	return v.SetTransform(pivoted(n, p, pivot))
}

// NewAngle turns the axes about the screen image of the real origin.
// With dir 0 the x axis is set to point at angle, dir < 0 turns by -angle
// and dir > 0 turns by angle.
func (v *View) NewAngle(angle float64, dir int) bool {
	a := v.radians(angle)
	switch {
	case dir == 0:
		a -= math.Atan2(v.ctm.D, v.ctm.A)
	case dir < 0:
		a = -a
	}
	r := Rotate(a)
	n := r.Multiply(v.ctm)
	n.C, n.F = v.ctm.C, v.ctm.F
	return v.SetTransform(n)
}

// SetAxes sets the transform from the screen images of the real origin
// and the unit real axes. Parallel or zero axes are rejected.
func (v *View) SetAxes(origin, x, y Point) bool {
	cross := x.Cross(y)
	if math.Abs(cross) <= 1e-12*x.Length()*y.Length() {
		return false
	}
	return v.SetTransform(Axes(origin, x, y))
}

// SetAxesTip sets the transform from the screen images of the real origin
// and of the tip of the unit x axis. The y axis is the x axis turned by
// +90 degrees.
func (v *View) SetAxesTip(origin, xtip Point) bool {
	x := xtip.Sub(origin)
	return v.SetAxes(origin, x, x.Transpose())
}

// SetMagnification sets the screen length of the unit real axes, keeping
// their directions. A non-positive ys means ys = xs. A non-positive xs
// does nothing.
func (v *View) SetMagnification(xs, ys float64) bool {
	if xs <= 0 {
		return false
	}
	if ys <= 0 {
		ys = xs
	}
	x := v.ctm.XAxis().Normalize().Mul(xs)
	y := v.ctm.YAxis().Normalize().Mul(ys)
	return v.SetTransform(Axes(v.ctm.Origin(), x, y))
}

// Magnification returns the screen length of the unit real x axis, or of
// the y axis when yAxis is true.
func (v *View) Magnification(yAxis bool) float64 {
	if yAxis {
		return v.ctm.YAxis().Length()
	}
	return v.ctm.XAxis().Length()
}

// MagnitudeAlongScreenVector returns how many screen pixels one real unit
// covers along the screen direction (dx, dy). It returns 0 for the zero
// vector.
func (v *View) MagnitudeAlongScreenVector(dx, dy float64) float64 {
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0
	}
	r := v.ictm.TransformVector(Pt(dx, dy)).Length()
	if r == 0 {
		return 0
	}
	return l / r
}

// CenterOn shifts the view so the real point p is drawn at the center of
// the screen rectangle.
func (v *View) CenterOn(p Point) {
	c := v.screen.Center()
	q := v.RealToScreen(p)
	v.ShiftScreen(c.X-q.X, c.Y-q.Y)
}

// CenterReal centers the real origin on the screen.
func (v *View) CenterReal() {
	v.CenterOn(Point{})
}

// FitBounds zooms and centers so the real rectangle fills as much of the
// screen as it can while staying fully visible. It returns false, changing
// nothing, for an empty rectangle or an empty screen.
func (v *View) FitBounds(minx, maxx, miny, maxy float64) bool {
	if maxx <= minx || maxy <= miny || v.screen.Empty() {
		return false
	}
	r := Rect{MinX: minx, MaxX: maxx, MinY: miny, MaxY: maxy}
	bb := r.Transform(v.ctm)
	if bb.Width() <= 0 || bb.Height() <= 0 {
		return false
	}
	sw, sh := float64(v.screen.Width()), float64(v.screen.Height())
	f := sh / bb.Height()
	if bb.Width()/bb.Height() > sw/sh {
		f = sw / bb.Width()
	}
	n := pivoted(scaleLinear(v.ctm, f), r.Center(), v.screen.Center())
	return v.SetTransform(n)
}

// SetView fits the real area currently shown inside the screen box to
// the whole screen.
func (v *View) SetView(box Rect) bool {
	if box.Empty() {
		return false
	}
	rb := box.Transform(v.ictm)
	return v.FitBounds(rb.MinX, rb.MaxX, rb.MinY, rb.MaxY)
}
