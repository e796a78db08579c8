package displayer

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a screen space vector path handed to backends.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
	open     bool  // a subpath is in progress
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.open = true
}

// LineTo draws a line to a point.
// Without a current point it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.open {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
// Without a current point the curve starts at its first control point.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.open {
		p.MoveTo(c1x, c1y)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
	p.open = false
}

// CloseOpen ends the current subpath without sealing it.
// The next drawing call starts a new subpath.
func (p *Path) CloseOpen() {
	p.open = false
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.open = false
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if a subpath is in progress.
func (p *Path) HasCurrentPoint() bool {
	return p.open
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	result.open = p.open
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	result.open = p.open
	return result
}

// Bounds returns the bounding box of all points and control points.
func (p *Path) Bounds() Rect {
	pts := make([]Point, 0, len(p.elements)*3)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case CubicTo:
			pts = append(pts, e.Control1, e.Control2, e.Point)
		}
	}
	return BoundingBox(pts...)
}

// Polyline is one flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts the path into polylines, approximating curves with line
// segments no further than tolerance from the curve.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var out []Polyline
	var cur *Polyline
	var last Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, Polyline{Points: []Point{e.Point}})
			cur = &out[len(out)-1]
			last = e.Point
		case LineTo:
			if cur == nil {
				continue
			}
			cur.Points = append(cur.Points, e.Point)
			last = e.Point
		case CubicTo:
			if cur == nil {
				continue
			}
			cur.Points = flattenCubic(cur.Points, last, e.Control1, e.Control2, e.Point, tolerance)
			last = e.Point
		case Close:
			if cur != nil {
				cur.Closed = true
				last = cur.Points[0]
				cur = nil
			}
		}
	}
	return out
}

// flattenCubic appends points along the curve, excluding p0.
func flattenCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	// Second differences bound the distance between the curve and its chords.
	dd := math.Max(p0.Sub(p1.Mul(2)).Add(p2).Length(), p1.Sub(p2.Mul(2)).Add(p3).Length())
	n := int(math.Ceil(math.Sqrt(0.75 * dd / tolerance)))
	n = max(1, min(n, 256))
	for i := 1; i <= n; i++ {
		dst = append(dst, cubicPoint(p0, p1, p2, p3, float64(i)/float64(n)))
	}
	return dst
}

// cubicPoint evaluates a cubic Bezier at t.
func cubicPoint(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
