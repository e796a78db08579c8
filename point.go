package displayer

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{X: 0, Y: 0}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Transpose returns the vector rotated by +90 degrees, (-y, x).
func (p Point) Transpose() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rect is an axis aligned floating point rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect returns the rectangle spanning the two corners in any order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return BoundingBox(Pt(x0, y0), Pt(x1, y1))
}

// BoundingBox returns the smallest Rect holding every point.
// It returns the zero Rect for no points.
func BoundingBox(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the middle of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Corners returns the four corners, counterclockwise from (MinX, MinY).
func (r Rect) Corners() [4]Point {
	return [4]Point{{r.MinX, r.MinY}, {r.MaxX, r.MinY}, {r.MaxX, r.MaxY}, {r.MinX, r.MaxY}}
}

// Transform returns the bounding box of the four transformed corners.
func (r Rect) Transform(m Matrix) Rect {
	c := r.Corners()
	for i := range c {
		c[i] = m.TransformPoint(c[i])
	}
	return BoundingBox(c[:]...)
}

// IntRect is an integer rectangle with inclusive bounds, used for screen
// extents and pan controller boxes.
type IntRect struct {
	MinX, MaxX, MinY, MaxY int
}

// Width returns MaxX - MinX.
func (r IntRect) Width() int { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r IntRect) Height() int { return r.MaxY - r.MinY }

// Empty reports whether either extent is not positive.
func (r IntRect) Empty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// Center returns the middle of the rectangle.
func (r IntRect) Center() Point {
	return Point{X: float64(r.MinX+r.MaxX) / 2, Y: float64(r.MinY+r.MaxY) / 2}
}

// Contains reports whether (x, y) is inside the bounds.
func (r IntRect) Contains(x, y float64) bool {
	return x >= float64(r.MinX) && x <= float64(r.MaxX) && y >= float64(r.MinY) && y <= float64(r.MaxY)
}
