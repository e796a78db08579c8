package displayer

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// In the postscript ordering (a, b, c, d, tx, ty) used by NewMatrix and
// Postscript, the x axis is (A, D), the y axis is (B, E) and the origin
// is (C, F).
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// NewMatrix builds a matrix from postscript ordered coefficients, so that
// x' = a*x + c*y + tx and y' = b*x + d*y + ty.
func NewMatrix(a, b, c, d, tx, ty float64) Matrix {
	return Matrix{
		A: a, B: c, C: tx,
		D: b, E: d, F: ty,
	}
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// Axes builds the matrix whose real x axis maps to x, real y axis maps to y
// and real origin maps to origin.
func Axes(origin, x, y Point) Matrix {
	return Matrix{
		A: x.X, B: y.X, C: origin.X,
		D: x.Y, E: y.Y, F: origin.Y,
	}
}

// Postscript returns the coefficients as (a, b, c, d, tx, ty).
func (m Matrix) Postscript() [6]float64 {
	return [6]float64{m.A, m.D, m.B, m.E, m.C, m.F}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// IsRightHanded reports whether the matrix is mathematically right handed.
// For a typical screen with y pointing down, a right handed matrix appears
// left handed to the user.
func (m Matrix) IsRightHanded() bool {
	return m.Determinant() > 0
}

// IsInvertible reports whether the linear part is far enough from singular
// to be inverted reliably, relative to the size of its coefficients.
func (m Matrix) IsInvertible() bool {
	s := math.Max(math.Max(math.Abs(m.A), math.Abs(m.B)), math.Max(math.Abs(m.D), math.Abs(m.E)))
	if s == 0 {
		return false
	}
	det := m.Determinant()
	if math.IsNaN(det) || math.IsInf(det, 0) {
		return false
	}
	return math.Abs(det) > 1e-12*s*s && math.Abs(det) > 1e-300
}

// Inverse returns the inverse matrix and whether it exists.
func (m Matrix) Inverse() (Matrix, bool) {
	if !m.IsInvertible() {
		return Identity(), false
	}
	invDet := 1.0 / m.Determinant()
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	inv, _ := m.Inverse()
	return inv
}

// XAxis returns the screen image of the unit real x vector.
func (m Matrix) XAxis() Point { return Point{X: m.A, Y: m.D} }

// YAxis returns the screen image of the unit real y vector.
func (m Matrix) YAxis() Point { return Point{X: m.B, Y: m.E} }

// Origin returns the screen image of the real origin.
func (m Matrix) Origin() Point { return Point{X: m.C, Y: m.F} }

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// Near reports whether every coefficient of m is within eps of other.
func (m Matrix) Near(other Matrix, eps float64) bool {
	return math.Abs(m.A-other.A) <= eps && math.Abs(m.B-other.B) <= eps &&
		math.Abs(m.C-other.C) <= eps && math.Abs(m.D-other.D) <= eps &&
		math.Abs(m.E-other.E) <= eps && math.Abs(m.F-other.F) <= eps
}
