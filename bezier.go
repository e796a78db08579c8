package displayer

import "math"

// bezEllipse approximates an elliptical arc centred on p with semi-axes a
// along x and b along y by n cubic segments. Angles are in radians,
// measured in the (x, y) frame. The result is in c-v-c layout: for
// vertex i, [3i] is the control before it, [3i+1] the vertex and [3i+2]
// the control after it.
//
// A whole ellipse has n vertices with the last segment running back to
// the first. An arc has n+1 vertices running from start to end.
func bezEllipse(p Point, a, b float64, x, y Point, start, end float64, n int, whole bool) []Point {
	if n < 1 {
		n = 1
	}
	verts := n + 1
	if whole {
		verts = n
		end = start + 2*math.Pi
	}
	step := (end - start) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	pts := make([]Point, 3*verts)
	for i := 0; i < verts; i++ {
		t := start + float64(i)*step
		sin, cos := math.Sincos(t)
		v := p.Add(x.Mul(a * cos)).Add(y.Mul(b * sin))
		d := x.Mul(-a * sin).Add(y.Mul(b * cos)).Mul(k)
		pts[3*i] = v.Sub(d)
		pts[3*i+1] = v
		pts[3*i+2] = v.Add(d)
	}
	return pts
}
