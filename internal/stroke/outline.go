package stroke

import (
	"math"

	"github.com/laxkit/displayer"
)

// Outline flattens p, applies the dash pattern of ls and returns the
// polygons covering the stroke. Widths of zero or less draw one pixel
// hairlines.
func Outline(p *displayer.Path, ls displayer.LineStyle, tolerance float64) []displayer.Polyline {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	o := outliner{style: ls, hw: ls.Width / 2, tol: tolerance}
	if o.hw <= 0 {
		o.hw = 0.5
	}
	if o.style.MiterLimit < 1 {
		o.style.MiterLimit = 1
	}
	for _, pl := range p.Flatten(tolerance) {
		for _, piece := range ls.Dash.Apply(pl) {
			o.polyline(piece)
		}
	}
	return o.out
}

type outliner struct {
	style displayer.LineStyle
	hw    float64
	tol   float64
	out   []displayer.Polyline
}

func (o *outliner) emit(pts ...displayer.Point) {
	if signedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	o.out = append(o.out, displayer.Polyline{Points: pts, Closed: true})
}

func (o *outliner) polyline(pl displayer.Polyline) {
	pts := dedupe(pl.Points, pl.Closed)
	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		o.dot(pts[0])
		return
	}

	n := len(pts) - 1
	if pl.Closed {
		n = len(pts)
	}
	for i := 0; i < n; i++ {
		o.segment(pts[i], pts[(i+1)%len(pts)])
	}

	if pl.Closed {
		for i := range pts {
			prev := pts[(i+len(pts)-1)%len(pts)]
			o.join(prev, pts[i], pts[(i+1)%len(pts)])
		}
		return
	}
	for i := 1; i < len(pts)-1; i++ {
		o.join(pts[i-1], pts[i], pts[i+1])
	}
	o.cap(pts[0], pts[0].Sub(pts[1]).Normalize())
	o.cap(pts[len(pts)-1], pts[len(pts)-1].Sub(pts[len(pts)-2]).Normalize())
}

// dedupe drops repeated points, including a closing point equal to the
// first.
func dedupe(pts []displayer.Point, closed bool) []displayer.Point {
	out := make([]displayer.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && p.Distance(out[len(out)-1]) < 1e-9 {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0].Distance(out[len(out)-1]) < 1e-9 {
		out = out[:len(out)-1]
	}
	return out
}

func (o *outliner) segment(a, b displayer.Point) {
	n := b.Sub(a).Normalize().Transpose().Mul(o.hw)
	o.emit(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// dot strokes a zero length subpath. Only round and projecting caps draw
// anything.
func (o *outliner) dot(p displayer.Point) {
	switch o.style.Cap {
	case displayer.CapRound:
		o.circle(p)
	case displayer.CapProjecting:
		h := o.hw
		o.emit(p.Add(displayer.Pt(-h, -h)), p.Add(displayer.Pt(h, -h)), p.Add(displayer.Pt(h, h)), p.Add(displayer.Pt(-h, h)))
	}
}

// cap adds the cap at end p, where d is the unit direction pointing away
// from the line.
func (o *outliner) cap(p, d displayer.Point) {
	switch o.style.Cap {
	case displayer.CapRound:
		o.circle(p)
	case displayer.CapProjecting:
		n := d.Transpose().Mul(o.hw)
		e := d.Mul(o.hw)
		o.emit(p.Add(n), p.Add(n).Add(e), p.Sub(n).Add(e), p.Sub(n))
	}
}

func (o *outliner) join(a, p, b displayer.Point) {
	d0 := p.Sub(a).Normalize()
	d1 := b.Sub(p).Normalize()
	cross := d0.Cross(d1)
	dot := d0.Dot(d1)
	if math.Abs(cross) < 1e-9 && dot > 0 {
		return
	}

	n0, n1 := d0.Transpose().Mul(o.hw), d1.Transpose().Mul(o.hw)
	if cross > 0 {
		n0, n1 = n0.Mul(-1), n1.Mul(-1)
	}

	switch o.style.Join {
	case displayer.JoinRound:
		o.circle(p)
		return
	case displayer.JoinMiter, displayer.JoinCurveMiter:
		// Ratio of miter length to line width.
		cosHalf := math.Sqrt((1 + dot) / 2)
		if cosHalf > 1e-9 && 1/cosHalf <= o.style.MiterLimit {
			tip := p.Add(n0.Add(n1).Normalize().Mul(o.hw / cosHalf))
			o.emit(p, p.Add(n0), tip, p.Add(n1))
			return
		}
		if o.style.Join == displayer.JoinCurveMiter {
			o.circle(p)
			return
		}
	}
	o.emit(p, p.Add(n0), p.Add(n1))
}

// circle adds a polygon within tolerance of the circle of the half width
// about c.
func (o *outliner) circle(c displayer.Point) {
	n := 8
	if o.hw > o.tol {
		n = int(math.Ceil(math.Pi / math.Acos(1-o.tol/o.hw)))
	}
	n = max(8, min(n, 128))
	pts := make([]displayer.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = c.Add(displayer.Pt(math.Cos(a), math.Sin(a)).Mul(o.hw))
	}
	o.emit(pts...)
}

func signedArea(pts []displayer.Point) float64 {
	s := 0.0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		s += p.Cross(q)
	}
	return s / 2
}
