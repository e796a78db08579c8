// Package clip rasterizes paths into alpha masks and keeps the clip mask
// stack of the raster backend.
package clip

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/laxkit/displayer"
)

// Tolerance is the curve flattening tolerance used for masks, in pixels.
const Tolerance = 0.25

// FromPath rasterizes p, in pixel coordinates, into a w by h coverage mask.
func FromPath(p *displayer.Path, rule displayer.FillRule, w, h int) *image.Alpha {
	return Rasterize(p.Flatten(Tolerance), rule, w, h)
}

// Rasterize fills polys into a w by h coverage mask. Open polylines are
// treated as closed.
//
// The coverage rasterizer accumulates signed area, which gives non-zero
// winding. Even-odd is built by combining the subpaths with xor, which is
// exact unless a single subpath crosses itself.
func Rasterize(polys []displayer.Polyline, rule displayer.FillRule, w, h int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return dst
	}
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src

	if rule != displayer.FillEvenOdd {
		n := 0
		for _, pl := range polys {
			if addPolyline(z, pl) {
				n++
			}
		}
		if n > 0 {
			z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
		}
		return dst
	}

	sub := image.NewAlpha(dst.Bounds())
	for _, pl := range polys {
		z.Reset(w, h)
		if !addPolyline(z, pl) {
			continue
		}
		clear(sub.Pix)
		z.Draw(sub, sub.Bounds(), image.Opaque, image.Point{})
		for i, a := range sub.Pix {
			d := dst.Pix[i]
			// a + d - 2ad
			dst.Pix[i] = byte(max(0, int(a)+int(d)-2*int(mul(a, d))))
		}
	}
	return dst
}

func addPolyline(z *vector.Rasterizer, pl displayer.Polyline) bool {
	if len(pl.Points) < 3 {
		return false
	}
	for _, p := range pl.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	z.MoveTo(float32(pl.Points[0].X), float32(pl.Points[0].Y))
	for _, p := range pl.Points[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	return true
}

// Intersect returns the product of two masks of the same size.
func Intersect(a, b *image.Alpha) *image.Alpha {
	out := image.NewAlpha(a.Bounds())
	for i := range out.Pix {
		out.Pix[i] = mul(a.Pix[i], b.Pix[i])
	}
	return out
}

// mul multiplies two coverages, rounding.
func mul(a, b byte) byte {
	x := uint16(a)*uint16(b) + 128
	return byte((x + x>>8) >> 8)
}

// Bounds returns the smallest rectangle holding every covered pixel of m.
func Bounds(m *image.Alpha) image.Rectangle {
	r := image.Rectangle{}
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := m.Pix[(y-b.Min.Y)*m.Stride:]
		for x := 0; x < b.Dx(); x++ {
			if row[x] != 0 {
				r = r.Union(image.Rect(b.Min.X+x, y, b.Min.X+x+1, y+1))
			}
		}
	}
	return r
}
