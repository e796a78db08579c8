package raster

import (
	"image"
	"image/color"

	"github.com/laxkit/displayer/internal/blend"
)

// paint composites the foreground through coverage mask m.
func (b *Backend) paint(m *image.Alpha) {
	src := b.fg.Premultiplied8()
	r := m.Rect
	if !blend.Bounded(b.op) {
		r = image.Rect(0, 0, b.w, b.h)
	}
	b.composite(r, func(x, y int) (color.RGBA, byte) {
		return src, m.AlphaAt(x, y).A
	})
}

// composite blends the pixels of r, in surface coordinates, with the
// current op. at returns the source colour and its coverage at a pixel.
//
// Bounded ops weight the result by coverage times clip. Unbounded ops
// scale the source by its coverage instead, so they also act where
// nothing was drawn, and are limited by the clip alone.
func (b *Backend) composite(r image.Rectangle, at func(x, y int) (color.RGBA, byte)) {
	r = r.Intersect(b.clip.Bounds())
	if r.Empty() {
		return
	}
	f := blend.For(b.op)
	bounded := blend.Bounded(b.op)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cc := b.clip.Coverage(x, y)
			if cc == 0 {
				continue
			}
			src, cov := at(x, y)
			if bounded {
				cov = mulCov(cov, cc)
			} else {
				src = scale(src, cov)
				cov = cc
			}
			if cov == 0 {
				continue
			}
			b.set(x, y, blend.Apply(f, src, b.get(x, y), cov))
		}
	}
}

func (b *Backend) get(x, y int) color.RGBA {
	if b.rgba != nil {
		return b.rgba.RGBAAt(b.org.X+x, b.org.Y+y)
	}
	return color.RGBAModel.Convert(b.dst.At(b.org.X+x, b.org.Y+y)).(color.RGBA)
}

func (b *Backend) set(x, y int, c color.RGBA) {
	if b.rgba != nil {
		b.rgba.SetRGBA(b.org.X+x, b.org.Y+y, c)
		return
	}
	b.dst.Set(b.org.X+x, b.org.Y+y, c)
}

func mulCov(a, b byte) byte {
	x := uint16(a)*uint16(b) + 128
	return byte((x + x>>8) >> 8)
}

func scale(c color.RGBA, k byte) color.RGBA {
	if k == 255 {
		return c
	}
	return color.RGBA{mulCov(c.R, k), mulCov(c.G, k), mulCov(c.B, k), mulCov(c.A, k)}
}
