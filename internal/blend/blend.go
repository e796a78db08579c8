// Package blend composites premultiplied RGBA pixels for every
// displayer.CompositeOp.
//
// Channels are premultiplied bytes. Porter-Duff operators follow
// "Compositing Digital Images" (1984); blend modes follow W3C Compositing
// and Blending Level 1.
package blend

import (
	"image/color"

	"github.com/laxkit/displayer"
)

// Func combines a source and a destination pixel. All values are
// premultiplied, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

var funcs = [...]Func{
	displayer.OpNone:          sourceOver,
	displayer.OpClear:         clearOp,
	displayer.OpSource:        source,
	displayer.OpOver:          sourceOver,
	displayer.OpIn:            sourceIn,
	displayer.OpOut:           sourceOut,
	displayer.OpAtop:          sourceAtop,
	displayer.OpDest:          destination,
	displayer.OpDestOver:      destinationOver,
	displayer.OpDestIn:        destinationIn,
	displayer.OpDestOut:       destinationOut,
	displayer.OpDestAtop:      destinationAtop,
	displayer.OpXor:           xor,
	displayer.OpAdd:           plus,
	displayer.OpSaturate:      saturate,
	displayer.OpMultiply:      multiply,
	displayer.OpScreen:        screen,
	displayer.OpOverlay:       overlay,
	displayer.OpDarken:        darken,
	displayer.OpLighten:       lighten,
	displayer.OpColorDodge:    colorDodge,
	displayer.OpColorBurn:     colorBurn,
	displayer.OpHardLight:     hardLight,
	displayer.OpSoftLight:     softLight,
	displayer.OpDifference:    difference,
	displayer.OpExclusion:     exclusion,
	displayer.OpHSLHue:        hue,
	displayer.OpHSLSaturation: saturation,
	displayer.OpHSLColor:      colour,
	displayer.OpHSLLuminosity: luminosity,
}

// For returns the function for op. Unknown ops composite Over.
func For(op displayer.CompositeOp) Func {
	if int(op) < len(funcs) && funcs[op] != nil {
		return funcs[op]
	}
	return sourceOver
}

// Bounded reports whether op leaves the destination alone where the
// source is fully transparent. Unbounded ops (In, Out, DestIn, DestAtop)
// also change pixels outside the drawn shape. Clear and Source act through
// the coverage mask as in Cairo.
func Bounded(op displayer.CompositeOp) bool {
	switch op {
	case displayer.OpIn, displayer.OpOut, displayer.OpDestIn, displayer.OpDestAtop:
		return false
	}
	return true
}

// Apply composites src onto dst with f, weighting the result by coverage
// cov. Zero coverage leaves dst unchanged.
func Apply(f Func, src, dst color.RGBA, cov byte) color.RGBA {
	if cov == 0 {
		return dst
	}
	r, g, b, a := f(src.R, src.G, src.B, src.A, dst.R, dst.G, dst.B, dst.A)
	if cov == 255 {
		return color.RGBA{r, g, b, a}
	}
	return color.RGBA{
		R: lerp(dst.R, r, cov),
		G: lerp(dst.G, g, cov),
		B: lerp(dst.B, b, cov),
		A: lerp(dst.A, a, cov),
	}
}

// lerp moves from a toward b by t/255.
func lerp(a, b, t byte) byte {
	return addClamp(mulDiv255(a, 255-t), mulDiv255(b, t))
}

// mulDiv255 multiplies two bytes and divides by 255, rounding.
func mulDiv255(a, b byte) byte {
	x := uint16(a)*uint16(b) + 128
	return byte((x + x>>8) >> 8)
}

func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

func toFloat(b byte) float64 { return float64(b) / 255 }

func toByte(f float64) byte {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return byte(f*255 + .5)
}
