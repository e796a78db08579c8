package blend

import "math"

// separable applies the channel function fn to unpremultiplied channels
// and composites with
//
//	(1-Sa)*D + (1-Da)*S + Sa*Da*B(Cs, Cb)
func separable(sr, sg, sb, sa, dr, dg, db, da byte, fn func(cs, cb float64) float64) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}
	return mix([3]byte{sr, sg, sb}, sa, [3]byte{dr, dg, db}, da, func(cs, cb [3]float64) [3]float64 {
		return [3]float64{fn(cs[0], cb[0]), fn(cs[1], cb[1]), fn(cs[2], cb[2])}
	})
}

// mix unpremultiplies s and d, blends them with fn and composites the
// result.
func mix(s [3]byte, sa byte, d [3]byte, da byte, fn func(cs, cb [3]float64) [3]float64) (byte, byte, byte, byte) {
	fsa, fda := toFloat(sa), toFloat(da)
	var cs, cb [3]float64
	for i := 0; i < 3; i++ {
		cs[i] = math.Min(1, toFloat(s[i])/fsa)
		cb[i] = math.Min(1, toFloat(d[i])/fda)
	}
	bl := fn(cs, cb)
	var out [3]byte
	for i := 0; i < 3; i++ {
		out[i] = toByte((1-fsa)*toFloat(d[i]) + (1-fda)*toFloat(s[i]) + fsa*fda*bl[i])
	}
	return out[0], out[1], out[2], toByte(fsa + fda - fsa*fda)
}

func multiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float64) float64 { return s * d })
}

func screen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, screenChan)
}

func screenChan(s, d float64) float64 { return s + d - s*d }

func hardLightChan(s, d float64) float64 {
	if s <= .5 {
		return d * 2 * s
	}
	return screenChan(d, 2*s-1)
}

func hardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, hardLightChan)
}

// overlay is hard light with the layers swapped.
func overlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float64) float64 { return hardLightChan(d, s) })
}

func darken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, math.Min)
}

func lighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, math.Max)
}

func colorDodge(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float64) float64 {
		switch {
		case d == 0:
			return 0
		case s >= 1:
			return 1
		}
		return math.Min(1, d/(1-s))
	})
}

func colorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float64) float64 {
		switch {
		case d >= 1:
			return 1
		case s <= 0:
			return 0
		}
		return 1 - math.Min(1, (1-d)/s)
	})
}

func softLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float64) float64 {
		if s <= .5 {
			return d - (1-2*s)*d*(1-d)
		}
		var dd float64
		if d <= .25 {
			dd = ((16*d-12)*d + 4) * d
		} else {
			dd = math.Sqrt(d)
		}
		return d + (2*s-1)*(dd-d)
	})
}

func difference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float64) float64 { return math.Abs(s - d) })
}

func exclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float64) float64 { return s + d - 2*s*d })
}
