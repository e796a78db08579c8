package displayer

import (
	"fmt"
	"math"
	"strings"
)

// Thing is a stock glyph drawn by Displayer.Thing.
type Thing int

const (
	ThingNone Thing = iota
	ThingCircle
	ThingCircleX
	ThingCirclePlus
	ThingSquare
	ThingOctagon
	ThingDiamond
	ThingToBottom
	ThingToTop
	ThingToLeft
	ThingToRight
	ThingTriangleUp
	ThingTriangleDown
	ThingTriangleLeft
	ThingTriangleRight
	ThingPlus
	ThingX
	ThingAsterix
	ThingFolder
	ThingPause
	ThingEject
	ThingDoubleTriangleUp
	ThingDoubleTriangleDown
	ThingDoubleTriangleLeft
	ThingDoubleTriangleRight
	ThingPanArrows
	ThingCheck
	ThingLocked
	ThingUnlocked
	ThingOpenEye
	ThingClosedEye
	ThingArrowLeft
	ThingArrowRight
	ThingArrowUp
	ThingArrowDown
	ThingDoubleArrowHorizontal
	ThingDoubleArrowVertical

	thingCount
)

var thingNames = [thingCount]string{
	ThingNone:                  "None",
	ThingCircle:                "Circle",
	ThingCircleX:               "Circle_X",
	ThingCirclePlus:            "Circle_Plus",
	ThingSquare:                "Square",
	ThingOctagon:               "Octagon",
	ThingDiamond:               "Diamond",
	ThingToBottom:              "To_Bottom",
	ThingToTop:                 "To_Top",
	ThingToLeft:                "To_Left",
	ThingToRight:               "To_Right",
	ThingTriangleUp:            "Triangle_Up",
	ThingTriangleDown:          "Triangle_Down",
	ThingTriangleLeft:          "Triangle_Left",
	ThingTriangleRight:         "Triangle_Right",
	ThingPlus:                  "Plus",
	ThingX:                     "X",
	ThingAsterix:               "Asterix",
	ThingFolder:                "Folder",
	ThingPause:                 "Pause",
	ThingEject:                 "Eject",
	ThingDoubleTriangleUp:      "Double_Triangle_Up",
	ThingDoubleTriangleDown:    "Double_Triangle_Down",
	ThingDoubleTriangleLeft:    "Double_Triangle_Left",
	ThingDoubleTriangleRight:   "Double_Triangle_Right",
	ThingPanArrows:             "Pan_Arrows",
	ThingCheck:                 "Check",
	ThingLocked:                "Locked",
	ThingUnlocked:              "Unlocked",
	ThingOpenEye:               "Open_Eye",
	ThingClosedEye:             "Closed_Eye",
	ThingArrowLeft:             "Arrow_Left",
	ThingArrowRight:            "Arrow_Right",
	ThingArrowUp:               "Arrow_Up",
	ThingArrowDown:             "Arrow_Down",
	ThingDoubleArrowHorizontal: "Double_Arrow_Horizontal",
	ThingDoubleArrowVertical:   "Double_Arrow_Vertical",
}

// String returns the glyph name, such as "Circle_X".
func (t Thing) String() string {
	if t >= 0 && t < thingCount {
		return thingNames[t]
	}
	return fmt.Sprintf("Thing(%d)", int(t))
}

// ParseThing looks a glyph up by name, ignoring case and underscores.
func ParseThing(name string) (Thing, bool) {
	key := normalizeThingName(name)
	for t := ThingCircle; t < thingCount; t++ {
		if normalizeThingName(thingNames[t]) == key {
			return t, true
		}
	}
	return ThingNone, false
}

func normalizeThingName(s string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
}

// Things returns every drawable glyph in enum order.
func Things() []Thing {
	out := make([]Thing, 0, thingCount-1)
	for t := ThingCircle; t < thingCount; t++ {
		out = append(out, t)
	}
	return out
}

// PointFlags mark a glyph point's role.
type PointFlags uint8

const (
	// PointControl marks a bezier control point. Unmarked points are
	// vertices.
	PointControl PointFlags = 1 << iota
	// PointClosed ends a closed subpath.
	PointClosed
	// PointOpen ends an open subpath.
	PointOpen
)

// ThingPoint is one point of a glyph outline in the unit square, with y
// pointing the same way as screen y.
type ThingPoint struct {
	Point
	Flags PointFlags
}

type thingBuilder struct {
	pts []ThingPoint
}

func (b *thingBuilder) v(x, y float64) *thingBuilder {
	b.pts = append(b.pts, ThingPoint{Point: Pt(x, y)})
	return b
}

func (b *thingBuilder) c(x, y float64) *thingBuilder {
	b.pts = append(b.pts, ThingPoint{Point: Pt(x, y), Flags: PointControl})
	return b
}

func (b *thingBuilder) end(f PointFlags) *thingBuilder {
	b.pts[len(b.pts)-1].Flags |= f
	return b
}

// poly appends vertices from x, y pairs as one subpath.
func (b *thingBuilder) poly(closed bool, xy ...float64) *thingBuilder {
	for i := 0; i+1 < len(xy); i += 2 {
		b.v(xy[i], xy[i+1])
	}
	if closed {
		return b.end(PointClosed)
	}
	return b.end(PointOpen)
}

func (b *thingBuilder) circle() *thingBuilder {
	pts := bezEllipse(Pt(.5, .5), .5, .5, Pt(1, 0), Pt(0, 1), 0, 0, 4, true)
	for i, p := range pts {
		if i%3 == 1 {
			b.v(p.X, p.Y)
		} else {
			b.c(p.X, p.Y)
		}
	}
	return b.end(PointClosed)
}

func (b *thingBuilder) mapPoints(f func(x, y float64) (float64, float64)) *thingBuilder {
	for i := range b.pts {
		b.pts[i].X, b.pts[i].Y = f(b.pts[i].X, b.pts[i].Y)
	}
	return b
}

// ThingCoordinates returns the outline of t in the unit square. It
// returns nil for unknown glyphs.
func ThingCoordinates(t Thing) []ThingPoint {
	b := &thingBuilder{}
	switch t {
	case ThingCircle:
		b.circle()

	case ThingCircleX:
		s := math.Sqrt2 / 4
		b.circle().
			poly(false, .5-s, .5-s, .5+s, .5+s).
			poly(false, .5-s, .5+s, .5+s, .5-s)

	case ThingCirclePlus:
		b.circle().
			poly(false, .5, 0, .5, 1).
			poly(false, 0, .5, 1, .5)

	case ThingSquare:
		b.poly(true, 0, 0, 0, 1, 1, 1, 1, 0)

	case ThingOctagon:
		a := 1 / (1 + math.Sqrt2) / math.Sqrt2
		b.poly(true, 0, a, 0, 1-a, a, 1, 1-a, 1, 1, 1-a, 1, a, 1-a, 0, a, 0)

	case ThingDiamond:
		b.poly(true, .5, 0, 0, .5, .5, 1, 1, .5)

	case ThingToBottom, ThingToTop, ThingToLeft, ThingToRight:
		b.poly(true, 0, 0, .5, .8, 1, 0).
			poly(true, 0, .8, 1, .8, 1, 1, 0, 1)
		if t == ThingToTop || t == ThingToLeft {
			b.mapPoints(func(x, y float64) (float64, float64) { return x, 1 - y })
		}
		if t == ThingToLeft || t == ThingToRight {
			b.mapPoints(func(x, y float64) (float64, float64) { return y, x })
		}

	case ThingTriangleDown:
		b.poly(true, 0, 0, .5, 1, 1, 0)
	case ThingTriangleUp:
		b.poly(true, 0, 1, 1, 1, .5, 0)
	case ThingTriangleLeft:
		b.poly(true, 1, 1, 1, 0, 0, .5)
	case ThingTriangleRight:
		b.poly(true, 0, 1, 1, .5, 0, 0)

	case ThingPlus:
		b.poly(false, .5, 1, .5, 0).
			poly(false, 0, .5, 1, .5)

	case ThingX:
		s := math.Sqrt2 / 4
		b.poly(false, .5-s, .5-s, .5+s, .5+s).
			poly(false, .5-s, .5+s, .5+s, .5-s)

	case ThingAsterix:
		s := math.Sqrt(3) / 4
		b.poly(false, .25, .5+s, .75, .5-s).
			poly(false, .25, .5-s, .75, .5+s).
			poly(false, 0, .5, 1, .5)

	case ThingFolder:
		b.poly(true, 0, .75, 1, .75, 1, .333, .6, .333, .4, .15, .1, .15, 0, .333)

	case ThingPause:
		b.poly(true, .125, 0, .4, 0, .4, 1, .125, 1).
			poly(true, .6, 0, .875, 0, .875, 1, .6, 1)

	case ThingEject:
		b.poly(true, 0, 0, 0, .25, 1, .25, 1, 0).
			poly(true, 0, .33, .5, 1, 1, .33)

	case ThingDoubleTriangleUp:
		b.poly(true, 0, 0, .5, .5, 1, 0).
			poly(true, 0, .5, .5, 1, 1, .5)
	case ThingDoubleTriangleDown:
		b.poly(true, 0, 1, 1, 1, .5, .5).
			poly(true, 0, .5, 1, .5, .5, 0)
	case ThingDoubleTriangleLeft:
		b.poly(true, .5, 1, .5, 0, 0, .5).
			poly(true, 1, 1, 1, 0, .5, .5)
	case ThingDoubleTriangleRight:
		b.poly(true, 0, 1, .5, .5, 0, 0).
			poly(true, .5, 1, 1, .5, .5, 0)

	case ThingPanArrows:
		b.poly(true,
			6, 1, 8, 3, 7, 3, 7, 5, 9, 5, 9, 4, 11, 6, 9, 8, 9, 7, 7, 7, 7, 9, 8, 9, 6, 11,
			4, 9, 5, 9, 5, 7, 3, 7, 3, 8, 1, 6, 3, 4, 3, 5, 5, 5, 5, 3, 4, 3, 6, 1)
		b.mapPoints(func(x, y float64) (float64, float64) { return x / 12, y / 12 })

	case ThingCheck:
		b.poly(true, .1, .6, .33, .267, .9, .8, .33, .444)

	case ThingLocked:
		b.v(.166, .4).c(.166, .1).c(.266, 0).v(.33, 0).
			v(.66, 0).c(.734, 0).c(.834, .1).v(.834, .4).end(PointClosed)
		b.v(.25, .4).c(.25, .8).c(.75, .8).v(.75, .4).
			v(.65, .4).c(.65, .7).c(.35, .7).v(.35, .4).end(PointClosed)

	case ThingUnlocked:
		b.v(0, .4).c(0, .1).c(.1, 0).v(.164, 0).
			v(.494, 0).c(.568, 0).c(.668, .1).v(.668, .4).end(PointClosed)
		b.v(.35, .4).c(.35, .9).c(.85, .9).v(.85, .5).
			v(.75, .5).c(.75, .8).c(.45, .8).v(.45, .4).end(PointClosed)

	case ThingOpenEye:
		vv, rr := .276, 1/math.Sqrt2
		b.c(vv, .5-vv).v(0, .5).c(vv, .5+vv).
			c(1-vv, .5+vv).v(1, .5).c(1-vv, .5-vv).end(PointClosed)
		eyeLashes(b, rr, false)
		pr := (rr - .5) / 2
		b.poly(true, .5, .5-pr, .5+pr, .5, .5, .5+pr, .5-pr, .5)

	case ThingClosedEye:
		vv, rr := .276, 1/math.Sqrt2
		b.c(0, .5).v(0, .5).c(vv, .5-vv).
			c(1-vv, .5-vv).v(1, .5).c(1, .5).end(PointOpen)
		eyeLashes(b, rr, true)

	case ThingArrowRight, ThingArrowLeft, ThingArrowUp, ThingArrowDown:
		const s = 1.0 / 3
		b.poly(true, 0, s, 0, 2*s, 2*s, 2*s, 2*s, 1, 1, .5, 2*s, 0, 2*s, s)
		switch t {
		case ThingArrowLeft:
			b.mapPoints(func(x, y float64) (float64, float64) { return 1 - x, y })
		case ThingArrowUp:
			b.mapPoints(func(x, y float64) (float64, float64) { return y, 1 - x })
		case ThingArrowDown:
			b.mapPoints(func(x, y float64) (float64, float64) { return y, x })
		}

	case ThingDoubleArrowHorizontal, ThingDoubleArrowVertical:
		b.poly(true, 0, .5, .25, .75, .25, .625, .75, .625, .75, .75,
			1, .5, .75, .25, .75, .375, .25, .375, .25, .25)
		if t == ThingDoubleArrowVertical {
			b.mapPoints(func(x, y float64) (float64, float64) { return y, x })
		}

	default:
		return nil
	}
	return b.pts
}

// eyeLashes adds four open lash strokes above the eye, or below it when
// closed is true.
func eyeLashes(b *thingBuilder, rr float64, closed bool) {
	for i := 0; i < 4; i++ {
		ang := -math.Pi/6 + float64(i)*math.Pi/3/3
		v := Pt(rr*math.Sin(ang), rr*math.Cos(ang))
		if closed {
			b.poly(false, .5+v.X, 1-v.Y, .5+1.4*v.X, 1-1.4*v.Y)
		} else {
			b.poly(false, .5+v.X, v.Y, .5+1.4*v.X, 1.4*v.Y)
		}
	}
}

// thingSubpath is one stroke of a glyph, ready for Polygon or BezierPath.
type thingSubpath struct {
	points []Point
	bezier bool
	closed bool
}

// splitThing breaks glyph points into subpaths. Subpaths holding control
// points come back in c-v-c layout: a vertex without a neighbouring
// control point is its own control, which makes a straight segment.
func splitThing(pts []ThingPoint) []thingSubpath {
	var out []thingSubpath
	start := 0
	for i, p := range pts {
		if p.Flags&(PointClosed|PointOpen) == 0 && i != len(pts)-1 {
			continue
		}
		sub := pts[start : i+1]
		start = i + 1
		closed := p.Flags&PointClosed != 0

		hasControl := false
		for _, q := range sub {
			if q.Flags&PointControl != 0 {
				hasControl = true
				break
			}
		}
		if !hasControl {
			poly := make([]Point, len(sub))
			for j, q := range sub {
				poly[j] = q.Point
			}
			out = append(out, thingSubpath{points: poly, closed: closed})
			continue
		}

		n := len(sub)
		neighbour := func(j int) (ThingPoint, bool) {
			if j < 0 || j >= n {
				if !closed {
					return ThingPoint{}, false
				}
				j = (j + n) % n
			}
			return sub[j], true
		}
		var cvc []Point
		for j, q := range sub {
			if q.Flags&PointControl != 0 {
				continue
			}
			before, after := q.Point, q.Point
			if nb, ok := neighbour(j - 1); ok && nb.Flags&PointControl != 0 {
				before = nb.Point
			}
			if nb, ok := neighbour(j + 1); ok && nb.Flags&PointControl != 0 {
				after = nb.Point
			}
			cvc = append(cvc, before, q.Point, after)
		}
		if len(cvc) > 0 {
			out = append(out, thingSubpath{points: cvc, bezier: true, closed: closed})
		}
	}
	return out
}

// Thing draws glyph t centred on center with half width rx and half
// height ry. A negative ry flips the glyph vertically. Open strokes of the glyph
// are always stroked. It returns false for an unknown glyph.
func (d *Displayer) Thing(center Point, rx, ry float64, t Thing, mode FillMode) bool {
	pts := ThingCoordinates(t)
	if pts == nil {
		return false
	}
	for _, sub := range splitThing(pts) {
		for i, p := range sub.points {
			sub.points[i] = Pt(center.X+2*rx*p.X-rx, center.Y+2*ry*p.Y-ry)
		}
		m := mode
		if !sub.closed {
			m = StrokeOnly
		}
		if sub.bezier {
			d.BezierPath(sub.points, sub.closed, m)
		} else {
			d.Polygon(sub.points, sub.closed, m)
		}
	}
	return true
}
