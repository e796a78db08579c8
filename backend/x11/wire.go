package x11

import (
	"image"
	"math"

	"github.com/jezek/xgb/xproto"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/laxkit/displayer"
)

// gcFunction maps op to a GC function. ok is false when the core
// protocol has no equivalent and GXcopy is returned instead.
func gcFunction(op displayer.CompositeOp) (fn uint32, ok bool) {
	switch op {
	case displayer.OpNone, displayer.OpOver, displayer.OpSource:
		return xproto.GxCopy, true
	case displayer.OpXor:
		return xproto.GxXor, true
	}
	return xproto.GxCopy, false
}

// lineValues returns the GcLineWidth, GcLineStyle, GcCapStyle and
// GcJoinStyle values for ls, in that order. Width zero is the server's
// one pixel thin line.
func lineValues(ls displayer.LineStyle) []uint32 {
	w := uint32(0)
	if ls.Width > 0 {
		w = uint32(min(math.Round(ls.Width), 0xffff))
	}
	style := uint32(xproto.LineStyleSolid)
	if ls.Dash.IsDashed() {
		style = xproto.LineStyleOnOffDash
	}
	capStyle := uint32(xproto.CapStyleButt)
	switch ls.Cap {
	case displayer.CapRound:
		capStyle = xproto.CapStyleRound
	case displayer.CapProjecting:
		capStyle = xproto.CapStyleProjecting
	}
	joinStyle := uint32(xproto.JoinStyleMiter)
	switch ls.Join {
	case displayer.JoinRound:
		joinStyle = xproto.JoinStyleRound
	case displayer.JoinBevel:
		joinStyle = xproto.JoinStyleBevel
	}
	return []uint32{w, style, capStyle, joinStyle}
}

// dashList converts d to the byte lengths of SetDashes. An odd list is
// repeated so that dashes and gaps alternate.
func dashList(d *displayer.Dash) (offset uint16, dashes []byte) {
	if !d.IsDashed() {
		return 0, nil
	}
	a := d.Array
	if len(a)%2 == 1 {
		a = append(append([]float64(nil), a...), a...)
	}
	dashes = make([]byte, len(a))
	for i, l := range a {
		dashes[i] = byte(max(1, min(math.Round(l), 255)))
	}
	off := math.Mod(d.Offset, d.PatternLength())
	if off < 0 {
		off += d.PatternLength()
	}
	return uint16(math.Round(off)), dashes
}

func xPoint(p displayer.Point) xproto.Point {
	return xproto.Point{X: clamp16(p.X), Y: clamp16(p.Y)}
}

func clamp16(v float64) int16 {
	return int16(max(math.MinInt16, min(math.Round(v), math.MaxInt16)))
}

// fillPoints joins the subpaths of polys into one point list for
// FillPoly. Every subpath is closed and followed by a return to the first
// point; each connecting edge is then travelled once in each direction
// and adds nothing under either fill rule.
func fillPoints(polys []displayer.Polyline) []xproto.Point {
	var pts []xproto.Point
	var anchor xproto.Point
	for _, pl := range polys {
		if len(pl.Points) < 3 {
			continue
		}
		first := xPoint(pl.Points[0])
		if pts == nil {
			anchor = first
		}
		for _, p := range pl.Points {
			pts = append(pts, xPoint(p))
		}
		pts = append(pts, first, anchor)
	}
	return pts
}

// linePoints returns the PolyLine points of pl, or nil when there is no
// segment to draw.
func linePoints(pl displayer.Polyline) []xproto.Point {
	if len(pl.Points) < 2 {
		return nil
	}
	pts := make([]xproto.Point, 0, len(pl.Points)+1)
	for _, p := range pl.Points {
		pts = append(pts, xPoint(p))
	}
	if pl.Closed {
		pts = append(pts, pts[0])
	}
	return pts
}

// chunkPoints splits a polyline into runs of at most n points that share
// their end points.
func chunkPoints(pts []xproto.Point, n int) [][]xproto.Point {
	if n < 2 || len(pts) <= n {
		return [][]xproto.Point{pts}
	}
	var out [][]xproto.Point
	for len(pts) > 1 {
		k := min(n, len(pts))
		out = append(out, pts[:k])
		pts = pts[k-1:]
	}
	return out
}

func xRect(r image.Rectangle) xproto.Rectangle {
	return xproto.Rectangle{
		X: int16(r.Min.X), Y: int16(r.Min.Y),
		Width: uint16(r.Dx()), Height: uint16(r.Dy()),
	}
}

// encodeText converts s to the single byte encoding of core fonts.
func encodeText(s string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil
	}
	return b
}

// textItems packs s into PolyText8 items of at most 254 characters.
func textItems(s []byte) []byte {
	var items []byte
	for len(s) > 0 {
		n := min(len(s), 254)
		items = append(items, byte(n), 0)
		items = append(items, s[:n]...)
		s = s[n:]
	}
	return items
}

func char2b(s []byte) []xproto.Char2b {
	cs := make([]xproto.Char2b, len(s))
	for i, c := range s {
		cs[i] = xproto.Char2b{Byte2: c}
	}
	return cs
}

// decodeZPixmap reads 32 bits per pixel ZPixmap data into an opaque
// image covering r.
func decodeZPixmap(data []byte, r image.Rectangle, msb bool) *image.RGBA {
	img := image.NewRGBA(r)
	n := min(len(data), len(img.Pix)) / 4 * 4
	for i := 0; i < n; i += 4 {
		p := data[i : i+4 : i+4]
		d := img.Pix[i : i+4 : i+4]
		if msb {
			d[0], d[1], d[2] = p[1], p[2], p[3]
		} else {
			d[0], d[1], d[2] = p[2], p[1], p[0]
		}
		d[3] = 0xff
	}
	return img
}

// encodeZPixmap writes rows y0 to y1 of img as 32 bits per pixel ZPixmap
// data.
func encodeZPixmap(img *image.RGBA, y0, y1 int, msb bool) []byte {
	r := img.Rect
	w := r.Dx()
	out := make([]byte, 0, w*(y1-y0)*4)
	for y := y0; y < y1; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y):][:w*4]
		for i := 0; i < len(row); i += 4 {
			if msb {
				out = append(out, 0, row[i], row[i+1], row[i+2])
			} else {
				out = append(out, row[i+2], row[i+1], row[i], 0)
			}
		}
	}
	return out
}
