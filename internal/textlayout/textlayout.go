// Package textlayout measures and renders single lines of text.
//
// Text is split into runs in visual order with the Unicode bidi algorithm,
// each run is shaped with HarfBuzz, and glyph outlines are rasterized into
// coverage masks. Fonts are parsed twice from the same data: once for
// shaping and once for outlines and metrics.
package textlayout

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/bidi"

	"github.com/laxkit/displayer/internal/cache"
)

// Metrics describes a line of text in pixels. Ascent and Descent are both
// positive distances from the baseline.
type Metrics struct {
	Width   float64
	Height  float64
	Ascent  float64
	Descent float64
}

// Font is a parsed font. It is safe for concurrent use.
type Font struct {
	shapeFace *gtfont.Face
	outlines  *opentype.Font

	mu     sync.Mutex
	hb     shaping.HarfbuzzShaper
	buf    sfnt.Buffer
	layout *cache.Cache[layoutKey, layout]
}

type layoutKey struct {
	s    string
	size float64
}

// glyph is a positioned glyph. x and y are the pen position relative to
// the line origin, y down.
type glyph struct {
	id   sfnt.GlyphIndex
	x, y float64
}

type layout struct {
	glyphs  []glyph
	advance float64
}

// Parse parses TrueType or OpenType font data.
func Parse(data []byte) (*Font, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textlayout: parse font: %w", err)
	}
	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textlayout: parse font outlines: %w", err)
	}
	return &Font{
		shapeFace: face,
		outlines:  ot,
		layout:    cache.New[layoutKey, layout](64),
	}, nil
}

var defaultFont = sync.OnceValue(func() *Font {
	f, err := Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
})

// Default returns Go Regular.
func Default() *Font { return defaultFont() }

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }

func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }

// Measure returns the metrics of s at size pixels per em.
func (f *Font) Measure(s string, size float64) Metrics {
	if size <= 0 {
		return Metrics{}
	}
	asc, desc := f.lineMetrics(size)
	m := Metrics{Height: asc + desc, Ascent: asc, Descent: desc}
	if s != "" {
		m.Width = f.shape(s, size).advance
	}
	return m
}

func (f *Font) lineMetrics(size float64) (ascent, descent float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.outlines.Metrics(&f.buf, toFixed(size), font.HintingNone)
	if err != nil {
		return size * .8, size * .2
	}
	return fromFixed(m.Ascent), fromFixed(m.Descent)
}

func (f *Font) shape(s string, size float64) layout {
	l, _ := f.layout.GetOrCreate(layoutKey{s, size}, func(k layoutKey) (layout, error) {
		return f.shapeLine(k.s, k.size), nil
	})
	return l
}

// shapeLine lays out s left to right, one bidi run at a time.
func (f *Font) shapeLine(s string, size float64) layout {
	f.mu.Lock()
	defer f.mu.Unlock()

	var l layout
	for _, r := range visualRuns(s) {
		runes := []rune(r.text)
		out := f.hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: r.dir,
			Face:      f.shapeFace,
			Size:      toFixed(size),
			Script:    script(runes),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range out.Glyphs {
			l.glyphs = append(l.glyphs, glyph{
				id: sfnt.GlyphIndex(g.GlyphID),
				x:  l.advance + fromFixed(g.XOffset),
				y:  -fromFixed(g.YOffset),
			})
			l.advance += fromFixed(g.Advance)
		}
	}
	return l
}

type run struct {
	text string
	dir  di.Direction
}

// visualRuns splits s into directional runs in display order.
func visualRuns(s string) []run {
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return []run{{s, di.DirectionLTR}}
	}
	o, err := p.Order()
	if err != nil || o.NumRuns() == 0 {
		return []run{{s, di.DirectionLTR}}
	}
	runs := make([]run, 0, o.NumRuns())
	for i := 0; i < o.NumRuns(); i++ {
		r := o.Run(i)
		d := di.DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			d = di.DirectionRTL
		}
		runs = append(runs, run{r.String(), d})
	}
	return runs
}

func script(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// Mask renders s with its baseline origin at (x, y) and returns the
// coverage. The mask's bounds are in the same coordinates as x and y and
// hold the whole line.
func (f *Font) Mask(s string, x, y, size float64) *image.Alpha {
	if s == "" || size <= 0 {
		return image.NewAlpha(image.Rectangle{})
	}
	l := f.shape(s, size)
	asc, desc := f.lineMetrics(size)
	pad := math.Ceil(size/4) + 1
	r := image.Rect(
		int(math.Floor(x-pad)), int(math.Floor(y-asc-pad)),
		int(math.Ceil(x+l.advance+pad)), int(math.Ceil(y+desc+pad)),
	)
	ox, oy := x-float64(r.Min.X), y-float64(r.Min.Y)

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Src
	f.mu.Lock()
	for _, g := range l.glyphs {
		segs, err := f.outlines.LoadGlyph(&f.buf, g.id, toFixed(size), nil)
		if err != nil {
			continue
		}
		gx, gy := ox+g.x, oy+g.y
		pt := func(p fixed.Point26_6) (float32, float32) {
			return float32(gx + fromFixed(p.X)), float32(gy + fromFixed(p.Y))
		}
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				z.MoveTo(pt(seg.Args[0]))
			case sfnt.SegmentOpLineTo:
				z.LineTo(pt(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				bx, by := pt(seg.Args[0])
				cx, cy := pt(seg.Args[1])
				z.QuadTo(bx, by, cx, cy)
			case sfnt.SegmentOpCubeTo:
				bx, by := pt(seg.Args[0])
				cx, cy := pt(seg.Args[1])
				dx, dy := pt(seg.Args[2])
				z.CubeTo(bx, by, cx, cy, dx, dy)
			}
		}
		z.ClosePath()
	}
	f.mu.Unlock()

	m := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	z.Draw(m, m.Bounds(), image.Opaque, image.Point{})
	m.Rect = r
	return m
}

// Draw renders s onto dst in colour src with its baseline origin at
// (x, y), compositing with draw.Over.
func (f *Font) Draw(dst draw.Image, s string, x, y, size float64, src image.Image) {
	m := f.Mask(s, x, y, size)
	draw.DrawMask(dst, m.Rect, src, image.Point{}, m, m.Rect.Min, draw.Over)
}
