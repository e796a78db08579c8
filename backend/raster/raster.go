package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/laxkit/displayer"
	"github.com/laxkit/displayer/backend"
	"github.com/laxkit/displayer/internal/clip"
	"github.com/laxkit/displayer/internal/stroke"
	"github.com/laxkit/displayer/internal/textlayout"
)

func init() {
	backend.Register(backend.BackendRaster, func() displayer.Backend {
		return New(0, 0)
	})
}

// maxPixels bounds the surfaces ResizeSurface will allocate.
const maxPixels = 1 << 28

// Backend is the software backend. MakeCurrent accepts *image.RGBA or any
// other draw.Image; drawing on an *image.RGBA is much faster.
//
// A Backend is not safe for concurrent use.
type Backend struct {
	dst  draw.Image
	rgba *image.RGBA
	org  image.Point
	w, h int

	fg, bg displayer.RGBA
	line   displayer.LineStyle
	op     displayer.CompositeOp
	clip   *clip.Stack
	font   *textlayout.Font
}

var _ displayer.Backend = (*Backend)(nil)

// New returns a backend drawing on a new width by height surface, or with
// no surface when either size is not positive.
func New(width, height int) *Backend {
	b := &Backend{
		fg:   displayer.Black,
		bg:   displayer.White,
		line: displayer.DefaultLineStyle(),
		op:   displayer.OpOver,
		clip: clip.NewStack(0, 0),
		font: textlayout.Default(),
	}
	if width > 0 && height > 0 {
		_ = b.ResizeSurface(width, height)
	}
	return b
}

// Name implements displayer.Backend.
func (b *Backend) Name() string { return backend.BackendRaster }

// MakeCurrent implements displayer.Backend.
func (b *Backend) MakeCurrent(target any) error {
	switch t := target.(type) {
	case *image.RGBA:
		if t == nil {
			return displayer.ErrUnsupportedSurface
		}
		b.setSurface(t)
	case draw.Image:
		if t == nil {
			return displayer.ErrUnsupportedSurface
		}
		b.setSurface(t)
	default:
		return fmt.Errorf("%w: %T", displayer.ErrUnsupportedSurface, target)
	}
	displayer.Logger().Debug("raster: surface set", "width", b.w, "height", b.h)
	return nil
}

func (b *Backend) setSurface(dst draw.Image) {
	b.dst = dst
	b.rgba, _ = dst.(*image.RGBA)
	r := dst.Bounds()
	b.org = r.Min
	b.w, b.h = r.Dx(), r.Dy()
	b.clip.Resize(b.w, b.h)
}

// ResizeSurface implements displayer.Backend.
func (b *Backend) ResizeSurface(width, height int) error {
	if width <= 0 || height <= 0 || width*height > maxPixels {
		return fmt.Errorf("%w: %dx%d", displayer.ErrInvalidSurfaceSize, width, height)
	}
	b.setSurface(image.NewRGBA(image.Rect(0, 0, width, height)))
	return nil
}

// Size implements displayer.Backend.
func (b *Backend) Size() (int, int) { return b.w, b.h }

// Image returns the surface, or nil before MakeCurrent.
func (b *Backend) Image() draw.Image { return b.dst }

// WritePNG encodes the surface as PNG.
func (b *Backend) WritePNG(w io.Writer) error {
	if b.dst == nil {
		return displayer.ErrNoSurface
	}
	return png.Encode(w, b.dst)
}

// SetFont implements displayer.FontSetter.
func (b *Backend) SetFont(data []byte) error {
	f, err := textlayout.Parse(data)
	if err != nil {
		return err
	}
	b.font = f
	return nil
}

// ClearWindow implements displayer.Backend.
func (b *Backend) ClearWindow(bg displayer.RGBA) error {
	if b.dst == nil {
		return displayer.ErrNoSurface
	}
	c := bg.Premultiplied8()
	if b.rgba != nil {
		draw.Draw(b.rgba, b.rgba.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
		return nil
	}
	draw.Draw(b.dst, b.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

// SetForeground implements displayer.Backend.
func (b *Backend) SetForeground(c displayer.RGBA) { b.fg = c }

// SetBackground implements displayer.Backend.
func (b *Backend) SetBackground(c displayer.RGBA) { b.bg = c }

// LineAttributes implements displayer.Backend.
func (b *Backend) LineAttributes(style displayer.LineStyle) { b.line = style }

// BlendMode implements displayer.Backend. Every op is supported.
func (b *Backend) BlendMode(op displayer.CompositeOp) displayer.CompositeOp {
	old := b.op
	if op.Valid() {
		b.op = op
	}
	return old
}

// Fill implements displayer.Backend.
func (b *Backend) Fill(p *displayer.Path, rule displayer.FillRule) error {
	if b.dst == nil {
		return displayer.ErrNoSurface
	}
	b.paint(clip.FromPath(p, rule, b.w, b.h))
	return nil
}

// Stroke implements displayer.Backend.
func (b *Backend) Stroke(p *displayer.Path) error {
	if b.dst == nil {
		return displayer.ErrNoSurface
	}
	polys := stroke.Outline(p, b.line, clip.Tolerance)
	b.paint(clip.Rasterize(polys, displayer.FillNonZero, b.w, b.h))
	return nil
}

// Clip implements displayer.Backend.
func (b *Backend) Clip(p *displayer.Path, rule displayer.FillRule, intersect bool) error {
	if b.dst == nil {
		return displayer.ErrNoSurface
	}
	b.clip.Set(clip.FromPath(p, rule, b.w, b.h), intersect)
	return nil
}

// PushClip implements displayer.Backend.
func (b *Backend) PushClip(startFresh bool) { b.clip.Push(startFresh) }

// PopClip implements displayer.Backend.
func (b *Backend) PopClip() {
	if !b.clip.Pop() {
		displayer.Logger().Debug("raster: unbalanced PopClip ignored")
	}
}

// ClearClip implements displayer.Backend.
func (b *Backend) ClearClip() { b.clip.Clear() }

// TextExtent implements displayer.Backend.
func (b *Backend) TextExtent(s string, size float64) displayer.TextMetrics {
	return displayer.TextMetrics(b.font.Measure(s, size))
}

// TextOut implements displayer.Backend.
func (b *Backend) TextOut(s string, x, y, size float64) error {
	if b.dst == nil {
		return displayer.ErrNoSurface
	}
	b.paint(b.font.Mask(s, x, y, size))
	return nil
}

// ImageOut implements displayer.Backend. The image is resampled with
// Catmull-Rom into a layer, which is then composited like any drawing.
func (b *Backend) ImageOut(img image.Image, m displayer.Matrix) error {
	if b.dst == nil {
		return displayer.ErrNoSurface
	}
	sr := img.Bounds()
	box := displayer.Rect{MaxX: float64(sr.Dx()), MaxY: float64(sr.Dy())}.Transform(m)
	r := image.Rect(int(box.MinX)-1, int(box.MinY)-1, int(box.MaxX)+2, int(box.MaxY)+2).
		Intersect(image.Rect(0, 0, b.w, b.h))
	if r.Empty() {
		return nil
	}

	// The matrix maps pixels counted from the image's corner.
	s2d := f64.Aff3{
		m.A, m.B, m.C - m.A*float64(sr.Min.X) - m.B*float64(sr.Min.Y),
		m.D, m.E, m.F - m.D*float64(sr.Min.X) - m.E*float64(sr.Min.Y),
	}
	layer := image.NewRGBA(r)
	xdraw.CatmullRom.Transform(layer, s2d, img, sr, xdraw.Src, nil)

	// Coverage is the image's footprint, so that ops such as Source
	// stop at its edges.
	w, h := float64(sr.Dx()), float64(sr.Dy())
	foot := clip.Rasterize([]displayer.Polyline{{
		Points: []displayer.Point{
			m.TransformPoint(displayer.Pt(0, 0)),
			m.TransformPoint(displayer.Pt(w, 0)),
			m.TransformPoint(displayer.Pt(w, h)),
			m.TransformPoint(displayer.Pt(0, h)),
		},
		Closed: true,
	}}, displayer.FillNonZero, b.w, b.h)
	b.composite(r, func(x, y int) (color.RGBA, byte) {
		return layer.RGBAAt(x, y), foot.AlphaAt(x, y).A
	})
	return nil
}

// Flush implements displayer.Backend. Drawing is immediate, so there is
// nothing to do.
func (b *Backend) Flush() error { return nil }

// Close implements displayer.Backend.
func (b *Backend) Close() error {
	b.dst, b.rgba = nil, nil
	b.w, b.h = 0, 0
	b.clip.Resize(0, 0)
	return nil
}
