package ebitengine

import (
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/laxkit/displayer"
	"github.com/laxkit/displayer/backend"
	"github.com/laxkit/displayer/internal/clip"
	"github.com/laxkit/displayer/internal/textlayout"
)

func init() {
	backend.Register(backend.BackendEbitengine, func() displayer.Backend {
		return New()
	})
}

// tolerance is the curve flattening tolerance for dashed strokes.
const tolerance = 0.25

// whiteSubImage is the texture for solid triangles.
var whiteSubImage = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(image.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

// Backend draws on an *ebiten.Image. MakeCurrent accepts *ebiten.Image,
// typically the screen passed to a game's Draw method.
//
// A Backend must only be used from the game's goroutine.
type Backend struct {
	img   *ebiten.Image
	owned bool

	fg, bg displayer.RGBA
	line   displayer.LineStyle
	op     displayer.CompositeOp
	blend  ebiten.Blend
	clip   clip.Rects
	font   *textlayout.Font

	vs []ebiten.Vertex
	is []uint16
}

var _ displayer.Backend = (*Backend)(nil)

// New returns a backend with no surface.
func New() *Backend {
	return &Backend{
		fg:    displayer.Black,
		bg:    displayer.White,
		line:  displayer.DefaultLineStyle(),
		op:    displayer.OpOver,
		blend: ebiten.BlendSourceOver,
		font:  textlayout.Default(),
	}
}

// Name implements displayer.Backend.
func (b *Backend) Name() string { return backend.BackendEbitengine }

// MakeCurrent implements displayer.Backend.
func (b *Backend) MakeCurrent(target any) error {
	img, ok := target.(*ebiten.Image)
	if !ok || img == nil {
		return fmt.Errorf("%w: %T", displayer.ErrUnsupportedSurface, target)
	}
	if b.owned && b.img != img {
		b.img.Deallocate()
	}
	b.img, b.owned = img, false
	return nil
}

// ResizeSurface implements displayer.Backend. The new surface belongs to
// the backend and is freed by Close.
func (b *Backend) ResizeSurface(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", displayer.ErrInvalidSurfaceSize, width, height)
	}
	if b.owned {
		b.img.Deallocate()
	}
	b.img, b.owned = ebiten.NewImage(width, height), true
	displayer.Logger().Debug("ebitengine: surface created", "width", width, "height", height)
	return nil
}

// Size implements displayer.Backend.
func (b *Backend) Size() (int, int) {
	if b.img == nil {
		return 0, 0
	}
	r := b.img.Bounds()
	return r.Dx(), r.Dy()
}

// Image returns the surface, or nil when there is none.
func (b *Backend) Image() *ebiten.Image { return b.img }

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
	if b.img == nil {
		return displayer.ErrNoSurface
	}
	b.img.Fill(bg.Color())
	return nil
}

// SetForeground implements displayer.Backend.
func (b *Backend) SetForeground(c displayer.RGBA) { b.fg = c }

// SetBackground implements displayer.Backend.
func (b *Backend) SetBackground(c displayer.RGBA) { b.bg = c }

// LineAttributes implements displayer.Backend.
func (b *Backend) LineAttributes(style displayer.LineStyle) { b.line = style }

// BlendMode implements displayer.Backend.
func (b *Backend) BlendMode(op displayer.CompositeOp) displayer.CompositeOp {
	old := b.op
	bl, ok := blendFor(op)
	if !ok {
		displayer.Logger().Debug("ebitengine: blend mode not supported, using Over", "op", op)
	}
	b.op, b.blend = op, bl
	return old
}

// target returns the clipped surface and its origin, or nil when
// nothing can be drawn.
func (b *Backend) target() (*ebiten.Image, image.Point) {
	w, h := b.Size()
	r, ok := b.clip.Bounds(w, h)
	if !ok {
		return nil, image.Point{}
	}
	org := b.img.Bounds().Min
	if r == image.Rect(0, 0, w, h) {
		return b.img, org
	}
	// Sub images keep the coordinates of the image they are cut from.
	return b.img.SubImage(r.Add(org)).(*ebiten.Image), org
}

// Fill implements displayer.Backend.
func (b *Backend) Fill(p *displayer.Path, rule displayer.FillRule) error {
	if b.img == nil {
		return displayer.ErrNoSurface
	}
	dst, org := b.target()
	if dst == nil {
		return nil
	}
	b.vs, b.is = toVector(p).AppendVerticesAndIndicesForFilling(b.vs[:0], b.is[:0])
	fr := ebiten.FillRuleNonZero
	if rule == displayer.FillEvenOdd {
		fr = ebiten.FillRuleEvenOdd
	}
	b.drawTriangles(dst, org, fr)
	return nil
}

// Stroke implements displayer.Backend.
func (b *Backend) Stroke(p *displayer.Path) error {
	if b.img == nil {
		return displayer.ErrNoSurface
	}
	dst, org := b.target()
	if dst == nil {
		return nil
	}
	vp := toVector(p)
	if b.line.Dash.IsDashed() {
		vp = dashed(p, b.line.Dash)
	}
	b.vs, b.is = vp.AppendVerticesAndIndicesForStroke(b.vs[:0], b.is[:0], strokeOptions(b.line))
	b.drawTriangles(dst, org, ebiten.FillRuleFillAll)
	return nil
}

func (b *Backend) drawTriangles(dst *ebiten.Image, org image.Point, rule ebiten.FillRule) {
	if len(b.is) == 0 {
		return
	}
	c := b.fg
	for i := range b.vs {
		v := &b.vs[i]
		v.DstX += float32(org.X)
		v.DstY += float32(org.Y)
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	}
	dst.DrawTriangles(b.vs, b.is, whiteSubImage(), &ebiten.DrawTrianglesOptions{
		Blend:     b.blend,
		FillRule:  rule,
		AntiAlias: true,
	})
}

// Clip implements displayer.Backend. The region is the bounding
// rectangle of p.
func (b *Backend) Clip(p *displayer.Path, _ displayer.FillRule, intersect bool) error {
	if b.img == nil {
		return displayer.ErrNoSurface
	}
	b.clip.Set(clip.PixelBounds(p.Bounds()), intersect)
	return nil
}

// PushClip implements displayer.Backend.
func (b *Backend) PushClip(startFresh bool) { b.clip.Push(startFresh) }

// PopClip implements displayer.Backend.
func (b *Backend) PopClip() {
	if !b.clip.Pop() {
		displayer.Logger().Debug("ebitengine: unbalanced PopClip ignored")
	}
}

// ClearClip implements displayer.Backend.
func (b *Backend) ClearClip() { b.clip.Clear() }

// TextExtent implements displayer.Backend.
func (b *Backend) TextExtent(s string, size float64) displayer.TextMetrics {
	return displayer.TextMetrics(b.font.Measure(s, size))
}

// TextOut implements displayer.Backend. The text is rasterized on the
// CPU and drawn as a foreground tinted image.
func (b *Backend) TextOut(s string, x, y, size float64) error {
	if b.img == nil {
		return displayer.ErrNoSurface
	}
	dst, org := b.target()
	if dst == nil {
		return nil
	}
	mask := b.font.Mask(s, x, y, size)
	if mask.Rect.Empty() {
		return nil
	}
	tex := ebiten.NewImageFromImage(mask)
	op := &ebiten.DrawImageOptions{Blend: b.blend}
	op.GeoM.Translate(float64(mask.Rect.Min.X+org.X), float64(mask.Rect.Min.Y+org.Y))
	op.ColorScale.ScaleWithColor(b.fg.Color())
	dst.DrawImage(tex, op)
	return nil
}

// ImageOut implements displayer.Backend. Images other than
// *ebiten.Image are uploaded on every call.
func (b *Backend) ImageOut(img image.Image, m displayer.Matrix) error {
	if b.img == nil {
		return displayer.ErrNoSurface
	}
	dst, org := b.target()
	if dst == nil {
		return nil
	}
	src, ok := img.(*ebiten.Image)
	if !ok {
		src = ebiten.NewImageFromImage(img)
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear, Blend: b.blend}
	op.GeoM = geoM(m)
	op.GeoM.Translate(float64(org.X), float64(org.Y))
	dst.DrawImage(src, op)
	return nil
}

// Flush implements displayer.Backend. Ebitengine submits draw commands
// itself at the end of each frame.
func (b *Backend) Flush() error { return nil }

// Close implements displayer.Backend.
func (b *Backend) Close() error {
	if b.owned && b.img != nil {
		b.img.Deallocate()
	}
	b.img, b.owned = nil, false
	b.clip = clip.Rects{}
	return nil
}

// toVector converts p into an ebiten vector path.
func toVector(p *displayer.Path) *vector.Path {
	var vp vector.Path
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case displayer.MoveTo:
			vp.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case displayer.LineTo:
			vp.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case displayer.CubicTo:
			vp.CubicTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case displayer.Close:
			vp.Close()
		}
	}
	return &vp
}

// dashed flattens p and cuts it into dashes.
func dashed(p *displayer.Path, d *displayer.Dash) *vector.Path {
	var vp vector.Path
	for _, pl := range p.Flatten(tolerance) {
		for _, dash := range d.Apply(pl) {
			if len(dash.Points) < 2 {
				continue
			}
			vp.MoveTo(float32(dash.Points[0].X), float32(dash.Points[0].Y))
			for _, pt := range dash.Points[1:] {
				vp.LineTo(float32(pt.X), float32(pt.Y))
			}
			if dash.Closed {
				vp.Close()
			}
		}
	}
	return &vp
}

func strokeOptions(ls displayer.LineStyle) *vector.StrokeOptions {
	o := &vector.StrokeOptions{
		Width:      float32(ls.Width),
		MiterLimit: float32(ls.MiterLimit),
	}
	if ls.Width <= 0 {
		o.Width = 1
	}
	switch ls.Cap {
	case displayer.CapRound:
		o.LineCap = vector.LineCapRound
	case displayer.CapProjecting:
		o.LineCap = vector.LineCapSquare
	default:
		o.LineCap = vector.LineCapButt
	}
	switch ls.Join {
	case displayer.JoinRound:
		o.LineJoin = vector.LineJoinRound
	case displayer.JoinBevel:
		o.LineJoin = vector.LineJoinBevel
	default:
		o.LineJoin = vector.LineJoinMiter
	}
	return o
}

func geoM(m displayer.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.B)
	g.SetElement(0, 2, m.C)
	g.SetElement(1, 0, m.D)
	g.SetElement(1, 1, m.E)
	g.SetElement(1, 2, m.F)
	return g
}
