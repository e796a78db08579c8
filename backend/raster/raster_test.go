package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/laxkit/displayer"
	"github.com/laxkit/displayer/backend"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	clear = color.RGBA{}
)

// newScreen returns a displayer drawing in pixel coordinates on a cleared
// white w by h surface.
func newScreen(t *testing.T, w, h int) (*displayer.Displayer, *image.RGBA) {
	t.Helper()
	d, err := displayer.New(New(0, 0), displayer.WithScreen(w, h), displayer.WithRealCoordinates(false))
	if err != nil {
		t.Fatal(err)
	}
	d.ClearWindow()
	return d, d.Backend().(*Backend).Image().(*image.RGBA)
}

func TestRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendRaster) {
		t.Fatal("raster backend not registered")
	}
	d, err := backend.Open(backend.BackendRaster, displayer.WithScreen(16, 8))
	if err != nil {
		t.Fatal(err)
	}
	if w, h := d.Backend().Size(); w != 16 || h != 8 {
		t.Errorf("size = %dx%d", w, h)
	}
	if d.Backend().Name() != "raster" {
		t.Errorf("name = %q", d.Backend().Name())
	}
}

func TestSurfaceErrors(t *testing.T) {
	b := New(0, 0)
	if err := b.Fill(displayer.NewPath(), displayer.FillNonZero); !errors.Is(err, displayer.ErrNoSurface) {
		t.Errorf("Fill without surface = %v", err)
	}
	if err := b.MakeCurrent("screen"); !errors.Is(err, displayer.ErrUnsupportedSurface) {
		t.Errorf("MakeCurrent(string) = %v", err)
	}
	if err := b.ResizeSurface(0, 10); !errors.Is(err, displayer.ErrInvalidSurfaceSize) {
		t.Errorf("ResizeSurface(0, 10) = %v", err)
	}
	if err := b.WritePNG(&bytes.Buffer{}); !errors.Is(err, displayer.ErrNoSurface) {
		t.Errorf("WritePNG without surface = %v", err)
	}
}

func TestFillCoverage(t *testing.T) {
	d, img := newScreen(t, 20, 20)
	d.SetForeground(displayer.Red)
	d.Rectangle(4, 4, 10, 10, displayer.FillOnly)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{4, 4, red},
		{13, 13, red},
		{3, 8, white},
		{14, 8, white},
		{8, 14, white},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if err := d.Err(); err != nil {
		t.Fatal(err)
	}
}

func TestFillThenStroke(t *testing.T) {
	d, img := newScreen(t, 30, 30)
	d.SetForeground(displayer.Black)
	d.SetBackground(displayer.Red)
	d.SetLineWidth(2)
	d.Rectangle(5, 5, 20, 20, displayer.FillThenStroke)

	if got := img.RGBAAt(15, 15); got != red {
		t.Errorf("inside = %v, want the background colour", got)
	}
	if got := img.RGBAAt(15, 5); got != black {
		t.Errorf("edge = %v, want the foreground colour", got)
	}
}

func TestClip(t *testing.T) {
	d, img := newScreen(t, 20, 20)
	d.Clip([]displayer.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 20}, {X: 0, Y: 20}}, false)
	d.SetForeground(displayer.Black)
	d.Rectangle(0, 0, 20, 20, displayer.FillOnly)

	if img.RGBAAt(5, 5) != black || img.RGBAAt(15, 5) != white {
		t.Errorf("clip not applied: %v %v", img.RGBAAt(5, 5), img.RGBAAt(15, 5))
	}

	d.PushClip(true)
	d.SetForeground(displayer.Red)
	d.Rectangle(12, 0, 4, 4, displayer.FillOnly)
	d.PopClip()
	if img.RGBAAt(13, 1) != red {
		t.Error("fresh clip did not allow drawing outside the old clip")
	}

	d.Rectangle(16, 16, 4, 4, displayer.FillOnly)
	if img.RGBAAt(17, 17) != white {
		t.Error("PopClip did not restore the clip")
	}
	d.ClearClip()
	d.Rectangle(16, 16, 4, 4, displayer.FillOnly)
	if img.RGBAAt(17, 17) != red {
		t.Error("ClearClip left a clip")
	}
}

func TestBlendModes(t *testing.T) {
	tests := []struct {
		name           string
		op             displayer.CompositeOp
		inside, beside color.RGBA
	}{
		{"over", displayer.OpOver, red, white},
		{"clear", displayer.OpClear, clear, white},
		{"source", displayer.OpSource, red, white},
		{"in is unbounded", displayer.OpIn, red, clear},
		{"dest", displayer.OpDest, white, white},
		{"multiply", displayer.OpMultiply, red, white},
		{"difference", displayer.OpDifference, color.RGBA{0, 255, 255, 255}, white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, img := newScreen(t, 10, 10)
			d.SetForeground(displayer.Red)
			d.SetBlendMode(tt.op)
			d.Rectangle(0, 0, 5, 10, displayer.FillOnly)
			if got := img.RGBAAt(2, 5); got != tt.inside {
				t.Errorf("inside = %v, want %v", got, tt.inside)
			}
			if got := img.RGBAAt(7, 5); got != tt.beside {
				t.Errorf("beside = %v, want %v", got, tt.beside)
			}
		})
	}
}

func TestStroke(t *testing.T) {
	d, img := newScreen(t, 20, 20)
	d.SetLineWidth(2)
	d.Line(displayer.Pt(2, 10), displayer.Pt(18, 10))
	if got := img.RGBAAt(10, 9); got != black {
		t.Errorf("line pixel = %v", got)
	}
	if got := img.RGBAAt(10, 12); got != white {
		t.Errorf("pixel below the line = %v", got)
	}
}

func TestText(t *testing.T) {
	d, img := newScreen(t, 100, 40)
	d.SetFontSize(20)
	m := d.TextExtent("Lax")
	if m.Width <= 0 || m.Ascent <= 0 {
		t.Fatalf("metrics = %+v", m)
	}
	if w := d.TextOut(displayer.Pt(10, 30), "Lax", displayer.AlignLeft); w != m.Width {
		t.Errorf("TextOut advance %g, TextExtent width %g", w, m.Width)
	}
	ink := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y).R < 128 {
				ink++
				if y > 31+int(m.Descent) {
					t.Fatalf("ink below the descent at (%d,%d)", x, y)
				}
			}
		}
	}
	if ink == 0 {
		t.Error("no text drawn")
	}
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestImageOut(t *testing.T) {
	d, img := newScreen(t, 40, 40)
	src := solid(4, 4, red)

	if r := d.ImageOut(src, 10, 10); r != displayer.ImageDrawn {
		t.Fatalf("ImageOut = %v", r)
	}
	if img.RGBAAt(11, 11) != red || img.RGBAAt(8, 8) != white || img.RGBAAt(15, 15) != white {
		t.Errorf("placement wrong: %v %v %v", img.RGBAAt(11, 11), img.RGBAAt(8, 8), img.RGBAAt(15, 15))
	}

	if r := d.ImageOutScaled(src, 20, 20, 12, 12); r != displayer.ImageDrawn {
		t.Fatalf("ImageOutScaled = %v", r)
	}
	if img.RGBAAt(30, 30) != red {
		t.Errorf("scaled image missing: %v", img.RGBAAt(30, 30))
	}

	// Images with a non-zero origin are placed by their corner.
	sub := solid(8, 8, red).SubImage(image.Rect(4, 4, 8, 8))
	d.ClearWindow()
	d.ImageOut(sub, 0, 0)
	if img.RGBAAt(1, 1) != red || img.RGBAAt(6, 6) != white {
		t.Error("sub image misplaced")
	}
}

func TestDrawImageTarget(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	d, err := displayer.New(New(0, 0), displayer.WithTarget(dst), displayer.WithRealCoordinates(false))
	if err != nil {
		t.Fatal(err)
	}
	d.ClearWindow()
	d.SetForeground(displayer.Red)
	d.Rectangle(0, 0, 5, 5, displayer.FillOnly)
	if got := dst.NRGBAAt(2, 2); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("NRGBA target pixel = %v", got)
	}
	if got := dst.NRGBAAt(7, 7); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("NRGBA background = %v", got)
	}
}

func TestSubImageTarget(t *testing.T) {
	parent := image.NewRGBA(image.Rect(0, 0, 20, 20))
	sub := parent.SubImage(image.Rect(10, 10, 20, 20)).(*image.RGBA)
	d, err := displayer.New(New(0, 0), displayer.WithTarget(sub), displayer.WithRealCoordinates(false))
	if err != nil {
		t.Fatal(err)
	}
	d.SetForeground(displayer.Red)
	d.Rectangle(0, 0, 2, 2, displayer.FillOnly)
	if parent.RGBAAt(10, 10) != red || parent.RGBAAt(0, 0) != clear {
		t.Error("drawing not offset to the sub image")
	}
}

func TestWritePNG(t *testing.T) {
	d, _ := newScreen(t, 12, 7)
	var buf bytes.Buffer
	if err := d.Backend().(*Backend).WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 12, 7) {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestSetFont(t *testing.T) {
	b := New(4, 4)
	if err := b.SetFont([]byte("nope")); err == nil {
		t.Error("bad font accepted")
	}
	if _, err := displayer.New(b, displayer.WithFont([]byte("nope"), 12)); err == nil {
		t.Error("New accepted a bad font")
	}
}
