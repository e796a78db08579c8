package x11

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/jezek/xgb/xproto"

	"github.com/laxkit/displayer"
	"github.com/laxkit/displayer/backend"
)

func TestRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendX11) {
		t.Fatal("x11 backend not registered")
	}
}

func TestGCFunction(t *testing.T) {
	tests := []struct {
		op     displayer.CompositeOp
		fn     uint32
		mapped bool
	}{
		{displayer.OpOver, xproto.GxCopy, true},
		{displayer.OpSource, xproto.GxCopy, true},
		{displayer.OpXor, xproto.GxXor, true},
		{displayer.OpNone, xproto.GxCopy, true},
		{displayer.OpMultiply, xproto.GxCopy, false},
		{displayer.OpClear, xproto.GxCopy, false},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			fn, ok := gcFunction(tt.op)
			if fn != tt.fn || ok != tt.mapped {
				t.Errorf("gcFunction(%v) = %d, %v", tt.op, fn, ok)
			}
		})
	}
}

func TestLineValues(t *testing.T) {
	tests := []struct {
		name string
		ls   displayer.LineStyle
		want []uint32
	}{
		{"default", displayer.DefaultLineStyle(), []uint32{1, xproto.LineStyleSolid, xproto.CapStyleButt, xproto.JoinStyleMiter}},
		{"hairline", displayer.LineStyle{Width: 0}, []uint32{0, xproto.LineStyleSolid, xproto.CapStyleButt, xproto.JoinStyleMiter}},
		{"round", displayer.LineStyle{Width: 2.6, Cap: displayer.CapRound, Join: displayer.JoinRound}, []uint32{3, xproto.LineStyleSolid, xproto.CapStyleRound, xproto.JoinStyleRound}},
		{"dashed", displayer.LineStyle{Width: 1, Cap: displayer.CapProjecting, Join: displayer.JoinBevel, Dash: displayer.NewDash(3, 2)}, []uint32{1, xproto.LineStyleOnOffDash, xproto.CapStyleProjecting, xproto.JoinStyleBevel}},
		{"curve miter", displayer.LineStyle{Width: 1, Join: displayer.JoinCurveMiter}, []uint32{1, xproto.LineStyleSolid, xproto.CapStyleButt, xproto.JoinStyleMiter}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineValues(tt.ls)
			if len(got) != 4 {
				t.Fatalf("got %d values", len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("lineValues = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestDashList(t *testing.T) {
	if off, d := dashList(nil); off != 0 || d != nil {
		t.Errorf("solid line gave %d, %v", off, d)
	}
	off, d := dashList(&displayer.Dash{Array: []float64{4.4, 0.2, 300}, Offset: -1})
	if !bytes.Equal(d, []byte{4, 1, 255, 4, 1, 255}) {
		t.Errorf("dashes = %v", d)
	}
	// Offsets wrap into the pattern length.
	if want := uint16(608); off != want {
		t.Errorf("offset = %d, want %d", off, want)
	}
}

func TestFillPoints(t *testing.T) {
	outer := displayer.Polyline{Points: []displayer.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, Closed: true}
	inner := displayer.Polyline{Points: []displayer.Point{{X: 3, Y: 3}, {X: 6, Y: 3}, {X: 6, Y: 6}}, Closed: true}
	line := displayer.Polyline{Points: []displayer.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}}

	got := fillPoints([]displayer.Polyline{line, outer, inner})
	want := []xproto.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}, {X: 0, Y: 0},
		{X: 3, Y: 3}, {X: 6, Y: 3}, {X: 6, Y: 6}, {X: 3, Y: 3}, {X: 0, Y: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
	if fillPoints([]displayer.Polyline{line}) != nil {
		t.Error("degenerate subpaths produced points")
	}
}

func TestLinePoints(t *testing.T) {
	closed := displayer.Polyline{Points: []displayer.Point{{X: 0, Y: 0}, {X: 4.6, Y: 0}, {X: 4, Y: -1e9}}, Closed: true}
	got := linePoints(closed)
	want := []xproto.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: -32768}, {X: 0, Y: 0}}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
	if linePoints(displayer.Polyline{Points: []displayer.Point{{X: 1, Y: 1}}}) != nil {
		t.Error("single point produced a line")
	}
}

func TestChunkPoints(t *testing.T) {
	pts := make([]xproto.Point, 10)
	for i := range pts {
		pts[i].X = int16(i)
	}
	runs := chunkPoints(pts, 4)
	if len(runs) != 3 {
		t.Fatalf("got %d runs", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		prev := runs[i-1]
		if prev[len(prev)-1] != runs[i][0] {
			t.Errorf("run %d does not continue from run %d", i, i-1)
		}
	}
	last := runs[len(runs)-1]
	if last[len(last)-1].X != 9 {
		t.Errorf("last point = %v", last[len(last)-1])
	}
	if runs := chunkPoints(pts, 100); len(runs) != 1 {
		t.Errorf("short line split into %d runs", len(runs))
	}
}

func TestText(t *testing.T) {
	if got := encodeText("café €"); !bytes.Equal(got, []byte{'c', 'a', 'f', 0xe9, ' ', 0x1a}) {
		t.Errorf("encodeText = %v", got)
	}
	long := bytes.Repeat([]byte{'x'}, 300)
	items := textItems(long)
	if len(items) != 304 || items[0] != 254 || items[1] != 0 || items[256] != 46 {
		t.Errorf("items header = %d %d, second %d, len %d", items[0], items[1], items[256], len(items))
	}
	if textItems(nil) != nil {
		t.Error("empty text produced items")
	}
	if cs := char2b([]byte("ab")); cs[1] != (xproto.Char2b{Byte2: 'b'}) {
		t.Errorf("char2b = %v", cs)
	}
}

func TestZPixmap(t *testing.T) {
	r := image.Rect(5, 7, 8, 9)
	img := image.NewRGBA(r)
	img.SetRGBA(5, 7, color.RGBA{10, 20, 30, 255})
	img.SetRGBA(7, 8, color.RGBA{200, 100, 50, 255})

	for _, msb := range []bool{false, true} {
		data := encodeZPixmap(img, r.Min.Y, r.Max.Y, msb)
		if len(data) != 3*2*4 {
			t.Fatalf("msb=%v: %d bytes", msb, len(data))
		}
		back := decodeZPixmap(data, r, msb)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				want := img.RGBAAt(x, y)
				want.A = 255
				if got := back.RGBAAt(x, y); got != want {
					t.Errorf("msb=%v (%d,%d) = %v, want %v", msb, x, y, got, want)
				}
			}
		}
	}
	if lsb := encodeZPixmap(img, 7, 8, false); !bytes.Equal(lsb[:4], []byte{30, 20, 10, 0}) {
		t.Errorf("LSB first pixel = %v", lsb[:4])
	}
}

func TestNoConnection(t *testing.T) {
	b := New()
	if err := b.MakeCurrent("window"); !errors.Is(err, displayer.ErrUnsupportedSurface) {
		t.Errorf("MakeCurrent(string) = %v", err)
	}
	if err := b.MakeCurrent(Target{}); !errors.Is(err, displayer.ErrUnsupportedSurface) {
		t.Errorf("MakeCurrent(Target{}) = %v", err)
	}
	if err := b.ResizeSurface(0, 5); !errors.Is(err, displayer.ErrInvalidSurfaceSize) {
		t.Errorf("ResizeSurface(0, 5) = %v", err)
	}
	if err := b.Fill(displayer.NewPath(), displayer.FillNonZero); !errors.Is(err, displayer.ErrNoSurface) {
		t.Errorf("Fill = %v", err)
	}
	if err := b.ClearWindow(displayer.White); !errors.Is(err, displayer.ErrNoSurface) {
		t.Errorf("ClearWindow = %v", err)
	}
	m := b.TextExtent("abcd", 10)
	if m.Width != 24 || m.Ascent != 8 || m.Descent != 2 {
		t.Errorf("estimated metrics = %+v", m)
	}
	if old := b.BlendMode(displayer.OpXor); old != displayer.OpOver {
		t.Errorf("old op = %v", old)
	}
	if err := b.Flush(); err != nil {
		t.Errorf("Flush = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("Close = %v", err)
	}
}

// TestWindow draws into a real window when a display is available.
func TestWindow(t *testing.T) {
	if os.Getenv("DISPLAY") == "" {
		t.Skip("no X display")
	}
	w, err := Dial(64, 48, "x11 test")
	if err != nil {
		t.Skipf("cannot open window: %v", err)
	}
	defer w.Close()

	d, err := displayer.New(New(), displayer.WithTarget(w), displayer.WithRealCoordinates(false))
	if err != nil {
		t.Fatal(err)
	}
	d.ClearWindow()
	d.SetLineWidth(2)
	d.Rectangle(4, 4, 20, 20, displayer.FillThenStroke)
	d.TextOut(displayer.Pt(4, 40), "x11", displayer.AlignLeft)
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	d.ImageOut(src, 30, 30)
	if err := d.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := d.Err(); err != nil {
		t.Fatal(err)
	}
	if m := d.TextExtent("x11"); m.Width <= 0 {
		t.Errorf("TextExtent = %+v", m)
	}
}
