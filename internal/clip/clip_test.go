package clip

import (
	"image"
	"testing"

	"github.com/laxkit/displayer"
)

func square(x0, y0, x1, y1 float64, clockwise bool) displayer.Polyline {
	pts := []displayer.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
	if !clockwise {
		pts[1], pts[3] = pts[3], pts[1]
	}
	return displayer.Polyline{Points: pts, Closed: true}
}

func at(m *image.Alpha, x, y int) byte { return m.AlphaAt(x, y).A }

func TestRasterizeSquare(t *testing.T) {
	m := Rasterize([]displayer.Polyline{square(2, 2, 8, 8, true)}, displayer.FillNonZero, 10, 10)
	tests := []struct {
		x, y int
		want byte
	}{
		{5, 5, 255},
		{2, 2, 255},
		{7, 7, 255},
		{1, 5, 0},
		{8, 5, 0},
		{5, 9, 0},
	}
	for _, tt := range tests {
		if got := at(m, tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
	if got := Bounds(m); got != image.Rect(2, 2, 8, 8) {
		t.Errorf("Bounds = %v", got)
	}
}

func TestRasterizeHalfPixel(t *testing.T) {
	m := Rasterize([]displayer.Polyline{square(0, 0, 2.5, 4, true)}, displayer.FillNonZero, 4, 4)
	if got := at(m, 2, 1); got < 120 || got > 135 {
		t.Errorf("half covered pixel = %d", got)
	}
}

func TestFillRules(t *testing.T) {
	tests := []struct {
		name       string
		rule       displayer.FillRule
		innerCW    bool
		wantCenter byte
	}{
		{"nonzero same direction", displayer.FillNonZero, true, 255},
		{"nonzero opposite direction", displayer.FillNonZero, false, 0},
		{"evenodd same direction", displayer.FillEvenOdd, true, 0},
		{"evenodd opposite direction", displayer.FillEvenOdd, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polys := []displayer.Polyline{square(0, 0, 20, 20, true), square(5, 5, 15, 15, tt.innerCW)}
			m := Rasterize(polys, tt.rule, 20, 20)
			if got := at(m, 10, 10); got != tt.wantCenter {
				t.Errorf("center = %d, want %d", got, tt.wantCenter)
			}
			if got := at(m, 2, 10); got != 255 {
				t.Errorf("ring = %d, want 255", got)
			}
		})
	}
}

func TestRasterizeSkipsDegenerate(t *testing.T) {
	polys := []displayer.Polyline{{Points: []displayer.Point{{X: 1, Y: 1}, {X: 5, Y: 5}}}}
	m := Rasterize(polys, displayer.FillNonZero, 8, 8)
	if !Bounds(m).Empty() {
		t.Error("two point polyline drew something")
	}
	if m := Rasterize(nil, displayer.FillNonZero, 0, 0); len(m.Pix) != 0 {
		t.Error("empty surface has pixels")
	}
}

func TestFromPath(t *testing.T) {
	p := displayer.NewPath()
	p.MoveTo(1, 1)
	p.LineTo(9, 1)
	p.LineTo(9, 9)
	p.LineTo(1, 9)
	p.Close()
	m := FromPath(p, displayer.FillNonZero, 10, 10)
	if at(m, 5, 5) != 255 || at(m, 0, 0) != 0 {
		t.Error("path mask wrong")
	}
}

func TestStack(t *testing.T) {
	s := NewStack(20, 20)
	if s.Coverage(3, 3) != 255 || s.Mask() != nil {
		t.Fatal("new stack is clipped")
	}

	left := Rasterize([]displayer.Polyline{square(0, 0, 10, 20, true)}, displayer.FillNonZero, 20, 20)
	top := Rasterize([]displayer.Polyline{square(0, 0, 20, 10, true)}, displayer.FillNonZero, 20, 20)

	s.Set(left, false)
	if s.Coverage(5, 15) != 255 || s.Coverage(15, 5) != 0 {
		t.Error("left clip wrong")
	}

	s.Push(false)
	s.Set(top, true)
	if s.Coverage(5, 5) != 255 || s.Coverage(5, 15) != 0 || s.Coverage(15, 5) != 0 {
		t.Error("intersection wrong")
	}
	if s.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Errorf("Bounds = %v", s.Bounds())
	}

	s.Push(true)
	if s.Coverage(15, 15) != 255 || s.Depth() != 2 {
		t.Error("fresh push is clipped")
	}

	if !s.Pop() || !s.Pop() {
		t.Fatal("pop failed")
	}
	if s.Coverage(5, 15) != 255 || s.Coverage(15, 5) != 0 {
		t.Error("pop did not restore the left clip")
	}
	if s.Pop() {
		t.Error("unbalanced pop succeeded")
	}

	s.Set(top, false)
	if s.Coverage(15, 5) != 255 {
		t.Error("replace did not drop the old clip")
	}
	s.Clear()
	if s.Coverage(15, 15) != 255 {
		t.Error("Clear left a clip")
	}
	if s.Coverage(-1, 0) != 0 || s.Coverage(20, 0) != 0 {
		t.Error("outside the surface is visible")
	}
}

func TestRects(t *testing.T) {
	var c Rects
	if r, ok := c.Bounds(100, 50); !ok || r != image.Rect(0, 0, 100, 50) || c.Active() {
		t.Fatalf("unclipped bounds = %v, %v", r, ok)
	}

	c.Set(image.Rect(10, 10, 60, 40), false)
	c.Set(image.Rect(40, 0, 200, 20), true)
	if r, _ := c.Bounds(100, 50); r != image.Rect(40, 10, 60, 20) {
		t.Errorf("intersection = %v", r)
	}

	c.Push(true)
	if r, _ := c.Bounds(100, 50); r != image.Rect(0, 0, 100, 50) {
		t.Errorf("fresh = %v", r)
	}
	c.Set(image.Rect(0, 0, 5, 5), false)
	c.Push(false)
	c.Set(image.Rect(20, 20, 30, 30), true)
	if _, ok := c.Bounds(100, 50); ok {
		t.Error("disjoint intersection should leave nothing drawable")
	}
	if !c.Pop() || !c.Pop() {
		t.Fatal("Pop failed")
	}
	if r, _ := c.Bounds(100, 50); r != image.Rect(40, 10, 60, 20) {
		t.Errorf("restored = %v", r)
	}
	if c.Pop() {
		t.Error("Pop on an empty stack succeeded")
	}
	c.Clear()
	if r, _ := c.Bounds(8, 8); r != image.Rect(0, 0, 8, 8) {
		t.Errorf("cleared = %v", r)
	}
}

func TestPixelBounds(t *testing.T) {
	r := PixelBounds(displayer.Rect{MinX: 1.5, MinY: -0.2, MaxX: 9.1, MaxY: 4})
	if r != image.Rect(1, -1, 10, 4) {
		t.Errorf("PixelBounds = %v", r)
	}
}
