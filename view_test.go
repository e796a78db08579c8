package displayer

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func nearPt(a, b Point, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol)
}

func newTestView(w, h int) *View {
	v := NewView()
	v.WrapWindow(w, h)
	return v
}

func TestRoundTrip(t *testing.T) {
	transforms := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"flip y", NewMatrix(1, 0, 0, -1, 400, 300)},
		{"rotate scale", Rotate(0.7).Multiply(Scale(3, 0.25)).Multiply(Translate(-12, 40))},
		{"shear", Shear(0.8, -0.3).Multiply(Translate(5, 5))},
		{"tiny", Scale(1e-4, 2e-4)},
	}
	points := []Point{{0, 0}, {1, 1}, {-250.5, 13}, {1e4, -3e3}}
	for _, tt := range transforms {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView()
			if !v.SetTransform(tt.m) {
				t.Fatalf("SetTransform(%+v) rejected", tt.m)
			}
			for _, p := range points {
				got := v.ScreenToReal(v.RealToScreen(p))
				if !nearPt(got, p, 1e-9) {
					t.Errorf("ScreenToReal(RealToScreen(%v)) = %v", p, got)
				}
			}
		})
	}
}

func TestSetTransformRejectsSingular(t *testing.T) {
	v := NewView()
	before := v.Transform()
	for _, m := range []Matrix{
		{},
		{A: 1, B: 2, D: 2, E: 4},
		{A: math.NaN(), E: 1},
		{A: 1, E: math.Inf(1)},
	} {
		if v.SetTransform(m) {
			t.Errorf("SetTransform(%+v) = true, want false", m)
		}
		if v.Transform() != before {
			t.Errorf("transform changed to %+v", v.Transform())
		}
	}
}

func TestSetTransformPS(t *testing.T) {
	v := NewView()
	v.SetTransformPS(2, 0, 0, 3, 10, 20)
	got := v.RealToScreenXY(1, 1)
	if !nearPt(got, Pt(12, 23), eps) {
		t.Errorf("RealToScreen(1,1) = %v, want (12,23)", got)
	}
	if ps := v.Transform().Postscript(); ps != [6]float64{2, 0, 0, 3, 10, 20} {
		t.Errorf("Postscript() = %v", ps)
	}
}

func TestIsRightHanded(t *testing.T) {
	v := NewView()
	if !v.IsRightHanded() {
		t.Error("identity should be right handed")
	}
	v.SetTransform(Scale(1, -1))
	if v.IsRightHanded() {
		t.Error("y flip should be left handed")
	}
}

func TestShift(t *testing.T) {
	v := NewView()
	v.SetTransform(Scale(2, 3))
	v.ShiftScreen(5, -5)
	if got := v.RealToScreen(Point{}); !nearPt(got, Pt(5, -5), eps) {
		t.Errorf("after ShiftScreen origin at %v", got)
	}
	v.ShiftReal(1, 1)
	if got := v.RealToScreen(Point{}); !nearPt(got, Pt(7, -2), eps) {
		t.Errorf("after ShiftReal origin at %v, want (7,-2)", got)
	}
}

func TestZoomBoundedness(t *testing.T) {
	v := NewView()
	var last Matrix
	changed := 0
	for i := 0; i < 1000; i++ {
		last = v.Transform()
		if v.Zoom(1.1) {
			changed++
		}
	}
	if v.Magnification(false) > DefaultUpperBound {
		t.Errorf("zoomed past upper bound: %v", v.Magnification(false))
	}
	if changed == 1000 || v.Transform() != last {
		t.Errorf("zoom in never stopped (changed %d times)", changed)
	}

	v = NewView()
	for i := 0; i < 1000; i++ {
		v.Zoom(0.9)
	}
	if v.Magnification(false) < DefaultLowerBound {
		t.Errorf("zoomed past lower bound: %v", v.Magnification(false))
	}
	before := v.Transform()
	if v.Zoom(0.9) {
		t.Error("Zoom(0.9) at lower bound should be rejected")
	}
	if v.Transform() != before {
		t.Error("rejected zoom changed transform")
	}
}

func TestZoomRejectsNonPositive(t *testing.T) {
	v := NewView()
	for _, m := range []float64{0, -2, math.NaN()} {
		if v.Zoom(m) {
			t.Errorf("Zoom(%v) = true, want false", m)
		}
	}
}

func TestZoomAtKeepsPivot(t *testing.T) {
	pivots := []Point{{0, 0}, {100, 50}, {-30, 220.5}}
	factors := []float64{1.5, 0.5, 1.01, 3}
	for _, s := range pivots {
		for _, f := range factors {
			v := newTestView(400, 300)
			v.SetTransform(Rotate(0.3).Multiply(Scale(2, -2)).Multiply(Translate(20, 20)))
			before := v.RealToScreen(v.ScreenToReal(s))
			rp := v.ScreenToReal(s)
			if !v.ZoomAt(f, s) {
				t.Fatalf("ZoomAt(%v, %v) rejected", f, s)
			}
			after := v.RealToScreen(rp)
			if !nearPt(before, after, 1e-9) {
				t.Errorf("ZoomAt(%v, %v): pivot moved from %v to %v", f, s, before, after)
			}
		}
	}
}

func TestZoomAroundReal(t *testing.T) {
	v := newTestView(200, 200)
	p := Pt(3, 4)
	s := v.RealToScreen(p)
	v.ZoomAroundReal(2, p)
	if got := v.RealToScreen(p); !nearPt(got, s, eps) {
		t.Errorf("real point moved from %v to %v", s, got)
	}
	if got := v.Magnification(false); !near(got, 2, eps) {
		t.Errorf("Magnification = %v, want 2", got)
	}
}

func TestRotateKeepsPivot(t *testing.T) {
	v := newTestView(200, 200)
	pivot := Pt(50, 80)
	rp := v.ScreenToReal(pivot)
	v.Rotate(math.Pi/3, pivot)
	if got := v.RealToScreen(rp); !nearPt(got, pivot, eps) {
		t.Errorf("pivot moved to %v", got)
	}
	if got := math.Atan2(v.Transform().D, v.Transform().A); !near(got, math.Pi/3, eps) {
		t.Errorf("x axis angle = %v, want pi/3", got)
	}

	v.SetDegrees(true)
	v.RotateAbsolute(90, pivot)
	if got := v.Transform().XAxis(); !nearPt(got, Pt(0, 1), 1e-9) {
		t.Errorf("x axis after RotateAbsolute(90) = %v", got)
	}
	if got := v.RealToScreen(rp); !nearPt(got, pivot, eps) {
		t.Errorf("pivot moved to %v", got)
	}
}

func TestNewAngle(t *testing.T) {
	v := NewView()
	v.SetTransform(Scale(2, 2).Multiply(Identity()))
	v.ShiftScreen(10, 10)
	v.NewAngle(math.Pi/2, 1)
	if got := v.Transform().XAxis(); !nearPt(got, Pt(0, 2), 1e-9) {
		t.Errorf("x axis = %v, want (0,2)", got)
	}
	v.NewAngle(math.Pi/2, -1)
	if got := v.Transform().XAxis(); !nearPt(got, Pt(2, 0), 1e-9) {
		t.Errorf("x axis = %v, want (2,0)", got)
	}
	v.NewAngle(math.Pi, 0)
	if got := v.Transform().XAxis(); !nearPt(got, Pt(-2, 0), 1e-9) {
		t.Errorf("x axis = %v, want (-2,0)", got)
	}
	if got := v.Transform().Origin(); !nearPt(got, Pt(10, 10), eps) {
		t.Errorf("origin moved to %v", got)
	}
}

func TestSetAxesRejectsParallel(t *testing.T) {
	v := NewView()
	v.SetTransform(Translate(3, 4))
	before := v.Transform()
	tests := []struct {
		name string
		x, y Point
	}{
		{"identical", Pt(1, 2), Pt(1, 2)},
		{"opposite", Pt(1, 2), Pt(-2, -4)},
		{"zero x", Pt(0, 0), Pt(0, 1)},
		{"zero both", Pt(0, 0), Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v.SetAxes(Pt(9, 9), tt.x, tt.y) {
				t.Errorf("SetAxes(%v, %v) = true, want false", tt.x, tt.y)
			}
			if v.Transform() != before {
				t.Errorf("transform changed to %+v", v.Transform())
			}
		})
	}
	if !v.SetAxesTip(Pt(1, 1), Pt(3, 1)) {
		t.Fatal("SetAxesTip rejected")
	}
	if got := v.RealToScreenXY(0, 1); !nearPt(got, Pt(1, 3), eps) {
		t.Errorf("SetAxesTip y axis tip = %v, want (1,3)", got)
	}
}

func TestSetMagnification(t *testing.T) {
	v := NewView()
	v.SetTransform(Rotate(0.5).Multiply(Scale(1, -1)))
	v.SetMagnification(4, 0)
	if !near(v.Magnification(false), 4, eps) || !near(v.Magnification(true), 4, eps) {
		t.Errorf("magnification = %v, %v; want 4, 4", v.Magnification(false), v.Magnification(true))
	}
	if v.IsRightHanded() {
		t.Error("SetMagnification changed handedness")
	}
	if v.SetMagnification(-1, 2) {
		t.Error("SetMagnification(-1, 2) should be a no-op")
	}
}

func TestMagnitudeAlongScreenVector(t *testing.T) {
	v := NewView()
	v.SetTransform(Scale(2, 5))
	if got := v.MagnitudeAlongScreenVector(1, 0); !near(got, 2, eps) {
		t.Errorf("along x = %v, want 2", got)
	}
	if got := v.MagnitudeAlongScreenVector(0, -3); !near(got, 5, eps) {
		t.Errorf("along y = %v, want 5", got)
	}
	if got := v.MagnitudeAlongScreenVector(0, 0); got != 0 {
		t.Errorf("zero vector = %v, want 0", got)
	}
}

func TestCenterOn(t *testing.T) {
	v := newTestView(640, 480)
	v.SetTransform(Scale(3, -3))
	v.CenterOn(Pt(10, 10))
	if got := v.RealToScreenXY(10, 10); !nearPt(got, Pt(320, 240), eps) {
		t.Errorf("center = %v, want (320,240)", got)
	}
	v.CenterReal()
	if got := v.RealToScreen(Point{}); !nearPt(got, Pt(320, 240), eps) {
		t.Errorf("origin = %v, want (320,240)", got)
	}
}

func TestFitBounds(t *testing.T) {
	tests := []struct {
		name                   string
		m                      Matrix
		minx, maxx, miny, maxy float64
	}{
		{"wide", Identity(), 0, 100, 0, 10},
		{"tall", Identity(), -5, 5, 0, 1000},
		{"rotated", Rotate(0.4), -3, 7, 2, 4},
		{"flipped sheared", NewMatrix(1, 0, 0.5, -2, 0, 0), 0, 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestView(400, 300)
			v.SetTransform(tt.m)
			if !v.FitBounds(tt.minx, tt.maxx, tt.miny, tt.maxy) {
				t.Fatal("FitBounds rejected")
			}
			bb := NewRect(tt.minx, tt.miny, tt.maxx, tt.maxy).Transform(v.Transform())
			const tol = 1e-6
			if bb.MinX < -tol || bb.MinY < -tol || bb.MaxX > 400+tol || bb.MaxY > 300+tol {
				t.Errorf("fitted box %+v not inside screen", bb)
			}
			touchX := near(bb.MinX, 0, tol) && near(bb.MaxX, 400, tol)
			touchY := near(bb.MinY, 0, tol) && near(bb.MaxY, 300, tol)
			if !touchX && !touchY {
				t.Errorf("fitted box %+v is not tight", bb)
			}
		})
	}
}

func TestFitBoundsDegenerate(t *testing.T) {
	v := newTestView(400, 300)
	before := v.Transform()
	if v.FitBounds(1, 1, 0, 10) || v.FitBounds(0, 10, 5, -5) {
		t.Error("FitBounds with empty interval should be rejected")
	}
	empty := NewView()
	if empty.FitBounds(0, 1, 0, 1) {
		t.Error("FitBounds with empty screen should be rejected")
	}
	if v.Transform() != before {
		t.Error("rejected FitBounds changed transform")
	}
}

func TestSetView(t *testing.T) {
	v := newTestView(400, 400)
	want := v.ScreenToReal(Pt(150, 150))
	v.SetView(NewRect(100, 100, 200, 200))
	if got := v.Magnification(false); !near(got, 4, eps) {
		t.Errorf("Magnification = %v, want 4", got)
	}
	if got := v.RealToScreen(want); !nearPt(got, Pt(200, 200), eps) {
		t.Errorf("box center drawn at %v, want (200,200)", got)
	}
}

func TestPushPop(t *testing.T) {
	v := NewView()
	v.SetTransform(Translate(10, 0))
	v.PushAndNewTransform(Scale(2, 2))
	if got := v.RealToScreenXY(1, 1); !nearPt(got, Pt(12, 2), eps) {
		t.Errorf("inner transform maps (1,1) to %v, want (12,2)", got)
	}
	v.PushAndNewAxes(Pt(1, 0), Pt(0, 1), Pt(-1, 0))
	if v.StackDepth() != 2 {
		t.Errorf("StackDepth = %d, want 2", v.StackDepth())
	}
	v.PopAxes()
	v.PopAxes()
	if v.Transform() != Translate(10, 0) {
		t.Errorf("after pops transform = %+v", v.Transform())
	}
	if v.PopAxes() {
		t.Error("PopAxes on empty stack = true")
	}
}

func TestSpaceAndWrapWindow(t *testing.T) {
	v := NewView()
	v.WrapWindow(100, 50)
	if got := v.Space(); got != (Rect{MinX: -500, MaxX: 500, MinY: -250, MaxY: 250}) {
		t.Errorf("default space = %+v", got)
	}
	v.SetSpace(10, -10, 4, -4)
	if got := v.Space(); got != (Rect{MinX: -10, MaxX: 10, MinY: -4, MaxY: 4}) {
		t.Errorf("SetSpace not normalized: %+v", got)
	}
	v.WrapWindow(300, 300)
	if got := v.Space(); got.MaxX != 10 {
		t.Errorf("WrapWindow replaced an existing space: %+v", got)
	}
	v.SetTransform(Rotate(math.Pi / 4))
	ts := v.TransformedSpace()
	if ts.MinX > -10 || ts.MaxX < 10 || ts.Width() < 19 {
		t.Errorf("TransformedSpace = %+v", ts)
	}
	if !v.OnScreen(150, 150) || v.OnScreen(301, 0) {
		t.Error("OnScreen wrong")
	}
}
