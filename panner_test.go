package displayer

import (
	"math"
	"testing"
)

// recordingPan stores whatever the view writes to it.
type recordingPan struct {
	whole      [4]int64
	selBounds  [3][2]int64
	cur        [3][2]int64
	suppressed any
	writes     int
	clears     int
}

func (p *recordingPan) SetWholeBox(minx, maxx, miny, maxy int64) {
	p.whole = [4]int64{minx, maxx, miny, maxy}
	p.writes++
}

func (p *recordingPan) SetSelectionBounds(axis int, min, max int64) {
	p.selBounds[axis] = [2]int64{min, max}
}

func (p *recordingPan) SetCurrentPosition(axis int, start, end int64) {
	p.cur[axis] = [2]int64{start, end}
}

func (p *recordingPan) CurrentPosition(axis int) (int64, int64) {
	return p.cur[axis][0], p.cur[axis][1]
}

func (p *recordingPan) SuppressNotificationsTo(owner any) { p.suppressed = owner }

func (p *recordingPan) ClearSuppression() {
	p.suppressed = nil
	p.clears++
}

func newPannedView(m Matrix) (*View, *recordingPan) {
	v := NewView()
	v.WrapWindow(400, 300)
	v.SetSpace(-1000, 1000, -800, 800)
	v.SetTransform(m)
	pan := &recordingPan{}
	v.UsePanController(pan, "window")
	return v, pan
}

func TestSyncToPanController(t *testing.T) {
	v, pan := newPannedView(Translate(200, 150))
	if pan.whole != [4]int64{-800, 1200, -650, 950} {
		t.Errorf("whole box = %v", pan.whole)
	}
	if pan.selBounds[AxisX] != [2]int64{1, 2000} || pan.selBounds[AxisY] != [2]int64{1, 2000} {
		t.Errorf("selection bounds = %v", pan.selBounds)
	}
	if pan.cur[AxisX] != [2]int64{0, 400} || pan.cur[AxisY] != [2]int64{0, 300} {
		t.Errorf("current position = %v", pan.cur)
	}
	if pan.suppressed != nil || pan.clears == 0 {
		t.Errorf("suppression not cleared: %v, %d clears", pan.suppressed, pan.clears)
	}

	writes := pan.writes
	old := v.SetUpdates(false)
	v.ShiftScreen(10, 10)
	v.Zoom(2)
	if pan.writes != writes {
		t.Error("pan controller written while updates were off")
	}
	v.SetUpdates(old)
	v.SyncToPanController()
	if pan.writes != writes+1 {
		t.Errorf("writes = %d, want %d", pan.writes, writes+1)
	}
}

func TestSyncSuppressesOwner(t *testing.T) {
	v, _ := newPannedView(Identity())
	seen := &suppressSpy{}
	v.UsePanController(seen, "owner-token")
	if seen.during != "owner-token" {
		t.Errorf("writes happened with suppression %v, want owner-token", seen.during)
	}
}

type suppressSpy struct {
	recordingPan
	during any
}

func (s *suppressSpy) SetWholeBox(minx, maxx, miny, maxy int64) {
	s.during = s.suppressed
	s.recordingPan.SetWholeBox(minx, maxx, miny, maxy)
}

func TestPanRoundTripNoDrift(t *testing.T) {
	transforms := []Matrix{
		Translate(200, 150),
		NewMatrix(2, 0, 0, -2, 200, 150),
		Rotate(0.6).Multiply(Scale(0.5, 0.5)).Multiply(Translate(30, -40)),
		Shear(0.3, 0).Multiply(Scale(1.5, 1)),
	}
	for _, m := range transforms {
		v, _ := newPannedView(m)
		before := v.Transform()
		if !v.SyncFromPanController() {
			t.Fatalf("SyncFromPanController rejected for %+v", m)
		}
		if !v.Transform().Near(before, 1e-9*math.Max(1, math.Abs(before.C)+math.Abs(before.F))) {
			t.Errorf("no-op cycle drifted: %+v -> %+v", before, v.Transform())
		}
	}
}

func TestPanRoundTripBoundedDrift(t *testing.T) {
	v, _ := newPannedView(NewMatrix(1, 0, 0, -1, 200, 150))
	start := v.Transform()
	center := Pt(200, 150)
	for i := 0; i < 1000; i++ {
		f := 1.05
		if i%2 == 1 {
			f = 1 / 1.05
		}
		v.ZoomAt(f, center)
		v.SyncFromPanController()
	}
	if !v.Transform().Near(start, 1e-6*300) {
		t.Errorf("drift after 1000 cycles: %+v -> %+v", start, v.Transform())
	}
}

func TestSyncFromPanScroll(t *testing.T) {
	v, pan := newPannedView(Translate(200, 150))
	pan.SetCurrentPosition(AxisX, 10, 410)
	pan.SetCurrentPosition(AxisY, -20, 280)
	if !v.SyncFromPanController() {
		t.Fatal("SyncFromPanController rejected a scroll")
	}
	if got := v.Transform().Origin(); !nearPt(got, Pt(190, 170), 1e-9) {
		t.Errorf("origin after scroll = %v, want (190,170)", got)
	}
	if pan.cur[AxisX] != [2]int64{0, 400} {
		t.Errorf("current position not re-exported: %v", pan.cur[AxisX])
	}
}

func TestSyncFromPanDegenerate(t *testing.T) {
	v, pan := newPannedView(Translate(5, 5))
	before := v.Transform()
	pan.SetCurrentPosition(AxisX, 100, 100)
	if v.SyncFromPanController() {
		t.Error("degenerate selection accepted")
	}
	if v.Transform() != before {
		t.Error("degenerate selection changed transform")
	}

	empty := NewView()
	if empty.SyncFromPanController() {
		t.Error("sync without controller = true")
	}
}

func TestNoShearKeepsHandedness(t *testing.T) {
	transforms := []Matrix{
		NewMatrix(1, 0, 0, -1, 200, 150),
		Rotate(1.1).Multiply(Scale(2, 2)),
		Rotate(-0.4).Multiply(Scale(1, -1)),
	}
	selections := [][4]int64{
		{0, 800, 0, 300},
		{-50, 350, 20, 620},
		{100, 180, 100, 300},
	}
	for _, m := range transforms {
		for _, sel := range selections {
			v, pan := newPannedView(m)
			v.SetNoShear(true)
			wasRight := v.IsRightHanded()
			pan.SetCurrentPosition(AxisX, sel[0], sel[1])
			pan.SetCurrentPosition(AxisY, sel[2], sel[3])
			if !v.SyncFromPanController() {
				t.Fatalf("sync rejected for %v", sel)
			}
			got := v.Transform()
			if got.IsRightHanded() != wasRight {
				t.Errorf("handedness flipped for %+v with selection %v", m, sel)
			}
			if x, y := got.XAxis(), got.YAxis(); !near(x.Length(), y.Length(), 1e-9) || math.Abs(x.Dot(y)) > 1e-9*x.LengthSquared() {
				t.Errorf("axes not orthogonal and equal: x=%v y=%v", x, y)
			}
		}
	}
}
