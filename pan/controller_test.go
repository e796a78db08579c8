package pan

import (
	"sync"
	"testing"

	"github.com/laxkit/displayer"
)

func TestSetAndRead(t *testing.T) {
	c := New()
	c.SetWholeBox(100, -100, 0, 50)
	if got := c.WholeBox(AxisX); got != (Range{-100, 100}) {
		t.Errorf("whole x = %v", got)
	}
	c.SetCurrentPosition(AxisY, 40, 10)
	if s, e := c.CurrentPosition(AxisY); s != 10 || e != 40 {
		t.Errorf("current y = %d..%d", s, e)
	}
	c.SetCurrentPosition(3, 1, 2)
	if s, e := c.CurrentPosition(3); s != 0 || e != 0 {
		t.Error("bad axis accepted")
	}
}

func TestSuppression(t *testing.T) {
	c := New()
	var owner, other int
	c.Subscribe("owner", func(State) { owner++ })
	c.Subscribe("other", func(State) { other++ })

	c.SuppressNotificationsTo("owner")
	c.SetCurrentPosition(AxisX, 0, 10)
	c.ClearSuppression()
	c.SetCurrentPosition(AxisX, 5, 15)

	if owner != 1 || other != 2 {
		t.Errorf("owner notified %d times, other %d; want 1 and 2", owner, other)
	}

	c.SetCurrentPosition(AxisX, 5, 15)
	if other != 2 {
		t.Error("unchanged position notified")
	}
}

func TestUnsubscribe(t *testing.T) {
	c := New()
	n := 0
	stop := c.Subscribe(nil, func(State) { n++ })
	c.SetWholeBox(0, 1, 0, 1)
	stop()
	c.SetWholeBox(0, 2, 0, 2)
	if n != 1 {
		t.Errorf("notifications = %d, want 1", n)
	}
}

func TestReentrantNotificationDropped(t *testing.T) {
	c := New()
	calls := 0
	c.Subscribe("a", func(s State) {
		calls++
		c.SetCurrentPosition(AxisY, s.Current[0].Start, s.Current[0].End)
	})
	c.SetCurrentPosition(AxisX, 1, 2)
	if calls != 1 {
		t.Errorf("observer called %d times, want 1", calls)
	}
	if s, e := c.CurrentPosition(AxisY); s != 1 || e != 2 {
		t.Errorf("nested change not applied: %d..%d", s, e)
	}
	c.SetCurrentPosition(AxisX, 3, 4)
	if calls != 2 {
		t.Error("guard not released after notification")
	}
}

func TestShiftClamps(t *testing.T) {
	tests := []struct {
		name      string
		cur       Range
		d, moved  int64
		wantStart int64
	}{
		{"inside", Range{0, 10}, 5, 5, 5},
		{"hits end", Range{80, 95}, 20, 5, 85},
		{"hits start", Range{5, 15}, -20, -5, 0},
		{"already past end", Range{95, 110}, 5, 0, 95},
		{"back from past end", Range{95, 110}, -5, -5, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.SetWholeBox(0, 100, 0, 100)
			c.SetCurrentPosition(AxisX, tt.cur.Start, tt.cur.End)
			if got := c.Shift(AxisX, tt.d); got != tt.moved {
				t.Errorf("moved %d, want %d", got, tt.moved)
			}
			if s, _ := c.CurrentPosition(AxisX); s != tt.wantStart {
				t.Errorf("start = %d, want %d", s, tt.wantStart)
			}
		})
	}
}

func TestCenterAndZoom(t *testing.T) {
	c := New()
	c.SetWholeBox(0, 1000, 0, 1000)
	c.SetCurrentPosition(AxisX, 0, 100)
	c.Center(AxisX, 500)
	if s, e := c.CurrentPosition(AxisX); s != 450 || e != 550 {
		t.Errorf("centered = %d..%d", s, e)
	}

	c.SetSelectionBounds(AxisX, 50, 150)
	if !c.Zoom(AxisX, 2) {
		t.Fatal("zoom rejected")
	}
	if s, e := c.CurrentPosition(AxisX); e-s != 150 || (s+e)/2 != 500 {
		t.Errorf("zoomed = %d..%d, want size 150 about 500", s, e)
	}
	if c.Zoom(AxisX, 0) {
		t.Error("zero factor accepted")
	}
}

func TestConcurrentUse(t *testing.T) {
	c := New()
	c.SetWholeBox(-1000, 1000, -1000, 1000)
	c.Subscribe("x", func(State) {})
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				c.SetCurrentPosition(AxisX, int64(i), int64(i+g+1))
				c.Shift(AxisY, 1)
				_ = c.State()
			}
		}(g)
	}
	wg.Wait()
}

func TestDrivesView(t *testing.T) {
	c := New()
	v := displayer.NewView()
	v.WrapWindow(400, 300)
	owner := &struct{ name string }{"view"}
	v.UsePanController(c, owner)
	c.Subscribe(owner, func(State) { v.SyncFromPanController() })

	var scroller []State
	c.Subscribe("scroller", func(s State) { scroller = append(scroller, s) })

	v.ShiftScreen(10, 0)
	if len(scroller) == 0 {
		t.Fatal("scroller not told about a view change")
	}
	if got := v.Transform().C; got != 10 {
		t.Errorf("view echoed its own change: C = %g", got)
	}

	if moved := c.Shift(AxisX, 20); moved != 20 {
		t.Fatalf("shift moved %d", moved)
	}
	if got := v.Transform().C; got != -10 {
		t.Errorf("view C after scroll = %g, want -10", got)
	}
	if s, e := c.CurrentPosition(AxisX); s != 0 || e != 400 {
		t.Errorf("view did not re-export: %d..%d", s, e)
	}
}
