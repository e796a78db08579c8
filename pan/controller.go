// Package pan provides a scroll and zoom controller that a displayer.View
// can keep in step with, and that scrollers and other widgets can observe.
package pan

import (
	"math"
	"sync"

	"github.com/laxkit/displayer"
)

// Axis numbers, matching displayer.AxisX and displayer.AxisY.
const (
	AxisX = displayer.AxisX
	AxisY = displayer.AxisY
)

// Range is a closed interval of integer positions.
type Range struct {
	Start, End int64
}

// Size returns End - Start.
func (r Range) Size() int64 { return r.End - r.Start }

// State is a snapshot of the controller. Index arrays with axis-1.
type State struct {
	Whole   [2]Range
	Current [2]Range
	// MinSelection and MaxSelection bound the size of Current. Zero means
	// unbounded.
	MinSelection [2]int64
	MaxSelection [2]int64
}

// Observer is told the new state after every change it did not make.
type Observer func(State)

type subscriber struct {
	id    uint64
	owner any
	fn    Observer
}

// Controller holds a whole box, a current selection inside it, and bounds
// on the selection size, for two axes. It notifies observers of changes,
// except the owner named by SuppressNotificationsTo.
//
// Controller is safe for concurrent use. Observers are called without the
// lock held. Changes made while observers are being notified, including
// changes made by the observers themselves, are applied but not announced.
// Owners are compared with ==, so they must be comparable values such as
// pointers.
type Controller struct {
	mu sync.Mutex

	whole  [2]Range
	cur    [2]Range
	selMin [2]int64
	selMax [2]int64

	subs       []subscriber
	nextID     uint64
	suppressed any
	notifying  bool
}

var _ displayer.PanController = (*Controller)(nil)

// New returns a controller with empty ranges.
func New() *Controller {
	return &Controller{}
}

func axisIndex(axis int) (int, bool) {
	if axis != AxisX && axis != AxisY {
		return 0, false
	}
	return axis - 1, true
}

// Subscribe adds an observer owned by owner and returns a function that
// removes it.
func (c *Controller) Subscribe(owner any, fn Observer) (unsubscribe func()) {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber{id: id, owner: owner, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// SuppressNotificationsTo stops notifications to owner until
// ClearSuppression.
func (c *Controller) SuppressNotificationsTo(owner any) {
	c.mu.Lock()
	c.suppressed = owner
	c.mu.Unlock()
}

// ClearSuppression lets every observer be notified again.
func (c *Controller) ClearSuppression() {
	c.mu.Lock()
	c.suppressed = nil
	c.mu.Unlock()
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	return State{Whole: c.whole, Current: c.cur, MinSelection: c.selMin, MaxSelection: c.selMax}
}

// update runs fn under the lock and then notifies observers if fn reports
// a change.
func (c *Controller) update(fn func() bool) {
	c.mu.Lock()
	if !fn() {
		c.mu.Unlock()
		return
	}
	if c.notifying {
		c.mu.Unlock()
		displayer.Logger().Debug("pan: nested notification dropped")
		return
	}
	c.notifying = true
	st := c.stateLocked()
	targets := make([]Observer, 0, len(c.subs))
	for _, s := range c.subs {
		if c.suppressed != nil && s.owner == c.suppressed {
			continue
		}
		targets = append(targets, s.fn)
	}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.notifying = false
		c.mu.Unlock()
	}()
	for _, fn := range targets {
		fn(st)
	}
}

// SetWholeBox sets the full scrollable extent of both axes.
func (c *Controller) SetWholeBox(minx, maxx, miny, maxy int64) {
	if minx > maxx {
		minx, maxx = maxx, minx
	}
	if miny > maxy {
		miny, maxy = maxy, miny
	}
	c.update(func() bool {
		w := [2]Range{{minx, maxx}, {miny, maxy}}
		if w == c.whole {
			return false
		}
		c.whole = w
		return true
	})
}

// WholeBox returns the extent of axis.
func (c *Controller) WholeBox(axis int) Range {
	i, ok := axisIndex(axis)
	if !ok {
		return Range{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.whole[i]
}

// SetSelectionBounds limits the size of the current selection on axis.
// Zero or negative bounds are unbounded.
func (c *Controller) SetSelectionBounds(axis int, lo, hi int64) {
	i, ok := axisIndex(axis)
	if !ok {
		return
	}
	if hi > 0 && lo > hi {
		lo, hi = hi, lo
	}
	c.update(func() bool {
		if c.selMin[i] == lo && c.selMax[i] == hi {
			return false
		}
		c.selMin[i], c.selMax[i] = lo, hi
		return true
	})
}

// SetCurrentPosition sets the selection on axis as given. The caller is
// trusted: no clamping is done, so a view can show area outside the whole
// box.
func (c *Controller) SetCurrentPosition(axis int, start, end int64) {
	i, ok := axisIndex(axis)
	if !ok {
		return
	}
	if start > end {
		start, end = end, start
	}
	c.update(func() bool {
		r := Range{start, end}
		if c.cur[i] == r {
			return false
		}
		c.cur[i] = r
		return true
	})
}

// CurrentPosition returns the selection on axis.
func (c *Controller) CurrentPosition(axis int) (start, end int64) {
	i, ok := axisIndex(axis)
	if !ok {
		return 0, 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur[i].Start, c.cur[i].End
}

// Shift moves the selection on axis by d, stopping at the edge of the
// whole box, and returns the distance actually moved. A selection already
// past an edge is not pushed further out.
func (c *Controller) Shift(axis int, d int64) int64 {
	i, ok := axisIndex(axis)
	if !ok || d == 0 {
		return 0
	}
	var moved int64
	c.update(func() bool {
		cur, w := c.cur[i], c.whole[i]
		switch {
		case d > 0 && cur.End+d > w.End:
			d = max(0, w.End-cur.End)
		case d < 0 && cur.Start+d < w.Start:
			d = min(0, w.Start-cur.Start)
		}
		if d == 0 {
			return false
		}
		c.cur[i] = Range{cur.Start + d, cur.End + d}
		moved = d
		return true
	})
	return moved
}

// Center moves the selection on axis so that its middle is at pos,
// keeping its size. The result is clamped like Shift.
func (c *Controller) Center(axis int, pos int64) int64 {
	start, end := c.CurrentPosition(axis)
	return c.Shift(axis, pos-(start+end)/2)
}

// Zoom scales the size of the selection on axis by factor about its
// middle, within the selection bounds. A factor above 1 shows more of the
// whole box. It reports whether the selection changed.
func (c *Controller) Zoom(axis int, factor float64) bool {
	i, ok := axisIndex(axis)
	if !ok || factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return false
	}
	changed := false
	c.update(func() bool {
		cur := c.cur[i]
		size := int64(math.Round(float64(cur.Size()) * factor))
		if c.selMin[i] > 0 && size < c.selMin[i] {
			size = c.selMin[i]
		}
		if c.selMax[i] > 0 && size > c.selMax[i] {
			size = c.selMax[i]
		}
		mid := (cur.Start + cur.End) / 2
		r := Range{mid - size/2, mid - size/2 + size}
		if r == cur {
			return false
		}
		c.cur[i] = r
		changed = true
		return true
	})
	return changed
}
