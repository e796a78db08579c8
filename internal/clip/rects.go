package clip

import (
	"image"
	"math"

	"github.com/laxkit/displayer"
)

// Rects is a stack of rectangular clip regions in screen pixels, for
// backends that can only clip to rectangles. The zero value is unclipped.
type Rects struct {
	on    bool
	r     image.Rectangle
	saved []rectsState
}

type rectsState struct {
	on bool
	r  image.Rectangle
}

// Set clips to r, or to its intersection with the current region.
func (c *Rects) Set(r image.Rectangle, intersect bool) {
	if intersect && c.on {
		r = r.Intersect(c.r)
	}
	c.on, c.r = true, r
}

// Clear removes the clip region. Saved regions are kept.
func (c *Rects) Clear() { c.on, c.r = false, image.Rectangle{} }

// Push saves the region. With startFresh the region is then cleared.
func (c *Rects) Push(startFresh bool) {
	c.saved = append(c.saved, rectsState{c.on, c.r})
	if startFresh {
		c.Clear()
	}
}

// Pop restores the last saved region and reports whether there was one.
func (c *Rects) Pop() bool {
	n := len(c.saved)
	if n == 0 {
		return false
	}
	s := c.saved[n-1]
	c.saved = c.saved[:n-1]
	c.on, c.r = s.on, s.r
	return true
}

// Active reports whether a region is set.
func (c *Rects) Active() bool { return c.on }

// Bounds returns the drawable part of a w by h surface and whether any
// of it is left.
func (c *Rects) Bounds(w, h int) (image.Rectangle, bool) {
	r := image.Rect(0, 0, w, h)
	if c.on {
		r = r.Intersect(c.r)
	}
	return r, !r.Empty()
}

// PixelBounds rounds r outwards to whole pixels.
func PixelBounds(r displayer.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.MinX)), int(math.Floor(r.MinY)),
		int(math.Ceil(r.MaxX)), int(math.Ceil(r.MaxY)),
	)
}
