package clip

import "image"

// Stack is the clip state of a w by h surface: an optional current mask
// and the masks saved by Push. A nil mask means unclipped.
//
// Masks are never modified once installed, so saved entries share them.
type Stack struct {
	w, h  int
	cur   *image.Alpha
	box   image.Rectangle
	saved []entry
}

type entry struct {
	mask *image.Alpha
	box  image.Rectangle
}

// NewStack returns an unclipped stack for a w by h surface.
func NewStack(w, h int) *Stack {
	s := &Stack{}
	s.Resize(w, h)
	return s
}

// Resize drops every mask and sets the surface size.
func (s *Stack) Resize(w, h int) {
	s.w, s.h = w, h
	s.cur = nil
	s.box = image.Rect(0, 0, w, h)
	s.saved = s.saved[:0]
}

// Set installs m as the clip, or intersects it with the current clip. m
// must be the size of the surface.
func (s *Stack) Set(m *image.Alpha, intersect bool) {
	if intersect && s.cur != nil {
		m = Intersect(s.cur, m)
	}
	s.cur = m
	s.box = Bounds(m)
}

// Clear removes the current clip.
func (s *Stack) Clear() {
	s.cur = nil
	s.box = image.Rect(0, 0, s.w, s.h)
}

// Push saves the current clip. With startFresh the clip is then cleared.
func (s *Stack) Push(startFresh bool) {
	s.saved = append(s.saved, entry{s.cur, s.box})
	if startFresh {
		s.Clear()
	}
}

// Pop restores the clip saved by the last Push. It reports false, doing
// nothing, when nothing was pushed.
func (s *Stack) Pop() bool {
	if len(s.saved) == 0 {
		return false
	}
	e := s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	s.cur, s.box = e.mask, e.box
	return true
}

// Depth returns the number of saved clips.
func (s *Stack) Depth() int { return len(s.saved) }

// Mask returns the current clip mask, or nil when unclipped.
func (s *Stack) Mask() *image.Alpha { return s.cur }

// Bounds returns the box outside which nothing is visible.
func (s *Stack) Bounds() image.Rectangle { return s.box }

// Coverage returns the clip coverage of pixel (x, y).
func (s *Stack) Coverage(x, y int) byte {
	if !(image.Point{x, y}).In(s.box) {
		return 0
	}
	if s.cur == nil {
		return 255
	}
	return s.cur.Pix[y*s.cur.Stride+x]
}
