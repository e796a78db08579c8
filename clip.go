package displayer

// Clip restricts drawing to the polygon through points, given in drawing
// coordinates. With intersect the polygon is intersected with the current
// clip; otherwise it replaces it. Fewer than three points clear the clip
// when not intersecting and do nothing otherwise.
func (d *Displayer) Clip(points []Point, intersect bool) {
	if len(points) < 3 {
		if !intersect {
			d.backend.ClearClip()
		}
		return
	}
	p := NewPath()
	for i, pt := range points {
		s := d.toScreen(pt)
		if i == 0 {
			p.MoveTo(s.X, s.Y)
		} else {
			p.LineTo(s.X, s.Y)
		}
	}
	p.Close()
	d.check("clip", d.backend.Clip(p, d.rule, intersect))
}

// ClipPath clips to the current path, which is then cleared.
func (d *Displayer) ClipPath(intersect bool) {
	if d.path.Len() == 0 {
		return
	}
	d.check("clip", d.backend.Clip(d.path, d.rule, intersect))
	d.path.Clear()
}

// PushClip saves the clip region. With startFresh drawing is unclipped
// until the matching PopClip.
func (d *Displayer) PushClip(startFresh bool) { d.backend.PushClip(startFresh) }

// PopClip restores the clip region saved by the last PushClip.
func (d *Displayer) PopClip() { d.backend.PopClip() }

// ClearClip removes the clip region.
func (d *Displayer) ClearClip() { d.backend.ClearClip() }
