package displayer

// Align positions text relative to its anchor point. Combine one
// horizontal and one vertical flag; the zero value is Left|Baseline.
type Align uint8

const (
	AlignLeft     Align = 0
	AlignHCenter  Align = 1 << 0
	AlignRight    Align = 1 << 1
	AlignBaseline Align = 0
	AlignTop      Align = 1 << 2
	AlignVCenter  Align = 1 << 3
	AlignBottom   Align = 1 << 4

	AlignCenter = AlignHCenter | AlignVCenter
)

// TextExtent measures s at the current font size, in screen pixels.
func (d *Displayer) TextExtent(s string) TextMetrics {
	if s == "" {
		return TextMetrics{}
	}
	return d.backend.TextExtent(s, d.fontSize)
}

// TextOut draws s anchored at p according to align and returns the
// advance width in pixels. Text is never transformed by the view, only
// its anchor point.
func (d *Displayer) TextOut(p Point, s string, align Align) float64 {
	if s == "" {
		return 0
	}
	m := d.backend.TextExtent(s, d.fontSize)
	o := textOrigin(d.toScreen(p), m, align)
	d.check("text", d.backend.TextOut(s, o.X, o.Y, d.fontSize))
	return m.Width
}

// textOrigin returns the baseline origin for text with metrics m anchored
// at s.
func textOrigin(s Point, m TextMetrics, align Align) Point {
	switch {
	case align&AlignHCenter != 0:
		s.X -= m.Width / 2
	case align&AlignRight != 0:
		s.X -= m.Width
	}
	switch {
	case align&AlignTop != 0:
		s.Y += m.Ascent
	case align&AlignVCenter != 0:
		s.Y += (m.Ascent - m.Descent) / 2
	case align&AlignBottom != 0:
		s.Y -= m.Descent
	}
	return s
}
