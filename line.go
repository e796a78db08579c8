package displayer

import "math"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// CapButt ends the line flat at its endpoint.
	CapButt LineCap = iota
	// CapRound ends the line with a half circle.
	CapRound
	// CapProjecting extends the line half its width past the endpoint.
	CapProjecting
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	// JoinCurveMiter is a miter join whose over-limit corners are rounded
	// instead of beveled.
	JoinCurveMiter
	JoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillNonZero uses the non-zero winding rule.
	FillNonZero FillRule = iota
	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd
)

// LineStyle is the stroke state handed to backends. Width and dash lengths
// are in screen pixels.
type LineStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       *Dash
}

// DefaultLineStyle returns a one pixel butt-capped mitered solid line.
func DefaultLineStyle() LineStyle {
	return LineStyle{Width: 1, Cap: CapButt, Join: JoinMiter, MiterLimit: 10}
}

// Dash defines a dash pattern for stroking.
// Array holds alternating dash and gap lengths. An odd number of entries
// is used twice over, so [5] behaves like [5, 5].
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are made positive.
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	normalized := make([]float64, 0, len(lengths))
	positive := false
	for _, l := range lengths {
		l = math.Abs(l)
		positive = positive || l > 0
		normalized = append(normalized, l)
	}
	if !positive {
		return nil
	}
	return &Dash{Array: normalized}
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	return d != nil && d.PatternLength() > 0
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// Scale returns a new Dash with all lengths multiplied by factor.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}
	return &Dash{Array: scaled, Offset: d.Offset * factor}
}

func (d *Dash) effectiveArray() []float64 {
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	return append(append(make([]float64, 0, 2*len(d.Array)), d.Array...), d.Array...)
}

// Apply splits a polyline into its "on" pieces. A solid pattern returns the
// polyline unchanged. Closed input produces open pieces.
func (d *Dash) Apply(pl Polyline) []Polyline {
	if !d.IsDashed() || len(pl.Points) < 2 {
		return []Polyline{pl}
	}
	pts := pl.Points
	if pl.Closed {
		pts = append(append(make([]Point, 0, len(pts)+1), pts...), pts[0])
	}

	arr := d.effectiveArray()
	total := d.PatternLength()
	pos := math.Mod(d.Offset, total)
	if pos < 0 {
		pos += total
	}
	idx := 0
	for pos >= arr[idx] {
		pos -= arr[idx]
		idx = (idx + 1) % len(arr)
	}
	remain := arr[idx] - pos
	on := idx%2 == 0

	var out []Polyline
	var cur []Point
	if on {
		cur = []Point{pts[0]}
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := a.Distance(b)
		t := 0.0
		for segLen-t > remain {
			t += remain
			p := a.Lerp(b, t/segLen)
			if on {
				cur = append(cur, p)
				out = append(out, Polyline{Points: cur})
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(arr)
			remain = arr[idx]
		}
		remain -= segLen - t
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, Polyline{Points: cur})
	}
	return out
}
