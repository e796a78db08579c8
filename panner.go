package displayer

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Pan controller axes.
const (
	AxisX = 1
	AxisY = 2
)

// PanController is the integer, axis aligned scroll model a View keeps in
// step with its transform. The whole box is the screen bounding box of the
// transformed workspace and the current position on each axis is the part
// of it shown in the screen rectangle.
//
// Implementations notify their observers of changes, except the observer
// named in SuppressNotificationsTo.
type PanController interface {
	SetWholeBox(minx, maxx, miny, maxy int64)
	SetSelectionBounds(axis int, min, max int64)
	SetCurrentPosition(axis int, start, end int64)
	CurrentPosition(axis int) (start, end int64)
	SuppressNotificationsTo(owner any)
	ClearSuppression()
}

// UsePanController attaches pc to the view and syncs it. owner identifies
// the observer that should not hear about changes made by the view. A nil
// pc detaches the current controller.
func (v *View) UsePanController(pc PanController, owner any) {
	v.pan = pc
	v.panOwner = owner
	v.SyncToPanController()
}

// PanController returns the attached controller, or nil.
func (v *View) PanController() PanController { return v.pan }

// SyncToPanController writes the view state to the pan controller. It does
// nothing when updates are off or no controller is attached.
func (v *View) SyncToPanController() {
	if !v.updates || v.pan == nil {
		return
	}
	ws := v.TransformedSpace()
	sel := int64(max(ws.Width(), ws.Height()))

	v.pan.SuppressNotificationsTo(v.panOwner)
	defer v.pan.ClearSuppression()

	v.pan.SetWholeBox(int64(ws.MinX), int64(ws.MaxX), int64(ws.MinY), int64(ws.MaxY))
	v.pan.SetSelectionBounds(AxisX, 1, sel)
	v.pan.SetSelectionBounds(AxisY, 1, sel)
	v.pan.SetCurrentPosition(AxisX, int64(v.screen.MinX), int64(v.screen.MaxX))
	v.pan.SetCurrentPosition(AxisY, int64(v.screen.MinY), int64(v.screen.MaxY))
}

// SyncFromPanController reads the pan controller's current position and
// installs the transform that shows that part of the transformed workspace
// in the screen rectangle. It returns false, keeping the prior transform,
// when there is no controller or the selection is degenerate.
//
// With NoShear set the result keeps the solved x axis and derives a y axis
// of equal length at right angles, with the handedness of the transform in
// use before the sync.
func (v *View) SyncFromPanController() bool {
	if v.pan == nil {
		return false
	}
	xs, xe := v.pan.CurrentPosition(AxisX)
	ys, ye := v.pan.CurrentPosition(AxisY)

	sel := [3]Point{
		{float64(xs), float64(ys)},
		{float64(xe), float64(ys)},
		{float64(xe), float64(ye)},
	}
	var under [3]Point
	for i, s := range sel {
		under[i] = v.ScreenToReal(s)
	}
	sc := v.screen
	target := [3]Point{
		{float64(sc.MinX), float64(sc.MinY)},
		{float64(sc.MaxX), float64(sc.MinY)},
		{float64(sc.MaxX), float64(sc.MaxY)},
	}

	m, ok := solveAffine(under, target)
	if !ok {
		v.logger().Debug("displayer: pan controller selection is degenerate, keeping transform",
			"x", [2]int64{xs, xe}, "y", [2]int64{ys, ye})
		return false
	}

	if v.noShear {
		if v.ctm.IsRightHanded() {
			m.B, m.E = -m.D, m.A
		} else {
			m.B, m.E = m.D, -m.A
		}
		center := v.ScreenToReal(Pt(float64(xs+xe)/2, float64(ys+ye)/2))
		m = pivoted(m, center, sc.Center())
	}
	return v.SetTransform(m)
}

// solveAffine finds the matrix taking each src point to the matching dst
// point. It reports false when the src points are collinear or nearly so.
// The src points are centered and scaled to unit size before solving so
// the conditioning check only depends on the shape of the triangle.
func solveAffine(src, dst [3]Point) (Matrix, bool) {
	c := src[0].Add(src[1]).Add(src[2]).Div(3)
	s := 0.0
	for _, p := range src {
		s = math.Max(s, p.Distance(c))
	}
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return Matrix{}, false
	}

	a := mat.NewDense(3, 3, nil)
	b := mat.NewDense(3, 2, nil)
	for i := range src {
		p := src[i].Sub(c).Div(s)
		a.Set(i, 0, p.X)
		a.Set(i, 1, p.Y)
		a.Set(i, 2, 1)
		b.Set(i, 0, dst[i].X)
		b.Set(i, 1, dst[i].Y)
	}
	if mat.Det(a) == 0 || mat.Cond(a, 1) > 1e10 {
		return Matrix{}, false
	}

	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return Matrix{}, false
	}
	unit := Matrix{
		A: x.At(0, 0), B: x.At(1, 0), C: x.At(2, 0),
		D: x.At(0, 1), E: x.At(1, 1), F: x.At(2, 1),
	}
	m := unit.Multiply(Scale(1/s, 1/s)).Multiply(Translate(-c.X, -c.Y))
	if !finite(m) {
		return Matrix{}, false
	}
	return m, true
}
