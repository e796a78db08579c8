package displayer

import (
	"log/slog"
	"math"
)

// Default zoom limits on the screen length of a unit real axis.
const (
	DefaultLowerBound = 1e-5
	DefaultUpperBound = 1e3
)

// View maps between real space and screen space. It owns the current
// transform and its cached inverse, a stack of saved transforms, the
// screen rectangle and the workspace bounds, and keeps an optional pan
// controller in step with them.
//
// A View is not safe for concurrent use.
type View struct {
	ctm   Matrix
	ictm  Matrix
	stack []Matrix

	screen IntRect
	space  Rect

	lowerBound float64
	upperBound float64

	pan      PanController
	panOwner any
	updates  bool

	noShear bool
	degrees bool

	log *slog.Logger
}

// NewView returns a view with the identity transform, no screen area and
// no workspace.
func NewView() *View {
	return &View{
		ctm:        Identity(),
		ictm:       Identity(),
		lowerBound: DefaultLowerBound,
		upperBound: DefaultUpperBound,
		updates:    true,
	}
}

func (v *View) logger() *slog.Logger {
	if v.log != nil {
		return v.log
	}
	return Logger()
}

// RealToScreen maps a real point to screen coordinates.
func (v *View) RealToScreen(p Point) Point {
	return v.ctm.TransformPoint(p)
}

// RealToScreenXY is RealToScreen for separate coordinates.
func (v *View) RealToScreenXY(x, y float64) Point {
	return v.ctm.TransformPoint(Pt(x, y))
}

// ScreenToReal maps a screen point to real coordinates.
func (v *View) ScreenToReal(p Point) Point {
	return v.ictm.TransformPoint(p)
}

// ScreenToRealXY is ScreenToReal for separate coordinates.
func (v *View) ScreenToRealXY(x, y float64) Point {
	return v.ictm.TransformPoint(Pt(x, y))
}

// Transform returns the current real to screen matrix.
func (v *View) Transform() Matrix { return v.ctm }

// InverseTransform returns the current screen to real matrix.
func (v *View) InverseTransform() Matrix { return v.ictm }

// IsRightHanded reports whether the current transform is mathematically
// right handed.
func (v *View) IsRightHanded() bool { return v.ctm.IsRightHanded() }

// SetTransform installs m as the real to screen transform and syncs the
// pan controller. A singular m is rejected and false is returned.
func (v *View) SetTransform(m Matrix) bool {
	if !v.install(m) {
		return false
	}
	v.SyncToPanController()
	return true
}

// SetTransformPS is SetTransform with postscript ordered coefficients.
func (v *View) SetTransformPS(a, b, c, d, tx, ty float64) bool {
	return v.SetTransform(NewMatrix(a, b, c, d, tx, ty))
}

// install replaces ctm and ictm without syncing.
func (v *View) install(m Matrix) bool {
	inv, ok := m.Inverse()
	if !ok || !finite(m) {
		v.logger().Debug("displayer: singular transform rejected", "matrix", m)
		return false
	}
	v.ctm = m
	v.ictm = inv
	return true
}

func finite(m Matrix) bool {
	for _, f := range [6]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// PushAxes saves the current transform on the stack.
func (v *View) PushAxes() {
	v.stack = append(v.stack, v.ctm)
}

// PopAxes restores the most recently pushed transform.
// It returns false if the stack is empty.
func (v *View) PopAxes() bool {
	if len(v.stack) == 0 {
		return false
	}
	m := v.stack[len(v.stack)-1]
	v.stack = v.stack[:len(v.stack)-1]
	v.SetTransform(m)
	return true
}

// StackDepth returns the number of saved transforms.
func (v *View) StackDepth() int { return len(v.stack) }

// PushAndNewTransform saves the current transform, then makes m the
// transform from a new inner space to the old real space. The new
// transform is ctm*m. If m is singular the push still happens so that
// a matching PopAxes stays balanced.
func (v *View) PushAndNewTransform(m Matrix) {
	v.PushAxes()
	v.SetTransform(v.ctm.Multiply(m))
}

// PushAndNewAxes is PushAndNewTransform for the axes origin, x and y,
// given in current real coordinates.
func (v *View) PushAndNewAxes(origin, x, y Point) {
	v.PushAndNewTransform(Axes(origin, x, y))
}

// SetZoomBounds sets the smallest and largest allowed screen length of a
// unit real axis. Non-positive or inverted values are ignored.
func (v *View) SetZoomBounds(lower, upper float64) {
	if lower <= 0 || upper <= lower {
		return
	}
	v.lowerBound = lower
	v.upperBound = upper
}

// ZoomBounds returns the zoom limits.
func (v *View) ZoomBounds() (lower, upper float64) {
	return v.lowerBound, v.upperBound
}

// SetScreen sets the screen rectangle in device pixels and syncs the pan
// controller. The bounds are swapped as needed so min <= max.
func (v *View) SetScreen(minx, maxx, miny, maxy int) {
	if minx > maxx {
		minx, maxx = maxx, minx
	}
	if miny > maxy {
		miny, maxy = maxy, miny
	}
	v.screen = IntRect{MinX: minx, MaxX: maxx, MinY: miny, MaxY: maxy}
	v.SyncToPanController()
}

// Screen returns the screen rectangle.
func (v *View) Screen() IntRect { return v.screen }

// WrapWindow sets the screen rectangle to a w by h window at the origin.
// A view without a workspace gets one five times the window size in each
// direction about the real origin.
func (v *View) WrapWindow(w, h int) {
	v.screen = IntRect{MinX: 0, MaxX: w, MinY: 0, MaxY: h}
	if v.space.Empty() {
		v.space = Rect{MinX: -5 * float64(w), MaxX: 5 * float64(w), MinY: -5 * float64(h), MaxY: 5 * float64(h)}
	}
	v.SyncToPanController()
}

// SetSpace sets the real workspace bounds, swapping as needed, and syncs
// the pan controller.
func (v *View) SetSpace(minx, maxx, miny, maxy float64) {
	if minx > maxx {
		minx, maxx = maxx, minx
	}
	if miny > maxy {
		miny, maxy = maxy, miny
	}
	v.space = Rect{MinX: minx, MaxX: maxx, MinY: miny, MaxY: maxy}
	v.SyncToPanController()
}

// Space returns the real workspace bounds.
func (v *View) Space() Rect { return v.space }

// TransformedSpace returns the screen bounding box of the transformed
// workspace corners, rounded outward.
func (v *View) TransformedSpace() IntRect {
	bb := v.space.Transform(v.ctm)
	return IntRect{
		MinX: int(math.Floor(bb.MinX)),
		MaxX: int(math.Ceil(bb.MaxX)),
		MinY: int(math.Floor(bb.MinY)),
		MaxY: int(math.Ceil(bb.MaxY)),
	}
}

// SetUpdates turns pan controller syncing on or off and returns the old
// setting. Use it to batch several view changes into one sync.
func (v *View) SetUpdates(on bool) (old bool) {
	old = v.updates
	v.updates = on
	return old
}

// Updates reports whether pan controller syncing is on.
func (v *View) Updates() bool { return v.updates }

// SetNoShear sets whether transforms read back from the pan controller are
// snapped to orthogonal, equal length axes.
func (v *View) SetNoShear(on bool) { v.noShear = on }

// NoShear reports the setting of SetNoShear.
func (v *View) NoShear() bool { return v.noShear }

// SetDegrees selects whether angles passed to the view and the drawing
// functions are degrees rather than radians. It returns the old setting.
func (v *View) SetDegrees(on bool) (old bool) {
	old = v.degrees
	v.degrees = on
	return old
}

// Degrees reports the setting of SetDegrees.
func (v *View) Degrees() bool { return v.degrees }

func (v *View) radians(angle float64) float64 {
	if v.degrees {
		return angle / 180 * math.Pi
	}
	return angle
}

// OnScreen reports whether the screen point (x, y) is inside the screen
// rectangle.
func (v *View) OnScreen(x, y float64) bool {
	return v.screen.Contains(x, y)
}
