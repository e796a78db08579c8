package displayer

import "log/slog"

// Option configures a Displayer during creation.
//
// Example:
//
//	d, err := displayer.New(b,
//	    displayer.WithScreen(800, 600),
//	    displayer.WithSpace(-100, 100, -100, 100),
//	    displayer.WithNoShear(),
//	)
type Option func(*options)

// options holds optional configuration for Displayer creation.
type options struct {
	logger *slog.Logger

	target        any
	width, height int

	space *Rect

	pan      PanController
	panOwner any

	noShear    bool
	degrees    bool
	realCoords bool

	lower, upper float64

	font     []byte
	fontSize float64
	fg, bg   RGBA
}

// defaultOptions returns the default displayer options.
func defaultOptions() options {
	return options{
		realCoords: true,
		lower:      DefaultLowerBound,
		upper:      DefaultUpperBound,
		fontSize:   12,
		fg:         Black,
		bg:         White,
	}
}

// WithLogger sets a logger for this Displayer instead of the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTarget makes the backend draw on target, as MakeCurrent does.
// The screen rectangle is sized to the target.
func WithTarget(target any) Option {
	return func(o *options) {
		o.target = target
	}
}

// WithScreen asks the backend for a w by h surface of its own when no
// target is given, and wraps the view around it.
func WithScreen(w, h int) Option {
	return func(o *options) {
		o.width = w
		o.height = h
	}
}

// WithSpace sets the real workspace bounds.
func WithSpace(minx, maxx, miny, maxy float64) Option {
	return func(o *options) {
		r := NewRect(minx, miny, maxx, maxy)
		o.space = &r
	}
}

// WithPanController attaches a pan controller. owner is the observer
// that does not get told about the view's own changes.
func WithPanController(pc PanController, owner any) Option {
	return func(o *options) {
		o.pan = pc
		o.panOwner = owner
	}
}

// WithNoShear snaps transforms read back from the pan controller to
// orthogonal axes of equal length.
func WithNoShear() Option {
	return func(o *options) {
		o.noShear = true
	}
}

// WithDegrees makes angle arguments degrees instead of radians.
func WithDegrees() Option {
	return func(o *options) {
		o.degrees = true
	}
}

// WithRealCoordinates selects whether drawing coordinates are real
// coordinates (the default) or screen pixels.
func WithRealCoordinates(on bool) Option {
	return func(o *options) {
		o.realCoords = on
	}
}

// WithZoomBounds sets the smallest and largest screen length of a unit
// real axis.
func WithZoomBounds(lower, upper float64) Option {
	return func(o *options) {
		o.lower = lower
		o.upper = upper
	}
}

// WithFont sets the font used for text. data is a TrueType or OpenType
// font file and may be nil to keep the backend's default face. A
// non-positive size keeps the default size.
func WithFont(data []byte, size float64) Option {
	return func(o *options) {
		o.font = data
		if size > 0 {
			o.fontSize = size
		}
	}
}

// WithColors sets the initial foreground and background colors.
func WithColors(fg, bg RGBA) Option {
	return func(o *options) {
		o.fg = fg
		o.bg = bg
	}
}
