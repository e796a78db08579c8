package recording

import (
	"fmt"
	"image"
	"io"
	"unicode/utf8"

	"github.com/laxkit/displayer"
	"github.com/laxkit/displayer/backend"
)

func init() {
	backend.Register(backend.BackendRecording, func() displayer.Backend {
		return New(0, 0)
	})
}

// Text metrics used by the recorder, as fractions of the font size. The
// recorder has no font, so every rune is the same width.
const (
	advanceRatio = 0.6
	ascentRatio  = 0.8
	descentRatio = 0.2
)

// Recorder is a displayer.Backend that captures every call as a Command.
// MakeCurrent accepts any target and only records its size, when the
// target has a Bounds method.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	op        displayer.CompositeOp
	clipDepth int
}

var _ displayer.Backend = (*Recorder)(nil)

// New creates a recorder with a width by height surface.
func New(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
		op:        displayer.OpOver,
	}
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// Name implements displayer.Backend.
func (r *Recorder) Name() string { return backend.BackendRecording }

// MakeCurrent implements displayer.Backend.
func (r *Recorder) MakeCurrent(target any) error {
	if target == nil {
		return displayer.ErrUnsupportedSurface
	}
	if b, ok := target.(interface{ Bounds() image.Rectangle }); ok {
		r.width, r.height = b.Bounds().Dx(), b.Bounds().Dy()
	}
	r.record(MakeCurrentCommand{Width: r.width, Height: r.height})
	return nil
}

// ResizeSurface implements displayer.Backend.
func (r *Recorder) ResizeSurface(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("recording: %dx%d: %w", width, height, displayer.ErrInvalidSurfaceSize)
	}
	r.width, r.height = width, height
	r.record(ResizeCommand{Width: width, Height: height})
	return nil
}

// Size implements displayer.Backend.
func (r *Recorder) Size() (int, int) { return r.width, r.height }

// ClearWindow implements displayer.Backend.
func (r *Recorder) ClearWindow(bg displayer.RGBA) error {
	r.record(ClearWindowCommand{Color: bg})
	return nil
}

// SetForeground implements displayer.Backend.
func (r *Recorder) SetForeground(c displayer.RGBA) {
	r.record(SetForegroundCommand{Color: c})
}

// SetBackground implements displayer.Backend.
func (r *Recorder) SetBackground(c displayer.RGBA) {
	r.record(SetBackgroundCommand{Color: c})
}

// LineAttributes implements displayer.Backend.
func (r *Recorder) LineAttributes(style displayer.LineStyle) {
	if style.Dash != nil {
		d := *style.Dash
		d.Array = append([]float64(nil), d.Array...)
		style.Dash = &d
	}
	r.record(LineAttributesCommand{Style: style})
}

// BlendMode implements displayer.Backend. Every operator is recorded as
// given.
func (r *Recorder) BlendMode(op displayer.CompositeOp) displayer.CompositeOp {
	old := r.op
	r.op = op
	r.record(BlendModeCommand{Op: op})
	return old
}

// Fill implements displayer.Backend.
func (r *Recorder) Fill(p *displayer.Path, rule displayer.FillRule) error {
	r.record(FillCommand{Path: r.resources.AddPath(p), Rule: rule})
	return nil
}

// Stroke implements displayer.Backend.
func (r *Recorder) Stroke(p *displayer.Path) error {
	r.record(StrokeCommand{Path: r.resources.AddPath(p)})
	return nil
}

// Clip implements displayer.Backend.
func (r *Recorder) Clip(p *displayer.Path, rule displayer.FillRule, intersect bool) error {
	r.record(ClipCommand{Path: r.resources.AddPath(p), Rule: rule, Intersect: intersect})
	return nil
}

// PushClip implements displayer.Backend.
func (r *Recorder) PushClip(startFresh bool) {
	r.clipDepth++
	r.record(PushClipCommand{StartFresh: startFresh})
}

// PopClip implements displayer.Backend. Unbalanced pops are dropped.
func (r *Recorder) PopClip() {
	if r.clipDepth == 0 {
		return
	}
	r.clipDepth--
	r.record(PopClipCommand{})
}

// ClearClip implements displayer.Backend.
func (r *Recorder) ClearClip() {
	r.record(ClearClipCommand{})
}

// TextExtent implements displayer.Backend with fixed width metrics.
func (r *Recorder) TextExtent(s string, size float64) displayer.TextMetrics {
	n := float64(utf8.RuneCountInString(s))
	return displayer.TextMetrics{
		Width:   n * size * advanceRatio,
		Height:  size * (ascentRatio + descentRatio),
		Ascent:  size * ascentRatio,
		Descent: size * descentRatio,
	}
}

// TextOut implements displayer.Backend.
func (r *Recorder) TextOut(s string, x, y, size float64) error {
	r.record(TextOutCommand{Text: s, X: x, Y: y, Size: size})
	return nil
}

// ImageOut implements displayer.Backend.
func (r *Recorder) ImageOut(img image.Image, m displayer.Matrix) error {
	r.record(ImageOutCommand{Image: r.resources.AddImage(img), Matrix: m})
	return nil
}

// Flush implements displayer.Backend.
func (r *Recorder) Flush() error {
	r.record(FlushCommand{})
	return nil
}

// Close implements displayer.Backend. The recording stays readable.
func (r *Recorder) Close() error { return nil }

// Commands returns the recorded commands. The slice is shared with the
// recorder until the next Reset.
func (r *Recorder) Commands() []Command { return r.commands }

// Resources returns the pool holding recorded paths and images.
func (r *Recorder) Resources() *ResourcePool { return r.resources }

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Reset discards all recorded commands and resources.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources.Clear()
	r.clipDepth = 0
}

// Count returns how many commands of type t were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Dump writes one line per command.
func (r *Recorder) Dump(w io.Writer) error {
	for i, c := range r.commands {
		var err error
		switch c := c.(type) {
		case FillCommand:
			_, err = fmt.Fprintf(w, "%4d %s rule=%d %s\n", i, c.Type(), c.Rule, describePath(r.resources.GetPath(c.Path)))
		case StrokeCommand:
			_, err = fmt.Fprintf(w, "%4d %s %s\n", i, c.Type(), describePath(r.resources.GetPath(c.Path)))
		case ClipCommand:
			_, err = fmt.Fprintf(w, "%4d %s intersect=%t %s\n", i, c.Type(), c.Intersect, describePath(r.resources.GetPath(c.Path)))
		case BlendModeCommand:
			_, err = fmt.Fprintf(w, "%4d %s %s\n", i, c.Type(), c.Op)
		case SetForegroundCommand:
			_, err = fmt.Fprintf(w, "%4d %s #%06x a=%.3g\n", i, c.Type(), c.Color.Pixel(), c.Color.A)
		case SetBackgroundCommand:
			_, err = fmt.Fprintf(w, "%4d %s #%06x a=%.3g\n", i, c.Type(), c.Color.Pixel(), c.Color.A)
		case TextOutCommand:
			_, err = fmt.Fprintf(w, "%4d %s %q at (%.2f,%.2f) size=%g\n", i, c.Type(), c.Text, c.X, c.Y, c.Size)
		default:
			_, err = fmt.Fprintf(w, "%4d %s %+v\n", i, c.Type(), c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func describePath(p *displayer.Path) string {
	if p == nil {
		return "path=nil"
	}
	b := p.Bounds()
	return fmt.Sprintf("elements=%d bounds=[%.2f,%.2f %.2f,%.2f]", p.Len(), b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// Replay issues the recorded commands, in order, on b. The first backend
// error stops the replay.
func (r *Recorder) Replay(b displayer.Backend) error {
	for i, c := range r.commands {
		var err error
		switch c := c.(type) {
		case MakeCurrentCommand:
			// Targets are not recorded; the destination keeps its own.
		case ResizeCommand:
			err = b.ResizeSurface(c.Width, c.Height)
		case ClearWindowCommand:
			err = b.ClearWindow(c.Color)
		case FlushCommand:
			err = b.Flush()
		case SetForegroundCommand:
			b.SetForeground(c.Color)
		case SetBackgroundCommand:
			b.SetBackground(c.Color)
		case LineAttributesCommand:
			b.LineAttributes(c.Style)
		case BlendModeCommand:
			b.BlendMode(c.Op)
		case FillCommand:
			err = b.Fill(r.resources.GetPath(c.Path), c.Rule)
		case StrokeCommand:
			err = b.Stroke(r.resources.GetPath(c.Path))
		case ClipCommand:
			err = b.Clip(r.resources.GetPath(c.Path), c.Rule, c.Intersect)
		case PushClipCommand:
			b.PushClip(c.StartFresh)
		case PopClipCommand:
			b.PopClip()
		case ClearClipCommand:
			b.ClearClip()
		case TextOutCommand:
			err = b.TextOut(c.Text, c.X, c.Y, c.Size)
		case ImageOutCommand:
			err = b.ImageOut(r.resources.GetImage(c.Image), c.Matrix)
		}
		if err != nil {
			return fmt.Errorf("recording: replay command %d (%s): %w", i, c.Type(), err)
		}
	}
	return nil
}
