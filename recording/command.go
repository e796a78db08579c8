package recording

import (
	"github.com/laxkit/displayer"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one Backend call.
type CommandType uint8

const (
	// Surface commands
	CmdMakeCurrent CommandType = iota // Switch target
	CmdResize                         // Replace the surface
	CmdClearWindow                    // Fill with the background
	CmdFlush                          // Push pending drawing

	// Style commands
	CmdSetForeground    // Set foreground color
	CmdSetBackground    // Set background color
	CmdLineAttributes   // Set stroke style
	CmdBlendMode        // Set compositing operator

	// Drawing commands
	CmdFill     // Fill a path
	CmdStroke   // Stroke a path
	CmdTextOut  // Draw text
	CmdImageOut // Draw an image

	// Clip commands
	CmdClip      // Set or intersect the clip
	CmdPushClip  // Save the clip
	CmdPopClip   // Restore the clip
	CmdClearClip // Remove the clip
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdMakeCurrent:    "MakeCurrent",
	CmdResize:         "Resize",
	CmdClearWindow:    "ClearWindow",
	CmdFlush:          "Flush",
	CmdSetForeground:  "SetForeground",
	CmdSetBackground:  "SetBackground",
	CmdLineAttributes: "LineAttributes",
	CmdBlendMode:      "BlendMode",
	CmdFill:           "Fill",
	CmdStroke:         "Stroke",
	CmdTextOut:        "TextOut",
	CmdImageOut:       "ImageOut",
	CmdClip:           "Clip",
	CmdPushClip:       "PushClip",
	CmdPopClip:        "PopClip",
	CmdClearClip:      "ClearClip",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference points to a valid image.
func (r ImageRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// MakeCurrentCommand records a target switch. The target itself is not
// kept, only its size.
type MakeCurrentCommand struct {
	Width, Height int
}

// Type implements Command.
func (MakeCurrentCommand) Type() CommandType { return CmdMakeCurrent }

// ResizeCommand records a new surface size.
type ResizeCommand struct {
	Width, Height int
}

// Type implements Command.
func (ResizeCommand) Type() CommandType { return CmdResize }

// ClearWindowCommand fills the surface with Color.
type ClearWindowCommand struct {
	Color displayer.RGBA
}

// Type implements Command.
func (ClearWindowCommand) Type() CommandType { return CmdClearWindow }

// FlushCommand marks a flush.
type FlushCommand struct{}

// Type implements Command.
func (FlushCommand) Type() CommandType { return CmdFlush }

// SetForegroundCommand sets the foreground color.
type SetForegroundCommand struct {
	Color displayer.RGBA
}

// Type implements Command.
func (SetForegroundCommand) Type() CommandType { return CmdSetForeground }

// SetBackgroundCommand sets the background color.
type SetBackgroundCommand struct {
	Color displayer.RGBA
}

// Type implements Command.
func (SetBackgroundCommand) Type() CommandType { return CmdSetBackground }

// LineAttributesCommand sets the stroke style. Style.Dash is a private copy.
type LineAttributesCommand struct {
	Style displayer.LineStyle
}

// Type implements Command.
func (LineAttributesCommand) Type() CommandType { return CmdLineAttributes }

// BlendModeCommand sets the compositing operator.
type BlendModeCommand struct {
	Op displayer.CompositeOp
}

// Type implements Command.
func (BlendModeCommand) Type() CommandType { return CmdBlendMode }

// FillCommand fills a pooled path.
type FillCommand struct {
	Path PathRef
	Rule displayer.FillRule
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand strokes a pooled path.
type StrokeCommand struct {
	Path PathRef
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// TextOutCommand draws Text with its baseline origin at (X, Y).
type TextOutCommand struct {
	Text string
	X, Y float64
	Size float64
}

// Type implements Command.
func (TextOutCommand) Type() CommandType { return CmdTextOut }

// ImageOutCommand draws a pooled image through Matrix.
type ImageOutCommand struct {
	Image  ImageRef
	Matrix displayer.Matrix
}

// Type implements Command.
func (ImageOutCommand) Type() CommandType { return CmdImageOut }

// ClipCommand clips to a pooled path.
type ClipCommand struct {
	Path      PathRef
	Rule      displayer.FillRule
	Intersect bool
}

// Type implements Command.
func (ClipCommand) Type() CommandType { return CmdClip }

// PushClipCommand saves the clip.
type PushClipCommand struct {
	StartFresh bool
}

// Type implements Command.
func (PushClipCommand) Type() CommandType { return CmdPushClip }

// PopClipCommand restores the clip.
type PopClipCommand struct{}

// Type implements Command.
func (PopClipCommand) Type() CommandType { return CmdPopClip }

// ClearClipCommand removes the clip.
type ClearClipCommand struct{}

// Type implements Command.
func (ClearClipCommand) Type() CommandType { return CmdClearClip }
