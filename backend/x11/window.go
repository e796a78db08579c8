package x11

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Window is a top level window on its own connection.
type Window struct {
	Conn   *xgb.Conn
	ID     xproto.Window
	Screen *xproto.ScreenInfo
	Width  int
	Height int
}

// Dial connects to the display named by $DISPLAY and maps a new width by
// height window with the given title.
func Dial(width, height int, title string) (*Window, error) {
	return DialDisplay("", width, height, title)
}

// DialDisplay is Dial for an explicit display name.
func DialDisplay(display string, width, height int, title string) (*Window, error) {
	if width <= 0 || height <= 0 || width > 0xffff || height > 0xffff {
		return nil, fmt.Errorf("x11: invalid window size %dx%d", width, height)
	}
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}
	w, err := createWindow(conn, width, height, title)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return w, nil
}

func createWindow(conn *xgb.Conn, width, height int, title string) (*Window, error) {
	setup := xproto.Setup(conn)
	if len(setup.Roots) == 0 {
		return nil, fmt.Errorf("x11: no screens")
	}
	screen := &setup.Roots[0]

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, fmt.Errorf("x11: allocate window id: %w", err)
	}
	if err := xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		wid,
		screen.Root,
		0, 0,
		uint16(width), uint16(height),
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			screen.WhitePixel,
			xproto.EventMaskExposure | xproto.EventMaskStructureNotify,
		},
	).Check(); err != nil {
		return nil, fmt.Errorf("x11: create window: %w", err)
	}
	if title != "" {
		xproto.ChangeProperty(conn, xproto.PropModeReplace, wid,
			xproto.AtomWmName, xproto.AtomString, 8, uint32(len(title)), []byte(title))
	}
	if err := xproto.MapWindowChecked(conn, wid).Check(); err != nil {
		return nil, fmt.Errorf("x11: map window: %w", err)
	}
	return &Window{Conn: conn, ID: wid, Screen: screen, Width: width, Height: height}, nil
}

// Target returns the drawing target for the window.
func (w *Window) Target() Target {
	return Target{Conn: w.Conn, Drawable: xproto.Drawable(w.ID), Depth: w.Screen.RootDepth}
}

// Resize changes the window size.
func (w *Window) Resize(width, height int) {
	xproto.ConfigureWindow(w.Conn, w.ID, xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(width), uint32(height)})
	w.Width, w.Height = width, height
}

// Close destroys the window and closes the connection.
func (w *Window) Close() {
	xproto.DestroyWindow(w.Conn, w.ID)
	w.Conn.Close()
}
