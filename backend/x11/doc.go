// Package x11 is a displayer backend that draws into X11 windows and
// pixmaps over the core protocol, using github.com/jezek/xgb.
//
// Paths are flattened and sent as FillPoly and PolyLine requests, text
// is drawn with a core font and images are composited on the client and
// sent with PutImage. Only TrueColor drawables of depth 24 or 32 are
// supported.
//
// Opening a window of its own:
//
//	d, err := backend.Open(backend.BackendX11, displayer.WithScreen(640, 480))
//
// or drawing into an existing drawable:
//
//	b := x11.New()
//	err := b.MakeCurrent(x11.Target{Conn: conn, Drawable: xproto.Drawable(win)})
//
// Limitations:
//   - Colours are opaque; the alpha component is ignored.
//   - Clip regions are reduced to their bounding rectangle.
//   - Blend modes other than Over, Source and Xor fall back to Over.
//   - Core fonts come in fixed sizes, so the text size is ignored.
package x11
