// Package recording provides a displayer backend that records drawing
// operations instead of rasterizing them.
//
// Commands are typed structs rather than a binary format, so a recording
// can be inspected in tests, dumped as text, and replayed onto any other
// backend.
//
// Paths and images are stored in a ResourcePool and referenced by typed
// handles (PathRef, ImageRef). Paths are cloned on the way in, so a
// recording is not disturbed when the Displayer reuses its path.
//
// # Example
//
//	rec := recording.New(800, 600)
//	d, _ := displayer.New(rec)
//	d.Circle(displayer.Pt(0, 0), 10, displayer.FillOnly)
//
//	rec.Dump(os.Stdout)
//	rec.Replay(rasterBackend)
//
// Importing the package registers it with the backend registry under the
// name "recording".
package recording
