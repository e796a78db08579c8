// Package ebitengine is a displayer backend drawing onto Ebitengine
// images.
//
// Paths are triangulated with the ebiten vector package and drawn with
// DrawTriangles, so drawing happens on the GPU when the game runs.
// Text is shaped and rasterized on the CPU by the internal textlayout
// package and uploaded as a tinted image.
//
// Typical use inside a game's Draw method:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//	    if err := g.disp.MakeCurrent(screen); err != nil {
//	        return
//	    }
//	    g.disp.ClearWindow()
//	    g.disp.Circle(displayer.Pt(0, 0), 1, displayer.FillOnly)
//	}
//
// Limitations:
//   - Clip regions are reduced to their bounding rectangle.
//   - Of the blend modes only the Porter-Duff operators, Add, Darken and
//     Lighten have a GPU blend; the rest fall back to Over.
package ebitengine
