// Package stroke converts stroked paths into polygons for filling.
//
// A stroke is built as a union of pieces: one quadrilateral per segment,
// one polygon per join and one per cap. Every piece is wound the same way,
// so filling the pieces together with the non-zero rule gives the stroke
// outline without computing offset curves.
//
// # Line Caps
//
//   - displayer.CapButt ends flat at the endpoint
//   - displayer.CapRound adds a circle of the line's half width
//   - displayer.CapProjecting extends the line half its width
//
// # Line Joins
//
//   - displayer.JoinMiter meets in a point, beveled past the miter limit
//   - displayer.JoinCurveMiter is a miter rounded past the limit
//   - displayer.JoinRound adds a circle at the corner
//   - displayer.JoinBevel cuts the corner straight
//
// # Usage
//
//	polys := stroke.Outline(path, displayer.LineStyle{
//	    Width:      2,
//	    Cap:        displayer.CapRound,
//	    Join:       displayer.JoinMiter,
//	    MiterLimit: 10,
//	}, 0.25)
//	mask := clip.Rasterize(polys, displayer.FillNonZero, w, h)
package stroke
