// Package render draws force density solutions.
//
// # Overview
//
// This package turns an [fdm.Solution] into pictures:
//
//   - [RenderSVG] projects the network onto one coordinate plane and draws
//     the input geometry (dashed) under the equilibrium shape (solid)
//   - [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert
//     tool (from librsvg)
//   - The [topology] subpackage draws the node/branch structure as a
//     Graphviz diagram
//
// # Projection
//
// A [Plane] names the two axes kept by the orthographic projection. The
// drawing is scaled uniformly so the larger of the two extents fills the
// requested width; the vertical axis points up.
//
//	svg := render.RenderSVG(sol,
//	    render.WithPlane(render.PlaneXZ),
//	    render.WithInput(problem.Lines),
//	)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// Bars in tension are drawn in blue and bars in compression in red, so a
// hanging net and its inverted vault are easy to tell apart.
//
// [topology]: github.com/Glenn-jpg/MasterNTNU/pkg/render/topology
package render
