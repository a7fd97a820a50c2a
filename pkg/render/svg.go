package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

const (
	defaultWidth  = 800.0
	defaultMargin = 40.0

	colorInput       = "#9e9e9e"
	colorTension     = "#1565c0"
	colorCompression = "#c62828"
	colorSupport     = "#212121"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*plot)

type plot struct {
	plane  Plane
	input  []geom.Line
	width  float64
	margin float64
	nodes  bool
}

// WithPlane selects the projection plane.
func WithPlane(p Plane) SVGOption { return func(r *plot) { r.plane = p } }

// WithInput draws the original bars beneath the solved shape.
func WithInput(lines []geom.Line) SVGOption { return func(r *plot) { r.input = lines } }

// WithWidth sets the drawing width in pixels.
func WithWidth(w float64) SVGOption { return func(r *plot) { r.width = w } }

// WithNodes marks free nodes with small circles.
func WithNodes() SVGOption { return func(r *plot) { r.nodes = true } }

// RenderSVG draws the projected equilibrium shape of sol.
func RenderSVG(sol *fdm.Solution, opts ...SVGOption) []byte {
	r := &plot{plane: DefaultPlane, width: defaultWidth, margin: defaultMargin}
	for _, opt := range opts {
		opt(r)
	}
	if r.width <= 2*r.margin {
		r.width = defaultWidth
	}

	all := make([]geom.Line, 0, len(sol.Lines)+len(r.input))
	all = append(all, sol.Lines...)
	all = append(all, r.input...)
	for _, n := range sol.Nodes {
		all = append(all, geom.Ln(n.Position, n.Position))
	}
	fr := r.frame(all)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		fr.width, fr.height, fr.width, fr.height)
	fmt.Fprintf(&buf, "  <rect width=\"100%%\" height=\"100%%\" fill=\"white\"/>\n")

	if len(r.input) > 0 {
		fmt.Fprintf(&buf, "  <g id=\"input\" stroke=\"%s\" stroke-width=\"1\" stroke-dasharray=\"4 3\" fill=\"none\">\n", colorInput)
		for _, l := range r.input {
			writeLine(&buf, fr, l, "")
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("  <g id=\"equilibrium\" stroke-width=\"2\" fill=\"none\">\n")
	for i, l := range sol.Lines {
		color := colorTension
		if b := sol.LineBranches[i]; sol.Forces[b] < 0 {
			color = colorCompression
		}
		writeLine(&buf, fr, l, color)
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, "  <g id=\"supports\" fill=\"%s\">\n", colorSupport)
	for _, n := range sol.Nodes[sol.FreeCount:] {
		x, y := fr.point(n.Position)
		fmt.Fprintf(&buf, "    <rect x=\"%.2f\" y=\"%.2f\" width=\"8\" height=\"8\"/>\n", x-4, y-4)
	}
	buf.WriteString("  </g>\n")

	if r.nodes {
		fmt.Fprintf(&buf, "  <g id=\"nodes\" fill=\"%s\">\n", colorTension)
		for _, n := range sol.Nodes[:sol.FreeCount] {
			x, y := fr.point(n.Position)
			fmt.Fprintf(&buf, "    <circle cx=\"%.2f\" cy=\"%.2f\" r=\"3\"/>\n", x, y)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// frame maps plane coordinates to SVG pixels.
type frame struct {
	plane         Plane
	minU, maxV    float64
	scale, margin float64
	width, height float64
}

func (r *plot) frame(lines []geom.Line) frame {
	f := frame{plane: r.plane, scale: 1, margin: r.margin}

	lo, hi, ok := geom.Bounds(lines)
	if !ok {
		f.width, f.height = r.width, r.width
		return f
	}
	minU, minV := r.plane.Project(lo)
	maxU, maxV := r.plane.Project(hi)
	du, dv := maxU-minU, maxV-minV

	span := math.Max(du, dv)
	if span > 0 {
		f.scale = (r.width - 2*r.margin) / span
	}
	f.minU, f.maxV = minU, maxV
	f.width = du*f.scale + 2*r.margin
	f.height = dv*f.scale + 2*r.margin
	return f
}

func (f frame) point(p geom.Point) (x, y float64) {
	u, v := f.plane.Project(p)
	return f.margin + (u-f.minU)*f.scale, f.margin + (f.maxV-v)*f.scale
}

func writeLine(buf *bytes.Buffer, f frame, l geom.Line, stroke string) {
	x1, y1 := f.point(l.Start)
	x2, y2 := f.point(l.End)
	if stroke == "" {
		fmt.Fprintf(buf, "    <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\"/>\n", x1, y1, x2, y2)
		return
	}
	fmt.Fprintf(buf, "    <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\"/>\n", x1, y1, x2, y2, stroke)
}
