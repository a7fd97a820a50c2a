package topology

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
)

// Options configures topology diagram generation.
type Options struct {
	// Detailed adds equilibrium positions to node labels and axial forces to
	// edge labels.
	Detailed bool
}

// ToDOT converts a solution to Graphviz DOT source.
func ToDOT(sol *fdm.Solution, opts Options) string {
	collapsed := make(map[int]bool, len(sol.Branches))
	for _, b := range sol.Branches {
		collapsed[b.Index] = true
	}
	for _, bi := range sol.LineBranches {
		delete(collapsed, bi)
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, n := range sol.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(n), strings.Join(nodeAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for i, b := range sol.Branches {
		attrs := []string{fmt.Sprintf("label=%q", edgeLabel(sol, i, opts.Detailed))}
		if collapsed[b.Index] {
			attrs = append(attrs, "style=dashed")
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n",
			nodeID(sol.Nodes[b.Start]), nodeID(sol.Nodes[b.End]), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(n fdm.Node) string {
	if n.Fixed {
		return fmt.Sprintf("S%d", n.Index)
	}
	return fmt.Sprintf("N%d", n.Index)
}

func nodeAttrs(n fdm.Node, detailed bool) []string {
	label := nodeID(n)
	if detailed {
		label += "\n" + n.Position.String()
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Fixed {
		attrs = append(attrs, "shape=box", "fillcolor=lightgrey")
	}
	return attrs
}

func edgeLabel(sol *fdm.Solution, i int, detailed bool) string {
	label := "q=" + strconv.FormatFloat(sol.Branches[i].Density, 'g', 4, 64)
	if detailed {
		label += "\nF=" + strconv.FormatFloat(sol.Forces[i], 'g', 4, 64)
	}
	return label
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-sized svg element with one
// whose viewBox starts at the origin and whose size matches it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
