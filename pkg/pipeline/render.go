package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
	fdmio "github.com/Glenn-jpg/MasterNTNU/pkg/io"
	"github.com/Glenn-jpg/MasterNTNU/pkg/render"
	"github.com/Glenn-jpg/MasterNTNU/pkg/render/topology"
)

// RenderArtifacts generates output artifacts in the requested formats.
// The projection plot is drawn once and shared by the svg, png and pdf
// outputs; the DOT source is shared by dot and topology-svg.
func RenderArtifacts(ctx context.Context, p fdm.Problem, sol *fdm.Solution, opts Options) (map[string][]byte, error) {
	var (
		svg []byte
		dot string
	)
	plot := func() []byte {
		if svg == nil {
			svg = render.RenderSVG(sol, plotOptions(p, opts)...)
		}
		return svg
	}
	graph := func() string {
		if dot == "" {
			dot = topology.ToDOT(sol, topology.Options{Detailed: opts.Detailed})
		}
		return dot
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			data []byte
			err  error
		)
		switch format {
		case FormatSVG:
			data = plot()
		case FormatPNG:
			data, err = render.ToPNG(ctx, plot(), DefaultPNGScale)
		case FormatPDF:
			data, err = render.ToPDF(ctx, plot())
		case FormatJSON:
			var buf bytes.Buffer
			err = fdmio.WriteSolutionJSON(sol, &buf)
			data = buf.Bytes()
		case FormatOBJ:
			var buf bytes.Buffer
			err = fdmio.WriteOBJ(sol, &buf)
			data = buf.Bytes()
		case FormatDOT:
			data = []byte(graph())
		case FormatTopologySVG:
			data, err = topology.RenderSVG(ctx, graph())
		default:
			err = ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func plotOptions(p fdm.Problem, opts Options) []render.SVGOption {
	svgOpts := []render.SVGOption{
		render.WithPlane(render.Plane(opts.Plane)),
		render.WithWidth(opts.Width),
	}
	if !opts.HideInput {
		svgOpts = append(svgOpts, render.WithInput(p.Lines))
	}
	if opts.Detailed {
		svgOpts = append(svgOpts, render.WithNodes())
	}
	return svgOpts
}
