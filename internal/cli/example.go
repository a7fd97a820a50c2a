package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
	fdmio "github.com/Glenn-jpg/MasterNTNU/pkg/io"
)

// exampleOpts holds the flags shared by the example generators.
type exampleOpts struct {
	output  string
	n       int
	density float64
	load    float64
}

// exampleCommand creates the example command, which writes generated
// problems to disk.
func (c *CLI) exampleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example problem file",
	}

	cmd.AddCommand(c.exampleGeneratorCommand("grid",
		"Square net of N×N cells supported along its boundary", 4, gridProblem))
	cmd.AddCommand(c.exampleGeneratorCommand("chain",
		"Hanging chain of N links between two supports", 8, chainProblem))

	return cmd
}

func (c *CLI) exampleGeneratorCommand(name, short string, defaultN int, gen func(n int, q, load float64) (fdm.Problem, error)) *cobra.Command {
	opts := exampleOpts{n: defaultN, density: 1, load: -1}

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := gen(opts.n, opts.density, opts.load)
			if err != nil {
				return err
			}
			output := opts.output
			if output == "" {
				output = name + ".toml"
			}
			if err := apperr.ValidateOutputPath(output); err != nil {
				return err
			}
			if err := fdmio.ExportProblem(p, output); err != nil {
				return err
			}

			printSuccess("Wrote %s example", name)
			printDetail("%d lines, %d supports", len(p.Lines), len(p.Supports))
			printFile(output)
			printNextStep("Solve it", fmt.Sprintf("%s solve %s -f json,svg", appName, output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file; .json, .toml or .hcl (default "+name+".toml)")
	cmd.Flags().IntVarP(&opts.n, "n", "n", opts.n, "problem size")
	cmd.Flags().Float64VarP(&opts.density, "density", "q", opts.density, "force density of every line")
	cmd.Flags().Float64Var(&opts.load, "load", opts.load, "vertical load on every free node")

	return cmd
}

// gridProblem builds an n×n grid of unit cells in the xy plane. Boundary
// nodes are supports. Edges running along the boundary join two supports and
// are left out, which leaves the four corners unconnected and unsupported.
func gridProblem(n int, q, load float64) (fdm.Problem, error) {
	if n < 2 {
		return fdm.Problem{}, apperr.New(apperr.ErrCodeInvalidInput, "grid needs n >= 2, got %d", n)
	}

	onBoundary := func(i, j int) bool { return i == 0 || j == 0 || i == n || j == n }
	corner := func(i, j int) bool { return (i == 0 || i == n) && (j == 0 || j == n) }
	pt := func(i, j int) geom.Point { return geom.Pt(float64(i), float64(j), 0) }

	var p fdm.Problem
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			if onBoundary(i, j) && !corner(i, j) {
				p.Supports = append(p.Supports, pt(i, j))
			}
			if i < n && !(onBoundary(i, j) && onBoundary(i+1, j)) {
				p.Lines = append(p.Lines, geom.Ln(pt(i, j), pt(i+1, j)))
			}
			if j < n && !(onBoundary(i, j) && onBoundary(i, j+1)) {
				p.Lines = append(p.Lines, geom.Ln(pt(i, j), pt(i, j+1)))
			}
		}
	}

	p.ForceDensities = uniform(len(p.Lines), q)
	l := geom.Pt(0, 0, load)
	p.Load = &l
	return p, nil
}

// chainProblem builds n links of unit length along x, supported at both
// ends.
func chainProblem(n int, q, load float64) (fdm.Problem, error) {
	if n < 2 {
		return fdm.Problem{}, apperr.New(apperr.ErrCodeInvalidInput, "chain needs n >= 2, got %d", n)
	}

	var p fdm.Problem
	for i := 0; i < n; i++ {
		p.Lines = append(p.Lines, geom.Ln(geom.Pt(float64(i), 0, 0), geom.Pt(float64(i+1), 0, 0)))
	}
	p.Supports = []geom.Point{geom.Pt(0, 0, 0), geom.Pt(float64(n), 0, 0)}
	p.ForceDensities = uniform(n, q)
	l := geom.Pt(0, 0, load)
	p.Load = &l
	return p, nil
}

func uniform(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
