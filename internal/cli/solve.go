package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
	fdmio "github.com/Glenn-jpg/MasterNTNU/pkg/io"
	"github.com/Glenn-jpg/MasterNTNU/pkg/pipeline"
)

// residualWarning is the residual above which the solve summary warns that
// the system was badly conditioned.
const residualWarning = 1e-6

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	output     string // output base path
	formats    string // comma-separated output formats
	tolerance  float64
	method     string
	plane      string
	width      float64
	hideInput  bool
	detailed   bool
	sequential bool
	noCache    bool
	refresh    bool
	redisURL   string
	table      bool // print node and branch tables
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "Find the equilibrium shape of a force density problem",
		Long: `Solve reads a problem file (JSON, TOML or HCL, chosen by extension),
finds the equilibrium positions of its free nodes and writes the requested
artifacts next to the problem, or to the base path given with --output.`,
		Example: `  fdm solve grid.toml
  fdm solve net.json -f json,svg,obj --plane xz
  fdm solve net.hcl -f dot,topology-svg --detailed --table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: <problem>.solution)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.FormatNames, ", ")+" (comma-separated, default json)")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", pipeline.DefaultTolerance, "distance below which endpoints are the same node")
	cmd.Flags().StringVar(&opts.method, "method", pipeline.DefaultMethod, "linear solver: cholesky, lu")
	cmd.Flags().StringVar(&opts.plane, "plane", pipeline.DefaultPlane, "SVG projection plane: xy, xz, yz")
	cmd.Flags().Float64Var(&opts.width, "width", pipeline.DefaultWidth, "SVG width in pixels")
	cmd.Flags().BoolVar(&opts.hideInput, "hide-input", false, "do not draw the input lines in plots")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label nodes in plots and forces in topology diagrams")
	cmd.Flags().BoolVar(&opts.sequential, "sequential", false, "solve the three axes one after another")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached solutions")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "use a Redis cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print node and branch tables")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.FormatNames, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("method", cobra.FixedCompletions([]string{"cholesky", "lu"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("plane", cobra.FixedCompletions([]string{"xy", "xz", "yz"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runSolve imports the problem, runs the pipeline and writes the artifacts.
func (c *CLI) runSolve(cmd *cobra.Command, input string, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	p, err := fdmio.ImportProblem(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d lines, %d supports", input, len(p.Lines), len(p.Supports))

	popts := pipeline.Options{
		Tolerance:  opts.tolerance,
		Method:     opts.method,
		Sequential: opts.sequential,
		Refresh:    opts.refresh,
		Formats:    parseFormats(opts.formats),
		Plane:      opts.plane,
		Width:      opts.width,
		HideInput:  opts.hideInput,
		Detailed:   opts.detailed,
		Logger:     logger,
	}
	c.Config.applyConfig(cmd, &popts)
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	base, err := basePath(opts.output, input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache, opts.redisURL)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := c.execute(ctx, runner, p, popts)
	if err != nil {
		return err
	}

	paths, err := writeArtifacts(base, popts.Formats, res.Artifacts)
	if err != nil {
		return err
	}

	printSuccess("Solved %s", input)
	printStats(res.Solution, res.CacheInfo.SolveHit)
	if res.Solution.Residual > residualWarning {
		printWarning("residual %.3g: the system is badly conditioned", res.Solution.Residual)
	}
	for _, path := range paths {
		printFile(path)
	}
	if opts.table {
		fmt.Println(nodeTable(res.Solution))
		fmt.Println(branchTable(res.Solution))
	}
	return nil
}

// execute runs the pipeline behind a spinner. With verbose logging the
// spinner would interleave with log lines, so only a progress line is kept.
func (c *CLI) execute(ctx context.Context, runner *pipeline.Runner, p fdm.Problem, opts pipeline.Options) (*pipeline.Result, error) {
	prog := newProgress(loggerFromContext(ctx))
	if c.verbose {
		res, err := runner.Execute(ctx, p, opts)
		if err == nil {
			prog.done(fmt.Sprintf("Solved %d free nodes", res.Solution.FreeCount))
		}
		return res, err
	}

	spinner := newSpinnerWithContext(ctx, "Solving equilibrium...")
	spinner.Start()
	res, err := runner.Execute(ctx, p, opts)
	spinner.Stop()
	return res, err
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, artifacts go next to the input as <input>.solution.*.
// If output has a format extension (.svg, .json, etc.), that extension is
// stripped.
func basePath(output, input string) (string, error) {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input)) + ".solution", nil
	}
	if err := apperr.ValidateOutputPath(output); err != nil {
		return "", err
	}
	if strings.HasSuffix(output, pipeline.FormatExtension(pipeline.FormatTopologySVG)) {
		return strings.TrimSuffix(output, pipeline.FormatExtension(pipeline.FormatTopologySVG)), nil
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext), nil
	}
	return output, nil
}

// writeArtifacts writes each artifact to base plus the format's extension
// and returns the written paths in format order.
func writeArtifacts(base string, formats []string, artifacts map[string][]byte) ([]string, error) {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + pipeline.FormatExtension(format)
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
