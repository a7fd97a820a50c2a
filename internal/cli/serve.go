package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Glenn-jpg/MasterNTNU/pkg/api"
	"github.com/Glenn-jpg/MasterNTNU/pkg/buildinfo"
	"github.com/Glenn-jpg/MasterNTNU/pkg/observability"
)

const defaultAddr = ":8080"

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
		timeout  time.Duration
		maxBody  int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve runs the HTTP API:

  POST /v1/solve   solve the JSON problem in the request body
  GET  /healthz    liveness and version
  GET  /v1/stats   solve, cache and request counters`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("addr") && c.Config.Serve.Addr != "" {
				addr = c.Config.Serve.Addr
			}

			runner, err := c.newRunner(ctx, noCache, redisURL)
			if err != nil {
				return err
			}
			defer runner.Close()

			// Request logging stays in the server; hooks feed /v1/stats.
			counters := observability.NewCounters()
			observability.SetPipelineHooks(counters)
			observability.SetCacheHooks(counters)
			observability.SetHTTPHooks(counters)

			srv := api.New(runner,
				api.WithLogger(c.Logger),
				api.WithCounters(counters),
				api.WithRequestTimeout(timeout),
				api.WithMaxBodyBytes(maxBody))

			printSuccess("%s %s", StyleTitle.Render(appName), StyleDim.Render(buildinfo.Version))
			printKeyValue("address", addr)
			printKeyValue("solve", "POST /v1/solve")
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "use a Redis cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().DurationVar(&timeout, "timeout", api.DefaultRequestTimeout, "per-request timeout")
	cmd.Flags().Int64Var(&maxBody, "max-body", api.DefaultMaxBodyBytes, "maximum request body size in bytes")

	return cmd
}
