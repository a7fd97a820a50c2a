package cli

import (
	"github.com/spf13/cobra"

	"github.com/Glenn-jpg/MasterNTNU/pkg/buildinfo"
	"github.com/Glenn-jpg/MasterNTNU/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the root command loads the config file, sets
// the log level from --verbose and, when verbose, registers observability
// hooks that log pipeline and cache events.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "fdm finds equilibrium shapes of cable and bar networks",
		Long: `fdm solves force density problems: given a network of lines, the force
density of each line, the supported nodes and a load, it computes the
equilibrium positions of the free nodes and writes the solved network as
JSON, OBJ, SVG projections or Graphviz topology diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if c.verbose {
				level = LogDebug
				observability.SetPipelineHooks(logHooks{logger: c.Logger})
				observability.SetCacheHooks(logHooks{logger: c.Logger})
				observability.SetHTTPHooks(logHooks{logger: c.Logger})
			}
			c.SetLogLevel(level)

			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/fdm/config.toml)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
