package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/Glenn-jpg/MasterNTNU/pkg/pipeline"
)

// Config is the user configuration read from config.toml. Every field is
// optional; command-line flags take precedence over it.
//
//	tolerance = 1e-6
//	method    = "lu"
//	plane     = "xz"
//	formats   = ["json", "svg"]
//
//	[cache]
//	dir = "/var/cache/fdm"
//
//	[redis]
//	url = "redis://localhost:6379/0"
//
//	[serve]
//	addr = ":9090"
type Config struct {
	Tolerance float64  `toml:"tolerance"`
	Method    string   `toml:"method"`
	Plane     string   `toml:"plane"`
	Width     float64  `toml:"width"`
	Formats   []string `toml:"formats"`

	Cache struct {
		Dir      string `toml:"dir"`
		Disabled bool   `toml:"disabled"`
	} `toml:"cache"`

	Redis struct {
		URL string `toml:"url"`
	} `toml:"redis"`

	Serve struct {
		Addr string `toml:"addr"`
	} `toml:"serve"`
}

// loadConfig reads the config file at path, or at the default location when
// path is empty. A missing default config is not an error.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := pipeline.ValidateFormats(cfg.Formats); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// applyConfig fills pipeline options from the config wherever the matching
// flag was not set explicitly.
func (cfg Config) applyConfig(cmd *cobra.Command, opts *pipeline.Options) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if !changed("tolerance") && cfg.Tolerance != 0 {
		opts.Tolerance = cfg.Tolerance
	}
	if !changed("method") && cfg.Method != "" {
		opts.Method = cfg.Method
	}
	if !changed("plane") && cfg.Plane != "" {
		opts.Plane = cfg.Plane
	}
	if !changed("width") && cfg.Width != 0 {
		opts.Width = cfg.Width
	}
	if !changed("format") && len(cfg.Formats) > 0 {
		opts.Formats = cfg.Formats
	}
}
