package cli

import (
	"github.com/aretw0/pillars/internal/config"
)

// RunOptions contains all the configuration for the play command.
// Zero values leave the config file (or its defaults) untouched.
type RunOptions struct {
	ConfigPath     string
	ConfigExplicit bool
	LogLevel       string
	LogFile        string
	Plain          bool
	NoColor        bool
	MetricsAddr    string
}

// Execute handles the 'play' command: it loads the config, applies the flag
// overrides and runs one session.
func Execute(opts RunOptions) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	return RunSession(cfg)
}

// LoadConfig reads the config file and layers the command-line flags on top.
func LoadConfig(opts RunOptions) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path, opts.ConfigExplicit)
	if err != nil {
		return config.Config{}, err
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if opts.Plain {
		cfg.Display.Mode = config.ModePlain
	}
	if opts.NoColor {
		cfg.Display.NoColor = true
	}
	if opts.MetricsAddr != "" {
		cfg.Metrics.Addr = opts.MetricsAddr
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
