package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/pillars/internal/logging"
	"github.com/aretw0/pillars/internal/runtime"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "pillars.yaml"

// ErrInvalidConfig is returned when a config file has unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// Mode selects the front-end.
type Mode string

const (
	ModeAuto  Mode = "auto"  // TUI on a terminal, plain otherwise
	ModeTUI   Mode = "tui"
	ModePlain Mode = "plain"
)

// Config is the application configuration.
type Config struct {
	Animation Animation `mapstructure:"animation" yaml:"animation"`
	Log       Log       `mapstructure:"log" yaml:"log"`
	Display   Display   `mapstructure:"display" yaml:"display"`
	Metrics   Metrics   `mapstructure:"metrics" yaml:"metrics"`
}

// Animation configures the rolling tick sequence.
type Animation struct {
	Ticks     int           `mapstructure:"ticks" yaml:"ticks"`
	BaseDelay time.Duration `mapstructure:"base_delay" yaml:"base_delay"`
	StepDelay time.Duration `mapstructure:"step_delay" yaml:"step_delay"`
}

// Log configures the application logger.
type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File receives the logs; required to see logs while the TUI owns the terminal.
	File string `mapstructure:"file" yaml:"file"`
}

// Display configures the presenter.
type Display struct {
	Mode    Mode `mapstructure:"mode" yaml:"mode"`
	NoColor bool `mapstructure:"no_color" yaml:"no_color"`
}

// Metrics configures the optional Prometheus listener. Empty Addr disables it.
type Metrics struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// Default returns the reference configuration.
func Default() Config {
	s := runtime.DefaultSchedule()
	return Config{
		Animation: Animation{
			Ticks:     s.Ticks,
			BaseDelay: s.BaseDelay,
			StepDelay: s.StepDelay,
		},
		Log:     Log{Level: "info"},
		Display: Display{Mode: ModeAuto},
	}
}

// Load reads the config file at path on top of the defaults.
// A missing file is only an error when the user asked for it explicitly.
func Load(path string, explicit bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()
	if len(raw) > 0 {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &cfg,
			ErrorUnused: true,
			DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		})
		if err != nil {
			return Config{}, err
		}
		if err := decoder.Decode(raw); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Schedule().Validate(); err != nil {
		return fmt.Errorf("%w: animation: %v", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log: %v", ErrInvalidConfig, err)
	}
	switch c.Display.Mode {
	case ModeAuto, ModeTUI, ModePlain:
	default:
		return fmt.Errorf("%w: display: unknown mode %q", ErrInvalidConfig, c.Display.Mode)
	}
	return nil
}

// Schedule converts the animation section into a tick schedule.
func (c Config) Schedule() runtime.Schedule {
	return runtime.Schedule{
		Ticks:     c.Animation.Ticks,
		BaseDelay: c.Animation.BaseDelay,
		StepDelay: c.Animation.StepDelay,
	}
}
