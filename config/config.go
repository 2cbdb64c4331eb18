// Package config loads editor settings from defaults, an optional YAML file,
// TILECUT_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "TILECUT"

type Config struct {
	Grid   GridConfig   `mapstructure:"grid"`
	Render RenderConfig `mapstructure:"render"`
	Audio  AudioConfig  `mapstructure:"audio"`
	Logger LoggerConfig `mapstructure:"logger"`
	Debug  DebugConfig  `mapstructure:"debug"`

	// Keys rebinds actions: action name to a list of key names
	Keys map[string][]string `mapstructure:"keys"`
}

// GridConfig sizes the canvas. The effective grid is Rows*Multiplier by
// Cols*Multiplier; the defaults give a 44x32 canvas.
type GridConfig struct {
	Rows       int     `mapstructure:"rows"`
	Cols       int     `mapstructure:"cols"`
	Multiplier int     `mapstructure:"multiplier"`
	MinGap     float64 `mapstructure:"min_gap"`
	Snap       bool    `mapstructure:"snap"`
}

// EffectiveRows returns the row count after applying the multiplier
func (g GridConfig) EffectiveRows() int { return g.Rows * g.Multiplier }

// EffectiveCols returns the column count after applying the multiplier
func (g GridConfig) EffectiveCols() int { return g.Cols * g.Multiplier }

type RenderConfig struct {
	ShowGrid bool `mapstructure:"show_grid"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// LoggerConfig controls the zap logger. With File empty nothing is logged,
// since the terminal belongs to the editor.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

type DebugConfig struct {
	// Validate re-checks the tiling invariant after every command
	Validate bool `mapstructure:"validate"`
}

// SetDefaults registers every key with its default value
func SetDefaults(v *viper.Viper) {
	v.SetDefault("grid.rows", 22)
	v.SetDefault("grid.cols", 16)
	v.SetDefault("grid.multiplier", 2)
	v.SetDefault("grid.min_gap", 0.5)
	v.SetDefault("grid.snap", true)

	v.SetDefault("render.show_grid", true)

	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.volume", 0.5)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)

	v.SetDefault("debug.validate", false)
}

// flagKeys maps command-line flag names onto config keys
var flagKeys = map[string]string{
	"rows":       "grid.rows",
	"cols":       "grid.cols",
	"multiplier": "grid.multiplier",
	"min-gap":    "grid.min_gap",
	"snap":       "grid.snap",
	"show-grid":  "render.show_grid",
	"sound":      "audio.enabled",
	"log-file":   "logger.file",
	"log-level":  "logger.level",
	"log-format": "logger.format",
	"validate":   "debug.validate",
}

// RegisterFlags adds the overridable settings to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("rows", 22, "base grid rows")
	fs.Int("cols", 16, "base grid columns")
	fs.Int("multiplier", 2, "grid density multiplier")
	fs.Float64("min-gap", 0.5, "minimum distance between cut lines, in grid units")
	fs.Bool("snap", true, "snap cut lines to the grid")
	fs.Bool("show-grid", true, "draw the grid overlay")
	fs.Bool("sound", false, "play sound cues")
	fs.String("log-file", "", "write logs to this file")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-format", "json", "log format: json or console")
	fs.Bool("validate", false, "check tiling invariants after every command")
}

// Load builds the configuration. path may be empty, in which case
// ./tilecut.yaml is used if present. fs may be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("tilecut")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Rows <= 0 {
		errs = append(errs, errors.New("grid.rows must be a positive integer"))
	}
	if c.Grid.Cols <= 0 {
		errs = append(errs, errors.New("grid.cols must be a positive integer"))
	}
	if c.Grid.Multiplier <= 0 {
		errs = append(errs, errors.New("grid.multiplier must be a positive integer"))
	}
	if c.Grid.MinGap <= 0 || c.Grid.MinGap >= 1 {
		errs = append(errs, fmt.Errorf("grid.min_gap must be in (0, 1), got %g", c.Grid.MinGap))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume))
	}
	switch c.Logger.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logger.format must be json or console, got %q", c.Logger.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
