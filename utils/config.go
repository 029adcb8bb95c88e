package utils

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation failure returned from Config.Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a simulation run
type Config struct {
	FrameRate           time.Duration `mapstructure:"frame_rate"`
	Renderer            string        `mapstructure:"renderer"`
	MaxGenerations      int           `mapstructure:"max_generations"`
	StopOnStagnation    bool          `mapstructure:"stop_on_stagnation"`
	StagnationThreshold int           `mapstructure:"stagnation_threshold"`
	RandomDensity       float64       `mapstructure:"random_density"`
	Seed                int64         `mapstructure:"seed"`
	Workers             int           `mapstructure:"workers"`
	Log                 LogConfig     `mapstructure:"log"`
}

// LogConfig controls the diagnostic logger
type LogConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
	// Format is "text" or "json"
	Format string `mapstructure:"format"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameRate:           0, // print as fast as possible, like the original dump
		Renderer:            "text",
		MaxGenerations:      1000,
		StopOnStagnation:    false,
		StagnationThreshold: 5,
		RandomDensity:       0.15,
		Seed:                1,
		Workers:             4,
		Log: LogConfig{
			Level:  "WARN",
			Format: "text",
		},
	}
}

// SetDefaults registers DefaultConfig values with v so unset keys resolve to them
func SetDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("frame_rate", defaults.FrameRate)
	v.SetDefault("renderer", defaults.Renderer)
	v.SetDefault("max_generations", defaults.MaxGenerations)
	v.SetDefault("stop_on_stagnation", defaults.StopOnStagnation)
	v.SetDefault("stagnation_threshold", defaults.StagnationThreshold)
	v.SetDefault("random_density", defaults.RandomDensity)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
}

// FromViper decodes and validates the configuration held by v
func FromViper(v *viper.Viper) (Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return DefaultConfig(), errors.Wrap(err, "[FromViper] failed to decode configuration")
	}
	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}

// ReadConfigFile merges a YAML, JSON or TOML file into v; the format follows the file extension
func ReadConfigFile(v *viper.Viper, filename string) error {
	v.SetConfigFile(filename)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "[ReadConfigFile] failed to read file: %+v", filename)
	}
	return nil
}

// LoadConfig loads configuration from a file, falling back to defaults for missing keys
func LoadConfig(filename string) (Config, error) {
	v := viper.New()
	SetDefaults(v)

	if err := ReadConfigFile(v, filename); err != nil {
		return DefaultConfig(), err
	}
	return FromViper(v)
}

// Validate checks value ranges
func (c Config) Validate() error {
	switch {
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative, got %s", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold must be at least 1, got %d", c.StagnationThreshold)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density must be within [0,1], got %g", c.RandomDensity)
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
