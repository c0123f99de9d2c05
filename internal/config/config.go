// SPDX-License-Identifier: MIT

// Package config loads spkmeans settings from defaults, an optional config
// file, SPKMEANS_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spkmeans/jacobi"
	"github.com/katalvlaran/spkmeans/kmeans"
)

// EnvPrefix prefixes every environment override, e.g. SPKMEANS_KMEANS_SEED.
const EnvPrefix = "SPKMEANS"

// Output formats.
const (
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the full runtime configuration of the CLI.
type Config struct {
	Jacobi  JacobiConfig  `mapstructure:"jacobi"`
	KMeans  KMeansConfig  `mapstructure:"kmeans"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// JacobiConfig mirrors the jacobi.Options knobs.
type JacobiConfig struct {
	MaxRotations int     `mapstructure:"max_rotations"`
	Epsilon      float64 `mapstructure:"epsilon"`
}

// KMeansConfig mirrors the kmeans.Options knobs plus the k-means++ seed.
type KMeansConfig struct {
	MaxIterations int     `mapstructure:"max_iterations"`
	Epsilon       float64 `mapstructure:"epsilon"`
	Seed          int64   `mapstructure:"seed"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type MetricsConfig struct {
	// File receives a Prometheus text dump after the run; empty disables it.
	File string `mapstructure:"file"`
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"seed":          "kmeans.seed",
	"format":        "output.format",
	"log-level":     "log.level",
	"metrics-file":  "metrics.file",
	"max-rotations": "jacobi.max_rotations",
	"max-iter":      "kmeans.max_iterations",
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("jacobi.max_rotations", jacobi.DefaultMaxRotations)
	v.SetDefault("jacobi.epsilon", jacobi.DefaultEpsilon)

	v.SetDefault("kmeans.max_iterations", kmeans.DefaultMaxIterations)
	v.SetDefault("kmeans.epsilon", kmeans.DefaultEpsilon)
	v.SetDefault("kmeans.seed", 0)

	v.SetDefault("output.format", FormatCSV)
	v.SetDefault("log.level", "warn")
	v.SetDefault("metrics.file", "")
}

// New returns a viper instance with defaults and environment binding in place.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// BindFlags binds the known flags present in fs to their keys.
// Unknown or absent flags are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}

// Load builds a Config. path names an optional YAML/TOML/JSON file (the
// extension selects the parser); fs, when non-nil, supplies flag overrides.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	if err := BindFlags(v, fs); err != nil {
		return nil, err
	}

	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates the settings held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports the first out-of-range key as ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Jacobi.MaxRotations < 1:
		return fmt.Errorf("%w: jacobi.max_rotations=%d", ErrInvalidConfig, c.Jacobi.MaxRotations)
	case c.Jacobi.Epsilon < 0:
		return fmt.Errorf("%w: jacobi.epsilon=%g", ErrInvalidConfig, c.Jacobi.Epsilon)
	case c.KMeans.MaxIterations < 1:
		return fmt.Errorf("%w: kmeans.max_iterations=%d", ErrInvalidConfig, c.KMeans.MaxIterations)
	case c.KMeans.Epsilon < 0:
		return fmt.Errorf("%w: kmeans.epsilon=%g", ErrInvalidConfig, c.KMeans.Epsilon)
	}
	switch c.Output.Format {
	case FormatCSV, FormatYAML:
	default:
		return fmt.Errorf("%w: output.format=%q", ErrInvalidConfig, c.Output.Format)
	}

	return nil
}

// JacobiOptions converts the jacobi section into solver options.
func (c *Config) JacobiOptions() []jacobi.Option {
	return []jacobi.Option{
		jacobi.WithMaxRotations(c.Jacobi.MaxRotations),
		jacobi.WithEpsilon(c.Jacobi.Epsilon),
	}
}

// KMeansOptions converts the kmeans section into refiner options.
func (c *Config) KMeansOptions() []kmeans.Option {
	return []kmeans.Option{
		kmeans.WithMaxIterations(c.KMeans.MaxIterations),
		kmeans.WithEpsilon(c.KMeans.Epsilon),
	}
}
