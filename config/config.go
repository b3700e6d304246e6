// Package config loads cachesim settings from a file, the environment
// (CACHESIM_ prefix) and built-in defaults, in increasing precedence order
// defaults < file < environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/IvanBrykalov/cachesim/logger"
	"github.com/IvanBrykalov/cachesim/policy"
	"github.com/IvanBrykalov/cachesim/trace"
)

// Config is the full application configuration.
type Config struct {
	Sim     SimConfig     `mapstructure:"sim"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// SimConfig selects the policies, the cache geometry and the workload.
type SimConfig struct {
	Policies []string `mapstructure:"policies"` // fifo, lru, lfu
	Capacity int      `mapstructure:"capacity"` // entries
	LineSize uint64   `mapstructure:"line_size"`
	// Trace is a text trace path; empty selects the synthetic workload.
	Trace     string          `mapstructure:"trace"`
	Synthetic SyntheticConfig `mapstructure:"synthetic"`
}

// SyntheticConfig mirrors trace.SyntheticConfig.
type SyntheticConfig struct {
	Addresses int     `mapstructure:"addresses"`
	Keys      uint64  `mapstructure:"keys"`
	ZipfS     float64 `mapstructure:"zipf_s"`
	ZipfV     float64 `mapstructure:"zipf_v"`
	Seed      int64   `mapstructure:"seed"`
}

// LogConfig is passed to logger.Init.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Addr      string `mapstructure:"addr"`
	Namespace string `mapstructure:"namespace"`
}

// Load reads configPath (or ./cachesim.yaml, ./config/cachesim.yaml when
// empty), overlays CACHESIM_* environment variables and validates the result.
// A missing default file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("cachesim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// CACHESIM_SIM_CAPACITY overrides sim.capacity.
	v.SetEnvPrefix("CACHESIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sim.policies", []string{"fifo", "lru", "lfu"})
	v.SetDefault("sim.capacity", 64)
	v.SetDefault("sim.line_size", 64)
	v.SetDefault("sim.trace", "")
	v.SetDefault("sim.synthetic.addresses", 100_000)
	v.SetDefault("sim.synthetic.keys", 1_000)
	v.SetDefault("sim.synthetic.zipf_s", 1.1)
	v.SetDefault("sim.synthetic.zipf_v", 1.0)
	v.SetDefault("sim.synthetic.seed", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_path", "stderr")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", ":8080")
	v.SetDefault("metrics.namespace", "cachesim")
}

// Validate checks every field the simulator depends on.
func (c *Config) Validate() error {
	if len(c.Sim.Policies) == 0 {
		return errors.New("sim.policies is empty")
	}
	if _, err := c.Kinds(); err != nil {
		return err
	}
	if err := policy.ValidateCapacity(c.Sim.Capacity); err != nil {
		return err
	}
	if err := trace.ValidateLineSize(c.Sim.LineSize); err != nil {
		return err
	}
	if c.Sim.Trace == "" {
		if err := c.SyntheticTrace().Validate(); err != nil {
			return err
		}
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return errors.New("metrics.addr is required when metrics are enabled")
	}
	return nil
}

// Kinds parses Sim.Policies, dropping duplicates and keeping order.
func (c *Config) Kinds() ([]policy.Kind, error) {
	var out []policy.Kind
	seen := map[policy.Kind]bool{}
	for _, name := range c.Sim.Policies {
		k, err := policy.ParseKind(name)
		if err != nil {
			return nil, err
		}
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out, nil
}

// SyntheticTrace returns the synthetic workload parameters.
func (c *Config) SyntheticTrace() trace.SyntheticConfig {
	s := c.Sim.Synthetic
	return trace.SyntheticConfig{
		Addresses: s.Addresses,
		Keys:      s.Keys,
		ZipfS:     s.ZipfS,
		ZipfV:     s.ZipfV,
		Seed:      s.Seed,
		LineSize:  c.Sim.LineSize,
	}
}

// Logger returns the logger.Config for the log section.
func (c *Config) Logger() logger.Config {
	return logger.Config{Level: c.Log.Level, Format: c.Log.Format, OutputPath: c.Log.OutputPath}
}
