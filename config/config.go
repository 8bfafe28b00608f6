// Package config handles gogp configuration loading.
package config

import (
	"fmt"
	"os"

	"github.com/lucasmaystre/gogp/chol"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Chol CholConfig `yaml:"chol"`
	Log  LogConfig  `yaml:"log"`
	Demo DemoConfig `yaml:"demo"`
}

// CholConfig holds the factorization policy. Jitter is a pointer so that an
// explicit 0 (no jitter) is kept.
type CholConfig struct {
	Jitter      *float64 `yaml:"jitter"`
	RetryFactor float64  `yaml:"retry_factor"`
	NoRetry     bool     `yaml:"no_retry"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DemoConfig describes the sin-regression problem sampled by gpsample.
// Variance and Noise are pointers to tell "not set" from an explicit 0.
type DemoConfig struct {
	Seed        uint64   `yaml:"seed"`
	Samples     int      `yaml:"samples"`
	Train       int      `yaml:"train"` // 0 samples from the prior
	Query       int      `yaml:"query"`
	Lengthscale float64  `yaml:"lengthscale"`
	Variance    *float64 `yaml:"variance"`
	Noise       *float64 `yaml:"obs_noise"`
}

// Default returns the default configuration.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads a YAML configuration file. Missing fields take their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Chol.Jitter == nil {
		c.Chol.Jitter = float(chol.DefaultJitter)
	}
	if c.Chol.RetryFactor == 0 {
		c.Chol.RetryFactor = chol.DefaultRetryFactor
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Demo.Seed == 0 {
		c.Demo.Seed = 123
	}
	if c.Demo.Samples == 0 {
		c.Demo.Samples = 10
	}
	if c.Demo.Query == 0 {
		c.Demo.Query = 10
	}
	if c.Demo.Lengthscale == 0 {
		c.Demo.Lengthscale = 1.0
	}
	if c.Demo.Variance == nil {
		c.Demo.Variance = float(1.0)
	}
	if c.Demo.Noise == nil {
		c.Demo.Noise = float(1.0)
	}
}

func float(v float64) *float64 {
	return &v
}

func negative(v *float64) bool {
	return v != nil && *v < 0
}

func deref(v *float64) interface{} {
	if v == nil {
		return "unset"
	}
	return *v
}

// Validate checks value domains.
func (c *Config) Validate() error {
	if c.Chol.Jitter != nil && *c.Chol.Jitter < 0 {
		return fmt.Errorf("chol.jitter must be non-negative, got %v", *c.Chol.Jitter)
	}
	if c.Chol.RetryFactor <= 1 {
		return fmt.Errorf("chol.retry_factor must be > 1, got %v", c.Chol.RetryFactor)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	if c.Demo.Samples < 1 || c.Demo.Query < 1 || c.Demo.Train < 0 {
		return fmt.Errorf("demo sizes must be positive (samples=%d, query=%d, train=%d)",
			c.Demo.Samples, c.Demo.Query, c.Demo.Train)
	}
	if c.Demo.Lengthscale <= 0 || negative(c.Demo.Variance) || negative(c.Demo.Noise) {
		return fmt.Errorf("demo parameters out of range (lengthscale=%v, variance=%v, obs_noise=%v)",
			c.Demo.Lengthscale, deref(c.Demo.Variance), deref(c.Demo.Noise))
	}
	return nil
}

// CholOptions converts the factorization policy to chol options.
func (c *Config) CholOptions() []chol.Option {
	jitter := chol.DefaultJitter
	if c.Chol.Jitter != nil {
		jitter = *c.Chol.Jitter
	}
	factor := c.Chol.RetryFactor
	if c.Chol.NoRetry {
		factor = 0
	}
	return []chol.Option{
		chol.WithJitter(jitter),
		chol.WithRetryFactor(factor),
	}
}
