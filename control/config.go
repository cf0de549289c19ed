// control/config.go
// Author: ain1084
//
// Typed configuration with file, environment, and default sources.

package control

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/ain1084/direct-ring-buffer/api"
)

// Config is the root configuration consumed by services embedding ring
// buffers. All fields have working defaults; a config file and
// RINGBUF_* environment variables override them.
type Config struct {
	Ring    RingConfig    `mapstructure:"ring"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// RingConfig sizes the buffers a service creates.
type RingConfig struct {
	// Capacity is the slot count per buffer. Must be positive; any
	// value is accepted, not only powers of two.
	Capacity int `mapstructure:"capacity"`
	// BatchSize bounds how many elements drain loops move per
	// ReadSlices call.
	BatchSize int `mapstructure:"batch_size"`
}

// LogConfig selects the zap logger profile.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig controls the Prometheus exposition endpoint.
type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ListenAddr string `mapstructure:"listen_addr"`
	Namespace  string `mapstructure:"namespace"`
}

// DefaultConfig returns the built-in configuration. Loader defaults are
// derived from it, so the two never drift.
func DefaultConfig() *Config {
	return &Config{
		Ring: RingConfig{
			Capacity:  4096,
			BatchSize: 256,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled:    true,
			ListenAddr: ":9090",
			Namespace:  "ringbuf",
		},
	}
}

// Loader handles configuration loading and validation.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader wired for YAML files and RINGBUF_*
// environment overrides.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("RINGBUF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// Load reads configuration from the optional file at path, applies
// environment overrides, and validates the result. An empty path loads
// defaults and environment only.
func (l *Loader) Load(path string) (*Config, error) {
	l.setDefaults()

	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var config Config
	if err := l.v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := l.Validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults mirrors DefaultConfig into viper.
func (l *Loader) setDefaults() {
	def := DefaultConfig()

	l.v.SetDefault("ring.capacity", def.Ring.Capacity)
	l.v.SetDefault("ring.batch_size", def.Ring.BatchSize)

	l.v.SetDefault("log.level", def.Log.Level)
	l.v.SetDefault("log.format", def.Log.Format)

	l.v.SetDefault("metrics.enabled", def.Metrics.Enabled)
	l.v.SetDefault("metrics.listen_addr", def.Metrics.ListenAddr)
	l.v.SetDefault("metrics.namespace", def.Metrics.Namespace)
}

// Validate checks the configuration for values the runtime would
// reject later. All failures wrap api.ErrInvalidConfig.
func (l *Loader) Validate(config *Config) error {
	if config.Ring.Capacity <= 0 {
		return fmt.Errorf("%w: ring.capacity must be positive, got %d", api.ErrInvalidConfig, config.Ring.Capacity)
	}
	if config.Ring.BatchSize <= 0 {
		return fmt.Errorf("%w: ring.batch_size must be positive, got %d", api.ErrInvalidConfig, config.Ring.BatchSize)
	}
	if config.Ring.BatchSize > config.Ring.Capacity {
		return fmt.Errorf("%w: ring.batch_size %d exceeds ring.capacity %d", api.ErrInvalidConfig, config.Ring.BatchSize, config.Ring.Capacity)
	}

	if _, err := zapcore.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("%w: unknown log.level %q", api.ErrInvalidConfig, config.Log.Level)
	}
	if config.Log.Format != "json" && config.Log.Format != "console" {
		return fmt.Errorf("%w: log.format must be json or console, got %q", api.ErrInvalidConfig, config.Log.Format)
	}

	if config.Metrics.Enabled {
		if config.Metrics.ListenAddr == "" {
			return fmt.Errorf("%w: metrics.listen_addr is required when metrics are enabled", api.ErrInvalidConfig)
		}
		if config.Metrics.Namespace == "" {
			return fmt.Errorf("%w: metrics.namespace is required when metrics are enabled", api.ErrInvalidConfig)
		}
	}

	return nil
}
