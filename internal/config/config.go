package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/gobwas/glob"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"beagle/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging   Logging   `yaml:"logging" mapstructure:"logging"`
	Buffer    Buffer    `yaml:"buffer" mapstructure:"buffer"`
	Source    Source    `yaml:"source" mapstructure:"source"`
	Layout    Layout    `yaml:"layout" mapstructure:"layout"`
	Telemetry Telemetry `yaml:"telemetry" mapstructure:"telemetry"`
	Version   int       `yaml:"version" mapstructure:"version"`
}

// Logging represents the application's own log output settings
type Logging struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Buffer represents the windowed row buffer settings
type Buffer struct {
	Capacity         int     `yaml:"capacity" mapstructure:"capacity"`
	EvictionFraction float64 `yaml:"eviction_fraction" mapstructure:"eviction_fraction"`
	EvictionCap      int     `yaml:"eviction_cap" mapstructure:"eviction_cap"`
	ChunkDivisor     int     `yaml:"chunk_divisor" mapstructure:"chunk_divisor"`
	MaxExtent        int     `yaml:"max_extent" mapstructure:"max_extent"`
	MaxCauseDepth    int     `yaml:"max_cause_depth" mapstructure:"max_cause_depth"`
}

// Source represents event source settings
type Source struct {
	Batch    int      `yaml:"batch" mapstructure:"batch"`
	Patterns []string `yaml:"patterns" mapstructure:"patterns"`
}

// Layout represents event row formatting settings
type Layout struct {
	TimeFormat string `yaml:"time_format" mapstructure:"time_format"`
}

// Telemetry represents optional anomaly reporting settings
type Telemetry struct {
	DSN string `yaml:"dsn" mapstructure:"dsn"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.Logging.Level = LogLevel
	cfg.Logging.Format = LogFormat

	cfg.Buffer.Capacity = BufferCapacity
	cfg.Buffer.EvictionFraction = EvictionFraction
	cfg.Buffer.EvictionCap = EvictionCap
	cfg.Buffer.ChunkDivisor = ChunkDivisor
	cfg.Buffer.MaxExtent = MaxExtent
	cfg.Buffer.MaxCauseDepth = MaxCauseDepth

	cfg.Source.Batch = SourceBatch
	cfg.Source.Patterns = []string{SourcePattern}

	cfg.Layout.TimeFormat = TimeFormat

	return cfg
}

// Load loads the configuration from .env, beagle.yaml and BEAGLE_* environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	data, err := os.ReadFile(ConfigFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	if err == nil {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToReadConfig
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// setDefaults registers every key so environment overrides apply during Unmarshal
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("version", cfg.Version)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)

	v.SetDefault("buffer.capacity", cfg.Buffer.Capacity)
	v.SetDefault("buffer.eviction_fraction", cfg.Buffer.EvictionFraction)
	v.SetDefault("buffer.eviction_cap", cfg.Buffer.EvictionCap)
	v.SetDefault("buffer.chunk_divisor", cfg.Buffer.ChunkDivisor)
	v.SetDefault("buffer.max_extent", cfg.Buffer.MaxExtent)
	v.SetDefault("buffer.max_cause_depth", cfg.Buffer.MaxCauseDepth)

	v.SetDefault("source.batch", cfg.Source.Batch)
	v.SetDefault("source.patterns", cfg.Source.Patterns)

	v.SetDefault("layout.time_format", cfg.Layout.TimeFormat)

	v.SetDefault("telemetry.dsn", cfg.Telemetry.DSN)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateBuffer(); err != nil {
		return err
	}

	return c.validateSource()
}

// validateBuffer validates buffer settings
func (c *Config) validateBuffer() error {
	b := c.Buffer

	switch {
	case b.Capacity <= 0:
		return errors.ErrInvalidBufferCapacity
	case b.EvictionFraction <= 0 || b.EvictionFraction > 1:
		return errors.ErrInvalidEvictionFraction
	case b.EvictionCap <= 0:
		return errors.ErrInvalidEvictionCap
	case b.ChunkDivisor <= 0:
		return errors.ErrInvalidChunkDivisor
	case b.MaxExtent <= 0:
		return errors.ErrInvalidMaxExtent
	case b.MaxCauseDepth <= 0:
		return errors.ErrInvalidCauseDepth
	}

	return nil
}

// validateSource validates source settings
func (c *Config) validateSource() error {
	if c.Source.Batch <= 0 {
		return errors.ErrInvalidSourceBatch
	}

	for _, p := range c.Source.Patterns {
		if _, err := glob.Compile(p, '/'); err != nil {
			return fmt.Errorf("%w '%s': %w", errors.ErrInvalidSourcePattern, p, err)
		}
	}

	return nil
}

// EvictionBatch returns the number of rows dropped per contraction
func (b Buffer) EvictionBatch() int {
	batch := int(b.EvictionFraction * float64(b.Capacity))
	if batch > b.EvictionCap {
		batch = b.EvictionCap
	}

	if batch < 1 {
		batch = 1
	}

	return batch
}

// ChunkSize returns the maximum number of rows handed to the view per step
func (b Buffer) ChunkSize() int {
	size := b.EvictionBatch() / b.ChunkDivisor
	if size < 1 {
		size = 1
	}

	return size
}
