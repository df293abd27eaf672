package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/logfilter/core"
	"github.com/philipp01105/logfilter/filter"
)

var (
	// ErrInvalidLevel is reported for levels outside NONE..DEBUG.
	ErrInvalidLevel = errors.New("invalid level")
	// ErrInvalidHexLimit is reported for hex limits below -1.
	ErrInvalidHexLimit = errors.New("invalid hex limit")
	// ErrEmptyLayer is reported for layers without a name.
	ErrEmptyLayer = errors.New("empty layer name")
)

// Layer overrides the defaults for one service. Nil fields inherit.
type Layer struct {
	Level    *core.Level `yaml:"level"`
	HexLimit *int        `yaml:"hex_limit"`
}

// Config holds the default threshold and hex limit plus per-layer
// overrides.
type Config struct {
	Level    core.Level       `yaml:"level"`
	HexLimit int              `yaml:"hex_limit"`
	Layers   map[string]Layer `yaml:"layers"`
}

// Default returns the configuration used for missing keys.
func Default() Config {
	return Config{
		Level:    core.NoneLevel,
		HexLimit: filter.DefaultHexLimit,
	}
}

// Parse decodes YAML data on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse log config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read log config: %w", err)
	}
	return Parse(data)
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if !validLevel(c.Level) {
		result = multierror.Append(result, fmt.Errorf("level: %w: %d", ErrInvalidLevel, c.Level))
	}
	if c.HexLimit < -1 {
		result = multierror.Append(result, fmt.Errorf("hex_limit: %w: %d", ErrInvalidHexLimit, c.HexLimit))
	}
	for name, layer := range c.Layers {
		if strings.TrimSpace(name) == "" {
			result = multierror.Append(result, ErrEmptyLayer)
		}
		if layer.Level != nil && !validLevel(*layer.Level) {
			result = multierror.Append(result, fmt.Errorf("layers.%s.level: %w: %d", name, ErrInvalidLevel, *layer.Level))
		}
		if layer.HexLimit != nil && *layer.HexLimit < -1 {
			result = multierror.Append(result, fmt.Errorf("layers.%s.hex_limit: %w: %d", name, ErrInvalidHexLimit, *layer.HexLimit))
		}
	}

	return result.ErrorOrNil()
}

// For returns the threshold and hex limit that apply to service.
func (c Config) For(service string) (core.Level, int) {
	level, limit := c.Level, c.HexLimit

	layer, ok := c.Layers[service]
	if !ok {
		for name, l := range c.Layers {
			if strings.EqualFold(name, service) {
				layer, ok = l, true
				break
			}
		}
	}
	if ok {
		if layer.Level != nil {
			level = *layer.Level
		}
		if layer.HexLimit != nil {
			limit = *layer.HexLimit
		}
	}
	return level, limit
}

// Apply sets the threshold and hex limit of each filter from c.
func (c Config) Apply(filters ...*filter.Filter) {
	for _, f := range filters {
		level, limit := c.For(f.Service())
		f.SetLevel(level)
		f.SetHexLimit(limit)
	}
}

func validLevel(l core.Level) bool {
	return l >= core.NoneLevel && l <= core.DebugLevel
}
