package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/pesel/pkg/pesel"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "pesel.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultReferenceNamespace seeds the UUID v5 namespace for identifier references.
const DefaultReferenceNamespace = "pesel/identifier-ref/v1"

// Environment variables overriding file values.
const (
	EnvFormat = "PESEL_FORMAT"
	EnvMask   = "PESEL_MASK"
	EnvColor  = "PESEL_COLOR"
)

type OutputConfig struct {
	Format string `yaml:"format"`
	Mask   bool   `yaml:"mask"`
	Color  string `yaml:"color,omitempty"`
}

type ReferenceConfig struct {
	Namespace string `yaml:"namespace,omitempty"`
}

type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Reference ReferenceConfig `yaml:"reference,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
			Color:  ColorAuto,
		},
		Reference: ReferenceConfig{
			Namespace: DefaultReferenceNamespace,
		},
	}
}

// Load reads pesel.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file from an explicit path. Fields missing from the
// file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", pesel.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from PESEL_* environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvFormat); v != "" {
		c.Output.Format = v
	}
	if v := getenv(EnvColor); v != "" {
		c.Output.Color = v
	}
	if v := getenv(EnvMask); v != "" {
		mask, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", pesel.ErrInvalidConfig, EnvMask, v)
		}
		c.Output.Mask = mask
	}
	return nil
}

// Validate normalizes case and rejects unknown values.
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown output format %q (want text, json or yaml)", pesel.ErrInvalidConfig, c.Output.Format)
	}

	switch c.Output.Color {
	case "":
		c.Output.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: unknown color mode %q (want auto, always or never)", pesel.ErrInvalidConfig, c.Output.Color)
	}

	if strings.TrimSpace(c.Reference.Namespace) == "" {
		c.Reference.Namespace = DefaultReferenceNamespace
	}
	return nil
}
