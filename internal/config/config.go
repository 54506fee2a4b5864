// Package config loads a11ykit configuration from a YAML file, .env files and
// A11YKIT_* environment variables, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/a11ykit/internal/colour"
	"github.com/jmylchreest/a11ykit/internal/compression"
	"github.com/jmylchreest/a11ykit/internal/inspect"
	"github.com/jmylchreest/a11ykit/internal/library"
	"github.com/jmylchreest/a11ykit/internal/security"
)

// DefaultFile is loaded from the working directory when no file is given.
const DefaultFile = "a11ykit.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "A11YKIT_"

// Environment variables.
const (
	EnvValidateColours = EnvPrefix + "VALIDATE_COLOURS"
	EnvColourTolerance = EnvPrefix + "COLOUR_TOLERANCE"
	EnvSuggestColours  = EnvPrefix + "SUGGEST_COLOURS"
	EnvLogLevel        = EnvPrefix + "LOG_LEVEL"
	EnvApprovedColours = EnvPrefix + "APPROVED_COLOURS"
)

// Config holds the application configuration.
type Config struct {
	// ValidateColours enables the colour-mismatch rule.
	ValidateColours bool `yaml:"validate_colours" json:"validate_colours"`

	// ColourTolerance is the per-channel tolerance used when matching approved colours.
	ColourTolerance float64 `yaml:"colour_tolerance" json:"colour_tolerance" validate:"gte=0,lte=1"`

	// SuggestColours records better-contrast suggestions for contrast failures.
	SuggestColours bool `yaml:"suggest_colours" json:"suggest_colours"`

	LogLevel string `yaml:"log_level" json:"log_level" validate:"omitempty,oneof=trace debug info warn error off"`

	ApprovedColours []library.Swatch `yaml:"approved_colours" json:"approved_colours" validate:"dive"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		SuggestColours: true,
		LogLevel:       "info",
	}
}

// Loader loads configuration.
type Loader struct {
	path     string
	envFiles []string
	lookup   func(string) (string, bool)
}

// NewLoader creates a loader reading path (DefaultFile when empty and present), the .env
// file in the working directory and the process environment.
func NewLoader(path string) *Loader {
	return &Loader{
		path:   path,
		lookup: os.LookupEnv,
	}
}

// WithEnvFiles sets the .env files to load. Missing files are ignored; no files disables
// .env loading.
func (l *Loader) WithEnvFiles(files ...string) *Loader {
	l.envFiles = append([]string{}, files...)
	return l
}

// WithLookup replaces the environment lookup.
func (l *Loader) WithLookup(lookup func(string) (string, bool)) *Loader {
	l.lookup = lookup
	return l
}

// Load reads, merges and validates the configuration.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	path := l.path
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	envFiles := l.envFiles
	if envFiles == nil {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv.Load never overrides variables already set in the environment.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	if err := cfg.ApplyEnv(l.lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	if err := security.ValidateInputPath(path, []string{".yaml", ".yml", ".json"}); err != nil {
		return fmt.Errorf("invalid config file: %w", err)
	}
	data, err := compression.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from A11YKIT_* variables.
// A11YKIT_APPROVED_COLOURS is a comma separated list of colour[=title] entries and
// replaces the configured approved colours.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvValidateColours); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvValidateColours, err)
		}
		c.ValidateColours = b
	}
	if v, ok := lookup(EnvSuggestColours); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSuggestColours, err)
		}
		c.SuggestColours = b
	}
	if v, ok := lookup(EnvColourTolerance); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvColourTolerance, err)
		}
		c.ColourTolerance = f
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvApprovedColours); ok {
		swatches, err := ParseSwatches(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvApprovedColours, err)
		}
		c.ApprovedColours = swatches
	}
	return nil
}

// ParseSwatches parses "colour[=title],..." entries. A missing title defaults to the
// colour's hex value.
func ParseSwatches(s string) ([]library.Swatch, error) {
	var swatches []library.Swatch
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		value, title, _ := strings.Cut(entry, "=")
		c, err := colour.ParseColour(value)
		if err != nil {
			return nil, err
		}
		title = strings.TrimSpace(title)
		if title == "" {
			title = c.Hex()
		}
		swatches = append(swatches, library.Swatch{Colour: c, Title: title})
	}
	return swatches, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Level returns the configured log level.
func (c *Config) Level() hclog.Level {
	if c.LogLevel == "" {
		return hclog.Info
	}
	return hclog.LevelFromString(c.LogLevel)
}

// Library builds a colour library seeded with the approved colours.
func (c *Config) Library() *library.Library {
	return library.New(c.ApprovedColours...)
}

// Options returns the validation options.
func (c *Config) Options() inspect.Options {
	return inspect.Options{
		ValidatingColours: c.ValidateColours,
		ColourTolerance:   c.ColourTolerance,
		SuggestColours:    c.SuggestColours,
	}
}
