package config

import (
	"fmt"
	"slices"

	"github.com/MeKo-Tech/hocrkit/internal/builders"
)

// Output formats for the parse command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Formats lists the valid output formats in display order.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatCSV}
}

// Config represents the complete configuration of the hocrkit CLI. It is
// loadable from configuration files, environment variables and
// command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Builder selection and engine configuration
	Builder BuilderConfig `mapstructure:"builder" yaml:"builder" json:"builder"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`
}

// BuilderConfig selects and configures the output-format builder.
type BuilderConfig struct {
	// Kind is one of text, word, line, char.
	Kind string `mapstructure:"kind" yaml:"kind" json:"kind"`
	// Layout is the tesseract page segmentation mode; 0 keeps the
	// builder's own default (3 for text, 1 for boxes).
	Layout int `mapstructure:"layout" yaml:"layout" json:"layout"`
	// Digits restricts recognition to digit-like characters.
	Digits bool `mapstructure:"digits" yaml:"digits" json:"digits"`
	// PSMFlag overrides the page-segmentation flag spelling for legacy
	// engines ("-psm"); empty keeps the default.
	PSMFlag string `mapstructure:"psm_flag" yaml:"psm_flag" json:"psm_flag"`
}

// OutputConfig controls how parse results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	File   string `mapstructure:"file" yaml:"file" json:"file"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Builder: BuilderConfig{
			Kind: builders.KindWord,
		},
		Output: OutputConfig{
			Format: FormatJSON,
		},
	}
}

// Validate checks the configuration for values no command could act on.
func (c *Config) Validate() error {
	if !slices.Contains(builders.Kinds(), c.Builder.Kind) {
		return fmt.Errorf("invalid builder kind: %q (must be one of %v)",
			c.Builder.Kind, builders.Kinds())
	}
	if c.Builder.Layout < 0 || c.Builder.Layout > 13 {
		return fmt.Errorf("invalid page segmentation layout: %d (must be between 0 and 13)",
			c.Builder.Layout)
	}
	if !slices.Contains(Formats(), c.Output.Format) {
		return fmt.Errorf("invalid output format: %q (must be one of %v)",
			c.Output.Format, Formats())
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	return nil
}

// BuilderOptions converts the builder configuration into options for the
// builders package.
func (c *Config) BuilderOptions() []builders.Option {
	var opts []builders.Option
	if c.Builder.Layout > 0 {
		opts = append(opts, builders.WithLayout(c.Builder.Layout))
	}
	if c.Builder.PSMFlag != "" {
		opts = append(opts, builders.WithPSMFlag(c.Builder.PSMFlag))
	}
	if c.Builder.Digits {
		opts = append(opts, builders.WithDigits())
	}
	return opts
}

// NewBuilder constructs the configured builder.
func (c *Config) NewBuilder() (builders.Builder, error) {
	return builders.New(c.Builder.Kind, c.BuilderOptions()...)
}
