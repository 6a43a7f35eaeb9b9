// Package config provides configuration loading and validation for the gofreq CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/sartorproj/gofreq/freq"
	"github.com/sartorproj/gofreq/render"
)

// Sentinel validation errors.
var (
	ErrInvalidClassing  = errors.New("invalid classing")
	ErrInvalidPrecision = errors.New("precision must not be negative")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidPolicy    = errors.New("invalid policy")
	ErrInvalidDelimiter = errors.New("delimiter must be a single character")
)

// Default configuration values.
const (
	defaultFormat    = "text"
	defaultStyle     = "light"
	defaultPrecision = 2
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	defaultColumn    = "y"
	defaultDelimiter = ","
	defaultOverrun   = "allow"
	envPrefix        = "GOFREQ"
)

// Config holds all configuration for the gofreq CLI.
type Config struct {
	Table    TableConfig    `mapstructure:"table"`
	Classing ClassingConfig `mapstructure:"classing"`
	Render   RenderConfig   `mapstructure:"render"`
	Input    InputConfig    `mapstructure:"input"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// TableConfig selects table columns and footer statistics by key.
type TableConfig struct {
	Columns []string `mapstructure:"columns"`
	Footer  []string `mapstructure:"footer"`
}

// ClassingConfig overrides the classing parameters. Min, Max and a positive
// NumClasses must be given together.
type ClassingConfig struct {
	Min        *float64 `mapstructure:"min"`
	Max        *float64 `mapstructure:"max"`
	NumClasses int      `mapstructure:"num_classes"`
	Overrun    string   `mapstructure:"overrun"`
}

// RenderConfig holds output settings.
type RenderConfig struct {
	Format    string `mapstructure:"format"`
	Style     string `mapstructure:"style"`
	Title     string `mapstructure:"title"`
	Precision int    `mapstructure:"precision"`
	Humanize  bool   `mapstructure:"humanize"`
}

// InputConfig holds input loading settings. Raw input is free text rather
// than CSV.
type InputConfig struct {
	ValueColumn string `mapstructure:"value_column"`
	Delimiter   string `mapstructure:"delimiter"`
	SkipRows    int    `mapstructure:"skip_rows"`
	NoHeader    bool   `mapstructure:"no_header"`
	Raw         bool   `mapstructure:"raw"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	return Load(viper.New(), configPath)
}

// Load reads configuration into the given viper instance, which may already
// carry bound command-line flags.
func Load(viperCfg *viper.Viper, configPath string) (*Config, error) {
	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("gofreq")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("$HOME/.config/gofreq")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	// Environment values arrive as a single string.
	config.Table.Columns = splitList(viperCfg.Get("table.columns"))
	config.Table.Footer = splitList(viperCfg.Get("table.footer"))

	validateErr := config.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("table.columns", []string{"c", "f", "cm", "<cf", ">cf"})
	viperCfg.SetDefault("table.footer", []string{})

	viperCfg.SetDefault("classing.num_classes", 0)
	viperCfg.SetDefault("classing.overrun", defaultOverrun)

	viperCfg.SetDefault("render.format", defaultFormat)
	viperCfg.SetDefault("render.style", defaultStyle)
	viperCfg.SetDefault("render.precision", defaultPrecision)
	viperCfg.SetDefault("render.humanize", false)

	viperCfg.SetDefault("input.value_column", defaultColumn)
	viperCfg.SetDefault("input.delimiter", defaultDelimiter)
	viperCfg.SetDefault("input.skip_rows", 0)
	viperCfg.SetDefault("input.no_header", false)
	viperCfg.SetDefault("input.raw", false)

	viperCfg.SetDefault("logging.level", defaultLogLevel)
	viperCfg.SetDefault("logging.format", defaultLogFormat)
}

// splitList accepts a list or a comma/space separated string.
func splitList(v any) []string {
	if s, ok := v.(string); ok {
		return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	}
	return cast.ToStringSlice(v)
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := freq.ParseColumns(c.Table.Columns); err != nil {
		return err
	}

	if _, err := freq.ParseStatistics(c.Table.Footer); err != nil {
		return err
	}

	if c.Classing.NumClasses < 0 {
		return fmt.Errorf("%w: num_classes %d", ErrInvalidClassing, c.Classing.NumClasses)
	}

	if err := c.validateClassing(); err != nil {
		return err
	}

	if _, err := c.Overrun(); err != nil {
		return err
	}

	if _, err := render.ParseFormat(c.Render.Format); err != nil {
		return err
	}

	if c.Render.Precision < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, c.Render.Precision)
	}

	if len([]rune(c.Input.Delimiter)) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, c.Input.Delimiter)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

func (c *Config) validateClassing() error {
	cl := c.Classing
	if cl.NumClasses == 0 {
		if cl.Min != nil || cl.Max != nil {
			return fmt.Errorf("%w: min and max require num_classes", ErrInvalidClassing)
		}
		return nil
	}

	if cl.Min == nil || cl.Max == nil {
		return fmt.Errorf("%w: num_classes requires min and max", ErrInvalidClassing)
	}
	if *cl.Max <= *cl.Min {
		return fmt.Errorf("%w: max %v must be greater than min %v", ErrInvalidClassing, *cl.Max, *cl.Min)
	}
	return nil
}

// Overrun maps the overrun setting to a policy.
func (c *Config) Overrun() (freq.OverrunPolicy, error) {
	switch strings.ToLower(c.Classing.Overrun) {
	case "", "allow":
		return freq.OverrunAllow, nil
	case "clamp":
		return freq.OverrunClamp, nil
	default:
		return 0, fmt.Errorf("%w: overrun %q", ErrInvalidPolicy, c.Classing.Overrun)
	}
}

// FreqConfig builds the engine configuration.
func (c *Config) FreqConfig() (*freq.Config, error) {
	overrun, err := c.Overrun()
	if err != nil {
		return nil, err
	}

	fc := freq.DefaultConfig()
	fc.Overrun = overrun

	if c.Classing.NumClasses > 0 {
		fc.Classing = &freq.Classing{
			Min:        *c.Classing.Min,
			Max:        *c.Classing.Max,
			NumClasses: c.Classing.NumClasses,
		}
	}

	return fc, nil
}

// Columns returns the configured table columns.
func (c *Config) Columns() ([]freq.Column, error) {
	return freq.ParseColumns(c.Table.Columns)
}

// Footer returns the configured footer statistics.
func (c *Config) Footer() ([]freq.Statistic, error) {
	return freq.ParseStatistics(c.Table.Footer)
}

// RenderOptions returns the renderer options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Precision: c.Render.Precision,
		Title:     c.Render.Title,
		Humanize:  c.Render.Humanize,
		Style:     c.Render.Style,
	}
}

// Format returns the output format.
func (c *Config) Format() (render.Format, error) {
	return render.ParseFormat(c.Render.Format)
}

// CSVDelimiter returns the configured CSV delimiter.
func (c *Config) CSVDelimiter() rune {
	return []rune(c.Input.Delimiter)[0]
}
