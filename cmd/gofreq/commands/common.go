// Package commands implements the gofreq subcommands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sartorproj/gofreq/config"
	"github.com/sartorproj/gofreq/freq"
	"github.com/sartorproj/gofreq/internal/logging"
	"github.com/sartorproj/gofreq/sample"
)

const (
	serviceName = "gofreq"
	stdinArg    = "-"
)

// ErrNoInput is returned when neither a file, stdin nor inline values are given.
var ErrNoInput = errors.New("no input: pass a file, '-' for stdin, or --values")

// GlobalOptions holds the persistent root flags.
type GlobalOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	NoColor    bool
}

// RegisterFlags adds the persistent flags to the root command.
func (g *GlobalOptions) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&g.ConfigPath, "config", "", "config file (default: ./gofreq.yaml)")
	flags.StringVar(&g.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&g.LogFormat, "log-format", "", "log format: text, json")
	flags.BoolVar(&g.NoColor, "no-color", false, "disable colored output")
}

// inputFlags are shared by the commands that read a sample.
type inputFlags struct {
	values string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.values, "values", "", "inline sample, e.g. \"10 20 30\"")
	flags.String("value-column", "", "CSV column holding the observations")
	flags.String("delimiter", "", "CSV field delimiter")
	flags.Int("skip-rows", 0, "rows to skip before the CSV header")
	flags.Bool("no-header", false, "CSV input has no header row")
	flags.Bool("raw", false, "read input as whitespace/comma separated numbers instead of CSV")
	flags.Float64("min", 0, "lower classing bound (requires --classes and --max)")
	flags.Float64("max", 0, "upper classing bound (requires --classes and --min)")
	flags.Int("classes", 0, "number of classes (requires --min and --max)")
	flags.String("overrun", "", "last class policy: allow, clamp")
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"value-column": "input.value_column",
	"delimiter":    "input.delimiter",
	"skip-rows":    "input.skip_rows",
	"no-header":    "input.no_header",
	"raw":          "input.raw",
	"min":          "classing.min",
	"max":          "classing.max",
	"classes":      "classing.num_classes",
	"overrun":      "classing.overrun",
	"column":       "table.columns",
	"footer":       "table.footer",
	"format":       "render.format",
	"style":        "render.style",
	"title":        "render.title",
	"precision":    "render.precision",
	"humanize":     "render.humanize",
	"log-level":    "logging.level",
	"log-format":   "logging.format",
}

// loadConfig binds every changed flag of cmd over the file and environment
// configuration.
func loadConfig(cmd *cobra.Command, global *GlobalOptions) (*config.Config, error) {
	viperCfg := viper.New()

	for name, key := range flagKeys {
		flag := cmd.Flag(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := viperCfg.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	cfg, err := config.Load(viperCfg, global.ConfigPath)
	if err != nil {
		return nil, err
	}

	if global.NoColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	return cfg, nil
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(w, level, cfg.Logging.Format, serviceName), nil
}

// loadSample reads the sample from inline values, a file, or stdin.
func loadSample(cmd *cobra.Command, args []string, in inputFlags, cfg *config.Config) (*sample.Sample, error) {
	if in.values != "" {
		return sample.Parse(in.values)
	}
	if len(args) == 0 {
		return nil, ErrNoInput
	}

	var (
		r    io.Reader
		name = args[0]
	)
	if name == stdinArg {
		r = cmd.InOrStdin()
		name = "stdin"
	} else {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	var (
		smp *sample.Sample
		err error
	)
	if cfg.Input.Raw {
		smp, err = readRaw(r)
	} else {
		opts := sample.DefaultCSVOptions()
		opts.ValueColumn = cfg.Input.ValueColumn
		opts.Delimiter = cfg.CSVDelimiter()
		opts.SkipRows = cfg.Input.SkipRows
		opts.HasHeader = !cfg.Input.NoHeader
		smp, err = sample.LoadCSVFromReader(r, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return smp.WithName(name), nil
}

func readRaw(r io.Reader) (*sample.Sample, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return sample.Parse(string(data))
}

// newEngine builds the engine for a loaded sample.
func newEngine(smp *sample.Sample, cfg *config.Config, logger *slog.Logger) (*freq.Stat, error) {
	fc, err := cfg.FreqConfig()
	if err != nil {
		return nil, err
	}
	fc.Logger = logger

	logger.Debug("loaded sample", "name", smp.Name(), "observations", smp.Len())

	return freq.FromSample(smp, fc)
}
