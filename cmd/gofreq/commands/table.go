package commands

import (
	"github.com/spf13/cobra"

	"github.com/sartorproj/gofreq/render"
)

const (
	tableCmdUse   = "table [file|-]"
	tableCmdShort = "Print the grouped-frequency table of a sample"
)

// NewTableCommand creates the table subcommand.
func NewTableCommand(global *GlobalOptions) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   tableCmdUse,
		Short: tableCmdShort,
		Long: `Bin a numeric sample into classes and print the frequency table.

Columns: c (class), f (frequency), cm (class mark), fcm (f*cm),
mixq (cm-mean)^2, fmixq f*(cm-mean)^2, <cf, >cf (cumulative frequencies).
Footer statistics: mean, median, modalFreq, variance, SD, CV, VR.

Examples:
  gofreq table scores.csv --value-column score
  gofreq table --values "10 20 30 40 50" --min 10 --max 50 --classes 2
  gofreq table - --raw -c c -c f -c fcm --footer mean,SD -o markdown < data.txt
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, args, global, in)
		},
	}

	in.register(cmd)
	registerRenderFlags(cmd)
	cmd.Flags().StringSliceP("column", "c", nil, "table columns (repeatable or comma separated)")
	cmd.Flags().StringSliceP("footer", "f", nil, "footer statistics (repeatable or comma separated)")

	return cmd
}

func registerRenderFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("format", "o", "", "output format: text, markdown, html, csv, json, yaml")
	flags.String("style", "", "text table style: default, light, rounded, double, bold, colored")
	flags.String("title", "", "table title")
	flags.Int("precision", render.DefaultPrecision, "decimals for non-integral values")
	flags.Bool("humanize", false, "group thousands in text output")
}

func runTable(cmd *cobra.Command, args []string, global *GlobalOptions, in inputFlags) error {
	cfg, err := loadConfig(cmd, global)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	smp, err := loadSample(cmd, args, in, cfg)
	if err != nil {
		return err
	}

	engine, err := newEngine(smp, cfg, logger)
	if err != nil {
		return err
	}

	columns, err := cfg.Columns()
	if err != nil {
		return err
	}
	footer, err := cfg.Footer()
	if err != nil {
		return err
	}

	tbl, err := engine.CreateTable(columns, footer)
	if err != nil {
		return err
	}

	for _, e := range tbl.Footer {
		if e.Err != nil {
			logger.Warn("statistic unavailable", "statistic", e.Label, "error", e.Err)
		}
	}

	format, err := cfg.Format()
	if err != nil {
		return err
	}
	renderer, err := render.New(format, cfg.RenderOptions())
	if err != nil {
		return err
	}

	return renderer.Render(cmd.OutOrStdout(), tbl)
}
