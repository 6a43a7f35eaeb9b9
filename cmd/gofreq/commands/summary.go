package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gofreq/freq"
	"github.com/sartorproj/gofreq/render"
)

const (
	summaryCmdUse   = "summary [file|-]"
	summaryCmdShort = "Print every grouped-frequency statistic of a sample"
	summaryStatCol  = "statistic"
	summaryValueCol = "value"
)

// NewSummaryCommand creates the summary subcommand.
func NewSummaryCommand(global *GlobalOptions) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   summaryCmdUse,
		Short: summaryCmdShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, args, global, in)
		},
	}

	in.register(cmd)
	registerRenderFlags(cmd)

	return cmd
}

func runSummary(cmd *cobra.Command, args []string, global *GlobalOptions, in inputFlags) error {
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

	tbl, err := summaryTable(engine)
	if err != nil {
		return err
	}

	format, err := cfg.Format()
	if err != nil {
		return err
	}
	renderer, err := render.New(format, cfg.RenderOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == render.FormatText {
		heading := color.New(color.FgCyan, color.Bold)
		if _, err := heading.Fprintf(out, "%s (%d observations, raw mean %s)\n",
			smp.Name(), smp.Len(), render.FormatNumber(smp.Mean(), cfg.Render.Precision)); err != nil {
			return err
		}
	}

	return renderer.Render(out, tbl)
}

// summaryTable lays out the classing parameters and every statistic as a
// two-column table. Statistics that cannot be computed show their error.
func summaryTable(engine *freq.Stat) (*freq.Table, error) {
	k, err := engine.NumClasses()
	if err != nil {
		return nil, err
	}
	size, err := engine.ClassSize()
	if err != nil {
		return nil, err
	}
	lo, err := engine.Min()
	if err != nil {
		return nil, err
	}
	hi, err := engine.Max()
	if err != nil {
		return nil, err
	}
	total, err := engine.TotalFrequency()
	if err != nil {
		return nil, err
	}

	tbl := &freq.Table{Header: []string{summaryStatCol, summaryValueCol}}

	add := func(label string, value freq.Cell) {
		tbl.Rows = append(tbl.Rows, []freq.Cell{freq.TextCell(label), value})
	}

	add("n", freq.NumberCell(float64(engine.Length())))
	add("total frequency", freq.NumberCell(float64(total)))
	add("min", freq.NumberCell(lo))
	add("max", freq.NumberCell(hi))
	add("classes", freq.NumberCell(float64(k)))
	add("class size", freq.NumberCell(size))

	for _, st := range freq.AllStatistics() {
		res, err := engine.Compute(st)
		if err != nil {
			add(st.String(), freq.TextCell(fmt.Sprintf("error: %v", err)))
			continue
		}
		add(st.String(), freq.NumberCell(res.Value))
	}

	return tbl, nil
}
