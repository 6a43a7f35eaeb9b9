package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/sartorproj/gofreq/freq"
)

// Table styles for text output.
const (
	StyleDefault = "default"
	StyleLight   = "light"
	StyleRounded = "rounded"
	StyleDouble  = "double"
	StyleBold    = "bold"
	StyleColored = "colored"
)

var styles = map[string]table.Style{
	StyleDefault: table.StyleDefault,
	StyleLight:   table.StyleLight,
	StyleRounded: table.StyleRounded,
	StyleDouble:  table.StyleDouble,
	StyleBold:    table.StyleBold,
	StyleColored: table.StyleColoredBright,
}

// prettyRenderer renders through a go-pretty table writer.
type prettyRenderer struct {
	format Format
	opts   Options
}

func (r *prettyRenderer) Render(w io.Writer, t *freq.Table) error {
	tbl := r.build(t, r.format == FormatText)

	var out string
	switch r.format {
	case FormatMarkdown:
		out = tbl.RenderMarkdown()
	case FormatCSV:
		out = tbl.RenderCSV()
	default:
		out = tbl.Render()
	}

	_, err := fmt.Fprintln(w, out)
	return err
}

func (r *prettyRenderer) build(t *freq.Table, withTitle bool) table.Writer {
	tbl := table.NewWriter()

	style, ok := styles[r.opts.Style]
	if !ok {
		style = table.StyleLight
	}
	tbl.SetStyle(style)
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.Style().Options.SeparateRows = false

	if withTitle && r.opts.Title != "" {
		tbl.SetTitle(r.opts.Title)
	}

	width := len(t.Header)

	header := make(table.Row, width)
	for i, h := range t.Header {
		header[i] = h
	}
	tbl.AppendHeader(header)

	configs := make([]table.ColumnConfig, 0, width)
	for j := 1; j < width; j++ {
		configs = append(configs, table.ColumnConfig{Number: j + 1, Align: text.AlignRight})
	}
	tbl.SetColumnConfigs(configs)

	for _, row := range t.Rows {
		tbl.AppendRow(r.row(row))
	}

	if len(t.Total) > 0 {
		tbl.AppendSeparator()
		tbl.AppendRow(r.row(t.Total))
	}

	for _, e := range t.Footer {
		tbl.AppendFooter(r.footerRow(e, width))
	}

	return tbl
}

func (r *prettyRenderer) row(cells []freq.Cell) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = r.opts.formatCell(c)
	}
	return row
}

// footerRow puts the statistic name in the first column and its value in
// the second; the remaining columns stay blank.
func (r *prettyRenderer) footerRow(e freq.FooterEntry, width int) table.Row {
	row := make(table.Row, max(width, 2))
	for i := range row {
		row[i] = ""
	}
	row[0] = e.Label
	row[1] = r.opts.formatFooter(e)
	return row
}

// htmlRenderer wraps the go-pretty HTML table with an escaped heading.
type htmlRenderer struct {
	pretty prettyRenderer
}

func (r *htmlRenderer) Render(w io.Writer, t *freq.Table) error {
	var b strings.Builder
	if title := r.pretty.opts.Title; title != "" {
		fmt.Fprintf(&b, "<h3>%s</h3>\n", EscapeHTML(title))
	}
	b.WriteString(r.pretty.build(t, false).RenderHTML())

	_, err := fmt.Fprintln(w, b.String())
	return err
}
