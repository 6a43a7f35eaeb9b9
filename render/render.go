// Package render turns a freq.Table into text, markdown, HTML, CSV, JSON or
// YAML output.
package render

import (
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sartorproj/gofreq/freq"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// DefaultPrecision is the number of decimals used for non-integral values.
const DefaultPrecision = 2

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatHTML, FormatCSV, FormatJSON, FormatYAML}
}

// ParseFormat maps a format name to a Format. Names are case-insensitive
// and "md" is accepted for markdown.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "md" {
		return FormatMarkdown, nil
	}
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Options controls rendering.
type Options struct {
	Precision int    // Decimals for non-integral values; negative means shortest exact
	Title     string // Optional caption
	Humanize  bool   // Group thousands in text output
	Style     string // Table style for text output
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		Precision: DefaultPrecision,
		Style:     StyleLight,
	}
}

// Renderer writes a table to w.
type Renderer interface {
	Render(w io.Writer, t *freq.Table) error
}

// New returns the renderer for format.
func New(format Format, opts Options) (Renderer, error) {
	switch format {
	case FormatText, FormatMarkdown, FormatCSV:
		return &prettyRenderer{format: format, opts: opts}, nil
	case FormatHTML:
		return &htmlRenderer{pretty: prettyRenderer{format: format, opts: opts}}, nil
	case FormatJSON, FormatYAML:
		return &documentRenderer{format: format, opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// EscapeHTML escapes &, <, >, " and ' for inclusion in markup.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// FormatNumber formats v with precision decimals. Integral values are
// printed without decimals.
func FormatNumber(v float64, precision int) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func (o Options) formatCell(c freq.Cell) string {
	switch c.Kind {
	case freq.CellText:
		return c.Text
	case freq.CellNumber:
		return o.formatNumber(c.Number)
	default:
		return ""
	}
}

func (o Options) formatNumber(v float64) string {
	if o.Humanize {
		if v == math.Trunc(v) {
			return humanize.Comma(int64(v))
		}
		if o.Precision >= 0 {
			return humanize.CommafWithDigits(v, o.Precision)
		}
		return humanize.Commaf(v)
	}
	return FormatNumber(v, o.Precision)
}

func (o Options) formatFooter(e freq.FooterEntry) string {
	switch {
	case e.Err != nil:
		return "error: " + e.Err.Error()
	case !e.Known:
		return ""
	default:
		return o.formatNumber(e.Value)
	}
}
