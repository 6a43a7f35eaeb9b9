package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gofreq/freq"
)

func sampleTable(t *testing.T) *freq.Table {
	t.Helper()

	s, err := freq.New([]float64{10, 20, 30, 40, 50}, &freq.Config{
		Classing: &freq.Classing{Min: 10, Max: 50, NumClasses: 2},
	})
	require.NoError(t, err)

	tbl, err := s.CreateTable(nil, []freq.Statistic{freq.StatMean, freq.StatisticUnknown})
	require.NoError(t, err)

	return tbl
}

func renderString(t *testing.T, format Format, opts Options, tbl *freq.Table) string {
	t.Helper()

	r, err := New(format, opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tbl))

	return buf.String()
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range Formats() {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	md, err := ParseFormat("md")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, md)

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNewUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := New(Format("xml"), DefaultOptions())
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Title = "Scores"
	out := renderString(t, FormatText, opts, sampleTable(t))

	assert.Contains(t, out, "Scores")
	assert.Contains(t, out, "10"+freq.LabelSeparator+"29")
	assert.Contains(t, out, "<cf")
	assert.Contains(t, out, "19.50")
	assert.Contains(t, out, freq.TotalLabel)
	assert.Contains(t, out, "59")
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "29.50")
}

func TestRenderTextStyles(t *testing.T) {
	t.Parallel()

	tbl := sampleTable(t)
	for _, style := range []string{StyleDefault, StyleRounded, StyleDouble, StyleBold, StyleColored, "unknown"} {
		opts := DefaultOptions()
		opts.Style = style
		assert.Contains(t, renderString(t, FormatText, opts, tbl), freq.TotalLabel, style)
	}
}

func TestRenderHumanize(t *testing.T) {
	t.Parallel()

	tbl := &freq.Table{
		Header: []string{"c", "fcm"},
		Rows: [][]freq.Cell{
			{freq.TextCell("a"), freq.NumberCell(1234567)},
			{freq.TextCell("b"), freq.NumberCell(1234.5678)},
		},
		Total: []freq.Cell{freq.TextCell(freq.TotalLabel), freq.NumberCell(1235801.5678)},
	}

	opts := DefaultOptions()
	opts.Humanize = true
	out := renderString(t, FormatText, opts, tbl)

	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "1,234.57")
}

func TestRenderHTMLEscapes(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Title = "<b>Scores & more</b>"
	out := renderString(t, FormatHTML, opts, sampleTable(t))

	assert.Contains(t, out, "<h3>&lt;b&gt;Scores &amp; more&lt;/b&gt;</h3>")
	assert.Contains(t, out, "<table")
	assert.Contains(t, out, "&lt;cf")
	assert.NotContains(t, out, "<b>Scores")
}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	out := renderString(t, FormatMarkdown, DefaultOptions(), sampleTable(t))

	assert.True(t, strings.HasPrefix(out, "|"))
	assert.Contains(t, out, freq.TotalLabel)
}

func TestRenderCSV(t *testing.T) {
	t.Parallel()

	out := renderString(t, FormatCSV, DefaultOptions(), sampleTable(t))

	assert.Contains(t, out, "total,4,59,6,6")
	assert.Contains(t, out, "mean,29.50")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Title = "Scores"
	out := renderString(t, FormatJSON, opts, sampleTable(t))

	var doc document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "Scores", doc.Title)
	assert.Equal(t, []string{"c", "f", "cm", "<cf", ">cf"}, doc.Header)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "10"+freq.LabelSeparator+"29", doc.Rows[0][0])
	assert.InDelta(t, 19.5, doc.Rows[0][2], 1e-9)
	assert.Equal(t, freq.TotalLabel, doc.Total[0])
	assert.InDelta(t, 59.0, doc.Total[2], 1e-9)

	require.Len(t, doc.Footer, 2)
	require.NotNil(t, doc.Footer[0].Value)
	assert.InDelta(t, 29.5, *doc.Footer[0].Value, 1e-9)
	assert.Nil(t, doc.Footer[1].Value)
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()

	out := renderString(t, FormatYAML, DefaultOptions(), sampleTable(t))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, []any{"c", "f", "cm", "<cf", ">cf"}, doc["header"])
	total, ok := doc["total"].([]any)
	require.True(t, ok)
	assert.Equal(t, freq.TotalLabel, total[0])
}

func TestRenderFooterError(t *testing.T) {
	t.Parallel()

	s, err := freq.New([]float64{1, 100}, &freq.Config{
		Classing: &freq.Classing{Min: 1, Max: 50, NumClasses: 1},
	})
	require.NoError(t, err)

	tbl, err := s.CreateTable(nil, []freq.Statistic{freq.StatVariance})
	require.NoError(t, err)

	out := renderString(t, FormatText, DefaultOptions(), tbl)
	assert.Contains(t, out, "error:")

	jsonOut := renderString(t, FormatJSON, DefaultOptions(), tbl)
	assert.Contains(t, jsonOut, "division by zero")
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "40", FormatNumber(40, 2))
	assert.Equal(t, "19.50", FormatNumber(19.5, 2))
	assert.Equal(t, "19.5", FormatNumber(19.5, -1))
	assert.Equal(t, "-3", FormatNumber(-3, 4))
}

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&lt;a href=&#34;x&#34;&gt;&amp;&#39;", EscapeHTML(`<a href="x">&'`))
}
