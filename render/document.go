package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gofreq/freq"
)

// document is the serialized form of a table. Empty cells are null, text
// cells are strings and numeric cells are numbers.
type document struct {
	Title  string          `json:"title,omitempty" yaml:"title,omitempty"`
	Header []string        `json:"header" yaml:"header"`
	Rows   [][]any         `json:"rows" yaml:"rows"`
	Total  []any           `json:"total" yaml:"total"`
	Footer []footerElement `json:"footer,omitempty" yaml:"footer,omitempty"`
}

type footerElement struct {
	Label string   `json:"label" yaml:"label"`
	Value *float64 `json:"value" yaml:"value"`
	Error string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// documentRenderer renders JSON or YAML.
type documentRenderer struct {
	format Format
	opts   Options
}

func (r *documentRenderer) Render(w io.Writer, t *freq.Table) error {
	doc := newDocument(t, r.opts.Title)

	if r.format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func newDocument(t *freq.Table, title string) document {
	doc := document{
		Title:  title,
		Header: t.Header,
		Rows:   make([][]any, len(t.Rows)),
		Total:  cellValues(t.Total),
	}
	for i, row := range t.Rows {
		doc.Rows[i] = cellValues(row)
	}
	for _, e := range t.Footer {
		el := footerElement{Label: e.Label}
		switch {
		case e.Err != nil:
			el.Error = e.Err.Error()
		case e.Known:
			v := e.Value
			el.Value = &v
		}
		doc.Footer = append(doc.Footer, el)
	}
	return doc
}

func cellValues(cells []freq.Cell) []any {
	values := make([]any, len(cells))
	for i, c := range cells {
		switch c.Kind {
		case freq.CellText:
			values[i] = c.Text
		case freq.CellNumber:
			values[i] = c.Number
		}
	}
	return values
}
