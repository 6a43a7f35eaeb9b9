package freq

import (
	"fmt"
	"strconv"
)

// TotalLabel replaces the first cell of the total row.
const TotalLabel = "total"

// CellKind identifies the content of a Cell.
type CellKind int

// Cell kinds.
const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one table value.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// TextCell creates a text cell.
func TextCell(text string) Cell {
	return Cell{Kind: CellText, Text: text}
}

// NumberCell creates a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// String formats the cell with the shortest exact representation.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// FooterEntry is a named summary statistic below the table. Err is set when
// the statistic could not be computed; the rest of the table is unaffected.
type FooterEntry struct {
	Statistic Statistic
	Label     string
	Value     float64
	Known     bool
	Err       error
}

// Table is a row-major grouped-frequency table ready for rendering.
type Table struct {
	Header []string
	Rows   [][]Cell
	Total  []Cell
	Footer []FooterEntry
}

// CreateTable computes every column and transposes them into one row per
// class. Cells missing from a short series are empty. The total row sums
// the numeric cells of each column, with the first cell replaced by
// TotalLabel. Footer statistics are computed independently; a failing
// statistic is reported in its FooterEntry.
//
// A nil or empty columns slice selects DefaultColumns.
func (s *Stat) CreateTable(columns []Column, footer []Statistic) (*Table, error) {
	if len(columns) == 0 {
		columns = DefaultColumns()
	}

	k, err := s.NumClasses()
	if err != nil {
		return nil, err
	}

	header := make([]string, len(columns))
	series := make([]Series, len(columns))
	for j, col := range columns {
		header[j] = col.Label
		sr, err := s.Apply(col)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Label, err)
		}
		series[j] = sr
	}

	rows := make([][]Cell, k)
	for i := range rows {
		row := make([]Cell, len(series))
		for j, sr := range series {
			row[j] = sr.Cell(i)
		}
		rows[i] = row
	}

	return &Table{
		Header: header,
		Rows:   rows,
		Total:  totalRow(rows, len(columns)),
		Footer: s.footer(footer),
	}, nil
}

func totalRow(rows [][]Cell, width int) []Cell {
	total := make([]Cell, width)
	for j := 1; j < width; j++ {
		for _, row := range rows {
			if row[j].Kind != CellNumber {
				continue
			}
			total[j].Kind = CellNumber
			total[j].Number += row[j].Number
		}
	}
	if width > 0 {
		total[0] = TextCell(TotalLabel)
	}
	return total
}

func (s *Stat) footer(names []Statistic) []FooterEntry {
	entries := make([]FooterEntry, 0, len(names))
	for _, st := range names {
		res, err := s.Compute(st)
		entries = append(entries, FooterEntry{
			Statistic: st,
			Label:     st.String(),
			Value:     res.Value,
			Known:     res.Known,
			Err:       err,
		})
	}
	return entries
}
