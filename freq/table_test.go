package freq

import (
	"errors"
	"math"
	"testing"
)

func TestCreateTableDefaultColumns(t *testing.T) {
	s := mustNew(t, []float64{10, 20, 30, 40, 50}, &Config{
		Classing: &Classing{Min: 10, Max: 50, NumClasses: 2},
	})

	table, err := s.CreateTable(nil, nil)
	if err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}

	expectedHeader := []string{"c", "f", "cm", "<cf", ">cf"}
	for i, h := range expectedHeader {
		if table.Header[i] != h {
			t.Errorf("Header %d: expected %q, got %q", i, h, table.Header[i])
		}
	}

	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}

	expectedRows := [][]string{
		{"10" + LabelSeparator + "29", "2", "19.5", "2", "4"},
		{"30" + LabelSeparator + "49", "2", "39.5", "4", "2"},
	}
	for i, row := range expectedRows {
		for j, cell := range row {
			if got := table.Rows[i][j].String(); got != cell {
				t.Errorf("Cell (%d, %d): expected %q, got %q", i, j, cell, got)
			}
		}
	}

	expectedTotal := []string{TotalLabel, "4", "59", "6", "6"}
	for j, cell := range expectedTotal {
		if got := table.Total[j].String(); got != cell {
			t.Errorf("Total %d: expected %q, got %q", j, cell, got)
		}
	}
}

func TestCreateTableTotalIsColumnSum(t *testing.T) {
	s := mustNew(t, referenceData, nil)

	table, err := s.CreateTable([]Column{ClassCol, FrequencyCol, MarkCol, FreqMarkCol, FreqMarkSubMeanSqCol}, nil)
	if err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}

	for j := 1; j < len(table.Header); j++ {
		sum := 0.0
		for _, row := range table.Rows {
			sum += row[j].Number
		}
		if math.Abs(table.Total[j].Number-sum) > 1e-9 {
			t.Errorf("Column %q total %v, expected %v", table.Header[j], table.Total[j].Number, sum)
		}
	}

	if table.Total[1].Number != 40 {
		t.Errorf("Expected total frequency 40, got %v", table.Total[1].Number)
	}
	// sum(f*m) / n == mean
	if math.Abs(table.Total[3].Number/40-399.5) > 1e-9 {
		t.Errorf("Unexpected fcm total %v", table.Total[3].Number)
	}
}

func TestCreateTableFooter(t *testing.T) {
	s := mustNew(t, referenceData, nil)

	table, err := s.CreateTable(nil, []Statistic{StatMean, StatModalFreq, StatisticUnknown})
	if err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}

	if len(table.Footer) != 3 {
		t.Fatalf("Expected 3 footer entries, got %d", len(table.Footer))
	}
	if table.Footer[0].Label != "mean" || table.Footer[0].Value != 399.5 || table.Footer[0].Err != nil {
		t.Errorf("Unexpected mean entry: %+v", table.Footer[0])
	}
	if table.Footer[1].Value != 11 {
		t.Errorf("Unexpected modal frequency entry: %+v", table.Footer[1])
	}
	if table.Footer[2].Known || table.Footer[2].Err != nil {
		t.Errorf("Unknown statistic should be neutral: %+v", table.Footer[2])
	}
}

func TestCreateTableFooterErrorIsIsolated(t *testing.T) {
	s := mustNew(t, []float64{1, 100}, &Config{
		Classing: &Classing{Min: 1, Max: 50, NumClasses: 1},
	})

	table, err := s.CreateTable(nil, []Statistic{StatMean, StatVariance})
	if err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}

	if table.Footer[0].Err != nil || table.Footer[0].Value != 25 {
		t.Errorf("Mean should be available: %+v", table.Footer[0])
	}
	if !errors.Is(table.Footer[1].Err, ErrDivisionByZero) {
		t.Errorf("Expected ErrDivisionByZero for variance, got %v", table.Footer[1].Err)
	}
	if len(table.Rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.Rows))
	}
}

func TestCreateTableShortCustomColumn(t *testing.T) {
	s := mustNew(t, referenceData, nil)

	short := Custom("first", func(*Stat) (Series, error) {
		return NumberSeries([]float64{42}), nil
	})

	table, err := s.CreateTable([]Column{ClassCol, short, ParseColumn("bogus")}, nil)
	if err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}

	if table.Rows[0][1].Number != 42 {
		t.Errorf("Expected 42 in first row, got %v", table.Rows[0][1])
	}
	for i := 1; i < len(table.Rows); i++ {
		if table.Rows[i][1].Kind != CellEmpty {
			t.Errorf("Row %d: expected empty filler, got %v", i, table.Rows[i][1])
		}
	}
	for i := range table.Rows {
		if table.Rows[i][2].Kind != CellEmpty {
			t.Errorf("Row %d: unknown column should be empty, got %v", i, table.Rows[i][2])
		}
	}
	if table.Total[1].Number != 42 {
		t.Errorf("Expected total 42, got %v", table.Total[1])
	}
	if table.Total[2].Kind != CellEmpty {
		t.Errorf("Unknown column total should be empty, got %v", table.Total[2])
	}
}

func TestCreateTableCustomColumnUsesEngine(t *testing.T) {
	s := mustNew(t, referenceData, nil)

	relative := Custom("rf", func(st *Stat) (Series, error) {
		freqs, err := st.Frequencies()
		if err != nil {
			return Series{}, err
		}
		out := make([]float64, len(freqs))
		for i, f := range freqs {
			out[i] = float64(f) / float64(st.Length())
		}
		return NumberSeries(out), nil
	})

	table, err := s.CreateTable([]Column{FrequencyCol, relative}, nil)
	if err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}
	if math.Abs(table.Total[1].Number-1) > 1e-9 {
		t.Errorf("Relative frequencies should sum to 1, got %v", table.Total[1].Number)
	}
	// The first column is always replaced by the total label.
	if table.Total[0].String() != TotalLabel {
		t.Errorf("Expected total label, got %q", table.Total[0].String())
	}
}

func TestCreateTableColumnError(t *testing.T) {
	s := mustNew(t, []float64{5, 5, 5}, &Config{
		Classing: &Classing{Min: 0, Max: 10, NumClasses: 2},
	})

	failing := Custom("boom", func(*Stat) (Series, error) {
		return Series{}, ErrDivisionByZero
	})

	if _, err := s.CreateTable([]Column{ClassCol, failing}, nil); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Expected column error to propagate, got %v", err)
	}
}

func TestCreateTableInvalidInput(t *testing.T) {
	s := mustNew(t, []float64{5, 5, 5}, nil)
	if _, err := s.CreateTable(nil, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}
