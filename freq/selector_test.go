package freq

import (
	"errors"
	"math"
	"testing"
)

func TestParseStatistic(t *testing.T) {
	tests := []struct {
		key      string
		expected Statistic
	}{
		{"variance", StatVariance},
		{"SD", StatSD},
		{"CV", StatCV},
		{"VR", StatVR},
		{"median", StatMedian},
		{"mean", StatMean},
		{"modalFreq", StatModalFreq},
		{"sd", StatisticUnknown},
		{"unknown_key", StatisticUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := ParseStatistic(tt.key); got != tt.expected {
				t.Errorf("ParseStatistic(%q) = %v, expected %v", tt.key, got, tt.expected)
			}
		})
	}

	for _, st := range AllStatistics() {
		if ParseStatistic(st.String()) != st {
			t.Errorf("Statistic %v does not round-trip through its key", st)
		}
	}
}

func TestParseStatistics(t *testing.T) {
	sts, err := ParseStatistics([]string{"mean", "SD"})
	if err != nil || len(sts) != 2 || sts[1] != StatSD {
		t.Errorf("Unexpected result %v (%v)", sts, err)
	}

	if _, err := ParseStatistics([]string{"mean", "mode"}); !errors.Is(err, ErrUnknownSelector) {
		t.Errorf("Expected ErrUnknownSelector, got %v", err)
	}
}

func TestParseColumn(t *testing.T) {
	tests := []struct {
		key      string
		expected ColumnKind
	}{
		{"c", ColumnClass},
		{"cs", ColumnClass},
		{"f", ColumnFrequency},
		{"cm", ColumnMark},
		{"fcm", ColumnFreqMark},
		{"mixq", ColumnMarkSubMeanSq},
		{"m_x2", ColumnMarkSubMeanSq},
		{"fmixq", ColumnFreqMarkSubMeanSq},
		{"<cf", ColumnLessThanCF},
		{">cf", ColumnGreaterThanCF},
		{"unknown_key", ColumnUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			col := ParseColumn(tt.key)
			if col.Kind != tt.expected {
				t.Errorf("ParseColumn(%q).Kind = %v, expected %v", tt.key, col.Kind, tt.expected)
			}
			if col.Label != tt.key {
				t.Errorf("Expected label %q, got %q", tt.key, col.Label)
			}
		})
	}

	if _, err := ParseColumns([]string{"c", "x"}); !errors.Is(err, ErrUnknownSelector) {
		t.Errorf("Expected ErrUnknownSelector, got %v", err)
	}
}

func TestComputeUnknownIsNeutral(t *testing.T) {
	s := mustNew(t, referenceData, nil)

	res, err := s.Compute(ParseStatistic("unknown_key"))
	if err != nil {
		t.Fatalf("Unknown statistic should not fail: %v", err)
	}
	if res.Known || res.Value != 0 {
		t.Errorf("Expected neutral result, got %+v", res)
	}
}

func TestApplyUnknownIsNeutral(t *testing.T) {
	s := mustNew(t, referenceData, nil)

	sr, err := s.Apply(ParseColumn("unknown_key"))
	if err != nil {
		t.Fatalf("Unknown column should not fail: %v", err)
	}
	if sr.Len() != 0 {
		t.Errorf("Expected empty series, got %d entries", sr.Len())
	}

	sr, err = s.Apply(Custom("nil", nil))
	if err != nil || sr.Len() != 0 {
		t.Errorf("Custom column without a function should be empty, got %d (%v)", sr.Len(), err)
	}
}

func TestComputeMatchesMethods(t *testing.T) {
	s := mustNew(t, referenceData, nil)

	methods := map[Statistic]func() (float64, error){
		StatVariance: s.SampleVariance,
		StatSD:       s.StandardDeviation,
		StatCV:       s.CoefficientOfVariation,
		StatVR:       s.VariationRatio,
		StatMedian:   s.Median,
		StatMean:     s.Mean,
	}

	for st, fn := range methods {
		want, err := fn()
		if err != nil {
			t.Fatalf("%v failed: %v", st, err)
		}
		res, err := s.Compute(st)
		if err != nil {
			t.Fatalf("Compute(%v) failed: %v", st, err)
		}
		if !res.Known || math.Abs(res.Value-want) > 1e-12 {
			t.Errorf("Compute(%v) = %+v, expected %v", st, res, want)
		}
	}
}

func TestComputeWrapsErrors(t *testing.T) {
	s := mustNew(t, []float64{5, 5, 5}, nil)

	res, err := s.Compute(StatMean)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
	if !res.Known {
		t.Error("A failing known statistic should still report Known")
	}
}

func TestApplySeries(t *testing.T) {
	s := mustNew(t, referenceData, nil)

	sr, err := s.Apply(FreqMarkCol)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if sr.Len() != 6 || sr.Values[0] != 8*171.5 {
		t.Errorf("Unexpected f*m series: %v", sr.Values)
	}

	sq, err := s.Apply(MarkSubMeanSqCol)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if math.Abs(sq.Values[0]-math.Pow(171.5-399.5, 2)) > 1e-9 {
		t.Errorf("Unexpected (m-mean)^2 series: %v", sq.Values)
	}

	labels, err := s.Apply(ClassCol)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if labels.Cell(0).Kind != CellText || labels.Cell(10).Kind != CellEmpty {
		t.Errorf("Unexpected label cells: %v %v", labels.Cell(0), labels.Cell(10))
	}
}
