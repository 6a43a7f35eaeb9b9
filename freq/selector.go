package freq

import (
	"fmt"

	"github.com/sartorproj/gofreq/stats"
)

// Statistic names a scalar summary statistic.
type Statistic int

// Supported statistics.
const (
	StatisticUnknown Statistic = iota
	StatVariance
	StatSD
	StatCV
	StatVR
	StatMedian
	StatMean
	StatModalFreq
)

var statisticKeys = map[Statistic]string{
	StatVariance:  "variance",
	StatSD:        "SD",
	StatCV:        "CV",
	StatVR:        "VR",
	StatMedian:    "median",
	StatMean:      "mean",
	StatModalFreq: "modalFreq",
}

// AllStatistics returns every known statistic in display order.
func AllStatistics() []Statistic {
	return []Statistic{StatMean, StatMedian, StatModalFreq, StatVariance, StatSD, StatCV, StatVR}
}

// String returns the statistic key, or "unknown".
func (st Statistic) String() string {
	if key, ok := statisticKeys[st]; ok {
		return key
	}
	return "unknown"
}

// ParseStatistic maps a key such as "SD" or "modalFreq" to a Statistic.
// Unrecognized keys map to StatisticUnknown.
func ParseStatistic(key string) Statistic {
	for st, k := range statisticKeys {
		if k == key {
			return st
		}
	}
	return StatisticUnknown
}

// ParseStatistics maps every key with ParseStatistic and fails with
// ErrUnknownSelector on the first unrecognized one.
func ParseStatistics(keys []string) ([]Statistic, error) {
	result := make([]Statistic, 0, len(keys))
	for _, key := range keys {
		st := ParseStatistic(key)
		if st == StatisticUnknown {
			return nil, fmt.Errorf("%w: statistic %q", ErrUnknownSelector, key)
		}
		result = append(result, st)
	}
	return result, nil
}

// Result is the outcome of Compute. Known is false for an unrecognized
// statistic, in which case Value is 0.
type Result struct {
	Statistic Statistic
	Value     float64
	Known     bool
}

// Compute evaluates a named statistic. An unknown statistic yields a
// neutral Result and no error.
func (s *Stat) Compute(st Statistic) (Result, error) {
	var fn func() (float64, error)

	switch st {
	case StatVariance:
		fn = s.SampleVariance
	case StatSD:
		fn = s.StandardDeviation
	case StatCV:
		fn = s.CoefficientOfVariation
	case StatVR:
		fn = s.VariationRatio
	case StatMedian:
		fn = s.Median
	case StatMean:
		fn = s.Mean
	case StatModalFreq:
		fn = func() (float64, error) {
			m, err := s.ModalFrequency()
			return float64(m), err
		}
	default:
		return Result{Statistic: st}, nil
	}

	v, err := fn()
	if err != nil {
		return Result{Statistic: st, Known: true}, fmt.Errorf("%s: %w", st, err)
	}
	return Result{Statistic: st, Value: v, Known: true}, nil
}

// Series is one table column. A series holds either text labels or numbers.
type Series struct {
	Labels []string
	Values []float64
}

// TextSeries creates a series of labels.
func TextSeries(labels []string) Series {
	return Series{Labels: labels}
}

// NumberSeries creates a numeric series.
func NumberSeries(values []float64) Series {
	return Series{Values: values}
}

// Len returns the number of entries.
func (sr Series) Len() int {
	if sr.Labels != nil {
		return len(sr.Labels)
	}
	return len(sr.Values)
}

// Cell returns entry i, or an empty cell when i is out of range.
func (sr Series) Cell(i int) Cell {
	switch {
	case sr.Labels != nil && i < len(sr.Labels):
		return TextCell(sr.Labels[i])
	case sr.Labels == nil && i < len(sr.Values):
		return NumberCell(sr.Values[i])
	default:
		return Cell{}
	}
}

// ColumnKind identifies the series a Column produces.
type ColumnKind int

// Supported column kinds.
const (
	ColumnUnknown ColumnKind = iota
	ColumnClass
	ColumnFrequency
	ColumnMark
	ColumnFreqMark
	ColumnMarkSubMeanSq
	ColumnFreqMarkSubMeanSq
	ColumnLessThanCF
	ColumnGreaterThanCF
	ColumnCustom
)

// SeriesFunc computes a caller-supplied column.
type SeriesFunc func(*Stat) (Series, error)

// Column selects a table column. Label is used as the table header.
type Column struct {
	Kind  ColumnKind
	Label string
	Func  SeriesFunc
}

var columnKeys = map[string]ColumnKind{
	"c":     ColumnClass,
	"cs":    ColumnClass,
	"f":     ColumnFrequency,
	"cm":    ColumnMark,
	"fcm":   ColumnFreqMark,
	"mixq":  ColumnMarkSubMeanSq,
	"m_x2":  ColumnMarkSubMeanSq,
	"fmixq": ColumnFreqMarkSubMeanSq,
	"<cf":   ColumnLessThanCF,
	">cf":   ColumnGreaterThanCF,
}

// Predefined columns.
var (
	ClassCol             = Column{Kind: ColumnClass, Label: "c"}
	FrequencyCol         = Column{Kind: ColumnFrequency, Label: "f"}
	MarkCol              = Column{Kind: ColumnMark, Label: "cm"}
	FreqMarkCol          = Column{Kind: ColumnFreqMark, Label: "fcm"}
	MarkSubMeanSqCol     = Column{Kind: ColumnMarkSubMeanSq, Label: "mixq"}
	FreqMarkSubMeanSqCol = Column{Kind: ColumnFreqMarkSubMeanSq, Label: "fmixq"}
	LessThanCFCol        = Column{Kind: ColumnLessThanCF, Label: "<cf"}
	GreaterThanCFCol     = Column{Kind: ColumnGreaterThanCF, Label: ">cf"}
)

// DefaultColumns returns the columns used when none are requested:
// class, frequency, class mark, less-than and greater-than cumulative
// frequency.
func DefaultColumns() []Column {
	return []Column{ClassCol, FrequencyCol, MarkCol, LessThanCFCol, GreaterThanCFCol}
}

// Custom creates a caller-defined column.
func Custom(label string, fn SeriesFunc) Column {
	return Column{Kind: ColumnCustom, Label: label, Func: fn}
}

// ParseColumn maps a key such as "f" or "<cf" to a Column labelled with
// the key. Unrecognized keys yield a ColumnUnknown column.
func ParseColumn(key string) Column {
	kind, ok := columnKeys[key]
	if !ok {
		return Column{Kind: ColumnUnknown, Label: key}
	}
	return Column{Kind: kind, Label: key}
}

// ParseColumns maps every key with ParseColumn and fails with
// ErrUnknownSelector on the first unrecognized one.
func ParseColumns(keys []string) ([]Column, error) {
	result := make([]Column, 0, len(keys))
	for _, key := range keys {
		col := ParseColumn(key)
		if col.Kind == ColumnUnknown {
			return nil, fmt.Errorf("%w: column %q", ErrUnknownSelector, key)
		}
		result = append(result, col)
	}
	return result, nil
}

// Apply computes the series selected by col. An unknown column, or a custom
// column without a function, yields an empty series and no error.
func (s *Stat) Apply(col Column) (Series, error) {
	switch col.Kind {
	case ColumnClass:
		labels, err := s.ClassLabels()
		return TextSeries(labels), err
	case ColumnFrequency:
		return intSeries(s.Frequencies())
	case ColumnMark:
		return floatSeries(s.ClassMarks())
	case ColumnFreqMark:
		return floatSeries(s.FrequencyMark())
	case ColumnMarkSubMeanSq:
		return floatSeries(s.MarkSubMeanSq())
	case ColumnFreqMarkSubMeanSq:
		return floatSeries(s.FreqMarkSubMeanSq())
	case ColumnLessThanCF:
		return intSeries(s.LessThanCF())
	case ColumnGreaterThanCF:
		return intSeries(s.GreaterThanCF())
	case ColumnCustom:
		if col.Func == nil {
			return Series{}, nil
		}
		return col.Func(s)
	default:
		return Series{}, nil
	}
}

func intSeries(values []int, err error) (Series, error) {
	if err != nil {
		return Series{}, err
	}
	return NumberSeries(stats.ToFloats(values)), nil
}

func floatSeries(values []float64, err error) (Series, error) {
	if err != nil {
		return Series{}, err
	}
	return NumberSeries(values), nil
}
