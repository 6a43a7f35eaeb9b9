package freq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gofreq/stats"
)

// ClassMarks returns the midpoint of every class.
func (s *Stat) ClassMarks() ([]float64, error) {
	classes, err := s.Classes()
	if err != nil {
		return nil, err
	}
	return stats.Map(classes, func(_ int, c Class) float64 { return c.Mark() }), nil
}

// LessThanCF returns, for each class i, the sum of frequencies of classes 0..i.
func (s *Stat) LessThanCF() ([]int, error) {
	freqs, err := s.Frequencies()
	if err != nil {
		return nil, err
	}

	result := make([]int, len(freqs))
	for i := range freqs {
		result[i] = stats.SumRange(freqs, 0, i+1)
	}
	return result, nil
}

// GreaterThanCF returns, for each class i, the sum of frequencies of
// classes i..k-1.
func (s *Stat) GreaterThanCF() ([]int, error) {
	freqs, err := s.Frequencies()
	if err != nil {
		return nil, err
	}

	n := len(freqs)
	result := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		result[i] = stats.SumRange(freqs, i, n)
	}
	return result, nil
}

// groupedInputs returns the frequencies and class marks of every class.
func (s *Stat) groupedInputs() ([]int, []float64, error) {
	freqs, err := s.Frequencies()
	if err != nil {
		return nil, nil, err
	}
	marks, err := s.ClassMarks()
	if err != nil {
		return nil, nil, err
	}
	return freqs, marks, nil
}

// Mean returns sum(f*m) / sum(f), the class marks weighted by frequency.
func (s *Stat) Mean() (float64, error) {
	freqs, marks, err := s.groupedInputs()
	if err != nil {
		return 0, err
	}

	if stats.Sum(freqs) == 0 {
		return 0, fmt.Errorf("%w: mean with a total frequency of 0", ErrDivisionByZero)
	}

	return stat.Mean(marks, stats.ToFloats(freqs)), nil
}

// Median interpolates within the first class whose less-than cumulative
// frequency reaches n/2:
//
//	(lower - 0.5) + (n/2 - cf_before) / f * classSize
func (s *Stat) Median() (float64, error) {
	freqs, err := s.Frequencies()
	if err != nil {
		return 0, err
	}
	n := float64(stats.Sum(freqs))
	if n == 0 {
		return 0, fmt.Errorf("%w: median with a total frequency of 0", ErrDivisionByZero)
	}

	ltcf, err := s.LessThanCF()
	if err != nil {
		return 0, err
	}

	// The last cumulative frequency equals n, so some class always
	// qualifies and no fallback value is needed.
	idx := len(ltcf) - 1
	for i, cf := range ltcf {
		if float64(cf) >= n/2 {
			idx = i
			break
		}
	}
	if freqs[idx] == 0 {
		return 0, fmt.Errorf("%w: median class %d has zero frequency", ErrDivisionByZero, idx)
	}

	classes, err := s.Classes()
	if err != nil {
		return 0, err
	}
	size, err := s.ClassSize()
	if err != nil {
		return 0, err
	}

	cfBefore := 0.0
	if idx > 0 {
		cfBefore = float64(ltcf[idx-1])
	}

	lcb := classes[idx].Lower - 0.5
	return lcb + (n/2-cfBefore)/float64(freqs[idx])*size, nil
}

// ModalFrequency returns the largest class frequency.
func (s *Stat) ModalFrequency() (int, error) {
	freqs, err := s.Frequencies()
	if err != nil {
		return 0, err
	}
	return stats.Max(freqs), nil
}

// FrequencyMark returns f*m per class.
func (s *Stat) FrequencyMark() ([]float64, error) {
	freqs, marks, err := s.groupedInputs()
	if err != nil {
		return nil, err
	}
	return stats.Zip(freqs, marks, frequencyTimesMark), nil
}

// MarkSubMeanSq returns (m - mean)^2 per class.
func (s *Stat) MarkSubMeanSq() ([]float64, error) {
	marks, err := s.ClassMarks()
	if err != nil {
		return nil, err
	}
	mean, err := s.Mean()
	if err != nil {
		return nil, err
	}
	return stats.Map(marks, func(_ int, m float64) float64 {
		return math.Pow(m-mean, 2)
	}), nil
}

// FreqMarkSubMeanSq returns f*(m - mean)^2 per class.
func (s *Stat) FreqMarkSubMeanSq() ([]float64, error) {
	sq, err := s.MarkSubMeanSq()
	if err != nil {
		return nil, err
	}
	freqs, err := s.Frequencies()
	if err != nil {
		return nil, err
	}
	return stats.Zip(freqs, sq, frequencyTimesMark), nil
}

// SampleVariance returns sum(f*(m-mean)^2) / (sum(f) - 1).
func (s *Stat) SampleVariance() (float64, error) {
	freqs, marks, err := s.groupedInputs()
	if err != nil {
		return 0, err
	}
	if total := stats.Sum(freqs); total <= 1 {
		return 0, fmt.Errorf("%w: sample variance with a total frequency of %d", ErrDivisionByZero, total)
	}
	return stat.Variance(marks, stats.ToFloats(freqs)), nil
}

// StandardDeviation returns the square root of the sample variance.
func (s *Stat) StandardDeviation() (float64, error) {
	v, err := s.SampleVariance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// CoefficientOfVariation returns 100 * sd / mean.
func (s *Stat) CoefficientOfVariation() (float64, error) {
	sd, err := s.StandardDeviation()
	if err != nil {
		return 0, err
	}
	mean, err := s.Mean()
	if err != nil {
		return 0, err
	}
	if mean == 0 {
		return 0, fmt.Errorf("%w: coefficient of variation with a mean of 0", ErrDivisionByZero)
	}
	return 100 * sd / mean, nil
}

// VariationRatio returns 1 - modalFrequency / length.
func (s *Stat) VariationRatio() (float64, error) {
	modal, err := s.ModalFrequency()
	if err != nil {
		return 0, err
	}
	n := s.Length()
	if n == 0 {
		return 0, fmt.Errorf("%w: variation ratio of an empty sample", ErrDivisionByZero)
	}
	return 1 - float64(modal)/float64(n), nil
}

func frequencyTimesMark(f int, m float64) float64 {
	return float64(f) * m
}
