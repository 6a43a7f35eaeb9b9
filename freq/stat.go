// Package freq computes grouped-frequency descriptive statistics.
package freq

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/sartorproj/gofreq/sample"
	"github.com/sartorproj/gofreq/stats"
)

// LabelSeparator separates the bounds in a class label.
const LabelSeparator = "−"

// Class is a closed interval [Lower, Upper].
type Class struct {
	Lower float64
	Upper float64
}

// Contains reports whether x lies within the class bounds.
func (c Class) Contains(x float64) bool {
	return c.Lower <= x && x <= c.Upper
}

// Mark returns the class midpoint.
func (c Class) Mark() float64 {
	return (c.Lower + c.Upper) / 2
}

// Label formats the class as "<lower>−<upper>".
func (c Class) Label() string {
	return formatBound(c.Lower) + LabelSeparator + formatBound(c.Upper)
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Stat is the grouped-frequency engine for one sample.
//
// Classing parameters, the class list and the frequency table are computed
// at most once and then reused for the lifetime of the instance. A Stat is
// not safe for concurrent use.
type Stat struct {
	data   []float64
	config Config
	logger *slog.Logger

	min, max       float64
	minSet, maxSet bool
	numClasses     int
	numClassesSet  bool
	length         int
	lengthSet      bool

	classes     []Class
	classesErr  error
	classesDone bool

	freqs     []int
	freqsErr  error
	freqsDone bool
}

// New creates an engine over values. The slice is copied. A nil config uses
// DefaultConfig. NaN and infinite observations are rejected with
// ErrInvalidInput.
func New(values []float64, config *Config) (*Stat, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	for i, x := range values {
		if !isFinite(x) {
			return nil, fmt.Errorf("%w: observation %d is %v", ErrInvalidInput, i, x)
		}
	}

	data := make([]float64, len(values))
	copy(data, values)

	s := &Stat{
		data:   data,
		config: *config,
		logger: config.Logger,
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	if c := config.Classing; c != nil {
		s.min, s.minSet = c.Min, true
		s.max, s.maxSet = c.Max, true
		s.numClasses, s.numClassesSet = c.NumClasses, true
	}

	if config.Length != nil {
		s.length, s.lengthSet = *config.Length, true
		s.config.Length = nil
	}

	if config.Frequencies != nil {
		s.config.Frequencies = append([]int(nil), config.Frequencies...)
	}

	return s, nil
}

// FromSample creates an engine over a loaded sample.
func FromSample(smp *sample.Sample, config *Config) (*Stat, error) {
	if smp == nil {
		return nil, fmt.Errorf("%w: nil sample", ErrInvalidInput)
	}
	return New(smp.Values(), config)
}

// Min returns the lower classing bound: the override if configured,
// otherwise the smallest observation.
func (s *Stat) Min() (float64, error) {
	if s.minSet {
		return s.min, nil
	}
	if len(s.data) == 0 {
		return 0, fmt.Errorf("%w: min of an empty sample", ErrInvalidInput)
	}

	s.min, s.minSet = sample.New(s.data).Min(), true
	return s.min, nil
}

// Max returns the upper classing bound: the override if configured,
// otherwise the largest observation.
func (s *Stat) Max() (float64, error) {
	if s.maxSet {
		return s.max, nil
	}
	if len(s.data) == 0 {
		return 0, fmt.Errorf("%w: max of an empty sample", ErrInvalidInput)
	}

	s.max, s.maxSet = sample.New(s.data).Max(), true
	return s.max, nil
}

// Range returns Max - Min.
func (s *Stat) Range() (float64, error) {
	lo, err := s.Min()
	if err != nil {
		return 0, err
	}
	hi, err := s.Max()
	if err != nil {
		return 0, err
	}
	return hi - lo, nil
}

// Length returns the configured length override or the sample size.
func (s *Stat) Length() int {
	if s.lengthSet {
		return s.length
	}
	return len(s.data)
}

// NumClasses returns the override if configured, otherwise round(sqrt(n)).
func (s *Stat) NumClasses() (int, error) {
	if s.numClassesSet {
		return s.numClasses, nil
	}

	k := int(stats.Round(math.Sqrt(float64(s.Length()))))
	if k < 1 {
		return 0, fmt.Errorf("%w: cannot derive classes from %d observations", ErrInvalidInput, s.Length())
	}

	s.numClasses, s.numClassesSet = k, true
	return k, nil
}

// ClassSize returns round(range / numClasses).
//
// A zero range or a class size that rounds to zero would never advance the
// class walk, so both are reported as ErrInvalidInput.
func (s *Stat) ClassSize() (float64, error) {
	r, err := s.Range()
	if err != nil {
		return 0, err
	}
	if r == 0 {
		return 0, fmt.Errorf("%w: range is zero", ErrInvalidInput)
	}

	k, err := s.NumClasses()
	if err != nil {
		return 0, err
	}

	size := stats.Round(r / float64(k))
	if size <= 0 {
		return 0, fmt.Errorf("%w: class size rounds to %v for range %v and %d classes", ErrInvalidInput, size, r, k)
	}
	return size, nil
}

// Classes returns the class list. Classes are walked upward from Min in
// steps of ClassSize; each class spans ClassSize consecutive values, so the
// last upper bound is Min + ClassSize*NumClasses - 1 and may exceed Max
// unless the OverrunClamp policy is configured.
//
// Bounds are integral steps: an observation strictly between one class's
// upper bound and the next class's lower bound (4.5 between [0, 4] and
// [5, 9]) belongs to no class and is not counted. Every observation in
// [Min, last upper bound] is binned only for integer-valued samples.
func (s *Stat) Classes() ([]Class, error) {
	if !s.classesDone {
		s.classes, s.classesErr = s.buildClasses()
		s.classesDone = true
	}
	if s.classesErr != nil {
		return nil, s.classesErr
	}
	return append([]Class(nil), s.classes...), nil
}

func (s *Stat) buildClasses() ([]Class, error) {
	size, err := s.ClassSize()
	if err != nil {
		return nil, err
	}
	k, err := s.NumClasses()
	if err != nil {
		return nil, err
	}
	lower, err := s.Min()
	if err != nil {
		return nil, err
	}
	hi, err := s.Max()
	if err != nil {
		return nil, err
	}

	classes := make([]Class, k)
	for i := range classes {
		classes[i] = Class{Lower: lower, Upper: lower + size - 1}
		lower += size
	}

	last := &classes[k-1]
	if s.config.Overrun == OverrunClamp && last.Upper > hi {
		last.Upper = hi
	}

	s.logger.Debug("built classes",
		"min", classes[0].Lower,
		"max", hi,
		"classes", k,
		"class_size", size,
		"last_upper", last.Upper)

	return classes, nil
}

// ClassLabels formats every class as "<lower>−<upper>".
func (s *Stat) ClassLabels() ([]string, error) {
	classes, err := s.Classes()
	if err != nil {
		return nil, err
	}
	return stats.Map(classes, func(_ int, c Class) string { return c.Label() }), nil
}

// Frequencies returns one count per class. With an override configured the
// override is returned; otherwise each observation is counted in the first
// class containing it, and observations outside every class are dropped.
func (s *Stat) Frequencies() ([]int, error) {
	if !s.freqsDone {
		s.freqs, s.freqsErr = s.buildFrequencies()
		s.freqsDone = true
	}
	if s.freqsErr != nil {
		return nil, s.freqsErr
	}
	return append([]int(nil), s.freqs...), nil
}

func (s *Stat) buildFrequencies() ([]int, error) {
	if len(s.config.Frequencies) > 0 {
		k, err := s.NumClasses()
		if err != nil {
			return nil, err
		}
		if len(s.config.Frequencies) != k {
			return nil, fmt.Errorf("%w: %d frequencies for %d classes", ErrInvalidInput, len(s.config.Frequencies), k)
		}
		return s.config.Frequencies, nil
	}

	classes, err := s.Classes()
	if err != nil {
		return nil, err
	}

	freqs := make([]int, len(classes))
	dropped := 0
	for _, x := range s.data {
		binned := false
		for i, c := range classes {
			if c.Contains(x) {
				freqs[i]++
				binned = true
				break
			}
		}
		if !binned {
			dropped++
		}
	}

	s.logger.Debug("binned observations",
		"observations", len(s.data),
		"total_frequency", stats.Sum(freqs),
		"dropped", dropped)

	return freqs, nil
}

// TotalFrequency returns the sum of all class frequencies.
func (s *Stat) TotalFrequency() (int, error) {
	freqs, err := s.Frequencies()
	if err != nil {
		return 0, err
	}
	return stats.Sum(freqs), nil
}
