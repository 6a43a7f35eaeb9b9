// Package sample provides the immutable numeric sample used by the freq engine.
package sample

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// ErrNoData is returned when an input yields no observations.
var ErrNoData = errors.New("no valid data found")

// Sample is an ordered, read-only sequence of numeric observations.
type Sample struct {
	values []float64
	name   string
}

// New creates a sample from values. The slice is copied.
func New(values []float64) *Sample {
	v := make([]float64, len(values))
	copy(v, values)
	return &Sample{values: v}
}

// Parse builds a sample from free text. Tokens are separated by whitespace,
// commas or semicolons.
func Parse(text string) (*Sample, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';'
	})

	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := cast.ToFloat64E(f)
		if err != nil {
			return nil, fmt.Errorf("invalid observation %q: %w", f, err)
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}

	return &Sample{values: values}, nil
}

// WithName returns a copy of the sample carrying the given name.
func (s *Sample) WithName(name string) *Sample {
	return &Sample{values: s.values, name: name}
}

// Name returns the sample name, if any.
func (s *Sample) Name() string {
	return s.name
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	return len(s.values)
}

// Values returns a copy of the observations.
func (s *Sample) Values() []float64 {
	v := make([]float64, len(s.values))
	copy(v, s.values)
	return v
}

// At returns the i-th observation.
func (s *Sample) At(i int) float64 {
	return s.values[i]
}

// Sum returns the sum of all observations.
func (s *Sample) Sum() float64 {
	sum := 0.0
	for _, v := range s.values {
		sum += v
	}
	return sum
}

// Mean calculates the arithmetic mean of the raw observations.
func (s *Sample) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.Sum() / float64(len(s.values))
}

// Min returns the smallest observation, or NaN for an empty sample.
func (s *Sample) Min() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	min := s.values[0]
	for _, v := range s.values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest observation, or NaN for an empty sample.
func (s *Sample) Max() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	max := s.values[0]
	for _, v := range s.values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
