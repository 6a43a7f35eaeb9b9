// Package stats provides small numeric helpers shared by the grouped-frequency engine.
package stats

import "math"

// Number is the set of element types the helpers operate on.
type Number interface {
	~int | ~int64 | ~float64
}

// Sum returns the sum of all elements of data.
func Sum[T Number](data []T) T {
	return SumRange(data, 0, len(data))
}

// SumRange returns the sum of data[start:end]. Bounds are clamped to the
// slice, so an end past the last element sums to the end.
func SumRange[T Number](data []T, start, end int) T {
	if start < 0 {
		start = 0
	}
	if end > len(data) {
		end = len(data)
	}

	var sum T
	for i := start; i < end; i++ {
		sum += data[i]
	}
	return sum
}

// JoinSum adds two slices element-wise, up to the shorter length.
func JoinSum[T Number](a, b []T) []T {
	return Zip(a, b, func(x, y T) T { return x + y })
}

// Zip combines two slices element-wise with fn, up to the shorter length.
func Zip[A, B, R any](a []A, b []B, fn func(A, B) R) []R {
	n := min(len(a), len(b))
	result := make([]R, n)
	for i := 0; i < n; i++ {
		result[i] = fn(a[i], b[i])
	}
	return result
}

// Map applies fn to every element of data.
func Map[T, R any](data []T, fn func(int, T) R) []R {
	result := make([]R, len(data))
	for i, v := range data {
		result[i] = fn(i, v)
	}
	return result
}

// Max returns the largest element of data, or the zero value when empty.
func Max[T Number](data []T) T {
	var m T
	for i, v := range data {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// Round rounds half up (toward positive infinity), so Round(-2.5) == -2.
// This differs from math.Round, which rounds half away from zero.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// ToFloats converts a slice of counts to float64.
func ToFloats[T Number](data []T) []float64 {
	return Map(data, func(_ int, v T) float64 { return float64(v) })
}
