package stats

import (
	"math"
	"testing"
)

func TestSumRange(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name       string
		start, end int
		expected   int
	}{
		{"all", 0, 5, 15},
		{"prefix", 0, 2, 3},
		{"suffix", 3, 5, 9},
		{"end past length", 2, 10, 12},
		{"negative start", -3, 1, 1},
		{"empty", 3, 3, 0},
		{"reversed", 4, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumRange(data, tt.start, tt.end); got != tt.expected {
				t.Errorf("SumRange(%d, %d) = %d, expected %d", tt.start, tt.end, got, tt.expected)
			}
		})
	}

	if Sum([]float64{0.5, 0.25}) != 0.75 {
		t.Error("Sum over floats failed")
	}
}

func TestJoinSum(t *testing.T) {
	got := JoinSum([]int{1, 2, 3}, []int{10, 20})
	if len(got) != 2 || got[0] != 11 || got[1] != 22 {
		t.Errorf("Unexpected JoinSum result: %v", got)
	}
}

func TestZip(t *testing.T) {
	got := Zip([]int{2, 3, 4}, []float64{1.5, 2}, func(f int, m float64) float64 {
		return float64(f) * m
	})
	if len(got) != 2 || got[0] != 3 || got[1] != 6 {
		t.Errorf("Unexpected Zip result: %v", got)
	}

	if len(Zip([]int{}, []int{1}, func(a, b int) int { return a + b })) != 0 {
		t.Error("Zip with an empty input should be empty")
	}
}

func TestMax(t *testing.T) {
	if Max([]int{3, 9, 2}) != 9 {
		t.Error("Max should be 9")
	}
	if Max([]float64{-3, -1, -2}) != -1 {
		t.Error("Max of negatives should be -1")
	}
	if Max([]int{}) != 0 {
		t.Error("Max of empty should be zero")
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{2.5, 3},
		{2.49, 2},
		{95.666, 96},
		{-2.5, -2},
		{-2.51, -3},
		{math.Sqrt(40), 6},
	}

	for _, tt := range tests {
		if got := Round(tt.in); got != tt.expected {
			t.Errorf("Round(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestToFloats(t *testing.T) {
	got := ToFloats([]int{1, 2})
	if len(got) != 2 || got[0] != 1.0 || got[1] != 2.0 {
		t.Errorf("Unexpected ToFloats result: %v", got)
	}
}
