// Package stats provides stateless numeric helpers used by the grouped
// frequency engine.
//
// The helpers are generic over integer and floating point element types:
//
//	stats.Sum([]int{1, 2, 3})                  // 6
//	stats.SumRange([]int{1, 2, 3, 4}, 1, 3)    // 5
//	stats.JoinSum([]int{1, 2}, []int{10, 20})  // [11 22]
//	stats.Zip(freqs, marks, func(f int, m float64) float64 {
//	    return float64(f) * m
//	})
//
// Round rounds half up, matching the rounding used when choosing the number
// of classes and the class size:
//
//	stats.Round(2.5)  // 3
//	stats.Round(-2.5) // -2
package stats
