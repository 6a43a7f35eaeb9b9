// Package freq computes grouped-frequency descriptive statistics from a raw
// numeric sample.
//
// The engine bins the sample into contiguous class intervals and derives
// every statistic from that binning: frequencies, class marks, cumulative
// frequencies, mean, median, sample variance, standard deviation,
// coefficient of variation and variation ratio.
//
// # Building an Engine
//
//	s, err := freq.New(values, nil)
//
//	// Override the classing parameters
//	s, err := freq.New(values, &freq.Config{
//	    Classing: &freq.Classing{Min: 10, Max: 50, NumClasses: 2},
//	})
//
// By default the number of classes is round(sqrt(n)) and the class size is
// round(range / classes). Classes are closed intervals [lower, lower+size-1]
// walked upward from the minimum, so the last class may extend past the
// maximum. Set Config.Overrun to OverrunClamp to cap it at the maximum.
//
// # Statistics
//
//	mean, err := s.Mean()
//	median, err := s.Median()
//	sd, err := s.StandardDeviation()
//
//	// Dispatch by name
//	res, err := s.Compute(freq.ParseStatistic("CV"))
//
// Degenerate inputs are reported instead of producing NaN or infinity:
// ErrInvalidInput for an empty sample, a zero range or a class size that
// rounds to zero; ErrDivisionByZero for a zero total frequency, a total
// frequency of one in the sample variance or a zero mean in the
// coefficient of variation.
//
// # Tables
//
// CreateTable assembles a row-major table for a renderer:
//
//	table, err := s.CreateTable(
//	    []freq.Column{freq.ClassCol, freq.FrequencyCol, freq.FreqMarkCol},
//	    []freq.Statistic{freq.StatMean, freq.StatSD},
//	)
//
// Custom columns receive the engine:
//
//	rf := freq.Custom("rf", func(s *freq.Stat) (freq.Series, error) { ... })
package freq
