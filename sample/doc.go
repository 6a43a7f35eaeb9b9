// Package sample provides the immutable numeric sample consumed by the
// grouped-frequency engine, along with helpers to load it.
//
// # Creating a Sample
//
// Create a sample from a slice. The values are copied, so later changes to
// the slice do not affect the sample:
//
//	values := []float64{201, 322, 453, 540, 124}
//	s := sample.New(values)
//
// Parse free text, where observations are separated by whitespace, commas
// or semicolons:
//
//	s, err := sample.Parse("201 322, 453; 540")
//
// # Loading from CSV
//
// Load a single column from a CSV file:
//
//	s, err := sample.LoadCSVColumn("data.csv", "score")
//
//	// Customize loading
//	opts := sample.DefaultCSVOptions()
//	opts.Delimiter = ';'
//	opts.HasHeader = false
//	s, err := sample.LoadCSVFromReader(reader, opts)
//
// # Basic Statistics
//
// Ungrouped statistics are available directly on the sample:
//
//	n := s.Len()
//	min, max := s.Min(), s.Max()
//	mean := s.Mean()
package sample
