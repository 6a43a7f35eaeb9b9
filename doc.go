// Package gofreq provides grouped-frequency descriptive statistics.
//
// gofreq bins a raw numeric sample into contiguous class intervals and
// derives the frequency distribution and its summary statistics from that
// binning, following the usual textbook workflow for grouped data.
//
// # Features
//
//   - Class intervals from round(sqrt(n)) classes of width round(range/k)
//   - Frequencies with first-match binning
//   - Class marks and less-than / greater-than cumulative frequencies
//   - Grouped mean, median, sample variance and standard deviation
//   - Coefficient of variation and variation ratio
//   - Tables rendered as text, markdown, HTML, CSV, JSON or YAML
//
// # Quick Start
//
//	s, err := freq.New(values, nil)
//	table, err := s.CreateTable(freq.DefaultColumns(), []freq.Statistic{freq.StatMean})
//
//	r, _ := render.New(render.FormatText, render.DefaultOptions())
//	r.Render(os.Stdout, table)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - freq: the grouped-frequency engine and table assembly
//   - render: table renderers
//   - sample: immutable samples and loaders
//   - stats: numeric helpers
//   - config: CLI configuration
//
// The gofreq command in cmd/gofreq wraps all of them.
package gofreq
