package freq

import "errors"

// Sentinel errors. Concrete failures wrap one of these, so callers can
// classify them with errors.Is.
var (
	// ErrInvalidInput reports classing parameters that cannot produce a
	// valid class list: an empty sample, a zero range, a non-positive class
	// count or class size, or a malformed override.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionByZero reports an arithmetic degeneracy, such as a zero
	// total frequency or a zero-frequency median class.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownSelector reports an unrecognized column or statistic key.
	// Apply and Compute never return it; strict callers such as
	// configuration validation do.
	ErrUnknownSelector = errors.New("unknown selector")
)
