package freq

import (
	"fmt"
	"log/slog"
	"math"
)

// OverrunPolicy controls the upper bound of the last class.
type OverrunPolicy int

const (
	// OverrunAllow keeps the last class at full width, so its upper bound
	// may exceed the sample maximum.
	OverrunAllow OverrunPolicy = iota
	// OverrunClamp clamps the upper bound of the last class to the maximum.
	OverrunClamp
)

// Classing overrides the parameters used to build the class list.
type Classing struct {
	Min        float64
	Max        float64
	NumClasses int
}

// Config holds construction-time overrides for a Stat.
// The zero value derives everything from the sample.
type Config struct {
	Classing    *Classing     // Overrides min, max and number of classes
	Frequencies []int         // Overrides binning; one count per class
	Length      *int          // Overrides the sample size when non-nil
	Overrun     OverrunPolicy // Last class bound policy
	Logger      *slog.Logger  // Debug diagnostics; discarded when nil
}

// DefaultConfig returns a configuration that derives every classing
// parameter from the sample.
func DefaultConfig() *Config {
	return &Config{
		Overrun: OverrunAllow,
	}
}

// Validate checks the overrides for values that can never produce a valid
// class list.
func (c *Config) Validate() error {
	if c.Classing != nil {
		if c.Classing.NumClasses <= 0 {
			return fmt.Errorf("%w: number of classes must be positive, got %d", ErrInvalidInput, c.Classing.NumClasses)
		}
		if !isFinite(c.Classing.Min) || !isFinite(c.Classing.Max) {
			return fmt.Errorf("%w: classing bounds must be finite, got %v and %v", ErrInvalidInput, c.Classing.Min, c.Classing.Max)
		}
		if c.Classing.Max <= c.Classing.Min {
			return fmt.Errorf("%w: max %v must be greater than min %v", ErrInvalidInput, c.Classing.Max, c.Classing.Min)
		}
	}

	if c.Length != nil && *c.Length < 0 {
		return fmt.Errorf("%w: length must not be negative, got %d", ErrInvalidInput, *c.Length)
	}

	for i, f := range c.Frequencies {
		if f < 0 {
			return fmt.Errorf("%w: negative frequency %d for class %d", ErrInvalidInput, f, i)
		}
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
