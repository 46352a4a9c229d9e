package core

import "math"

// infinity stands in for an unbounded interval endpoint
const infinity = math.MaxFloat64

// Interval represents a closed range [Min, Max] of ray parameters or
// color intensities
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval. Callers are expected to pass
// min <= max; this is not enforced.
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval returns the interval containing no values
func EmptyInterval() Interval {
	return Interval{Min: infinity, Max: -infinity}
}

// UniverseInterval returns the interval containing all values
func UniverseInterval() Interval {
	return Interval{Min: -infinity, Max: infinity}
}

// PositiveInterval returns the interval of non-negative values
func PositiveInterval() Interval {
	return Interval{Min: 0, Max: infinity}
}

// NegativeInterval returns the interval of non-positive values
func NegativeInterval() Interval {
	return Interval{Min: -infinity, Max: 0}
}

// Size returns the width of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether v lies in [Min, Max]
func (i Interval) Contains(v float64) bool {
	return i.Min <= v && v <= i.Max
}

// Surrounds reports whether v lies strictly inside (Min, Max)
func (i Interval) Surrounds(v float64) bool {
	return i.Min < v && v < i.Max
}

// Clamp returns v limited to [Min, Max]
func (i Interval) Clamp(v float64) float64 {
	if v < i.Min {
		return i.Min
	}
	if v > i.Max {
		return i.Max
	}
	return v
}
