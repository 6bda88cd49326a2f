package core

import "github.com/chewxy/math32"

// Interval is a range of real numbers used for valid hit distances and color clamping
type Interval struct {
	Min, Max float32
}

var (
	// EmptyInterval contains no finite value
	EmptyInterval = Interval{Min: math32.Inf(1), Max: math32.Inf(-1)}
	// UniverseInterval contains every finite value
	UniverseInterval = Interval{Min: math32.Inf(-1), Max: math32.Inf(1)}
)

// NewInterval creates a new interval [min, max]
func NewInterval(min, max float32) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns max - min
func (i Interval) Size() float32 {
	return i.Max - i.Min
}

// Contains reports whether min <= x <= max
func (i Interval) Contains(x float32) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether min < x < max
func (i Interval) Surrounds(x float32) bool {
	return i.Min < x && x < i.Max
}

// Clamp saturates x to [min, max].
// NaN compares false against both bounds and is returned unchanged.
func (i Interval) Clamp(x float32) float32 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}
