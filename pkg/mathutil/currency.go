// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/prasdif/calculator/pkg/constants"
)

// Round rounds a value to two decimals for display. Values too large to
// scale carry no fraction and are returned as is.
func Round(val float64) float64 {
	scaled := val * constants.DecimalPrecision
	if math.IsInf(scaled, 0) {
		return val
	}
	return math.Round(scaled) / constants.DecimalPrecision
}

// RoundWhole rounds to the nearest whole unit with halves going up,
// so budget bounds match what a browser would show for the same totals.
func RoundWhole(val float64) float64 {
	return math.Floor(val + 0.5)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// WithinRelative checks if got is within a relative tolerance of want.
// A zero want falls back to an absolute comparison.
func WithinRelative(got, want, tolerance float64) bool {
	if want == 0 {
		return math.Abs(got) <= tolerance
	}
	return math.Abs(got-want)/math.Abs(want) <= tolerance
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ApplyBand returns the lower and upper bounds of a symmetric band around total.
func ApplyBand(total, band float64) (float64, float64) {
	return RoundWhole(total * (1 - band)), RoundWhole(total * (1 + band))
}
