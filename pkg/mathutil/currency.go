// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/sreesadhan7/GrocerEase-AI/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Fits reports whether adding price to spent stays at or under limit,
// allowing for one cent of floating point drift.
func Fits(spent, price, limit float64) bool {
	return Round(spent+price) <= Round(limit)+constants.CurrencyTolerance/10
}
