// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/CharlesKoulier/incorporation-engine/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundEuro rounds a value to the nearest whole euro. Simulator detail
// components are reported this way and totals are sums of rounded details.
func RoundEuro(val float64) float64 {
	return math.Round(val)
}

// Clamp bounds a value to the [lower, upper] interval.
func Clamp(val, lower, upper float64) float64 {
	if val < lower {
		return lower
	}
	if val > upper {
		return upper
	}
	return val
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// IsNegative checks if a value is negative (less than negative tolerance)
func IsNegative(val float64) bool {
	return val < -constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
