package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RoundHours rounds to two decimal places using the exact binary value of h,
// so ties resolve the same way a decimal formatter would print them.
func RoundHours(h float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(h, 'f', 2, 64), 64)
	if err != nil {
		return h
	}
	return r
}

// FormatHours renders hours as the shortest decimal that round-trips, always
// keeping a fractional part ("1.0", "2.5", "3.5000000000000004").
func FormatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// ValidateHours rejects values that cannot be recorded.
func ValidateHours(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: %v is not a finite number", ErrInvalidHours, h)
	}
	if h < 0 {
		return fmt.Errorf("%w: %s is negative", ErrInvalidHours, FormatHours(h))
	}
	return nil
}

// ElapsedHours converts elapsed seconds to hours rounded to two decimals.
func ElapsedHours(seconds float64) float64 {
	return RoundHours(seconds / 3600)
}
