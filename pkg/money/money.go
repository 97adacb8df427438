// Package money consolidates defensive parsing of OCR-derived currency text.
// Flyer prices arrive as free-form strings ("R 1,299.99", "$45", "2 for 80")
// and must never crash the pipeline; callers choose between an explicit error,
// a zero fallback, or a sort-last sentinel.
package money

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// UnparseableSentinel is the effective price assigned to deals whose price
// text cannot be parsed, so they sort deterministically to the end rather
// than comparing as NaN.
const UnparseableSentinel = 999999

// ErrUnparseable is returned when no numeric amount can be found in the text.
var ErrUnparseable = errors.New("unparseable amount")

var amountRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Parse extracts the first non-negative amount from free-form currency text.
// Currency symbols and thousands separators are ignored.
func Parse(s string) (float64, error) {
	cleaned := strings.ReplaceAll(s, ",", "")

	match := amountRe.FindString(cleaned)
	if match == "" {
		return 0, fmt.Errorf("%w: %q", ErrUnparseable, s)
	}

	amount, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparseable, s)
	}
	return amount, nil
}

// ParseOrZero parses the amount, falling back to 0.00 for unparseable text.
func ParseOrZero(s string) float64 {
	amount, err := Parse(s)
	if err != nil {
		return 0
	}
	return amount
}

// SortValue parses the amount for price ordering. Unparseable text maps to
// UnparseableSentinel so noisy deals sort last instead of reordering
// unpredictably.
func SortValue(s string) float64 {
	amount, err := Parse(s)
	if err != nil {
		return UnparseableSentinel
	}
	return amount
}

// Format renders an amount as a decimal with two fraction digits.
func Format(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
