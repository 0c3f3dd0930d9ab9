// Package money implements fixed-point monetary arithmetic and currency
// display formatting.
//
// All monetary values are stored as signed integers of minor currency units
// (cents) to avoid floating-point precision drift: $100.50 USD is 10050,
// $1.000.000 CLP is 100000000. Every operation that returns a monetary
// amount rounds exactly once, at its own boundary.
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

// minorUnitsPerMajor is the scale between a major currency unit and its
// stored representation. All supported currencies store two minor digits,
// including CLP, which merely displays zero decimals.
const minorUnitsPerMajor = 100

// ToMinorUnits converts a major-unit decimal amount to minor units,
// rounding half away from zero. The caller is responsible for validating
// the input with IsValidAmount first; NaN or infinite inputs produce an
// undefined result rather than an error.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * minorUnitsPerMajor))
}

// FromMinorUnits converts minor units back to a major-unit decimal amount.
// The result is for display or reporting only and must never be re-fed
// into minor-unit arithmetic.
func FromMinorUnits(amount int64) float64 {
	return float64(amount) / minorUnitsPerMajor
}

// ParseInput parses user-typed text into minor units. The decimal separator
// may be written as either '.' or ','. It reports ok=false when the text is
// not a valid finite number, so callers can surface inline validation
// instead of handling an error.
//
//	ParseInput("100.50") == 10050, true
//	ParseInput("100,50") == 10050, true
//	ParseInput("abc")    == 0, false
func ParseInput(text string) (int64, bool) {
	normalized := strings.Replace(strings.TrimSpace(text), ",", ".", 1)

	parsed, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, false
	}

	return parsed.Mul(decimal.NewFromInt(minorUnitsPerMajor)).Round(0).IntPart(), true
}

// Sum adds minor-unit amounts. Integer addition is exact; no rounding occurs.
func Sum(amounts ...int64) int64 {
	var total int64
	for _, amount := range amounts {
		total += amount
	}
	return total
}

// Subtract returns a minus b in minor units. The result may be negative
// (e.g. a negative balance); no clamping is applied.
func Subtract(a, b int64) int64 {
	return a - b
}

// MultiplyByFactor scales a minor-unit amount by a real factor, rounding
// half away from zero.
func MultiplyByFactor(amount int64, factor float64) int64 {
	return int64(math.Round(float64(amount) * factor))
}

// Divide divides a minor-unit amount by a real divisor, rounding half away
// from zero. A zero divisor is fatal to the call and surfaces as a
// MoneyError wrapping ErrDivisionByZero.
func Divide(amount int64, divisor float64) (int64, error) {
	if divisor == 0 {
		return 0, domainerror.NewMoneyError(
			domainerror.ErrCodeDivisionByZero,
			"cannot divide by zero",
			domainerror.ErrDivisionByZero,
		)
	}
	return int64(math.Round(float64(amount) / divisor)), nil
}

// Percentage returns percent% of a minor-unit amount, rounded once.
//
//	Percentage(10000, 15) == 1500
func Percentage(amount int64, percent float64) int64 {
	return int64(math.Round(float64(amount) * percent / 100))
}

// ApplyDiscount subtracts a percentage discount from a minor-unit amount.
//
//	ApplyDiscount(10000, 15) == 8500
func ApplyDiscount(amount int64, discountPercent float64) int64 {
	return amount - Percentage(amount, discountPercent)
}

// ApplyTax adds a percentage tax to a minor-unit amount.
//
//	ApplyTax(10000, 19) == 11900 (19% IVA)
func ApplyTax(amount int64, taxPercent float64) int64 {
	return amount + Percentage(amount, taxPercent)
}

// Convert applies an exchange rate to a minor-unit amount, rounding once.
func Convert(amount int64, exchangeRate float64) int64 {
	return int64(math.Round(float64(amount) * exchangeRate))
}

// IsValidAmount reports whether a major-unit amount is a finite,
// non-negative number. It intentionally rejects negatives even though
// Subtract may legitimately produce them: the predicate guards user input,
// and callers decide where to apply it.
func IsValidAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount >= 0
}
