// Package credit contains credit-related use cases and the loan
// amortization engine.
package credit

import (
	"math"
	"time"

	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

// MonthlyPayment computes the fixed monthly payment for a loan, in minor
// units. For an interest-free loan it is the straight division of the
// principal over the term (any remainder is absorbed by the caller's last
// installment, not here). Otherwise it applies the standard fixed-payment
// amortization formula with r = annualRatePercent/100/12:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// The result is rounded exactly once. A term of zero or fewer months is
// rejected before any computation.
func MonthlyPayment(principal int64, annualRatePercent float64, termMonths int) (int64, error) {
	if termMonths <= 0 {
		return 0, domainerror.NewCreditError(
			domainerror.ErrCodeInvalidTerm,
			"term must be a positive number of months",
			domainerror.ErrInvalidTerm,
		)
	}

	if annualRatePercent == 0 {
		return int64(math.Round(float64(principal) / float64(termMonths))), nil
	}

	monthlyRate := annualRatePercent / 100 / 12
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	payment := float64(principal) * (monthlyRate * factor) / (factor - 1)

	return int64(math.Round(payment)), nil
}

// AddMonths advances a date by the given number of calendar months,
// clamping the day to the last valid day of the resulting month
// (Jan 31 + 1 month = Feb 28, or Feb 29 in a leap year).
func AddMonths(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	hour, minute, sec := date.Clock()

	target := time.Date(year, month+time.Month(months), 1, hour, minute, sec, date.Nanosecond(), date.Location())
	if last := lastDayOfMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, hour, minute, sec, date.Nanosecond(), date.Location())
}

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// RemainingPayments estimates how many monthly payments remain between now
// and the credit's end date as max(0, ceil(days/30)). This is a 30-day
// approximation carried over from the original dashboard, not exact
// calendar-month counting.
func RemainingPayments(now, endDate time.Time) int {
	days := endDate.Sub(now).Hours() / 24
	remaining := int(math.Ceil(days / 30))
	if remaining < 0 {
		return 0
	}
	return remaining
}
