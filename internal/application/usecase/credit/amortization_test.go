// Package credit contains credit-related use cases and the loan
// amortization engine.
package credit

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

func TestMonthlyPayment(t *testing.T) {
	t.Run("zero rate is straight division", func(t *testing.T) {
		// 1200.00 over 12 months = 100.00 per month.
		got, err := MonthlyPayment(120000, 0, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 10000 {
			t.Errorf("MonthlyPayment(120000, 0, 12) = %d, want 10000", got)
		}
	})

	t.Run("zero rate rounds the division", func(t *testing.T) {
		got, err := MonthlyPayment(100000, 0, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 100000/3 = 33333.33 -> 33333
		if got != 33333 {
			t.Errorf("MonthlyPayment(100000, 0, 3) = %d, want 33333", got)
		}
	})

	t.Run("positive rate exceeds straight division", func(t *testing.T) {
		// 5.000.000 CLP at 12.5% over 24 months.
		principal := int64(5_000_000 * 100)
		got, err := MonthlyPayment(principal, 12.5, 24)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got <= 0 {
			t.Fatalf("expected positive payment, got %d", got)
		}
		// Interest is non-zero, so the sum of all payments must exceed
		// the principal.
		if got*24 <= principal {
			t.Errorf("24 payments of %d do not exceed principal %d", got, principal)
		}
	})

	t.Run("matches the amortization formula", func(t *testing.T) {
		// 10_000.00 at 12% over 12 months: r = 0.01,
		// payment = 10000 * 0.01*1.01^12 / (1.01^12 - 1) = 888.4879...
		got, err := MonthlyPayment(1_000_000, 12, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 88849 {
			t.Errorf("MonthlyPayment(1000000, 12, 12) = %d, want 88849", got)
		}
	})

	t.Run("rejects non-positive terms", func(t *testing.T) {
		for _, term := range []int{0, -1, -12} {
			_, err := MonthlyPayment(100000, 10, term)
			if err == nil {
				t.Errorf("MonthlyPayment with term %d should fail", term)
				continue
			}
			if !errors.Is(err, domainerror.ErrInvalidTerm) {
				t.Errorf("expected ErrInvalidTerm, got %v", err)
			}

			var creditErr *domainerror.CreditError
			if !errors.As(err, &creditErr) {
				t.Fatal("expected a CreditError")
			}
			if creditErr.Code != domainerror.ErrCodeInvalidTerm {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTerm, creditErr.Code)
			}
		}
	})
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		months int
		want   string
	}{
		{name: "plain month", date: "2025-03-15", months: 1, want: "2025-04-15"},
		{name: "clamps jan 31 to feb 28", date: "2025-01-31", months: 1, want: "2025-02-28"},
		{name: "clamps to feb 29 in leap years", date: "2024-01-31", months: 1, want: "2024-02-29"},
		{name: "clamps may 31 to jun 30", date: "2025-05-31", months: 1, want: "2025-06-30"},
		{name: "crosses year boundary", date: "2025-11-30", months: 3, want: "2026-02-28"},
		{name: "full year term keeps day", date: "2025-01-15", months: 12, want: "2026-01-15"},
		{name: "24 month term", date: "2025-06-01", months: 24, want: "2027-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := time.Parse("2006-01-02", tt.date)
			if err != nil {
				t.Fatalf("bad test date: %v", err)
			}
			got := AddMonths(date, tt.months).Format("2006-01-02")
			if got != tt.want {
				t.Errorf("AddMonths(%s, %d) = %s, want %s", tt.date, tt.months, got, tt.want)
			}
		})
	}
}

func TestRemainingPayments(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endDate time.Time
		want    int
	}{
		{name: "past end date", endDate: now.AddDate(0, 0, -10), want: 0},
		{name: "same instant", endDate: now, want: 0},
		{name: "one day left counts as one payment", endDate: now.AddDate(0, 0, 1), want: 1},
		{name: "exactly thirty days", endDate: now.AddDate(0, 0, 30), want: 1},
		{name: "thirty one days rounds up", endDate: now.AddDate(0, 0, 31), want: 2},
		{name: "roughly six months", endDate: now.AddDate(0, 0, 180), want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemainingPayments(now, tt.endDate); got != tt.want {
				t.Errorf("RemainingPayments(now, %s) = %d, want %d", tt.endDate.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}
