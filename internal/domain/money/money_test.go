package money

import (
	"errors"
	"math"
	"testing"

	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "two decimals", amount: 100.50, want: 10050},
		{name: "whole amount", amount: 1000000, want: 100000000},
		{name: "zero", amount: 0, want: 0},
		{name: "rounds half up", amount: 0.005, want: 1},
		{name: "rounds sub-cent down", amount: 10.004, want: 1000},
		{name: "negative amount", amount: -20.25, want: -2025},
		{name: "negative rounds away from zero", amount: -0.005, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToMinorUnits(tt.amount); got != tt.want {
				t.Errorf("ToMinorUnits(%v) = %d, want %d", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	if got := FromMinorUnits(10050); got != 100.50 {
		t.Errorf("FromMinorUnits(10050) = %v, want 100.50", got)
	}
	if got := FromMinorUnits(100000000); got != 1000000 {
		t.Errorf("FromMinorUnits(100000000) = %v, want 1000000", got)
	}
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	// FromMinorUnits(ToMinorUnits(x)) must stay within half a cent of x.
	values := []float64{0, 0.01, 0.005, 1.337, 99.999, 12345.678, 1000000.004}
	for _, x := range values {
		got := FromMinorUnits(ToMinorUnits(x))
		if math.Abs(got-x) > 0.005 {
			t.Errorf("round trip of %v drifted to %v", x, got)
		}
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int64
		wantOK bool
	}{
		{name: "dot separator", text: "100.50", want: 10050, wantOK: true},
		{name: "comma separator", text: "100,50", want: 10050, wantOK: true},
		{name: "integer", text: "1000000", want: 100000000, wantOK: true},
		{name: "leading whitespace", text: " 42.10", want: 4210, wantOK: true},
		{name: "sub-cent rounding", text: "0.005", want: 1, wantOK: true},
		{name: "letters", text: "abc", wantOK: false},
		{name: "empty", text: "", wantOK: false},
		{name: "trailing garbage", text: "100abc", wantOK: false},
		{name: "double separator", text: "1.2.3", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseInput(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ParseInput(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseInput(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestSum(t *testing.T) {
	if got := Sum(10050, 20100, 5025); got != 35175 {
		t.Errorf("Sum(10050, 20100, 5025) = %d, want 35175", got)
	}
	if got := Sum(); got != 0 {
		t.Errorf("Sum() = %d, want 0", got)
	}

	// Associativity: grouping must not change the result.
	a, b, c := int64(12345), int64(-678), int64(999999)
	if Sum(a, b, c) != Sum(Sum(a, b), c) {
		t.Error("Sum is not associative")
	}
}

func TestSubtract(t *testing.T) {
	if got := Subtract(10050, 2025); got != 8025 {
		t.Errorf("Subtract(10050, 2025) = %d, want 8025", got)
	}
	// Negative balances are allowed, no clamping.
	if got := Subtract(1000, 2500); got != -1500 {
		t.Errorf("Subtract(1000, 2500) = %d, want -1500", got)
	}
}

func TestMultiplyByFactor(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		factor float64
		want   int64
	}{
		{name: "one and a half", amount: 10050, factor: 1.5, want: 15075},
		{name: "identity", amount: 10050, factor: 1, want: 10050},
		{name: "rounds", amount: 999, factor: 0.5, want: 500},
		{name: "zero factor", amount: 10050, factor: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MultiplyByFactor(tt.amount, tt.factor); got != tt.want {
				t.Errorf("MultiplyByFactor(%d, %v) = %d, want %d", tt.amount, tt.factor, got, tt.want)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	t.Run("divides and rounds", func(t *testing.T) {
		got, err := Divide(10050, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 5025 {
			t.Errorf("Divide(10050, 2) = %d, want 5025", got)
		}
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		got, err := Divide(101, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 51 {
			t.Errorf("Divide(101, 2) = %d, want 51", got)
		}
	})

	t.Run("zero divisor fails", func(t *testing.T) {
		_, err := Divide(10050, 0)
		if err == nil {
			t.Fatal("expected error for zero divisor")
		}
		if !errors.Is(err, domainerror.ErrDivisionByZero) {
			t.Errorf("expected ErrDivisionByZero, got %v", err)
		}

		var moneyErr *domainerror.MoneyError
		if !errors.As(err, &moneyErr) {
			t.Fatal("expected a MoneyError")
		}
		if moneyErr.Code != domainerror.ErrCodeDivisionByZero {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeDivisionByZero, moneyErr.Code)
		}
	})

	t.Run("non-zero divisors never fail", func(t *testing.T) {
		for _, d := range []float64{-3, 0.5, 7, 1e9} {
			if _, err := Divide(123456, d); err != nil {
				t.Errorf("Divide(123456, %v) unexpected error: %v", d, err)
			}
		}
	})
}

func TestPercentage(t *testing.T) {
	if got := Percentage(10000, 15); got != 1500 {
		t.Errorf("Percentage(10000, 15) = %d, want 1500", got)
	}
	if got := Percentage(10000, 0); got != 0 {
		t.Errorf("Percentage(10000, 0) = %d, want 0", got)
	}
}

func TestApplyDiscountAndTax(t *testing.T) {
	if got := ApplyDiscount(10000, 15); got != 8500 {
		t.Errorf("ApplyDiscount(10000, 15) = %d, want 8500", got)
	}
	if got := ApplyTax(10000, 19); got != 11900 {
		t.Errorf("ApplyTax(10000, 19) = %d, want 11900", got)
	}

	// Applying a 0% tax after a discount is the identity.
	for _, amount := range []int64{0, 999, 10000, 123456789} {
		discounted := ApplyDiscount(amount, 12.5)
		if got := ApplyTax(discounted, 0); got != discounted {
			t.Errorf("ApplyTax(ApplyDiscount(%d, 12.5), 0) = %d, want %d", amount, got, discounted)
		}
	}
}

func TestConvert(t *testing.T) {
	// 100 USD to CLP at rate 800.
	if got := Convert(10000, 800); got != 8000000 {
		t.Errorf("Convert(10000, 800) = %d, want 8000000", got)
	}
	if got := Convert(10000, 0.0012); got != 12 {
		t.Errorf("Convert(10000, 0.0012) = %d, want 12", got)
	}
}

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   bool
	}{
		{name: "positive", amount: 100.50, want: true},
		{name: "zero", amount: 0, want: true},
		{name: "negative", amount: -1, want: false},
		{name: "NaN", amount: math.NaN(), want: false},
		{name: "positive infinity", amount: math.Inf(1), want: false},
		{name: "negative infinity", amount: math.Inf(-1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidAmount(tt.amount); got != tt.want {
				t.Errorf("IsValidAmount(%v) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}
