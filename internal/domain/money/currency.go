package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Code identifies a supported display currency.
type Code string

const (
	CLP Code = "CLP"
	USD Code = "USD"
	EUR Code = "EUR"
	AED Code = "AED"
)

// Config holds the immutable display rules for a currency.
type Config struct {
	Symbol       string
	Code         Code
	Decimals     int
	GroupSep     string
	DecimalSep   string
	SymbolSuffix bool // symbol rendered after the amount (e.g. "100,50 €")
}

// currencyConfigs is the process-wide, read-only display table. CLP does
// not use decimals in practice.
var currencyConfigs = map[Code]Config{
	CLP: {Symbol: "$", Code: CLP, Decimals: 0, GroupSep: ".", DecimalSep: ","},
	USD: {Symbol: "$", Code: USD, Decimals: 2, GroupSep: ",", DecimalSep: "."},
	EUR: {Symbol: "€", Code: EUR, Decimals: 2, GroupSep: ".", DecimalSep: ",", SymbolSuffix: true},
	AED: {Symbol: "د.إ", Code: AED, Decimals: 2, GroupSep: ",", DecimalSep: "."},
}

// ConfigFor returns the display configuration for a currency code.
func ConfigFor(code Code) (Config, bool) {
	cfg, ok := currencyConfigs[code]
	return cfg, ok
}

// IsSupportedCurrency reports whether the given code is in the supported set.
func IsSupportedCurrency(code Code) bool {
	_, ok := currencyConfigs[code]
	return ok
}

// SupportedCurrencies returns the supported currency codes.
func SupportedCurrencies() []Code {
	return []Code{CLP, USD, EUR, AED}
}

// Format renders a minor-unit amount for display using the currency's
// decimal count, grouping, and symbol conventions. It is the single source
// of truth for currency display.
//
//	Format(10050, USD)     == "$100.50"
//	Format(100000000, CLP) == "$1.000.000"
//
// Unsupported codes fall back to CLP rules, mirroring the default currency
// of the original dashboard.
func Format(amountMinorUnits int64, code Code) string {
	cfg, ok := currencyConfigs[code]
	if !ok {
		cfg = currencyConfigs[CLP]
	}

	negative := amountMinorUnits < 0
	abs := amountMinorUnits
	if negative {
		abs = -abs
	}

	whole := abs / minorUnitsPerMajor
	frac := abs % minorUnitsPerMajor
	if cfg.Decimals == 0 && frac >= minorUnitsPerMajor/2 {
		// Half away from zero when the display drops the minor digits.
		whole++
	}

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	if !cfg.SymbolSuffix {
		b.WriteString(cfg.Symbol)
	}
	b.WriteString(groupDigits(strconv.FormatInt(whole, 10), cfg.GroupSep))
	if cfg.Decimals > 0 {
		b.WriteString(cfg.DecimalSep)
		b.WriteString(fmt.Sprintf("%0*d", cfg.Decimals, frac))
	}
	if cfg.SymbolSuffix {
		b.WriteString(" ")
		b.WriteString(cfg.Symbol)
	}
	return b.String()
}

// groupDigits inserts the group separator every three digits, right to left.
func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// PercentageChange is a formatted period-over-period change ready for display.
type PercentageChange struct {
	Text       string
	ColorClass string
}

const (
	// ColorClassPositive marks a non-negative change (zero included).
	ColorClassPositive = "positive"
	// ColorClassNegative marks a strictly negative change.
	ColorClassNegative = "negative"
)

// FormatPercentageChange renders a percentage change with an explicit sign
// and a semantic color class. Zero sits on the positive side of the boundary.
//
//	FormatPercentageChange(15.5)  == {"+15.5%", "positive"}
//	FormatPercentageChange(-10.2) == {"-10.2%", "negative"}
func FormatPercentageChange(percent float64) PercentageChange {
	class := ColorClassPositive
	if percent < 0 {
		class = ColorClassNegative
	}
	return PercentageChange{
		Text:       fmt.Sprintf("%+.1f%%", percent),
		ColorClass: class,
	}
}
