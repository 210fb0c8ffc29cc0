package domain

import (
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var (
	// Twelve converts between monthly and yearly figures.
	Twelve = decimal.NewFromInt(12)
	// Hundred converts between percentages and fractions.
	Hundred = decimal.NewFromInt(100)
)

// SafeParse parses a string into a decimal, returning zero for invalid or empty input.
func SafeParse(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SafeDiv divides a by b, returning zero for a zero divisor.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// Percent computes ratePct percent of base, e.g. Percent(200000, "3.5") = 7000.
func Percent(base decimal.Decimal, ratePct string) decimal.Decimal {
	return base.Mul(SafeParse(ratePct)).Div(Hundred)
}

// Ratio computes yearly gain over invested capital as a percentage.
// A zero or negative capital base short-circuits to zero.
func Ratio(gain, capital decimal.Decimal) decimal.Decimal {
	if !capital.IsPositive() {
		return decimal.Zero
	}
	return gain.Div(capital).Mul(Hundred)
}

// FormatMoney renders a decimal as a canonical currency string with two
// fractional digits, rounding half away from zero.
func FormatMoney(d decimal.Decimal) string {
	return d.Round(moneyPlaces).StringFixed(moneyPlaces)
}

// FormatPercent renders a percentage with two fractional digits.
func FormatPercent(d decimal.Decimal) string {
	return d.Round(moneyPlaces).StringFixed(moneyPlaces)
}

// RoundUnit rounds a monetary value to a whole unit. Display pipelines round
// the monthly figure first and multiply by 12 so that the shown yearly value
// is always exactly twelve times the shown monthly value.
func RoundUnit(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
