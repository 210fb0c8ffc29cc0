// Package rates provides exchange rates and currency conversion for cashflow
// display. Rates are fetched from an external API, stored in the database,
// and loaded into an in-memory Converter.
package rates

import (
	"github.com/shopspring/decimal"
)

// Converter converts amounts between currencies through a base currency.
// Every stored rate is the amount of that currency one unit of the base buys.
type Converter struct {
	base  string
	rates map[string]decimal.Decimal
}

// NewConverter creates a Converter. The base currency implicitly has rate 1.
func NewConverter(base string, rateByCode map[string]decimal.Decimal) *Converter {
	rates := make(map[string]decimal.Decimal, len(rateByCode))
	for code, rate := range rateByCode {
		rates[code] = rate
	}
	return &Converter{base: base, rates: rates}
}

// Base returns the base currency code.
func (c *Converter) Base() string {
	return c.base
}

// Convert converts an amount from one currency to another. Conversion is
// fail-open: if a required rate is missing or zero, the original amount is
// returned unchanged rather than erroring out of a display pipeline.
func (c *Converter) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return amount
	}

	inBase := amount
	if from != c.base {
		rate, ok := c.rates[from]
		if !ok || rate.IsZero() {
			return amount
		}
		inBase = amount.Div(rate)
	}

	if to == c.base {
		return inBase
	}
	rate, ok := c.rates[to]
	if !ok || rate.IsZero() {
		return amount
	}
	return inBase.Mul(rate)
}

// Rates returns a copy of the rate table.
func (c *Converter) Rates() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(c.rates))
	for code, rate := range c.rates {
		out[code] = rate
	}
	return out
}
