package domain

import (
	"github.com/shopspring/decimal"
)

// CascadeTaxes holds the computed amounts of a primary tax and the surcharges
// that cascade off it.
type CascadeTaxes struct {
	Primary    decimal.Decimal
	Dependents []decimal.Decimal
}

// Total sums the primary amount and all dependent surcharges.
func (c CascadeTaxes) Total() decimal.Decimal {
	total := c.Primary
	for _, d := range c.Dependents {
		total = total.Add(d)
	}
	return total
}

// CascadeTax computes a primary tax on the taxable base and each dependent
// surcharge as a percentage of the primary tax amount. While the primary line
// is disabled, every dependent contributes zero regardless of its own enabled
// flag; the cascade never applies independently of its primary.
func CascadeTax(base decimal.Decimal, primary TaxLine, dependents ...TaxLine) CascadeTaxes {
	result := CascadeTaxes{
		Primary:    decimal.Zero,
		Dependents: make([]decimal.Decimal, len(dependents)),
	}
	for i := range result.Dependents {
		result.Dependents[i] = decimal.Zero
	}

	if !primary.Enabled {
		return result
	}

	result.Primary = Percent(base, primary.RatePct)
	for i, dep := range dependents {
		if dep.Enabled {
			result.Dependents[i] = Percent(result.Primary, dep.RatePct)
		}
	}
	return result
}
