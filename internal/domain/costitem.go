package domain

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CostMode selects how a cost item's value is interpreted.
type CostMode string

const (
	CostModePercent  CostMode = "percent"
	CostModeCurrency CostMode = "currency"
)

// Well-known purchase cost item keys. KeySubvention is the one item that is
// subtracted from the running total instead of added.
const (
	KeyBroker      = "broker"
	KeyTransferTax = "transferTax"
	KeyNotary      = "notary"
	KeyRegistry    = "registry"
	KeyAppraisal   = "appraisal"
	KeyInsurance   = "insurance"
	KeyRenovation  = "renovation"
	KeySubvention  = "subvention"
	KeyOther       = "other"
)

// CostItem is one line of a cost waterfall. In percent mode the amount is
// Value percent of the waterfall's base; in currency mode Value is the
// amount itself.
type CostItem struct {
	Key             string   `json:"key"`
	LabelKey        string   `json:"labelKey"`
	Enabled         bool     `json:"enabled"`
	Value           string   `json:"value"`
	Mode            CostMode `json:"mode"`
	AllowModeChange bool     `json:"allowModeChange"`
}

// Amount computes the item's contribution for the given base. Disabled items
// contribute zero.
func (c CostItem) Amount(base decimal.Decimal) decimal.Decimal {
	if !c.Enabled {
		return decimal.Zero
	}
	if c.Mode == CostModePercent {
		return Percent(base, c.Value)
	}
	return SafeParse(c.Value)
}

// ToggleMode switches the item between percent and currency mode while
// preserving the absolute amount at the moment of the toggle. Converting to
// percent with a zero base yields "0".
func (c CostItem) ToggleMode(base decimal.Decimal) CostItem {
	switch c.Mode {
	case CostModePercent:
		c.Value = FormatMoney(Percent(base, c.Value))
		c.Mode = CostModeCurrency
	default:
		c.Value = FormatPercent(SafeDiv(SafeParse(c.Value), base).Mul(Hundred))
		c.Mode = CostModePercent
	}
	return c
}

// SumCostItems totals all enabled items over the given base. The subvention
// item reduces the total; every other item adds to it.
func SumCostItems(items []CostItem, base decimal.Decimal) decimal.Decimal {
	return lo.Reduce(items, func(acc decimal.Decimal, item CostItem, _ int) decimal.Decimal {
		amount := item.Amount(base)
		if item.Key == KeySubvention {
			return acc.Sub(amount)
		}
		return acc.Add(amount)
	}, decimal.Zero)
}
