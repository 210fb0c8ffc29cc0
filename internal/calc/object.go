// Package calc holds the pure investment calculators. Every function takes
// plain data in and returns plain data out; invalid numeric input is treated
// as zero and no function here ever returns an error.
package calc

import (
	"github.com/renditeapp/rendite/internal/domain"
)

// ObjectInput is the raw input for an object investment.
type ObjectInput struct {
	GrossGainMonthly string `json:"grossGainMonthly"`
	CostMonthly      string `json:"costMonthly"`
	PurchasePrice    string `json:"purchasePrice"`
}

// ObjectResult carries the derived object investment figures as canonical
// two-decimal strings.
type ObjectResult struct {
	NetGainMonthly string `json:"netGainMonthly"`
	NetGainYearly  string `json:"netGainYearly"`
	YieldPctYearly string `json:"yieldPctYearly"`
}

// Object computes the monthly net gain, its annualization, and the yearly
// yield over the purchase price. A non-positive purchase price yields zero
// percent. A negative net gain is a valid result for a loss-making object.
func Object(in ObjectInput) ObjectResult {
	net := domain.SafeParse(in.GrossGainMonthly).Sub(domain.SafeParse(in.CostMonthly))
	yearly := net.Mul(domain.Twelve)
	yield := domain.Ratio(yearly, domain.SafeParse(in.PurchasePrice))

	return ObjectResult{
		NetGainMonthly: domain.FormatMoney(net),
		NetGainYearly:  domain.FormatMoney(yearly),
		YieldPctYearly: domain.FormatPercent(yield),
	}
}

// ApplyObject runs the calculator and writes the derived fields back onto the
// investment.
func ApplyObject(inv domain.ObjectInvestment) domain.ObjectInvestment {
	r := Object(ObjectInput{
		GrossGainMonthly: inv.GrossGainMonthly,
		CostMonthly:      inv.CostMonthly,
		PurchasePrice:    inv.StartAmount,
	})
	inv.NetGainMonthly = r.NetGainMonthly
	inv.NetGainYearly = r.NetGainYearly
	inv.ReturnPercent = r.YieldPctYearly
	return inv
}
