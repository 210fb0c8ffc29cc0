package calc

import (
	"github.com/shopspring/decimal"

	"github.com/renditeapp/rendite/internal/domain"
)

// RealEstateInput is the raw input for a real-estate investment.
type RealEstateInput struct {
	PurchasePrice       string                  `json:"purchasePrice"`
	MonthlyColdRent     string                  `json:"monthlyColdRent"`
	PurchaseCostItems   []domain.CostItem       `json:"purchaseCostItems"`
	AdditionalCostItems []domain.CostItem       `json:"additionalCostItems"`
	TaxDeductionItems   []domain.CostItem       `json:"taxDeductionItems"`
	Taxes               domain.RentTaxes        `json:"taxes"`
	RunningCosts        domain.RunningCostSplit `json:"runningCosts"`
}

// RealEstateResult carries every derived real-estate figure as a canonical
// two-decimal string.
type RealEstateResult struct {
	AppliedPurchaseCostsTotal string `json:"appliedPurchaseCostsTotal"`
	AdditionalCostsTotal      string `json:"additionalCostsTotal"`
	AnnualColdRent            string `json:"annualColdRent"`
	IncomeTaxAnnual           string `json:"incomeTaxAnnual"`
	SolidarityAnnual          string `json:"solidarityAnnual"`
	ChurchTaxAnnual           string `json:"churchTaxAnnual"`
	NetRentAfterTaxAnnual     string `json:"netRentAfterTaxAnnual"`
	ApportionableAnnual       string `json:"apportionableAnnual"`
	NonApportionableAnnual    string `json:"nonApportionableAnnual"`
	TotalRunningCostsAnnual   string `json:"totalRunningCostsAnnual"`
	NetGainMonthly            string `json:"netGainMonthly"`
	NetGainYearly             string `json:"netGainYearly"`
	YieldPctYearly            string `json:"yieldPctYearly"`
}

// RealEstate runs the full real-estate waterfall:
//
//	purchase costs over the purchase price (subvention subtracts),
//	rent taxes cascading off the income tax,
//	the running-cost split (only the non-apportionable share reduces income),
//	and the final yield over total invested capital.
//
// The yield base is purchase price plus all applied costs, never the bare
// purchase price.
func RealEstate(in RealEstateInput) RealEstateResult {
	price := domain.SafeParse(in.PurchasePrice)
	purchaseCosts := domain.SumCostItems(in.PurchaseCostItems, price)
	additionalCosts := domain.SumCostItems(in.AdditionalCostItems, price)

	annualRent := domain.SafeParse(in.MonthlyColdRent).Mul(domain.Twelve)
	deductions := domain.SumCostItems(in.TaxDeductionItems, annualRent)
	taxableBase := annualRent.Sub(deductions)

	taxes := domain.CascadeTax(taxableBase, in.Taxes.IncomeTax, in.Taxes.Solidarity, in.Taxes.ChurchTax)
	incomeTax := taxes.Primary
	solidarity := taxes.Dependents[0]
	churchTax := taxes.Dependents[1]

	apportionable := runningCostAnnual(in.RunningCosts.Apportionable, annualRent)
	nonApportionable := runningCostAnnual(in.RunningCosts.NonApportionable, annualRent)

	netRentAfterTax := annualRent.Sub(incomeTax).Sub(solidarity).Sub(churchTax)
	// Apportionable costs pass through to the tenant and stay out of the net.
	netGainYearly := netRentAfterTax.Sub(nonApportionable)
	netGainMonthly := netGainYearly.Div(domain.Twelve)

	totalInvested := price.Add(purchaseCosts).Add(additionalCosts)
	yield := domain.Ratio(netGainYearly, totalInvested)

	return RealEstateResult{
		AppliedPurchaseCostsTotal: domain.FormatMoney(purchaseCosts),
		AdditionalCostsTotal:      domain.FormatMoney(additionalCosts),
		AnnualColdRent:            domain.FormatMoney(annualRent),
		IncomeTaxAnnual:           domain.FormatMoney(incomeTax),
		SolidarityAnnual:          domain.FormatMoney(solidarity),
		ChurchTaxAnnual:           domain.FormatMoney(churchTax),
		NetRentAfterTaxAnnual:     domain.FormatMoney(netRentAfterTax),
		ApportionableAnnual:       domain.FormatMoney(apportionable),
		NonApportionableAnnual:    domain.FormatMoney(nonApportionable),
		TotalRunningCostsAnnual:   domain.FormatMoney(apportionable.Add(nonApportionable)),
		NetGainMonthly:            domain.FormatMoney(netGainMonthly),
		NetGainYearly:             domain.FormatMoney(netGainYearly),
		YieldPctYearly:            domain.FormatPercent(yield),
	}
}

func runningCostAnnual(rc domain.RunningCost, annualRent decimal.Decimal) decimal.Decimal {
	switch rc.Mode {
	case domain.RunningCostStandard:
		return domain.Percent(annualRent, rc.PercentOfRent)
	case domain.RunningCostManual:
		return domain.SafeParse(rc.ManualAnnual)
	default:
		return decimal.Zero
	}
}

// ApplyRealEstate runs the calculator and writes the derived fields back onto
// the investment.
func ApplyRealEstate(inv domain.RealEstateInvestment) domain.RealEstateInvestment {
	r := RealEstate(RealEstateInput{
		PurchasePrice:       inv.PurchasePrice,
		MonthlyColdRent:     inv.MonthlyColdRent,
		PurchaseCostItems:   inv.PurchaseCostItems,
		AdditionalCostItems: inv.AdditionalCostItems,
		TaxDeductionItems:   inv.TaxDeductionItems,
		Taxes:               inv.Taxes,
		RunningCosts:        inv.RunningCosts,
	})
	inv.AppliedPurchaseCostsTotal = r.AppliedPurchaseCostsTotal
	inv.AdditionalCostsTotal = r.AdditionalCostsTotal
	inv.AnnualColdRent = r.AnnualColdRent
	inv.IncomeTaxAnnual = r.IncomeTaxAnnual
	inv.SolidarityAnnual = r.SolidarityAnnual
	inv.ChurchTaxAnnual = r.ChurchTaxAnnual
	inv.NetRentAfterTaxAnnual = r.NetRentAfterTaxAnnual
	inv.ApportionableAnnual = r.ApportionableAnnual
	inv.NonApportionableAnnual = r.NonApportionableAnnual
	inv.TotalRunningCostsAnnual = r.TotalRunningCostsAnnual
	inv.NetGainMonthly = r.NetGainMonthly
	inv.NetGainYearly = r.NetGainYearly
	inv.YieldPctYearly = r.YieldPctYearly
	return inv
}
