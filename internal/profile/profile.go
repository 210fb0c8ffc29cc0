// Package profile holds the country default profiles consumed by the
// real-estate and deposit calculators. All numeric defaults are data; the
// calculators never hard-code a country-specific rate.
package profile

import (
	"github.com/samber/lo"

	"github.com/renditeapp/rendite/internal/domain"
)

// CodeCustom is the profile with everything switched off, used when the
// caller overrides every value manually.
const CodeCustom = "custom"

// Profile carries the default cost and tax configuration for one country.
type Profile struct {
	Code              string                  `json:"code"`
	LabelKey          string                  `json:"labelKey"`
	PurchaseCostItems []domain.CostItem       `json:"purchaseCostItems"`
	RentTaxes         domain.RentTaxes        `json:"rentTaxes"`
	RunningCosts      domain.RunningCostSplit `json:"runningCosts"`
	DepositTaxes      DepositTaxes            `json:"depositTaxes"`
}

// DepositTaxes is the default withholding-tax configuration for deposits.
type DepositTaxes struct {
	TaxFreeAllowance string         `json:"taxFreeAllowance"`
	WithholdingTax   domain.TaxLine `json:"withholdingTax"`
	Solidarity       domain.TaxLine `json:"solidarity"`
	ChurchTax        domain.TaxLine `json:"churchTax"`
}

var registry = []Profile{
	{
		Code:     "de",
		LabelKey: "profile.de",
		PurchaseCostItems: []domain.CostItem{
			{Key: domain.KeyBroker, LabelKey: "cost.broker", Enabled: true, Value: "3.57", Mode: domain.CostModePercent, AllowModeChange: true},
			{Key: domain.KeyTransferTax, LabelKey: "cost.transferTax", Enabled: true, Value: "6.0", Mode: domain.CostModePercent, AllowModeChange: false},
			{Key: domain.KeyNotary, LabelKey: "cost.notary", Enabled: true, Value: "1.5", Mode: domain.CostModePercent, AllowModeChange: true},
			{Key: domain.KeyRegistry, LabelKey: "cost.registry", Enabled: true, Value: "0.5", Mode: domain.CostModePercent, AllowModeChange: true},
			{Key: domain.KeyAppraisal, LabelKey: "cost.appraisal", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeyInsurance, LabelKey: "cost.insurance", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeyRenovation, LabelKey: "cost.renovation", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeySubvention, LabelKey: "cost.subvention", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeyOther, LabelKey: "cost.other", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
		},
		RentTaxes: domain.RentTaxes{
			IncomeTax:  domain.TaxLine{Enabled: true, RatePct: "42"},
			Solidarity: domain.TaxLine{Enabled: true, RatePct: "5.5"},
			ChurchTax:  domain.TaxLine{Enabled: false, RatePct: "9"},
		},
		RunningCosts: domain.RunningCostSplit{
			Apportionable:    domain.RunningCost{Mode: domain.RunningCostStandard, PercentOfRent: "25", ManualAnnual: "0"},
			NonApportionable: domain.RunningCost{Mode: domain.RunningCostStandard, PercentOfRent: "20", ManualAnnual: "0"},
		},
		DepositTaxes: DepositTaxes{
			TaxFreeAllowance: "1000",
			WithholdingTax:   domain.TaxLine{Enabled: true, RatePct: "25"},
			Solidarity:       domain.TaxLine{Enabled: true, RatePct: "5.5"},
			ChurchTax:        domain.TaxLine{Enabled: false, RatePct: "9"},
		},
	},
	{
		Code:     "cz",
		LabelKey: "profile.cz",
		PurchaseCostItems: []domain.CostItem{
			{Key: domain.KeyBroker, LabelKey: "cost.broker", Enabled: true, Value: "2.0", Mode: domain.CostModePercent, AllowModeChange: true},
			{Key: domain.KeyTransferTax, LabelKey: "cost.transferTax", Enabled: false, Value: "0", Mode: domain.CostModePercent, AllowModeChange: false},
			{Key: domain.KeyNotary, LabelKey: "cost.notary", Enabled: true, Value: "0.8", Mode: domain.CostModePercent, AllowModeChange: true},
			{Key: domain.KeyRegistry, LabelKey: "cost.registry", Enabled: true, Value: "2000", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeyAppraisal, LabelKey: "cost.appraisal", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeyInsurance, LabelKey: "cost.insurance", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeyRenovation, LabelKey: "cost.renovation", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeySubvention, LabelKey: "cost.subvention", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeyOther, LabelKey: "cost.other", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
		},
		RentTaxes: domain.RentTaxes{
			IncomeTax:  domain.TaxLine{Enabled: true, RatePct: "15"},
			Solidarity: domain.TaxLine{Enabled: false, RatePct: "0"},
			ChurchTax:  domain.TaxLine{Enabled: false, RatePct: "0"},
		},
		RunningCosts: domain.RunningCostSplit{
			Apportionable:    domain.RunningCost{Mode: domain.RunningCostStandard, PercentOfRent: "20", ManualAnnual: "0"},
			NonApportionable: domain.RunningCost{Mode: domain.RunningCostStandard, PercentOfRent: "15", ManualAnnual: "0"},
		},
		DepositTaxes: DepositTaxes{
			TaxFreeAllowance: "0",
			WithholdingTax:   domain.TaxLine{Enabled: true, RatePct: "15"},
			Solidarity:       domain.TaxLine{Enabled: false, RatePct: "0"},
			ChurchTax:        domain.TaxLine{Enabled: false, RatePct: "0"},
		},
	},
	{
		Code:     "ch",
		LabelKey: "profile.ch",
		PurchaseCostItems: []domain.CostItem{
			{Key: domain.KeyBroker, LabelKey: "cost.broker", Enabled: true, Value: "3.0", Mode: domain.CostModePercent, AllowModeChange: true},
			{Key: domain.KeyTransferTax, LabelKey: "cost.transferTax", Enabled: true, Value: "3.3", Mode: domain.CostModePercent, AllowModeChange: false},
			{Key: domain.KeyNotary, LabelKey: "cost.notary", Enabled: true, Value: "0.5", Mode: domain.CostModePercent, AllowModeChange: true},
			{Key: domain.KeyRegistry, LabelKey: "cost.registry", Enabled: true, Value: "0.25", Mode: domain.CostModePercent, AllowModeChange: true},
			{Key: domain.KeyAppraisal, LabelKey: "cost.appraisal", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeyInsurance, LabelKey: "cost.insurance", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeyRenovation, LabelKey: "cost.renovation", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeySubvention, LabelKey: "cost.subvention", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeyOther, LabelKey: "cost.other", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
		},
		RentTaxes: domain.RentTaxes{
			IncomeTax:  domain.TaxLine{Enabled: true, RatePct: "25"},
			Solidarity: domain.TaxLine{Enabled: false, RatePct: "0"},
			ChurchTax:  domain.TaxLine{Enabled: false, RatePct: "0"},
		},
		RunningCosts: domain.RunningCostSplit{
			Apportionable:    domain.RunningCost{Mode: domain.RunningCostStandard, PercentOfRent: "20", ManualAnnual: "0"},
			NonApportionable: domain.RunningCost{Mode: domain.RunningCostStandard, PercentOfRent: "15", ManualAnnual: "0"},
		},
		DepositTaxes: DepositTaxes{
			TaxFreeAllowance: "0",
			WithholdingTax:   domain.TaxLine{Enabled: true, RatePct: "35"},
			Solidarity:       domain.TaxLine{Enabled: false, RatePct: "0"},
			ChurchTax:        domain.TaxLine{Enabled: false, RatePct: "0"},
		},
	},
	{
		Code:     CodeCustom,
		LabelKey: "profile.custom",
		PurchaseCostItems: []domain.CostItem{
			{Key: domain.KeyBroker, LabelKey: "cost.broker", Enabled: false, Value: "0", Mode: domain.CostModePercent, AllowModeChange: true},
			{Key: domain.KeyTransferTax, LabelKey: "cost.transferTax", Enabled: false, Value: "0", Mode: domain.CostModePercent, AllowModeChange: true},
			{Key: domain.KeyNotary, LabelKey: "cost.notary", Enabled: false, Value: "0", Mode: domain.CostModePercent, AllowModeChange: true},
			{Key: domain.KeyRegistry, LabelKey: "cost.registry", Enabled: false, Value: "0", Mode: domain.CostModePercent, AllowModeChange: true},
			{Key: domain.KeyAppraisal, LabelKey: "cost.appraisal", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeyInsurance, LabelKey: "cost.insurance", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeyRenovation, LabelKey: "cost.renovation", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeySubvention, LabelKey: "cost.subvention", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
			{Key: domain.KeyOther, LabelKey: "cost.other", Enabled: false, Value: "0", Mode: domain.CostModeCurrency, AllowModeChange: true},
		},
		RentTaxes: domain.RentTaxes{
			IncomeTax:  domain.TaxLine{Enabled: false, RatePct: "0"},
			Solidarity: domain.TaxLine{Enabled: false, RatePct: "0"},
			ChurchTax:  domain.TaxLine{Enabled: false, RatePct: "0"},
		},
		RunningCosts: domain.RunningCostSplit{
			Apportionable:    domain.RunningCost{Mode: domain.RunningCostNone, PercentOfRent: "0", ManualAnnual: "0"},
			NonApportionable: domain.RunningCost{Mode: domain.RunningCostNone, PercentOfRent: "0", ManualAnnual: "0"},
		},
		DepositTaxes: DepositTaxes{
			TaxFreeAllowance: "0",
			WithholdingTax:   domain.TaxLine{Enabled: false, RatePct: "0"},
			Solidarity:       domain.TaxLine{Enabled: false, RatePct: "0"},
			ChurchTax:        domain.TaxLine{Enabled: false, RatePct: "0"},
		},
	},
}

// All returns every known profile. The slice is a copy; mutating it does not
// affect the registry.
func All() []Profile {
	out := make([]Profile, len(registry))
	copy(out, registry)
	for i := range out {
		out[i].PurchaseCostItems = append([]domain.CostItem(nil), out[i].PurchaseCostItems...)
	}
	return out
}

// ByCode looks up a profile by its country code. Unknown codes fall back to
// the custom profile.
func ByCode(code string) (Profile, bool) {
	p, found := lo.Find(All(), func(p Profile) bool {
		return p.Code == code
	})
	if !found {
		custom, _ := lo.Find(All(), func(p Profile) bool {
			return p.Code == CodeCustom
		})
		return custom, false
	}
	return p, true
}
