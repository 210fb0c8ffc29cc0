package domain

// Kind identifies the entity collection a record belongs to.
type Kind string

const (
	KindObjectInvestment     Kind = "object"
	KindRealEstateInvestment Kind = "realestate"
	KindDeposit              Kind = "deposit"
	KindCredit               Kind = "credit"
	KindCashflow             Kind = "cashflow"
)

// InvestmentKinds lists the kinds a cashflow may reference as its investment.
var InvestmentKinds = []Kind{KindObjectInvestment, KindRealEstateInvestment, KindDeposit}

// Compounding selects how deposit interest accrues within the term.
type Compounding string

const (
	CompoundingNone    Compounding = "NONE"
	CompoundingMonthly Compounding = "MONTHLY"
	CompoundingYearly  Compounding = "YEARLY"
)

// TaxLine is a single tax rate that can be switched on and off.
// All rates are annual percentages carried as decimal strings.
type TaxLine struct {
	Enabled bool   `json:"enabled"`
	RatePct string `json:"ratePct"`
}

// RentTaxes is the cascading tax configuration for rental income.
// Solidarity and church tax are computed on the income tax amount, never on
// the rent itself, and contribute nothing while income tax is disabled.
type RentTaxes struct {
	IncomeTax  TaxLine `json:"incomeTax"`
	Solidarity TaxLine `json:"solidarity"`
	ChurchTax  TaxLine `json:"churchTax"`
}

// RunningCostMode selects how an annual running cost is derived.
type RunningCostMode string

const (
	RunningCostNone     RunningCostMode = "none"
	RunningCostStandard RunningCostMode = "standard"
	RunningCostManual   RunningCostMode = "manual"
)

// RunningCost is one side of the running-cost split. In standard mode the
// annual amount is PercentOfRent percent of the annual cold rent; in manual
// mode ManualAnnual is used as-is.
type RunningCost struct {
	Mode          RunningCostMode `json:"mode"`
	PercentOfRent string          `json:"percentOfRent"`
	ManualAnnual  string          `json:"manualAnnual"`
}

// RunningCostSplit separates operating costs recoverable from the tenant
// (apportionable) from those borne by the owner (non-apportionable). Only the
// non-apportionable share reduces the owner's net income.
type RunningCostSplit struct {
	Apportionable    RunningCost `json:"apportionable"`
	NonApportionable RunningCost `json:"nonApportionable"`
}

// ObjectInvestment is the simplest investment: an object bought once that
// produces a monthly gross gain against a monthly cost.
type ObjectInvestment struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Currency         string `json:"currency"`
	StartAmount      string `json:"startAmount"`
	GrossGainMonthly string `json:"grossGainMonthly"`
	CostMonthly      string `json:"costMonthly"`

	// Derived.
	NetGainMonthly string `json:"netGainMonthly"`
	NetGainYearly  string `json:"netGainYearly"`
	ReturnPercent  string `json:"returnPercent"`
}

// RealEstateInvestment is a rented property with itemized purchase costs,
// cascading rent taxes, and a running-cost split.
type RealEstateInvestment struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Currency            string           `json:"currency"`
	PurchasePrice       string           `json:"purchasePrice"`
	MonthlyColdRent     string           `json:"monthlyColdRent"`
	PurchaseCostItems   []CostItem       `json:"purchaseCostItems"`
	AdditionalCostItems []CostItem       `json:"additionalCostItems"`
	TaxDeductionItems   []CostItem       `json:"taxDeductionItems"`
	Taxes               RentTaxes        `json:"taxes"`
	RunningCosts        RunningCostSplit `json:"runningCosts"`

	// Derived.
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

// Depositvestment is a fixed-term deposit with a nominal annual rate and a
// withholding-tax waterfall on the annualized gross gain.
type Depositvestment struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Currency         string      `json:"currency"`
	StartAmount      string      `json:"startAmount"`
	TermMonths       int         `json:"termMonths"`
	RateNominal      string      `json:"rateNominal"`
	Compounding      Compounding `json:"compounding"`
	TaxFreeAllowance string      `json:"taxFreeAllowance"`
	WithholdingTax   TaxLine     `json:"withholdingTax"`
	Solidarity       TaxLine     `json:"solidarity"`
	ChurchTax        TaxLine     `json:"churchTax"`
	YearlyFee        string      `json:"yearlyFee"`

	// Derived.
	GrossGain       string `json:"grossGain"`
	GrossGainYearly string `json:"grossGainYearly"`
	NetGainMonthly  string `json:"netGainMonthly"`
	NetGainYearly   string `json:"netGainYearly"`
	ReturnPercent   string `json:"returnPercent"`
}

// Credit is a loan against an investment. The derived figures are a
// first-month snapshot: interest is computed on the initial outstanding debt
// and is not recomputed as the principal amortizes.
type Credit struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	Principal     string `json:"principal"`
	Equity        string `json:"equity"`
	RateAnnualPct string `json:"rateAnnualPct"`
	AmortMonthly  string `json:"amortMonthly"`
	TermMonths    int    `json:"termMonths"`

	// Derived.
	InterestMonthly string `json:"interestMonthly"`
	InterestYearly  string `json:"interestYearly"`
	TotalMonthly    string `json:"totalMonthly"`
}

// Cashflow combines one investment with an optional credit. It holds
// references only; the referenced entities are resolved by ID at read time.
// CashflowMonthly is the figure written at compose time and may lag behind
// later edits of the referenced entities.
type Cashflow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	InvestmentID string `json:"investmentId"`
	CreditID     string `json:"creditId,omitempty"`

	// Derived.
	CashflowMonthly string `json:"cashflowMonthly"`
}
