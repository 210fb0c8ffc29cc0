package calc

import (
	"github.com/shopspring/decimal"

	"github.com/renditeapp/rendite/internal/domain"
)

// DepositInput is the raw input for a fixed-term deposit.
type DepositInput struct {
	StartAmount      string             `json:"startAmount"`
	TermMonths       int                `json:"termMonths"`
	RateNominal      string             `json:"rateNominal"`
	Compounding      domain.Compounding `json:"compounding"`
	TaxFreeAllowance string             `json:"taxFreeAllowance"`
	WithholdingTax   domain.TaxLine     `json:"withholdingTax"`
	Solidarity       domain.TaxLine     `json:"solidarity"`
	ChurchTax        domain.TaxLine     `json:"churchTax"`
	YearlyFee        string             `json:"yearlyFee"`
}

// DepositResult carries the derived deposit figures.
type DepositResult struct {
	GrossGain       string `json:"grossGain"`
	GrossGainYearly string `json:"grossGainYearly"`
	NetGainMonthly  string `json:"netGainMonthly"`
	NetGainYearly   string `json:"netGainYearly"`
	ReturnPercent   string `json:"returnPercent"`
}

// Deposit projects the gross gain over the full term per the selected
// compounding mode, annualizes it, and applies the withholding-tax waterfall
// and yearly fee. Taxes and fees never enter the gross gain.
func Deposit(in DepositInput) DepositResult {
	start := domain.SafeParse(in.StartAmount)
	rate := domain.SafeParse(in.RateNominal).Div(domain.Hundred)
	gross := grossGain(start, rate, in.TermMonths, in.Compounding)

	termYears := decimal.NewFromInt(int64(in.TermMonths)).Div(domain.Twelve)
	grossYearly := domain.SafeDiv(gross, termYears)

	taxableBase := grossYearly.Sub(domain.SafeParse(in.TaxFreeAllowance))
	if taxableBase.IsNegative() {
		taxableBase = decimal.Zero
	}
	taxes := domain.CascadeTax(taxableBase, in.WithholdingTax, in.Solidarity, in.ChurchTax)

	netYearly := grossYearly.Sub(taxes.Total()).Sub(domain.SafeParse(in.YearlyFee))
	netMonthly := netYearly.Div(domain.Twelve)
	yield := domain.Ratio(netYearly, start)

	return DepositResult{
		GrossGain:       domain.FormatMoney(gross),
		GrossGainYearly: domain.FormatMoney(grossYearly),
		NetGainMonthly:  domain.FormatMoney(netMonthly),
		NetGainYearly:   domain.FormatMoney(netYearly),
		ReturnPercent:   domain.FormatPercent(yield),
	}
}

// grossGain computes the interest earned over the whole term.
func grossGain(start, rate decimal.Decimal, termMonths int, compounding domain.Compounding) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	months := decimal.NewFromInt(int64(termMonths))

	switch compounding {
	case domain.CompoundingMonthly:
		monthlyRate := rate.Div(domain.Twelve)
		factor := decimal.NewFromInt(1).Add(monthlyRate).Pow(months)
		return start.Mul(factor).Sub(start)

	case domain.CompoundingYearly:
		// Full years compound; the remaining months earn simple interest on
		// the already-compounded principal, not a partial compounding period.
		fullYears := termMonths / 12
		remMonths := termMonths % 12
		principal := start.Mul(decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(fullYears))))
		if remMonths > 0 {
			remFraction := decimal.NewFromInt(int64(remMonths)).Div(domain.Twelve)
			principal = principal.Add(principal.Mul(rate).Mul(remFraction))
		}
		return principal.Sub(start)

	default:
		// Simple interest over the term.
		return start.Mul(rate).Mul(months.Div(domain.Twelve))
	}
}

// ApplyDeposit runs the calculator and writes the derived fields back onto
// the deposit.
func ApplyDeposit(d domain.Depositvestment) domain.Depositvestment {
	r := Deposit(DepositInput{
		StartAmount:      d.StartAmount,
		TermMonths:       d.TermMonths,
		RateNominal:      d.RateNominal,
		Compounding:      d.Compounding,
		TaxFreeAllowance: d.TaxFreeAllowance,
		WithholdingTax:   d.WithholdingTax,
		Solidarity:       d.Solidarity,
		ChurchTax:        d.ChurchTax,
		YearlyFee:        d.YearlyFee,
	})
	d.GrossGain = r.GrossGain
	d.GrossGainYearly = r.GrossGainYearly
	d.NetGainMonthly = r.NetGainMonthly
	d.NetGainYearly = r.NetGainYearly
	d.ReturnPercent = r.ReturnPercent
	return d
}
