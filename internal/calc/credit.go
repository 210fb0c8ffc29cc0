package calc

import (
	"github.com/renditeapp/rendite/internal/domain"
)

// CreditInput is the raw input for a credit.
type CreditInput struct {
	Principal     string `json:"principal"`
	Equity        string `json:"equity"`
	RateAnnualPct string `json:"rateAnnualPct"`
	AmortMonthly  string `json:"amortMonthly"`
}

// CreditResult carries the derived first-month credit figures.
type CreditResult struct {
	InterestMonthly string `json:"interestMonthly"`
	InterestYearly  string `json:"interestYearly"`
	TotalMonthly    string `json:"totalMonthly"`
}

// CreditSnapshot computes the first-month interest on the outstanding debt
// (principal minus equity) and the total monthly payment. It is a snapshot,
// not an amortization schedule: interest is not recomputed as the principal
// decays over the term. Equity above the principal is permitted and produces
// negative interest.
func CreditSnapshot(in CreditInput) CreditResult {
	outstanding := domain.SafeParse(in.Principal).Sub(domain.SafeParse(in.Equity))
	monthlyRate := domain.SafeParse(in.RateAnnualPct).Div(domain.Hundred).Div(domain.Twelve)
	interestMonthly := outstanding.Mul(monthlyRate)
	interestYearly := interestMonthly.Mul(domain.Twelve)
	totalMonthly := interestMonthly.Add(domain.SafeParse(in.AmortMonthly))

	return CreditResult{
		InterestMonthly: domain.FormatMoney(interestMonthly),
		InterestYearly:  domain.FormatMoney(interestYearly),
		TotalMonthly:    domain.FormatMoney(totalMonthly),
	}
}

// ApplyCredit runs the calculator and writes the derived fields back onto the
// credit.
func ApplyCredit(c domain.Credit) domain.Credit {
	r := CreditSnapshot(CreditInput{
		Principal:     c.Principal,
		Equity:        c.Equity,
		RateAnnualPct: c.RateAnnualPct,
		AmortMonthly:  c.AmortMonthly,
	})
	c.InterestMonthly = r.InterestMonthly
	c.InterestYearly = r.InterestYearly
	c.TotalMonthly = r.TotalMonthly
	return c
}
