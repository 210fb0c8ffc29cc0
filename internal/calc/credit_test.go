package calc

import (
	"testing"

	"github.com/renditeapp/rendite/internal/domain"
)

func TestCreditSnapshot(t *testing.T) {
	tests := []struct {
		name string
		in   CreditInput
		want CreditResult
	}{
		{
			"house loan",
			CreditInput{Principal: "200000", Equity: "50000", RateAnnualPct: "3.2", AmortMonthly: "600"},
			CreditResult{InterestMonthly: "400.00", InterestYearly: "4800.00", TotalMonthly: "1000.00"},
		},
		{
			"zero rate",
			CreditInput{Principal: "100000", Equity: "0", RateAnnualPct: "0", AmortMonthly: "500"},
			CreditResult{InterestMonthly: "0.00", InterestYearly: "0.00", TotalMonthly: "500.00"},
		},
		{
			"equity exceeds principal yields negative interest",
			CreditInput{Principal: "100000", Equity: "120000", RateAnnualPct: "6", AmortMonthly: "0"},
			CreditResult{InterestMonthly: "-100.00", InterestYearly: "-1200.00", TotalMonthly: "-100.00"},
		},
		{
			"unparseable input treated as zero",
			CreditInput{Principal: "abc", Equity: "", RateAnnualPct: "3.2", AmortMonthly: "600"},
			CreditResult{InterestMonthly: "0.00", InterestYearly: "0.00", TotalMonthly: "600.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreditSnapshot(tt.in)
			if got != tt.want {
				t.Errorf("CreditSnapshot() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplyCredit(t *testing.T) {
	c := domain.Credit{
		ID:           "c1",
		Principal:    "200000",
		Equity:       "50000",
		RateAnnualPct: "3.2",
		AmortMonthly: "600",
		TermMonths:   240,
	}

	c = ApplyCredit(c)

	if c.InterestMonthly != "400.00" {
		t.Errorf("InterestMonthly = %q, want 400.00", c.InterestMonthly)
	}
	if c.TotalMonthly != "1000.00" {
		t.Errorf("TotalMonthly = %q, want 1000.00", c.TotalMonthly)
	}
	if c.TermMonths != 240 {
		t.Error("ApplyCredit must not touch the term")
	}
}
