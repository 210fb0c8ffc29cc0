package calc

import (
	"github.com/renditeapp/rendite/internal/domain"
)

// ComposeCashflow combines an investment's already-derived monthly net gain
// with an optional credit. It reads the derived figure as stored; it never
// recomputes the investment from raw fields. With a credit attached, both the
// interest and the amortization payment reduce the monthly cashflow.
func ComposeCashflow(investmentNetMonthly string, credit *domain.Credit) string {
	monthly := domain.SafeParse(investmentNetMonthly)
	if credit != nil {
		monthly = monthly.
			Sub(domain.SafeParse(credit.InterestMonthly)).
			Sub(domain.SafeParse(credit.AmortMonthly))
	}
	return domain.FormatMoney(monthly)
}
