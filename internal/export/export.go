// Package export writes the enriched cashflow overview to spreadsheet
// destinations: a Google Sheets document or a local XLSX file.
package export

import (
	"context"
	"fmt"

	"github.com/renditeapp/rendite/internal/cashflow"
	"github.com/renditeapp/rendite/internal/domain"
)

// OverviewSource builds the enriched cashflow overview.
type OverviewSource interface {
	Overview(ctx context.Context, displayCurrency string) (cashflow.Overview, error)
}

// SheetWriter writes a cashflow overview to a spreadsheet destination.
type SheetWriter interface {
	Write(ctx context.Context, overview cashflow.Overview) error
}

// Service builds the overview and delegates writing to a SheetWriter.
type Service struct {
	flows  OverviewSource
	writer SheetWriter
}

// NewService creates a new export Service.
func NewService(flows OverviewSource, writer SheetWriter) *Service {
	return &Service{flows: flows, writer: writer}
}

// Export builds the overview in the given display currency and writes it.
func (s *Service) Export(ctx context.Context, displayCurrency string) error {
	overview, err := s.flows.Overview(ctx, displayCurrency)
	if err != nil {
		return fmt.Errorf("building cashflow overview: %w", err)
	}
	return s.writer.Write(ctx, overview)
}

// sheetHeader is the column layout shared by every writer.
var sheetHeader = []any{"Name", "Investment", "Credit", "Monthly", "Yearly", "Yield %"}

// buildRows builds the sheet data: a header row, one row per cashflow, and a
// trailing totals row. Monetary values are written as numbers so spreadsheet
// formulas keep working on the exported data.
func buildRows(overview cashflow.Overview) [][]any {
	data := make([][]any, 0, len(overview.Entries)+2)
	data = append(data, sheetHeader)

	for _, e := range overview.Entries {
		data = append(data, []any{
			e.Name, e.InvestmentName, e.CreditName,
			toFloat(e.DisplayMonthly), toFloat(e.DisplayYearly), toFloat(e.YieldPct),
		})
	}

	data = append(data, []any{
		"Total", "", "",
		toFloat(overview.TotalMonthly), toFloat(overview.TotalYearly), "",
	})
	return data
}

func toFloat(s string) float64 {
	f, _ := domain.SafeParse(s).Float64()
	return f
}
