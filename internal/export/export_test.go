package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/renditeapp/rendite/internal/cashflow"
)

type stubOverviewSource struct {
	overview     cashflow.Overview
	err          error
	lastCurrency string
}

func (s *stubOverviewSource) Overview(_ context.Context, displayCurrency string) (cashflow.Overview, error) {
	s.lastCurrency = displayCurrency
	return s.overview, s.err
}

type captureWriter struct {
	written *cashflow.Overview
}

func (c *captureWriter) Write(_ context.Context, overview cashflow.Overview) error {
	c.written = &overview
	return nil
}

func TestExportPassesCurrencyToSource(t *testing.T) {
	source := &stubOverviewSource{overview: cashflow.Overview{Currency: "CZK"}}
	writer := &captureWriter{}
	svc := NewService(source, writer)

	if err := svc.Export(context.Background(), "CZK"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.lastCurrency != "CZK" {
		t.Errorf("currency passed to source = %q, want CZK", source.lastCurrency)
	}
	if writer.written == nil {
		t.Fatal("writer was not called")
	}
}

func TestExportPropagatesSourceError(t *testing.T) {
	source := &stubOverviewSource{err: errors.New("db down")}
	svc := NewService(source, &captureWriter{})

	if err := svc.Export(context.Background(), "EUR"); err == nil {
		t.Fatal("expected error")
	}
}

func TestBuildRowsLayout(t *testing.T) {
	overview := cashflow.Overview{
		Currency: "EUR",
		Entries: []cashflow.Entry{
			{Name: "flat", InvestmentName: "flat ostrava", CreditName: "loan", DisplayMonthly: "900", DisplayYearly: "10800", YieldPct: "10.80"},
			{Name: "savings", InvestmentName: "deposit", DisplayMonthly: "17", DisplayYearly: "204", YieldPct: "2.00"},
		},
		TotalMonthly: "917",
		TotalYearly:  "11004",
	}

	rows := buildRows(overview)
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4 (header + 2 entries + total)", len(rows))
	}
	if rows[0][0] != "Name" {
		t.Errorf("header[0] = %v, want Name", rows[0][0])
	}
	if rows[1][3] != 900.0 {
		t.Errorf("monthly = %v, want 900", rows[1][3])
	}
	if rows[3][0] != "Total" {
		t.Errorf("last row label = %v, want Total", rows[3][0])
	}
	if rows[3][4] != 11004.0 {
		t.Errorf("total yearly = %v, want 11004", rows[3][4])
	}
}

func TestXLSXWriterCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cashflows.xlsx")
	writer := NewXLSXWriter(path)

	overview := cashflow.Overview{
		Currency:     "EUR",
		Entries:      []cashflow.Entry{{Name: "flat", DisplayMonthly: "900", DisplayYearly: "10800"}},
		TotalMonthly: "900",
		TotalYearly:  "10800",
	}
	if err := writer.Write(context.Background(), overview); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported file is empty")
	}
}
