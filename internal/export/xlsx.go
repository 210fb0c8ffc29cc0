package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/renditeapp/rendite/internal/cashflow"
)

// XLSXWriter implements SheetWriter by writing a local XLSX file.
type XLSXWriter struct {
	path string
}

// NewXLSXWriter creates an XLSXWriter that saves to the given path.
func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Write renders the overview into a CASHFLOWS sheet and saves the file.
func (w *XLSXWriter) Write(_ context.Context, overview cashflow.Overview) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", cashflowSheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, row := range buildRows(overview) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("building cell reference: %w", err)
		}
		if err := f.SetSheetRow(cashflowSheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetCellStyle(cashflowSheetName, "A1", "F1", headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	if err := f.SetColWidth(cashflowSheetName, "A", "C", 24); err != nil {
		return fmt.Errorf("setting column widths: %w", err)
	}
	if err := f.SetColWidth(cashflowSheetName, "D", "F", 14); err != nil {
		return fmt.Errorf("setting column widths: %w", err)
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving %s: %w", w.path, err)
	}
	return nil
}
