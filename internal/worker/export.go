package worker

import (
	"context"
	"log/slog"
	"time"
)

// Exporter defines the interface for writing the cashflow overview out.
type Exporter interface {
	Export(ctx context.Context, displayCurrency string) error
}

// ExportWorker periodically exports the cashflow overview to the configured
// spreadsheet destination.
type ExportWorker struct {
	exporter Exporter
	currency string
	interval time.Duration
}

// NewExportWorker creates a new ExportWorker exporting in the given currency.
func NewExportWorker(exporter Exporter, currency string, interval time.Duration) *ExportWorker {
	return &ExportWorker{
		exporter: exporter,
		currency: currency,
		interval: interval,
	}
}

// Run starts the export worker loop. It blocks until the context is cancelled.
func (w *ExportWorker) Run(ctx context.Context) {
	slog.Info("ExportWorker: starting")

	// Export immediately on startup
	if err := w.exporter.Export(ctx, w.currency); err != nil {
		slog.Error("ExportWorker: initial export failed", "error", err)
	} else {
		slog.Info("ExportWorker: initial export completed")
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("ExportWorker: shutting down")
			return
		case <-ticker.C:
			if err := w.exporter.Export(ctx, w.currency); err != nil {
				slog.Error("ExportWorker: export failed", "error", err)
			} else {
				slog.Info("ExportWorker: export completed")
			}
		}
	}
}
