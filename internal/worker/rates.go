package worker

import (
	"context"
	"log/slog"
	"time"
)

// RateRefresher defines the interface for fetching and storing exchange rates.
type RateRefresher interface {
	FetchAndStoreRates(ctx context.Context) error
}

// RateWorker periodically refreshes exchange rates from the external API.
type RateWorker struct {
	refresher RateRefresher
	interval  time.Duration
}

// NewRateWorker creates a new RateWorker.
func NewRateWorker(refresher RateRefresher, interval time.Duration) *RateWorker {
	return &RateWorker{
		refresher: refresher,
		interval:  interval,
	}
}

// Run starts the rate worker loop. It blocks until the context is cancelled.
func (w *RateWorker) Run(ctx context.Context) {
	slog.Info("RateWorker: starting")

	// Refresh immediately on startup
	if err := w.refresher.FetchAndStoreRates(ctx); err != nil {
		slog.Error("RateWorker: initial refresh failed", "error", err)
	} else {
		slog.Info("RateWorker: initial refresh completed")
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("RateWorker: shutting down")
			return
		case <-ticker.C:
			if err := w.refresher.FetchAndStoreRates(ctx); err != nil {
				slog.Error("RateWorker: refresh failed", "error", err)
			} else {
				slog.Info("RateWorker: refresh completed")
			}
		}
	}
}
