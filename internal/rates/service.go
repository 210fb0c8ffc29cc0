package rates

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// RateFetcher fetches live exchange rates for a base currency.
type RateFetcher interface {
	FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// Service manages exchange rates: fetching from the external API, persisting,
// and building Converters for the display pipeline.
type Service struct {
	fetcher RateFetcher
	repo    RateRepository
	base    string
	cache   *converterCache
}

// NewService creates a new rates Service.
func NewService(fetcher RateFetcher, repo RateRepository, base string) *Service {
	return &Service{
		fetcher: fetcher,
		repo:    repo,
		base:    base,
		cache:   newConverterCache(),
	}
}

// FetchAndStoreRates fetches all rates from the external API and stores them.
// Implements the worker refresh interface.
func (s *Service) FetchAndStoreRates(ctx context.Context) error {
	fetched, err := s.fetcher.FetchRates(ctx, s.base)
	if err != nil {
		return fmt.Errorf("fetching exchange rates: %w", err)
	}

	for code, rate := range fetched {
		if err := s.repo.SaveRate(ctx, code, rate); err != nil {
			return fmt.Errorf("storing rate for %s: %w", code, err)
		}
	}

	s.cache.invalidate()
	return nil
}

// Converter builds a Converter from the stored rates, reusing a cached one
// while it is fresh.
func (s *Service) Converter(ctx context.Context) (*Converter, error) {
	if conv, ok := s.cache.get(); ok {
		return conv, nil
	}

	stored, err := s.repo.GetAllRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading exchange rates: %w", err)
	}

	rateByCode := make(map[string]decimal.Decimal, len(stored))
	for _, r := range stored {
		rateByCode[r.Code] = r.Rate
	}

	conv := NewConverter(s.base, rateByCode)
	s.cache.set(conv)
	return conv, nil
}
