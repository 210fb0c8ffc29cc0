// Package cashflow enriches stored cashflows for display: it resolves the
// referenced entities, recomputes the live figure, converts currencies, and
// aggregates totals.
package cashflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/renditeapp/rendite/internal/calc"
	"github.com/renditeapp/rendite/internal/domain"
	"github.com/renditeapp/rendite/internal/rates"
	"github.com/renditeapp/rendite/internal/store"
)

// NotFoundLabel is the placeholder shown for a dangling entity reference.
const NotFoundLabel = "not found"

// EntityStore provides the entity lookups enrichment needs.
type EntityStore interface {
	ListCashflows(ctx context.Context) ([]domain.Cashflow, error)
	ResolveInvestment(ctx context.Context, id string) (store.InvestmentRef, bool, error)
	GetCredit(ctx context.Context, id string) (domain.Credit, error)
}

// ConverterSource provides the current currency converter.
type ConverterSource interface {
	Converter(ctx context.Context) (*rates.Converter, error)
}

// Service enriches cashflows for display.
type Service struct {
	entities   EntityStore
	converters ConverterSource
}

// NewService creates a new cashflow Service.
func NewService(entities EntityStore, converters ConverterSource) *Service {
	if entities == nil {
		panic("cashflow.NewService: entities is nil")
	}
	if converters == nil {
		panic("cashflow.NewService: converters is nil")
	}
	return &Service{entities: entities, converters: converters}
}

// Entry is one enriched cashflow row.
type Entry struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	InvestmentName string `json:"investmentName"`
	CreditName     string `json:"creditName,omitempty"`
	Currency       string `json:"currency"`

	// DisplayMonthly is the live figure converted to the display currency and
	// rounded to a whole unit; DisplayYearly is exactly twelve times it.
	DisplayMonthly string `json:"displayMonthly"`
	DisplayYearly  string `json:"displayYearly"`

	// StoredMonthly is the figure persisted at compose time, unconverted. It
	// may lag behind DisplayMonthly when the referenced entities were edited
	// after the cashflow was last saved.
	StoredMonthly string `json:"storedMonthly"`

	// YieldPct comes from the unrounded, unconverted investment figures.
	YieldPct string `json:"yieldPct"`
}

// Overview is the full enriched cashflow listing with totals.
type Overview struct {
	Currency     string  `json:"currency"`
	Entries      []Entry `json:"entries"`
	TotalMonthly string  `json:"totalMonthly"`
	TotalYearly  string  `json:"totalYearly"`
}

// Overview builds the enriched listing in the given display currency.
func (s *Service) Overview(ctx context.Context, displayCurrency string) (Overview, error) {
	flows, err := s.entities.ListCashflows(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("listing cashflows: %w", err)
	}

	conv, err := s.converters.Converter(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("building converter: %w", err)
	}

	entries := make([]Entry, 0, len(flows))
	for _, cf := range flows {
		entry, err := s.enrich(ctx, cf, conv, displayCurrency)
		if err != nil {
			return Overview{}, err
		}
		entries = append(entries, entry)
	}

	total := lo.Reduce(entries, func(acc decimal.Decimal, e Entry, _ int) decimal.Decimal {
		return acc.Add(domain.SafeParse(e.DisplayMonthly))
	}, decimal.Zero)

	return Overview{
		Currency:     displayCurrency,
		Entries:      entries,
		TotalMonthly: total.String(),
		TotalYearly:  total.Mul(domain.Twelve).String(),
	}, nil
}

func (s *Service) enrich(ctx context.Context, cf domain.Cashflow, conv *rates.Converter, displayCurrency string) (Entry, error) {
	entry := Entry{
		ID:            cf.ID,
		Name:          cf.Name,
		Currency:      displayCurrency,
		StoredMonthly: cf.CashflowMonthly,
	}

	ref, found, err := s.entities.ResolveInvestment(ctx, cf.InvestmentID)
	if err != nil {
		return Entry{}, fmt.Errorf("resolving investment %s: %w", cf.InvestmentID, err)
	}
	entry.InvestmentName = ref.Name
	if !found {
		entry.InvestmentName = NotFoundLabel
	}

	var credit *domain.Credit
	if cf.CreditID != "" {
		c, err := s.entities.GetCredit(ctx, cf.CreditID)
		switch {
		case err == nil:
			credit = &c
			entry.CreditName = c.Name
		case errors.Is(err, store.ErrNotFound):
			entry.CreditName = NotFoundLabel
		default:
			return Entry{}, fmt.Errorf("resolving credit %s: %w", cf.CreditID, err)
		}
	}

	// Recompute from the live entities so edits show up without resaving the
	// cashflow; the stored figure stays available alongside.
	live := domain.SafeParse(calc.ComposeCashflow(ref.NetGainMonthly, credit))

	converted := live
	if found && ref.Currency != "" {
		converted = conv.Convert(live, ref.Currency, displayCurrency)
	}

	// Round the monthly value first, then multiply, so that the shown yearly
	// figure is always exactly twelve times the shown monthly figure.
	rounded := domain.RoundUnit(converted)
	entry.DisplayMonthly = rounded.String()
	entry.DisplayYearly = rounded.Mul(domain.Twelve).String()

	entry.YieldPct = ref.ReturnPercent

	return entry, nil
}
