package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/renditeapp/rendite/internal/calc"
	"github.com/renditeapp/rendite/internal/domain"
)

// Service is the mutation layer over the entity repository. Every save runs
// the matching pure calculator and persists the entity with its derived
// fields already written, so that readers never see raw inputs without
// results. The calculators stay stateless; the repository is the only
// collaborator holding state.
type Service struct {
	repo Repository
}

// NewService creates a new store Service.
func NewService(repo Repository) *Service {
	if repo == nil {
		panic("store.NewService: repo is nil")
	}
	return &Service{repo: repo}
}

// InvestmentRef is the resolved view of any investment kind, carrying the
// derived figures a cashflow needs.
type InvestmentRef struct {
	ID             string      `json:"id"`
	Kind           domain.Kind `json:"kind"`
	Name           string      `json:"name"`
	Currency       string      `json:"currency"`
	NetGainMonthly string      `json:"netGainMonthly"`
	NetGainYearly  string      `json:"netGainYearly"`
	ReturnPercent  string      `json:"returnPercent"`
}

func (s *Service) SaveObjectInvestment(ctx context.Context, inv domain.ObjectInvestment) (domain.ObjectInvestment, error) {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	inv = calc.ApplyObject(inv)
	if err := s.put(ctx, domain.KindObjectInvestment, inv.ID, inv); err != nil {
		return domain.ObjectInvestment{}, err
	}
	return inv, nil
}

func (s *Service) SaveRealEstateInvestment(ctx context.Context, inv domain.RealEstateInvestment) (domain.RealEstateInvestment, error) {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	inv = calc.ApplyRealEstate(inv)
	if err := s.put(ctx, domain.KindRealEstateInvestment, inv.ID, inv); err != nil {
		return domain.RealEstateInvestment{}, err
	}
	return inv, nil
}

func (s *Service) SaveDeposit(ctx context.Context, d domain.Depositvestment) (domain.Depositvestment, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d = calc.ApplyDeposit(d)
	if err := s.put(ctx, domain.KindDeposit, d.ID, d); err != nil {
		return domain.Depositvestment{}, err
	}
	return d, nil
}

func (s *Service) SaveCredit(ctx context.Context, c domain.Credit) (domain.Credit, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c = calc.ApplyCredit(c)
	if err := s.put(ctx, domain.KindCredit, c.ID, c); err != nil {
		return domain.Credit{}, err
	}
	return c, nil
}

// SaveCashflow composes and persists a cashflow. The referenced investment
// and credit are resolved now; the stored monthly figure keeps this value
// until the cashflow itself is saved again, even if the referenced entities
// change in the meantime.
func (s *Service) SaveCashflow(ctx context.Context, cf domain.Cashflow) (domain.Cashflow, error) {
	if cf.ID == "" {
		cf.ID = uuid.NewString()
	}

	ref, _, err := s.ResolveInvestment(ctx, cf.InvestmentID)
	if err != nil {
		return domain.Cashflow{}, err
	}

	var credit *domain.Credit
	if cf.CreditID != "" {
		c, err := s.GetCredit(ctx, cf.CreditID)
		switch {
		case err == nil:
			credit = &c
		case errors.Is(err, ErrNotFound):
			// Dangling reference contributes zero; resolved to a placeholder
			// at display time.
		default:
			return domain.Cashflow{}, err
		}
	}

	cf.CashflowMonthly = calc.ComposeCashflow(ref.NetGainMonthly, credit)
	if err := s.put(ctx, domain.KindCashflow, cf.ID, cf); err != nil {
		return domain.Cashflow{}, err
	}
	return cf, nil
}

// ResolveInvestment looks an investment up by ID across all investment kinds.
// A missing investment is not an error: the second return is false and the
// ref carries zero figures.
func (s *Service) ResolveInvestment(ctx context.Context, id string) (InvestmentRef, bool, error) {
	for _, kind := range domain.InvestmentKinds {
		data, err := s.repo.Get(ctx, kind, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return InvestmentRef{}, false, err
		}
		ref, err := refFromRecord(kind, data)
		if err != nil {
			return InvestmentRef{}, false, err
		}
		return ref, true, nil
	}
	return InvestmentRef{ID: id, NetGainMonthly: "0", NetGainYearly: "0", ReturnPercent: "0"}, false, nil
}

func refFromRecord(kind domain.Kind, data []byte) (InvestmentRef, error) {
	switch kind {
	case domain.KindObjectInvestment:
		var inv domain.ObjectInvestment
		if err := json.Unmarshal(data, &inv); err != nil {
			return InvestmentRef{}, fmt.Errorf("decoding %s: %w", kind, err)
		}
		return InvestmentRef{
			ID: inv.ID, Kind: kind, Name: inv.Name, Currency: inv.Currency,
			NetGainMonthly: inv.NetGainMonthly, NetGainYearly: inv.NetGainYearly,
			ReturnPercent: inv.ReturnPercent,
		}, nil
	case domain.KindRealEstateInvestment:
		var inv domain.RealEstateInvestment
		if err := json.Unmarshal(data, &inv); err != nil {
			return InvestmentRef{}, fmt.Errorf("decoding %s: %w", kind, err)
		}
		return InvestmentRef{
			ID: inv.ID, Kind: kind, Name: inv.Name, Currency: inv.Currency,
			NetGainMonthly: inv.NetGainMonthly, NetGainYearly: inv.NetGainYearly,
			ReturnPercent: inv.YieldPctYearly,
		}, nil
	case domain.KindDeposit:
		var d domain.Depositvestment
		if err := json.Unmarshal(data, &d); err != nil {
			return InvestmentRef{}, fmt.Errorf("decoding %s: %w", kind, err)
		}
		return InvestmentRef{
			ID: d.ID, Kind: kind, Name: d.Name, Currency: d.Currency,
			NetGainMonthly: d.NetGainMonthly, NetGainYearly: d.NetGainYearly,
			ReturnPercent: d.ReturnPercent,
		}, nil
	default:
		return InvestmentRef{}, fmt.Errorf("kind %s is not an investment", kind)
	}
}

func (s *Service) GetObjectInvestment(ctx context.Context, id string) (domain.ObjectInvestment, error) {
	return getAs[domain.ObjectInvestment](ctx, s.repo, domain.KindObjectInvestment, id)
}

func (s *Service) GetRealEstateInvestment(ctx context.Context, id string) (domain.RealEstateInvestment, error) {
	return getAs[domain.RealEstateInvestment](ctx, s.repo, domain.KindRealEstateInvestment, id)
}

func (s *Service) GetDeposit(ctx context.Context, id string) (domain.Depositvestment, error) {
	return getAs[domain.Depositvestment](ctx, s.repo, domain.KindDeposit, id)
}

func (s *Service) GetCredit(ctx context.Context, id string) (domain.Credit, error) {
	return getAs[domain.Credit](ctx, s.repo, domain.KindCredit, id)
}

func (s *Service) GetCashflow(ctx context.Context, id string) (domain.Cashflow, error) {
	return getAs[domain.Cashflow](ctx, s.repo, domain.KindCashflow, id)
}

func (s *Service) ListObjectInvestments(ctx context.Context) ([]domain.ObjectInvestment, error) {
	return listAs[domain.ObjectInvestment](ctx, s.repo, domain.KindObjectInvestment)
}

func (s *Service) ListRealEstateInvestments(ctx context.Context) ([]domain.RealEstateInvestment, error) {
	return listAs[domain.RealEstateInvestment](ctx, s.repo, domain.KindRealEstateInvestment)
}

func (s *Service) ListDeposits(ctx context.Context) ([]domain.Depositvestment, error) {
	return listAs[domain.Depositvestment](ctx, s.repo, domain.KindDeposit)
}

func (s *Service) ListCredits(ctx context.Context) ([]domain.Credit, error) {
	return listAs[domain.Credit](ctx, s.repo, domain.KindCredit)
}

func (s *Service) ListCashflows(ctx context.Context) ([]domain.Cashflow, error) {
	return listAs[domain.Cashflow](ctx, s.repo, domain.KindCashflow)
}

// Remove deletes an entity. There is no cascading delete: removing an
// investment or credit referenced by a cashflow leaves a dangling reference
// that resolves to a placeholder at display time.
func (s *Service) Remove(ctx context.Context, kind domain.Kind, id string) error {
	return s.repo.Remove(ctx, kind, id)
}

func (s *Service) put(ctx context.Context, kind domain.Kind, id string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s %s: %w", kind, id, err)
	}
	return s.repo.Put(ctx, kind, id, data)
}

func getAs[T any](ctx context.Context, repo Repository, kind domain.Kind, id string) (T, error) {
	var v T
	data, err := repo.Get(ctx, kind, id)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decoding %s %s: %w", kind, id, err)
	}
	return v, nil
}

func listAs[T any](ctx context.Context, repo Repository, kind domain.Kind) ([]T, error) {
	records, err := repo.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for _, data := range records {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", kind, err)
		}
		out = append(out, v)
	}
	return out, nil
}
