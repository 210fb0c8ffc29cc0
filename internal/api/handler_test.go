package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/renditeapp/rendite/internal/cashflow"
	"github.com/renditeapp/rendite/internal/domain"
	"github.com/renditeapp/rendite/internal/rates"
	"github.com/renditeapp/rendite/internal/store"
)

type memRepository struct {
	records map[domain.Kind]map[string][]byte
}

func newMemRepository() *memRepository {
	return &memRepository{records: make(map[domain.Kind]map[string][]byte)}
}

func (m *memRepository) Put(_ context.Context, kind domain.Kind, id string, data []byte) error {
	if m.records[kind] == nil {
		m.records[kind] = make(map[string][]byte)
	}
	m.records[kind][id] = data
	return nil
}

func (m *memRepository) Get(_ context.Context, kind domain.Kind, id string) ([]byte, error) {
	data, ok := m.records[kind][id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return data, nil
}

func (m *memRepository) List(_ context.Context, kind domain.Kind) ([][]byte, error) {
	var out [][]byte
	for _, data := range m.records[kind] {
		out = append(out, data)
	}
	return out, nil
}

func (m *memRepository) Remove(_ context.Context, kind domain.Kind, id string) error {
	if _, ok := m.records[kind][id]; !ok {
		return store.ErrNotFound
	}
	delete(m.records[kind], id)
	return nil
}

type stubConverters struct{}

func (stubConverters) Converter(_ context.Context) (*rates.Converter, error) {
	return rates.NewConverter("EUR", map[string]decimal.Decimal{
		"CZK": decimal.NewFromInt(25),
	}), nil
}

func newTestHandler() *Handler {
	entities := store.NewService(newMemRepository())
	flows := cashflow.NewService(entities, stubConverters{})
	return NewHandler(entities, flows, stubConverters{})
}

func TestCreateObjectInvestmentComputesDerived(t *testing.T) {
	handler := newTestHandler()

	body := `{"name":"garage","currency":"EUR","startAmount":"100000","grossGainMonthly":"1200","costMonthly":"300"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/objects", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.CreateObjectInvestment(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var inv domain.ObjectInvestment
	json.NewDecoder(w.Body).Decode(&inv)
	if inv.ID == "" {
		t.Error("create must assign an ID")
	}
	if inv.NetGainMonthly != "900.00" {
		t.Errorf("NetGainMonthly = %q, want 900.00", inv.NetGainMonthly)
	}
	if inv.ReturnPercent != "10.80" {
		t.Errorf("ReturnPercent = %q, want 10.80", inv.ReturnPercent)
	}
}

func TestUpdateTakesIDFromPath(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/credits", strings.NewReader(`{"name":"loan","principal":"1000"}`))
	w := httptest.NewRecorder()
	handler.CreateCredit(w, req)
	var created domain.Credit
	json.NewDecoder(w.Body).Decode(&created)

	// Body without an ID; the path wins.
	req = httptest.NewRequest(http.MethodPut, "/api/v1/credits/"+created.ID, strings.NewReader(`{"name":"renamed","principal":"1000"}`))
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.UpdateCredit(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var updated domain.Credit
	json.NewDecoder(w.Body).Decode(&updated)
	if updated.ID != created.ID {
		t.Errorf("ID = %q, want %q", updated.ID, created.ID)
	}
	if updated.Name != "renamed" {
		t.Errorf("Name = %q, want renamed", updated.Name)
	}
}

func TestGetEntityNotFound(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/deposits/nope", nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	handler.GetDeposit(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDeleteEntity(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/credits", strings.NewReader(`{"name":"loan"}`))
	w := httptest.NewRecorder()
	handler.CreateCredit(w, req)
	var created domain.Credit
	json.NewDecoder(w.Body).Decode(&created)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/credits/"+created.ID, nil)
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.DeleteEntity(domain.KindCredit)(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}

	w = httptest.NewRecorder()
	handler.DeleteEntity(domain.KindCredit)(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestCreateInvalidBody(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/objects", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.CreateObjectInvestment(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCalcDepositEndpoint(t *testing.T) {
	handler := newTestHandler()

	body := `{
		"startAmount": "10000",
		"termMonths": 12,
		"rateNominal": "2",
		"compounding": "NONE",
		"taxFreeAllowance": "0",
		"withholdingTax": {"enabled": false, "ratePct": "0"},
		"solidarity": {"enabled": false, "ratePct": "0"},
		"churchTax": {"enabled": false, "ratePct": "0"},
		"yearlyFee": "0"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calc/deposit", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.CalcDeposit(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var result map[string]string
	json.NewDecoder(w.Body).Decode(&result)
	if result["grossGain"] != "200.00" {
		t.Errorf("grossGain = %q, want 200.00", result["grossGain"])
	}
	if result["netGainYearly"] != "200.00" {
		t.Errorf("netGainYearly = %q, want 200.00", result["netGainYearly"])
	}
}

func TestGetProfileFallsBackToCustom(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/xx", nil)
	req.SetPathValue("code", "xx")
	w := httptest.NewRecorder()
	handler.GetProfile(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var result map[string]any
	json.NewDecoder(w.Body).Decode(&result)
	if result["code"] != "custom" {
		t.Errorf("code = %v, want custom", result["code"])
	}
}

func TestGetRates(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates", nil)
	w := httptest.NewRecorder()
	handler.GetRates(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var result struct {
		Base  string            `json:"base"`
		Rates map[string]string `json:"rates"`
	}
	json.NewDecoder(w.Body).Decode(&result)
	if result.Base != "EUR" {
		t.Errorf("base = %q, want EUR", result.Base)
	}
	if result.Rates["CZK"] != "25" {
		t.Errorf("CZK rate = %q, want 25", result.Rates["CZK"])
	}
}

func TestCashflowOverviewDefaultsToBaseCurrency(t *testing.T) {
	handler := newTestHandler()
	ctx := context.Background()

	inv, _ := handler.entities.SaveObjectInvestment(ctx, domain.ObjectInvestment{
		Name: "flat", Currency: "EUR", StartAmount: "100000",
		GrossGainMonthly: "1200", CostMonthly: "300",
	})
	handler.entities.SaveCashflow(ctx, domain.Cashflow{Name: "flat", InvestmentID: inv.ID})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cashflows/overview", nil)
	w := httptest.NewRecorder()
	handler.GetCashflowOverview(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var overview cashflow.Overview
	json.NewDecoder(w.Body).Decode(&overview)
	if overview.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", overview.Currency)
	}
	if len(overview.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(overview.Entries))
	}
	if overview.Entries[0].DisplayMonthly != "900" {
		t.Errorf("DisplayMonthly = %q, want 900", overview.Entries[0].DisplayMonthly)
	}
}
