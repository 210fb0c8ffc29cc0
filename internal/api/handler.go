package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/renditeapp/rendite/internal/calc"
	"github.com/renditeapp/rendite/internal/cashflow"
	"github.com/renditeapp/rendite/internal/domain"
	"github.com/renditeapp/rendite/internal/profile"
	"github.com/renditeapp/rendite/internal/rates"
	"github.com/renditeapp/rendite/internal/store"
)

// ConverterSource provides the current currency converter.
type ConverterSource interface {
	Converter(ctx context.Context) (*rates.Converter, error)
}

// Handler provides the HTTP endpoints for entities, profiles, rates, the pure
// calculators, and the cashflow overview.
type Handler struct {
	entities   *store.Service
	flows      *cashflow.Service
	converters ConverterSource
}

// NewHandler creates a new API handler.
func NewHandler(entities *store.Service, flows *cashflow.Service, converters ConverterSource) *Handler {
	return &Handler{entities: entities, flows: flows, converters: converters}
}

// ListProfiles handles GET /api/v1/profiles.
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, profile.All())
}

// GetProfile handles GET /api/v1/profiles/{code}. Unknown codes resolve to
// the custom profile rather than a 404, matching the calculator fallback.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, _ := profile.ByCode(r.PathValue("code"))
	writeJSON(w, http.StatusOK, p)
}

// GetRates handles GET /api/v1/rates.
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	conv, err := h.converters.Converter(r.Context())
	if err != nil {
		slog.Error("failed to load exchange rates", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"base":  conv.Base(),
		"rates": conv.Rates(),
	})
}

// GetCashflowOverview handles GET /api/v1/cashflows/overview. The display
// currency defaults to the converter base.
func (h *Handler) GetCashflowOverview(w http.ResponseWriter, r *http.Request) {
	currency := r.URL.Query().Get("currency")
	if currency == "" {
		conv, err := h.converters.Converter(r.Context())
		if err != nil {
			slog.Error("failed to load exchange rates", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		currency = conv.Base()
	}

	overview, err := h.flows.Overview(r.Context(), currency)
	if err != nil {
		slog.Error("failed to build cashflow overview", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// CalcObject handles POST /api/v1/calc/object. The calc endpoints run the
// pure calculators without persisting anything.
func (h *Handler) CalcObject(w http.ResponseWriter, r *http.Request) {
	var in calc.ObjectInput
	if !decodeBody(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusOK, calc.Object(in))
}

// CalcCredit handles POST /api/v1/calc/credit.
func (h *Handler) CalcCredit(w http.ResponseWriter, r *http.Request) {
	var in calc.CreditInput
	if !decodeBody(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusOK, calc.CreditSnapshot(in))
}

// CalcRealEstate handles POST /api/v1/calc/realestate.
func (h *Handler) CalcRealEstate(w http.ResponseWriter, r *http.Request) {
	var in calc.RealEstateInput
	if !decodeBody(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusOK, calc.RealEstate(in))
}

// CalcDeposit handles POST /api/v1/calc/deposit.
func (h *Handler) CalcDeposit(w http.ResponseWriter, r *http.Request) {
	var in calc.DepositInput
	if !decodeBody(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusOK, calc.Deposit(in))
}

func (h *Handler) CreateObjectInvestment(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, "", h.entities.SaveObjectInvestment, func(inv *domain.ObjectInvestment, id string) { inv.ID = id })
}

func (h *Handler) UpdateObjectInvestment(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, r.PathValue("id"), h.entities.SaveObjectInvestment, func(inv *domain.ObjectInvestment, id string) { inv.ID = id })
}

func (h *Handler) GetObjectInvestment(w http.ResponseWriter, r *http.Request) {
	getEntity(w, r, h.entities.GetObjectInvestment)
}

func (h *Handler) ListObjectInvestments(w http.ResponseWriter, r *http.Request) {
	listEntities(w, r, h.entities.ListObjectInvestments)
}

func (h *Handler) CreateRealEstateInvestment(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, "", h.entities.SaveRealEstateInvestment, func(inv *domain.RealEstateInvestment, id string) { inv.ID = id })
}

func (h *Handler) UpdateRealEstateInvestment(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, r.PathValue("id"), h.entities.SaveRealEstateInvestment, func(inv *domain.RealEstateInvestment, id string) { inv.ID = id })
}

func (h *Handler) GetRealEstateInvestment(w http.ResponseWriter, r *http.Request) {
	getEntity(w, r, h.entities.GetRealEstateInvestment)
}

func (h *Handler) ListRealEstateInvestments(w http.ResponseWriter, r *http.Request) {
	listEntities(w, r, h.entities.ListRealEstateInvestments)
}

func (h *Handler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, "", h.entities.SaveDeposit, func(d *domain.Depositvestment, id string) { d.ID = id })
}

func (h *Handler) UpdateDeposit(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, r.PathValue("id"), h.entities.SaveDeposit, func(d *domain.Depositvestment, id string) { d.ID = id })
}

func (h *Handler) GetDeposit(w http.ResponseWriter, r *http.Request) {
	getEntity(w, r, h.entities.GetDeposit)
}

func (h *Handler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	listEntities(w, r, h.entities.ListDeposits)
}

func (h *Handler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, "", h.entities.SaveCredit, func(c *domain.Credit, id string) { c.ID = id })
}

func (h *Handler) UpdateCredit(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, r.PathValue("id"), h.entities.SaveCredit, func(c *domain.Credit, id string) { c.ID = id })
}

func (h *Handler) GetCredit(w http.ResponseWriter, r *http.Request) {
	getEntity(w, r, h.entities.GetCredit)
}

func (h *Handler) ListCredits(w http.ResponseWriter, r *http.Request) {
	listEntities(w, r, h.entities.ListCredits)
}

func (h *Handler) CreateCashflow(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, "", h.entities.SaveCashflow, func(cf *domain.Cashflow, id string) { cf.ID = id })
}

func (h *Handler) UpdateCashflow(w http.ResponseWriter, r *http.Request) {
	saveEntity(w, r, r.PathValue("id"), h.entities.SaveCashflow, func(cf *domain.Cashflow, id string) { cf.ID = id })
}

func (h *Handler) GetCashflow(w http.ResponseWriter, r *http.Request) {
	getEntity(w, r, h.entities.GetCashflow)
}

func (h *Handler) ListCashflows(w http.ResponseWriter, r *http.Request) {
	listEntities(w, r, h.entities.ListCashflows)
}

// DeleteEntity handles DELETE /api/v1/{kind}/{id} for every entity kind.
func (h *Handler) DeleteEntity(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h.entities.Remove(r.Context(), kind, r.PathValue("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "entity not found")
				return
			}
			slog.Error("failed to delete entity", "kind", kind, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func saveEntity[T any](w http.ResponseWriter, r *http.Request, id string, save func(context.Context, T) (T, error), setID func(*T, string)) {
	var v T
	if !decodeBody(w, r, &v) {
		return
	}
	if id != "" {
		setID(&v, id)
	}
	saved, err := save(r.Context(), v)
	if err != nil {
		slog.Error("failed to save entity", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func getEntity[T any](w http.ResponseWriter, r *http.Request, get func(context.Context, string) (T, error)) {
	v, err := get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "entity not found")
			return
		}
		slog.Error("failed to get entity", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func listEntities[T any](w http.ResponseWriter, r *http.Request, list func(context.Context) ([]T, error)) {
	v, err := list(r.Context())
	if err != nil {
		slog.Error("failed to list entities", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
