package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/renditeapp/rendite/internal/cashflow"
	"github.com/renditeapp/rendite/internal/domain"
	"github.com/renditeapp/rendite/internal/static"
	"github.com/renditeapp/rendite/internal/store"
)

// NewServer creates an HTTP server with all routes configured. When
// adminAPIKey is non-empty, every mutating route requires a bearer token.
func NewServer(port string, entities *store.Service, flows *cashflow.Service, converters ConverterSource, adminAPIKey string) *http.Server {
	handler := NewHandler(entities, flows, converters)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api.md", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write(static.APIMD)
	})

	mux.HandleFunc("GET /api/v1/profiles", handler.ListProfiles)
	mux.HandleFunc("GET /api/v1/profiles/{code}", handler.GetProfile)
	mux.HandleFunc("GET /api/v1/rates", handler.GetRates)
	mux.HandleFunc("GET /api/v1/cashflows/overview", handler.GetCashflowOverview)

	mux.HandleFunc("POST /api/v1/calc/object", handler.CalcObject)
	mux.HandleFunc("POST /api/v1/calc/credit", handler.CalcCredit)
	mux.HandleFunc("POST /api/v1/calc/realestate", handler.CalcRealEstate)
	mux.HandleFunc("POST /api/v1/calc/deposit", handler.CalcDeposit)

	mux.HandleFunc("GET /api/v1/objects", handler.ListObjectInvestments)
	mux.HandleFunc("GET /api/v1/objects/{id}", handler.GetObjectInvestment)
	mux.HandleFunc("GET /api/v1/realestate", handler.ListRealEstateInvestments)
	mux.HandleFunc("GET /api/v1/realestate/{id}", handler.GetRealEstateInvestment)
	mux.HandleFunc("GET /api/v1/deposits", handler.ListDeposits)
	mux.HandleFunc("GET /api/v1/deposits/{id}", handler.GetDeposit)
	mux.HandleFunc("GET /api/v1/credits", handler.ListCredits)
	mux.HandleFunc("GET /api/v1/credits/{id}", handler.GetCredit)
	mux.HandleFunc("GET /api/v1/cashflows", handler.ListCashflows)
	mux.HandleFunc("GET /api/v1/cashflows/{id}", handler.GetCashflow)

	protect := func(pattern string, h http.HandlerFunc) {
		if adminAPIKey != "" {
			mux.Handle(pattern, requireAuth(adminAPIKey, h))
			return
		}
		mux.Handle(pattern, h)
	}

	protect("POST /api/v1/objects", handler.CreateObjectInvestment)
	protect("PUT /api/v1/objects/{id}", handler.UpdateObjectInvestment)
	protect("DELETE /api/v1/objects/{id}", handler.DeleteEntity(domain.KindObjectInvestment))
	protect("POST /api/v1/realestate", handler.CreateRealEstateInvestment)
	protect("PUT /api/v1/realestate/{id}", handler.UpdateRealEstateInvestment)
	protect("DELETE /api/v1/realestate/{id}", handler.DeleteEntity(domain.KindRealEstateInvestment))
	protect("POST /api/v1/deposits", handler.CreateDeposit)
	protect("PUT /api/v1/deposits/{id}", handler.UpdateDeposit)
	protect("DELETE /api/v1/deposits/{id}", handler.DeleteEntity(domain.KindDeposit))
	protect("POST /api/v1/credits", handler.CreateCredit)
	protect("PUT /api/v1/credits/{id}", handler.UpdateCredit)
	protect("DELETE /api/v1/credits/{id}", handler.DeleteEntity(domain.KindCredit))
	protect("POST /api/v1/cashflows", handler.CreateCashflow)
	protect("PUT /api/v1/cashflows/{id}", handler.UpdateCashflow)
	protect("DELETE /api/v1/cashflows/{id}", handler.DeleteEntity(domain.KindCashflow))

	return &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func requireAuth(apiKey string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token := strings.TrimPrefix(auth, "Bearer ")
		if !strings.HasPrefix(auth, "Bearer ") || subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
