package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/renditeapp/rendite/internal/cashflow"
	"github.com/renditeapp/rendite/internal/store"
)

func newTestServer(adminAPIKey string) http.Handler {
	entities := store.NewService(newMemRepository())
	flows := cashflow.NewService(entities, stubConverters{})
	return NewServer("8080", entities, flows, stubConverters{}, adminAPIKey).Handler
}

func TestMutationsRequireAuthWhenKeySet(t *testing.T) {
	srv := newTestServer("secret")

	body := `{"name":"garage","grossGainMonthly":"100"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/objects", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("without token: status = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/objects", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer wrong")
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong token: status = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/objects", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer secret")
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200", w.Code)
	}
}

func TestReadsStayPublicWhenKeySet(t *testing.T) {
	srv := newTestServer("secret")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestMutationsOpenWithoutKey(t *testing.T) {
	srv := newTestServer("")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/credits", strings.NewReader(`{"name":"loan"}`))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestAPIDocServed(t *testing.T) {
	srv := newTestServer("")

	req := httptest.NewRequest(http.MethodGet, "/api.md", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Errorf("Content-Type = %q, want text/markdown", ct)
	}
}
