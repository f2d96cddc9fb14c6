package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	return rr.Body.String()
}

func TestMetrics_MiddlewareRecordsRoute(t *testing.T) {
	m := NewMetrics()

	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rc := chi.NewRouteContext()
	rc.RoutePatterns = append(rc.RoutePatterns, "/api/v1/expenses")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	body := scrape(t, m)
	assert.Contains(t, body, `obrafin_http_requests_total{code="201",route="/api/v1/expenses"} 1`)
	assert.Contains(t, body, `obrafin_http_request_duration_seconds_bucket{route="/api/v1/expenses"`)
}

func TestMetrics_UnknownRoute(t *testing.T) {
	m := NewMetrics()

	handler := m.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Contains(t, scrape(t, m), `obrafin_http_requests_total{code="200",route="unknown"} 1`)
}

func TestMetrics_LedgerRecorder(t *testing.T) {
	m := NewMetrics()

	var rec ledger.Recorder = m

	rec.EntryCreated(ledger.CategoryExpense)
	rec.EntryCreated(ledger.CategoryExpense)
	rec.SettlementApplied(ledger.CategoryRevenue, ledger.StatusReceived)

	body := scrape(t, m)
	assert.Contains(t, body, `obrafin_ledger_entries_total{category="expense"} 2`)
	assert.Contains(t, body, `obrafin_ledger_settlements_total{category="revenue",status="RECEIVED"} 1`)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	assert.NotNil(t, m.Middleware(next))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
