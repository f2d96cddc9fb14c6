package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/export"
	costcenterhttp "github.com/MrJamesThe3rd/obrafin/internal/http/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/http/importcsv"
	ledgerhttp "github.com/MrJamesThe3rd/obrafin/internal/http/ledger"
	masterdatahttp "github.com/MrJamesThe3rd/obrafin/internal/http/masterdata"
	producthttp "github.com/MrJamesThe3rd/obrafin/internal/http/product"
	reporthttp "github.com/MrJamesThe3rd/obrafin/internal/http/report"
	"github.com/MrJamesThe3rd/obrafin/internal/importer"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/masterdata"
	"github.com/MrJamesThe3rd/obrafin/internal/observability"
	"github.com/MrJamesThe3rd/obrafin/internal/product"
	"github.com/MrJamesThe3rd/obrafin/internal/report"
)

func newTestRouter(opts Options) http.Handler {
	products := product.NewService()
	costCenters := costcenter.NewService()
	entries := ledger.NewService(ledger.WithRecorder(opts.Metrics))
	dir := masterdata.NewDirectory()
	projector := report.NewProjector(entries, products, costCenters, dir)

	return New(
		opts,
		costcenterhttp.NewHandler(costCenters),
		producthttp.NewHandler(products),
		ledgerhttp.NewHandler(entries),
		masterdatahttp.NewHandler(dir),
		reporthttp.NewHandler(projector, export.NewService(projector), products),
		importcsv.NewHandler(importer.NewService(products, costCenters)),
	)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	return rr
}

func TestRouter_HealthAndSecurityHeaders(t *testing.T) {
	h := newTestRouter(Options{Metrics: observability.NewMetrics()})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestRouter_NotFoundIsProblem(t *testing.T) {
	h := newTestRouter(Options{Metrics: observability.NewMetrics()})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
}

func TestRouter_MetricsCountLedgerWrites(t *testing.T) {
	metrics := observability.NewMetrics()
	h := newTestRouter(Options{Metrics: metrics})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/revenues", strings.NewReader(`{
		"entry_type": "FINANCIAL",
		"project_id": "p1",
		"issue_date": "2024-01-15",
		"cash_account_id": "acc1",
		"customer_id": "c1",
		"line_items": [{"cost_center_id": "rc1", "amount": 100}]
	}`))
	req.Header.Set("Content-Type", "application/json")

	rr := serve(h, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `obrafin_ledger_entries_total{category="revenue"} 1`)
	assert.Contains(t, rr.Body.String(), `obrafin_http_requests_total{code="201",route="/api/v1/revenues`)
}

func TestRouter_RejectsNonJSONBody(t *testing.T) {
	h := newTestRouter(Options{Metrics: observability.NewMetrics()})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := serve(h, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
}

func TestRouter_RateLimit(t *testing.T) {
	h := newTestRouter(Options{Metrics: observability.NewMetrics(), RateLimit: 1, RateWindow: time.Minute})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestRouter(Options{Metrics: observability.NewMetrics(), AllowedOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rr := serve(h, req)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}
