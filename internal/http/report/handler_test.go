package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/export"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/masterdata"
	"github.com/MrJamesThe3rd/obrafin/internal/product"
	"github.com/MrJamesThe3rd/obrafin/internal/report"
)

type fixture struct {
	router    http.Handler
	productID string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	products := product.NewService()
	costCenters := costcenter.NewService()
	entries := ledger.NewService()
	dir := masterdata.NewDirectory()

	cat, err := products.Add("Agregados", "", nil)
	require.NoError(t, err)

	brita, err := products.Add("Brita 1", "m³", &cat.ID)
	require.NoError(t, err)

	cc, err := costCenters.Add("Materiais", nil)
	require.NoError(t, err)

	supplier, err := dir.Suppliers.Add(masterdata.Supplier{Name: "Pedreira Central"})
	require.NoError(t, err)

	e, err := entries.CreateExpense(ledger.ExpenseParams{
		EntryParams: ledger.EntryParams{
			EntryType:     ledger.EntryTypeFinancial,
			ProjectID:     "p1",
			IssueDate:     time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			CashAccountID: "acc1",
			LineItems: []ledger.LineItemParams{{
				CostCenterID: cc.ID,
				ProductID:    &brita.ID,
				Quantity:     new(decimal.NewFromInt(3)),
				UnitPrice:    new(decimal.NewFromInt(120)),
			}},
		},
		SupplierID:      supplier.ID,
		TransactionType: ledger.TransactionProduct,
	})
	require.NoError(t, err)

	_, err = entries.ApplySettlement(ledger.SettlementParams{
		EntryID:        e.ID,
		Category:       ledger.CategoryExpense,
		SettlementDate: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.NewFromInt(360),
		CashAccountID:  "acc1",
	})
	require.NoError(t, err)

	projector := report.NewProjector(entries, products, costCenters, dir)

	r := chi.NewRouter()
	r.Route("/reports", NewHandler(projector, export.NewService(projector), products).Routes)

	return fixture{router: r, productID: brita.ID}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))

	return rr
}

func TestHandler_PurchaseHistory(t *testing.T) {
	f := newFixture(t)

	rr := get(t, f.router, "/reports/purchase-history?product_id="+f.productID)
	require.Equal(t, http.StatusOK, rr.Code)

	var items []purchaseHistoryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Pedreira Central", items[0].SupplierName)
	assert.Equal(t, "Agregados / Brita 1", items[0].ProductName)
	assert.Equal(t, "360", items[0].TotalAmount.String())

	rr = get(t, f.router, "/reports/purchase-history")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_PurchaseHistoryCSV(t *testing.T) {
	f := newFixture(t)

	rr := get(t, f.router, "/reports/purchase-history?format=csv&product_id="+f.productID)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="historico_compras_Brita_1.csv"`, rr.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(rr.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "02/05/2024")
	assert.Contains(t, lines[1], "360.00")
}

func TestHandler_CostCenterSummary(t *testing.T) {
	f := newFixture(t)

	rr := get(t, f.router, "/reports/cost-center-summary?project_id=p1")
	require.Equal(t, http.StatusOK, rr.Code)

	var nodes []summaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &nodes))
	require.Len(t, nodes, 1)
	assert.Equal(t, "360", nodes[0].Total.String())

	rr = get(t, f.router, "/reports/cost-center-summary?project_id=other")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &nodes))
	assert.True(t, nodes[0].Total.IsZero())

	rr = get(t, f.router, "/reports/cost-center-summary?from=maio")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_CashFlow(t *testing.T) {
	f := newFixture(t)

	rr := get(t, f.router, "/reports/cash-flow?cash_account_id=acc1&opening_balance=1000")
	require.Equal(t, http.StatusOK, rr.Code)

	var rows []cashFlowResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "360", rows[0].Outflow.String())
	assert.Equal(t, "640", rows[0].Balance.String())

	rr = get(t, f.router, "/reports/cash-flow?opening_balance=mil")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = get(t, f.router, "/reports/cash-flow?format=csv&cash_account_id=acc1")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `attachment; filename="fluxo_caixa_acc1.csv"`, rr.Header().Get("Content-Disposition"))
}
