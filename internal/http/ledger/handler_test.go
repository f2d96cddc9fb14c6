package ledger

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

	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
)

const expenseBody = `{
	"entry_type": "FINANCIAL",
	"invoice_number": "NF-123",
	"project_id": "p1",
	"issue_date": "2024-03-10",
	"cash_account_id": "acc1",
	"supplier_id": "s1",
	"transaction_type": "PRODUCT",
	"line_items": [
		{"cost_center_id": "cc1", "description": "Cimento", "quantity": 10, "unit_price": 50},
		{"cost_center_id": "cc2", "description": "Frete", "amount": "500"}
	]
}`

func newRouter(svc *ledger.Service) http.Handler {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Route("/expenses", h.ExpenseRoutes)
	r.Route("/revenues", h.RevenueRoutes)
	r.Route("/settlements", h.SettlementRoutes)

	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rr
}

func TestHandler_ExpenseLifecycle(t *testing.T) {
	svc := ledger.NewService()
	h := newRouter(svc)

	rr := do(t, h, http.MethodPost, "/expenses", expenseBody)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created expenseResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "1000", created.TotalAmount.String())
	assert.Equal(t, ledger.StatusUnpaid, created.Status)
	assert.Equal(t, "500", created.LineItems[0].Amount.String())

	rr = do(t, h, http.MethodPost, "/settlements", `{
		"entry_id": "`+created.ID+`",
		"category": "expense",
		"settlement_date": "2024-03-20",
		"amount": "400",
		"cash_account_id": "acc1"
	}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/expenses/"+created.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got expenseResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, ledger.StatusPartiallyPaid, got.Status)
	assert.Equal(t, "600", got.Outstanding.String())
	assert.Contains(t, rr.Body.String(), `"issue_date":"2024-03-10"`)

	rr = do(t, h, http.MethodGet, "/expenses?status=PARTIALLY_PAID&project_id=p1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var list []expenseResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rr = do(t, h, http.MethodGet, "/expenses?to=2024-03-01", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/settlements?entry_id="+created.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var settlements []settlementResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &settlements))
	require.Len(t, settlements, 1)
	assert.Equal(t, "400", settlements[0].Amount.String())
}

func TestHandler_UpdateExpenseKeepsSettledAmount(t *testing.T) {
	svc := ledger.NewService()
	h := newRouter(svc)

	rr := do(t, h, http.MethodPost, "/expenses", expenseBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created expenseResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	_, err := svc.ApplySettlement(ledger.SettlementParams{
		EntryID:        created.ID,
		Category:       ledger.CategoryExpense,
		SettlementDate: time20240320(),
		Amount:         decimalOf("1000"),
		CashAccountID:  "acc1",
	})
	require.NoError(t, err)

	rr = do(t, h, http.MethodPut, "/expenses/"+created.ID, strings.Replace(expenseBody, `"amount": "500"`, `"amount": "1500"`, 1))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var updated expenseResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "2000", updated.TotalAmount.String())
	assert.Equal(t, "1000", updated.SettledAmount.String())
	assert.Equal(t, ledger.StatusPartiallyPaid, updated.Status)
}

func TestHandler_Revenue(t *testing.T) {
	svc := ledger.NewService()
	h := newRouter(svc)

	rr := do(t, h, http.MethodPost, "/revenues", `{
		"entry_type": "ACCOUNTING",
		"project_id": "p1",
		"issue_date": "2024-04-01",
		"cash_account_id": "acc1",
		"customer_id": "c1",
		"line_items": [{"cost_center_id": "rc1", "amount": 3000}]
	}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var rev revenueResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rev))
	assert.Equal(t, ledger.StatusUnreceived, rev.Status)
	assert.Contains(t, rr.Body.String(), `"receipt_date":null`)

	rr = do(t, h, http.MethodPost, "/settlements", `{
		"entry_id": "`+rev.ID+`",
		"category": "revenue",
		"settlement_date": "2024-04-05",
		"amount": 3000,
		"cash_account_id": "acc1"
	}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, h, http.MethodGet, "/revenues/"+rev.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rev))
	assert.Equal(t, ledger.StatusReceived, rev.Status)

	rr = do(t, h, http.MethodGet, "/revenues?status=RECEIVED", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var list []revenueResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestHandler_Errors(t *testing.T) {
	svc := ledger.NewService()
	h := newRouter(svc)

	type testCase struct {
		name   string
		method string
		target string
		body   string
		want   int
	}

	tests := []testCase{
		{name: "MissingSupplier", method: http.MethodPost, target: "/expenses", body: strings.Replace(expenseBody, `"s1"`, `""`, 1), want: http.StatusBadRequest},
		{name: "BadIssueDate", method: http.MethodPost, target: "/expenses", body: strings.Replace(expenseBody, "2024-03-10", "10/03/2024", 1), want: http.StatusBadRequest},
		{name: "BadFilterDate", method: http.MethodGet, target: "/expenses?from=ontem", want: http.StatusBadRequest},
		{name: "GetMissingExpense", method: http.MethodGet, target: "/expenses/nope", want: http.StatusNotFound},
		{name: "GetMissingRevenue", method: http.MethodGet, target: "/revenues/nope", want: http.StatusNotFound},
		{name: "UpdateMissing", method: http.MethodPut, target: "/expenses/nope", body: expenseBody, want: http.StatusNotFound},
		{
			name:   "SettleMissing",
			method: http.MethodPost,
			target: "/settlements",
			body:   `{"entry_id":"nope","category":"expense","settlement_date":"2024-01-01","amount":1,"cash_account_id":"a"}`,
			want:   http.StatusNotFound,
		},
		{
			name:   "SettleZero",
			method: http.MethodPost,
			target: "/settlements",
			body:   `{"entry_id":"x","category":"expense","settlement_date":"2024-01-01","amount":0,"cash_account_id":"a"}`,
			want:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.want, rr.Code, rr.Body.String())
		})
	}
}

func time20240320() time.Time {
	return time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
}

func decimalOf(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
