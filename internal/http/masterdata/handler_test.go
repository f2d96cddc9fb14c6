package masterdata

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/obrafin/internal/masterdata"
)

func newRouter(dir *masterdata.Directory) http.Handler {
	r := chi.NewRouter()
	NewHandler(dir).Routes(r)

	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rr
}

func TestHandler_SupplierCRUD(t *testing.T) {
	dir := masterdata.NewDirectory()
	h := newRouter(dir)

	rr := do(t, h, http.MethodPost, "/suppliers", `{"name":" Casa do Construtor ","email":"vendas@casa.com.br"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var s partyDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &s))
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Casa do Construtor", s.Name)

	rr = do(t, h, http.MethodPut, "/suppliers/"+s.ID, `{"name":"Casa do Construtor Ltda"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	name, ok := dir.SupplierName(s.ID)
	require.True(t, ok)
	assert.Equal(t, "Casa do Construtor Ltda", name)

	rr = do(t, h, http.MethodGet, "/suppliers", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var list []partyDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rr = do(t, h, http.MethodDelete, "/suppliers/"+s.ID, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, h, http.MethodGet, "/suppliers/"+s.ID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_ProjectAndCashAccount(t *testing.T) {
	dir := masterdata.NewDirectory()
	h := newRouter(dir)

	rr := do(t, h, http.MethodPost, "/projects", `{"name":"Residencial Ipê","start_date":"2024-02-01"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"start_date":"2024-02-01"`)

	rr = do(t, h, http.MethodPost, "/cash-accounts", `{"name":"Conta Obra","bank":"CEF","balance":"1500.50"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	accounts := dir.CashAccounts.List()
	require.Len(t, accounts, 1)
	require.NotNil(t, accounts[0].Balance)
	assert.Equal(t, "1500.5", accounts[0].Balance.String())

	rr = do(t, h, http.MethodPost, "/revenue-categories", `{"name":"Medição"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 1, dir.RevenueCategories.Len())
}

func TestHandler_Errors(t *testing.T) {
	h := newRouter(masterdata.NewDirectory())

	type testCase struct {
		name   string
		method string
		target string
		body   string
		want   int
	}

	tests := []testCase{
		{name: "BlankName", method: http.MethodPost, target: "/customers", body: `{"name":""}`, want: http.StatusBadRequest},
		{name: "BadEmail", method: http.MethodPost, target: "/customers", body: `{"name":"João","email":"joao"}`, want: http.StatusBadRequest},
		{name: "Malformed", method: http.MethodPost, target: "/projects", body: `{`, want: http.StatusBadRequest},
		{name: "UpdateMissing", method: http.MethodPut, target: "/projects/nope", body: `{"name":"x"}`, want: http.StatusNotFound},
		{name: "DeleteMissing", method: http.MethodDelete, target: "/cash-accounts/nope", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
