package costcenter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
)

func newRouter(svc *costcenter.Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/cost-centers", NewHandler(svc).Routes)

	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rr
}

func TestHandler_CreateAndTree(t *testing.T) {
	svc := costcenter.NewService()
	h := newRouter(svc)

	rr := do(t, h, http.MethodPost, "/cost-centers", `{"name":"Custos de Construção"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var root nodeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &root))
	assert.False(t, root.Launchable)

	rr = do(t, h, http.MethodPost, "/cost-centers",
		`{"name":"Materiais","parent_id":"`+root.ID+`","launchable":true}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, h, http.MethodGet, "/cost-centers", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var roots []nodeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &roots))
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "Materiais", roots[0].Children[0].Name)

	rr = do(t, h, http.MethodGet, "/cost-centers/launchable", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var launchable []selectableResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &launchable))
	require.Len(t, launchable, 1)
	assert.Equal(t, "Custos de Construção / Materiais", launchable[0].Path)
}

func TestHandler_Errors(t *testing.T) {
	svc := costcenter.NewService()
	h := newRouter(svc)

	type testCase struct {
		name   string
		method string
		target string
		body   string
		want   int
	}

	tests := []testCase{
		{name: "BlankName", method: http.MethodPost, target: "/cost-centers", body: `{"name":"  "}`, want: http.StatusBadRequest},
		{name: "UnknownField", method: http.MethodPost, target: "/cost-centers", body: `{"nome":"x"}`, want: http.StatusBadRequest},
		{name: "UnknownParent", method: http.MethodPost, target: "/cost-centers", body: `{"name":"x","parent_id":"nope"}`, want: http.StatusNotFound},
		{name: "GetMissing", method: http.MethodGet, target: "/cost-centers/nope", want: http.StatusNotFound},
		{name: "PathMissing", method: http.MethodGet, target: "/cost-centers/nope/path", want: http.StatusNotFound},
		{name: "UpdateMissing", method: http.MethodPut, target: "/cost-centers/nope", body: `{"name":"x"}`, want: http.StatusNotFound},
		{name: "DeleteMissing", method: http.MethodDelete, target: "/cost-centers/nope", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.want, rr.Code)
			assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestHandler_UpdatePathDelete(t *testing.T) {
	svc := costcenter.NewService()
	h := newRouter(svc)

	root, err := svc.Create(costcenter.CreateParams{Name: "Obra"})
	require.NoError(t, err)

	child, err := svc.Add("Fundação", &root.ID)
	require.NoError(t, err)

	rr := do(t, h, http.MethodPut, "/cost-centers/"+child.ID, `{"name":"Fundações","launchable":false}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/cost-centers/"+child.ID+"/path", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var p pathResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, "Obra / Fundações", p.Path)

	rr = do(t, h, http.MethodDelete, "/cost-centers/"+root.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var del deleteResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &del))
	assert.Equal(t, 2, del.Removed)
	assert.Equal(t, 0, svc.Len())
}
