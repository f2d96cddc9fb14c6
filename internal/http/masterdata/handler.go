package masterdata

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/obrafin/internal/http/httpx"
	"github.com/MrJamesThe3rd/obrafin/internal/masterdata"
)

type Handler struct {
	dir *masterdata.Directory
}

func NewHandler(dir *masterdata.Directory) *Handler {
	return &Handler{dir: dir}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/projects", resource[masterdata.Project, projectDTO]{
		coll: h.dir.Projects, toDTO: toProjectDTO, fromDTO: projectDTO.record,
	}.routes)
	r.Route("/suppliers", resource[masterdata.Supplier, partyDTO]{
		coll: h.dir.Suppliers, toDTO: toSupplierDTO, fromDTO: partyDTO.supplier,
	}.routes)
	r.Route("/customers", resource[masterdata.Customer, partyDTO]{
		coll: h.dir.Customers, toDTO: toCustomerDTO, fromDTO: partyDTO.customer,
	}.routes)
	r.Route("/cash-accounts", resource[masterdata.CashAccount, cashAccountDTO]{
		coll: h.dir.CashAccounts, toDTO: toCashAccountDTO, fromDTO: cashAccountDTO.record,
	}.routes)
	r.Route("/revenue-categories", resource[masterdata.RevenueCategory, revenueCategoryDTO]{
		coll: h.dir.RevenueCategories, toDTO: toRevenueCategoryDTO, fromDTO: revenueCategoryDTO.record,
	}.routes)
}

// resource serves CRUD for one master data collection. D is the wire shape
// of T; fromDTO receives the id to store (empty on create).
type resource[T, D any] struct {
	coll    *masterdata.Collection[T]
	toDTO   func(T) D
	fromDTO func(D, string) T
}

func (res resource[T, D]) routes(r chi.Router) {
	r.Get("/", res.list)
	r.Post("/", res.create)
	r.Get("/{id}", res.get)
	r.Put("/{id}", res.update)
	r.Delete("/{id}", res.delete)
}

func (res resource[T, D]) list(w http.ResponseWriter, _ *http.Request) {
	items := res.coll.List()

	resp := make([]D, len(items))
	for i, it := range items {
		resp[i] = res.toDTO(it)
	}

	httpx.JSON(w, http.StatusOK, resp)
}

func (res resource[T, D]) create(w http.ResponseWriter, r *http.Request) {
	var req D
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	rec, err := res.coll.Add(res.fromDTO(req, ""))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, res.toDTO(rec))
}

func (res resource[T, D]) get(w http.ResponseWriter, r *http.Request) {
	rec, err := res.coll.Get(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, res.toDTO(rec))
}

func (res resource[T, D]) update(w http.ResponseWriter, r *http.Request) {
	var req D
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	rec, err := res.coll.Update(res.fromDTO(req, chi.URLParam(r, "id")))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, res.toDTO(rec))
}

func (res resource[T, D]) delete(w http.ResponseWriter, r *http.Request) {
	if err := res.coll.Delete(chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
