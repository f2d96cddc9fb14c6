package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/obrafin/internal/http/httpx"
	"github.com/MrJamesThe3rd/obrafin/internal/product"
)

type Handler struct {
	svc *product.Service
}

func NewHandler(svc *product.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.tree)
	r.Get("/selectable", h.selectable)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Get("/{id}/path", h.path)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// An empty unit creates a category.
type createRequest struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	ParentID *string `json:"parent_id,omitempty"`
}

type updateRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

func (h *Handler) tree(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, toResponseList(h.svc.Roots()))
}

func (h *Handler) selectable(w http.ResponseWriter, _ *http.Request) {
	opts := h.svc.Selectable()

	resp := make([]optionResponse, len(opts))
	for i, o := range opts {
		resp[i] = optionResponse{ID: o.ID, Path: o.Path, Unit: o.Unit}
	}

	httpx.JSON(w, http.StatusOK, resp)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	n, err := h.svc.Create(product.CreateParams{
		Name:     req.Name,
		Unit:     req.Unit,
		ParentID: req.ParentID,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(n))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(n))
}

func (h *Handler) path(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.svc.Get(id); err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, pathResponse{ID: id, Path: h.svc.Path(id)})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	n, err := h.svc.Update(product.UpdateParams{
		ID:   chi.URLParam(r, "id"),
		Name: req.Name,
		Unit: req.Unit,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(n))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.Delete(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, deleteResponse{Removed: removed})
}
