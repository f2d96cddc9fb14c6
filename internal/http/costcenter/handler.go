package costcenter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/http/httpx"
)

type Handler struct {
	svc *costcenter.Service
}

func NewHandler(svc *costcenter.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.tree)
	r.Get("/launchable", h.launchable)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Get("/{id}/path", h.path)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createRequest struct {
	Name       string  `json:"name"`
	ParentID   *string `json:"parent_id,omitempty"`
	Launchable bool    `json:"launchable"`
}

type updateRequest struct {
	Name       string `json:"name"`
	Launchable bool   `json:"launchable"`
}

func (h *Handler) tree(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, toResponseList(h.svc.Roots()))
}

func (h *Handler) launchable(w http.ResponseWriter, _ *http.Request) {
	items := h.svc.Launchable()

	resp := make([]selectableResponse, len(items))
	for i, it := range items {
		resp[i] = selectableResponse{ID: it.ID, Path: it.Path}
	}

	httpx.JSON(w, http.StatusOK, resp)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	n, err := h.svc.Create(costcenter.CreateParams{
		Name:       req.Name,
		ParentID:   req.ParentID,
		Launchable: req.Launchable,
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

	n, err := h.svc.Update(costcenter.UpdateParams{
		ID:         chi.URLParam(r, "id"),
		Name:       req.Name,
		Launchable: req.Launchable,
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
