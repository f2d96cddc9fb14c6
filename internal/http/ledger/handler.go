package ledger

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/obrafin/internal/http/httpx"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ExpenseRoutes(r chi.Router) {
	r.Post("/", h.createExpense)
	r.Get("/", h.listExpenses)
	r.Get("/{id}", h.getExpense)
	r.Put("/{id}", h.updateExpense)
}

func (h *Handler) RevenueRoutes(r chi.Router) {
	r.Post("/", h.createRevenue)
	r.Get("/", h.listRevenues)
	r.Get("/{id}", h.getRevenue)
	r.Put("/{id}", h.updateRevenue)
}

func (h *Handler) SettlementRoutes(r chi.Router) {
	r.Post("/", h.applySettlement)
	r.Get("/", h.listSettlements)
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	e, err := h.svc.CreateExpense(req.params())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toExpenseResponse(e))
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	expenses := h.svc.Expenses(filter)

	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toExpenseResponse(e)
	}

	httpx.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getExpense(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.GetExpense(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toExpenseResponse(e))
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	e, err := h.svc.UpdateExpense(req.expense(chi.URLParam(r, "id")))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toExpenseResponse(e))
}

func (h *Handler) createRevenue(w http.ResponseWriter, r *http.Request) {
	var req revenueRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	rev, err := h.svc.CreateRevenue(req.params())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toRevenueResponse(rev))
}

func (h *Handler) listRevenues(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	revenues := h.svc.Revenues(filter)

	resp := make([]revenueResponse, len(revenues))
	for i, rev := range revenues {
		resp[i] = toRevenueResponse(rev)
	}

	httpx.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getRevenue(w http.ResponseWriter, r *http.Request) {
	rev, err := h.svc.GetRevenue(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRevenueResponse(rev))
}

func (h *Handler) updateRevenue(w http.ResponseWriter, r *http.Request) {
	var req revenueRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	rev, err := h.svc.UpdateRevenue(req.revenue(chi.URLParam(r, "id")))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRevenueResponse(rev))
}

func (h *Handler) applySettlement(w http.ResponseWriter, r *http.Request) {
	var req settlementRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	st, err := h.svc.ApplySettlement(ledger.SettlementParams{
		EntryID:        req.EntryID,
		Category:       req.Category,
		SettlementDate: time.Time(req.SettlementDate),
		Amount:         req.Amount,
		CashAccountID:  req.CashAccountID,
		Notes:          req.Notes,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toSettlementResponse(st))
}

func (h *Handler) listSettlements(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	settlements := h.svc.Settlements(ledger.SettlementFilter{
		EntryID:       q.Get("entry_id"),
		Category:      ledger.Category(q.Get("category")),
		CashAccountID: q.Get("cash_account_id"),
	})

	resp := make([]settlementResponse, len(settlements))
	for i, st := range settlements {
		resp[i] = toSettlementResponse(st)
	}

	httpx.JSON(w, http.StatusOK, resp)
}

func parseFilter(r *http.Request) (ledger.Filter, error) {
	filter := ledger.Filter{ProjectID: r.URL.Query().Get("project_id")}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(ledger.Status(s))
	}

	from, err := httpx.QueryDate(r, "from")
	if err != nil {
		return ledger.Filter{}, err
	}

	to, err := httpx.QueryDate(r, "to")
	if err != nil {
		return ledger.Filter{}, err
	}

	filter.From = from
	filter.To = to

	return filter, nil
}
