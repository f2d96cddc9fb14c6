package report

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/obrafin/internal/export"
	"github.com/MrJamesThe3rd/obrafin/internal/http/httpx"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/product"
	"github.com/MrJamesThe3rd/obrafin/internal/report"
)

// Catalog names the product in purchase history downloads.
type Catalog interface {
	Get(id string) (product.Node, error)
}

type Handler struct {
	reports  export.Reports
	csv      *export.Service
	products Catalog
}

func NewHandler(reports export.Reports, csv *export.Service, products Catalog) *Handler {
	return &Handler{reports: reports, csv: csv, products: products}
}

// Routes serves each report as JSON, or as a CSV download with ?format=csv.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/purchase-history", h.purchaseHistory)
	r.Get("/cost-center-summary", h.costCenterSummary)
	r.Get("/cash-flow", h.cashFlow)
}

func (h *Handler) purchaseHistory(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("product_id")
	if productID == "" {
		httpx.BadRequest(w, "product_id is required")
		return
	}

	if wantsCSV(r) {
		var name string
		if n, err := h.products.Get(productID); err == nil {
			name = n.Name
		}

		h.download(w, export.Filename("historico_compras", name), func(out io.Writer) error {
			return h.csv.PurchaseHistory(out, productID)
		})

		return
	}

	items := h.reports.PurchaseHistory(productID)

	resp := make([]purchaseHistoryResponse, len(items))
	for i, it := range items {
		resp[i] = toPurchaseHistoryResponse(it)
	}

	httpx.JSON(w, http.StatusOK, resp)
}

func (h *Handler) costCenterSummary(w http.ResponseWriter, r *http.Request) {
	filter := ledger.Filter{ProjectID: r.URL.Query().Get("project_id")}

	from, err := httpx.QueryDate(r, "from")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	to, err := httpx.QueryDate(r, "to")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	filter.From = from
	filter.To = to

	if wantsCSV(r) {
		h.download(w, export.Filename("resumo_centros_custo", filter.ProjectID), func(out io.Writer) error {
			return h.csv.CostCenterSummary(out, filter)
		})

		return
	}

	httpx.JSON(w, http.StatusOK, toSummaryResponseList(h.reports.CostCenterSummary(filter)))
}

func (h *Handler) cashFlow(w http.ResponseWriter, r *http.Request) {
	params := report.CashFlowParams{
		CashAccountID:  r.URL.Query().Get("cash_account_id"),
		OpeningBalance: decimal.Zero,
	}

	if s := r.URL.Query().Get("opening_balance"); s != "" {
		opening, err := decimal.NewFromString(s)
		if err != nil {
			httpx.BadRequest(w, "opening_balance must be a decimal number")
			return
		}

		params.OpeningBalance = opening
	}

	from, err := httpx.QueryDate(r, "from")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	to, err := httpx.QueryDate(r, "to")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	params.From = from
	params.To = to

	if wantsCSV(r) {
		h.download(w, export.Filename("fluxo_caixa", params.CashAccountID), func(out io.Writer) error {
			return h.csv.CashFlow(out, params)
		})

		return
	}

	rows := h.reports.CashFlow(params)

	resp := make([]cashFlowResponse, len(rows))
	for i, row := range rows {
		resp[i] = toCashFlowResponse(row)
	}

	httpx.JSON(w, http.StatusOK, resp)
}

func wantsCSV(r *http.Request) bool {
	return r.URL.Query().Get("format") == "csv"
}

// download renders fully before writing so a failure can still become a
// problem response.
func (h *Handler) download(w http.ResponseWriter, filename string, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		httpx.RespondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write csv", "file", filename, "error", err)
	}
}
