package importcsv

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/obrafin/internal/http/httpx"
	"github.com/MrJamesThe3rd/obrafin/internal/importer"
	"github.com/MrJamesThe3rd/obrafin/internal/importer/sheet"
)

type Handler struct {
	importSvc *importer.Service
}

func NewHandler(importSvc *importer.Service) *Handler {
	return &Handler{importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type lineItemResponse struct {
	Description  string           `json:"description"`
	CostCenterID string           `json:"cost_center_id"`
	Amount       decimal.Decimal  `json:"amount"`
	ProductID    *string          `json:"product_id,omitempty"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
}

type importResponse struct {
	Kind     sheet.Kind         `json:"kind"`
	Charset  string             `json:"charset"`
	Created  int                `json:"created"`
	Existing int                `json:"existing"`
	Items    []lineItemResponse `json:"items,omitempty"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		httpx.BadRequest(w, "failed to parse form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.BadRequest(w, "file field is required")
		return
	}
	defer file.Close()

	res, err := h.importSvc.Import(file)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	slog.Info("spreadsheet imported",
		"file", header.Filename,
		"kind", res.Kind,
		"charset", res.Charset,
		"created", res.Created,
		"existing", res.Existing,
		"items", len(res.Items),
	)

	resp := importResponse{
		Kind:     res.Kind,
		Charset:  string(res.Charset),
		Created:  res.Created,
		Existing: res.Existing,
	}

	for _, it := range res.Items {
		resp.Items = append(resp.Items, lineItemResponse{
			Description:  it.Description,
			CostCenterID: it.CostCenterID,
			Amount:       it.Amount,
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
		})
	}

	httpx.JSON(w, http.StatusOK, resp)
}
