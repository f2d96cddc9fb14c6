package report

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/obrafin/internal/http/httpx"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/report"
)

type purchaseHistoryResponse struct {
	ID           string          `json:"id"`
	ExpenseID    string          `json:"expense_id"`
	ExpenseDate  httpx.Date      `json:"expense_date"`
	SupplierName string          `json:"supplier_name"`
	ProductName  string          `json:"product_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

type summaryResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Path       string            `json:"path"`
	Launchable bool              `json:"launchable"`
	Own        decimal.Decimal   `json:"own"`
	Total      decimal.Decimal   `json:"total"`
	Children   []summaryResponse `json:"children"`
}

type cashFlowResponse struct {
	Date         httpx.Date      `json:"date"`
	SettlementID string          `json:"settlement_id"`
	EntryID      string          `json:"entry_id"`
	Category     ledger.Category `json:"category"`
	Notes        string          `json:"notes,omitempty"`
	Inflow       decimal.Decimal `json:"inflow"`
	Outflow      decimal.Decimal `json:"outflow"`
	Balance      decimal.Decimal `json:"balance"`
}

func toPurchaseHistoryResponse(it report.PurchaseHistoryItem) purchaseHistoryResponse {
	return purchaseHistoryResponse{
		ID:           it.ID,
		ExpenseID:    it.ExpenseID,
		ExpenseDate:  httpx.Date(it.ExpenseDate),
		SupplierName: it.SupplierName,
		ProductName:  it.ProductName,
		Quantity:     it.Quantity,
		Unit:         it.Unit,
		UnitPrice:    it.UnitPrice,
		TotalAmount:  it.TotalAmount,
	}
}

func toSummaryResponseList(nodes []report.SummaryNode) []summaryResponse {
	resp := make([]summaryResponse, len(nodes))
	for i, n := range nodes {
		resp[i] = summaryResponse{
			ID:         n.ID,
			Name:       n.Name,
			Path:       n.Path,
			Launchable: n.Launchable,
			Own:        n.Own,
			Total:      n.Total,
			Children:   toSummaryResponseList(n.Children),
		}
	}

	return resp
}

func toCashFlowResponse(row report.CashFlowRow) cashFlowResponse {
	return cashFlowResponse{
		Date:         httpx.Date(row.Date),
		SettlementID: row.SettlementID,
		EntryID:      row.EntryID,
		Category:     row.Category,
		Notes:        row.Notes,
		Inflow:       row.Inflow,
		Outflow:      row.Outflow,
		Balance:      row.Balance,
	}
}
