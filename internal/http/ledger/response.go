package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/obrafin/internal/http/httpx"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
)

type date = httpx.Date

func dateOf(t time.Time) date {
	return date(t)
}

type lineItemDTO struct {
	ID           string           `json:"id,omitempty"`
	Description  string           `json:"description"`
	CostCenterID string           `json:"cost_center_id"`
	Amount       decimal.Decimal  `json:"amount"`
	ProductID    *string          `json:"product_id,omitempty"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
}

type entryRequest struct {
	EntryType     ledger.EntryType `json:"entry_type"`
	InvoiceNumber string           `json:"invoice_number"`
	ProjectID     string           `json:"project_id"`
	IssueDate     date             `json:"issue_date"`
	Description   string           `json:"description"`
	CashAccountID string           `json:"cash_account_id"`
	LineItems     []lineItemDTO    `json:"line_items"`
}

type expenseRequest struct {
	entryRequest
	SupplierID       string                 `json:"supplier_id"`
	DisbursementDate date                   `json:"disbursement_date"`
	TransactionType  ledger.TransactionType `json:"transaction_type"`
}

type revenueRequest struct {
	entryRequest
	CustomerID  string `json:"customer_id"`
	ReceiptDate date   `json:"receipt_date"`
}

type settlementRequest struct {
	EntryID        string          `json:"entry_id"`
	Category       ledger.Category `json:"category"`
	SettlementDate date            `json:"settlement_date"`
	Amount         decimal.Decimal `json:"amount"`
	CashAccountID  string          `json:"cash_account_id"`
	Notes          string          `json:"notes"`
}

type entryResponse struct {
	ID            string           `json:"id"`
	EntryType     ledger.EntryType `json:"entry_type"`
	InvoiceNumber string           `json:"invoice_number,omitempty"`
	ProjectID     string           `json:"project_id"`
	IssueDate     date             `json:"issue_date"`
	Description   string           `json:"description,omitempty"`
	CashAccountID string           `json:"cash_account_id"`
	LineItems     []lineItemDTO    `json:"line_items"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	SettledAmount decimal.Decimal  `json:"settled_amount"`
	Outstanding   decimal.Decimal  `json:"outstanding"`
	Status        ledger.Status    `json:"status"`
}

type expenseResponse struct {
	entryResponse
	SupplierID       string                 `json:"supplier_id"`
	DisbursementDate date                   `json:"disbursement_date"`
	TransactionType  ledger.TransactionType `json:"transaction_type"`
}

type revenueResponse struct {
	entryResponse
	CustomerID  string `json:"customer_id"`
	ReceiptDate date   `json:"receipt_date"`
}

type settlementResponse struct {
	ID             string          `json:"id"`
	EntryID        string          `json:"entry_id"`
	Category       ledger.Category `json:"category"`
	SettlementDate date            `json:"settlement_date"`
	Amount         decimal.Decimal `json:"amount"`
	CashAccountID  string          `json:"cash_account_id"`
	Notes          string          `json:"notes,omitempty"`
}

func (d lineItemDTO) params() ledger.LineItemParams {
	return ledger.LineItemParams{
		ID:           d.ID,
		Description:  d.Description,
		CostCenterID: d.CostCenterID,
		Amount:       d.Amount,
		ProductID:    d.ProductID,
		Quantity:     d.Quantity,
		UnitPrice:    d.UnitPrice,
	}
}

func (d lineItemDTO) lineItem() ledger.LineItem {
	return ledger.LineItem{
		ID:           d.ID,
		Description:  d.Description,
		CostCenterID: d.CostCenterID,
		Amount:       d.Amount,
		ProductID:    d.ProductID,
		Quantity:     d.Quantity,
		UnitPrice:    d.UnitPrice,
	}
}

func (req entryRequest) params() ledger.EntryParams {
	items := make([]ledger.LineItemParams, len(req.LineItems))
	for i, li := range req.LineItems {
		items[i] = li.params()
	}

	return ledger.EntryParams{
		EntryType:     req.EntryType,
		InvoiceNumber: req.InvoiceNumber,
		ProjectID:     req.ProjectID,
		IssueDate:     time.Time(req.IssueDate),
		Description:   req.Description,
		CashAccountID: req.CashAccountID,
		LineItems:     items,
	}
}

func (req entryRequest) entry(id string) ledger.Entry {
	items := make([]ledger.LineItem, len(req.LineItems))
	for i, li := range req.LineItems {
		items[i] = li.lineItem()
	}

	return ledger.Entry{
		ID:            id,
		EntryType:     req.EntryType,
		InvoiceNumber: req.InvoiceNumber,
		ProjectID:     req.ProjectID,
		IssueDate:     time.Time(req.IssueDate),
		Description:   req.Description,
		CashAccountID: req.CashAccountID,
		LineItems:     items,
	}
}

func (req expenseRequest) params() ledger.ExpenseParams {
	return ledger.ExpenseParams{
		EntryParams:      req.entryRequest.params(),
		SupplierID:       req.SupplierID,
		DisbursementDate: time.Time(req.DisbursementDate),
		TransactionType:  req.TransactionType,
	}
}

func (req expenseRequest) expense(id string) ledger.Expense {
	return ledger.Expense{
		Entry:            req.entry(id),
		SupplierID:       req.SupplierID,
		DisbursementDate: time.Time(req.DisbursementDate),
		TransactionType:  req.TransactionType,
	}
}

func (req revenueRequest) params() ledger.RevenueParams {
	return ledger.RevenueParams{
		EntryParams: req.entryRequest.params(),
		CustomerID:  req.CustomerID,
		ReceiptDate: time.Time(req.ReceiptDate),
	}
}

func (req revenueRequest) revenue(id string) ledger.Revenue {
	return ledger.Revenue{
		Entry:       req.entry(id),
		CustomerID:  req.CustomerID,
		ReceiptDate: time.Time(req.ReceiptDate),
	}
}

func toEntryResponse(e ledger.Entry) entryResponse {
	items := make([]lineItemDTO, len(e.LineItems))
	for i, li := range e.LineItems {
		items[i] = lineItemDTO{
			ID:           li.ID,
			Description:  li.Description,
			CostCenterID: li.CostCenterID,
			Amount:       li.Amount,
			ProductID:    li.ProductID,
			Quantity:     li.Quantity,
			UnitPrice:    li.UnitPrice,
		}
	}

	return entryResponse{
		ID:            e.ID,
		EntryType:     e.EntryType,
		InvoiceNumber: e.InvoiceNumber,
		ProjectID:     e.ProjectID,
		IssueDate:     dateOf(e.IssueDate),
		Description:   e.Description,
		CashAccountID: e.CashAccountID,
		LineItems:     items,
		TotalAmount:   e.TotalAmount,
		SettledAmount: e.SettledAmount,
		Outstanding:   e.Outstanding(),
		Status:        e.Status,
	}
}

func toExpenseResponse(e ledger.Expense) expenseResponse {
	return expenseResponse{
		entryResponse:    toEntryResponse(e.Entry),
		SupplierID:       e.SupplierID,
		DisbursementDate: dateOf(e.DisbursementDate),
		TransactionType:  e.TransactionType,
	}
}

func toRevenueResponse(r ledger.Revenue) revenueResponse {
	return revenueResponse{
		entryResponse: toEntryResponse(r.Entry),
		CustomerID:    r.CustomerID,
		ReceiptDate:   dateOf(r.ReceiptDate),
	}
}

func toSettlementResponse(s ledger.Settlement) settlementResponse {
	return settlementResponse{
		ID:             s.ID,
		EntryID:        s.EntryID,
		Category:       s.Category,
		SettlementDate: dateOf(s.SettlementDate),
		Amount:         s.Amount,
		CashAccountID:  s.CashAccountID,
		Notes:          s.Notes,
	}
}
