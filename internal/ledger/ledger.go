package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("entry not found")

// Category tells which ledger an entry or settlement belongs to.
type Category string

const (
	CategoryExpense Category = "expense"
	CategoryRevenue Category = "revenue"
)

type EntryType string

const (
	EntryTypeAccounting EntryType = "ACCOUNTING"
	EntryTypeFinancial  EntryType = "FINANCIAL"
)

type TransactionType string

const (
	TransactionProduct TransactionType = "PRODUCT"
	TransactionService TransactionType = "SERVICE"
)

// Status is derived from the settled amount against the entry total.
type Status string

const (
	StatusUnpaid            Status = "UNPAID"
	StatusPartiallyPaid     Status = "PARTIALLY_PAID"
	StatusPaid              Status = "PAID"
	StatusUnreceived        Status = "UNRECEIVED"
	StatusPartiallyReceived Status = "PARTIALLY_RECEIVED"
	StatusReceived          Status = "RECEIVED"
)

// LineItem is one row of an entry. CostCenterID holds a cost center for
// expenses and a revenue category for revenues.
type LineItem struct {
	ID           string
	Description  string
	CostCenterID string
	Amount       decimal.Decimal
	ProductID    *string
	Quantity     *decimal.Decimal
	UnitPrice    *decimal.Decimal
}

// Entry holds the fields shared by expenses and revenues.
type Entry struct {
	ID            string
	Category      Category
	EntryType     EntryType
	InvoiceNumber string
	ProjectID     string
	IssueDate     time.Time
	Description   string
	CashAccountID string
	LineItems     []LineItem
	TotalAmount   decimal.Decimal
	SettledAmount decimal.Decimal
	Status        Status
}

// Outstanding is what remains to be settled, never below zero.
func (e Entry) Outstanding() decimal.Decimal {
	rest := e.TotalAmount.Sub(e.SettledAmount)
	if rest.IsNegative() {
		return decimal.Zero
	}

	return rest
}

type Expense struct {
	Entry
	SupplierID       string
	DisbursementDate time.Time
	TransactionType  TransactionType
}

type Revenue struct {
	Entry
	CustomerID  string
	ReceiptDate time.Time
}

// Settlement is an append-only payment or receipt against one entry.
type Settlement struct {
	ID             string
	EntryID        string
	Category       Category
	SettlementDate time.Time
	Amount         decimal.Decimal
	CashAccountID  string
	Notes          string
}

// LineItemParams describes one line item. ID is only honoured on update, to
// keep an existing line item's identity.
type LineItemParams struct {
	ID           string
	Description  string
	CostCenterID string `validate:"notblank"`
	Amount       decimal.Decimal
	ProductID    *string
	Quantity     *decimal.Decimal
	UnitPrice    *decimal.Decimal
}

type EntryParams struct {
	EntryType     EntryType `validate:"oneof=ACCOUNTING FINANCIAL"`
	InvoiceNumber string
	ProjectID     string    `validate:"notblank"`
	IssueDate     time.Time `validate:"required"`
	Description   string
	CashAccountID string           `validate:"notblank"`
	LineItems     []LineItemParams `validate:"dive"`
}

type ExpenseParams struct {
	EntryParams
	SupplierID       string `validate:"notblank"`
	DisbursementDate time.Time
	TransactionType  TransactionType `validate:"oneof=PRODUCT SERVICE"`
}

type RevenueParams struct {
	EntryParams
	CustomerID  string `validate:"notblank"`
	ReceiptDate time.Time
}

type SettlementParams struct {
	EntryID        string          `validate:"notblank"`
	Category       Category        `validate:"oneof=expense revenue"`
	SettlementDate time.Time       `validate:"required"`
	Amount         decimal.Decimal `validate:"positive"`
	CashAccountID  string          `validate:"notblank"`
	Notes          string
}

// Filter narrows entry listings. Zero values match everything.
type Filter struct {
	ProjectID string
	Status    *Status
	From      *time.Time
	To        *time.Time
}

func (f Filter) matches(e *Entry) bool {
	if f.ProjectID != "" && e.ProjectID != f.ProjectID {
		return false
	}

	if f.Status != nil && e.Status != *f.Status {
		return false
	}

	if f.From != nil && e.IssueDate.Before(*f.From) {
		return false
	}

	if f.To != nil && e.IssueDate.After(*f.To) {
		return false
	}

	return true
}

type SettlementFilter struct {
	EntryID       string
	Category      Category
	CashAccountID string
}

func (f SettlementFilter) matches(s Settlement) bool {
	if f.EntryID != "" && s.EntryID != f.EntryID {
		return false
	}

	if f.Category != "" && s.Category != f.Category {
		return false
	}

	if f.CashAccountID != "" && s.CashAccountID != f.CashAccountID {
		return false
	}

	return true
}
