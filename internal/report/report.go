// Package report builds read-only projections over the ledger and the
// catalogs. Every call recomputes from current state.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/product"
)

// UnknownSupplier is shown when an expense references a supplier that no
// longer exists.
const UnknownSupplier = "N/A"

//go:generate mockgen -source=report.go -destination=sources_mock.go -package=report
type Ledger interface {
	Expenses(filter ledger.Filter) []ledger.Expense
	Settlements(filter ledger.SettlementFilter) []ledger.Settlement
}

type Products interface {
	Get(id string) (product.Node, error)
	Path(id string) string
}

type CostCenters interface {
	Roots() []costcenter.Node
}

type Suppliers interface {
	SupplierName(id string) (string, bool)
}

type PurchaseHistoryItem struct {
	ID           string
	ExpenseID    string
	ExpenseDate  time.Time
	SupplierName string
	ProductName  string
	Quantity     decimal.Decimal
	Unit         string
	UnitPrice    decimal.Decimal
	TotalAmount  decimal.Decimal
}

// SummaryNode is a cost center annotated with the expenses booked on it (Own)
// and on it plus every descendant (Total).
type SummaryNode struct {
	ID         string
	Name       string
	Path       string
	Launchable bool
	Own        decimal.Decimal
	Total      decimal.Decimal
	Children   []SummaryNode
}

type CashFlowParams struct {
	CashAccountID  string
	From           *time.Time
	To             *time.Time
	OpeningBalance decimal.Decimal
}

type CashFlowRow struct {
	Date         time.Time
	SettlementID string
	EntryID      string
	Category     ledger.Category
	Notes        string
	Inflow       decimal.Decimal
	Outflow      decimal.Decimal
	Balance      decimal.Decimal
}

type Projector struct {
	ledger      Ledger
	products    Products
	costCenters CostCenters
	suppliers   Suppliers
}

func NewProjector(l Ledger, p Products, cc CostCenters, s Suppliers) *Projector {
	return &Projector{ledger: l, products: p, costCenters: cc, suppliers: s}
}
