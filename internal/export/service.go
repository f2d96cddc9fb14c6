package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/report"
)

const dateLayout = "02/01/2006"

// Reports is the subset of the report projector rendered to CSV.
type Reports interface {
	PurchaseHistory(productID string) []report.PurchaseHistoryItem
	CostCenterSummary(filter ledger.Filter) []report.SummaryNode
	CashFlow(params report.CashFlowParams) []report.CashFlowRow
}

var PurchaseHistoryColumns = []Column[report.PurchaseHistoryItem]{
	{Header: "Data NF", Value: func(i report.PurchaseHistoryItem) string { return i.ExpenseDate.Format(dateLayout) }},
	{Header: "Fornecedor", Value: func(i report.PurchaseHistoryItem) string { return i.SupplierName }},
	{Header: "Produto", Value: func(i report.PurchaseHistoryItem) string { return i.ProductName }},
	{Header: "Qtd.", Value: func(i report.PurchaseHistoryItem) string { return i.Quantity.String() }},
	{Header: "Un.", Value: func(i report.PurchaseHistoryItem) string { return i.Unit }},
	{Header: "Preço Unit. (R$)", Value: func(i report.PurchaseHistoryItem) string { return money(i.UnitPrice) }},
	{Header: "Total Item (R$)", Value: func(i report.PurchaseHistoryItem) string { return money(i.TotalAmount) }},
}

var CostCenterSummaryColumns = []Column[report.SummaryNode]{
	{Header: "Centro de Custo", Value: func(n report.SummaryNode) string { return n.Path }},
	{Header: "Lançável", Value: func(n report.SummaryNode) string { return yesNo(n.Launchable) }},
	{Header: "Direto (R$)", Value: func(n report.SummaryNode) string { return money(n.Own) }},
	{Header: "Total (R$)", Value: func(n report.SummaryNode) string { return money(n.Total) }},
}

var CashFlowColumns = []Column[report.CashFlowRow]{
	{Header: "Data", Value: func(r report.CashFlowRow) string { return r.Date.Format(dateLayout) }},
	{Header: "Lançamento", Value: func(r report.CashFlowRow) string { return r.EntryID }},
	{Header: "Tipo", Value: func(r report.CashFlowRow) string { return categoryLabel(r.Category) }},
	{Header: "Entrada (R$)", Value: func(r report.CashFlowRow) string { return money(r.Inflow) }},
	{Header: "Saída (R$)", Value: func(r report.CashFlowRow) string { return money(r.Outflow) }},
	{Header: "Saldo (R$)", Value: func(r report.CashFlowRow) string { return money(r.Balance) }},
	{Header: "Observações", Value: func(r report.CashFlowRow) string { return r.Notes }},
}

// Service renders reports as CSV.
type Service struct {
	reports Reports
}

func NewService(reports Reports) *Service {
	return &Service{reports: reports}
}

func (s *Service) PurchaseHistory(w io.Writer, productID string) error {
	return WriteCSV(w, s.reports.PurchaseHistory(productID), PurchaseHistoryColumns)
}

func (s *Service) CostCenterSummary(w io.Writer, filter ledger.Filter) error {
	return WriteCSV(w, report.Flatten(s.reports.CostCenterSummary(filter)), CostCenterSummaryColumns)
}

func (s *Service) CashFlow(w io.Writer, params report.CashFlowParams) error {
	return WriteCSV(w, s.reports.CashFlow(params), CashFlowColumns)
}

// SaveFile renders into dir/name and returns the written path.
func (s *Service) SaveFile(dir, name string, render func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	return path, nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}

	return "Não"
}

func categoryLabel(c ledger.Category) string {
	if c == ledger.CategoryRevenue {
		return "Receita"
	}

	return "Despesa"
}
