package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/obrafin/internal/export"
	"github.com/MrJamesThe3rd/obrafin/internal/product"
	"github.com/MrJamesThe3rd/obrafin/internal/report"
)

// Reports is the part of the report projector the views read from.
type Reports interface {
	PurchaseHistory(productID string) []report.PurchaseHistoryItem
	CashFlow(params report.CashFlowParams) []report.CashFlowRow
}

type PurchaseModel struct {
	CommonModel
	reports   Reports
	exporter  *export.Service
	products  *product.Service
	exportDir string

	picking   bool
	form      *huh.Form
	productID *string
	table     table.Model
	items     []report.PurchaseHistoryItem

	status string
}

func NewPurchaseModel(reports Reports, exporter *export.Service, products *product.Service, exportDir string) PurchaseModel {
	return PurchaseModel{
		reports:   reports,
		exporter:  exporter,
		products:  products,
		exportDir: exportDir,
		productID: new(""),
		table: newTable([]table.Column{
			{Title: "Date", Width: 10},
			{Title: "Supplier", Width: 22},
			{Title: "Quantity", Width: 10},
			{Title: "Unit", Width: 6},
			{Title: "Unit Price", Width: 15},
			{Title: "Total", Width: 15},
		}),
	}
}

func (m PurchaseModel) Title() string { return "Purchase History" }

func (m PurchaseModel) ShortHelp() string {
	if m.picking {
		return "Enter: select | Esc: back"
	}

	return "Esc: back | p: pick product | x: export CSV"
}

func (m PurchaseModel) Init() tea.Cmd {
	return nil
}

// Start returns the model with the product picker open.
func (m PurchaseModel) Start() (PurchaseModel, tea.Cmd) {
	return m.openPicker()
}

func (m PurchaseModel) openPicker() (PurchaseModel, tea.Cmd) {
	opts := m.products.Selectable()
	if len(opts) == 0 {
		m.status = "No products yet. Import or add products first."
		return m, nil
	}

	options := make([]huh.Option[string], len(opts))
	for i, o := range opts {
		options[i] = huh.NewOption(o.Path, o.ID)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Product").
				Options(options...).
				Height(12).
				Value(m.productID),
		),
	).WithWidth(48).WithShowHelp(false)

	m.picking = true
	m.table.Blur()

	return m, m.form.Init()
}

func (m PurchaseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(size)
		m.table.SetHeight(m.tableHeight(10))
		return m, nil
	}

	if m.picking {
		return m.updatePicker(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "p":
			return m.openPicker()
		case "x":
			m.status = m.export()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m PurchaseModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.picking = false
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.picking = false
		m.form = nil
		m.table.Focus()
		m.load()

		return m, nil
	}

	return m, cmd
}

func (m *PurchaseModel) load() {
	m.items = m.reports.PurchaseHistory(*m.productID)

	rows := make([]table.Row, len(m.items))
	for i, it := range m.items {
		rows[i] = table.Row{
			FormatDate(it.ExpenseDate),
			it.SupplierName,
			it.Quantity.String(),
			it.Unit,
			FormatMoney(it.UnitPrice),
			FormatMoney(it.TotalAmount),
		}
	}

	setRows(&m.table, rows)
	m.status = fmt.Sprintf("%d purchase(s) of %s", len(m.items), m.products.Path(*m.productID))
}

func (m PurchaseModel) export() string {
	if *m.productID == "" {
		return "Pick a product first."
	}

	n, err := m.products.Get(*m.productID)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	path, err := m.exporter.SaveFile(m.exportDir, export.Filename("historico_compras", n.Name), func(w io.Writer) error {
		return m.exporter.PurchaseHistory(w, n.ID)
	})
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	return okText.Render("Exported to " + path)
}

func (m PurchaseModel) View() string {
	var panel string
	if m.picking && m.form != nil {
		panel = m.form.View()
	}

	return layout("", m.table, panel, m.status)
}
