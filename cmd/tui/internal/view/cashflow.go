package view

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/obrafin/internal/export"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/masterdata"
	"github.com/MrJamesThe3rd/obrafin/internal/report"
)

type cashFlowState int

const (
	cashFlowStateAccount cashFlowState = iota
	cashFlowStatePeriod
	cashFlowStateTable
)

type cashFlowForm struct {
	accountID string
	opening   string
}

// CashFlowModel walks through account and period selection and then shows
// the running balance of the chosen cash account.
type CashFlowModel struct {
	CommonModel
	reports   Reports
	exporter  *export.Service
	dir       *masterdata.Directory
	exportDir string

	state  cashFlowState
	form   *huh.Form
	vals   *cashFlowForm
	picker TimeframePicker
	params report.CashFlowParams
	table  table.Model

	status string
}

func NewCashFlowModel(reports Reports, exporter *export.Service, dir *masterdata.Directory, exportDir string) CashFlowModel {
	return CashFlowModel{
		reports:   reports,
		exporter:  exporter,
		dir:       dir,
		exportDir: exportDir,
		vals:      &cashFlowForm{opening: "0"},
		picker:    NewTimeframePicker(),
		table: newTable([]table.Column{
			{Title: "Date", Width: 10},
			{Title: "Type", Width: 8},
			{Title: "Inflow", Width: 15},
			{Title: "Outflow", Width: 15},
			{Title: "Balance", Width: 15},
			{Title: "Notes", Width: 24},
		}),
	}
}

func (m CashFlowModel) Title() string { return "Cash Flow" }

func (m CashFlowModel) ShortHelp() string {
	if m.state == cashFlowStateTable {
		return "Esc: back | r: restart | x: export CSV"
	}

	return "Esc: back"
}

func (m CashFlowModel) Init() tea.Cmd {
	return nil
}

// Start opens the account form.
func (m CashFlowModel) Start() (CashFlowModel, tea.Cmd) {
	accounts := m.dir.CashAccounts.List()
	if len(accounts) == 0 {
		m.status = "No cash accounts yet. Record an entry first."
		m.state = cashFlowStateTable

		return m, nil
	}

	options := make([]huh.Option[string], len(accounts))
	for i, a := range accounts {
		options[i] = huh.NewOption(a.Name, a.ID)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Cash account").
				Options(options...).
				Value(&m.vals.accountID),
			huh.NewInput().
				Title("Opening balance").
				Value(&m.vals.opening).
				Validate(validateOptionalAmount),
		),
	).WithWidth(48).WithShowHelp(false)

	m.state = cashFlowStateAccount
	m.picker.Reset()
	m.table.Blur()

	return m, m.form.Init()
}

func (m CashFlowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		m.table.SetHeight(m.tableHeight(10))
		return m, nil

	case TimeframeSelectedMsg:
		m.params.From, m.params.To = nil, nil
		if !msg.All {
			m.params.From, m.params.To = &msg.Start, &msg.End
		}

		m.load()

		return m, nil
	}

	switch m.state {
	case cashFlowStateAccount:
		return m.updateAccount(msg)
	case cashFlowStatePeriod:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.picker.IsSelecting() {
			return m, Back
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			return m.Start()
		case "x":
			m.status = m.export()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CashFlowModel) updateAccount(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		opening := decimal.Zero
		if m.vals.opening != "" {
			opening, _ = ParseAmount(m.vals.opening)
		}

		m.params = report.CashFlowParams{CashAccountID: m.vals.accountID, OpeningBalance: opening}
		m.form = nil
		m.state = cashFlowStatePeriod

		return m, nil
	}

	return m, cmd
}

func (m *CashFlowModel) load() {
	rows := m.reports.CashFlow(m.params)

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		kind := "Out"
		if r.Category == ledger.CategoryRevenue {
			kind = "In"
		}

		tableRows[i] = table.Row{
			FormatDate(r.Date),
			kind,
			FormatMoney(r.Inflow),
			FormatMoney(r.Outflow),
			FormatMoney(r.Balance),
			r.Notes,
		}
	}

	closing := m.params.OpeningBalance
	if len(rows) > 0 {
		closing = rows[len(rows)-1].Balance
	}

	setRows(&m.table, tableRows)
	m.table.Focus()
	m.state = cashFlowStateTable
	m.status = fmt.Sprintf("%s: %d movement(s), closing balance %s",
		nameOf(m.dir.CashAccounts, cashAccountRecord, m.params.CashAccountID), len(rows), FormatMoney(closing))
}

func (m CashFlowModel) export() string {
	if m.params.CashAccountID == "" {
		return "Pick a cash account first."
	}

	name := nameOf(m.dir.CashAccounts, cashAccountRecord, m.params.CashAccountID)
	if m.params.From != nil {
		name += "_" + m.params.From.Format(time.DateOnly)
	}

	path, err := m.exporter.SaveFile(m.exportDir, export.Filename("fluxo_caixa", name), func(w io.Writer) error {
		return m.exporter.CashFlow(w, m.params)
	})
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	return okText.Render("Exported to " + path)
}

func (m CashFlowModel) View() string {
	switch m.state {
	case cashFlowStateAccount:
		return formPanel.Render(m.form.View())
	case cashFlowStatePeriod:
		return formPanel.Render(m.picker.View())
	}

	period := "All Time"
	if m.params.From != nil && m.params.To != nil {
		period = FormatDate(*m.params.From) + " - " + FormatDate(*m.params.To)
	}

	return layout("Period: "+activeStyle(period), m.table, "", m.status)
}
