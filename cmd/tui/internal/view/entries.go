package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/masterdata"
	"github.com/MrJamesThe3rd/obrafin/internal/product"
)

type entriesState int

const (
	entriesStateBrowse entriesState = iota
	entriesStateCreate
	entriesStateSettle
)

// entryForm holds the bindings of the create and settle forms.
type entryForm struct {
	entryType       string
	project         string
	party           string
	cashAccount     string
	issueDate       string
	invoice         string
	description     string
	transactionType string
	costCenterID    string
	category        string
	productID       string
	quantity        string
	unitPrice       string
	amount          string

	settleDate    string
	settleAmount  string
	settleAccount string
	notes         string
}

var entryTimeframes = []Timeframe{TimeframeAll, TimeframeThisMonth, TimeframeLastMonth}

type entryRow struct {
	entry   ledger.Entry
	partyID string
}

// EntriesModel lists expenses or revenues and records new entries and
// settlements against them.
type EntriesModel struct {
	CommonModel
	category    ledger.Category
	ledger      *ledger.Service
	dir         *masterdata.Directory
	costCenters *costcenter.Service
	products    *product.Service

	state entriesState
	table table.Model
	rows  []entryRow
	form  *huh.Form
	vals  *entryForm

	statusFilterIdx int
	dateFilterIdx   int
	filter          ledger.Filter

	status string
}

func NewEntriesModel(
	category ledger.Category,
	l *ledger.Service,
	dir *masterdata.Directory,
	costCenters *costcenter.Service,
	products *product.Service,
) EntriesModel {
	party := "Supplier"
	if category == ledger.CategoryRevenue {
		party = "Customer"
	}

	m := EntriesModel{
		category:    category,
		ledger:      l,
		dir:         dir,
		costCenters: costCenters,
		products:    products,
		table: newTable([]table.Column{
			{Title: "Date", Width: 10},
			{Title: "Invoice", Width: 10},
			{Title: "Project", Width: 18},
			{Title: party, Width: 20},
			{Title: "Total", Width: 15},
			{Title: "Settled", Width: 15},
			{Title: "Status", Width: 18},
		}),
		vals: &entryForm{},
	}
	m.reload()

	return m
}

func (m EntriesModel) Title() string {
	if m.category == ledger.CategoryRevenue {
		return "Revenues"
	}

	return "Expenses"
}

func (m EntriesModel) ShortHelp() string {
	if m.state != entriesStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n: new | p: settle | s: status filter | d: date filter"
}

func (m EntriesModel) Init() tea.Cmd {
	return nil
}

type entrySavedMsg struct {
	status string
	err    error
}

func (m EntriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entrySavedMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		m.closeForm()
		m.reload()

		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg)
		m.table.SetHeight(m.tableHeight(12))
		return m, nil
	}

	if m.state == entriesStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m EntriesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "n":
			return m.openCreate()
		case "p":
			return m.openSettle()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % (len(m.statuses()) + 1)
			m.applyFilter()
			m.reload()

			return m, nil
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % len(entryTimeframes)
			m.applyFilter()
			m.reload()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m EntriesModel) statuses() []ledger.Status {
	if m.category == ledger.CategoryRevenue {
		return []ledger.Status{ledger.StatusUnreceived, ledger.StatusPartiallyReceived, ledger.StatusReceived}
	}

	return []ledger.Status{ledger.StatusUnpaid, ledger.StatusPartiallyPaid, ledger.StatusPaid}
}

func (m *EntriesModel) applyFilter() {
	m.filter.Status = nil
	if m.statusFilterIdx > 0 {
		m.filter.Status = new(m.statuses()[m.statusFilterIdx-1])
	}

	m.filter.From, m.filter.To = nil, nil

	if m.dateFilterIdx > 0 {
		start, end := normalizeDateRange(timeframeToDateRange(entryTimeframes[m.dateFilterIdx]))
		m.filter.From, m.filter.To = &start, &end
	}
}

func (m EntriesModel) openCreate() (tea.Model, tea.Cmd) {
	launchable := m.costCenters.Launchable()
	if m.category == ledger.CategoryExpense && len(launchable) == 0 {
		m.status = "Add a cost center that accepts postings first."
		return m, nil
	}

	*m.vals = entryForm{
		entryType:       string(ledger.EntryTypeFinancial),
		transactionType: string(ledger.TransactionProduct),
		issueDate:       FormatDate(time.Now()),
	}

	partyTitle, partySuggestions := "Supplier", namesOf(m.dir.Suppliers, supplierRecord)
	if m.category == ledger.CategoryRevenue {
		partyTitle, partySuggestions = "Customer", namesOf(m.dir.Customers, customerRecord)
	}

	header := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Entry type").
			Options(
				huh.NewOption("Financial", string(ledger.EntryTypeFinancial)),
				huh.NewOption("Accounting", string(ledger.EntryTypeAccounting)),
			).
			Value(&m.vals.entryType),
		huh.NewInput().
			Title("Project").
			Suggestions(namesOf(m.dir.Projects, projectRecord)).
			Value(&m.vals.project).
			Validate(validateNotBlank("project")),
		huh.NewInput().
			Title(partyTitle).
			Suggestions(partySuggestions).
			Value(&m.vals.party).
			Validate(validateNotBlank(strings.ToLower(partyTitle))),
		huh.NewInput().
			Title("Cash account").
			Suggestions(namesOf(m.dir.CashAccounts, cashAccountRecord)).
			Value(&m.vals.cashAccount).
			Validate(validateNotBlank("cash account")),
		huh.NewInput().
			Title("Issue date").
			Placeholder("DD/MM/AAAA").
			Value(&m.vals.issueDate).
			Validate(validateDate),
		huh.NewInput().
			Title("Invoice number").
			Value(&m.vals.invoice),
		huh.NewInput().
			Title("Description").
			Value(&m.vals.description),
	)

	m.form = huh.NewForm(header, m.lineItemGroup(launchable)).WithWidth(48).WithShowHelp(false)
	m.state = entriesStateCreate
	m.table.Blur()

	return m, m.form.Init()
}

func (m EntriesModel) lineItemGroup(launchable []costcenter.Selectable) *huh.Group {
	if m.category == ledger.CategoryRevenue {
		return huh.NewGroup(
			huh.NewInput().
				Title("Revenue category").
				Suggestions(namesOf(m.dir.RevenueCategories, categoryRecord)).
				Value(&m.vals.category).
				Validate(validateNotBlank("category")),
			huh.NewInput().
				Title("Amount").
				Value(&m.vals.amount).
				Validate(validatePositive),
		)
	}

	centers := make([]huh.Option[string], len(launchable))
	for i, c := range launchable {
		centers[i] = huh.NewOption(c.Path, c.ID)
	}

	products := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, p := range m.products.Selectable() {
		products = append(products, huh.NewOption(fmt.Sprintf("%s (%s)", p.Path, p.Unit), p.ID))
	}

	return huh.NewGroup(
		huh.NewSelect[string]().
			Title("Transaction type").
			Options(
				huh.NewOption("Product", string(ledger.TransactionProduct)),
				huh.NewOption("Service", string(ledger.TransactionService)),
			).
			Value(&m.vals.transactionType),
		huh.NewSelect[string]().
			Title("Cost center").
			Options(centers...).
			Value(&m.vals.costCenterID),
		huh.NewSelect[string]().
			Title("Product").
			Options(products...).
			Value(&m.vals.productID),
		huh.NewInput().
			Title("Quantity").
			Value(&m.vals.quantity).
			Validate(validateOptionalAmount),
		huh.NewInput().
			Title("Unit price").
			Value(&m.vals.unitPrice).
			Validate(validateOptionalAmount),
		huh.NewInput().
			Title("Amount").
			Description("Used when quantity or unit price is missing").
			Value(&m.vals.amount).
			Validate(validateOptionalAmount),
	)
}

func (m EntriesModel) openSettle() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return m, nil
	}

	e := m.rows[idx].entry

	*m.vals = entryForm{
		settleDate:    FormatDate(time.Now()),
		settleAmount:  e.Outstanding().StringFixed(2),
		settleAccount: nameOf(m.dir.CashAccounts, cashAccountRecord, e.CashAccountID),
	}

	verb := "Pay"
	if m.category == ledger.CategoryRevenue {
		verb = "Receive"
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("%s %s", verb, e.InvoiceNumber)).
				Description(fmt.Sprintf("Outstanding: %s", FormatMoney(e.Outstanding()))),
			huh.NewInput().
				Title("Date").
				Placeholder("DD/MM/AAAA").
				Value(&m.vals.settleDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Amount").
				Value(&m.vals.settleAmount).
				Validate(validatePositive),
			huh.NewInput().
				Title("Cash account").
				Suggestions(namesOf(m.dir.CashAccounts, cashAccountRecord)).
				Value(&m.vals.settleAccount).
				Validate(validateNotBlank("cash account")),
			huh.NewInput().
				Title("Notes").
				Value(&m.vals.notes),
		),
	).WithWidth(48).WithShowHelp(false)

	m.state = entriesStateSettle
	m.table.Blur()

	return m, m.form.Init()
}

func (m EntriesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == entriesStateSettle {
			return m, m.settleCmd()
		}

		return m, m.createCmd()
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}

	return m, cmd
}

func (m EntriesModel) createCmd() tea.Cmd {
	vals := *m.vals

	return func() tea.Msg {
		params, err := m.entryParams(vals)
		if err != nil {
			return entrySavedMsg{err: err}
		}

		if m.category == ledger.CategoryRevenue {
			customerID, err := findOrAdd(m.dir.Customers, customerRecord, vals.party, func(n string) masterdata.Customer {
				return masterdata.Customer{Name: n}
			})
			if err != nil {
				return entrySavedMsg{err: err}
			}

			r, err := m.ledger.CreateRevenue(ledger.RevenueParams{EntryParams: params, CustomerID: customerID})
			if err != nil {
				return entrySavedMsg{err: err}
			}

			return entrySavedMsg{status: fmt.Sprintf("Revenue of %s recorded.", FormatMoney(r.TotalAmount))}
		}

		supplierID, err := findOrAdd(m.dir.Suppliers, supplierRecord, vals.party, func(n string) masterdata.Supplier {
			return masterdata.Supplier{Name: n}
		})
		if err != nil {
			return entrySavedMsg{err: err}
		}

		e, err := m.ledger.CreateExpense(ledger.ExpenseParams{
			EntryParams:     params,
			SupplierID:      supplierID,
			TransactionType: ledger.TransactionType(vals.transactionType),
		})
		if err != nil {
			return entrySavedMsg{err: err}
		}

		return entrySavedMsg{status: fmt.Sprintf("Expense of %s recorded.", FormatMoney(e.TotalAmount))}
	}
}

func (m EntriesModel) entryParams(vals entryForm) (ledger.EntryParams, error) {
	issued, err := ParseDate(vals.issueDate)
	if err != nil {
		return ledger.EntryParams{}, err
	}

	projectID, err := findOrAdd(m.dir.Projects, projectRecord, vals.project, func(n string) masterdata.Project {
		return masterdata.Project{Name: n}
	})
	if err != nil {
		return ledger.EntryParams{}, err
	}

	accountID, err := findOrAdd(m.dir.CashAccounts, cashAccountRecord, vals.cashAccount, func(n string) masterdata.CashAccount {
		return masterdata.CashAccount{Name: n}
	})
	if err != nil {
		return ledger.EntryParams{}, err
	}

	item, err := m.lineItem(vals)
	if err != nil {
		return ledger.EntryParams{}, err
	}

	return ledger.EntryParams{
		EntryType:     ledger.EntryType(vals.entryType),
		InvoiceNumber: vals.invoice,
		ProjectID:     projectID,
		IssueDate:     issued,
		Description:   vals.description,
		CashAccountID: accountID,
		LineItems:     []ledger.LineItemParams{item},
	}, nil
}

func (m EntriesModel) lineItem(vals entryForm) (ledger.LineItemParams, error) {
	item := ledger.LineItemParams{Description: strings.TrimSpace(vals.description)}

	if strings.TrimSpace(vals.amount) != "" {
		amount, err := ParseAmount(vals.amount)
		if err != nil {
			return item, err
		}

		item.Amount = amount
	}

	if m.category == ledger.CategoryRevenue {
		categoryID, err := findOrAdd(m.dir.RevenueCategories, categoryRecord, vals.category, func(n string) masterdata.RevenueCategory {
			return masterdata.RevenueCategory{Name: n}
		})
		if err != nil {
			return item, err
		}

		item.CostCenterID = categoryID

		return item, nil
	}

	item.CostCenterID = vals.costCenterID

	if vals.productID != "" {
		item.ProductID = new(vals.productID)

		if item.Description == "" {
			item.Description = m.products.Path(vals.productID)
		}
	}

	if strings.TrimSpace(vals.quantity) != "" && strings.TrimSpace(vals.unitPrice) != "" {
		qty, err := ParseAmount(vals.quantity)
		if err != nil {
			return item, err
		}

		price, err := ParseAmount(vals.unitPrice)
		if err != nil {
			return item, err
		}

		item.Quantity = &qty
		item.UnitPrice = &price
	}

	if item.Amount.IsZero() && (item.Quantity == nil || item.UnitPrice == nil) {
		return item, errors.New("enter an amount or a quantity and unit price")
	}

	return item, nil
}

func (m EntriesModel) settleCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return nil
	}

	entryID := m.rows[idx].entry.ID
	vals := *m.vals

	return func() tea.Msg {
		date, err := ParseDate(vals.settleDate)
		if err != nil {
			return entrySavedMsg{err: err}
		}

		amount, err := ParseAmount(vals.settleAmount)
		if err != nil {
			return entrySavedMsg{err: err}
		}

		accountID, err := findOrAdd(m.dir.CashAccounts, cashAccountRecord, vals.settleAccount, func(n string) masterdata.CashAccount {
			return masterdata.CashAccount{Name: n}
		})
		if err != nil {
			return entrySavedMsg{err: err}
		}

		st, err := m.ledger.ApplySettlement(ledger.SettlementParams{
			EntryID:        entryID,
			Category:       m.category,
			SettlementDate: date,
			Amount:         amount,
			CashAccountID:  accountID,
			Notes:          vals.notes,
		})
		if err != nil {
			return entrySavedMsg{err: err}
		}

		return entrySavedMsg{status: fmt.Sprintf("Settled %s on %s.", FormatMoney(st.Amount), FormatDate(st.SettlementDate))}
	}
}

func (m *EntriesModel) closeForm() {
	m.state = entriesStateBrowse
	m.form = nil
	m.table.Focus()
}

func (m *EntriesModel) reload() {
	m.rows = nil

	if m.category == ledger.CategoryRevenue {
		for _, r := range m.ledger.Revenues(m.filter) {
			m.rows = append(m.rows, entryRow{entry: r.Entry, partyID: r.CustomerID})
		}
	} else {
		for _, e := range m.ledger.Expenses(m.filter) {
			m.rows = append(m.rows, entryRow{entry: e.Entry, partyID: e.SupplierID})
		}
	}

	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = table.Row{
			FormatDate(r.entry.IssueDate),
			r.entry.InvoiceNumber,
			nameOf(m.dir.Projects, projectRecord, r.entry.ProjectID),
			m.partyName(r.partyID),
			FormatMoney(r.entry.TotalAmount),
			FormatMoney(r.entry.SettledAmount),
			string(r.entry.Status),
		}
	}

	setRows(&m.table, rows)
}

func (m EntriesModel) partyName(id string) string {
	if m.category == ledger.CategoryRevenue {
		return nameOf(m.dir.Customers, customerRecord, id)
	}

	return nameOf(m.dir.Suppliers, supplierRecord, id)
}

func (m EntriesModel) View() string {
	statusLabel := "All"
	if m.statusFilterIdx > 0 {
		statusLabel = string(m.statuses()[m.statusFilterIdx-1])
	}

	header := fmt.Sprintf(
		"Filter: [s] Status: %s | [d] Date: %s",
		activeStyle(statusLabel),
		activeStyle(entryTimeframes[m.dateFilterIdx].String()),
	)

	var panel string

	switch {
	case m.state != entriesStateBrowse && m.form != nil:
		panel = m.form.View()
	case len(m.rows) > 0:
		panel = m.detail(m.rows[min(max(m.table.Cursor(), 0), len(m.rows)-1)].entry)
	}

	return layout(header, m.table, panel, m.status)
}

// detail lists the line items of the highlighted entry.
func (m EntriesModel) detail(e ledger.Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", e.Description)

	for _, li := range e.LineItems {
		target := nameOf(m.dir.RevenueCategories, categoryRecord, li.CostCenterID)
		if m.category == ledger.CategoryExpense {
			target = m.costCenters.Path(li.CostCenterID)
		}

		fmt.Fprintf(&b, "%s\n  %s  %s\n", li.Description, faintText.Render(target), FormatMoney(li.Amount))

		if li.Quantity != nil && li.UnitPrice != nil {
			fmt.Fprintf(&b, "  %s × %s\n", li.Quantity.String(), FormatMoney(*li.UnitPrice))
		}
	}

	fmt.Fprintf(&b, "\nOutstanding: %s", FormatMoney(e.Outstanding()))

	return b.String()
}
