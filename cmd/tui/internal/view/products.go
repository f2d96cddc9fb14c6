package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/obrafin/internal/product"
)

type ProductModel struct {
	CommonModel
	svc *product.Service

	state treeState
	mode  treeFormMode
	table table.Model
	rows  []treeRow
	form  *huh.Form
	vals  *treeForm

	status string
}

func NewProductModel(svc *product.Service) ProductModel {
	m := ProductModel{
		svc: svc,
		table: newTable([]table.Column{
			{Title: "Product", Width: 50},
			{Title: "Unit", Width: 10},
		}),
		vals: &treeForm{},
	}
	m.reload()

	return m
}

func (m ProductModel) Title() string     { return "Products" }
func (m ProductModel) ShortHelp() string { return treeHelp(m.state) }

func (m ProductModel) Init() tea.Cmd {
	return nil
}

func (m ProductModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case treeSavedMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		m.closeForm()
		m.reload()

		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg)
		m.table.SetHeight(m.tableHeight(10))
		return m, nil
	}

	if m.state == treeStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m ProductModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "a":
			return m.openForm(treeFormAddRoot)
		case "c":
			return m.openForm(treeFormAddChild)
		case "e":
			return m.openForm(treeFormEdit)
		case "d":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.rows) {
				return m, nil
			}

			m.form = deleteForm(m.rows, idx, m.vals)
			m.state = treeStateDelete
			m.table.Blur()

			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ProductModel) openForm(mode treeFormMode) (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if mode != treeFormAddRoot && (idx < 0 || idx >= len(m.rows)) {
		return m, nil
	}

	*m.vals = treeForm{}

	if mode == treeFormEdit {
		n, err := m.svc.Get(m.rows[idx].ID)
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}

		m.vals.name = n.Name
		m.vals.unit = n.Payload.Unit
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.vals.name).
				Validate(validateNotBlank("name")),
			huh.NewInput().
				Key("unit").
				Title("Unit").
				Description("m³, sc, un... Leave empty for a category").
				Value(&m.vals.unit),
		),
	).WithWidth(45).WithShowHelp(false)

	m.mode = mode
	m.state = treeStateForm
	m.table.Blur()

	return m, m.form.Init()
}

func (m ProductModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		return m, m.saveCmd()
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}

	return m, cmd
}

func (m ProductModel) saveCmd() tea.Cmd {
	var selectedID string
	if idx := m.table.Cursor(); idx >= 0 && idx < len(m.rows) {
		selectedID = m.rows[idx].ID
	}

	vals := *m.vals
	state, mode := m.state, m.mode

	return func() tea.Msg {
		if state == treeStateDelete {
			if !vals.confirm || selectedID == "" {
				return treeSavedMsg{}
			}

			removed, err := m.svc.Delete(selectedID)

			return treeSavedMsg{status: fmt.Sprintf("Removed %d product(s) and categories.", removed), err: err}
		}

		name := strings.TrimSpace(vals.name)
		unit := strings.TrimSpace(vals.unit)

		var err error

		switch mode {
		case treeFormEdit:
			_, err = m.svc.Update(product.UpdateParams{ID: selectedID, Name: name, Unit: unit})
		case treeFormAddChild:
			_, err = m.svc.Create(product.CreateParams{Name: name, Unit: unit, ParentID: &selectedID})
		default:
			_, err = m.svc.Create(product.CreateParams{Name: name, Unit: unit})
		}

		return treeSavedMsg{status: fmt.Sprintf("Saved %q.", name), err: err}
	}
}

func (m *ProductModel) closeForm() {
	m.state = treeStateBrowse
	m.form = nil
	m.table.Focus()
}

func (m *ProductModel) reload() {
	m.rows = nil

	m.svc.Walk(func(v product.Visit) {
		detail := v.Payload.Unit
		if v.Payload.IsCategory() {
			detail = "-"
		}

		m.rows = append(m.rows, treeRow{ID: v.ID, Name: v.Name, Path: v.Path, Depth: v.Depth, Detail: detail})
	})

	setRows(&m.table, treeTableRows(m.rows))
}

func (m ProductModel) View() string {
	var panel string
	if m.state != treeStateBrowse && m.form != nil {
		panel = m.form.View()
	}

	header := fmt.Sprintf("%d nodes, %d products", len(m.rows), len(m.svc.Selectable()))

	return layout(header, m.table, panel, m.status)
}
