package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
)

type CostCenterModel struct {
	CommonModel
	svc *costcenter.Service

	state treeState
	mode  treeFormMode
	table table.Model
	rows  []treeRow
	form  *huh.Form
	vals  *treeForm

	status string
}

func NewCostCenterModel(svc *costcenter.Service) CostCenterModel {
	m := CostCenterModel{
		svc: svc,
		table: newTable([]table.Column{
			{Title: "Cost Center", Width: 50},
			{Title: "Launchable", Width: 12},
		}),
		vals: &treeForm{},
	}
	m.reload()

	return m
}

func (m CostCenterModel) Title() string     { return "Cost Centers" }
func (m CostCenterModel) ShortHelp() string { return treeHelp(m.state) }

func (m CostCenterModel) Init() tea.Cmd {
	return nil
}

func (m CostCenterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m CostCenterModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m CostCenterModel) openForm(mode treeFormMode) (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if mode != treeFormAddRoot && (idx < 0 || idx >= len(m.rows)) {
		return m, nil
	}

	*m.vals = treeForm{flag: true}

	if mode == treeFormEdit {
		n, err := m.svc.Get(m.rows[idx].ID)
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}

		m.vals.name = n.Name
		m.vals.flag = n.Payload.Launchable
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.vals.name).
				Validate(validateNotBlank("name")),
			huh.NewConfirm().
				Key("launchable").
				Title("Accepts postings?").
				Value(&m.vals.flag),
		),
	).WithWidth(45).WithShowHelp(false)

	m.mode = mode
	m.state = treeStateForm
	m.table.Blur()

	return m, m.form.Init()
}

func (m CostCenterModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m CostCenterModel) saveCmd() tea.Cmd {
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

			return treeSavedMsg{status: fmt.Sprintf("Removed %d cost center(s).", removed), err: err}
		}

		name := strings.TrimSpace(vals.name)

		var err error

		switch mode {
		case treeFormEdit:
			_, err = m.svc.Update(costcenter.UpdateParams{ID: selectedID, Name: name, Launchable: vals.flag})
		case treeFormAddChild:
			_, err = m.svc.Create(costcenter.CreateParams{Name: name, ParentID: &selectedID, Launchable: vals.flag})
		default:
			_, err = m.svc.Create(costcenter.CreateParams{Name: name, Launchable: vals.flag})
		}

		return treeSavedMsg{status: fmt.Sprintf("Saved %q.", name), err: err}
	}
}

func (m *CostCenterModel) closeForm() {
	m.state = treeStateBrowse
	m.form = nil
	m.table.Focus()
}

func (m *CostCenterModel) reload() {
	m.rows = nil

	m.svc.Walk(func(v costcenter.Visit) {
		detail := "no"
		if v.Payload.Launchable {
			detail = "yes"
		}

		m.rows = append(m.rows, treeRow{ID: v.ID, Name: v.Name, Path: v.Path, Depth: v.Depth, Detail: detail})
	})

	setRows(&m.table, treeTableRows(m.rows))
}

func (m CostCenterModel) View() string {
	var panel string
	if m.state != treeStateBrowse && m.form != nil {
		panel = m.form.View()
	}

	header := fmt.Sprintf("%d cost centers, %d accept postings", len(m.rows), len(m.svc.Launchable()))

	return layout(header, m.table, panel, m.status)
}
