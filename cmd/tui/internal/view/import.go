package view

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/importer"
	"github.com/MrJamesThe3rd/obrafin/internal/importer/sheet"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
)

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	importService *importer.Service
	costCenters   *costcenter.Service

	state      importState
	filePicker filepicker.Model
	items      list.Model
	hasItems   bool

	status string
	err    error
}

func NewImportModel(impSvc *importer.Service, costCenters *costcenter.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		importService: impSvc,
		costCenters:   costCenters,
		filePicker:    fp,
	}
}

func (m ImportModel) Title() string { return "Import Spreadsheet" }

func (m ImportModel) ShortHelp() string {
	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

type importResultMsg struct {
	result *importer.Result
	err    error
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		m.filePicker.SetHeight(m.tableHeight(8))

		if m.hasItems {
			m.items.SetSize(m.Width-4, m.tableHeight(8))
		}

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateResult && m.hasItems {
			var cmd tea.Cmd
			m.items, cmd = m.items.Update(msg)

			return m, cmd
		}

	case importResultMsg:
		m.state = importStateResult
		m.err = msg.err

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = m.summary(msg.result)
		m.hasItems = len(msg.result.Items) > 0

		if m.hasItems {
			m.items = m.itemList(msg.result.Items)
		}

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	if m.state == importStateResult {
		m.state = importStateFilePick
		m.err = nil
		m.status = ""
		m.hasItems = false

		return m, m.filePicker.Init()
	}

	return m, Back
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.importService.ImportFile(path)
		return importResultMsg{result: res, err: err}
	}
}

func (m ImportModel) summary(res *importer.Result) string {
	switch res.Kind {
	case sheet.KindProducts:
		return fmt.Sprintf("Products: %d created, %d already present (%s).", res.Created, res.Existing, res.Charset)
	case sheet.KindCostCenters:
		return fmt.Sprintf("Cost centers: %d created, %d already present (%s).", res.Created, res.Existing, res.Charset)
	}

	return fmt.Sprintf("Resolved %d line item(s) (%s).", len(res.Items), res.Charset)
}

func (m ImportModel) itemList(items []ledger.LineItemParams) list.Model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = lineItem{params: it, costCenter: m.costCenters.Path(it.CostCenterID)}
	}

	l := list.New(listItems, lineItemDelegate{}, 80, 20)
	if m.Width > 0 {
		l.SetSize(m.Width-4, m.tableHeight(8))
	}

	l.Title = "Resolved Line Items"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return l
}

func (m ImportModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case importStateFilePick:
		return style.Render("Select a products, cost centers or line items sheet:\n\n" + m.filePicker.View())
	case importStateImporting:
		return style.Render(m.status)
	}

	status := okText.Render(m.status)
	if m.err != nil {
		status = errorText.Render(m.status)
	}

	if m.hasItems {
		return style.Render(status + "\n\n" + m.items.View() + "\n(Esc to go back)")
	}

	return style.Render(status + "\n\n(Esc to go back)")
}

type lineItem struct {
	params     ledger.LineItemParams
	costCenter string
}

func (i lineItem) Title() string       { return i.params.Description }
func (i lineItem) Description() string { return i.costCenter }
func (i lineItem) FilterValue() string { return i.params.Description }

type lineItemDelegate struct{}

func (d lineItemDelegate) Height() int                             { return 2 }
func (d lineItemDelegate) Spacing() int                            { return 0 }
func (d lineItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d lineItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(lineItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	qty := ""
	if item.params.Quantity != nil && item.params.UnitPrice != nil {
		qty = fmt.Sprintf("%s × %s", item.params.Quantity.String(), FormatMoney(*item.params.UnitPrice))
	}

	fmt.Fprintf(w, "%s%s  %s  %s\n    %s\n",
		cursor,
		item.params.Description,
		qty,
		FormatMoney(item.params.Amount),
		faintText.Render(item.costCenter),
	)
}
