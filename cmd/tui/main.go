package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/obrafin/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/obrafin/internal/app"
	"github.com/MrJamesThe3rd/obrafin/internal/config"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/logger"
)

type screen int

const (
	screenMenu screen = iota
	screenCostCenters
	screenProducts
	screenExpenses
	screenRevenues
	screenPurchases
	screenCashFlow
	screenImport
)

type model struct {
	svc       *app.Services
	exportDir string

	current screen
	width   int
	height  int

	costCenters view.CostCenterModel
	products    view.ProductModel
	expenses    view.EntriesModel
	revenues    view.EntriesModel
	purchases   view.PurchaseModel
	cashFlow    view.CashFlowModel
	importer    view.ImportModel
}

func initialModel(svc *app.Services, exportDir string) model {
	return model{
		svc:       svc,
		exportDir: exportDir,
		current:   screenMenu,
		importer:  view.NewImportModel(svc.Importer, svc.CostCenters),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.current == screenMenu {
			return m.updateMenu(msg)
		}
	case view.BackMsg:
		m.current = screenMenu
		return m, nil
	}

	return m.updateCurrent(msg)
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		m.costCenters = view.NewCostCenterModel(m.svc.CostCenters)
		m.current = screenCostCenters
	case "2":
		m.products = view.NewProductModel(m.svc.Products)
		m.current = screenProducts
	case "3":
		m.expenses = m.entries(ledger.CategoryExpense)
		m.current = screenExpenses
	case "4":
		m.revenues = m.entries(ledger.CategoryRevenue)
		m.current = screenRevenues
	case "5":
		m.purchases, cmd = view.NewPurchaseModel(m.svc.Reports, m.svc.Export, m.svc.Products, m.exportDir).Start()
		m.current = screenPurchases
	case "6":
		m.cashFlow, cmd = view.NewCashFlowModel(m.svc.Reports, m.svc.Export, m.svc.Directory, m.exportDir).Start()
		m.current = screenCashFlow
	case "7":
		m.current = screenImport
		cmd = m.importer.Init()
	default:
		return m, nil
	}

	if m.width > 0 {
		var sizeCmd tea.Cmd

		m, sizeCmd = m.resize()
		cmd = tea.Batch(cmd, sizeCmd)
	}

	return m, cmd
}

func (m model) entries(category ledger.Category) view.EntriesModel {
	return view.NewEntriesModel(category, m.svc.Ledger, m.svc.Directory, m.svc.CostCenters, m.svc.Products)
}

// resize forwards the last known terminal size to a freshly opened screen.
func (m model) resize() (model, tea.Cmd) {
	next, cmd := m.updateCurrent(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return next.(model), cmd
}

func (m model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		next tea.Model
		cmd  tea.Cmd
	)

	switch m.current {
	case screenCostCenters:
		next, cmd = m.costCenters.Update(msg)
		m.costCenters = next.(view.CostCenterModel)
	case screenProducts:
		next, cmd = m.products.Update(msg)
		m.products = next.(view.ProductModel)
	case screenExpenses:
		next, cmd = m.expenses.Update(msg)
		m.expenses = next.(view.EntriesModel)
	case screenRevenues:
		next, cmd = m.revenues.Update(msg)
		m.revenues = next.(view.EntriesModel)
	case screenPurchases:
		next, cmd = m.purchases.Update(msg)
		m.purchases = next.(view.PurchaseModel)
	case screenCashFlow:
		next, cmd = m.cashFlow.Update(msg)
		m.cashFlow = next.(view.CashFlowModel)
	case screenImport:
		next, cmd = m.importer.Update(msg)
		m.importer = next.(view.ImportModel)
	}

	return m, cmd
}

func (m model) active() view.View {
	switch m.current {
	case screenCostCenters:
		return m.costCenters
	case screenProducts:
		return m.products
	case screenExpenses:
		return m.expenses
	case screenRevenues:
		return m.revenues
	case screenPurchases:
		return m.purchases
	case screenCashFlow:
		return m.cashFlow
	case screenImport:
		return m.importer
	}

	return nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle  = lipgloss.NewStyle().Faint(true).PaddingLeft(1)
)

func (m model) View() string {
	v := m.active()
	if v == nil {
		return lipgloss.NewStyle().Padding(2).Render(
			titleStyle.Render("Obrafin") + "\n\n" +
				"1. Cost Centers\n" +
				"2. Products\n" +
				"3. Expenses\n" +
				"4. Revenues\n" +
				"5. Purchase History\n" +
				"6. Cash Flow\n" +
				"7. Import Spreadsheet\n\n" +
				"q. Quit",
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingLeft(1).PaddingTop(1).Render(titleStyle.Render(v.Title())),
		v.View(),
		helpStyle.Render(v.ShortHelp()),
	)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the program, so logs go to a file.
	logFile, err := tea.LogToFile("obrafin-tui.log", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	slog.SetDefault(logger.NewWithWriter(logFile, cfg.Log.Format, cfg.Log.Level))

	svc, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to build services", "error", err)
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(svc, cfg.Export.Dir), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
