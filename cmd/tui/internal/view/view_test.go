package view

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/masterdata"
	"github.com/MrJamesThe3rd/obrafin/internal/product"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "R$ 1.234,50", FormatMoney(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "R$ 0,00", FormatMoney(decimal.Zero))
}

func TestParseAmount(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Brazilian", input: "1.234,56", want: "1234.56"},
		{name: "Plain", input: "1234.56", want: "1234.56"},
		{name: "Integer", input: " 10 ", want: "10"},
		{name: "Currency", input: "R$ 7,50", want: "7.5"},
		{name: "Garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("05/03/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "05/03/2024", FormatDate(d))
	assert.Empty(t, FormatDate(time.Time{}))

	_, err = ParseDate("2024-03-05")
	require.Error(t, err)
}

func TestDescendants(t *testing.T) {
	rows := []treeRow{
		{Name: "A", Depth: 0},
		{Name: "A1", Depth: 1},
		{Name: "A1a", Depth: 2},
		{Name: "A2", Depth: 1},
		{Name: "B", Depth: 0},
	}

	assert.Equal(t, 3, descendants(rows, 0))
	assert.Equal(t, 1, descendants(rows, 1))
	assert.Equal(t, 0, descendants(rows, 3))
	assert.Equal(t, 0, descendants(rows, 4))
	assert.Equal(t, "  └ A1a", indentName("A1a", 2))
}

func TestTimeframeToDateRange(t *testing.T) {
	now := time.Now()

	start, end := normalizeDateRange(timeframeToDateRange(TimeframeThisMonth))
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, now.Month(), start.Month())
	assert.Equal(t, now.Month(), end.Month())
	assert.NotEqual(t, now.Month(), end.Add(time.Second).Month())

	start, end = timeframeToDateRange(TimeframeLastMonth)
	assert.True(t, end.Before(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, start.Day())

	start, end = timeframeToDateRange(TimeframeAll)
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())
}

func TestFindOrAdd(t *testing.T) {
	dir := masterdata.NewDirectory()
	build := func(n string) masterdata.Project { return masterdata.Project{Name: n} }

	id, err := findOrAdd(dir.Projects, projectRecord, " Residencial Aurora ", build)
	require.NoError(t, err)

	again, err := findOrAdd(dir.Projects, projectRecord, "residencial aurora", build)
	require.NoError(t, err)

	assert.Equal(t, id, again)
	assert.Equal(t, 1, dir.Projects.Len())
	assert.Equal(t, "Residencial Aurora", nameOf(dir.Projects, projectRecord, id))
	assert.Equal(t, "unknown", nameOf(dir.Projects, projectRecord, "unknown"))
	assert.Equal(t, []string{"Residencial Aurora"}, namesOf(dir.Projects, projectRecord))
}

func newEntriesModel(t *testing.T, category ledger.Category) (EntriesModel, costcenter.Node, product.Node) {
	t.Helper()

	costCenters := costcenter.NewService()
	products := product.NewService()

	cc, err := costCenters.Add("Materiais", nil)
	require.NoError(t, err)

	cat, err := products.Add("Agregados", "", nil)
	require.NoError(t, err)

	brita, err := products.Add("Brita 1", "m³", &cat.ID)
	require.NoError(t, err)

	return NewEntriesModel(category, ledger.NewService(), masterdata.NewDirectory(), costCenters, products), cc, brita
}

func TestEntriesModel_LineItem(t *testing.T) {
	m, cc, brita := newEntriesModel(t, ledger.CategoryExpense)

	item, err := m.lineItem(entryForm{
		costCenterID: cc.ID,
		productID:    brita.ID,
		quantity:     "2,5",
		unitPrice:    "150",
	})
	require.NoError(t, err)
	assert.Equal(t, "Agregados / Brita 1", item.Description)
	assert.Equal(t, "2.5", item.Quantity.String())
	assert.Equal(t, brita.ID, *item.ProductID)

	_, err = m.lineItem(entryForm{costCenterID: cc.ID, quantity: "2"})
	require.Error(t, err)
}

func TestEntriesModel_CreateAndSettle(t *testing.T) {
	m, cc, _ := newEntriesModel(t, ledger.CategoryExpense)

	*m.vals = entryForm{
		entryType:       string(ledger.EntryTypeFinancial),
		transactionType: string(ledger.TransactionService),
		project:         "Residencial Aurora",
		party:           "Concreteira Silva",
		cashAccount:     "Caixa",
		issueDate:       "10/02/2024",
		costCenterID:    cc.ID,
		amount:          "1.000,00",
	}

	msg, ok := m.createCmd()().(entrySavedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	next, _ := m.Update(msg)
	m = next.(EntriesModel)

	require.Len(t, m.rows, 1)
	assert.Equal(t, "1000", m.rows[0].entry.TotalAmount.String())
	assert.Equal(t, "Concreteira Silva", m.partyName(m.rows[0].partyID))

	*m.vals = entryForm{settleDate: "15/02/2024", settleAmount: "400", settleAccount: "caixa"}

	msg, ok = m.settleCmd()().(entrySavedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	next, _ = m.Update(msg)
	m = next.(EntriesModel)

	assert.Equal(t, ledger.StatusPartiallyPaid, m.rows[0].entry.Status)
	assert.Equal(t, 1, m.dir.CashAccounts.Len())
}

func TestCostCenterModel_FirstRootIsSelectable(t *testing.T) {
	svc := costcenter.NewService()
	m := NewCostCenterModel(svc)
	require.Empty(t, m.rows)

	_, err := svc.Add("Materiais", nil)
	require.NoError(t, err)

	next, _ := m.Update(treeSavedMsg{})
	m = next.(CostCenterModel)

	require.Len(t, m.rows, 1)
	assert.Equal(t, 0, m.table.Cursor())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = next.(CostCenterModel)

	assert.Equal(t, treeStateForm, m.state)
	assert.NotNil(t, m.form)
}

func TestEntriesModel_StatusFilter(t *testing.T) {
	m, _, _ := newEntriesModel(t, ledger.CategoryRevenue)

	m.statusFilterIdx = 3
	m.applyFilter()

	require.NotNil(t, m.filter.Status)
	assert.Equal(t, ledger.StatusReceived, *m.filter.Status)

	m.dateFilterIdx = 1
	m.applyFilter()
	require.NotNil(t, m.filter.From)
	assert.Equal(t, 1, m.filter.From.Day())
}
