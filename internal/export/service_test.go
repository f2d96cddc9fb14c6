package export

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/report"
)

type fakeReports struct {
	history  []report.PurchaseHistoryItem
	summary  []report.SummaryNode
	cashFlow []report.CashFlowRow
}

func (f *fakeReports) PurchaseHistory(string) []report.PurchaseHistoryItem { return f.history }

func (f *fakeReports) CostCenterSummary(ledger.Filter) []report.SummaryNode { return f.summary }

func (f *fakeReports) CashFlow(report.CashFlowParams) []report.CashFlowRow { return f.cashFlow }

func TestWriteCSV(t *testing.T) {
	type row struct {
		name  string
		notes string
	}

	cols := []Column[row]{
		{Header: "Nome", Value: func(r row) string { return r.name }},
		{Header: "Obs", Value: func(r row) string { return r.notes }},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []row{{"Areia", "lavada, média"}, {"Brita", `"1"`}}, cols); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := "Nome,Obs\nAreia,\"lavada, média\"\nBrita,\"\"\"1\"\"\"\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil, PurchaseHistoryColumns); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := "Data NF,Fornecedor,Produto,Qtd.,Un.,Preço Unit. (R$),Total Item (R$)\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		prefix, name, want string
	}{
		{"historico_compras", "Brita 1", "historico_compras_Brita_1.csv"},
		{"historico_compras", "  Cimento   CPII\t50kg ", "historico_compras_Cimento_CPII_50kg.csv"},
		{"fluxo_caixa", "", "fluxo_caixa.csv"},
		{"resumo", "Obra / Materiais", "resumo_Obra___Materiais.csv"},
	}

	for _, tt := range tests {
		if got := Filename(tt.prefix, tt.name); got != tt.want {
			t.Errorf("Filename(%q, %q) = %q, want %q", tt.prefix, tt.name, got, tt.want)
		}
	}
}

func TestService_PurchaseHistory(t *testing.T) {
	svc := NewService(&fakeReports{history: []report.PurchaseHistoryItem{{
		ExpenseDate:  time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		SupplierName: "N/A",
		ProductName:  "Agregados / Brita 1",
		Quantity:     decimal.RequireFromString("1.5"),
		Unit:         "m³",
		UnitPrice:    decimal.RequireFromString("90"),
		TotalAmount:  decimal.RequireFromString("135"),
	}}})

	var buf bytes.Buffer
	if err := svc.PurchaseHistory(&buf, "p"); err != nil {
		t.Fatalf("PurchaseHistory failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	want := "20/03/2024,N/A,Agregados / Brita 1,1.5,m³,90.00,135.00"
	if lines[1] != want {
		t.Errorf("expected %q, got %q", want, lines[1])
	}
}

func TestService_CostCenterSummary_Flattens(t *testing.T) {
	svc := NewService(&fakeReports{summary: []report.SummaryNode{{
		Path:  "Obra",
		Total: decimal.NewFromInt(150),
		Children: []report.SummaryNode{
			{Path: "Obra / Materiais", Launchable: true, Own: decimal.NewFromInt(150), Total: decimal.NewFromInt(150)},
		},
	}}})

	var buf bytes.Buffer
	if err := svc.CostCenterSummary(&buf, ledger.Filter{}); err != nil {
		t.Fatalf("CostCenterSummary failed: %v", err)
	}

	want := "Centro de Custo,Lançável,Direto (R$),Total (R$)\n" +
		"Obra,Não,0.00,150.00\n" +
		"Obra / Materiais,Sim,150.00,150.00\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestService_SaveFile(t *testing.T) {
	svc := NewService(&fakeReports{cashFlow: []report.CashFlowRow{{
		Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		EntryID:  "r1",
		Category: ledger.CategoryRevenue,
		Inflow:   decimal.NewFromInt(500),
		Outflow:  decimal.Zero,
		Balance:  decimal.NewFromInt(1500),
	}}})

	dir := filepath.Join(t.TempDir(), "out")

	path, err := svc.SaveFile(dir, Filename("fluxo_caixa", "Caixa Obra"), func(w io.Writer) error {
		return svc.CashFlow(w, report.CashFlowParams{})
	})
	if err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	if filepath.Base(path) != "fluxo_caixa_Caixa_Obra.csv" {
		t.Errorf("unexpected file name %s", filepath.Base(path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}

	if !strings.Contains(string(content), "05/03/2024,r1,Receita,500.00,0.00,1500.00,") {
		t.Errorf("unexpected content %q", content)
	}
}
