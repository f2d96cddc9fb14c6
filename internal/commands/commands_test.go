package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/obrafin/internal/commands"
)

const (
	productsCSV = `Caminho;Unidade
Cimento e Argamassas / Cimento CPII (saco 50kg);sc
Agregados / Brita 1;m³
Agregados / Areia Média Lavada;m³
`
	costCentersCSV = `Caminho;Lançável
Custos de Construção / Materiais;Sim
Geral & Administrativo;Não
`
	itemsCSV = `Produto;Quantidade;Preço Unitário;Centro de Custo
Agregados / Brita 1;2,5;150,00;Custos de Construção / Materiais
`
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runCatalog(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := commands.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestTree_Products(t *testing.T) {
	out, err := runCatalog(t, "tree", writeFile(t, "produtos.csv", productsCSV))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Cimento e Argamassas\t", lines[0])
	assert.Equal(t, "  Cimento CPII (saco 50kg)\tsc", lines[1])
	assert.Equal(t, "Agregados\t", lines[2])
}

func TestTree_CostCentersJSON(t *testing.T) {
	out, err := runCatalog(t, "tree", "--format", "json", writeFile(t, "centros.csv", costCentersCSV))
	require.NoError(t, err)

	var got []struct {
		Path       string `json:"path"`
		Launchable *bool  `json:"launchable"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	require.Len(t, got, 3)
	assert.Equal(t, "Custos de Construção", got[0].Path)
	assert.False(t, *got[0].Launchable)
	assert.Equal(t, "Custos de Construção / Materiais", got[1].Path)
	assert.True(t, *got[1].Launchable)
}

func TestSelectable_Products(t *testing.T) {
	out, err := runCatalog(t, "selectable", writeFile(t, "produtos.csv", productsCSV))
	require.NoError(t, err)

	assert.Equal(t, "Agregados / Areia Média Lavada\tm³\n"+
		"Agregados / Brita 1\tm³\n"+
		"Cimento e Argamassas / Cimento CPII (saco 50kg)\tsc\n", out)
}

func TestSelectable_TableFormat(t *testing.T) {
	out, err := runCatalog(t, "selectable", "--format", "table", writeFile(t, "centros.csv", costCentersCSV))
	require.NoError(t, err)

	assert.Contains(t, out, "Caminho")
	assert.Contains(t, out, "Custos de Construção / Materiais")
	assert.NotContains(t, out, "Geral & Administrativo")
}

func TestItems(t *testing.T) {
	out, err := runCatalog(t, "items",
		"--products", writeFile(t, "produtos.csv", productsCSV),
		"--cost-centers", writeFile(t, "centros.csv", costCentersCSV),
		writeFile(t, "itens.csv", itemsCSV),
	)
	require.NoError(t, err)

	assert.Equal(t, "Agregados / Brita 1\t2.5\t150.00\t375.00\tCustos de Construção / Materiais\n", out)
}

func TestErrors(t *testing.T) {
	products := writeFile(t, "produtos.csv", productsCSV)
	costCenters := writeFile(t, "centros.csv", costCentersCSV)
	items := writeFile(t, "itens.csv", itemsCSV)

	type testCase struct {
		name    string
		args    []string
		wantMsg string
	}

	tests := []testCase{
		{
			name:    "TreeRejectsItemsFlags",
			args:    []string{"tree", "--products", products, items},
			wantMsg: "unknown flag",
		},
		{
			name:    "SelectableOfUnresolvedItems",
			args:    []string{"selectable", items},
			wantMsg: "line 2",
		},
		{
			name:    "ItemsMissingFlags",
			args:    []string{"items", items},
			wantMsg: "required flag",
		},
		{
			name:    "ItemsOfCatalog",
			args:    []string{"items", "--products", products, "--cost-centers", costCenters, products},
			wantMsg: "not a line item sheet",
		},
		{
			name:    "UnknownFormat",
			args:    []string{"selectable", "--format", "xml", products},
			wantMsg: "unknown format",
		},
		{
			name:    "BadCollation",
			args:    []string{"tree", "--collation", "not a locale!", products},
			wantMsg: "invalid collation",
		},
		{
			name:    "MissingFile",
			args:    []string{"tree", filepath.Join(t.TempDir(), "missing.csv")},
			wantMsg: "missing.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCatalog(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error()+out, tt.wantMsg)
		})
	}
}
