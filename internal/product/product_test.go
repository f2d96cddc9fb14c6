package product_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/obrafin/internal/product"
	"github.com/MrJamesThe3rd/obrafin/internal/tree"
	"github.com/MrJamesThe3rd/obrafin/internal/validation"
)

func seed(t *testing.T) (*product.Service, map[string]product.Node) {
	t.Helper()

	svc := product.NewService()
	nodes := make(map[string]product.Node)

	add := func(key, name, unit string, parent *string) product.Node {
		n, err := svc.Add(name, unit, parent)
		require.NoError(t, err)
		nodes[key] = n

		return n
	}

	agreg := add("agreg", "Agregados", "", nil)
	add("areia", "Areia Média Lavada", "m³", &agreg.ID)
	add("brita", "Brita 1", "m³", &agreg.ID)
	cim := add("cimento", "Cimento e Argamassas", "", nil)
	add("cpii", "Cimento CPII (saco 50kg)", "sc", &cim.ID)
	add("verg", "Vergalhão CA50 10mm", "br", nil)

	return svc, nodes
}

func TestService_Selectable(t *testing.T) {
	svc, nodes := seed(t)

	got := svc.Selectable()

	assert.Equal(t, []product.Option{
		{ID: nodes["areia"].ID, Path: "Agregados / Areia Média Lavada", Unit: "m³"},
		{ID: nodes["brita"].ID, Path: "Agregados / Brita 1", Unit: "m³"},
		{ID: nodes["cpii"].ID, Path: "Cimento e Argamassas / Cimento CPII (saco 50kg)", Unit: "sc"},
		{ID: nodes["verg"].ID, Path: "Vergalhão CA50 10mm", Unit: "br"},
	}, got)
}

func TestService_Add_TrimsUnit(t *testing.T) {
	svc := product.NewService()

	n, err := svc.Add(" Tijolo ", "  ", nil)
	require.NoError(t, err)
	assert.Equal(t, "Tijolo", n.Name)
	assert.True(t, n.Payload.IsCategory())
	assert.Empty(t, svc.Selectable())
}

func TestService_Add_Errors(t *testing.T) {
	svc, _ := seed(t)
	before := svc.Len()

	_, err := svc.Add("", "un", nil)
	require.ErrorIs(t, err, validation.ErrValidation)

	missing := "nonexistent-id"
	_, err = svc.Add("X", "", &missing)
	require.ErrorIs(t, err, tree.ErrNotFound)

	assert.Equal(t, before, svc.Len())
}

func TestService_Update_TurnsCategoryIntoProduct(t *testing.T) {
	svc, nodes := seed(t)

	_, err := svc.Update(product.UpdateParams{ID: nodes["agreg"].ID, Name: "Agregados", Unit: "t"})
	require.NoError(t, err)

	var found bool

	for _, o := range svc.Selectable() {
		if o.ID == nodes["agreg"].ID {
			found = true

			assert.Equal(t, "t", o.Unit)
		}
	}

	assert.True(t, found)
}

func TestService_Delete(t *testing.T) {
	svc, nodes := seed(t)

	removed, err := svc.Delete(nodes["agreg"].ID)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	assert.Empty(t, svc.Path(nodes["brita"].ID))
	assert.Len(t, svc.Selectable(), 2)
}
