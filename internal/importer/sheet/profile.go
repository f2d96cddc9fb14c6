package sheet

// Kind identifies what a spreadsheet describes.
type Kind string

const (
	KindProducts    Kind = "products"
	KindCostCenters Kind = "cost-centers"
	KindLineItems   Kind = "line-items"
)

const (
	colPath        = "Caminho"
	colUnit        = "Unidade"
	colLaunchable  = "Lançável"
	colProduct     = "Produto"
	colQuantity    = "Quantidade"
	colUnitPrice   = "Preço Unitário"
	colCostCenter  = "Centro de Custo"
	colDescription = "Descrição"
)

// Profile describes the header a spreadsheet kind is recognised by.
type Profile struct {
	Kind     Kind
	Required []string
}

// profiles is tried in order; the line item layout is the most specific.
var profiles = []Profile{
	{Kind: KindLineItems, Required: []string{colProduct, colQuantity, colUnitPrice, colCostCenter}},
	{Kind: KindCostCenters, Required: []string{colPath, colLaunchable}},
	{Kind: KindProducts, Required: []string{colPath, colUnit}},
}

// Header returns the canonical header row for a kind, as written by the
// template downloads.
func Header(kind Kind) []string {
	for _, p := range profiles {
		if p.Kind == kind {
			return append([]string(nil), p.Required...)
		}
	}

	return nil
}
