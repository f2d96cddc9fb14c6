package report

import (
	"slices"

	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
)

// PurchaseHistory lists every priced purchase of a product, newest first. It
// is empty when the id is unknown or names a category.
func (p *Projector) PurchaseHistory(productID string) []PurchaseHistoryItem {
	node, err := p.products.Get(productID)
	if err != nil || node.Payload.IsCategory() {
		return []PurchaseHistoryItem{}
	}

	name := p.products.Path(productID)
	items := []PurchaseHistoryItem{}

	for _, e := range p.ledger.Expenses(ledger.Filter{}) {
		supplier, ok := p.suppliers.SupplierName(e.SupplierID)
		if !ok {
			supplier = UnknownSupplier
		}

		for _, li := range e.LineItems {
			if li.ProductID == nil || *li.ProductID != productID {
				continue
			}

			if li.Quantity == nil || li.UnitPrice == nil || li.Quantity.IsZero() || li.UnitPrice.IsZero() {
				continue
			}

			items = append(items, PurchaseHistoryItem{
				ID:           e.ID + "-" + li.ID,
				ExpenseID:    e.ID,
				ExpenseDate:  e.IssueDate,
				SupplierName: supplier,
				ProductName:  name,
				Quantity:     *li.Quantity,
				Unit:         node.Payload.Unit,
				UnitPrice:    *li.UnitPrice,
				TotalAmount:  li.Quantity.Mul(*li.UnitPrice),
			})
		}
	}

	slices.SortStableFunc(items, func(a, b PurchaseHistoryItem) int {
		return b.ExpenseDate.Compare(a.ExpenseDate)
	})

	return items
}
