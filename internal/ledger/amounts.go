package ledger

import "github.com/shopspring/decimal"

// lineAmount applies the expense pricing rule: quantity times unit price when
// both are set and non-zero, otherwise the supplied amount. Revenue lines are
// always taken as supplied.
func lineAmount(category Category, p LineItemParams) decimal.Decimal {
	if category != CategoryExpense {
		return p.Amount
	}

	if p.Quantity == nil || p.UnitPrice == nil || p.Quantity.IsZero() || p.UnitPrice.IsZero() {
		return p.Amount
	}

	return p.Quantity.Mul(*p.UnitPrice)
}

func total(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}

	return sum
}

// deriveStatus maps the settled amount against the total onto the category's
// status names.
func deriveStatus(category Category, settled, total decimal.Decimal) Status {
	full, partial, open := StatusPaid, StatusPartiallyPaid, StatusUnpaid
	if category == CategoryRevenue {
		full, partial, open = StatusReceived, StatusPartiallyReceived, StatusUnreceived
	}

	switch {
	case settled.IsPositive() && settled.GreaterThanOrEqual(total):
		return full
	case settled.IsPositive():
		return partial
	default:
		return open
	}
}

// recompute refreshes every derived field of the entry.
func (e *Entry) recompute() {
	e.TotalAmount = total(e.LineItems)
	e.Status = deriveStatus(e.Category, e.SettledAmount, e.TotalAmount)
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}

	return new(*d)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}

	return new(*s)
}

func (e Entry) clone() Entry {
	items := make([]LineItem, len(e.LineItems))
	for i, it := range e.LineItems {
		it.ProductID = cloneString(it.ProductID)
		it.Quantity = cloneDecimal(it.Quantity)
		it.UnitPrice = cloneDecimal(it.UnitPrice)
		items[i] = it
	}

	e.LineItems = items

	return e
}
