package report

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
)

// CashFlow lists settlements by date with a running balance. Revenue
// settlements are inflows and expense settlements are outflows.
func (p *Projector) CashFlow(params CashFlowParams) []CashFlowRow {
	settlements := p.ledger.Settlements(ledger.SettlementFilter{CashAccountID: params.CashAccountID})

	slices.SortStableFunc(settlements, func(a, b ledger.Settlement) int {
		return a.SettlementDate.Compare(b.SettlementDate)
	})

	balance := params.OpeningBalance
	rows := []CashFlowRow{}

	for _, st := range settlements {
		if params.From != nil && st.SettlementDate.Before(*params.From) {
			balance = apply(balance, st)
			continue
		}

		if params.To != nil && st.SettlementDate.After(*params.To) {
			break
		}

		row := CashFlowRow{
			Date:         st.SettlementDate,
			SettlementID: st.ID,
			EntryID:      st.EntryID,
			Category:     st.Category,
			Notes:        st.Notes,
			Inflow:       decimal.Zero,
			Outflow:      decimal.Zero,
		}

		if st.Category == ledger.CategoryRevenue {
			row.Inflow = st.Amount
		} else {
			row.Outflow = st.Amount
		}

		balance = apply(balance, st)
		row.Balance = balance
		rows = append(rows, row)
	}

	return rows
}

func apply(balance decimal.Decimal, st ledger.Settlement) decimal.Decimal {
	if st.Category == ledger.CategoryRevenue {
		return balance.Add(st.Amount)
	}

	return balance.Sub(st.Amount)
}
