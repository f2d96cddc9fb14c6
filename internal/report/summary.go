package report

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/tree"
)

// CostCenterSummary rolls expense line items up the cost center forest.
// Line items booked on unknown cost centers are ignored.
func (p *Projector) CostCenterSummary(filter ledger.Filter) []SummaryNode {
	own := make(map[string]decimal.Decimal)

	for _, e := range p.ledger.Expenses(filter) {
		for _, li := range e.LineItems {
			own[li.CostCenterID] = own[li.CostCenterID].Add(li.Amount)
		}
	}

	roots := p.costCenters.Roots()
	out := make([]SummaryNode, len(roots))

	for i, r := range roots {
		out[i] = summarize(r, "", own)
	}

	return out
}

func summarize(n costcenter.Node, prefix string, own map[string]decimal.Decimal) SummaryNode {
	path := n.Name
	if prefix != "" {
		path = prefix + tree.PathSeparator + n.Name
	}

	s := SummaryNode{
		ID:         n.ID,
		Name:       n.Name,
		Path:       path,
		Launchable: n.Payload.Launchable,
		Own:        own[n.ID],
		Children:   make([]SummaryNode, len(n.Children)),
	}
	s.Total = s.Own

	for i, c := range n.Children {
		s.Children[i] = summarize(c, path, own)
		s.Total = s.Total.Add(s.Children[i].Total)
	}

	return s
}

// Flatten lists the summary depth-first, parents before children.
func Flatten(nodes []SummaryNode) []SummaryNode {
	var out []SummaryNode

	var walk func([]SummaryNode)

	walk = func(ns []SummaryNode) {
		for _, n := range ns {
			flat := n
			flat.Children = nil
			out = append(out, flat)
			walk(n.Children)
		}
	}

	walk(nodes)

	return out
}
