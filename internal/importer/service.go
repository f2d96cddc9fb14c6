package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
	"github.com/MrJamesThe3rd/obrafin/internal/importer/sheet"
	"github.com/MrJamesThe3rd/obrafin/internal/ledger"
	"github.com/MrJamesThe3rd/obrafin/internal/product"
	"github.com/MrJamesThe3rd/obrafin/internal/tree"
)

type Service struct {
	parser      Parser
	products    *product.Service
	costCenters *costcenter.Service
}

func NewService(products *product.Service, costCenters *costcenter.Service) *Service {
	return &Service{
		parser:      sheet.NewParser(),
		products:    products,
		costCenters: costCenters,
	}
}

// Import parses r and applies it. Catalog sheets create whatever nodes are
// missing; line item sheets are only resolved, never written.
func (s *Service) Import(r io.Reader) (*Result, error) {
	sh, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	res := &Result{Kind: sh.Kind, Charset: sh.Charset}

	switch sh.Kind {
	case sheet.KindProducts:
		err = s.importProducts(sh.Paths, res)
	case sheet.KindCostCenters:
		err = s.importCostCenters(sh.Paths, res)
	case sheet.KindLineItems:
		res.Items, err = s.resolveItems(sh.Items)
	}

	if err != nil {
		return nil, err
	}

	return res, nil
}

// ImportFile opens path and imports it.
func (s *Service) ImportFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return s.Import(f)
}

func (s *Service) importProducts(rows []sheet.PathRow, res *Result) error {
	for _, row := range rows {
		created, err := ensurePath(row.Path,
			s.products.Resolve,
			func(name string, parent *string, leaf bool) (string, error) {
				unit := ""
				if leaf {
					unit = row.Unit
				}

				n, err := s.products.Add(name, unit, parent)

				return n.ID, err
			})
		if err != nil {
			return fmt.Errorf("line %d: %w", row.Line, err)
		}

		res.count(created)
	}

	return nil
}

func (s *Service) importCostCenters(rows []sheet.PathRow, res *Result) error {
	for _, row := range rows {
		created, err := ensurePath(row.Path,
			s.costCenters.Resolve,
			func(name string, parent *string, leaf bool) (string, error) {
				n, err := s.costCenters.Create(costcenter.CreateParams{
					Name:       name,
					ParentID:   parent,
					Launchable: leaf && row.Launchable,
				})

				return n.ID, err
			})
		if err != nil {
			return fmt.Errorf("line %d: %w", row.Line, err)
		}

		res.count(created)
	}

	return nil
}

// ensurePath resolves every prefix of path, adding the missing ones. It
// reports whether the last node had to be created.
func ensurePath[P any](
	path []string,
	resolve func([]string) (tree.Node[P], error),
	add func(name string, parent *string, leaf bool) (string, error),
) (bool, error) {
	var parent *string

	created := false

	for i := range path {
		n, err := resolve(path[:i+1])
		if err == nil {
			parent = &n.ID
			created = false

			continue
		}

		if !errors.Is(err, tree.ErrNotFound) {
			return false, err
		}

		id, err := add(path[i], parent, i == len(path)-1)
		if err != nil {
			return false, err
		}

		parent = &id
		created = true
	}

	return created, nil
}

func (s *Service) resolveItems(rows []sheet.ItemRow) ([]ledger.LineItemParams, error) {
	items := make([]ledger.LineItemParams, 0, len(rows))

	for _, row := range rows {
		p, err := s.products.Resolve(row.Product)
		if err != nil {
			return nil, fmt.Errorf("line %d: product %q: %w", row.Line, joinPath(row.Product), ErrUnresolved)
		}

		if p.Payload.IsCategory() {
			return nil, fmt.Errorf("line %d: %q is a category: %w", row.Line, joinPath(row.Product), ErrCategory)
		}

		cc, err := s.costCenters.Resolve(row.CostCenter)
		if err != nil {
			return nil, fmt.Errorf("line %d: cost center %q: %w", row.Line, joinPath(row.CostCenter), ErrUnresolved)
		}

		desc := row.Description
		if desc == "" {
			desc = p.Name
		}

		items = append(items, ledger.LineItemParams{
			Description:  desc,
			CostCenterID: cc.ID,
			Amount:       row.Quantity.Mul(row.UnitPrice),
			ProductID:    &p.ID,
			Quantity:     new(row.Quantity),
			UnitPrice:    new(row.UnitPrice),
		})
	}

	return items, nil
}

func joinPath(parts []string) string {
	return strings.Join(parts, tree.PathSeparator)
}
