// Package product manages the product catalog. Nodes without a unit of
// measure are categories; nodes with one are products that can be bought.
package product

import (
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/obrafin/internal/tree"
	"github.com/MrJamesThe3rd/obrafin/internal/validation"
)

// Payload carries the unit of measure (m³, sc, un...). Empty means category.
type Payload struct {
	Unit string
}

func (p Payload) IsCategory() bool {
	return p.Unit == ""
}

type (
	Node  = tree.Node[Payload]
	Visit = tree.Visit[Payload]
)

// Option is a product that can be picked for a line item.
type Option struct {
	ID   string
	Path string
	Unit string
}

type CreateParams struct {
	Name     string `validate:"notblank"`
	Unit     string
	ParentID *string
}

type UpdateParams struct {
	ID   string `validate:"required"`
	Name string `validate:"notblank"`
	Unit string
}

type Service struct {
	tree *tree.Tree[Payload]
}

func NewService(opts ...tree.Option[Payload]) *Service {
	opts = append([]tree.Option[Payload]{
		tree.WithSelectable(func(p Payload) bool { return !p.IsCategory() }),
	}, opts...)

	return &Service{tree: tree.New(opts...)}
}

// Add creates a product (non-empty unit) or a category (empty unit).
func (s *Service) Add(name, unit string, parentID *string) (Node, error) {
	return s.Create(CreateParams{Name: name, Unit: unit, ParentID: parentID})
}

func (s *Service) Create(params CreateParams) (Node, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Unit = strings.TrimSpace(params.Unit)

	if err := validation.Struct(params); err != nil {
		return Node{}, err
	}

	n, err := s.tree.Insert(params.Name, Payload{Unit: params.Unit}, params.ParentID)
	if err != nil {
		return Node{}, fmt.Errorf("adding product: %w", err)
	}

	return n, nil
}

func (s *Service) Update(params UpdateParams) (Node, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Unit = strings.TrimSpace(params.Unit)

	if err := validation.Struct(params); err != nil {
		return Node{}, err
	}

	n, err := s.tree.Update(params.ID, params.Name, Payload{Unit: params.Unit})
	if err != nil {
		return Node{}, fmt.Errorf("updating product: %w", err)
	}

	return n, nil
}

// Delete removes the product or category together with everything below it.
func (s *Service) Delete(id string) (int, error) {
	removed, err := s.tree.Delete(id)
	if err != nil {
		return 0, fmt.Errorf("deleting product: %w", err)
	}

	return removed, nil
}

func (s *Service) Get(id string) (Node, error) {
	return s.tree.Get(id)
}

func (s *Service) Path(id string) string {
	return s.tree.PathTo(id)
}

func (s *Service) Roots() []Node {
	return s.tree.Roots()
}

// Selectable lists products with a unit, ordered by full path.
func (s *Service) Selectable() []Option {
	items := s.tree.ListSelectable()

	out := make([]Option, len(items))
	for i, it := range items {
		out[i] = Option{ID: it.ID, Path: it.Path, Unit: it.Payload.Unit}
	}

	return out
}

func (s *Service) Resolve(names []string) (Node, error) {
	return s.tree.Resolve(names)
}

func (s *Service) Walk(fn func(Visit)) {
	s.tree.Walk(fn)
}

func (s *Service) Len() int {
	return s.tree.Len()
}

func (s *Service) Version() uint64 {
	return s.tree.Version()
}
