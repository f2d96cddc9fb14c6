// Package costcenter manages the hierarchy of cost centers that expense line
// items are booked against.
package costcenter

import (
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/obrafin/internal/tree"
	"github.com/MrJamesThe3rd/obrafin/internal/validation"
)

// Payload marks whether a cost center accepts direct postings.
type Payload struct {
	Launchable bool
}

type (
	Node       = tree.Node[Payload]
	Selectable = tree.Selectable[Payload]
	Visit      = tree.Visit[Payload]
)

type CreateParams struct {
	Name       string `validate:"notblank"`
	ParentID   *string
	Launchable bool
}

type UpdateParams struct {
	ID         string `validate:"required"`
	Name       string `validate:"notblank"`
	Launchable bool
}

type Service struct {
	tree *tree.Tree[Payload]
}

func NewService(opts ...tree.Option[Payload]) *Service {
	opts = append([]tree.Option[Payload]{
		tree.WithSelectable(func(p Payload) bool { return p.Launchable }),
	}, opts...)

	return &Service{tree: tree.New(opts...)}
}

// Add creates a launchable cost center under parentID (nil for a root).
func (s *Service) Add(name string, parentID *string) (Node, error) {
	return s.Create(CreateParams{Name: name, ParentID: parentID, Launchable: true})
}

func (s *Service) Create(params CreateParams) (Node, error) {
	params.Name = strings.TrimSpace(params.Name)
	if err := validation.Struct(params); err != nil {
		return Node{}, err
	}

	n, err := s.tree.Insert(params.Name, Payload{Launchable: params.Launchable}, params.ParentID)
	if err != nil {
		return Node{}, fmt.Errorf("adding cost center: %w", err)
	}

	return n, nil
}

func (s *Service) Update(params UpdateParams) (Node, error) {
	params.Name = strings.TrimSpace(params.Name)
	if err := validation.Struct(params); err != nil {
		return Node{}, err
	}

	n, err := s.tree.Update(params.ID, params.Name, Payload{Launchable: params.Launchable})
	if err != nil {
		return Node{}, fmt.Errorf("updating cost center: %w", err)
	}

	return n, nil
}

// Delete removes the cost center and all of its descendants.
func (s *Service) Delete(id string) (int, error) {
	removed, err := s.tree.Delete(id)
	if err != nil {
		return 0, fmt.Errorf("deleting cost center: %w", err)
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

// Launchable lists the cost centers that accept postings, ordered by path.
func (s *Service) Launchable() []Selectable {
	return s.tree.ListSelectable()
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
