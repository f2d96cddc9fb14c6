// Package tree implements an in-memory forest of named nodes carrying a
// typed payload. Cost centers and products are both built on it.
package tree

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PathSeparator joins node names in a full path.
const PathSeparator = " / "

var (
	ErrNotFound    = errors.New("node not found")
	ErrDuplicateID = errors.New("duplicate node id")
)

// Node is a read-only snapshot of a tree node and its subtree.
type Node[P any] struct {
	ID       string
	Name     string
	ParentID *string
	Payload  P
	Children []Node[P]
}

// Selectable is a leaf eligible for direct use in a line item.
type Selectable[P any] struct {
	ID      string
	Path    string
	Payload P
}

// Visit describes a node reached during Walk.
type Visit[P any] struct {
	ID          string
	Name        string
	ParentID    *string
	Payload     P
	Depth       int
	Path        string
	HasChildren bool
}

type node[P any] struct {
	id       string
	name     string
	payload  P
	parent   *node[P]
	children []*node[P]
}

// Tree is a forest addressed by node id. Child order is insertion order.
// All methods are safe for concurrent use; every mutation is applied
// atomically under a single write lock.
type Tree[P any] struct {
	mu      sync.RWMutex
	roots   []*node[P]
	index   map[string]*node[P]
	version uint64

	selectable func(P) bool
	collation  language.Tag
	newID      func() string
}

type Option[P any] func(*Tree[P])

// WithSelectable sets the predicate used by ListSelectable. Without it every
// node is selectable.
func WithSelectable[P any](fn func(P) bool) Option[P] {
	return func(t *Tree[P]) {
		t.selectable = fn
	}
}

// WithCollation sets the language whose collation orders ListSelectable.
func WithCollation[P any](tag language.Tag) Option[P] {
	return func(t *Tree[P]) {
		t.collation = tag
	}
}

// WithIDGenerator replaces the uuid generator, mostly for tests.
func WithIDGenerator[P any](fn func() string) Option[P] {
	return func(t *Tree[P]) {
		t.newID = fn
	}
}

func New[P any](opts ...Option[P]) *Tree[P] {
	t := &Tree[P]{
		index:     make(map[string]*node[P]),
		collation: language.BrazilianPortuguese,
		newID:     uuid.NewString,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Insert appends a new node under parentID, or to the roots when parentID is
// nil. An unknown parent yields ErrNotFound and leaves the forest untouched.
func (t *Tree[P]) Insert(name string, payload P, parentID *string) (Node[P], error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var parent *node[P]

	if parentID != nil {
		p, ok := t.index[*parentID]
		if !ok {
			return Node[P]{}, fmt.Errorf("parent %q: %w", *parentID, ErrNotFound)
		}

		parent = p
	}

	id := t.newID()
	if _, exists := t.index[id]; exists {
		return Node[P]{}, fmt.Errorf("%q: %w", id, ErrDuplicateID)
	}

	n := &node[P]{
		id:      id,
		name:    name,
		payload: payload,
		parent:  parent,
	}

	if parent == nil {
		t.roots = append(t.roots, n)
	} else {
		parent.children = append(parent.children, n)
	}

	t.index[id] = n
	t.version++

	return n.snapshot(), nil
}

// Update replaces the name and payload of a node. Parent and children are
// untouched.
func (t *Tree[P]) Update(id, name string, payload P) (Node[P], error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.index[id]
	if !ok {
		return Node[P]{}, fmt.Errorf("%q: %w", id, ErrNotFound)
	}

	n.name = name
	n.payload = payload
	t.version++

	return n.snapshot(), nil
}

// Delete removes a node together with its whole subtree and reports how many
// nodes were removed.
func (t *Tree[P]) Delete(id string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.index[id]
	if !ok {
		return 0, fmt.Errorf("%q: %w", id, ErrNotFound)
	}

	if n.parent == nil {
		t.roots = removeChild(t.roots, n)
	} else {
		n.parent.children = removeChild(n.parent.children, n)
	}

	removed := t.unindex(n)
	n.parent = nil
	t.version++

	return removed, nil
}

func (t *Tree[P]) unindex(n *node[P]) int {
	delete(t.index, n.id)

	count := 1
	for _, c := range n.children {
		count += t.unindex(c)
	}

	return count
}

func removeChild[P any](nodes []*node[P], target *node[P]) []*node[P] {
	return slices.DeleteFunc(nodes, func(n *node[P]) bool { return n == target })
}

// Get returns a snapshot of the node and its subtree.
func (t *Tree[P]) Get(id string) (Node[P], error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, ok := t.index[id]
	if !ok {
		return Node[P]{}, fmt.Errorf("%q: %w", id, ErrNotFound)
	}

	return n.snapshot(), nil
}

// PathTo returns the names from the root down to the node joined by
// PathSeparator. Empty and unknown ids yield "".
func (t *Tree[P]) PathTo(id string) string {
	if id == "" {
		return ""
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	n, ok := t.index[id]
	if !ok {
		return ""
	}

	return n.path()
}

// ListSelectable walks the forest depth-first and returns the selectable
// nodes ordered by full path.
func (t *Tree[P]) ListSelectable() []Selectable[P] {
	t.mu.RLock()

	var out []Selectable[P]

	var collect func(nodes []*node[P], prefix []string)
	collect = func(nodes []*node[P], prefix []string) {
		for _, n := range nodes {
			parts := append(slices.Clip(prefix), n.name)
			if t.selectable == nil || t.selectable(n.payload) {
				out = append(out, Selectable[P]{
					ID:      n.id,
					Path:    strings.Join(parts, PathSeparator),
					Payload: n.payload,
				})
			}

			collect(n.children, parts)
		}
	}
	collect(t.roots, nil)

	t.mu.RUnlock()

	// Collators keep internal buffers, so each call gets its own.
	col := collate.New(t.collation)
	slices.SortStableFunc(out, func(a, b Selectable[P]) int {
		return col.CompareString(a.Path, b.Path)
	})

	return out
}

// Roots returns snapshots of every root with its subtree.
func (t *Tree[P]) Roots() []Node[P] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Node[P], len(t.roots))
	for i, n := range t.roots {
		out[i] = n.snapshot()
	}

	return out
}

// Walk visits every node depth-first, children in order.
func (t *Tree[P]) Walk(fn func(Visit[P])) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var walk func(nodes []*node[P], depth int, prefix string)
	walk = func(nodes []*node[P], depth int, prefix string) {
		for _, n := range nodes {
			path := n.name
			if prefix != "" {
				path = prefix + PathSeparator + n.name
			}

			fn(Visit[P]{
				ID:          n.id,
				Name:        n.name,
				ParentID:    n.parentID(),
				Payload:     n.payload,
				Depth:       depth,
				Path:        path,
				HasChildren: len(n.children) > 0,
			})

			walk(n.children, depth+1, path)
		}
	}
	walk(t.roots, 0, "")
}

// Resolve follows names from the roots downwards, taking the first child
// with a matching name at every level.
func (t *Tree[P]) Resolve(names []string) (Node[P], error) {
	if len(names) == 0 {
		return Node[P]{}, fmt.Errorf("empty path: %w", ErrNotFound)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	level := t.roots

	var found *node[P]

	for _, name := range names {
		found = nil

		for _, n := range level {
			if n.name == name {
				found = n
				break
			}
		}

		if found == nil {
			return Node[P]{}, fmt.Errorf("%q: %w", strings.Join(names, PathSeparator), ErrNotFound)
		}

		level = found.children
	}

	return found.snapshot(), nil
}

// Len returns the number of nodes in the forest.
func (t *Tree[P]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.index)
}

// Version changes after every successful mutation.
func (t *Tree[P]) Version() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.version
}

func (n *node[P]) parentID() *string {
	if n.parent == nil {
		return nil
	}

	id := n.parent.id

	return &id
}

func (n *node[P]) path() string {
	var names []string
	for cur := n; cur != nil; cur = cur.parent {
		names = append(names, cur.name)
	}

	slices.Reverse(names)

	return strings.Join(names, PathSeparator)
}

func (n *node[P]) snapshot() Node[P] {
	out := Node[P]{
		ID:       n.id,
		Name:     n.name,
		ParentID: n.parentID(),
		Payload:  n.payload,
		Children: make([]Node[P], len(n.children)),
	}

	for i, c := range n.children {
		out.Children[i] = c.snapshot()
	}

	return out
}
