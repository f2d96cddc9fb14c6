package masterdata

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/obrafin/internal/validation"
)

var ErrNotFound = errors.New("record not found")

// Collection keeps records of one kind in insertion order.
type Collection[T any] struct {
	mu    sync.RWMutex
	kind  string
	items []T
	id    func(*T) *string
	name  func(*T) *string
	newID func() string
}

func newCollection[T any](kind string, id, name func(*T) *string, newID func() string) *Collection[T] {
	return &Collection[T]{kind: kind, id: id, name: name, newID: newID}
}

// Add validates rec, assigns it a fresh id and stores it. The name is stored
// trimmed.
func (c *Collection[T]) Add(rec T) (T, error) {
	*c.id(&rec) = c.newID()
	c.trimName(&rec)

	if err := validation.Struct(rec); err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, rec)

	return rec, nil
}

// Update replaces the record with the same id.
func (c *Collection[T]) Update(rec T) (T, error) {
	var zero T

	c.trimName(&rec)

	if err := validation.Struct(rec); err != nil {
		return zero, err
	}

	id := *c.id(&rec)

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return zero, fmt.Errorf("%s %q: %w", c.kind, id, ErrNotFound)
	}

	c.items[i] = rec

	return rec, nil
}

func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s %q: %w", c.kind, id, ErrNotFound)
	}

	c.items = slices.Delete(c.items, i, i+1)

	return nil
}

func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", c.kind, id, ErrNotFound)
	}

	return c.items[i], nil
}

func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.items)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

func (c *Collection[T]) trimName(rec *T) {
	n := c.name(rec)
	*n = strings.TrimSpace(*n)
}

func (c *Collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(rec T) bool {
		return *c.id(&rec) == id
	})
}

type Option func(*options)

type options struct {
	newID func() string
}

func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		o.newID = fn
	}
}

func defaultOptions(opts []Option) options {
	o := options{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
