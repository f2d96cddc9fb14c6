package view

import (
	"strings"

	"github.com/MrJamesThe3rd/obrafin/internal/masterdata"
)

// The *Record funcs expose the id and display name of master data records.
func projectRecord(p masterdata.Project) (string, string)         { return p.ID, p.Name }
func supplierRecord(s masterdata.Supplier) (string, string)       { return s.ID, s.Name }
func customerRecord(c masterdata.Customer) (string, string)       { return c.ID, c.Name }
func cashAccountRecord(a masterdata.CashAccount) (string, string) { return a.ID, a.Name }
func categoryRecord(c masterdata.RevenueCategory) (string, string) {
	return c.ID, c.Name
}

// nameOf resolves an id for display, falling back to the id itself.
func nameOf[T any](c *masterdata.Collection[T], key func(T) (string, string), id string) string {
	rec, err := c.Get(id)
	if err != nil {
		return id
	}

	_, name := key(rec)

	return name
}

func namesOf[T any](c *masterdata.Collection[T], key func(T) (string, string)) []string {
	items := c.List()

	names := make([]string, len(items))
	for i, it := range items {
		_, names[i] = key(it)
	}

	return names
}

// findOrAdd returns the id of the record named name, creating it when no
// record matches case-insensitively.
func findOrAdd[T any](c *masterdata.Collection[T], key func(T) (string, string), name string, build func(string) T) (string, error) {
	name = strings.TrimSpace(name)

	for _, it := range c.List() {
		if id, n := key(it); strings.EqualFold(n, name) {
			return id, nil
		}
	}

	rec, err := c.Add(build(name))
	if err != nil {
		return "", err
	}

	id, _ := key(rec)

	return id, nil
}
