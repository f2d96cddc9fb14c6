// Package masterdata holds the reference records entries point at: projects,
// suppliers, customers, cash accounts and revenue categories.
package masterdata

import (
	"time"

	"github.com/shopspring/decimal"
)

type Project struct {
	ID        string
	Name      string `validate:"notblank"`
	Address   string
	StartDate time.Time
}

type Supplier struct {
	ID            string
	Name          string `validate:"notblank"`
	ContactPerson string
	Email         string `validate:"omitempty,email"`
	Phone         string
}

type Customer struct {
	ID            string
	Name          string `validate:"notblank"`
	ContactPerson string
	Email         string `validate:"omitempty,email"`
	Phone         string
}

type CashAccount struct {
	ID            string
	Name          string `validate:"notblank"`
	Bank          string
	Agency        string
	AccountNumber string
	Balance       *decimal.Decimal
}

type RevenueCategory struct {
	ID   string
	Name string `validate:"notblank"`
}

// Directory groups every master data collection.
type Directory struct {
	Projects          *Collection[Project]
	Suppliers         *Collection[Supplier]
	Customers         *Collection[Customer]
	CashAccounts      *Collection[CashAccount]
	RevenueCategories *Collection[RevenueCategory]
}

func NewDirectory(opts ...Option) *Directory {
	o := defaultOptions(opts)

	return &Directory{
		Projects: newCollection("project", func(p *Project) *string { return &p.ID },
			func(p *Project) *string { return &p.Name }, o.newID),
		Suppliers: newCollection("supplier", func(s *Supplier) *string { return &s.ID },
			func(s *Supplier) *string { return &s.Name }, o.newID),
		Customers: newCollection("customer", func(c *Customer) *string { return &c.ID },
			func(c *Customer) *string { return &c.Name }, o.newID),
		CashAccounts: newCollection("cash account", func(a *CashAccount) *string { return &a.ID },
			func(a *CashAccount) *string { return &a.Name }, o.newID),
		RevenueCategories: newCollection("revenue category", func(r *RevenueCategory) *string { return &r.ID },
			func(r *RevenueCategory) *string { return &r.Name }, o.newID),
	}
}

// SupplierName resolves a supplier id to its name; ok is false when unknown.
func (d *Directory) SupplierName(id string) (string, bool) {
	s, err := d.Suppliers.Get(id)
	if err != nil {
		return "", false
	}

	return s.Name, true
}
