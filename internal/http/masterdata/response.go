package masterdata

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/obrafin/internal/http/httpx"
	"github.com/MrJamesThe3rd/obrafin/internal/masterdata"
)

type projectDTO struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address,omitempty"`
	StartDate httpx.Date `json:"start_date"`
}

// partyDTO is shared by suppliers and customers.
type partyDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

type cashAccountDTO struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Bank          string           `json:"bank,omitempty"`
	Agency        string           `json:"agency,omitempty"`
	AccountNumber string           `json:"account_number,omitempty"`
	Balance       *decimal.Decimal `json:"balance,omitempty"`
}

type revenueCategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (d projectDTO) record(id string) masterdata.Project {
	return masterdata.Project{
		ID:        id,
		Name:      strings.TrimSpace(d.Name),
		Address:   strings.TrimSpace(d.Address),
		StartDate: time.Time(d.StartDate),
	}
}

func toProjectDTO(p masterdata.Project) projectDTO {
	return projectDTO{ID: p.ID, Name: p.Name, Address: p.Address, StartDate: httpx.Date(p.StartDate)}
}

func (d partyDTO) supplier(id string) masterdata.Supplier {
	return masterdata.Supplier{
		ID:            id,
		Name:          strings.TrimSpace(d.Name),
		ContactPerson: strings.TrimSpace(d.ContactPerson),
		Email:         strings.TrimSpace(d.Email),
		Phone:         strings.TrimSpace(d.Phone),
	}
}

func (d partyDTO) customer(id string) masterdata.Customer {
	return masterdata.Customer(d.supplier(id))
}

func toSupplierDTO(s masterdata.Supplier) partyDTO {
	return partyDTO{ID: s.ID, Name: s.Name, ContactPerson: s.ContactPerson, Email: s.Email, Phone: s.Phone}
}

func toCustomerDTO(c masterdata.Customer) partyDTO {
	return toSupplierDTO(masterdata.Supplier(c))
}

func (d cashAccountDTO) record(id string) masterdata.CashAccount {
	return masterdata.CashAccount{
		ID:            id,
		Name:          strings.TrimSpace(d.Name),
		Bank:          strings.TrimSpace(d.Bank),
		Agency:        strings.TrimSpace(d.Agency),
		AccountNumber: strings.TrimSpace(d.AccountNumber),
		Balance:       d.Balance,
	}
}

func toCashAccountDTO(a masterdata.CashAccount) cashAccountDTO {
	return cashAccountDTO{
		ID:            a.ID,
		Name:          a.Name,
		Bank:          a.Bank,
		Agency:        a.Agency,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
	}
}

func (d revenueCategoryDTO) record(id string) masterdata.RevenueCategory {
	return masterdata.RevenueCategory{ID: id, Name: strings.TrimSpace(d.Name)}
}

func toRevenueCategoryDTO(c masterdata.RevenueCategory) revenueCategoryDTO {
	return revenueCategoryDTO{ID: c.ID, Name: c.Name}
}
