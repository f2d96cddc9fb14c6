package ledger

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/obrafin/internal/validation"
)

//go:generate mockgen -source=service.go -destination=recorder_mock.go -package=ledger
type Recorder interface {
	EntryCreated(category Category)
	SettlementApplied(category Category, status Status)
}

type nopRecorder struct{}

func (nopRecorder) EntryCreated(Category)              {}
func (nopRecorder) SettlementApplied(Category, Status) {}

type Option func(*Service)

func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// Service owns the expense and revenue ledgers and the settlement log.
type Service struct {
	mu          sync.RWMutex
	expenses    []*Expense
	revenues    []*Revenue
	expenseIdx  map[string]*Expense
	revenueIdx  map[string]*Revenue
	settlements []Settlement

	newID    func() string
	recorder Recorder
}

func NewService(opts ...Option) *Service {
	s := &Service{
		expenseIdx: make(map[string]*Expense),
		revenueIdx: make(map[string]*Revenue),
		newID:      uuid.NewString,
		recorder:   nopRecorder{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) CreateExpense(params ExpenseParams) (Expense, error) {
	if err := validation.Struct(params); err != nil {
		return Expense{}, err
	}

	s.mu.Lock()

	e := &Expense{
		Entry:            s.newEntry(CategoryExpense, params.EntryParams),
		SupplierID:       strings.TrimSpace(params.SupplierID),
		DisbursementDate: params.DisbursementDate,
		TransactionType:  params.TransactionType,
	}
	s.expenses = append(s.expenses, e)
	s.expenseIdx[e.ID] = e
	out := e.copy()

	s.mu.Unlock()

	s.recorder.EntryCreated(CategoryExpense)

	return out, nil
}

func (s *Service) CreateRevenue(params RevenueParams) (Revenue, error) {
	if err := validation.Struct(params); err != nil {
		return Revenue{}, err
	}

	s.mu.Lock()

	r := &Revenue{
		Entry:       s.newEntry(CategoryRevenue, params.EntryParams),
		CustomerID:  strings.TrimSpace(params.CustomerID),
		ReceiptDate: params.ReceiptDate,
	}
	s.revenues = append(s.revenues, r)
	s.revenueIdx[r.ID] = r
	out := r.copy()

	s.mu.Unlock()

	s.recorder.EntryCreated(CategoryRevenue)

	return out, nil
}

// UpdateExpense replaces the editable fields of an existing expense. The
// settled amount stays as recorded by settlements and the status is derived
// again from it.
func (s *Service) UpdateExpense(e Expense) (Expense, error) {
	params := ExpenseParams{
		EntryParams:      entryParams(e.Entry),
		SupplierID:       e.SupplierID,
		DisbursementDate: e.DisbursementDate,
		TransactionType:  e.TransactionType,
	}
	if err := validation.Struct(params); err != nil {
		return Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.expenseIdx[e.ID]
	if !ok {
		return Expense{}, fmt.Errorf("updating expense %q: %w", e.ID, ErrNotFound)
	}

	s.applyEntry(&cur.Entry, params.EntryParams, true)
	cur.SupplierID = strings.TrimSpace(params.SupplierID)
	cur.DisbursementDate = params.DisbursementDate
	cur.TransactionType = params.TransactionType

	return cur.copy(), nil
}

func (s *Service) UpdateRevenue(r Revenue) (Revenue, error) {
	params := RevenueParams{
		EntryParams: entryParams(r.Entry),
		CustomerID:  r.CustomerID,
		ReceiptDate: r.ReceiptDate,
	}
	if err := validation.Struct(params); err != nil {
		return Revenue{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.revenueIdx[r.ID]
	if !ok {
		return Revenue{}, fmt.Errorf("updating revenue %q: %w", r.ID, ErrNotFound)
	}

	s.applyEntry(&cur.Entry, params.EntryParams, true)
	cur.CustomerID = strings.TrimSpace(params.CustomerID)
	cur.ReceiptDate = params.ReceiptDate

	return cur.copy(), nil
}

// ApplySettlement records a payment (expense) or receipt (revenue) and rolls
// it into the target entry. Settling beyond the total is accepted.
func (s *Service) ApplySettlement(params SettlementParams) (Settlement, error) {
	if err := validation.Struct(params); err != nil {
		return Settlement{}, err
	}

	s.mu.Lock()

	var entry *Entry

	switch params.Category {
	case CategoryExpense:
		if e, ok := s.expenseIdx[params.EntryID]; ok {
			entry = &e.Entry
		}
	case CategoryRevenue:
		if r, ok := s.revenueIdx[params.EntryID]; ok {
			entry = &r.Entry
		}
	}

	if entry == nil {
		s.mu.Unlock()
		return Settlement{}, fmt.Errorf("settling %s %q: %w", params.Category, params.EntryID, ErrNotFound)
	}

	st := Settlement{
		ID:             s.newID(),
		EntryID:        entry.ID,
		Category:       params.Category,
		SettlementDate: params.SettlementDate,
		Amount:         params.Amount,
		CashAccountID:  strings.TrimSpace(params.CashAccountID),
		Notes:          strings.TrimSpace(params.Notes),
	}
	s.settlements = append(s.settlements, st)

	entry.SettledAmount = entry.SettledAmount.Add(st.Amount)
	entry.recompute()
	status := entry.Status

	s.mu.Unlock()

	s.recorder.SettlementApplied(params.Category, status)

	return st, nil
}

func (s *Service) GetExpense(id string) (Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.expenseIdx[id]
	if !ok {
		return Expense{}, fmt.Errorf("expense %q: %w", id, ErrNotFound)
	}

	return e.copy(), nil
}

func (s *Service) GetRevenue(id string) (Revenue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.revenueIdx[id]
	if !ok {
		return Revenue{}, fmt.Errorf("revenue %q: %w", id, ErrNotFound)
	}

	return r.copy(), nil
}

// Expenses lists expenses in creation order.
func (s *Service) Expenses(filter Filter) []Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Expense

	for _, e := range s.expenses {
		if filter.matches(&e.Entry) {
			out = append(out, e.copy())
		}
	}

	return out
}

// Revenues lists revenues in creation order.
func (s *Service) Revenues(filter Filter) []Revenue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Revenue

	for _, r := range s.revenues {
		if filter.matches(&r.Entry) {
			out = append(out, r.copy())
		}
	}

	return out
}

// Settlements lists settlements in the order they were applied.
func (s *Service) Settlements(filter SettlementFilter) []Settlement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Settlement, 0, len(s.settlements))

	for _, st := range s.settlements {
		if filter.matches(st) {
			out = append(out, st)
		}
	}

	return slices.Clip(out)
}

func (s *Service) newEntry(category Category, params EntryParams) Entry {
	e := Entry{
		ID:            s.newID(),
		Category:      category,
		SettledAmount: decimal.Zero,
	}

	s.applyEntry(&e, params, false)

	return e
}

// applyEntry copies the editable fields onto e and recomputes the derived
// ones. With keepIDs a line item keeps its id only when it names one of e's
// current line items not already claimed earlier in params; every other line
// item gets a fresh id.
func (s *Service) applyEntry(e *Entry, params EntryParams, keepIDs bool) {
	owned := make(map[string]bool, len(e.LineItems))
	if keepIDs {
		for _, it := range e.LineItems {
			owned[it.ID] = true
		}
	}

	e.EntryType = params.EntryType
	e.InvoiceNumber = strings.TrimSpace(params.InvoiceNumber)
	e.ProjectID = strings.TrimSpace(params.ProjectID)
	e.IssueDate = params.IssueDate
	e.Description = strings.TrimSpace(params.Description)
	e.CashAccountID = strings.TrimSpace(params.CashAccountID)

	items := make([]LineItem, len(params.LineItems))
	for i, p := range params.LineItems {
		id := p.ID
		if owned[id] {
			delete(owned, id)
		} else {
			id = s.newID()
		}

		items[i] = LineItem{
			ID:           id,
			Description:  strings.TrimSpace(p.Description),
			CostCenterID: strings.TrimSpace(p.CostCenterID),
			Amount:       lineAmount(e.Category, p),
			ProductID:    cloneString(p.ProductID),
			Quantity:     cloneDecimal(p.Quantity),
			UnitPrice:    cloneDecimal(p.UnitPrice),
		}
	}

	e.LineItems = items
	e.recompute()
}

func entryParams(e Entry) EntryParams {
	items := make([]LineItemParams, len(e.LineItems))
	for i, it := range e.LineItems {
		items[i] = LineItemParams{
			ID:           it.ID,
			Description:  it.Description,
			CostCenterID: it.CostCenterID,
			Amount:       it.Amount,
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
		}
	}

	return EntryParams{
		EntryType:     e.EntryType,
		InvoiceNumber: e.InvoiceNumber,
		ProjectID:     e.ProjectID,
		IssueDate:     e.IssueDate,
		Description:   e.Description,
		CashAccountID: e.CashAccountID,
		LineItems:     items,
	}
}

func (e *Expense) copy() Expense {
	out := *e
	out.Entry = e.Entry.clone()

	return out
}

func (r *Revenue) copy() Revenue {
	out := *r
	out.Entry = r.Entry.clone()

	return out
}
