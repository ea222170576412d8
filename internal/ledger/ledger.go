// Package ledger owns the in-memory expense and category collections and
// keeps them durable through a kv.Store. The full collection is the unit of
// persistence: every mutation rewrites the whole stored blob, which is fine
// at personal-ledger volumes.
//
// The in-memory state is authoritative for the session. A failed store write
// leaves memory ahead of the store; the error is reported but the mutation is
// not rolled back, and the next successful write heals the gap.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"kharj/internal/core"
	"kharj/internal/events"
	"kharj/internal/kv"
)

// Store keys. Fixed by the storage schema; data written by earlier versions
// of the app lives under these names.
const (
	keyExpenses   = "expenses"
	keyCategories = "categories"
)

type Ledger struct {
	mu         sync.Mutex
	store      kv.Store
	events     *events.Publisher
	expenses   []core.Expense
	categories []core.Category
}

type Option func(*Ledger)

// WithEvents attaches an AMQP publisher announcing mutations. Publishing is
// best-effort and never fails a mutation.
func WithEvents(p *events.Publisher) Option {
	return func(l *Ledger) { l.events = p }
}

// Open reads both collections from the store and returns a ready Ledger.
// Missing keys yield an empty expense list and the built-in default
// categories. Read failures and corrupt blobs degrade to the same defaults;
// only the configuration of the ledger itself can fail here.
func Open(ctx context.Context, store kv.Store, opts ...Option) (*Ledger, error) {
	if store == nil {
		return nil, fmt.Errorf("open ledger: nil store")
	}

	l := &Ledger{store: store}
	for _, opt := range opts {
		opt(l)
	}

	l.expenses = loadExpenses(ctx, store)
	l.categories = loadCategories(ctx, store)

	slog.InfoContext(ctx, "Ledger opened",
		"expenses", len(l.expenses),
		"categories", len(l.categories))

	return l, nil
}

func loadExpenses(ctx context.Context, store kv.Store) []core.Expense {
	blob, err := store.Get(ctx, keyExpenses)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		slog.WarnContext(ctx, "Failed to load expenses, starting empty", "error", err)
		return nil
	}

	// Decode record by record so one corrupt entry doesn't take the rest
	// down with it.
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		slog.WarnContext(ctx, "Stored expenses are not a JSON array, starting empty", "error", err)
		return nil
	}

	expenses := make([]core.Expense, 0, len(raw))
	dropped := 0
	for _, r := range raw {
		var e core.Expense
		if err := json.Unmarshal(r, &e); err != nil || !e.Valid() {
			dropped++
			continue
		}
		expenses = append(expenses, e)
	}
	if dropped > 0 {
		slog.WarnContext(ctx, "Dropped invalid stored expenses", "dropped", dropped, "kept", len(expenses))
	}
	return expenses
}

func loadCategories(ctx context.Context, store kv.Store) []core.Category {
	blob, err := store.Get(ctx, keyCategories)
	if errors.Is(err, kv.ErrNotFound) {
		return defaultCategories()
	}
	if err != nil {
		slog.WarnContext(ctx, "Failed to load categories, using defaults", "error", err)
		return defaultCategories()
	}

	var categories []core.Category
	if err := json.Unmarshal([]byte(blob), &categories); err != nil {
		slog.WarnContext(ctx, "Stored categories are corrupt, using defaults", "error", err)
		return defaultCategories()
	}
	return categories
}

// Expenses returns a copy of the current expense list, newest first.
func (l *Ledger) Expenses() []core.Expense {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Expense(nil), l.expenses...)
}

// Categories returns a copy of the current category list.
func (l *Ledger) Categories() []core.Category {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Category(nil), l.categories...)
}

// AddCategory appends a category derived from label and persists the list.
// Duplicate derived values are allowed.
func (l *Ledger) AddCategory(ctx context.Context, label string) (core.Category, error) {
	cat, err := core.NewCategory(label)
	if err != nil {
		return core.Category{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.categories = append(l.categories, cat)

	if err := l.persistCategories(ctx); err != nil {
		return cat, err
	}
	return cat, nil
}

// SaveExpense validates the draft and either creates a new expense (prepended,
// newest first) or, when editingID is set, replaces the record with that id in
// place while preserving it. Returns the stored expense.
func (l *Ledger) SaveExpense(ctx context.Context, draft core.Draft, editingID string) (core.Expense, error) {
	if strings.TrimSpace(draft.Amount) == "" || draft.Category == "" || draft.Date == "" {
		return core.Expense{}, core.ErrMissingFields
	}

	amount, err := core.ParseAmount(draft.Amount)
	if err != nil {
		return core.Expense{}, err
	}

	expense := core.Expense{
		ID:          editingID,
		Amount:      amount,
		Description: draft.Description,
		Category:    draft.Category,
		Date:        draft.Date,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if editingID != "" {
		replaced := false
		for i := range l.expenses {
			if l.expenses[i].ID == editingID {
				l.expenses[i] = expense
				replaced = true
				break
			}
		}
		if !replaced {
			return core.Expense{}, core.ErrExpenseNotFound
		}
	} else {
		expense.ID = core.NewExpenseID()
		l.expenses = append([]core.Expense{expense}, l.expenses...)
	}

	if err := l.persistExpenses(ctx); err != nil {
		return expense, err
	}

	l.announce(ctx, events.ActionSaved, expense.ID)
	return expense, nil
}

// DeleteExpense removes the expense with the given id and persists the rest.
// A missing id is a no-op, not an error.
func (l *Ledger) DeleteExpense(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.expenses[:0:0]
	found := false
	for _, e := range l.expenses {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return nil
	}
	l.expenses = kept

	if err := l.persistExpenses(ctx); err != nil {
		return err
	}

	l.announce(ctx, events.ActionDeleted, id)
	return nil
}

// Filter returns the expenses matching the criteria.
func (l *Ledger) Filter(criteria core.Criteria) []core.Expense {
	return core.Filter(l.Expenses(), criteria)
}

// Total sums the expenses matching the criteria.
func (l *Ledger) Total(criteria core.Criteria) float64 {
	return core.Total(l.Filter(criteria))
}

func (l *Ledger) persistExpenses(ctx context.Context) error {
	blob, err := json.Marshal(l.expenses)
	if err != nil {
		return fmt.Errorf("marshal expenses: %w", err)
	}
	if err := l.store.Set(ctx, keyExpenses, string(blob)); err != nil {
		slog.ErrorContext(ctx, "Failed to persist expenses", "error", err, "count", len(l.expenses))
		return fmt.Errorf("persist expenses: %w", err)
	}
	return nil
}

func (l *Ledger) persistCategories(ctx context.Context) error {
	blob, err := json.Marshal(l.categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}
	if err := l.store.Set(ctx, keyCategories, string(blob)); err != nil {
		slog.ErrorContext(ctx, "Failed to persist categories", "error", err, "count", len(l.categories))
		return fmt.Errorf("persist categories: %w", err)
	}
	return nil
}

func (l *Ledger) announce(ctx context.Context, action, expenseID string) {
	var err error
	switch action {
	case events.ActionSaved:
		err = l.events.ExpenseSaved(ctx, expenseID)
	case events.ActionDeleted:
		err = l.events.ExpenseDeleted(ctx, expenseID)
	}
	if err != nil {
		// The mutation already succeeded; losing the announcement is not
		// worth failing the request over.
		slog.ErrorContext(ctx, "Failed to publish expense event",
			"action", action, "expense_id", expenseID, "error", err)
	}
}
