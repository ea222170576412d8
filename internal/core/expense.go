package core

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

type (
	// Expense is a single ledger record. Field names and JSON shape match the
	// persisted storage schema and must stay stable.
	Expense struct {
		ID          string  `json:"id"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		Date        string  `json:"date"` // Gregorian, YYYY-MM-DD or YYYY/MM/DD
	}

	// Category pairs a display label with the key expenses reference.
	Category struct {
		Label string `json:"label"`
		Value string `json:"value"`
	}

	// Draft holds raw user input for an expense before validation. Amount is
	// the untouched text and may contain Persian digits and separators.
	Draft struct {
		Amount      string
		Description string
		Category    string
		Date        string
	}
)

var (
	ErrMissingFields   = errors.New("required fields missing")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyLabel      = errors.New("empty category label")
	ErrInvalidDate     = errors.New("invalid date")
	ErrExpenseNotFound = errors.New("expense not found")
)

// Valid reports whether a stored record is usable. Records failing this are
// dropped at load time instead of surfacing an error.
func (e Expense) Valid() bool {
	return e.Amount > 0 && !math.IsNaN(e.Amount) && !math.IsInf(e.Amount, 0)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// DeriveCategoryValue turns a display label into the stored category key:
// lowercased, whitespace runs replaced with underscores. Uniqueness is not
// enforced; two labels may derive the same value.
func DeriveCategoryValue(label string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(label), "_")
}

// NewCategory validates the label and builds a Category from it.
func NewCategory(label string) (Category, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return Category{}, ErrEmptyLabel
	}
	return Category{Label: trimmed, Value: DeriveCategoryValue(label)}, nil
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewExpenseID returns a current-time-derived id, unique for the lifetime of
// the process. Millisecond timestamps alone can collide under Go, so ids are
// forced strictly increasing.
func NewExpenseID() string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}
