package core

import (
	"strings"
	"time"
)

// FilterType selects which primary filter mode applies. The two modes are
// mutually exclusive per invocation; the category restriction composes with
// either.
type FilterType string

const (
	FilterDateRange FilterType = "dateRange"
	FilterMonthYear FilterType = "monthYear"
)

// Criteria describes one filter invocation. Zero-value criteria match
// everything. A mode only applies when all of its inputs are present: a date
// range missing either bound is skipped entirely, as is a month/year filter
// missing either part.
type Criteria struct {
	Type      FilterType
	StartDate string // Gregorian, dateRange mode
	EndDate   string // Gregorian, dateRange mode
	Month     int    // Jalali month 1..12, monthYear mode
	Year      int    // Jalali year, monthYear mode
	Category  string
}

var dateLayouts = []string{"2006-01-02", "2006/01/02", "2006-1-2", "2006/1/2"}

func parseDay(s string) (time.Time, bool) {
	s = NormalizeDigits(strings.TrimSpace(s))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Filter returns the expenses matching the criteria. The input slice is never
// mutated; the result is always a fresh slice.
func Filter(expenses []Expense, c Criteria) []Expense {
	out := make([]Expense, 0, len(expenses))
	out = append(out, expenses...)

	if c.Type == FilterDateRange && c.StartDate != "" && c.EndDate != "" {
		start, okStart := parseDay(c.StartDate)
		end, okEnd := parseDay(c.EndDate)
		if okStart && okEnd {
			out = keep(out, func(e Expense) bool {
				d, ok := parseDay(e.Date)
				return ok && !d.Before(start) && !d.After(end)
			})
		}
	}

	if c.Type == FilterMonthYear && c.Month != 0 && c.Year != 0 {
		out = keep(out, func(e Expense) bool {
			jy, jm, err := JalaliYearMonth(e.Date)
			return err == nil && jy == c.Year && jm == c.Month
		})
	}

	if c.Category != "" {
		out = keep(out, func(e Expense) bool { return e.Category == c.Category })
	}

	return out
}

// Total sums the amounts of the given expenses. An empty list totals zero.
// Records with invalid amounts never reach this point; they are dropped when
// the ledger loads.
func Total(expenses []Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}

func keep(in []Expense, pred func(Expense) bool) []Expense {
	out := in[:0:0]
	for _, e := range in {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}
