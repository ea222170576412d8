package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"kharj/internal/core"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeLedgerError maps domain errors to status codes: validation failures
// are the caller's fault, everything else is a storage problem.
func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrMissingFields),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrEmptyLabel):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, core.ErrExpenseNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "storage failure")
	}
}

// expenseView is an expense plus its display renderings.
type expenseView struct {
	core.Expense
	JalaliDate    string `json:"jalali_date,omitempty"`
	JalaliMonth   string `json:"jalali_month,omitempty"`
	AmountDisplay string `json:"amount_display"`
}

func newExpenseView(e core.Expense) expenseView {
	v := expenseView{
		Expense:       e,
		AmountDisplay: core.FormatAmount(e.Amount),
	}
	// Best effort; an unconvertible date just renders without one.
	if j, err := core.GregorianToJalali(e.Date); err == nil {
		v.JalaliDate = j
		if _, m, err := core.JalaliYearMonth(e.Date); err == nil {
			v.JalaliMonth = core.JalaliMonthName(m)
		}
	}
	return v
}
