package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"kharj/internal/core"
)

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listExpenses(w, r)
	case http.MethodPost:
		s.saveExpense(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	criteria := parseCriteria(r.URL.Query())

	matched := s.ledger.Filter(criteria)
	total := core.Total(matched)

	views := make([]expenseView, 0, len(matched))
	for _, e := range matched {
		views = append(views, newExpenseView(e))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"expenses":      views,
		"total":         total,
		"total_display": core.FormatAmount(total),
	})
}

type expenseRequest struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

func (s *Server) saveExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft := core.Draft{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
	}

	expense, err := s.ledger.SaveExpense(r.Context(), draft, req.ID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to save expense",
			"error", err,
			"category", req.Category,
			"editing_id", req.ID,
			"operation", "save")
		writeLedgerError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "Expense saved",
		"expense_id", expense.ID,
		"amount", expense.Amount,
		"category", expense.Category,
		"edited", req.ID != "")

	writeJSON(w, http.StatusOK, newExpenseView(expense))
}

func (s *Server) handleExpenseByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/expenses/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "missing expense id")
		return
	}

	if err := s.ledger.DeleteExpense(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete expense",
			"error", err, "expense_id", id, "operation", "delete")
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"categories": s.ledger.Categories()})
	case http.MethodPost:
		var req struct {
			Label string `json:"label"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		cat, err := s.ledger.AddCategory(r.Context(), req.Label)
		if err != nil {
			slog.ErrorContext(r.Context(), "Failed to add category", "error", err, "label", req.Label)
			writeLedgerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, cat)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// parseCriteria builds filter criteria from query parameters. Month and year
// may arrive with Persian digits; anything unparseable leaves its field zero,
// which disables the mode it belongs to.
func parseCriteria(query url.Values) core.Criteria {
	get := func(key string) string {
		return strings.TrimSpace(query.Get(key))
	}

	c := core.Criteria{
		Type:      core.FilterType(get("type")),
		StartDate: get("start"),
		EndDate:   get("end"),
		Category:  get("category"),
	}
	if v := core.NormalizeDigits(get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			c.Month = m
		}
	}
	if v := core.NormalizeDigits(get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			c.Year = y
		}
	}
	return c
}
