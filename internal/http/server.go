// Package http exposes the ledger over a local JSON API. This is the
// transport for whatever presentation layer sits in front; rendering is not
// this package's concern.
package http

import (
	"net/http"
	"time"

	"kharj/internal/ledger"
	applog "kharj/internal/log"
)

type Server struct {
	*http.Server
	ledger *ledger.Ledger
	logger *applog.Logger
}

func NewServer(addr string, l *ledger.Ledger, logger *applog.Logger) *Server {
	s := &Server{
		ledger: l,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/expenses", s.handleExpenses)
	mux.HandleFunc("/api/expenses/", s.handleExpenseByID)
	mux.HandleFunc("/api/categories", s.handleCategories)

	s.Server = &http.Server{
		Addr:           addr,
		Handler:        applog.RequestMiddleware(logger)(mux),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}

	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
