package http

import (
	"net/http"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

type summaryResponse struct {
	TotalIncome   core.Money `json:"total_income"`
	TotalExpenses core.Money `json:"total_expenses"`
	Balance       core.Money `json:"balance"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if s.ledger.Current() == nil {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	book := s.ledger.Book()
	writeJSON(w, http.StatusOK, summaryResponse{
		TotalIncome:   book.TotalIncome(),
		TotalExpenses: book.TotalExpenses(),
		Balance:       book.Balance(),
	})
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	if s.ledger.Current() == nil {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	var from, to core.Date
	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from date")
			return
		}
		from = d
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to date")
			return
		}
		to = d
	}

	buckets := s.ledger.Book().Timeline(from, to)
	if buckets == nil {
		buckets = []ledger.TimelineBucket{}
	}
	writeJSON(w, http.StatusOK, buckets)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if s.ledger.Current() == nil {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	breakdown := s.ledger.Book().ExpenseBreakdown()
	if breakdown == nil {
		breakdown = []ledger.CategoryAmount{}
	}
	writeJSON(w, http.StatusOK, breakdown)
}

func (s *Server) handleHighlights(w http.ResponseWriter, r *http.Request) {
	if s.ledger.Current() == nil {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	writeJSON(w, http.StatusOK, s.ledger.Book().Highlights())
}
