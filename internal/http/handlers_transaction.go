package http

import (
	"errors"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
	"fintrack/internal/log"
)

type transactionRequest struct {
	Amount      core.Money           `json:"amount"`
	Type        core.TransactionType `json:"type"`
	Category    core.Category        `json:"category"`
	Date        core.Date            `json:"date"`
	Description string               `json:"description"`
}

func (req transactionRequest) toTransaction() core.Transaction {
	return core.Transaction{
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Date:        req.Date,
		Description: sanitizeInput(req.Description),
	}
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	if s.ledger.Current() == nil {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	f, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items := s.ledger.Book().Search(f)
	if items == nil {
		items = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx := req.toTransaction()
	if err := tx.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	added, err := s.ledger.AddTransaction(r.Context(), tx)
	switch {
	case errors.Is(err, ledger.ErrNoActiveUser):
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	case err != nil:
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Create transaction failed",
			log.FieldOperation, log.OpCreate, log.FieldError, err.Error())
		writeError(w, http.StatusInternalServerError, "could not save the transaction")
		return
	}

	writeJSON(w, http.StatusCreated, added)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx := req.toTransaction()
	tx.ID = r.PathValue("id")
	if err := tx.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	err := s.ledger.UpdateTransaction(r.Context(), tx)
	switch {
	case errors.Is(err, ledger.ErrNoActiveUser):
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	case errors.Is(err, core.ErrNotFound):
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	case err != nil:
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Update transaction failed",
			log.FieldOperation, log.OpUpdate,
			log.FieldTransactionID, tx.ID,
			log.FieldError, err.Error())
		writeError(w, http.StatusInternalServerError, "could not update the transaction")
		return
	}

	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := s.ledger.DeleteTransaction(r.Context(), id)
	switch {
	case errors.Is(err, ledger.ErrNoActiveUser):
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	case err != nil:
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Delete transaction failed",
			log.FieldOperation, log.OpDelete,
			log.FieldTransactionID, id,
			log.FieldError, err.Error())
		writeError(w, http.StatusInternalServerError, "could not delete the transaction")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
