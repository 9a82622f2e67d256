package http

import (
	"errors"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/session"
)

type registerRequest struct {
	Name     string     `json:"name"`
	Grade    core.Grade `json:"grade"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = sanitizeInput(req.Name)
	req.Email = sanitizeInput(req.Email)

	u, err := s.ledger.Register(r.Context(), req.Name, req.Grade, req.Email, req.Password)
	switch {
	case errors.Is(err, session.ErrEmailTaken):
		writeError(w, http.StatusConflict, "an account with this email already exists")
		return
	case errors.Is(err, core.ErrInvalidGrade):
		writeError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	case errors.Is(err, session.ErrInvalidCredentials):
		writeError(w, http.StatusUnprocessableEntity, "name, email and password are required")
		return
	case err != nil:
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Registration failed",
			log.FieldOperation, log.OpRegister, log.FieldError, err.Error())
		writeError(w, http.StatusInternalServerError, "could not create the account")
		return
	}

	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := s.ledger.Login(r.Context(), sanitizeInput(req.Email), req.Password)
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		// Same message for unknown email and wrong password.
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	case err != nil:
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Login failed",
			log.FieldOperation, log.OpLogin, log.FieldError, err.Error())
		writeError(w, http.StatusInternalServerError, "could not sign in")
		return
	}

	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Logout(r.Context()); err != nil {
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Logout failed",
			log.FieldOperation, log.OpLogout, log.FieldError, err.Error())
		writeError(w, http.StatusInternalServerError, "could not sign out")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	u := s.ledger.Current()
	if u == nil {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}
	writeJSON(w, http.StatusOK, u)
}
