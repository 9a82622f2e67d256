package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

const maxBodyBytes = 1 << 20 // 1 MiB request body cap

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "component", "http", "error", err)
	}
}

// writeError sends a JSON error envelope. The message is what the
// client sees; internal detail belongs in logs, not here.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads the request body into v, rejecting unknown fields
// and oversized payloads.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// clientIP extracts the client address, honouring proxy headers.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		if i := strings.IndexByte(ip, ','); i >= 0 {
			ip = ip[:i]
		}
		return strings.TrimSpace(ip)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// parseFilter builds a ledger filter from query parameters. Unknown
// values for structured dimensions are reported, not silently dropped.
func parseFilter(r *http.Request) (ledger.Filter, error) {
	q := r.URL.Query()
	f := ledger.Filter{
		Search:   sanitizeInput(q.Get("q")),
		Category: core.Category(strings.TrimSpace(q.Get("category"))),
		Type:     core.TransactionType(strings.TrimSpace(q.Get("type"))),
	}

	if f.Type != "" && f.Type != core.Income && f.Type != core.Expense {
		return ledger.Filter{}, fmt.Errorf("unknown type %q", f.Type)
	}

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return ledger.Filter{}, fmt.Errorf("invalid from date: %w", err)
		}
		f.From = d
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return ledger.Filter{}, fmt.Errorf("invalid to date: %w", err)
		}
		f.To = d
	}

	return f, nil
}

// validationMessage maps domain validation errors to client-facing
// text. Unrecognised errors fall through to a generic message.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		return "amount must be a positive number"
	case errors.Is(err, core.ErrInvalidType):
		return "type must be income or expense"
	case errors.Is(err, core.ErrInvalidCategory):
		return "category does not match the transaction type"
	case errors.Is(err, core.ErrInvalidGrade):
		return "grade must be between 9 and 12"
	case errors.Is(err, core.ErrEmptyDescription):
		return "description is required"
	default:
		return "invalid transaction data"
	}
}
