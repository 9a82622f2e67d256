// Package services wires the session manager, the ledger and the
// optional event publisher into the operations the HTTP layer calls.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
	"fintrack/internal/events"
	"fintrack/internal/ledger"
	"fintrack/internal/session"
	"fintrack/internal/storage"
)

// LedgerService orchestrates session and ledger state transitions and
// publishes change notifications when a broker is configured.
type LedgerService struct {
	sessions  *session.Manager
	book      *ledger.Book
	deltas    *storage.Repository
	publisher *events.Publisher
}

func NewLedgerService(sessions *session.Manager, book *ledger.Book, deltas *storage.Repository, publisher *events.Publisher) *LedgerService {
	return &LedgerService{
		sessions:  sessions,
		book:      book,
		deltas:    deltas,
		publisher: publisher,
	}
}

// Restore picks up a persisted session at startup and, when one exists,
// loads that user's ledger.
func (s *LedgerService) Restore(ctx context.Context) error {
	s.sessions.Restore(ctx)
	u := s.sessions.Current()
	if u == nil {
		return nil
	}
	if err := s.book.Load(ctx, u.ID); err != nil {
		return fmt.Errorf("restore ledger: %w", err)
	}
	return nil
}

// Login authenticates the user and loads their ledger.
func (s *LedgerService) Login(ctx context.Context, email, password string) (*core.User, error) {
	u, err := s.sessions.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.book.Load(ctx, u.ID); err != nil {
		return nil, fmt.Errorf("load ledger after login: %w", err)
	}
	return u, nil
}

// Register creates the account, establishes the session and loads the
// new user's ledger (seed entries plus an empty delta).
func (s *LedgerService) Register(ctx context.Context, name string, grade core.Grade, email, password string) (*core.User, error) {
	u, err := s.sessions.Register(ctx, name, grade, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.book.Load(ctx, u.ID); err != nil {
		return nil, fmt.Errorf("load ledger after register: %w", err)
	}
	return u, nil
}

// Logout ends the session, discards the departing user's delta and
// empties the visible collection. Logging out while anonymous is a
// no-op.
func (s *LedgerService) Logout(ctx context.Context) error {
	userID, err := s.sessions.Logout(ctx)
	if err != nil {
		return err
	}
	if userID == "" {
		return nil
	}
	if err := s.deltas.ClearDelta(ctx, userID); err != nil {
		return fmt.Errorf("clear delta on logout: %w", err)
	}
	s.book.Unload()
	return nil
}

// Current returns the active user, or nil when anonymous.
func (s *LedgerService) Current() *core.User {
	return s.sessions.Current()
}

// AddTransaction records a new entry and publishes a created event.
func (s *LedgerService) AddTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	added, err := s.book.Add(ctx, tx)
	if err != nil {
		return core.Transaction{}, err
	}
	s.publish(ctx, events.ActionCreated, added.ID)
	return added, nil
}

// UpdateTransaction replaces an existing entry and publishes an updated
// event.
func (s *LedgerService) UpdateTransaction(ctx context.Context, tx core.Transaction) error {
	if err := s.book.Update(ctx, tx); err != nil {
		return err
	}
	s.publish(ctx, events.ActionUpdated, tx.ID)
	return nil
}

// DeleteTransaction removes an entry and publishes a deleted event.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.book.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.ActionDeleted, id)
	return nil
}

// publish sends a change notification. Failures are logged, never
// surfaced: the mutation already succeeded locally.
func (s *LedgerService) publish(ctx context.Context, action, transactionID string) {
	if s.publisher == nil {
		return
	}
	userID := ""
	if u := s.sessions.Current(); u != nil {
		userID = u.ID
	}
	if err := s.publisher.PublishTransactionEvent(ctx, action, userID, transactionID); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"component", "services",
			"action", action,
			"transaction_id", transactionID,
			"error", err)
	}
}

// Book exposes the underlying ledger for read-only queries and reports.
func (s *LedgerService) Book() *ledger.Book {
	return s.book
}

// Close releases the publisher connection if one was configured.
func (s *LedgerService) Close() error {
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			return fmt.Errorf("close publisher: %w", err)
		}
	}
	return nil
}
