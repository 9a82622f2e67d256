package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
)

// Credential is the stored account record. The password hash never
// leaves this package; everything handed out is credential-stripped.
type Credential struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Grade        core.Grade `json:"grade"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
}

// User returns the credential-stripped view of the record.
func (c Credential) User() core.User {
	return core.User{ID: c.ID, Name: c.Name, Grade: c.Grade, Email: c.Email}
}

// Repository reads and writes the three logical collections as whole
// JSON documents on top of a key-value Store. A document that fails to
// decode is reported as ErrMalformed rather than silently tolerated.
type Repository struct {
	kv Store
}

func NewRepository(kv Store) *Repository {
	return &Repository{kv: kv}
}

// LoadCredentials returns the credential collection, or nil when none
// has been written yet.
func (r *Repository) LoadCredentials(ctx context.Context) ([]Credential, error) {
	raw, found, err := r.kv.Get(ctx, KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if !found {
		return nil, nil
	}
	var creds []Credential
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("decode credential collection: %w: %w", ErrMalformed, err)
	}
	return creds, nil
}

func (r *Repository) SaveCredentials(ctx context.Context, creds []Credential) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credential collection: %w", err)
	}
	if err := r.kv.Put(ctx, KeyUsers, raw); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

// LoadSession returns the persisted session pointer, or nil when no
// session is active.
func (r *Repository) LoadSession(ctx context.Context) (*core.User, error) {
	raw, found, err := r.kv.Get(ctx, KeySession)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return nil, nil
	}
	var u core.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode session pointer: %w: %w", ErrMalformed, err)
	}
	return &u, nil
}

func (r *Repository) SaveSession(ctx context.Context, u core.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session pointer: %w", err)
	}
	if err := r.kv.Put(ctx, KeySession, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *Repository) ClearSession(ctx context.Context) error {
	if err := r.kv.Delete(ctx, KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// LoadDelta returns the user's persisted transactions. found is false
// when the user has never had a delta written, which tells the engine
// to initialise an empty one.
func (r *Repository) LoadDelta(ctx context.Context, userID string) ([]core.Transaction, bool, error) {
	raw, found, err := r.kv.Get(ctx, DeltaKey(userID))
	if err != nil {
		return nil, false, fmt.Errorf("load delta: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	var txs []core.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		return nil, false, fmt.Errorf("decode transaction delta: %w: %w", ErrMalformed, err)
	}
	return txs, true, nil
}

func (r *Repository) SaveDelta(ctx context.Context, userID string, txs []core.Transaction) error {
	if txs == nil {
		txs = []core.Transaction{}
	}
	raw, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("encode transaction delta: %w", err)
	}
	if err := r.kv.Put(ctx, DeltaKey(userID), raw); err != nil {
		return fmt.Errorf("save delta: %w", err)
	}
	slog.DebugContext(ctx, "Delta persisted", "component", "storage", "user_id", userID, "entries", len(txs))
	return nil
}

func (r *Repository) ClearDelta(ctx context.Context, userID string) error {
	if err := r.kv.Delete(ctx, DeltaKey(userID)); err != nil {
		return fmt.Errorf("clear delta: %w", err)
	}
	return nil
}
