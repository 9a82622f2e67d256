// Package session owns user identity: registration, login, logout and
// the persisted session pointer. Credentials are verified with bcrypt;
// the hash never crosses the package boundary.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already in use")
)

// Store is the persistence the manager needs: the credential collection
// and the session pointer. *storage.Repository satisfies it.
type Store interface {
	LoadCredentials(ctx context.Context) ([]storage.Credential, error)
	SaveCredentials(ctx context.Context, creds []storage.Credential) error
	LoadSession(ctx context.Context) (*core.User, error)
	SaveSession(ctx context.Context, u core.User) error
	ClearSession(ctx context.Context) error
}

// Manager moves between exactly two states: Anonymous and
// Authenticated. There are no tokens and no expiry; the session lasts
// until Logout.
type Manager struct {
	mu      sync.Mutex
	store   Store
	current *core.User
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Restore picks up a previously persisted session pointer, if any, so
// a restart does not log the user out. Malformed data is logged and
// treated as no session.
func (m *Manager) Restore(ctx context.Context) {
	u, err := m.store.LoadSession(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Could not restore session, starting anonymous",
			"component", "session", "error", err)
		return
	}
	if u == nil {
		return
	}
	m.mu.Lock()
	m.current = u
	m.mu.Unlock()
	slog.InfoContext(ctx, "Session restored", "component", "session", "user_id", u.ID)
}

// Login verifies the credential by exact email match and bcrypt
// comparison. On success the credential-stripped user becomes the
// current identity and the session pointer is persisted. On failure
// nothing changes.
func (m *Manager) Login(ctx context.Context, email, password string) (*core.User, error) {
	creds, err := m.store.LoadCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	for _, c := range creds {
		if c.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
			break
		}
		u := c.User()
		if err := m.store.SaveSession(ctx, u); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
		m.mu.Lock()
		m.current = &u
		m.mu.Unlock()
		slog.InfoContext(ctx, "Login succeeded", "component", "session", "user_id", u.ID)
		return &u, nil
	}

	slog.InfoContext(ctx, "Login failed", "component", "session")
	return nil, ErrInvalidCredentials
}

// Register creates an account and immediately establishes a session,
// exactly as Login would. The email must not already be present
// (case-sensitive exact match).
func (m *Manager) Register(ctx context.Context, name string, grade core.Grade, email, password string) (*core.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	if !grade.Valid() {
		return nil, core.ErrInvalidGrade
	}

	creds, err := m.store.LoadCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	for _, c := range creds {
		if c.Email == email {
			return nil, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	cred := storage.Credential{
		ID:           uuid.NewString(),
		Name:         name,
		Grade:        grade,
		Email:        email,
		PasswordHash: string(hash),
	}
	creds = append(creds, cred)
	if err := m.store.SaveCredentials(ctx, creds); err != nil {
		return nil, fmt.Errorf("persist credentials: %w", err)
	}

	u := cred.User()
	if err := m.store.SaveSession(ctx, u); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	m.mu.Lock()
	m.current = &u
	m.mu.Unlock()
	slog.InfoContext(ctx, "Account registered", "component", "session", "user_id", u.ID)
	return &u, nil
}

// Logout clears the current identity and the persisted session
// pointer. It returns the id of the user that was active so the caller
// can clear that user's ledger delta; empty when nobody was logged in.
func (m *Manager) Logout(ctx context.Context) (string, error) {
	m.mu.Lock()
	var userID string
	if m.current != nil {
		userID = m.current.ID
	}
	m.current = nil
	m.mu.Unlock()

	if err := m.store.ClearSession(ctx); err != nil {
		return userID, fmt.Errorf("logout: %w", err)
	}
	if userID != "" {
		slog.InfoContext(ctx, "Logged out", "component", "session", "user_id", userID)
	}
	return userID, nil
}

// Current returns a copy of the active user, or nil when anonymous.
func (m *Manager) Current() *core.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	u := *m.current
	return &u
}
