// Package storage implements the persistent store: a key-value store
// holding whole JSON documents, read and written wholesale. The logical
// keys are the credential collection, the session pointer and one
// transaction delta per user. Last write wins; there is no versioning
// and no partial write.
package storage

import (
	"context"
	"errors"
)

// Store is the key-value port the repositories run on. Implementations
// must treat values as opaque bytes.
type Store interface {
	// Get returns the value for key. found is false when the key has
	// never been written or was deleted.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Logical keys, per the persisted state layout.
const (
	KeyUsers   = "users"
	KeySession = "session"

	// deltaKeyPrefix scopes each user's transaction delta to their own
	// key, so logging one user out cannot destroy another user's data.
	deltaKeyPrefix = "transactions:"
)

// DeltaKey returns the storage key holding the given user's delta.
func DeltaKey(userID string) string {
	return deltaKeyPrefix + userID
}

// ErrMalformed marks data that failed to decode at the storage
// boundary. Malformed data fails fast here; callers treat it as "no
// data" instead of crashing the session.
var ErrMalformed = errors.New("malformed stored data")
