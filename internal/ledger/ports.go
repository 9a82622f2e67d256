package ledger

import (
	"context"

	"fintrack/internal/core"
)

// DeltaRepository is the outbound port the engine persists through.
// Only the delta (the user-entered transactions, never the seed set)
// crosses this boundary, and always as a whole collection.
type DeltaRepository interface {
	// LoadDelta returns the user's persisted transactions; found is
	// false when no delta has ever been written for this user.
	LoadDelta(ctx context.Context, userID string) (txs []core.Transaction, found bool, err error)
	SaveDelta(ctx context.Context, userID string, txs []core.Transaction) error
	ClearDelta(ctx context.Context, userID string) error
}
