// Package ledger implements the transaction ledger for the active
// session: seed merge, date ordering, derived aggregates, queries and
// delta persistence.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"fintrack/internal/core"
)

// ErrNoActiveUser is returned by mutations when no ledger is loaded.
// The collection is left untouched.
var ErrNoActiveUser = errors.New("no active user")

// Book is the authoritative in-memory transaction collection for the
// active user, kept sorted by date descending. There is a single active
// ledger at a time; Load replaces it wholesale when the identity
// changes. All methods are safe for concurrent use.
type Book struct {
	mu     sync.Mutex
	deltas DeltaRepository

	userID   string
	items    []core.Transaction
	income   int64 // cents, recomputed on every collection change
	expenses int64
}

func NewBook(deltas DeltaRepository) *Book {
	return &Book{deltas: deltas}
}

// Load makes userID's ledger the visible collection: persisted delta
// merged with the seed set, sorted by date descending. A user with no
// delta yet gets an empty one written immediately so later loads see a
// defined starting point. Delta entries squatting on a seed id are
// dropped.
func (b *Book) Load(ctx context.Context, userID string) error {
	delta, found, err := b.deltas.LoadDelta(ctx, userID)
	if err != nil {
		return fmt.Errorf("load ledger for user %s: %w", userID, err)
	}
	if !found {
		if err := b.deltas.SaveDelta(ctx, userID, nil); err != nil {
			return fmt.Errorf("initialise delta for user %s: %w", userID, err)
		}
	}

	items := SeedTransactions()
	dropped := 0
	for _, tx := range delta {
		if IsSeedID(tx.ID) {
			dropped++
			continue
		}
		items = append(items, tx)
	}
	if dropped > 0 {
		slog.WarnContext(ctx, "Dropped delta entries with seed ids",
			"component", "ledger", "user_id", userID, "dropped", dropped)
	}
	sortByDateDesc(items)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.userID = userID
	b.items = items
	b.recompute()

	slog.InfoContext(ctx, "Ledger loaded",
		"component", "ledger",
		"user_id", userID,
		"entries", len(items),
		"delta_entries", len(delta)-dropped)
	return nil
}

// Unload empties the visible collection. Used when the session ends.
func (b *Book) Unload() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.userID = ""
	b.items = nil
	b.recompute()
}

// Add inserts a new transaction, assigning it a fresh id. The caller's
// id field is ignored.
func (b *Book) Add(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.userID == "" {
		return core.Transaction{}, ErrNoActiveUser
	}

	tx.ID = uuid.NewString()
	b.items = append(b.items, tx)
	sortByDateDesc(b.items)
	b.recompute()

	if err := b.persistLocked(ctx); err != nil {
		return core.Transaction{}, err
	}
	slog.InfoContext(ctx, "Transaction added",
		"component", "ledger",
		"operation", "add",
		"transaction_id", tx.ID,
		"type", tx.Type,
		"amount_cents", tx.Amount.Cents)
	return tx, nil
}

// Update replaces the transaction whose id matches. Only the first
// match is replaced; ids are assumed unique. Returns core.ErrNotFound
// when no element matches.
func (b *Book) Update(ctx context.Context, tx core.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.userID == "" {
		return ErrNoActiveUser
	}

	idx := -1
	for i := range b.items {
		if b.items[i].ID == tx.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.ErrNotFound
	}
	b.items[idx] = tx
	sortByDateDesc(b.items)
	b.recompute()

	if err := b.persistLocked(ctx); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Transaction updated",
		"component", "ledger",
		"operation", "update",
		"transaction_id", tx.ID)
	return nil
}

// Delete removes the transaction whose id matches. Deleting an unknown
// id is a no-op and not an error.
func (b *Book) Delete(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.userID == "" {
		return ErrNoActiveUser
	}

	kept := b.items[:0]
	removed := false
	for _, tx := range b.items {
		if tx.ID == id && !removed {
			removed = true
			continue
		}
		kept = append(kept, tx)
	}
	b.items = kept
	b.recompute()

	if err := b.persistLocked(ctx); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Transaction deleted",
		"component", "ledger",
		"operation", "delete",
		"transaction_id", id,
		"removed", removed)
	return nil
}

// Transactions returns a copy of the visible collection, most recent
// first.
func (b *Book) Transactions() []core.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]core.Transaction(nil), b.items...)
}

// TotalIncome is the sum of amounts over income entries.
func (b *Book) TotalIncome() core.Money {
	b.mu.Lock()
	defer b.mu.Unlock()
	return core.Money{Cents: b.income}
}

// TotalExpenses is the sum of amounts over expense entries.
func (b *Book) TotalExpenses() core.Money {
	b.mu.Lock()
	defer b.mu.Unlock()
	return core.Money{Cents: b.expenses}
}

// Balance is income minus expenses; it can be negative.
func (b *Book) Balance() core.Money {
	b.mu.Lock()
	defer b.mu.Unlock()
	return core.Money{Cents: b.income - b.expenses}
}

// persistLocked rewrites the full delta: the visible collection minus
// anything in the seed namespace. Callers hold b.mu.
func (b *Book) persistLocked(ctx context.Context) error {
	delta := make([]core.Transaction, 0, len(b.items))
	for _, tx := range b.items {
		if IsSeedID(tx.ID) {
			continue
		}
		delta = append(delta, tx)
	}
	if err := b.deltas.SaveDelta(ctx, b.userID, delta); err != nil {
		return fmt.Errorf("persist delta: %w", err)
	}
	return nil
}

// recompute rebuilds the aggregates from scratch. Cheap at this scale;
// callers hold b.mu.
func (b *Book) recompute() {
	b.income, b.expenses = 0, 0
	for _, tx := range b.items {
		if tx.Type == core.Income {
			b.income += tx.Amount.Cents
		} else {
			b.expenses += tx.Amount.Cents
		}
	}
}

// sortByDateDesc orders most recent first. The sort is stable so entries
// sharing a date keep their relative order.
func sortByDateDesc(txs []core.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
}
