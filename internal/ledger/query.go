package ledger

import (
	"strings"

	"fintrack/internal/core"
)

// Filter is a conjunctive query over the visible collection. Every
// dimension is optional; a zero value means no constraint from that
// dimension. Search is a case-insensitive substring match on the
// description or the category name.
type Filter struct {
	Search   string
	Category core.Category
	Type     core.TransactionType
	From     core.Date
	To       core.Date
}

func (f Filter) matches(tx core.Transaction) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(tx.Description), q) &&
			!strings.Contains(strings.ToLower(string(tx.Category)), q) {
			return false
		}
	}
	if f.Category != "" && tx.Category != f.Category {
		return false
	}
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	return tx.Date.InRange(f.From, f.To)
}

// Search returns a fresh, date-descending copy of the entries matching
// the filter. The live collection is never handed out.
func (b *Book) Search(f Filter) []core.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []core.Transaction
	for _, tx := range b.items {
		if f.matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// ByDateRange returns the entries dated within [from, to], bounds
// inclusive, most recent first.
func (b *Book) ByDateRange(from, to core.Date) []core.Transaction {
	return b.Search(Filter{From: from, To: to})
}

// ByCategory returns the entries with exactly this category, most
// recent first.
func (b *Book) ByCategory(c core.Category) []core.Transaction {
	return b.Search(Filter{Category: c})
}
