package ledger

import (
	"testing"

	"fintrack/internal/core"
)

func seededBook(t *testing.T) *Book {
	t.Helper()
	b, _ := newTestBook()
	loadUser(t, b, "u1")
	return b
}

func TestByCategory(t *testing.T) {
	b := seededBook(t)
	food := b.ByCategory(core.Food)
	if len(food) != 3 {
		t.Fatalf("expected 3 Food entries in seed, got %d", len(food))
	}
	assertSortedDesc(t, food)
	for _, tx := range food {
		if tx.Category != core.Food {
			t.Fatalf("wrong category: %s", tx.Category)
		}
	}
}

func TestByDateRangeInclusive(t *testing.T) {
	b := seededBook(t)
	// 2025-02-15 and 2025-02-17 are both seed dates; bounds inclusive.
	got := b.ByDateRange(core.NewDate(2025, 2, 15), core.NewDate(2025, 2, 17))
	if len(got) != 3 {
		t.Fatalf("expected 3 entries (15th, 16th, 17th), got %d", len(got))
	}
	assertSortedDesc(t, got)
}

func TestSearchSubstringMatchesDescriptionOrCategory(t *testing.T) {
	b := seededBook(t)

	// "groc" hits descriptions ("Grocery shopping", "Weekly groceries").
	if got := b.Search(Filter{Search: "GROC"}); len(got) != 2 {
		t.Fatalf("description search: expected 2, got %d", len(got))
	}
	// "transport" hits the category name.
	if got := b.Search(Filter{Search: "transport"}); len(got) != 2 {
		t.Fatalf("category search: expected 2, got %d", len(got))
	}
}

func TestFilterConjunction(t *testing.T) {
	b := seededBook(t)
	from, to := core.NewDate(2025, 2, 15), core.NewDate(2025, 2, 28)

	// Composing the two single-dimension queries by hand must equal the
	// compound filter.
	inRange := b.ByDateRange(from, to)
	var composed []core.Transaction
	for _, tx := range inRange {
		if tx.Category == core.Food {
			composed = append(composed, tx)
		}
	}

	compound := b.Search(Filter{Category: core.Food, From: from, To: to})
	if len(compound) != len(composed) {
		t.Fatalf("compound %d != composed %d", len(compound), len(composed))
	}
	for i := range compound {
		if compound[i].ID != composed[i].ID {
			t.Fatalf("result sets differ at %d: %s != %s", i, compound[i].ID, composed[i].ID)
		}
	}
}

func TestQueriesReturnFreshCopies(t *testing.T) {
	b := seededBook(t)
	got := b.ByCategory(core.Food)
	got[0].Description = "mutated"
	again := b.ByCategory(core.Food)
	if again[0].Description == "mutated" {
		t.Fatalf("query handed out a live reference")
	}
}

func TestEmptyFilterReturnsEverything(t *testing.T) {
	b := seededBook(t)
	if got := b.Search(Filter{}); len(got) != 15 {
		t.Fatalf("expected all 15 entries, got %d", len(got))
	}
}
