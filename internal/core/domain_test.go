package core

import (
	"testing"
)

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Amount:      Money{Cents: 4550},
		Type:        Expense,
		Category:    Food,
		Date:        NewDate(2025, 3, 2),
		Description: "Grocery shopping",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []struct {
		name string
		tx   Transaction
		want error
	}{
		{"bad type", Transaction{Amount: Money{Cents: 1}, Type: "transfer", Category: Food, Date: NewDate(2025, 1, 1), Description: "x"}, ErrInvalidType},
		{"category from wrong partition", Transaction{Amount: Money{Cents: 1}, Type: Income, Category: Food, Date: NewDate(2025, 1, 1), Description: "x"}, ErrInvalidCategory},
		{"unknown category", Transaction{Amount: Money{Cents: 1}, Type: Expense, Category: "Rent", Date: NewDate(2025, 1, 1), Description: "x"}, ErrInvalidCategory},
		{"zero date", Transaction{Amount: Money{Cents: 1}, Type: Expense, Category: Food, Description: "x"}, nil},
		{"empty description", Transaction{Amount: Money{Cents: 1}, Type: Expense, Category: Food, Date: NewDate(2025, 1, 1), Description: "  "}, ErrEmptyDescription},
		{"zero amount", Transaction{Amount: Money{}, Type: Expense, Category: Food, Date: NewDate(2025, 1, 1), Description: "x"}, ErrInvalidAmount},
	}
	for _, tc := range bads {
		err := tc.tx.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if tc.want != nil && err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestCategoryPartition(t *testing.T) {
	for _, c := range IncomeCategories() {
		if !c.BelongsTo(Income) {
			t.Fatalf("%s should belong to income", c)
		}
		if c.BelongsTo(Expense) {
			t.Fatalf("%s should not belong to expense", c)
		}
	}
	for _, c := range ExpenseCategories() {
		if !c.BelongsTo(Expense) {
			t.Fatalf("%s should belong to expense", c)
		}
	}
}

func TestGradeValid(t *testing.T) {
	for _, g := range []Grade{Grade9, Grade10, Grade11, Grade12} {
		if !g.Valid() {
			t.Fatalf("grade %s should be valid", g)
		}
	}
	if Grade("13").Valid() {
		t.Fatalf("grade 13 should be invalid")
	}
}
