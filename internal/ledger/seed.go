package ledger

import (
	"strings"

	"fintrack/internal/core"
)

// seedIDPrefix reserves an id namespace for the seed set. Fresh ids are
// uuids, so a user entry can never collide with a seed entry; delta
// entries carrying a seed id are dropped at load time.
const seedIDPrefix = "seed-"

// IsSeedID reports whether id lies in the reserved seed namespace.
func IsSeedID(id string) bool {
	return strings.HasPrefix(id, seedIDPrefix)
}

// SeedTransactions returns a fresh copy of the fixed example set shown
// to every logged-in user, so a new account never faces an empty
// dashboard. Seed entries are never persisted.
func SeedTransactions() []core.Transaction {
	return []core.Transaction{
		{ID: "seed-1", Date: core.NewDate(2025, 3, 5), Amount: core.Money{Cents: 120000}, Type: core.Income, Category: core.Work, Description: "Monthly internship payment"},
		{ID: "seed-2", Date: core.NewDate(2025, 3, 2), Amount: core.Money{Cents: 4550}, Type: core.Expense, Category: core.Food, Description: "Grocery shopping"},
		{ID: "seed-3", Date: core.NewDate(2025, 2, 28), Amount: core.Money{Cents: 3500}, Type: core.Expense, Category: core.Transportation, Description: "Bus pass"},
		{ID: "seed-4", Date: core.NewDate(2025, 2, 25), Amount: core.Money{Cents: 2500}, Type: core.Expense, Category: core.Entertainment, Description: "Movie tickets"},
		{ID: "seed-5", Date: core.NewDate(2025, 2, 22), Amount: core.Money{Cents: 30000}, Type: core.Income, Category: core.Work, Description: "Tutoring sessions"},
		{ID: "seed-6", Date: core.NewDate(2025, 2, 19), Amount: core.Money{Cents: 6500}, Type: core.Expense, Category: core.Food, Description: "Restaurant dinner"},
		{ID: "seed-7", Date: core.NewDate(2025, 2, 16), Amount: core.Money{Cents: 15000}, Type: core.Expense, Category: core.Education, Description: "Textbooks"},
		{ID: "seed-8", Date: core.NewDate(2025, 2, 15), Amount: core.Money{Cents: 4000}, Type: core.Expense, Category: core.Transportation, Description: "Uber rides"},
		{ID: "seed-9", Date: core.NewDate(2025, 2, 17), Amount: core.Money{Cents: 50000}, Type: core.Income, Category: core.Work, Description: "Part-time work"},
		{ID: "seed-10", Date: core.NewDate(2025, 2, 20), Amount: core.Money{Cents: 3000}, Type: core.Expense, Category: core.Entertainment, Description: "Streaming subscriptions"},
		{ID: "seed-11", Date: core.NewDate(2025, 2, 23), Amount: core.Money{Cents: 20000}, Type: core.Income, Category: core.Gift, Description: "Birthday gift from family"},
		{ID: "seed-12", Date: core.NewDate(2025, 2, 26), Amount: core.Money{Cents: 8500}, Type: core.Expense, Category: core.Clothing, Description: "New shoes"},
		{ID: "seed-13", Date: core.NewDate(2025, 3, 1), Amount: core.Money{Cents: 25000}, Type: core.Income, Category: core.Allowance, Description: "Monthly allowance"},
		{ID: "seed-14", Date: core.NewDate(2025, 2, 18), Amount: core.Money{Cents: 7500}, Type: core.Expense, Category: core.Food, Description: "Weekly groceries"},
		{ID: "seed-15", Date: core.NewDate(2025, 2, 21), Amount: core.Money{Cents: 10000}, Type: core.Expense, Category: core.Savings, Description: "Emergency fund deposit"},
	}
}
