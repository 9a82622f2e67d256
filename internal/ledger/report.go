package ledger

import (
	"sort"

	"fintrack/internal/core"
)

type (
	// TimelineBucket is one day's income and expense sums.
	TimelineBucket struct {
		Date    core.Date  `json:"date"`
		Income  core.Money `json:"income"`
		Expense core.Money `json:"expense"`
	}

	// CategoryAmount is an amount aggregated by category.
	CategoryAmount struct {
		Category core.Category `json:"category"`
		Amount   core.Money    `json:"amount"`
	}

	// MonthProfit is the net result of one calendar month.
	MonthProfit struct {
		Month  string     `json:"month"` // e.g. "March 2025"
		Amount core.Money `json:"amount"`
	}

	// Highlights are the dashboard's single-pass reductions over the
	// visible collection.
	Highlights struct {
		BiggestExpense      CategoryAmount `json:"biggest_expense"`
		MostProfitableMonth MonthProfit    `json:"most_profitable_month"`
		// SavingsRate is (income-expenses)/income as a percentage,
		// 0 when there is no income.
		SavingsRate float64 `json:"savings_rate"`
	}
)

// Timeline buckets income and expense sums per day, in chronological
// order. Zero bounds leave that side of the range open.
func (b *Book) Timeline(from, to core.Date) []TimelineBucket {
	matched := b.Search(Filter{From: from, To: to})

	byDay := make(map[string]*TimelineBucket)
	for _, tx := range matched {
		key := tx.Date.String()
		bucket, ok := byDay[key]
		if !ok {
			bucket = &TimelineBucket{Date: tx.Date}
			byDay[key] = bucket
		}
		if tx.Type == core.Income {
			bucket.Income.Cents += tx.Amount.Cents
		} else {
			bucket.Expense.Cents += tx.Amount.Cents
		}
	}

	out := make([]TimelineBucket, 0, len(byDay))
	for _, bucket := range byDay {
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ExpenseBreakdown sums expense entries per category, largest first.
// Income entries do not appear.
func (b *Book) ExpenseBreakdown() []CategoryAmount {
	items := b.Search(Filter{Type: core.Expense})

	sums := make(map[core.Category]int64)
	var order []core.Category // first-seen order keeps ties deterministic
	for _, tx := range items {
		if _, ok := sums[tx.Category]; !ok {
			order = append(order, tx.Category)
		}
		sums[tx.Category] += tx.Amount.Cents
	}

	out := make([]CategoryAmount, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryAmount{Category: c, Amount: core.Money{Cents: sums[c]}})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.Cents > out[j].Amount.Cents })
	return out
}

// Highlights recomputes the dashboard reductions from the visible
// collection.
func (b *Book) Highlights() Highlights {
	var h Highlights

	if breakdown := b.ExpenseBreakdown(); len(breakdown) > 0 {
		h.BiggestExpense = breakdown[0]
	}

	b.mu.Lock()
	items := append([]core.Transaction(nil), b.items...)
	income, expenses := b.income, b.expenses
	b.mu.Unlock()

	type monthAgg struct {
		label string
		net   int64
	}
	months := make(map[string]*monthAgg)
	var keys []string // sortable YYYY-MM keys
	for _, tx := range items {
		key := tx.Date.Format("2006-01")
		agg, ok := months[key]
		if !ok {
			agg = &monthAgg{label: tx.Date.MonthLabel()}
			months[key] = agg
			keys = append(keys, key)
		}
		if tx.Type == core.Income {
			agg.net += tx.Amount.Cents
		} else {
			agg.net -= tx.Amount.Cents
		}
	}
	sort.Strings(keys)
	best := MonthProfit{}
	for i, key := range keys {
		agg := months[key]
		if i == 0 || agg.net > best.Amount.Cents {
			best = MonthProfit{Month: agg.label, Amount: core.Money{Cents: agg.net}}
		}
	}
	h.MostProfitableMonth = best

	if income > 0 {
		h.SavingsRate = float64(income-expenses) / float64(income) * 100
	}
	return h
}
