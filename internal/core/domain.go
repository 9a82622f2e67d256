package core

import (
	"errors"
	"strings"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Income categories.
const (
	Work        Category = "Work"
	Allowance   Category = "Allowance"
	PartTimeJob Category = "Part-time Job"
	Gift        Category = "Gift"
	OtherIncome Category = "Other Income"
)

// Expense categories.
const (
	Food           Category = "Food"
	Transportation Category = "Transportation"
	Entertainment  Category = "Entertainment"
	Clothing       Category = "Clothing"
	Education      Category = "Education"
	Savings        Category = "Savings"
	OtherExpense   Category = "Other Expense"
)

type (
	TransactionType string

	Category string

	// Transaction is one recorded money movement. ID is assigned at
	// creation and immutable afterwards.
	Transaction struct {
		ID          string          `json:"id"`
		Amount      Money           `json:"amount"`
		Type        TransactionType `json:"type"`
		Category    Category        `json:"category"`
		Date        Date            `json:"date"`
		Description string          `json:"description"`
	}

	// User is an account with the credential stripped.
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Grade Grade  `json:"grade"`
		Email string `json:"email"`
	}

	Grade string
)

// Grade levels offered on the register form.
const (
	Grade9  Grade = "9"
	Grade10 Grade = "10"
	Grade11 Grade = "11"
	Grade12 Grade = "12"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidGrade     = errors.New("invalid grade level")
	ErrEmptyDescription = errors.New("empty description")
	ErrNotFound         = errors.New("transaction not found")
)

// IncomeCategories lists the categories valid for income entries, in
// form display order.
func IncomeCategories() []Category {
	return []Category{Work, Allowance, PartTimeJob, Gift, OtherIncome}
}

// ExpenseCategories lists the categories valid for expense entries.
func ExpenseCategories() []Category {
	return []Category{Food, Transportation, Entertainment, Clothing, Education, Savings, OtherExpense}
}

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Categories returns the categories belonging to this transaction type.
func (t TransactionType) Categories() []Category {
	if t == Income {
		return IncomeCategories()
	}
	return ExpenseCategories()
}

// BelongsTo reports whether the category lies in the partition of the
// given transaction type.
func (c Category) BelongsTo(t TransactionType) bool {
	for _, v := range t.Categories() {
		if v == c {
			return true
		}
	}
	return false
}

func (g Grade) Valid() bool {
	switch g {
	case Grade9, Grade10, Grade11, Grade12:
		return true
	}
	return false
}

// Validate checks the fields entry forms are required to fill. The
// category/type partition is checked here as well so it cannot be
// bypassed by calling the engine directly.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if !t.Category.BelongsTo(t.Type) {
		return ErrInvalidCategory
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return t.Amount.Validate()
}
