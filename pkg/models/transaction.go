package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single recorded cash movement.
type Transaction struct {
	ID string `json:"id" example:"lt9x3k2a8f1c0e4b7d9a2"` // Identifier, assigned on creation
	TransactionCreate
}

type TransactionCreate struct {
	Category    string          `json:"category" example:"Food"`                                                                       // Free text category, see SuggestedCategories
	Amount      decimal.Decimal `json:"amount" example:"50" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Always positive, the direction is given by Type
	Date        time.Time       `json:"date" example:"2024-03-10T00:00:00.000Z"`                                                       // Date and time of the transaction
	Type        TransactionType `json:"type" example:"expense"`                                                                        // Either income or expense
	Description string          `json:"description,omitempty" example:"Weekly groceries"`                                              // Optional description
}

// SuggestedCategories are offered to users per transaction type. They are
// not enforced.
var SuggestedCategories = map[TransactionType][]string{
	TransactionTypeIncome:  {"Salary", "Freelance", "Investments", "Gifts", "Other Income"},
	TransactionTypeExpense: {"Housing", "Food", "Transportation", "Utilities", "Entertainment", "Healthcare", "Shopping", "Education", "Personal Care", "Debt", "Savings", "Other Expense"},
}

// Trimmed returns a copy with whitespace trimmed from all string fields.
func (t TransactionCreate) Trimmed() TransactionCreate {
	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)
	return t
}

// Validate verifies the fields a user has to provide for a new transaction.
func (t TransactionCreate) Validate() error {
	if strings.TrimSpace(t.Category) == "" {
		return ErrCategoryRequired
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.Date.IsZero() {
		return ErrDateMissing
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsIncome reports whether the transaction is income.
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// Check implements Record.
func (t *Transaction) Check() error {
	if t.ID == "" {
		return ErrIDMissing
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.Date.IsZero() {
		return ErrDateMissing
	}

	return nil
}
