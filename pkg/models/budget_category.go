package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BudgetCategory is a monthly spending envelope.
//
// Spent is a cached projection. It is only correct directly after the
// spending for a date window has been calculated and is never the source of
// truth for any computation.
type BudgetCategory struct {
	ID string `json:"id" example:"lt9x3k2a8f1c0e4b7d9a2"`
	BudgetCategoryEditable
	Spent decimal.Decimal `json:"spent" example:"133.7"` // Sum of matching expenses in the last calculated window
}

type BudgetCategoryEditable struct {
	Name      string          `json:"name" example:"Food"`      // Matched case-insensitively against transaction categories
	Allocated decimal.Decimal `json:"allocated" example:"200"`  // The budget ceiling
	Color     string          `json:"color" example:"#3B82F6"` // Display color, opaque to the backend
}

// Trimmed returns a copy with whitespace trimmed from all string fields.
func (b BudgetCategoryEditable) Trimmed() BudgetCategoryEditable {
	b.Name = strings.TrimSpace(b.Name)
	b.Color = strings.TrimSpace(b.Color)
	return b
}

// Validate verifies the user provided fields.
func (b BudgetCategoryEditable) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrNameRequired
	}

	if !b.Allocated.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// Check implements Record.
func (b *BudgetCategory) Check() error {
	if b.ID == "" {
		return ErrIDMissing
	}

	if b.Name == "" {
		return ErrNameRequired
	}

	if !b.Allocated.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}
