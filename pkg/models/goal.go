package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Priority is the importance of a goal.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Goal is a savings target with a deadline.
//
// CurrentAmount is derived from transactions and only updated when the
// progress of all goals is recalculated.
type Goal struct {
	ID string `json:"id" example:"lt9x3k2a8f1c0e4b7d9a2"`
	GoalEditable
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"300"` // Amount saved at the last recalculation
}

type GoalEditable struct {
	Name         string          `json:"name" example:"Emergency fund"`
	Category     string          `json:"category" example:"Savings"`                // Transactions in this category fund the goal
	TargetAmount decimal.Decimal `json:"targetAmount" example:"1000"`               // The amount to save
	Deadline     time.Time       `json:"deadline" example:"2025-12-31T00:00:00Z"`  // When the target should be reached
	Priority     Priority        `json:"priority" example:"medium" default:"medium"` // One of low, medium, high
}

// GoalUpdate replaces all editable fields of a goal including its progress.
type GoalUpdate struct {
	GoalEditable
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"300"`
}

// Trimmed returns a copy with whitespace trimmed from all string fields and
// the priority defaulted to medium.
func (g GoalEditable) Trimmed() GoalEditable {
	g.Name = strings.TrimSpace(g.Name)
	g.Category = strings.TrimSpace(g.Category)

	if g.Priority == "" {
		g.Priority = PriorityMedium
	}

	return g
}

// Validate verifies the user provided fields. The deadline is checked
// separately with ValidateDeadline since only new goals need a future deadline.
func (g GoalEditable) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrNameRequired
	}

	if strings.TrimSpace(g.Category) == "" {
		return ErrCategoryRequired
	}

	if !g.TargetAmount.IsPositive() {
		return ErrAmountNotPositive
	}

	if g.Priority != "" && !g.Priority.Valid() {
		return ErrGoalPriorityInvalid
	}

	if g.Deadline.IsZero() {
		return ErrDateMissing
	}

	return nil
}

// ValidateDeadline verifies that the deadline is strictly after now.
func (g GoalEditable) ValidateDeadline(now time.Time) error {
	if !g.Deadline.After(now) {
		return ErrGoalDeadlineNotFuture
	}

	return nil
}

// Completed reports whether the saved amount reached the target.
func (g Goal) Completed() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Check implements Record.
func (g *Goal) Check() error {
	if g.ID == "" {
		return ErrIDMissing
	}

	if g.Priority == "" {
		g.Priority = PriorityMedium
	}

	if !g.Priority.Valid() {
		return ErrGoalPriorityInvalid
	}

	if !g.TargetAmount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}
