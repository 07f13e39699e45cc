package services

import (
	"strings"
	"time"

	"github.com/financeflow/backend/internal/types"
	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/storage"
	"github.com/shopspring/decimal"
)

// GetBudgetCategories returns all budget categories with the spent amount of
// their last stored snapshot.
func (s *Service) GetBudgetCategories() []models.BudgetCategory {
	return load[models.BudgetCategory](s, storage.KeyBudgetCategories)
}

// CalculateCategorySpending returns all budget categories with Spent set to
// the sum of expenses between start and end (both inclusive) whose category
// equals the budget category name, ignoring case.
//
// The result is not persisted.
func (s *Service) CalculateCategorySpending(start, end time.Time) []models.BudgetCategory {
	spent := make(map[string]decimal.Decimal)
	for _, t := range FilterByDate(s.GetTransactions(), start, end) {
		if !t.IsExpense() {
			continue
		}

		key := strings.ToLower(t.Category)
		spent[key] = spent[key].Add(t.Amount)
	}

	categories := s.GetBudgetCategories()
	for i := range categories {
		// Missing keys yield the zero Decimal
		categories[i].Spent = spent[strings.ToLower(categories[i].Name)]
	}

	return categories
}

// AddBudgetCategory appends a new budget category with nothing spent.
func (s *Service) AddBudgetCategory(data models.BudgetCategoryEditable) models.BudgetCategory {
	category := models.BudgetCategory{
		ID:                     s.newID(),
		BudgetCategoryEditable: data,
		Spent:                  decimal.Zero,
	}

	save(s, storage.KeyBudgetCategories, append(s.GetBudgetCategories(), category))
	return category
}

// UpdateBudgetCategory replaces the editable fields of a budget category and
// keeps its spent snapshot. It reports false if no such category exists.
func (s *Service) UpdateBudgetCategory(id string, data models.BudgetCategoryEditable) (models.BudgetCategory, bool) {
	categories := s.GetBudgetCategories()

	for i, c := range categories {
		if c.ID != id {
			continue
		}

		categories[i].BudgetCategoryEditable = data
		save(s, storage.KeyBudgetCategories, categories)
		return categories[i], true
	}

	return models.BudgetCategory{}, false
}

// DeleteBudgetCategory removes a budget category. It reports false if no such
// category exists.
func (s *Service) DeleteBudgetCategory(id string) bool {
	categories := s.GetBudgetCategories()

	kept := categories[:0]
	for _, c := range categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	if len(kept) == len(categories) {
		return false
	}

	save(s, storage.KeyBudgetCategories, kept)
	return true
}

type BudgetCategoryUsage struct {
	models.BudgetCategory
	PercentSpent decimal.Decimal `json:"percentSpent" example:"66.5"` // Share of the allocation that has been spent
	OverBudget   bool            `json:"overBudget" example:"false"`  // More than the allocation has been spent
}

type BudgetSummary struct {
	TotalAllocated decimal.Decimal       `json:"totalAllocated" example:"1000"`
	TotalSpent     decimal.Decimal       `json:"totalSpent" example:"665"`
	Remaining      decimal.Decimal       `json:"remaining" example:"335"` // Negative if more was spent than allocated
	Categories     []BudgetCategoryUsage `json:"categories"`
}

var hundred = decimal.NewFromInt(100)

// percentage returns part as percentage of total, or zero if total is zero.
func percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return part.Div(total).Mul(hundred)
}

// SummarizeBudget totals the given categories, usually the result of
// CalculateCategorySpending.
func SummarizeBudget(categories []models.BudgetCategory) BudgetSummary {
	summary := BudgetSummary{
		TotalAllocated: decimal.Zero,
		TotalSpent:     decimal.Zero,
		Categories:     make([]BudgetCategoryUsage, 0, len(categories)),
	}

	for _, c := range categories {
		summary.TotalAllocated = summary.TotalAllocated.Add(c.Allocated)
		summary.TotalSpent = summary.TotalSpent.Add(c.Spent)

		pct := percentage(c.Spent, c.Allocated)
		summary.Categories = append(summary.Categories, BudgetCategoryUsage{
			BudgetCategory: c,
			PercentSpent:   pct.Round(2),
			OverBudget:     pct.GreaterThan(hundred),
		})
	}

	summary.Remaining = summary.TotalAllocated.Sub(summary.TotalSpent)
	return summary
}

// BudgetSummary returns the spending summary of all budget categories for the
// month containing t.
func (s *Service) BudgetSummary(t time.Time) BudgetSummary {
	r := types.GetMonthDateRange(t)
	return SummarizeBudget(s.CalculateCategorySpending(r.StartDate, r.EndDate))
}
