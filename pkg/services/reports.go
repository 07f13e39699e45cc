package services

import (
	"time"

	"github.com/financeflow/backend/internal/types"
	"github.com/financeflow/backend/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// DefaultTopCategories is the number of categories TopExpenseCategories
// returns for a non-positive limit.
const DefaultTopCategories = 5

// recentTransactions is the number of transactions shown on the dashboard.
const recentTransactions = 5

// FilterByTimeframe returns the transactions from the start of the timeframe
// up to and including now.
func FilterByTimeframe(transactions []models.Transaction, tf types.Timeframe, now time.Time) []models.Transaction {
	r := tf.Range(now)
	return FilterByDate(transactions, r.StartDate, r.EndDate)
}

type CategoryTotal struct {
	Category   string          `json:"category" example:"Food"`
	Total      decimal.Decimal `json:"total" example:"245.5"`
	Count      int             `json:"count" example:"12"`
	Percentage decimal.Decimal `json:"percentage" example:"35.2"` // Share of all expenses, zero if there are none
}

// CategoryTotals groups the expenses by category and sorts the groups by
// total, largest first. Percentages are not rounded.
//
// Categories are grouped by their exact name. "Food" and "food" are separate
// groups here while budget categories match them both.
func CategoryTotals(transactions []models.Transaction) []CategoryTotal {
	index := make(map[string]int)
	totals := []CategoryTotal{}
	sum := decimal.Zero

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}

		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, CategoryTotal{Category: t.Category, Total: decimal.Zero})
		}

		totals[i].Total = totals[i].Total.Add(t.Amount)
		totals[i].Count++
		sum = sum.Add(t.Amount)
	}

	for i := range totals {
		totals[i].Percentage = percentage(totals[i].Total, sum)
	}

	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		return b.Total.Cmp(a.Total)
	})

	return totals
}

type TopCategories struct {
	Categories    []CategoryTotal `json:"categories"`
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"697.4"`
}

// TopExpenseCategories returns the limit categories with the highest expenses
// in the timeframe.
func (s *Service) TopExpenseCategories(tf types.Timeframe, limit int) TopCategories {
	if limit <= 0 {
		limit = DefaultTopCategories
	}

	filtered := FilterByTimeframe(s.GetTransactions(), tf, s.now())
	_, expenses := sums(filtered)

	totals := CategoryTotals(filtered)
	if len(totals) > limit {
		totals = totals[:limit]
	}

	return TopCategories{
		Categories:    totals,
		TotalExpenses: expenses,
	}
}

// sums returns the total income and total expenses of the transactions.
func sums(transactions []models.Transaction) (income, expenses decimal.Decimal) {
	income, expenses = decimal.Zero, decimal.Zero
	for _, t := range transactions {
		if t.IsIncome() {
			income = income.Add(t.Amount)
		} else {
			expenses = expenses.Add(t.Amount)
		}
	}

	return income, expenses
}

type MonthlyTotals struct {
	Month   string          `json:"month" example:"Mar 2024"`
	Income  decimal.Decimal `json:"income" example:"3000"`
	Expense decimal.Decimal `json:"expense" example:"1234.56"`
}

// MonthlySeries returns the income and expenses per calendar month for the
// trend of the timeframe, oldest month first.
//
// Transactions before the first month or after now are ignored.
func MonthlySeries(transactions []models.Transaction, tf types.Timeframe, now time.Time) []MonthlyTotals {
	current := types.MonthOf(now)
	first := current.AddDate(0, -(tf.TrendMonths() - 1))

	series := []MonthlyTotals{}
	index := make(map[string]int)
	for m := first; !m.After(current); m = m.AddDate(0, 1) {
		index[m.Label()] = len(series)
		series = append(series, MonthlyTotals{Month: m.Label(), Income: decimal.Zero, Expense: decimal.Zero})
	}

	for _, t := range FilterByDate(transactions, time.Time(first), now) {
		i, ok := index[types.MonthOf(t.Date.In(now.Location())).Label()]
		if !ok {
			continue
		}

		if t.IsIncome() {
			series[i].Income = series[i].Income.Add(t.Amount)
		} else {
			series[i].Expense = series[i].Expense.Add(t.Amount)
		}
	}

	return series
}

// MonthlySeries is MonthlySeries over all stored transactions.
func (s *Service) MonthlySeries(tf types.Timeframe) []MonthlyTotals {
	return MonthlySeries(s.GetTransactions(), tf, s.now())
}

type YearlyTotals struct {
	Year    int             `json:"year" example:"2024"`
	Income  decimal.Decimal `json:"income" example:"36000"`
	Expense decimal.Decimal `json:"expense" example:"28000"`
}

// YearlySeries returns the income and expenses of the current and the two
// previous calendar years, oldest first.
func YearlySeries(transactions []models.Transaction, now time.Time) []YearlyTotals {
	current := now.Year()
	first := current - 2

	series := make([]YearlyTotals, 0, 3)
	for year := first; year <= current; year++ {
		series = append(series, YearlyTotals{Year: year, Income: decimal.Zero, Expense: decimal.Zero})
	}

	for _, t := range transactions {
		year := t.Date.In(now.Location()).Year()
		if year < first || year > current {
			continue
		}

		i := year - first
		if t.IsIncome() {
			series[i].Income = series[i].Income.Add(t.Amount)
		} else {
			series[i].Expense = series[i].Expense.Add(t.Amount)
		}
	}

	return series
}

// YearlySeries is YearlySeries over all stored transactions.
func (s *Service) YearlySeries() []YearlyTotals {
	return YearlySeries(s.GetTransactions(), s.now())
}

type HealthStatus string

const (
	HealthExcellent  HealthStatus = "excellent"
	HealthGood       HealthStatus = "good"
	HealthAverage    HealthStatus = "average"
	HealthConcerning HealthStatus = "concerning"
	HealthCritical   HealthStatus = "critical"
)

// HealthScore rates the ratio of expenses to income from 0 to 100. Without
// income, the score is 0.
func HealthScore(income, expenses decimal.Decimal) (decimal.Decimal, HealthStatus) {
	score := decimal.Zero
	if income.IsPositive() {
		score = decimal.Min(decimal.Max(decimal.NewFromInt(1).Sub(expenses.Div(income)).Mul(hundred), decimal.Zero), hundred)
	}

	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(70)):
		return score, HealthExcellent
	case score.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return score, HealthGood
	case score.GreaterThanOrEqual(decimal.NewFromInt(30)):
		return score, HealthAverage
	case score.GreaterThanOrEqual(decimal.NewFromInt(10)):
		return score, HealthConcerning
	}

	return score, HealthCritical
}

type DashboardMonth struct {
	Month    string          `json:"month" example:"Mar"`
	Income   decimal.Decimal `json:"income" example:"3000"`
	Expenses decimal.Decimal `json:"expenses" example:"1234.56"`
}

type Dashboard struct {
	TotalIncome        decimal.Decimal      `json:"totalIncome" example:"9000"`
	TotalExpenses      decimal.Decimal      `json:"totalExpenses" example:"4200"`
	Balance            decimal.Decimal      `json:"balance" example:"4800"` // Income minus expenses
	HealthScore        decimal.Decimal      `json:"healthScore" example:"53.33"`
	HealthStatus       HealthStatus         `json:"healthStatus" example:"good"`
	Months             []DashboardMonth     `json:"months"`             // The last six months, oldest first
	RecentTransactions []models.Transaction `json:"recentTransactions"` // Newest by date first
}

// BuildDashboard summarizes all transactions as of now.
func BuildDashboard(transactions []models.Transaction, now time.Time) Dashboard {
	income, expenses := sums(transactions)
	score, status := HealthScore(income, expenses)

	d := Dashboard{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
		HealthScore:   score.Round(2),
		HealthStatus:  status,
	}

	current := types.MonthOf(now)
	for i := 5; i >= 0; i-- {
		m := current.AddDate(0, -i)
		month := DashboardMonth{Month: m.ShortLabel(), Income: decimal.Zero, Expenses: decimal.Zero}

		for _, t := range transactions {
			if !m.Contains(t.Date.In(now.Location())) {
				continue
			}

			if t.IsIncome() {
				month.Income = month.Income.Add(t.Amount)
			} else {
				month.Expenses = month.Expenses.Add(t.Amount)
			}
		}

		d.Months = append(d.Months, month)
	}

	recent := slices.Clone(transactions)
	slices.SortStableFunc(recent, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	if len(recent) > recentTransactions {
		recent = recent[:recentTransactions]
	}

	d.RecentTransactions = recent
	return d
}

// DashboardSummary summarizes all stored transactions.
func (s *Service) DashboardSummary() Dashboard {
	return BuildDashboard(s.GetTransactions(), s.now())
}
