package services

import (
	"fmt"

	"github.com/financeflow/backend/internal/types"
	"github.com/financeflow/backend/pkg/models"
	"github.com/shopspring/decimal"
)

type InsightType string

const (
	InsightPositive   InsightType = "positive"
	InsightSuggestion InsightType = "suggestion"
	InsightWarning    InsightType = "warning"
	InsightForecast   InsightType = "forecast"
)

type Insight struct {
	Type        InsightType `json:"type" example:"suggestion"`
	Title       string      `json:"title" example:"Frequent Small Purchases"`
	Description string      `json:"description" example:"You made 6 small purchases under 20. These can add up quickly."`
}

var (
	// Savings rate in percent at which saving is considered healthy
	targetSavingsRate = decimal.NewFromInt(20)

	// Share of all expenses in percent above which a category is called out
	dominantCategoryShare = decimal.NewFromInt(30)

	// Expenses below this amount count as small purchases
	smallPurchaseLimit = decimal.NewFromInt(20)

	// Number of small purchases from which they are called out
	smallPurchaseCount = 5

	monthsPerYear = decimal.NewFromInt(12)
)

// BuildInsights derives insights from transactions that have already been
// filtered to the timeframe.
//
// Without transactions, a single insight asking to start tracking is
// returned. Otherwise there are at most four insights, evaluated in the
// order savings rate, dominant category, small purchases, forecast.
func BuildInsights(transactions []models.Transaction, tf types.Timeframe) []Insight {
	if len(transactions) == 0 {
		return []Insight{{
			Type:        InsightSuggestion,
			Title:       "No Transaction Data",
			Description: fmt.Sprintf("Start tracking your finances for this %s to get personalized insights.", tf),
		}}
	}

	insights := []Insight{}
	income, expenses := sums(transactions)

	if income.IsPositive() {
		rate := income.Sub(expenses).Div(income).Mul(hundred)

		switch {
		case rate.GreaterThanOrEqual(targetSavingsRate):
			insights = append(insights, Insight{
				Type:        InsightPositive,
				Title:       "Excellent Savings Rate",
				Description: fmt.Sprintf("You're saving %s%% of your income, which is above the recommended 20%%.", rate.StringFixed(1)),
			})
		case rate.IsPositive():
			insights = append(insights, Insight{
				Type:        InsightSuggestion,
				Title:       "Improve Your Savings",
				Description: fmt.Sprintf("Your current savings rate is %s%%. Try to aim for at least 20%% to build financial security.", rate.StringFixed(1)),
			})
		default:
			insights = append(insights, Insight{
				Type:        InsightWarning,
				Title:       "Spending Exceeds Income",
				Description: "Your expenses are higher than your income. Consider reviewing your budget to avoid debt.",
			})
		}
	}

	if totals := CategoryTotals(transactions); len(totals) > 0 && totals[0].Percentage.GreaterThan(dominantCategoryShare) {
		insights = append(insights, Insight{
			Type:        InsightSuggestion,
			Title:       fmt.Sprintf("High %s Spending", totals[0].Category),
			Description: fmt.Sprintf("%s accounts for %s%% of your expenses. Consider if there are ways to reduce this.", totals[0].Category, totals[0].Percentage.StringFixed(1)),
		})
	}

	small := 0
	for _, t := range transactions {
		if t.IsExpense() && t.Amount.LessThan(smallPurchaseLimit) {
			small++
		}
	}

	if small >= smallPurchaseCount {
		insights = append(insights, Insight{
			Type:        InsightSuggestion,
			Title:       "Frequent Small Purchases",
			Description: fmt.Sprintf("You made %d small purchases under %s. These can add up quickly.", small, smallPurchaseLimit),
		})
	}

	if tf == types.TimeframeMonth || tf == types.TimeframeYear {
		insights = append(insights, Insight{
			Type:        InsightForecast,
			Title:       "Spending Forecast",
			Description: fmt.Sprintf("If your spending patterns continue, you'll spend approximately %s this year.", expenses.Mul(monthsPerYear).StringFixed(2)),
		})
	}

	return insights
}

// GenerateInsights derives insights from the stored transactions in the
// timeframe ending now.
func (s *Service) GenerateInsights(tf types.Timeframe) []Insight {
	return BuildInsights(FilterByTimeframe(s.GetTransactions(), tf, s.now()), tf)
}
