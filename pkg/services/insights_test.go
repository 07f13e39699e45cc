package services_test

import (
	"time"

	"github.com/financeflow/backend/internal/types"
	"github.com/financeflow/backend/pkg/services"
)

func (suite *TestSuiteStandard) TestInsightsNoData() {
	insights := suite.service.GenerateInsights(types.TimeframeWeek)

	suite.Require().Len(insights, 1)
	suite.Assert().Equal(services.InsightSuggestion, insights[0].Type)
	suite.Assert().Contains(insights[0].Description, "week")
}

func (suite *TestSuiteStandard) TestInsightsAllRules() {
	suite.income("Salary", "1000", now)
	suite.expense("Rent", "500", now)
	for i := 0; i < 5; i++ {
		suite.expense("Coffee", "4", now)
	}

	insights := suite.service.GenerateInsights(types.TimeframeMonth)
	suite.Require().Len(insights, 4)

	suite.Assert().Equal(services.InsightPositive, insights[0].Type)
	suite.Assert().Contains(insights[0].Description, "48.0%")

	suite.Assert().Equal("High Rent Spending", insights[1].Title)
	suite.Assert().Equal("Frequent Small Purchases", insights[2].Title)
	suite.Assert().Contains(insights[2].Description, "5 small purchases")

	suite.Assert().Equal(services.InsightForecast, insights[3].Type)
	suite.Assert().Contains(insights[3].Description, "6240.00")
}

func (suite *TestSuiteStandard) TestInsightsSavingsRate() {
	tests := []struct {
		name     string
		expenses string
		kind     services.InsightType
	}{
		{"Positive", "800", services.InsightPositive},
		{"Suggestion", "900", services.InsightSuggestion},
		{"Break even", "1000", services.InsightWarning},
		{"Overspent", "1500", services.InsightWarning},
	}

	for _, tt := range tests {
		suite.SetupTest()
		suite.income("Salary", "1000", now)
		suite.expense("Rent", tt.expenses, now)

		insights := suite.service.GenerateInsights(types.TimeframeWeek)
		suite.Require().NotEmpty(insights, tt.name)
		suite.Assert().Equal(tt.kind, insights[0].Type, tt.name)
	}
}

func (suite *TestSuiteStandard) TestInsightsWeekHasNoForecast() {
	suite.expense("Food", "10", now)
	suite.expense("Rent", "10", now)
	suite.expense("Fuel", "10", now)
	suite.expense("Gym", "10", now)

	// No income, no category above 30% and fewer than five small purchases
	suite.Assert().Len(suite.service.GenerateInsights(types.TimeframeWeek), 0)
	suite.Assert().Len(suite.service.GenerateInsights(types.TimeframeYear), 1)
}

func (suite *TestSuiteStandard) TestInsightsDominantCategoryThreshold() {
	tests := []struct {
		name     string
		amounts  []string
		expected []string
	}{
		{"Just above", []string{"30004", "29999", "29999", "9998"}, []string{"High A Spending"}},
		{"Exactly 30%", []string{"30", "30", "30", "10"}, []string{}},
	}

	for _, tt := range tests {
		suite.SetupTest()
		for i, a := range tt.amounts {
			suite.expense(string(rune('A'+i)), a, now)
		}

		titles := []string{}
		for _, insight := range suite.service.GenerateInsights(types.TimeframeWeek) {
			titles = append(titles, insight.Title)
		}
		suite.Assert().Equal(tt.expected, titles, tt.name)
	}
}

func (suite *TestSuiteStandard) TestInsightsIgnoreOtherTimeframes() {
	suite.expense("Food", "10", now.AddDate(0, -2, 0))

	insights := services.BuildInsights(
		services.FilterByTimeframe(suite.service.GetTransactions(), types.TimeframeMonth, now),
		types.TimeframeMonth,
	)
	suite.Require().Len(insights, 1)
	suite.Assert().Equal("No Transaction Data", insights[0].Title)
}

func (suite *TestSuiteStandard) TestInsightsNeverExceedFour() {
	for i := 0; i < 20; i++ {
		suite.expense("Snacks", "1", now.Add(-time.Duration(i)*time.Hour))
	}
	suite.income("Salary", "10", now)

	for _, tf := range []types.Timeframe{types.TimeframeWeek, types.TimeframeMonth, types.TimeframeYear} {
		suite.Assert().LessOrEqual(len(suite.service.GenerateInsights(tf)), 4)
	}
}
