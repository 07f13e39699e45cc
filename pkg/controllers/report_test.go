package controllers_test

import (
	"net/http"
	"testing"

	"github.com/financeflow/backend/pkg/controllers"
	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/services"
	"github.com/financeflow/backend/pkg/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createReportTransactions() {
	suite.createTestTransaction(transactionBody("Salary", 3000, "2024-03-01T12:00:00Z", models.TransactionTypeIncome))
	suite.createTestTransaction(transactionBody("Housing", 1000, "2024-03-02T12:00:00Z", models.TransactionTypeExpense))
	suite.createTestTransaction(transactionBody("Food", 300, "2024-03-05T12:00:00Z", models.TransactionTypeExpense))
	suite.createTestTransaction(transactionBody("Fun", 200, "2024-03-14T12:00:00Z", models.TransactionTypeExpense))
	suite.createTestTransaction(transactionBody("Food", 100, "2024-02-10T12:00:00Z", models.TransactionTypeExpense))
}

func (suite *TestSuiteStandard) TestReportsInvalidTimeframe() {
	for _, path := range []string{"categories", "monthly", "insights"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodGet, "http://example.com/v1/reports/"+path+"?timeframe=decade", "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), "timeframe must be one of")
		})
	}
}

func (suite *TestSuiteStandard) TestReportsCategories() {
	suite.createReportTransactions()

	r := suite.request(http.MethodGet, "http://example.com/v1/reports/categories?limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.TopCategoriesResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data.Categories, 2)
	suite.Assert().Equal("Housing", response.Data.Categories[0].Category)
	suite.Assert().Equal("Food", response.Data.Categories[1].Category)
	suite.Assert().True(decimal.NewFromInt(300).Equal(response.Data.Categories[1].Total), "only expenses of this month count")
	suite.Assert().True(decimal.NewFromInt(1500).Equal(response.Data.TotalExpenses))
	suite.Assert().True(decimal.RequireFromString("66.67").Equal(response.Data.Categories[0].Percentage), "percentage is %s", response.Data.Categories[0].Percentage)
	suite.Assert().True(decimal.NewFromInt(20).Equal(response.Data.Categories[1].Percentage))

	r = suite.request(http.MethodGet, "http://example.com/v1/reports/categories?limit=none", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodGet, "http://example.com/v1/reports/categories?limit=0", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestReportsMonthlyAndYearly() {
	suite.createReportTransactions()

	r := suite.request(http.MethodGet, "http://example.com/v1/reports/monthly", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var monthly controllers.MonthlyReportResponse
	test.DecodeResponse(suite.T(), &r, &monthly)
	suite.Require().Len(monthly.Data, 6)

	last := monthly.Data[len(monthly.Data)-1]
	suite.Assert().Equal("Mar 2024", last.Month)
	suite.Assert().True(decimal.NewFromInt(3000).Equal(last.Income))
	suite.Assert().True(decimal.NewFromInt(1500).Equal(last.Expense))

	r = suite.request(http.MethodGet, "http://example.com/v1/reports/monthly?timeframe=year", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &monthly)
	suite.Assert().Len(monthly.Data, 12)

	r = suite.request(http.MethodGet, "http://example.com/v1/reports/yearly", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var yearly controllers.YearlyReportResponse
	test.DecodeResponse(suite.T(), &r, &yearly)
	suite.Require().Len(yearly.Data, 3)
	suite.Assert().Equal(2024, yearly.Data[2].Year)
	suite.Assert().True(decimal.NewFromInt(1600).Equal(yearly.Data[2].Expense))
}

func (suite *TestSuiteStandard) TestReportsInsights() {
	r := suite.request(http.MethodGet, "http://example.com/v1/reports/insights", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.InsightsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(services.InsightSuggestion, response.Data[0].Type)

	suite.createReportTransactions()

	r = suite.request(http.MethodGet, "http://example.com/v1/reports/insights?timeframe=month", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotEmpty(response.Data)
	suite.Assert().LessOrEqual(len(response.Data), 4)
	suite.Assert().Equal(services.InsightPositive, response.Data[0].Type, "50% of the income is saved")
}

func (suite *TestSuiteStandard) TestReportsDashboard() {
	suite.createReportTransactions()

	r := suite.request(http.MethodGet, "http://example.com/v1/reports/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	dashboard := response.Data
	suite.Assert().True(decimal.NewFromInt(3000).Equal(dashboard.TotalIncome))
	suite.Assert().True(decimal.NewFromInt(1600).Equal(dashboard.TotalExpenses))
	suite.Assert().True(decimal.NewFromInt(1400).Equal(dashboard.Balance))
	suite.Assert().Len(dashboard.Months, 6)
	suite.Assert().Len(dashboard.RecentTransactions, 5)
	suite.Assert().Equal("Fun", dashboard.RecentTransactions[0].Category, "most recent transaction first")
	suite.Assert().NotEqual(services.HealthStatus(""), dashboard.HealthStatus)
}
