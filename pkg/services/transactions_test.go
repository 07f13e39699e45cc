package services_test

import (
	"testing"
	"time"

	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/storage"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsEmpty() {
	suite.Assert().Len(suite.service.GetTransactions(), 0)
	suite.Assert().NotNil(suite.service.GetTransactions())
}

func (suite *TestSuiteStandard) TestTransactionsMalformed() {
	suite.Require().Nil(suite.storage.Set(storage.KeyTransactions, `{"not": "a list"}`))
	suite.Assert().Len(suite.service.GetTransactions(), 0)

	suite.Require().Nil(suite.storage.Set(storage.KeyTransactions, `[{"id":"a","type":"gift","date":"2024-03-01T00:00:00Z"}]`))
	suite.Assert().Len(suite.service.GetTransactions(), 0)
}

func (suite *TestSuiteStandard) TestAddTransactionRoundTrip() {
	data := models.TransactionCreate{
		Type:        models.TransactionTypeExpense,
		Category:    "Food",
		Amount:      amount("50"),
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Groceries",
	}

	created := suite.service.AddTransaction(data)
	suite.Assert().NotEmpty(created.ID)

	transactions := suite.service.GetTransactions()
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(created.ID, transactions[0].ID)
	suite.Assert().Equal(data.Category, transactions[0].Category)
	suite.Assert().Equal(data.Description, transactions[0].Description)
	suite.Assert().True(data.Date.Equal(transactions[0].Date))
	suite.assertDecimal("50", transactions[0].Amount)
}

func (suite *TestSuiteStandard) TestAddTransactionPrepends() {
	first := suite.expense("Food", "1", now)
	second := suite.expense("Food", "2", now)

	transactions := suite.service.GetTransactions()
	suite.Require().Len(transactions, 2)
	suite.Assert().Equal(second.ID, transactions[0].ID)
	suite.Assert().Equal(first.ID, transactions[1].ID)
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	created := suite.expense("Food", "10", now)

	updated, ok := suite.service.UpdateTransaction(created.ID, models.TransactionCreate{
		Type:     models.TransactionTypeIncome,
		Category: "Salary",
		Amount:   amount("2000"),
		Date:     now,
	})
	suite.Require().True(ok)
	suite.Assert().Equal(created.ID, updated.ID)
	suite.Assert().Equal("Salary", updated.Category)

	stored, ok := suite.service.GetTransaction(created.ID)
	suite.Require().True(ok)
	suite.Assert().Equal(models.TransactionTypeIncome, stored.Type)
	suite.assertDecimal("2000", stored.Amount)
}

func (suite *TestSuiteStandard) TestUpdateTransactionNotFound() {
	suite.expense("Food", "10", now)

	_, ok := suite.service.UpdateTransaction("missing", models.TransactionCreate{Category: "Food"})
	suite.Assert().False(ok)
	suite.Assert().Equal("Food", suite.service.GetTransactions()[0].Category)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	keep := suite.expense("Food", "10", now)
	remove := suite.expense("Rent", "500", now)

	suite.Assert().True(suite.service.DeleteTransaction(remove.ID))
	suite.Assert().False(suite.service.DeleteTransaction(remove.ID))

	transactions := suite.service.GetTransactions()
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(keep.ID, transactions[0].ID)

	_, ok := suite.service.GetTransaction(remove.ID)
	suite.Assert().False(ok)
}

func (suite *TestSuiteStandard) TestSearchTransactions() {
	suite.service.AddTransaction(models.TransactionCreate{Type: models.TransactionTypeExpense, Category: "Food", Amount: amount("5"), Date: now, Description: "Coffee beans"})
	suite.service.AddTransaction(models.TransactionCreate{Type: models.TransactionTypeExpense, Category: "Transportation", Amount: amount("30"), Date: now, Description: "Bus pass"})
	suite.service.AddTransaction(models.TransactionCreate{Type: models.TransactionTypeIncome, Category: "Salary", Amount: amount("3000"), Date: now})
	suite.service.AddTransaction(models.TransactionCreate{Type: models.TransactionTypeExpense, Category: "Travel", Amount: amount("120"), Date: now, Description: "5*star hotel"})
	suite.service.AddTransaction(models.TransactionCreate{Type: models.TransactionTypeExpense, Category: "Food", Amount: amount("18"), Date: now, Description: "seafood"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Empty", "", 5},
		{"Whitespace", "   ", 5},
		{"Description", "coffee", 1},
		{"Category ignoring case", "SALARY", 1},
		{"Substring of both", "a", 5},
		{"No match", "rent", 0},
		{"Star is literal", "5*star", 1},
		{"Star alone", "*", 1},
		{"Star pattern is no glob", "bus*", 0},
		{"Leading space is kept", " food", 0},
		{"Trailing space is kept", "bus ", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Len(t, suite.service.SearchTransactions(tt.query), tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestSearchTransactionsGlob() {
	suite.service.AddTransaction(models.TransactionCreate{Type: models.TransactionTypeExpense, Category: "Food", Amount: amount("5"), Date: now, Description: "Coffee beans"})
	suite.service.AddTransaction(models.TransactionCreate{Type: models.TransactionTypeExpense, Category: "Transportation", Amount: amount("30"), Date: now, Description: "Bus pass"})
	suite.service.AddTransaction(models.TransactionCreate{Type: models.TransactionTypeIncome, Category: "Salary", Amount: amount("3000"), Date: now})

	tests := []struct {
		name    string
		pattern string
		count   int
	}{
		{"Empty", "", 3},
		{"Prefix", "BUS*", 1},
		{"Over category", "*port*", 1},
		{"Anchored", "beans*", 0},
		{"Whole field", "salary", 1},
		{"Everything", "*", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Len(t, suite.service.SearchTransactionsGlob(tt.pattern), tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestSearchEmptyMatchesGetTransactions() {
	suite.expense("Food", "5", now)
	suite.income("Salary", "100", now)

	suite.Assert().ElementsMatch(suite.service.GetTransactions(), suite.service.SearchTransactions(""))
}

func (suite *TestSuiteStandard) TestGetTransactionsByDateRange() {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.expense("Food", "1", start)
	suite.expense("Food", "2", end)
	suite.expense("Food", "3", end.Add(time.Hour))
	suite.expense("Food", "4", start.Add(-time.Millisecond))

	transactions := suite.service.GetTransactionsByDateRange(start, end)
	suite.Require().Len(transactions, 2)
	suite.assertDecimal("2", transactions[0].Amount)
	suite.assertDecimal("1", transactions[1].Amount)
}
