package controllers_test

import (
	"bytes"
	"net/http"

	"github.com/financeflow/backend/pkg/controllers"
	"github.com/financeflow/backend/pkg/export"
	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/services"
	"github.com/financeflow/backend/pkg/test"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestDataBackupClearRestore() {
	suite.createTestTransaction(transactionBody("Food", 50, "2024-03-10T12:00:00Z", models.TransactionTypeExpense))
	suite.createTestBudgetCategory("Food", 200)
	suite.createTestGoal(goalBody("Car", "Savings", 1000, "2024-12-31T00:00:00Z"))

	r := suite.request(http.MethodGet, "http://example.com/v1/data", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var backup controllers.BackupResponse
	test.DecodeResponse(suite.T(), &r, &backup)
	suite.Require().NotNil(backup.Data)
	suite.Assert().Len(backup.Data.Transactions, 1)
	suite.Assert().Len(backup.Data.Budgets, 1)
	suite.Assert().Len(backup.Data.Goals, 1)
	suite.Assert().True(now.Equal(backup.Data.ExportedAt))

	r = suite.request(http.MethodDelete, "http://example.com/v1/data", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var cleared controllers.BackupResponse
	r = suite.request(http.MethodGet, "http://example.com/v1/data", "")
	test.DecodeResponse(suite.T(), &r, &cleared)
	suite.Assert().Empty(cleared.Data.Transactions)
	suite.Assert().Empty(cleared.Data.Budgets)
	suite.Assert().Empty(cleared.Data.Goals)

	r = suite.request(http.MethodPost, "http://example.com/v1/data", *backup.Data)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var restored controllers.BackupResponse
	r = suite.request(http.MethodGet, "http://example.com/v1/data", "")
	test.DecodeResponse(suite.T(), &r, &restored)
	suite.Assert().Equal(backup.Data.Transactions[0].ID, restored.Data.Transactions[0].ID)
	suite.Assert().Equal(backup.Data.Budgets[0].Name, restored.Data.Budgets[0].Name)
	suite.Assert().Equal(backup.Data.Goals[0].Name, restored.Data.Goals[0].Name)
	suite.Assert().Equal(backup.Data.Settings, restored.Data.Settings)
}

func (suite *TestSuiteStandard) TestDataRestoreInvalid() {
	suite.createTestTransaction(transactionBody("Food", 50, "2024-03-10T12:00:00Z", models.TransactionTypeExpense))

	r := suite.request(http.MethodPost, "http://example.com/v1/data", `{"transactions": [{"category": "Food"}], "settings": {"dateFormat": "DD/MM/YYYY"}}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), services.ErrInvalidBackup.Error())

	r = suite.request(http.MethodGet, "http://example.com/v1/transactions", "")
	var list controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 1, "invalid backups do not change any data")
}

func (suite *TestSuiteStandard) TestDataTransactionsXLSX() {
	suite.createTestTransaction(transactionBody("Food", 50, "2024-03-10T12:00:00Z", models.TransactionTypeExpense))

	r := suite.request(http.MethodGet, "http://example.com/v1/data/transactions.xlsx", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(export.ContentType, r.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	suite.Require().NoError(err)
	defer f.Close()

	value, err := f.GetCellValue(export.SheetName, "C2")
	suite.Require().NoError(err)
	suite.Assert().Equal("Food", value)
}
