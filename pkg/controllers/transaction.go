package controllers

import (
	"net/http"
	"time"

	"github.com/financeflow/backend/pkg/httputil"
	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/services"
	"github.com/gin-gonic/gin"
)

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`                                        // Data for the transaction
	Error *string             `json:"error" example:"the amount must be positive"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`                                                       // List of transactions
	Error *string              `json:"error" example:"the query string contains unparseable data"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Search string `form:"search"` // Case-insensitive search in description and category
	Glob   bool   `form:"glob"`   // Match search as a glob pattern against the whole description or category
	From   string `form:"from"`   // Transactions at and after this RFC 3339 time or YYYY-MM-DD date
	Until  string `form:"until"`  // Transactions at and before this RFC 3339 time or YYYY-MM-DD date
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// bindTransaction binds and validates the transaction in the request body.
func bindTransaction(c *gin.Context) (models.TransactionCreate, error) {
	var data models.TransactionCreate
	if err := httputil.BindData(c, &data); err != nil {
		return data, err
	}

	data = data.Trimmed()
	return data, data.Validate()
}

// @Summary		Get transactions
// @Description	Returns the transactions matching the filter, most recently added first
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	TransactionListResponse
// @Failure		400		{object}	TransactionListResponse
// @Param			search	query		string	false	"Search term"
// @Param			glob	query		bool	false	"Match the search term as glob pattern"
// @Param			from	query		string	false	"Start of the date range"
// @Param			until	query		string	false	"End of the date range"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	from, err := httputil.TimeQuery(c, "from", false)
	if err != nil {
		c.JSON(httputil.Status(err), TransactionListResponse{Error: errorString(err)})
		return
	}

	until, err := httputil.TimeQuery(c, "until", true)
	if err != nil {
		c.JSON(httputil.Status(err), TransactionListResponse{Error: errorString(err)})
		return
	}

	useGlob, err := httputil.BoolQuery(c, "glob")
	if err != nil {
		c.JSON(httputil.Status(err), TransactionListResponse{Error: errorString(err)})
		return
	}

	var transactions []models.Transaction
	if useGlob {
		transactions = co.Service.SearchTransactionsGlob(c.Query("search"))
	} else {
		transactions = co.Service.SearchTransactions(c.Query("search"))
	}

	if !from.IsZero() || !until.IsZero() {
		if until.IsZero() {
			until = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
		}

		transactions = services.FilterByDate(transactions, from, until)
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Param			transaction	body		models.TransactionCreate	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	data, err := bindTransaction(c)
	if err != nil {
		c.JSON(httputil.Status(err), TransactionResponse{Error: errorString(err)})
		return
	}

	transaction := co.Service.AddTransaction(data)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	transaction, ok := co.Service.GetTransaction(c.Param("id"))
	if !ok {
		httputil.NotFound(c, "transaction")
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Update transaction
// @Description	Replaces all fields of an existing transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Param			id			path		string						true	"ID formatted as string"
// @Param			transaction	body		models.TransactionCreate	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	data, err := bindTransaction(c)
	if err != nil {
		c.JSON(httputil.Status(err), TransactionResponse{Error: errorString(err)})
		return
	}

	transaction, ok := co.Service.UpdateTransaction(c.Param("id"), data)
	if !ok {
		httputil.NotFound(c, "transaction")
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	if !co.Service.DeleteTransaction(c.Param("id")) {
		httputil.NotFound(c, "transaction")
		return
	}

	c.Status(http.StatusNoContent)
}
