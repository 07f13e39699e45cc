package controllers

import (
	"net/http"
	"time"

	"github.com/financeflow/backend/internal/types"
	"github.com/financeflow/backend/pkg/httputil"
	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/services"
	"github.com/gin-gonic/gin"
)

type BudgetCategoryResponse struct {
	Data  *models.BudgetCategory `json:"data"`                                       // Data for the budget category
	Error *string                `json:"error" example:"the name must not be empty"` // The error, if any occurred
}

type BudgetCategoryListResponse struct {
	Data  []models.BudgetCategory `json:"data"`                                                       // List of budget categories
	Error *string                 `json:"error" example:"the query string contains unparseable data"` // The error, if any occurred
}

type BudgetSummaryResponse struct {
	Data  *services.BudgetSummary `json:"data"`                                                       // Summary of the month
	Error *string                 `json:"error" example:"the query string contains unparseable data"` // The error, if any occurred
}

// RegisterBudgetCategoryRoutes registers the routes for budget categories with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetBudgetCategories)
		r.POST("", co.CreateBudgetCategory)
	}

	// Summary has to be registered before the ID routes
	{
		r.OPTIONS("/summary", httputil.OptionsGet)
		r.GET("/summary", co.GetBudgetSummary)
	}

	// Budget category with ID
	{
		r.OPTIONS("/:id", httputil.OptionsPatchDelete)
		r.PATCH("/:id", co.UpdateBudgetCategory)
		r.DELETE("/:id", co.DeleteBudgetCategory)
	}
}

// monthQuery parses the month query parameter. Without it, the current
// month is used.
func (co Controller) monthQuery(c *gin.Context) (types.Month, bool, error) {
	value := c.Query("month")
	if value == "" {
		return types.MonthOf(co.Service.Now().In(time.Local)), false, nil
	}

	month, err := types.ParseMonth(value, time.Local)
	if err != nil {
		return month, false, httputil.ErrInvalidQueryString
	}

	return month, true, nil
}

func bindBudgetCategory(c *gin.Context) (models.BudgetCategoryEditable, error) {
	var data models.BudgetCategoryEditable
	if err := httputil.BindData(c, &data); err != nil {
		return data, err
	}

	data = data.Trimmed()
	return data, data.Validate()
}

// @Summary		Get budget categories
// @Description	Returns all budget categories. With the month parameter, the spending in that month is calculated first.
// @Tags			Budget Categories
// @Produce		json
// @Success		200		{object}	BudgetCategoryListResponse
// @Failure		400		{object}	BudgetCategoryListResponse
// @Param			month	query		string	false	"Month in YYYY-MM format"
// @Router			/v1/budget-categories [get]
func (co Controller) GetBudgetCategories(c *gin.Context) {
	month, ok, err := co.monthQuery(c)
	if err != nil {
		c.JSON(httputil.Status(err), BudgetCategoryListResponse{Error: errorString(err)})
		return
	}

	if !ok {
		c.JSON(http.StatusOK, BudgetCategoryListResponse{Data: co.Service.GetBudgetCategories()})
		return
	}

	r := month.Range()
	c.JSON(http.StatusOK, BudgetCategoryListResponse{Data: co.Service.CalculateCategorySpending(r.StartDate, r.EndDate)})
}

// @Summary		Get budget summary
// @Description	Returns allocation, spending and remaining amounts of all budget categories for a month
// @Tags			Budget Categories
// @Produce		json
// @Success		200		{object}	BudgetSummaryResponse
// @Failure		400		{object}	BudgetSummaryResponse
// @Param			month	query		string	false	"Month in YYYY-MM format, defaults to the current month"
// @Router			/v1/budget-categories/summary [get]
func (co Controller) GetBudgetSummary(c *gin.Context) {
	month, _, err := co.monthQuery(c)
	if err != nil {
		c.JSON(httputil.Status(err), BudgetSummaryResponse{Error: errorString(err)})
		return
	}

	summary := co.Service.BudgetSummary(time.Time(month))
	c.JSON(http.StatusOK, BudgetSummaryResponse{Data: &summary})
}

// @Summary		Create budget category
// @Description	Creates a new budget category
// @Tags			Budget Categories
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetCategoryResponse
// @Failure		400		{object}	BudgetCategoryResponse
// @Param			budget	body		models.BudgetCategoryEditable	true	"Budget category"
// @Router			/v1/budget-categories [post]
func (co Controller) CreateBudgetCategory(c *gin.Context) {
	data, err := bindBudgetCategory(c)
	if err != nil {
		c.JSON(httputil.Status(err), BudgetCategoryResponse{Error: errorString(err)})
		return
	}

	category := co.Service.AddBudgetCategory(data)
	c.JSON(http.StatusCreated, BudgetCategoryResponse{Data: &category})
}

// @Summary		Update budget category
// @Description	Replaces name, allocation and color of a budget category
// @Tags			Budget Categories
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetCategoryResponse
// @Failure		400		{object}	BudgetCategoryResponse
// @Failure		404		{object}	BudgetCategoryResponse
// @Param			id		path		string							true	"ID formatted as string"
// @Param			budget	body		models.BudgetCategoryEditable	true	"Budget category"
// @Router			/v1/budget-categories/{id} [patch]
func (co Controller) UpdateBudgetCategory(c *gin.Context) {
	data, err := bindBudgetCategory(c)
	if err != nil {
		c.JSON(httputil.Status(err), BudgetCategoryResponse{Error: errorString(err)})
		return
	}

	category, ok := co.Service.UpdateBudgetCategory(c.Param("id"), data)
	if !ok {
		httputil.NotFound(c, "budget category")
		return
	}

	c.JSON(http.StatusOK, BudgetCategoryResponse{Data: &category})
}

// @Summary		Delete budget category
// @Tags			Budget Categories
// @Success		204
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budget-categories/{id} [delete]
func (co Controller) DeleteBudgetCategory(c *gin.Context) {
	if !co.Service.DeleteBudgetCategory(c.Param("id")) {
		httputil.NotFound(c, "budget category")
		return
	}

	c.Status(http.StatusNoContent)
}
