package controllers

import (
	"net/http"
	"strconv"

	"github.com/financeflow/backend/internal/types"
	"github.com/financeflow/backend/pkg/httputil"
	"github.com/financeflow/backend/pkg/services"
	"github.com/gin-gonic/gin"
)

type TopCategoriesResponse struct {
	Data  *services.TopCategories `json:"data"`
	Error *string                 `json:"error" example:"timeframe must be one of week, month, year"` // The error, if any occurred
}

type MonthlyReportResponse struct {
	Data  []services.MonthlyTotals `json:"data"`
	Error *string                  `json:"error" example:"timeframe must be one of week, month, year"` // The error, if any occurred
}

type YearlyReportResponse struct {
	Data  []services.YearlyTotals `json:"data"`
	Error *string                 `json:"error"` // The error, if any occurred
}

type InsightsResponse struct {
	Data  []services.Insight `json:"data"`
	Error *string            `json:"error" example:"timeframe must be one of week, month, year"` // The error, if any occurred
}

type DashboardResponse struct {
	Data  *services.Dashboard `json:"data"`
	Error *string             `json:"error"` // The error, if any occurred
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/categories", httputil.OptionsGet)
	r.GET("/categories", co.GetCategoryReport)

	r.OPTIONS("/monthly", httputil.OptionsGet)
	r.GET("/monthly", co.GetMonthlyReport)

	r.OPTIONS("/yearly", httputil.OptionsGet)
	r.GET("/yearly", co.GetYearlyReport)

	r.OPTIONS("/insights", httputil.OptionsGet)
	r.GET("/insights", co.GetInsights)

	r.OPTIONS("/dashboard", httputil.OptionsGet)
	r.GET("/dashboard", co.GetDashboard)
}

func timeframeQuery(c *gin.Context) (types.Timeframe, error) {
	return types.ParseTimeframe(c.Query("timeframe"))
}

// @Summary		Get top expense categories
// @Description	Returns the categories with the highest expenses in the timeframe
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	TopCategoriesResponse
// @Failure		400			{object}	TopCategoriesResponse
// @Param			timeframe	query		string	false	"One of week, month, year"	default(month)
// @Param			limit		query		int		false	"Number of categories"		default(5)
// @Router			/v1/reports/categories [get]
func (co Controller) GetCategoryReport(c *gin.Context) {
	tf, err := timeframeQuery(c)
	if err != nil {
		c.JSON(httputil.Status(err), TopCategoriesResponse{Error: errorString(err)})
		return
	}

	limit := services.DefaultTopCategories
	if value := c.Query("limit"); value != "" {
		limit, err = strconv.Atoi(value)
		if err != nil || limit <= 0 {
			err = httputil.ErrInvalidQueryString
			c.JSON(httputil.Status(err), TopCategoriesResponse{Error: errorString(err)})
			return
		}
	}

	top := co.Service.TopExpenseCategories(tf, limit)
	for i := range top.Categories {
		top.Categories[i].Percentage = top.Categories[i].Percentage.Round(percentPlaces)
	}

	c.JSON(http.StatusOK, TopCategoriesResponse{Data: &top})
}

// @Summary		Get monthly report
// @Description	Returns income and expenses per month for the trend of the timeframe
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	MonthlyReportResponse
// @Failure		400			{object}	MonthlyReportResponse
// @Param			timeframe	query		string	false	"One of week, month, year"	default(month)
// @Router			/v1/reports/monthly [get]
func (co Controller) GetMonthlyReport(c *gin.Context) {
	tf, err := timeframeQuery(c)
	if err != nil {
		c.JSON(httputil.Status(err), MonthlyReportResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, MonthlyReportResponse{Data: co.Service.MonthlySeries(tf)})
}

// @Summary		Get yearly report
// @Description	Returns income and expenses for the current and the two previous years
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	YearlyReportResponse
// @Router			/v1/reports/yearly [get]
func (co Controller) GetYearlyReport(c *gin.Context) {
	c.JSON(http.StatusOK, YearlyReportResponse{Data: co.Service.YearlySeries()})
}

// @Summary		Get insights
// @Description	Returns up to four observations about the transactions in the timeframe
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	InsightsResponse
// @Failure		400			{object}	InsightsResponse
// @Param			timeframe	query		string	false	"One of week, month, year"	default(month)
// @Router			/v1/reports/insights [get]
func (co Controller) GetInsights(c *gin.Context) {
	tf, err := timeframeQuery(c)
	if err != nil {
		c.JSON(httputil.Status(err), InsightsResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, InsightsResponse{Data: co.Service.GenerateInsights(tf)})
}

// @Summary		Get dashboard
// @Description	Returns totals, financial health, the last six months and the most recent transactions
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Router			/v1/reports/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	dashboard := co.Service.DashboardSummary()
	c.JSON(http.StatusOK, DashboardResponse{Data: &dashboard})
}
