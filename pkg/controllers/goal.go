package controllers

import (
	"net/http"

	"github.com/financeflow/backend/pkg/httputil"
	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/services"
	"github.com/gin-gonic/gin"
)

// Goal is a goal with its progress details at the time of the request.
type Goal struct {
	models.Goal
	Progress services.GoalProgressDetails `json:"progress"`
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                               // Data for the goal
	Error *string `json:"error" example:"the deadline must be in the future"` // The error, if any occurred
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                                // List of goals
	Error *string `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type GoalStatisticsResponse struct {
	Data  *services.GoalStatistics `json:"data"`                                                                // Statistics over all goals
	Error *string                  `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}

	// Aggregates
	{
		r.OPTIONS("/progress", httputil.OptionsPost)
		r.POST("/progress", co.UpdateGoalsProgress)
		r.OPTIONS("/statistics", httputil.OptionsGet)
		r.GET("/statistics", co.GetGoalStatistics)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", httputil.OptionsPatchDelete)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
}

func (co Controller) withProgress(goals []models.Goal) []Goal {
	now := co.Service.Now()

	data := make([]Goal, 0, len(goals))
	for _, g := range goals {
		data = append(data, Goal{Goal: g, Progress: services.GoalProgress(g, now)})
	}

	return data
}

// @Summary		Get goals
// @Description	Returns all goals with the amounts of the last progress recalculation
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	c.JSON(http.StatusOK, GoalListResponse{Data: co.withProgress(co.Service.GetGoals())})
}

// @Summary		Create goal
// @Description	Creates a new goal. The deadline must be in the future.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Param			goal	body		models.GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var data models.GoalEditable
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(httputil.Status(err), GoalResponse{Error: errorString(err)})
		return
	}

	data = data.Trimmed()
	err := data.Validate()
	if err == nil {
		err = data.ValidateDeadline(co.Service.Now())
	}

	if err != nil {
		c.JSON(httputil.Status(err), GoalResponse{Error: errorString(err)})
		return
	}

	goal := co.withProgress([]models.Goal{co.Service.AddGoal(data)})[0]
	c.JSON(http.StatusCreated, GoalResponse{Data: &goal})
}

// @Summary		Update goal
// @Description	Replaces all fields of a goal, including the current amount
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Param			id		path		string				true	"ID formatted as string"
// @Param			goal	body		models.GoalUpdate	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	var data models.GoalUpdate
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(httputil.Status(err), GoalResponse{Error: errorString(err)})
		return
	}

	data.GoalEditable = data.GoalEditable.Trimmed()
	if err := data.Validate(); err != nil {
		c.JSON(httputil.Status(err), GoalResponse{Error: errorString(err)})
		return
	}

	updated, ok := co.Service.UpdateGoal(c.Param("id"), data)
	if !ok {
		httputil.NotFound(c, "goal")
		return
	}

	goal := co.withProgress([]models.Goal{updated})[0]
	c.JSON(http.StatusOK, GoalResponse{Data: &goal})
}

// @Summary		Delete goal
// @Tags			Goals
// @Success		204
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	if !co.Service.DeleteGoal(c.Param("id")) {
		httputil.NotFound(c, "goal")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Recalculate goal progress
// @Description	Recalculates the current amount of all goals from the transactions and returns the updated goals
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Router			/v1/goals/progress [post]
func (co Controller) UpdateGoalsProgress(c *gin.Context) {
	c.JSON(http.StatusOK, GoalListResponse{Data: co.withProgress(co.Service.UpdateAllGoalsProgress())})
}

// @Summary		Get goal statistics
// @Description	Returns totals over all goals as of their last progress recalculation
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalStatisticsResponse
// @Router			/v1/goals/statistics [get]
func (co Controller) GetGoalStatistics(c *gin.Context) {
	stats := co.Service.GetGoalsStatistics()
	stats.OverallProgress = stats.OverallProgress.Round(percentPlaces)
	c.JSON(http.StatusOK, GoalStatisticsResponse{Data: &stats})
}
