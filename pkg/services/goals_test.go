package services_test

import (
	"testing"
	"time"

	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) addGoal(name, category, target string) models.Goal {
	return suite.service.AddGoal(models.GoalEditable{
		Name:         name,
		Category:     category,
		TargetAmount: amount(target),
		Deadline:     now.AddDate(1, 0, 0),
		Priority:     models.PriorityHigh,
	})
}

func (suite *TestSuiteStandard) TestUpdateAllGoalsProgress() {
	goal := suite.addGoal("Emergency fund", "Savings", "1000")
	suite.expense("Savings", "300", now)

	suite.service.UpdateAllGoalsProgress()

	goals := suite.service.GetGoals()
	suite.Require().Len(goals, 1)
	suite.Assert().Equal(goal.ID, goals[0].ID)
	suite.assertDecimal("300", goals[0].CurrentAmount)
}

func (suite *TestSuiteStandard) TestGoalProgressIsNotAutomatic() {
	suite.addGoal("Emergency fund", "Savings", "1000")
	suite.expense("Savings", "300", now)

	suite.assertDecimal("0", suite.service.GetGoals()[0].CurrentAmount)
}

// Expenses in Savings and Investments fund every goal, so goals sharing a
// category always show the same progress.
func (suite *TestSuiteStandard) TestGoalFundingPool() {
	car := suite.addGoal("Car", "Car", "5000")
	house := suite.addGoal("House", "House", "50000")

	suite.expense("Savings", "100", now.AddDate(-3, 0, 0))
	suite.expense("Investments", "200", now)
	suite.expense("Car", "50", now)
	suite.expense("car", "7", now)
	suite.income("Savings", "1000", now)

	suite.assertDecimal("350", suite.service.CalculateGoalProgress(car.ID, "Car"))
	suite.assertDecimal("300", suite.service.CalculateGoalProgress(house.ID, "House"))
	suite.assertDecimal("0", suite.service.CalculateGoalProgress("missing", "Car"))
}

func (suite *TestSuiteStandard) TestAddGoalForcesZeroProgress() {
	goal := suite.addGoal("Car", "Car", "5000")
	suite.assertDecimal("0", goal.CurrentAmount)

	other := suite.addGoal("House", "House", "50000")
	goals := suite.service.GetGoals()
	suite.Require().Len(goals, 2)
	suite.Assert().Equal(other.ID, goals[0].ID, "new goals are prepended")
	suite.Assert().Equal(models.PriorityHigh, goals[0].Priority)
}

func (suite *TestSuiteStandard) TestUpdateGoal() {
	goal := suite.addGoal("Car", "Car", "5000")

	updated, ok := suite.service.UpdateGoal(goal.ID, models.GoalUpdate{
		GoalEditable: models.GoalEditable{
			Name:         "Bike",
			Category:     "Bike",
			TargetAmount: amount("800"),
			Deadline:     now.AddDate(0, 2, 0),
			Priority:     models.PriorityLow,
		},
		CurrentAmount: amount("120"),
	})
	suite.Require().True(ok)
	suite.Assert().Equal("Bike", updated.Name)
	suite.assertDecimal("120", suite.service.GetGoals()[0].CurrentAmount)

	_, ok = suite.service.UpdateGoal("missing", models.GoalUpdate{})
	suite.Assert().False(ok)
}

func (suite *TestSuiteStandard) TestDeleteGoal() {
	goal := suite.addGoal("Car", "Car", "5000")

	suite.Assert().True(suite.service.DeleteGoal(goal.ID))
	suite.Assert().False(suite.service.DeleteGoal(goal.ID))
	suite.Assert().Len(suite.service.GetGoals(), 0)
}

func (suite *TestSuiteStandard) TestGoalsStatisticsEmpty() {
	stats := suite.service.GetGoalsStatistics()

	suite.Assert().Equal(0, stats.TotalGoals)
	suite.Assert().Equal(0, stats.CompletedGoals)
	suite.assertDecimal("0", stats.OverallProgress)
}

func (suite *TestSuiteStandard) TestGoalsStatistics() {
	suite.addGoal("Car", "Car", "500")
	suite.addGoal("House", "House", "1500")
	suite.expense("Car", "500", now)

	suite.service.UpdateAllGoalsProgress()
	stats := suite.service.GetGoalsStatistics()

	suite.Assert().Equal(2, stats.TotalGoals)
	suite.Assert().Equal(1, stats.CompletedGoals)
	suite.assertDecimal("2000", stats.TotalTargetAmount)
	suite.assertDecimal("500", stats.TotalCurrentAmount)
	suite.assertDecimal("25", stats.OverallProgress)
}

func (suite *TestSuiteStandard) TestGoalsStatisticsNotRounded() {
	suite.addGoal("Bike", "Bike", "300")
	suite.expense("Bike", "100", now)

	suite.service.UpdateAllGoalsProgress()
	stats := suite.service.GetGoalsStatistics()

	suite.Assert().False(stats.OverallProgress.Equal(decimal.RequireFromString("33.33")))
	suite.assertDecimal("33.33", stats.OverallProgress.Round(2))
}

func (suite *TestSuiteStandard) TestGoalProgress() {
	tests := []struct {
		name       string
		current    string
		target     string
		deadline   time.Time
		percentage int
		status     services.ProgressStatus
		days       int
		atRisk     bool
	}{
		{"Good", "800", "1000", now.AddDate(0, 0, 60), 80, services.ProgressGood, 60, false},
		{"Average", "500", "1000", now.Add(36 * time.Hour), 50, services.ProgressAverage, 2, true},
		{"Poor", "100", "1000", now.AddDate(0, 0, 10), 10, services.ProgressPoor, 10, true},
		{"Capped", "1500", "1000", now.AddDate(0, 0, 10), 100, services.ProgressGood, 10, false},
		{"Zero target", "0", "0", now.AddDate(0, 0, 10), 0, services.ProgressPoor, 10, false},
		{"Overdue", "0", "1000", now.AddDate(0, 0, -3), 0, services.ProgressPoor, -3, true},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			details := services.GoalProgress(models.Goal{
				GoalEditable: models.GoalEditable{
					TargetAmount: amount(tt.target),
					Deadline:     tt.deadline,
				},
				CurrentAmount: amount(tt.current),
			}, now)

			assert.Equal(t, tt.percentage, details.Percentage)
			assert.Equal(t, tt.status, details.Status)
			assert.Equal(t, tt.days, details.DaysRemaining)
			assert.Equal(t, tt.atRisk, details.AtRisk)
			assert.Equal(t, tt.days <= 0, details.Overdue)
		})
	}
}
