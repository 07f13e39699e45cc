package services

import (
	"math"
	"time"

	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/storage"
	"github.com/shopspring/decimal"
)

// Expenses in these categories fund every goal, in addition to the goal's
// own category.
var fundingCategories = []string{"Savings", "Investments"}

// GetGoals returns all goals with the current amount of the last
// recalculation.
func (s *Service) GetGoals() []models.Goal {
	return load[models.Goal](s, storage.KeyGoals)
}

// AddGoal stores a new goal in front of all existing ones. The current
// amount always starts at zero.
func (s *Service) AddGoal(data models.GoalEditable) models.Goal {
	goal := models.Goal{
		ID:            s.newID(),
		GoalEditable:  data,
		CurrentAmount: decimal.Zero,
	}

	save(s, storage.KeyGoals, append([]models.Goal{goal}, s.GetGoals()...))
	return goal
}

// UpdateGoal replaces all editable fields of a goal, including the current
// amount. It reports false if no such goal exists.
func (s *Service) UpdateGoal(id string, data models.GoalUpdate) (models.Goal, bool) {
	goals := s.GetGoals()

	for i, g := range goals {
		if g.ID != id {
			continue
		}

		goals[i].GoalEditable = data.GoalEditable
		goals[i].CurrentAmount = data.CurrentAmount
		save(s, storage.KeyGoals, goals)
		return goals[i], true
	}

	return models.Goal{}, false
}

// DeleteGoal removes a goal. It reports false if no such goal exists.
func (s *Service) DeleteGoal(id string) bool {
	goals := s.GetGoals()

	kept := goals[:0]
	for _, g := range goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}

	if len(kept) == len(goals) {
		return false
	}

	save(s, storage.KeyGoals, kept)
	return true
}

func funds(category, goalCategory string) bool {
	if category == goalCategory {
		return true
	}

	for _, c := range fundingCategories {
		if category == c {
			return true
		}
	}

	return false
}

// goalProgress sums all expenses that fund a goal in goalCategory.
//
// Every expense in Savings or Investments counts for every goal. Goals that
// share a category therefore share one pool of funds and all show the same
// progress.
func goalProgress(transactions []models.Transaction, goalCategory string) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		if t.IsExpense() && funds(t.Category, goalCategory) {
			sum = sum.Add(t.Amount)
		}
	}

	return sum
}

// CalculateGoalProgress returns the amount saved towards the goal with the
// given ID over all time. It returns zero if no such goal exists.
func (s *Service) CalculateGoalProgress(goalID, goalCategory string) decimal.Decimal {
	found := false
	for _, g := range s.GetGoals() {
		if g.ID == goalID {
			found = true
			break
		}
	}

	if !found {
		return decimal.Zero
	}

	return goalProgress(s.GetTransactions(), goalCategory)
}

// UpdateAllGoalsProgress recalculates and stores the current amount of every
// goal. Transaction changes do not trigger this.
func (s *Service) UpdateAllGoalsProgress() []models.Goal {
	goals := s.GetGoals()
	transactions := s.GetTransactions()

	for i := range goals {
		goals[i].CurrentAmount = goalProgress(transactions, goals[i].Category)
	}

	save(s, storage.KeyGoals, goals)
	s.log.Debug().Int("goals", len(goals)).Msg("updated goal progress")
	return goals
}

type GoalStatistics struct {
	TotalTargetAmount  decimal.Decimal `json:"totalTargetAmount" example:"5000"`
	TotalCurrentAmount decimal.Decimal `json:"totalCurrentAmount" example:"1250"`
	OverallProgress    decimal.Decimal `json:"overallProgress" example:"25"` // Percentage of the total target saved, zero without goals
	TotalGoals         int             `json:"totalGoals" example:"3"`
	CompletedGoals     int             `json:"completedGoals" example:"1"`
}

// GetGoalsStatistics aggregates all goals as of their last recalculation.
func (s *Service) GetGoalsStatistics() GoalStatistics {
	goals := s.GetGoals()

	stats := GoalStatistics{
		TotalTargetAmount:  decimal.Zero,
		TotalCurrentAmount: decimal.Zero,
		TotalGoals:         len(goals),
	}

	for _, g := range goals {
		stats.TotalTargetAmount = stats.TotalTargetAmount.Add(g.TargetAmount)
		stats.TotalCurrentAmount = stats.TotalCurrentAmount.Add(g.CurrentAmount)

		if g.Completed() {
			stats.CompletedGoals++
		}
	}

	stats.OverallProgress = percentage(stats.TotalCurrentAmount, stats.TotalTargetAmount)
	return stats
}

// Goals with less than this share saved and under 30 days left are at risk
var atRiskRatio = decimal.RequireFromString("0.75")

type ProgressStatus string

const (
	ProgressGood    ProgressStatus = "good"
	ProgressAverage ProgressStatus = "average"
	ProgressPoor    ProgressStatus = "poor"
)

// GoalProgressDetails describes how far a goal is from being reached.
type GoalProgressDetails struct {
	RemainingAmount decimal.Decimal `json:"remainingAmount" example:"700"` // Negative once the target is exceeded
	DaysRemaining   int             `json:"daysRemaining" example:"42"`    // Zero or negative when overdue
	Percentage      int             `json:"percentage" example:"30"`       // Capped at 100
	Status          ProgressStatus  `json:"status" example:"poor"`
	Overdue         bool            `json:"overdue" example:"false"`
	AtRisk          bool            `json:"atRisk" example:"false"` // Less than 30 days left and less than 75% saved
}

// GoalProgress computes the progress details of goal at now.
func GoalProgress(goal models.Goal, now time.Time) GoalProgressDetails {
	details := GoalProgressDetails{
		RemainingAmount: goal.TargetAmount.Sub(goal.CurrentAmount),
		DaysRemaining:   int(math.Ceil(goal.Deadline.Sub(now).Hours() / 24)),
	}

	if !goal.TargetAmount.IsZero() {
		ratio := goal.CurrentAmount.Div(goal.TargetAmount)
		details.Percentage = int(math.Min(100, float64(ratio.Mul(hundred).Round(0).IntPart())))
		details.AtRisk = details.DaysRemaining < 30 && ratio.LessThan(atRiskRatio)
	}

	switch {
	case details.Percentage >= 75:
		details.Status = ProgressGood
	case details.Percentage >= 50:
		details.Status = ProgressAverage
	default:
		details.Status = ProgressPoor
	}

	details.Overdue = details.DaysRemaining <= 0
	return details
}
