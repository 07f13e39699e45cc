package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/storage"
)

var ErrInvalidBackup = errors.New("the backup is invalid")

// Backup contains all stored data.
type Backup struct {
	Transactions []models.Transaction    `json:"transactions"`
	Budgets      []models.BudgetCategory `json:"budgets"`
	Goals        []models.Goal           `json:"goals"`
	Settings     models.UserSettings     `json:"settings"`
	ExportedAt   time.Time               `json:"exportedAt" example:"2024-03-10T12:00:00Z"`
}

// Export returns all stored data.
func (s *Service) Export() Backup {
	return Backup{
		Transactions: s.GetTransactions(),
		Budgets:      s.GetBudgetCategories(),
		Goals:        s.GetGoals(),
		Settings:     s.GetSettings(),
		ExportedAt:   s.now(),
	}
}

func checkAll[T any, PT models.Record[T]](records []T) error {
	for i := range records {
		if err := PT(&records[i]).Check(); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}

// Import replaces all stored data with the backup.
//
// Nothing is written if any record in the backup is invalid.
func (s *Service) Import(backup Backup) error {
	if err := checkAll[models.Transaction](backup.Transactions); err != nil {
		return fmt.Errorf("%w: transactions: %w", ErrInvalidBackup, err)
	}

	if err := checkAll[models.BudgetCategory](backup.Budgets); err != nil {
		return fmt.Errorf("%w: budgets: %w", ErrInvalidBackup, err)
	}

	if err := checkAll[models.Goal](backup.Goals); err != nil {
		return fmt.Errorf("%w: goals: %w", ErrInvalidBackup, err)
	}

	if !backup.Settings.DateFormat.Valid() {
		return fmt.Errorf("%w: settings: %w", ErrInvalidBackup, models.ErrDateFormatInvalid)
	}

	if err := write(s, storage.KeyTransactions, backup.Transactions); err != nil {
		return err
	}

	if err := write(s, storage.KeyBudgetCategories, backup.Budgets); err != nil {
		return err
	}

	if err := write(s, storage.KeyGoals, backup.Goals); err != nil {
		return err
	}

	if err := s.writeSettings(backup.Settings); err != nil {
		return err
	}

	s.setLanguage(backup.Settings.Language)
	s.log.Info().
		Int("transactions", len(backup.Transactions)).
		Int("budgets", len(backup.Budgets)).
		Int("goals", len(backup.Goals)).
		Msg("imported backup")

	return nil
}

// Clear removes all transactions, budget categories and goals and resets the
// settings to their defaults.
func (s *Service) Clear() error {
	empty := Backup{Settings: models.DefaultSettings()}
	if err := s.Import(empty); err != nil {
		return err
	}

	s.log.Info().Msg("cleared all data")
	return nil
}
