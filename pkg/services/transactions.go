package services

import (
	"strings"
	"time"

	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/storage"
	"github.com/ryanuber/go-glob"
)

// GetTransactions returns all transactions, most recently added first.
func (s *Service) GetTransactions() []models.Transaction {
	return load[models.Transaction](s, storage.KeyTransactions)
}

// GetTransaction returns the transaction with the given ID.
func (s *Service) GetTransaction(id string) (models.Transaction, bool) {
	for _, t := range s.GetTransactions() {
		if t.ID == id {
			return t, true
		}
	}

	return models.Transaction{}, false
}

// AddTransaction stores a new transaction in front of all existing ones.
func (s *Service) AddTransaction(data models.TransactionCreate) models.Transaction {
	transaction := models.Transaction{
		ID:                s.newID(),
		TransactionCreate: data,
	}

	transactions := append([]models.Transaction{transaction}, s.GetTransactions()...)
	save(s, storage.KeyTransactions, transactions)

	s.log.Debug().Str("id", transaction.ID).Msg("added transaction")
	return transaction
}

// UpdateTransaction replaces all fields of the transaction with the given ID.
// It reports false if no such transaction exists.
func (s *Service) UpdateTransaction(id string, data models.TransactionCreate) (models.Transaction, bool) {
	transactions := s.GetTransactions()

	for i, t := range transactions {
		if t.ID != id {
			continue
		}

		transactions[i].TransactionCreate = data
		save(s, storage.KeyTransactions, transactions)
		return transactions[i], true
	}

	return models.Transaction{}, false
}

// DeleteTransaction removes the transaction with the given ID. It reports
// false if no such transaction exists.
func (s *Service) DeleteTransaction(id string) bool {
	transactions := s.GetTransactions()

	kept := transactions[:0]
	for _, t := range transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if len(kept) == len(transactions) {
		return false
	}

	save(s, storage.KeyTransactions, kept)
	return true
}

// SearchTransactions returns the transactions whose description or category
// contains query, ignoring case.
//
// A query that is empty after trimming matches all transactions. Otherwise the
// query is matched as given, surrounding spaces included.
func (s *Service) SearchTransactions(query string) []models.Transaction {
	if strings.TrimSpace(query) == "" {
		return s.GetTransactions()
	}

	query = strings.ToLower(query)
	return s.filterTransactions(func(field string) bool {
		return strings.Contains(strings.ToLower(field), query)
	})
}

// SearchTransactionsGlob returns the transactions whose whole description or
// category matches the glob pattern, ignoring case. "*" matches any run of
// characters.
//
// An empty pattern matches all transactions.
func (s *Service) SearchTransactionsGlob(pattern string) []models.Transaction {
	if strings.TrimSpace(pattern) == "" {
		return s.GetTransactions()
	}

	pattern = strings.ToLower(pattern)
	return s.filterTransactions(func(field string) bool {
		return glob.Glob(pattern, strings.ToLower(field))
	})
}

func (s *Service) filterTransactions(match func(field string) bool) []models.Transaction {
	result := []models.Transaction{}
	for _, t := range s.GetTransactions() {
		if match(t.Description) || match(t.Category) {
			result = append(result, t)
		}
	}

	return result
}

// GetTransactionsByDateRange returns the transactions between start and end,
// both inclusive.
//
// The bounds are compared as given. To select whole days, pass the start of
// the first and the last instant of the last day.
func (s *Service) GetTransactionsByDateRange(start, end time.Time) []models.Transaction {
	return FilterByDate(s.GetTransactions(), start, end)
}

// FilterByDate returns the transactions between start and end, both inclusive.
func FilterByDate(transactions []models.Transaction, start, end time.Time) []models.Transaction {
	result := []models.Transaction{}
	for _, t := range transactions {
		if !t.Date.Before(start) && !t.Date.After(end) {
			result = append(result, t)
		}
	}

	return result
}
