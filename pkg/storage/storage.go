// Package storage provides the key-value port every FinanceFlow store
// persists its collection through, along with its adapters.
package storage

// Keys under which the collections are persisted. Each key is owned by
// exactly one store.
const (
	KeyTransactions     = "financeflow_transactions"
	KeyBudgetCategories = "financeflow_budget_categories"
	KeyGoals            = "financeflow_goals"
	KeySettings         = "financeflow_settings"
	KeyLanguage         = "financeflow_language"
)

// Storage is a string key-value store.
//
// Get reports false for keys that have never been set. Set overwrites the
// whole value for a key.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}
