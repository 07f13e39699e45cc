// Package models contains the records persisted by FinanceFlow and the
// validation applied when they are created or read back from storage.
package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted as JSON numbers so that data written by earlier
	// clients, which stored plain numbers, stays readable in both directions.
	decimal.MarshalJSONWithoutQuotes = true
}

// Record is implemented by pointers to every persisted collection element.
// Check normalizes the record in place and reports whether it is structurally
// valid.
type Record[T any] interface {
	*T
	Check() error
}

// Decode parses a JSON array of records and checks every element.
//
// Any element failing its check fails the whole collection, callers treat
// that the same as unparseable data.
func Decode[T any, PT Record[T]](raw string) ([]T, error) {
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}

	for i := range records {
		if err := PT(&records[i]).Check(); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}

	if records == nil {
		records = []T{}
	}

	return records, nil
}
