package storage

import "errors"

var (
	ErrGeneral      = errors.New("an error occurred while accessing the storage")
	ErrKeyEmpty     = errors.New("the storage key must not be empty")
	ErrUnknownStore = errors.New("unknown storage backend, supported are 'memory' and 'sqlite'")
)
