// Package services implements the FinanceFlow stores and the aggregations
// computed from them.
//
// Every store reads its collection from storage on each call and writes the
// whole collection back on mutation. Derived values such as the spent amount
// of a budget category or the current amount of a goal are recomputed from
// the transactions whenever they are requested and are only correct directly
// after such a recomputation.
//
// A Service is not safe for concurrent use. Callers with more than one
// goroutine must serialize access.
package services

import (
	"encoding/json"
	"time"

	"github.com/financeflow/backend/internal/uuid"
	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/storage"
	"github.com/rs/zerolog"
)

type Service struct {
	storage storage.Storage
	newID   uuid.Generator
	now     func() time.Time
	log     zerolog.Logger
}

type Option func(*Service)

// WithIDGenerator replaces the generator used for new record IDs.
func WithIDGenerator(g uuid.Generator) Option {
	return func(s *Service) {
		s.newID = g
	}
}

// WithClock replaces the function used to determine the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// New returns a Service persisting to st.
func New(st storage.Storage, opts ...Option) *Service {
	s := &Service{
		storage: st,
		newID:   uuid.New,
		now:     time.Now,
		log:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.With().Str("component", "services").Logger()
	return s
}

// load reads and decodes the collection stored under key.
//
// Missing, unreadable and malformed collections are all returned as empty.
func load[T any, PT models.Record[T]](s *Service, key string) []T {
	raw, ok, err := s.storage.Get(key)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("reading collection failed, using an empty one")
		return []T{}
	}

	if !ok {
		return []T{}
	}

	records, err := models.Decode[T, PT](raw)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("stored collection is malformed, using an empty one")
		return []T{}
	}

	return records
}

// save writes the collection under key, logging failures.
func save[T any](s *Service, key string, records []T) {
	if err := write(s, key, records); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("saving collection failed")
	}
}

func write[T any](s *Service, key string, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	return s.storage.Set(key, string(data))
}

// Now returns the current time of the service's clock.
func (s *Service) Now() time.Time {
	return s.now()
}

// Ping verifies that the storage can be read.
func (s *Service) Ping() error {
	_, _, err := s.storage.Get(storage.KeySettings)
	return err
}
