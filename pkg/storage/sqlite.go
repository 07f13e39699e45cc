package storage

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KeyValue is a single persisted entry.
type KeyValue struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SQLite is a Storage persisting to a SQLite database through gorm.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens the database at dsn and migrates the key-value table.
//
// Use ":memory:" as dsn for a database that only lives as long as the
// returned storage.
func OpenSQLite(dsn string, log zerolog.Logger) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: &logger{Logger: log.With().Str("component", "gorm").Logger()},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection keeps in-memory databases alive and avoids SQLITE_BUSY
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&KeyValue{}); err != nil {
		return nil, fmt.Errorf("failed to migrate key-value table: %w", err)
	}

	callback := func(db *gorm.DB) { generalCallback(db, log) }
	if err := db.Callback().Query().After("*").Register("financeflow:after_query_general", callback); err != nil {
		return nil, err
	}

	if err := db.Callback().Create().After("*").Register("financeflow:after_create_general", callback); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func (s *SQLite) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrKeyEmpty
	}

	var kv KeyValue
	err := s.db.Where(&KeyValue{Key: key}).First(&kv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}

	return kv.Value, true, nil
}

func (s *SQLite) Set(key, value string) error {
	if key == "" {
		return ErrKeyEmpty
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&KeyValue{Key: key, Value: value}).Error
}

// generalCallback handles unspecified errors.
//
// The error is logged and replaced with ErrGeneral since callers cannot act
// on driver specific details.
func generalCallback(db *gorm.DB, log zerolog.Logger) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in database/sql
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// Open returns the storage adapter for backend.
func Open(backend, path string, log zerolog.Logger) (Storage, error) {
	switch backend {
	case "memory":
		return NewMemory(), nil
	case "sqlite":
		return OpenSQLite(path, log)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownStore, backend)
}
