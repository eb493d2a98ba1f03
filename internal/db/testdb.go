package db

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB creates a fresh in-memory SQLite database with foreign keys
// enforced and the schema applied. The pool is pinned to one connection so
// every query sees the same in-memory database.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("test database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(gormDB); err != nil {
		sqlDB.Close()
		t.Fatalf("creating test database schema: %v", err)
	}

	t.Cleanup(func() { sqlDB.Close() })

	return gormDB
}
