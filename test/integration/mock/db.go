// Package mock provides in-process storage backends for integration tests.
package mock

import (
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerkeep/backend/internal/integration/persistence"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// NewDB opens a shared in-memory SQLite database with the ledger schema
// migrated. The connection is reused across scenarios; ClearDB resets rows.
func NewDB() *gorm.DB {
	dbOnce.Do(func() {
		// Foreign keys are off by default in sqlite; enable them so the
		// double enforces the same referential integrity as postgres.
		dsn := "file::memory:?cache=shared&_pragma=foreign_keys(1)"
		conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			panic("failed to open in-memory database: " + err.Error())
		}

		sqlDB, err := conn.DB()
		if err != nil {
			panic(err)
		}
		// A single connection keeps every session on the same in-memory DB.
		sqlDB.SetMaxOpenConns(1)

		if err := conn.AutoMigrate(persistence.Models()...); err != nil {
			panic("failed to migrate test schema: " + err.Error())
		}

		dbConn = conn
	})

	return dbConn
}

// ClearDB deletes every row from every ledger table, referencing tables
// first so foreign key constraints hold throughout.
func ClearDB(db *gorm.DB) error {
	for _, model := range persistence.ClearModels() {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clearing table for %T: %w", model, err)
		}
	}
	return nil
}
