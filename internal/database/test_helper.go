package database

import (
	"testing"

	"finance-dashboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory SQLite database. The pool is pinned
// to one connection because each new connection gets its own empty database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := &DB{DB: gdb}
	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func CreateTestCategory(t *testing.T, db *DB, userID, name string, txType models.TransactionType) *models.Category {
	t.Helper()

	category := &models.Category{UserID: userID, Name: name, Icon: "🏷️", Type: txType}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category %q: %v", name, err)
	}
	return category
}

// CleanupTestDB empties every application table.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, model := range Models() {
		err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			t.Logf("cleanup %T: %v", model, err)
		}
	}
}
