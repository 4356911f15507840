package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alenapavlenkko/strengthstats/pkg/utils"
)

// InMemory открывает приватную sqlite базу в памяти (для тестов)
const InMemory = "file::memory:"

// NewSQLite открывает sqlite файл, создавая директорию при необходимости
func NewSQLite(path string) (*gorm.DB, error) {
	if path != InMemory {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// sqlite не любит параллельные записи
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	utils.Log.WithField("path", path).Info("SQLite database opened")
	return db, nil
}
