package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alenapavlenkko/strengthstats/internal/models"
	"github.com/alenapavlenkko/strengthstats/pkg/utils"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open выбирает драйвер по имени
func Open(driver, dsn string) (*gorm.DB, error) {
	switch strings.ToLower(driver) {
	case "", DriverSQLite:
		return NewSQLite(dsn)
	case DriverPostgres:
		return NewPostgres(dsn)
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
}

// AutoMigrateTables создает таблицы
func AutoMigrateTables(db *gorm.DB, tables ...interface{}) error {
	utils.Log.Info("Running database migrations...")

	for _, model := range tables {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	utils.Log.Info("Database migrations completed")
	return nil
}

// Models - все модели приложения, в порядке миграции
func Models() []interface{} {
	return []interface{}{
		&models.Exercise{},
		&models.LogEntry{},
		&models.WorkoutSplit{},
	}
}

func newGormLogger() logger.Interface {
	return logger.New(
		utils.Log,
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}
