package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/alenapavlenkko/strengthstats/pkg/utils"
)

const postgresAttempts = 15

// NewPostgres подключается к PostgreSQL с retry логикой
func NewPostgres(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	utils.Log.Info("Attempting to connect to database...")

	// Пытаемся подключиться 15 раз с увеличением паузы
	for i := 1; i <= postgresAttempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: newGormLogger(),
		})

		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				return nil, fmt.Errorf("get sql db: %w", dbErr)
			}
			if err = sqlDB.Ping(); err == nil {
				utils.Log.WithField("attempt", i).Info("Database connected successfully")
				return db, nil
			}
		}

		utils.Log.WithField("attempt", i).WithError(err).Warn("Database connection attempt failed")

		// Экспоненциальная backoff: 1, 2, 4, 8 секунд...
		waitTime := time.Duration(1<<uint(i-1)) * time.Second
		if waitTime > 10*time.Second {
			waitTime = 10 * time.Second
		}
		time.Sleep(waitTime)
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", postgresAttempts, err)
}
