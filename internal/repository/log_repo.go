package repository

import (
	"context"

	"github.com/alenapavlenkko/strengthstats/internal/models"
	"gorm.io/gorm"
)

// JoinedLog - запись лога вместе с названием упражнения
type JoinedLog struct {
	ID           uint
	Date         string
	Weights      string
	Reps         string
	ExerciseName string
}

//go:generate mockgen -source=$GOFILE -destination=mocks/log_repo_mock.go -package=mocks

type LogRepository interface {
	Create(ctx context.Context, entry *models.LogEntry) (*models.LogEntry, error)
	FindByExerciseName(ctx context.Context, name string) ([]*models.LogEntry, error)
	FindJoined(ctx context.Context) ([]JoinedLog, error)
	Delete(ctx context.Context, id uint) error
}

type logRepo struct {
	db *gorm.DB
}

func NewLogRepo(db *gorm.DB) LogRepository {
	return &logRepo{db: db}
}

func (r *logRepo) Create(ctx context.Context, entry *models.LogEntry) (*models.LogEntry, error) {
	err := r.db.WithContext(ctx).Create(entry).Error
	return entry, err
}

// FindByExerciseName возвращает логи упражнения в порядке добавления
func (r *logRepo) FindByExerciseName(ctx context.Context, name string) ([]*models.LogEntry, error) {
	db := r.db.WithContext(ctx)
	exerciseIDs := db.Model(&models.Exercise{}).Select("id").Where("exercise_name = ?", name)

	logs := make([]*models.LogEntry, 0)
	err := db.Where("exercise_id IN (?)", exerciseIDs).Order("id").Find(&logs).Error
	return logs, err
}

// FindJoined - все логи с названиями упражнений, для рейтинга сильнейших упражнений
func (r *logRepo) FindJoined(ctx context.Context) ([]JoinedLog, error) {
	rows := make([]JoinedLog, 0)
	err := r.db.WithContext(ctx).
		Table("logs AS l").
		Select("l.id, l.date, l.weights, l.reps, e.exercise_name").
		Joins("INNER JOIN exercises AS e ON l.exercise_id = e.id").
		Where("l.deleted_at IS NULL AND e.deleted_at IS NULL").
		Order("l.id").
		Scan(&rows).Error
	return rows, err
}

func (r *logRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.LogEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
