package repository

import (
	"context"

	"github.com/alenapavlenkko/strengthstats/internal/models"
	"gorm.io/gorm"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/exercise_repo_mock.go -package=mocks

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *models.Exercise) (*models.Exercise, error)
	FindAll(ctx context.Context) ([]*models.Exercise, error)
	FindByName(ctx context.Context, name string) (*models.Exercise, error)
	DistinctNames(ctx context.Context) ([]string, error)
}

type exerciseRepo struct {
	db *gorm.DB
}

func NewExerciseRepo(db *gorm.DB) ExerciseRepository {
	return &exerciseRepo{db: db}
}

func (r *exerciseRepo) Create(ctx context.Context, exercise *models.Exercise) (*models.Exercise, error) {
	err := r.db.WithContext(ctx).Create(exercise).Error
	return exercise, err
}

func (r *exerciseRepo) FindAll(ctx context.Context) ([]*models.Exercise, error) {
	var exercises []*models.Exercise
	err := r.db.WithContext(ctx).Order("id").Find(&exercises).Error
	return exercises, err
}

func (r *exerciseRepo) FindByName(ctx context.Context, name string) (*models.Exercise, error) {
	var exercise models.Exercise
	err := r.db.WithContext(ctx).Where("exercise_name = ?", name).First(&exercise).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &exercise, nil
}

// DistinctNames - названия упражнений для выбора на графике прогресса
func (r *exerciseRepo) DistinctNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Exercise{}).
		Distinct("exercise_name").
		Order("exercise_name").
		Pluck("exercise_name", &names).Error
	return names, err
}
