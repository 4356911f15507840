package repository

import (
	"context"

	"github.com/alenapavlenkko/strengthstats/internal/models"
	"gorm.io/gorm"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/workout_split_repo_mock.go -package=mocks

type WorkoutSplitRepository interface {
	Create(ctx context.Context, split *models.WorkoutSplit) (*models.WorkoutSplit, error)
	FindAll(ctx context.Context) ([]*models.WorkoutSplit, error)
}

type workoutSplitRepo struct {
	db *gorm.DB
}

func NewWorkoutSplitRepo(db *gorm.DB) WorkoutSplitRepository {
	return &workoutSplitRepo{db: db}
}

// Create выполняется в транзакции
func (r *workoutSplitRepo) Create(ctx context.Context, split *models.WorkoutSplit) (*models.WorkoutSplit, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(split).Error
	})
	return split, err
}

func (r *workoutSplitRepo) FindAll(ctx context.Context) ([]*models.WorkoutSplit, error) {
	splits := make([]*models.WorkoutSplit, 0)
	err := r.db.WithContext(ctx).Order("id").Find(&splits).Error
	return splits, err
}
