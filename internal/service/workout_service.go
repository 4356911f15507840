package service

import (
	"context"
	"strings"

	"github.com/alenapavlenkko/strengthstats/internal/models"
	"github.com/alenapavlenkko/strengthstats/internal/repository"
)

type WorkoutService struct {
	repo repository.WorkoutSplitRepository
}

func NewWorkoutService(repo repository.WorkoutSplitRepository) *WorkoutService {
	return &WorkoutService{repo: repo}
}

// CreateSplit - создать сплит тренировок
func (s *WorkoutService) CreateSplit(ctx context.Context, dto CreateSplitDTO) (*models.WorkoutSplit, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, &ValidationError{Msg: "workout split name must not be empty"}
	}
	if dto.DaysPerWeek < 0 || dto.DaysPerWeek > 7 {
		return nil, &ValidationError{Msg: "days per week must be between 0 and 7"}
	}

	split, err := s.repo.Create(ctx, &models.WorkoutSplit{Name: name, DaysPerWeek: dto.DaysPerWeek})
	if err != nil {
		return nil, &DataUnavailableError{Query: "insert_workout_split", Err: err}
	}
	return split, nil
}

// ListSplits - все сплиты
func (s *WorkoutService) ListSplits(ctx context.Context) ([]*models.WorkoutSplit, error) {
	splits, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, &DataUnavailableError{Query: "workout_splits", Err: err}
	}
	return splits, nil
}
