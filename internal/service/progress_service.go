package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/alenapavlenkko/strengthstats/internal/metrics"
	"github.com/alenapavlenkko/strengthstats/internal/models"
	"github.com/alenapavlenkko/strengthstats/internal/repository"
	"github.com/alenapavlenkko/strengthstats/internal/strength"
	"github.com/alenapavlenkko/strengthstats/pkg/utils"
)

const (
	queryExerciseNames = "distinct_exercise_names"
	queryExerciseLogs  = "logs_for_exercise"
	queryTopCandidates = "top_exercise_candidates"
)

// ProgressChart - данные для линейного графика прогресса
type ProgressChart struct {
	Exercise string               `json:"exercise"`
	Months   float64              `json:"months"`
	Series   strength.ChartSeries `json:"series"`
	Skipped  []error              `json:"-"`
}

// TopChart - данные для графика "сильнейшие упражнения"
type TopChart struct {
	Exercises []strength.RankedExercise `json:"exercises"`
	Skipped   []error                   `json:"-"`
}

type ProgressService struct {
	exercises repository.ExerciseRepository
	logs      repository.LogRepository
	metrics   *metrics.Manager
	palette   strength.Palette
	now       func() time.Time
}

type Option func(*ProgressService)

func WithClock(now func() time.Time) Option {
	return func(s *ProgressService) {
		s.now = now
	}
}

func WithPalette(palette strength.Palette) Option {
	return func(s *ProgressService) {
		s.palette = palette
	}
}

func WithMetrics(m *metrics.Manager) Option {
	return func(s *ProgressService) {
		s.metrics = m
	}
}

func NewProgressService(
	exercises repository.ExerciseRepository,
	logs repository.LogRepository,
	opts ...Option,
) *ProgressService {
	s := &ProgressService{
		exercises: exercises,
		logs:      logs,
		palette:   strength.DefaultPalette,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.NewManager("strength", "service", prometheus.NewRegistry())
	}
	return s
}

// Now - текущее время по часам сервиса
func (s *ProgressService) Now() time.Time {
	return s.now()
}

// ExerciseNames - список упражнений для выбора
func (s *ProgressService) ExerciseNames(ctx context.Context) ([]string, error) {
	done := s.observe(queryExerciseNames)
	names, err := s.exercises.DistinctNames(ctx)
	if err = done(err); err != nil {
		return nil, err
	}
	return names, nil
}

// ExerciseLogs - логи упражнения в виде для конвейера расчета
func (s *ProgressService) ExerciseLogs(ctx context.Context, exercise string) ([]strength.Log, error) {
	done := s.observe(queryExerciseLogs)
	entries, err := s.logs.FindByExerciseName(ctx, exercise)
	if err = done(err); err != nil {
		return nil, err
	}

	logs := make([]strength.Log, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, strength.Log{ID: e.ID, Date: e.Date, Weights: e.Weights, Reps: e.Reps})
	}
	return logs, nil
}

// ProgressChart строит график прогресса упражнения за последние months месяцев
func (s *ProgressService) ProgressChart(ctx context.Context, exercise string, months float64) (*ProgressChart, error) {
	logs, err := s.ExerciseLogs(ctx, exercise)
	if err != nil {
		return nil, err
	}

	series, skipped, err := BuildProgressSeries(logs, months, s.now())
	if err != nil {
		return nil, err
	}
	s.countSkipped("series", skipped)

	return &ProgressChart{
		Exercise: exercise,
		Months:   months,
		Series:   series,
		Skipped:  skipped,
	}, nil
}

// TopCandidates - все подходы с названиями упражнений, по строке на подход
func (s *ProgressService) TopCandidates(ctx context.Context) ([]strength.JoinedRow, []error, error) {
	done := s.observe(queryTopCandidates)
	joined, err := s.logs.FindJoined(ctx)
	if err = done(err); err != nil {
		return nil, nil, err
	}

	var skipped []error
	rows := make([]strength.JoinedRow, 0, len(joined))
	for _, j := range joined {
		sets, err := strength.ParseSets(j.Weights, j.Reps)
		if err != nil {
			skipped = append(skipped, &strength.LogError{LogID: j.ID, Date: j.Date, Err: err})
			continue
		}
		for _, set := range sets {
			rows = append(rows, strength.JoinedRow{
				ExerciseName: j.ExerciseName,
				Weight:       set.Weight,
				Reps:         set.Reps,
			})
		}
	}
	return rows, skipped, nil
}

// TopExercises - топ n упражнений по среднему расчетному 1ПМ
func (s *ProgressService) TopExercises(ctx context.Context, n int) (*TopChart, error) {
	// проверяем конфигурацию до запроса в базу
	if _, err := strength.TopExercises(nil, n, s.palette); err != nil {
		return nil, err
	}

	rows, skipped, err := s.TopCandidates(ctx)
	if err != nil {
		return nil, err
	}

	ranked, err := strength.TopExercises(rows, n, s.palette)
	if err != nil {
		if ranked == nil && IsConfigurationError(err) {
			return nil, err
		}
		skipped = append(skipped, multierr.Errors(err)...)
	}
	s.countSkipped("ranking", skipped)

	return &TopChart{Exercises: ranked, Skipped: skipped}, nil
}

// AddLog проверяет и сохраняет запись; упражнение создается, если его еще нет
func (s *ProgressService) AddLog(ctx context.Context, dto AddLogDTO) (*models.LogEntry, error) {
	name := strings.TrimSpace(dto.Exercise)
	if name == "" {
		return nil, &ValidationError{Msg: "exercise name must not be empty"}
	}

	date, err := strength.ParseDate(dto.Date)
	if err != nil {
		return nil, &ValidationError{Msg: "invalid date", Err: err}
	}
	sets, err := strength.ParseSets(dto.Weights, dto.Reps)
	if err != nil {
		return nil, &ValidationError{Msg: "invalid sets", Err: err}
	}
	if _, err := strength.EstimateSets(sets); err != nil {
		return nil, &ValidationError{Msg: "invalid sets", Err: err}
	}

	exercise, err := s.exercises.FindByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		exercise, err = s.exercises.Create(ctx, &models.Exercise{Name: name})
	}
	if err != nil {
		return nil, &DataUnavailableError{Query: "find_or_create_exercise", Err: err}
	}

	weights, reps := strength.FormatSets(sets)
	entry, err := s.logs.Create(ctx, &models.LogEntry{
		Date:       strength.FormatDate(date),
		ExerciseID: exercise.ID,
		Weights:    weights,
		Reps:       reps,
		Notes:      dto.Notes,
	})
	if err != nil {
		return nil, &DataUnavailableError{Query: "insert_log", Err: err}
	}

	s.metrics.CounterLogsAdded.Inc()
	utils.Log.WithField("exercise", name).WithField("date", entry.Date).Debug("log added")
	return entry, nil
}

// DeleteLog - мягкое удаление записи; repository.ErrNotFound, если записи нет
func (s *ProgressService) DeleteLog(ctx context.Context, id uint) error {
	err := s.logs.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err != nil {
		return &DataUnavailableError{Query: "delete_log", Err: err}
	}
	return nil
}

// BuildProgressSeries: фильтр по окну времени, затем точки графика.
// Ошибки отдельных строк возвращаются в skipped, ошибка конфигурации - в err.
func BuildProgressSeries(logs []strength.Log, months float64, now time.Time) (strength.ChartSeries, []error, error) {
	filtered, err := strength.FilterByWindow(logs, months, now)
	if err != nil && filtered == nil {
		return strength.ChartSeries{}, nil, err
	}
	skipped := multierr.Errors(err)

	series, err := strength.BuildSeries(filtered)
	skipped = append(skipped, multierr.Errors(err)...)
	return series, skipped, nil
}

func (s *ProgressService) observe(query string) func(error) error {
	start := time.Now()
	s.metrics.CounterQueries.WithLabelValues(query).Inc()
	return func(err error) error {
		s.metrics.HistQueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
		if err == nil {
			return nil
		}
		s.metrics.CounterQueryFailures.WithLabelValues(query).Inc()
		utils.Log.WithField("query", query).WithError(err).Error("store query failed")
		return &DataUnavailableError{Query: query, Err: err}
	}
}

func (s *ProgressService) countSkipped(stage string, skipped []error) {
	if len(skipped) == 0 {
		return
	}
	s.metrics.CounterSkippedRows.WithLabelValues(stage).Add(float64(len(skipped)))
	utils.Log.WithField("stage", stage).WithField("skipped", len(skipped)).
		WithError(skipped[0]).Warn("rows left out of chart")
}
