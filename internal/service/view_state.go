package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alenapavlenkko/strengthstats/internal/strength"
	"github.com/alenapavlenkko/strengthstats/pkg/utils"
)

// DefaultTimeScale - окно графика прогресса по умолчанию, в месяцах
const DefaultTimeScale = 1

// ViewState - снимок экрана прогресса. Редьюсеры ниже не меняют переданное
// состояние, а возвращают новое.
type ViewState struct {
	Exercises []string
	Selected  string
	TimeScale int
	// Token растет при каждом выборе упражнения
	Token   uint64
	Logs    []strength.Log
	Series  strength.ChartSeries
	Skipped []error
	Top     []strength.RankedExercise
}

func initialState(timeScale int) ViewState {
	return ViewState{
		Exercises: []string{},
		TimeScale: timeScale,
		Logs:      []strength.Log{},
		Series:    emptySeries(),
		Top:       []strength.RankedExercise{},
	}
}

func emptySeries() strength.ChartSeries {
	return strength.ChartSeries{Labels: []string{}, Values: []float64{}}
}

func selectExercise(s ViewState, name string) ViewState {
	s.Selected = name
	s.Token++
	s.Logs = []strength.Log{}
	s.Series = emptySeries()
	s.Skipped = nil
	return s
}

func setTimeScale(s ViewState, months int, now time.Time) (ViewState, error) {
	if !strength.IsTimeScale(months) {
		return s, &strength.ConfigurationError{
			Msg: fmt.Sprintf("time scale must be one of %v months, got %d", strength.TimeScales, months),
		}
	}
	s.TimeScale = months
	return recompute(s, now), nil
}

// receiveLogs применяет ответ только если он относится к последнему выбору
func receiveLogs(s ViewState, token uint64, logs []strength.Log, now time.Time) (ViewState, bool) {
	if token != s.Token {
		return s, false
	}
	s.Logs = append([]strength.Log{}, logs...)
	return recompute(s, now), true
}

func receiveExercises(s ViewState, names []string) ViewState {
	s.Exercises = append([]string{}, names...)
	return s
}

func receiveTop(s ViewState, ranked []strength.RankedExercise) ViewState {
	s.Top = append([]strength.RankedExercise{}, ranked...)
	return s
}

// recompute пересчитывает график из логов в состоянии, без запроса в базу
func recompute(s ViewState, now time.Time) ViewState {
	series, skipped, err := BuildProgressSeries(s.Logs, float64(s.TimeScale), now)
	if err != nil {
		s.Series = emptySeries()
		s.Skipped = []error{err}
		return s
	}
	s.Series = series
	s.Skipped = skipped
	return s
}

// ViewStore хранит текущее состояние экрана, переходы выполняются под мьютексом
type ViewStore struct {
	mu    sync.Mutex
	state ViewState
}

func NewViewStore(timeScale int) *ViewStore {
	return &ViewStore{state: initialState(timeScale)}
}

func (v *ViewStore) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *ViewStore) Update(reduce func(ViewState) ViewState) ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = reduce(v.state)
	return v.state
}

// ProgressScreen - экран "прогресс": выбор упражнения, масштаб времени, топ упражнений
type ProgressScreen struct {
	svc   *ProgressService
	store *ViewStore
	topN  int
}

func NewProgressScreen(svc *ProgressService, topN int) *ProgressScreen {
	return &ProgressScreen{
		svc:   svc,
		store: NewViewStore(DefaultTimeScale),
		topN:  topN,
	}
}

func (p *ProgressScreen) State() ViewState {
	return p.store.State()
}

// Refresh загружает список упражнений и топ параллельно.
// Успешные ответы применяются, даже если второй запрос упал.
func (p *ProgressScreen) Refresh(ctx context.Context) (ViewState, error) {
	var (
		names []string
		top   *TopChart
	)

	// запросы независимы: ошибка одного не отменяет другой
	var g errgroup.Group
	g.Go(func() error {
		var err error
		names, err = p.svc.ExerciseNames(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		top, err = p.svc.TopExercises(ctx, p.topN)
		return err
	})
	err := g.Wait()

	state := p.store.Update(func(s ViewState) ViewState {
		if names != nil {
			s = receiveExercises(s, names)
		}
		if top != nil {
			s = receiveTop(s, top.Exercises)
		}
		return s
	})
	return state, err
}

// Select выбирает упражнение и загружает его логи. Если пока шел запрос
// выбрали другое упражнение, ответ отбрасывается, в том числе ошибка.
func (p *ProgressScreen) Select(ctx context.Context, name string) (ViewState, error) {
	token := p.store.Update(func(s ViewState) ViewState {
		return selectExercise(s, name)
	}).Token

	logs, err := p.svc.ExerciseLogs(ctx, name)
	if err != nil {
		state := p.store.State()
		if state.Token != token {
			p.discardStale(name)
			return state, nil
		}
		return state, err
	}

	applied := false
	state := p.store.Update(func(s ViewState) ViewState {
		s, applied = receiveLogs(s, token, logs, p.svc.Now())
		return s
	})
	if !applied {
		p.discardStale(name)
		return state, nil
	}
	p.svc.countSkipped("series", state.Skipped)
	return state, nil
}

func (p *ProgressScreen) discardStale(exercise string) {
	p.svc.metrics.CounterStaleResults.Inc()
	utils.Log.WithField("exercise", exercise).Debug("stale logs discarded")
}

// SetTimeScale меняет окно графика; допустимы только 1, 3, 6 и 12 месяцев
func (p *ProgressScreen) SetTimeScale(months int) (ViewState, error) {
	var err error
	state := p.store.Update(func(s ViewState) ViewState {
		s, err = setTimeScale(s, months, p.svc.Now())
		return s
	})
	return state, err
}
