package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/alenapavlenkko/strengthstats/internal/admin"
	"github.com/alenapavlenkko/strengthstats/internal/metrics"
	"github.com/alenapavlenkko/strengthstats/internal/models"
	"github.com/alenapavlenkko/strengthstats/internal/repository"
	"github.com/alenapavlenkko/strengthstats/internal/repository/mocks"
	"github.com/alenapavlenkko/strengthstats/internal/service"
)

type testAPI struct {
	router    *gin.Engine
	exercises *mocks.MockExerciseRepository
	logs      *mocks.MockLogRepository
	splits    *mocks.MockWorkoutSplitRepository
}

func newTestAPI(t *testing.T, apiKey string) *testAPI {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	api := &testAPI{
		router:    gin.New(),
		exercises: mocks.NewMockExerciseRepository(ctrl),
		logs:      mocks.NewMockLogRepository(ctrl),
		splits:    mocks.NewMockWorkoutSplitRepository(ctrl),
	}

	m, reg := metrics.NewTestManagerAndRegistry()
	progress := service.NewProgressService(api.exercises, api.logs,
		service.WithMetrics(m),
		service.WithClock(func() time.Time { return time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC) }),
	)
	admin.SetupRoutes(api.router, progress, service.NewWorkoutService(api.splits), admin.Options{
		APIKey:   apiKey,
		TopN:     3,
		Gatherer: reg,
	})
	return api
}

func (a *testAPI) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func TestListExercises(t *testing.T) {
	api := newTestAPI(t, "")
	api.exercises.EXPECT().DistinctNames(gomock.Any()).Return([]string{"bench", "squat"}, nil)

	rr := api.do(t, http.MethodGet, "/api/exercises", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"exercises":["bench","squat"]}`, rr.Body.String())
}

func TestProgress(t *testing.T) {
	api := newTestAPI(t, "")
	api.logs.EXPECT().
		FindByExerciseName(gomock.Any(), "squat").
		Return([]*models.LogEntry{
			{Model: gorm.Model{ID: 1}, Date: "2024/01/01", Weights: "100", Reps: "5"},
			{Model: gorm.Model{ID: 2}, Date: "2024/02/01", Weights: "105", Reps: "5"},
			{Model: gorm.Model{ID: 3}, Date: "2024/02/02", Weights: "bad", Reps: "5"},
		}, nil)

	rr := api.do(t, http.MethodGet, "/api/progress?exercise=squat&months=3", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Labels  []string  `json:"labels"`
		Values  []float64 `json:"values"`
		Skipped int       `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2024/01/01", "2024/02/01"}, resp.Labels)
	require.Len(t, resp.Values, 2)
	assert.InDelta(t, 112.51, resp.Values[0], 0.01)
	assert.Equal(t, 1, resp.Skipped)
}

func TestProgress_BadParams(t *testing.T) {
	api := newTestAPI(t, "")

	for _, path := range []string{
		"/api/progress",
		"/api/progress?exercise=squat&months=2",
		"/api/progress?exercise=squat&months=-1",
		"/api/progress?exercise=squat&months=all",
	} {
		rr := api.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
	}
}

func TestProgress_StoreFailure(t *testing.T) {
	api := newTestAPI(t, "")
	api.logs.EXPECT().FindByExerciseName(gomock.Any(), "squat").Return(nil, errors.New("database is locked"))

	rr := api.do(t, http.MethodGet, "/api/progress?exercise=squat", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestTop(t *testing.T) {
	api := newTestAPI(t, "")
	api.logs.EXPECT().FindJoined(gomock.Any()).Return([]repository.JoinedLog{
		{ID: 1, Date: "2024/01/01", Weights: "150", Reps: "1", ExerciseName: "bench"},
		{ID: 2, Date: "2024/01/02", Weights: "120", Reps: "1", ExerciseName: "squat"},
	}, nil)

	rr := api.do(t, http.MethodGet, "/api/top", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"exercises": [
			{"name": "bench", "estimatedOneRepMax": 150, "rank": 0, "color": "#228cdb"},
			{"name": "squat", "estimatedOneRepMax": 120, "rank": 1, "color": "#4cb1ff"}
		],
		"skipped": 0
	}`, rr.Body.String())
}

func TestTop_ConfigurationError(t *testing.T) {
	api := newTestAPI(t, "")

	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/top?n=0", nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/top?n=10", nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/top?n=x", nil).Code)
}

func TestTopPNG_NoData(t *testing.T) {
	api := newTestAPI(t, "")
	api.logs.EXPECT().FindJoined(gomock.Any()).Return([]repository.JoinedLog{}, nil)

	rr := api.do(t, http.MethodGet, "/api/charts/top", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestProgressPNG(t *testing.T) {
	api := newTestAPI(t, "")
	api.logs.EXPECT().FindByExerciseName(gomock.Any(), "squat").Return([]*models.LogEntry{}, nil)

	rr := api.do(t, http.MethodGet, "/api/charts/progress?exercise=squat", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("\x89PNG")))
}

func TestAddLog(t *testing.T) {
	api := newTestAPI(t, "")
	api.exercises.EXPECT().
		FindByName(gomock.Any(), "squat").
		Return(&models.Exercise{Model: gorm.Model{ID: 2}, Name: "squat"}, nil)
	api.logs.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.LogEntry) (*models.LogEntry, error) {
			e.ID = 10
			return e, nil
		})

	rr := api.do(t, http.MethodPost, "/api/logs", service.AddLogDTO{
		Exercise: "squat", Date: "2024/02/10", Weights: "100/100", Reps: "5/5",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestAddLog_Invalid(t *testing.T) {
	api := newTestAPI(t, "")

	rr := api.do(t, http.MethodPost, "/api/logs", service.AddLogDTO{
		Exercise: "squat", Date: "10 Feb", Weights: "100", Reps: "5",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = api.do(t, http.MethodPost, "/api/logs", map[string]string{"exercise": "squat"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteLog(t *testing.T) {
	api := newTestAPI(t, "")
	api.logs.EXPECT().Delete(gomock.Any(), uint(4)).Return(nil)
	api.logs.EXPECT().Delete(gomock.Any(), uint(5)).Return(repository.ErrNotFound)

	assert.Equal(t, http.StatusNoContent, api.do(t, http.MethodDelete, "/api/logs/4", nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodDelete, "/api/logs/5", nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodDelete, "/api/logs/abc", nil).Code)
}

func TestSplits(t *testing.T) {
	api := newTestAPI(t, "")
	api.splits.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.WorkoutSplit) (*models.WorkoutSplit, error) {
			return s, nil
		})
	api.splits.EXPECT().FindAll(gomock.Any()).Return([]*models.WorkoutSplit{{Name: "PPL", DaysPerWeek: 6}}, nil)

	rr := api.do(t, http.MethodPost, "/api/splits", service.CreateSplitDTO{Name: "PPL", DaysPerWeek: 6})
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = api.do(t, http.MethodGet, "/api/splits", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"PPL"`)
}

func TestAuthMiddleware(t *testing.T) {
	api := newTestAPI(t, "secret")
	api.exercises.EXPECT().DistinctNames(gomock.Any()).Return([]string{}, nil)

	assert.Equal(t, http.StatusUnauthorized, api.do(t, http.MethodGet, "/api/exercises", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(t, http.MethodGet, "/api/exercises", nil, "X-Admin-Key", "wrong").Code)
	assert.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/api/exercises", nil, "X-Admin-Key", "secret").Code)

	// health и metrics без ключа
	assert.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/health", nil).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t, "")
	api.exercises.EXPECT().DistinctNames(gomock.Any()).Return([]string{}, nil)
	api.do(t, http.MethodGet, "/api/exercises", nil)

	rr := api.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `strength_test_store_queries{query="distinct_exercise_names"} 1`)
}
