package admin

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alenapavlenkko/strengthstats/internal/charts"
	"github.com/alenapavlenkko/strengthstats/internal/repository"
	"github.com/alenapavlenkko/strengthstats/internal/service"
	"github.com/alenapavlenkko/strengthstats/internal/strength"
	"github.com/alenapavlenkko/strengthstats/pkg/utils"
)

// Handlers содержит зависимости от сервисов
type Handlers struct {
	progressService *service.ProgressService
	workoutService  *service.WorkoutService
	topN            int
}

type Options struct {
	APIKey string
	TopN   int
	// Gatherer для /metrics; nil - эндпоинт не регистрируется
	Gatherer prometheus.Gatherer
}

func SetupRoutes(r *gin.Engine,
	progressService *service.ProgressService,
	workoutService *service.WorkoutService,
	opts Options,
) {
	h := &Handlers{
		progressService: progressService,
		workoutService:  workoutService,
		topN:            opts.TopN,
	}
	if h.topN == 0 {
		h.topN = strength.DefaultTopN
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	if opts.APIKey != "" {
		api.Use(AuthMiddleware(opts.APIKey))
	}

	// Упражнения и графики
	api.GET("/exercises", h.ListExercises)
	api.GET("/progress", h.Progress)
	api.GET("/top", h.Top)
	api.GET("/charts/progress", h.ProgressPNG)
	api.GET("/charts/top", h.TopPNG)

	// Логи
	api.POST("/logs", h.AddLog)
	api.DELETE("/logs/:id", h.DeleteLog)

	// Сплиты
	api.GET("/splits", h.ListSplits)
	api.POST("/splits", h.CreateSplit)
}

func (h *Handlers) ListExercises(c *gin.Context) {
	names, err := h.progressService.ExerciseNames(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": names})
}

func (h *Handlers) Progress(c *gin.Context) {
	chart, ok := h.progressChart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"exercise": chart.Exercise,
		"months":   chart.Months,
		"labels":   chart.Series.Labels,
		"values":   chart.Series.Values,
		"skipped":  len(chart.Skipped),
	})
}

func (h *Handlers) Top(c *gin.Context) {
	top, ok := h.topChart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"exercises": top.Exercises,
		"skipped":   len(top.Skipped),
	})
}

func (h *Handlers) ProgressPNG(c *gin.Context) {
	chart, ok := h.progressChart(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := charts.RenderProgress(chart.Exercise, chart.Series, h.progressService.Now(), &buf); err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *Handlers) TopPNG(c *gin.Context) {
	top, ok := h.topChart(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	err := charts.RenderTop("Strongest lifts", top.Exercises, &buf)
	if errors.Is(err, charts.ErrNoData) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *Handlers) AddLog(c *gin.Context) {
	var input service.AddLogDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.progressService.AddLog(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *Handlers) DeleteLog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}
	if err := h.progressService.DeleteLog(c.Request.Context(), uint(id)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) ListSplits(c *gin.Context) {
	splits, err := h.workoutService.ListSplits(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, splits)
}

func (h *Handlers) CreateSplit(c *gin.Context) {
	var input service.CreateSplitDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	split, err := h.workoutService.CreateSplit(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, split)
}

// progressChart разбирает exercise и months; months только из фиксированного набора
func (h *Handlers) progressChart(c *gin.Context) (*service.ProgressChart, bool) {
	exercise := c.Query("exercise")
	if exercise == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exercise is required"})
		return nil, false
	}
	months, err := strconv.Atoi(c.DefaultQuery("months", strconv.Itoa(service.DefaultTimeScale)))
	if err != nil || !strength.IsTimeScale(months) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "months must be one of 1, 3, 6, 12"})
		return nil, false
	}

	chart, err := h.progressService.ProgressChart(c.Request.Context(), exercise, float64(months))
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return chart, true
}

func (h *Handlers) topChart(c *gin.Context) (*service.TopChart, bool) {
	n, err := strconv.Atoi(c.DefaultQuery("n", strconv.Itoa(h.topN)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a number"})
		return nil, false
	}

	top, err := h.progressService.TopExercises(c.Request.Context(), n)
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return top, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case service.IsValidationError(err), service.IsConfigurationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case service.IsDataUnavailable(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "data unavailable, try again"})
	default:
		utils.Log.WithField("path", c.FullPath()).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
