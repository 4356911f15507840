package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alenapavlenkko/strengthstats/internal/admin"
	"github.com/alenapavlenkko/strengthstats/internal/config"
	"github.com/alenapavlenkko/strengthstats/internal/database"
	"github.com/alenapavlenkko/strengthstats/internal/metrics"
	"github.com/alenapavlenkko/strengthstats/internal/repository"
	"github.com/alenapavlenkko/strengthstats/internal/service"
	"github.com/alenapavlenkko/strengthstats/pkg/utils"
)

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		utils.Log.Error("Invalid configuration: " + err.Error())
		os.Exit(1)
	}
	utils.Setup(utils.LoggerSetupParams{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		JSON:    cfg.LogJSON,
		Service: "admin",
	})
	if !envLoaded {
		utils.Log.Info("No .env file found, reading environment variables")
	}

	// Подключение к базе
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		utils.Log.Error("Failed to connect to database: " + err.Error())
		os.Exit(1)
	}

	// Авто-миграция
	if err := database.AutoMigrateTables(db, database.Models()...); err != nil {
		utils.Log.Error("Failed to migrate tables: " + err.Error())
		os.Exit(1)
	}

	// Метрики
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("strength", "admin", promRegistry)

	// Репозитории
	exerciseRepo := repository.NewExerciseRepo(db)
	logRepo := repository.NewLogRepo(db)
	splitRepo := repository.NewWorkoutSplitRepo(db)

	// Сервисы
	progressService := service.NewProgressService(exerciseRepo, logRepo, service.WithMetrics(metricsManager))
	workoutService := service.NewWorkoutService(splitRepo)

	// Gin router
	if utils.GetLevel(cfg.LogLevel).String() != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(admin.RequestLogger(), gin.Recovery())

	admin.SetupRoutes(router, progressService, workoutService, admin.Options{
		APIKey:   cfg.AdminAPIKey,
		TopN:     cfg.TopN,
		Gatherer: promRegistry,
	})
	if cfg.AdminAPIKey == "" {
		utils.Log.Warn("ADMIN_API_KEY not set, /api is open")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			utils.Log.WithError(err).Error("admin server shutdown")
		}
	}()

	utils.Log.WithField("addr", cfg.HTTPAddr).Info("Admin panel starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		utils.Log.Error("Failed to run admin panel: " + err.Error())
		os.Exit(1)
	}
	utils.Log.Info("Admin panel stopped")
}
