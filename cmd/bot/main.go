package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alenapavlenkko/strengthstats/internal/bot"
	"github.com/alenapavlenkko/strengthstats/internal/config"
	"github.com/alenapavlenkko/strengthstats/internal/database"
	"github.com/alenapavlenkko/strengthstats/internal/metrics"
	"github.com/alenapavlenkko/strengthstats/internal/repository"
	"github.com/alenapavlenkko/strengthstats/internal/service"
	"github.com/alenapavlenkko/strengthstats/pkg/utils"
)

func main() {
	// -----------------------
	// ENV
	cfg, envLoaded, err := config.Load()
	if err != nil {
		utils.Log.Error("Invalid configuration: " + err.Error())
		os.Exit(1)
	}
	utils.Setup(utils.LoggerSetupParams{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		JSON:    cfg.LogJSON,
		Service: "bot",
	})
	if !envLoaded {
		utils.Log.Info("No .env file found")
	}

	if cfg.TelegramToken == "" {
		utils.Log.Error("TELEGRAM_TOKEN not set")
		os.Exit(1)
	}

	// -----------------------
	// DATABASE
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		utils.Log.Error("Failed to connect to database: " + err.Error())
		os.Exit(1)
	}
	utils.Log.WithField("driver", cfg.DBDriver).Info("Database connected")

	if err := database.AutoMigrateTables(db, database.Models()...); err != nil {
		utils.Log.Error("Failed to migrate database: " + err.Error())
		os.Exit(1)
	}

	// -----------------------
	// REPOSITORIES
	exerciseRepo := repository.NewExerciseRepo(db)
	logRepo := repository.NewLogRepo(db)
	splitRepo := repository.NewWorkoutSplitRepo(db)

	// -----------------------
	// SERVICES
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("strength", "bot", promRegistry)
	progressService := service.NewProgressService(exerciseRepo, logRepo, service.WithMetrics(metricsManager))
	workoutService := service.NewWorkoutService(splitRepo)

	// -----------------------
	// BOT
	utils.Log.WithField("admins", len(cfg.AdminIDs)).Info("Loaded admin IDs")

	botApp, err := bot.NewBotApp(
		cfg.TelegramToken,
		progressService,
		workoutService,
		cfg.AdminIDs,
		cfg.TopN,
	)
	if err != nil {
		utils.Log.Error("Failed to create bot: " + err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// -----------------------
	// METRICS
	if cfg.MetricsAddr != "" {
		metricsServer := metrics.NewServer(cfg.MetricsAddr, promRegistry)
		go func() {
			utils.Log.WithField("addr", cfg.MetricsAddr).Info("Metrics listener starting")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				utils.Log.WithError(err).Error("metrics listener")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}()
	}

	utils.Log.Info("Telegram bot starting...")
	botApp.Run(ctx)
}
