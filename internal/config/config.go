package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// database
	DBDriver    string
	DatabaseURL string
	// telegram
	TelegramToken string
	AdminIDs      []int64
	// http
	HTTPAddr    string
	AdminAPIKey string
	// /metrics бота; пусто - не слушать
	MetricsAddr string
	// charts
	TopN int
	// logging
	LogLevel string
	LogFile  string
	LogJSON  bool
}

const (
	defaultDBDriver    = "sqlite"
	defaultDatabaseURL = "strength.db"
	defaultHTTPAddr    = ":8080"
	defaultMetricsAddr = ":9091"
	defaultTopN        = 3
)

// Load читает .env (если есть), затем переменные окружения.
// Возвращает true вторым значением, если .env был найден.
func Load(envFiles ...string) (*Config, bool, error) {
	envLoaded := godotenv.Load(envFiles...) == nil
	cfg, err := FromEnv(os.Getenv)
	return cfg, envLoaded, err
}

// FromEnv собирает конфиг из функции поиска переменных
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DBDriver:      strings.ToLower(or(getenv("DB_DRIVER"), defaultDBDriver)),
		DatabaseURL:   or(getenv("DATABASE_URL"), defaultDatabaseURL),
		TelegramToken: getenv("TELEGRAM_TOKEN"),
		AdminIDs:      ParseAdminIDs(getenv("ADMIN_IDS")),
		HTTPAddr:      or(getenv("HTTP_ADDR"), defaultHTTPAddr),
		AdminAPIKey:   getenv("ADMIN_API_KEY"),
		MetricsAddr:   metricsAddr(getenv),
		TopN:          defaultTopN,
		LogLevel:      or(getenv("LOG_LEVEL"), "info"),
		LogFile:       getenv("LOG_FILE"),
	}

	if v := getenv("TOP_N"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("TOP_N must be a positive integer, got %q", v)
		}
		cfg.TopN = n
	}

	if v := getenv("LOG_JSON"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("LOG_JSON must be a boolean, got %q", v)
		}
		cfg.LogJSON = b
	}

	switch cfg.DBDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", cfg.DBDriver)
	}

	return cfg, nil
}

// ParseAdminIDs разбирает "1,2,3", пропуская мусор
func ParseAdminIDs(ids string) []int64 {
	var result []int64
	for _, part := range strings.Split(ids, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			result = append(result, id)
		}
	}
	return result
}

// METRICS_ADDR=off отключает листенер метрик
func metricsAddr(getenv func(string) string) string {
	v := getenv("METRICS_ADDR")
	switch strings.ToLower(v) {
	case "":
		return defaultMetricsAddr
	case "off", "none", "-":
		return ""
	}
	return v
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
