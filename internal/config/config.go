package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - конфигурация сервиса
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Redis
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Статика карты
	RestrictedAreasPath string `env:"RESTRICTED_AREAS_PATH" envDefault:"data/restricted_areas.geojson"`
	SachetDataPath      string `env:"SACHET_DATA_PATH" envDefault:"data/sachet.json"`
	LandslideDataPath   string `env:"LANDSLIDE_DATA_PATH" envDefault:"data/landslide.json"`

	// Кеш
	MarkerCacheTTL    time.Duration `env:"MARKER_CACHE_TTL" envDefault:"24h"`
	ComplaintCacheTTL time.Duration `env:"COMPLAINT_CACHE_TTL" envDefault:"5m"`

	// Фоновые задачи
	SOSIdleTimeout             time.Duration `env:"SOS_IDLE_TIMEOUT" envDefault:"30m"`
	SOSSweepSchedule           string        `env:"SOS_SWEEP_SCHEDULE" envDefault:"@every 1m"`
	LocationCheckRetention     time.Duration `env:"LOCATION_CHECK_RETENTION" envDefault:"720h"`
	LocationCheckPruneSchedule string        `env:"LOCATION_CHECK_PRUNE_SCHEDULE" envDefault:"0 3 * * *"`

	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// Уведомления движка геозон отправляются в фоне
	NotificationTimeout time.Duration `env:"NOTIFICATION_TIMEOUT" envDefault:"10s"`

	// Трассировка
	TracingEnabled     bool    `env:"TRACING_ENABLED" envDefault:"false"`
	TracingServiceName string  `env:"TRACING_SERVICE_NAME" envDefault:"tourist-safety"`
	TracingSampleRatio float64 `env:"TRACING_SAMPLE_RATIO" envDefault:"1"`

	// API ключи для административных маршрутов
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),

		RestrictedAreasPath: getEnv("RESTRICTED_AREAS_PATH", "data/restricted_areas.geojson"),
		SachetDataPath:      getEnv("SACHET_DATA_PATH", "data/sachet.json"),
		LandslideDataPath:   getEnv("LANDSLIDE_DATA_PATH", "data/landslide.json"),

		MarkerCacheTTL:    getEnvAsDuration("MARKER_CACHE_TTL", 24*time.Hour),
		ComplaintCacheTTL: getEnvAsDuration("COMPLAINT_CACHE_TTL", 5*time.Minute),

		SOSIdleTimeout:             getEnvAsDuration("SOS_IDLE_TIMEOUT", 30*time.Minute),
		SOSSweepSchedule:           getEnv("SOS_SWEEP_SCHEDULE", "@every 1m"),
		LocationCheckRetention:     getEnvAsDuration("LOCATION_CHECK_RETENTION", 30*24*time.Hour),
		LocationCheckPruneSchedule: getEnv("LOCATION_CHECK_PRUNE_SCHEDULE", "0 3 * * *"),

		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),

		NotificationTimeout: getEnvAsDuration("NOTIFICATION_TIMEOUT", 10*time.Second),

		TracingEnabled:     getEnvAsBool("TRACING_ENABLED", false),
		TracingServiceName: getEnv("TRACING_SERVICE_NAME", "tourist-safety"),
		TracingSampleRatio: getEnvAsFloat("TRACING_SAMPLE_RATIO", 1),
	}

	cfg.APIKeys = splitList(os.Getenv("API_KEYS"))

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.TracingSampleRatio < 0 || cfg.TracingSampleRatio > 1 {
		return nil, fmt.Errorf("TRACING_SAMPLE_RATIO must be between 0 and 1, got %v", cfg.TracingSampleRatio)
	}
	if cfg.WebhookMaxRetries < 1 {
		return nil, fmt.Errorf("WEBHOOK_MAX_RETRIES must be positive, got %d", cfg.WebhookMaxRetries)
	}

	return cfg, nil
}

// splitList разбирает список через запятую, пустые элементы отбрасываются
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
