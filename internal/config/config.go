package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/safety_scoring_system/internal/scoring"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	DBMaxConns     int    `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass      string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize  int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RegionCacheTTL time.Duration `env:"REGION_CACHE_TTL" envDefault:"5m"`

	// Recompute Config
	RecomputeWorkers     int           `env:"RECOMPUTE_WORKERS" envDefault:"2"`
	RecomputeMaxRetries  int           `env:"RECOMPUTE_MAX_RETRIES" envDefault:"3"`
	RecomputeBaseDelay   time.Duration `env:"RECOMPUTE_BASE_DELAY" envDefault:"500ms"`
	RecomputePollTimeout time.Duration `env:"RECOMPUTE_POLL_TIMEOUT" envDefault:"5s"`
	RecomputeSchedule    string        `env:"RECOMPUTE_SCHEDULE" envDefault:"0 0 * * * *"`

	// Scoring Config
	Scoring scoring.Config

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		MigrationsPath:       getEnv("MIGRATIONS_PATH", "file://migrations"),
		DBMaxConns:           getEnvAsInt("DB_MAX_CONNS", 10),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "json"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 10),
		RegionCacheTTL:       getEnvAsDuration("REGION_CACHE_TTL", 5*time.Minute),
		RecomputeWorkers:     getEnvAsInt("RECOMPUTE_WORKERS", 2),
		RecomputeMaxRetries:  getEnvAsInt("RECOMPUTE_MAX_RETRIES", 3),
		RecomputeBaseDelay:   getEnvAsDuration("RECOMPUTE_BASE_DELAY", 500*time.Millisecond),
		RecomputePollTimeout: getEnvAsDuration("RECOMPUTE_POLL_TIMEOUT", 5*time.Second),
		RecomputeSchedule:    getEnv("RECOMPUTE_SCHEDULE", "0 0 * * * *"),
	}

	scoringCfg, err := loadScoringConfig()
	if err != nil {
		return nil, err
	}
	cfg.Scoring = scoringCfg

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.RecomputeWorkers < 1 {
		return nil, fmt.Errorf("RECOMPUTE_WORKERS must be at least 1, got %d", cfg.RecomputeWorkers)
	}

	return cfg, nil
}

// loadScoringConfig собирает константы алгоритма подсчета и проверяет их
func loadScoringConfig() (scoring.Config, error) {
	weights, err := scoring.ParseSeverityWeights(os.Getenv("SCORE_SEVERITY_WEIGHTS"))
	if err != nil {
		return scoring.Config{}, fmt.Errorf("SCORE_SEVERITY_WEIGHTS: %w", err)
	}

	sc := scoring.Config{
		SeverityWeights:       weights,
		AdminValidationFactor: getEnvAsFloat("SCORE_ADMIN_VALIDATION_FACTOR", scoring.DefaultAdminValidationFactor),
		NGOValidationFactor:   getEnvAsFloat("SCORE_NGO_VALIDATION_FACTOR", scoring.DefaultNGOValidationFactor),
		MultiplierCeiling:     getEnvAsFloat("SCORE_MULTIPLIER_CEILING", scoring.DefaultMultiplierCeiling),
		HalfLifeDays:          getEnvAsFloat("SCORE_DECAY_HALF_LIFE_DAYS", scoring.DefaultHalfLifeDays),
		DecayFloor:            getEnvAsFloat("SCORE_DECAY_FLOOR", scoring.DefaultDecayFloor),
		DecayModel:            scoring.DecayModel(getEnv("SCORE_DECAY_MODEL", string(scoring.DecayLinear))),
		SaturationK:           getEnvAsFloat("SCORE_SATURATION_K", scoring.DefaultSaturationK),
	}
	if err := sc.Validate(); err != nil {
		return scoring.Config{}, fmt.Errorf("invalid scoring config: %w", err)
	}
	return sc, nil
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
