package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
	EventBus EventBusConfig
	Database DatabaseConfig
	Import   ImportConfig
	Session  SessionConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
	BodyLimit       string
}

type WorkerConfig struct {
	PoolSize   int
	MaxRetries int
}

type LoggingConfig struct {
	Level string
}

type EventBusConfig struct {
	ChannelBufferSize int
	RetryBaseDelay    time.Duration
	RetryMaxDelay     time.Duration
}

// DatabaseConfig selects the PostgreSQL backend when URL is set; otherwise
// everything is kept in memory.
type DatabaseConfig struct {
	URL             string
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	AutoMigrate     bool
}

type ImportConfig struct {
	PreviewRows       int
	ErrorDisplayLimit int
	SubmitRatePerSec  float64
}

type SessionConfig struct {
	TTL           time.Duration
	SweepSchedule string
}

// AuthConfig enables bearer token checks when JWTSecret is set.
type AuthConfig struct {
	JWTSecret     string
	DefaultUserID string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
			BodyLimit:       getEnv("SERVER_BODY_LIMIT", "10M"),
		},
		Worker: WorkerConfig{
			PoolSize:   getIntEnv("WORKER_POOL_SIZE", 2),
			MaxRetries: getIntEnv("MAX_RETRIES", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 1000),
			RetryBaseDelay:    getDurationEnv("EVENT_RETRY_BASE_DELAY", time.Second),
			RetryMaxDelay:     getDurationEnv("EVENT_RETRY_MAX_DELAY", 30*time.Second),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getIntEnv("DATABASE_MAX_CONNS", 10),
			MinConns:        getIntEnv("DATABASE_MIN_CONNS", 1),
			MaxConnLifetime: getDurationEnv("DATABASE_MAX_CONN_LIFETIME", 5*time.Minute),
			MaxConnIdleTime: getDurationEnv("DATABASE_MAX_CONN_IDLE_TIME", 10*time.Minute),
			AutoMigrate:     getBoolEnv("DATABASE_AUTO_MIGRATE", true),
		},
		Import: ImportConfig{
			PreviewRows:       getIntEnv("IMPORT_PREVIEW_ROWS", 5),
			ErrorDisplayLimit: getIntEnv("IMPORT_ERROR_DISPLAY_LIMIT", 50),
			SubmitRatePerSec:  getFloatEnv("IMPORT_SUBMIT_RATE", 0),
		},
		Session: SessionConfig{
			TTL:           getDurationEnv("SESSION_TTL", 30*time.Minute),
			SweepSchedule: getEnv("SESSION_SWEEP_SCHEDULE", "@every 1m"),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", ""),
			DefaultUserID: getEnv("DEFAULT_USER_ID", "local"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getFloatEnv(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %g", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
