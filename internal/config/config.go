package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults;
// a .env file is loaded by main via godotenv before Load runs.
type Config struct {
	// Server
	Port     int
	LogLevel string

	// ClickUp (CRM)
	ClickUpAPIKey string
	ClickUpListID string

	// Cal.com (scheduling)
	CalComAPIKey      string
	CalComEventTypeID int

	// OpenAI-compatible text generation
	OpenAIAPIKey string
	OpenAIModel  string

	// HTTP client
	HTTPTimeout time.Duration

	// Resilience
	MaxRetries     int
	InitialBackoff time.Duration

	// Pipeline state cache
	CacheTTL time.Duration

	// Observability
	OTLPEndpoint string

	// Auth
	APIKeyHash string // bcrypt hash of the agency API key
	JWTSecret  string
	TokenTTL   time.Duration
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ClickUpAPIKey: getEnv("CLICKUP_API_KEY", ""),
		ClickUpListID: getEnv("CLICKUP_LIST_ID", ""),

		CalComAPIKey:      getEnv("CALCOM_API_KEY", ""),
		CalComEventTypeID: getEnvInt("CALCOM_EVENT_TYPE_ID", 0),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 10*time.Second),

		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		InitialBackoff: getEnvDuration("INITIAL_BACKOFF", 200*time.Millisecond),

		CacheTTL: getEnvDuration("CACHE_TTL", 24*time.Hour),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),

		APIKeyHash: getEnv("API_KEY_HASH", ""),
		JWTSecret:  getEnv("JWT_SECRET", "fstech-default-dev-secret-change-me"),
		TokenTTL:   getEnvDuration("TOKEN_TTL", time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
