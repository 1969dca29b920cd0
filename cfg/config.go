package cfg

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// Addr returns host:port, or "" when Redis is not configured.
func (r RedisConfig) Addr() string {
	if r.Host == "" {
		return ""
	}
	return r.Host + ":" + r.Port
}

type PostgresConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string
}

// DSN returns a postgres:// url, or "" when Postgres is not configured.
func (p PostgresConfig) DSN() string {
	if p.Host == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(p.User), url.QueryEscape(p.Password), p.Host, p.Port, p.DBName, p.SSLMode)
}

type BackendClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SuggestConfig struct {
	SourceTimeout time.Duration
	Debounce      time.Duration
	CacheTTL      time.Duration
}

type ObservabilityConfig struct {
	ServiceName  string
	Environment  string
	OTLPEndpoint string
}

type Config struct {
	AppEnv          string
	AppPort         string
	NodeID          int64
	RedisConfig     RedisConfig
	Postgres        PostgresConfig
	BackendConfig   BackendClientConfig
	SuggestConfig   SuggestConfig
	Observability   ObservabilityConfig
	CacheTTLMinutes int
	SessionTTL      time.Duration
	ListingLimit    int
}

func Load() (*Config, error) {
	var errs []error

	// .env is optional in containers where the environment is injected directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	backendBaseURL := mustEnv("BACKEND_BASE_URL", &errs)

	cfg := &Config{
		AppEnv:  appEnv,
		AppPort: envOr("APP_PORT", "8080"),
		NodeID:  int64(intEnv("NODE_ID", 1, &errs)),
		RedisConfig: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     envOr("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Postgres: PostgresConfig{
			Host:           os.Getenv("POSTGRES_HOST"),
			Port:           envOr("POSTGRES_PORT", "5432"),
			User:           envOr("POSTGRES_USER", "postgres"),
			Password:       os.Getenv("POSTGRES_PASSWORD"),
			DBName:         envOr("POSTGRES_DB", "tripfinder"),
			SSLMode:        envOr("POSTGRES_SSLMODE", "disable"),
			MigrationsPath: envOr("MIGRATIONS_PATH", "file://db/migrations"),
		},
		BackendConfig: BackendClientConfig{
			BaseURL: backendBaseURL,
			Timeout: time.Duration(intEnv("BACKEND_TIMEOUT_MS", 5000, &errs)) * time.Millisecond,
		},
		SuggestConfig: SuggestConfig{
			SourceTimeout: time.Duration(intEnv("SUGGEST_TIMEOUT_MS", 4000, &errs)) * time.Millisecond,
			Debounce:      time.Duration(intEnv("SUGGEST_DEBOUNCE_MS", 300, &errs)) * time.Millisecond,
			CacheTTL:      time.Duration(intEnv("SUGGEST_CACHE_TTL_SECONDS", 60, &errs)) * time.Second,
		},
		Observability: ObservabilityConfig{
			ServiceName:  envOr("OTEL_SERVICE_NAME", "tripfinder"),
			Environment:  appEnv,
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
		CacheTTLMinutes: intEnv("CACHE_TTL_MINUTES", 10, &errs),
		SessionTTL:      time.Duration(intEnv("SESSION_TTL_MINUTES", 720, &errs)) * time.Minute,
		ListingLimit:    intEnv("LISTING_LIMIT", 100, &errs),
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int, errs *[]error) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return n
}
