// Package config builds runtime configuration from environment variables so
// main stays lean. Every external collaborator the service talks to is
// configured here; nothing reads the environment elsewhere.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
}

// Postgres captures database configuration.
type Postgres struct {
	URL string
}

// Redis captures cache configuration.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Kafka captures the optional audit event sink.
type Kafka struct {
	Brokers    []string
	AuditTopic string
}

// Bureau captures identity-data provider configuration. UseMockData is the
// explicit switch between the real vendor API and deterministic mock
// reports; scoring logic never inspects it.
type Bureau struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	UseMockData bool
	CacheTTL    time.Duration
}

// Config is the full runtime configuration.
type Config struct {
	Server   Server
	Postgres Postgres
	Redis    Redis
	Kafka    Kafka
	Bureau   Bureau
}

// FromEnv builds a Config from environment variables with development
// defaults.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:          envOr("CREDLENS_ADDR", ":8080"),
			JWTSigningKey: envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
			JWTIssuer:     envOr("JWT_ISSUER", "credlens"),
			JWTAudience:   envOr("JWT_AUDIENCE", "credlens-api"),
		},
		Postgres: Postgres{
			URL: os.Getenv("POSTGRES_URL"),
		},
		Redis: Redis{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: Kafka{
			Brokers:    splitNonEmpty(os.Getenv("KAFKA_BROKERS")),
			AuditTopic: envOr("KAFKA_AUDIT_TOPIC", "credlens.audit"),
		},
		Bureau: Bureau{
			BaseURL:     os.Getenv("BUREAU_BASE_URL"),
			APIKey:      os.Getenv("BUREAU_API_KEY"),
			Timeout:     envDuration("BUREAU_TIMEOUT", 15*time.Second),
			UseMockData: os.Getenv("BUREAU_USE_MOCK_DATA") == "true",
			CacheTTL:    envDuration("BUREAU_CACHE_TTL", 24*time.Hour),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
