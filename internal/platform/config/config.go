package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures everything the server reads from the environment so main
// stays lean.
type Config struct {
	Addr          string
	JWTSigningKey string
	TokenTTL      time.Duration

	// PostgresDSN is optional; the server falls back to in-memory stores when
	// it is empty, which keeps local development database-free.
	PostgresDSN string

	Redis RedisConfig

	// KafkaBrokers is optional; audit events are dropped when unset.
	KafkaBrokers []string
	AuditTopic   string

	// AskAIBaseURL points at the hosted legal Q&A service.
	AskAIBaseURL string

	DirectoryCacheTTL time.Duration
}

// RedisConfig mirrors the go-redis options we care about.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables with development
// defaults. The JWT key default must be overridden in production.
func FromEnv() Config {
	cfg := Config{
		Addr:              envOr("LAWMATE_ADDR", ":8080"),
		JWTSigningKey:     envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		TokenTTL:          envDurationOr("TOKEN_TTL", 24*time.Hour),
		PostgresDSN:       os.Getenv("POSTGRES_DSN"),
		AuditTopic:        envOr("AUDIT_TOPIC", "lawmate.audit"),
		AskAIBaseURL:      envOr("ASKAI_BASE_URL", "http://localhost:5001"),
		DirectoryCacheTTL: envDurationOr("DIRECTORY_CACHE_TTL", 5*time.Minute),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envIntOr("REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDurationOr("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDurationOr("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDurationOr("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
