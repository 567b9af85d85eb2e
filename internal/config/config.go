package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultJWTSecret is the development fallback used when JWT_SECRET is
// unset. Startup logs a warning when it is in effect; production deploys
// must set their own secret.
const DefaultJWTSecret = "your_jwt_secret"

const (
	BackendPostgres = "postgres"
	BackendJSONFile = "jsonfile"
)

type Config struct {
	// App
	Env string // dev / staging / prod
	// HTTP
	HTTPAddr string
	// Auth / Security
	JWTSecret          string
	UsingDefaultSecret bool
	TokenTTL           time.Duration
	// Unknown roles always normalize to "user"; when false, a requested
	// "admin" role does too.
	AllowSelfServeAdmin bool

	// Storage
	StoreBackend string // postgres / jsonfile
	DBAddr       string // postgres DSN, required for the postgres backend
	JSONDBPath   string // flat-file path, used by the jsonfile backend

	// Optional infrastructure: empty disables the feature.
	RedisAddr string
	RabbitURL string

	// Login rate limit (fixed window, keyed by client IP).
	LoginRateLimit  int
	LoginRateWindow time.Duration

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DefaultJWTSecret
		cfg.UsingDefaultSecret = true
	}

	ttl, err := getDuration("TOKEN_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = ttl

	adm, err := getBool("ALLOW_SELF_SERVE_ADMIN", false)
	if err != nil {
		return nil, err
	}
	cfg.AllowSelfServeAdmin = adm

	cfg.StoreBackend = getEnv("STORE_BACKEND", BackendPostgres)
	switch cfg.StoreBackend {
	case BackendPostgres:
		cfg.DBAddr = os.Getenv("DB_ADDR")
		if cfg.DBAddr == "" {
			return nil, fmt.Errorf("missing required env var: DB_ADDR")
		}
	case BackendJSONFile:
		cfg.JSONDBPath = getEnv("JSON_DB_PATH", "db.json")
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND: %q", cfg.StoreBackend)
	}

	// Redis and RabbitMQ are optional: without Redis login is not rate
	// limited, without RabbitMQ lifecycle events are dropped.
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RabbitURL = os.Getenv("RABBIT_URL")

	limit, err := getInt("LOGIN_RATE_LIMIT", 5)
	if err != nil {
		return nil, err
	}
	cfg.LoginRateLimit = limit

	window, err := getDuration("LOGIN_RATE_WINDOW", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.LoginRateWindow = window

	rt, err := getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPReadTimeout = rt

	wt, err := getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPWriteTimeout = wt

	it, err := getDuration("HTTP_IDLE_TIMEOUT", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.HTTPIdleTimeout = it

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q: %w", key, v, err)
	}
	return d, nil
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q: %w", key, v, err)
	}
	return n, nil
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %q: %w", key, v, err)
	}
	return b, nil
}
