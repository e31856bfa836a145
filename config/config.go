package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// SupabaseConfig holds the two values needed to read from the Supabase REST API.
// Either may be empty; callers treat that as a degraded, not fatal, condition.
type SupabaseConfig struct {
	URL     string
	AnonKey string
}

// Configured reports whether both the URL and the anon key are set.
func (s SupabaseConfig) Configured() bool {
	return s.URL != "" && s.AnonKey != ""
}

// RateLimitConfig controls the optional Redis-backed limiter.
type RateLimitConfig struct {
	RedisAddr string
	Limit     int           `validate:"gte=0"`
	Window    time.Duration `validate:"gt=0"`
}

// Enabled reports whether a Redis address was provided.
func (r RateLimitConfig) Enabled() bool {
	return r.RedisAddr != ""
}

// Config is built once at startup and passed to every component that needs it.
type Config struct {
	Port            int           `validate:"gte=1,lte=65535"`
	LogLevel        string        `validate:"oneof=trace debug info warn warning error fatal panic"`
	UpstreamTimeout time.Duration `validate:"gte=0"`
	Supabase        SupabaseConfig
	RateLimit       RateLimitConfig
}

const (
	defaultPort            = 8080
	defaultLogLevel        = "info"
	defaultUpstreamTimeout = 10 * time.Second
	defaultRateLimit       = 60
	defaultRateWindow      = time.Minute
)

var validate = validator.New()

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads the configuration through getenv, which makes it easy to feed a map in tests.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:            defaultPort,
		LogLevel:        defaultLogLevel,
		UpstreamTimeout: defaultUpstreamTimeout,
		Supabase: SupabaseConfig{
			URL:     strings.TrimRight(strings.TrimSpace(getenv("SUPABASE_URL")), "/"),
			AnonKey: strings.TrimSpace(getenv("SUPABASE_ANON_KEY")),
		},
		RateLimit: RateLimitConfig{
			RedisAddr: strings.TrimSpace(getenv("REDIS_ADDR")),
			Limit:     defaultRateLimit,
			Window:    defaultRateWindow,
		},
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", v, err)
		}
		cfg.UpstreamTimeout = d
	}
	if v := getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT %q: %w", v, err)
		}
		cfg.RateLimit.Limit = n
	}
	if v := getenv("RATE_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RATE_WINDOW %q: %w", v, err)
		}
		cfg.RateLimit.Window = d
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
