package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Store backends accepted by STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"3000"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`

	HandCashAppID     string        `env:"HANDCASH_APP_ID"`
	HandCashAppSecret string        `env:"HANDCASH_APP_SECRET"`
	HandCashAuthURL   string        `env:"HANDCASH_AUTH_URL" envDefault:"https://app.handcash.io/#/authorizeApp"`
	HandCashAPIURL    string        `env:"HANDCASH_API_URL" envDefault:"https://cloud.handcash.io"`
	HandCashTimeout   time.Duration `env:"HANDCASH_TIMEOUT" envDefault:"10s"`

	StoreBackend string `env:"STORE_BACKEND" envDefault:"memory"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	DatabaseDSN string `env:"DATABASE_DSN"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	AuthRateLimitPerMin  int `env:"RATELIMIT_AUTH_PER_MIN" envDefault:"20"`
	WriteRateLimitPerMin int `env:"RATELIMIT_WRITE_PER_MIN" envDefault:"30"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.StoreBackend {
	case BackendMemory, BackendRedis:
	case BackendPostgres, BackendSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("config: DATABASE_DSN is required for %s backend", c.StoreBackend)
		}
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if c.AuthRateLimitPerMin <= 0 || c.WriteRateLimitPerMin <= 0 {
		return fmt.Errorf("config: rate limits must be positive")
	}

	return nil
}

// Production reports whether cookies must be issued with production
// policy (Secure, SameSite=None).
func (c Config) Production() bool {
	return c.AppEnv == EnvProduction
}

// HandCashConfigured reports whether both HandCash credentials are set.
func (c Config) HandCashConfigured() bool {
	return c.HandCashAppID != "" && c.HandCashAppSecret != ""
}
