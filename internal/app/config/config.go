// Package config loads and validates the application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Modes the application can run in. Production mode enforces that a
// secret key is explicitly injected; there is no embedded default.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// ErrMissingSecretKey is returned by Validate when production mode is
// requested without an explicitly injected secret key.
var ErrMissingSecretKey = errors.New("secret_key must be set in production mode")

// Config holds all application configuration. It is constructed once at
// startup and passed explicitly to the entry point; nothing reads the
// environment after Load returns.
type Config struct {
	Mode      string `yaml:"mode"`
	HTTPAddr  string `yaml:"http_addr"`
	SecretKey string `yaml:"secret_key"`

	Database Database `yaml:"database"`
	Redis    Redis    `yaml:"redis"`
	Market   Market   `yaml:"market"`
	CORS     CORS     `yaml:"cors"`
}

// Database selects the storage backend: a postgres DSN takes precedence,
// otherwise the sqlite file path is used.
type Database struct {
	DSN           string `yaml:"dsn"`
	SQLitePath    string `yaml:"sqlite_path"`
	RunMigrations bool   `yaml:"run_migrations"`
}

// Redis configures the optional cache. An empty host disables caching.
type Redis struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
}

// Market configures the synthetic data generator and the live feed.
type Market struct {
	Seed           int64         `yaml:"seed"`            // 0 = time-seeded
	BondCount      int           `yaml:"bond_count"`      // batch size per refresh
	StreamInterval time.Duration `yaml:"stream_interval"` // SSE emit interval
	RefreshCron    string        `yaml:"refresh_cron"`    // empty = no background refresh
	CacheTTL       time.Duration `yaml:"cache_ttl"`       // history cache TTL
}

// CORS configures allowed browser origins.
type CORS struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error: everything can
// be supplied through the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("APP_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("RUN_MIGRATIONS"); v != "" {
		cfg.Database.RunMigrations = v == "true"
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		cfg.Redis.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("GENERATOR_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Market.Seed = seed
		}
	}
	if v := os.Getenv("BOND_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Market.BondCount = n
		}
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Market.RefreshCron = v
	}

	// Defaults
	if cfg.Mode == "" {
		cfg.Mode = ModeDevelopment
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "bonds.db"
	}
	if cfg.Redis.Port == "" {
		cfg.Redis.Port = "6379"
	}
	if cfg.Market.BondCount <= 0 {
		cfg.Market.BondCount = 20
	}
	if cfg.Market.StreamInterval <= 0 {
		cfg.Market.StreamInterval = 5 * time.Second
	}
	if cfg.Market.CacheTTL <= 0 {
		cfg.Market.CacheTTL = 5 * time.Minute
	}

	return cfg, nil
}

// Validate fails fast on configuration that must never reach production:
// most importantly a missing secret key with no fallback default.
func (c *Config) Validate() error {
	if c.Mode != ModeDevelopment && c.Mode != ModeProduction {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Mode == ModeProduction && c.SecretKey == "" {
		return ErrMissingSecretKey
	}
	return nil
}
