// Package config loads process settings from THETA_ARC_* environment
// variables.
package config

import (
	"log/slog"
	"io"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/theta-arc/internal/errors"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds every runtime setting
type Config struct {
	LogLevel  string `env:"THETA_ARC_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"THETA_ARC_LOG_FORMAT" envDefault:"text"`

	GatewayAddr string `env:"THETA_ARC_GATEWAY_ADDR" envDefault:":8080"`
	GRPCAddr    string `env:"THETA_ARC_GRPC_ADDR" envDefault:":50051"`

	Storage        string        `env:"THETA_ARC_STORAGE" envDefault:"memory"`
	RedisEndpoints []string      `env:"THETA_ARC_REDIS_ENDPOINTS" envSeparator:"," envDefault:"localhost:6379"`
	RedisPoolSize  int           `env:"THETA_ARC_REDIS_POOL_SIZE" envDefault:"10"`
	RedisMaxRetry  int           `env:"THETA_ARC_REDIS_MAX_RETRIES" envDefault:"3"`
	RedisIdle      time.Duration `env:"THETA_ARC_REDIS_IDLE_TIMEOUT" envDefault:"5m"`
	RedisTLS       bool          `env:"THETA_ARC_REDIS_TLS" envDefault:"false"`
	SQLitePath     string        `env:"THETA_ARC_SQLITE_PATH" envDefault:"theta-arc.db"`

	SpeciesCatalog string `env:"THETA_ARC_SPECIES_CATALOG" envDefault:"data/tacs.json"`
	BossCatalog    string `env:"THETA_ARC_BOSS_CATALOG" envDefault:"data/boss_tiers.json"`

	AllowList       []string          `env:"THETA_ARC_ALLOW_LIST" envSeparator:","`
	SpecialStatuses map[string]string `env:"THETA_ARC_SPECIAL_STATUSES" envSeparator:"," envKeyValSeparator:"="`
	DefaultStatus   string            `env:"THETA_ARC_DEFAULT_STATUS"`

	CatchWindow   time.Duration `env:"THETA_ARC_CATCH_WINDOW" envDefault:"10s"`
	TradeTTL      time.Duration `env:"THETA_ARC_TRADE_TTL" envDefault:"60s"`
	DuelTTL       time.Duration `env:"THETA_ARC_DUEL_TTL" envDefault:"5m"`
	SweepInterval time.Duration `env:"THETA_ARC_SWEEP_INTERVAL" envDefault:"1s"`

	OTELEndpoint string `env:"THETA_ARC_OTEL_ENDPOINT"`
	OTELEnabled  bool   `env:"THETA_ARC_OTEL_ENABLED" envDefault:"true"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerations and timings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	switch c.Storage {
	case StorageMemory, StorageRedis, StorageSQLite:
	default:
		vb.InvalidField("Storage", "must be memory, redis or sqlite")
	}
	if c.Storage == StorageRedis && len(c.RedisEndpoints) == 0 {
		vb.RequiredField("RedisEndpoints")
	}
	if c.Storage == StorageSQLite && c.SQLitePath == "" {
		vb.RequiredField("SQLitePath")
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		vb.InvalidField("LogFormat", "must be text or json")
	}
	for name, d := range map[string]time.Duration{
		"CatchWindow":   c.CatchWindow,
		"TradeTTL":      c.TradeTTL,
		"DuelTTL":       c.DuelTTL,
		"SweepInterval": c.SweepInterval,
	} {
		if d <= 0 {
			vb.InvalidField(name, "must be positive")
		}
	}

	return vb.Build()
}

// Allowed reports whether userID is on the allow-list
func (c *Config) Allowed(userID string) bool {
	for _, id := range c.AllowList {
		if id == userID {
			return true
		}
	}
	return false
}

// SetupLogging installs the default slog handler for the configured level
// and format, writing to w
func (c *Config) SetupLogging(w io.Writer) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if strings.EqualFold(c.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
