package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

const (
	StoreTypePostgres = "postgres"
	StoreTypeMemory   = "memory"

	AIProviderGemini = "gemini"
	AIProviderOpenAI = "openai"
	AIProviderNone   = "none"

	DefaultAITimeout = 8 * time.Second
)

type Config struct {
	Host        string
	Port        int
	Environment string
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage
	StoreType       string `toml:"store_type"`
	PostgresHost    string `toml:"postgres_host"`
	PostgresPort    string `toml:"postgres_port"`
	PostgresDBName  string `toml:"postgres_db_name"`
	PostgresUser    string `toml:"postgres_user"`
	PostgresMigrate bool   `toml:"postgres_migrate"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// ai
	AIProvider string   `toml:"ai_provider"`
	AIModel    string   `toml:"ai_model"`
	AIBaseURL  string   `toml:"ai_base_url"`
	AITimeout  Duration `toml:"ai_timeout"`
	// limits
	SuggestionsRateLimitPerMin int `toml:"suggestions_rate_limit_per_min"`
	LoginRateLimitPerMin       int `toml:"login_rate_limit_per_min"`
	// leaderboard cache
	LeaderboardCacheTTLSeconds int `toml:"leaderboard_cache_ttl_seconds"`
	LeaderboardCacheSizeMB     int `toml:"leaderboard_cache_size_mb"`
	// http
	AllowedOrigins         []string `toml:"allowed_origins"`
	SessionCleanupSchedule string   `toml:"session_cleanup_schedule"`
}

// Duration decodes toml strings like "8s" into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s not found", env)
	}
	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

// Load reads the toml file at path and returns the config for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) applyDefaults() {
	if c.StoreType == "" {
		c.StoreType = StoreTypeMemory
	}
	if c.AIProvider == "" {
		c.AIProvider = AIProviderNone
	}
	if c.AITimeout.Duration <= 0 {
		c.AITimeout.Duration = DefaultAITimeout
	}
	if c.SuggestionsRateLimitPerMin <= 0 {
		c.SuggestionsRateLimitPerMin = 10
	}
	if c.LoginRateLimitPerMin <= 0 {
		c.LoginRateLimitPerMin = 5
	}
	if c.LeaderboardCacheTTLSeconds <= 0 {
		c.LeaderboardCacheTTLSeconds = 30
	}
	if c.LeaderboardCacheSizeMB <= 0 {
		c.LeaderboardCacheSizeMB = 1
	}
	if c.SessionCleanupSchedule == "" {
		c.SessionCleanupSchedule = "@every 8h"
	}
}

func (c *Config) Validate() error {
	switch c.StoreType {
	case StoreTypePostgres, StoreTypeMemory:
	default:
		return fmt.Errorf("unknown store type: %s", c.StoreType)
	}
	switch c.AIProvider {
	case AIProviderGemini, AIProviderOpenAI, AIProviderNone:
	default:
		return fmt.Errorf("unknown ai provider: %s", c.AIProvider)
	}
	if c.Port <= 0 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

// Secrets are never kept in config.toml.
type Secrets struct {
	AIAPIKey         string `env:"FORGEZONE_AI_API_KEY"`
	RedisPassword    string `env:"FORGEZONE_REDIS_PASS"`
	PostgresPassword string `env:"FORGEZONE_POSTGRES_PASS"`
	SentryDSN        string `env:"FORGEZONE_SENTRY_DSN"`
	HoneycombEnabled bool   `env:"FORGEZONE_HONEYCOMB_ENABLED, default=false"`
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	var s Secrets
	if err := envconfig.Process(ctx, &s); err != nil {
		return nil, fmt.Errorf("process secrets env: %w", err)
	}
	return &s, nil
}

func loadSecretsWith(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process secrets: %w", err)
	}
	return &s, nil
}
