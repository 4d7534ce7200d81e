package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	CorsAllowedOrigins          []string `toml:"cors_allowed_origins"`

	// pricing
	PricingBillingMode string   `toml:"pricing_billing_mode"`
	CurrencySymbol     string   `toml:"currency_symbol"`
	PricingCacheSizeMB int      `toml:"pricing_cache_size_mb"`
	PricingCacheTTL    Duration `toml:"pricing_cache_ttl"`

	// progress
	DefaultDailyCalorieGoal int `toml:"default_daily_calorie_goal"`
}

// Duration wraps time.Duration so it can be written as "10m" in the TOML file.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not present", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the config of the given env,
// with defaults applied to the fields left empty.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.PricingBillingMode == "" {
		c.PricingBillingMode = "period"
	}
	if c.CurrencySymbol == "" {
		c.CurrencySymbol = "$"
	}
	if c.PricingCacheSizeMB <= 0 {
		c.PricingCacheSizeMB = 10
	}
	if c.PricingCacheTTL.Duration <= 0 {
		c.PricingCacheTTL.Duration = 10 * time.Minute
	}
	if c.DefaultDailyCalorieGoal <= 0 {
		c.DefaultDailyCalorieGoal = 500
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
}

// Secrets are never kept in the TOML file, only in the environment.
type Secrets struct {
	AdminUsername     string `env:"SQUADFIT_ADMIN_USERNAME"`
	AdminPasswordHash string `env:"SQUADFIT_ADMIN_PASSWORD_HASH"`
	PostgresPassword  string `env:"SQUADFIT_POSTGRES_PASS"`
	RedisPassword     string `env:"SQUADFIT_REDIS_PASS"`
	SentryDSN         string `env:"SENTRY_DSN"`
	HoneycombEnabled  bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey   string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName   string `env:"OTEL_SERVICE_NAME"`
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	return loadSecrets(ctx, envconfig.OsLookuper())
}

func loadSecrets(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &s, nil
}
