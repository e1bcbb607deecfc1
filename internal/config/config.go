package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// point node
	PointNodeURL       string   `toml:"point_node_url"`
	PointNodeTimeout   Duration `toml:"point_node_timeout"`
	BlogIdentity       string   `toml:"blog_identity"`
	StorageCacheSizeMB int      `toml:"storage_cache_size_mb"`
	// redis
	RedisHost        string   `toml:"redis_host"`
	RedisPort        string   `toml:"redis_port"`
	IdentityCacheTTL Duration `toml:"identity_cache_ttl"`
	// contract sends allowed per minute, 0 disables the limit
	ContractSendsPerMin int `toml:"contract_sends_per_min"`
	// allowed CORS origins, besides the point node itself
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Duration is a time.Duration that can be read from TOML strings like "30s".
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
		return nil, fmt.Errorf("config for env [%s] not set", env)
	}
	cfg.Environment = strings.ToLower(env)
	return cfg, nil
}

func Load(env, configPath string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(configPath, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", configPath, err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return cfg, nil
}

func Parse(env, tomlData string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(tomlData, &t); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9100
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "9101"
	}
	if c.PointNodeURL == "" {
		c.PointNodeURL = "http://localhost:2468"
	}
	c.PointNodeURL = strings.TrimSuffix(c.PointNodeURL, "/")
	if c.PointNodeTimeout.Duration == 0 {
		c.PointNodeTimeout.Duration = 30 * time.Second
	}
	if c.IdentityCacheTTL.Duration == 0 {
		c.IdentityCacheTTL.Duration = time.Hour
	}
	if c.RedisHost == "" {
		c.RedisHost = "localhost"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
}
