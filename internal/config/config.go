package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port           string        `envconfig:"PORT" default:"4000"`
	Provider       string        `envconfig:"PROVIDER" default:"mlbstats"`
	Season         string        `envconfig:"SEASON"`
	PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"15m"`
	EnrichTimeout  time.Duration `envconfig:"ENRICH_TIMEOUT" default:"10s"`
	SearchDebounce time.Duration `envconfig:"SEARCH_DEBOUNCE" default:"500ms"`
	StandingsHour  int           `envconfig:"STANDINGS_DAILY_HOUR" default:"6"`

	MLBStats MLBStatsConfig
	Database DatabaseConfig
	Metrics  MetricsConfig
}

// MLBStatsConfig controls how the MLB Stats API client reaches upstream.
type MLBStatsConfig struct {
	BaseURL string        `envconfig:"MLBSTATS_BASE_URL" default:"https://statsapi.mlb.com/api/v1"`
	Timeout time.Duration `envconfig:"MLBSTATS_TIMEOUT" default:"10s"`
}

// DatabaseConfig selects the note store backend. An empty path keeps
// sections and notes in memory.
type DatabaseConfig struct {
	Path string `envconfig:"DATABASE_PATH"`
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool   `envconfig:"METRICS_ENABLED" default:"false"`
	Port         string `envconfig:"METRICS_PORT" default:"9090"`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"mlb-roster-service"`
	OtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"false"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 15 * time.Minute
	}
	if cfg.EnrichTimeout <= 0 {
		cfg.EnrichTimeout = 10 * time.Second
	}
	if cfg.SearchDebounce <= 0 {
		cfg.SearchDebounce = 500 * time.Millisecond
	}
	if cfg.StandingsHour < 0 || cfg.StandingsHour > 23 {
		cfg.StandingsHour = 6
	}
	return cfg, nil
}
