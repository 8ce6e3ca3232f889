package server

import (
	"log/slog"
	"net/http"
	"strings"

	"mlb-roster-service/internal/config"
	"mlb-roster-service/internal/metrics"
	"mlb-roster-service/internal/providers"
	"mlb-roster-service/internal/providers/fixture"
	"mlb-roster-service/internal/providers/mlbstats"
)

// buildProvider selects the configured provider and wraps it with call
// instrumentation. No retry wrapper: a failed lookup is one dropped item,
// never a second upstream request.
func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.DataProvider {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))

	var base providers.DataProvider
	switch name {
	case "fixture":
		base = fixture.New()
	default:
		name = "mlbstats"
		base = mlbstats.NewClient(mlbstats.Config{
			BaseURL:    cfg.MLBStats.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.MLBStats.Timeout},
		})
	}

	return providers.NewInstrumentedProvider(base, name, logger, recorder)
}
