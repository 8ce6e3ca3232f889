package mlbstats

import "time"

const (
	providerName       = "mlbstats"
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second

	groupHittingName  = "hitting"
	groupPitchingName = "pitching"
)
