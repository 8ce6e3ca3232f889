package providers

import (
	"context"
	"log/slog"
	"time"

	"mlb-roster-service/internal/domain"
	"mlb-roster-service/internal/logging"
	"mlb-roster-service/internal/metrics"
)

// instrumentedProvider wraps a DataProvider with per-call metrics and
// failure logging. It adds no retries; each call remains a single attempt.
type instrumentedProvider struct {
	next     DataProvider
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewInstrumentedProvider decorates the provider with call metrics and logs.
func NewInstrumentedProvider(next DataProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return &instrumentedProvider{next: next, name: name, logger: logger, recorder: recorder}
}

func (p *instrumentedProvider) FetchSeasonStats(ctx context.Context, playerID int, group domain.StatGroup, season string) (domain.PlayerSeasonStats, error) {
	start := time.Now()
	stats, err := p.next.FetchSeasonStats(ctx, playerID, group, season)
	p.record(ctx, "season_stats", start, err, slog.Int(logging.FieldPlayerID, playerID))
	return stats, err
}

func (p *instrumentedProvider) FetchPlayerDetail(ctx context.Context, playerID int) (domain.PlayerDetail, error) {
	start := time.Now()
	detail, err := p.next.FetchPlayerDetail(ctx, playerID)
	p.record(ctx, "player_detail", start, err, slog.Int(logging.FieldPlayerID, playerID))
	return detail, err
}

func (p *instrumentedProvider) SearchPlayers(ctx context.Context, query string) ([]domain.PlayerIdentity, error) {
	start := time.Now()
	people, err := p.next.SearchPlayers(ctx, query)
	p.record(ctx, "search", start, err, slog.String(logging.FieldQuery, query))
	return people, err
}

func (p *instrumentedProvider) FetchTeam(ctx context.Context, teamID int) (domain.TeamRef, error) {
	start := time.Now()
	team, err := p.next.FetchTeam(ctx, teamID)
	p.record(ctx, "team", start, err, slog.Int("team_id", teamID))
	return team, err
}

func (p *instrumentedProvider) FetchRoster(ctx context.Context, teamID int) ([]domain.RosterEntry, error) {
	start := time.Now()
	roster, err := p.next.FetchRoster(ctx, teamID)
	p.record(ctx, "roster", start, err, slog.Int("team_id", teamID))
	return roster, err
}

func (p *instrumentedProvider) FetchStandings(ctx context.Context, leagueID int, season string) (domain.LeagueStandings, error) {
	start := time.Now()
	standings, err := p.next.FetchStandings(ctx, leagueID, season)
	p.record(ctx, "standings", start, err, slog.Int("league_id", leagueID))
	return standings, err
}

func (p *instrumentedProvider) record(ctx context.Context, operation string, start time.Time, err error, args ...any) {
	duration := time.Since(start)
	if p.recorder != nil {
		p.recorder.RecordProviderAttempt(p.name, operation, duration, err)
	}
	if err != nil {
		logger := logging.FromContext(ctx, p.logger)
		if logger != nil {
			args = append(args,
				slog.String(logging.FieldProvider, p.name),
				slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
				slog.Any("error", err),
			)
			logger.Warn("provider call failed: "+operation, args...)
		}
	}
}
