package providers

import (
	"context"

	"mlb-roster-service/internal/domain"
)

// StatProvider defines how upstream player data is fetched and normalized.
// Every call is a single round-trip: no implicit retries, so a failure for
// one player never stalls or aborts the rest of a batch.
type StatProvider interface {
	// FetchSeasonStats returns a player's identity and the requested
	// seasonal split. A player with no recorded split returns a nil split,
	// not an error.
	FetchSeasonStats(ctx context.Context, playerID int, group domain.StatGroup, season string) (domain.PlayerSeasonStats, error)
	// FetchPlayerDetail returns the fully hydrated player: identity,
	// current team, and year-by-year splits in chronological order.
	FetchPlayerDetail(ctx context.Context, playerID int) (domain.PlayerDetail, error)
	// SearchPlayers resolves a free-text name query to candidate identities.
	SearchPlayers(ctx context.Context, query string) ([]domain.PlayerIdentity, error)
}

// TeamProvider fetches team info and rosters.
type TeamProvider interface {
	FetchTeam(ctx context.Context, teamID int) (domain.TeamRef, error)
	FetchRoster(ctx context.Context, teamID int) ([]domain.RosterEntry, error)
}

// StandingsProvider fetches one league's standings for a season.
type StandingsProvider interface {
	FetchStandings(ctx context.Context, leagueID int, season string) (domain.LeagueStandings, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	StatProvider
	TeamProvider
	StandingsProvider
}
