package fixture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mlb-roster-service/internal/domain"
	"mlb-roster-service/internal/providers"
)

// Provider serves a static set of players, rosters, and standings useful for
// local development and tests without reaching statsapi.mlb.com.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

type fixturePlayer struct {
	identity domain.PlayerIdentity
	teamID   int
	hitting  *domain.StatLine
	pitching *domain.StatLine
}

var fixturePlayers = []fixturePlayer{
	{
		identity: domain.PlayerIdentity{ID: 624413, FullName: "Pete Alonso", PositionType: "Infielder", PositionAbbr: "1B", BirthCountry: "USA"},
		teamID:   121,
		hitting:  &domain.StatLine{Avg: ".240", HomeRuns: 34, OPS: ".788", SLG: ".459"},
	},
	{
		identity: domain.PlayerIdentity{ID: 596019, FullName: "Francisco Lindor", PositionType: "Infielder", PositionAbbr: "SS", BirthCountry: "Puerto Rico"},
		teamID:   121,
		hitting:  &domain.StatLine{Avg: ".273", HomeRuns: 33, OPS: ".844", SLG: ".500"},
	},
	{
		identity: domain.PlayerIdentity{ID: 656849, FullName: "Kodai Senga", PositionType: "Pitcher", PositionAbbr: "P", BirthCountry: "Japan"},
		teamID:   121,
		pitching: &domain.StatLine{ERA: "2.98", Wins: 12, Losses: 7, StrikeOuts: 202, GamesPitched: 29, GamesStarted: 29},
	},
	{
		identity: domain.PlayerIdentity{ID: 621242, FullName: "Edwin Diaz", PositionType: "Pitcher", PositionAbbr: "P", BirthCountry: "Puerto Rico"},
		teamID:   121,
		pitching: &domain.StatLine{ERA: "3.52", Wins: 6, Losses: 4, StrikeOuts: 84, GamesPitched: 58, GamesStarted: 0},
	},
	{
		// Call-up with no recorded big-league split yet.
		identity: domain.PlayerIdentity{ID: 700000, FullName: "Rook Prospect", PositionType: "Outfielder", PositionAbbr: "CF", BirthCountry: "N/A"},
		teamID:   121,
	},
}

var fixtureTeams = map[int]domain.TeamRef{
	121: {ID: 121, Name: "New York Mets"},
	147: {ID: 147, Name: "New York Yankees"},
}

func (p *Provider) season() string {
	return fmt.Sprintf("%d", p.now().Year())
}

func (p *Provider) find(playerID int) (fixturePlayer, bool) {
	for _, fp := range fixturePlayers {
		if fp.identity.ID == playerID {
			return fp, true
		}
	}
	return fixturePlayer{}, false
}

// FetchSeasonStats returns the canned split for the requested stat group.
func (p *Provider) FetchSeasonStats(ctx context.Context, playerID int, group domain.StatGroup, season string) (domain.PlayerSeasonStats, error) {
	_ = ctx
	fp, ok := p.find(playerID)
	if !ok {
		return domain.PlayerSeasonStats{}, providers.NewProviderError("fixture", "season_stats", 0, fmt.Errorf("unknown player %d", playerID))
	}
	if season == "" {
		season = p.season()
	}

	line := fp.hitting
	if group == domain.GroupPitching {
		line = fp.pitching
	}

	stats := domain.PlayerSeasonStats{Identity: fp.identity}
	if line != nil {
		stats.Split = &domain.SeasonSplit{
			Season: season,
			Team:   fixtureTeams[fp.teamID].Name,
			Stat:   *line,
		}
	}
	return stats, nil
}

// FetchPlayerDetail returns the canned player with a single-season history.
func (p *Provider) FetchPlayerDetail(ctx context.Context, playerID int) (domain.PlayerDetail, error) {
	_ = ctx
	fp, ok := p.find(playerID)
	if !ok {
		return domain.PlayerDetail{}, providers.NewProviderError("fixture", "player_detail", 0, fmt.Errorf("unknown player %d", playerID))
	}

	detail := domain.PlayerDetail{Identity: fp.identity}
	if team, ok := fixtureTeams[fp.teamID]; ok {
		ref := team
		detail.CurrentTeam = &ref
	}

	line := fp.hitting
	if domain.ClassifyKind(fp.identity.PositionType) == domain.KindPitcher {
		line = fp.pitching
	}
	if line != nil {
		detail.Splits = []domain.SeasonSplit{{
			Season: p.season(),
			Team:   fixtureTeams[fp.teamID].Name,
			Stat:   *line,
		}}
	}
	return detail, nil
}

// SearchPlayers matches canned players by case-insensitive substring.
func (p *Provider) SearchPlayers(ctx context.Context, query string) ([]domain.PlayerIdentity, error) {
	_ = ctx
	needle := strings.ToLower(query)

	var matches []domain.PlayerIdentity
	for _, fp := range fixturePlayers {
		if strings.Contains(strings.ToLower(fp.identity.FullName), needle) {
			matches = append(matches, fp.identity)
		}
	}
	return matches, nil
}

// FetchTeam returns a canned team reference.
func (p *Provider) FetchTeam(ctx context.Context, teamID int) (domain.TeamRef, error) {
	_ = ctx
	team, ok := fixtureTeams[teamID]
	if !ok {
		return domain.TeamRef{}, providers.NewProviderError("fixture", "team", 0, fmt.Errorf("unknown team %d", teamID))
	}
	return team, nil
}

// FetchRoster returns the canned players assigned to the team.
func (p *Provider) FetchRoster(ctx context.Context, teamID int) ([]domain.RosterEntry, error) {
	_ = ctx
	if _, ok := fixtureTeams[teamID]; !ok {
		return nil, providers.NewProviderError("fixture", "roster", 0, fmt.Errorf("unknown team %d", teamID))
	}

	var roster []domain.RosterEntry
	for _, fp := range fixturePlayers {
		if fp.teamID != teamID {
			continue
		}
		roster = append(roster, domain.RosterEntry{Stub: domain.PlayerStub{
			ID:           fp.identity.ID,
			FullName:     fp.identity.FullName,
			PositionAbbr: fp.identity.PositionAbbr,
		}})
	}
	return roster, nil
}

// FetchStandings returns a deterministic two-team table for either league.
func (p *Provider) FetchStandings(ctx context.Context, leagueID int, season string) (domain.LeagueStandings, error) {
	_ = ctx
	_ = season

	switch leagueID {
	case 103:
		return domain.LeagueStandings{
			LeagueID:   103,
			LeagueName: "American League",
			Records: []domain.TeamRecord{
				{Team: fixtureTeams[147], Wins: 94, Losses: 68, GamesPlayed: 162, WinningPct: ".580", LogoURL: domain.TeamLogoURL(147)},
			},
		}, nil
	case 104:
		return domain.LeagueStandings{
			LeagueID:   104,
			LeagueName: "National League",
			Records: []domain.TeamRecord{
				{Team: fixtureTeams[121], Wins: 89, Losses: 73, GamesPlayed: 162, WinningPct: ".549", LogoURL: domain.TeamLogoURL(121)},
			},
		}, nil
	default:
		return domain.LeagueStandings{}, providers.NewProviderError("fixture", "standings", 0, fmt.Errorf("unknown league %d", leagueID))
	}
}
