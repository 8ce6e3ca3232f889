package mlbstats

import (
	"sort"

	"mlb-roster-service/internal/domain"
)

func mapIdentity(p personResponse) domain.PlayerIdentity {
	country := p.BirthCountry
	if country == "" {
		country = "N/A"
	}
	return domain.PlayerIdentity{
		ID:           p.ID,
		FullName:     p.FullName,
		PositionType: p.PrimaryPosition.Type,
		PositionAbbr: p.PrimaryPosition.Abbreviation,
		BirthCountry: country,
	}
}

func mapDetail(p personResponse) domain.PlayerDetail {
	detail := domain.PlayerDetail{Identity: mapIdentity(p)}
	if p.CurrentTeam != nil {
		detail.CurrentTeam = &domain.TeamRef{ID: p.CurrentTeam.ID, Name: p.CurrentTeam.Name}
	}

	// The detail hydration asks for both groups; pitchers get pitching
	// splits, everyone else hitting. Pick the group matching the player's
	// kind so the "most recent season" extraction sees the right series.
	groupName := groupHittingName
	if domain.ClassifyKind(p.PrimaryPosition.Type) == domain.KindPitcher {
		groupName = groupPitchingName
	}
	for _, sg := range p.Stats {
		if sg.Group.DisplayName != groupName {
			continue
		}
		for _, split := range sg.Splits {
			detail.Splits = append(detail.Splits, mapSplit(split))
		}
	}
	return detail
}

// firstSplit returns the first split of the named stat group, nil when the
// group or its splits are absent.
func firstSplit(groups []statGroupResponse, groupName string) *domain.SeasonSplit {
	for _, sg := range groups {
		if sg.Group.DisplayName != groupName {
			continue
		}
		if len(sg.Splits) == 0 {
			return nil
		}
		split := mapSplit(sg.Splits[0])
		return &split
	}
	return nil
}

func mapSplit(s splitResponse) domain.SeasonSplit {
	split := domain.SeasonSplit{
		Season: s.Season,
		Stat:   mapStatLine(s.Stat),
	}
	if s.Team != nil {
		split.Team = s.Team.Name
	}
	return split
}

func mapStatLine(s statResponse) domain.StatLine {
	return domain.StatLine{
		Avg:          s.Avg,
		HomeRuns:     s.HomeRuns,
		OPS:          s.OPS,
		SLG:          s.SLG,
		ERA:          s.ERA,
		Wins:         s.Wins,
		Losses:       s.Losses,
		StrikeOuts:   s.StrikeOuts,
		GamesPitched: s.GamesPitched,
		GamesStarted: s.GamesStarted,
	}
}

func mapRosterEntry(e rosterEntryResponse) domain.RosterEntry {
	return domain.RosterEntry{
		Stub: domain.PlayerStub{
			ID:           e.Person.ID,
			FullName:     e.Person.FullName,
			PositionAbbr: e.Position.Abbreviation,
		},
	}
}

func mapStandings(leagueID int, payload standingsResponse) domain.LeagueStandings {
	standings := domain.LeagueStandings{LeagueID: leagueID}

	for _, division := range payload.Records {
		if standings.LeagueName == "" {
			standings.LeagueName = division.League.Name
		}
		for _, record := range division.TeamRecords {
			standings.Records = append(standings.Records, domain.TeamRecord{
				Team:        domain.TeamRef{ID: record.Team.ID, Name: record.Team.Name},
				Wins:        record.Wins,
				Losses:      record.Losses,
				GamesPlayed: record.GamesPlayed,
				WinningPct:  record.WinningPercentage,
				LogoURL:     domain.TeamLogoURL(record.Team.ID),
			})
		}
	}

	// Divisions are flattened into one league table ordered by wins.
	sort.SliceStable(standings.Records, func(i, j int) bool {
		return standings.Records[i].Wins > standings.Records[j].Wins
	})
	return standings
}
