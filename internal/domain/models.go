package domain

import "encoding/json"

// StatGroup selects which seasonal split to request from the stats provider.
type StatGroup string

const (
	GroupHitting  StatGroup = "hitting"
	GroupPitching StatGroup = "pitching"
)

// PlayerKind is the two-way dispatch used by sorting and rendering.
type PlayerKind string

const (
	KindHitter  PlayerKind = "HITTER"
	KindPitcher PlayerKind = "PITCHER"
)

// PitcherRole describes how a pitcher is used, derived from games started vs pitched.
type PitcherRole string

const (
	RoleStarter  PitcherRole = "STARTER"
	RoleReliever PitcherRole = "RELIEVER"
	RoleHybrid   PitcherRole = "HYBRID"
)

// PlayerIdentity is the provider-owned identity of a player. Immutable within a session.
type PlayerIdentity struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullName"`
	PositionType string `json:"positionType"`
	PositionAbbr string `json:"positionAbbr"`
	BirthCountry string `json:"birthCountry,omitempty"`
}

// PlayerStub is the minimal identity sufficient to request full stats.
type PlayerStub struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullName"`
	PositionAbbr string `json:"positionAbbr"`
}

// StatLine is a raw seasonal stat payload as the provider reports it.
// Any field may be missing; normalization fills display defaults.
type StatLine struct {
	Avg          string `json:"avg,omitempty"`
	HomeRuns     int    `json:"homeRuns,omitempty"`
	OPS          string `json:"ops,omitempty"`
	SLG          string `json:"slg,omitempty"`
	ERA          string `json:"era,omitempty"`
	Wins         int    `json:"wins,omitempty"`
	Losses       int    `json:"losses,omitempty"`
	StrikeOuts   int    `json:"strikeOuts,omitempty"`
	GamesPitched int    `json:"gamesPitched,omitempty"`
	GamesStarted int    `json:"gamesStarted,omitempty"`
}

// SeasonSplit pairs a raw stat line with the season it was recorded in.
type SeasonSplit struct {
	Season string   `json:"season"`
	Team   string   `json:"team,omitempty"`
	Stat   StatLine `json:"stat"`
}

// SeasonStatSnapshot is the fixed-shape stat record consumed by rendering and
// ranking. Every field is always present; missing provider data is replaced
// by the documented defaults so downstream code never branches on absence.
type SeasonStatSnapshot struct {
	Season       string `json:"season,omitempty"`
	Avg          string `json:"avg"`
	HomeRuns     int    `json:"homeRuns"`
	OPS          string `json:"ops"`
	SLG          string `json:"slg"`
	ERA          string `json:"era"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	StrikeOuts   int    `json:"strikeOuts"`
	GamesPitched int    `json:"gamesPitched"`
	GamesStarted int    `json:"gamesStarted"`
}

// EnrichedPlayer is the transient per-request view model produced by the
// enrichment fan-out. Snapshot is nil when the player had no recorded split.
type EnrichedPlayer struct {
	Identity PlayerIdentity      `json:"identity"`
	Snapshot *SeasonStatSnapshot `json:"snapshot,omitempty"`
	Kind     PlayerKind          `json:"kind"`
	Role     PitcherRole         `json:"role,omitempty"`
}

// PlayerSeasonStats is the provider's answer to a single-season stat lookup:
// the player's identity plus the requested split, nil when none was recorded.
type PlayerSeasonStats struct {
	Identity PlayerIdentity `json:"identity"`
	Split    *SeasonSplit   `json:"split,omitempty"`
}

// TeamRef is a lightweight reference to an MLB team.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PlayerDetail is the fully hydrated player shape used by the search pipeline:
// identity, current team, and the year-by-year splits in chronological order.
type PlayerDetail struct {
	Identity    PlayerIdentity `json:"identity"`
	CurrentTeam *TeamRef       `json:"currentTeam,omitempty"`
	Splits      []SeasonSplit  `json:"splits,omitempty"`
}

// EnrichedSearchResult is one hydrated search candidate ready for display.
type EnrichedSearchResult struct {
	Identity    PlayerIdentity      `json:"identity"`
	CurrentTeam *TeamRef            `json:"currentTeam,omitempty"`
	HeadshotURL string              `json:"headshotUrl"`
	Kind        PlayerKind          `json:"kind"`
	Snapshot    *SeasonStatSnapshot `json:"snapshot,omitempty"`
}

// RosterEntry is one player on a team's active roster.
type RosterEntry struct {
	Stub PlayerStub `json:"stub"`
}

// TeamRecord is one team's standing line within a division.
type TeamRecord struct {
	Team        TeamRef `json:"team"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	GamesPlayed int     `json:"gamesPlayed"`
	WinningPct  string  `json:"winningPct"`
	LogoURL     string  `json:"logoUrl"`
}

// LeagueStandings aggregates the records of one league, sorted by wins descending.
type LeagueStandings struct {
	LeagueID   int          `json:"leagueId"`
	LeagueName string       `json:"leagueName"`
	Records    []TeamRecord `json:"records"`
}

// StandingsResponse is the payload served by /standings.
type StandingsResponse struct {
	Season  string            `json:"season"`
	Leagues []LeagueStandings `json:"leagues"`
}

// Section is a user-created container for saved player notes.
type Section struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// SectionSummary is a section plus its saved-player count, as listed.
type SectionSummary struct {
	Section
	PlayerCount int `json:"playerCount"`
}

// PlayerNote is a saved player inside a section. PlayerData is the identity
// and stats frozen at add time; it is never re-enriched.
type PlayerNote struct {
	ID         int64           `json:"id"`
	SectionID  int64           `json:"sectionId"`
	PlayerID   int             `json:"playerId"`
	PlayerData json.RawMessage `json:"playerData"`
	Notes      string          `json:"notes"`
}

// SectionDetail is a section with its saved players.
type SectionDetail struct {
	Section
	Players []PlayerNote `json:"players"`
}
