package mlbstats

type peopleResponse struct {
	People []personResponse `json:"people"`
}

type personResponse struct {
	ID              int                 `json:"id"`
	FullName        string              `json:"fullName"`
	BirthCountry    string              `json:"birthCountry"`
	PrimaryPosition positionResponse    `json:"primaryPosition"`
	CurrentTeam     *teamResponse       `json:"currentTeam"`
	Stats           []statGroupResponse `json:"stats"`
}

type positionResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Abbreviation string `json:"abbreviation"`
}

type teamResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type statGroupResponse struct {
	Group  groupResponse   `json:"group"`
	Splits []splitResponse `json:"splits"`
}

type groupResponse struct {
	DisplayName string `json:"displayName"`
}

type splitResponse struct {
	Season string        `json:"season"`
	Team   *teamResponse `json:"team"`
	Stat   statResponse  `json:"stat"`
}

// statResponse covers both hitting and pitching splits; the API omits the
// fields that do not apply to the requested group.
type statResponse struct {
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

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

type rosterResponse struct {
	Roster []rosterEntryResponse `json:"roster"`
}

type rosterEntryResponse struct {
	Person   personRefResponse `json:"person"`
	Position positionResponse  `json:"position"`
}

type personRefResponse struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type standingsResponse struct {
	Records []divisionStandingsResponse `json:"records"`
}

type divisionStandingsResponse struct {
	League      leagueRefResponse    `json:"league"`
	TeamRecords []teamRecordResponse `json:"teamRecords"`
}

type leagueRefResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type teamRecordResponse struct {
	Team              teamResponse `json:"team"`
	Wins              int          `json:"wins"`
	Losses            int          `json:"losses"`
	GamesPlayed       int          `json:"gamesPlayed"`
	WinningPercentage string       `json:"winningPercentage"`
}
