package mlbstats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mlb-roster-service/internal/domain"
	"mlb-roster-service/internal/providers"
)

// Config controls how the client reaches the MLB Stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches player, roster, and standings data from statsapi.mlb.com
// and maps it to domain models. Every method is a single GET with no retry;
// failures surface as ProviderError for the caller to absorb per item.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchSeasonStats retrieves one player's seasonal split for the given stat
// group. A player that exists but has no recorded split yields a nil split.
func (c *Client) FetchSeasonStats(ctx context.Context, playerID int, group domain.StatGroup, season string) (domain.PlayerSeasonStats, error) {
	if season == "" {
		season = strconv.Itoa(c.now().Year())
	}
	hydrate := fmt.Sprintf("stats(group=[%s],type=[season],season=%s)", string(group), season)

	var payload peopleResponse
	if err := c.get(ctx, "season_stats", "/people/"+strconv.Itoa(playerID), url.Values{"hydrate": {hydrate}}, &payload); err != nil {
		return domain.PlayerSeasonStats{}, err
	}
	if len(payload.People) == 0 {
		return domain.PlayerSeasonStats{}, providers.NewProviderError(providerName, "season_stats", 0, fmt.Errorf("player %d not in response", playerID))
	}

	person := payload.People[0]
	return domain.PlayerSeasonStats{
		Identity: mapIdentity(person),
		Split:    firstSplit(person.Stats, string(group)),
	}, nil
}

// FetchPlayerDetail retrieves the fully hydrated player: identity, current
// team, and year-by-year hitting/pitching splits in chronological order.
func (c *Client) FetchPlayerDetail(ctx context.Context, playerID int) (domain.PlayerDetail, error) {
	hydrate := "currentTeam,stats(group=[hitting,pitching],type=[yearByYear])"

	var payload peopleResponse
	if err := c.get(ctx, "player_detail", "/people/"+strconv.Itoa(playerID), url.Values{"hydrate": {hydrate}}, &payload); err != nil {
		return domain.PlayerDetail{}, err
	}
	if len(payload.People) == 0 {
		return domain.PlayerDetail{}, providers.NewProviderError(providerName, "player_detail", 0, fmt.Errorf("player %d not in response", playerID))
	}

	return mapDetail(payload.People[0]), nil
}

// SearchPlayers resolves a free-text name query to candidate identities.
func (c *Client) SearchPlayers(ctx context.Context, query string) ([]domain.PlayerIdentity, error) {
	var payload peopleResponse
	if err := c.get(ctx, "search", "/people/search", url.Values{"names": {query}}, &payload); err != nil {
		return nil, err
	}

	identities := make([]domain.PlayerIdentity, 0, len(payload.People))
	for _, person := range payload.People {
		identities = append(identities, mapIdentity(person))
	}
	return identities, nil
}

// FetchTeam retrieves team info by id.
func (c *Client) FetchTeam(ctx context.Context, teamID int) (domain.TeamRef, error) {
	var payload teamsResponse
	if err := c.get(ctx, "team", "/teams/"+strconv.Itoa(teamID), nil, &payload); err != nil {
		return domain.TeamRef{}, err
	}
	if len(payload.Teams) == 0 {
		return domain.TeamRef{}, providers.NewProviderError(providerName, "team", 0, fmt.Errorf("team %d not in response", teamID))
	}
	return domain.TeamRef{ID: payload.Teams[0].ID, Name: payload.Teams[0].Name}, nil
}

// FetchRoster retrieves a team's active roster.
func (c *Client) FetchRoster(ctx context.Context, teamID int) ([]domain.RosterEntry, error) {
	var payload rosterResponse
	if err := c.get(ctx, "roster", "/teams/"+strconv.Itoa(teamID)+"/roster", nil, &payload); err != nil {
		return nil, err
	}

	roster := make([]domain.RosterEntry, 0, len(payload.Roster))
	for _, entry := range payload.Roster {
		roster = append(roster, mapRosterEntry(entry))
	}
	return roster, nil
}

// FetchStandings retrieves one league's standings for the season.
func (c *Client) FetchStandings(ctx context.Context, leagueID int, season string) (domain.LeagueStandings, error) {
	if season == "" {
		season = strconv.Itoa(c.now().Year())
	}
	params := url.Values{
		"leagueId": {strconv.Itoa(leagueID)},
		"season":   {season},
	}

	var payload standingsResponse
	if err := c.get(ctx, "standings", "/standings", params, &payload); err != nil {
		return domain.LeagueStandings{}, err
	}
	return mapStandings(leagueID, payload), nil
}

func (c *Client) get(ctx context.Context, operation, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return providers.NewProviderError(providerName, operation, 0, err)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.NewProviderError(providerName, operation, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return providers.NewProviderError(providerName, operation, resp.StatusCode,
			fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return providers.NewProviderError(providerName, operation, 0, err)
	}
	return nil
}
