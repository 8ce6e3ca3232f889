package http

import (
	"bytes"
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mlb-roster-service/internal/domain"
	"mlb-roster-service/internal/enrich"
	"mlb-roster-service/internal/notes"
	"mlb-roster-service/internal/notes/memory"
	"mlb-roster-service/internal/providers/fixture"
	"mlb-roster-service/internal/search"
	"mlb-roster-service/internal/standings"
)

func newTestRouter(t *testing.T) nethttp.Handler {
	t.Helper()

	provider := fixture.New()
	standingsSvc := standings.NewService(provider, nil, "2025")
	if err := standingsSvc.Refresh(context.Background()); err != nil {
		t.Fatalf("warm standings: %v", err)
	}

	handler := NewHandler(Deps{
		Teams:     provider,
		Enricher:  enrich.New(provider, nil, nil, 0),
		Search:    search.NewPipeline(provider, nil),
		Notes:     notes.NewService(memory.NewStore(), nil),
		Standings: standingsSvc,
		Season:    "2025",
	})
	return NewRouter(handler)
}

func doRequest(t *testing.T, router nethttp.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, rec.Body.String())
	}
}

func TestHealthAndReady(t *testing.T) {
	router := newTestRouter(t)

	if rec := doRequest(t, router, nethttp.MethodGet, "/health", ""); rec.Code != nethttp.StatusOK {
		t.Fatalf("health status %d", rec.Code)
	}
	// No poller wired: readiness defaults to ready.
	if rec := doRequest(t, router, nethttp.MethodGet, "/ready", ""); rec.Code != nethttp.StatusOK {
		t.Fatalf("ready status %d", rec.Code)
	}
}

func TestStandingsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, nethttp.MethodGet, "/standings", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var payload domain.StandingsResponse
	decodeInto(t, rec, &payload)
	if payload.Season != "2025" || len(payload.Leagues) != 2 {
		t.Fatalf("unexpected standings %+v", payload)
	}
}

func TestStandingsBeforeFirstRefresh(t *testing.T) {
	handler := NewHandler(Deps{
		Standings: standings.NewService(fixture.New(), nil, "2025"),
	})
	router := NewRouter(handler)

	if rec := doRequest(t, router, nethttp.MethodGet, "/standings", ""); rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestTeamEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, nethttp.MethodGet, "/teams/121", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var team domain.TeamRef
	decodeInto(t, rec, &team)
	if team.Name != "New York Mets" {
		t.Fatalf("unexpected team %+v", team)
	}

	if rec := doRequest(t, router, nethttp.MethodGet, "/teams/999", ""); rec.Code != nethttp.StatusBadGateway {
		t.Fatalf("expected 502 for unknown team, got %d", rec.Code)
	}
	if rec := doRequest(t, router, nethttp.MethodGet, "/teams/abc", ""); rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}
}

func TestRosterEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, nethttp.MethodGet, "/teams/121/roster", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var payload struct {
		Roster []domain.RosterEntry `json:"roster"`
	}
	decodeInto(t, rec, &payload)
	if len(payload.Roster) != 5 {
		t.Fatalf("expected 5 roster entries, got %d", len(payload.Roster))
	}
}

func TestLeaderboardPitchers(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, nethttp.MethodGet, "/teams/121/leaderboard?position=P", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Players []domain.EnrichedPlayer `json:"players"`
	}
	decodeInto(t, rec, &payload)
	if len(payload.Players) != 2 {
		t.Fatalf("expected 2 pitchers, got %d", len(payload.Players))
	}
	// Senga (2.98) ahead of Diaz (3.52), roles classified.
	if payload.Players[0].Identity.FullName != "Kodai Senga" || payload.Players[0].Role != domain.RoleStarter {
		t.Fatalf("unexpected leader %+v", payload.Players[0])
	}
	if payload.Players[1].Role != domain.RoleReliever {
		t.Fatalf("expected reliever, got %+v", payload.Players[1])
	}
}

func TestLeaderboardHitters(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, nethttp.MethodGet, "/teams/121/leaderboard?position=1B", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var payload struct {
		Players []domain.EnrichedPlayer `json:"players"`
	}
	decodeInto(t, rec, &payload)
	if len(payload.Players) != 1 || payload.Players[0].Kind != domain.KindHitter {
		t.Fatalf("unexpected players %+v", payload.Players)
	}
}

func TestLeaderboardRequiresPosition(t *testing.T) {
	router := newTestRouter(t)
	if rec := doRequest(t, router, nethttp.MethodGet, "/teams/121/leaderboard", ""); rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, nethttp.MethodGet, "/players/search?q=alonso", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var payload struct {
		Results []domain.EnrichedSearchResult `json:"results"`
	}
	decodeInto(t, rec, &payload)
	if len(payload.Results) != 1 || payload.Results[0].Identity.FullName != "Pete Alonso" {
		t.Fatalf("unexpected results %+v", payload.Results)
	}
	if payload.Results[0].HeadshotURL == "" {
		t.Fatalf("expected headshot url")
	}
}

func TestSearchShortQueryReturnsEmpty(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, nethttp.MethodGet, "/players/search?q=al", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var payload struct {
		Results []domain.EnrichedSearchResult `json:"results"`
	}
	decodeInto(t, rec, &payload)
	if len(payload.Results) != 0 {
		t.Fatalf("expected empty results, got %+v", payload.Results)
	}
}

func TestSectionLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// Create.
	rec := doRequest(t, router, nethttp.MethodPost, "/sections", `{"name":"Watchlist"}`)
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("create status %d: %s", rec.Code, rec.Body.String())
	}
	var section domain.Section
	decodeInto(t, rec, &section)

	// Blank name rejected.
	if rec := doRequest(t, router, nethttp.MethodPost, "/sections", `{"name":"  "}`); rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400 for blank name, got %d", rec.Code)
	}

	// Save a player with frozen data.
	body := `{"playerId":7,"playerData":{"identity":{"id":7},"snapshot":{"avg":".305"}}}`
	rec = doRequest(t, router, nethttp.MethodPost, "/sections/1/players", body)
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("add player status %d: %s", rec.Code, rec.Body.String())
	}
	var note domain.PlayerNote
	decodeInto(t, rec, &note)

	// Duplicate save conflicts.
	if rec := doRequest(t, router, nethttp.MethodPost, "/sections/1/players", body); rec.Code != nethttp.StatusConflict {
		t.Fatalf("expected 409 for duplicate, got %d", rec.Code)
	}

	// Update notes verbatim.
	rec = doRequest(t, router, nethttp.MethodPut, "/playernotes/1", `{"notes":"loud contact"}`)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("update status %d", rec.Code)
	}
	var updated domain.PlayerNote
	decodeInto(t, rec, &updated)
	if updated.Notes != "loud contact" {
		t.Fatalf("notes not updated: %+v", updated)
	}
	if !strings.Contains(string(updated.PlayerData), `".305"`) {
		t.Fatalf("frozen data changed: %s", updated.PlayerData)
	}

	// Section detail includes the note; list shows the count.
	rec = doRequest(t, router, nethttp.MethodGet, "/sections/1", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("get status %d", rec.Code)
	}
	var detail domain.SectionDetail
	decodeInto(t, rec, &detail)
	if len(detail.Players) != 1 {
		t.Fatalf("unexpected detail %+v", detail)
	}

	// Remove the player, then the section.
	if rec := doRequest(t, router, nethttp.MethodDelete, "/playernotes/1", ""); rec.Code != nethttp.StatusNoContent {
		t.Fatalf("remove status %d", rec.Code)
	}
	if rec := doRequest(t, router, nethttp.MethodDelete, "/sections/1", ""); rec.Code != nethttp.StatusNoContent {
		t.Fatalf("delete status %d", rec.Code)
	}
	if rec := doRequest(t, router, nethttp.MethodGet, "/sections/1", ""); rec.Code != nethttp.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestSectionMalformedIDs(t *testing.T) {
	router := newTestRouter(t)

	if rec := doRequest(t, router, nethttp.MethodGet, "/sections/abc", ""); rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec := doRequest(t, router, nethttp.MethodPut, "/playernotes/-1", `{"notes":"x"}`); rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec := doRequest(t, router, nethttp.MethodPost, "/sections/1/players", `{broken`); rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestUnknownSectionIs404(t *testing.T) {
	router := newTestRouter(t)
	if rec := doRequest(t, router, nethttp.MethodGet, "/sections/42", ""); rec.Code != nethttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
