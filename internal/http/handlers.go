package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"mlb-roster-service/internal/domain"
	"mlb-roster-service/internal/enrich"
	"mlb-roster-service/internal/notes"
	"mlb-roster-service/internal/poller"
	"mlb-roster-service/internal/providers"
	"mlb-roster-service/internal/search"
	"mlb-roster-service/internal/standings"
)

// Deps collects everything the HTTP handlers need.
type Deps struct {
	Teams     providers.TeamProvider
	Enricher  *enrich.Orchestrator
	Search    *search.Pipeline
	Notes     *notes.Service
	Standings *standings.Service
	StatusFn  func() poller.Status
	Logger    *slog.Logger
	Season    string
}

// Handler wires HTTP routes to the domain services.
type Handler struct {
	teams     providers.TeamProvider
	enricher  *enrich.Orchestrator
	search    *search.Pipeline
	notes     *notes.Service
	standings *standings.Service
	statusFn  func() poller.Status
	logger    *slog.Logger
	season    string
}

// NewHandler constructs a Handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		teams:     deps.Teams,
		enricher:  deps.Enricher,
		search:    deps.Search,
		notes:     deps.Notes,
		standings: deps.Standings,
		statusFn:  deps.StatusFn,
		logger:    deps.Logger,
		season:    deps.Season,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness based on the standings poller's recent health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Standings serves the cached league standings.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	current, ok := h.standings.Current()
	if !ok {
		writeError(w, r, nethttp.StatusServiceUnavailable, "standings not loaded yet", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, current, h.logger)
}

// Team serves basic team info.
func (h *Handler) Team(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID, ok := h.pathID(w, r, "team id")
	if !ok {
		return
	}

	team, err := h.teams.FetchTeam(r.Context(), int(teamID))
	if err != nil {
		h.writeProviderError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}

// Roster serves a team's active roster.
func (h *Handler) Roster(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID, ok := h.pathID(w, r, "team id")
	if !ok {
		return
	}

	roster, err := h.teams.FetchRoster(r.Context(), int(teamID))
	if err != nil {
		h.writeProviderError(w, r, err)
		return
	}
	if roster == nil {
		roster = []domain.RosterEntry{}
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"teamId": teamID,
		"roster": roster,
	}, h.logger)
}

// Leaderboard serves a ranked, position-filtered leaderboard for one team's
// roster. Position "P" ranks pitchers by ERA; everything else ranks hitters
// by batting average.
func (h *Handler) Leaderboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID, ok := h.pathID(w, r, "team id")
	if !ok {
		return
	}
	position := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("position")))
	if position == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing position parameter", h.logger)
		return
	}

	roster, err := h.teams.FetchRoster(r.Context(), int(teamID))
	if err != nil {
		h.writeProviderError(w, r, err)
		return
	}

	stubs := make([]domain.PlayerStub, 0, len(roster))
	for _, entry := range roster {
		if strings.EqualFold(entry.Stub.PositionAbbr, position) {
			stubs = append(stubs, entry.Stub)
		}
	}

	group := domain.GroupHitting
	if position == "P" {
		group = domain.GroupPitching
	}

	players := h.enricher.EnrichBatch(r.Context(), stubs, group, h.season)
	if group == domain.GroupPitching {
		enrich.SortPitchers(players)
	} else {
		enrich.SortHitters(players)
	}
	if players == nil {
		players = []domain.EnrichedPlayer{}
	}

	writeJSON(w, nethttp.StatusOK, map[string]any{
		"teamId":   teamID,
		"position": position,
		"players":  players,
	}, h.logger)
}

// SearchPlayers serves hydrated typeahead search results. Queries at or below
// two characters return an empty result set without touching the provider,
// mirroring the interactive session rule.
func (h *Handler) SearchPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	results := []domain.EnrichedSearchResult{}
	if len(query) > 2 {
		if found := h.search.Search(r.Context(), query); found != nil {
			results = found
		}
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"query":   query,
		"results": results,
	}, h.logger)
}

// ListSections serves all sections with their saved-player counts.
func (h *Handler) ListSections(w nethttp.ResponseWriter, r *nethttp.Request) {
	summaries, err := h.notes.ListSections(r.Context())
	if err != nil {
		h.writeNotesError(w, r, err)
		return
	}
	if summaries == nil {
		summaries = []domain.SectionSummary{}
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"sections": summaries}, h.logger)
}

// CreateSection creates a named section.
func (h *Handler) CreateSection(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !h.decodeBody(w, r, &body) {
		return
	}

	section, err := h.notes.CreateSection(r.Context(), body.Name)
	if err != nil {
		h.writeNotesError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusCreated, section, h.logger)
}

// GetSection serves one section with its saved players.
func (h *Handler) GetSection(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.pathID(w, r, "section id")
	if !ok {
		return
	}

	detail, err := h.notes.GetSection(r.Context(), id)
	if err != nil {
		h.writeNotesError(w, r, err)
		return
	}
	if detail.Players == nil {
		detail.Players = []domain.PlayerNote{}
	}
	writeJSON(w, nethttp.StatusOK, detail, h.logger)
}

// RenameSection changes a section's name.
func (h *Handler) RenameSection(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.pathID(w, r, "section id")
	if !ok {
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	if !h.decodeBody(w, r, &body) {
		return
	}

	section, err := h.notes.RenameSection(r.Context(), id, body.Name)
	if err != nil {
		h.writeNotesError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, section, h.logger)
}

// DeleteSection removes a section and its saved players.
func (h *Handler) DeleteSection(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.pathID(w, r, "section id")
	if !ok {
		return
	}

	if err := h.notes.DeleteSection(r.Context(), id); err != nil {
		h.writeNotesError(w, r, err)
		return
	}
	w.WriteHeader(nethttp.StatusNoContent)
}

// AddPlayer saves a player into a section with their data frozen as sent.
func (h *Handler) AddPlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.pathID(w, r, "section id")
	if !ok {
		return
	}
	var body struct {
		PlayerID   int             `json:"playerId"`
		PlayerData json.RawMessage `json:"playerData"`
	}
	if !h.decodeBody(w, r, &body) {
		return
	}

	note, err := h.notes.AddPlayer(r.Context(), id, body.PlayerID, body.PlayerData)
	if err != nil {
		h.writeNotesError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusCreated, note, h.logger)
}

// UpdateNotes replaces one note's text verbatim.
func (h *Handler) UpdateNotes(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.pathID(w, r, "note id")
	if !ok {
		return
	}
	var body struct {
		Notes string `json:"notes"`
	}
	if !h.decodeBody(w, r, &body) {
		return
	}

	note, err := h.notes.UpdateNotes(r.Context(), id, body.Notes)
	if err != nil {
		h.writeNotesError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, note, h.logger)
}

// RemovePlayer deletes one saved player by note id.
func (h *Handler) RemovePlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.pathID(w, r, "note id")
	if !ok {
		return
	}

	if err := h.notes.RemovePlayer(r.Context(), id); err != nil {
		h.writeNotesError(w, r, err)
		return
	}
	w.WriteHeader(nethttp.StatusNoContent)
}

func (h *Handler) pathID(w nethttp.ResponseWriter, r *nethttp.Request, label string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "malformed "+label, h.logger)
		return 0, false
	}
	return id, true
}

func (h *Handler) decodeBody(w nethttp.ResponseWriter, r *nethttp.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "malformed request body", h.logger)
		return false
	}
	return true
}

func (h *Handler) writeProviderError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Error("provider request failed", "error", err)
	}

	if pErr, ok := providers.AsProviderError(err); ok && pErr.StatusCode == nethttp.StatusNotFound {
		writeError(w, r, nethttp.StatusNotFound, "not found upstream", h.logger)
		return
	}
	writeError(w, r, nethttp.StatusBadGateway, "upstream provider unavailable", h.logger)
}

func (h *Handler) writeNotesError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	if _, ok := notes.AsValidationError(err); ok {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if _, ok := notes.AsNotFoundError(err); ok {
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
		return
	}
	if _, ok := notes.AsDuplicateError(err); ok {
		writeError(w, r, nethttp.StatusConflict, err.Error(), h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Error("notes request failed", "error", err)
	}
	writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
}
