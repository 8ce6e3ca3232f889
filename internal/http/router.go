package http

import nethttp "net/http"

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()

	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /ready", handler.Ready)

	mux.HandleFunc("GET /standings", handler.Standings)
	mux.HandleFunc("GET /teams/{id}", handler.Team)
	mux.HandleFunc("GET /teams/{id}/roster", handler.Roster)
	mux.HandleFunc("GET /teams/{id}/leaderboard", handler.Leaderboard)
	mux.HandleFunc("GET /players/search", handler.SearchPlayers)

	mux.HandleFunc("GET /sections", handler.ListSections)
	mux.HandleFunc("POST /sections", handler.CreateSection)
	mux.HandleFunc("GET /sections/{id}", handler.GetSection)
	mux.HandleFunc("PUT /sections/{id}", handler.RenameSection)
	mux.HandleFunc("DELETE /sections/{id}", handler.DeleteSection)
	mux.HandleFunc("POST /sections/{id}/players", handler.AddPlayer)
	mux.HandleFunc("PUT /playernotes/{id}", handler.UpdateNotes)
	mux.HandleFunc("DELETE /playernotes/{id}", handler.RemovePlayer)

	return mux
}
