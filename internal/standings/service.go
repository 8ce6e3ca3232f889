package standings

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"mlb-roster-service/internal/domain"
	"mlb-roster-service/internal/logging"
	"mlb-roster-service/internal/providers"
)

// League ids on the MLB Stats API.
const (
	LeagueAmerican = 103
	LeagueNational = 104
)

// Service keeps the current standings of both leagues in memory. Refresh
// replaces the cached snapshot atomically; readers never see a half-updated
// table.
type Service struct {
	provider providers.StandingsProvider
	logger   *slog.Logger
	season   string
	now      func() time.Time

	mu      sync.RWMutex
	current *domain.StandingsResponse
}

// NewService creates a standings service. An empty season means the current
// calendar year at refresh time.
func NewService(provider providers.StandingsProvider, logger *slog.Logger, season string) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
		season:   season,
		now:      time.Now,
	}
}

// Refresh fetches both leagues and swaps the cached snapshot. If either
// league fetch fails the previous snapshot is kept.
func (s *Service) Refresh(ctx context.Context) error {
	season := s.season
	if season == "" {
		season = strconv.Itoa(s.now().Year())
	}

	response := domain.StandingsResponse{Season: season}
	for _, leagueID := range []int{LeagueAmerican, LeagueNational} {
		league, err := s.provider.FetchStandings(ctx, leagueID, season)
		if err != nil {
			return fmt.Errorf("fetch standings for league %d: %w", leagueID, err)
		}
		response.Leagues = append(response.Leagues, league)
	}

	s.mu.Lock()
	s.current = &response
	s.mu.Unlock()

	logging.Info(s.logger, "standings refreshed",
		slog.String(logging.FieldSeason, season),
		slog.Int(logging.FieldCount, len(response.Leagues)),
	)
	return nil
}

// Current returns the cached standings, or false before the first successful
// refresh.
func (s *Service) Current() (domain.StandingsResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return domain.StandingsResponse{}, false
	}
	return *s.current, true
}
