package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"mlb-roster-service/internal/domain"
	"mlb-roster-service/internal/logging"
	"mlb-roster-service/internal/providers"
)

// Pipeline turns a free-text name query into fully hydrated search results:
// candidate lookup, concurrent detail fetch, most-recent-season extraction,
// classification. Per-candidate failures are dropped; a failed candidate
// lookup yields an empty result set rather than an error, matching the
// fire-and-forget nature of typeahead search.
type Pipeline struct {
	provider providers.StatProvider
	logger   *slog.Logger
}

// NewPipeline creates a search pipeline.
func NewPipeline(provider providers.StatProvider, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		provider: provider,
		logger:   logger,
	}
}

// Search runs the full pipeline for one query. Results are ordered by fuzzy
// closeness of the candidate name to the query, preserving provider order on
// ties.
func (p *Pipeline) Search(ctx context.Context, query string) []domain.EnrichedSearchResult {
	candidates, err := p.provider.SearchPlayers(ctx, query)
	if err != nil {
		logging.Warn(p.logger, "player search failed",
			slog.String(logging.FieldQuery, query),
			"error", err,
		)
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		details = make(map[int]domain.PlayerDetail, len(candidates))
	)
	for _, candidate := range candidates {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			detail, err := p.provider.FetchPlayerDetail(ctx, id)
			if err != nil {
				logging.Warn(p.logger, "search candidate hydration dropped",
					slog.Int(logging.FieldPlayerID, id),
					"error", err,
				)
				return
			}
			mu.Lock()
			details[id] = detail
			mu.Unlock()
		}(candidate.ID)
	}
	wg.Wait()

	results := make([]domain.EnrichedSearchResult, 0, len(details))
	for _, candidate := range candidates {
		detail, ok := details[candidate.ID]
		if !ok {
			continue
		}
		results = append(results, buildResult(detail))
	}

	rankResults(results, query)
	return results
}

// buildResult shapes one hydrated detail into a search result. The last
// year-by-year split is the player's most recent season.
func buildResult(detail domain.PlayerDetail) domain.EnrichedSearchResult {
	result := domain.EnrichedSearchResult{
		Identity:    detail.Identity,
		CurrentTeam: detail.CurrentTeam,
		HeadshotURL: domain.HeadshotURL(detail.Identity.ID),
		Kind:        domain.ClassifyKind(detail.Identity.PositionType),
	}
	if n := len(detail.Splits); n > 0 {
		last := detail.Splits[n-1]
		snap := domain.Normalize(&last.Stat, last.Season)
		result.Snapshot = &snap
	}
	return result
}

// rankResults orders by Levenshtein distance between the query and each full
// name, case-folded. Stable so provider order breaks ties.
func rankResults(results []domain.EnrichedSearchResult, query string) {
	needle := strings.ToLower(query)
	sort.SliceStable(results, func(i, j int) bool {
		di := fuzzy.LevenshteinDistance(needle, strings.ToLower(results[i].Identity.FullName))
		dj := fuzzy.LevenshteinDistance(needle, strings.ToLower(results[j].Identity.FullName))
		return di < dj
	})
}
