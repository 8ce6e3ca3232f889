package enrich

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mlb-roster-service/internal/domain"
	"mlb-roster-service/internal/logging"
	"mlb-roster-service/internal/metrics"
	"mlb-roster-service/internal/providers"
)

// Orchestrator fans out per-player stat lookups and assembles enriched view
// models. Lookups are independent: one failing player is logged, counted, and
// omitted, never aborting the batch.
type Orchestrator struct {
	provider providers.StatProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	timeout  time.Duration
}

// New creates an orchestrator. A zero timeout disables the per-batch bound.
func New(provider providers.StatProvider, logger *slog.Logger, recorder *metrics.Recorder, timeout time.Duration) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		logger:   logger,
		recorder: recorder,
		timeout:  timeout,
	}
}

// EnrichBatch fetches the seasonal split for every stub concurrently and
// returns the enriched players in stub order. Players whose lookup failed are
// absent from the result.
func (o *Orchestrator) EnrichBatch(ctx context.Context, stubs []domain.PlayerStub, group domain.StatGroup, season string) []domain.EnrichedPlayer {
	if len(stubs) == 0 {
		return nil
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start := time.Now()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[int]domain.EnrichedPlayer, len(stubs))
		failed  int
	)

	for _, stub := range stubs {
		wg.Add(1)
		go func(stub domain.PlayerStub) {
			defer wg.Done()

			stats, err := o.provider.FetchSeasonStats(ctx, stub.ID, group, season)
			if err != nil {
				logging.Warn(o.logger, "player enrichment dropped",
					slog.Int(logging.FieldPlayerID, stub.ID),
					"error", err,
				)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}

			mu.Lock()
			results[stub.ID] = buildEnriched(stats)
			mu.Unlock()
		}(stub)
	}
	wg.Wait()

	o.recorder.RecordEnrichmentBatch(len(stubs), failed, time.Since(start))

	// Reassemble in the caller's stub order so output is deterministic.
	enriched := make([]domain.EnrichedPlayer, 0, len(results))
	for _, stub := range stubs {
		if player, ok := results[stub.ID]; ok {
			enriched = append(enriched, player)
		}
	}
	return enriched
}

// buildEnriched classifies and normalizes one provider answer. A player with
// no recorded split keeps a nil snapshot so ranking can tell "no data" apart
// from a genuine zero line.
func buildEnriched(stats domain.PlayerSeasonStats) domain.EnrichedPlayer {
	player := domain.EnrichedPlayer{
		Identity: stats.Identity,
		Kind:     domain.ClassifyKind(stats.Identity.PositionType),
	}

	if stats.Split != nil {
		snap := domain.Normalize(&stats.Split.Stat, stats.Split.Season)
		player.Snapshot = &snap
	}

	if player.Kind == domain.KindPitcher {
		var started, pitched int
		if player.Snapshot != nil {
			started = player.Snapshot.GamesStarted
			pitched = player.Snapshot.GamesPitched
		}
		player.Role = domain.ClassifyPitcherRole(started, pitched)
	}
	return player
}
