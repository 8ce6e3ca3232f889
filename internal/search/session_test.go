package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"mlb-roster-service/internal/domain"
	"mlb-roster-service/internal/metrics"
)

// countingProvider records every query that actually reached the provider.
type countingProvider struct {
	mu      sync.Mutex
	queries []string
	names   map[int]string
	block   chan struct{}
}

func (c *countingProvider) SearchPlayers(ctx context.Context, query string) ([]domain.PlayerIdentity, error) {
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	c.queries = append(c.queries, query)
	if c.names == nil {
		c.names = make(map[int]string)
	}
	c.names[len(query)] = query
	c.mu.Unlock()
	return []domain.PlayerIdentity{{ID: len(query), FullName: query, PositionType: "Infielder"}}, nil
}

func (c *countingProvider) FetchPlayerDetail(ctx context.Context, playerID int) (domain.PlayerDetail, error) {
	c.mu.Lock()
	name := c.names[playerID]
	c.mu.Unlock()
	return domain.PlayerDetail{Identity: domain.PlayerIdentity{ID: playerID, FullName: name, PositionType: "Infielder"}}, nil
}

func (c *countingProvider) FetchSeasonStats(ctx context.Context, playerID int, group domain.StatGroup, season string) (domain.PlayerSeasonStats, error) {
	return domain.PlayerSeasonStats{}, nil
}

func (c *countingProvider) seen() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.queries...)
}

func TestSessionDebouncesRapidUpdates(t *testing.T) {
	provider := &countingProvider{}
	session := NewSession(NewPipeline(provider, nil), 30*time.Millisecond, nil)

	// Three keystrokes inside one debounce window: only the last fires.
	session.Update(context.Background(), "judg")
	session.Update(context.Background(), "judge")
	session.Update(context.Background(), "judge a")
	session.Flush()

	seen := provider.seen()
	if len(seen) != 1 || seen[0] != "judge a" {
		t.Fatalf("expected one request for the final query, got %v", seen)
	}
}

func TestSessionShortQueryClearsWithoutRequest(t *testing.T) {
	provider := &countingProvider{}
	session := NewSession(NewPipeline(provider, nil), 10*time.Millisecond, nil)

	session.Update(context.Background(), "alonso")
	session.Flush()
	if len(session.Results()) == 0 {
		t.Fatalf("expected results before clearing")
	}

	session.Update(context.Background(), "al")
	if results := session.Results(); results != nil {
		t.Fatalf("expected cleared results, got %+v", results)
	}
	session.Flush()
	if seen := provider.seen(); len(seen) != 1 {
		t.Fatalf("short query must not reach the provider, saw %v", seen)
	}
}

func TestSessionShortQueryCancelsPendingRequest(t *testing.T) {
	provider := &countingProvider{}
	session := NewSession(NewPipeline(provider, nil), 50*time.Millisecond, nil)

	session.Update(context.Background(), "alonso")
	// Cleared before the debounce window elapses: nothing may fire.
	session.Update(context.Background(), "a")
	session.Flush()

	if seen := provider.seen(); len(seen) != 0 {
		t.Fatalf("expected canceled request, saw %v", seen)
	}
}

func TestSessionDiscardsStaleCompletion(t *testing.T) {
	release := make(chan struct{})
	provider := &countingProvider{block: release}
	recorder := metrics.NewRecorder()
	session := NewSession(NewPipeline(provider, nil), 5*time.Millisecond, recorder)

	session.Update(context.Background(), "first query")
	// Let the first debounce fire and park inside the provider.
	time.Sleep(20 * time.Millisecond)

	// A newer query supersedes it while it is still in flight.
	session.Update(context.Background(), "second query")
	close(release)
	session.Flush()

	results := session.Results()
	if len(results) == 0 || results[0].Identity.FullName != "second query" {
		t.Fatalf("expected newest query's results, got %+v", results)
	}
	if recorder.StaleSearches() != 1 {
		t.Fatalf("expected 1 stale completion recorded, got %d", recorder.StaleSearches())
	}
}
