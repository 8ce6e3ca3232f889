package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"mlb-roster-service/internal/domain"
	"mlb-roster-service/internal/metrics"
)

// minQueryLength is the shortest query that triggers a provider round-trip.
// Anything at or below it clears the current results immediately.
const minQueryLength = 2

// Session is a debounced, last-query-wins search state machine for one
// consumer of typeahead search. Each Update restarts the debounce window;
// only the completion of the newest query may publish results. Completions
// of superseded queries are counted and discarded, so results can never
// regress to an older query's answer.
type Session struct {
	pipeline *Pipeline
	recorder *metrics.Recorder
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	results []domain.EnrichedSearchResult
	pending sync.WaitGroup
}

// NewSession creates a session around a pipeline. A non-positive debounce
// defaults to 500ms.
func NewSession(pipeline *Pipeline, debounce time.Duration, recorder *metrics.Recorder) *Session {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Session{
		pipeline: pipeline,
		recorder: recorder,
		debounce: debounce,
	}
}

// Update registers the latest query. Short queries clear results with no
// request; longer ones schedule a search after the debounce window, canceling
// any not-yet-fired predecessor.
func (s *Session) Update(ctx context.Context, query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.timer != nil {
		// A successfully stopped timer never fires, so release its slot here.
		if s.timer.Stop() {
			s.pending.Done()
		}
		s.timer = nil
	}

	if len(query) <= minQueryLength {
		s.results = nil
		return
	}

	gen := s.gen
	s.pending.Add(1)
	s.timer = time.AfterFunc(s.debounce, func() {
		defer s.pending.Done()
		s.run(ctx, gen, query)
	})
}

func (s *Session) run(ctx context.Context, gen uint64, query string) {
	results := s.pipeline.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.recorder.RecordStaleSearch()
		return
	}
	s.results = results
}

// Results returns the current result set.
func (s *Session) Results() []domain.EnrichedSearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Flush blocks until every scheduled search has fired and completed. The
// debounce timer for the newest query still has to elapse first; Flush just
// guarantees no completion is in flight afterward.
func (s *Session) Flush() {
	s.pending.Wait()
}
