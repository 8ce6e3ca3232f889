package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeRefresher struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeRefresher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestPollerRefreshesImmediatelyAndOnInterval(t *testing.T) {
	refresher := &fakeRefresher{}
	p := New(refresher, nil, nil, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	defer p.Stop(context.Background())

	waitFor(t, func() bool { return refresher.count() >= 2 })

	status := p.Status()
	if !status.IsReady() {
		t.Fatalf("expected ready after successful refreshes, got %+v", status)
	}
}

func TestPollerRecordsFailures(t *testing.T) {
	refresher := &fakeRefresher{err: errors.New("upstream down")}
	p := New(refresher, nil, nil, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	defer p.Stop(context.Background())

	waitFor(t, func() bool { return p.Status().ConsecutiveFailures >= 3 })

	status := p.Status()
	if status.IsReady() {
		t.Fatalf("expected not ready, got %+v", status)
	}
	if status.LastError == "" {
		t.Fatalf("expected last error recorded")
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&fakeRefresher{}, nil, nil, time.Hour)
	p.Start(context.Background())

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestPollerStartTwiceIsNoop(t *testing.T) {
	refresher := &fakeRefresher{}
	p := New(refresher, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	p.Start(ctx)
	defer p.Stop(context.Background())

	waitFor(t, func() bool { return refresher.count() >= 1 })
	// Give a second warm-up a chance to land if one was scheduled.
	time.Sleep(20 * time.Millisecond)
	if refresher.count() != 1 {
		t.Fatalf("expected single warm-up refresh, got %d", refresher.count())
	}
}
