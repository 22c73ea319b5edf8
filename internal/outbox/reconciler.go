package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/quizzine/engine/internal/remote"
	"github.com/quizzine/engine/internal/store"
)

// Retry timing. Each failed replay doubles the entry's wait, capped.
const (
	DefaultInterval = 2 * time.Minute
	baseBackoff     = 30 * time.Second
	maxBackoff      = 10 * time.Minute
)

// Reconciler drains the outbox: on a periodic tick, and immediately when
// kicked after a failed write, it replays pending entries against the
// remote store in FIFO order per session. A successful replay removes the
// entry; a failure reschedules it with backoff and skips the rest of that
// session's entries to preserve order.
type Reconciler struct {
	repo     store.OutboxRepo
	remote   remote.Store
	clock    Clock
	interval time.Duration
	kick     chan struct{}

	mu      sync.Mutex
	lastErr error
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithClock injects a fake clock for tests.
func WithClock(c Clock) Option {
	return func(r *Reconciler) { r.clock = c }
}

// WithInterval overrides the periodic replay interval.
func WithInterval(d time.Duration) Option {
	return func(r *Reconciler) { r.interval = d }
}

// NewReconciler creates a Reconciler over the given queue and remote store.
func NewReconciler(repo store.OutboxRepo, rs remote.Store, opts ...Option) *Reconciler {
	r := &Reconciler{
		repo:     repo,
		remote:   rs,
		clock:    SystemClock(),
		interval: DefaultInterval,
		kick:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Kick requests an immediate replay pass. Never blocks; multiple kicks
// before the loop wakes coalesce into one.
func (r *Reconciler) Kick() {
	select {
	case r.kick <- struct{}{}:
	default:
	}
}

// LastError returns the most recent replay failure, or nil.
func (r *Reconciler) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

// Run drives replay until ctx is cancelled. It is the only goroutine that
// touches an entry, so replays of the same entry never interleave.
func (r *Reconciler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.kick:
		case <-r.clock.After(r.interval):
		}
		_, err := r.Flush(ctx)
		r.mu.Lock()
		r.lastErr = err
		r.mu.Unlock()
	}
}

// Flush replays every due entry once, returning how many were delivered.
// Exported so tests and shutdown paths can drain synchronously.
func (r *Reconciler) Flush(ctx context.Context) (int, error) {
	now := r.clock.Now()
	due, err := r.repo.Due(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("load due entries: %w", err)
	}

	delivered := 0
	var firstErr error
	blocked := make(map[string]bool) // sessions with a failed entry this pass

	for _, e := range due {
		if blocked[e.SessionID] {
			continue
		}

		if err := r.replay(ctx, e); err != nil {
			blocked[e.SessionID] = true
			if firstErr == nil {
				firstErr = err
			}
			next := now.Add(backoff(e.Attempts))
			if rerr := r.repo.Reschedule(ctx, e.EntryID, e.Attempts+1, next); rerr != nil && firstErr == nil {
				firstErr = rerr
			}
			continue
		}

		if err := r.repo.Remove(ctx, e.EntryID); err != nil {
			return delivered, fmt.Errorf("remove replayed entry: %w", err)
		}
		delivered++
	}

	return delivered, firstErr
}

// replay applies one entry to the remote store according to its kind.
func (r *Reconciler) replay(ctx context.Context, e *store.OutboxEntry) error {
	switch e.Kind {
	case store.KindSummary:
		var s remote.SessionSummary
		if err := json.Unmarshal(e.Payload, &s); err != nil {
			return fmt.Errorf("decode summary payload: %w", err)
		}
		return r.remote.UpsertSummary(ctx, s)

	case store.KindAnswer:
		var a remote.AnswerRecord
		if err := json.Unmarshal(e.Payload, &a); err != nil {
			return fmt.Errorf("decode answer payload: %w", err)
		}
		return r.remote.InsertAnswer(ctx, a)

	default:
		return fmt.Errorf("unknown outbox kind %q", e.Kind)
	}
}

// backoff returns the wait before the next attempt after `attempts` failures.
func backoff(attempts int) time.Duration {
	d := baseBackoff
	for i := 0; i < attempts && d < maxBackoff; i++ {
		d *= 2
	}
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}
