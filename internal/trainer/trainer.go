// Package trainer is the composition root of the engine: it wires the
// question loader, lifecycle controller, local cache, outbox and
// collaborators into the surface the app layer calls.
package trainer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quizzine/engine/internal/event"
	"github.com/quizzine/engine/internal/outbox"
	"github.com/quizzine/engine/internal/question"
	"github.com/quizzine/engine/internal/remote"
	"github.com/quizzine/engine/internal/scoring"
	"github.com/quizzine/engine/internal/session"
	"github.com/quizzine/engine/internal/stats"
	"github.com/quizzine/engine/internal/store"
)

// ErrSessionExists indicates the user already has a cached in-flight
// session. Starting over is a caller decision: resume it or abandon it
// first, never silently discard it.
var ErrSessionExists = errors.New("a resumable session already exists")

// ErrNoResumable indicates no usable cached session was found.
var ErrNoResumable = errors.New("no resumable session")

// BadgeEvaluator computes newly earned badges after a session. The engine
// passes the result through to the presentation layer untouched.
type BadgeEvaluator interface {
	Evaluate(ctx context.Context, userID string) ([]string, error)
}

// Result is everything produced by finishing a session.
type Result struct {
	State  *session.State
	Report *stats.Report
	Badges []string
}

// Options configures a Trainer. Loader, Cache, Outbox and Remote are
// required; the rest default sensibly.
type Options struct {
	Loader   question.Loader
	Cache    store.SessionCacheRepo
	Outbox   store.OutboxRepo
	Remote   remote.Store
	Badges   BadgeEvaluator
	Events   event.Publisher
	Clock    outbox.Clock
	Interval time.Duration
	Now      func() time.Time
}

// Trainer drives training sessions end to end.
type Trainer struct {
	loader question.Loader
	cache  store.SessionCacheRepo
	writer *outbox.Writer
	rec    *outbox.Reconciler
	badges BadgeEvaluator
	events event.Publisher
	now    func() time.Time
}

// New wires a Trainer. The returned reconciler loop is started with Run.
func New(opts Options) *Trainer {
	clock := opts.Clock
	if clock == nil {
		clock = outbox.SystemClock()
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = outbox.DefaultInterval
	}
	events := opts.Events
	if events == nil {
		events = event.NopPublisher{}
	}

	rec := outbox.NewReconciler(opts.Outbox, opts.Remote,
		outbox.WithClock(clock), outbox.WithInterval(interval))
	writer := outbox.NewWriter(opts.Remote, opts.Outbox, clock, rec.Kick, nil)

	return &Trainer{
		loader: opts.Loader,
		cache:  opts.Cache,
		writer: writer,
		rec:    rec,
		badges: opts.Badges,
		events: events,
		now:    opts.Now,
	}
}

// Run drives the outbox reconciler until ctx is cancelled. Call it from a
// dedicated goroutine.
func (t *Trainer) Run(ctx context.Context) {
	t.rec.Run(ctx)
}

// Reconciler exposes the outbox reconciler, mainly for shutdown draining.
func (t *Trainer) Reconciler() *outbox.Reconciler {
	return t.rec
}

// Writer exposes the outbox writer. A remote write that also failed to
// queue locally is lost otherwise; callers can watch LastError for it.
func (t *Trainer) Writer() *outbox.Writer {
	return t.writer
}

func (t *Trainer) deps() session.Deps {
	return session.Deps{Cache: t.cache, Remote: t.writer, Now: t.now}
}

// Start loads a question pool and creates a fresh session for the user.
// Returns ErrSessionExists when a resumable session is cached — the caller
// must resume or abandon it explicitly.
func (t *Trainer) Start(ctx context.Context, userID string, f question.Filter, rubric scoring.Rubric) (*session.Controller, error) {
	var cached session.State
	err := t.cache.Load(ctx, userID, &cached)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w (session %s)", ErrSessionExists, cached.SessionID)
	case errors.Is(err, store.ErrNoSession), errors.Is(err, store.ErrCacheCorrupt):
		// Nothing usable cached, proceed.
	default:
		return nil, fmt.Errorf("check cached session: %w", err)
	}

	questions, err := t.loader.Load(ctx, f)
	if err != nil {
		return nil, err
	}
	return session.Create(ctx, t.deps(), userID, questions, rubric)
}

// Resume restores the user's cached session after an app restart.
// Returns ErrNoResumable when nothing usable is cached; a corrupt cache
// entry has already been discarded by then.
func (t *Trainer) Resume(ctx context.Context, userID string) (*session.Controller, error) {
	var cached session.State
	err := t.cache.Load(ctx, userID, &cached)
	switch {
	case errors.Is(err, store.ErrNoSession), errors.Is(err, store.ErrCacheCorrupt):
		return nil, ErrNoResumable
	case err != nil:
		return nil, fmt.Errorf("load cached session: %w", err)
	}

	c, err := session.Restore(t.deps(), &cached)
	if err != nil {
		// The cached state failed validation: discard it like corruption.
		_ = t.cache.Clear(ctx, userID)
		return nil, fmt.Errorf("%w: %v", ErrNoResumable, err)
	}
	return c, nil
}

// Resumable reports whether a paused session is waiting for the user.
func (t *Trainer) Resumable(ctx context.Context, userID string) (bool, error) {
	var cached session.State
	err := t.cache.Load(ctx, userID, &cached)
	switch {
	case errors.Is(err, store.ErrNoSession), errors.Is(err, store.ErrCacheCorrupt):
		return false, nil
	case err != nil:
		return false, err
	}
	return cached.Paused, nil
}

// Finish terminates the session, aggregates the report, evaluates badges
// and notifies collaborators. Badge and event failures never fail the
// flow; the report is always returned.
func (t *Trainer) Finish(ctx context.Context, c *session.Controller, status session.Status) (*Result, error) {
	final, err := c.Terminate(ctx, status)
	if err != nil {
		return nil, err
	}

	res := &Result{
		State:  final,
		Report: stats.Aggregate(final.Questions, final.Answers),
	}

	if t.badges != nil {
		if earned, err := t.badges.Evaluate(ctx, final.UserID); err == nil {
			res.Badges = earned
		}
	}

	key := event.SessionCompleted
	if status == session.StatusAbandoned {
		key = event.SessionAbandoned
	}
	_ = t.events.Publish(key, event.SessionEvent{
		SessionID:     final.SessionID,
		UserID:        final.UserID,
		Status:        string(final.Status),
		QuestionCount: len(final.Questions),
		AnsweredCount: len(final.Answers),
		CorrectCount:  final.CorrectCount(),
		Score:         final.Score,
		DurationSecs:  final.ElapsedSecs,
		FinishedAt:    final.CreatedAt.Add(time.Duration(final.ElapsedSecs) * time.Second),
	})

	return res, nil
}
