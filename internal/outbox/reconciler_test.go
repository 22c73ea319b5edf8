package outbox

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizzine/engine/internal/question"
	"github.com/quizzine/engine/internal/remote"
	"github.com/quizzine/engine/internal/store"
)

// memOutbox is an in-memory OutboxRepo with the same replace-on-requeue
// contract as the SQLite-backed one.
type memOutbox struct {
	mu      sync.Mutex
	entries []*store.OutboxEntry
	seq     int
}

func (m *memOutbox) Upsert(ctx context.Context, e *store.OutboxEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, old := range m.entries {
		if old.SessionID == e.SessionID && old.QuestionID == e.QuestionID && old.Kind == e.Kind {
			cp := *e
			cp.CreatedAt = old.CreatedAt
			m.entries[i] = &cp
			return nil
		}
	}
	cp := *e
	m.seq++
	cp.CreatedAt = time.Unix(int64(m.seq), 0)
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *memOutbox) Due(ctx context.Context, now time.Time) ([]*store.OutboxEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var due []*store.OutboxEntry
	for _, e := range m.entries {
		if !e.NextAttempt.After(now) {
			cp := *e
			due = append(due, &cp)
		}
	}
	return due, nil
}

func (m *memOutbox) Pending(ctx context.Context) ([]*store.OutboxEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*store.OutboxEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *memOutbox) PendingKey(ctx context.Context, sessionID, questionID, kind string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.SessionID == sessionID && e.QuestionID == questionID && e.Kind == kind {
			return true, nil
		}
	}
	return false, nil
}

func (m *memOutbox) Remove(ctx context.Context, entryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.entries {
		if e.EntryID == entryID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memOutbox) Reschedule(ctx context.Context, entryID string, attempts int, next time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.EntryID == entryID {
			e.Attempts = attempts
			e.NextAttempt = next
		}
	}
	return nil
}

func (m *memOutbox) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// flakyRemote fails the first failuresLeft writes, then succeeds, recording
// rows keyed so duplicates are visible.
type flakyRemote struct {
	mu           sync.Mutex
	failuresLeft int
	summaries    map[string][]remote.SessionSummary
	answers      map[string][]remote.AnswerRecord
}

func newFlakyRemote(failures int) *flakyRemote {
	return &flakyRemote{
		failuresLeft: failures,
		summaries:    make(map[string][]remote.SessionSummary),
		answers:      make(map[string][]remote.AnswerRecord),
	}
}

func (f *flakyRemote) failing() bool {
	if f.failuresLeft > 0 {
		f.failuresLeft--
		return true
	}
	return false
}

func (f *flakyRemote) UpsertSummary(ctx context.Context, s remote.SessionSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing() {
		return assert.AnError
	}
	// Upsert: replace any existing summary for the session.
	f.summaries[s.SessionID] = []remote.SessionSummary{s}
	return nil
}

func (f *flakyRemote) InsertAnswer(ctx context.Context, a remote.AnswerRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing() {
		return assert.AnError
	}
	key := a.SessionID + "/" + a.QuestionID
	// Keyed replace, like the Mongo implementation.
	f.answers[key] = []remote.AnswerRecord{a}
	return nil
}

func (f *flakyRemote) History(ctx context.Context, userID string) ([]remote.SessionSummary, error) {
	return nil, nil
}

func (f *flakyRemote) Questions(ctx context.Context, subThemeIDs []string, kind question.Kind) ([]question.Question, error) {
	return nil, nil
}

func (f *flakyRemote) answerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, rows := range f.answers {
		n += len(rows)
	}
	return n
}

// fakeClock steps time manually.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	tick chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		tick: make(chan time.Time),
	}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	return c.tick
}

func answerRecord(sessionID, questionID string) remote.AnswerRecord {
	return remote.AnswerRecord{
		SessionID:   sessionID,
		UserID:      "u1",
		QuestionID:  questionID,
		SelectedIDs: []string{questionID + "-a"},
		Correct:     true,
		Points:      1,
	}
}

func TestWriterCapturesFailedWrite(t *testing.T) {
	repo := &memOutbox{}
	rs := newFlakyRemote(1)
	clock := newFakeClock()

	kicked := 0
	w := NewWriter(rs, repo, clock, func() { kicked++ }, nil)

	w.PublishAnswer(context.Background(), answerRecord("s1", "q1"))

	require.Equal(t, 1, repo.size(), "failed write must land in the outbox")
	assert.Equal(t, 1, kicked, "a capture must kick the reconciler")
	assert.Equal(t, 0, rs.answerCount())

	// Healthy remote: write goes straight through, no capture.
	w.PublishAnswer(context.Background(), answerRecord("s1", "q2"))
	assert.Equal(t, 1, repo.size())
	assert.Equal(t, 1, rs.answerCount())
}

// TestWriterRoutesBehindQueuedEntry covers the summary sequence around a
// remote outage: the creation summary is captured while the remote is down,
// the terminal summary arrives after recovery. The terminal summary must
// replace the queued one instead of writing directly, or the stale queued
// payload would later replay over the final row.
func TestWriterRoutesBehindQueuedEntry(t *testing.T) {
	repo := &memOutbox{}
	rs := newFlakyRemote(1)
	clock := newFakeClock()
	w := NewWriter(rs, repo, clock, nil, nil)
	ctx := context.Background()

	w.PublishSummary(ctx, remote.SessionSummary{
		SessionID: "s1", UserID: "u1", Status: remote.StatusInProgress,
	})
	require.Equal(t, 1, repo.size())

	// Remote is healthy again, but the session key is still queued.
	w.PublishSummary(ctx, remote.SessionSummary{
		SessionID: "s1", UserID: "u1", Status: remote.StatusCompleted,
		AnsweredCount: 5, Score: 3.5,
	})
	require.Equal(t, 1, repo.size())
	assert.Empty(t, rs.summaries["s1"], "direct write must not jump the queue")

	rec := NewReconciler(repo, rs, WithClock(clock))
	delivered, err := rec.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
	assert.Equal(t, 0, repo.size())

	require.Len(t, rs.summaries["s1"], 1)
	got := rs.summaries["s1"][0]
	assert.Equal(t, remote.StatusCompleted, got.Status)
	assert.Equal(t, 5, got.AnsweredCount)
	assert.Equal(t, 3.5, got.Score)
}

// failingOutbox rejects every Upsert: the local queue itself is broken.
type failingOutbox struct {
	memOutbox
}

func (f *failingOutbox) Upsert(ctx context.Context, e *store.OutboxEntry) error {
	return assert.AnError
}

func TestWriterReportsQueueingFailure(t *testing.T) {
	repo := &failingOutbox{}
	rs := newFlakyRemote(1)
	clock := newFakeClock()

	var seen error
	w := NewWriter(rs, repo, clock, nil, func(err error) { seen = err })
	require.NoError(t, w.LastError())

	w.PublishSummary(context.Background(), remote.SessionSummary{SessionID: "s1", UserID: "u1"})

	assert.ErrorIs(t, w.LastError(), assert.AnError)
	assert.ErrorIs(t, seen, assert.AnError)
}

func TestFlushReplaysAndRemoves(t *testing.T) {
	repo := &memOutbox{}
	rs := newFlakyRemote(2)
	clock := newFakeClock()
	w := NewWriter(rs, repo, clock, nil, nil)
	ctx := context.Background()

	w.PublishAnswer(ctx, answerRecord("s1", "q1"))
	w.PublishAnswer(ctx, answerRecord("s1", "q2"))
	require.Equal(t, 2, repo.size())

	rec := NewReconciler(repo, rs, WithClock(clock))
	delivered, err := rec.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, delivered)
	assert.Equal(t, 0, repo.size(), "replayed entries must be removed")
	assert.Equal(t, 2, rs.answerCount())
}

func TestFlushBacksOffOnFailure(t *testing.T) {
	repo := &memOutbox{}
	rs := newFlakyRemote(2) // capture + first replay both fail
	clock := newFakeClock()
	w := NewWriter(rs, repo, clock, nil, nil)
	ctx := context.Background()

	w.PublishAnswer(ctx, answerRecord("s1", "q1"))
	rec := NewReconciler(repo, rs, WithClock(clock))

	delivered, err := rec.Flush(ctx)
	assert.Error(t, err)
	assert.Equal(t, 0, delivered)
	require.Equal(t, 1, repo.size())

	// Not yet due: nothing to replay.
	delivered, err = rec.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, delivered)

	// After the backoff the entry is retried and delivered.
	clock.Advance(baseBackoff)
	delivered, err = rec.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
	assert.Equal(t, 0, repo.size())
}

// TestOutboxConvergence is the convergence property: N failures followed by
// recovery must eventually drain the outbox with no duplicate remote rows.
func TestOutboxConvergence(t *testing.T) {
	repo := &memOutbox{}
	const failures = 7
	rs := newFlakyRemote(failures)
	clock := newFakeClock()
	w := NewWriter(rs, repo, clock, nil, nil)
	ctx := context.Background()

	// Three writes while the remote is down, one of them resubmitted.
	w.PublishAnswer(ctx, answerRecord("s1", "q1"))
	w.PublishAnswer(ctx, answerRecord("s1", "q1")) // replaces, not duplicates
	w.PublishAnswer(ctx, answerRecord("s1", "q2"))
	w.PublishSummary(ctx, remote.SessionSummary{SessionID: "s1", UserID: "u1"})
	require.Equal(t, 3, repo.size())

	rec := NewReconciler(repo, rs, WithClock(clock))
	for i := 0; i < 20 && repo.size() > 0; i++ {
		_, _ = rec.Flush(ctx)
		clock.Advance(maxBackoff)
	}

	assert.Equal(t, 0, repo.size(), "outbox must converge to empty")
	assert.Equal(t, 2, rs.answerCount(), "exactly one row per (session, question)")
	assert.Len(t, rs.summaries["s1"], 1)
}

func TestFlushPreservesSessionOrder(t *testing.T) {
	repo := &memOutbox{}
	rs := newFlakyRemote(3) // two captures + one failed replay of the head entry
	clock := newFakeClock()
	w := NewWriter(rs, repo, clock, nil, nil)
	ctx := context.Background()

	w.PublishAnswer(ctx, answerRecord("s1", "q1"))
	w.PublishAnswer(ctx, answerRecord("s1", "q2"))
	require.Equal(t, 2, repo.size())

	rec := NewReconciler(repo, rs, WithClock(clock))

	// First pass: head entry fails, the second entry of the same session
	// must be skipped rather than delivered out of order.
	_, err := rec.Flush(ctx)
	assert.Error(t, err)
	assert.Equal(t, 2, repo.size())
	assert.Equal(t, 0, rs.answerCount())

	clock.Advance(maxBackoff)
	delivered, err := rec.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, delivered)
}

func TestRunDrainsOnKick(t *testing.T) {
	repo := &memOutbox{}
	rs := newFlakyRemote(1)
	clock := newFakeClock()

	rec := NewReconciler(repo, rs, WithClock(clock))
	w := NewWriter(rs, repo, clock, rec.Kick, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		rec.Run(ctx)
		close(done)
	}()

	w.PublishAnswer(ctx, answerRecord("s1", "q1"))

	deadline := time.After(2 * time.Second)
	for repo.size() > 0 {
		select {
		case <-deadline:
			t.Fatal("reconciler did not drain the outbox after a kick")
		case <-time.After(10 * time.Millisecond):
		}
	}
	assert.Equal(t, 1, rs.answerCount())

	cancel()
	<-done
}

func TestBackoffDoublesAndCaps(t *testing.T) {
	assert.Equal(t, baseBackoff, backoff(0))
	assert.Equal(t, 2*baseBackoff, backoff(1))
	assert.Equal(t, 4*baseBackoff, backoff(2))
	assert.Equal(t, maxBackoff, backoff(20))
}
