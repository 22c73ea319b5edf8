package trainer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/quizzine/engine/internal/event"
	"github.com/quizzine/engine/internal/question"
	"github.com/quizzine/engine/internal/remote"
	"github.com/quizzine/engine/internal/scoring"
	"github.com/quizzine/engine/internal/session"
	"github.com/quizzine/engine/internal/store"
)

type memCache struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{blobs: make(map[string][]byte)}
}

func (m *memCache) Save(ctx context.Context, userID string, state any) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.blobs[userID] = b
	m.mu.Unlock()
	return nil
}

func (m *memCache) Load(ctx context.Context, userID string, out any) error {
	m.mu.Lock()
	b, ok := m.blobs[userID]
	m.mu.Unlock()
	if !ok {
		return store.ErrNoSession
	}
	if err := json.Unmarshal(b, out); err != nil {
		_ = m.Clear(ctx, userID)
		return store.ErrCacheCorrupt
	}
	return nil
}

func (m *memCache) Clear(ctx context.Context, userID string) error {
	m.mu.Lock()
	delete(m.blobs, userID)
	m.mu.Unlock()
	return nil
}

type memOutbox struct {
	mu        sync.Mutex
	entries   []*store.OutboxEntry
	upsertErr error
}

func (m *memOutbox) Upsert(ctx context.Context, e *store.OutboxEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	for i, old := range m.entries {
		if old.SessionID == e.SessionID && old.QuestionID == e.QuestionID && old.Kind == e.Kind {
			m.entries[i] = e
			return nil
		}
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *memOutbox) Due(ctx context.Context, now time.Time) ([]*store.OutboxEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*store.OutboxEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *memOutbox) Pending(ctx context.Context) ([]*store.OutboxEntry, error) {
	return m.Due(ctx, time.Time{})
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
	return nil
}

func (m *memOutbox) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

type memRemote struct {
	mu        sync.Mutex
	questions []question.Question
	failing   bool
	summaries map[string]remote.SessionSummary
	answers   map[string]remote.AnswerRecord
}

func newMemRemote(questions []question.Question) *memRemote {
	return &memRemote{
		questions: questions,
		summaries: make(map[string]remote.SessionSummary),
		answers:   make(map[string]remote.AnswerRecord),
	}
}

var errRemoteDown = errors.New("remote unavailable")

func (r *memRemote) Questions(ctx context.Context, subThemeIDs []string, kind question.Kind) ([]question.Question, error) {
	return r.questions, nil
}

func (r *memRemote) UpsertSummary(ctx context.Context, s remote.SessionSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errRemoteDown
	}
	r.summaries[s.SessionID] = s
	return nil
}

func (r *memRemote) InsertAnswer(ctx context.Context, a remote.AnswerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errRemoteDown
	}
	r.answers[a.SessionID+"/"+a.QuestionID] = a
	return nil
}

func (r *memRemote) History(ctx context.Context, userID string) ([]remote.SessionSummary, error) {
	return nil, nil
}

func (r *memRemote) setFailing(f bool) {
	r.mu.Lock()
	r.failing = f
	r.mu.Unlock()
}

type stubBadges struct{ earned []string }

func (s stubBadges) Evaluate(ctx context.Context, userID string) ([]string, error) {
	return s.earned, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []event.SessionEvent
}

func (p *recordingPublisher) Publish(key string, evt event.SessionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func poolQuestions() []question.Question {
	qs := make([]question.Question, 0, 3)
	for _, id := range []string{"q1", "q2", "q3"} {
		qs = append(qs, question.Question{
			ID: id, Prompt: "prompt " + id, Kind: question.KindSingle, Active: true,
			SubTheme: question.SubTheme{
				ID: "st1", Name: "Sub", Theme: question.Theme{ID: "t1", Name: "Theme"},
			},
			Answers: []question.Answer{
				{ID: id + "-a", Text: "right", Correct: true},
				{ID: id + "-b", Text: "wrong"},
			},
		})
	}
	return qs
}

type testEnv struct {
	trainer *Trainer
	cache   *memCache
	outbox  *memOutbox
	remote  *memRemote
	events  *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		cache:  newMemCache(),
		outbox: &memOutbox{},
		remote: newMemRemote(poolQuestions()),
		events: &recordingPublisher{},
	}
	env.trainer = New(Options{
		Loader: question.NewPoolLoader(env.remote),
		Cache:  env.cache,
		Outbox: env.outbox,
		Remote: env.remote,
		Badges: stubBadges{earned: []string{"first-session"}},
		Events: env.events,
	})
	return env
}

func TestStartCreatesSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.trainer.Start(ctx, "u1", question.Filter{}, scoring.DefaultRubric())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	s := c.State()
	if len(s.Questions) != 3 || s.UserID != "u1" {
		t.Errorf("session state = %+v", s)
	}
	if len(env.remote.summaries) != 1 {
		t.Errorf("expected the new session announced remotely")
	}
}

func TestStartRejectsWhenSessionCached(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.trainer.Start(ctx, "u1", question.Filter{}, scoring.DefaultRubric()); err != nil {
		t.Fatalf("first start: %v", err)
	}
	_, err := env.trainer.Start(ctx, "u1", question.Filter{}, scoring.DefaultRubric())
	if !errors.Is(err, ErrSessionExists) {
		t.Fatalf("second start = %v, want ErrSessionExists", err)
	}

	// A different user is unaffected.
	if _, err := env.trainer.Start(ctx, "u2", question.Filter{}, scoring.DefaultRubric()); err != nil {
		t.Fatalf("start u2: %v", err)
	}
}

func TestStartEmptyPool(t *testing.T) {
	env := newTestEnv(t)
	env.remote.questions = nil

	_, err := env.trainer.Start(context.Background(), "u1", question.Filter{}, scoring.DefaultRubric())
	if !errors.Is(err, question.ErrEmptyPool) {
		t.Fatalf("start = %v, want ErrEmptyPool", err)
	}
}

func TestResumeAfterRestart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.trainer.Start(ctx, "u1", question.Filter{}, scoring.DefaultRubric())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	first := c.State().CurrentQuestion()
	if _, err := c.SubmitAnswer(ctx, first.ID, []string{first.ID + "-a"}, 8); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := c.Pause(ctx); err != nil {
		t.Fatalf("pause: %v", err)
	}

	resumable, err := env.trainer.Resumable(ctx, "u1")
	if err != nil || !resumable {
		t.Fatalf("resumable = %v, %v; want true", resumable, err)
	}

	// "Restart": a fresh controller from the cache.
	restored, err := env.trainer.Resume(ctx, "u1")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	s := restored.State()
	if s.CurrentIndex != 1 || s.Score != 1 || !s.Paused {
		t.Errorf("restored state = %+v", s)
	}
	if err := restored.Resume(ctx); err != nil {
		t.Fatalf("unpause: %v", err)
	}
}

func TestResumeNothingCached(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.trainer.Resume(context.Background(), "u1"); !errors.Is(err, ErrNoResumable) {
		t.Fatalf("resume = %v, want ErrNoResumable", err)
	}
}

func TestResumeCorruptCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.cache.blobs["u1"] = []byte("{broken")

	if _, err := env.trainer.Resume(ctx, "u1"); !errors.Is(err, ErrNoResumable) {
		t.Fatalf("resume corrupt = %v, want ErrNoResumable", err)
	}
	// The corrupt entry is gone: a new session can start.
	if _, err := env.trainer.Start(ctx, "u1", question.Filter{}, scoring.DefaultRubric()); err != nil {
		t.Fatalf("start after corrupt discard: %v", err)
	}
}

func TestFinishProducesReportBadgesAndEvent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.trainer.Start(ctx, "u1", question.Filter{}, scoring.DefaultRubric())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 2; i++ {
		q := c.State().CurrentQuestion()
		sel := []string{q.ID + "-a"}
		if i == 1 {
			sel = []string{q.ID + "-b"} // one wrong answer
		}
		if _, err := c.SubmitAnswer(ctx, q.ID, sel, 10); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	res, err := env.trainer.Finish(ctx, c, session.StatusCompleted)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	if res.Report.Overall.Answered != 2 || res.Report.Overall.Correct != 1 {
		t.Errorf("report overall = %+v", res.Report.Overall)
	}
	if len(res.Report.Failed) != 1 {
		t.Errorf("failed list = %+v", res.Report.Failed)
	}
	if len(res.Badges) != 1 || res.Badges[0] != "first-session" {
		t.Errorf("badges = %v", res.Badges)
	}

	if len(env.events.keys) != 1 || env.events.keys[0] != event.SessionCompleted {
		t.Errorf("event keys = %v", env.events.keys)
	}
	if env.events.events[0].AnsweredCount != 2 {
		t.Errorf("event payload = %+v", env.events.events[0])
	}

	// The session is gone from the cache: a new one may start.
	if _, err := env.trainer.Start(ctx, "u1", question.Filter{}, scoring.DefaultRubric()); err != nil {
		t.Fatalf("start after finish: %v", err)
	}
}

func TestFinishAbandonedWithoutAnswers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.trainer.Start(ctx, "u1", question.Filter{}, scoring.DefaultRubric())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	res, err := env.trainer.Finish(ctx, c, session.StatusAbandoned)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if res.Report.Overall.Answered != 0 || len(res.Report.Themes) != 0 || len(res.Report.Failed) != 0 {
		t.Errorf("report = %+v, want empty", res.Report)
	}
	if env.events.keys[0] != event.SessionAbandoned {
		t.Errorf("event key = %s, want %s", env.events.keys[0], event.SessionAbandoned)
	}
}

func TestFinishDuringRecoveryKeepsTerminalSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// The session starts while the remote is down, so the in-progress
	// summary lands in the outbox.
	env.remote.setFailing(true)
	c, err := env.trainer.Start(ctx, "u1", question.Filter{}, scoring.DefaultRubric())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	sessionID := c.State().SessionID

	// It finishes after the remote recovers. The terminal summary must
	// supersede the queued one, not race it.
	env.remote.setFailing(false)
	if _, err := env.trainer.Finish(ctx, c, session.StatusCompleted); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if _, err := env.trainer.Reconciler().Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}

	got, ok := env.remote.summaries[sessionID]
	if !ok {
		t.Fatal("summary missing remotely")
	}
	if got.Status != remote.StatusCompleted {
		t.Errorf("remote summary status = %q, want %q", got.Status, remote.StatusCompleted)
	}
	if env.outbox.size() != 0 {
		t.Errorf("outbox not drained: %d entries", env.outbox.size())
	}
}

func TestWriterErrorSurfaced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.trainer.Start(ctx, "u1", question.Filter{}, scoring.DefaultRubric())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := env.trainer.Writer().LastError(); err != nil {
		t.Fatalf("last error before any failure = %v", err)
	}

	// Remote down and the local queue broken: the answer still lands in
	// the session, but the loss must be observable.
	env.remote.setFailing(true)
	env.outbox.upsertErr = errors.New("disk full")
	q := c.State().CurrentQuestion()
	if _, err := c.SubmitAnswer(ctx, q.ID, []string{q.ID + "-a"}, 5); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := env.trainer.Writer().LastError(); err == nil {
		t.Error("queueing failure not surfaced via LastError")
	}
}

func TestAnswersSurviveRemoteOutage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.trainer.Start(ctx, "u1", question.Filter{}, scoring.DefaultRubric())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	env.remote.setFailing(true)
	q := c.State().CurrentQuestion()
	if _, err := c.SubmitAnswer(ctx, q.ID, []string{q.ID + "-a"}, 10); err != nil {
		t.Fatalf("submit during outage must succeed locally: %v", err)
	}
	if env.outbox.size() == 0 {
		t.Fatal("expected failed remote writes captured in the outbox")
	}

	env.remote.setFailing(false)
	if _, err := env.trainer.Reconciler().Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if env.outbox.size() != 0 {
		t.Errorf("outbox not drained: %d entries", env.outbox.size())
	}
	if _, ok := env.remote.answers[c.State().SessionID+"/"+q.ID]; !ok {
		t.Error("replayed answer row missing remotely")
	}
}
