package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

type testState struct {
	SessionID    string  `json:"session_id"`
	CurrentIndex int     `json:"current_index"`
	Score        float64 `json:"score"`
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is skipped here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionCacheRoundTrip(t *testing.T) {
	s := openTestStore(t)
	cache := s.SessionCache()
	ctx := context.Background()

	var missing testState
	if err := cache.Load(ctx, "u1", &missing); !errors.Is(err, ErrNoSession) {
		t.Fatalf("load (empty) = %v, want ErrNoSession", err)
	}

	saved := testState{SessionID: "s1", CurrentIndex: 3, Score: 1.5}
	if err := cache.Save(ctx, "u1", saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	var got testState
	if err := cache.Load(ctx, "u1", &got); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != saved {
		t.Errorf("loaded state = %+v, want %+v", got, saved)
	}
}

func TestSessionCacheSaveReplaces(t *testing.T) {
	s := openTestStore(t)
	cache := s.SessionCache()
	ctx := context.Background()

	if err := cache.Save(ctx, "u1", testState{SessionID: "s1", CurrentIndex: 1}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := cache.Save(ctx, "u1", testState{SessionID: "s1", CurrentIndex: 2}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	var got testState
	if err := cache.Load(ctx, "u1", &got); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.CurrentIndex != 2 {
		t.Errorf("current_index = %d, want 2 (second save should win)", got.CurrentIndex)
	}
}

func TestSessionCachePerUser(t *testing.T) {
	s := openTestStore(t)
	cache := s.SessionCache()
	ctx := context.Background()

	if err := cache.Save(ctx, "u1", testState{SessionID: "s1"}); err != nil {
		t.Fatalf("save u1: %v", err)
	}
	if err := cache.Save(ctx, "u2", testState{SessionID: "s2"}); err != nil {
		t.Fatalf("save u2: %v", err)
	}

	var got testState
	if err := cache.Load(ctx, "u2", &got); err != nil {
		t.Fatalf("load u2: %v", err)
	}
	if got.SessionID != "s2" {
		t.Errorf("u2 session = %q, want s2", got.SessionID)
	}

	if err := cache.Clear(ctx, "u1"); err != nil {
		t.Fatalf("clear u1: %v", err)
	}
	if err := cache.Load(ctx, "u1", &got); !errors.Is(err, ErrNoSession) {
		t.Fatalf("load u1 after clear = %v, want ErrNoSession", err)
	}
	if err := cache.Load(ctx, "u2", &got); err != nil {
		t.Fatalf("u2 must survive clearing u1: %v", err)
	}
}

func TestSessionCacheCorruptStateDiscarded(t *testing.T) {
	s := openTestStore(t)
	cache := s.SessionCache()
	ctx := context.Background()

	// A state whose field types don't decode into testState.
	if err := cache.Save(ctx, "u1", map[string]any{"current_index": "three"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	var got testState
	err := cache.Load(ctx, "u1", &got)
	if !errors.Is(err, ErrCacheCorrupt) {
		t.Fatalf("load corrupt = %v, want ErrCacheCorrupt", err)
	}

	// The corrupt row must be gone: next load reports no session.
	if err := cache.Load(ctx, "u1", &got); !errors.Is(err, ErrNoSession) {
		t.Fatalf("load after corrupt discard = %v, want ErrNoSession", err)
	}
}

func testEntry(entryID, sessionID, questionID, kind string, next time.Time) *OutboxEntry {
	return &OutboxEntry{
		EntryID:     entryID,
		UserID:      "u1",
		SessionID:   sessionID,
		QuestionID:  questionID,
		Kind:        kind,
		Payload:     json.RawMessage(`{"v":1}`),
		NextAttempt: next,
	}
}

func TestOutboxUpsertReplacesPerQuestion(t *testing.T) {
	s := openTestStore(t)
	outbox := s.Outbox()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	e := testEntry("e1", "s1", "q1", KindAnswer, now)
	if err := outbox.Upsert(ctx, e); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	replacement := testEntry("e2", "s1", "q1", KindAnswer, now)
	replacement.Payload = json.RawMessage(`{"v":2}`)
	if err := outbox.Upsert(ctx, replacement); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	pending, err := outbox.Pending(ctx)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending entry after replace, got %d", len(pending))
	}

	var payload struct {
		V int `json:"v"`
	}
	if err := json.Unmarshal(pending[0].Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.V != 2 {
		t.Errorf("payload v = %d, want 2 (replacement payload)", payload.V)
	}
}

func TestOutboxPendingKey(t *testing.T) {
	s := openTestStore(t)
	outbox := s.Outbox()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	queued, err := outbox.PendingKey(ctx, "s1", "", KindSummary)
	if err != nil {
		t.Fatalf("pending key: %v", err)
	}
	if queued {
		t.Fatal("empty queue reported a pending key")
	}

	if err := outbox.Upsert(ctx, testEntry("e1", "s1", "", KindSummary, now)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	cases := []struct {
		sessionID  string
		questionID string
		kind       string
		want       bool
	}{
		{"s1", "", KindSummary, true},
		{"s1", "", KindAnswer, false},
		{"s1", "q1", KindSummary, false},
		{"s2", "", KindSummary, false},
	}
	for _, c := range cases {
		got, err := outbox.PendingKey(ctx, c.sessionID, c.questionID, c.kind)
		if err != nil {
			t.Fatalf("pending key (%s,%s,%s): %v", c.sessionID, c.questionID, c.kind, err)
		}
		if got != c.want {
			t.Errorf("pending key (%s,%s,%s) = %v, want %v", c.sessionID, c.questionID, c.kind, got, c.want)
		}
	}

	if err := outbox.Remove(ctx, "e1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	queued, err = outbox.PendingKey(ctx, "s1", "", KindSummary)
	if err != nil {
		t.Fatalf("pending key after remove: %v", err)
	}
	if queued {
		t.Error("removed entry still reported pending")
	}
}

func TestOutboxDueOrderAndReschedule(t *testing.T) {
	s := openTestStore(t)
	outbox := s.Outbox()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	// Different questions so entries don't replace each other.
	for i, q := range []string{"q1", "q2", "q3"} {
		e := testEntry("e"+q, "s1", q, KindAnswer, now.Add(time.Duration(i-1)*time.Minute))
		if err := outbox.Upsert(ctx, e); err != nil {
			t.Fatalf("upsert %s: %v", q, err)
		}
	}

	due, err := outbox.Due(ctx, now)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 due entries, got %d", len(due))
	}

	if err := outbox.Reschedule(ctx, due[0].EntryID, 1, now.Add(time.Hour)); err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	due, err = outbox.Due(ctx, now)
	if err != nil {
		t.Fatalf("due after reschedule: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("expected 1 due entry after reschedule, got %d", len(due))
	}

	if err := outbox.Remove(ctx, due[0].EntryID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	due, err = outbox.Due(ctx, now)
	if err != nil {
		t.Fatalf("due after remove: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("expected empty due list, got %d entries", len(due))
	}
}
