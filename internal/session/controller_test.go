package session

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/quizzine/engine/internal/question"
	"github.com/quizzine/engine/internal/remote"
	"github.com/quizzine/engine/internal/scoring"
	"github.com/quizzine/engine/internal/store"
)

// fakeCache round-trips state through JSON, like the real SQLite cache.
type fakeCache struct {
	blobs   map[string][]byte
	saveErr error
	saves   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{blobs: make(map[string][]byte)}
}

func (f *fakeCache) Save(ctx context.Context, userID string, state any) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	f.blobs[userID] = b
	f.saves++
	return nil
}

func (f *fakeCache) Load(ctx context.Context, userID string, out any) error {
	b, ok := f.blobs[userID]
	if !ok {
		return store.ErrNoSession
	}
	return json.Unmarshal(b, out)
}

func (f *fakeCache) Clear(ctx context.Context, userID string) error {
	delete(f.blobs, userID)
	return nil
}

// fakeWriter records published remote payloads.
type fakeWriter struct {
	summaries []remote.SessionSummary
	answers   []remote.AnswerRecord
}

func (f *fakeWriter) PublishSummary(ctx context.Context, s remote.SessionSummary) {
	f.summaries = append(f.summaries, s)
}

func (f *fakeWriter) PublishAnswer(ctx context.Context, a remote.AnswerRecord) {
	f.answers = append(f.answers, a)
}

func singleQ(id, correctID string) question.Question {
	answers := []question.Answer{
		{ID: id + "-a", Text: "alpha"},
		{ID: id + "-b", Text: "beta"},
	}
	for i := range answers {
		if answers[i].ID == correctID {
			answers[i].Correct = true
		}
	}
	return question.Question{
		ID: id, Prompt: "prompt " + id, Kind: question.KindSingle,
		Active: true, Answers: answers,
		SubTheme: question.SubTheme{ID: "st1", Name: "Sub", Theme: question.Theme{ID: "t1", Name: "Theme"}},
	}
}

func testQuestions() []question.Question {
	return []question.Question{
		singleQ("q1", "q1-a"),
		singleQ("q2", "q2-a"),
		singleQ("q3", "q3-a"),
	}
}

func testDeps(t *testing.T) (Deps, *fakeCache, *fakeWriter) {
	t.Helper()
	cache := newFakeCache()
	writer := &fakeWriter{}
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	elapsed := 0
	deps := Deps{
		Cache:  cache,
		Remote: writer,
		Now: func() time.Time {
			elapsed++
			return base.Add(time.Duration(elapsed) * time.Second)
		},
	}
	return deps, cache, writer
}

func mustCreate(t *testing.T, deps Deps) *Controller {
	t.Helper()
	c, err := Create(context.Background(), deps, "u1", testQuestions(), scoring.DefaultRubric())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return c
}

func assertNoDrift(t *testing.T, s *State) {
	t.Helper()
	sum := 0.0
	for _, a := range s.Answers {
		sum += a.Points
	}
	if math.Abs(sum-s.Score) > 1e-9 {
		t.Fatalf("score drift: score=%v sum=%v", s.Score, sum)
	}
}

func TestCreatePersistsAndAnnounces(t *testing.T) {
	deps, cache, writer := testDeps(t)
	c := mustCreate(t, deps)

	if _, ok := cache.blobs["u1"]; !ok {
		t.Fatal("expected cached state for u1")
	}
	if len(writer.summaries) != 1 {
		t.Fatalf("expected 1 summary publish, got %d", len(writer.summaries))
	}
	if writer.summaries[0].Status != remote.StatusInProgress {
		t.Errorf("summary status = %s, want in_progress", writer.summaries[0].Status)
	}

	s := c.State()
	if s.SessionID == "" || s.Status != StatusCreated || s.CurrentIndex != 0 {
		t.Errorf("unexpected initial state: %+v", s)
	}
}

func TestSubmitAnswerAdvances(t *testing.T) {
	deps, _, writer := testDeps(t)
	c := mustCreate(t, deps)
	ctx := context.Background()

	res, err := c.SubmitAnswer(ctx, "q1", []string{"q1-a"}, 12)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Correct || res.Points != 1 {
		t.Errorf("result = %+v, want correct +1", res)
	}

	s := c.State()
	if s.CurrentIndex != 1 || len(s.Answers) != 1 || s.Status != StatusInProgress {
		t.Errorf("state after submit: %+v", s)
	}
	if s.CurrentQuestion().ID != "q2" {
		t.Errorf("current question = %s, want q2", s.CurrentQuestion().ID)
	}
	assertNoDrift(t, s)

	if len(writer.answers) != 1 {
		t.Fatalf("expected 1 answer publish, got %d", len(writer.answers))
	}
	if writer.answers[0].QuestionID != "q1" || writer.answers[0].TimeSpentSecs != 12 {
		t.Errorf("published answer = %+v", writer.answers[0])
	}
}

func TestSubmitAnswerRubricScenario(t *testing.T) {
	// Answers [correct, no-answer, incorrect] under the default rubric
	// must land on exactly 0.0.
	deps, _, _ := testDeps(t)
	c := mustCreate(t, deps)
	ctx := context.Background()

	steps := []struct {
		questionID string
		selection  []string
	}{
		{"q1", []string{"q1-a"}},
		{"q2", nil},
		{"q3", []string{"q3-b"}},
	}
	for _, step := range steps {
		if _, err := c.SubmitAnswer(ctx, step.questionID, step.selection, 5); err != nil {
			t.Fatalf("submit %s: %v", step.questionID, err)
		}
		assertNoDrift(t, c.State())
	}

	s := c.State()
	if s.Score != 0 {
		t.Errorf("score = %v, want 0.0", s.Score)
	}
	if s.CorrectCount() != 1 {
		t.Errorf("correct count = %d, want 1", s.CorrectCount())
	}
	if s.Answers[1].NoAnswer != true {
		t.Errorf("second answer should be a no-answer: %+v", s.Answers[1])
	}
	if s.CurrentQuestion() != nil {
		t.Error("expected no current question after answering all")
	}
}

func TestSubmitAnswerDuplicate(t *testing.T) {
	deps, _, _ := testDeps(t)
	c := mustCreate(t, deps)
	ctx := context.Background()

	if _, err := c.SubmitAnswer(ctx, "q1", []string{"q1-a"}, 5); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	_, err := c.SubmitAnswer(ctx, "q1", []string{"q1-b"}, 5)
	var dup *DuplicateAnswerError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateAnswerError, got %v", err)
	}
	if dup.QuestionID != "q1" || dup.Index != 0 {
		t.Errorf("duplicate detail = %+v", dup)
	}

	// The duplicate must not have touched the state.
	s := c.State()
	if s.CurrentIndex != 1 || s.Score != 1 {
		t.Errorf("state changed by rejected submit: %+v", s)
	}
}

func TestSubmitAnswerNotCurrent(t *testing.T) {
	deps, _, _ := testDeps(t)
	c := mustCreate(t, deps)

	_, err := c.SubmitAnswer(context.Background(), "q3", []string{"q3-a"}, 5)
	var inv *InvalidStateError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidStateError for out-of-order submit, got %v", err)
	}
}

func TestSubmitAnswerWhilePaused(t *testing.T) {
	deps, _, _ := testDeps(t)
	c := mustCreate(t, deps)
	ctx := context.Background()

	if err := c.Pause(ctx); err != nil {
		t.Fatalf("pause: %v", err)
	}
	_, err := c.SubmitAnswer(ctx, "q1", []string{"q1-a"}, 5)
	var inv *InvalidStateError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidStateError while paused, got %v", err)
	}
}

func TestSubmitAnswerLocalWriteFailureRollsBack(t *testing.T) {
	deps, cache, writer := testDeps(t)
	c := mustCreate(t, deps)
	ctx := context.Background()

	cache.saveErr = errors.New("disk full")
	if _, err := c.SubmitAnswer(ctx, "q1", []string{"q1-a"}, 5); err == nil {
		t.Fatal("expected error when local write fails")
	}

	s := c.State()
	if s.CurrentIndex != 0 || s.Score != 0 || len(s.Answers) != 0 {
		t.Errorf("state not rolled back: %+v", s)
	}
	if len(writer.answers) != 0 {
		t.Error("answer must not reach the remote when the local write failed")
	}

	// Recovery: the same submission succeeds once the cache is healthy.
	cache.saveErr = nil
	if _, err := c.SubmitAnswer(ctx, "q1", []string{"q1-a"}, 5); err != nil {
		t.Fatalf("submit after recovery: %v", err)
	}
}

func TestPauseResume(t *testing.T) {
	deps, _, _ := testDeps(t)
	c := mustCreate(t, deps)
	ctx := context.Background()

	if _, err := c.SubmitAnswer(ctx, "q1", []string{"q1-a"}, 5); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := c.Pause(ctx); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if !c.State().Paused {
		t.Fatal("expected paused state")
	}

	var inv *InvalidStateError
	if err := c.Pause(ctx); !errors.As(err, &inv) {
		t.Fatalf("double pause = %v, want InvalidStateError", err)
	}

	if err := c.Resume(ctx); err != nil {
		t.Fatalf("resume: %v", err)
	}
	s := c.State()
	if s.Paused {
		t.Fatal("expected unpaused state")
	}
	if s.CurrentIndex != 1 || s.Score != 1 {
		t.Errorf("resume must not recompute: %+v", s)
	}

	if err := c.Resume(ctx); !errors.As(err, &inv) {
		t.Fatalf("resume while running = %v, want InvalidStateError", err)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	deps, cache, _ := testDeps(t)
	c := mustCreate(t, deps)
	ctx := context.Background()

	if _, err := c.SubmitAnswer(ctx, "q1", []string{"q1-a"}, 5); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := c.Pause(ctx); err != nil {
		t.Fatalf("pause: %v", err)
	}
	before := c.State()

	// Simulate an app restart: load the cached blob and restore.
	var loaded State
	if err := cache.Load(ctx, "u1", &loaded); err != nil {
		t.Fatalf("load: %v", err)
	}
	restored, err := Restore(deps, &loaded)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	after := restored.State()
	if after.CurrentIndex != before.CurrentIndex || after.Score != before.Score {
		t.Errorf("restore mismatch: before=%+v after=%+v", before, after)
	}
	if after.CurrentQuestion().ID != before.CurrentQuestion().ID {
		t.Errorf("next question changed across restore: %s vs %s",
			after.CurrentQuestion().ID, before.CurrentQuestion().ID)
	}

	// The restored session keeps working.
	if err := restored.Resume(ctx); err != nil {
		t.Fatalf("resume restored: %v", err)
	}
	if _, err := restored.SubmitAnswer(ctx, "q2", []string{"q2-a"}, 5); err != nil {
		t.Fatalf("submit on restored: %v", err)
	}
}

func TestRestoreRejectsInvalidState(t *testing.T) {
	deps, _, _ := testDeps(t)

	tests := []struct {
		name   string
		mutate func(s *State)
	}{
		{"index out of range", func(s *State) { s.CurrentIndex = 99 }},
		{"answer gap", func(s *State) { s.CurrentIndex = 2 }},
		{"score drift", func(s *State) { s.Score = 42 }},
		{"terminated", func(s *State) { s.Status = StatusCompleted }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustCreate(t, deps)
			if _, err := c.SubmitAnswer(context.Background(), "q1", []string{"q1-a"}, 5); err != nil {
				t.Fatalf("submit: %v", err)
			}
			s := c.State()
			tt.mutate(s)
			if _, err := Restore(deps, s); err == nil {
				t.Fatal("expected restore to refuse invalid state")
			}
		})
	}
}

func TestTerminateCompleted(t *testing.T) {
	deps, cache, writer := testDeps(t)
	c := mustCreate(t, deps)
	ctx := context.Background()

	for _, id := range []string{"q1", "q2", "q3"} {
		if _, err := c.SubmitAnswer(ctx, id, []string{id + "-a"}, 10); err != nil {
			t.Fatalf("submit %s: %v", id, err)
		}
	}

	final, err := c.Terminate(ctx, StatusCompleted)
	if err != nil {
		t.Fatalf("terminate: %v", err)
	}
	if final.Status != StatusCompleted || final.Score != 3 {
		t.Errorf("final state = %+v", final)
	}
	if final.ElapsedSecs <= 0 {
		t.Errorf("elapsed = %d, want > 0", final.ElapsedSecs)
	}

	if _, ok := cache.blobs["u1"]; ok {
		t.Error("local cache must be cleared on termination")
	}
	last := writer.summaries[len(writer.summaries)-1]
	if last.Status != remote.StatusCompleted || last.AnsweredCount != 3 {
		t.Errorf("final summary = %+v", last)
	}
}

func TestTerminateWithoutAnswers(t *testing.T) {
	deps, _, writer := testDeps(t)
	c := mustCreate(t, deps)

	final, err := c.Terminate(context.Background(), StatusAbandoned)
	if err != nil {
		t.Fatalf("terminate: %v", err)
	}
	if final.Score != 0 || len(final.Answers) != 0 {
		t.Errorf("final state = %+v, want empty", final)
	}
	last := writer.summaries[len(writer.summaries)-1]
	if last.Status != remote.StatusAbandoned || last.AnsweredCount != 0 {
		t.Errorf("final summary = %+v", last)
	}
}

func TestTerminateFromPaused(t *testing.T) {
	deps, _, _ := testDeps(t)
	c := mustCreate(t, deps)
	ctx := context.Background()

	if err := c.Pause(ctx); err != nil {
		t.Fatalf("pause: %v", err)
	}
	final, err := c.Terminate(ctx, StatusAbandoned)
	if err != nil {
		t.Fatalf("terminate from paused: %v", err)
	}
	if final.Paused {
		t.Error("terminal state must not be paused")
	}
}

func TestTerminateContractViolations(t *testing.T) {
	deps, _, _ := testDeps(t)
	c := mustCreate(t, deps)
	ctx := context.Background()

	if _, err := c.Terminate(ctx, StatusInProgress); err == nil {
		t.Fatal("expected error for non-terminal status argument")
	}

	if _, err := c.Terminate(ctx, StatusCompleted); err != nil {
		t.Fatalf("terminate: %v", err)
	}

	var inv *InvalidStateError
	if _, err := c.Terminate(ctx, StatusAbandoned); !errors.As(err, &inv) {
		t.Fatalf("double terminate = %v, want InvalidStateError", err)
	}
	if _, err := c.SubmitAnswer(ctx, "q1", []string{"q1-a"}, 5); !errors.As(err, &inv) {
		t.Fatalf("submit after terminate = %v, want InvalidStateError", err)
	}
	if err := c.Pause(ctx); !errors.As(err, &inv) {
		t.Fatalf("pause after terminate = %v, want InvalidStateError", err)
	}
}
