package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quizzine/engine/internal/question"
	"github.com/quizzine/engine/internal/remote"
	"github.com/quizzine/engine/internal/scoring"
	"github.com/quizzine/engine/internal/store"
)

// RemoteWriter mirrors state changes to the remote store. Implementations
// never fail the caller: a write that cannot reach the remote is captured
// for later replay.
type RemoteWriter interface {
	PublishSummary(ctx context.Context, s remote.SessionSummary)
	PublishAnswer(ctx context.Context, a remote.AnswerRecord)
}

// Deps are the Controller's collaborators, injected so tests can use fakes.
type Deps struct {
	// Cache is the local write-through cache. Every state transition is
	// saved here before the operation returns; the local write is
	// authoritative for resume.
	Cache store.SessionCacheRepo

	// Remote mirrors writes to the backing store, best-effort.
	Remote RemoteWriter

	// Now supplies the current time. Defaults to time.Now.
	Now func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Controller drives a session through its lifecycle:
// Created → InProgress → (Paused ⇄ InProgress) → Completed | Abandoned.
type Controller struct {
	mu    sync.Mutex
	deps  Deps
	state *State
}

// Create builds a new session over the frozen question list, persists it
// locally and announces it remotely. The caller is responsible for checking
// that no resumable session already exists for the user.
func Create(ctx context.Context, deps Deps, userID string, questions []question.Question, rubric scoring.Rubric) (*Controller, error) {
	snapshot := make([]question.Question, len(questions))
	copy(snapshot, questions)

	state := &State{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Questions: snapshot,
		Rubric:    rubric,
		Status:    StatusCreated,
		CreatedAt: deps.now(),
	}

	c := &Controller{deps: deps, state: state}
	if err := c.persist(ctx); err != nil {
		return nil, fmt.Errorf("persist new session: %w", err)
	}
	deps.Remote.PublishSummary(ctx, c.summaryLocked())
	return c, nil
}

// Restore rebuilds a controller from a cached state, typically after an app
// restart. The state is validated before use; a state that violates the
// session invariants is refused.
func Restore(deps Deps, state *State) (*Controller, error) {
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("restore session %s: %w", state.SessionID, err)
	}
	if state.Status.Terminal() {
		return nil, &InvalidStateError{Op: "restore", Status: state.Status, Reason: "session already terminated"}
	}
	return &Controller{deps: deps, state: state.Clone()}, nil
}

// State returns a copy of the current session state.
func (c *Controller) State() *State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// SubmitAnswer scores the selection against the question currently awaiting
// an answer and advances the session. An empty selection records a
// no-answer. Submitting for an already-answered question returns
// *DuplicateAnswerError; any other out-of-order submission returns
// *InvalidStateError.
func (c *Controller) SubmitAnswer(ctx context.Context, questionID string, selectedIDs []string, timeSpentSecs int) (scoring.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	if s.Status.Terminal() {
		return scoring.Result{}, &InvalidStateError{Op: "submit answer", Status: s.Status}
	}
	if s.Paused {
		return scoring.Result{}, &InvalidStateError{Op: "submit answer", Status: s.Status, Reason: "session is paused"}
	}

	for i, a := range s.Answers {
		if a.QuestionID == questionID {
			return scoring.Result{}, &DuplicateAnswerError{QuestionID: questionID, Index: i}
		}
	}

	q := s.CurrentQuestion()
	if q == nil {
		return scoring.Result{}, &InvalidStateError{Op: "submit answer", Status: s.Status, Reason: "all questions answered"}
	}
	if q.ID != questionID {
		return scoring.Result{}, &InvalidStateError{Op: "submit answer", Status: s.Status, Reason: fmt.Sprintf("question %s is not current (%s is)", questionID, q.ID)}
	}

	result := scoring.Score(*q, selectedIDs, s.Rubric)

	answer := UserAnswer{
		QuestionID:    questionID,
		SelectedIDs:   selectedIDs,
		Correct:       result.Correct,
		Partial:       result.Partial,
		NoAnswer:      result.NoAnswer,
		Points:        result.Points,
		TimeSpentSecs: timeSpentSecs,
	}
	s.Answers = append(s.Answers, answer)
	s.Score += result.Points
	s.CurrentIndex++
	s.Status = StatusInProgress

	if err := c.persist(ctx); err != nil {
		// Roll back: the local write is the authoritative record, so an
		// answer that could not be saved is an answer that did not happen.
		s.Answers = s.Answers[:len(s.Answers)-1]
		s.Score -= result.Points
		s.CurrentIndex--
		return scoring.Result{}, fmt.Errorf("persist answer: %w", err)
	}

	c.deps.Remote.PublishAnswer(ctx, remote.AnswerRecord{
		SessionID:     s.SessionID,
		UserID:        s.UserID,
		QuestionID:    questionID,
		SelectedIDs:   selectedIDs,
		Correct:       result.Correct,
		Partial:       result.Partial,
		Points:        result.Points,
		TimeSpentSecs: timeSpentSecs,
		AnsweredAt:    c.deps.now(),
	})
	c.deps.Remote.PublishSummary(ctx, c.summaryLocked())

	return result, nil
}

// Pause suspends the session so it can be resumed after a restart.
func (c *Controller) Pause(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	if s.Status.Terminal() {
		return &InvalidStateError{Op: "pause", Status: s.Status}
	}
	if s.Paused {
		return &InvalidStateError{Op: "pause", Status: s.Status, Reason: "already paused"}
	}

	s.Paused = true
	if err := c.persist(ctx); err != nil {
		s.Paused = false
		return fmt.Errorf("persist pause: %w", err)
	}
	return nil
}

// Resume lifts a pause. Index and score are restored exactly as persisted;
// nothing is recomputed.
func (c *Controller) Resume(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	if s.Status.Terminal() {
		return &InvalidStateError{Op: "resume", Status: s.Status}
	}
	if !s.Paused {
		return &InvalidStateError{Op: "resume", Status: s.Status, Reason: "not paused"}
	}

	s.Paused = false
	if err := c.persist(ctx); err != nil {
		s.Paused = true
		return fmt.Errorf("persist resume: %w", err)
	}
	return nil
}

// Terminate ends the session with the given terminal status. It is valid
// from any non-terminal state, including paused and before any answer. The
// final summary is mirrored remotely and the local cache entry is cleared.
// Returns the frozen final state.
func (c *Controller) Terminate(ctx context.Context, status Status) (*State, error) {
	if !status.Terminal() {
		return nil, fmt.Errorf("terminate: %q is not a terminal status", status)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	if s.Status.Terminal() {
		return nil, &InvalidStateError{Op: "terminate", Status: s.Status}
	}

	s.Status = status
	s.Paused = false
	s.ElapsedSecs = int(c.deps.now().Sub(s.CreatedAt) / time.Second)

	c.deps.Remote.PublishSummary(ctx, c.summaryLocked())

	if err := c.deps.Cache.Clear(ctx, s.UserID); err != nil {
		return nil, fmt.Errorf("clear session cache: %w", err)
	}
	return s.Clone(), nil
}

// persist writes the current state to the local cache. Callers hold c.mu.
func (c *Controller) persist(ctx context.Context) error {
	return c.deps.Cache.Save(ctx, c.state.UserID, c.state)
}

// summaryLocked builds the remote summary record. Callers hold c.mu.
func (c *Controller) summaryLocked() remote.SessionSummary {
	s := c.state
	status := remote.StatusInProgress
	switch s.Status {
	case StatusCompleted:
		status = remote.StatusCompleted
	case StatusAbandoned:
		status = remote.StatusAbandoned
	}
	return remote.SessionSummary{
		SessionID:     s.SessionID,
		UserID:        s.UserID,
		Status:        status,
		QuestionCount: len(s.Questions),
		AnsweredCount: len(s.Answers),
		CorrectCount:  s.CorrectCount(),
		Score:         s.Score,
		DurationSecs:  s.ElapsedSecs,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     c.deps.now(),
	}
}
