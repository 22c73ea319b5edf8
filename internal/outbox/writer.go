package outbox

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/quizzine/engine/internal/remote"
	"github.com/quizzine/engine/internal/store"
)

// Writer mirrors session writes to the remote store. A write that fails is
// captured as an outbox entry and the reconciler is kicked; the caller is
// never blocked or failed by remote trouble.
//
// A write whose (session, question, kind) key already has a queued entry
// skips the direct path and replaces the queued payload instead. Otherwise
// the queued entry could replay after the direct write and regress the
// remote row to the older payload.
//
// Only a local queueing failure is an error; it reaches OnError and
// LastError.
type Writer struct {
	remote  remote.Store
	repo    store.OutboxRepo
	clock   Clock
	kick    func()
	onError func(error)

	mu      sync.Mutex
	lastErr error
}

// NewWriter creates a Writer. kick wakes the reconciler after a capture and
// may be nil; onError receives local queueing failures and may be nil.
func NewWriter(r remote.Store, repo store.OutboxRepo, clock Clock, kick func(), onError func(error)) *Writer {
	if clock == nil {
		clock = SystemClock()
	}
	return &Writer{remote: r, repo: repo, clock: clock, kick: kick, onError: onError}
}

// LastError returns the most recent local queueing failure, or nil.
func (w *Writer) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// PublishSummary mirrors a session summary upsert.
func (w *Writer) PublishSummary(ctx context.Context, s remote.SessionSummary) {
	if w.queued(ctx, store.KindSummary, s.SessionID, "") {
		w.capture(ctx, store.KindSummary, s.UserID, s.SessionID, "", s)
		return
	}
	if err := w.remote.UpsertSummary(ctx, s); err == nil {
		return
	}
	w.capture(ctx, store.KindSummary, s.UserID, s.SessionID, "", s)
}

// PublishAnswer mirrors one answer row.
func (w *Writer) PublishAnswer(ctx context.Context, a remote.AnswerRecord) {
	if w.queued(ctx, store.KindAnswer, a.SessionID, a.QuestionID) {
		w.capture(ctx, store.KindAnswer, a.UserID, a.SessionID, a.QuestionID, a)
		return
	}
	if err := w.remote.InsertAnswer(ctx, a); err == nil {
		return
	}
	w.capture(ctx, store.KindAnswer, a.UserID, a.SessionID, a.QuestionID, a)
}

func (w *Writer) queued(ctx context.Context, kind, sessionID, questionID string) bool {
	pending, err := w.repo.PendingKey(ctx, sessionID, questionID, kind)
	if err != nil {
		w.fail(err)
		return false
	}
	return pending
}

func (w *Writer) capture(ctx context.Context, kind, userID, sessionID, questionID string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		w.fail(err)
		return
	}
	entry := &store.OutboxEntry{
		EntryID:     uuid.New().String(),
		UserID:      userID,
		SessionID:   sessionID,
		QuestionID:  questionID,
		Kind:        kind,
		Payload:     raw,
		NextAttempt: w.clock.Now(),
	}
	if err := w.repo.Upsert(ctx, entry); err != nil {
		w.fail(err)
		return
	}
	if w.kick != nil {
		w.kick()
	}
}

func (w *Writer) fail(err error) {
	w.mu.Lock()
	w.lastErr = err
	w.mu.Unlock()
	if w.onError != nil {
		w.onError(err)
	}
}
