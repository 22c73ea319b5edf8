package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/quizzine/engine/ent"
	"github.com/quizzine/engine/ent/outboxentry"
)

// Outbox payload kinds.
const (
	KindSummary = "summary"
	KindAnswer  = "answer"
)

// OutboxEntry is a remote write pending replay. Entries live in the same
// durable cache as session state and survive restarts.
type OutboxEntry struct {
	EntryID     string
	UserID      string
	SessionID   string
	QuestionID  string // empty for summary entries
	Kind        string
	Payload     json.RawMessage
	Attempts    int
	NextAttempt time.Time
	CreatedAt   time.Time
}

// OutboxRepo manages the pending remote-write queue.
type OutboxRepo interface {
	// Upsert stores the entry, replacing any pending entry for the same
	// (session, question, kind). A replaced entry keeps its queue position.
	Upsert(ctx context.Context, e *OutboxEntry) error

	// Due returns entries eligible at now (next_attempt <= now), oldest first.
	Due(ctx context.Context, now time.Time) ([]*OutboxEntry, error)

	// Pending returns all queued entries, oldest first.
	Pending(ctx context.Context) ([]*OutboxEntry, error)

	// PendingKey reports whether an entry for (session, question, kind)
	// is queued.
	PendingKey(ctx context.Context, sessionID, questionID, kind string) (bool, error)

	// Remove deletes a successfully replayed entry.
	Remove(ctx context.Context, entryID string) error

	// Reschedule records a failed replay attempt and its next try time.
	Reschedule(ctx context.Context, entryID string, attempts int, next time.Time) error
}

// outboxRepo implements OutboxRepo using the ent client.
type outboxRepo struct {
	client *ent.Client
}

func (r *outboxRepo) Upsert(ctx context.Context, e *OutboxEntry) error {
	payload, err := rawToMap(e.Payload)
	if err != nil {
		return fmt.Errorf("marshal outbox payload: %w", err)
	}

	existing, err := r.client.OutboxEntry.Query().
		Where(
			outboxentry.SessionID(e.SessionID),
			outboxentry.QuestionID(e.QuestionID),
			outboxentry.Kind(e.Kind),
		).
		Only(ctx)
	switch {
	case err == nil:
		// Replace payload and retry schedule, keep created_at for FIFO order.
		_, err = existing.Update().
			SetPayload(payload).
			SetAttempts(e.Attempts).
			SetNextAttempt(e.NextAttempt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("replace outbox entry: %w", err)
		}
		return nil

	case ent.IsNotFound(err):
		_, err = r.client.OutboxEntry.Create().
			SetEntryID(e.EntryID).
			SetUserID(e.UserID).
			SetSessionID(e.SessionID).
			SetQuestionID(e.QuestionID).
			SetKind(e.Kind).
			SetPayload(payload).
			SetAttempts(e.Attempts).
			SetNextAttempt(e.NextAttempt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create outbox entry: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("query outbox entry: %w", err)
	}
}

func (r *outboxRepo) Due(ctx context.Context, now time.Time) ([]*OutboxEntry, error) {
	rows, err := r.client.OutboxEntry.Query().
		Where(outboxentry.NextAttemptLTE(now)).
		Order(ent.Asc(outboxentry.FieldCreatedAt), ent.Asc(outboxentry.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due outbox entries: %w", err)
	}
	return entriesFromRows(rows)
}

func (r *outboxRepo) Pending(ctx context.Context) ([]*OutboxEntry, error) {
	rows, err := r.client.OutboxEntry.Query().
		Order(ent.Asc(outboxentry.FieldCreatedAt), ent.Asc(outboxentry.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pending outbox entries: %w", err)
	}
	return entriesFromRows(rows)
}

func (r *outboxRepo) PendingKey(ctx context.Context, sessionID, questionID, kind string) (bool, error) {
	exists, err := r.client.OutboxEntry.Query().
		Where(
			outboxentry.SessionID(sessionID),
			outboxentry.QuestionID(questionID),
			outboxentry.Kind(kind),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("query outbox key: %w", err)
	}
	return exists, nil
}

func (r *outboxRepo) Remove(ctx context.Context, entryID string) error {
	_, err := r.client.OutboxEntry.Delete().
		Where(outboxentry.EntryID(entryID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove outbox entry: %w", err)
	}
	return nil
}

func (r *outboxRepo) Reschedule(ctx context.Context, entryID string, attempts int, next time.Time) error {
	_, err := r.client.OutboxEntry.Update().
		Where(outboxentry.EntryID(entryID)).
		SetAttempts(attempts).
		SetNextAttempt(next).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("reschedule outbox entry: %w", err)
	}
	return nil
}

func entriesFromRows(rows []*ent.OutboxEntry) ([]*OutboxEntry, error) {
	entries := make([]*OutboxEntry, 0, len(rows))
	for _, row := range rows {
		payload, err := json.Marshal(row.Payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload of entry %s: %w", row.EntryID, err)
		}
		entries = append(entries, &OutboxEntry{
			EntryID:     row.EntryID,
			UserID:      row.UserID,
			SessionID:   row.SessionID,
			QuestionID:  row.QuestionID,
			Kind:        row.Kind,
			Payload:     payload,
			Attempts:    row.Attempts,
			NextAttempt: row.NextAttempt,
			CreatedAt:   row.CreatedAt,
		})
	}
	return entries, nil
}

// rawToMap converts a raw JSON payload to map[string]any for ent storage.
func rawToMap(raw json.RawMessage) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
