// Package remote talks to the cross-device backing store. The remote side
// is eventually consistent: every write here may fail without affecting the
// user-visible flow, because callers route failures through the outbox.
package remote

import (
	"context"
	"time"

	"github.com/quizzine/engine/internal/question"
)

// Session summary statuses as stored remotely.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
)

// SessionSummary is the per-session record, inserted at creation and
// updated at termination. Keyed by SessionID.
type SessionSummary struct {
	SessionID     string    `json:"session_id" bson:"session_id"`
	UserID        string    `json:"user_id" bson:"user_id"`
	Status        string    `json:"status" bson:"status"`
	QuestionCount int       `json:"question_count" bson:"question_count"`
	AnsweredCount int       `json:"answered_count" bson:"answered_count"`
	CorrectCount  int       `json:"correct_count" bson:"correct_count"`
	Score         float64   `json:"score" bson:"score"`
	DurationSecs  int       `json:"duration_secs" bson:"duration_secs"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// AnswerRecord is one row per submitted answer. Keyed by
// (SessionID, QuestionID), so replays overwrite instead of duplicating.
type AnswerRecord struct {
	SessionID     string    `json:"session_id" bson:"session_id"`
	UserID        string    `json:"user_id" bson:"user_id"`
	QuestionID    string    `json:"question_id" bson:"question_id"`
	SelectedIDs   []string  `json:"selected_ids" bson:"selected_ids"` // nil = no answer
	Correct       bool      `json:"correct" bson:"correct"`
	Partial       bool      `json:"partial" bson:"partial"`
	Points        float64   `json:"points" bson:"points"`
	TimeSpentSecs int       `json:"time_spent_secs" bson:"time_spent_secs"`
	AnsweredAt    time.Time `json:"answered_at" bson:"answered_at"`
}

// Store is the remote backing store. Implementations must be safe for
// concurrent use: the reconciler replays entries from its own goroutine.
type Store interface {
	question.Source

	// UpsertSummary inserts or updates the session summary record.
	UpsertSummary(ctx context.Context, s SessionSummary) error

	// InsertAnswer stores one answer row, replacing a previous row for the
	// same (session, question).
	InsertAnswer(ctx context.Context, a AnswerRecord) error

	// History returns the user's session summaries, newest first.
	// Consumed by the report surface, not by the engine itself.
	History(ctx context.Context, userID string) ([]SessionSummary, error)
}
