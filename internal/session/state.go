package session

import (
	"fmt"
	"math"
	"time"

	"github.com/quizzine/engine/internal/question"
	"github.com/quizzine/engine/internal/scoring"
)

// Status is the lifecycle state of a session. Completed and Abandoned are
// terminal.
type Status string

const (
	StatusCreated    Status = "created"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

// Terminal reports whether the status is an end state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// UserAnswer records one submitted answer. Append-only: a question is
// answered at most once per session.
type UserAnswer struct {
	QuestionID    string   `json:"question_id"`
	SelectedIDs   []string `json:"selected_ids"` // nil = no answer
	Correct       bool     `json:"correct"`
	Partial       bool     `json:"partial"`
	NoAnswer      bool     `json:"no_answer"`
	Points        float64  `json:"points"`
	TimeSpentSecs int      `json:"time_spent_secs"`
}

// State is the full serializable state of a session. The question list is
// frozen at creation; everything else is mutated only by the Controller.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string `json:"session_id"`

	// UserID owns the session. One in-flight session per user.
	UserID string `json:"user_id"`

	// Questions is the ordered snapshot taken at creation.
	Questions []question.Question `json:"questions"`

	// CurrentIndex is the position of the next unanswered question.
	// Always in [0, len(Questions)]; equals len(Questions) only when the
	// session has been fully answered.
	CurrentIndex int `json:"current_index"`

	// Answers holds one entry per answered question, in question order.
	// len(Answers) == CurrentIndex at all times.
	Answers []UserAnswer `json:"answers"`

	// Score is the running total. Always the sum of Answers' points.
	Score float64 `json:"score"`

	// Rubric is the scoring policy in effect for the whole session.
	Rubric scoring.Rubric `json:"rubric"`

	// Status is the lifecycle state.
	Status Status `json:"status"`

	// Paused marks a suspended session offered for resume on next start.
	Paused bool `json:"paused"`

	// CreatedAt is when the session started.
	CreatedAt time.Time `json:"created_at"`

	// ElapsedSecs is the finalized duration, set at termination.
	ElapsedSecs int `json:"elapsed_secs"`
}

// CurrentQuestion returns the question awaiting an answer, or nil when all
// questions have been answered.
func (s *State) CurrentQuestion() *question.Question {
	if s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// CorrectCount returns the number of fully correct answers so far.
func (s *State) CorrectCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.Correct {
			n++
		}
	}
	return n
}

// scoreEpsilon tolerates float rounding when checking the no-drift rule.
const scoreEpsilon = 1e-9

// Validate checks the structural invariants. It is run when restoring a
// cached state so a tampered or half-written blob is refused.
func (s *State) Validate() error {
	if s.CurrentIndex < 0 || s.CurrentIndex > len(s.Questions) {
		return fmt.Errorf("current index %d out of range [0, %d]", s.CurrentIndex, len(s.Questions))
	}
	if len(s.Answers) != s.CurrentIndex {
		return fmt.Errorf("answer count %d does not match current index %d", len(s.Answers), s.CurrentIndex)
	}

	seen := make(map[string]bool, len(s.Answers))
	sum := 0.0
	for i, a := range s.Answers {
		if seen[a.QuestionID] {
			return fmt.Errorf("duplicate answer for question %s", a.QuestionID)
		}
		seen[a.QuestionID] = true
		if i < len(s.Questions) && a.QuestionID != s.Questions[i].ID {
			return fmt.Errorf("answer %d is for question %s, expected %s", i, a.QuestionID, s.Questions[i].ID)
		}
		sum += a.Points
	}
	if math.Abs(sum-s.Score) > scoreEpsilon {
		return fmt.Errorf("score %v drifted from answer sum %v", s.Score, sum)
	}
	return nil
}

// Clone returns a deep copy safe to hand to callers.
func (s *State) Clone() *State {
	cp := *s
	cp.Questions = make([]question.Question, len(s.Questions))
	copy(cp.Questions, s.Questions)
	cp.Answers = make([]UserAnswer, len(s.Answers))
	copy(cp.Answers, s.Answers)
	return &cp
}
