package question

import "time"

// Kind discriminates how a question is answered and scored.
type Kind string

const (
	// KindSingle questions have exactly one correct answer.
	KindSingle Kind = "single"
	// KindMulti questions have one or more correct answers.
	KindMulti Kind = "multi"
	// KindAny is only valid as a loader filter and matches both kinds.
	KindAny Kind = "any"
)

// Theme is the top level of the two-level topic hierarchy.
type Theme struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// SubTheme is the second level of the topic hierarchy. Questions belong
// to exactly one sub-theme.
type SubTheme struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Theme Theme  `json:"theme"`
}

// Answer is one selectable option of a question.
type Answer struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question is immutable once loaded into a session: the lifecycle
// controller snapshots the loaded list and never mutates it.
type Question struct {
	ID          string        `json:"id"`
	Prompt      string        `json:"prompt"`
	Kind        Kind          `json:"kind"`
	Difficulty  int           `json:"difficulty"` // 1-5
	TimeLimit   time.Duration `json:"time_limit"`
	Points      float64       `json:"points"`
	SubTheme    SubTheme      `json:"sub_theme"`
	Answers     []Answer      `json:"answers"`
	Explanation string        `json:"explanation,omitempty"`
	Active      bool          `json:"active"`
}

// CorrectIDs returns the ids of all correct answers, in answer order.
func (q Question) CorrectIDs() []string {
	var ids []string
	for _, a := range q.Answers {
		if a.Correct {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// AnswerByID returns the answer with the given id, or nil.
func (q Question) AnswerByID(id string) *Answer {
	for i := range q.Answers {
		if q.Answers[i].ID == id {
			return &q.Answers[i]
		}
	}
	return nil
}
