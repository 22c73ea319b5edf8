// Package scoring maps a question and a selection to points under a
// configurable rubric. Score is a pure function: given the same inputs it
// always produces the same result and touches nothing else.
package scoring

import "github.com/quizzine/engine/internal/question"

// Rubric is the four-weight scoring policy applied to every answer in a
// session. Weights are signed and may be fractional.
type Rubric struct {
	Correct   float64 `json:"correct"`
	Incorrect float64 `json:"incorrect"`
	NoAnswer  float64 `json:"no_answer"`
	Partial   float64 `json:"partial"`
}

// DefaultRubric returns the standard training rubric.
func DefaultRubric() Rubric {
	return Rubric{Correct: 1, Incorrect: -0.5, NoAnswer: -0.5, Partial: 0.5}
}

// Result is the outcome of scoring one answer. Correct and Partial are
// mutually exclusive; both are false for incorrect and no-answer outcomes.
type Result struct {
	Correct  bool
	Partial  bool
	NoAnswer bool
	Points   float64
}

// Score evaluates a selection against a question under the rubric.
//
// Single-choice: correct iff exactly one answer is selected and it is the
// correct one. Multi-choice: selecting exactly the correct set is correct;
// a non-empty strict subset of the correct set earns partial credit; any
// wrong pick makes the whole selection incorrect. An empty selection is
// always a no-answer.
func Score(q question.Question, selectedIDs []string, r Rubric) Result {
	if len(selectedIDs) == 0 {
		return Result{NoAnswer: true, Points: r.NoAnswer}
	}

	correct := make(map[string]bool)
	for _, id := range q.CorrectIDs() {
		correct[id] = true
	}

	switch q.Kind {
	case question.KindSingle:
		if len(selectedIDs) == 1 && correct[selectedIDs[0]] {
			return Result{Correct: true, Points: r.Correct}
		}
		return Result{Points: r.Incorrect}

	case question.KindMulti:
		hits := make(map[string]bool)
		for _, id := range selectedIDs {
			if !correct[id] {
				return Result{Points: r.Incorrect}
			}
			hits[id] = true
		}
		if len(hits) == len(correct) {
			return Result{Correct: true, Points: r.Correct}
		}
		return Result{Partial: true, Points: r.Partial}
	}

	return Result{Points: r.Incorrect}
}
