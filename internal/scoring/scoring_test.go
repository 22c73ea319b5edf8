package scoring

import (
	"testing"

	"github.com/quizzine/engine/internal/question"
)

func multiQuestion() question.Question {
	// Correct set is {A, C}.
	return question.Question{
		ID:   "m1",
		Kind: question.KindMulti,
		Answers: []question.Answer{
			{ID: "A", Correct: true},
			{ID: "B"},
			{ID: "C", Correct: true},
			{ID: "D"},
		},
	}
}

func singleQuestion() question.Question {
	return question.Question{
		ID:   "s1",
		Kind: question.KindSingle,
		Answers: []question.Answer{
			{ID: "A", Correct: true},
			{ID: "B"},
			{ID: "C"},
		},
	}
}

func TestScoreSingleChoice(t *testing.T) {
	r := DefaultRubric()
	q := singleQuestion()

	tests := []struct {
		name     string
		selected []string
		want     Result
	}{
		{"correct pick", []string{"A"}, Result{Correct: true, Points: 1}},
		{"wrong pick", []string{"B"}, Result{Points: -0.5}},
		{"no answer", nil, Result{NoAnswer: true, Points: -0.5}},
		{"two picks on single-choice", []string{"A", "B"}, Result{Points: -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(q, tt.selected, r)
			if got != tt.want {
				t.Errorf("Score(%v) = %+v, want %+v", tt.selected, got, tt.want)
			}
		})
	}
}

func TestScoreMultiChoice(t *testing.T) {
	r := DefaultRubric()
	q := multiQuestion()

	tests := []struct {
		name     string
		selected []string
		want     Result
	}{
		{"exact correct set", []string{"A", "C"}, Result{Correct: true, Points: 1}},
		{"exact set different order", []string{"C", "A"}, Result{Correct: true, Points: 1}},
		{"strict subset", []string{"A"}, Result{Partial: true, Points: 0.5}},
		{"subset with wrong id", []string{"A", "B"}, Result{Points: -0.5}},
		{"all answers selected", []string{"A", "B", "C", "D"}, Result{Points: -0.5}},
		{"all correct plus one wrong", []string{"A", "C", "B"}, Result{Points: -0.5}},
		{"empty selection", []string{}, Result{NoAnswer: true, Points: -0.5}},
		{"duplicate ids are not extra hits", []string{"A", "A"}, Result{Partial: true, Points: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(q, tt.selected, r)
			if got != tt.want {
				t.Errorf("Score(%v) = %+v, want %+v", tt.selected, got, tt.want)
			}
		})
	}
}

func TestScoreCustomRubric(t *testing.T) {
	r := Rubric{Correct: 3, Incorrect: -1, NoAnswer: 0, Partial: 1.5}
	q := multiQuestion()

	if got := Score(q, []string{"C"}, r); got.Points != 1.5 || !got.Partial {
		t.Errorf("partial under custom rubric = %+v", got)
	}
	if got := Score(q, nil, r); got.Points != 0 || !got.NoAnswer {
		t.Errorf("no-answer under custom rubric = %+v", got)
	}
}

func TestScoreIsPure(t *testing.T) {
	q := multiQuestion()
	sel := []string{"A", "C"}
	r := DefaultRubric()

	first := Score(q, sel, r)
	for i := 0; i < 10; i++ {
		if got := Score(q, sel, r); got != first {
			t.Fatalf("Score is not deterministic: %+v vs %+v", got, first)
		}
	}
	if sel[0] != "A" || sel[1] != "C" {
		t.Fatal("Score mutated the selection slice")
	}
}
