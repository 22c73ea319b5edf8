package stats

import (
	"reflect"
	"testing"

	"github.com/quizzine/engine/internal/question"
	"github.com/quizzine/engine/internal/session"
)

func q(id, themeID, themeName, subID, subName string, correctText string) question.Question {
	return question.Question{
		ID:     id,
		Prompt: "prompt " + id,
		Kind:   question.KindSingle,
		SubTheme: question.SubTheme{
			ID:   subID,
			Name: subName,
			Theme: question.Theme{
				ID:    themeID,
				Name:  themeName,
				Color: "#123456",
			},
		},
		Answers: []question.Answer{
			{ID: id + "-good", Text: correctText, Correct: true},
			{ID: id + "-bad", Text: "wrong " + id},
		},
		Explanation: "because " + id,
	}
}

// Three questions over two themes; geography has two sub-themes.
func fixtures() []question.Question {
	return []question.Question{
		q("q1", "geo", "Geography", "cap", "Capitals", "Paris"),
		q("q2", "geo", "Geography", "riv", "Rivers", "Danube"),
		q("q3", "hist", "History", "ww", "World Wars", "1918"),
	}
}

func answer(id string, correct bool, points float64, selected ...string) session.UserAnswer {
	return session.UserAnswer{
		QuestionID:  id,
		SelectedIDs: selected,
		Correct:     correct,
		NoAnswer:    len(selected) == 0,
		Points:      points,
	}
}

func TestAggregateOverall(t *testing.T) {
	qs := fixtures()
	answers := []session.UserAnswer{
		answer("q1", true, 1, "q1-good"),
		answer("q2", false, -0.5),           // no answer
		answer("q3", false, -0.5, "q3-bad"), // wrong pick
	}

	r := Aggregate(qs, answers)

	if r.Overall.Answered != 3 || r.Overall.Correct != 1 {
		t.Errorf("overall = %+v", r.Overall)
	}
	if r.Overall.Score != 0 {
		t.Errorf("score = %v, want 0", r.Overall.Score)
	}
	// 1 of 3 correct.
	if r.Overall.SuccessRate < 33.3 || r.Overall.SuccessRate > 33.4 {
		t.Errorf("success rate = %v, want ~33.3", r.Overall.SuccessRate)
	}
}

func TestAggregateThemeRollups(t *testing.T) {
	qs := fixtures()
	answers := []session.UserAnswer{
		answer("q1", true, 1, "q1-good"),
		answer("q2", false, -0.5),
		answer("q3", true, 1, "q3-good"),
	}

	r := Aggregate(qs, answers)

	if len(r.Themes) != 2 {
		t.Fatalf("expected 2 themes, got %d", len(r.Themes))
	}

	geo := r.Themes[0]
	if geo.ID != "geo" || geo.Questions != 2 || geo.Correct != 1 || geo.SuccessRate != 50 {
		t.Errorf("geo theme = %+v", geo)
	}
	if geo.Points != 0.5 {
		t.Errorf("geo points = %v, want 0.5", geo.Points)
	}
	if len(geo.SubThemes) != 2 {
		t.Fatalf("expected 2 geo sub-themes, got %d", len(geo.SubThemes))
	}
	caps := geo.SubThemes[0]
	if caps.ID != "cap" || caps.Questions != 1 || caps.SuccessRate != 100 {
		t.Errorf("capitals sub-theme = %+v", caps)
	}

	hist := r.Themes[1]
	if hist.ID != "hist" || hist.Questions != 1 || hist.SuccessRate != 100 {
		t.Errorf("history theme = %+v", hist)
	}
}

func TestAggregateFailedQuestions(t *testing.T) {
	qs := fixtures()
	answers := []session.UserAnswer{
		answer("q1", false, -0.5, "q1-bad"),
		answer("q2", false, -0.5),
		answer("q3", true, 1, "q3-good"),
	}

	r := Aggregate(qs, answers)

	if len(r.Failed) != 2 {
		t.Fatalf("expected 2 failed questions, got %d", len(r.Failed))
	}

	first := r.Failed[0]
	if first.QuestionID != "q1" {
		t.Errorf("failed order not preserved: first = %s", first.QuestionID)
	}
	if first.ChosenText != "wrong q1" || first.CorrectText != "Paris" {
		t.Errorf("failed q1 texts = %+v", first)
	}
	if first.ThemeName != "Geography" || first.SubThemeName != "Capitals" {
		t.Errorf("failed q1 topics = %+v", first)
	}
	if first.Explanation != "because q1" {
		t.Errorf("failed q1 explanation = %q", first.Explanation)
	}

	second := r.Failed[1]
	if second.ChosenText != NoAnswerText {
		t.Errorf("no-answer chosen text = %q, want %q", second.ChosenText, NoAnswerText)
	}
}

func TestAggregatePartialIsNotCorrect(t *testing.T) {
	multi := question.Question{
		ID:   "m1",
		Kind: question.KindMulti,
		SubTheme: question.SubTheme{
			ID: "s", Name: "Sub", Theme: question.Theme{ID: "t", Name: "Theme"},
		},
		Answers: []question.Answer{
			{ID: "a", Text: "first", Correct: true},
			{ID: "b", Text: "second", Correct: true},
			{ID: "c", Text: "third"},
		},
	}
	answers := []session.UserAnswer{
		{QuestionID: "m1", SelectedIDs: []string{"a"}, Partial: true, Points: 0.5},
	}

	r := Aggregate([]question.Question{multi}, answers)

	if r.Overall.Correct != 0 || r.Overall.Partial != 1 {
		t.Errorf("overall = %+v, partial must not count as correct", r.Overall)
	}
	// A partial answer still lands on the review list.
	if len(r.Failed) != 1 {
		t.Fatalf("expected 1 failed entry, got %d", len(r.Failed))
	}
	if r.Failed[0].ChosenText != "first" || r.Failed[0].CorrectText != "first, second" {
		t.Errorf("failed entry = %+v", r.Failed[0])
	}
}

func TestAggregateEmptySession(t *testing.T) {
	r := Aggregate(fixtures(), nil)

	if r.Overall.Answered != 0 || r.Overall.SuccessRate != 0 || r.Overall.Score != 0 {
		t.Errorf("overall = %+v, want zeros", r.Overall)
	}
	if len(r.Themes) != 0 {
		t.Errorf("themes = %d, want none for an unanswered session", len(r.Themes))
	}
	if len(r.Failed) != 0 {
		t.Errorf("failed = %d, want none", len(r.Failed))
	}
}

func TestAggregateIdempotent(t *testing.T) {
	qs := fixtures()
	answers := []session.UserAnswer{
		answer("q1", true, 1, "q1-good"),
		answer("q2", false, -0.5),
	}

	first := Aggregate(qs, answers)
	second := Aggregate(qs, answers)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregation not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAggregatePartialPrefix(t *testing.T) {
	// Session ended after one answer of three questions.
	qs := fixtures()
	answers := []session.UserAnswer{answer("q1", true, 1, "q1-good")}

	r := Aggregate(qs, answers)

	if r.Overall.Answered != 1 || r.Overall.SuccessRate != 100 {
		t.Errorf("overall = %+v", r.Overall)
	}
	if len(r.Themes) != 1 || r.Themes[0].Questions != 1 {
		t.Errorf("themes = %+v, unanswered questions must not join groups", r.Themes)
	}
}
