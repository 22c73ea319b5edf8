package remote

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/quizzine/engine/internal/question"
)

func validDoc() map[string]any {
	return map[string]any{
		"id":              "q1",
		"prompt":          "What is the capital of France?",
		"kind":            "single",
		"difficulty":      2,
		"time_limit_secs": 30,
		"points":          1.0,
		"sub_theme": map[string]any{
			"id":   "st1",
			"name": "Capitals",
			"theme": map[string]any{
				"id":    "t1",
				"name":  "Geography",
				"color": "#3366ff",
			},
		},
		"answers": []any{
			map[string]any{"id": "a1", "label": "A", "text": "Paris", "correct": true},
			map[string]any{"id": "a2", "label": "B", "text": "Lyon"},
		},
		"explanation": "Paris has been the capital since 508.",
		"active":      true,
	}
}

func marshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestDecodeQuestionValid(t *testing.T) {
	q, err := decodeQuestion(marshal(t, validDoc()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if q.ID != "q1" || q.Kind != question.KindSingle {
		t.Errorf("unexpected question: %+v", q)
	}
	if q.SubTheme.Theme.Name != "Geography" {
		t.Errorf("theme = %q, want Geography", q.SubTheme.Theme.Name)
	}
	if q.TimeLimit.Seconds() != 30 {
		t.Errorf("time limit = %v, want 30s", q.TimeLimit)
	}
	if got := q.CorrectIDs(); len(got) != 1 || got[0] != "a1" {
		t.Errorf("correct ids = %v, want [a1]", got)
	}
}

func TestDecodeQuestionRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc map[string]any)
	}{
		{"missing id", func(d map[string]any) { delete(d, "id") }},
		{"missing prompt", func(d map[string]any) { delete(d, "prompt") }},
		{"unknown kind", func(d map[string]any) { d["kind"] = "essay" }},
		{"difficulty out of range", func(d map[string]any) { d["difficulty"] = 9 }},
		{"single answer only", func(d map[string]any) {
			d["answers"] = []any{map[string]any{"id": "a1", "text": "Paris"}}
		}},
		{"missing sub_theme", func(d map[string]any) { delete(d, "sub_theme") }},
		{"answer without id", func(d map[string]any) {
			d["answers"] = []any{
				map[string]any{"text": "Paris"},
				map[string]any{"id": "a2", "text": "Lyon"},
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDoc()
			tt.mutate(doc)

			_, err := decodeQuestion(marshal(t, doc))
			var invalid *ErrInvalidDocument
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidDocument, got %v", err)
			}
		})
	}
}

func TestDecodeQuestionInvalidJSON(t *testing.T) {
	_, err := decodeQuestion(json.RawMessage(`{not json`))
	var invalid *ErrInvalidDocument
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}
