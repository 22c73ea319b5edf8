package question

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type fakeSource struct {
	questions []Question
	err       error
}

func (f *fakeSource) Questions(ctx context.Context, subThemeIDs []string, kind Kind) ([]Question, error) {
	return f.questions, f.err
}

func makeQuestion(id string, kind Kind, active bool) Question {
	return Question{
		ID:     id,
		Prompt: "prompt " + id,
		Kind:   kind,
		Active: active,
		Answers: []Answer{
			{ID: id + "-a", Label: "A", Text: "first", Correct: true},
			{ID: id + "-b", Label: "B", Text: "second"},
			{ID: id + "-c", Label: "C", Text: "third"},
		},
	}
}

func TestLoadFiltersInactiveAndKind(t *testing.T) {
	src := &fakeSource{questions: []Question{
		makeQuestion("q1", KindSingle, true),
		makeQuestion("q2", KindMulti, true),
		makeQuestion("q3", KindSingle, false),
	}}
	l := NewPoolLoader(src)

	got, err := l.Load(context.Background(), Filter{Kind: KindSingle})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "q1" {
		t.Fatalf("expected only q1, got %d questions", len(got))
	}
}

func TestLoadDeduplicates(t *testing.T) {
	src := &fakeSource{questions: []Question{
		makeQuestion("q1", KindSingle, true),
		makeQuestion("q1", KindSingle, true),
		makeQuestion("q2", KindSingle, true),
	}}
	l := NewPoolLoader(src)

	got, err := l.Load(context.Background(), Filter{Kind: KindAny})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 questions after dedup, got %d", len(got))
	}
}

func TestLoadEmptyPool(t *testing.T) {
	tests := []struct {
		name string
		src  *fakeSource
		f    Filter
	}{
		{"no questions", &fakeSource{}, Filter{}},
		{"all inactive", &fakeSource{questions: []Question{makeQuestion("q1", KindSingle, false)}}, Filter{}},
		{"kind mismatch", &fakeSource{questions: []Question{makeQuestion("q1", KindSingle, true)}}, Filter{Kind: KindMulti}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPoolLoader(tt.src).Load(context.Background(), tt.f)
			if !errors.Is(err, ErrEmptyPool) {
				t.Fatalf("expected ErrEmptyPool, got %v", err)
			}
		})
	}
}

func TestLoadAppliesLimit(t *testing.T) {
	var qs []Question
	for i := 0; i < 20; i++ {
		qs = append(qs, makeQuestion(fmt.Sprintf("q%d", i), KindSingle, true))
	}
	l := NewPoolLoader(&fakeSource{questions: qs})

	got, err := l.Load(context.Background(), Filter{Limit: 5})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(got))
	}
}

func TestLoadDoesNotMutateSourceAnswers(t *testing.T) {
	q := makeQuestion("q1", KindSingle, true)
	original := make([]Answer, len(q.Answers))
	copy(original, q.Answers)

	l := NewPoolLoader(&fakeSource{questions: []Question{q}})
	for i := 0; i < 50; i++ {
		if _, err := l.Load(context.Background(), Filter{}); err != nil {
			t.Fatalf("load: %v", err)
		}
	}

	for i := range original {
		if q.Answers[i] != original[i] {
			t.Fatalf("source answers mutated at %d: %+v", i, q.Answers[i])
		}
	}
}

// TestShuffleVisitsPermutations checks the shuffle is not a fixed order:
// over many loads of a 5-question pool, the first position should see
// every question at least once.
func TestShuffleVisitsPermutations(t *testing.T) {
	var qs []Question
	for i := 0; i < 5; i++ {
		qs = append(qs, makeQuestion(fmt.Sprintf("q%d", i), KindSingle, true))
	}
	l := NewPoolLoader(&fakeSource{questions: qs})

	firstSeen := make(map[string]int)
	const rounds = 500
	for i := 0; i < rounds; i++ {
		got, err := l.Load(context.Background(), Filter{})
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		firstSeen[got[0].ID]++
	}

	if len(firstSeen) != 5 {
		t.Fatalf("expected all 5 questions to appear first at least once, saw %d", len(firstSeen))
	}
	// With a uniform shuffle each question leads ~100 of 500 rounds.
	// A bound of 20 keeps the test stable while catching a biased shuffle.
	for id, n := range firstSeen {
		if n < 20 {
			t.Errorf("question %s led only %d/%d rounds, shuffle looks biased", id, n, rounds)
		}
	}
}

func TestLoadSourceError(t *testing.T) {
	srcErr := errors.New("network down")
	_, err := NewPoolLoader(&fakeSource{err: srcErr}).Load(context.Background(), Filter{})
	if !errors.Is(err, srcErr) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}
