package session

import (
	"testing"
	"time"

	"github.com/quizzine/engine/internal/scoring"
)

func validState() *State {
	qs := testQuestions()
	return &State{
		SessionID:    "s1",
		UserID:       "u1",
		Questions:    qs,
		CurrentIndex: 2,
		Answers: []UserAnswer{
			{QuestionID: "q1", SelectedIDs: []string{"q1-a"}, Correct: true, Points: 1},
			{QuestionID: "q2", NoAnswer: true, Points: -0.5},
		},
		Score:     0.5,
		Rubric:    scoring.DefaultRubric(),
		Status:    StatusInProgress,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestValidateAccepts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *State)
	}{
		{"mid-session", func(s *State) {}},
		{"fresh session", func(s *State) {
			s.CurrentIndex = 0
			s.Answers = nil
			s.Score = 0
		}},
		{"fully answered", func(s *State) {
			s.CurrentIndex = 3
			s.Answers = append(s.Answers, UserAnswer{QuestionID: "q3", Points: -0.5})
			s.Score = 0
		}},
		{"fractional points", func(s *State) {
			s.Answers[1] = UserAnswer{QuestionID: "q2", Partial: true, Points: 0.5}
			s.Score = 1.5
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validState()
			tt.mutate(s)
			if err := s.Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *State)
	}{
		{"negative index", func(s *State) { s.CurrentIndex = -1 }},
		{"index beyond questions", func(s *State) { s.CurrentIndex = 4 }},
		{"missing answer", func(s *State) { s.Answers = s.Answers[:1] }},
		{"duplicate answer", func(s *State) {
			s.Answers[1] = s.Answers[0]
		}},
		{"answer order mismatch", func(s *State) {
			s.Answers[0], s.Answers[1] = s.Answers[1], s.Answers[0]
		}},
		{"score drift", func(s *State) { s.Score = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validState()
			tt.mutate(s)
			if err := s.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := validState()
	cp := s.Clone()

	cp.Answers[0].Points = 99
	cp.Questions[0].Prompt = "changed"
	cp.Score = 99

	if s.Answers[0].Points == 99 || s.Questions[0].Prompt == "changed" || s.Score == 99 {
		t.Error("mutating the clone leaked into the original")
	}
}

func TestCurrentQuestion(t *testing.T) {
	s := validState()
	if q := s.CurrentQuestion(); q == nil || q.ID != "q3" {
		t.Fatalf("current question = %v, want q3", q)
	}

	s.CurrentIndex = len(s.Questions)
	s.Answers = append(s.Answers, UserAnswer{QuestionID: "q3"})
	if q := s.CurrentQuestion(); q != nil {
		t.Fatalf("current question = %v, want nil when fully answered", q)
	}
}
