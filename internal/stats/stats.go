// Package stats turns a finished (or abandoned) session into the report
// shown on the results screen: overall totals, per-theme and per-sub-theme
// rollups, and the failed-question review list.
//
// Aggregate is deterministic: the same (questions, answers) pair always
// produces an identical report, so report surfaces may recompute freely.
package stats

import (
	"strings"

	"github.com/quizzine/engine/internal/question"
	"github.com/quizzine/engine/internal/session"
)

// NoAnswerText is the placeholder for the chosen-answer column when the
// user submitted nothing. Presentation layers localize it.
const NoAnswerText = "none"

// Overall holds the whole-session totals.
type Overall struct {
	Answered    int
	Correct     int
	Partial     int
	SuccessRate float64 // correct/answered × 100, 0 when answered == 0
	Score       float64
}

// SubThemeStat is the rollup for one sub-theme within a theme.
type SubThemeStat struct {
	ID          string
	Name        string
	Questions   int
	Correct     int
	SuccessRate float64
	Points      float64
}

// ThemeStat is the rollup for one theme, with its sub-themes nested.
type ThemeStat struct {
	ID          string
	Name        string
	Color       string
	Questions   int
	Correct     int
	SuccessRate float64
	Points      float64
	SubThemes   []SubThemeStat
}

// FailedQuestion carries enough context for a standalone review of one
// non-correct answer: prompt, topic names, what was chosen, what was right,
// and the explanation when the question has one.
type FailedQuestion struct {
	QuestionID   string
	Prompt       string
	ThemeName    string
	SubThemeName string
	ChosenText   string
	CorrectText  string
	Explanation  string
}

// Report is the aggregated result of one session.
type Report struct {
	Overall Overall
	Themes  []ThemeStat
	Failed  []FailedQuestion
}

// Aggregate builds a Report in a single pass over the answers. The answers
// list is a prefix of the question list (sessions ended early simply
// aggregate fewer entries); unanswered questions join no group. Themes and
// sub-themes appear in first-answered order.
func Aggregate(questions []question.Question, answers []session.UserAnswer) *Report {
	r := &Report{}

	byID := make(map[string]*question.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	themeIdx := make(map[string]int)
	subIdx := make(map[string]map[string]int) // theme id → sub id → index

	for _, a := range answers {
		q := byID[a.QuestionID]
		if q == nil {
			continue
		}

		r.Overall.Answered++
		if a.Correct {
			r.Overall.Correct++
		}
		if a.Partial {
			r.Overall.Partial++
		}
		r.Overall.Score += a.Points

		theme := q.SubTheme.Theme
		ti, ok := themeIdx[theme.ID]
		if !ok {
			ti = len(r.Themes)
			themeIdx[theme.ID] = ti
			subIdx[theme.ID] = make(map[string]int)
			r.Themes = append(r.Themes, ThemeStat{ID: theme.ID, Name: theme.Name, Color: theme.Color})
		}
		ts := &r.Themes[ti]
		ts.Questions++
		if a.Correct {
			ts.Correct++
		}
		ts.Points += a.Points

		si, ok := subIdx[theme.ID][q.SubTheme.ID]
		if !ok {
			si = len(ts.SubThemes)
			subIdx[theme.ID][q.SubTheme.ID] = si
			ts.SubThemes = append(ts.SubThemes, SubThemeStat{ID: q.SubTheme.ID, Name: q.SubTheme.Name})
		}
		ss := &ts.SubThemes[si]
		ss.Questions++
		if a.Correct {
			ss.Correct++
		}
		ss.Points += a.Points

		if !a.Correct {
			r.Failed = append(r.Failed, buildFailed(q, a))
		}
	}

	r.Overall.SuccessRate = rate(r.Overall.Correct, r.Overall.Answered)
	for i := range r.Themes {
		t := &r.Themes[i]
		t.SuccessRate = rate(t.Correct, t.Questions)
		for j := range t.SubThemes {
			s := &t.SubThemes[j]
			s.SuccessRate = rate(s.Correct, s.Questions)
		}
	}

	return r
}

// rate returns correct/total as a percentage, defined as 0 for empty groups.
func rate(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

func buildFailed(q *question.Question, a session.UserAnswer) FailedQuestion {
	f := FailedQuestion{
		QuestionID:   q.ID,
		Prompt:       q.Prompt,
		ThemeName:    q.SubTheme.Theme.Name,
		SubThemeName: q.SubTheme.Name,
		ChosenText:   NoAnswerText,
		Explanation:  q.Explanation,
	}

	if len(a.SelectedIDs) > 0 {
		var chosen []string
		for _, id := range a.SelectedIDs {
			if ans := q.AnswerByID(id); ans != nil {
				chosen = append(chosen, ans.Text)
			}
		}
		if len(chosen) > 0 {
			f.ChosenText = strings.Join(chosen, ", ")
		}
	}

	var correct []string
	for _, ans := range q.Answers {
		if ans.Correct {
			correct = append(correct, ans.Text)
		}
	}
	f.CorrectText = strings.Join(correct, ", ")

	return f
}
