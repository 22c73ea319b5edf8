package question

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrEmptyPool indicates no active question matched the requested filter.
// A session must not be started from an empty pool.
var ErrEmptyPool = errors.New("no questions match the requested filter")

// Filter selects the question pool for a session.
type Filter struct {
	// SubThemeIDs restricts the pool to these sub-themes.
	SubThemeIDs []string

	// Kind restricts the pool to a question kind. KindAny matches both.
	Kind Kind

	// Limit caps the pool size after shuffling. 0 means no cap.
	Limit int
}

// Source provides the raw question pool, typically backed by the remote
// store's questions collection.
type Source interface {
	Questions(ctx context.Context, subThemeIDs []string, kind Kind) ([]Question, error)
}

// Loader builds the randomized question list a session is created from.
type Loader interface {
	Load(ctx context.Context, f Filter) ([]Question, error)
}

// PoolLoader loads questions from a Source, deduplicates them, shuffles
// the pool and each question's answers, and applies the count limit.
type PoolLoader struct {
	src Source
}

// NewPoolLoader creates a PoolLoader over the given source.
func NewPoolLoader(src Source) *PoolLoader {
	return &PoolLoader{src: src}
}

// Load returns a randomized, deduplicated list of active questions matching
// the filter. Returns ErrEmptyPool when nothing matches. The shuffle is
// deliberately unseeded: order is not reproducible across calls.
func (l *PoolLoader) Load(ctx context.Context, f Filter) ([]Question, error) {
	raw, err := l.src.Questions(ctx, f.SubThemeIDs, f.Kind)
	if err != nil {
		return nil, fmt.Errorf("fetch question pool: %w", err)
	}

	seen := make(map[string]bool, len(raw))
	pool := make([]Question, 0, len(raw))
	for _, q := range raw {
		if !q.Active || seen[q.ID] {
			continue
		}
		if f.Kind != KindAny && f.Kind != "" && q.Kind != f.Kind {
			continue
		}
		seen[q.ID] = true
		pool = append(pool, q)
	}

	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if f.Limit > 0 && len(pool) > f.Limit {
		pool = pool[:f.Limit]
	}

	// Shuffle answers on a copy so the source slices stay untouched.
	for i := range pool {
		answers := make([]Answer, len(pool[i].Answers))
		copy(answers, pool[i].Answers)
		rand.Shuffle(len(answers), func(a, b int) {
			answers[a], answers[b] = answers[b], answers[a]
		})
		pool[i].Answers = answers
	}

	return pool, nil
}
