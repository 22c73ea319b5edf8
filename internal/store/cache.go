package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quizzine/engine/ent"
	"github.com/quizzine/engine/ent/cachedsession"
)

// ErrNoSession indicates no cached session exists for the user.
var ErrNoSession = errors.New("no cached session")

// ErrCacheCorrupt indicates the cached session state could not be decoded.
// The corrupt row is discarded before this is returned, so a retry behaves
// like ErrNoSession.
var ErrCacheCorrupt = errors.New("cached session state is corrupt")

// SessionCacheRepo is the local write-through cache for in-flight session
// state, keyed by user id. One cached session per user.
type SessionCacheRepo interface {
	// Save upserts the serialized state for the user.
	Save(ctx context.Context, userID string, state any) error

	// Load decodes the cached state for the user into out.
	// Returns ErrNoSession when nothing is cached and ErrCacheCorrupt when
	// the cached row cannot be decoded (the row is removed first).
	Load(ctx context.Context, userID string, out any) error

	// Clear removes the cached session for the user, if any.
	Clear(ctx context.Context, userID string) error
}

// sessionCacheRepo implements SessionCacheRepo using the ent client.
type sessionCacheRepo struct {
	client *ent.Client
}

func (r *sessionCacheRepo) Save(ctx context.Context, userID string, state any) error {
	stateMap, err := toJSONMap(state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}

	n, err := r.client.CachedSession.Update().
		Where(cachedsession.UserID(userID)).
		SetState(stateMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update cached session: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.CachedSession.Create().
		SetUserID(userID).
		SetState(stateMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create cached session: %w", err)
	}
	return nil
}

func (r *sessionCacheRepo) Load(ctx context.Context, userID string, out any) error {
	row, err := r.client.CachedSession.Query().
		Where(cachedsession.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNoSession
		}
		return fmt.Errorf("query cached session: %w", err)
	}

	if err := fromJSONMap(row.State, out); err != nil {
		// A cache entry that cannot be decoded must never block startup:
		// drop it and report the session as gone.
		_ = r.Clear(ctx, userID)
		return fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
	}
	return nil
}

func (r *sessionCacheRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.client.CachedSession.Delete().
		Where(cachedsession.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear cached session: %w", err)
	}
	return nil
}

// toJSONMap converts a value to map[string]any for ent JSON storage.
func toJSONMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// fromJSONMap decodes an ent JSON field back into a typed value.
func fromJSONMap(m map[string]any, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
