package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CachedSession is the locally cached in-flight session for one user.
// At most one row exists per user; it is the source of truth for resume
// and is cleared when the session terminates.
type CachedSession struct {
	ent.Schema
}

func (CachedSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			Comment("Owner of the cached session"),
		field.JSON("state", map[string]any{}).
			Comment("Serialized session state as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (CachedSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
