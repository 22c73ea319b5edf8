package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutboxEntry is a remote write that failed and is awaiting replay.
// The unique (session_id, question_id, kind) index makes requeueing a
// replace, never a duplicate.
type OutboxEntry struct {
	ent.Schema
}

func (OutboxEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("entry_id").
			Unique().
			Comment("UUID of the entry"),
		field.String("user_id").
			Comment("Owner of the session the write belongs to"),
		field.String("session_id").
			Comment("Session the write belongs to"),
		field.String("question_id").
			Default("").
			Comment("Question id for answer writes, empty for summary writes"),
		field.String("kind").
			Comment("Payload kind: summary or answer"),
		field.JSON("payload", map[string]any{}).
			Comment("Remote write payload as JSON"),
		field.Int("attempts").
			Default(0).
			Comment("Replay attempts so far"),
		field.Time("next_attempt").
			Comment("Earliest time the entry is eligible for replay"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the write first failed; replay order is FIFO on this"),
	}
}

func (OutboxEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "question_id", "kind").Unique(),
		index.Fields("next_attempt"),
		index.Fields("created_at"),
	}
}
