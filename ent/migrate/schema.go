// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CachedSessionsColumns holds the columns for the "cached_sessions" table.
	CachedSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CachedSessionsTable holds the schema information for the "cached_sessions" table.
	CachedSessionsTable = &schema.Table{
		Name:       "cached_sessions",
		Columns:    CachedSessionsColumns,
		PrimaryKey: []*schema.Column{CachedSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cachedsession_updated_at",
				Unique:  false,
				Columns: []*schema.Column{CachedSessionsColumns[3]},
			},
		},
	}
	// OutboxEntriesColumns holds the columns for the "outbox_entries" table.
	OutboxEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString, Default: ""},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "next_attempt", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OutboxEntriesTable holds the schema information for the "outbox_entries" table.
	OutboxEntriesTable = &schema.Table{
		Name:       "outbox_entries",
		Columns:    OutboxEntriesColumns,
		PrimaryKey: []*schema.Column{OutboxEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outboxentry_session_id_question_id_kind",
				Unique:  true,
				Columns: []*schema.Column{OutboxEntriesColumns[3], OutboxEntriesColumns[4], OutboxEntriesColumns[5]},
			},
			{
				Name:    "outboxentry_next_attempt",
				Unique:  false,
				Columns: []*schema.Column{OutboxEntriesColumns[8]},
			},
			{
				Name:    "outboxentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{OutboxEntriesColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CachedSessionsTable,
		OutboxEntriesTable,
	}
)

func init() {
}
