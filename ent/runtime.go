// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/quizzine/engine/ent/cachedsession"
	"github.com/quizzine/engine/ent/outboxentry"
	"github.com/quizzine/engine/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cachedsessionFields := schema.CachedSession{}.Fields()
	_ = cachedsessionFields
	// cachedsessionDescUpdatedAt is the schema descriptor for updated_at field.
	cachedsessionDescUpdatedAt := cachedsessionFields[2].Descriptor()
	// cachedsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cachedsession.DefaultUpdatedAt = cachedsessionDescUpdatedAt.Default.(func() time.Time)
	// cachedsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cachedsession.UpdateDefaultUpdatedAt = cachedsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	outboxentryFields := schema.OutboxEntry{}.Fields()
	_ = outboxentryFields
	// outboxentryDescQuestionID is the schema descriptor for question_id field.
	outboxentryDescQuestionID := outboxentryFields[3].Descriptor()
	// outboxentry.DefaultQuestionID holds the default value on creation for the question_id field.
	outboxentry.DefaultQuestionID = outboxentryDescQuestionID.Default.(string)
	// outboxentryDescAttempts is the schema descriptor for attempts field.
	outboxentryDescAttempts := outboxentryFields[6].Descriptor()
	// outboxentry.DefaultAttempts holds the default value on creation for the attempts field.
	outboxentry.DefaultAttempts = outboxentryDescAttempts.Default.(int)
	// outboxentryDescCreatedAt is the schema descriptor for created_at field.
	outboxentryDescCreatedAt := outboxentryFields[8].Descriptor()
	// outboxentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboxentry.DefaultCreatedAt = outboxentryDescCreatedAt.Default.(func() time.Time)
}
