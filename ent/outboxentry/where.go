// Code generated by ent, DO NOT EDIT.

package outboxentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quizzine/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldID, id))
}

// EntryID applies equality check predicate on the "entry_id" field. It's identical to EntryIDEQ.
func EntryID(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldEntryID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldQuestionID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldKind, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldAttempts, v))
}

// NextAttempt applies equality check predicate on the "next_attempt" field. It's identical to NextAttemptEQ.
func NextAttempt(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldNextAttempt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// EntryIDEQ applies the EQ predicate on the "entry_id" field.
func EntryIDEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldEntryID, v))
}

// EntryIDNEQ applies the NEQ predicate on the "entry_id" field.
func EntryIDNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldEntryID, v))
}

// EntryIDIn applies the In predicate on the "entry_id" field.
func EntryIDIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldEntryID, vs...))
}

// EntryIDNotIn applies the NotIn predicate on the "entry_id" field.
func EntryIDNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldEntryID, vs...))
}

// EntryIDGT applies the GT predicate on the "entry_id" field.
func EntryIDGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldEntryID, v))
}

// EntryIDGTE applies the GTE predicate on the "entry_id" field.
func EntryIDGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldEntryID, v))
}

// EntryIDLT applies the LT predicate on the "entry_id" field.
func EntryIDLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldEntryID, v))
}

// EntryIDLTE applies the LTE predicate on the "entry_id" field.
func EntryIDLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldEntryID, v))
}

// EntryIDContains applies the Contains predicate on the "entry_id" field.
func EntryIDContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldEntryID, v))
}

// EntryIDHasPrefix applies the HasPrefix predicate on the "entry_id" field.
func EntryIDHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldEntryID, v))
}

// EntryIDHasSuffix applies the HasSuffix predicate on the "entry_id" field.
func EntryIDHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldEntryID, v))
}

// EntryIDEqualFold applies the EqualFold predicate on the "entry_id" field.
func EntryIDEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldEntryID, v))
}

// EntryIDContainsFold applies the ContainsFold predicate on the "entry_id" field.
func EntryIDContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldEntryID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldUserID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldQuestionID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldKind, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldAttempts, v))
}

// NextAttemptEQ applies the EQ predicate on the "next_attempt" field.
func NextAttemptEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldNextAttempt, v))
}

// NextAttemptNEQ applies the NEQ predicate on the "next_attempt" field.
func NextAttemptNEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldNextAttempt, v))
}

// NextAttemptIn applies the In predicate on the "next_attempt" field.
func NextAttemptIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldNextAttempt, vs...))
}

// NextAttemptNotIn applies the NotIn predicate on the "next_attempt" field.
func NextAttemptNotIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldNextAttempt, vs...))
}

// NextAttemptGT applies the GT predicate on the "next_attempt" field.
func NextAttemptGT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldNextAttempt, v))
}

// NextAttemptGTE applies the GTE predicate on the "next_attempt" field.
func NextAttemptGTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldNextAttempt, v))
}

// NextAttemptLT applies the LT predicate on the "next_attempt" field.
func NextAttemptLT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldNextAttempt, v))
}

// NextAttemptLTE applies the LTE predicate on the "next_attempt" field.
func NextAttemptLTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldNextAttempt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OutboxEntry) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OutboxEntry) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OutboxEntry) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.NotPredicates(p))
}
