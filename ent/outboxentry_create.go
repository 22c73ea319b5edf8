// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quizzine/engine/ent/outboxentry"
)

// OutboxEntryCreate is the builder for creating a OutboxEntry entity.
type OutboxEntryCreate struct {
	config
	mutation *OutboxEntryMutation
	hooks    []Hook
}

// SetEntryID sets the "entry_id" field.
func (_c *OutboxEntryCreate) SetEntryID(v string) *OutboxEntryCreate {
	_c.mutation.SetEntryID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *OutboxEntryCreate) SetUserID(v string) *OutboxEntryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *OutboxEntryCreate) SetSessionID(v string) *OutboxEntryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *OutboxEntryCreate) SetQuestionID(v string) *OutboxEntryCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableQuestionID(v *string) *OutboxEntryCreate {
	if v != nil {
		_c.SetQuestionID(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *OutboxEntryCreate) SetKind(v string) *OutboxEntryCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *OutboxEntryCreate) SetPayload(v map[string]interface{}) *OutboxEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *OutboxEntryCreate) SetAttempts(v int) *OutboxEntryCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableAttempts(v *int) *OutboxEntryCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetNextAttempt sets the "next_attempt" field.
func (_c *OutboxEntryCreate) SetNextAttempt(v time.Time) *OutboxEntryCreate {
	_c.mutation.SetNextAttempt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OutboxEntryCreate) SetCreatedAt(v time.Time) *OutboxEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableCreatedAt(v *time.Time) *OutboxEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the OutboxEntryMutation object of the builder.
func (_c *OutboxEntryCreate) Mutation() *OutboxEntryMutation {
	return _c.mutation
}

// Save creates the OutboxEntry in the database.
func (_c *OutboxEntryCreate) Save(ctx context.Context) (*OutboxEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutboxEntryCreate) SaveX(ctx context.Context) *OutboxEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutboxEntryCreate) defaults() {
	if _, ok := _c.mutation.QuestionID(); !ok {
		v := outboxentry.DefaultQuestionID
		_c.mutation.SetQuestionID(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := outboxentry.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := outboxentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutboxEntryCreate) check() error {
	if _, ok := _c.mutation.EntryID(); !ok {
		return &ValidationError{Name: "entry_id", err: errors.New(`ent: missing required field "OutboxEntry.entry_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "OutboxEntry.user_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "OutboxEntry.session_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "OutboxEntry.question_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "OutboxEntry.kind"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "OutboxEntry.payload"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "OutboxEntry.attempts"`)}
	}
	if _, ok := _c.mutation.NextAttempt(); !ok {
		return &ValidationError{Name: "next_attempt", err: errors.New(`ent: missing required field "OutboxEntry.next_attempt"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OutboxEntry.created_at"`)}
	}
	return nil
}

func (_c *OutboxEntryCreate) sqlSave(ctx context.Context) (*OutboxEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OutboxEntryCreate) createSpec() (*OutboxEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &OutboxEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outboxentry.Table, sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EntryID(); ok {
		_spec.SetField(outboxentry.FieldEntryID, field.TypeString, value)
		_node.EntryID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(outboxentry.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(outboxentry.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(outboxentry.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(outboxentry.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(outboxentry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(outboxentry.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.NextAttempt(); ok {
		_spec.SetField(outboxentry.FieldNextAttempt, field.TypeTime, value)
		_node.NextAttempt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(outboxentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OutboxEntryCreateBulk is the builder for creating many OutboxEntry entities in bulk.
type OutboxEntryCreateBulk struct {
	config
	err      error
	builders []*OutboxEntryCreate
}

// Save creates the OutboxEntry entities in the database.
func (_c *OutboxEntryCreateBulk) Save(ctx context.Context) ([]*OutboxEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutboxEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutboxEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OutboxEntryCreateBulk) SaveX(ctx context.Context) []*OutboxEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
