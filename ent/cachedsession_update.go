// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quizzine/engine/ent/cachedsession"
	"github.com/quizzine/engine/ent/predicate"
)

// CachedSessionUpdate is the builder for updating CachedSession entities.
type CachedSessionUpdate struct {
	config
	hooks    []Hook
	mutation *CachedSessionMutation
}

// Where appends a list predicates to the CachedSessionUpdate builder.
func (_u *CachedSessionUpdate) Where(ps ...predicate.CachedSession) *CachedSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CachedSessionUpdate) SetUserID(v string) *CachedSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CachedSessionUpdate) SetNillableUserID(v *string) *CachedSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CachedSessionUpdate) SetState(v map[string]interface{}) *CachedSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CachedSessionUpdate) SetUpdatedAt(v time.Time) *CachedSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CachedSessionMutation object of the builder.
func (_u *CachedSessionUpdate) Mutation() *CachedSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CachedSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CachedSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CachedSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CachedSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CachedSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cachedsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CachedSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(cachedsession.Table, cachedsession.Columns, sqlgraph.NewFieldSpec(cachedsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(cachedsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(cachedsession.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cachedsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cachedsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CachedSessionUpdateOne is the builder for updating a single CachedSession entity.
type CachedSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CachedSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *CachedSessionUpdateOne) SetUserID(v string) *CachedSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CachedSessionUpdateOne) SetNillableUserID(v *string) *CachedSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CachedSessionUpdateOne) SetState(v map[string]interface{}) *CachedSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CachedSessionUpdateOne) SetUpdatedAt(v time.Time) *CachedSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CachedSessionMutation object of the builder.
func (_u *CachedSessionUpdateOne) Mutation() *CachedSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CachedSessionUpdate builder.
func (_u *CachedSessionUpdateOne) Where(ps ...predicate.CachedSession) *CachedSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CachedSessionUpdateOne) Select(field string, fields ...string) *CachedSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CachedSession entity.
func (_u *CachedSessionUpdateOne) Save(ctx context.Context) (*CachedSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CachedSessionUpdateOne) SaveX(ctx context.Context) *CachedSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CachedSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CachedSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CachedSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cachedsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CachedSessionUpdateOne) sqlSave(ctx context.Context) (_node *CachedSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(cachedsession.Table, cachedsession.Columns, sqlgraph.NewFieldSpec(cachedsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CachedSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cachedsession.FieldID)
		for _, f := range fields {
			if !cachedsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cachedsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(cachedsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(cachedsession.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cachedsession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CachedSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cachedsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
