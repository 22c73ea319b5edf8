// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quizzine/engine/ent/cachedsession"
)

// CachedSessionCreate is the builder for creating a CachedSession entity.
type CachedSessionCreate struct {
	config
	mutation *CachedSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CachedSessionCreate) SetUserID(v string) *CachedSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *CachedSessionCreate) SetState(v map[string]interface{}) *CachedSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CachedSessionCreate) SetUpdatedAt(v time.Time) *CachedSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CachedSessionCreate) SetNillableUpdatedAt(v *time.Time) *CachedSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the CachedSessionMutation object of the builder.
func (_c *CachedSessionCreate) Mutation() *CachedSessionMutation {
	return _c.mutation
}

// Save creates the CachedSession in the database.
func (_c *CachedSessionCreate) Save(ctx context.Context) (*CachedSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CachedSessionCreate) SaveX(ctx context.Context) *CachedSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CachedSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CachedSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CachedSessionCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cachedsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CachedSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CachedSession.user_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "CachedSession.state"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CachedSession.updated_at"`)}
	}
	return nil
}

func (_c *CachedSessionCreate) sqlSave(ctx context.Context) (*CachedSession, error) {
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

func (_c *CachedSessionCreate) createSpec() (*CachedSession, *sqlgraph.CreateSpec) {
	var (
		_node = &CachedSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cachedsession.Table, sqlgraph.NewFieldSpec(cachedsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(cachedsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(cachedsession.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cachedsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CachedSessionCreateBulk is the builder for creating many CachedSession entities in bulk.
type CachedSessionCreateBulk struct {
	config
	err      error
	builders []*CachedSessionCreate
}

// Save creates the CachedSession entities in the database.
func (_c *CachedSessionCreateBulk) Save(ctx context.Context) ([]*CachedSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CachedSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CachedSessionMutation)
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
func (_c *CachedSessionCreateBulk) SaveX(ctx context.Context) []*CachedSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CachedSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CachedSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
