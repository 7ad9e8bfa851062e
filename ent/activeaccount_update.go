// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/parlolabs/parlo/ent/activeaccount"
	"github.com/parlolabs/parlo/ent/predicate"
)

// ActiveAccountUpdate is the builder for updating ActiveAccount entities.
type ActiveAccountUpdate struct {
	config
	hooks    []Hook
	mutation *ActiveAccountMutation
}

// Where appends a list predicates to the ActiveAccountUpdate builder.
func (_u *ActiveAccountUpdate) Where(ps ...predicate.ActiveAccount) *ActiveAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUsername sets the "username" field.
func (_u *ActiveAccountUpdate) SetUsername(v string) *ActiveAccountUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ActiveAccountUpdate) SetNillableUsername(v *string) *ActiveAccountUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// Mutation returns the ActiveAccountMutation object of the builder.
func (_u *ActiveAccountUpdate) Mutation() *ActiveAccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActiveAccountUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActiveAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActiveAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActiveAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActiveAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(activeaccount.Table, activeaccount.Columns, sqlgraph.NewFieldSpec(activeaccount.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(activeaccount.FieldUsername, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activeaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActiveAccountUpdateOne is the builder for updating a single ActiveAccount entity.
type ActiveAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActiveAccountMutation
}

// SetUsername sets the "username" field.
func (_u *ActiveAccountUpdateOne) SetUsername(v string) *ActiveAccountUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ActiveAccountUpdateOne) SetNillableUsername(v *string) *ActiveAccountUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// Mutation returns the ActiveAccountMutation object of the builder.
func (_u *ActiveAccountUpdateOne) Mutation() *ActiveAccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActiveAccountUpdate builder.
func (_u *ActiveAccountUpdateOne) Where(ps ...predicate.ActiveAccount) *ActiveAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActiveAccountUpdateOne) Select(field string, fields ...string) *ActiveAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActiveAccount entity.
func (_u *ActiveAccountUpdateOne) Save(ctx context.Context) (*ActiveAccount, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActiveAccountUpdateOne) SaveX(ctx context.Context) *ActiveAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActiveAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActiveAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActiveAccountUpdateOne) sqlSave(ctx context.Context) (_node *ActiveAccount, err error) {
	_spec := sqlgraph.NewUpdateSpec(activeaccount.Table, activeaccount.Columns, sqlgraph.NewFieldSpec(activeaccount.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActiveAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activeaccount.FieldID)
		for _, f := range fields {
			if !activeaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activeaccount.FieldID {
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
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(activeaccount.FieldUsername, field.TypeString, value)
	}
	_node = &ActiveAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activeaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
