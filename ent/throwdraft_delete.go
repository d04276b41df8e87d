// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/molkkylog/ent/predicate"
	"github.com/abhisek/molkkylog/ent/throwdraft"
)

// ThrowDraftDelete is the builder for deleting a ThrowDraft entity.
type ThrowDraftDelete struct {
	config
	hooks    []Hook
	mutation *ThrowDraftMutation
}

// Where appends a list predicates to the ThrowDraftDelete builder.
func (_d *ThrowDraftDelete) Where(ps ...predicate.ThrowDraft) *ThrowDraftDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ThrowDraftDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ThrowDraftDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ThrowDraftDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(throwdraft.Table, sqlgraph.NewFieldSpec(throwdraft.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ThrowDraftDeleteOne is the builder for deleting a single ThrowDraft entity.
type ThrowDraftDeleteOne struct {
	_d *ThrowDraftDelete
}

// Where appends a list predicates to the ThrowDraftDelete builder.
func (_d *ThrowDraftDeleteOne) Where(ps ...predicate.ThrowDraft) *ThrowDraftDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ThrowDraftDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{throwdraft.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ThrowDraftDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
