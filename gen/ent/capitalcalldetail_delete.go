// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/capitalcalldetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/predicate"
)

// CapitalCallDetailDelete is the builder for deleting a CapitalCallDetail entity.
type CapitalCallDetailDelete struct {
	config
	hooks    []Hook
	mutation *CapitalCallDetailMutation
}

// Where appends a list predicates to the CapitalCallDetailDelete builder.
func (_d *CapitalCallDetailDelete) Where(ps ...predicate.CapitalCallDetail) *CapitalCallDetailDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CapitalCallDetailDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CapitalCallDetailDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CapitalCallDetailDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(capitalcalldetail.Table, sqlgraph.NewFieldSpec(capitalcalldetail.FieldID, field.TypeUUID))
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

// CapitalCallDetailDeleteOne is the builder for deleting a single CapitalCallDetail entity.
type CapitalCallDetailDeleteOne struct {
	_d *CapitalCallDetailDelete
}

// Where appends a list predicates to the CapitalCallDetailDelete builder.
func (_d *CapitalCallDetailDeleteOne) Where(ps ...predicate.CapitalCallDetail) *CapitalCallDetailDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CapitalCallDetailDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{capitalcalldetail.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CapitalCallDetailDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
