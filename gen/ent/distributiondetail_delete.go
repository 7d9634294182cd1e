// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/distributiondetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/predicate"
)

// DistributionDetailDelete is the builder for deleting a DistributionDetail entity.
type DistributionDetailDelete struct {
	config
	hooks    []Hook
	mutation *DistributionDetailMutation
}

// Where appends a list predicates to the DistributionDetailDelete builder.
func (_d *DistributionDetailDelete) Where(ps ...predicate.DistributionDetail) *DistributionDetailDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DistributionDetailDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DistributionDetailDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DistributionDetailDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(distributiondetail.Table, sqlgraph.NewFieldSpec(distributiondetail.FieldID, field.TypeUUID))
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

// DistributionDetailDeleteOne is the builder for deleting a single DistributionDetail entity.
type DistributionDetailDeleteOne struct {
	_d *DistributionDetailDelete
}

// Where appends a list predicates to the DistributionDetailDelete builder.
func (_d *DistributionDetailDeleteOne) Where(ps ...predicate.DistributionDetail) *DistributionDetailDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DistributionDetailDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{distributiondetail.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DistributionDetailDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
