// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/document"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/predicate"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/processinglog"
)

// ProcessingLogUpdate is the builder for updating ProcessingLog entities.
type ProcessingLogUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingLogMutation
}

// Where appends a list predicates to the ProcessingLogUpdate builder.
func (_u *ProcessingLogUpdate) Where(ps ...predicate.ProcessingLog) *ProcessingLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingLogUpdate) SetDocumentID(v uuid.UUID) *ProcessingLogUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableDocumentID(v *uuid.UUID) *ProcessingLogUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetLogLevel sets the "log_level" field.
func (_u *ProcessingLogUpdate) SetLogLevel(v string) *ProcessingLogUpdate {
	_u.mutation.SetLogLevel(v)
	return _u
}

// SetNillableLogLevel sets the "log_level" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableLogLevel(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetLogLevel(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ProcessingLogUpdate) SetMessage(v string) *ProcessingLogUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableMessage(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *ProcessingLogUpdate) SetStep(v string) *ProcessingLogUpdate {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableStep(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// ClearStep clears the value of the "step" field.
func (_u *ProcessingLogUpdate) ClearStep() *ProcessingLogUpdate {
	_u.mutation.ClearStep()
	return _u
}

// SetProcessingTime sets the "processing_time" field.
func (_u *ProcessingLogUpdate) SetProcessingTime(v float64) *ProcessingLogUpdate {
	_u.mutation.ResetProcessingTime()
	_u.mutation.SetProcessingTime(v)
	return _u
}

// SetNillableProcessingTime sets the "processing_time" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableProcessingTime(v *float64) *ProcessingLogUpdate {
	if v != nil {
		_u.SetProcessingTime(*v)
	}
	return _u
}

// AddProcessingTime adds value to the "processing_time" field.
func (_u *ProcessingLogUpdate) AddProcessingTime(v float64) *ProcessingLogUpdate {
	_u.mutation.AddProcessingTime(v)
	return _u
}

// ClearProcessingTime clears the value of the "processing_time" field.
func (_u *ProcessingLogUpdate) ClearProcessingTime() *ProcessingLogUpdate {
	_u.mutation.ClearProcessingTime()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ProcessingLogUpdate) SetDocument(v *Document) *ProcessingLogUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_u *ProcessingLogUpdate) Mutation() *ProcessingLogMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ProcessingLogUpdate) ClearDocument() *ProcessingLogUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingLogUpdate) check() error {
	if v, ok := _u.mutation.LogLevel(); ok {
		if err := processinglog.LogLevelValidator(v); err != nil {
			return &ValidationError{Name: "log_level", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.log_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := processinglog.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.message": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingLog.document"`)
	}
	return nil
}

func (_u *ProcessingLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processinglog.Table, processinglog.Columns, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LogLevel(); ok {
		_spec.SetField(processinglog.FieldLogLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(processinglog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(processinglog.FieldStep, field.TypeString, value)
	}
	if _u.mutation.StepCleared() {
		_spec.ClearField(processinglog.FieldStep, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTime(); ok {
		_spec.SetField(processinglog.FieldProcessingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTime(); ok {
		_spec.AddField(processinglog.FieldProcessingTime, field.TypeFloat64, value)
	}
	if _u.mutation.ProcessingTimeCleared() {
		_spec.ClearField(processinglog.FieldProcessingTime, field.TypeFloat64)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.DocumentTable,
			Columns: []string{processinglog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.DocumentTable,
			Columns: []string{processinglog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingLogUpdateOne is the builder for updating a single ProcessingLog entity.
type ProcessingLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingLogMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingLogUpdateOne) SetDocumentID(v uuid.UUID) *ProcessingLogUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetLogLevel sets the "log_level" field.
func (_u *ProcessingLogUpdateOne) SetLogLevel(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetLogLevel(v)
	return _u
}

// SetNillableLogLevel sets the "log_level" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableLogLevel(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetLogLevel(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ProcessingLogUpdateOne) SetMessage(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableMessage(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *ProcessingLogUpdateOne) SetStep(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableStep(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// ClearStep clears the value of the "step" field.
func (_u *ProcessingLogUpdateOne) ClearStep() *ProcessingLogUpdateOne {
	_u.mutation.ClearStep()
	return _u
}

// SetProcessingTime sets the "processing_time" field.
func (_u *ProcessingLogUpdateOne) SetProcessingTime(v float64) *ProcessingLogUpdateOne {
	_u.mutation.ResetProcessingTime()
	_u.mutation.SetProcessingTime(v)
	return _u
}

// SetNillableProcessingTime sets the "processing_time" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableProcessingTime(v *float64) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetProcessingTime(*v)
	}
	return _u
}

// AddProcessingTime adds value to the "processing_time" field.
func (_u *ProcessingLogUpdateOne) AddProcessingTime(v float64) *ProcessingLogUpdateOne {
	_u.mutation.AddProcessingTime(v)
	return _u
}

// ClearProcessingTime clears the value of the "processing_time" field.
func (_u *ProcessingLogUpdateOne) ClearProcessingTime() *ProcessingLogUpdateOne {
	_u.mutation.ClearProcessingTime()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ProcessingLogUpdateOne) SetDocument(v *Document) *ProcessingLogUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_u *ProcessingLogUpdateOne) Mutation() *ProcessingLogMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ProcessingLogUpdateOne) ClearDocument() *ProcessingLogUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ProcessingLogUpdate builder.
func (_u *ProcessingLogUpdateOne) Where(ps ...predicate.ProcessingLog) *ProcessingLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingLogUpdateOne) Select(field string, fields ...string) *ProcessingLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingLog entity.
func (_u *ProcessingLogUpdateOne) Save(ctx context.Context) (*ProcessingLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLogUpdateOne) SaveX(ctx context.Context) *ProcessingLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingLogUpdateOne) check() error {
	if v, ok := _u.mutation.LogLevel(); ok {
		if err := processinglog.LogLevelValidator(v); err != nil {
			return &ValidationError{Name: "log_level", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.log_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := processinglog.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.message": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingLog.document"`)
	}
	return nil
}

func (_u *ProcessingLogUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processinglog.Table, processinglog.Columns, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processinglog.FieldID)
		for _, f := range fields {
			if !processinglog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processinglog.FieldID {
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
	if value, ok := _u.mutation.LogLevel(); ok {
		_spec.SetField(processinglog.FieldLogLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(processinglog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(processinglog.FieldStep, field.TypeString, value)
	}
	if _u.mutation.StepCleared() {
		_spec.ClearField(processinglog.FieldStep, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTime(); ok {
		_spec.SetField(processinglog.FieldProcessingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTime(); ok {
		_spec.AddField(processinglog.FieldProcessingTime, field.TypeFloat64, value)
	}
	if _u.mutation.ProcessingTimeCleared() {
		_spec.ClearField(processinglog.FieldProcessingTime, field.TypeFloat64)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.DocumentTable,
			Columns: []string{processinglog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.DocumentTable,
			Columns: []string{processinglog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessingLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
