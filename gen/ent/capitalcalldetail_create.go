// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/capitalcalldetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/document"
)

// CapitalCallDetailCreate is the builder for creating a CapitalCallDetail entity.
type CapitalCallDetailCreate struct {
	config
	mutation *CapitalCallDetailMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *CapitalCallDetailCreate) SetDocumentID(v uuid.UUID) *CapitalCallDetailCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetCallDate sets the "call_date" field.
func (_c *CapitalCallDetailCreate) SetCallDate(v time.Time) *CapitalCallDetailCreate {
	_c.mutation.SetCallDate(v)
	return _c
}

// SetNillableCallDate sets the "call_date" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableCallDate(v *time.Time) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetCallDate(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *CapitalCallDetailCreate) SetDueDate(v time.Time) *CapitalCallDetailCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableDueDate(v *time.Time) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetCallAmount sets the "call_amount" field.
func (_c *CapitalCallDetailCreate) SetCallAmount(v float64) *CapitalCallDetailCreate {
	_c.mutation.SetCallAmount(v)
	return _c
}

// SetNillableCallAmount sets the "call_amount" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableCallAmount(v *float64) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetCallAmount(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *CapitalCallDetailCreate) SetCurrency(v string) *CapitalCallDetailCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableCurrency(v *string) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetCallPercentage sets the "call_percentage" field.
func (_c *CapitalCallDetailCreate) SetCallPercentage(v float64) *CapitalCallDetailCreate {
	_c.mutation.SetCallPercentage(v)
	return _c
}

// SetNillableCallPercentage sets the "call_percentage" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableCallPercentage(v *float64) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetCallPercentage(*v)
	}
	return _c
}

// SetFundName sets the "fund_name" field.
func (_c *CapitalCallDetailCreate) SetFundName(v string) *CapitalCallDetailCreate {
	_c.mutation.SetFundName(v)
	return _c
}

// SetNillableFundName sets the "fund_name" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableFundName(v *string) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetFundName(*v)
	}
	return _c
}

// SetFundSize sets the "fund_size" field.
func (_c *CapitalCallDetailCreate) SetFundSize(v float64) *CapitalCallDetailCreate {
	_c.mutation.SetFundSize(v)
	return _c
}

// SetNillableFundSize sets the "fund_size" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableFundSize(v *float64) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetFundSize(*v)
	}
	return _c
}

// SetLpName sets the "lp_name" field.
func (_c *CapitalCallDetailCreate) SetLpName(v string) *CapitalCallDetailCreate {
	_c.mutation.SetLpName(v)
	return _c
}

// SetNillableLpName sets the "lp_name" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableLpName(v *string) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetLpName(*v)
	}
	return _c
}

// SetLpCommitment sets the "lp_commitment" field.
func (_c *CapitalCallDetailCreate) SetLpCommitment(v float64) *CapitalCallDetailCreate {
	_c.mutation.SetLpCommitment(v)
	return _c
}

// SetNillableLpCommitment sets the "lp_commitment" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableLpCommitment(v *float64) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetLpCommitment(*v)
	}
	return _c
}

// SetRemainingCommitment sets the "remaining_commitment" field.
func (_c *CapitalCallDetailCreate) SetRemainingCommitment(v float64) *CapitalCallDetailCreate {
	_c.mutation.SetRemainingCommitment(v)
	return _c
}

// SetNillableRemainingCommitment sets the "remaining_commitment" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableRemainingCommitment(v *float64) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetRemainingCommitment(*v)
	}
	return _c
}

// SetPaymentInstructions sets the "payment_instructions" field.
func (_c *CapitalCallDetailCreate) SetPaymentInstructions(v string) *CapitalCallDetailCreate {
	_c.mutation.SetPaymentInstructions(v)
	return _c
}

// SetNillablePaymentInstructions sets the "payment_instructions" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillablePaymentInstructions(v *string) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetPaymentInstructions(*v)
	}
	return _c
}

// SetWireTransferInfo sets the "wire_transfer_info" field.
func (_c *CapitalCallDetailCreate) SetWireTransferInfo(v map[string]string) *CapitalCallDetailCreate {
	_c.mutation.SetWireTransferInfo(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *CapitalCallDetailCreate) SetNotes(v string) *CapitalCallDetailCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableNotes(v *string) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetExtractedData sets the "extracted_data" field.
func (_c *CapitalCallDetailCreate) SetExtractedData(v json.RawMessage) *CapitalCallDetailCreate {
	_c.mutation.SetExtractedData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CapitalCallDetailCreate) SetCreatedAt(v time.Time) *CapitalCallDetailCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableCreatedAt(v *time.Time) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CapitalCallDetailCreate) SetUpdatedAt(v time.Time) *CapitalCallDetailCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableUpdatedAt(v *time.Time) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CapitalCallDetailCreate) SetID(v uuid.UUID) *CapitalCallDetailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CapitalCallDetailCreate) SetNillableID(v *uuid.UUID) *CapitalCallDetailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *CapitalCallDetailCreate) SetDocument(v *Document) *CapitalCallDetailCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the CapitalCallDetailMutation object of the builder.
func (_c *CapitalCallDetailCreate) Mutation() *CapitalCallDetailMutation {
	return _c.mutation
}

// Save creates the CapitalCallDetail in the database.
func (_c *CapitalCallDetailCreate) Save(ctx context.Context) (*CapitalCallDetail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CapitalCallDetailCreate) SaveX(ctx context.Context) *CapitalCallDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CapitalCallDetailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CapitalCallDetailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CapitalCallDetailCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := capitalcalldetail.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := capitalcalldetail.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := capitalcalldetail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CapitalCallDetailCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "CapitalCallDetail.document_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CapitalCallDetail.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CapitalCallDetail.updated_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "CapitalCallDetail.document"`)}
	}
	return nil
}

func (_c *CapitalCallDetailCreate) sqlSave(ctx context.Context) (*CapitalCallDetail, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CapitalCallDetailCreate) createSpec() (*CapitalCallDetail, *sqlgraph.CreateSpec) {
	var (
		_node = &CapitalCallDetail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(capitalcalldetail.Table, sqlgraph.NewFieldSpec(capitalcalldetail.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CallDate(); ok {
		_spec.SetField(capitalcalldetail.FieldCallDate, field.TypeTime, value)
		_node.CallDate = &value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(capitalcalldetail.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.CallAmount(); ok {
		_spec.SetField(capitalcalldetail.FieldCallAmount, field.TypeFloat64, value)
		_node.CallAmount = &value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(capitalcalldetail.FieldCurrency, field.TypeString, value)
		_node.Currency = &value
	}
	if value, ok := _c.mutation.CallPercentage(); ok {
		_spec.SetField(capitalcalldetail.FieldCallPercentage, field.TypeFloat64, value)
		_node.CallPercentage = &value
	}
	if value, ok := _c.mutation.FundName(); ok {
		_spec.SetField(capitalcalldetail.FieldFundName, field.TypeString, value)
		_node.FundName = &value
	}
	if value, ok := _c.mutation.FundSize(); ok {
		_spec.SetField(capitalcalldetail.FieldFundSize, field.TypeFloat64, value)
		_node.FundSize = &value
	}
	if value, ok := _c.mutation.LpName(); ok {
		_spec.SetField(capitalcalldetail.FieldLpName, field.TypeString, value)
		_node.LpName = &value
	}
	if value, ok := _c.mutation.LpCommitment(); ok {
		_spec.SetField(capitalcalldetail.FieldLpCommitment, field.TypeFloat64, value)
		_node.LpCommitment = &value
	}
	if value, ok := _c.mutation.RemainingCommitment(); ok {
		_spec.SetField(capitalcalldetail.FieldRemainingCommitment, field.TypeFloat64, value)
		_node.RemainingCommitment = &value
	}
	if value, ok := _c.mutation.PaymentInstructions(); ok {
		_spec.SetField(capitalcalldetail.FieldPaymentInstructions, field.TypeString, value)
		_node.PaymentInstructions = &value
	}
	if value, ok := _c.mutation.WireTransferInfo(); ok {
		_spec.SetField(capitalcalldetail.FieldWireTransferInfo, field.TypeJSON, value)
		_node.WireTransferInfo = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(capitalcalldetail.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.ExtractedData(); ok {
		_spec.SetField(capitalcalldetail.FieldExtractedData, field.TypeJSON, value)
		_node.ExtractedData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(capitalcalldetail.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(capitalcalldetail.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   capitalcalldetail.DocumentTable,
			Columns: []string{capitalcalldetail.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CapitalCallDetailCreateBulk is the builder for creating many CapitalCallDetail entities in bulk.
type CapitalCallDetailCreateBulk struct {
	config
	err      error
	builders []*CapitalCallDetailCreate
}

// Save creates the CapitalCallDetail entities in the database.
func (_c *CapitalCallDetailCreateBulk) Save(ctx context.Context) ([]*CapitalCallDetail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CapitalCallDetail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CapitalCallDetailMutation)
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
func (_c *CapitalCallDetailCreateBulk) SaveX(ctx context.Context) []*CapitalCallDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CapitalCallDetailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CapitalCallDetailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
