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
	"github.com/shreyescodes/doc-parser-updated/gen/ent/distributiondetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/document"
)

// DistributionDetailCreate is the builder for creating a DistributionDetail entity.
type DistributionDetailCreate struct {
	config
	mutation *DistributionDetailMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *DistributionDetailCreate) SetDocumentID(v uuid.UUID) *DistributionDetailCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetDistributionDate sets the "distribution_date" field.
func (_c *DistributionDetailCreate) SetDistributionDate(v time.Time) *DistributionDetailCreate {
	_c.mutation.SetDistributionDate(v)
	return _c
}

// SetNillableDistributionDate sets the "distribution_date" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableDistributionDate(v *time.Time) *DistributionDetailCreate {
	if v != nil {
		_c.SetDistributionDate(*v)
	}
	return _c
}

// SetRecordDate sets the "record_date" field.
func (_c *DistributionDetailCreate) SetRecordDate(v time.Time) *DistributionDetailCreate {
	_c.mutation.SetRecordDate(v)
	return _c
}

// SetNillableRecordDate sets the "record_date" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableRecordDate(v *time.Time) *DistributionDetailCreate {
	if v != nil {
		_c.SetRecordDate(*v)
	}
	return _c
}

// SetDistributionAmount sets the "distribution_amount" field.
func (_c *DistributionDetailCreate) SetDistributionAmount(v float64) *DistributionDetailCreate {
	_c.mutation.SetDistributionAmount(v)
	return _c
}

// SetNillableDistributionAmount sets the "distribution_amount" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableDistributionAmount(v *float64) *DistributionDetailCreate {
	if v != nil {
		_c.SetDistributionAmount(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *DistributionDetailCreate) SetCurrency(v string) *DistributionDetailCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableCurrency(v *string) *DistributionDetailCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetDistributionPerUnit sets the "distribution_per_unit" field.
func (_c *DistributionDetailCreate) SetDistributionPerUnit(v float64) *DistributionDetailCreate {
	_c.mutation.SetDistributionPerUnit(v)
	return _c
}

// SetNillableDistributionPerUnit sets the "distribution_per_unit" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableDistributionPerUnit(v *float64) *DistributionDetailCreate {
	if v != nil {
		_c.SetDistributionPerUnit(*v)
	}
	return _c
}

// SetFundName sets the "fund_name" field.
func (_c *DistributionDetailCreate) SetFundName(v string) *DistributionDetailCreate {
	_c.mutation.SetFundName(v)
	return _c
}

// SetNillableFundName sets the "fund_name" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableFundName(v *string) *DistributionDetailCreate {
	if v != nil {
		_c.SetFundName(*v)
	}
	return _c
}

// SetFundNav sets the "fund_nav" field.
func (_c *DistributionDetailCreate) SetFundNav(v float64) *DistributionDetailCreate {
	_c.mutation.SetFundNav(v)
	return _c
}

// SetNillableFundNav sets the "fund_nav" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableFundNav(v *float64) *DistributionDetailCreate {
	if v != nil {
		_c.SetFundNav(*v)
	}
	return _c
}

// SetTotalDistributions sets the "total_distributions" field.
func (_c *DistributionDetailCreate) SetTotalDistributions(v float64) *DistributionDetailCreate {
	_c.mutation.SetTotalDistributions(v)
	return _c
}

// SetNillableTotalDistributions sets the "total_distributions" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableTotalDistributions(v *float64) *DistributionDetailCreate {
	if v != nil {
		_c.SetTotalDistributions(*v)
	}
	return _c
}

// SetLpName sets the "lp_name" field.
func (_c *DistributionDetailCreate) SetLpName(v string) *DistributionDetailCreate {
	_c.mutation.SetLpName(v)
	return _c
}

// SetNillableLpName sets the "lp_name" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableLpName(v *string) *DistributionDetailCreate {
	if v != nil {
		_c.SetLpName(*v)
	}
	return _c
}

// SetLpUnits sets the "lp_units" field.
func (_c *DistributionDetailCreate) SetLpUnits(v float64) *DistributionDetailCreate {
	_c.mutation.SetLpUnits(v)
	return _c
}

// SetNillableLpUnits sets the "lp_units" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableLpUnits(v *float64) *DistributionDetailCreate {
	if v != nil {
		_c.SetLpUnits(*v)
	}
	return _c
}

// SetLpDistributionAmount sets the "lp_distribution_amount" field.
func (_c *DistributionDetailCreate) SetLpDistributionAmount(v float64) *DistributionDetailCreate {
	_c.mutation.SetLpDistributionAmount(v)
	return _c
}

// SetNillableLpDistributionAmount sets the "lp_distribution_amount" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableLpDistributionAmount(v *float64) *DistributionDetailCreate {
	if v != nil {
		_c.SetLpDistributionAmount(*v)
	}
	return _c
}

// SetIrr sets the "irr" field.
func (_c *DistributionDetailCreate) SetIrr(v float64) *DistributionDetailCreate {
	_c.mutation.SetIrr(v)
	return _c
}

// SetNillableIrr sets the "irr" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableIrr(v *float64) *DistributionDetailCreate {
	if v != nil {
		_c.SetIrr(*v)
	}
	return _c
}

// SetMultiple sets the "multiple" field.
func (_c *DistributionDetailCreate) SetMultiple(v float64) *DistributionDetailCreate {
	_c.mutation.SetMultiple(v)
	return _c
}

// SetNillableMultiple sets the "multiple" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableMultiple(v *float64) *DistributionDetailCreate {
	if v != nil {
		_c.SetMultiple(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *DistributionDetailCreate) SetPaymentMethod(v string) *DistributionDetailCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillablePaymentMethod(v *string) *DistributionDetailCreate {
	if v != nil {
		_c.SetPaymentMethod(*v)
	}
	return _c
}

// SetPaymentInstructions sets the "payment_instructions" field.
func (_c *DistributionDetailCreate) SetPaymentInstructions(v string) *DistributionDetailCreate {
	_c.mutation.SetPaymentInstructions(v)
	return _c
}

// SetNillablePaymentInstructions sets the "payment_instructions" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillablePaymentInstructions(v *string) *DistributionDetailCreate {
	if v != nil {
		_c.SetPaymentInstructions(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *DistributionDetailCreate) SetNotes(v string) *DistributionDetailCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableNotes(v *string) *DistributionDetailCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetExtractedData sets the "extracted_data" field.
func (_c *DistributionDetailCreate) SetExtractedData(v json.RawMessage) *DistributionDetailCreate {
	_c.mutation.SetExtractedData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DistributionDetailCreate) SetCreatedAt(v time.Time) *DistributionDetailCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableCreatedAt(v *time.Time) *DistributionDetailCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DistributionDetailCreate) SetUpdatedAt(v time.Time) *DistributionDetailCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableUpdatedAt(v *time.Time) *DistributionDetailCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DistributionDetailCreate) SetID(v uuid.UUID) *DistributionDetailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DistributionDetailCreate) SetNillableID(v *uuid.UUID) *DistributionDetailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DistributionDetailCreate) SetDocument(v *Document) *DistributionDetailCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the DistributionDetailMutation object of the builder.
func (_c *DistributionDetailCreate) Mutation() *DistributionDetailMutation {
	return _c.mutation
}

// Save creates the DistributionDetail in the database.
func (_c *DistributionDetailCreate) Save(ctx context.Context) (*DistributionDetail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DistributionDetailCreate) SaveX(ctx context.Context) *DistributionDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributionDetailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributionDetailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DistributionDetailCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := distributiondetail.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := distributiondetail.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := distributiondetail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DistributionDetailCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DistributionDetail.document_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DistributionDetail.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DistributionDetail.updated_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DistributionDetail.document"`)}
	}
	return nil
}

func (_c *DistributionDetailCreate) sqlSave(ctx context.Context) (*DistributionDetail, error) {
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

func (_c *DistributionDetailCreate) createSpec() (*DistributionDetail, *sqlgraph.CreateSpec) {
	var (
		_node = &DistributionDetail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(distributiondetail.Table, sqlgraph.NewFieldSpec(distributiondetail.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DistributionDate(); ok {
		_spec.SetField(distributiondetail.FieldDistributionDate, field.TypeTime, value)
		_node.DistributionDate = &value
	}
	if value, ok := _c.mutation.RecordDate(); ok {
		_spec.SetField(distributiondetail.FieldRecordDate, field.TypeTime, value)
		_node.RecordDate = &value
	}
	if value, ok := _c.mutation.DistributionAmount(); ok {
		_spec.SetField(distributiondetail.FieldDistributionAmount, field.TypeFloat64, value)
		_node.DistributionAmount = &value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(distributiondetail.FieldCurrency, field.TypeString, value)
		_node.Currency = &value
	}
	if value, ok := _c.mutation.DistributionPerUnit(); ok {
		_spec.SetField(distributiondetail.FieldDistributionPerUnit, field.TypeFloat64, value)
		_node.DistributionPerUnit = &value
	}
	if value, ok := _c.mutation.FundName(); ok {
		_spec.SetField(distributiondetail.FieldFundName, field.TypeString, value)
		_node.FundName = &value
	}
	if value, ok := _c.mutation.FundNav(); ok {
		_spec.SetField(distributiondetail.FieldFundNav, field.TypeFloat64, value)
		_node.FundNav = &value
	}
	if value, ok := _c.mutation.TotalDistributions(); ok {
		_spec.SetField(distributiondetail.FieldTotalDistributions, field.TypeFloat64, value)
		_node.TotalDistributions = &value
	}
	if value, ok := _c.mutation.LpName(); ok {
		_spec.SetField(distributiondetail.FieldLpName, field.TypeString, value)
		_node.LpName = &value
	}
	if value, ok := _c.mutation.LpUnits(); ok {
		_spec.SetField(distributiondetail.FieldLpUnits, field.TypeFloat64, value)
		_node.LpUnits = &value
	}
	if value, ok := _c.mutation.LpDistributionAmount(); ok {
		_spec.SetField(distributiondetail.FieldLpDistributionAmount, field.TypeFloat64, value)
		_node.LpDistributionAmount = &value
	}
	if value, ok := _c.mutation.Irr(); ok {
		_spec.SetField(distributiondetail.FieldIrr, field.TypeFloat64, value)
		_node.Irr = &value
	}
	if value, ok := _c.mutation.Multiple(); ok {
		_spec.SetField(distributiondetail.FieldMultiple, field.TypeFloat64, value)
		_node.Multiple = &value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(distributiondetail.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = &value
	}
	if value, ok := _c.mutation.PaymentInstructions(); ok {
		_spec.SetField(distributiondetail.FieldPaymentInstructions, field.TypeString, value)
		_node.PaymentInstructions = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(distributiondetail.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.ExtractedData(); ok {
		_spec.SetField(distributiondetail.FieldExtractedData, field.TypeJSON, value)
		_node.ExtractedData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(distributiondetail.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(distributiondetail.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   distributiondetail.DocumentTable,
			Columns: []string{distributiondetail.DocumentColumn},
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

// DistributionDetailCreateBulk is the builder for creating many DistributionDetail entities in bulk.
type DistributionDetailCreateBulk struct {
	config
	err      error
	builders []*DistributionDetailCreate
}

// Save creates the DistributionDetail entities in the database.
func (_c *DistributionDetailCreateBulk) Save(ctx context.Context) ([]*DistributionDetail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DistributionDetail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DistributionDetailMutation)
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
func (_c *DistributionDetailCreateBulk) SaveX(ctx context.Context) []*DistributionDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributionDetailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributionDetailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
