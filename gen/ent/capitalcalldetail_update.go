// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/capitalcalldetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/document"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/predicate"
)

// CapitalCallDetailUpdate is the builder for updating CapitalCallDetail entities.
type CapitalCallDetailUpdate struct {
	config
	hooks    []Hook
	mutation *CapitalCallDetailMutation
}

// Where appends a list predicates to the CapitalCallDetailUpdate builder.
func (_u *CapitalCallDetailUpdate) Where(ps ...predicate.CapitalCallDetail) *CapitalCallDetailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *CapitalCallDetailUpdate) SetDocumentID(v uuid.UUID) *CapitalCallDetailUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillableDocumentID(v *uuid.UUID) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCallDate sets the "call_date" field.
func (_u *CapitalCallDetailUpdate) SetCallDate(v time.Time) *CapitalCallDetailUpdate {
	_u.mutation.SetCallDate(v)
	return _u
}

// SetNillableCallDate sets the "call_date" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillableCallDate(v *time.Time) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetCallDate(*v)
	}
	return _u
}

// ClearCallDate clears the value of the "call_date" field.
func (_u *CapitalCallDetailUpdate) ClearCallDate() *CapitalCallDetailUpdate {
	_u.mutation.ClearCallDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *CapitalCallDetailUpdate) SetDueDate(v time.Time) *CapitalCallDetailUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillableDueDate(v *time.Time) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *CapitalCallDetailUpdate) ClearDueDate() *CapitalCallDetailUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetCallAmount sets the "call_amount" field.
func (_u *CapitalCallDetailUpdate) SetCallAmount(v float64) *CapitalCallDetailUpdate {
	_u.mutation.ResetCallAmount()
	_u.mutation.SetCallAmount(v)
	return _u
}

// SetNillableCallAmount sets the "call_amount" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillableCallAmount(v *float64) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetCallAmount(*v)
	}
	return _u
}

// AddCallAmount adds value to the "call_amount" field.
func (_u *CapitalCallDetailUpdate) AddCallAmount(v float64) *CapitalCallDetailUpdate {
	_u.mutation.AddCallAmount(v)
	return _u
}

// ClearCallAmount clears the value of the "call_amount" field.
func (_u *CapitalCallDetailUpdate) ClearCallAmount() *CapitalCallDetailUpdate {
	_u.mutation.ClearCallAmount()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *CapitalCallDetailUpdate) SetCurrency(v string) *CapitalCallDetailUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillableCurrency(v *string) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *CapitalCallDetailUpdate) ClearCurrency() *CapitalCallDetailUpdate {
	_u.mutation.ClearCurrency()
	return _u
}

// SetCallPercentage sets the "call_percentage" field.
func (_u *CapitalCallDetailUpdate) SetCallPercentage(v float64) *CapitalCallDetailUpdate {
	_u.mutation.ResetCallPercentage()
	_u.mutation.SetCallPercentage(v)
	return _u
}

// SetNillableCallPercentage sets the "call_percentage" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillableCallPercentage(v *float64) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetCallPercentage(*v)
	}
	return _u
}

// AddCallPercentage adds value to the "call_percentage" field.
func (_u *CapitalCallDetailUpdate) AddCallPercentage(v float64) *CapitalCallDetailUpdate {
	_u.mutation.AddCallPercentage(v)
	return _u
}

// ClearCallPercentage clears the value of the "call_percentage" field.
func (_u *CapitalCallDetailUpdate) ClearCallPercentage() *CapitalCallDetailUpdate {
	_u.mutation.ClearCallPercentage()
	return _u
}

// SetFundName sets the "fund_name" field.
func (_u *CapitalCallDetailUpdate) SetFundName(v string) *CapitalCallDetailUpdate {
	_u.mutation.SetFundName(v)
	return _u
}

// SetNillableFundName sets the "fund_name" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillableFundName(v *string) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetFundName(*v)
	}
	return _u
}

// ClearFundName clears the value of the "fund_name" field.
func (_u *CapitalCallDetailUpdate) ClearFundName() *CapitalCallDetailUpdate {
	_u.mutation.ClearFundName()
	return _u
}

// SetFundSize sets the "fund_size" field.
func (_u *CapitalCallDetailUpdate) SetFundSize(v float64) *CapitalCallDetailUpdate {
	_u.mutation.ResetFundSize()
	_u.mutation.SetFundSize(v)
	return _u
}

// SetNillableFundSize sets the "fund_size" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillableFundSize(v *float64) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetFundSize(*v)
	}
	return _u
}

// AddFundSize adds value to the "fund_size" field.
func (_u *CapitalCallDetailUpdate) AddFundSize(v float64) *CapitalCallDetailUpdate {
	_u.mutation.AddFundSize(v)
	return _u
}

// ClearFundSize clears the value of the "fund_size" field.
func (_u *CapitalCallDetailUpdate) ClearFundSize() *CapitalCallDetailUpdate {
	_u.mutation.ClearFundSize()
	return _u
}

// SetLpName sets the "lp_name" field.
func (_u *CapitalCallDetailUpdate) SetLpName(v string) *CapitalCallDetailUpdate {
	_u.mutation.SetLpName(v)
	return _u
}

// SetNillableLpName sets the "lp_name" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillableLpName(v *string) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetLpName(*v)
	}
	return _u
}

// ClearLpName clears the value of the "lp_name" field.
func (_u *CapitalCallDetailUpdate) ClearLpName() *CapitalCallDetailUpdate {
	_u.mutation.ClearLpName()
	return _u
}

// SetLpCommitment sets the "lp_commitment" field.
func (_u *CapitalCallDetailUpdate) SetLpCommitment(v float64) *CapitalCallDetailUpdate {
	_u.mutation.ResetLpCommitment()
	_u.mutation.SetLpCommitment(v)
	return _u
}

// SetNillableLpCommitment sets the "lp_commitment" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillableLpCommitment(v *float64) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetLpCommitment(*v)
	}
	return _u
}

// AddLpCommitment adds value to the "lp_commitment" field.
func (_u *CapitalCallDetailUpdate) AddLpCommitment(v float64) *CapitalCallDetailUpdate {
	_u.mutation.AddLpCommitment(v)
	return _u
}

// ClearLpCommitment clears the value of the "lp_commitment" field.
func (_u *CapitalCallDetailUpdate) ClearLpCommitment() *CapitalCallDetailUpdate {
	_u.mutation.ClearLpCommitment()
	return _u
}

// SetRemainingCommitment sets the "remaining_commitment" field.
func (_u *CapitalCallDetailUpdate) SetRemainingCommitment(v float64) *CapitalCallDetailUpdate {
	_u.mutation.ResetRemainingCommitment()
	_u.mutation.SetRemainingCommitment(v)
	return _u
}

// SetNillableRemainingCommitment sets the "remaining_commitment" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillableRemainingCommitment(v *float64) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetRemainingCommitment(*v)
	}
	return _u
}

// AddRemainingCommitment adds value to the "remaining_commitment" field.
func (_u *CapitalCallDetailUpdate) AddRemainingCommitment(v float64) *CapitalCallDetailUpdate {
	_u.mutation.AddRemainingCommitment(v)
	return _u
}

// ClearRemainingCommitment clears the value of the "remaining_commitment" field.
func (_u *CapitalCallDetailUpdate) ClearRemainingCommitment() *CapitalCallDetailUpdate {
	_u.mutation.ClearRemainingCommitment()
	return _u
}

// SetPaymentInstructions sets the "payment_instructions" field.
func (_u *CapitalCallDetailUpdate) SetPaymentInstructions(v string) *CapitalCallDetailUpdate {
	_u.mutation.SetPaymentInstructions(v)
	return _u
}

// SetNillablePaymentInstructions sets the "payment_instructions" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillablePaymentInstructions(v *string) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetPaymentInstructions(*v)
	}
	return _u
}

// ClearPaymentInstructions clears the value of the "payment_instructions" field.
func (_u *CapitalCallDetailUpdate) ClearPaymentInstructions() *CapitalCallDetailUpdate {
	_u.mutation.ClearPaymentInstructions()
	return _u
}

// SetWireTransferInfo sets the "wire_transfer_info" field.
func (_u *CapitalCallDetailUpdate) SetWireTransferInfo(v map[string]string) *CapitalCallDetailUpdate {
	_u.mutation.SetWireTransferInfo(v)
	return _u
}

// ClearWireTransferInfo clears the value of the "wire_transfer_info" field.
func (_u *CapitalCallDetailUpdate) ClearWireTransferInfo() *CapitalCallDetailUpdate {
	_u.mutation.ClearWireTransferInfo()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CapitalCallDetailUpdate) SetNotes(v string) *CapitalCallDetailUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillableNotes(v *string) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CapitalCallDetailUpdate) ClearNotes() *CapitalCallDetailUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *CapitalCallDetailUpdate) SetExtractedData(v json.RawMessage) *CapitalCallDetailUpdate {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *CapitalCallDetailUpdate) AppendExtractedData(v json.RawMessage) *CapitalCallDetailUpdate {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *CapitalCallDetailUpdate) ClearExtractedData() *CapitalCallDetailUpdate {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CapitalCallDetailUpdate) SetCreatedAt(v time.Time) *CapitalCallDetailUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CapitalCallDetailUpdate) SetNillableCreatedAt(v *time.Time) *CapitalCallDetailUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CapitalCallDetailUpdate) SetUpdatedAt(v time.Time) *CapitalCallDetailUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *CapitalCallDetailUpdate) SetDocument(v *Document) *CapitalCallDetailUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the CapitalCallDetailMutation object of the builder.
func (_u *CapitalCallDetailUpdate) Mutation() *CapitalCallDetailMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *CapitalCallDetailUpdate) ClearDocument() *CapitalCallDetailUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CapitalCallDetailUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CapitalCallDetailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CapitalCallDetailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CapitalCallDetailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CapitalCallDetailUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := capitalcalldetail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CapitalCallDetailUpdate) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CapitalCallDetail.document"`)
	}
	return nil
}

func (_u *CapitalCallDetailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(capitalcalldetail.Table, capitalcalldetail.Columns, sqlgraph.NewFieldSpec(capitalcalldetail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CallDate(); ok {
		_spec.SetField(capitalcalldetail.FieldCallDate, field.TypeTime, value)
	}
	if _u.mutation.CallDateCleared() {
		_spec.ClearField(capitalcalldetail.FieldCallDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(capitalcalldetail.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(capitalcalldetail.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CallAmount(); ok {
		_spec.SetField(capitalcalldetail.FieldCallAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCallAmount(); ok {
		_spec.AddField(capitalcalldetail.FieldCallAmount, field.TypeFloat64, value)
	}
	if _u.mutation.CallAmountCleared() {
		_spec.ClearField(capitalcalldetail.FieldCallAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(capitalcalldetail.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(capitalcalldetail.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.CallPercentage(); ok {
		_spec.SetField(capitalcalldetail.FieldCallPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCallPercentage(); ok {
		_spec.AddField(capitalcalldetail.FieldCallPercentage, field.TypeFloat64, value)
	}
	if _u.mutation.CallPercentageCleared() {
		_spec.ClearField(capitalcalldetail.FieldCallPercentage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FundName(); ok {
		_spec.SetField(capitalcalldetail.FieldFundName, field.TypeString, value)
	}
	if _u.mutation.FundNameCleared() {
		_spec.ClearField(capitalcalldetail.FieldFundName, field.TypeString)
	}
	if value, ok := _u.mutation.FundSize(); ok {
		_spec.SetField(capitalcalldetail.FieldFundSize, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFundSize(); ok {
		_spec.AddField(capitalcalldetail.FieldFundSize, field.TypeFloat64, value)
	}
	if _u.mutation.FundSizeCleared() {
		_spec.ClearField(capitalcalldetail.FieldFundSize, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LpName(); ok {
		_spec.SetField(capitalcalldetail.FieldLpName, field.TypeString, value)
	}
	if _u.mutation.LpNameCleared() {
		_spec.ClearField(capitalcalldetail.FieldLpName, field.TypeString)
	}
	if value, ok := _u.mutation.LpCommitment(); ok {
		_spec.SetField(capitalcalldetail.FieldLpCommitment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLpCommitment(); ok {
		_spec.AddField(capitalcalldetail.FieldLpCommitment, field.TypeFloat64, value)
	}
	if _u.mutation.LpCommitmentCleared() {
		_spec.ClearField(capitalcalldetail.FieldLpCommitment, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RemainingCommitment(); ok {
		_spec.SetField(capitalcalldetail.FieldRemainingCommitment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRemainingCommitment(); ok {
		_spec.AddField(capitalcalldetail.FieldRemainingCommitment, field.TypeFloat64, value)
	}
	if _u.mutation.RemainingCommitmentCleared() {
		_spec.ClearField(capitalcalldetail.FieldRemainingCommitment, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PaymentInstructions(); ok {
		_spec.SetField(capitalcalldetail.FieldPaymentInstructions, field.TypeString, value)
	}
	if _u.mutation.PaymentInstructionsCleared() {
		_spec.ClearField(capitalcalldetail.FieldPaymentInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.WireTransferInfo(); ok {
		_spec.SetField(capitalcalldetail.FieldWireTransferInfo, field.TypeJSON, value)
	}
	if _u.mutation.WireTransferInfoCleared() {
		_spec.ClearField(capitalcalldetail.FieldWireTransferInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(capitalcalldetail.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(capitalcalldetail.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(capitalcalldetail.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, capitalcalldetail.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(capitalcalldetail.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(capitalcalldetail.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(capitalcalldetail.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capitalcalldetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CapitalCallDetailUpdateOne is the builder for updating a single CapitalCallDetail entity.
type CapitalCallDetailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CapitalCallDetailMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *CapitalCallDetailUpdateOne) SetDocumentID(v uuid.UUID) *CapitalCallDetailUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillableDocumentID(v *uuid.UUID) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCallDate sets the "call_date" field.
func (_u *CapitalCallDetailUpdateOne) SetCallDate(v time.Time) *CapitalCallDetailUpdateOne {
	_u.mutation.SetCallDate(v)
	return _u
}

// SetNillableCallDate sets the "call_date" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillableCallDate(v *time.Time) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetCallDate(*v)
	}
	return _u
}

// ClearCallDate clears the value of the "call_date" field.
func (_u *CapitalCallDetailUpdateOne) ClearCallDate() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearCallDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *CapitalCallDetailUpdateOne) SetDueDate(v time.Time) *CapitalCallDetailUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillableDueDate(v *time.Time) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *CapitalCallDetailUpdateOne) ClearDueDate() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetCallAmount sets the "call_amount" field.
func (_u *CapitalCallDetailUpdateOne) SetCallAmount(v float64) *CapitalCallDetailUpdateOne {
	_u.mutation.ResetCallAmount()
	_u.mutation.SetCallAmount(v)
	return _u
}

// SetNillableCallAmount sets the "call_amount" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillableCallAmount(v *float64) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetCallAmount(*v)
	}
	return _u
}

// AddCallAmount adds value to the "call_amount" field.
func (_u *CapitalCallDetailUpdateOne) AddCallAmount(v float64) *CapitalCallDetailUpdateOne {
	_u.mutation.AddCallAmount(v)
	return _u
}

// ClearCallAmount clears the value of the "call_amount" field.
func (_u *CapitalCallDetailUpdateOne) ClearCallAmount() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearCallAmount()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *CapitalCallDetailUpdateOne) SetCurrency(v string) *CapitalCallDetailUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillableCurrency(v *string) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *CapitalCallDetailUpdateOne) ClearCurrency() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearCurrency()
	return _u
}

// SetCallPercentage sets the "call_percentage" field.
func (_u *CapitalCallDetailUpdateOne) SetCallPercentage(v float64) *CapitalCallDetailUpdateOne {
	_u.mutation.ResetCallPercentage()
	_u.mutation.SetCallPercentage(v)
	return _u
}

// SetNillableCallPercentage sets the "call_percentage" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillableCallPercentage(v *float64) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetCallPercentage(*v)
	}
	return _u
}

// AddCallPercentage adds value to the "call_percentage" field.
func (_u *CapitalCallDetailUpdateOne) AddCallPercentage(v float64) *CapitalCallDetailUpdateOne {
	_u.mutation.AddCallPercentage(v)
	return _u
}

// ClearCallPercentage clears the value of the "call_percentage" field.
func (_u *CapitalCallDetailUpdateOne) ClearCallPercentage() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearCallPercentage()
	return _u
}

// SetFundName sets the "fund_name" field.
func (_u *CapitalCallDetailUpdateOne) SetFundName(v string) *CapitalCallDetailUpdateOne {
	_u.mutation.SetFundName(v)
	return _u
}

// SetNillableFundName sets the "fund_name" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillableFundName(v *string) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetFundName(*v)
	}
	return _u
}

// ClearFundName clears the value of the "fund_name" field.
func (_u *CapitalCallDetailUpdateOne) ClearFundName() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearFundName()
	return _u
}

// SetFundSize sets the "fund_size" field.
func (_u *CapitalCallDetailUpdateOne) SetFundSize(v float64) *CapitalCallDetailUpdateOne {
	_u.mutation.ResetFundSize()
	_u.mutation.SetFundSize(v)
	return _u
}

// SetNillableFundSize sets the "fund_size" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillableFundSize(v *float64) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetFundSize(*v)
	}
	return _u
}

// AddFundSize adds value to the "fund_size" field.
func (_u *CapitalCallDetailUpdateOne) AddFundSize(v float64) *CapitalCallDetailUpdateOne {
	_u.mutation.AddFundSize(v)
	return _u
}

// ClearFundSize clears the value of the "fund_size" field.
func (_u *CapitalCallDetailUpdateOne) ClearFundSize() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearFundSize()
	return _u
}

// SetLpName sets the "lp_name" field.
func (_u *CapitalCallDetailUpdateOne) SetLpName(v string) *CapitalCallDetailUpdateOne {
	_u.mutation.SetLpName(v)
	return _u
}

// SetNillableLpName sets the "lp_name" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillableLpName(v *string) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetLpName(*v)
	}
	return _u
}

// ClearLpName clears the value of the "lp_name" field.
func (_u *CapitalCallDetailUpdateOne) ClearLpName() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearLpName()
	return _u
}

// SetLpCommitment sets the "lp_commitment" field.
func (_u *CapitalCallDetailUpdateOne) SetLpCommitment(v float64) *CapitalCallDetailUpdateOne {
	_u.mutation.ResetLpCommitment()
	_u.mutation.SetLpCommitment(v)
	return _u
}

// SetNillableLpCommitment sets the "lp_commitment" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillableLpCommitment(v *float64) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetLpCommitment(*v)
	}
	return _u
}

// AddLpCommitment adds value to the "lp_commitment" field.
func (_u *CapitalCallDetailUpdateOne) AddLpCommitment(v float64) *CapitalCallDetailUpdateOne {
	_u.mutation.AddLpCommitment(v)
	return _u
}

// ClearLpCommitment clears the value of the "lp_commitment" field.
func (_u *CapitalCallDetailUpdateOne) ClearLpCommitment() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearLpCommitment()
	return _u
}

// SetRemainingCommitment sets the "remaining_commitment" field.
func (_u *CapitalCallDetailUpdateOne) SetRemainingCommitment(v float64) *CapitalCallDetailUpdateOne {
	_u.mutation.ResetRemainingCommitment()
	_u.mutation.SetRemainingCommitment(v)
	return _u
}

// SetNillableRemainingCommitment sets the "remaining_commitment" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillableRemainingCommitment(v *float64) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetRemainingCommitment(*v)
	}
	return _u
}

// AddRemainingCommitment adds value to the "remaining_commitment" field.
func (_u *CapitalCallDetailUpdateOne) AddRemainingCommitment(v float64) *CapitalCallDetailUpdateOne {
	_u.mutation.AddRemainingCommitment(v)
	return _u
}

// ClearRemainingCommitment clears the value of the "remaining_commitment" field.
func (_u *CapitalCallDetailUpdateOne) ClearRemainingCommitment() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearRemainingCommitment()
	return _u
}

// SetPaymentInstructions sets the "payment_instructions" field.
func (_u *CapitalCallDetailUpdateOne) SetPaymentInstructions(v string) *CapitalCallDetailUpdateOne {
	_u.mutation.SetPaymentInstructions(v)
	return _u
}

// SetNillablePaymentInstructions sets the "payment_instructions" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillablePaymentInstructions(v *string) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetPaymentInstructions(*v)
	}
	return _u
}

// ClearPaymentInstructions clears the value of the "payment_instructions" field.
func (_u *CapitalCallDetailUpdateOne) ClearPaymentInstructions() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearPaymentInstructions()
	return _u
}

// SetWireTransferInfo sets the "wire_transfer_info" field.
func (_u *CapitalCallDetailUpdateOne) SetWireTransferInfo(v map[string]string) *CapitalCallDetailUpdateOne {
	_u.mutation.SetWireTransferInfo(v)
	return _u
}

// ClearWireTransferInfo clears the value of the "wire_transfer_info" field.
func (_u *CapitalCallDetailUpdateOne) ClearWireTransferInfo() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearWireTransferInfo()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CapitalCallDetailUpdateOne) SetNotes(v string) *CapitalCallDetailUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillableNotes(v *string) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CapitalCallDetailUpdateOne) ClearNotes() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *CapitalCallDetailUpdateOne) SetExtractedData(v json.RawMessage) *CapitalCallDetailUpdateOne {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *CapitalCallDetailUpdateOne) AppendExtractedData(v json.RawMessage) *CapitalCallDetailUpdateOne {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *CapitalCallDetailUpdateOne) ClearExtractedData() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CapitalCallDetailUpdateOne) SetCreatedAt(v time.Time) *CapitalCallDetailUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CapitalCallDetailUpdateOne) SetNillableCreatedAt(v *time.Time) *CapitalCallDetailUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CapitalCallDetailUpdateOne) SetUpdatedAt(v time.Time) *CapitalCallDetailUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *CapitalCallDetailUpdateOne) SetDocument(v *Document) *CapitalCallDetailUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the CapitalCallDetailMutation object of the builder.
func (_u *CapitalCallDetailUpdateOne) Mutation() *CapitalCallDetailMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *CapitalCallDetailUpdateOne) ClearDocument() *CapitalCallDetailUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the CapitalCallDetailUpdate builder.
func (_u *CapitalCallDetailUpdateOne) Where(ps ...predicate.CapitalCallDetail) *CapitalCallDetailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CapitalCallDetailUpdateOne) Select(field string, fields ...string) *CapitalCallDetailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CapitalCallDetail entity.
func (_u *CapitalCallDetailUpdateOne) Save(ctx context.Context) (*CapitalCallDetail, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CapitalCallDetailUpdateOne) SaveX(ctx context.Context) *CapitalCallDetail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CapitalCallDetailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CapitalCallDetailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CapitalCallDetailUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := capitalcalldetail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CapitalCallDetailUpdateOne) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CapitalCallDetail.document"`)
	}
	return nil
}

func (_u *CapitalCallDetailUpdateOne) sqlSave(ctx context.Context) (_node *CapitalCallDetail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(capitalcalldetail.Table, capitalcalldetail.Columns, sqlgraph.NewFieldSpec(capitalcalldetail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CapitalCallDetail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, capitalcalldetail.FieldID)
		for _, f := range fields {
			if !capitalcalldetail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != capitalcalldetail.FieldID {
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
	if value, ok := _u.mutation.CallDate(); ok {
		_spec.SetField(capitalcalldetail.FieldCallDate, field.TypeTime, value)
	}
	if _u.mutation.CallDateCleared() {
		_spec.ClearField(capitalcalldetail.FieldCallDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(capitalcalldetail.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(capitalcalldetail.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CallAmount(); ok {
		_spec.SetField(capitalcalldetail.FieldCallAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCallAmount(); ok {
		_spec.AddField(capitalcalldetail.FieldCallAmount, field.TypeFloat64, value)
	}
	if _u.mutation.CallAmountCleared() {
		_spec.ClearField(capitalcalldetail.FieldCallAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(capitalcalldetail.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(capitalcalldetail.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.CallPercentage(); ok {
		_spec.SetField(capitalcalldetail.FieldCallPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCallPercentage(); ok {
		_spec.AddField(capitalcalldetail.FieldCallPercentage, field.TypeFloat64, value)
	}
	if _u.mutation.CallPercentageCleared() {
		_spec.ClearField(capitalcalldetail.FieldCallPercentage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FundName(); ok {
		_spec.SetField(capitalcalldetail.FieldFundName, field.TypeString, value)
	}
	if _u.mutation.FundNameCleared() {
		_spec.ClearField(capitalcalldetail.FieldFundName, field.TypeString)
	}
	if value, ok := _u.mutation.FundSize(); ok {
		_spec.SetField(capitalcalldetail.FieldFundSize, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFundSize(); ok {
		_spec.AddField(capitalcalldetail.FieldFundSize, field.TypeFloat64, value)
	}
	if _u.mutation.FundSizeCleared() {
		_spec.ClearField(capitalcalldetail.FieldFundSize, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LpName(); ok {
		_spec.SetField(capitalcalldetail.FieldLpName, field.TypeString, value)
	}
	if _u.mutation.LpNameCleared() {
		_spec.ClearField(capitalcalldetail.FieldLpName, field.TypeString)
	}
	if value, ok := _u.mutation.LpCommitment(); ok {
		_spec.SetField(capitalcalldetail.FieldLpCommitment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLpCommitment(); ok {
		_spec.AddField(capitalcalldetail.FieldLpCommitment, field.TypeFloat64, value)
	}
	if _u.mutation.LpCommitmentCleared() {
		_spec.ClearField(capitalcalldetail.FieldLpCommitment, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RemainingCommitment(); ok {
		_spec.SetField(capitalcalldetail.FieldRemainingCommitment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRemainingCommitment(); ok {
		_spec.AddField(capitalcalldetail.FieldRemainingCommitment, field.TypeFloat64, value)
	}
	if _u.mutation.RemainingCommitmentCleared() {
		_spec.ClearField(capitalcalldetail.FieldRemainingCommitment, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PaymentInstructions(); ok {
		_spec.SetField(capitalcalldetail.FieldPaymentInstructions, field.TypeString, value)
	}
	if _u.mutation.PaymentInstructionsCleared() {
		_spec.ClearField(capitalcalldetail.FieldPaymentInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.WireTransferInfo(); ok {
		_spec.SetField(capitalcalldetail.FieldWireTransferInfo, field.TypeJSON, value)
	}
	if _u.mutation.WireTransferInfoCleared() {
		_spec.ClearField(capitalcalldetail.FieldWireTransferInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(capitalcalldetail.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(capitalcalldetail.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(capitalcalldetail.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, capitalcalldetail.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(capitalcalldetail.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(capitalcalldetail.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(capitalcalldetail.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CapitalCallDetail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capitalcalldetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
