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
	"github.com/shreyescodes/doc-parser-updated/gen/ent/distributiondetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/document"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/predicate"
)

// DistributionDetailUpdate is the builder for updating DistributionDetail entities.
type DistributionDetailUpdate struct {
	config
	hooks    []Hook
	mutation *DistributionDetailMutation
}

// Where appends a list predicates to the DistributionDetailUpdate builder.
func (_u *DistributionDetailUpdate) Where(ps ...predicate.DistributionDetail) *DistributionDetailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DistributionDetailUpdate) SetDocumentID(v uuid.UUID) *DistributionDetailUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableDocumentID(v *uuid.UUID) *DistributionDetailUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDistributionDate sets the "distribution_date" field.
func (_u *DistributionDetailUpdate) SetDistributionDate(v time.Time) *DistributionDetailUpdate {
	_u.mutation.SetDistributionDate(v)
	return _u
}

// SetNillableDistributionDate sets the "distribution_date" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableDistributionDate(v *time.Time) *DistributionDetailUpdate {
	if v != nil {
		_u.SetDistributionDate(*v)
	}
	return _u
}

// ClearDistributionDate clears the value of the "distribution_date" field.
func (_u *DistributionDetailUpdate) ClearDistributionDate() *DistributionDetailUpdate {
	_u.mutation.ClearDistributionDate()
	return _u
}

// SetRecordDate sets the "record_date" field.
func (_u *DistributionDetailUpdate) SetRecordDate(v time.Time) *DistributionDetailUpdate {
	_u.mutation.SetRecordDate(v)
	return _u
}

// SetNillableRecordDate sets the "record_date" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableRecordDate(v *time.Time) *DistributionDetailUpdate {
	if v != nil {
		_u.SetRecordDate(*v)
	}
	return _u
}

// ClearRecordDate clears the value of the "record_date" field.
func (_u *DistributionDetailUpdate) ClearRecordDate() *DistributionDetailUpdate {
	_u.mutation.ClearRecordDate()
	return _u
}

// SetDistributionAmount sets the "distribution_amount" field.
func (_u *DistributionDetailUpdate) SetDistributionAmount(v float64) *DistributionDetailUpdate {
	_u.mutation.ResetDistributionAmount()
	_u.mutation.SetDistributionAmount(v)
	return _u
}

// SetNillableDistributionAmount sets the "distribution_amount" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableDistributionAmount(v *float64) *DistributionDetailUpdate {
	if v != nil {
		_u.SetDistributionAmount(*v)
	}
	return _u
}

// AddDistributionAmount adds value to the "distribution_amount" field.
func (_u *DistributionDetailUpdate) AddDistributionAmount(v float64) *DistributionDetailUpdate {
	_u.mutation.AddDistributionAmount(v)
	return _u
}

// ClearDistributionAmount clears the value of the "distribution_amount" field.
func (_u *DistributionDetailUpdate) ClearDistributionAmount() *DistributionDetailUpdate {
	_u.mutation.ClearDistributionAmount()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *DistributionDetailUpdate) SetCurrency(v string) *DistributionDetailUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableCurrency(v *string) *DistributionDetailUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *DistributionDetailUpdate) ClearCurrency() *DistributionDetailUpdate {
	_u.mutation.ClearCurrency()
	return _u
}

// SetDistributionPerUnit sets the "distribution_per_unit" field.
func (_u *DistributionDetailUpdate) SetDistributionPerUnit(v float64) *DistributionDetailUpdate {
	_u.mutation.ResetDistributionPerUnit()
	_u.mutation.SetDistributionPerUnit(v)
	return _u
}

// SetNillableDistributionPerUnit sets the "distribution_per_unit" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableDistributionPerUnit(v *float64) *DistributionDetailUpdate {
	if v != nil {
		_u.SetDistributionPerUnit(*v)
	}
	return _u
}

// AddDistributionPerUnit adds value to the "distribution_per_unit" field.
func (_u *DistributionDetailUpdate) AddDistributionPerUnit(v float64) *DistributionDetailUpdate {
	_u.mutation.AddDistributionPerUnit(v)
	return _u
}

// ClearDistributionPerUnit clears the value of the "distribution_per_unit" field.
func (_u *DistributionDetailUpdate) ClearDistributionPerUnit() *DistributionDetailUpdate {
	_u.mutation.ClearDistributionPerUnit()
	return _u
}

// SetFundName sets the "fund_name" field.
func (_u *DistributionDetailUpdate) SetFundName(v string) *DistributionDetailUpdate {
	_u.mutation.SetFundName(v)
	return _u
}

// SetNillableFundName sets the "fund_name" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableFundName(v *string) *DistributionDetailUpdate {
	if v != nil {
		_u.SetFundName(*v)
	}
	return _u
}

// ClearFundName clears the value of the "fund_name" field.
func (_u *DistributionDetailUpdate) ClearFundName() *DistributionDetailUpdate {
	_u.mutation.ClearFundName()
	return _u
}

// SetFundNav sets the "fund_nav" field.
func (_u *DistributionDetailUpdate) SetFundNav(v float64) *DistributionDetailUpdate {
	_u.mutation.ResetFundNav()
	_u.mutation.SetFundNav(v)
	return _u
}

// SetNillableFundNav sets the "fund_nav" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableFundNav(v *float64) *DistributionDetailUpdate {
	if v != nil {
		_u.SetFundNav(*v)
	}
	return _u
}

// AddFundNav adds value to the "fund_nav" field.
func (_u *DistributionDetailUpdate) AddFundNav(v float64) *DistributionDetailUpdate {
	_u.mutation.AddFundNav(v)
	return _u
}

// ClearFundNav clears the value of the "fund_nav" field.
func (_u *DistributionDetailUpdate) ClearFundNav() *DistributionDetailUpdate {
	_u.mutation.ClearFundNav()
	return _u
}

// SetTotalDistributions sets the "total_distributions" field.
func (_u *DistributionDetailUpdate) SetTotalDistributions(v float64) *DistributionDetailUpdate {
	_u.mutation.ResetTotalDistributions()
	_u.mutation.SetTotalDistributions(v)
	return _u
}

// SetNillableTotalDistributions sets the "total_distributions" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableTotalDistributions(v *float64) *DistributionDetailUpdate {
	if v != nil {
		_u.SetTotalDistributions(*v)
	}
	return _u
}

// AddTotalDistributions adds value to the "total_distributions" field.
func (_u *DistributionDetailUpdate) AddTotalDistributions(v float64) *DistributionDetailUpdate {
	_u.mutation.AddTotalDistributions(v)
	return _u
}

// ClearTotalDistributions clears the value of the "total_distributions" field.
func (_u *DistributionDetailUpdate) ClearTotalDistributions() *DistributionDetailUpdate {
	_u.mutation.ClearTotalDistributions()
	return _u
}

// SetLpName sets the "lp_name" field.
func (_u *DistributionDetailUpdate) SetLpName(v string) *DistributionDetailUpdate {
	_u.mutation.SetLpName(v)
	return _u
}

// SetNillableLpName sets the "lp_name" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableLpName(v *string) *DistributionDetailUpdate {
	if v != nil {
		_u.SetLpName(*v)
	}
	return _u
}

// ClearLpName clears the value of the "lp_name" field.
func (_u *DistributionDetailUpdate) ClearLpName() *DistributionDetailUpdate {
	_u.mutation.ClearLpName()
	return _u
}

// SetLpUnits sets the "lp_units" field.
func (_u *DistributionDetailUpdate) SetLpUnits(v float64) *DistributionDetailUpdate {
	_u.mutation.ResetLpUnits()
	_u.mutation.SetLpUnits(v)
	return _u
}

// SetNillableLpUnits sets the "lp_units" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableLpUnits(v *float64) *DistributionDetailUpdate {
	if v != nil {
		_u.SetLpUnits(*v)
	}
	return _u
}

// AddLpUnits adds value to the "lp_units" field.
func (_u *DistributionDetailUpdate) AddLpUnits(v float64) *DistributionDetailUpdate {
	_u.mutation.AddLpUnits(v)
	return _u
}

// ClearLpUnits clears the value of the "lp_units" field.
func (_u *DistributionDetailUpdate) ClearLpUnits() *DistributionDetailUpdate {
	_u.mutation.ClearLpUnits()
	return _u
}

// SetLpDistributionAmount sets the "lp_distribution_amount" field.
func (_u *DistributionDetailUpdate) SetLpDistributionAmount(v float64) *DistributionDetailUpdate {
	_u.mutation.ResetLpDistributionAmount()
	_u.mutation.SetLpDistributionAmount(v)
	return _u
}

// SetNillableLpDistributionAmount sets the "lp_distribution_amount" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableLpDistributionAmount(v *float64) *DistributionDetailUpdate {
	if v != nil {
		_u.SetLpDistributionAmount(*v)
	}
	return _u
}

// AddLpDistributionAmount adds value to the "lp_distribution_amount" field.
func (_u *DistributionDetailUpdate) AddLpDistributionAmount(v float64) *DistributionDetailUpdate {
	_u.mutation.AddLpDistributionAmount(v)
	return _u
}

// ClearLpDistributionAmount clears the value of the "lp_distribution_amount" field.
func (_u *DistributionDetailUpdate) ClearLpDistributionAmount() *DistributionDetailUpdate {
	_u.mutation.ClearLpDistributionAmount()
	return _u
}

// SetIrr sets the "irr" field.
func (_u *DistributionDetailUpdate) SetIrr(v float64) *DistributionDetailUpdate {
	_u.mutation.ResetIrr()
	_u.mutation.SetIrr(v)
	return _u
}

// SetNillableIrr sets the "irr" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableIrr(v *float64) *DistributionDetailUpdate {
	if v != nil {
		_u.SetIrr(*v)
	}
	return _u
}

// AddIrr adds value to the "irr" field.
func (_u *DistributionDetailUpdate) AddIrr(v float64) *DistributionDetailUpdate {
	_u.mutation.AddIrr(v)
	return _u
}

// ClearIrr clears the value of the "irr" field.
func (_u *DistributionDetailUpdate) ClearIrr() *DistributionDetailUpdate {
	_u.mutation.ClearIrr()
	return _u
}

// SetMultiple sets the "multiple" field.
func (_u *DistributionDetailUpdate) SetMultiple(v float64) *DistributionDetailUpdate {
	_u.mutation.ResetMultiple()
	_u.mutation.SetMultiple(v)
	return _u
}

// SetNillableMultiple sets the "multiple" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableMultiple(v *float64) *DistributionDetailUpdate {
	if v != nil {
		_u.SetMultiple(*v)
	}
	return _u
}

// AddMultiple adds value to the "multiple" field.
func (_u *DistributionDetailUpdate) AddMultiple(v float64) *DistributionDetailUpdate {
	_u.mutation.AddMultiple(v)
	return _u
}

// ClearMultiple clears the value of the "multiple" field.
func (_u *DistributionDetailUpdate) ClearMultiple() *DistributionDetailUpdate {
	_u.mutation.ClearMultiple()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *DistributionDetailUpdate) SetPaymentMethod(v string) *DistributionDetailUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillablePaymentMethod(v *string) *DistributionDetailUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *DistributionDetailUpdate) ClearPaymentMethod() *DistributionDetailUpdate {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetPaymentInstructions sets the "payment_instructions" field.
func (_u *DistributionDetailUpdate) SetPaymentInstructions(v string) *DistributionDetailUpdate {
	_u.mutation.SetPaymentInstructions(v)
	return _u
}

// SetNillablePaymentInstructions sets the "payment_instructions" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillablePaymentInstructions(v *string) *DistributionDetailUpdate {
	if v != nil {
		_u.SetPaymentInstructions(*v)
	}
	return _u
}

// ClearPaymentInstructions clears the value of the "payment_instructions" field.
func (_u *DistributionDetailUpdate) ClearPaymentInstructions() *DistributionDetailUpdate {
	_u.mutation.ClearPaymentInstructions()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DistributionDetailUpdate) SetNotes(v string) *DistributionDetailUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableNotes(v *string) *DistributionDetailUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *DistributionDetailUpdate) ClearNotes() *DistributionDetailUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *DistributionDetailUpdate) SetExtractedData(v json.RawMessage) *DistributionDetailUpdate {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *DistributionDetailUpdate) AppendExtractedData(v json.RawMessage) *DistributionDetailUpdate {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *DistributionDetailUpdate) ClearExtractedData() *DistributionDetailUpdate {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DistributionDetailUpdate) SetCreatedAt(v time.Time) *DistributionDetailUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DistributionDetailUpdate) SetNillableCreatedAt(v *time.Time) *DistributionDetailUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DistributionDetailUpdate) SetUpdatedAt(v time.Time) *DistributionDetailUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DistributionDetailUpdate) SetDocument(v *Document) *DistributionDetailUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DistributionDetailMutation object of the builder.
func (_u *DistributionDetailUpdate) Mutation() *DistributionDetailMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DistributionDetailUpdate) ClearDocument() *DistributionDetailUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DistributionDetailUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributionDetailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DistributionDetailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributionDetailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DistributionDetailUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := distributiondetail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributionDetailUpdate) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DistributionDetail.document"`)
	}
	return nil
}

func (_u *DistributionDetailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distributiondetail.Table, distributiondetail.Columns, sqlgraph.NewFieldSpec(distributiondetail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DistributionDate(); ok {
		_spec.SetField(distributiondetail.FieldDistributionDate, field.TypeTime, value)
	}
	if _u.mutation.DistributionDateCleared() {
		_spec.ClearField(distributiondetail.FieldDistributionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RecordDate(); ok {
		_spec.SetField(distributiondetail.FieldRecordDate, field.TypeTime, value)
	}
	if _u.mutation.RecordDateCleared() {
		_spec.ClearField(distributiondetail.FieldRecordDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DistributionAmount(); ok {
		_spec.SetField(distributiondetail.FieldDistributionAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistributionAmount(); ok {
		_spec.AddField(distributiondetail.FieldDistributionAmount, field.TypeFloat64, value)
	}
	if _u.mutation.DistributionAmountCleared() {
		_spec.ClearField(distributiondetail.FieldDistributionAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(distributiondetail.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(distributiondetail.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.DistributionPerUnit(); ok {
		_spec.SetField(distributiondetail.FieldDistributionPerUnit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistributionPerUnit(); ok {
		_spec.AddField(distributiondetail.FieldDistributionPerUnit, field.TypeFloat64, value)
	}
	if _u.mutation.DistributionPerUnitCleared() {
		_spec.ClearField(distributiondetail.FieldDistributionPerUnit, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FundName(); ok {
		_spec.SetField(distributiondetail.FieldFundName, field.TypeString, value)
	}
	if _u.mutation.FundNameCleared() {
		_spec.ClearField(distributiondetail.FieldFundName, field.TypeString)
	}
	if value, ok := _u.mutation.FundNav(); ok {
		_spec.SetField(distributiondetail.FieldFundNav, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFundNav(); ok {
		_spec.AddField(distributiondetail.FieldFundNav, field.TypeFloat64, value)
	}
	if _u.mutation.FundNavCleared() {
		_spec.ClearField(distributiondetail.FieldFundNav, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalDistributions(); ok {
		_spec.SetField(distributiondetail.FieldTotalDistributions, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalDistributions(); ok {
		_spec.AddField(distributiondetail.FieldTotalDistributions, field.TypeFloat64, value)
	}
	if _u.mutation.TotalDistributionsCleared() {
		_spec.ClearField(distributiondetail.FieldTotalDistributions, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LpName(); ok {
		_spec.SetField(distributiondetail.FieldLpName, field.TypeString, value)
	}
	if _u.mutation.LpNameCleared() {
		_spec.ClearField(distributiondetail.FieldLpName, field.TypeString)
	}
	if value, ok := _u.mutation.LpUnits(); ok {
		_spec.SetField(distributiondetail.FieldLpUnits, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLpUnits(); ok {
		_spec.AddField(distributiondetail.FieldLpUnits, field.TypeFloat64, value)
	}
	if _u.mutation.LpUnitsCleared() {
		_spec.ClearField(distributiondetail.FieldLpUnits, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LpDistributionAmount(); ok {
		_spec.SetField(distributiondetail.FieldLpDistributionAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLpDistributionAmount(); ok {
		_spec.AddField(distributiondetail.FieldLpDistributionAmount, field.TypeFloat64, value)
	}
	if _u.mutation.LpDistributionAmountCleared() {
		_spec.ClearField(distributiondetail.FieldLpDistributionAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Irr(); ok {
		_spec.SetField(distributiondetail.FieldIrr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrr(); ok {
		_spec.AddField(distributiondetail.FieldIrr, field.TypeFloat64, value)
	}
	if _u.mutation.IrrCleared() {
		_spec.ClearField(distributiondetail.FieldIrr, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Multiple(); ok {
		_spec.SetField(distributiondetail.FieldMultiple, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMultiple(); ok {
		_spec.AddField(distributiondetail.FieldMultiple, field.TypeFloat64, value)
	}
	if _u.mutation.MultipleCleared() {
		_spec.ClearField(distributiondetail.FieldMultiple, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(distributiondetail.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(distributiondetail.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentInstructions(); ok {
		_spec.SetField(distributiondetail.FieldPaymentInstructions, field.TypeString, value)
	}
	if _u.mutation.PaymentInstructionsCleared() {
		_spec.ClearField(distributiondetail.FieldPaymentInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(distributiondetail.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(distributiondetail.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(distributiondetail.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, distributiondetail.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(distributiondetail.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(distributiondetail.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(distributiondetail.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{distributiondetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DistributionDetailUpdateOne is the builder for updating a single DistributionDetail entity.
type DistributionDetailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DistributionDetailMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DistributionDetailUpdateOne) SetDocumentID(v uuid.UUID) *DistributionDetailUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableDocumentID(v *uuid.UUID) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDistributionDate sets the "distribution_date" field.
func (_u *DistributionDetailUpdateOne) SetDistributionDate(v time.Time) *DistributionDetailUpdateOne {
	_u.mutation.SetDistributionDate(v)
	return _u
}

// SetNillableDistributionDate sets the "distribution_date" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableDistributionDate(v *time.Time) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetDistributionDate(*v)
	}
	return _u
}

// ClearDistributionDate clears the value of the "distribution_date" field.
func (_u *DistributionDetailUpdateOne) ClearDistributionDate() *DistributionDetailUpdateOne {
	_u.mutation.ClearDistributionDate()
	return _u
}

// SetRecordDate sets the "record_date" field.
func (_u *DistributionDetailUpdateOne) SetRecordDate(v time.Time) *DistributionDetailUpdateOne {
	_u.mutation.SetRecordDate(v)
	return _u
}

// SetNillableRecordDate sets the "record_date" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableRecordDate(v *time.Time) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetRecordDate(*v)
	}
	return _u
}

// ClearRecordDate clears the value of the "record_date" field.
func (_u *DistributionDetailUpdateOne) ClearRecordDate() *DistributionDetailUpdateOne {
	_u.mutation.ClearRecordDate()
	return _u
}

// SetDistributionAmount sets the "distribution_amount" field.
func (_u *DistributionDetailUpdateOne) SetDistributionAmount(v float64) *DistributionDetailUpdateOne {
	_u.mutation.ResetDistributionAmount()
	_u.mutation.SetDistributionAmount(v)
	return _u
}

// SetNillableDistributionAmount sets the "distribution_amount" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableDistributionAmount(v *float64) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetDistributionAmount(*v)
	}
	return _u
}

// AddDistributionAmount adds value to the "distribution_amount" field.
func (_u *DistributionDetailUpdateOne) AddDistributionAmount(v float64) *DistributionDetailUpdateOne {
	_u.mutation.AddDistributionAmount(v)
	return _u
}

// ClearDistributionAmount clears the value of the "distribution_amount" field.
func (_u *DistributionDetailUpdateOne) ClearDistributionAmount() *DistributionDetailUpdateOne {
	_u.mutation.ClearDistributionAmount()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *DistributionDetailUpdateOne) SetCurrency(v string) *DistributionDetailUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableCurrency(v *string) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *DistributionDetailUpdateOne) ClearCurrency() *DistributionDetailUpdateOne {
	_u.mutation.ClearCurrency()
	return _u
}

// SetDistributionPerUnit sets the "distribution_per_unit" field.
func (_u *DistributionDetailUpdateOne) SetDistributionPerUnit(v float64) *DistributionDetailUpdateOne {
	_u.mutation.ResetDistributionPerUnit()
	_u.mutation.SetDistributionPerUnit(v)
	return _u
}

// SetNillableDistributionPerUnit sets the "distribution_per_unit" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableDistributionPerUnit(v *float64) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetDistributionPerUnit(*v)
	}
	return _u
}

// AddDistributionPerUnit adds value to the "distribution_per_unit" field.
func (_u *DistributionDetailUpdateOne) AddDistributionPerUnit(v float64) *DistributionDetailUpdateOne {
	_u.mutation.AddDistributionPerUnit(v)
	return _u
}

// ClearDistributionPerUnit clears the value of the "distribution_per_unit" field.
func (_u *DistributionDetailUpdateOne) ClearDistributionPerUnit() *DistributionDetailUpdateOne {
	_u.mutation.ClearDistributionPerUnit()
	return _u
}

// SetFundName sets the "fund_name" field.
func (_u *DistributionDetailUpdateOne) SetFundName(v string) *DistributionDetailUpdateOne {
	_u.mutation.SetFundName(v)
	return _u
}

// SetNillableFundName sets the "fund_name" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableFundName(v *string) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetFundName(*v)
	}
	return _u
}

// ClearFundName clears the value of the "fund_name" field.
func (_u *DistributionDetailUpdateOne) ClearFundName() *DistributionDetailUpdateOne {
	_u.mutation.ClearFundName()
	return _u
}

// SetFundNav sets the "fund_nav" field.
func (_u *DistributionDetailUpdateOne) SetFundNav(v float64) *DistributionDetailUpdateOne {
	_u.mutation.ResetFundNav()
	_u.mutation.SetFundNav(v)
	return _u
}

// SetNillableFundNav sets the "fund_nav" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableFundNav(v *float64) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetFundNav(*v)
	}
	return _u
}

// AddFundNav adds value to the "fund_nav" field.
func (_u *DistributionDetailUpdateOne) AddFundNav(v float64) *DistributionDetailUpdateOne {
	_u.mutation.AddFundNav(v)
	return _u
}

// ClearFundNav clears the value of the "fund_nav" field.
func (_u *DistributionDetailUpdateOne) ClearFundNav() *DistributionDetailUpdateOne {
	_u.mutation.ClearFundNav()
	return _u
}

// SetTotalDistributions sets the "total_distributions" field.
func (_u *DistributionDetailUpdateOne) SetTotalDistributions(v float64) *DistributionDetailUpdateOne {
	_u.mutation.ResetTotalDistributions()
	_u.mutation.SetTotalDistributions(v)
	return _u
}

// SetNillableTotalDistributions sets the "total_distributions" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableTotalDistributions(v *float64) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetTotalDistributions(*v)
	}
	return _u
}

// AddTotalDistributions adds value to the "total_distributions" field.
func (_u *DistributionDetailUpdateOne) AddTotalDistributions(v float64) *DistributionDetailUpdateOne {
	_u.mutation.AddTotalDistributions(v)
	return _u
}

// ClearTotalDistributions clears the value of the "total_distributions" field.
func (_u *DistributionDetailUpdateOne) ClearTotalDistributions() *DistributionDetailUpdateOne {
	_u.mutation.ClearTotalDistributions()
	return _u
}

// SetLpName sets the "lp_name" field.
func (_u *DistributionDetailUpdateOne) SetLpName(v string) *DistributionDetailUpdateOne {
	_u.mutation.SetLpName(v)
	return _u
}

// SetNillableLpName sets the "lp_name" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableLpName(v *string) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetLpName(*v)
	}
	return _u
}

// ClearLpName clears the value of the "lp_name" field.
func (_u *DistributionDetailUpdateOne) ClearLpName() *DistributionDetailUpdateOne {
	_u.mutation.ClearLpName()
	return _u
}

// SetLpUnits sets the "lp_units" field.
func (_u *DistributionDetailUpdateOne) SetLpUnits(v float64) *DistributionDetailUpdateOne {
	_u.mutation.ResetLpUnits()
	_u.mutation.SetLpUnits(v)
	return _u
}

// SetNillableLpUnits sets the "lp_units" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableLpUnits(v *float64) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetLpUnits(*v)
	}
	return _u
}

// AddLpUnits adds value to the "lp_units" field.
func (_u *DistributionDetailUpdateOne) AddLpUnits(v float64) *DistributionDetailUpdateOne {
	_u.mutation.AddLpUnits(v)
	return _u
}

// ClearLpUnits clears the value of the "lp_units" field.
func (_u *DistributionDetailUpdateOne) ClearLpUnits() *DistributionDetailUpdateOne {
	_u.mutation.ClearLpUnits()
	return _u
}

// SetLpDistributionAmount sets the "lp_distribution_amount" field.
func (_u *DistributionDetailUpdateOne) SetLpDistributionAmount(v float64) *DistributionDetailUpdateOne {
	_u.mutation.ResetLpDistributionAmount()
	_u.mutation.SetLpDistributionAmount(v)
	return _u
}

// SetNillableLpDistributionAmount sets the "lp_distribution_amount" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableLpDistributionAmount(v *float64) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetLpDistributionAmount(*v)
	}
	return _u
}

// AddLpDistributionAmount adds value to the "lp_distribution_amount" field.
func (_u *DistributionDetailUpdateOne) AddLpDistributionAmount(v float64) *DistributionDetailUpdateOne {
	_u.mutation.AddLpDistributionAmount(v)
	return _u
}

// ClearLpDistributionAmount clears the value of the "lp_distribution_amount" field.
func (_u *DistributionDetailUpdateOne) ClearLpDistributionAmount() *DistributionDetailUpdateOne {
	_u.mutation.ClearLpDistributionAmount()
	return _u
}

// SetIrr sets the "irr" field.
func (_u *DistributionDetailUpdateOne) SetIrr(v float64) *DistributionDetailUpdateOne {
	_u.mutation.ResetIrr()
	_u.mutation.SetIrr(v)
	return _u
}

// SetNillableIrr sets the "irr" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableIrr(v *float64) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetIrr(*v)
	}
	return _u
}

// AddIrr adds value to the "irr" field.
func (_u *DistributionDetailUpdateOne) AddIrr(v float64) *DistributionDetailUpdateOne {
	_u.mutation.AddIrr(v)
	return _u
}

// ClearIrr clears the value of the "irr" field.
func (_u *DistributionDetailUpdateOne) ClearIrr() *DistributionDetailUpdateOne {
	_u.mutation.ClearIrr()
	return _u
}

// SetMultiple sets the "multiple" field.
func (_u *DistributionDetailUpdateOne) SetMultiple(v float64) *DistributionDetailUpdateOne {
	_u.mutation.ResetMultiple()
	_u.mutation.SetMultiple(v)
	return _u
}

// SetNillableMultiple sets the "multiple" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableMultiple(v *float64) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetMultiple(*v)
	}
	return _u
}

// AddMultiple adds value to the "multiple" field.
func (_u *DistributionDetailUpdateOne) AddMultiple(v float64) *DistributionDetailUpdateOne {
	_u.mutation.AddMultiple(v)
	return _u
}

// ClearMultiple clears the value of the "multiple" field.
func (_u *DistributionDetailUpdateOne) ClearMultiple() *DistributionDetailUpdateOne {
	_u.mutation.ClearMultiple()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *DistributionDetailUpdateOne) SetPaymentMethod(v string) *DistributionDetailUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillablePaymentMethod(v *string) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *DistributionDetailUpdateOne) ClearPaymentMethod() *DistributionDetailUpdateOne {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetPaymentInstructions sets the "payment_instructions" field.
func (_u *DistributionDetailUpdateOne) SetPaymentInstructions(v string) *DistributionDetailUpdateOne {
	_u.mutation.SetPaymentInstructions(v)
	return _u
}

// SetNillablePaymentInstructions sets the "payment_instructions" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillablePaymentInstructions(v *string) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetPaymentInstructions(*v)
	}
	return _u
}

// ClearPaymentInstructions clears the value of the "payment_instructions" field.
func (_u *DistributionDetailUpdateOne) ClearPaymentInstructions() *DistributionDetailUpdateOne {
	_u.mutation.ClearPaymentInstructions()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DistributionDetailUpdateOne) SetNotes(v string) *DistributionDetailUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableNotes(v *string) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *DistributionDetailUpdateOne) ClearNotes() *DistributionDetailUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *DistributionDetailUpdateOne) SetExtractedData(v json.RawMessage) *DistributionDetailUpdateOne {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *DistributionDetailUpdateOne) AppendExtractedData(v json.RawMessage) *DistributionDetailUpdateOne {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *DistributionDetailUpdateOne) ClearExtractedData() *DistributionDetailUpdateOne {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DistributionDetailUpdateOne) SetCreatedAt(v time.Time) *DistributionDetailUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DistributionDetailUpdateOne) SetNillableCreatedAt(v *time.Time) *DistributionDetailUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DistributionDetailUpdateOne) SetUpdatedAt(v time.Time) *DistributionDetailUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DistributionDetailUpdateOne) SetDocument(v *Document) *DistributionDetailUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DistributionDetailMutation object of the builder.
func (_u *DistributionDetailUpdateOne) Mutation() *DistributionDetailMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DistributionDetailUpdateOne) ClearDocument() *DistributionDetailUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the DistributionDetailUpdate builder.
func (_u *DistributionDetailUpdateOne) Where(ps ...predicate.DistributionDetail) *DistributionDetailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DistributionDetailUpdateOne) Select(field string, fields ...string) *DistributionDetailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DistributionDetail entity.
func (_u *DistributionDetailUpdateOne) Save(ctx context.Context) (*DistributionDetail, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributionDetailUpdateOne) SaveX(ctx context.Context) *DistributionDetail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DistributionDetailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributionDetailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DistributionDetailUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := distributiondetail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributionDetailUpdateOne) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DistributionDetail.document"`)
	}
	return nil
}

func (_u *DistributionDetailUpdateOne) sqlSave(ctx context.Context) (_node *DistributionDetail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distributiondetail.Table, distributiondetail.Columns, sqlgraph.NewFieldSpec(distributiondetail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DistributionDetail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, distributiondetail.FieldID)
		for _, f := range fields {
			if !distributiondetail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != distributiondetail.FieldID {
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
	if value, ok := _u.mutation.DistributionDate(); ok {
		_spec.SetField(distributiondetail.FieldDistributionDate, field.TypeTime, value)
	}
	if _u.mutation.DistributionDateCleared() {
		_spec.ClearField(distributiondetail.FieldDistributionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RecordDate(); ok {
		_spec.SetField(distributiondetail.FieldRecordDate, field.TypeTime, value)
	}
	if _u.mutation.RecordDateCleared() {
		_spec.ClearField(distributiondetail.FieldRecordDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DistributionAmount(); ok {
		_spec.SetField(distributiondetail.FieldDistributionAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistributionAmount(); ok {
		_spec.AddField(distributiondetail.FieldDistributionAmount, field.TypeFloat64, value)
	}
	if _u.mutation.DistributionAmountCleared() {
		_spec.ClearField(distributiondetail.FieldDistributionAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(distributiondetail.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(distributiondetail.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.DistributionPerUnit(); ok {
		_spec.SetField(distributiondetail.FieldDistributionPerUnit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistributionPerUnit(); ok {
		_spec.AddField(distributiondetail.FieldDistributionPerUnit, field.TypeFloat64, value)
	}
	if _u.mutation.DistributionPerUnitCleared() {
		_spec.ClearField(distributiondetail.FieldDistributionPerUnit, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FundName(); ok {
		_spec.SetField(distributiondetail.FieldFundName, field.TypeString, value)
	}
	if _u.mutation.FundNameCleared() {
		_spec.ClearField(distributiondetail.FieldFundName, field.TypeString)
	}
	if value, ok := _u.mutation.FundNav(); ok {
		_spec.SetField(distributiondetail.FieldFundNav, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFundNav(); ok {
		_spec.AddField(distributiondetail.FieldFundNav, field.TypeFloat64, value)
	}
	if _u.mutation.FundNavCleared() {
		_spec.ClearField(distributiondetail.FieldFundNav, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalDistributions(); ok {
		_spec.SetField(distributiondetail.FieldTotalDistributions, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalDistributions(); ok {
		_spec.AddField(distributiondetail.FieldTotalDistributions, field.TypeFloat64, value)
	}
	if _u.mutation.TotalDistributionsCleared() {
		_spec.ClearField(distributiondetail.FieldTotalDistributions, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LpName(); ok {
		_spec.SetField(distributiondetail.FieldLpName, field.TypeString, value)
	}
	if _u.mutation.LpNameCleared() {
		_spec.ClearField(distributiondetail.FieldLpName, field.TypeString)
	}
	if value, ok := _u.mutation.LpUnits(); ok {
		_spec.SetField(distributiondetail.FieldLpUnits, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLpUnits(); ok {
		_spec.AddField(distributiondetail.FieldLpUnits, field.TypeFloat64, value)
	}
	if _u.mutation.LpUnitsCleared() {
		_spec.ClearField(distributiondetail.FieldLpUnits, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LpDistributionAmount(); ok {
		_spec.SetField(distributiondetail.FieldLpDistributionAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLpDistributionAmount(); ok {
		_spec.AddField(distributiondetail.FieldLpDistributionAmount, field.TypeFloat64, value)
	}
	if _u.mutation.LpDistributionAmountCleared() {
		_spec.ClearField(distributiondetail.FieldLpDistributionAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Irr(); ok {
		_spec.SetField(distributiondetail.FieldIrr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrr(); ok {
		_spec.AddField(distributiondetail.FieldIrr, field.TypeFloat64, value)
	}
	if _u.mutation.IrrCleared() {
		_spec.ClearField(distributiondetail.FieldIrr, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Multiple(); ok {
		_spec.SetField(distributiondetail.FieldMultiple, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMultiple(); ok {
		_spec.AddField(distributiondetail.FieldMultiple, field.TypeFloat64, value)
	}
	if _u.mutation.MultipleCleared() {
		_spec.ClearField(distributiondetail.FieldMultiple, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(distributiondetail.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(distributiondetail.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentInstructions(); ok {
		_spec.SetField(distributiondetail.FieldPaymentInstructions, field.TypeString, value)
	}
	if _u.mutation.PaymentInstructionsCleared() {
		_spec.ClearField(distributiondetail.FieldPaymentInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(distributiondetail.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(distributiondetail.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(distributiondetail.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, distributiondetail.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(distributiondetail.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(distributiondetail.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(distributiondetail.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DistributionDetail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{distributiondetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
