// Code generated by ent, DO NOT EDIT.

package capitalcalldetail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldDocumentID, v))
}

// CallDate applies equality check predicate on the "call_date" field. It's identical to CallDateEQ.
func CallDate(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldCallDate, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldDueDate, v))
}

// CallAmount applies equality check predicate on the "call_amount" field. It's identical to CallAmountEQ.
func CallAmount(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldCallAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldCurrency, v))
}

// CallPercentage applies equality check predicate on the "call_percentage" field. It's identical to CallPercentageEQ.
func CallPercentage(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldCallPercentage, v))
}

// FundName applies equality check predicate on the "fund_name" field. It's identical to FundNameEQ.
func FundName(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldFundName, v))
}

// FundSize applies equality check predicate on the "fund_size" field. It's identical to FundSizeEQ.
func FundSize(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldFundSize, v))
}

// LpName applies equality check predicate on the "lp_name" field. It's identical to LpNameEQ.
func LpName(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldLpName, v))
}

// LpCommitment applies equality check predicate on the "lp_commitment" field. It's identical to LpCommitmentEQ.
func LpCommitment(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldLpCommitment, v))
}

// RemainingCommitment applies equality check predicate on the "remaining_commitment" field. It's identical to RemainingCommitmentEQ.
func RemainingCommitment(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldRemainingCommitment, v))
}

// PaymentInstructions applies equality check predicate on the "payment_instructions" field. It's identical to PaymentInstructionsEQ.
func PaymentInstructions(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldPaymentInstructions, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldDocumentID, vs...))
}

// CallDateEQ applies the EQ predicate on the "call_date" field.
func CallDateEQ(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldCallDate, v))
}

// CallDateNEQ applies the NEQ predicate on the "call_date" field.
func CallDateNEQ(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldCallDate, v))
}

// CallDateIn applies the In predicate on the "call_date" field.
func CallDateIn(vs ...time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldCallDate, vs...))
}

// CallDateNotIn applies the NotIn predicate on the "call_date" field.
func CallDateNotIn(vs ...time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldCallDate, vs...))
}

// CallDateGT applies the GT predicate on the "call_date" field.
func CallDateGT(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldCallDate, v))
}

// CallDateGTE applies the GTE predicate on the "call_date" field.
func CallDateGTE(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldCallDate, v))
}

// CallDateLT applies the LT predicate on the "call_date" field.
func CallDateLT(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldCallDate, v))
}

// CallDateLTE applies the LTE predicate on the "call_date" field.
func CallDateLTE(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldCallDate, v))
}

// CallDateIsNil applies the IsNil predicate on the "call_date" field.
func CallDateIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldCallDate))
}

// CallDateNotNil applies the NotNil predicate on the "call_date" field.
func CallDateNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldCallDate))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldDueDate))
}

// CallAmountEQ applies the EQ predicate on the "call_amount" field.
func CallAmountEQ(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldCallAmount, v))
}

// CallAmountNEQ applies the NEQ predicate on the "call_amount" field.
func CallAmountNEQ(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldCallAmount, v))
}

// CallAmountIn applies the In predicate on the "call_amount" field.
func CallAmountIn(vs ...float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldCallAmount, vs...))
}

// CallAmountNotIn applies the NotIn predicate on the "call_amount" field.
func CallAmountNotIn(vs ...float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldCallAmount, vs...))
}

// CallAmountGT applies the GT predicate on the "call_amount" field.
func CallAmountGT(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldCallAmount, v))
}

// CallAmountGTE applies the GTE predicate on the "call_amount" field.
func CallAmountGTE(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldCallAmount, v))
}

// CallAmountLT applies the LT predicate on the "call_amount" field.
func CallAmountLT(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldCallAmount, v))
}

// CallAmountLTE applies the LTE predicate on the "call_amount" field.
func CallAmountLTE(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldCallAmount, v))
}

// CallAmountIsNil applies the IsNil predicate on the "call_amount" field.
func CallAmountIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldCallAmount))
}

// CallAmountNotNil applies the NotNil predicate on the "call_amount" field.
func CallAmountNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldCallAmount))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyIsNil applies the IsNil predicate on the "currency" field.
func CurrencyIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldCurrency))
}

// CurrencyNotNil applies the NotNil predicate on the "currency" field.
func CurrencyNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldCurrency))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldContainsFold(FieldCurrency, v))
}

// CallPercentageEQ applies the EQ predicate on the "call_percentage" field.
func CallPercentageEQ(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldCallPercentage, v))
}

// CallPercentageNEQ applies the NEQ predicate on the "call_percentage" field.
func CallPercentageNEQ(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldCallPercentage, v))
}

// CallPercentageIn applies the In predicate on the "call_percentage" field.
func CallPercentageIn(vs ...float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldCallPercentage, vs...))
}

// CallPercentageNotIn applies the NotIn predicate on the "call_percentage" field.
func CallPercentageNotIn(vs ...float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldCallPercentage, vs...))
}

// CallPercentageGT applies the GT predicate on the "call_percentage" field.
func CallPercentageGT(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldCallPercentage, v))
}

// CallPercentageGTE applies the GTE predicate on the "call_percentage" field.
func CallPercentageGTE(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldCallPercentage, v))
}

// CallPercentageLT applies the LT predicate on the "call_percentage" field.
func CallPercentageLT(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldCallPercentage, v))
}

// CallPercentageLTE applies the LTE predicate on the "call_percentage" field.
func CallPercentageLTE(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldCallPercentage, v))
}

// CallPercentageIsNil applies the IsNil predicate on the "call_percentage" field.
func CallPercentageIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldCallPercentage))
}

// CallPercentageNotNil applies the NotNil predicate on the "call_percentage" field.
func CallPercentageNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldCallPercentage))
}

// FundNameEQ applies the EQ predicate on the "fund_name" field.
func FundNameEQ(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldFundName, v))
}

// FundNameNEQ applies the NEQ predicate on the "fund_name" field.
func FundNameNEQ(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldFundName, v))
}

// FundNameIn applies the In predicate on the "fund_name" field.
func FundNameIn(vs ...string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldFundName, vs...))
}

// FundNameNotIn applies the NotIn predicate on the "fund_name" field.
func FundNameNotIn(vs ...string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldFundName, vs...))
}

// FundNameGT applies the GT predicate on the "fund_name" field.
func FundNameGT(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldFundName, v))
}

// FundNameGTE applies the GTE predicate on the "fund_name" field.
func FundNameGTE(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldFundName, v))
}

// FundNameLT applies the LT predicate on the "fund_name" field.
func FundNameLT(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldFundName, v))
}

// FundNameLTE applies the LTE predicate on the "fund_name" field.
func FundNameLTE(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldFundName, v))
}

// FundNameContains applies the Contains predicate on the "fund_name" field.
func FundNameContains(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldContains(FieldFundName, v))
}

// FundNameHasPrefix applies the HasPrefix predicate on the "fund_name" field.
func FundNameHasPrefix(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldHasPrefix(FieldFundName, v))
}

// FundNameHasSuffix applies the HasSuffix predicate on the "fund_name" field.
func FundNameHasSuffix(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldHasSuffix(FieldFundName, v))
}

// FundNameIsNil applies the IsNil predicate on the "fund_name" field.
func FundNameIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldFundName))
}

// FundNameNotNil applies the NotNil predicate on the "fund_name" field.
func FundNameNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldFundName))
}

// FundNameEqualFold applies the EqualFold predicate on the "fund_name" field.
func FundNameEqualFold(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEqualFold(FieldFundName, v))
}

// FundNameContainsFold applies the ContainsFold predicate on the "fund_name" field.
func FundNameContainsFold(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldContainsFold(FieldFundName, v))
}

// FundSizeEQ applies the EQ predicate on the "fund_size" field.
func FundSizeEQ(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldFundSize, v))
}

// FundSizeNEQ applies the NEQ predicate on the "fund_size" field.
func FundSizeNEQ(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldFundSize, v))
}

// FundSizeIn applies the In predicate on the "fund_size" field.
func FundSizeIn(vs ...float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldFundSize, vs...))
}

// FundSizeNotIn applies the NotIn predicate on the "fund_size" field.
func FundSizeNotIn(vs ...float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldFundSize, vs...))
}

// FundSizeGT applies the GT predicate on the "fund_size" field.
func FundSizeGT(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldFundSize, v))
}

// FundSizeGTE applies the GTE predicate on the "fund_size" field.
func FundSizeGTE(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldFundSize, v))
}

// FundSizeLT applies the LT predicate on the "fund_size" field.
func FundSizeLT(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldFundSize, v))
}

// FundSizeLTE applies the LTE predicate on the "fund_size" field.
func FundSizeLTE(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldFundSize, v))
}

// FundSizeIsNil applies the IsNil predicate on the "fund_size" field.
func FundSizeIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldFundSize))
}

// FundSizeNotNil applies the NotNil predicate on the "fund_size" field.
func FundSizeNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldFundSize))
}

// LpNameEQ applies the EQ predicate on the "lp_name" field.
func LpNameEQ(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldLpName, v))
}

// LpNameNEQ applies the NEQ predicate on the "lp_name" field.
func LpNameNEQ(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldLpName, v))
}

// LpNameIn applies the In predicate on the "lp_name" field.
func LpNameIn(vs ...string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldLpName, vs...))
}

// LpNameNotIn applies the NotIn predicate on the "lp_name" field.
func LpNameNotIn(vs ...string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldLpName, vs...))
}

// LpNameGT applies the GT predicate on the "lp_name" field.
func LpNameGT(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldLpName, v))
}

// LpNameGTE applies the GTE predicate on the "lp_name" field.
func LpNameGTE(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldLpName, v))
}

// LpNameLT applies the LT predicate on the "lp_name" field.
func LpNameLT(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldLpName, v))
}

// LpNameLTE applies the LTE predicate on the "lp_name" field.
func LpNameLTE(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldLpName, v))
}

// LpNameContains applies the Contains predicate on the "lp_name" field.
func LpNameContains(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldContains(FieldLpName, v))
}

// LpNameHasPrefix applies the HasPrefix predicate on the "lp_name" field.
func LpNameHasPrefix(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldHasPrefix(FieldLpName, v))
}

// LpNameHasSuffix applies the HasSuffix predicate on the "lp_name" field.
func LpNameHasSuffix(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldHasSuffix(FieldLpName, v))
}

// LpNameIsNil applies the IsNil predicate on the "lp_name" field.
func LpNameIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldLpName))
}

// LpNameNotNil applies the NotNil predicate on the "lp_name" field.
func LpNameNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldLpName))
}

// LpNameEqualFold applies the EqualFold predicate on the "lp_name" field.
func LpNameEqualFold(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEqualFold(FieldLpName, v))
}

// LpNameContainsFold applies the ContainsFold predicate on the "lp_name" field.
func LpNameContainsFold(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldContainsFold(FieldLpName, v))
}

// LpCommitmentEQ applies the EQ predicate on the "lp_commitment" field.
func LpCommitmentEQ(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldLpCommitment, v))
}

// LpCommitmentNEQ applies the NEQ predicate on the "lp_commitment" field.
func LpCommitmentNEQ(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldLpCommitment, v))
}

// LpCommitmentIn applies the In predicate on the "lp_commitment" field.
func LpCommitmentIn(vs ...float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldLpCommitment, vs...))
}

// LpCommitmentNotIn applies the NotIn predicate on the "lp_commitment" field.
func LpCommitmentNotIn(vs ...float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldLpCommitment, vs...))
}

// LpCommitmentGT applies the GT predicate on the "lp_commitment" field.
func LpCommitmentGT(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldLpCommitment, v))
}

// LpCommitmentGTE applies the GTE predicate on the "lp_commitment" field.
func LpCommitmentGTE(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldLpCommitment, v))
}

// LpCommitmentLT applies the LT predicate on the "lp_commitment" field.
func LpCommitmentLT(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldLpCommitment, v))
}

// LpCommitmentLTE applies the LTE predicate on the "lp_commitment" field.
func LpCommitmentLTE(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldLpCommitment, v))
}

// LpCommitmentIsNil applies the IsNil predicate on the "lp_commitment" field.
func LpCommitmentIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldLpCommitment))
}

// LpCommitmentNotNil applies the NotNil predicate on the "lp_commitment" field.
func LpCommitmentNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldLpCommitment))
}

// RemainingCommitmentEQ applies the EQ predicate on the "remaining_commitment" field.
func RemainingCommitmentEQ(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldRemainingCommitment, v))
}

// RemainingCommitmentNEQ applies the NEQ predicate on the "remaining_commitment" field.
func RemainingCommitmentNEQ(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldRemainingCommitment, v))
}

// RemainingCommitmentIn applies the In predicate on the "remaining_commitment" field.
func RemainingCommitmentIn(vs ...float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldRemainingCommitment, vs...))
}

// RemainingCommitmentNotIn applies the NotIn predicate on the "remaining_commitment" field.
func RemainingCommitmentNotIn(vs ...float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldRemainingCommitment, vs...))
}

// RemainingCommitmentGT applies the GT predicate on the "remaining_commitment" field.
func RemainingCommitmentGT(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldRemainingCommitment, v))
}

// RemainingCommitmentGTE applies the GTE predicate on the "remaining_commitment" field.
func RemainingCommitmentGTE(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldRemainingCommitment, v))
}

// RemainingCommitmentLT applies the LT predicate on the "remaining_commitment" field.
func RemainingCommitmentLT(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldRemainingCommitment, v))
}

// RemainingCommitmentLTE applies the LTE predicate on the "remaining_commitment" field.
func RemainingCommitmentLTE(v float64) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldRemainingCommitment, v))
}

// RemainingCommitmentIsNil applies the IsNil predicate on the "remaining_commitment" field.
func RemainingCommitmentIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldRemainingCommitment))
}

// RemainingCommitmentNotNil applies the NotNil predicate on the "remaining_commitment" field.
func RemainingCommitmentNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldRemainingCommitment))
}

// PaymentInstructionsEQ applies the EQ predicate on the "payment_instructions" field.
func PaymentInstructionsEQ(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldPaymentInstructions, v))
}

// PaymentInstructionsNEQ applies the NEQ predicate on the "payment_instructions" field.
func PaymentInstructionsNEQ(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldPaymentInstructions, v))
}

// PaymentInstructionsIn applies the In predicate on the "payment_instructions" field.
func PaymentInstructionsIn(vs ...string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldPaymentInstructions, vs...))
}

// PaymentInstructionsNotIn applies the NotIn predicate on the "payment_instructions" field.
func PaymentInstructionsNotIn(vs ...string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldPaymentInstructions, vs...))
}

// PaymentInstructionsGT applies the GT predicate on the "payment_instructions" field.
func PaymentInstructionsGT(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldPaymentInstructions, v))
}

// PaymentInstructionsGTE applies the GTE predicate on the "payment_instructions" field.
func PaymentInstructionsGTE(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldPaymentInstructions, v))
}

// PaymentInstructionsLT applies the LT predicate on the "payment_instructions" field.
func PaymentInstructionsLT(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldPaymentInstructions, v))
}

// PaymentInstructionsLTE applies the LTE predicate on the "payment_instructions" field.
func PaymentInstructionsLTE(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldPaymentInstructions, v))
}

// PaymentInstructionsContains applies the Contains predicate on the "payment_instructions" field.
func PaymentInstructionsContains(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldContains(FieldPaymentInstructions, v))
}

// PaymentInstructionsHasPrefix applies the HasPrefix predicate on the "payment_instructions" field.
func PaymentInstructionsHasPrefix(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldHasPrefix(FieldPaymentInstructions, v))
}

// PaymentInstructionsHasSuffix applies the HasSuffix predicate on the "payment_instructions" field.
func PaymentInstructionsHasSuffix(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldHasSuffix(FieldPaymentInstructions, v))
}

// PaymentInstructionsIsNil applies the IsNil predicate on the "payment_instructions" field.
func PaymentInstructionsIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldPaymentInstructions))
}

// PaymentInstructionsNotNil applies the NotNil predicate on the "payment_instructions" field.
func PaymentInstructionsNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldPaymentInstructions))
}

// PaymentInstructionsEqualFold applies the EqualFold predicate on the "payment_instructions" field.
func PaymentInstructionsEqualFold(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEqualFold(FieldPaymentInstructions, v))
}

// PaymentInstructionsContainsFold applies the ContainsFold predicate on the "payment_instructions" field.
func PaymentInstructionsContainsFold(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldContainsFold(FieldPaymentInstructions, v))
}

// WireTransferInfoIsNil applies the IsNil predicate on the "wire_transfer_info" field.
func WireTransferInfoIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldWireTransferInfo))
}

// WireTransferInfoNotNil applies the NotNil predicate on the "wire_transfer_info" field.
func WireTransferInfoNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldWireTransferInfo))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldContainsFold(FieldNotes, v))
}

// ExtractedDataIsNil applies the IsNil predicate on the "extracted_data" field.
func ExtractedDataIsNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIsNull(FieldExtractedData))
}

// ExtractedDataNotNil applies the NotNil predicate on the "extracted_data" field.
func ExtractedDataNotNil() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotNull(FieldExtractedData))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CapitalCallDetail) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CapitalCallDetail) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CapitalCallDetail) predicate.CapitalCallDetail {
	return predicate.CapitalCallDetail(sql.NotPredicates(p))
}
