// Code generated by ent, DO NOT EDIT.

package distributiondetail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldDocumentID, v))
}

// DistributionDate applies equality check predicate on the "distribution_date" field. It's identical to DistributionDateEQ.
func DistributionDate(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldDistributionDate, v))
}

// RecordDate applies equality check predicate on the "record_date" field. It's identical to RecordDateEQ.
func RecordDate(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldRecordDate, v))
}

// DistributionAmount applies equality check predicate on the "distribution_amount" field. It's identical to DistributionAmountEQ.
func DistributionAmount(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldDistributionAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldCurrency, v))
}

// DistributionPerUnit applies equality check predicate on the "distribution_per_unit" field. It's identical to DistributionPerUnitEQ.
func DistributionPerUnit(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldDistributionPerUnit, v))
}

// FundName applies equality check predicate on the "fund_name" field. It's identical to FundNameEQ.
func FundName(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldFundName, v))
}

// FundNav applies equality check predicate on the "fund_nav" field. It's identical to FundNavEQ.
func FundNav(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldFundNav, v))
}

// TotalDistributions applies equality check predicate on the "total_distributions" field. It's identical to TotalDistributionsEQ.
func TotalDistributions(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldTotalDistributions, v))
}

// LpName applies equality check predicate on the "lp_name" field. It's identical to LpNameEQ.
func LpName(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldLpName, v))
}

// LpUnits applies equality check predicate on the "lp_units" field. It's identical to LpUnitsEQ.
func LpUnits(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldLpUnits, v))
}

// LpDistributionAmount applies equality check predicate on the "lp_distribution_amount" field. It's identical to LpDistributionAmountEQ.
func LpDistributionAmount(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldLpDistributionAmount, v))
}

// Irr applies equality check predicate on the "irr" field. It's identical to IrrEQ.
func Irr(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldIrr, v))
}

// Multiple applies equality check predicate on the "multiple" field. It's identical to MultipleEQ.
func Multiple(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldMultiple, v))
}

// PaymentMethod applies equality check predicate on the "payment_method" field. It's identical to PaymentMethodEQ.
func PaymentMethod(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentInstructions applies equality check predicate on the "payment_instructions" field. It's identical to PaymentInstructionsEQ.
func PaymentInstructions(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldPaymentInstructions, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DistributionDateEQ applies the EQ predicate on the "distribution_date" field.
func DistributionDateEQ(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldDistributionDate, v))
}

// DistributionDateNEQ applies the NEQ predicate on the "distribution_date" field.
func DistributionDateNEQ(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldDistributionDate, v))
}

// DistributionDateIn applies the In predicate on the "distribution_date" field.
func DistributionDateIn(vs ...time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldDistributionDate, vs...))
}

// DistributionDateNotIn applies the NotIn predicate on the "distribution_date" field.
func DistributionDateNotIn(vs ...time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldDistributionDate, vs...))
}

// DistributionDateGT applies the GT predicate on the "distribution_date" field.
func DistributionDateGT(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldDistributionDate, v))
}

// DistributionDateGTE applies the GTE predicate on the "distribution_date" field.
func DistributionDateGTE(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldDistributionDate, v))
}

// DistributionDateLT applies the LT predicate on the "distribution_date" field.
func DistributionDateLT(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldDistributionDate, v))
}

// DistributionDateLTE applies the LTE predicate on the "distribution_date" field.
func DistributionDateLTE(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldDistributionDate, v))
}

// DistributionDateIsNil applies the IsNil predicate on the "distribution_date" field.
func DistributionDateIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldDistributionDate))
}

// DistributionDateNotNil applies the NotNil predicate on the "distribution_date" field.
func DistributionDateNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldDistributionDate))
}

// RecordDateEQ applies the EQ predicate on the "record_date" field.
func RecordDateEQ(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldRecordDate, v))
}

// RecordDateNEQ applies the NEQ predicate on the "record_date" field.
func RecordDateNEQ(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldRecordDate, v))
}

// RecordDateIn applies the In predicate on the "record_date" field.
func RecordDateIn(vs ...time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldRecordDate, vs...))
}

// RecordDateNotIn applies the NotIn predicate on the "record_date" field.
func RecordDateNotIn(vs ...time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldRecordDate, vs...))
}

// RecordDateGT applies the GT predicate on the "record_date" field.
func RecordDateGT(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldRecordDate, v))
}

// RecordDateGTE applies the GTE predicate on the "record_date" field.
func RecordDateGTE(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldRecordDate, v))
}

// RecordDateLT applies the LT predicate on the "record_date" field.
func RecordDateLT(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldRecordDate, v))
}

// RecordDateLTE applies the LTE predicate on the "record_date" field.
func RecordDateLTE(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldRecordDate, v))
}

// RecordDateIsNil applies the IsNil predicate on the "record_date" field.
func RecordDateIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldRecordDate))
}

// RecordDateNotNil applies the NotNil predicate on the "record_date" field.
func RecordDateNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldRecordDate))
}

// DistributionAmountEQ applies the EQ predicate on the "distribution_amount" field.
func DistributionAmountEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldDistributionAmount, v))
}

// DistributionAmountNEQ applies the NEQ predicate on the "distribution_amount" field.
func DistributionAmountNEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldDistributionAmount, v))
}

// DistributionAmountIn applies the In predicate on the "distribution_amount" field.
func DistributionAmountIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldDistributionAmount, vs...))
}

// DistributionAmountNotIn applies the NotIn predicate on the "distribution_amount" field.
func DistributionAmountNotIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldDistributionAmount, vs...))
}

// DistributionAmountGT applies the GT predicate on the "distribution_amount" field.
func DistributionAmountGT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldDistributionAmount, v))
}

// DistributionAmountGTE applies the GTE predicate on the "distribution_amount" field.
func DistributionAmountGTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldDistributionAmount, v))
}

// DistributionAmountLT applies the LT predicate on the "distribution_amount" field.
func DistributionAmountLT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldDistributionAmount, v))
}

// DistributionAmountLTE applies the LTE predicate on the "distribution_amount" field.
func DistributionAmountLTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldDistributionAmount, v))
}

// DistributionAmountIsNil applies the IsNil predicate on the "distribution_amount" field.
func DistributionAmountIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldDistributionAmount))
}

// DistributionAmountNotNil applies the NotNil predicate on the "distribution_amount" field.
func DistributionAmountNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldDistributionAmount))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyIsNil applies the IsNil predicate on the "currency" field.
func CurrencyIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldCurrency))
}

// CurrencyNotNil applies the NotNil predicate on the "currency" field.
func CurrencyNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldCurrency))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldContainsFold(FieldCurrency, v))
}

// DistributionPerUnitEQ applies the EQ predicate on the "distribution_per_unit" field.
func DistributionPerUnitEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldDistributionPerUnit, v))
}

// DistributionPerUnitNEQ applies the NEQ predicate on the "distribution_per_unit" field.
func DistributionPerUnitNEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldDistributionPerUnit, v))
}

// DistributionPerUnitIn applies the In predicate on the "distribution_per_unit" field.
func DistributionPerUnitIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldDistributionPerUnit, vs...))
}

// DistributionPerUnitNotIn applies the NotIn predicate on the "distribution_per_unit" field.
func DistributionPerUnitNotIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldDistributionPerUnit, vs...))
}

// DistributionPerUnitGT applies the GT predicate on the "distribution_per_unit" field.
func DistributionPerUnitGT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldDistributionPerUnit, v))
}

// DistributionPerUnitGTE applies the GTE predicate on the "distribution_per_unit" field.
func DistributionPerUnitGTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldDistributionPerUnit, v))
}

// DistributionPerUnitLT applies the LT predicate on the "distribution_per_unit" field.
func DistributionPerUnitLT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldDistributionPerUnit, v))
}

// DistributionPerUnitLTE applies the LTE predicate on the "distribution_per_unit" field.
func DistributionPerUnitLTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldDistributionPerUnit, v))
}

// DistributionPerUnitIsNil applies the IsNil predicate on the "distribution_per_unit" field.
func DistributionPerUnitIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldDistributionPerUnit))
}

// DistributionPerUnitNotNil applies the NotNil predicate on the "distribution_per_unit" field.
func DistributionPerUnitNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldDistributionPerUnit))
}

// FundNameEQ applies the EQ predicate on the "fund_name" field.
func FundNameEQ(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldFundName, v))
}

// FundNameNEQ applies the NEQ predicate on the "fund_name" field.
func FundNameNEQ(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldFundName, v))
}

// FundNameIn applies the In predicate on the "fund_name" field.
func FundNameIn(vs ...string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldFundName, vs...))
}

// FundNameNotIn applies the NotIn predicate on the "fund_name" field.
func FundNameNotIn(vs ...string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldFundName, vs...))
}

// FundNameGT applies the GT predicate on the "fund_name" field.
func FundNameGT(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldFundName, v))
}

// FundNameGTE applies the GTE predicate on the "fund_name" field.
func FundNameGTE(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldFundName, v))
}

// FundNameLT applies the LT predicate on the "fund_name" field.
func FundNameLT(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldFundName, v))
}

// FundNameLTE applies the LTE predicate on the "fund_name" field.
func FundNameLTE(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldFundName, v))
}

// FundNameContains applies the Contains predicate on the "fund_name" field.
func FundNameContains(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldContains(FieldFundName, v))
}

// FundNameHasPrefix applies the HasPrefix predicate on the "fund_name" field.
func FundNameHasPrefix(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldHasPrefix(FieldFundName, v))
}

// FundNameHasSuffix applies the HasSuffix predicate on the "fund_name" field.
func FundNameHasSuffix(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldHasSuffix(FieldFundName, v))
}

// FundNameIsNil applies the IsNil predicate on the "fund_name" field.
func FundNameIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldFundName))
}

// FundNameNotNil applies the NotNil predicate on the "fund_name" field.
func FundNameNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldFundName))
}

// FundNameEqualFold applies the EqualFold predicate on the "fund_name" field.
func FundNameEqualFold(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEqualFold(FieldFundName, v))
}

// FundNameContainsFold applies the ContainsFold predicate on the "fund_name" field.
func FundNameContainsFold(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldContainsFold(FieldFundName, v))
}

// FundNavEQ applies the EQ predicate on the "fund_nav" field.
func FundNavEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldFundNav, v))
}

// FundNavNEQ applies the NEQ predicate on the "fund_nav" field.
func FundNavNEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldFundNav, v))
}

// FundNavIn applies the In predicate on the "fund_nav" field.
func FundNavIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldFundNav, vs...))
}

// FundNavNotIn applies the NotIn predicate on the "fund_nav" field.
func FundNavNotIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldFundNav, vs...))
}

// FundNavGT applies the GT predicate on the "fund_nav" field.
func FundNavGT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldFundNav, v))
}

// FundNavGTE applies the GTE predicate on the "fund_nav" field.
func FundNavGTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldFundNav, v))
}

// FundNavLT applies the LT predicate on the "fund_nav" field.
func FundNavLT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldFundNav, v))
}

// FundNavLTE applies the LTE predicate on the "fund_nav" field.
func FundNavLTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldFundNav, v))
}

// FundNavIsNil applies the IsNil predicate on the "fund_nav" field.
func FundNavIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldFundNav))
}

// FundNavNotNil applies the NotNil predicate on the "fund_nav" field.
func FundNavNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldFundNav))
}

// TotalDistributionsEQ applies the EQ predicate on the "total_distributions" field.
func TotalDistributionsEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldTotalDistributions, v))
}

// TotalDistributionsNEQ applies the NEQ predicate on the "total_distributions" field.
func TotalDistributionsNEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldTotalDistributions, v))
}

// TotalDistributionsIn applies the In predicate on the "total_distributions" field.
func TotalDistributionsIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldTotalDistributions, vs...))
}

// TotalDistributionsNotIn applies the NotIn predicate on the "total_distributions" field.
func TotalDistributionsNotIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldTotalDistributions, vs...))
}

// TotalDistributionsGT applies the GT predicate on the "total_distributions" field.
func TotalDistributionsGT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldTotalDistributions, v))
}

// TotalDistributionsGTE applies the GTE predicate on the "total_distributions" field.
func TotalDistributionsGTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldTotalDistributions, v))
}

// TotalDistributionsLT applies the LT predicate on the "total_distributions" field.
func TotalDistributionsLT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldTotalDistributions, v))
}

// TotalDistributionsLTE applies the LTE predicate on the "total_distributions" field.
func TotalDistributionsLTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldTotalDistributions, v))
}

// TotalDistributionsIsNil applies the IsNil predicate on the "total_distributions" field.
func TotalDistributionsIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldTotalDistributions))
}

// TotalDistributionsNotNil applies the NotNil predicate on the "total_distributions" field.
func TotalDistributionsNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldTotalDistributions))
}

// LpNameEQ applies the EQ predicate on the "lp_name" field.
func LpNameEQ(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldLpName, v))
}

// LpNameNEQ applies the NEQ predicate on the "lp_name" field.
func LpNameNEQ(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldLpName, v))
}

// LpNameIn applies the In predicate on the "lp_name" field.
func LpNameIn(vs ...string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldLpName, vs...))
}

// LpNameNotIn applies the NotIn predicate on the "lp_name" field.
func LpNameNotIn(vs ...string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldLpName, vs...))
}

// LpNameGT applies the GT predicate on the "lp_name" field.
func LpNameGT(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldLpName, v))
}

// LpNameGTE applies the GTE predicate on the "lp_name" field.
func LpNameGTE(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldLpName, v))
}

// LpNameLT applies the LT predicate on the "lp_name" field.
func LpNameLT(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldLpName, v))
}

// LpNameLTE applies the LTE predicate on the "lp_name" field.
func LpNameLTE(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldLpName, v))
}

// LpNameContains applies the Contains predicate on the "lp_name" field.
func LpNameContains(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldContains(FieldLpName, v))
}

// LpNameHasPrefix applies the HasPrefix predicate on the "lp_name" field.
func LpNameHasPrefix(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldHasPrefix(FieldLpName, v))
}

// LpNameHasSuffix applies the HasSuffix predicate on the "lp_name" field.
func LpNameHasSuffix(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldHasSuffix(FieldLpName, v))
}

// LpNameIsNil applies the IsNil predicate on the "lp_name" field.
func LpNameIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldLpName))
}

// LpNameNotNil applies the NotNil predicate on the "lp_name" field.
func LpNameNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldLpName))
}

// LpNameEqualFold applies the EqualFold predicate on the "lp_name" field.
func LpNameEqualFold(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEqualFold(FieldLpName, v))
}

// LpNameContainsFold applies the ContainsFold predicate on the "lp_name" field.
func LpNameContainsFold(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldContainsFold(FieldLpName, v))
}

// LpUnitsEQ applies the EQ predicate on the "lp_units" field.
func LpUnitsEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldLpUnits, v))
}

// LpUnitsNEQ applies the NEQ predicate on the "lp_units" field.
func LpUnitsNEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldLpUnits, v))
}

// LpUnitsIn applies the In predicate on the "lp_units" field.
func LpUnitsIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldLpUnits, vs...))
}

// LpUnitsNotIn applies the NotIn predicate on the "lp_units" field.
func LpUnitsNotIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldLpUnits, vs...))
}

// LpUnitsGT applies the GT predicate on the "lp_units" field.
func LpUnitsGT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldLpUnits, v))
}

// LpUnitsGTE applies the GTE predicate on the "lp_units" field.
func LpUnitsGTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldLpUnits, v))
}

// LpUnitsLT applies the LT predicate on the "lp_units" field.
func LpUnitsLT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldLpUnits, v))
}

// LpUnitsLTE applies the LTE predicate on the "lp_units" field.
func LpUnitsLTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldLpUnits, v))
}

// LpUnitsIsNil applies the IsNil predicate on the "lp_units" field.
func LpUnitsIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldLpUnits))
}

// LpUnitsNotNil applies the NotNil predicate on the "lp_units" field.
func LpUnitsNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldLpUnits))
}

// LpDistributionAmountEQ applies the EQ predicate on the "lp_distribution_amount" field.
func LpDistributionAmountEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldLpDistributionAmount, v))
}

// LpDistributionAmountNEQ applies the NEQ predicate on the "lp_distribution_amount" field.
func LpDistributionAmountNEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldLpDistributionAmount, v))
}

// LpDistributionAmountIn applies the In predicate on the "lp_distribution_amount" field.
func LpDistributionAmountIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldLpDistributionAmount, vs...))
}

// LpDistributionAmountNotIn applies the NotIn predicate on the "lp_distribution_amount" field.
func LpDistributionAmountNotIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldLpDistributionAmount, vs...))
}

// LpDistributionAmountGT applies the GT predicate on the "lp_distribution_amount" field.
func LpDistributionAmountGT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldLpDistributionAmount, v))
}

// LpDistributionAmountGTE applies the GTE predicate on the "lp_distribution_amount" field.
func LpDistributionAmountGTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldLpDistributionAmount, v))
}

// LpDistributionAmountLT applies the LT predicate on the "lp_distribution_amount" field.
func LpDistributionAmountLT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldLpDistributionAmount, v))
}

// LpDistributionAmountLTE applies the LTE predicate on the "lp_distribution_amount" field.
func LpDistributionAmountLTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldLpDistributionAmount, v))
}

// LpDistributionAmountIsNil applies the IsNil predicate on the "lp_distribution_amount" field.
func LpDistributionAmountIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldLpDistributionAmount))
}

// LpDistributionAmountNotNil applies the NotNil predicate on the "lp_distribution_amount" field.
func LpDistributionAmountNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldLpDistributionAmount))
}

// IrrEQ applies the EQ predicate on the "irr" field.
func IrrEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldIrr, v))
}

// IrrNEQ applies the NEQ predicate on the "irr" field.
func IrrNEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldIrr, v))
}

// IrrIn applies the In predicate on the "irr" field.
func IrrIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldIrr, vs...))
}

// IrrNotIn applies the NotIn predicate on the "irr" field.
func IrrNotIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldIrr, vs...))
}

// IrrGT applies the GT predicate on the "irr" field.
func IrrGT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldIrr, v))
}

// IrrGTE applies the GTE predicate on the "irr" field.
func IrrGTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldIrr, v))
}

// IrrLT applies the LT predicate on the "irr" field.
func IrrLT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldIrr, v))
}

// IrrLTE applies the LTE predicate on the "irr" field.
func IrrLTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldIrr, v))
}

// IrrIsNil applies the IsNil predicate on the "irr" field.
func IrrIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldIrr))
}

// IrrNotNil applies the NotNil predicate on the "irr" field.
func IrrNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldIrr))
}

// MultipleEQ applies the EQ predicate on the "multiple" field.
func MultipleEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldMultiple, v))
}

// MultipleNEQ applies the NEQ predicate on the "multiple" field.
func MultipleNEQ(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldMultiple, v))
}

// MultipleIn applies the In predicate on the "multiple" field.
func MultipleIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldMultiple, vs...))
}

// MultipleNotIn applies the NotIn predicate on the "multiple" field.
func MultipleNotIn(vs ...float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldMultiple, vs...))
}

// MultipleGT applies the GT predicate on the "multiple" field.
func MultipleGT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldMultiple, v))
}

// MultipleGTE applies the GTE predicate on the "multiple" field.
func MultipleGTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldMultiple, v))
}

// MultipleLT applies the LT predicate on the "multiple" field.
func MultipleLT(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldMultiple, v))
}

// MultipleLTE applies the LTE predicate on the "multiple" field.
func MultipleLTE(v float64) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldMultiple, v))
}

// MultipleIsNil applies the IsNil predicate on the "multiple" field.
func MultipleIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldMultiple))
}

// MultipleNotNil applies the NotNil predicate on the "multiple" field.
func MultipleNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldMultiple))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentMethodGT applies the GT predicate on the "payment_method" field.
func PaymentMethodGT(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldPaymentMethod, v))
}

// PaymentMethodGTE applies the GTE predicate on the "payment_method" field.
func PaymentMethodGTE(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldPaymentMethod, v))
}

// PaymentMethodLT applies the LT predicate on the "payment_method" field.
func PaymentMethodLT(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldPaymentMethod, v))
}

// PaymentMethodLTE applies the LTE predicate on the "payment_method" field.
func PaymentMethodLTE(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldPaymentMethod, v))
}

// PaymentMethodContains applies the Contains predicate on the "payment_method" field.
func PaymentMethodContains(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldContains(FieldPaymentMethod, v))
}

// PaymentMethodHasPrefix applies the HasPrefix predicate on the "payment_method" field.
func PaymentMethodHasPrefix(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldHasPrefix(FieldPaymentMethod, v))
}

// PaymentMethodHasSuffix applies the HasSuffix predicate on the "payment_method" field.
func PaymentMethodHasSuffix(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldHasSuffix(FieldPaymentMethod, v))
}

// PaymentMethodIsNil applies the IsNil predicate on the "payment_method" field.
func PaymentMethodIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldPaymentMethod))
}

// PaymentMethodNotNil applies the NotNil predicate on the "payment_method" field.
func PaymentMethodNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldPaymentMethod))
}

// PaymentMethodEqualFold applies the EqualFold predicate on the "payment_method" field.
func PaymentMethodEqualFold(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEqualFold(FieldPaymentMethod, v))
}

// PaymentMethodContainsFold applies the ContainsFold predicate on the "payment_method" field.
func PaymentMethodContainsFold(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldContainsFold(FieldPaymentMethod, v))
}

// PaymentInstructionsEQ applies the EQ predicate on the "payment_instructions" field.
func PaymentInstructionsEQ(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldPaymentInstructions, v))
}

// PaymentInstructionsNEQ applies the NEQ predicate on the "payment_instructions" field.
func PaymentInstructionsNEQ(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldPaymentInstructions, v))
}

// PaymentInstructionsIn applies the In predicate on the "payment_instructions" field.
func PaymentInstructionsIn(vs ...string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldPaymentInstructions, vs...))
}

// PaymentInstructionsNotIn applies the NotIn predicate on the "payment_instructions" field.
func PaymentInstructionsNotIn(vs ...string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldPaymentInstructions, vs...))
}

// PaymentInstructionsGT applies the GT predicate on the "payment_instructions" field.
func PaymentInstructionsGT(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldPaymentInstructions, v))
}

// PaymentInstructionsGTE applies the GTE predicate on the "payment_instructions" field.
func PaymentInstructionsGTE(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldPaymentInstructions, v))
}

// PaymentInstructionsLT applies the LT predicate on the "payment_instructions" field.
func PaymentInstructionsLT(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldPaymentInstructions, v))
}

// PaymentInstructionsLTE applies the LTE predicate on the "payment_instructions" field.
func PaymentInstructionsLTE(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldPaymentInstructions, v))
}

// PaymentInstructionsContains applies the Contains predicate on the "payment_instructions" field.
func PaymentInstructionsContains(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldContains(FieldPaymentInstructions, v))
}

// PaymentInstructionsHasPrefix applies the HasPrefix predicate on the "payment_instructions" field.
func PaymentInstructionsHasPrefix(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldHasPrefix(FieldPaymentInstructions, v))
}

// PaymentInstructionsHasSuffix applies the HasSuffix predicate on the "payment_instructions" field.
func PaymentInstructionsHasSuffix(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldHasSuffix(FieldPaymentInstructions, v))
}

// PaymentInstructionsIsNil applies the IsNil predicate on the "payment_instructions" field.
func PaymentInstructionsIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldPaymentInstructions))
}

// PaymentInstructionsNotNil applies the NotNil predicate on the "payment_instructions" field.
func PaymentInstructionsNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldPaymentInstructions))
}

// PaymentInstructionsEqualFold applies the EqualFold predicate on the "payment_instructions" field.
func PaymentInstructionsEqualFold(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEqualFold(FieldPaymentInstructions, v))
}

// PaymentInstructionsContainsFold applies the ContainsFold predicate on the "payment_instructions" field.
func PaymentInstructionsContainsFold(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldContainsFold(FieldPaymentInstructions, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldContainsFold(FieldNotes, v))
}

// ExtractedDataIsNil applies the IsNil predicate on the "extracted_data" field.
func ExtractedDataIsNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIsNull(FieldExtractedData))
}

// ExtractedDataNotNil applies the NotNil predicate on the "extracted_data" field.
func ExtractedDataNotNil() predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotNull(FieldExtractedData))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.DistributionDetail {
	return predicate.DistributionDetail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.DistributionDetail {
	return predicate.DistributionDetail(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DistributionDetail) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DistributionDetail) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DistributionDetail) predicate.DistributionDetail {
	return predicate.DistributionDetail(sql.NotPredicates(p))
}
