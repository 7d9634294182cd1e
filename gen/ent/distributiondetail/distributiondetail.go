// Code generated by ent, DO NOT EDIT.

package distributiondetail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the distributiondetail type in the database.
	Label = "distribution_detail"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldDistributionDate holds the string denoting the distribution_date field in the database.
	FieldDistributionDate = "distribution_date"
	// FieldRecordDate holds the string denoting the record_date field in the database.
	FieldRecordDate = "record_date"
	// FieldDistributionAmount holds the string denoting the distribution_amount field in the database.
	FieldDistributionAmount = "distribution_amount"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldDistributionPerUnit holds the string denoting the distribution_per_unit field in the database.
	FieldDistributionPerUnit = "distribution_per_unit"
	// FieldFundName holds the string denoting the fund_name field in the database.
	FieldFundName = "fund_name"
	// FieldFundNav holds the string denoting the fund_nav field in the database.
	FieldFundNav = "fund_nav"
	// FieldTotalDistributions holds the string denoting the total_distributions field in the database.
	FieldTotalDistributions = "total_distributions"
	// FieldLpName holds the string denoting the lp_name field in the database.
	FieldLpName = "lp_name"
	// FieldLpUnits holds the string denoting the lp_units field in the database.
	FieldLpUnits = "lp_units"
	// FieldLpDistributionAmount holds the string denoting the lp_distribution_amount field in the database.
	FieldLpDistributionAmount = "lp_distribution_amount"
	// FieldIrr holds the string denoting the irr field in the database.
	FieldIrr = "irr"
	// FieldMultiple holds the string denoting the multiple field in the database.
	FieldMultiple = "multiple"
	// FieldPaymentMethod holds the string denoting the payment_method field in the database.
	FieldPaymentMethod = "payment_method"
	// FieldPaymentInstructions holds the string denoting the payment_instructions field in the database.
	FieldPaymentInstructions = "payment_instructions"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldExtractedData holds the string denoting the extracted_data field in the database.
	FieldExtractedData = "extracted_data"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the distributiondetail in the database.
	Table = "distribution_details"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "distribution_details"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for distributiondetail fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldDistributionDate,
	FieldRecordDate,
	FieldDistributionAmount,
	FieldCurrency,
	FieldDistributionPerUnit,
	FieldFundName,
	FieldFundNav,
	FieldTotalDistributions,
	FieldLpName,
	FieldLpUnits,
	FieldLpDistributionAmount,
	FieldIrr,
	FieldMultiple,
	FieldPaymentMethod,
	FieldPaymentInstructions,
	FieldNotes,
	FieldExtractedData,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DistributionDetail queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByDistributionDate orders the results by the distribution_date field.
func ByDistributionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistributionDate, opts...).ToFunc()
}

// ByRecordDate orders the results by the record_date field.
func ByRecordDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordDate, opts...).ToFunc()
}

// ByDistributionAmount orders the results by the distribution_amount field.
func ByDistributionAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistributionAmount, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByDistributionPerUnit orders the results by the distribution_per_unit field.
func ByDistributionPerUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistributionPerUnit, opts...).ToFunc()
}

// ByFundName orders the results by the fund_name field.
func ByFundName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFundName, opts...).ToFunc()
}

// ByFundNav orders the results by the fund_nav field.
func ByFundNav(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFundNav, opts...).ToFunc()
}

// ByTotalDistributions orders the results by the total_distributions field.
func ByTotalDistributions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalDistributions, opts...).ToFunc()
}

// ByLpName orders the results by the lp_name field.
func ByLpName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLpName, opts...).ToFunc()
}

// ByLpUnits orders the results by the lp_units field.
func ByLpUnits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLpUnits, opts...).ToFunc()
}

// ByLpDistributionAmount orders the results by the lp_distribution_amount field.
func ByLpDistributionAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLpDistributionAmount, opts...).ToFunc()
}

// ByIrr orders the results by the irr field.
func ByIrr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIrr, opts...).ToFunc()
}

// ByMultiple orders the results by the multiple field.
func ByMultiple(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMultiple, opts...).ToFunc()
}

// ByPaymentMethod orders the results by the payment_method field.
func ByPaymentMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentMethod, opts...).ToFunc()
}

// ByPaymentInstructions orders the results by the payment_instructions field.
func ByPaymentInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentInstructions, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
	)
}
