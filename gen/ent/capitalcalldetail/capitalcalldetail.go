// Code generated by ent, DO NOT EDIT.

package capitalcalldetail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the capitalcalldetail type in the database.
	Label = "capital_call_detail"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldCallDate holds the string denoting the call_date field in the database.
	FieldCallDate = "call_date"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldCallAmount holds the string denoting the call_amount field in the database.
	FieldCallAmount = "call_amount"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldCallPercentage holds the string denoting the call_percentage field in the database.
	FieldCallPercentage = "call_percentage"
	// FieldFundName holds the string denoting the fund_name field in the database.
	FieldFundName = "fund_name"
	// FieldFundSize holds the string denoting the fund_size field in the database.
	FieldFundSize = "fund_size"
	// FieldLpName holds the string denoting the lp_name field in the database.
	FieldLpName = "lp_name"
	// FieldLpCommitment holds the string denoting the lp_commitment field in the database.
	FieldLpCommitment = "lp_commitment"
	// FieldRemainingCommitment holds the string denoting the remaining_commitment field in the database.
	FieldRemainingCommitment = "remaining_commitment"
	// FieldPaymentInstructions holds the string denoting the payment_instructions field in the database.
	FieldPaymentInstructions = "payment_instructions"
	// FieldWireTransferInfo holds the string denoting the wire_transfer_info field in the database.
	FieldWireTransferInfo = "wire_transfer_info"
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
	// Table holds the table name of the capitalcalldetail in the database.
	Table = "capital_call_details"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "capital_call_details"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for capitalcalldetail fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldCallDate,
	FieldDueDate,
	FieldCallAmount,
	FieldCurrency,
	FieldCallPercentage,
	FieldFundName,
	FieldFundSize,
	FieldLpName,
	FieldLpCommitment,
	FieldRemainingCommitment,
	FieldPaymentInstructions,
	FieldWireTransferInfo,
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

// OrderOption defines the ordering options for the CapitalCallDetail queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByCallDate orders the results by the call_date field.
func ByCallDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallDate, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByCallAmount orders the results by the call_amount field.
func ByCallAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallAmount, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByCallPercentage orders the results by the call_percentage field.
func ByCallPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallPercentage, opts...).ToFunc()
}

// ByFundName orders the results by the fund_name field.
func ByFundName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFundName, opts...).ToFunc()
}

// ByFundSize orders the results by the fund_size field.
func ByFundSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFundSize, opts...).ToFunc()
}

// ByLpName orders the results by the lp_name field.
func ByLpName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLpName, opts...).ToFunc()
}

// ByLpCommitment orders the results by the lp_commitment field.
func ByLpCommitment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLpCommitment, opts...).ToFunc()
}

// ByRemainingCommitment orders the results by the remaining_commitment field.
func ByRemainingCommitment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemainingCommitment, opts...).ToFunc()
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
