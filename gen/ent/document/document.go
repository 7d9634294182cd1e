// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldFundName holds the string denoting the fund_name field in the database.
	FieldFundName = "fund_name"
	// FieldFundID holds the string denoting the fund_id field in the database.
	FieldFundID = "fund_id"
	// FieldNormalizedText holds the string denoting the normalized_text field in the database.
	FieldNormalizedText = "normalized_text"
	// FieldOcrText holds the string denoting the ocr_text field in the database.
	FieldOcrText = "ocr_text"
	// FieldStructuredTree holds the string denoting the structured_tree field in the database.
	FieldStructuredTree = "structured_tree"
	// FieldExtractionConfidence holds the string denoting the extraction_confidence field in the database.
	FieldExtractionConfidence = "extraction_confidence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// EdgeCapitalCallDetail holds the string denoting the capital_call_detail edge name in mutations.
	EdgeCapitalCallDetail = "capital_call_detail"
	// EdgeDistributionDetail holds the string denoting the distribution_detail edge name in mutations.
	EdgeDistributionDetail = "distribution_detail"
	// EdgeLogs holds the string denoting the logs edge name in mutations.
	EdgeLogs = "logs"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// CapitalCallDetailTable is the table that holds the capital_call_detail relation/edge.
	CapitalCallDetailTable = "capital_call_details"
	// CapitalCallDetailInverseTable is the table name for the CapitalCallDetail entity.
	// It exists in this package in order to avoid circular dependency with the "capitalcalldetail" package.
	CapitalCallDetailInverseTable = "capital_call_details"
	// CapitalCallDetailColumn is the table column denoting the capital_call_detail relation/edge.
	CapitalCallDetailColumn = "document_id"
	// DistributionDetailTable is the table that holds the distribution_detail relation/edge.
	DistributionDetailTable = "distribution_details"
	// DistributionDetailInverseTable is the table name for the DistributionDetail entity.
	// It exists in this package in order to avoid circular dependency with the "distributiondetail" package.
	DistributionDetailInverseTable = "distribution_details"
	// DistributionDetailColumn is the table column denoting the distribution_detail relation/edge.
	DistributionDetailColumn = "document_id"
	// LogsTable is the table that holds the logs relation/edge.
	LogsTable = "processing_logs"
	// LogsInverseTable is the table name for the ProcessingLog entity.
	// It exists in this package in order to avoid circular dependency with the "processinglog" package.
	LogsInverseTable = "processing_logs"
	// LogsColumn is the table column denoting the logs relation/edge.
	LogsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldFilename,
	FieldOriginalFilename,
	FieldFilePath,
	FieldFileSize,
	FieldMimeType,
	FieldFormat,
	FieldStatus,
	FieldCategory,
	FieldFundName,
	FieldFundID,
	FieldNormalizedText,
	FieldOcrText,
	FieldStructuredTree,
	FieldExtractionConfidence,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldProcessedAt,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	OriginalFilenameValidator func(string) error
	// FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	FilePathValidator func(string) error
	// FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	FileSizeValidator func(int) error
	// MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	MimeTypeValidator func(string) error
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByFundName orders the results by the fund_name field.
func ByFundName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFundName, opts...).ToFunc()
}

// ByFundID orders the results by the fund_id field.
func ByFundID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFundID, opts...).ToFunc()
}

// ByNormalizedText orders the results by the normalized_text field.
func ByNormalizedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedText, opts...).ToFunc()
}

// ByOcrText orders the results by the ocr_text field.
func ByOcrText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrText, opts...).ToFunc()
}

// ByExtractionConfidence orders the results by the extraction_confidence field.
func ByExtractionConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByCapitalCallDetailField orders the results by capital_call_detail field.
func ByCapitalCallDetailField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCapitalCallDetailStep(), sql.OrderByField(field, opts...))
	}
}

// ByDistributionDetailField orders the results by distribution_detail field.
func ByDistributionDetailField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDistributionDetailStep(), sql.OrderByField(field, opts...))
	}
}

// ByLogsCount orders the results by logs count.
func ByLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLogsStep(), opts...)
	}
}

// ByLogs orders the results by logs terms.
func ByLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCapitalCallDetailStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CapitalCallDetailInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, CapitalCallDetailTable, CapitalCallDetailColumn),
	)
}
func newDistributionDetailStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DistributionDetailInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, DistributionDetailTable, DistributionDetailColumn),
	)
}
func newLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LogsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LogsTable, LogsColumn),
	)
}
