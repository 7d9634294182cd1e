// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CapitalCallDetailsColumns holds the columns for the "capital_call_details" table.
	CapitalCallDetailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "call_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "call_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(16,2)"}},
		{Name: "currency", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "call_percentage", Type: field.TypeFloat64, Nullable: true},
		{Name: "fund_name", Type: field.TypeString, Nullable: true},
		{Name: "fund_size", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "lp_name", Type: field.TypeString, Nullable: true},
		{Name: "lp_commitment", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(16,2)"}},
		{Name: "remaining_commitment", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(16,2)"}},
		{Name: "payment_instructions", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "wire_transfer_info", Type: field.TypeJSON, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Unique: true},
	}
	// CapitalCallDetailsTable holds the schema information for the "capital_call_details" table.
	CapitalCallDetailsTable = &schema.Table{
		Name:       "capital_call_details",
		Columns:    CapitalCallDetailsColumns,
		PrimaryKey: []*schema.Column{CapitalCallDetailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "capital_call_details_documents_capital_call_detail",
				Columns:    []*schema.Column{CapitalCallDetailsColumns[17]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "capitalcalldetail_document_id",
				Unique:  true,
				Columns: []*schema.Column{CapitalCallDetailsColumns[17]},
			},
		},
	}
	// DistributionDetailsColumns holds the columns for the "distribution_details" table.
	DistributionDetailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "distribution_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "record_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "distribution_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(16,2)"}},
		{Name: "currency", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "distribution_per_unit", Type: field.TypeFloat64, Nullable: true},
		{Name: "fund_name", Type: field.TypeString, Nullable: true},
		{Name: "fund_nav", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "total_distributions", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "lp_name", Type: field.TypeString, Nullable: true},
		{Name: "lp_units", Type: field.TypeFloat64, Nullable: true},
		{Name: "lp_distribution_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(16,2)"}},
		{Name: "irr", Type: field.TypeFloat64, Nullable: true},
		{Name: "multiple", Type: field.TypeFloat64, Nullable: true},
		{Name: "payment_method", Type: field.TypeString, Nullable: true},
		{Name: "payment_instructions", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Unique: true},
	}
	// DistributionDetailsTable holds the schema information for the "distribution_details" table.
	DistributionDetailsTable = &schema.Table{
		Name:       "distribution_details",
		Columns:    DistributionDetailsColumns,
		PrimaryKey: []*schema.Column{DistributionDetailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "distribution_details_documents_distribution_detail",
				Columns:    []*schema.Column{DistributionDetailsColumns[20]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "distributiondetail_document_id",
				Unique:  true,
				Columns: []*schema.Column{DistributionDetailsColumns[20]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "fund_name", Type: field.TypeString, Nullable: true},
		{Name: "fund_id", Type: field.TypeString, Nullable: true},
		{Name: "normalized_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "structured_tree", Type: field.TypeJSON, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[7], DocumentsColumns[15]},
			},
			{
				Name:    "document_category",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[8]},
			},
		},
	}
	// ProcessingLogsColumns holds the columns for the "processing_logs" table.
	ProcessingLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "log_level", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "step", Type: field.TypeString, Nullable: true},
		{Name: "processing_time", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ProcessingLogsTable holds the schema information for the "processing_logs" table.
	ProcessingLogsTable = &schema.Table{
		Name:       "processing_logs",
		Columns:    ProcessingLogsColumns,
		PrimaryKey: []*schema.Column{ProcessingLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_logs_documents_logs",
				Columns:    []*schema.Column{ProcessingLogsColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processinglog_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingLogsColumns[6], ProcessingLogsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CapitalCallDetailsTable,
		DistributionDetailsTable,
		DocumentsTable,
		ProcessingLogsTable,
	}
)

func init() {
	CapitalCallDetailsTable.ForeignKeys[0].RefTable = DocumentsTable
	CapitalCallDetailsTable.Annotation = &entsql.Annotation{
		Table: "capital_call_details",
	}
	DistributionDetailsTable.ForeignKeys[0].RefTable = DocumentsTable
	DistributionDetailsTable.Annotation = &entsql.Annotation{
		Table: "distribution_details",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ProcessingLogsTable.ForeignKeys[0].RefTable = DocumentsTable
	ProcessingLogsTable.Annotation = &entsql.Annotation{
		Table: "processing_logs",
	}
}
