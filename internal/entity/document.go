package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/shreyescodes/doc-parser-updated/constants"
)

// Document represents a document row for data transfer between layers.
type Document struct {
	ID                   uuid.UUID                `json:"id"`
	Filename             string                   `json:"filename"`
	OriginalFilename     string                   `json:"original_filename"`
	FilePath             string                   `json:"file_path"`
	FileSize             int                      `json:"file_size"`
	MimeType             string                   `json:"mime_type"`
	Format               string                   `json:"format"`
	Status               constants.DocumentStatus `json:"status"`
	Category             *string                  `json:"category,omitempty"`
	FundName             *string                  `json:"fund_name,omitempty"`
	FundID               *string                  `json:"fund_id,omitempty"`
	NormalizedText       *string                  `json:"normalized_text,omitempty"`
	OCRText              *string                  `json:"ocr_text,omitempty"`
	StructuredTree       json.RawMessage          `json:"structured_tree,omitempty"`
	ExtractionConfidence *float32                 `json:"extraction_confidence,omitempty"`
	CreatedAt            time.Time                `json:"created_at"`
	UpdatedAt            time.Time                `json:"updated_at"`
	ProcessedAt          *time.Time               `json:"processed_at,omitempty"`
}

// ProcessingLogEntry is one append-only audit row for a document.
type ProcessingLogEntry struct {
	ID             uuid.UUID          `json:"id"`
	DocumentID     uuid.UUID          `json:"document_id"`
	LogLevel       constants.LogLevel `json:"log_level"`
	Message        string             `json:"message"`
	Step           *string            `json:"step,omitempty"`
	ProcessingTime *float64           `json:"processing_time,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// Outcome is the caller-facing result of one processing attempt.
type Outcome struct {
	Status     constants.DocumentStatus `json:"status"`
	Category   *string                  `json:"category,omitempty"`
	Confidence *float32                 `json:"confidence,omitempty"`
	Error      string                   `json:"error,omitempty"`
	Retryable  bool                     `json:"retryable"`
}
