package constants

// DocumentStatus is the canonical lifecycle status for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    DocumentStatus = "pending"    // uploaded, waiting for a worker
	StatusProcessing DocumentStatus = "processing" // one attempt in flight
	StatusCompleted  DocumentStatus = "completed"  // terminal for the attempt
	StatusFailed     DocumentStatus = "failed"     // terminal for the attempt; resubmittable
)

// AdmissibleStatuses are the statuses from which a document may enter processing.
var AdmissibleStatuses = []DocumentStatus{StatusPending, StatusFailed}

// LogLevel is the severity stored on processing_log rows.
type LogLevel string

const (
	LogInfo    LogLevel = "INFO"
	LogWarning LogLevel = "WARNING"
	LogError   LogLevel = "ERROR"
)

// Pipeline step names recorded on processing_log rows and reported as
// progress checkpoints.
const (
	StepQueued          = "queued"
	StepInitialization  = "initialization"
	StepTextExtraction  = "text_extraction"
	StepClassification  = "classification"
	StepFieldExtraction = "field_extraction"
	StepReconciliation  = "reconciliation"
	StepFinalize        = "finalize"
	StepTimeout         = "timeout"
)
