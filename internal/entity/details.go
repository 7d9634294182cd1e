package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CapitalCallDetail is the per-document field set for capital call notices.
// Pointer fields are nullable in storage; a nil value here means "never
// extracted", and the reconciler will not clear a stored value with it.
type CapitalCallDetail struct {
	ID                  uuid.UUID         `json:"id"`
	DocumentID          uuid.UUID         `json:"document_id"`
	CallDate            *time.Time        `json:"call_date,omitempty"`
	DueDate             *time.Time        `json:"due_date,omitempty"`
	CallAmount          *float64          `json:"call_amount,omitempty"`
	Currency            *string           `json:"currency,omitempty"`
	CallPercentage      *float64          `json:"call_percentage,omitempty"`
	FundName            *string           `json:"fund_name,omitempty"`
	FundSize            *float64          `json:"fund_size,omitempty"`
	LPName              *string           `json:"lp_name,omitempty"`
	LPCommitment        *float64          `json:"lp_commitment,omitempty"`
	RemainingCommitment *float64          `json:"remaining_commitment,omitempty"`
	PaymentInstructions *string           `json:"payment_instructions,omitempty"`
	WireTransferInfo    map[string]string `json:"wire_transfer_info,omitempty"`
	Notes               *string           `json:"notes,omitempty"`
	ExtractedData       json.RawMessage   `json:"extracted_data,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// DistributionDetail is the per-document field set for distribution notices.
type DistributionDetail struct {
	ID                   uuid.UUID       `json:"id"`
	DocumentID           uuid.UUID       `json:"document_id"`
	DistributionDate     *time.Time      `json:"distribution_date,omitempty"`
	RecordDate           *time.Time      `json:"record_date,omitempty"`
	DistributionAmount   *float64        `json:"distribution_amount,omitempty"`
	Currency             *string         `json:"currency,omitempty"`
	DistributionPerUnit  *float64        `json:"distribution_per_unit,omitempty"`
	FundName             *string         `json:"fund_name,omitempty"`
	FundNAV              *float64        `json:"fund_nav,omitempty"`
	TotalDistributions   *float64        `json:"total_distributions,omitempty"`
	LPName               *string         `json:"lp_name,omitempty"`
	LPUnits              *float64        `json:"lp_units,omitempty"`
	LPDistributionAmount *float64        `json:"lp_distribution_amount,omitempty"`
	IRR                  *float64        `json:"irr,omitempty"`
	Multiple             *float64        `json:"multiple,omitempty"`
	PaymentMethod        *string         `json:"payment_method,omitempty"`
	PaymentInstructions  *string         `json:"payment_instructions,omitempty"`
	Notes                *string         `json:"notes,omitempty"`
	ExtractedData        json.RawMessage `json:"extracted_data,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}
