// Package reconcile merges freshly extracted field sets into the persistent
// per-document detail records. The merge is monotone-additive: an extracted
// nil never clears a stored value, so reprocessing the same document is
// idempotent and re-extraction can only add information.
package reconcile

import (
	"github.com/shreyescodes/doc-parser-updated/internal/entity"
	"github.com/shreyescodes/doc-parser-updated/internal/fields"
)

// MergeCapitalCall applies non-nil extracted fields onto the existing record.
// The field list below is the schema; anything else an extractor might
// produce has no assignment here and is dropped.
func MergeCapitalCall(existing entity.CapitalCallDetail, f fields.CapitalCallFields) entity.CapitalCallDetail {
	merged := existing
	if f.CallDate != nil {
		merged.CallDate = f.CallDate
	}
	if f.DueDate != nil {
		merged.DueDate = f.DueDate
	}
	if f.CallAmount != nil {
		merged.CallAmount = f.CallAmount
	}
	if f.CallPercentage != nil {
		merged.CallPercentage = f.CallPercentage
	}
	if f.FundName != nil {
		merged.FundName = f.FundName
	}
	if f.FundSize != nil {
		merged.FundSize = f.FundSize
	}
	if f.LPName != nil {
		merged.LPName = f.LPName
	}
	if f.LPCommitment != nil {
		merged.LPCommitment = f.LPCommitment
	}
	if f.RemainingCommitment != nil {
		merged.RemainingCommitment = f.RemainingCommitment
	}
	if f.PaymentInstructions != nil {
		merged.PaymentInstructions = f.PaymentInstructions
	}
	if f.WireTransferInfo != nil {
		merged.WireTransferInfo = f.WireTransferInfo
	}
	return merged
}

// MergeDistribution applies non-nil extracted fields onto the existing record.
func MergeDistribution(existing entity.DistributionDetail, f fields.DistributionFields) entity.DistributionDetail {
	merged := existing
	if f.DistributionDate != nil {
		merged.DistributionDate = f.DistributionDate
	}
	if f.RecordDate != nil {
		merged.RecordDate = f.RecordDate
	}
	if f.DistributionAmount != nil {
		merged.DistributionAmount = f.DistributionAmount
	}
	if f.LPDistributionAmount != nil {
		merged.LPDistributionAmount = f.LPDistributionAmount
	}
	if f.DistributionPerUnit != nil {
		merged.DistributionPerUnit = f.DistributionPerUnit
	}
	if f.FundName != nil {
		merged.FundName = f.FundName
	}
	if f.FundNAV != nil {
		merged.FundNAV = f.FundNAV
	}
	if f.TotalDistributions != nil {
		merged.TotalDistributions = f.TotalDistributions
	}
	if f.LPName != nil {
		merged.LPName = f.LPName
	}
	if f.LPUnits != nil {
		merged.LPUnits = f.LPUnits
	}
	if f.IRR != nil {
		merged.IRR = f.IRR
	}
	if f.Multiple != nil {
		merged.Multiple = f.Multiple
	}
	if f.PaymentMethod != nil {
		merged.PaymentMethod = f.PaymentMethod
	}
	if f.PaymentInstructions != nil {
		merged.PaymentInstructions = f.PaymentInstructions
	}
	return merged
}
