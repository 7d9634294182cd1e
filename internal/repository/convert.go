package repository

import (
	"github.com/shreyescodes/doc-parser-updated/constants"
	"github.com/shreyescodes/doc-parser-updated/gen/ent"
	"github.com/shreyescodes/doc-parser-updated/internal/entity"
)

func toDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:                   e.ID,
		Filename:             e.Filename,
		OriginalFilename:     e.OriginalFilename,
		FilePath:             e.FilePath,
		FileSize:             e.FileSize,
		MimeType:             e.MimeType,
		Format:               e.Format,
		Status:               constants.DocumentStatus(e.Status),
		Category:             e.Category,
		FundName:             e.FundName,
		FundID:               e.FundID,
		NormalizedText:       e.NormalizedText,
		OCRText:              e.OcrText,
		StructuredTree:       e.StructuredTree,
		ExtractionConfidence: e.ExtractionConfidence,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
		ProcessedAt:          e.ProcessedAt,
	}
}

func toCapitalCallDetail(e *ent.CapitalCallDetail) *entity.CapitalCallDetail {
	return &entity.CapitalCallDetail{
		ID:                  e.ID,
		DocumentID:          e.DocumentID,
		CallDate:            e.CallDate,
		DueDate:             e.DueDate,
		CallAmount:          e.CallAmount,
		Currency:            e.Currency,
		CallPercentage:      e.CallPercentage,
		FundName:            e.FundName,
		FundSize:            e.FundSize,
		LPName:              e.LpName,
		LPCommitment:        e.LpCommitment,
		RemainingCommitment: e.RemainingCommitment,
		PaymentInstructions: e.PaymentInstructions,
		WireTransferInfo:    e.WireTransferInfo,
		Notes:               e.Notes,
		ExtractedData:       e.ExtractedData,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func toDistributionDetail(e *ent.DistributionDetail) *entity.DistributionDetail {
	return &entity.DistributionDetail{
		ID:                   e.ID,
		DocumentID:           e.DocumentID,
		DistributionDate:     e.DistributionDate,
		RecordDate:           e.RecordDate,
		DistributionAmount:   e.DistributionAmount,
		Currency:             e.Currency,
		DistributionPerUnit:  e.DistributionPerUnit,
		FundName:             e.FundName,
		FundNAV:              e.FundNav,
		TotalDistributions:   e.TotalDistributions,
		LPName:               e.LpName,
		LPUnits:              e.LpUnits,
		LPDistributionAmount: e.LpDistributionAmount,
		IRR:                  e.Irr,
		Multiple:             e.Multiple,
		PaymentMethod:        e.PaymentMethod,
		PaymentInstructions:  e.PaymentInstructions,
		Notes:                e.Notes,
		ExtractedData:        e.ExtractedData,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func toLogEntry(e *ent.ProcessingLog) *entity.ProcessingLogEntry {
	return &entity.ProcessingLogEntry{
		ID:             e.ID,
		DocumentID:     e.DocumentID,
		LogLevel:       constants.LogLevel(e.LogLevel),
		Message:        e.Message,
		Step:           e.Step,
		ProcessingTime: e.ProcessingTime,
		CreatedAt:      e.CreatedAt,
	}
}
