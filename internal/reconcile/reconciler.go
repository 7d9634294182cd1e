package reconcile

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shreyescodes/doc-parser-updated/internal/common"
	"github.com/shreyescodes/doc-parser-updated/internal/entity"
	"github.com/shreyescodes/doc-parser-updated/internal/fields"
	"github.com/shreyescodes/doc-parser-updated/internal/repository"
)

// Reconciler loads (or creates) the detail record for a document, merges the
// freshly extracted field set into it, and persists the result together with
// the validated raw audit blob.
type Reconciler struct {
	details repository.DetailRepository
	logger  *slog.Logger
}

func NewReconciler(details repository.DetailRepository, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{details: details, logger: logger}
}

// ReconcileCapitalCall upserts the capital call detail row for documentID.
func (r *Reconciler) ReconcileCapitalCall(ctx context.Context, documentID uuid.UUID, f fields.CapitalCallFields) (*entity.CapitalCallDetail, error) {
	existing, err := r.details.GetCapitalCall(ctx, documentID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		existing = &entity.CapitalCallDetail{DocumentID: documentID}
	}

	merged := MergeCapitalCall(*existing, f)

	audit, err := auditJSON(f, capitalCallAuditSchema)
	if err != nil {
		return nil, common.NewAppError("AUDIT_SCHEMA_MISMATCH", "capital call field set", err)
	}
	merged.ExtractedData = audit

	saved, err := r.details.SaveCapitalCall(ctx, &merged)
	if err != nil {
		return nil, err
	}
	set, total := f.Coverage()
	r.logger.Info("capital call detail reconciled",
		"document_id", documentID, "fields_set", set, "fields_total", total)
	return saved, nil
}

// ReconcileDistribution upserts the distribution detail row for documentID.
func (r *Reconciler) ReconcileDistribution(ctx context.Context, documentID uuid.UUID, f fields.DistributionFields) (*entity.DistributionDetail, error) {
	existing, err := r.details.GetDistribution(ctx, documentID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		existing = &entity.DistributionDetail{DocumentID: documentID}
	}

	merged := MergeDistribution(*existing, f)

	audit, err := auditJSON(f, distributionAuditSchema)
	if err != nil {
		return nil, common.NewAppError("AUDIT_SCHEMA_MISMATCH", "distribution field set", err)
	}
	merged.ExtractedData = audit

	saved, err := r.details.SaveDistribution(ctx, &merged)
	if err != nil {
		return nil, err
	}
	set, total := f.Coverage()
	r.logger.Info("distribution detail reconciled",
		"document_id", documentID, "fields_set", set, "fields_total", total)
	return saved, nil
}
