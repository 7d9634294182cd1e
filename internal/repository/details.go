package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shreyescodes/doc-parser-updated/gen/ent"
	entccd "github.com/shreyescodes/doc-parser-updated/gen/ent/capitalcalldetail"
	entdd "github.com/shreyescodes/doc-parser-updated/gen/ent/distributiondetail"
	"github.com/shreyescodes/doc-parser-updated/internal/common"
	"github.com/shreyescodes/doc-parser-updated/internal/entity"
)

// DetailRepository persists the per-category detail records. Save is an
// upsert keyed by document_id: the (document, category) pair has at most one
// row, ever.
type DetailRepository interface {
	GetCapitalCall(ctx context.Context, documentID uuid.UUID) (*entity.CapitalCallDetail, error)
	SaveCapitalCall(ctx context.Context, d *entity.CapitalCallDetail) (*entity.CapitalCallDetail, error)
	ListCapitalCalls(ctx context.Context) ([]*entity.CapitalCallDetail, error)
	GetDistribution(ctx context.Context, documentID uuid.UUID) (*entity.DistributionDetail, error)
	SaveDistribution(ctx context.Context, d *entity.DistributionDetail) (*entity.DistributionDetail, error)
	ListDistributions(ctx context.Context) ([]*entity.DistributionDetail, error)
}

type detailRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDetailRepository(entc *ent.Client, log *slog.Logger) DetailRepository {
	return &detailRepo{ent: entc, log: log}
}

func (r *detailRepo) GetCapitalCall(ctx context.Context, documentID uuid.UUID) (*entity.CapitalCallDetail, error) {
	row, err := r.ent.CapitalCallDetail.Query().
		Where(entccd.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("DETAIL_NOT_FOUND", documentID.String(), common.ErrNotFound)
		}
		return nil, err
	}
	return toCapitalCallDetail(row), nil
}

func (r *detailRepo) SaveCapitalCall(ctx context.Context, d *entity.CapitalCallDetail) (*entity.CapitalCallDetail, error) {
	existing, err := r.ent.CapitalCallDetail.Query().
		Where(entccd.DocumentID(d.DocumentID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	if existing == nil {
		builder := r.ent.CapitalCallDetail.Create().
			SetDocumentID(d.DocumentID).
			SetNillableCallDate(d.CallDate).
			SetNillableDueDate(d.DueDate).
			SetNillableCallAmount(d.CallAmount).
			SetNillableCurrency(d.Currency).
			SetNillableCallPercentage(d.CallPercentage).
			SetNillableFundName(d.FundName).
			SetNillableFundSize(d.FundSize).
			SetNillableLpName(d.LPName).
			SetNillableLpCommitment(d.LPCommitment).
			SetNillableRemainingCommitment(d.RemainingCommitment).
			SetNillablePaymentInstructions(d.PaymentInstructions).
			SetNillableNotes(d.Notes)
		if d.WireTransferInfo != nil {
			builder = builder.SetWireTransferInfo(d.WireTransferInfo)
		}
		if d.ExtractedData != nil {
			builder = builder.SetExtractedData(d.ExtractedData)
		}
		row, err := builder.Save(ctx)
		if err != nil {
			r.log.Error("capital call detail create failed", "document_id", d.DocumentID, "err", err)
			return nil, err
		}
		r.log.Info("capital call detail created", "document_id", d.DocumentID)
		return toCapitalCallDetail(row), nil
	}

	builder := r.ent.CapitalCallDetail.UpdateOneID(existing.ID).
		SetNillableCallDate(d.CallDate).
		SetNillableDueDate(d.DueDate).
		SetNillableCallAmount(d.CallAmount).
		SetNillableCurrency(d.Currency).
		SetNillableCallPercentage(d.CallPercentage).
		SetNillableFundName(d.FundName).
		SetNillableFundSize(d.FundSize).
		SetNillableLpName(d.LPName).
		SetNillableLpCommitment(d.LPCommitment).
		SetNillableRemainingCommitment(d.RemainingCommitment).
		SetNillablePaymentInstructions(d.PaymentInstructions).
		SetNillableNotes(d.Notes)
	if d.WireTransferInfo != nil {
		builder = builder.SetWireTransferInfo(d.WireTransferInfo)
	}
	if d.ExtractedData != nil {
		builder = builder.SetExtractedData(d.ExtractedData)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("capital call detail update failed", "document_id", d.DocumentID, "err", err)
		return nil, err
	}
	r.log.Info("capital call detail updated", "document_id", d.DocumentID)
	return toCapitalCallDetail(row), nil
}

func (r *detailRepo) ListCapitalCalls(ctx context.Context) ([]*entity.CapitalCallDetail, error) {
	rows, err := r.ent.CapitalCallDetail.Query().
		Order(entccd.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.CapitalCallDetail, len(rows))
	for i, row := range rows {
		result[i] = toCapitalCallDetail(row)
	}
	return result, nil
}

func (r *detailRepo) GetDistribution(ctx context.Context, documentID uuid.UUID) (*entity.DistributionDetail, error) {
	row, err := r.ent.DistributionDetail.Query().
		Where(entdd.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("DETAIL_NOT_FOUND", documentID.String(), common.ErrNotFound)
		}
		return nil, err
	}
	return toDistributionDetail(row), nil
}

func (r *detailRepo) SaveDistribution(ctx context.Context, d *entity.DistributionDetail) (*entity.DistributionDetail, error) {
	existing, err := r.ent.DistributionDetail.Query().
		Where(entdd.DocumentID(d.DocumentID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	if existing == nil {
		builder := r.ent.DistributionDetail.Create().
			SetDocumentID(d.DocumentID).
			SetNillableDistributionDate(d.DistributionDate).
			SetNillableRecordDate(d.RecordDate).
			SetNillableDistributionAmount(d.DistributionAmount).
			SetNillableCurrency(d.Currency).
			SetNillableDistributionPerUnit(d.DistributionPerUnit).
			SetNillableFundName(d.FundName).
			SetNillableFundNav(d.FundNAV).
			SetNillableTotalDistributions(d.TotalDistributions).
			SetNillableLpName(d.LPName).
			SetNillableLpUnits(d.LPUnits).
			SetNillableLpDistributionAmount(d.LPDistributionAmount).
			SetNillableIrr(d.IRR).
			SetNillableMultiple(d.Multiple).
			SetNillablePaymentMethod(d.PaymentMethod).
			SetNillablePaymentInstructions(d.PaymentInstructions).
			SetNillableNotes(d.Notes)
		if d.ExtractedData != nil {
			builder = builder.SetExtractedData(d.ExtractedData)
		}
		row, err := builder.Save(ctx)
		if err != nil {
			r.log.Error("distribution detail create failed", "document_id", d.DocumentID, "err", err)
			return nil, err
		}
		r.log.Info("distribution detail created", "document_id", d.DocumentID)
		return toDistributionDetail(row), nil
	}

	builder := r.ent.DistributionDetail.UpdateOneID(existing.ID).
		SetNillableDistributionDate(d.DistributionDate).
		SetNillableRecordDate(d.RecordDate).
		SetNillableDistributionAmount(d.DistributionAmount).
		SetNillableCurrency(d.Currency).
		SetNillableDistributionPerUnit(d.DistributionPerUnit).
		SetNillableFundName(d.FundName).
		SetNillableFundNav(d.FundNAV).
		SetNillableTotalDistributions(d.TotalDistributions).
		SetNillableLpName(d.LPName).
		SetNillableLpUnits(d.LPUnits).
		SetNillableLpDistributionAmount(d.LPDistributionAmount).
		SetNillableIrr(d.IRR).
		SetNillableMultiple(d.Multiple).
		SetNillablePaymentMethod(d.PaymentMethod).
		SetNillablePaymentInstructions(d.PaymentInstructions).
		SetNillableNotes(d.Notes)
	if d.ExtractedData != nil {
		builder = builder.SetExtractedData(d.ExtractedData)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("distribution detail update failed", "document_id", d.DocumentID, "err", err)
		return nil, err
	}
	r.log.Info("distribution detail updated", "document_id", d.DocumentID)
	return toDistributionDetail(row), nil
}

func (r *detailRepo) ListDistributions(ctx context.Context) ([]*entity.DistributionDetail, error) {
	rows, err := r.ent.DistributionDetail.Query().
		Order(entdd.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.DistributionDetail, len(rows))
	for i, row := range rows {
		result[i] = toDistributionDetail(row)
	}
	return result, nil
}
