package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shreyescodes/doc-parser-updated/constants"
	"github.com/shreyescodes/doc-parser-updated/gen/ent"
	entdoc "github.com/shreyescodes/doc-parser-updated/gen/ent/document"
	"github.com/shreyescodes/doc-parser-updated/internal/common"
	"github.com/shreyescodes/doc-parser-updated/internal/entity"
)

// CreateDocumentRequest wraps parameters for registering an uploaded file.
type CreateDocumentRequest struct {
	Filename         string
	OriginalFilename string
	FilePath         string
	FileSize         int
	MimeType         string
	Format           string
}

// ExtractionUpdate carries the fields persisted after text extraction and
// classification, before the attempt finishes.
type ExtractionUpdate struct {
	NormalizedText string
	OCRText        string
	StructuredTree json.RawMessage
	Category       constants.Category
	FundName       *string
	FundID         *string
}

type DocumentRepository interface {
	Create(ctx context.Context, req CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	// AdmitForProcessing atomically moves a pending or failed document into
	// processing. Returns false when the document is in any other status;
	// the check and the transition are one conditional UPDATE, so two
	// workers can never both admit the same document.
	AdmitForProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	SaveExtraction(ctx context.Context, id uuid.UUID, upd ExtractionUpdate) error
	MarkCompleted(ctx context.Context, id uuid.UUID, confidence float32) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	ListByStatus(ctx context.Context, status constants.DocumentStatus, limit int) ([]*entity.Document, error)
	CountByStatus(ctx context.Context, status constants.DocumentStatus) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) Create(ctx context.Context, req CreateDocumentRequest) (*entity.Document, error) {
	row, err := r.ent.Document.
		Create().
		SetFilename(req.Filename).
		SetOriginalFilename(req.OriginalFilename).
		SetFilePath(req.FilePath).
		SetFileSize(req.FileSize).
		SetMimeType(req.MimeType).
		SetFormat(req.Format).
		SetStatus(string(constants.StatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "filename", req.Filename, "err", err)
		return nil, err
	}
	r.log.Info("document created", "document_id", row.ID, "filename", req.Filename)
	return toDocument(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("DOCUMENT_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) AdmitForProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.Document.
		Update().
		Where(
			entdoc.ID(id),
			entdoc.StatusIn(
				string(constants.StatusPending),
				string(constants.StatusFailed),
			),
		).
		SetStatus(string(constants.StatusProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("admit for processing failed", "document_id", id, "err", err)
		return false, err
	}
	return n == 1, nil
}

func (r *documentRepo) SaveExtraction(ctx context.Context, id uuid.UUID, upd ExtractionUpdate) error {
	q := r.ent.Document.
		UpdateOneID(id).
		SetNormalizedText(upd.NormalizedText).
		SetOcrText(upd.OCRText).
		SetCategory(string(upd.Category)).
		SetNillableFundName(upd.FundName).
		SetNillableFundID(upd.FundID)
	if upd.StructuredTree != nil {
		q = q.SetStructuredTree(upd.StructuredTree)
	}
	if _, err := q.Save(ctx); err != nil {
		r.log.Error("save extraction failed", "document_id", id, "err", err)
		return err
	}
	return nil
}

func (r *documentRepo) MarkCompleted(ctx context.Context, id uuid.UUID, confidence float32) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(constants.StatusCompleted)).
		SetExtractionConfidence(confidence).
		SetProcessedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.log.Error("mark completed failed", "document_id", id, "err", err)
		return err
	}
	r.log.Info("document completed", "document_id", id, "confidence", confidence)
	return nil
}

func (r *documentRepo) MarkFailed(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(constants.StatusFailed)).
		Save(ctx)
	if err != nil {
		r.log.Error("mark failed failed", "document_id", id, "err", err)
		return err
	}
	r.log.Warn("document failed", "document_id", id)
	return nil
}

func (r *documentRepo) ListByStatus(ctx context.Context, status constants.DocumentStatus, limit int) ([]*entity.Document, error) {
	q := r.ent.Document.Query().
		Where(entdoc.Status(string(status))).
		Order(entdoc.ByCreatedAt())
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.log.Error("list by status failed", "status", status, "err", err)
		return nil, err
	}
	result := make([]*entity.Document, len(rows))
	for i, row := range rows {
		result[i] = toDocument(row)
	}
	return result, nil
}

func (r *documentRepo) CountByStatus(ctx context.Context, status constants.DocumentStatus) (int, error) {
	return r.ent.Document.Query().
		Where(entdoc.Status(string(status))).
		Count(ctx)
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// detail rows and logs cascade with the document
	if err := r.ent.Document.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("DOCUMENT_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		r.log.Error("document delete failed", "document_id", id, "err", err)
		return err
	}
	r.log.Info("document deleted", "document_id", id)
	return nil
}
