package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shreyescodes/doc-parser-updated/constants"
	v1 "github.com/shreyescodes/doc-parser-updated/gen/proto/documents/v1"
	"github.com/shreyescodes/doc-parser-updated/internal/async"
	"github.com/shreyescodes/doc-parser-updated/internal/common"
	"github.com/shreyescodes/doc-parser-updated/internal/entity"
	"github.com/shreyescodes/doc-parser-updated/internal/pipeline"
	"github.com/shreyescodes/doc-parser-updated/internal/repository"
)

type DocumentsService struct {
	v1.UnimplementedDocumentsServiceServer
	docs      repository.DocumentRepository
	trail     repository.ProcessingLogRepository
	ctrl      *pipeline.Controller
	queue     async.Queue
	uploadDir string
	logger    *slog.Logger
}

func NewDocumentsService(
	docs repository.DocumentRepository,
	trail repository.ProcessingLogRepository,
	ctrl *pipeline.Controller,
	queue async.Queue,
	uploadDir string,
	logger *slog.Logger,
) *DocumentsService {
	return &DocumentsService{
		docs:      docs,
		trail:     trail,
		ctrl:      ctrl,
		queue:     queue,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// UploadDocument stores the payload under the upload directory and registers
// a pending document row. The stored name is a fresh UUID; the caller's name
// survives as original_filename.
func (s *DocumentsService) UploadDocument(ctx context.Context, req *v1.UploadDocumentRequest) (*v1.UploadDocumentResponse, error) {
	original := strings.TrimSpace(req.GetFilename())
	if original == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	ext := constants.NormalizeExt(filepath.Ext(original))
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return nil, status.Errorf(codes.InvalidArgument, "unsupported file extension: %q", ext)
	}

	stored := uuid.New().String() + "." + ext
	path := filepath.Join(s.uploadDir, stored)
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		s.logger.Error("upload dir unavailable", "dir", s.uploadDir, "error", err)
		return nil, status.Error(codes.Internal, "upload storage unavailable")
	}
	if err := os.WriteFile(path, req.GetContent(), 0o644); err != nil {
		s.logger.Error("upload write failed", "path", path, "error", err)
		return nil, status.Error(codes.Internal, "upload write failed")
	}

	doc, err := s.docs.Create(ctx, repository.CreateDocumentRequest{
		Filename:         stored,
		OriginalFilename: original,
		FilePath:         path,
		FileSize:         len(req.GetContent()),
		MimeType:         req.GetMimeType(),
		Format:           format,
	})
	if err != nil {
		// keep storage consistent with the database
		_ = os.Remove(path)
		s.logger.Error("document registration failed", "filename", original, "error", err)
		return nil, status.Error(codes.Internal, "document registration failed")
	}
	s.logger.Info("document uploaded", "document_id", doc.ID, "filename", original, "bytes", doc.FileSize)

	if req.GetProcess() {
		if err := s.queue.Enqueue(ctx, async.Job{DocumentID: doc.ID, SubmittedAt: time.Now()}); err != nil {
			s.logger.Error("failed to enqueue uploaded document", "document_id", doc.ID, "error", err)
		}
	}

	return &v1.UploadDocumentResponse{Document: toProtoDocument(doc)}, nil
}

// ProcessDocument requests an attempt for the document. With wait=false the
// attempt runs on the worker pool and the response only acknowledges the
// enqueue; with wait=true the attempt runs inline and the response carries
// its outcome.
func (s *DocumentsService) ProcessDocument(ctx context.Context, req *v1.ProcessDocumentRequest) (*v1.ProcessDocumentResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	if !req.GetWait() {
		doc, err := s.docs.GetByID(ctx, id)
		if err != nil {
			return nil, toStatusError(err, s.logger)
		}
		if err := s.queue.Enqueue(ctx, async.Job{DocumentID: id, SubmittedAt: time.Now()}); err != nil {
			return nil, status.Error(codes.Internal, "enqueue failed")
		}
		return &v1.ProcessDocumentResponse{Status: string(doc.Status)}, nil
	}

	outcome, err := s.ctrl.Process(ctx, id)
	if err != nil && !errors.Is(err, common.ErrConflict) {
		// failure outcome is already persisted; report it, not an RPC error
		s.logger.Warn("inline processing failed", "document_id", id, "error", err)
	}
	if errors.Is(err, common.ErrConflict) {
		return nil, common.ConflictError(fmt.Sprintf("document %s is not admissible", id))
	}
	return toProtoOutcome(outcome), nil
}

func (s *DocumentsService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.GetDocumentResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, toStatusError(err, s.logger)
	}
	return &v1.GetDocumentResponse{Document: toProtoDocument(doc)}, nil
}

func (s *DocumentsService) ListDocuments(ctx context.Context, req *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	limit := int(req.GetLimit())

	var docs []*entity.Document
	var err error
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		switch constants.DocumentStatus(st) {
		case constants.StatusPending, constants.StatusProcessing, constants.StatusCompleted, constants.StatusFailed:
		default:
			return nil, status.Errorf(codes.InvalidArgument, "unknown status: %q", st)
		}
		docs, err = s.docs.ListByStatus(ctx, constants.DocumentStatus(st), limit)
	} else {
		docs, err = s.listAll(ctx, limit)
	}
	if err != nil {
		return nil, toStatusError(err, s.logger)
	}

	out := make([]*v1.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toProtoDocument(d))
	}
	return &v1.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentsService) listAll(ctx context.Context, limit int) ([]*entity.Document, error) {
	var all []*entity.Document
	for _, st := range []constants.DocumentStatus{
		constants.StatusPending, constants.StatusProcessing,
		constants.StatusCompleted, constants.StatusFailed,
	} {
		docs, err := s.docs.ListByStatus(ctx, st, limit)
		if err != nil {
			return nil, err
		}
		all = append(all, docs...)
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// DeleteDocument removes the row (detail records and trail cascade) and then
// the backing file. A file that is already gone is not an error.
func (s *DocumentsService) DeleteDocument(ctx context.Context, req *v1.DeleteDocumentRequest) (*v1.DeleteDocumentResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, toStatusError(err, s.logger)
	}
	if err := s.docs.Delete(ctx, id); err != nil {
		return nil, toStatusError(err, s.logger)
	}
	if err := os.Remove(doc.FilePath); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove backing file", "path", doc.FilePath, "error", err)
	}
	return &v1.DeleteDocumentResponse{}, nil
}

func (s *DocumentsService) GetProcessingTrail(ctx context.Context, req *v1.GetProcessingTrailRequest) (*v1.GetProcessingTrailResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	entries, err := s.trail.ListForDocument(ctx, id)
	if err != nil {
		return nil, toStatusError(err, s.logger)
	}
	out := make([]*v1.ProcessingTrailEntry, 0, len(entries))
	for _, e := range entries {
		pe := &v1.ProcessingTrailEntry{
			LogLevel:  string(e.LogLevel),
			Message:   e.Message,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		}
		if e.Step != nil {
			pe.Step = *e.Step
		}
		if e.ProcessingTime != nil {
			pe.ProcessingTime = *e.ProcessingTime
		}
		out = append(out, pe)
	}
	return &v1.GetProcessingTrailResponse{Entries: out}, nil
}

func parseDocumentID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "document_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	return id, nil
}

func toStatusError(err error, logger *slog.Logger) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "document not found")
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		logger.Error("request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func toProtoDocument(d *entity.Document) *v1.Document {
	out := &v1.Document{
		Id:               d.ID.String(),
		Filename:         d.Filename,
		OriginalFilename: d.OriginalFilename,
		Status:           string(d.Status),
		Format:           d.Format,
		FileSize:         int64(d.FileSize),
		MimeType:         d.MimeType,
		CreatedAt:        d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if d.Category != nil {
		out.Category = *d.Category
	}
	if d.FundName != nil {
		out.FundName = *d.FundName
	}
	if d.FundID != nil {
		out.FundId = *d.FundID
	}
	if d.ExtractionConfidence != nil {
		out.ExtractionConfidence = *d.ExtractionConfidence
		out.HasConfidence = true
	}
	if d.ProcessedAt != nil {
		out.ProcessedAt = d.ProcessedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func toProtoOutcome(o entity.Outcome) *v1.ProcessDocumentResponse {
	out := &v1.ProcessDocumentResponse{
		Status:    string(o.Status),
		Error:     o.Error,
		Retryable: o.Retryable,
	}
	if o.Category != nil {
		out.Category = *o.Category
	}
	if o.Confidence != nil {
		out.Confidence = *o.Confidence
		out.HasConfidence = true
	}
	return out
}
