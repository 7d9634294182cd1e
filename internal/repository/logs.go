package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shreyescodes/doc-parser-updated/constants"
	"github.com/shreyescodes/doc-parser-updated/gen/ent"
	entlog "github.com/shreyescodes/doc-parser-updated/gen/ent/processinglog"
	"github.com/shreyescodes/doc-parser-updated/internal/entity"
)

// AppendLogRequest is one processing trail entry. Step and ProcessingTime are
// optional; ProcessingTime is in seconds.
type AppendLogRequest struct {
	DocumentID     uuid.UUID
	Level          constants.LogLevel
	Message        string
	Step           *string
	ProcessingTime *float64
}

// ProcessingLogRepository is append-only. Entries are never updated or
// deleted individually; they go away with their document.
type ProcessingLogRepository interface {
	Append(ctx context.Context, req AppendLogRequest) error
	ListForDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ProcessingLogEntry, error)
}

type processingLogRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewProcessingLogRepository(entc *ent.Client, log *slog.Logger) ProcessingLogRepository {
	return &processingLogRepo{ent: entc, log: log}
}

func (r *processingLogRepo) Append(ctx context.Context, req AppendLogRequest) error {
	_, err := r.ent.ProcessingLog.
		Create().
		SetDocumentID(req.DocumentID).
		SetLogLevel(string(req.Level)).
		SetMessage(req.Message).
		SetNillableStep(req.Step).
		SetNillableProcessingTime(req.ProcessingTime).
		Save(ctx)
	if err != nil {
		// A lost trail entry is not worth failing an attempt over, but the
		// caller decides that; we just report it.
		r.log.Error("processing log append failed", "document_id", req.DocumentID, "err", err)
		return err
	}
	return nil
}

func (r *processingLogRepo) ListForDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ProcessingLogEntry, error) {
	rows, err := r.ent.ProcessingLog.Query().
		Where(entlog.DocumentID(documentID)).
		Order(entlog.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.ProcessingLogEntry, len(rows))
	for i, row := range rows {
		result[i] = toLogEntry(row)
	}
	return result, nil
}
