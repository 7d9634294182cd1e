// Package pipeline drives one document through the full processing attempt:
// admission, text extraction, classification, field extraction and
// reconciliation. The controller owns all status transitions; nothing else in
// the codebase writes documents.status.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/shreyescodes/doc-parser-updated/constants"
	"github.com/shreyescodes/doc-parser-updated/internal/classify"
	"github.com/shreyescodes/doc-parser-updated/internal/common"
	"github.com/shreyescodes/doc-parser-updated/internal/entity"
	"github.com/shreyescodes/doc-parser-updated/internal/fields"
	"github.com/shreyescodes/doc-parser-updated/internal/reconcile"
	"github.com/shreyescodes/doc-parser-updated/internal/repository"
	"github.com/shreyescodes/doc-parser-updated/internal/textsource"
)

// TextSource abstracts the extraction arbitration layer so the controller can
// be exercised without external binaries.
type TextSource interface {
	Extract(ctx context.Context, path string) (textsource.Result, error)
}

// ProgressSink receives advisory checkpoints as an attempt moves through its
// stages. Checkpoints are best-effort; a sink must not block.
type ProgressSink interface {
	Checkpoint(documentID uuid.UUID, step string)
}

// NopSink discards checkpoints.
type NopSink struct{}

func (NopSink) Checkpoint(uuid.UUID, string) {}

// LogSink reports checkpoints to a structured logger at debug level.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Checkpoint(documentID uuid.UUID, step string) {
	s.Logger.Debug("attempt checkpoint", "document_id", documentID, "step", step)
}

// Controller runs processing attempts. Safe for concurrent use; each attempt
// touches only its own document.
type Controller struct {
	docs       repository.DocumentRepository
	trail      repository.ProcessingLogRepository
	source     TextSource
	classifier *classify.Classifier
	engine     *fields.Engine
	reconciler *reconcile.Reconciler
	progress   ProgressSink
	softBudget time.Duration
	logger     *slog.Logger
}

func NewController(
	docs repository.DocumentRepository,
	trail repository.ProcessingLogRepository,
	source TextSource,
	classifier *classify.Classifier,
	engine *fields.Engine,
	reconciler *reconcile.Reconciler,
	progress ProgressSink,
	softBudget time.Duration,
	logger *slog.Logger,
) *Controller {
	if progress == nil {
		progress = NopSink{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		docs:       docs,
		trail:      trail,
		source:     source,
		classifier: classifier,
		engine:     engine,
		reconciler: reconciler,
		progress:   progress,
		softBudget: softBudget,
		logger:     logger,
	}
}

// Process runs one attempt for the document. The returned Outcome always
// reflects what was persisted; the error restates the failure for callers
// that propagate it.
//
// A document that is neither pending nor failed is rejected synchronously:
// no status change, no trail entry.
func (c *Controller) Process(ctx context.Context, id uuid.UUID) (entity.Outcome, error) {
	admitted, err := c.docs.AdmitForProcessing(ctx, id)
	if err != nil {
		return failureOutcome(err), err
	}
	if !admitted {
		doc, getErr := c.docs.GetByID(ctx, id)
		if getErr != nil {
			return failureOutcome(getErr), getErr
		}
		conflictErr := common.NewAppError("PROCESSING_CONFLICT",
			fmt.Sprintf("document is %s", doc.Status), common.ErrConflict)
		return entity.Outcome{Status: doc.Status, Retryable: false, Error: conflictErr.Error()}, conflictErr
	}

	start := time.Now()
	var deadline time.Time
	if c.softBudget > 0 {
		deadline = start.Add(c.softBudget)
	}

	outcome, err := c.run(ctx, id, start, deadline)
	if err != nil {
		c.fail(ctx, id, err)
		return failureOutcome(err), err
	}
	return outcome, nil
}

// run is the happy path; any returned error sends the document to failed.
func (c *Controller) run(ctx context.Context, id uuid.UUID, start time.Time, deadline time.Time) (entity.Outcome, error) {
	c.progress.Checkpoint(id, constants.StepQueued)
	c.logStep(ctx, id, constants.LogInfo, "processing started", constants.StepInitialization, nil)

	doc, err := c.docs.GetByID(ctx, id)
	if err != nil {
		return entity.Outcome{}, err
	}
	if _, err := os.Stat(doc.FilePath); err != nil {
		return entity.Outcome{}, common.NewAppError("FILE_MISSING", doc.FilePath, common.ErrFileMissing)
	}

	if err := c.checkBudget(ctx, deadline, constants.StepTextExtraction); err != nil {
		return entity.Outcome{}, err
	}

	c.progress.Checkpoint(id, constants.StepTextExtraction)
	stepStart := time.Now()
	res, err := c.source.Extract(ctx, doc.FilePath)
	if err != nil {
		return entity.Outcome{}, common.NewAppError("TEXT_EXTRACTION_FAILED", doc.FilePath, err)
	}
	if res.NormalizedText == "" {
		return entity.Outcome{}, common.NewAppError("NO_TEXT_EXTRACTED",
			"both extraction backends produced empty text", common.ErrBackendUnavailable)
	}
	c.logStep(ctx, id, constants.LogInfo,
		fmt.Sprintf("text extracted: %d chars, %d pages", len(res.NormalizedText), res.Pages),
		constants.StepTextExtraction, seconds(stepStart))
	for _, w := range res.Warnings {
		c.logStep(ctx, id, constants.LogWarning, w, constants.StepTextExtraction, nil)
	}

	if err := c.checkBudget(ctx, deadline, constants.StepClassification); err != nil {
		return entity.Outcome{}, err
	}

	c.progress.Checkpoint(id, constants.StepClassification)
	stepStart = time.Now()
	category := c.classifier.Classify(res.NormalizedText)
	callScore, distScore := c.classifier.Scores(res.NormalizedText)
	c.logStep(ctx, id, constants.LogInfo,
		fmt.Sprintf("classified as %s (capital_call=%d distribution=%d)", category, callScore, distScore),
		constants.StepClassification, seconds(stepStart))

	fundInfo := c.engine.ExtractFundInfo(res.NormalizedText)
	upd := repository.ExtractionUpdate{
		NormalizedText: res.NormalizedText,
		OCRText:        res.OCRText,
		Category:       category,
		FundName:       fundInfo.FundName,
		FundID:         fundInfo.FundID,
	}
	if res.StructuredTree != nil {
		tree, merr := json.Marshal(res.StructuredTree)
		if merr != nil {
			c.logStep(ctx, id, constants.LogWarning, "structured tree not serializable: "+merr.Error(),
				constants.StepTextExtraction, nil)
		} else {
			upd.StructuredTree = tree
		}
	}
	if err := c.docs.SaveExtraction(ctx, id, upd); err != nil {
		return entity.Outcome{}, err
	}

	if err := c.checkBudget(ctx, deadline, constants.StepFieldExtraction); err != nil {
		return entity.Outcome{}, err
	}

	c.progress.Checkpoint(id, constants.StepFieldExtraction)
	var confidence float32
	switch category {
	case constants.CapitalCall:
		confidence, err = c.runCapitalCall(ctx, id, res.NormalizedText, deadline)
	case constants.Distribution:
		confidence, err = c.runDistribution(ctx, id, res.NormalizedText, deadline)
	default:
		// No detail record for uncategorized documents; the text and the
		// trail are still kept for manual review.
		c.logStep(ctx, id, constants.LogWarning, "no category matched, skipping field extraction",
			constants.StepFieldExtraction, nil)
	}
	if err != nil {
		return entity.Outcome{}, err
	}

	c.progress.Checkpoint(id, constants.StepFinalize)
	if err := c.docs.MarkCompleted(ctx, id, confidence); err != nil {
		return entity.Outcome{}, err
	}
	total := seconds(start)
	c.logStep(ctx, id, constants.LogInfo, "processing completed", constants.StepFinalize, total)

	cat := string(category)
	return entity.Outcome{
		Status:     constants.StatusCompleted,
		Category:   &cat,
		Confidence: &confidence,
		Retryable:  false,
	}, nil
}

func (c *Controller) runCapitalCall(ctx context.Context, id uuid.UUID, text string, deadline time.Time) (float32, error) {
	stepStart := time.Now()
	f := c.engine.ExtractCapitalCall(text)
	set, total := f.Coverage()
	c.logStep(ctx, id, constants.LogInfo,
		fmt.Sprintf("capital call fields extracted: %d/%d", set, total),
		constants.StepFieldExtraction, seconds(stepStart))

	if err := c.checkBudget(ctx, deadline, constants.StepReconciliation); err != nil {
		return 0, err
	}
	c.progress.Checkpoint(id, constants.StepReconciliation)
	if _, err := c.reconciler.ReconcileCapitalCall(ctx, id, f); err != nil {
		return 0, err
	}
	return float32(set) / float32(total), nil
}

func (c *Controller) runDistribution(ctx context.Context, id uuid.UUID, text string, deadline time.Time) (float32, error) {
	stepStart := time.Now()
	f := c.engine.ExtractDistribution(text)
	set, total := f.Coverage()
	c.logStep(ctx, id, constants.LogInfo,
		fmt.Sprintf("distribution fields extracted: %d/%d", set, total),
		constants.StepFieldExtraction, seconds(stepStart))

	if err := c.checkBudget(ctx, deadline, constants.StepReconciliation); err != nil {
		return 0, err
	}
	c.progress.Checkpoint(id, constants.StepReconciliation)
	if _, err := c.reconciler.ReconcileDistribution(ctx, id, f); err != nil {
		return 0, err
	}
	return float32(set) / float32(total), nil
}

// checkBudget runs between stages. The soft budget stops an attempt at a
// stage boundary; the hard limit is the queue's context deadline and can cut
// a stage short.
func (c *Controller) checkBudget(ctx context.Context, deadline time.Time, nextStep string) error {
	if err := ctx.Err(); err != nil {
		return common.NewAppError("ATTEMPT_CANCELLED", nextStep, common.ErrTimeout)
	}
	if !deadline.IsZero() && time.Now().After(deadline) {
		return common.NewAppError("SOFT_BUDGET_EXCEEDED", "before "+nextStep, common.ErrTimeout)
	}
	return nil
}

// fail moves the document to failed and records the error on the trail. The
// trail write is best-effort; the status write is not.
func (c *Controller) fail(ctx context.Context, id uuid.UUID, cause error) {
	// The attempt context may already be dead; the failure record must
	// still be written.
	if ctx.Err() != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
	}
	if err := c.docs.MarkFailed(ctx, id); err != nil {
		c.logger.Error("failed to mark document failed", "document_id", id, "err", err)
		return
	}
	step := constants.StepFinalize
	if errors.Is(cause, common.ErrTimeout) {
		step = constants.StepTimeout
	}
	c.logStep(ctx, id, constants.LogError, cause.Error(), step, nil)
}

func (c *Controller) logStep(ctx context.Context, id uuid.UUID, level constants.LogLevel, msg, step string, processingTime *float64) {
	req := repository.AppendLogRequest{
		DocumentID:     id,
		Level:          level,
		Message:        msg,
		Step:           &step,
		ProcessingTime: processingTime,
	}
	if err := c.trail.Append(ctx, req); err != nil {
		c.logger.Warn("trail append failed", "document_id", id, "step", step, "err", err)
	}
}

func failureOutcome(err error) entity.Outcome {
	return entity.Outcome{
		Status:    constants.StatusFailed,
		Error:     err.Error(),
		Retryable: common.Retryable(err),
	}
}

func seconds(since time.Time) *float64 {
	s := time.Since(since).Seconds()
	return &s
}
