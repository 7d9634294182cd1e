package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreyescodes/doc-parser-updated/constants"
	"github.com/shreyescodes/doc-parser-updated/internal/classify"
	"github.com/shreyescodes/doc-parser-updated/internal/common"
	"github.com/shreyescodes/doc-parser-updated/internal/entity"
	"github.com/shreyescodes/doc-parser-updated/internal/fields"
	"github.com/shreyescodes/doc-parser-updated/internal/reconcile"
	"github.com/shreyescodes/doc-parser-updated/internal/repository"
	"github.com/shreyescodes/doc-parser-updated/internal/textsource"
)

type fakeDocRepo struct {
	docs        map[uuid.UUID]*entity.Document
	extractions map[uuid.UUID]repository.ExtractionUpdate
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{
		docs:        map[uuid.UUID]*entity.Document{},
		extractions: map[uuid.UUID]repository.ExtractionUpdate{},
	}
}

func (f *fakeDocRepo) add(status constants.DocumentStatus, path string) uuid.UUID {
	id := uuid.New()
	f.docs[id] = &entity.Document{ID: id, FilePath: path, Status: status, Format: constants.PDF}
	return id
}

func (f *fakeDocRepo) Create(_ context.Context, req repository.CreateDocumentRequest) (*entity.Document, error) {
	id := f.add(constants.StatusPending, req.FilePath)
	return f.docs[id], nil
}

func (f *fakeDocRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, common.NewAppError("DOCUMENT_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	c := *d
	return &c, nil
}

func (f *fakeDocRepo) AdmitForProcessing(_ context.Context, id uuid.UUID) (bool, error) {
	d, ok := f.docs[id]
	if !ok {
		return false, nil
	}
	if d.Status != constants.StatusPending && d.Status != constants.StatusFailed {
		return false, nil
	}
	d.Status = constants.StatusProcessing
	return true, nil
}

func (f *fakeDocRepo) SaveExtraction(_ context.Context, id uuid.UUID, upd repository.ExtractionUpdate) error {
	f.extractions[id] = upd
	cat := string(upd.Category)
	f.docs[id].Category = &cat
	return nil
}

func (f *fakeDocRepo) MarkCompleted(_ context.Context, id uuid.UUID, confidence float32) error {
	f.docs[id].Status = constants.StatusCompleted
	f.docs[id].ExtractionConfidence = &confidence
	return nil
}

func (f *fakeDocRepo) MarkFailed(_ context.Context, id uuid.UUID) error {
	f.docs[id].Status = constants.StatusFailed
	return nil
}

func (f *fakeDocRepo) ListByStatus(_ context.Context, status constants.DocumentStatus, limit int) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range f.docs {
		if d.Status == status {
			out = append(out, d)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeDocRepo) CountByStatus(_ context.Context, status constants.DocumentStatus) (int, error) {
	n := 0
	for _, d := range f.docs {
		if d.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeDocRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.docs, id)
	return nil
}

type fakeTrail struct {
	entries []repository.AppendLogRequest
}

func (f *fakeTrail) Append(_ context.Context, req repository.AppendLogRequest) error {
	f.entries = append(f.entries, req)
	return nil
}

func (f *fakeTrail) ListForDocument(_ context.Context, id uuid.UUID) ([]*entity.ProcessingLogEntry, error) {
	return nil, nil
}

func (f *fakeTrail) steps() []string {
	var out []string
	for _, e := range f.entries {
		if e.Step != nil {
			out = append(out, *e.Step)
		}
	}
	return out
}

type fakeSource struct {
	text string
	err  error
}

func (f *fakeSource) Extract(context.Context, string) (textsource.Result, error) {
	if f.err != nil {
		return textsource.Result{}, f.err
	}
	return textsource.Result{NormalizedText: f.text, OCRText: f.text, Pages: 1}, nil
}

type fakeDetails struct {
	capitalCalls  map[uuid.UUID]*entity.CapitalCallDetail
	distributions map[uuid.UUID]*entity.DistributionDetail
}

func newFakeDetails() *fakeDetails {
	return &fakeDetails{
		capitalCalls:  map[uuid.UUID]*entity.CapitalCallDetail{},
		distributions: map[uuid.UUID]*entity.DistributionDetail{},
	}
}

func (f *fakeDetails) GetCapitalCall(_ context.Context, id uuid.UUID) (*entity.CapitalCallDetail, error) {
	if d, ok := f.capitalCalls[id]; ok {
		return d, nil
	}
	return nil, common.NewAppError("DETAIL_NOT_FOUND", id.String(), common.ErrNotFound)
}

func (f *fakeDetails) SaveCapitalCall(_ context.Context, d *entity.CapitalCallDetail) (*entity.CapitalCallDetail, error) {
	f.capitalCalls[d.DocumentID] = d
	return d, nil
}

func (f *fakeDetails) ListCapitalCalls(context.Context) ([]*entity.CapitalCallDetail, error) {
	return nil, nil
}

func (f *fakeDetails) GetDistribution(_ context.Context, id uuid.UUID) (*entity.DistributionDetail, error) {
	if d, ok := f.distributions[id]; ok {
		return d, nil
	}
	return nil, common.NewAppError("DETAIL_NOT_FOUND", id.String(), common.ErrNotFound)
}

func (f *fakeDetails) SaveDistribution(_ context.Context, d *entity.DistributionDetail) (*entity.DistributionDetail, error) {
	f.distributions[d.DocumentID] = d
	return d, nil
}

func (f *fakeDetails) ListDistributions(context.Context) ([]*entity.DistributionDetail, error) {
	return nil, nil
}

func newTestController(docs *fakeDocRepo, trail *fakeTrail, source TextSource, details *fakeDetails) *Controller {
	return NewController(
		docs, trail, source,
		classify.NewClassifier(),
		fields.NewEngine(nil),
		reconcile.NewReconciler(details, nil),
		nil, time.Minute, nil,
	)
}

func existingFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "letter.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
	return path
}

const capitalCallText = "CAPITAL CALL NOTICE\n" +
	"Dear Acme Pension Trust,\n" +
	"This capital call represents a drawdown against your commitment.\n" +
	"Call Amount: $50,000.00\n" +
	"Due Date: 03/15/2024\n"

func TestProcessCapitalCallCompletes(t *testing.T) {
	docs := newFakeDocRepo()
	trail := &fakeTrail{}
	details := newFakeDetails()
	id := docs.add(constants.StatusPending, existingFile(t))
	c := newTestController(docs, trail, &fakeSource{text: capitalCallText}, details)

	outcome, err := c.Process(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, constants.StatusCompleted, outcome.Status)
	require.NotNil(t, outcome.Category)
	assert.Equal(t, string(constants.CapitalCall), *outcome.Category)
	require.NotNil(t, outcome.Confidence)
	assert.Greater(t, *outcome.Confidence, float32(0))

	assert.Equal(t, constants.StatusCompleted, docs.docs[id].Status)
	require.Len(t, details.capitalCalls, 1)
	detail := details.capitalCalls[id]
	require.NotNil(t, detail.CallAmount)
	assert.InDelta(t, 50000.0, *detail.CallAmount, 1e-9)

	steps := trail.steps()
	assert.Contains(t, steps, constants.StepInitialization)
	assert.Contains(t, steps, constants.StepTextExtraction)
	assert.Contains(t, steps, constants.StepClassification)
	assert.Contains(t, steps, constants.StepFieldExtraction)
	assert.Contains(t, steps, constants.StepFinalize)
}

func TestProcessOtherCategorySkipsDetailRecord(t *testing.T) {
	docs := newFakeDocRepo()
	trail := &fakeTrail{}
	details := newFakeDetails()
	id := docs.add(constants.StatusPending, existingFile(t))
	c := newTestController(docs, trail, &fakeSource{text: "quarterly market commentary"}, details)

	outcome, err := c.Process(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, constants.StatusCompleted, outcome.Status)
	require.NotNil(t, outcome.Category)
	assert.Equal(t, string(constants.Other), *outcome.Category)
	require.NotNil(t, outcome.Confidence)
	assert.Zero(t, *outcome.Confidence)
	assert.Empty(t, details.capitalCalls)
	assert.Empty(t, details.distributions)
}

func TestProcessConflictRejectsWithoutMutation(t *testing.T) {
	docs := newFakeDocRepo()
	trail := &fakeTrail{}
	id := docs.add(constants.StatusProcessing, existingFile(t))
	c := newTestController(docs, trail, &fakeSource{text: capitalCallText}, newFakeDetails())

	outcome, err := c.Process(context.Background(), id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConflict))
	assert.False(t, outcome.Retryable)
	// the in-flight attempt's state is untouched and nothing was logged
	assert.Equal(t, constants.StatusProcessing, docs.docs[id].Status)
	assert.Empty(t, trail.entries)
}

func TestProcessCompletedDocumentIsNotReadmitted(t *testing.T) {
	docs := newFakeDocRepo()
	id := docs.add(constants.StatusCompleted, existingFile(t))
	c := newTestController(docs, &fakeTrail{}, &fakeSource{text: capitalCallText}, newFakeDetails())

	_, err := c.Process(context.Background(), id)
	assert.True(t, errors.Is(err, common.ErrConflict))
	assert.Equal(t, constants.StatusCompleted, docs.docs[id].Status)
}

func TestProcessFailedDocumentIsReadmissible(t *testing.T) {
	docs := newFakeDocRepo()
	id := docs.add(constants.StatusFailed, existingFile(t))
	c := newTestController(docs, &fakeTrail{}, &fakeSource{text: capitalCallText}, newFakeDetails())

	outcome, err := c.Process(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCompleted, outcome.Status)
}

func TestProcessMissingFileFails(t *testing.T) {
	docs := newFakeDocRepo()
	trail := &fakeTrail{}
	id := docs.add(constants.StatusPending, "/nonexistent/letter.pdf")
	c := newTestController(docs, trail, &fakeSource{text: capitalCallText}, newFakeDetails())

	outcome, err := c.Process(context.Background(), id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrFileMissing))
	assert.Equal(t, constants.StatusFailed, outcome.Status)
	assert.False(t, outcome.Retryable)
	assert.Equal(t, constants.StatusFailed, docs.docs[id].Status)
}

func TestProcessEmptyTextFails(t *testing.T) {
	docs := newFakeDocRepo()
	trail := &fakeTrail{}
	id := docs.add(constants.StatusPending, existingFile(t))
	c := newTestController(docs, trail, &fakeSource{text: ""}, newFakeDetails())

	outcome, err := c.Process(context.Background(), id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrBackendUnavailable))
	assert.Equal(t, constants.StatusFailed, outcome.Status)
	assert.True(t, outcome.Retryable)
}

func TestProcessSoftBudgetRecordsTimeout(t *testing.T) {
	docs := newFakeDocRepo()
	trail := &fakeTrail{}
	id := docs.add(constants.StatusPending, existingFile(t))
	c := NewController(
		docs, trail, &fakeSource{text: capitalCallText},
		classify.NewClassifier(), fields.NewEngine(nil),
		reconcile.NewReconciler(newFakeDetails(), nil),
		nil, time.Nanosecond, nil,
	)

	outcome, err := c.Process(context.Background(), id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTimeout))
	assert.Equal(t, constants.StatusFailed, outcome.Status)
	assert.Contains(t, trail.steps(), constants.StepTimeout)
}

func TestProcessPersistsExtractionBeforeCompletion(t *testing.T) {
	docs := newFakeDocRepo()
	id := docs.add(constants.StatusPending, existingFile(t))
	c := newTestController(docs, &fakeTrail{}, &fakeSource{text: capitalCallText}, newFakeDetails())

	_, err := c.Process(context.Background(), id)
	require.NoError(t, err)

	upd, ok := docs.extractions[id]
	require.True(t, ok)
	assert.Equal(t, capitalCallText, upd.NormalizedText)
	assert.Equal(t, constants.CapitalCall, upd.Category)
}
