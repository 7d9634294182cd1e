package scheduler

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreyescodes/doc-parser-updated/constants"
	"github.com/shreyescodes/doc-parser-updated/internal/async"
	"github.com/shreyescodes/doc-parser-updated/internal/common"
	"github.com/shreyescodes/doc-parser-updated/internal/entity"
	"github.com/shreyescodes/doc-parser-updated/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeAged(t *testing.T, dir, name string, age time.Duration, now time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	mtime := now.Add(-age)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestCleanupUploadsRemovesOnlyExpiredFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	retention := 7 * 24 * time.Hour

	old := writeAged(t, dir, "old.pdf", 8*24*time.Hour, now)
	fresh := writeAged(t, dir, "fresh.pdf", 24*time.Hour, now)

	removed, err := CleanupUploads(dir, now, retention, testLogger())
	require.NoError(t, err)

	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
}

func TestCleanupUploadsSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	mtime := now.Add(-30 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(sub, mtime, mtime))

	removed, err := CleanupUploads(dir, now, 7*24*time.Hour, testLogger())
	require.NoError(t, err)

	assert.Zero(t, removed)
	assert.DirExists(t, sub)
}

func TestCleanupUploadsMissingDirIsNotAnError(t *testing.T) {
	removed, err := CleanupUploads(filepath.Join(t.TempDir(), "nope"), time.Now(), time.Hour, testLogger())
	require.NoError(t, err)
	assert.Zero(t, removed)
}

type sweepDocs struct {
	pending []*entity.Document
}

func (s *sweepDocs) Create(context.Context, repository.CreateDocumentRequest) (*entity.Document, error) {
	return nil, nil
}

func (s *sweepDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	return nil, common.NewAppError("DOCUMENT_NOT_FOUND", id.String(), common.ErrNotFound)
}

func (s *sweepDocs) AdmitForProcessing(context.Context, uuid.UUID) (bool, error) { return false, nil }

func (s *sweepDocs) SaveExtraction(context.Context, uuid.UUID, repository.ExtractionUpdate) error {
	return nil
}

func (s *sweepDocs) MarkCompleted(context.Context, uuid.UUID, float32) error { return nil }
func (s *sweepDocs) MarkFailed(context.Context, uuid.UUID) error             { return nil }

func (s *sweepDocs) ListByStatus(_ context.Context, status constants.DocumentStatus, limit int) ([]*entity.Document, error) {
	if status != constants.StatusPending {
		return nil, nil
	}
	if limit > 0 && len(s.pending) > limit {
		return s.pending[:limit], nil
	}
	return s.pending, nil
}

func (s *sweepDocs) CountByStatus(context.Context, constants.DocumentStatus) (int, error) {
	return len(s.pending), nil
}

func (s *sweepDocs) Delete(context.Context, uuid.UUID) error { return nil }

type collectQueue struct {
	jobs []async.Job
}

func (q *collectQueue) Enqueue(_ context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *collectQueue) Shutdown(context.Context) {}

func TestSweepPendingEnqueuesBatch(t *testing.T) {
	var docs sweepDocs
	for i := 0; i < 8; i++ {
		docs.pending = append(docs.pending, &entity.Document{ID: uuid.New(), Status: constants.StatusPending})
	}
	queue := &collectQueue{}
	s := New(common.SchedulerConfig{BatchSize: 5}, &docs, queue, testLogger())

	require.NoError(t, s.SweepPending(context.Background()))

	assert.Len(t, queue.jobs, 5)
	assert.Equal(t, docs.pending[0].ID, queue.jobs[0].DocumentID)
}

func TestSweepPendingNoWorkIsQuiet(t *testing.T) {
	queue := &collectQueue{}
	s := New(common.SchedulerConfig{BatchSize: 5}, &sweepDocs{}, queue, testLogger())

	require.NoError(t, s.SweepPending(context.Background()))
	assert.Empty(t, queue.jobs)
}
