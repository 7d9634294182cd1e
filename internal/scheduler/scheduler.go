// Package scheduler owns the two background loops: the pending sweep, which
// feeds waiting documents to the queue in small batches, and the upload
// cleanup, which reclaims disk from files past the retention window.
package scheduler

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shreyescodes/doc-parser-updated/constants"
	"github.com/shreyescodes/doc-parser-updated/internal/async"
	"github.com/shreyescodes/doc-parser-updated/internal/common"
	"github.com/shreyescodes/doc-parser-updated/internal/repository"
)

type Scheduler struct {
	cfg    common.SchedulerConfig
	docs   repository.DocumentRepository
	queue  async.Queue
	logger *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(cfg common.SchedulerConfig, docs repository.DocumentRepository, queue async.Queue, logger *slog.Logger) *Scheduler {
	return &Scheduler{cfg: cfg, docs: docs, queue: queue, logger: logger}
}

// Start launches both loops. Each runs until Stop or the parent context ends.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(3)
	go func() {
		defer s.wg.Done()
		s.loop(ctx, s.cfg.SweepInterval, "pending sweep", s.SweepPending)
	}()
	go func() {
		defer s.wg.Done()
		s.loop(ctx, s.cfg.CleanupInterval, "upload cleanup", func(ctx context.Context) error {
			_, err := CleanupUploads(s.cfg.UploadDir, time.Now(), s.cfg.Retention, s.logger)
			return err
		})
	}()
	go func() {
		defer s.wg.Done()
		s.loop(ctx, s.cfg.CleanupInterval, "status snapshot", s.LogStatusSnapshot)
	}()
	s.logger.Info("scheduler started",
		"sweep_interval", s.cfg.SweepInterval,
		"cleanup_interval", s.cfg.CleanupInterval,
		"retention", s.cfg.Retention)
}

func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, interval time.Duration, name string, fn func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := fn(ctx); err != nil {
				s.logger.Error(name+" failed", "error", err)
			}
		}
	}
}

// SweepPending enqueues up to BatchSize pending documents. A failed enqueue
// is logged and skipped; the document stays pending and the next sweep picks
// it up again.
func (s *Scheduler) SweepPending(ctx context.Context) error {
	docs, err := s.docs.ListByStatus(ctx, constants.StatusPending, s.cfg.BatchSize)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	s.logger.Info("sweeping pending documents", "count", len(docs))
	for _, doc := range docs {
		job := async.Job{DocumentID: doc.ID, SubmittedAt: time.Now()}
		if err := s.queue.Enqueue(ctx, job); err != nil {
			s.logger.Error("failed to enqueue pending document", "document_id", doc.ID, "error", err)
		}
	}
	return nil
}

// LogStatusSnapshot emits per-status document counts as a coarse liveness
// signal. A growing failed count is the operator's cue to look at the trail.
func (s *Scheduler) LogStatusSnapshot(ctx context.Context) error {
	counts := map[string]int{}
	for _, st := range []constants.DocumentStatus{
		constants.StatusPending, constants.StatusProcessing,
		constants.StatusCompleted, constants.StatusFailed,
	} {
		n, err := s.docs.CountByStatus(ctx, st)
		if err != nil {
			return err
		}
		counts[string(st)] = n
	}
	s.logger.Info("document status snapshot",
		"pending", counts[string(constants.StatusPending)],
		"processing", counts[string(constants.StatusProcessing)],
		"completed", counts[string(constants.StatusCompleted)],
		"failed", counts[string(constants.StatusFailed)])
	return nil
}

// CleanupUploads removes regular files under dir whose modification time is
// older than retention, measured against now. Returns how many were removed.
// Subdirectories are left alone.
func CleanupUploads(dir string, now time.Time, retention time.Duration, logger *slog.Logger) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := now.Add(-retention)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			logger.Warn("failed to remove expired upload", "path", path, "error", err)
			continue
		}
		removed++
		logger.Info("removed expired upload", "path", path, "age", now.Sub(info.ModTime()).Round(time.Hour))
	}
	return removed, nil
}
