// Package scheduler drives the periodic refresh loop.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/halldorv/vedurvakt/internal/domain"
)

// tickTimeout bounds a single refresh cycle.
const tickTimeout = 60 * time.Second

// Refresher produces a fresh snapshot, carrying forward the previous
// alert list when the alert feed is unavailable.
type Refresher interface {
	Refresh(ctx context.Context, previousAlerts []domain.Alert) (*domain.Snapshot, error)
}

// Saver stores the latest snapshot.
type Saver interface {
	Save(snap *domain.Snapshot)
}

// Publisher pushes snapshots to an external system. Optional.
type Publisher interface {
	Publish(ctx context.Context, snap *domain.Snapshot) error
}

// Scheduler runs a refresh on a fixed interval and fans the result out
// to the store and any configured publisher.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	store     Saver
	publisher Publisher
	interval  time.Duration
	logger    *slog.Logger

	previousAlerts []domain.Alert
}

// New creates a Scheduler. publisher may be nil.
func New(refresher Refresher, store Saver, publisher Publisher, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		refresher: refresher,
		store:     store,
		publisher: publisher,
		interval:  interval,
		logger:    logger,
	}
}

// Start runs one refresh immediately, then schedules the periodic job.
// Only the scheduler goroutine touches previousAlerts, so the carry-over
// needs no locking.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.interval).StartImmediately().Do(s.tick)
	if err != nil {
		return err
	}
	s.scheduler.StartAsync()
	return nil
}

// Stop halts the periodic job. A tick already in flight finishes on its
// own deadline.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// RunOnce performs a single refresh cycle outside the periodic schedule.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	return s.refresh(ctx)
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()

	if err := s.refresh(ctx); err != nil {
		s.logger.Error("refresh failed", "error", err)
	}
}

func (s *Scheduler) refresh(ctx context.Context) error {
	snap, err := s.refresher.Refresh(ctx, s.previousAlerts)
	if err != nil {
		return err
	}

	s.previousAlerts = snap.Alerts
	s.store.Save(snap)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, snap); err != nil {
			s.logger.Warn("snapshot publish failed", "error", err)
		}
	}
	return nil
}
