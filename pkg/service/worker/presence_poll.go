package worker

import (
	"context"
	"time"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/model"
	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/types"
	"github.com/Anubisss/slack-user-presence-saver/pkg/utils/logging"
)

// Collector performs one poll-and-store cycle
type Collector interface {
	Collect(ctx context.Context, userID types.UserID) (*model.PresenceSample, error)
}

// PresencePollWorker polls a user's presence on a fixed interval and
// appends each observation to the sample table.
//
// Architecture assumptions:
// - Single process instance (no distributed locking)
// - A failed cycle is logged and skipped; the next tick polls again
type PresencePollWorker struct {
	collector Collector
	userID    types.UserID
	interval  time.Duration
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewPresencePollWorker creates a worker polling the given user's presence
func NewPresencePollWorker(collector Collector, userID types.UserID, interval time.Duration) *PresencePollWorker {
	return &PresencePollWorker{
		collector: collector,
		userID:    userID,
		interval:  interval,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background poll loop. The first poll runs immediately;
// Start itself does not block.
func (w *PresencePollWorker) Start(ctx context.Context) error {
	logging.From(ctx).Info("Presence poll worker starting",
		"user_id", w.userID,
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *PresencePollWorker) Stop() {
	logging.Default().Info("Presence poll worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Presence poll worker stopped")
}

func (w *PresencePollWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	w.poll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.poll(ctx)

		case <-w.stopCh:
			logging.From(ctx).Info("Presence poll worker received stop signal")
			return

		case <-ctx.Done():
			logging.From(ctx).Info("Presence poll worker context cancelled")
			return
		}
	}
}

func (w *PresencePollWorker) poll(ctx context.Context) {
	if _, err := w.collector.Collect(ctx, w.userID); err != nil {
		logging.From(ctx).Error("Presence poll failed (will retry next interval)",
			"user_id", w.userID,
			"error", err.Error())
	}
}
