// Package jobs provides scheduled background tasks. Jobs wrap
// github.com/robfig/cron/v3 schedules around application operations.
package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// sweepBatchSize bounds how many parked references one sweep attempts.
const sweepBatchSize = 50

// OrphanImageSweeperJob periodically retries deletion of image references
// whose compensating delete failed. Each successful delete clears its
// ledger entry; failures stay parked for the next run.
type OrphanImageSweeperJob struct {
	store  ports.ImageStore
	ledger ports.OrphanImageLedger
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrphanImageSweeperJob creates a sweeper over the given store and
// ledger.
func NewOrphanImageSweeperJob(
	store ports.ImageStore,
	ledger ports.OrphanImageLedger,
	logger *slog.Logger,
) *OrphanImageSweeperJob {
	return &OrphanImageSweeperJob{
		store:  store,
		ledger: ledger,
		cron:   cron.New(),
		logger: logger.With("component", "orphan_image_sweeper_job"),
	}
}

// Start schedules the sweeper to run every minute.
func (j *OrphanImageSweeperJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		j.Sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Orphan image sweeper started (running every minute)")
	return nil
}

// Sweep runs one pass over the ledger. Exported so tests and manual
// maintenance can trigger it without the schedule.
func (j *OrphanImageSweeperJob) Sweep(ctx context.Context) {
	orphans, err := j.ledger.List(ctx, sweepBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Orphan image sweep failed to list ledger", "error", err)
		return
	}

	for _, orphan := range orphans {
		// A reference already gone still clears its entry.
		if _, err := j.store.Delete(ctx, orphan.Ref); err != nil {
			j.logger.WarnContext(ctx, "Orphan image delete failed, leaving parked",
				"ref", orphan.Ref, "error", err)
			continue
		}

		if err := j.ledger.Remove(ctx, orphan.ID); err != nil {
			j.logger.ErrorContext(ctx, "Orphan image ledger entry removal failed",
				"ref", orphan.Ref, "error", err)
		}
	}
}

// Stop stops the sweeper schedule.
func (j *OrphanImageSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Orphan image sweeper stopped")
}
