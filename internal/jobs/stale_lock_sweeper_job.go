package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderboard/internal/core/application/board"

	"github.com/robfig/cron/v3"
)

// StaleLockSweeperJob force-releases transition locks that have been held
// longer than the timeout. A lock that old means a persistence call never
// completed; after releasing, the affected board is resynced so the
// abandoned optimistic state cannot linger.
type StaleLockSweeperJob struct {
	boards  []*board.Board
	timeout time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleLockSweeperJob creates a sweeper over the given boards.
func NewStaleLockSweeperJob(
	boards []*board.Board,
	timeout time.Duration,
	logger *slog.Logger,
) *StaleLockSweeperJob {
	return &StaleLockSweeperJob{
		boards:  boards,
		timeout: timeout,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_lock_sweeper_job"),
	}
}

// Start begins the sweeper job to run every second.
func (j *StaleLockSweeperJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Stale lock sweeper started (running every second)", "timeout", j.timeout)
	return nil
}

// Stop stops the sweeper job.
func (j *StaleLockSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale lock sweeper stopped")
}

func (j *StaleLockSweeperJob) sweep(ctx context.Context) {
	for _, b := range j.boards {
		released := b.Lock().ReleaseStale(j.timeout)
		if len(released) == 0 {
			continue
		}

		for _, orderID := range released {
			j.logger.WarnContext(ctx, "force-released stale transition lock",
				"orderId", orderID.String(),
				"category", b.Category().String(),
			)
		}

		if err := b.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "resync after force-release failed",
				"category", b.Category().String(),
				"error", err,
			)
		}
	}
}
