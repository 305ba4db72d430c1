package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"orderboard/internal/core/application/board"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleLockSweeperJob *StaleLockSweeperJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	boards []*board.Board,
	lockTimeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleLockSweeperJob: NewStaleLockSweeperJob(boards, lockTimeout, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleLockSweeperJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale lock sweeper job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleLockSweeperJob.Stop()
}
