// Package jobs provides scheduled background tasks for the board service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required while boards are open.
//
// # Available Jobs
//
// 1. StaleLockSweeperJob - Runs every second to release transition locks
// held longer than the configured timeout and resync the affected boards
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the boards to sweep
//	jobManager := jobs.NewJobManager(boards, lockTimeout, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweeper uses the cron expression "* * * * * *", running every
// second so an abandoned lock never freezes an order for longer than
// roughly the timeout.
//
// # Error Handling
//
// A failed resync after a force-release is logged and retried implicitly
// by the next sweep or push event; the sweeper itself never stops.
package jobs
