// Package jobs provides scheduled background tasks for the assignment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. BranchGeocodeJob - Runs every minute to geocode branches whose street
// address has no resolved coordinate yet
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshBranchCoordinatesHandler, logger)
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
// The geocode job uses the expression "@every 1m". Branch addresses change
// rarely, so a minute of lag between registering a branch and ranking it is
// acceptable while keeping provider quota usage low.
//
// # Error Handling
//
// Unresolvable addresses are skipped inside the command handler itself; only
// provider outages and persistence failures reach the job and get logged.
package jobs
