// Package jobs provides scheduled background tasks for the commerce system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. ReconciliationReportJob - Runs every minute to report product requests
// whose delivered stock did not match the requested quantity
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(requestRepo, logger)
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
// The reconciliation report job uses the cron expression "0 * * * * *",
// running at the top of every minute. Stock mismatches are not urgent to
// act on, but they should never go unnoticed.
//
// # Error Handling
//
// The report job logs all errors: any failure to read the request store
// indicates a system issue.
package jobs
