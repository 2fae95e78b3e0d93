// Package jobs provides scheduled background tasks for the print portal.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StatusSummaryJob - logs the number of orders in each status, the same
// figures the admin dashboard shows
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(summaryHandler, reporter, "@every 1m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax or descriptors such as
// "@hourly" and "@every 30s".
//
// # Error Handling
//
// A failed run is logged and the job keeps its schedule. An invalid
// schedule makes Start fail.
package jobs
