package jobs

import (
	"fmt"
	"log/slog"

	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/principal"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statusSummaryJob *StatusSummaryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	summaryHandler queries.GetStatusSummaryQueryHandler,
	reporter principal.Principal,
	recorder SummaryRecorder,
	summarySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statusSummaryJob: NewStatusSummaryJob(summaryHandler, reporter, recorder, summarySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusSummaryJob.Start(); err != nil {
		return fmt.Errorf("failed to start status summary job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusSummaryJob.Stop()
}
