package jobs

import (
	"context"
	"log/slog"

	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/principal"

	"github.com/robfig/cron/v3"
)

// DefaultSummarySchedule runs the status summary once a minute.
const DefaultSummarySchedule = "@every 1m"

// SummaryRecorder receives every computed summary, e.g. to export it as metrics.
type SummaryRecorder interface {
	RecordSummary(summary queries.GetStatusSummaryQueryResponse)
}

// StatusSummaryJob periodically logs the order counts per status, as the
// admin dashboard shows them.
type StatusSummaryJob struct {
	handler  queries.GetStatusSummaryQueryHandler
	viewer   principal.Principal
	recorder SummaryRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusSummaryJob creates a job that summarizes the orders visible to viewer.
// An empty schedule falls back to DefaultSummarySchedule. recorder may be nil.
func NewStatusSummaryJob(
	handler queries.GetStatusSummaryQueryHandler,
	viewer principal.Principal,
	recorder SummaryRecorder,
	schedule string,
	logger *slog.Logger,
) *StatusSummaryJob {
	if schedule == "" {
		schedule = DefaultSummarySchedule
	}
	return &StatusSummaryJob{
		handler:  handler,
		viewer:   viewer,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "status_summary_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *StatusSummaryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status summary job started", "schedule", j.schedule)
	return nil
}

// Run computes one summary, logs it and hands it to the recorder.
func (j *StatusSummaryJob) Run(ctx context.Context) {
	query, err := queries.NewGetStatusSummaryQuery(j.viewer)
	if err != nil {
		j.logger.ErrorContext(ctx, "Status summary job failed", "error", err)
		return
	}

	summary, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Status summary job failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2+2*len(summary.ByStatus))
	attrs = append(attrs, "total", summary.Total)
	for _, c := range summary.ByStatus {
		attrs = append(attrs, c.Status.String(), c.Count)
	}
	j.logger.InfoContext(ctx, "Order status summary", attrs...)

	if j.recorder != nil {
		j.recorder.RecordSummary(summary)
	}
}

// Stop stops the scheduler and waits for a running summary to finish.
func (j *StatusSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status summary job stopped")
}
