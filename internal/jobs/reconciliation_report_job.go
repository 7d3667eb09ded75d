package jobs

import (
	"context"
	"log/slog"

	"effdel/internal/core/domain/model/stock"
	"effdel/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ReconciliationReportJob periodically surfaces stock discrepancies.
// The stock arrival flow commits its steps independently, so Unmatched
// requests (and arrivals whose later steps failed) accumulate silently in
// the store; this job makes them visible to operators.
type ReconciliationReportJob struct {
	requests ports.RequestRepository
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReconciliationReportJob creates a job reporting Unmatched product
// requests once a minute.
func NewReconciliationReportJob(requests ports.RequestRepository, logger *slog.Logger) *ReconciliationReportJob {
	return &ReconciliationReportJob{
		requests: requests,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reconciliation_report_job"),
	}
}

// Start begins the reconciliation report job to run every minute.
func (j *ReconciliationReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		unmatched, err := j.requests.GetAllByStatus(ctx, stock.RequestUnmatched)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reconciliation report job failed", "error", err)
			return
		}

		if len(unmatched) == 0 {
			return
		}

		j.logger.WarnContext(ctx, "Unmatched product requests detected", "count", len(unmatched))
		for _, request := range unmatched {
			j.logger.WarnContext(ctx, "Stock discrepancy",
				"request_id", request.RequestID(),
				"product_id", request.ProductID(),
				"requested_units", request.RequestedUnits(),
				"fulfilled_units", request.FulfilledUnits(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation report job started (running every minute)")
	return nil
}

// Stop stops the reconciliation report job.
func (j *ReconciliationReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation report job stopped")
}
