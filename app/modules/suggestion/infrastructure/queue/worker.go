package suggestionqueue

import (
	"context"
	"log/slog"
	"time"

	suggestionservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/application"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/riverqueue/river"
)

// Auditor is the part of the suggestion service the worker drives.
type Auditor interface {
	AuditVoteCounters(ctx context.Context) (suggestionservice.AuditReport, error)
}

// CounterAuditWorker runs a vote counter audit.
type CounterAuditWorker struct {
	river.WorkerDefaults[CounterAuditJob]
	logger  *slog.Logger
	auditor Auditor
}

// NewCounterAuditWorker creates a new CounterAuditWorker.
func NewCounterAuditWorker(logger *slog.Logger, auditor Auditor) *CounterAuditWorker {
	return &CounterAuditWorker{
		logger:  logger,
		auditor: auditor,
	}
}

// Timeout bounds a single audit run.
func (w *CounterAuditWorker) Timeout(*river.Job[CounterAuditJob]) time.Duration {
	return 5 * time.Minute
}

// Work executes the audit. Errors are returned so River retries the job.
func (w *CounterAuditWorker) Work(ctx context.Context, job *river.Job[CounterAuditJob]) error {
	w.logger.InfoContext(ctx, "Running vote counter audit", attr.String("reason", job.Args.Reason))

	report, err := w.auditor.AuditVoteCounters(ctx)
	if err != nil {
		w.logger.ErrorContext(ctx, "Vote counter audit failed", attr.Error(err))
		return err
	}

	w.logger.InfoContext(ctx, "Vote counter audit finished",
		attr.Int("checked", report.Checked),
		attr.Int("repaired", report.Repaired),
	)
	return nil
}
