package suggestionqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

const (
	queueName   = "suggestion"
	serviceName = "river"
)

// QueueService schedules background work for the suggestion board.
type QueueService interface {
	// EnqueueCounterAudit schedules an immediate counter audit.
	EnqueueCounterAudit(ctx context.Context, reason string) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

var _ QueueService = (*Service)(nil)

// Service runs the suggestion jobs on River.
type Service struct {
	client  *river.Client[pgx.Tx]
	pool    *pgxpool.Pool
	logger  *slog.Logger
	metrics opmetrics.OperationMetrics
}

// NewService connects a pgx pool for River, registers the audit worker and
// schedules the periodic audit every auditInterval. A zero interval disables
// the periodic job; audits can still be enqueued.
func NewService(ctx context.Context, logger *slog.Logger, dsn string, metrics opmetrics.OperationMetrics, auditor Auditor, auditInterval time.Duration) (*Service, error) {
	ctxLogger := logger.With(
		attr.String("operation", "new_suggestion_queue_service"),
		attr.String("component", "river_queue"),
	)

	start := time.Now()
	metrics.RecordOperationAttempt(ctx, "initialize_service", serviceName)

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		metrics.RecordOperationFailure(ctx, "initialize_service", serviceName)
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		metrics.RecordOperationFailure(ctx, "initialize_service", serviceName)
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		ctxLogger.Error("Failed to ping database for River", attr.Error(err))
		metrics.RecordOperationFailure(ctx, "initialize_service", serviceName)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewCounterAuditWorker(ctxLogger, auditor))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 5},
			// One audit at a time; each one walks every suggestion.
			queueName: {MaxWorkers: 1},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs(auditInterval),
	})
	if err != nil {
		pool.Close()
		ctxLogger.Error("Failed to create River client", attr.Error(err))
		metrics.RecordOperationFailure(ctx, "initialize_service", serviceName)
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	metrics.RecordOperationSuccess(ctx, "initialize_service", serviceName)
	metrics.RecordOperationDuration(ctx, "initialize_service", serviceName, time.Since(start))

	ctxLogger.Info("Suggestion queue service initialized",
		attr.Duration("audit_interval", auditInterval),
	)
	return &Service{
		client:  riverClient,
		pool:    pool,
		logger:  ctxLogger,
		metrics: metrics,
	}, nil
}

func periodicJobs(interval time.Duration) []*river.PeriodicJob {
	if interval <= 0 {
		return nil
	}
	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(interval),
			func() (river.JobArgs, *river.InsertOpts) {
				return CounterAuditJob{Reason: "periodic"}, &river.InsertOpts{Queue: queueName}
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

// EnqueueCounterAudit schedules an audit to run as soon as a worker is free.
func (s *Service) EnqueueCounterAudit(ctx context.Context, reason string) error {
	s.metrics.RecordOperationAttempt(ctx, "enqueue_counter_audit", serviceName)

	res, err := s.client.Insert(ctx, CounterAuditJob{Reason: reason}, &river.InsertOpts{Queue: queueName})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to enqueue counter audit", attr.Error(err))
		s.metrics.RecordOperationFailure(ctx, "enqueue_counter_audit", serviceName)
		return fmt.Errorf("failed to enqueue counter audit: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "enqueue_counter_audit", serviceName)
	s.logger.InfoContext(ctx, "Counter audit enqueued",
		attr.ExtractCorrelationID(ctx),
		attr.Int64("job_id", res.Job.ID),
		attr.String("reason", reason),
	)
	return nil
}

// Start starts the River client.
func (s *Service) Start(ctx context.Context) error {
	s.metrics.RecordOperationAttempt(ctx, "start_service", serviceName)

	if err := s.client.Start(ctx); err != nil {
		s.logger.Error("Failed to start River client", attr.Error(err))
		s.metrics.RecordOperationFailure(ctx, "start_service", serviceName)
		return fmt.Errorf("failed to start River client: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "start_service", serviceName)
	s.logger.Info("Suggestion queue service started")
	return nil
}

// Stop waits for running jobs to finish and closes the pool.
func (s *Service) Stop(ctx context.Context) error {
	s.metrics.RecordOperationAttempt(ctx, "stop_service", serviceName)
	defer s.pool.Close()

	if err := s.client.Stop(ctx); err != nil {
		s.logger.Error("Failed to stop River client", attr.Error(err))
		s.metrics.RecordOperationFailure(ctx, "stop_service", serviceName)
		return fmt.Errorf("failed to stop River client: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "stop_service", serviceName)
	s.logger.Info("Suggestion queue service stopped")
	return nil
}
