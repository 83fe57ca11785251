package eventservice

import (
	"log/slog"

	eventdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/infrastructure/repositories"
	eventtime "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/time_utils"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// EventService implements the Service interface.
type EventService struct {
	repo  eventdb.Repository
	users UserLookup
	dates *eventtime.DateParser
	clock eventtime.Clock
	run   *operation.Runner
}

// NewEventService creates a new EventService. Relative event dates are
// resolved against clock.
func NewEventService(
	repo eventdb.Repository,
	users UserLookup,
	clock eventtime.Clock,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *EventService {
	if clock == nil {
		clock = eventtime.RealClock{}
	}
	return &EventService{
		repo:  repo,
		users: users,
		dates: eventtime.NewDateParser(nil),
		clock: clock,
		run:   operation.NewRunner("EventService", logger, metrics, tracer, db),
	}
}

var _ Service = (*EventService)(nil)
