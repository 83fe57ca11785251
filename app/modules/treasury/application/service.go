package treasuryservice

import (
	"log/slog"

	eventtime "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/time_utils"
	treasurydb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// TreasuryService implements the Service interface.
type TreasuryService struct {
	repo  treasurydb.Repository
	users UserLookup
	clock eventtime.Clock
	run   *operation.Runner
}

// NewTreasuryService creates a new TreasuryService. clock decides what "today"
// is for the current-fee lookup.
func NewTreasuryService(
	repo treasurydb.Repository,
	users UserLookup,
	clock eventtime.Clock,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *TreasuryService {
	if clock == nil {
		clock = eventtime.RealClock{}
	}
	return &TreasuryService{
		repo:  repo,
		users: users,
		clock: clock,
		run:   operation.NewRunner("TreasuryService", logger, metrics, tracer, db),
	}
}

var _ Service = (*TreasuryService)(nil)
