package recruitmentservice

import (
	"log/slog"

	recruitmentdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// RecruitmentService implements the Service interface.
type RecruitmentService struct {
	repo  recruitmentdb.Repository
	users UserStore
	run   *operation.Runner
}

// NewRecruitmentService creates a new RecruitmentService.
func NewRecruitmentService(
	repo recruitmentdb.Repository,
	users UserStore,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *RecruitmentService {
	return &RecruitmentService{
		repo:  repo,
		users: users,
		run:   operation.NewRunner("RecruitmentService", logger, metrics, tracer, db),
	}
}

var _ Service = (*RecruitmentService)(nil)
