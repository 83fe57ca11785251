package suggestionservice

import (
	"log/slog"

	suggestiondb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// SuggestionService implements the Service interface.
type SuggestionService struct {
	repo  suggestiondb.Repository
	users UserLookup
	run   *operation.Runner
}

// NewSuggestionService creates a new SuggestionService.
func NewSuggestionService(
	repo suggestiondb.Repository,
	users UserLookup,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *SuggestionService {
	return &SuggestionService{
		repo:  repo,
		users: users,
		run:   operation.NewRunner("SuggestionService", logger, metrics, tracer, db),
	}
}

var _ Service = (*SuggestionService)(nil)
