// Package server assembles the modules behind one HTTP listener and runs it
// until its context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement"
	"github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event"
	"github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide"
	"github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment"
	"github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion"
	"github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team"
	"github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury"
	"github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user"
	"github.com/appdotbuilder/dragon-nest-guild-portal/config"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const shutdownTimeout = 15 * time.Second

// App holds the initialized modules and the HTTP listeners.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Router chi.Router

	UserModule         *user.Module
	SuggestionModule   *suggestion.Module
	TeamModule         *team.Module
	EventModule        *event.Module
	RecruitmentModule  *recruitment.Module
	GuideModule        *guide.Module
	TreasuryModule     *treasury.Module
	AnnouncementModule *announcement.Module

	metricsHandler http.Handler
}

// Initialize builds every module on one router. metricsHandler, when not nil,
// is served on the metrics address or, without one, at /metrics.
func Initialize(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *bun.DB,
	bus eventbus.EventBus,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	metricsHandler http.Handler,
) (*App, error) {
	router := NewRouter(cfg.HTTP, logger)
	router.Get("/healthz", HealthHandler(db, logger))

	userModule, err := user.NewUserModule(ctx, logger, metrics, tracer, db, router)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user module: %w", err)
	}

	suggestionModule, err := suggestion.NewSuggestionModule(ctx, logger, metrics, tracer, db, router, userModule.Repository, bus)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize suggestion module: %w", err)
	}

	teamModule, err := team.NewTeamModule(ctx, logger, metrics, tracer, db, router, userModule.Repository, bus)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize team module: %w", err)
	}

	eventModule, err := event.NewEventModule(ctx, logger, metrics, tracer, db, router, userModule.Repository, bus)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event module: %w", err)
	}

	recruitmentModule, err := recruitment.NewRecruitmentModule(ctx, logger, metrics, tracer, db, router, userModule.Repository, bus)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize recruitment module: %w", err)
	}

	guideModule, err := guide.NewGuideModule(ctx, logger, metrics, tracer, db, router, userModule.Repository, bus)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize guide module: %w", err)
	}

	treasuryModule, err := treasury.NewTreasuryModule(ctx, logger, metrics, tracer, db, router, userModule.Repository)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize treasury module: %w", err)
	}

	announcementModule, err := announcement.NewAnnouncementModule(ctx, logger, metrics, tracer, db, router, userModule.Repository, bus)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize announcement module: %w", err)
	}

	if metricsHandler != nil && cfg.Observability.MetricsAddress == "" {
		router.Handle("/metrics", metricsHandler)
	}

	return &App{
		Config:             cfg,
		Logger:             logger,
		Router:             router,
		UserModule:         userModule,
		SuggestionModule:   suggestionModule,
		TeamModule:         teamModule,
		EventModule:        eventModule,
		RecruitmentModule:  recruitmentModule,
		GuideModule:        guideModule,
		TreasuryModule:     treasuryModule,
		AnnouncementModule: announcementModule,
		metricsHandler:     metricsHandler,
	}, nil
}

// StartQueue starts the River vote-counter audit when the queue is enabled.
func (a *App) StartQueue(ctx context.Context) error {
	if !a.Config.Queue.Enabled {
		a.Logger.InfoContext(ctx, "Queue disabled; vote counter audit will not run")
		return nil
	}
	return a.SuggestionModule.StartQueue(ctx, a.Config.Postgres.DSN, a.Config.Queue.AuditInterval)
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	servers := []*http.Server{{
		Addr:              a.Config.HTTP.Address,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}}
	if a.metricsHandler != nil && a.Config.Observability.MetricsAddress != "" {
		servers = append(servers, &http.Server{
			Addr:              a.Config.Observability.MetricsAddress,
			Handler:           a.metricsHandler,
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func(srv *http.Server) {
			a.Logger.InfoContext(ctx, "Starting HTTP listener", attr.String("address", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("listener %s: %w", srv.Addr, err)
			}
		}(srv)
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown signal received")
	case runErr = <-errCh:
		a.Logger.Error("HTTP listener failed", attr.Error(runErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Error("HTTP listener forced to shut down", attr.String("address", srv.Addr), attr.Error(err))
		}
	}
	return runErr
}

// Close releases module resources.
func (a *App) Close(ctx context.Context) error {
	return a.SuggestionModule.Close(ctx)
}
