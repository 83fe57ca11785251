package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/appdotbuilder/dragon-nest-guild-portal/app/database"
	"github.com/appdotbuilder/dragon-nest-guild-portal/app/server"
	"github.com/appdotbuilder/dragon-nest-guild-portal/config"
	"github.com/appdotbuilder/dragon-nest-guild-portal/integration_tests/containers"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
)

// TestEnvironment holds a migrated Postgres container and the application
// assembled on top of it.
type TestEnvironment struct {
	Ctx         context.Context
	cancel      context.CancelFunc
	PgContainer *postgres.PostgresContainer
	DSN         string
	DB          *bun.DB
	Config      *config.Config
	App         *server.App
}

// NewTestEnvironment starts Postgres, runs every migration and initializes the
// application with a silent logger and no-op telemetry. bus may be nil.
func NewTestEnvironment(bus eventbus.EventBus) (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(context.Background())
	env := &TestEnvironment{Ctx: ctx, cancel: cancel}

	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}
	env.PgContainer = pgContainer
	env.DSN = dsn

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		env.Terminate()
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}
	env.DB = database.Wrap(sqlDB)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := database.Migrate(ctx, env.DB, logger); err != nil {
		env.Terminate()
		return nil, err
	}
	if err := database.MigrateRiver(ctx, dsn); err != nil {
		env.Terminate()
		return nil, err
	}

	if bus == nil {
		bus = eventbus.Nop{}
	}
	env.Config = &config.Config{
		Postgres: config.PostgresConfig{DSN: dsn},
		HTTP: config.HTTPConfig{
			Address:   "127.0.0.1:0",
			RateLimit: 10000,
			RateBurst: 10000,
		},
	}
	app, err := server.Initialize(ctx, env.Config, logger, env.DB, bus, opmetrics.NewNoop(), noop.NewTracerProvider().Tracer("test"), nil)
	if err != nil {
		env.Terminate()
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	env.App = app

	return env, nil
}

// Reset empties every table between tests.
func (env *TestEnvironment) Reset() error {
	return CleanupDatabase(env.Ctx, env.DB)
}

// Terminate closes the connection pool and stops the container.
func (env *TestEnvironment) Terminate() {
	if env.DB != nil {
		_ = env.DB.Close()
	}
	if env.PgContainer != nil {
		_ = env.PgContainer.Terminate(context.Background())
	}
	env.cancel()
}
