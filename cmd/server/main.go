package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/appdotbuilder/dragon-nest-guild-portal/app/database"
	"github.com/appdotbuilder/dragon-nest-guild-portal/app/server"
	"github.com/appdotbuilder/dragon-nest-guild-portal/config"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "guild portal: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	logger.InfoContext(ctx, "Starting guild portal",
		attr.String("environment", cfg.Observability.Environment),
		attr.String("http_address", cfg.HTTP.Address),
	)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	db, err := database.Open(connectCtx, cfg.Postgres.DSN)
	cancel()
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Postgres.MigrateOnStart {
		if err := database.Migrate(ctx, db, logger); err != nil {
			return err
		}
		if cfg.Queue.Enabled {
			if err := database.MigrateRiver(ctx, cfg.Postgres.DSN); err != nil {
				return err
			}
		}
	}

	bus, err := newEventBus(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := bus.Close(); err != nil {
			logger.Error("Failed to close event bus", attr.Error(err))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := opmetrics.NewPrometheus(registry, "guild_portal")
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	app, err := server.Initialize(ctx, cfg, logger, db, bus, metrics, otel.Tracer("guild-portal"), metricsHandler)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Close(closeCtx); err != nil {
			logger.Error("Failed to stop job queue", attr.Error(err))
		}
	}()

	if err := app.StartQueue(ctx); err != nil {
		return fmt.Errorf("failed to start job queue: %w", err)
	}

	return app.Run(ctx)
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Observability.LogLevel))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func newEventBus(cfg *config.Config, logger *slog.Logger) (eventbus.EventBus, error) {
	if cfg.NATS.URL == "" {
		logger.Info("NATS_URL not set; publishing domain events in memory")
		bus, _ := eventbus.NewInMemory(logger)
		return bus, nil
	}
	return eventbus.NewNATS(cfg.NATS.URL, logger)
}
