package database

import (
	"context"
	"fmt"
	"log/slog"

	announcementmigrations "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement/infrastructure/repositories/migrations"
	eventmigrations "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/infrastructure/repositories/migrations"
	guidemigrations "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide/infrastructure/repositories/migrations"
	recruitmentmigrations "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment/infrastructure/repositories/migrations"
	suggestionmigrations "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/repositories/migrations"
	teammigrations "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/infrastructure/repositories/migrations"
	treasurymigrations "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury/infrastructure/repositories/migrations"
	usermigrations "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories/migrations"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// ModuleMigrations names one module's migration set.
type ModuleMigrations struct {
	Name       string
	Migrations *migrate.Migrations
}

// Modules lists every migration set. Order matters because of foreign keys:
// everything references users.
func Modules() []ModuleMigrations {
	return []ModuleMigrations{
		{"user", usermigrations.Migrations},
		{"suggestion", suggestionmigrations.Migrations},
		{"team", teammigrations.Migrations},
		{"event", eventmigrations.Migrations},
		{"recruitment", recruitmentmigrations.Migrations},
		{"guide", guidemigrations.Migrations},
		{"treasury", treasurymigrations.Migrations},
		{"announcement", announcementmigrations.Migrations},
	}
}

// Migrators builds one bun migrator per module, in Modules order. They share
// bun's migration tables.
func Migrators(db *bun.DB) []*migrate.Migrator {
	mods := Modules()
	out := make([]*migrate.Migrator, len(mods))
	for i, m := range mods {
		out[i] = migrate.NewMigrator(db, m.Migrations)
	}
	return out
}

// Migrate creates the migration tables if needed and applies every pending
// module migration.
func Migrate(ctx context.Context, db *bun.DB, logger *slog.Logger) error {
	migrators := Migrators(db)
	if err := migrators[0].Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize migration tables: %w", err)
	}

	for i, mod := range Modules() {
		group, err := migrators[i].Migrate(ctx)
		if err != nil {
			return fmt.Errorf("failed to run %s migrations: %w", mod.Name, err)
		}
		if group.IsZero() {
			logger.InfoContext(ctx, "No new migrations", attr.String("module", mod.Name))
			continue
		}
		logger.InfoContext(ctx, "Applied migrations",
			attr.String("module", mod.Name),
			attr.Int64("group", group.ID),
		)
	}
	return nil
}

// MigrateRiver applies River's own schema migrations over a short-lived pgx pool.
func MigrateRiver(ctx context.Context, dsn string) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("failed to create pgx pool for River migrations: %w", err)
	}
	defer pool.Close()

	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return fmt.Errorf("failed to create River migrator: %w", err)
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{}); err != nil {
		return fmt.Errorf("failed to run River migrations: %w", err)
	}
	return nil
}
