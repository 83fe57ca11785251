package announcementmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating announcements and gallery_images tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS announcements (
					id BIGSERIAL PRIMARY KEY,
					title VARCHAR(100) NOT NULL CHECK (char_length(title) BETWEEN 1 AND 100),
					content TEXT NOT NULL CHECK (char_length(content) BETWEEN 1 AND 2000),
					created_by BIGINT NOT NULL REFERENCES users(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_announcements_created_by ON announcements(created_by);
				CREATE INDEX IF NOT EXISTS idx_announcements_created_at ON announcements(created_at);
			`); err != nil {
				return fmt.Errorf("failed to create announcements table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS gallery_images (
					id BIGSERIAL PRIMARY KEY,
					title VARCHAR(100) NOT NULL CHECK (char_length(title) BETWEEN 1 AND 100),
					description VARCHAR(500),
					image_url TEXT NOT NULL,
					uploaded_by BIGINT NOT NULL REFERENCES users(id),
					tags JSONB NOT NULL DEFAULT '[]'::jsonb CHECK (jsonb_typeof(tags) = 'array'),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_gallery_images_uploaded_by ON gallery_images(uploaded_by);
				CREATE INDEX IF NOT EXISTS idx_gallery_images_created_at ON gallery_images(created_at);
			`); err != nil {
				return fmt.Errorf("failed to create gallery_images table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping announcements and gallery_images tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS gallery_images;
				DROP TABLE IF EXISTS announcements;
			`); err != nil {
				return fmt.Errorf("failed to drop announcements and gallery_images tables: %w", err)
			}
			return nil
		})
	})
}
