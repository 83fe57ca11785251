package announcementdb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new announcement repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// CreateAnnouncement inserts an announcement and fills in the generated columns.
func (r *Impl) CreateAnnouncement(ctx context.Context, db bun.IDB, announcement *Announcement) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(announcement).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	return nil
}

// ListRecentAnnouncements returns up to limit announcements, newest first.
func (r *Impl) ListRecentAnnouncements(ctx context.Context, db bun.IDB, limit int) ([]Announcement, error) {
	db = r.resolveDB(db)
	var announcements []Announcement
	err := db.NewSelect().
		Model(&announcements).
		Order("a.created_at DESC", "a.id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent announcements: %w", err)
	}
	return announcements, nil
}

// CreateGalleryImage inserts a gallery image and fills in the generated columns.
func (r *Impl) CreateGalleryImage(ctx context.Context, db bun.IDB, image *GalleryImage) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(image).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

// ListGalleryImages returns one page of the gallery, newest first.
func (r *Impl) ListGalleryImages(ctx context.Context, db bun.IDB, limit, offset int) ([]GalleryImage, error) {
	db = r.resolveDB(db)
	var images []GalleryImage
	err := db.NewSelect().
		Model(&images).
		Order("gi.created_at DESC", "gi.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return images, nil
}
