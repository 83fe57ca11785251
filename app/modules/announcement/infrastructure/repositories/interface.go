package announcementdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the persistence contract for announcements and the
// screenshot gallery.
type Repository interface {
	CreateAnnouncement(ctx context.Context, db bun.IDB, announcement *Announcement) error
	ListRecentAnnouncements(ctx context.Context, db bun.IDB, limit int) ([]Announcement, error)

	CreateGalleryImage(ctx context.Context, db bun.IDB, image *GalleryImage) error
	ListGalleryImages(ctx context.Context, db bun.IDB, limit, offset int) ([]GalleryImage, error)
}
