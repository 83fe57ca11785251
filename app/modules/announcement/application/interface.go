package announcementservice

import (
	"context"

	announcementdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Service defines the announcement board and screenshot gallery operations.
type Service interface {
	CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (*announcementdb.Announcement, error)
	GetRecentAnnouncements(ctx context.Context) ([]announcementdb.Announcement, error)

	CreateGalleryImage(ctx context.Context, req CreateGalleryImageRequest) (*announcementdb.GalleryImage, error)
	ListGalleryImages(ctx context.Context, page Page) ([]announcementdb.GalleryImage, error)
}

// UserLookup is the part of the user repository this module reads.
type UserLookup interface {
	GetUserByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error)
}

// CreateAnnouncementRequest posts a new announcement.
type CreateAnnouncementRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedBy int64  `json:"created_by"`
}

// CreateGalleryImageRequest shares a screenshot. ImageURL is stored as given;
// the image itself is hosted elsewhere.
type CreateGalleryImageRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	ImageURL    string   `json:"image_url"`
	UploadedBy  int64    `json:"uploaded_by"`
	Tags        []string `json:"tags"`
}

// Page selects a 1-based page of Limit items.
type Page struct {
	Page  int
	Limit int
}
