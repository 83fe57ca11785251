package announcementdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Announcement is a guild-wide notice posted by an officer.
type Announcement struct {
	bun.BaseModel `bun:"table:announcements,alias:a"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Title         string    `bun:"title,notnull" json:"title"`
	Content       string    `bun:"content,notnull" json:"content"`
	CreatedBy     int64     `bun:"created_by,notnull" json:"created_by"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// GalleryImage is a screenshot shared with the guild. Tags are stored as a
// JSON array.
type GalleryImage struct {
	bun.BaseModel `bun:"table:gallery_images,alias:gi"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Title         string    `bun:"title,notnull" json:"title"`
	Description   *string   `bun:"description" json:"description"`
	ImageURL      string    `bun:"image_url,notnull" json:"image_url"`
	UploadedBy    int64     `bun:"uploaded_by,notnull" json:"uploaded_by"`
	Tags          []string  `bun:"tags,type:jsonb,notnull" json:"tags"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}
