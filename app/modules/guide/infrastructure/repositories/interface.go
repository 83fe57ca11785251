package guidedb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the persistence contract for guides.
type Repository interface {
	CreateGuide(ctx context.Context, db bun.IDB, guide *Guide) error

	// ListGuidesByStatus returns the guides in one status, newest first when
	// newestFirst is set and oldest first otherwise.
	ListGuidesByStatus(ctx context.Context, db bun.IDB, status Status, newestFirst bool) ([]Guide, error)

	GetGuideForUpdate(ctx context.Context, db bun.IDB, id int64) (*Guide, error)
	RecordReview(ctx context.Context, db bun.IDB, id int64, review Review) (*Guide, error)
}
