package recruitmentdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the persistence contract for recruitment applications.
type Repository interface {
	CreateApplication(ctx context.Context, db bun.IDB, application *Application) error
	ListPendingApplications(ctx context.Context, db bun.IDB) ([]Application, error)

	// GetApplicationForUpdate reads an application and locks its row until the
	// transaction ends.
	GetApplicationForUpdate(ctx context.Context, db bun.IDB, id int64) (*Application, error)

	RecordReview(ctx context.Context, db bun.IDB, id int64, review Review) (*Application, error)
}
