package teamdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the persistence contract for teams and memberships.
type Repository interface {
	CreateTeam(ctx context.Context, db bun.IDB, team *Team) error
	ListTeams(ctx context.Context, db bun.IDB) ([]TeamSummary, error)

	// GetTeamForUpdate reads a team and locks its row until the transaction ends.
	GetTeamForUpdate(ctx context.Context, db bun.IDB, id int64) (*Team, error)

	IsMember(ctx context.Context, db bun.IDB, teamID, userID int64) (bool, error)
	CountMembers(ctx context.Context, db bun.IDB, teamID int64) (int, error)
	AddMember(ctx context.Context, db bun.IDB, member *TeamMember) error
	GetTeamMembers(ctx context.Context, db bun.IDB, teamID int64) ([]TeamMember, error)
}
