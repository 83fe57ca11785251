package teamservice

import (
	"context"

	teamdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Service defines the team module's application operations.
type Service interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*teamdb.Team, error)
	ListTeams(ctx context.Context) ([]teamdb.TeamSummary, error)
	GetTeamMembers(ctx context.Context, teamID int64) ([]teamdb.TeamMember, error)

	// JoinTeam admits a user into a team if it has a free slot.
	JoinTeam(ctx context.Context, teamID, userID int64) (*teamdb.TeamMember, error)
}

// UserLookup is the part of the user repository this module reads.
type UserLookup interface {
	GetUserByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error)
}

// CreateTeamRequest creates a team. MaxMembers defaults to 5 when omitted.
type CreateTeamRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedBy   int64   `json:"created_by"`
	MaxMembers  *int    `json:"max_members,omitempty"`
}

// JoinTeamRequest is the body of a join.
type JoinTeamRequest struct {
	UserID int64 `json:"user_id"`
}
