package teamservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/appdotbuilder/dragon-nest-guild-portal/app/admission"
	teamdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
)

type memberResult = results.OperationResult[*teamdb.TeamMember, error]

// JoinTeam admits userID into teamID. The team row stays locked until the
// membership is written, so concurrent joins cannot overfill it.
func (s *TeamService) JoinTeam(ctx context.Context, teamID, userID int64) (*teamdb.TeamMember, error) {
	identifier := fmt.Sprintf("team:%d user:%d", teamID, userID)
	return operation.Run(s.run, ctx, "JoinTeam", identifier, func(ctx context.Context, db bun.IDB) (memberResult, error) {
		if err := validate.First(
			validate.ID("team_id", teamID),
			validate.ID("user_id", userID),
		); err != nil {
			return results.FailureResult[*teamdb.TeamMember, error](err), nil
		}
		return admission.Admit(ctx, db, s.joinGate(teamID, userID))
	})
}

func (s *TeamService) joinGate(teamID, userID int64) admission.Gate[*teamdb.TeamMember] {
	return admission.Gate[*teamdb.TeamMember]{
		LockParent: func(ctx context.Context, db bun.IDB) (int, bool, error) {
			team, err := s.repo.GetTeamForUpdate(ctx, db, teamID)
			if errors.Is(err, teamdb.ErrNotFound) {
				return 0, false, nil
			}
			if err != nil {
				return 0, false, err
			}
			return team.MaxMembers, true, nil
		},
		Preconditions: []admission.Check{
			func(ctx context.Context, db bun.IDB) (error, error) {
				_, err := s.users.GetUserByID(ctx, db, userID)
				if errors.Is(err, userdb.ErrNotFound) {
					return domainerr.NotFound("User not found"), nil
				}
				return nil, err
			},
		},
		IsMember: func(ctx context.Context, db bun.IDB) (bool, error) {
			return s.repo.IsMember(ctx, db, teamID, userID)
		},
		CountMembers: func(ctx context.Context, db bun.IDB) (int, error) {
			return s.repo.CountMembers(ctx, db, teamID)
		},
		Insert: func(ctx context.Context, db bun.IDB) (*teamdb.TeamMember, error) {
			member := &teamdb.TeamMember{TeamID: teamID, UserID: userID}
			if err := s.repo.AddMember(ctx, db, member); err != nil {
				return nil, err
			}
			return member, nil
		},
		ParentMissing: domainerr.NotFound("Team not found"),
		AlreadyMember: domainerr.Conflict("User is already a member of this team"),
		Full: func(current, capacity int) error {
			return domainerr.Conflict("Team is full")
		},
	}
}
