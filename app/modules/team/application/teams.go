package teamservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	teamdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
)

const (
	MinTeamSize = 2
	MaxTeamSize = 20
)

type teamResult = results.OperationResult[*teamdb.Team, error]

// CreateTeam creates a team owned by an existing user.
func (s *TeamService) CreateTeam(ctx context.Context, req CreateTeamRequest) (*teamdb.Team, error) {
	return operation.Run(s.run, ctx, "CreateTeam", strconv.FormatInt(req.CreatedBy, 10), func(ctx context.Context, db bun.IDB) (teamResult, error) {
		return s.createTeamLogic(ctx, db, req)
	})
}

func (s *TeamService) createTeamLogic(ctx context.Context, db bun.IDB, req CreateTeamRequest) (teamResult, error) {
	maxMembers := teamdb.DefaultMaxMembers
	if req.MaxMembers != nil {
		maxMembers = *req.MaxMembers
	}

	if err := validate.First(
		validate.Length("name", req.Name, 1, 50),
		validate.OptionalLength("description", req.Description, 500),
		validate.ID("created_by", req.CreatedBy),
		validate.Range("max_members", maxMembers, MinTeamSize, MaxTeamSize),
	); err != nil {
		return results.FailureResult[*teamdb.Team, error](err), nil
	}

	if _, err := s.users.GetUserByID(ctx, db, req.CreatedBy); err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*teamdb.Team, error](domainerr.NotFound("Creator user not found")), nil
		}
		return teamResult{}, fmt.Errorf("failed to get creator: %w", err)
	}

	team := &teamdb.Team{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
		MaxMembers:  maxMembers,
	}
	if err := s.repo.CreateTeam(ctx, db, team); err != nil {
		return teamResult{}, err
	}

	return results.SuccessResult[*teamdb.Team, error](team), nil
}

// ListTeams returns every team with its current member count.
func (s *TeamService) ListTeams(ctx context.Context) ([]teamdb.TeamSummary, error) {
	return operation.Run(s.run, ctx, "ListTeams", "all", func(ctx context.Context, db bun.IDB) (results.OperationResult[[]teamdb.TeamSummary, error], error) {
		teams, err := s.repo.ListTeams(ctx, db)
		if err != nil {
			return results.OperationResult[[]teamdb.TeamSummary, error]{}, err
		}
		if teams == nil {
			teams = []teamdb.TeamSummary{}
		}
		return results.SuccessResult[[]teamdb.TeamSummary, error](teams), nil
	})
}

// GetTeamMembers lists a team's members. An unknown team has no members.
func (s *TeamService) GetTeamMembers(ctx context.Context, teamID int64) ([]teamdb.TeamMember, error) {
	return operation.Run(s.run, ctx, "GetTeamMembers", strconv.FormatInt(teamID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]teamdb.TeamMember, error], error) {
		if err := validate.ID("team_id", teamID); err != nil {
			return results.FailureResult[[]teamdb.TeamMember, error](err), nil
		}

		members, err := s.repo.GetTeamMembers(ctx, db, teamID)
		if err != nil {
			return results.OperationResult[[]teamdb.TeamMember, error]{}, err
		}
		if members == nil {
			members = []teamdb.TeamMember{}
		}
		return results.SuccessResult[[]teamdb.TeamMember, error](members), nil
	})
}
