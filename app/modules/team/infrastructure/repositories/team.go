package teamdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new team repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// CreateTeam inserts a team and fills in the generated columns.
func (r *Impl) CreateTeam(ctx context.Context, db bun.IDB, team *Team) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(team).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

// ListTeams returns every team, oldest first, with its member count.
func (r *Impl) ListTeams(ctx context.Context, db bun.IDB) ([]TeamSummary, error) {
	db = r.resolveDB(db)
	var teams []TeamSummary
	err := db.NewSelect().
		Model(&teams).
		ColumnExpr("t.*").
		ColumnExpr("(SELECT COUNT(*) FROM team_members AS tm WHERE tm.team_id = t.id) AS member_count").
		Order("t.created_at ASC", "t.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// GetTeamForUpdate reads a team with SELECT ... FOR UPDATE.
func (r *Impl) GetTeamForUpdate(ctx context.Context, db bun.IDB, id int64) (*Team, error) {
	db = r.resolveDB(db)
	team := new(Team)
	err := db.NewSelect().
		Model(team).
		Where("t.id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock team: %w", err)
	}
	return team, nil
}

// IsMember reports whether a user belongs to a team.
func (r *Impl) IsMember(ctx context.Context, db bun.IDB, teamID, userID int64) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*TeamMember)(nil)).
		Where("tm.team_id = ?", teamID).
		Where("tm.user_id = ?", userID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check team membership: %w", err)
	}
	return exists, nil
}

// CountMembers returns the number of members of a team.
func (r *Impl) CountMembers(ctx context.Context, db bun.IDB, teamID int64) (int, error) {
	db = r.resolveDB(db)
	count, err := db.NewSelect().
		Model((*TeamMember)(nil)).
		Where("tm.team_id = ?", teamID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count team members: %w", err)
	}
	return count, nil
}

// AddMember inserts a membership row.
func (r *Impl) AddMember(ctx context.Context, db bun.IDB, member *TeamMember) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(member).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add team member: %w", err)
	}
	return nil
}

// GetTeamMembers returns a team's members in join order. Memberships whose user
// no longer exists are skipped.
func (r *Impl) GetTeamMembers(ctx context.Context, db bun.IDB, teamID int64) ([]TeamMember, error) {
	db = r.resolveDB(db)
	var members []TeamMember
	err := db.NewSelect().
		Model(&members).
		Join("JOIN users AS u ON u.id = tm.user_id").
		Where("tm.team_id = ?", teamID).
		Order("tm.joined_at ASC", "tm.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	return members, nil
}
