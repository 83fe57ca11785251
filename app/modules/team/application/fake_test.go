package teamservice

import (
	"context"

	teamdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Team Repo
// ------------------------

type FakeTeamRepo struct {
	trace []string

	CreateTeamFunc       func(ctx context.Context, db bun.IDB, team *teamdb.Team) error
	ListTeamsFunc        func(ctx context.Context, db bun.IDB) ([]teamdb.TeamSummary, error)
	GetTeamForUpdateFunc func(ctx context.Context, db bun.IDB, id int64) (*teamdb.Team, error)
	IsMemberFunc         func(ctx context.Context, db bun.IDB, teamID, userID int64) (bool, error)
	CountMembersFunc     func(ctx context.Context, db bun.IDB, teamID int64) (int, error)
	AddMemberFunc        func(ctx context.Context, db bun.IDB, member *teamdb.TeamMember) error
	GetTeamMembersFunc   func(ctx context.Context, db bun.IDB, teamID int64) ([]teamdb.TeamMember, error)
}

func NewFakeTeamRepo() *FakeTeamRepo {
	return &FakeTeamRepo{
		trace: []string{},
	}
}

func (f *FakeTeamRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTeamRepo) CreateTeam(ctx context.Context, db bun.IDB, team *teamdb.Team) error {
	f.record("CreateTeam")
	if f.CreateTeamFunc != nil {
		return f.CreateTeamFunc(ctx, db, team)
	}
	return nil
}

func (f *FakeTeamRepo) ListTeams(ctx context.Context, db bun.IDB) ([]teamdb.TeamSummary, error) {
	f.record("ListTeams")
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeTeamRepo) GetTeamForUpdate(ctx context.Context, db bun.IDB, id int64) (*teamdb.Team, error) {
	f.record("GetTeamForUpdate")
	if f.GetTeamForUpdateFunc != nil {
		return f.GetTeamForUpdateFunc(ctx, db, id)
	}
	return nil, teamdb.ErrNotFound
}

func (f *FakeTeamRepo) IsMember(ctx context.Context, db bun.IDB, teamID, userID int64) (bool, error) {
	f.record("IsMember")
	if f.IsMemberFunc != nil {
		return f.IsMemberFunc(ctx, db, teamID, userID)
	}
	return false, nil
}

func (f *FakeTeamRepo) CountMembers(ctx context.Context, db bun.IDB, teamID int64) (int, error) {
	f.record("CountMembers")
	if f.CountMembersFunc != nil {
		return f.CountMembersFunc(ctx, db, teamID)
	}
	return 0, nil
}

func (f *FakeTeamRepo) AddMember(ctx context.Context, db bun.IDB, member *teamdb.TeamMember) error {
	f.record("AddMember")
	if f.AddMemberFunc != nil {
		return f.AddMemberFunc(ctx, db, member)
	}
	return nil
}

func (f *FakeTeamRepo) GetTeamMembers(ctx context.Context, db bun.IDB, teamID int64) ([]teamdb.TeamMember, error) {
	f.record("GetTeamMembers")
	if f.GetTeamMembersFunc != nil {
		return f.GetTeamMembersFunc(ctx, db, teamID)
	}
	return nil, nil
}

func (f *FakeTeamRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ teamdb.Repository = (*FakeTeamRepo)(nil)

// ------------------------
// Fake User Lookup
// ------------------------

type FakeUserLookup struct {
	users map[int64]*userdb.User
	err   error
}

func NewFakeUserLookup(ids ...int64) *FakeUserLookup {
	f := &FakeUserLookup{users: map[int64]*userdb.User{}}
	for _, id := range ids {
		f.users[id] = &userdb.User{ID: id}
	}
	return f
}

func (f *FakeUserLookup) GetUserByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, userdb.ErrNotFound
}

var _ UserLookup = (*FakeUserLookup)(nil)

// ------------------------
// In-memory roster
// ------------------------

// memoryRoster backs a FakeTeamRepo with maps for multi-step join scenarios.
type memoryRoster struct {
	teams   map[int64]*teamdb.Team
	members []teamdb.TeamMember
}

func newMemoryRoster(teams ...teamdb.Team) *memoryRoster {
	m := &memoryRoster{teams: map[int64]*teamdb.Team{}}
	for i := range teams {
		t := teams[i]
		m.teams[t.ID] = &t
	}
	return m
}

func (m *memoryRoster) wire(f *FakeTeamRepo) {
	f.GetTeamForUpdateFunc = func(ctx context.Context, db bun.IDB, id int64) (*teamdb.Team, error) {
		t, ok := m.teams[id]
		if !ok {
			return nil, teamdb.ErrNotFound
		}
		cp := *t
		return &cp, nil
	}
	f.IsMemberFunc = func(ctx context.Context, db bun.IDB, teamID, userID int64) (bool, error) {
		for _, mb := range m.members {
			if mb.TeamID == teamID && mb.UserID == userID {
				return true, nil
			}
		}
		return false, nil
	}
	f.CountMembersFunc = func(ctx context.Context, db bun.IDB, teamID int64) (int, error) {
		return len(m.membersOf(teamID)), nil
	}
	f.AddMemberFunc = func(ctx context.Context, db bun.IDB, member *teamdb.TeamMember) error {
		member.ID = int64(len(m.members) + 1)
		m.members = append(m.members, *member)
		return nil
	}
	f.GetTeamMembersFunc = func(ctx context.Context, db bun.IDB, teamID int64) ([]teamdb.TeamMember, error) {
		return m.membersOf(teamID), nil
	}
}

func (m *memoryRoster) membersOf(teamID int64) []teamdb.TeamMember {
	var out []teamdb.TeamMember
	for _, mb := range m.members {
		if mb.TeamID == teamID {
			out = append(out, mb)
		}
	}
	return out
}
