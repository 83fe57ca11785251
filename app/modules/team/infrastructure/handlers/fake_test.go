package teamhandlers

import (
	"context"

	teamservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/application"
	teamdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/infrastructure/repositories"
)

type FakeTeamService struct {
	trace []string

	CreateTeamFunc     func(ctx context.Context, req teamservice.CreateTeamRequest) (*teamdb.Team, error)
	ListTeamsFunc      func(ctx context.Context) ([]teamdb.TeamSummary, error)
	GetTeamMembersFunc func(ctx context.Context, teamID int64) ([]teamdb.TeamMember, error)
	JoinTeamFunc       func(ctx context.Context, teamID, userID int64) (*teamdb.TeamMember, error)
}

func NewFakeTeamService() *FakeTeamService {
	return &FakeTeamService{trace: []string{}}
}

func (f *FakeTeamService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTeamService) CreateTeam(ctx context.Context, req teamservice.CreateTeamRequest) (*teamdb.Team, error) {
	f.record("CreateTeam")
	if f.CreateTeamFunc != nil {
		return f.CreateTeamFunc(ctx, req)
	}
	return &teamdb.Team{}, nil
}

func (f *FakeTeamService) ListTeams(ctx context.Context) ([]teamdb.TeamSummary, error) {
	f.record("ListTeams")
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx)
	}
	return []teamdb.TeamSummary{}, nil
}

func (f *FakeTeamService) GetTeamMembers(ctx context.Context, teamID int64) ([]teamdb.TeamMember, error) {
	f.record("GetTeamMembers")
	if f.GetTeamMembersFunc != nil {
		return f.GetTeamMembersFunc(ctx, teamID)
	}
	return []teamdb.TeamMember{}, nil
}

func (f *FakeTeamService) JoinTeam(ctx context.Context, teamID, userID int64) (*teamdb.TeamMember, error) {
	f.record("JoinTeam")
	if f.JoinTeamFunc != nil {
		return f.JoinTeamFunc(ctx, teamID, userID)
	}
	return &teamdb.TeamMember{ID: 1, TeamID: teamID, UserID: userID}, nil
}

func (f *FakeTeamService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ teamservice.Service = (*FakeTeamService)(nil)

type recordingBus struct {
	topics []string
	err    error
}

func (b *recordingBus) Publish(_ context.Context, topic string, _ any) error {
	if b.err != nil {
		return b.err
	}
	b.topics = append(b.topics, topic)
	return nil
}

func (b *recordingBus) Close() error { return nil }
