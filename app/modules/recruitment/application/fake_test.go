package recruitmentservice

import (
	"context"

	recruitmentdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Recruitment Repo
// ------------------------

type FakeRecruitmentRepo struct {
	trace []string

	CreateApplicationFunc       func(ctx context.Context, db bun.IDB, application *recruitmentdb.Application) error
	ListPendingApplicationsFunc func(ctx context.Context, db bun.IDB) ([]recruitmentdb.Application, error)
	GetApplicationForUpdateFunc func(ctx context.Context, db bun.IDB, id int64) (*recruitmentdb.Application, error)
	RecordReviewFunc            func(ctx context.Context, db bun.IDB, id int64, review recruitmentdb.Review) (*recruitmentdb.Application, error)
}

func NewFakeRecruitmentRepo() *FakeRecruitmentRepo {
	return &FakeRecruitmentRepo{
		trace: []string{},
	}
}

func (f *FakeRecruitmentRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRecruitmentRepo) CreateApplication(ctx context.Context, db bun.IDB, application *recruitmentdb.Application) error {
	f.record("CreateApplication")
	if f.CreateApplicationFunc != nil {
		return f.CreateApplicationFunc(ctx, db, application)
	}
	return nil
}

func (f *FakeRecruitmentRepo) ListPendingApplications(ctx context.Context, db bun.IDB) ([]recruitmentdb.Application, error) {
	f.record("ListPendingApplications")
	if f.ListPendingApplicationsFunc != nil {
		return f.ListPendingApplicationsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeRecruitmentRepo) GetApplicationForUpdate(ctx context.Context, db bun.IDB, id int64) (*recruitmentdb.Application, error) {
	f.record("GetApplicationForUpdate")
	if f.GetApplicationForUpdateFunc != nil {
		return f.GetApplicationForUpdateFunc(ctx, db, id)
	}
	return nil, recruitmentdb.ErrNotFound
}

func (f *FakeRecruitmentRepo) RecordReview(ctx context.Context, db bun.IDB, id int64, review recruitmentdb.Review) (*recruitmentdb.Application, error) {
	f.record("RecordReview")
	if f.RecordReviewFunc != nil {
		return f.RecordReviewFunc(ctx, db, id, review)
	}
	return nil, recruitmentdb.ErrNoRowsAffected
}

func (f *FakeRecruitmentRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ recruitmentdb.Repository = (*FakeRecruitmentRepo)(nil)

// ------------------------
// Fake User Store
// ------------------------

type FakeUserStore struct {
	users   map[int64]*userdb.User
	updates []int64

	UpdateUserFunc func(ctx context.Context, db bun.IDB, id int64, updates *userdb.UserUpdateFields) (*userdb.User, error)
}

func NewFakeUserStore(users ...userdb.User) *FakeUserStore {
	f := &FakeUserStore{users: map[int64]*userdb.User{}}
	for i := range users {
		u := users[i]
		f.users[u.ID] = &u
	}
	return f
}

func (f *FakeUserStore) GetUserByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserStore) UpdateUser(ctx context.Context, db bun.IDB, id int64, updates *userdb.UserUpdateFields) (*userdb.User, error) {
	f.updates = append(f.updates, id)
	if f.UpdateUserFunc != nil {
		return f.UpdateUserFunc(ctx, db, id, updates)
	}
	u, ok := f.users[id]
	if !ok {
		return nil, userdb.ErrNoRowsAffected
	}
	if updates.GuildRole != nil {
		u.GuildRole = *updates.GuildRole
	}
	if updates.TreasuryStatus != nil {
		u.TreasuryStatus = *updates.TreasuryStatus
	}
	cp := *u
	return &cp, nil
}

func (f *FakeUserStore) role(id int64) userdb.GuildRole {
	return f.users[id].GuildRole
}

var _ UserStore = (*FakeUserStore)(nil)
