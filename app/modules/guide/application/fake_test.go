package guideservice

import (
	"context"

	guidedb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Guide Repo
// ------------------------

type FakeGuideRepo struct {
	trace []string

	CreateGuideFunc        func(ctx context.Context, db bun.IDB, guide *guidedb.Guide) error
	ListGuidesByStatusFunc func(ctx context.Context, db bun.IDB, status guidedb.Status, newestFirst bool) ([]guidedb.Guide, error)
	GetGuideForUpdateFunc  func(ctx context.Context, db bun.IDB, id int64) (*guidedb.Guide, error)
	RecordReviewFunc       func(ctx context.Context, db bun.IDB, id int64, review guidedb.Review) (*guidedb.Guide, error)
}

func NewFakeGuideRepo() *FakeGuideRepo {
	return &FakeGuideRepo{
		trace: []string{},
	}
}

func (f *FakeGuideRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeGuideRepo) CreateGuide(ctx context.Context, db bun.IDB, guide *guidedb.Guide) error {
	f.record("CreateGuide")
	if f.CreateGuideFunc != nil {
		return f.CreateGuideFunc(ctx, db, guide)
	}
	return nil
}

func (f *FakeGuideRepo) ListGuidesByStatus(ctx context.Context, db bun.IDB, status guidedb.Status, newestFirst bool) ([]guidedb.Guide, error) {
	f.record("ListGuidesByStatus")
	if f.ListGuidesByStatusFunc != nil {
		return f.ListGuidesByStatusFunc(ctx, db, status, newestFirst)
	}
	return nil, nil
}

func (f *FakeGuideRepo) GetGuideForUpdate(ctx context.Context, db bun.IDB, id int64) (*guidedb.Guide, error) {
	f.record("GetGuideForUpdate")
	if f.GetGuideForUpdateFunc != nil {
		return f.GetGuideForUpdateFunc(ctx, db, id)
	}
	return nil, guidedb.ErrNotFound
}

func (f *FakeGuideRepo) RecordReview(ctx context.Context, db bun.IDB, id int64, review guidedb.Review) (*guidedb.Guide, error) {
	f.record("RecordReview")
	if f.RecordReviewFunc != nil {
		return f.RecordReviewFunc(ctx, db, id, review)
	}
	return nil, guidedb.ErrNoRowsAffected
}

func (f *FakeGuideRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ guidedb.Repository = (*FakeGuideRepo)(nil)

// ------------------------
// Fake User Lookup
// ------------------------

type FakeUserLookup struct {
	users map[int64]*userdb.User
}

func NewFakeUserLookup(ids ...int64) *FakeUserLookup {
	f := &FakeUserLookup{users: map[int64]*userdb.User{}}
	for _, id := range ids {
		f.users[id] = &userdb.User{ID: id}
	}
	return f
}

func (f *FakeUserLookup) GetUserByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, userdb.ErrNotFound
}

var _ UserLookup = (*FakeUserLookup)(nil)
