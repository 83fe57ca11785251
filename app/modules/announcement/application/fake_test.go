package announcementservice

import (
	"context"

	announcementdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Announcement Repo
// ------------------------

type FakeAnnouncementRepo struct {
	trace []string

	CreateAnnouncementFunc      func(ctx context.Context, db bun.IDB, announcement *announcementdb.Announcement) error
	ListRecentAnnouncementsFunc func(ctx context.Context, db bun.IDB, limit int) ([]announcementdb.Announcement, error)
	CreateGalleryImageFunc      func(ctx context.Context, db bun.IDB, image *announcementdb.GalleryImage) error
	ListGalleryImagesFunc       func(ctx context.Context, db bun.IDB, limit, offset int) ([]announcementdb.GalleryImage, error)
}

func NewFakeAnnouncementRepo() *FakeAnnouncementRepo {
	return &FakeAnnouncementRepo{
		trace: []string{},
	}
}

func (f *FakeAnnouncementRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeAnnouncementRepo) CreateAnnouncement(ctx context.Context, db bun.IDB, announcement *announcementdb.Announcement) error {
	f.record("CreateAnnouncement")
	if f.CreateAnnouncementFunc != nil {
		return f.CreateAnnouncementFunc(ctx, db, announcement)
	}
	return nil
}

func (f *FakeAnnouncementRepo) ListRecentAnnouncements(ctx context.Context, db bun.IDB, limit int) ([]announcementdb.Announcement, error) {
	f.record("ListRecentAnnouncements")
	if f.ListRecentAnnouncementsFunc != nil {
		return f.ListRecentAnnouncementsFunc(ctx, db, limit)
	}
	return nil, nil
}

func (f *FakeAnnouncementRepo) CreateGalleryImage(ctx context.Context, db bun.IDB, image *announcementdb.GalleryImage) error {
	f.record("CreateGalleryImage")
	if f.CreateGalleryImageFunc != nil {
		return f.CreateGalleryImageFunc(ctx, db, image)
	}
	return nil
}

func (f *FakeAnnouncementRepo) ListGalleryImages(ctx context.Context, db bun.IDB, limit, offset int) ([]announcementdb.GalleryImage, error) {
	f.record("ListGalleryImages")
	if f.ListGalleryImagesFunc != nil {
		return f.ListGalleryImagesFunc(ctx, db, limit, offset)
	}
	return nil, nil
}

func (f *FakeAnnouncementRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ announcementdb.Repository = (*FakeAnnouncementRepo)(nil)

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
