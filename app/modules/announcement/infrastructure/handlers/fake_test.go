package announcementhandlers

import (
	"context"

	announcementservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement/application"
	announcementdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement/infrastructure/repositories"
)

type FakeAnnouncementService struct {
	trace []string
	pages []announcementservice.Page

	CreateAnnouncementFunc     func(ctx context.Context, req announcementservice.CreateAnnouncementRequest) (*announcementdb.Announcement, error)
	GetRecentAnnouncementsFunc func(ctx context.Context) ([]announcementdb.Announcement, error)
	CreateGalleryImageFunc     func(ctx context.Context, req announcementservice.CreateGalleryImageRequest) (*announcementdb.GalleryImage, error)
	ListGalleryImagesFunc      func(ctx context.Context, page announcementservice.Page) ([]announcementdb.GalleryImage, error)
}

func NewFakeAnnouncementService() *FakeAnnouncementService {
	return &FakeAnnouncementService{trace: []string{}}
}

func (f *FakeAnnouncementService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeAnnouncementService) CreateAnnouncement(ctx context.Context, req announcementservice.CreateAnnouncementRequest) (*announcementdb.Announcement, error) {
	f.record("CreateAnnouncement")
	if f.CreateAnnouncementFunc != nil {
		return f.CreateAnnouncementFunc(ctx, req)
	}
	return &announcementdb.Announcement{ID: 1, Title: req.Title, Content: req.Content, CreatedBy: req.CreatedBy}, nil
}

func (f *FakeAnnouncementService) GetRecentAnnouncements(ctx context.Context) ([]announcementdb.Announcement, error) {
	f.record("GetRecentAnnouncements")
	if f.GetRecentAnnouncementsFunc != nil {
		return f.GetRecentAnnouncementsFunc(ctx)
	}
	return []announcementdb.Announcement{}, nil
}

func (f *FakeAnnouncementService) CreateGalleryImage(ctx context.Context, req announcementservice.CreateGalleryImageRequest) (*announcementdb.GalleryImage, error) {
	f.record("CreateGalleryImage")
	if f.CreateGalleryImageFunc != nil {
		return f.CreateGalleryImageFunc(ctx, req)
	}
	return &announcementdb.GalleryImage{ID: 1, Title: req.Title, ImageURL: req.ImageURL, UploadedBy: req.UploadedBy, Tags: req.Tags}, nil
}

func (f *FakeAnnouncementService) ListGalleryImages(ctx context.Context, page announcementservice.Page) ([]announcementdb.GalleryImage, error) {
	f.record("ListGalleryImages")
	f.pages = append(f.pages, page)
	if f.ListGalleryImagesFunc != nil {
		return f.ListGalleryImagesFunc(ctx, page)
	}
	return []announcementdb.GalleryImage{}, nil
}

func (f *FakeAnnouncementService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ announcementservice.Service = (*FakeAnnouncementService)(nil)

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
