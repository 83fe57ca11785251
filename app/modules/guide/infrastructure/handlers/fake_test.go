package guidehandlers

import (
	"context"

	guideservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide/application"
	guidedb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide/infrastructure/repositories"
)

type FakeGuideService struct {
	trace []string

	CreateGuideFunc        func(ctx context.Context, req guideservice.CreateGuideRequest) (*guidedb.Guide, error)
	ListApprovedGuidesFunc func(ctx context.Context) ([]guidedb.Guide, error)
	ListPendingGuidesFunc  func(ctx context.Context) ([]guidedb.Guide, error)
	ReviewGuideFunc        func(ctx context.Context, guideID int64, req guideservice.ReviewGuideRequest) (*guidedb.Guide, error)
}

func NewFakeGuideService() *FakeGuideService {
	return &FakeGuideService{trace: []string{}}
}

func (f *FakeGuideService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeGuideService) CreateGuide(ctx context.Context, req guideservice.CreateGuideRequest) (*guidedb.Guide, error) {
	f.record("CreateGuide")
	if f.CreateGuideFunc != nil {
		return f.CreateGuideFunc(ctx, req)
	}
	return &guidedb.Guide{ID: 1, Title: req.Title, Status: guidedb.StatusPending, CreatedBy: req.CreatedBy}, nil
}

func (f *FakeGuideService) ListApprovedGuides(ctx context.Context) ([]guidedb.Guide, error) {
	f.record("ListApprovedGuides")
	if f.ListApprovedGuidesFunc != nil {
		return f.ListApprovedGuidesFunc(ctx)
	}
	return []guidedb.Guide{}, nil
}

func (f *FakeGuideService) ListPendingGuides(ctx context.Context) ([]guidedb.Guide, error) {
	f.record("ListPendingGuides")
	if f.ListPendingGuidesFunc != nil {
		return f.ListPendingGuidesFunc(ctx)
	}
	return []guidedb.Guide{}, nil
}

func (f *FakeGuideService) ReviewGuide(ctx context.Context, guideID int64, req guideservice.ReviewGuideRequest) (*guidedb.Guide, error) {
	f.record("ReviewGuide")
	if f.ReviewGuideFunc != nil {
		return f.ReviewGuideFunc(ctx, guideID, req)
	}
	return &guidedb.Guide{ID: guideID, CreatedBy: 3, Status: req.Status, ApprovedBy: &req.ApprovedBy}, nil
}

func (f *FakeGuideService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ guideservice.Service = (*FakeGuideService)(nil)

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
