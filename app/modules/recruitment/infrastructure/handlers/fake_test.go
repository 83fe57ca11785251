package recruitmenthandlers

import (
	"context"

	recruitmentservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment/application"
	recruitmentdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment/infrastructure/repositories"
)

type FakeRecruitmentService struct {
	trace []string

	CreateApplicationFunc       func(ctx context.Context, req recruitmentservice.CreateApplicationRequest) (*recruitmentdb.Application, error)
	ListPendingApplicationsFunc func(ctx context.Context) ([]recruitmentdb.Application, error)
	ReviewApplicationFunc       func(ctx context.Context, applicationID int64, req recruitmentservice.ReviewApplicationRequest) (*recruitmentdb.Application, error)
}

func NewFakeRecruitmentService() *FakeRecruitmentService {
	return &FakeRecruitmentService{trace: []string{}}
}

func (f *FakeRecruitmentService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRecruitmentService) CreateApplication(ctx context.Context, req recruitmentservice.CreateApplicationRequest) (*recruitmentdb.Application, error) {
	f.record("CreateApplication")
	if f.CreateApplicationFunc != nil {
		return f.CreateApplicationFunc(ctx, req)
	}
	return &recruitmentdb.Application{ID: 1, UserID: req.UserID, Status: recruitmentdb.StatusPending}, nil
}

func (f *FakeRecruitmentService) ListPendingApplications(ctx context.Context) ([]recruitmentdb.Application, error) {
	f.record("ListPendingApplications")
	if f.ListPendingApplicationsFunc != nil {
		return f.ListPendingApplicationsFunc(ctx)
	}
	return []recruitmentdb.Application{}, nil
}

func (f *FakeRecruitmentService) ReviewApplication(ctx context.Context, applicationID int64, req recruitmentservice.ReviewApplicationRequest) (*recruitmentdb.Application, error) {
	f.record("ReviewApplication")
	if f.ReviewApplicationFunc != nil {
		return f.ReviewApplicationFunc(ctx, applicationID, req)
	}
	return &recruitmentdb.Application{ID: applicationID, UserID: 20, Status: req.Status, ReviewedBy: &req.ReviewedBy}, nil
}

func (f *FakeRecruitmentService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ recruitmentservice.Service = (*FakeRecruitmentService)(nil)

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
