package eventhandlers

import (
	"context"

	eventservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/application"
	eventdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/infrastructure/repositories"
)

type FakeEventService struct {
	trace []string

	CreateEventFunc           func(ctx context.Context, req eventservice.CreateEventRequest) (*eventdb.Event, error)
	GetUpcomingEventsFunc     func(ctx context.Context) ([]eventdb.EventSummary, error)
	GetEventRegistrationsFunc func(ctx context.Context, eventID int64) ([]eventdb.Registration, error)
	RegisterForEventFunc      func(ctx context.Context, eventID int64, req eventservice.RegisterRequest) (*eventdb.Registration, error)
	ExportRosterFunc          func(ctx context.Context, eventID int64) ([]byte, error)
}

func NewFakeEventService() *FakeEventService {
	return &FakeEventService{trace: []string{}}
}

func (f *FakeEventService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeEventService) CreateEvent(ctx context.Context, req eventservice.CreateEventRequest) (*eventdb.Event, error) {
	f.record("CreateEvent")
	if f.CreateEventFunc != nil {
		return f.CreateEventFunc(ctx, req)
	}
	return &eventdb.Event{}, nil
}

func (f *FakeEventService) GetUpcomingEvents(ctx context.Context) ([]eventdb.EventSummary, error) {
	f.record("GetUpcomingEvents")
	if f.GetUpcomingEventsFunc != nil {
		return f.GetUpcomingEventsFunc(ctx)
	}
	return []eventdb.EventSummary{}, nil
}

func (f *FakeEventService) GetEventRegistrations(ctx context.Context, eventID int64) ([]eventdb.Registration, error) {
	f.record("GetEventRegistrations")
	if f.GetEventRegistrationsFunc != nil {
		return f.GetEventRegistrationsFunc(ctx, eventID)
	}
	return []eventdb.Registration{}, nil
}

func (f *FakeEventService) RegisterForEvent(ctx context.Context, eventID int64, req eventservice.RegisterRequest) (*eventdb.Registration, error) {
	f.record("RegisterForEvent")
	if f.RegisterForEventFunc != nil {
		return f.RegisterForEventFunc(ctx, eventID, req)
	}
	return &eventdb.Registration{ID: 1, EventID: eventID, UserID: req.UserID, CharacterID: req.CharacterID}, nil
}

func (f *FakeEventService) ExportRoster(ctx context.Context, eventID int64) ([]byte, error) {
	f.record("ExportRoster")
	if f.ExportRosterFunc != nil {
		return f.ExportRosterFunc(ctx, eventID)
	}
	return []byte("PK"), nil
}

func (f *FakeEventService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ eventservice.Service = (*FakeEventService)(nil)

type recordingBus struct {
	topics   []string
	payloads []any
	err      error
}

func (b *recordingBus) Publish(_ context.Context, topic string, payload any) error {
	if b.err != nil {
		return b.err
	}
	b.topics = append(b.topics, topic)
	b.payloads = append(b.payloads, payload)
	return nil
}

func (b *recordingBus) Close() error { return nil }
