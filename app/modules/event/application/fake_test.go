package eventservice

import (
	"context"
	"fmt"

	eventdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Event Repo
// ------------------------

type FakeEventRepo struct {
	trace []string

	CreateEventFunc           func(ctx context.Context, db bun.IDB, event *eventdb.Event) error
	GetEventByIDFunc          func(ctx context.Context, db bun.IDB, id int64) (*eventdb.Event, error)
	GetEventForUpdateFunc     func(ctx context.Context, db bun.IDB, id int64) (*eventdb.Event, error)
	ListUpcomingEventsFunc    func(ctx context.Context, db bun.IDB) ([]eventdb.EventSummary, error)
	IsRegisteredFunc          func(ctx context.Context, db bun.IDB, eventID, userID int64) (bool, error)
	CountRegistrationsFunc    func(ctx context.Context, db bun.IDB, eventID int64) (int, error)
	InsertRegistrationFunc    func(ctx context.Context, db bun.IDB, registration *eventdb.Registration) error
	GetEventRegistrationsFunc func(ctx context.Context, db bun.IDB, eventID int64) ([]eventdb.Registration, error)
	ListRosterFunc            func(ctx context.Context, db bun.IDB, eventID int64) ([]eventdb.RosterEntry, error)
}

func NewFakeEventRepo() *FakeEventRepo {
	return &FakeEventRepo{
		trace: []string{},
	}
}

func (f *FakeEventRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeEventRepo) CreateEvent(ctx context.Context, db bun.IDB, event *eventdb.Event) error {
	f.record("CreateEvent")
	if f.CreateEventFunc != nil {
		return f.CreateEventFunc(ctx, db, event)
	}
	return nil
}

func (f *FakeEventRepo) GetEventByID(ctx context.Context, db bun.IDB, id int64) (*eventdb.Event, error) {
	f.record("GetEventByID")
	if f.GetEventByIDFunc != nil {
		return f.GetEventByIDFunc(ctx, db, id)
	}
	return nil, eventdb.ErrNotFound
}

func (f *FakeEventRepo) GetEventForUpdate(ctx context.Context, db bun.IDB, id int64) (*eventdb.Event, error) {
	f.record("GetEventForUpdate")
	if f.GetEventForUpdateFunc != nil {
		return f.GetEventForUpdateFunc(ctx, db, id)
	}
	return nil, eventdb.ErrNotFound
}

func (f *FakeEventRepo) ListUpcomingEvents(ctx context.Context, db bun.IDB) ([]eventdb.EventSummary, error) {
	f.record("ListUpcomingEvents")
	if f.ListUpcomingEventsFunc != nil {
		return f.ListUpcomingEventsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeEventRepo) IsRegistered(ctx context.Context, db bun.IDB, eventID, userID int64) (bool, error) {
	f.record("IsRegistered")
	if f.IsRegisteredFunc != nil {
		return f.IsRegisteredFunc(ctx, db, eventID, userID)
	}
	return false, nil
}

func (f *FakeEventRepo) CountRegistrations(ctx context.Context, db bun.IDB, eventID int64) (int, error) {
	f.record("CountRegistrations")
	if f.CountRegistrationsFunc != nil {
		return f.CountRegistrationsFunc(ctx, db, eventID)
	}
	return 0, nil
}

func (f *FakeEventRepo) InsertRegistration(ctx context.Context, db bun.IDB, registration *eventdb.Registration) error {
	f.record("InsertRegistration")
	if f.InsertRegistrationFunc != nil {
		return f.InsertRegistrationFunc(ctx, db, registration)
	}
	return nil
}

func (f *FakeEventRepo) GetEventRegistrations(ctx context.Context, db bun.IDB, eventID int64) ([]eventdb.Registration, error) {
	f.record("GetEventRegistrations")
	if f.GetEventRegistrationsFunc != nil {
		return f.GetEventRegistrationsFunc(ctx, db, eventID)
	}
	return nil, nil
}

func (f *FakeEventRepo) ListRoster(ctx context.Context, db bun.IDB, eventID int64) ([]eventdb.RosterEntry, error) {
	f.record("ListRoster")
	if f.ListRosterFunc != nil {
		return f.ListRosterFunc(ctx, db, eventID)
	}
	return nil, nil
}

func (f *FakeEventRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ eventdb.Repository = (*FakeEventRepo)(nil)

// ------------------------
// Fake User Lookup
// ------------------------

type FakeUserLookup struct {
	users      map[int64]*userdb.User
	characters map[int64]*userdb.Character
	err        error
}

func NewFakeUserLookup(ids ...int64) *FakeUserLookup {
	f := &FakeUserLookup{
		users:      map[int64]*userdb.User{},
		characters: map[int64]*userdb.Character{},
	}
	for _, id := range ids {
		f.users[id] = &userdb.User{ID: id}
	}
	return f
}

// withCharacter registers a character owned by userID.
func (f *FakeUserLookup) withCharacter(id, userID int64) *FakeUserLookup {
	f.characters[id] = &userdb.Character{ID: id, UserID: userID, IGN: fmt.Sprintf("Nestling%d", id), Job: "saint"}
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

func (f *FakeUserLookup) GetCharacterByID(ctx context.Context, db bun.IDB, id int64) (*userdb.Character, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.characters[id]; ok {
		return c, nil
	}
	return nil, userdb.ErrNotFound
}

var _ UserLookup = (*FakeUserLookup)(nil)

// ------------------------
// In-memory seating
// ------------------------

// memorySeating backs a FakeEventRepo with maps for multi-step registration scenarios.
type memorySeating struct {
	events        map[int64]*eventdb.Event
	registrations []eventdb.Registration
}

func newMemorySeating(events ...eventdb.Event) *memorySeating {
	m := &memorySeating{events: map[int64]*eventdb.Event{}}
	for i := range events {
		e := events[i]
		m.events[e.ID] = &e
	}
	return m
}

func (m *memorySeating) wire(f *FakeEventRepo) {
	f.GetEventForUpdateFunc = func(ctx context.Context, db bun.IDB, id int64) (*eventdb.Event, error) {
		e, ok := m.events[id]
		if !ok {
			return nil, eventdb.ErrNotFound
		}
		cp := *e
		return &cp, nil
	}
	f.IsRegisteredFunc = func(ctx context.Context, db bun.IDB, eventID, userID int64) (bool, error) {
		for _, r := range m.registrations {
			if r.EventID == eventID && r.UserID == userID {
				return true, nil
			}
		}
		return false, nil
	}
	f.CountRegistrationsFunc = func(ctx context.Context, db bun.IDB, eventID int64) (int, error) {
		return len(m.registrationsOf(eventID)), nil
	}
	f.InsertRegistrationFunc = func(ctx context.Context, db bun.IDB, registration *eventdb.Registration) error {
		registration.ID = int64(len(m.registrations) + 1)
		m.registrations = append(m.registrations, *registration)
		return nil
	}
}

func (m *memorySeating) registrationsOf(eventID int64) []eventdb.Registration {
	var out []eventdb.Registration
	for _, r := range m.registrations {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out
}
