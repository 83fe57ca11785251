package eventservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	eventdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
)

const (
	MinEventSlots = 1
	MaxEventSlots = 100
)

type eventResult = results.OperationResult[*eventdb.Event, error]

// CreateEvent schedules an event on behalf of an existing user.
func (s *EventService) CreateEvent(ctx context.Context, req CreateEventRequest) (*eventdb.Event, error) {
	return operation.Run(s.run, ctx, "CreateEvent", strconv.FormatInt(req.CreatedBy, 10), func(ctx context.Context, db bun.IDB) (eventResult, error) {
		return s.createEventLogic(ctx, db, req)
	})
}

func (s *EventService) createEventLogic(ctx context.Context, db bun.IDB, req CreateEventRequest) (eventResult, error) {
	if err := validate.First(
		validate.Length("title", req.Title, 1, 100),
		validate.Length("description", req.Description, 1, 1000),
		validate.Range("max_slots", req.MaxSlots, MinEventSlots, MaxEventSlots),
		validate.ID("created_by", req.CreatedBy),
	); err != nil {
		return results.FailureResult[*eventdb.Event, error](err), nil
	}

	eventDate, err := s.dates.Parse(req.EventDate, s.clock)
	if err != nil {
		s.run.Logger.DebugContext(ctx, "Unparseable event date", attr.String("input", req.EventDate), attr.Error(err))
		return results.FailureResult[*eventdb.Event, error](domainerr.Invalid("event_date %q is not a recognizable date", req.EventDate)), nil
	}

	if _, err := s.users.GetUserByID(ctx, db, req.CreatedBy); err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*eventdb.Event, error](domainerr.NotFound("User not found")), nil
		}
		return eventResult{}, fmt.Errorf("failed to get creator: %w", err)
	}

	event := &eventdb.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		MaxSlots:    req.MaxSlots,
		Status:      eventdb.StatusUpcoming,
		CreatedBy:   req.CreatedBy,
	}
	if err := s.repo.CreateEvent(ctx, db, event); err != nil {
		return eventResult{}, err
	}

	return results.SuccessResult[*eventdb.Event, error](event), nil
}

// GetUpcomingEvents returns upcoming and ongoing events, soonest first.
func (s *EventService) GetUpcomingEvents(ctx context.Context) ([]eventdb.EventSummary, error) {
	return operation.Run(s.run, ctx, "GetUpcomingEvents", "all", func(ctx context.Context, db bun.IDB) (results.OperationResult[[]eventdb.EventSummary, error], error) {
		events, err := s.repo.ListUpcomingEvents(ctx, db)
		if err != nil {
			return results.OperationResult[[]eventdb.EventSummary, error]{}, err
		}
		if events == nil {
			events = []eventdb.EventSummary{}
		}
		return results.SuccessResult[[]eventdb.EventSummary, error](events), nil
	})
}

// GetEventRegistrations lists an event's registrations in sign-up order.
func (s *EventService) GetEventRegistrations(ctx context.Context, eventID int64) ([]eventdb.Registration, error) {
	return operation.Run(s.run, ctx, "GetEventRegistrations", strconv.FormatInt(eventID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]eventdb.Registration, error], error) {
		if err := validate.ID("event_id", eventID); err != nil {
			return results.FailureResult[[]eventdb.Registration, error](err), nil
		}

		registrations, err := s.repo.GetEventRegistrations(ctx, db, eventID)
		if err != nil {
			return results.OperationResult[[]eventdb.Registration, error]{}, err
		}
		if registrations == nil {
			registrations = []eventdb.Registration{}
		}
		return results.SuccessResult[[]eventdb.Registration, error](registrations), nil
	})
}
