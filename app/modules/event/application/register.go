package eventservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/appdotbuilder/dragon-nest-guild-portal/app/admission"
	eventdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
)

type registrationResult = results.OperationResult[*eventdb.Registration, error]

// RegisterForEvent seats req.UserID at eventID with req.CharacterID. The event
// row stays locked until the registration is written.
func (s *EventService) RegisterForEvent(ctx context.Context, eventID int64, req RegisterRequest) (*eventdb.Registration, error) {
	identifier := fmt.Sprintf("event:%d user:%d", eventID, req.UserID)
	return operation.Run(s.run, ctx, "RegisterForEvent", identifier, func(ctx context.Context, db bun.IDB) (registrationResult, error) {
		if err := validate.First(
			validate.ID("event_id", eventID),
			validate.ID("user_id", req.UserID),
			validate.ID("character_id", req.CharacterID),
		); err != nil {
			return results.FailureResult[*eventdb.Registration, error](err), nil
		}
		return admission.Admit(ctx, db, s.registrationGate(eventID, req.UserID, req.CharacterID))
	})
}

func (s *EventService) registrationGate(eventID, userID, characterID int64) admission.Gate[*eventdb.Registration] {
	return admission.Gate[*eventdb.Registration]{
		LockParent: func(ctx context.Context, db bun.IDB) (int, bool, error) {
			event, err := s.repo.GetEventForUpdate(ctx, db, eventID)
			if errors.Is(err, eventdb.ErrNotFound) {
				return 0, false, nil
			}
			if err != nil {
				return 0, false, err
			}
			return event.MaxSlots, true, nil
		},
		Preconditions: []admission.Check{
			func(ctx context.Context, db bun.IDB) (error, error) {
				_, err := s.users.GetUserByID(ctx, db, userID)
				if errors.Is(err, userdb.ErrNotFound) {
					return domainerr.NotFound("User with ID %d not found", userID), nil
				}
				return nil, err
			},
			func(ctx context.Context, db bun.IDB) (error, error) {
				character, err := s.users.GetCharacterByID(ctx, db, characterID)
				if err != nil && !errors.Is(err, userdb.ErrNotFound) {
					return nil, err
				}
				if character == nil || character.UserID != userID {
					return domainerr.NotFound("Character with ID %d not found or does not belong to user %d", characterID, userID), nil
				}
				return nil, nil
			},
		},
		IsMember: func(ctx context.Context, db bun.IDB) (bool, error) {
			return s.repo.IsRegistered(ctx, db, eventID, userID)
		},
		CountMembers: func(ctx context.Context, db bun.IDB) (int, error) {
			return s.repo.CountRegistrations(ctx, db, eventID)
		},
		Insert: func(ctx context.Context, db bun.IDB) (*eventdb.Registration, error) {
			registration := &eventdb.Registration{EventID: eventID, UserID: userID, CharacterID: characterID}
			if err := s.repo.InsertRegistration(ctx, db, registration); err != nil {
				return nil, err
			}
			return registration, nil
		},
		ParentMissing: domainerr.NotFound("Event with ID %d not found", eventID),
		AlreadyMember: domainerr.Conflict("User %d is already registered for event %d", userID, eventID),
		Full: func(current, capacity int) error {
			return domainerr.Conflict("Event %d is full (%d/%d slots)", eventID, current, capacity)
		},
	}
}
