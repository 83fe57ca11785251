package eventintegrationtests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	eventservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/application"
	eventdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/integration_tests/testutils"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type member struct {
	user      *userdb.User
	character *userdb.Character
}

func seedMembers(t *testing.T, gen *testutils.TestDataGenerator, count int) []member {
	t.Helper()
	users, err := gen.SeedUsers(testEnv.Ctx, count)
	require.NoError(t, err)

	out := make([]member, len(users))
	for i, u := range users {
		c, err := gen.SeedCharacter(testEnv.Ctx, u)
		require.NoError(t, err)
		out[i] = member{user: u, character: c}
	}
	return out
}

func createEvent(t *testing.T, gen *testutils.TestDataGenerator, creator int64, slots int) *eventdb.Event {
	t.Helper()
	event, err := testEnv.App.EventModule.EventService.CreateEvent(testEnv.Ctx, eventservice.CreateEventRequest{
		Title:       gen.Title(),
		Description: gen.Description(),
		EventDate:   time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339),
		MaxSlots:    slots,
		CreatedBy:   creator,
	})
	require.NoError(t, err)
	return event
}

func TestRegisterForEvent_ConcurrentRegistrationsRespectSlots(t *testing.T) {
	const (
		slots   = 4
		members = 12
	)
	require.NoError(t, testEnv.Reset())
	gen := testutils.NewTestDataGenerator(testEnv.App.UserModule.UserService, 3)
	seeded := seedMembers(t, gen, members)
	event := createEvent(t, gen, seeded[0].user.ID, slots)
	svc := testEnv.App.EventModule.EventService

	var (
		wg       sync.WaitGroup
		admitted atomic.Int32
		full     atomic.Int32
	)
	for _, m := range seeded {
		wg.Add(1)
		go func(m member) {
			defer wg.Done()
			_, err := svc.RegisterForEvent(testEnv.Ctx, event.ID, eventservice.RegisterRequest{UserID: m.user.ID, CharacterID: m.character.ID})
			switch {
			case err == nil:
				admitted.Add(1)
			case errors.Is(err, domainerr.ErrConflict):
				full.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(m)
	}
	wg.Wait()

	assert.Equal(t, int32(slots), admitted.Load())
	assert.Equal(t, int32(members-slots), full.Load())

	registrations, err := svc.GetEventRegistrations(testEnv.Ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, registrations, slots)

	upcoming, err := svc.GetUpcomingEvents(testEnv.Ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, slots, upcoming[0].RegisteredCount)
}

func TestRegisterForEvent_Rejections(t *testing.T) {
	require.NoError(t, testEnv.Reset())
	gen := testutils.NewTestDataGenerator(testEnv.App.UserModule.UserService, 5)
	seeded := seedMembers(t, gen, 2)
	event := createEvent(t, gen, seeded[0].user.ID, 5)
	svc := testEnv.App.EventModule.EventService

	_, err := svc.RegisterForEvent(testEnv.Ctx, event.ID, eventservice.RegisterRequest{UserID: seeded[0].user.ID, CharacterID: seeded[1].character.ID})
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
	assert.EqualError(t, err, fmt.Sprintf("Character with ID %d not found or does not belong to user %d", seeded[1].character.ID, seeded[0].user.ID))

	_, err = svc.RegisterForEvent(testEnv.Ctx, event.ID, eventservice.RegisterRequest{UserID: seeded[0].user.ID, CharacterID: seeded[0].character.ID})
	require.NoError(t, err)

	_, err = svc.RegisterForEvent(testEnv.Ctx, event.ID, eventservice.RegisterRequest{UserID: seeded[0].user.ID, CharacterID: seeded[0].character.ID})
	assert.ErrorIs(t, err, domainerr.ErrConflict)

	_, err = svc.RegisterForEvent(testEnv.Ctx, event.ID+1000, eventservice.RegisterRequest{UserID: seeded[0].user.ID, CharacterID: seeded[0].character.ID})
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
}

func TestRosterExport_OverHTTP(t *testing.T) {
	require.NoError(t, testEnv.Reset())
	gen := testutils.NewTestDataGenerator(testEnv.App.UserModule.UserService, 9)
	seeded := seedMembers(t, gen, 3)
	event := createEvent(t, gen, seeded[0].user.ID, 10)

	srv := httptest.NewServer(testEnv.App.Router)
	defer srv.Close()

	for _, m := range seeded {
		body, err := json.Marshal(eventservice.RegisterRequest{UserID: m.user.ID, CharacterID: m.character.ID})
		require.NoError(t, err)
		resp, err := http.Post(fmt.Sprintf("%s/api/events/%d/registrations", srv.URL, event.ID), "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, err := http.Get(fmt.Sprintf("%s/api/events/%d/roster.xlsx", srv.URL, event.ID))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Roster")
	require.NoError(t, err)
	require.Len(t, rows, 2+len(seeded))
	assert.Equal(t, "Discord", rows[1][1])
	for i, m := range seeded {
		row := rows[2+i]
		assert.Equal(t, fmt.Sprint(i+1), row[0])
		assert.Equal(t, m.user.DiscordUsername, row[1])
		assert.Equal(t, m.character.IGN, row[2])
		assert.Equal(t, string(m.character.Job), row[3])
	}
}
