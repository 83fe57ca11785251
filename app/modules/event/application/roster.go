package eventservice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	eventdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
	"github.com/xuri/excelize/v2"
)

const rosterSheet = "Roster"

var rosterHeader = []interface{}{"#", "Discord", "Character", "Job", "Registered At (UTC)"}

// ExportRoster builds an XLSX workbook listing the event's registrants.
func (s *EventService) ExportRoster(ctx context.Context, eventID int64) ([]byte, error) {
	return operation.Run(s.run, ctx, "ExportRoster", strconv.FormatInt(eventID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]byte, error], error) {
		if err := validate.ID("event_id", eventID); err != nil {
			return results.FailureResult[[]byte, error](err), nil
		}

		event, err := s.repo.GetEventByID(ctx, db, eventID)
		if err != nil {
			if errors.Is(err, eventdb.ErrNotFound) {
				return results.FailureResult[[]byte, error](domainerr.NotFound("Event with ID %d not found", eventID)), nil
			}
			return results.OperationResult[[]byte, error]{}, err
		}

		roster, err := s.repo.ListRoster(ctx, db, eventID)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}

		data, err := BuildRosterWorkbook(event, roster)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}
		return results.SuccessResult[[]byte, error](data), nil
	})
}

// BuildRosterWorkbook writes a title row, a header row and one row per entry.
func BuildRosterWorkbook(event *eventdb.Event, roster []eventdb.RosterEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), rosterSheet); err != nil {
		return nil, fmt.Errorf("failed to name roster sheet: %w", err)
	}

	title := fmt.Sprintf("%s (%s) %d/%d", event.Title, event.EventDate.UTC().Format(time.RFC3339), len(roster), event.MaxSlots)
	if err := f.SetSheetRow(rosterSheet, "A1", &[]interface{}{title}); err != nil {
		return nil, fmt.Errorf("failed to write roster title: %w", err)
	}
	if err := f.SetSheetRow(rosterSheet, "A2", &rosterHeader); err != nil {
		return nil, fmt.Errorf("failed to write roster header: %w", err)
	}

	for idx, entry := range roster {
		axis, err := excelize.CoordinatesToCellName(1, idx+3)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			idx + 1,
			entry.DiscordUsername,
			entry.CharacterIGN,
			entry.CharacterJob,
			entry.RegisteredAt.UTC().Format("2006-01-02 15:04"),
		}
		if err := f.SetSheetRow(rosterSheet, axis, &row); err != nil {
			return nil, fmt.Errorf("failed to write roster row %d: %w", idx+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode roster workbook: %w", err)
	}
	return buf.Bytes(), nil
}
