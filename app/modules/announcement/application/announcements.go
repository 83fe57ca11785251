package announcementservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	announcementdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
)

// RecentAnnouncements is how many announcements the dashboard shows.
const RecentAnnouncements = 10

type announcementResult = results.OperationResult[*announcementdb.Announcement, error]

type announcementListResult = results.OperationResult[[]announcementdb.Announcement, error]

// CreateAnnouncement posts an announcement on behalf of an existing user.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (*announcementdb.Announcement, error) {
	return operation.Run(s.run, ctx, "CreateAnnouncement", strconv.FormatInt(req.CreatedBy, 10), func(ctx context.Context, db bun.IDB) (announcementResult, error) {
		if err := validate.First(
			validate.Length("title", req.Title, 1, 100),
			validate.Length("content", req.Content, 1, 2000),
			validate.ID("created_by", req.CreatedBy),
		); err != nil {
			return results.FailureResult[*announcementdb.Announcement, error](err), nil
		}

		if _, err := s.users.GetUserByID(ctx, db, req.CreatedBy); err != nil {
			if errors.Is(err, userdb.ErrNotFound) {
				return results.FailureResult[*announcementdb.Announcement, error](domainerr.NotFound("Creator user does not exist")), nil
			}
			return announcementResult{}, fmt.Errorf("failed to get creator: %w", err)
		}

		announcement := &announcementdb.Announcement{
			Title:     req.Title,
			Content:   req.Content,
			CreatedBy: req.CreatedBy,
		}
		if err := s.repo.CreateAnnouncement(ctx, db, announcement); err != nil {
			return announcementResult{}, err
		}
		return results.SuccessResult[*announcementdb.Announcement, error](announcement), nil
	})
}

// GetRecentAnnouncements returns the latest announcements, newest first.
func (s *AnnouncementService) GetRecentAnnouncements(ctx context.Context) ([]announcementdb.Announcement, error) {
	return operation.Run(s.run, ctx, "GetRecentAnnouncements", "", func(ctx context.Context, db bun.IDB) (announcementListResult, error) {
		announcements, err := s.repo.ListRecentAnnouncements(ctx, db, RecentAnnouncements)
		if err != nil {
			return announcementListResult{}, err
		}
		if announcements == nil {
			announcements = []announcementdb.Announcement{}
		}
		return results.SuccessResult[[]announcementdb.Announcement, error](announcements), nil
	})
}
