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

const (
	MaxTags      = 10
	MaxTagLength = 20
	MaxImageURL  = 2048

	DefaultPageLimit = 10
	MaxPageLimit     = 100

	// MaxPage keeps the computed offset well inside an int.
	MaxPage = 1_000_000
)

type galleryImageResult = results.OperationResult[*announcementdb.GalleryImage, error]

type galleryListResult = results.OperationResult[[]announcementdb.GalleryImage, error]

// CreateGalleryImage shares a screenshot on behalf of an existing user.
func (s *AnnouncementService) CreateGalleryImage(ctx context.Context, req CreateGalleryImageRequest) (*announcementdb.GalleryImage, error) {
	return operation.Run(s.run, ctx, "CreateGalleryImage", strconv.FormatInt(req.UploadedBy, 10), func(ctx context.Context, db bun.IDB) (galleryImageResult, error) {
		if err := validate.First(
			validate.Length("title", req.Title, 1, 100),
			validate.OptionalLength("description", req.Description, 500),
			validate.Length("image_url", req.ImageURL, 1, MaxImageURL),
			validate.ID("uploaded_by", req.UploadedBy),
			validateTags(req.Tags),
		); err != nil {
			return results.FailureResult[*announcementdb.GalleryImage, error](err), nil
		}

		if _, err := s.users.GetUserByID(ctx, db, req.UploadedBy); err != nil {
			if errors.Is(err, userdb.ErrNotFound) {
				return results.FailureResult[*announcementdb.GalleryImage, error](domainerr.NotFound("User with id %d does not exist", req.UploadedBy)), nil
			}
			return galleryImageResult{}, fmt.Errorf("failed to get uploader: %w", err)
		}

		tags := req.Tags
		if tags == nil {
			tags = []string{}
		}
		image := &announcementdb.GalleryImage{
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			UploadedBy:  req.UploadedBy,
			Tags:        tags,
		}
		if err := s.repo.CreateGalleryImage(ctx, db, image); err != nil {
			return galleryImageResult{}, err
		}
		return results.SuccessResult[*announcementdb.GalleryImage, error](image), nil
	})
}

// ListGalleryImages returns one page of the gallery, newest first.
func (s *AnnouncementService) ListGalleryImages(ctx context.Context, page Page) ([]announcementdb.GalleryImage, error) {
	return operation.Run(s.run, ctx, "ListGalleryImages", strconv.Itoa(page.Page), func(ctx context.Context, db bun.IDB) (galleryListResult, error) {
		if err := validate.First(
			validate.Range("page", page.Page, 1, MaxPage),
			validate.Range("limit", page.Limit, 1, MaxPageLimit),
		); err != nil {
			return results.FailureResult[[]announcementdb.GalleryImage, error](err), nil
		}

		images, err := s.repo.ListGalleryImages(ctx, db, page.Limit, (page.Page-1)*page.Limit)
		if err != nil {
			return galleryListResult{}, err
		}
		if images == nil {
			images = []announcementdb.GalleryImage{}
		}
		return results.SuccessResult[[]announcementdb.GalleryImage, error](images), nil
	})
}

func validateTags(tags []string) error {
	if len(tags) > MaxTags {
		return domainerr.Invalid("tags must have at most %d entries", MaxTags)
	}
	for i, tag := range tags {
		if err := validate.Length(fmt.Sprintf("tags[%d]", i), tag, 1, MaxTagLength); err != nil {
			return err
		}
	}
	return nil
}
