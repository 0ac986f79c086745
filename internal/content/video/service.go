package video

import (
	"context"
	"log/slog"

	"github.com/manaracms/manara/internal/content/resource"
	"github.com/manaracms/manara/internal/platform/sec"
	"github.com/manaracms/manara/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListVideos(context context.Context) ([]*Video, error) {
	return service.repo.ListVideos(context)
}

func (service *Service) ListMyVideos(context context.Context, claims *sec.AuthClaims) ([]*Video, error) {
	return service.repo.ListVideosByOwner(context, claims.Email)
}

func (service *Service) GetVideo(context context.Context, id resource.ID) (*Video, error) {
	return service.repo.GetVideo(context, id)
}

func (service *Service) CreateVideo(context context.Context, claims *sec.AuthClaims, input Input) (*Video, error) {
	if input.Title == nil {
		return nil, validate.RequiredError(FieldTitle, "This field is required")
	}
	title := input.Title.Normalized()
	if err := title.Validate(FieldTitle); err != nil {
		return nil, err
	}

	if input.YoutubeLink == nil {
		return nil, validate.RequiredError(FieldYoutubeLink, "This field is required")
	}
	validator := &validate.Validator{}
	validator.Required(FieldYoutubeLink, *input.YoutubeLink).URL(FieldYoutubeLink, *input.YoutubeLink)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	item := &Video{
		Title:       title,
		YoutubeLink: *input.YoutubeLink,
		OwnerEmail:  claims.Email,
		OwnerID:     claims.UserID,
	}

	if err := service.repo.CreateVideo(context, item); err != nil {
		return nil, err
	}

	service.logger.Info("video_created",
		slog.String("video_id", item.ID.String()),
		slog.String("owner_email", item.OwnerEmail),
	)
	return item, nil
}

func (service *Service) UpdateVideo(context context.Context, claims *sec.AuthClaims, id resource.ID, input Input) (*Video, error) {
	existing, err := service.repo.GetVideo(context, id)
	if err != nil {
		return nil, err
	}
	if err := resource.RequireOwner(existing.OwnerEmail, claims.Email); err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := input.Title.Normalized()
		if err := title.Validate(FieldTitle); err != nil {
			return nil, err
		}
		existing.Title = title
	}
	if input.YoutubeLink != nil {
		validator := &validate.Validator{}
		validator.Required(FieldYoutubeLink, *input.YoutubeLink).URL(FieldYoutubeLink, *input.YoutubeLink)
		if err := validator.Err(); err != nil {
			return nil, err
		}
		existing.YoutubeLink = *input.YoutubeLink
	}

	if err := service.repo.UpdateVideo(context, existing); err != nil {
		return nil, err
	}

	service.logger.Info("video_updated", slog.String("video_id", existing.ID.String()))
	return existing, nil
}

func (service *Service) DeleteVideo(context context.Context, claims *sec.AuthClaims, id resource.ID) error {
	existing, err := service.repo.GetVideo(context, id)
	if err != nil {
		return err
	}
	if err := resource.RequireOwner(existing.OwnerEmail, claims.Email); err != nil {
		return err
	}

	if err := service.repo.DeleteVideo(context, id); err != nil {
		return err
	}

	service.logger.Warn("video_deleted", slog.String("video_id", id.String()))
	return nil
}
