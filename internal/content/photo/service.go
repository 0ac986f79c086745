package photo

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

func (service *Service) ListPhotos(context context.Context) ([]*Photo, error) {
	return service.repo.ListPhotos(context)
}

func (service *Service) ListMyPhotos(context context.Context, claims *sec.AuthClaims) ([]*Photo, error) {
	return service.repo.ListPhotosByOwner(context, claims.Email)
}

func (service *Service) GetPhoto(context context.Context, id resource.ID) (*Photo, error) {
	return service.repo.GetPhoto(context, id)
}

func (service *Service) CreatePhoto(context context.Context, claims *sec.AuthClaims, input Input) (*Photo, error) {
	if input.Image == nil || *input.Image == "" {
		return nil, validate.RequiredError(FieldImage, "An image file is required")
	}

	item := &Photo{
		Image:      input.Image,
		OwnerEmail: claims.Email,
		OwnerID:    claims.UserID,
	}

	if err := service.repo.CreatePhoto(context, item); err != nil {
		return nil, err
	}

	service.logger.Info("photo_created",
		slog.String("photo_id", item.ID.String()),
		slog.String("owner_email", item.OwnerEmail),
	)
	return item, nil
}

func (service *Service) UpdatePhoto(context context.Context, claims *sec.AuthClaims, id resource.ID, input Input) (*Photo, error) {
	existing, err := service.repo.GetPhoto(context, id)
	if err != nil {
		return nil, err
	}
	if err := resource.RequireOwner(existing.OwnerEmail, claims.Email); err != nil {
		return nil, err
	}

	if input.Image != nil && *input.Image != "" {
		existing.Image = input.Image
	}

	if err := service.repo.UpdatePhoto(context, existing); err != nil {
		return nil, err
	}

	service.logger.Info("photo_updated", slog.String("photo_id", existing.ID.String()))
	return existing, nil
}

func (service *Service) DeletePhoto(context context.Context, claims *sec.AuthClaims, id resource.ID) error {
	existing, err := service.repo.GetPhoto(context, id)
	if err != nil {
		return err
	}
	if err := resource.RequireOwner(existing.OwnerEmail, claims.Email); err != nil {
		return err
	}

	if err := service.repo.DeletePhoto(context, id); err != nil {
		return err
	}

	service.logger.Warn("photo_deleted", slog.String("photo_id", id.String()))
	return nil
}
