package partnership

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

func (service *Service) ListPartnerships(context context.Context) ([]*Partnership, error) {
	return service.repo.ListPartnerships(context)
}

func (service *Service) ListMyPartnerships(context context.Context, claims *sec.AuthClaims) ([]*Partnership, error) {
	return service.repo.ListPartnershipsByOwner(context, claims.Email)
}

func (service *Service) GetPartnership(context context.Context, id resource.ID) (*Partnership, error) {
	return service.repo.GetPartnership(context, id)
}

func (service *Service) CreatePartnership(context context.Context, claims *sec.AuthClaims, input Input) (*Partnership, error) {
	if input.Image == nil || *input.Image == "" {
		return nil, validate.RequiredError(FieldImage, "A logo image is required")
	}
	if input.WebsiteURL == nil {
		return nil, validate.RequiredError(FieldWebsiteURL, "This field is required")
	}
	validator := &validate.Validator{}
	validator.Required(FieldWebsiteURL, *input.WebsiteURL).URL(FieldWebsiteURL, *input.WebsiteURL)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	item := &Partnership{
		Image:      input.Image,
		WebsiteURL: *input.WebsiteURL,
		OwnerEmail: claims.Email,
		OwnerID:    claims.UserID,
	}

	if err := service.repo.CreatePartnership(context, item); err != nil {
		return nil, err
	}

	service.logger.Info("partnership_created",
		slog.String("partnership_id", item.ID.String()),
		slog.String("owner_email", item.OwnerEmail),
	)
	return item, nil
}

func (service *Service) UpdatePartnership(context context.Context, claims *sec.AuthClaims, id resource.ID, input Input) (*Partnership, error) {
	existing, err := service.repo.GetPartnership(context, id)
	if err != nil {
		return nil, err
	}
	if err := resource.RequireOwner(existing.OwnerEmail, claims.Email); err != nil {
		return nil, err
	}

	if input.Image != nil && *input.Image != "" {
		existing.Image = input.Image
	}
	if input.WebsiteURL != nil {
		validator := &validate.Validator{}
		validator.Required(FieldWebsiteURL, *input.WebsiteURL).URL(FieldWebsiteURL, *input.WebsiteURL)
		if err := validator.Err(); err != nil {
			return nil, err
		}
		existing.WebsiteURL = *input.WebsiteURL
	}

	if err := service.repo.UpdatePartnership(context, existing); err != nil {
		return nil, err
	}

	service.logger.Info("partnership_updated", slog.String("partnership_id", existing.ID.String()))
	return existing, nil
}

func (service *Service) DeletePartnership(context context.Context, claims *sec.AuthClaims, id resource.ID) error {
	existing, err := service.repo.GetPartnership(context, id)
	if err != nil {
		return err
	}
	if err := resource.RequireOwner(existing.OwnerEmail, claims.Email); err != nil {
		return err
	}

	if err := service.repo.DeletePartnership(context, id); err != nil {
		return err
	}

	service.logger.Warn("partnership_deleted", slog.String("partnership_id", id.String()))
	return nil
}
