package news

import (
	"context"
	"log/slog"

	"github.com/manaracms/manara/internal/content/media"
	"github.com/manaracms/manara/internal/content/resource"
	"github.com/manaracms/manara/internal/platform/constants"
	"github.com/manaracms/manara/internal/platform/sec"
	"github.com/manaracms/manara/internal/platform/validate"
	"github.com/manaracms/manara/pkg/pointer"
)

type Service struct {
	repo   Repository
	cache  *Cache
	logger *slog.Logger
}

// NewService wires the repository and an optional featured-slice cache.
// A nil cache disables caching without changing behavior.
func NewService(repo Repository, cache *Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (service *Service) ListNews(context context.Context) ([]*News, error) {
	return service.repo.ListNews(context)
}

func (service *Service) ListMyNews(context context.Context, claims *sec.AuthClaims) ([]*News, error) {
	return service.repo.ListNewsByOwner(context, claims.Email)
}

// FeaturedNews returns the newest featured articles, capped for the homepage.
func (service *Service) FeaturedNews(context context.Context) ([]*News, error) {
	if items, ok := service.cache.GetFeatured(context); ok {
		return items, nil
	}

	items, err := service.repo.ListFeaturedNews(context, constants.FeaturedNewsLimit)
	if err != nil {
		return nil, err
	}

	service.cache.SetFeatured(context, items)
	return items, nil
}

func (service *Service) GetNews(context context.Context, id resource.ID) (*News, error) {
	return service.repo.GetNews(context, id)
}

func (service *Service) CreateNews(context context.Context, claims *sec.AuthClaims, input Input) (*News, error) {
	if input.Title == nil {
		return nil, validate.RequiredError(FieldTitle, "This field is required")
	}
	if input.Paragraph == nil {
		return nil, validate.RequiredError(FieldParagraph, "This field is required")
	}

	image, youtubeLink, err := media.Resolve(input.Image, input.YoutubeLink, nil, nil)
	if err != nil {
		return nil, err
	}
	if err := validateLink(youtubeLink); err != nil {
		return nil, err
	}

	item := &News{
		Title:       *input.Title,
		Paragraph:   *input.Paragraph,
		Image:       image,
		YoutubeLink: youtubeLink,
		IsFeatured:  pointer.Fallback(input.IsFeatured, false),
		OwnerEmail:  claims.Email,
		OwnerID:     claims.UserID,
	}

	if err := service.repo.CreateNews(context, item); err != nil {
		return nil, err
	}

	service.cache.Invalidate(context)
	service.logger.Info("news_created",
		slog.String("news_id", item.ID.String()),
		slog.String("owner_email", item.OwnerEmail),
	)
	return item, nil
}

func (service *Service) UpdateNews(context context.Context, claims *sec.AuthClaims, id resource.ID, input Input) (*News, error) {
	existing, err := service.repo.GetNews(context, id)
	if err != nil {
		return nil, err
	}
	if err := resource.RequireOwner(existing.OwnerEmail, claims.Email); err != nil {
		return nil, err
	}

	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Paragraph != nil {
		existing.Paragraph = *input.Paragraph
	}
	if input.IsFeatured != nil {
		existing.IsFeatured = *input.IsFeatured
	}

	image, youtubeLink, err := media.Resolve(input.Image, input.YoutubeLink, existing.Image, existing.YoutubeLink)
	if err != nil {
		return nil, err
	}
	if err := validateLink(youtubeLink); err != nil {
		return nil, err
	}
	existing.Image = image
	existing.YoutubeLink = youtubeLink

	if err := service.repo.UpdateNews(context, existing); err != nil {
		return nil, err
	}

	service.cache.Invalidate(context)
	service.logger.Info("news_updated", slog.String("news_id", existing.ID.String()))
	return existing, nil
}

func (service *Service) DeleteNews(context context.Context, claims *sec.AuthClaims, id resource.ID) error {
	existing, err := service.repo.GetNews(context, id)
	if err != nil {
		return err
	}
	if err := resource.RequireOwner(existing.OwnerEmail, claims.Email); err != nil {
		return err
	}

	if err := service.repo.DeleteNews(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context)
	service.logger.Warn("news_deleted", slog.String("news_id", id.String()))
	return nil
}

func validateLink(youtubeLink *string) error {
	if youtubeLink == nil {
		return nil
	}
	validator := &validate.Validator{}
	validator.URL(FieldYoutubeLink, *youtubeLink)
	return validator.Err()
}
