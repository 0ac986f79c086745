package topic

import (
	"context"
	"log/slog"

	"github.com/manaracms/manara/internal/content/media"
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

func (service *Service) ListTopics(context context.Context) ([]*Topic, error) {
	return service.repo.ListTopics(context)
}

func (service *Service) ListMyTopics(context context.Context, claims *sec.AuthClaims) ([]*Topic, error) {
	return service.repo.ListTopicsByOwner(context, claims.Email)
}

func (service *Service) GetTopic(context context.Context, id resource.ID) (*Topic, error) {
	return service.repo.GetTopic(context, id)
}

func (service *Service) CreateTopic(context context.Context, claims *sec.AuthClaims, input Input) (*Topic, error) {
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

	item := &Topic{
		Title:       *input.Title,
		Paragraph:   *input.Paragraph,
		Image:       image,
		YoutubeLink: youtubeLink,
		OwnerEmail:  claims.Email,
		OwnerID:     claims.UserID,
	}

	if err := service.repo.CreateTopic(context, item); err != nil {
		return nil, err
	}

	service.logger.Info("topic_created",
		slog.String("topic_id", item.ID.String()),
		slog.String("owner_email", item.OwnerEmail),
	)
	return item, nil
}

func (service *Service) UpdateTopic(context context.Context, claims *sec.AuthClaims, id resource.ID, input Input) (*Topic, error) {
	existing, err := service.repo.GetTopic(context, id)
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

	image, youtubeLink, err := media.Resolve(input.Image, input.YoutubeLink, existing.Image, existing.YoutubeLink)
	if err != nil {
		return nil, err
	}
	if err := validateLink(youtubeLink); err != nil {
		return nil, err
	}
	existing.Image = image
	existing.YoutubeLink = youtubeLink

	if err := service.repo.UpdateTopic(context, existing); err != nil {
		return nil, err
	}

	service.logger.Info("topic_updated", slog.String("topic_id", existing.ID.String()))
	return existing, nil
}

func (service *Service) DeleteTopic(context context.Context, claims *sec.AuthClaims, id resource.ID) error {
	existing, err := service.repo.GetTopic(context, id)
	if err != nil {
		return err
	}
	if err := resource.RequireOwner(existing.OwnerEmail, claims.Email); err != nil {
		return err
	}

	if err := service.repo.DeleteTopic(context, id); err != nil {
		return err
	}

	service.logger.Warn("topic_deleted", slog.String("topic_id", id.String()))
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
