package news

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/manaracms/manara/internal/content/l10n"
	"github.com/manaracms/manara/internal/content/resource"
	"github.com/manaracms/manara/internal/platform/apperr"
	"github.com/manaracms/manara/internal/platform/constants"
	"github.com/manaracms/manara/internal/platform/middleware"
	requestutil "github.com/manaracms/manara/internal/platform/request"
	"github.com/manaracms/manara/internal/platform/respond"
)

type Handler struct {
	service        *Service
	maxUploadBytes int64
}

func NewHandler(service *Service, maxUploadBytes int64) *Handler {
	return &Handler{service: service, maxUploadBytes: maxUploadBytes}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listNews)
	router.Get("/featured", handler.featuredNews)
	router.Get("/{id}", handler.getNews)

	// Owner only
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Get("/mine", handler.listMyNews)
		protected.Post("/add", handler.addNews)
		protected.Put("/update/{id}", handler.updateNews)
		protected.Delete("/delete/{id}", handler.deleteNews)
	})
}

func (handler *Handler) listNews(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.ListNews(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, "news", items)
}

func (handler *Handler) featuredNews(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.FeaturedNews(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, "news", items)
}

func (handler *Handler) listMyNews(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.ListMyNews(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, "news", items)
}

func (handler *Handler) getNews(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetNews(request.Context(), resource.ID(requestutil.ID(request, "id")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", "news", item)
}

func (handler *Handler) addNews(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := handler.parseInput(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.CreateNews(request.Context(), claims, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "News added successfully", "news", item)
}

func (handler *Handler) updateNews(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := handler.parseInput(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.UpdateNews(request.Context(), claims, resource.ID(requestutil.ID(request, "id")), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "News updated successfully", "news", item)
}

func (handler *Handler) deleteNews(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteNews(request.Context(), claims, resource.ID(requestutil.ID(request, "id"))); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "News deleted successfully")
}

// parseInput reads the multipart form shared by add and update. Absent fields
// stay nil so updates retain stored values.
func (handler *Handler) parseInput(request *http.Request) (Input, error) {
	if err := requestutil.ParseUploadForm(request, handler.maxUploadBytes); err != nil {
		return Input{}, err
	}

	input := Input{
		YoutubeLink: requestutil.OptionalFormValue(request, FieldYoutubeLink),
	}

	if raw := requestutil.OptionalFormValue(request, FieldTitle); raw != nil {
		title, err := l10n.DecodeField(*raw, FieldTitle)
		if err != nil {
			return Input{}, err
		}
		input.Title = &title
	}

	if raw := requestutil.OptionalFormValue(request, FieldParagraph); raw != nil {
		paragraph, err := l10n.DecodeField(*raw, FieldParagraph)
		if err != nil {
			return Input{}, err
		}
		input.Paragraph = &paragraph
	}

	if raw := requestutil.OptionalFormValue(request, FieldIsFeatured); raw != nil {
		isFeatured, err := strconv.ParseBool(*raw)
		if err != nil {
			return Input{}, apperr.ValidationError("isFeatured must be a boolean")
		}
		input.IsFeatured = &isFeatured
	}

	image, err := requestutil.FormFileBase64(request, constants.UploadFormField, handler.maxUploadBytes)
	if err != nil {
		return Input{}, err
	}
	input.Image = image

	return input, nil
}
