package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manaracms/manara/internal/content/l10n"
	"github.com/manaracms/manara/internal/content/resource"
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
	router.Get("/", handler.listTopics)
	router.Get("/{id}", handler.getTopic)

	// Owner only
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Get("/mine", handler.listMyTopics)
		protected.Post("/add", handler.addTopic)
		protected.Put("/update/{id}", handler.updateTopic)
		protected.Delete("/delete/{id}", handler.deleteTopic)
	})
}

func (handler *Handler) listTopics(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.ListTopics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, "topics", items)
}

func (handler *Handler) listMyTopics(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.ListMyTopics(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, "topics", items)
}

func (handler *Handler) getTopic(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetTopic(request.Context(), resource.ID(requestutil.ID(request, "id")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", "topic", item)
}

func (handler *Handler) addTopic(writer http.ResponseWriter, request *http.Request) {
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

	item, err := handler.service.CreateTopic(request.Context(), claims, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Topic added successfully", "topic", item)
}

func (handler *Handler) updateTopic(writer http.ResponseWriter, request *http.Request) {
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

	item, err := handler.service.UpdateTopic(request.Context(), claims, resource.ID(requestutil.ID(request, "id")), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Topic updated successfully", "topic", item)
}

func (handler *Handler) deleteTopic(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteTopic(request.Context(), claims, resource.ID(requestutil.ID(request, "id"))); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Topic deleted successfully")
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

	image, err := requestutil.FormFileBase64(request, constants.UploadFormField, handler.maxUploadBytes)
	if err != nil {
		return Input{}, err
	}
	input.Image = image

	return input, nil
}
