package partnership

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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
	router.Get("/", handler.listPartnerships)
	router.Get("/{id}", handler.getPartnership)

	// Owner only
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Get("/mine", handler.listMyPartnerships)
		protected.Post("/add", handler.addPartnership)
		protected.Put("/update/{id}", handler.updatePartnership)
		protected.Delete("/delete/{id}", handler.deletePartnership)
	})
}

func (handler *Handler) listPartnerships(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.ListPartnerships(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, "partnerships", items)
}

func (handler *Handler) listMyPartnerships(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.ListMyPartnerships(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, "partnerships", items)
}

func (handler *Handler) getPartnership(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetPartnership(request.Context(), resource.ID(requestutil.ID(request, "id")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", "partnership", item)
}

func (handler *Handler) addPartnership(writer http.ResponseWriter, request *http.Request) {
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

	item, err := handler.service.CreatePartnership(request.Context(), claims, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Partnership added successfully", "partnership", item)
}

func (handler *Handler) updatePartnership(writer http.ResponseWriter, request *http.Request) {
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

	item, err := handler.service.UpdatePartnership(request.Context(), claims, resource.ID(requestutil.ID(request, "id")), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Partnership updated successfully", "partnership", item)
}

func (handler *Handler) deletePartnership(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePartnership(request.Context(), claims, resource.ID(requestutil.ID(request, "id"))); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Partnership deleted successfully")
}

// parseInput reads the multipart form shared by add and update. Absent fields
// stay nil so updates retain stored values.
func (handler *Handler) parseInput(request *http.Request) (Input, error) {
	if err := requestutil.ParseUploadForm(request, handler.maxUploadBytes); err != nil {
		return Input{}, err
	}

	input := Input{
		WebsiteURL: requestutil.OptionalFormValue(request, FieldWebsiteURL),
	}

	image, err := requestutil.FormFileBase64(request, constants.UploadFormField, handler.maxUploadBytes)
	if err != nil {
		return Input{}, err
	}
	input.Image = image

	return input, nil
}
