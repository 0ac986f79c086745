package photo

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
	router.Get("/", handler.listPhotos)
	router.Get("/{id}", handler.getPhoto)

	// Owner only
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Get("/mine", handler.listMyPhotos)
		protected.Post("/add", handler.addPhoto)
		protected.Put("/update/{id}", handler.updatePhoto)
		protected.Delete("/delete/{id}", handler.deletePhoto)
	})
}

func (handler *Handler) listPhotos(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.ListPhotos(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, "photos", items)
}

func (handler *Handler) listMyPhotos(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.ListMyPhotos(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, "photos", items)
}

func (handler *Handler) getPhoto(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetPhoto(request.Context(), resource.ID(requestutil.ID(request, "id")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", "photo", item)
}

func (handler *Handler) addPhoto(writer http.ResponseWriter, request *http.Request) {
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

	item, err := handler.service.CreatePhoto(request.Context(), claims, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Photo added successfully", "photo", item)
}

func (handler *Handler) updatePhoto(writer http.ResponseWriter, request *http.Request) {
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

	item, err := handler.service.UpdatePhoto(request.Context(), claims, resource.ID(requestutil.ID(request, "id")), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Photo updated successfully", "photo", item)
}

func (handler *Handler) deletePhoto(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePhoto(request.Context(), claims, resource.ID(requestutil.ID(request, "id"))); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Photo deleted successfully")
}

// parseInput reads the multipart form shared by add and update.
func (handler *Handler) parseInput(request *http.Request) (Input, error) {
	if err := requestutil.ParseUploadForm(request, handler.maxUploadBytes); err != nil {
		return Input{}, err
	}

	image, err := requestutil.FormFileBase64(request, constants.UploadFormField, handler.maxUploadBytes)
	if err != nil {
		return Input{}, err
	}

	return Input{Image: image}, nil
}
