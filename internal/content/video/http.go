package video

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manaracms/manara/internal/content/resource"
	"github.com/manaracms/manara/internal/platform/middleware"
	requestutil "github.com/manaracms/manara/internal/platform/request"
	"github.com/manaracms/manara/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listVideos)
	router.Get("/{id}", handler.getVideo)

	// Owner only
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Get("/mine", handler.listMyVideos)
		protected.Post("/add", handler.addVideo)
		protected.Put("/update/{id}", handler.updateVideo)
		protected.Delete("/delete/{id}", handler.deleteVideo)
	})
}

func (handler *Handler) listVideos(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.ListVideos(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, "videos", items)
}

func (handler *Handler) listMyVideos(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.ListMyVideos(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, "videos", items)
}

func (handler *Handler) getVideo(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetVideo(request.Context(), resource.ID(requestutil.ID(request, "id")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", "video", item)
}

func (handler *Handler) addVideo(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.CreateVideo(request.Context(), claims, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Video added successfully", "video", item)
}

func (handler *Handler) updateVideo(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.UpdateVideo(request.Context(), claims, resource.ID(requestutil.ID(request, "id")), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Video updated successfully", "video", item)
}

func (handler *Handler) deleteVideo(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteVideo(request.Context(), claims, resource.ID(requestutil.ID(request, "id"))); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Video deleted successfully")
}
