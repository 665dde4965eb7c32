// Copyright (c) 2026 Our Philly. All rights reserved.

package bigboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ourphilly/ourphilly/internal/platform/middleware"
	requestutil "github.com/ourphilly/ourphilly/internal/platform/request"
	"github.com/ourphilly/ourphilly/internal/platform/respond"
	"github.com/ourphilly/ourphilly/internal/platform/sec"
	"github.com/ourphilly/ourphilly/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPosts)
	router.Get("/{slug}", handler.getEventBySlug)

	// Submitting requires a signed-in member; deleting a moderator.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.submit)
	})
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleModerator))
		r.Delete("/posts/{id}", handler.deletePost)
	})

	return router
}

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	posts, total, err := handler.service.ListPosts(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getEventBySlug(writer http.ResponseWriter, request *http.Request) {
	event, err := handler.service.GetEventBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"event":     event,
		"image_url": handler.service.ImageURL(event),
	})
}

type submitRequest struct {
	ImageKey  string  `json:"image_key"`
	Title     string  `json:"title"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
	StartTime *string `json:"start_time"`
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload submitRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.Submit(request.Context(), SubmitInput{
		UserID:    userID,
		ImageKey:  payload.ImageKey,
		Title:     payload.Title,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
		StartTime: payload.StartTime,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, post)
}

func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeletePost(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
