// Copyright (c) 2026 Our Philly. All rights reserved.

package event

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

	router.Get("/", handler.list)
	router.Get("/{slug}", handler.getBySlug)

	// Admin CRUD
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleModerator))
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
	})

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	events, total, err := handler.service.List(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, events, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	event, err := handler.service.GetBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}

type eventRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	VenueID     *string `json:"venue_id"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	ImageURL    *string `json:"image_url"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload eventRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.Create(request.Context(), CreateInput{
		Name:        payload.Name,
		Description: payload.Description,
		VenueID:     payload.VenueID,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		ImageURL:    payload.ImageURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, event)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var payload eventRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), UpdateInput{
		Name:        payload.Name,
		Description: payload.Description,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		ImageURL:    payload.ImageURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
