// Copyright (c) 2026 Our Philly. All rights reserved.

package series

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
	router.Get("/{slug}/{date}", handler.getOccurrence)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleOrganizer))
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
	})

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, total, err := handler.service.List(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, items, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"series":          item,
		"weekdays":        Weekdays(item.RRule),
		"next_occurrence": handler.service.NextOccurrenceDate(item),
	})
}

func (handler *Handler) getOccurrence(writer http.ResponseWriter, request *http.Request) {
	occurrence, err := handler.service.GetOccurrence(
		request.Context(),
		chi.URLParam(request, "slug"),
		chi.URLParam(request, "date"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, occurrence)
}

type seriesRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	RRule       string  `json:"rrule"`
	StartDate   string  `json:"start_date"`
	StartTime   *string `json:"start_time"`
	EndDate     *string `json:"end_date"`
	Address     *string `json:"address"`
	ImageKey    *string `json:"image_key"`
	IsActive    bool    `json:"is_active"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload seriesRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.Create(request.Context(), CreateInput{
		Name:        payload.Name,
		Description: payload.Description,
		RRule:       payload.RRule,
		StartDate:   payload.StartDate,
		StartTime:   payload.StartTime,
		EndDate:     payload.EndDate,
		Address:     payload.Address,
		ImageKey:    payload.ImageKey,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, item)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var payload seriesRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), UpdateInput{
		Description: payload.Description,
		RRule:       payload.RRule,
		StartDate:   payload.StartDate,
		StartTime:   payload.StartTime,
		EndDate:     payload.EndDate,
		Address:     payload.Address,
		ImageKey:    payload.ImageKey,
		IsActive:    payload.IsActive,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
