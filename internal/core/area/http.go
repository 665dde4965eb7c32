// Copyright (c) 2026 Our Philly. All rights reserved.

package area

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ourphilly/ourphilly/internal/platform/middleware"
	requestutil "github.com/ourphilly/ourphilly/internal/platform/request"
	"github.com/ourphilly/ourphilly/internal/platform/respond"
	"github.com/ourphilly/ourphilly/internal/platform/sec"
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

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Post("/", handler.create)
		r.Delete("/{id}", handler.delete)
	})

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	areas, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, areas)
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	area, err := handler.service.GetBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, area)
}

type createRequest struct {
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload createRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	area, err := handler.service.Create(request.Context(), CreateInput{
		Name:      payload.Name,
		SortOrder: payload.SortOrder,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, area)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
