// Copyright (c) 2026 Our Philly. All rights reserved.

package tag

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/ourphilly/ourphilly/internal/platform/middleware"
	requestutil "github.com/ourphilly/ourphilly/internal/platform/request"
	"github.com/ourphilly/ourphilly/internal/platform/respond"
	"github.com/ourphilly/ourphilly/internal/platform/sec"
	"github.com/ourphilly/ourphilly/pkg/query"
	"github.com/ourphilly/ourphilly/pkg/slice"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listActive)
	router.Get("/{slug}", handler.getBySlug)

	// Taxonomy management is moderator work.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleModerator))
		r.Get("/all", handler.listAll)
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
		r.Post("/{id}/taggings", handler.apply)
		r.Delete("/{id}/taggings", handler.remove)
	})

	return router
}

func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ?slugs=markets,holiday narrows the active set to the named tags.
	if wanted := query.StringSlice(request.URL.Query().Get("slugs")); len(wanted) > 0 {
		tags = slice.Filter(tags, func(tag *Tag) bool {
			return slices.Contains(wanted, tag.Slug)
		})
	}

	respond.OK(writer, tags)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	tag, err := handler.service.GetBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}

type tagRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	RRule       *string `json:"rrule"`
	SeasonStart *string `json:"season_start"`
	SeasonEnd   *string `json:"season_end"`
	SortOrder   int     `json:"sort_order"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload tagRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag, err := handler.service.Create(request.Context(), CreateInput{
		Name:        payload.Name,
		Description: payload.Description,
		RRule:       payload.RRule,
		SeasonStart: payload.SeasonStart,
		SeasonEnd:   payload.SeasonEnd,
		SortOrder:   payload.SortOrder,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, tag)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var payload tagRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), UpdateInput{
		Description: payload.Description,
		RRule:       payload.RRule,
		SeasonStart: payload.SeasonStart,
		SeasonEnd:   payload.SeasonEnd,
		SortOrder:   payload.SortOrder,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

type taggingRequest struct {
	TaggableType string `json:"taggable_type"`
	TaggableID   string `json:"taggable_id"`
}

func (handler *Handler) apply(writer http.ResponseWriter, request *http.Request) {
	var payload taggingRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tagging := &Tagging{
		TagID:        requestutil.ID(request, "id"),
		TaggableType: TaggableType(payload.TaggableType),
		TaggableID:   payload.TaggableID,
	}
	if err := handler.service.Apply(request.Context(), tagging); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, tagging)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	var payload taggingRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tagging := &Tagging{
		TagID:        requestutil.ID(request, "id"),
		TaggableType: TaggableType(payload.TaggableType),
		TaggableID:   payload.TaggableID,
	}
	if err := handler.service.Remove(request.Context(), tagging); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
