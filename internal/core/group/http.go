// Copyright (c) 2026 Our Philly. All rights reserved.

package group

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ourphilly/ourphilly/internal/platform/middleware"
	requestutil "github.com/ourphilly/ourphilly/internal/platform/request"
	"github.com/ourphilly/ourphilly/internal/platform/respond"
	"github.com/ourphilly/ourphilly/internal/platform/sec"
	"github.com/ourphilly/ourphilly/pkg/convert"
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
	router.Get("/{slug}/events", handler.listEvents)

	// Following requires a signed-in member.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/{slug}/follow", handler.follow)
		r.Delete("/{slug}/follow", handler.unfollow)
	})

	// Group and event management is organizer work.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleOrganizer))
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
		r.Post("/{id}/events", handler.createEvent)
		r.Delete("/events/{id}", handler.deleteEvent)
	})

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	query := request.URL.Query()

	filter := Filter{
		Query: query.Get("q"),
		Sort:  query.Get("sort"),
	}
	if areaID := query.Get("area_id"); areaID != "" {
		filter.AreaID = &areaID
	}
	if value := query.Get("is_active"); value != "" {
		active := convert.ToBool(value)
		filter.IsActive = &active
	}

	groups, total, err := handler.service.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, groups, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	group, err := handler.service.GetBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, group)
}

func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	group, err := handler.service.GetBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	events, err := handler.service.ListEventsForGroup(request.Context(), group.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, events)
}

type createRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Instagram   *string `json:"instagram"`
	AreaID      *string `json:"area_id"`
	ImageKey    *string `json:"image_key"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload createRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	group, err := handler.service.Create(request.Context(), CreateInput{
		Name:        payload.Name,
		Description: payload.Description,
		Website:     payload.Website,
		Instagram:   payload.Instagram,
		AreaID:      payload.AreaID,
		ImageKey:    payload.ImageKey,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, group)
}

type updateRequest struct {
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Instagram   *string `json:"instagram"`
	AreaID      *string `json:"area_id"`
	ImageKey    *string `json:"image_key"`
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var payload updateRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	group, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), UpdateInput{
		Description: payload.Description,
		Website:     payload.Website,
		Instagram:   payload.Instagram,
		AreaID:      payload.AreaID,
		ImageKey:    payload.ImageKey,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, group)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

type eventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
}

func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	var payload eventRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.CreateEvent(request.Context(), EventInput{
		GroupID:     requestutil.ID(request, "id"),
		Title:       payload.Title,
		Description: payload.Description,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, event)
}

func (handler *Handler) deleteEvent(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteEvent(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) follow(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	group, err := handler.service.GetBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Follow(request.Context(), group.ID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) unfollow(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	group, err := handler.service.GetBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Unfollow(request.Context(), group.ID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
