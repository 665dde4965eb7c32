// Copyright (c) 2026 Our Philly. All rights reserved.

package digest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ourphilly/ourphilly/internal/platform/middleware"
	requestutil "github.com/ourphilly/ourphilly/internal/platform/request"
	"github.com/ourphilly/ourphilly/internal/platform/respond"
	"github.com/ourphilly/ourphilly/internal/platform/sec"
	"github.com/ourphilly/ourphilly/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/subscribe", handler.subscribe)
	router.Post("/unsubscribe", handler.unsubscribe)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Get("/preview", handler.preview)
		r.Post("/send", handler.send)
	})

	return router
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (handler *Handler) subscribe(writer http.ResponseWriter, request *http.Request) {
	var payload subscribeRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("email", payload.Email).Email("email", payload.Email)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.subscribers.Subscribe(request.Context(), payload.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]string{"email": payload.Email})
}

func (handler *Handler) unsubscribe(writer http.ResponseWriter, request *http.Request) {
	var payload subscribeRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.subscribers.Unsubscribe(request.Context(), payload.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// preview returns the rendered issue without sending anything.
func (handler *Handler) preview(writer http.ResponseWriter, request *http.Request) {
	issue, err := handler.service.Build(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	html, err := render(issue)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"week_start":      issue.WeekStart,
		"week_end":        issue.WeekEnd,
		"tradition_count": issue.TraditionCount,
		"item_count":      len(issue.Items),
		"html":            html,
	})
}

func (handler *Handler) send(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.SendWeekly(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"status": "sent"})
}
