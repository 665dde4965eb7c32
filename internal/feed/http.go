// Copyright (c) 2026 Our Philly. All rights reserved.

package feed

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ourphilly/ourphilly/internal/calendar"
	"github.com/ourphilly/ourphilly/internal/platform/apperr"
	"github.com/ourphilly/ourphilly/internal/platform/constants"
	"github.com/ourphilly/ourphilly/internal/platform/respond"
	"github.com/ourphilly/ourphilly/pkg/convert"
)

type Handler struct {
	fetcher  *Fetcher
	location *time.Location

	// now is swappable for tests.
	now func() time.Time
}

func NewHandler(fetcher *Fetcher, location *time.Location) *Handler {
	return &Handler{
		fetcher:  fetcher,
		location: location,
		now:      time.Now,
	}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.get)
	return router
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	window, err := handler.window(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	limit := parseLimit(request.URL.Query().Get("limit"))
	sources := handler.fetcher.Fetch(request.Context(), window)

	respond.OK(writer, Aggregate(window, sources, limit))
}

func (handler *Handler) window(request *http.Request) (calendar.Window, error) {
	query := request.URL.Query()
	now := handler.now().In(handler.location)

	switch query.Get("window") {
	case "", "today":
		return calendar.DayWindow(now), nil
	case "tomorrow":
		return calendar.TomorrowWindow(now), nil
	case "weekend":
		return calendar.WeekendWindow(now), nil
	case "month":
		year, month := now.Year(), now.Month()
		if value := query.Get("year"); value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return calendar.Window{}, apperr.ValidationError("year must be a number")
			}
			year = parsed
		}
		if value := query.Get("month"); value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil || parsed < 1 || parsed > 12 {
				return calendar.Window{}, apperr.ValidationError("month must be 1-12")
			}
			month = time.Month(parsed)
		}
		return calendar.MonthWindow(year, month, handler.location), nil
	default:
		return calendar.Window{}, apperr.ValidationError("window must be today, tomorrow, weekend, or month")
	}
}

func parseLimit(value string) int {
	limit := convert.ToIntD(value, constants.DefaultFeedLimit)
	if limit < 1 {
		return constants.DefaultFeedLimit
	}
	if limit > constants.MaxFeedLimit {
		return constants.MaxFeedLimit
	}
	return limit
}
