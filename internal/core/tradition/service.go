// Copyright (c) 2026 Our Philly. All rights reserved.

package tradition

import (
	"context"
	"log/slog"
	"time"

	"github.com/ourphilly/ourphilly/internal/calendar"
	"github.com/ourphilly/ourphilly/internal/platform/validate"
	"github.com/ourphilly/ourphilly/pkg/slug"
	"github.com/ourphilly/ourphilly/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	loc    *time.Location
	logger *slog.Logger
}

func NewService(repo Repository, loc *time.Location, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		loc:    loc,
		logger: logger,
	}
}

// ListInWindow parses every tradition's free-text dates and keeps those whose
// span overlaps [start, end]. Unparseable rows are skipped, not surfaced as
// errors; one bad legacy row must not break the feed.
func (service *Service) ListInWindow(context context.Context, start, end time.Time) ([]*Tradition, error) {
	all, err := service.repo.ListAll(context)
	if err != nil {
		return nil, err
	}

	window := calendar.Window{Start: start, End: end}

	var matched []*Tradition
	for _, tradition := range all {
		spanStart, spanEnd, ok := tradition.Span(service.loc)
		if !ok {
			service.logger.Warn("tradition_dates_unparseable",
				slog.String("id", tradition.ID),
				slog.String("dates", tradition.Dates),
			)
			continue
		}
		if window.Overlaps(spanStart, spanEnd) {
			matched = append(matched, tradition)
		}
	}

	return matched, nil
}

func (service *Service) List(context context.Context, limit, offset int) ([]*Tradition, int, error) {
	return service.repo.List(context, limit, offset)
}

func (service *Service) GetBySlug(context context.Context, slugValue string) (*Tradition, error) {
	return service.repo.FindBySlug(context, slugValue)
}

// CreateInput holds the fields accepted when curating a new tradition.
type CreateInput struct {
	Name        string
	Description *string
	Dates       string
	EndDate     *string
	ImageURL    *string
}

// Create validates and persists a tradition. The Dates text must contain at
// least one M/D/YYYY token; that is the row's only date invariant.
func (service *Service) Create(context context.Context, input CreateInput) (*Tradition, error) {
	_, datesOK := parseToken(input.Dates, service.loc)

	v := &validate.Validator{}
	v.Required("name", input.Name).
		MaxLen("name", input.Name, 200).
		Required("dates", input.Dates).
		Custom("dates", input.Dates != "" && !datesOK, "Must contain an M/D/YYYY date")
	if err := v.Err(); err != nil {
		return nil, err
	}

	tradition := &Tradition{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Description: input.Description,
		Slug:        slug.From(input.Name),
		Dates:       input.Dates,
		EndDate:     input.EndDate,
		ImageURL:    input.ImageURL,
	}

	if err := service.repo.Create(context, tradition); err != nil {
		return nil, err
	}

	service.logger.Info("tradition_created", slog.String("id", tradition.ID), slog.String("slug", tradition.Slug))
	return tradition, nil
}

func (service *Service) Update(context context.Context, id string, input CreateInput) (*Tradition, error) {
	_, datesOK := parseToken(input.Dates, service.loc)

	v := &validate.Validator{}
	v.Required("name", input.Name).
		Required("dates", input.Dates).
		Custom("dates", input.Dates != "" && !datesOK, "Must contain an M/D/YYYY date")
	if err := v.Err(); err != nil {
		return nil, err
	}

	tradition := &Tradition{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Dates:       input.Dates,
		EndDate:     input.EndDate,
		ImageURL:    input.ImageURL,
	}
	if err := service.repo.Update(context, tradition); err != nil {
		return nil, err
	}
	return tradition, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}

func parseToken(s string, loc *time.Location) (time.Time, bool) {
	probe := Tradition{Dates: s}
	start, _, ok := probe.Span(loc)
	return start, ok
}
