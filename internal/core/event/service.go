// Copyright (c) 2026 Our Philly. All rights reserved.

package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/ourphilly/ourphilly/internal/platform/validate"
	"github.com/ourphilly/ourphilly/pkg/slug"
	"github.com/ourphilly/ourphilly/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListInWindow(context context.Context, start, end time.Time) ([]*Event, error) {
	return service.repo.ListInWindow(context, start, end)
}

func (service *Service) List(context context.Context, limit, offset int) ([]*Event, int, error) {
	return service.repo.List(context, limit, offset)
}

func (service *Service) Get(context context.Context, id string) (*Event, error) {
	return service.repo.FindByID(context, id)
}

func (service *Service) GetBySlug(context context.Context, slugValue string) (*Event, error) {
	return service.repo.FindBySlug(context, slugValue)
}

// CreateInput holds the fields accepted when posting a new event.
type CreateInput struct {
	Name        string
	Description *string
	VenueID     *string
	StartDate   string
	EndDate     *string
	StartTime   *string
	EndTime     *string
	ImageURL    *string
}

// Create validates and persists a new one-off event.
//
// The invariant start_date <= end_date is enforced here so no row with an
// inverted range ever reaches the aggregator.
func (service *Service) Create(context context.Context, input CreateInput) (*Event, error) {
	v := &validate.Validator{}
	v.Required("name", input.Name).
		MaxLen("name", input.Name, 200).
		Required("start_date", input.StartDate).
		Custom("start_date", !isISODate(input.StartDate), "Must be a YYYY-MM-DD date")

	if input.EndDate != nil {
		v.Custom("end_date", !isISODate(*input.EndDate), "Must be a YYYY-MM-DD date").
			Custom("end_date", isISODate(*input.EndDate) && *input.EndDate < input.StartDate, "Must not precede start_date")
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	event := &Event{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Description: input.Description,
		Slug:        slug.From(input.Name),
		VenueID:     input.VenueID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		ImageURL:    input.ImageURL,
	}

	if err := service.repo.Create(context, event); err != nil {
		return nil, err
	}

	service.logger.Info("event_created", slog.String("id", event.ID), slog.String("slug", event.Slug))
	return event, nil
}

// UpdateInput carries the mutable event fields.
type UpdateInput struct {
	Name        string
	Description *string
	StartDate   string
	EndDate     *string
	StartTime   *string
	EndTime     *string
	ImageURL    *string
}

func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Event, error) {
	v := &validate.Validator{}
	v.Required("name", input.Name).
		Required("start_date", input.StartDate).
		Custom("start_date", !isISODate(input.StartDate), "Must be a YYYY-MM-DD date")
	if input.EndDate != nil {
		v.Custom("end_date", *input.EndDate < input.StartDate, "Must not precede start_date")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	event, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	event.Name = input.Name
	event.Description = input.Description
	event.StartDate = input.StartDate
	event.EndDate = input.EndDate
	event.StartTime = input.StartTime
	event.EndTime = input.EndTime
	event.ImageURL = input.ImageURL

	if err := service.repo.Update(context, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	return service.repo.SoftDelete(context, id)
}

// isISODate is a cheap shape check; full range validation happens in the
// calendar package at read time.
func isISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
