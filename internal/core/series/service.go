// Copyright (c) 2026 Our Philly. All rights reserved.

package series

import (
	"context"
	"log/slog"
	"time"

	"github.com/ourphilly/ourphilly/internal/calendar"
	"github.com/ourphilly/ourphilly/internal/platform/apperr"
	"github.com/ourphilly/ourphilly/internal/platform/storage"
	"github.com/ourphilly/ourphilly/internal/platform/validate"
	"github.com/ourphilly/ourphilly/pkg/slug"
	"github.com/ourphilly/ourphilly/pkg/uuidv7"

	"github.com/teambition/rrule-go"
)

type Service struct {
	repo     Repository
	resolver *storage.Resolver
	location *time.Location
	logger   *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

func NewService(repo Repository, resolver *storage.Resolver, location *time.Location, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// ListOccurrencesInWindow expands every active series against [start, end]
// and returns the concrete occurrences, unordered across series.
func (service *Service) ListOccurrencesInWindow(context context.Context, start, end time.Time) ([]Occurrence, error) {
	all, err := service.repo.ListActive(context)
	if err != nil {
		return nil, err
	}

	var occurrences []Occurrence
	for _, item := range all {
		service.resolveImage(item)
		occurrences = append(occurrences, Expand(item, start, end, service.location, service.logger)...)
	}
	return occurrences, nil
}

// NextOccurrenceDate returns the ISO date of the first occurrence on or
// after today, or nil when the rule never fires again.
func (service *Service) NextOccurrenceDate(item *Series) *string {
	next, ok := NextOccurrence(item, service.now().In(service.location), service.location, service.logger)
	if !ok {
		return nil
	}
	date := calendar.FormatISODate(next)
	return &date
}

func (service *Service) List(context context.Context, limit, offset int) ([]*Series, int, error) {
	all, total, err := service.repo.List(context, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for _, item := range all {
		service.resolveImage(item)
	}
	return all, total, nil
}

func (service *Service) GetBySlug(context context.Context, slugValue string) (*Series, error) {
	item, err := service.repo.FindBySlug(context, slugValue)
	if err != nil {
		return nil, err
	}
	service.resolveImage(item)
	return item, nil
}

// GetOccurrence resolves one "/series/{slug}/{date}" detail page: the date
// must be one the rule actually lands on.
func (service *Service) GetOccurrence(context context.Context, slugValue, date string) (*Occurrence, error) {
	item, err := service.GetBySlug(context, slugValue)
	if err != nil {
		return nil, err
	}

	day, ok := calendar.ParseISODateLocal(date, service.location)
	if !ok {
		return nil, apperr.ValidationError("date must be YYYY-MM-DD")
	}

	window := calendar.DayWindow(day)
	hits := Expand(item, window.Start, window.End, service.location, service.logger)
	for index := range hits {
		if hits[index].Date == date {
			return &hits[index], nil
		}
	}
	return nil, apperr.NotFound("occurrence")
}

// CreateInput holds the fields a new series is registered with.
type CreateInput struct {
	Name        string
	Description *string
	RRule       string
	StartDate   string
	StartTime   *string
	EndDate     *string
	Address     *string
	ImageKey    *string
}

func (service *Service) Create(context context.Context, input CreateInput) (*Series, error) {
	v := &validate.Validator{}
	v.Required("name", input.Name).
		Required("rrule", input.RRule).
		Required("start_date", input.StartDate)

	// Reject rules we could never expand; a stored series must at least parse.
	if input.RRule != "" {
		if _, err := rrule.StrToRRule(input.RRule); err != nil {
			v.Custom("rrule", true, "must be a valid recurrence rule")
		}
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	item := &Series{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Slug:        slug.From(input.Name),
		Description: input.Description,
		RRule:       input.RRule,
		StartDate:   input.StartDate,
		StartTime:   input.StartTime,
		EndDate:     input.EndDate,
		Address:     input.Address,
		ImageKey:    input.ImageKey,
		IsActive:    true,
	}
	if err := service.repo.Create(context, item); err != nil {
		return nil, err
	}

	service.logger.Info("series_created", slog.String("series_id", item.ID), slog.String("slug", item.Slug))
	service.resolveImage(item)
	return item, nil
}

// UpdateInput carries the mutable series fields.
type UpdateInput struct {
	Description *string
	RRule       string
	StartDate   string
	StartTime   *string
	EndDate     *string
	Address     *string
	ImageKey    *string
	IsActive    bool
}

func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Series, error) {
	item, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	v := &validate.Validator{}
	v.Required("rrule", input.RRule).
		Required("start_date", input.StartDate)
	if input.RRule != "" {
		if _, err := rrule.StrToRRule(input.RRule); err != nil {
			v.Custom("rrule", true, "must be a valid recurrence rule")
		}
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	item.Description = input.Description
	item.RRule = input.RRule
	item.StartDate = input.StartDate
	item.StartTime = input.StartTime
	item.EndDate = input.EndDate
	item.Address = input.Address
	item.ImageKey = input.ImageKey
	item.IsActive = input.IsActive

	if err := service.repo.Update(context, item); err != nil {
		return nil, err
	}
	service.resolveImage(item)
	return item, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	return service.repo.SoftDelete(context, id)
}

func (service *Service) resolveImage(item *Series) {
	if item.ImageKey == nil {
		return
	}
	url := service.resolver.PublicURL(*item.ImageKey)
	item.ImageURL = &url
}
