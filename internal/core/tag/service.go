// Copyright (c) 2026 Our Philly. All rights reserved.

package tag

import (
	"context"
	"log/slog"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/ourphilly/ourphilly/internal/platform/validate"
	"github.com/ourphilly/ourphilly/pkg/slug"
	"github.com/ourphilly/ourphilly/pkg/uuidv7"
)

type Service struct {
	repo     Repository
	location *time.Location
	logger   *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

func NewService(repo Repository, location *time.Location, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// ListActive returns the tags that should be surfaced today: every
// evergreen tag plus the seasonal ones whose window covers the current day.
func (service *Service) ListActive(context context.Context) ([]*Tag, error) {
	all, err := service.repo.ListAll(context)
	if err != nil {
		return nil, err
	}

	today := service.now().In(service.location)
	active := make([]*Tag, 0, len(all))
	for _, tag := range all {
		if tag.ActiveOn(today, service.location, service.logger) {
			active = append(active, tag)
		}
	}
	return active, nil
}

// ListAll returns the whole taxonomy, seasonal or not, for admin screens.
func (service *Service) ListAll(context context.Context) ([]*Tag, error) {
	return service.repo.ListAll(context)
}

func (service *Service) GetBySlug(context context.Context, slugValue string) (*Tag, error) {
	return service.repo.FindBySlug(context, slugValue)
}

func (service *Service) ListForEntity(context context.Context, taggableType TaggableType, taggableID string) ([]*Tag, error) {
	return service.repo.ListForEntity(context, taggableType, taggableID)
}

func (service *Service) ListEntityIDs(context context.Context, tagID string, taggableType TaggableType) ([]string, error) {
	return service.repo.ListEntityIDs(context, tagID, taggableType)
}

// CreateInput holds the fields a new tag is registered with. A tag may
// carry a recurrence rule or season bounds, not both.
type CreateInput struct {
	Name        string
	Description *string
	RRule       *string
	SeasonStart *string
	SeasonEnd   *string
	SortOrder   int
}

func (service *Service) Create(context context.Context, input CreateInput) (*Tag, error) {
	if err := validateSeasonal(input.Name, input.RRule, input.SeasonStart, input.SeasonEnd); err != nil {
		return nil, err
	}

	tag := &Tag{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Slug:        slug.From(input.Name),
		Description: input.Description,
		RRule:       input.RRule,
		SeasonStart: input.SeasonStart,
		SeasonEnd:   input.SeasonEnd,
		SortOrder:   input.SortOrder,
	}
	if err := service.repo.Create(context, tag); err != nil {
		return nil, err
	}

	service.logger.Info("tag_created",
		slog.String("tag_id", tag.ID),
		slog.String("slug", tag.Slug),
		slog.Bool("seasonal", tag.Seasonal()),
	)
	return tag, nil
}

// UpdateInput carries the mutable tag fields.
type UpdateInput struct {
	Description *string
	RRule       *string
	SeasonStart *string
	SeasonEnd   *string
	SortOrder   int
}

func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Tag, error) {
	tag, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if err := validateSeasonal(tag.Name, input.RRule, input.SeasonStart, input.SeasonEnd); err != nil {
		return nil, err
	}

	tag.Description = input.Description
	tag.RRule = input.RRule
	tag.SeasonStart = input.SeasonStart
	tag.SeasonEnd = input.SeasonEnd
	tag.SortOrder = input.SortOrder

	if err := service.repo.Update(context, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}

func (service *Service) Apply(context context.Context, tagging *Tagging) error {
	if _, err := service.repo.FindByID(context, tagging.TagID); err != nil {
		return err
	}
	return service.repo.Apply(context, tagging)
}

func (service *Service) Remove(context context.Context, tagging *Tagging) error {
	return service.repo.Remove(context, tagging)
}

func validateSeasonal(name string, rrulePtr, seasonStart, seasonEnd *string) error {
	v := &validate.Validator{}
	v.Required("name", name)

	hasRule := rrulePtr != nil && *rrulePtr != ""
	hasBounds := seasonStart != nil || seasonEnd != nil

	v.Custom("rrule", hasRule && hasBounds, "cannot combine a recurrence rule with season bounds")
	v.Custom("season_end", (seasonStart == nil) != (seasonEnd == nil), "season bounds must be set together")

	if hasRule {
		if _, err := rrule.StrToRRule(*rrulePtr); err != nil {
			v.Custom("rrule", true, "must be a valid recurrence rule")
		}
	}
	return v.Err()
}
