// Copyright (c) 2026 Our Philly. All rights reserved.

package group

import (
	"context"
	"log/slog"
	"time"

	"github.com/ourphilly/ourphilly/internal/platform/storage"
	"github.com/ourphilly/ourphilly/internal/platform/validate"
	"github.com/ourphilly/ourphilly/pkg/slug"
	"github.com/ourphilly/ourphilly/pkg/uuidv7"
)

type Service struct {
	repo     Repository
	resolver *storage.Resolver
	logger   *slog.Logger
}

func NewService(repo Repository, resolver *storage.Resolver, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

// ListEventsInWindow returns group events for the feed, each carrying its
// owning group's denormalized name, slug, and resolved avatar URL.
func (service *Service) ListEventsInWindow(context context.Context, start, end time.Time) ([]*Event, error) {
	events, err := service.repo.ListEventsInWindow(context, start, end)
	if err != nil {
		return nil, err
	}
	for _, event := range events {
		event.GroupImageURL = resolveKey(service.resolver, event.GroupImageKey)
	}
	return events, nil
}

func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Group, int, error) {
	groups, total, err := service.repo.List(context, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for _, group := range groups {
		group.ImageURL = resolveKeyPtr(service.resolver, group.ImageKey)
	}
	return groups, total, nil
}

func (service *Service) GetBySlug(context context.Context, slugValue string) (*Group, error) {
	group, err := service.repo.FindBySlug(context, slugValue)
	if err != nil {
		return nil, err
	}
	group.ImageURL = resolveKeyPtr(service.resolver, group.ImageKey)
	return group, nil
}

func (service *Service) ListEventsForGroup(context context.Context, groupID string) ([]*Event, error) {
	events, err := service.repo.ListEventsForGroup(context, groupID)
	if err != nil {
		return nil, err
	}
	for _, event := range events {
		event.GroupImageURL = resolveKey(service.resolver, event.GroupImageKey)
	}
	return events, nil
}

// CreateInput holds the fields a new group is registered with.
type CreateInput struct {
	Name        string
	Description *string
	Website     *string
	Instagram   *string
	AreaID      *string
	ImageKey    *string
}

func (service *Service) Create(context context.Context, input CreateInput) (*Group, error) {
	v := &validate.Validator{}
	v.Required("name", input.Name).
		MaxLen("name", input.Name, 160)
	if err := v.Err(); err != nil {
		return nil, err
	}

	group := &Group{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Slug:        slug.From(input.Name),
		Description: input.Description,
		Website:     input.Website,
		Instagram:   input.Instagram,
		AreaID:      input.AreaID,
		ImageKey:    input.ImageKey,
		IsActive:    true,
	}
	if err := service.repo.Create(context, group); err != nil {
		return nil, err
	}

	service.logger.Info("group_created", slog.String("group_id", group.ID), slog.String("slug", group.Slug))
	group.ImageURL = resolveKeyPtr(service.resolver, group.ImageKey)
	return group, nil
}

// UpdateInput carries the mutable group fields. Nil pointers clear the value.
type UpdateInput struct {
	Description *string
	Website     *string
	Instagram   *string
	AreaID      *string
	ImageKey    *string
}

func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Group, error) {
	group, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	group.Description = input.Description
	group.Website = input.Website
	group.Instagram = input.Instagram
	group.AreaID = input.AreaID
	group.ImageKey = input.ImageKey

	if err := service.repo.Update(context, group); err != nil {
		return nil, err
	}
	group.ImageURL = resolveKeyPtr(service.resolver, group.ImageKey)
	return group, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	return service.repo.SoftDelete(context, id)
}

// EventInput holds the fields for a group-hosted event.
type EventInput struct {
	GroupID     string
	Title       string
	Description *string
	StartDate   string
	EndDate     *string
	StartTime   *string
	EndTime     *string
}

func (service *Service) CreateEvent(context context.Context, input EventInput) (*Event, error) {
	v := &validate.Validator{}
	v.Required("group_id", input.GroupID).
		Required("title", input.Title).
		Required("start_date", input.StartDate)
	if err := v.Err(); err != nil {
		return nil, err
	}

	// Owning group must exist and be live.
	if _, err := service.repo.FindByID(context, input.GroupID); err != nil {
		return nil, err
	}

	event := &Event{
		ID:          uuidv7.New(),
		GroupID:     input.GroupID,
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
	}
	if err := service.repo.CreateEvent(context, event); err != nil {
		return nil, err
	}

	service.logger.Info("group_event_created", slog.String("event_id", event.ID), slog.String("group_id", event.GroupID))
	return event, nil
}

func (service *Service) DeleteEvent(context context.Context, id string) error {
	return service.repo.DeleteEvent(context, id)
}

func (service *Service) Follow(context context.Context, groupID, userID string) error {
	if _, err := service.repo.FindByID(context, groupID); err != nil {
		return err
	}
	return service.repo.Follow(context, groupID, userID)
}

func (service *Service) Unfollow(context context.Context, groupID, userID string) error {
	return service.repo.Unfollow(context, groupID, userID)
}

// resolveKey turns an optional storage key into a public URL, empty when the
// key is absent.
func resolveKey(resolver *storage.Resolver, key *string) string {
	if key == nil {
		return ""
	}
	return resolver.PublicURL(*key)
}

func resolveKeyPtr(resolver *storage.Resolver, key *string) *string {
	if key == nil {
		return nil
	}
	url := resolver.PublicURL(*key)
	return &url
}
