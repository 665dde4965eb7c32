// Copyright (c) 2026 Our Philly. All rights reserved.

package bigboard

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

// ListEventsInWindow returns event-linked submissions for the feed. The
// storage key from each linked post is resolved to a public URL here; the
// two-step indirection (key on the post, URL at read time) is deliberate.
func (service *Service) ListEventsInWindow(context context.Context, start, end time.Time) ([]*Event, error) {
	return service.repo.ListEventsInWindow(context, start, end)
}

// ImageURL resolves an event's hydrated storage key to a public URL.
func (service *Service) ImageURL(event *Event) string {
	return service.resolver.PublicURL(event.ImageKey)
}

// ListPosts returns the community grid with every image resolved.
func (service *Service) ListPosts(context context.Context, limit, offset int) ([]*Post, int, error) {
	posts, total, err := service.repo.ListPosts(context, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	for _, post := range posts {
		post.ImageURL = service.resolver.PublicURL(post.ImageKey)
	}

	return posts, total, nil
}

func (service *Service) GetEventBySlug(context context.Context, slugValue string) (*Event, error) {
	return service.repo.FindEventBySlug(context, slugValue)
}

// SubmitInput holds a community submission: a flyer image key, optionally
// with the lightweight event record to pair with it.
type SubmitInput struct {
	UserID   string
	ImageKey string

	Title     string // empty means image-only post
	StartDate string
	EndDate   *string
	StartTime *string
}

// Submit persists a post and, when a title is present, its linked event.
func (service *Service) Submit(context context.Context, input SubmitInput) (*Post, error) {
	v := &validate.Validator{}
	v.Required("image_key", input.ImageKey).
		Required("user_id", input.UserID)
	if input.Title != "" {
		v.Required("start_date", input.StartDate)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	post := &Post{
		ID:       uuidv7.New(),
		UserID:   input.UserID,
		ImageKey: input.ImageKey,
	}
	if err := service.repo.CreatePost(context, post); err != nil {
		return nil, err
	}

	if input.Title != "" {
		event := &Event{
			ID:        uuidv7.New(),
			PostID:    post.ID,
			Title:     input.Title,
			Slug:      slug.From(input.Title),
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			StartTime: input.StartTime,
		}
		if err := service.repo.CreateEvent(context, event); err != nil {
			return nil, err
		}
		post.EventID = &event.ID
	}

	post.ImageURL = service.resolver.PublicURL(post.ImageKey)
	service.logger.Info("big_board_submission", slog.String("post_id", post.ID), slog.Bool("has_event", post.EventID != nil))
	return post, nil
}

func (service *Service) DeletePost(context context.Context, id string) error {
	return service.repo.DeletePost(context, id)
}
