// Copyright (c) 2026 Our Philly. All rights reserved.

package bigboard

import (
	"context"
	"time"
)

type Repository interface {
	// ListEventsInWindow returns event-linked submissions intersecting
	// [start, end], each hydrated with its post's storage key.
	ListEventsInWindow(context context.Context, start, end time.Time) ([]*Event, error)

	// ListPosts returns the community grid: all posts, newest first,
	// regardless of event linkage.
	ListPosts(context context.Context, limit, offset int) ([]*Post, int, error)

	FindEventBySlug(context context.Context, slug string) (*Event, error)
	CreatePost(context context.Context, post *Post) error
	CreateEvent(context context.Context, event *Event) error
	DeletePost(context context.Context, id string) error
}
