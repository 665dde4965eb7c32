// Copyright (c) 2026 Our Philly. All rights reserved.

package group

import (
	"context"
	"time"
)

type Repository interface {
	List(context context.Context, filter Filter, limit, offset int) ([]*Group, int, error)
	FindByID(context context.Context, id string) (*Group, error)
	FindBySlug(context context.Context, slug string) (*Group, error)
	Create(context context.Context, group *Group) error
	Update(context context.Context, group *Group) error
	SoftDelete(context context.Context, id string) error

	// Events
	ListEventsInWindow(context context.Context, start, end time.Time) ([]*Event, error)
	ListEventsForGroup(context context.Context, groupID string) ([]*Event, error)
	FindEventByID(context context.Context, id string) (*Event, error)
	CreateEvent(context context.Context, event *Event) error
	DeleteEvent(context context.Context, id string) error

	// Social
	Follow(context context.Context, groupID, userID string) error
	Unfollow(context context.Context, groupID, userID string) error
}
