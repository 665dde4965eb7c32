// Copyright (c) 2026 Our Philly. All rights reserved.

package event

import (
	"context"
	"time"
)

type Repository interface {
	// ListInWindow returns events whose [start_date, end_date] range
	// intersects [start, end]. Rows with no end date are treated as
	// single-day.
	ListInWindow(context context.Context, start, end time.Time) ([]*Event, error)
	List(context context.Context, limit, offset int) ([]*Event, int, error)
	FindByID(context context.Context, id string) (*Event, error)
	FindBySlug(context context.Context, slug string) (*Event, error)
	Create(context context.Context, event *Event) error
	Update(context context.Context, event *Event) error
	SoftDelete(context context.Context, id string) error
}
