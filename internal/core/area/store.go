// Copyright (c) 2026 Our Philly. All rights reserved.

package area

import "context"

type Repository interface {
	ListAll(context context.Context) ([]*Area, error)
	FindByID(context context.Context, id string) (*Area, error)
	FindBySlug(context context.Context, slug string) (*Area, error)
	Create(context context.Context, area *Area) error
	Delete(context context.Context, id string) error
}
