// Copyright (c) 2026 Our Philly. All rights reserved.

package tradition

import "context"

type Repository interface {
	// ListAll returns every tradition row. Window filtering happens after
	// free-text parsing, which SQL cannot do, so the store returns all rows
	// and the caller filters.
	ListAll(context context.Context) ([]*Tradition, error)
	List(context context.Context, limit, offset int) ([]*Tradition, int, error)
	FindBySlug(context context.Context, slug string) (*Tradition, error)
	Create(context context.Context, tradition *Tradition) error
	Update(context context.Context, tradition *Tradition) error
	Delete(context context.Context, id string) error
}
