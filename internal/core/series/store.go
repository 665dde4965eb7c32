// Copyright (c) 2026 Our Philly. All rights reserved.

package series

import "context"

type Repository interface {
	// ListActive returns every live series. Expansion happens in memory,
	// so window queries load all candidates rather than filtering in SQL.
	ListActive(context context.Context) ([]*Series, error)

	List(context context.Context, limit, offset int) ([]*Series, int, error)
	FindByID(context context.Context, id string) (*Series, error)
	FindBySlug(context context.Context, slug string) (*Series, error)
	Create(context context.Context, series *Series) error
	Update(context context.Context, series *Series) error
	SoftDelete(context context.Context, id string) error
}
