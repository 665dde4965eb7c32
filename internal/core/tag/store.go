// Copyright (c) 2026 Our Philly. All rights reserved.

package tag

import "context"

type Repository interface {
	// ListAll returns the full taxonomy in sort order; activation
	// filtering is a date question answered in memory.
	ListAll(context context.Context) ([]*Tag, error)

	FindByID(context context.Context, id string) (*Tag, error)
	FindBySlug(context context.Context, slug string) (*Tag, error)
	Create(context context.Context, tag *Tag) error
	Update(context context.Context, tag *Tag) error
	Delete(context context.Context, id string) error

	// ListForEntity returns the tags applied to one taggable row.
	ListForEntity(context context.Context, taggableType TaggableType, taggableID string) ([]*Tag, error)
	// ListEntityIDs returns the IDs of rows of one type carrying the tag.
	ListEntityIDs(context context.Context, tagID string, taggableType TaggableType) ([]string, error)
	Apply(context context.Context, tagging *Tagging) error
	Remove(context context.Context, tagging *Tagging) error
}
