// Copyright (c) 2026 Our Philly. All rights reserved.

package tag

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ourphilly/ourphilly/internal/platform/dberr"
)

const tagColumns = `
	id, name, slug, description, rrule, season_start, season_end,
	sort_order, created_at, updated_at
`

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed tag store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
ListAll returns the entire taxonomy in curated order.

Description: The taxonomy is small (dozens of rows), so it is always loaded
whole; seasonal filtering happens against the in-memory slice.

Parameters:
  - context: context.Context

Returns:
  - []*Tag: All tags ordered by sort_order then name
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListAll(context context.Context) ([]*Tag, error) {
	const query = `
		SELECT ` + tagColumns + `
		FROM core.tags
		ORDER BY sort_order ASC, name ASC
	`
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	var tags []*Tag
	for rows.Next() {
		tag, err := scanTag(rows.Scan)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

/*
FindByID retrieves one tag by primary key.
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Tag, error) {
	const query = `SELECT ` + tagColumns + ` FROM core.tags WHERE id = $1`
	return scanTag(func(dest ...any) error {
		return repository.db.QueryRow(context, query, id).Scan(dest...)
	})
}

/*
FindBySlug retrieves one tag by its URL slug.
*/
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Tag, error) {
	const query = `SELECT ` + tagColumns + ` FROM core.tags WHERE slug = $1`
	return scanTag(func(dest ...any) error {
		return repository.db.QueryRow(context, query, slug).Scan(dest...)
	})
}

func scanTag(scan func(dest ...any) error) (*Tag, error) {
	tag := &Tag{}
	err := scan(
		&tag.ID, &tag.Name, &tag.Slug, &tag.Description,
		&tag.RRule, &tag.SeasonStart, &tag.SeasonEnd,
		&tag.SortOrder, &tag.CreatedAt, &tag.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_tag")
	}
	return tag, nil
}

/*
Create inserts a new tag.
*/
func (repository *PostgresRepository) Create(context context.Context, tag *Tag) error {
	const query = `
		INSERT INTO core.tags (
			id, name, slug, description, rrule, season_start, season_end,
			sort_order, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := repository.db.QueryRow(context, query,
		tag.ID, tag.Name, tag.Slug, tag.Description,
		tag.RRule, tag.SeasonStart, tag.SeasonEnd, tag.SortOrder,
	).Scan(&tag.CreatedAt, &tag.UpdatedAt)
	return dberr.Wrap(err, "create_tag")
}

/*
Update modifies a tag's metadata and seasonal configuration.
*/
func (repository *PostgresRepository) Update(context context.Context, tag *Tag) error {
	const query = `
		UPDATE core.tags
		SET description = $2, rrule = $3, season_start = $4, season_end = $5,
		    sort_order = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := repository.db.QueryRow(context, query,
		tag.ID, tag.Description, tag.RRule, tag.SeasonStart, tag.SeasonEnd, tag.SortOrder,
	).Scan(&tag.UpdatedAt)
	return dberr.Wrap(err, "update_tag")
}

/*
Delete removes a tag; taggings cascade away with it.
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	const query = `DELETE FROM core.tags WHERE id = $1`
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_tag")
}

/*
ListForEntity returns the tags applied to one taggable row.
*/
func (repository *PostgresRepository) ListForEntity(context context.Context, taggableType TaggableType, taggableID string) ([]*Tag, error) {
	const query = `
		SELECT ` + tagColumns + `
		FROM core.tags t
		JOIN core.taggings g ON g.tag_id = t.id
		WHERE g.taggable_type = $1 AND g.taggable_id = $2
		ORDER BY t.sort_order ASC, t.name ASC
	`
	rows, err := repository.db.Query(context, query, taggableType, taggableID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags_for_entity")
	}
	defer rows.Close()

	var tags []*Tag
	for rows.Next() {
		tag, err := scanTag(rows.Scan)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

/*
ListEntityIDs returns the IDs of rows of one type carrying the tag.
*/
func (repository *PostgresRepository) ListEntityIDs(context context.Context, tagID string, taggableType TaggableType) ([]string, error) {
	const query = `
		SELECT taggable_id
		FROM core.taggings
		WHERE tag_id = $1 AND taggable_type = $2
	`
	rows, err := repository.db.Query(context, query, tagID, taggableType)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tagged_entity_ids")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_tagged_entity_id")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

/*
Apply links a tag to an entity, idempotently.
*/
func (repository *PostgresRepository) Apply(context context.Context, tagging *Tagging) error {
	const query = `
		INSERT INTO core.taggings (tag_id, taggable_type, taggable_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT DO NOTHING
	`
	_, err := repository.db.Exec(context, query, tagging.TagID, tagging.TaggableType, tagging.TaggableID)
	return dberr.Wrap(err, "apply_tagging")
}

/*
Remove unlinks a tag from an entity.
*/
func (repository *PostgresRepository) Remove(context context.Context, tagging *Tagging) error {
	const query = `
		DELETE FROM core.taggings
		WHERE tag_id = $1 AND taggable_type = $2 AND taggable_id = $3
	`
	_, err := repository.db.Exec(context, query, tagging.TagID, tagging.TaggableType, tagging.TaggableID)
	return dberr.Wrap(err, "remove_tagging")
}
