// Copyright (c) 2026 Our Philly. All rights reserved.

package area

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ourphilly/ourphilly/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed area store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
ListAll returns the full neighborhood directory in curated order.
*/
func (repository *PostgresRepository) ListAll(context context.Context) ([]*Area, error) {
	const query = `
		SELECT id, name, slug, sort_order, created_at
		FROM core.areas
		ORDER BY sort_order ASC, name ASC
	`
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_areas")
	}
	defer rows.Close()

	var areas []*Area
	for rows.Next() {
		area := &Area{}
		if err := rows.Scan(&area.ID, &area.Name, &area.Slug, &area.SortOrder, &area.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_area")
		}
		areas = append(areas, area)
	}
	return areas, nil
}

/*
FindByID retrieves one area by primary key.
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Area, error) {
	const query = `
		SELECT id, name, slug, sort_order, created_at
		FROM core.areas
		WHERE id = $1
	`
	area := &Area{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&area.ID, &area.Name, &area.Slug, &area.SortOrder, &area.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_area")
	}
	return area, nil
}

/*
FindBySlug retrieves one area by its URL slug.
*/
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Area, error) {
	const query = `
		SELECT id, name, slug, sort_order, created_at
		FROM core.areas
		WHERE slug = $1
	`
	area := &Area{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&area.ID, &area.Name, &area.Slug, &area.SortOrder, &area.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_area")
	}
	return area, nil
}

/*
Create inserts a new area.
*/
func (repository *PostgresRepository) Create(context context.Context, area *Area) error {
	const query = `
		INSERT INTO core.areas (id, name, slug, sort_order, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	err := repository.db.QueryRow(context, query, area.ID, area.Name, area.Slug, area.SortOrder).Scan(&area.CreatedAt)
	return dberr.Wrap(err, "create_area")
}

/*
Delete removes an area. Group references are set NULL by the schema.
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	const query = `DELETE FROM core.areas WHERE id = $1`
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_area")
}
