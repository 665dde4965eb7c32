// Copyright (c) 2026 Our Philly. All rights reserved.

package tradition

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ourphilly/ourphilly/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
//
// The legacy table keeps its original quoted column names ("Dates",
// "End Date"); only this file needs to know that.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed tradition store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const traditionColumns = `id, name, description, slug, "Dates", "End Date", image_url, created_at, updated_at`

/*
ListAll returns every tradition row, unfiltered.

Description: Date filtering cannot happen in SQL because the date columns are
free text; the caller parses and filters.

Returns:
  - []*Tradition: All rows ordered by name
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListAll(context context.Context) ([]*Tradition, error) {
	const query = `SELECT ` + traditionColumns + ` FROM core.traditions ORDER BY name ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_traditions")
	}
	defer rows.Close()

	var traditions []*Tradition
	for rows.Next() {
		tradition := &Tradition{}
		err := rows.Scan(
			&tradition.ID, &tradition.Name, &tradition.Description, &tradition.Slug,
			&tradition.Dates, &tradition.EndDate, &tradition.ImageURL,
			&tradition.CreatedAt, &tradition.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_tradition")
		}
		traditions = append(traditions, tradition)
	}

	return traditions, nil
}

/*
List returns a paginated slice plus the true total, for admin screens.
*/
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Tradition, int, error) {
	const query = `
		SELECT ` + traditionColumns + `, COUNT(*) OVER() AS total
		FROM core.traditions
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_traditions_page")
	}
	defer rows.Close()

	var traditions []*Tradition
	var total int
	for rows.Next() {
		tradition := &Tradition{}
		err := rows.Scan(
			&tradition.ID, &tradition.Name, &tradition.Description, &tradition.Slug,
			&tradition.Dates, &tradition.EndDate, &tradition.ImageURL,
			&tradition.CreatedAt, &tradition.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_tradition")
		}
		traditions = append(traditions, tradition)
	}

	return traditions, total, nil
}

/*
FindBySlug retrieves a single tradition by its URL slug.
*/
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Tradition, error) {
	const query = `SELECT ` + traditionColumns + ` FROM core.traditions WHERE slug = $1`

	tradition := &Tradition{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&tradition.ID, &tradition.Name, &tradition.Description, &tradition.Slug,
		&tradition.Dates, &tradition.EndDate, &tradition.ImageURL,
		&tradition.CreatedAt, &tradition.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tradition_by_slug")
	}
	return tradition, nil
}

/*
Create inserts a new tradition row.
*/
func (repository *PostgresRepository) Create(context context.Context, tradition *Tradition) error {
	const query = `
		INSERT INTO core.traditions (id, name, description, slug, "Dates", "End Date", image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := repository.db.QueryRow(context, query,
		tradition.ID, tradition.Name, tradition.Description, tradition.Slug,
		tradition.Dates, tradition.EndDate, tradition.ImageURL,
	).Scan(&tradition.CreatedAt, &tradition.UpdatedAt)

	return dberr.Wrap(err, "create_tradition")
}

/*
Update modifies the mutable fields of a tradition.
*/
func (repository *PostgresRepository) Update(context context.Context, tradition *Tradition) error {
	const query = `
		UPDATE core.traditions
		SET name = $2, description = $3, "Dates" = $4, "End Date" = $5, image_url = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := repository.db.QueryRow(context, query,
		tradition.ID, tradition.Name, tradition.Description,
		tradition.Dates, tradition.EndDate, tradition.ImageURL,
	).Scan(&tradition.UpdatedAt)
	return dberr.Wrap(err, "update_tradition")
}

/*
Delete hard-deletes a tradition row. The legacy table has no soft-delete column.
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	const query = `DELETE FROM core.traditions WHERE id = $1`
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_tradition")
}
