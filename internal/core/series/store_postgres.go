// Copyright (c) 2026 Our Philly. All rights reserved.

package series

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ourphilly/ourphilly/internal/platform/dberr"
)

const seriesColumns = `
	id, name, slug, description, rrule, start_date, start_time, end_date,
	address, image_key, is_active, created_at, updated_at
`

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed series store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
ListActive returns every live series, the candidate set for expansion.

Description: There is no date predicate here on purpose; whether a series
lands inside a window is a recurrence question answered by [Expand].

Parameters:
  - context: context.Context

Returns:
  - []*Series: All active, non-deleted series
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListActive(context context.Context) ([]*Series, error) {
	const query = `
		SELECT ` + seriesColumns + `
		FROM core.series
		WHERE is_active = TRUE AND deleted_at IS NULL
		ORDER BY name ASC
	`
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_active_series")
	}
	defer rows.Close()

	var result []*Series
	for rows.Next() {
		series := &Series{}
		err := rows.Scan(
			&series.ID, &series.Name, &series.Slug, &series.Description,
			&series.RRule, &series.StartDate, &series.StartTime, &series.EndDate,
			&series.Address, &series.ImageKey, &series.IsActive,
			&series.CreatedAt, &series.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_series")
		}
		result = append(result, series)
	}

	return result, nil
}

/*
List returns a paginated directory of series, including inactive ones.
*/
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Series, int, error) {
	const query = `
		SELECT ` + seriesColumns + `, COUNT(*) OVER() AS total
		FROM core.series
		WHERE deleted_at IS NULL
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_series")
	}
	defer rows.Close()

	var result []*Series
	var total int
	for rows.Next() {
		series := &Series{}
		err := rows.Scan(
			&series.ID, &series.Name, &series.Slug, &series.Description,
			&series.RRule, &series.StartDate, &series.StartTime, &series.EndDate,
			&series.Address, &series.ImageKey, &series.IsActive,
			&series.CreatedAt, &series.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_series")
		}
		result = append(result, series)
	}

	return result, total, nil
}

/*
FindByID retrieves a single series by primary key.
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Series, error) {
	const query = `
		SELECT ` + seriesColumns + `
		FROM core.series
		WHERE id = $1 AND deleted_at IS NULL
	`
	return repository.scanOne(context, query, id)
}

/*
FindBySlug retrieves a single series by its URL slug.
*/
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Series, error) {
	const query = `
		SELECT ` + seriesColumns + `
		FROM core.series
		WHERE slug = $1 AND deleted_at IS NULL
	`
	return repository.scanOne(context, query, slug)
}

func (repository *PostgresRepository) scanOne(context context.Context, query string, arg any) (*Series, error) {
	series := &Series{}
	err := repository.db.QueryRow(context, query, arg).Scan(
		&series.ID, &series.Name, &series.Slug, &series.Description,
		&series.RRule, &series.StartDate, &series.StartTime, &series.EndDate,
		&series.Address, &series.ImageKey, &series.IsActive,
		&series.CreatedAt, &series.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_series")
	}
	return series, nil
}

/*
Create inserts a new series record.
*/
func (repository *PostgresRepository) Create(context context.Context, series *Series) error {
	const query = `
		INSERT INTO core.series (
			id, name, slug, description, rrule, start_date, start_time, end_date,
			address, image_key, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := repository.db.QueryRow(context, query,
		series.ID, series.Name, series.Slug, series.Description, series.RRule,
		series.StartDate, series.StartTime, series.EndDate,
		series.Address, series.ImageKey, series.IsActive,
	).Scan(&series.CreatedAt, &series.UpdatedAt)
	return dberr.Wrap(err, "create_series")
}

/*
Update modifies a series' mutable fields, recurrence rule included.
*/
func (repository *PostgresRepository) Update(context context.Context, series *Series) error {
	const query = `
		UPDATE core.series
		SET description = $2, rrule = $3, start_date = $4, start_time = $5,
		    end_date = $6, address = $7, image_key = $8, is_active = $9,
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`
	err := repository.db.QueryRow(context, query,
		series.ID, series.Description, series.RRule, series.StartDate, series.StartTime,
		series.EndDate, series.Address, series.ImageKey, series.IsActive,
	).Scan(&series.UpdatedAt)
	return dberr.Wrap(err, "update_series")
}

/*
SoftDelete flags a series as deleted; its past occurrences simply stop
being computable, nothing is erased.
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	const query = `UPDATE core.series SET deleted_at = NOW() WHERE id = $1`
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_series")
}
