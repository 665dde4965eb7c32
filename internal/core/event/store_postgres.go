// Copyright (c) 2026 Our Philly. All rights reserved.

package event

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ourphilly/ourphilly/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed event store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// eventColumns is the canonical select list shared by every read query.
const eventColumns = `
	e.id, e.name, e.description, e.slug, e.venue_id, v.slug,
	e.start_date, e.end_date, e.start_time, e.end_time, e.image_url,
	e.created_at, e.updated_at
`

/*
ListInWindow returns events overlapping the inclusive [start, end] range.

Description: COALESCE(end_date, start_date) treats missing end dates as
single-day, matching the aggregator's "no end date means end = start" rule.

Parameters:
  - context: context.Context
  - start: time.Time
  - end: time.Time

Returns:
  - []*Event: Matching rows ordered by start date, then start time
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListInWindow(context context.Context, start, end time.Time) ([]*Event, error) {
	const query = `
		SELECT ` + eventColumns + `
		FROM core.events e
		LEFT JOIN core.venues v ON e.venue_id = v.id
		WHERE e.deleted_at IS NULL
		  AND e.start_date <= $2
		  AND COALESCE(e.end_date, e.start_date) >= $1
		ORDER BY e.start_date ASC, e.start_time ASC NULLS FIRST
	`
	rows, err := repository.db.Query(context, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, dberr.Wrap(err, "list_events_in_window")
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		event := &Event{}
		err := rows.Scan(
			&event.ID, &event.Name, &event.Description, &event.Slug, &event.VenueID, &event.VenueSlug,
			&event.StartDate, &event.EndDate, &event.StartTime, &event.EndTime, &event.ImageURL,
			&event.CreatedAt, &event.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_event")
		}
		events = append(events, event)
	}

	return events, nil
}

/*
List returns a paginated slice of events plus the true total.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*Event: Slice of events
  - int: Total record count
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Event, int, error) {
	const query = `
		SELECT ` + eventColumns + `, COUNT(*) OVER() AS total
		FROM core.events e
		LEFT JOIN core.venues v ON e.venue_id = v.id
		WHERE e.deleted_at IS NULL
		ORDER BY e.start_date ASC, e.start_time ASC NULLS FIRST
		LIMIT $1 OFFSET $2
	`
	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_events")
	}
	defer rows.Close()

	var events []*Event
	var total int
	for rows.Next() {
		event := &Event{}
		err := rows.Scan(
			&event.ID, &event.Name, &event.Description, &event.Slug, &event.VenueID, &event.VenueSlug,
			&event.StartDate, &event.EndDate, &event.StartTime, &event.EndTime, &event.ImageURL,
			&event.CreatedAt, &event.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_event")
		}
		events = append(events, event)
	}

	return events, total, nil
}

/*
FindByID retrieves a single event by its primary key.
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Event, error) {
	const query = `
		SELECT ` + eventColumns + `
		FROM core.events e
		LEFT JOIN core.venues v ON e.venue_id = v.id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`
	return repository.scanOne(context, query, id)
}

/*
FindBySlug retrieves a single event by its URL slug.
*/
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Event, error) {
	const query = `
		SELECT ` + eventColumns + `
		FROM core.events e
		LEFT JOIN core.venues v ON e.venue_id = v.id
		WHERE e.slug = $1 AND e.deleted_at IS NULL
	`
	return repository.scanOne(context, query, slug)
}

func (repository *PostgresRepository) scanOne(context context.Context, query string, arg any) (*Event, error) {
	event := &Event{}
	err := repository.db.QueryRow(context, query, arg).Scan(
		&event.ID, &event.Name, &event.Description, &event.Slug, &event.VenueID, &event.VenueSlug,
		&event.StartDate, &event.EndDate, &event.StartTime, &event.EndTime, &event.ImageURL,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_event")
	}
	return event, nil
}

/*
Create inserts a new event row.
*/
func (repository *PostgresRepository) Create(context context.Context, event *Event) error {
	const query = `
		INSERT INTO core.events (
			id, name, description, slug, venue_id, start_date, end_date,
			start_time, end_time, image_url, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := repository.db.QueryRow(context, query,
		event.ID, event.Name, event.Description, event.Slug, event.VenueID,
		event.StartDate, event.EndDate, event.StartTime, event.EndTime, event.ImageURL,
	).Scan(&event.CreatedAt, &event.UpdatedAt)

	return dberr.Wrap(err, "create_event")
}

/*
Update modifies the mutable fields of an event.
*/
func (repository *PostgresRepository) Update(context context.Context, event *Event) error {
	const query = `
		UPDATE core.events
		SET name = $2, description = $3, start_date = $4, end_date = $5,
		    start_time = $6, end_time = $7, image_url = $8, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`
	err := repository.db.QueryRow(context, query,
		event.ID, event.Name, event.Description, event.StartDate, event.EndDate,
		event.StartTime, event.EndTime, event.ImageURL,
	).Scan(&event.UpdatedAt)
	return dberr.Wrap(err, "update_event")
}

/*
SoftDelete flags an event as deleted.
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	const query = `UPDATE core.events SET deleted_at = NOW() WHERE id = $1`
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_event")
}
