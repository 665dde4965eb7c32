// Copyright (c) 2026 Our Philly. All rights reserved.

package group

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ourphilly/ourphilly/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed group store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Group Retrieval

/*
List returns a filtered and paginated list of groups.

Description: Uses trigram ILIKE for entity search and COUNT(*) OVER() for total metadata.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Group: Slice of matching groups
  - int: Total record count
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Group, int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT
			id, name, slug, description, website, instagram, area_id, image_key,
			is_active, follow_count, created_at, updated_at,
			COUNT(*) OVER() as total
		FROM core.groups
		WHERE deleted_at IS NULL
	`)

	args := []any{}
	argID := 1

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argID))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	if filter.AreaID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND area_id = $%d", argID))
		args = append(args, *filter.AreaID)
		argID++
	}

	if filter.IsActive != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND is_active = $%d", argID))
		args = append(args, *filter.IsActive)
		argID++
	}

	switch filter.Sort {
	case "followcount":
		queryBuilder.WriteString(" ORDER BY follow_count DESC, name ASC")
	case "createdat":
		queryBuilder.WriteString(" ORDER BY created_at DESC")
	default:
		queryBuilder.WriteString(" ORDER BY name ASC")
	}
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_groups")
	}
	defer rows.Close()

	var groups []*Group
	var total int
	for rows.Next() {
		group := &Group{}
		err := rows.Scan(
			&group.ID, &group.Name, &group.Slug, &group.Description, &group.Website, &group.Instagram,
			&group.AreaID, &group.ImageKey, &group.IsActive, &group.FollowCount,
			&group.CreatedAt, &group.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_group")
		}
		groups = append(groups, group)
	}

	return groups, total, nil
}

/*
FindByID retrieves a single group record by its primary key.
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Group, error) {
	const query = `
		SELECT
			id, name, slug, description, website, instagram, area_id, image_key,
			is_active, follow_count, created_at, updated_at
		FROM core.groups
		WHERE id = $1 AND deleted_at IS NULL
	`
	return repository.scanGroup(context, query, id)
}

/*
FindBySlug retrieves a group by its unique URL slug.
*/
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Group, error) {
	const query = `
		SELECT
			id, name, slug, description, website, instagram, area_id, image_key,
			is_active, follow_count, created_at, updated_at
		FROM core.groups
		WHERE slug = $1 AND deleted_at IS NULL
	`
	return repository.scanGroup(context, query, slug)
}

func (repository *PostgresRepository) scanGroup(context context.Context, query string, arg any) (*Group, error) {
	group := &Group{}
	err := repository.db.QueryRow(context, query, arg).Scan(
		&group.ID, &group.Name, &group.Slug, &group.Description, &group.Website, &group.Instagram,
		&group.AreaID, &group.ImageKey, &group.IsActive, &group.FollowCount,
		&group.CreatedAt, &group.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_group")
	}
	return group, nil
}

// # Group Mutation

/*
Create inserts a new group record.
*/
func (repository *PostgresRepository) Create(context context.Context, group *Group) error {
	const query = `
		INSERT INTO core.groups (
			id, name, slug, description, website, instagram, area_id, image_key, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := repository.db.QueryRow(context, query,
		group.ID, group.Name, group.Slug, group.Description, group.Website, group.Instagram,
		group.AreaID, group.ImageKey, group.IsActive,
	).Scan(&group.CreatedAt, &group.UpdatedAt)

	return dberr.Wrap(err, "create_group")
}

/*
Update modifies group metadata fields.
*/
func (repository *PostgresRepository) Update(context context.Context, group *Group) error {
	const query = `
		UPDATE core.groups
		SET description = $2, website = $3, instagram = $4, area_id = $5, image_key = $6, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`
	err := repository.db.QueryRow(context, query,
		group.ID, group.Description, group.Website, group.Instagram, group.AreaID, group.ImageKey,
	).Scan(&group.UpdatedAt)
	return dberr.Wrap(err, "update_group")
}

/*
SoftDelete flags a group as deleted.
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	const query = `UPDATE core.groups SET deleted_at = NOW() WHERE id = $1`
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_group")
}

// # Group Events

/*
ListEventsInWindow retrieves group events overlapping [start, end], each
denormalized with its owning group's name, slug, and avatar key.
*/
func (repository *PostgresRepository) ListEventsInWindow(context context.Context, start, end time.Time) ([]*Event, error) {
	const query = `
		SELECT e.id, e.group_id, e.title, e.description, e.start_date, e.end_date,
		       e.start_time, e.end_time, g.name, g.slug, g.image_key, e.created_at
		FROM core.group_events e
		JOIN core.groups g ON e.group_id = g.id
		WHERE g.deleted_at IS NULL
		  AND e.start_date <= $2
		  AND COALESCE(e.end_date, e.start_date) >= $1
		ORDER BY e.start_date ASC, e.start_time ASC NULLS FIRST
	`
	rows, err := repository.db.Query(context, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, dberr.Wrap(err, "list_group_events_in_window")
	}
	defer rows.Close()

	return scanEvents(rows)
}

/*
ListEventsForGroup retrieves all events hosted by one group, soonest first.
*/
func (repository *PostgresRepository) ListEventsForGroup(context context.Context, groupID string) ([]*Event, error) {
	const query = `
		SELECT e.id, e.group_id, e.title, e.description, e.start_date, e.end_date,
		       e.start_time, e.end_time, g.name, g.slug, g.image_key, e.created_at
		FROM core.group_events e
		JOIN core.groups g ON e.group_id = g.id
		WHERE e.group_id = $1
		ORDER BY e.start_date ASC, e.start_time ASC NULLS FIRST
	`
	rows, err := repository.db.Query(context, query, groupID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_group_events")
	}
	defer rows.Close()

	return scanEvents(rows)
}

/*
FindEventByID retrieves a single group event.
*/
func (repository *PostgresRepository) FindEventByID(context context.Context, id string) (*Event, error) {
	const query = `
		SELECT e.id, e.group_id, e.title, e.description, e.start_date, e.end_date,
		       e.start_time, e.end_time, g.name, g.slug, g.image_key, e.created_at
		FROM core.group_events e
		JOIN core.groups g ON e.group_id = g.id
		WHERE e.id = $1
	`
	event := &Event{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&event.ID, &event.GroupID, &event.Title, &event.Description,
		&event.StartDate, &event.EndDate, &event.StartTime, &event.EndTime,
		&event.GroupName, &event.GroupSlug, &event.GroupImageKey, &event.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_group_event")
	}
	return event, nil
}

/*
CreateEvent inserts a new event under a group.
*/
func (repository *PostgresRepository) CreateEvent(context context.Context, event *Event) error {
	const query = `
		INSERT INTO core.group_events (
			id, group_id, title, description, start_date, end_date, start_time, end_time, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`
	err := repository.db.QueryRow(context, query,
		event.ID, event.GroupID, event.Title, event.Description,
		event.StartDate, event.EndDate, event.StartTime, event.EndTime,
	).Scan(&event.CreatedAt)
	return dberr.Wrap(err, "create_group_event")
}

/*
DeleteEvent hard-deletes a group event.
*/
func (repository *PostgresRepository) DeleteEvent(context context.Context, id string) error {
	const query = `DELETE FROM core.group_events WHERE id = $1`
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_group_event")
}

func scanEvents(rows pgx.Rows) ([]*Event, error) {
	var events []*Event
	for rows.Next() {
		event := &Event{}
		err := rows.Scan(
			&event.ID, &event.GroupID, &event.Title, &event.Description,
			&event.StartDate, &event.EndDate, &event.StartTime, &event.EndTime,
			&event.GroupName, &event.GroupSlug, &event.GroupImageKey, &event.CreatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_group_event")
		}
		events = append(events, event)
	}
	return events, nil
}

// # Social & Following Implementation

/*
Follow establishes a link between a user and a group.

Description: Executes within an ACID transaction to guarantee atomicity.
1. Inserts a new row into core.group_follows (Idempotent).
2. Atomically increments the group's global follow_count.
Roll back completely if any stage fails to prevent counter drift.

Parameters:
  - context: context.Context handling process isolation
  - groupID: string Target UUID
  - userID: string Actor UUID

Returns:
  - error: Transactional or database failures
*/
func (repository *PostgresRepository) Follow(context context.Context, groupID, userID string) error {

	// Establish Transactional Boundary
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_follow_tx")
	}
	defer transaction.Rollback(context)

	// Step 1: Persist Follow Relation
	// Uses ON CONFLICT DO NOTHING to ensure idempotency
	followQuery := `
		INSERT INTO core.group_follows (group_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT DO NOTHING
	`
	_, err = transaction.Exec(context, followQuery, groupID, userID)
	if err != nil {
		return dberr.Wrap(err, "insert_follow")
	}

	// Step 2: Atomic Metric Jump
	countQuery := `
		UPDATE core.groups
		SET follow_count = follow_count + 1
		WHERE id = $1
	`
	_, err = transaction.Exec(context, countQuery, groupID)
	if err != nil {
		return dberr.Wrap(err, "increment_group_follow")
	}

	// Persist Atomic Changeset
	return transaction.Commit(context)
}

/*
Unfollow removes a user-group link and decrements metrics accurately.

Description: Wraps removal and counter decrement in a transaction.
Only decrements if a record was actually removed to prevent negative drift
during concurrent or duplicate requests.
*/
func (repository *PostgresRepository) Unfollow(context context.Context, groupID, userID string) error {

	// Transactional State Setup
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_unfollow_tx")
	}
	defer transaction.Rollback(context)

	// Step 1: Remove Relationship
	delQuery := `
		DELETE FROM core.group_follows
		WHERE group_id = $1 AND user_id = $2
	`
	result, err := transaction.Exec(context, delQuery, groupID, userID)
	if err != nil {
		return dberr.Wrap(err, "delete_follow")
	}

	// Step 2: Validated Counter Decrement
	// Prevents counter from dropping below zero using GREATEST(0, x)
	if result.RowsAffected() > 0 {
		decQuery := `
			UPDATE core.groups
			SET follow_count = GREATEST(0, follow_count - 1)
			WHERE id = $1
		`
		_, err = transaction.Exec(context, decQuery, groupID)
		if err != nil {
			return dberr.Wrap(err, "decrement_group_follow")
		}
	}

	return transaction.Commit(context)
}
