// Copyright (c) 2026 Our Philly. All rights reserved.

package bigboard

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

// NewPostgresRepository constructs a PostgreSQL backed big-board store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
ListEventsInWindow returns event-linked submissions overlapping [start, end].

Description: Joins big_board_posts to hydrate each event with its post's
storage key; the service resolves the key to a public URL.

Parameters:
  - context: context.Context
  - start: time.Time
  - end: time.Time

Returns:
  - []*Event: Matching rows with ImageKey populated
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListEventsInWindow(context context.Context, start, end time.Time) ([]*Event, error) {
	const query = `
		SELECT e.id, e.post_id, e.title, e.slug, e.start_date, e.end_date, e.start_time,
		       p.image_key, e.created_at
		FROM core.big_board_events e
		JOIN core.big_board_posts p ON e.post_id = p.id
		WHERE e.start_date <= $2
		  AND COALESCE(e.end_date, e.start_date) >= $1
		ORDER BY e.start_date ASC, e.start_time ASC NULLS FIRST
	`
	rows, err := repository.db.Query(context, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, dberr.Wrap(err, "list_big_board_events_in_window")
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		event := &Event{}
		err := rows.Scan(
			&event.ID, &event.PostID, &event.Title, &event.Slug,
			&event.StartDate, &event.EndDate, &event.StartTime,
			&event.ImageKey, &event.CreatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_big_board_event")
		}
		events = append(events, event)
	}

	return events, nil
}

/*
ListPosts returns the community grid, newest uploads first.
*/
func (repository *PostgresRepository) ListPosts(context context.Context, limit, offset int) ([]*Post, int, error) {
	const query = `
		SELECT p.id, p.user_id, p.image_key, p.event_id, p.created_at,
		       COUNT(*) OVER() AS total
		FROM core.big_board_posts p
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_big_board_posts")
	}
	defer rows.Close()

	var posts []*Post
	var total int
	for rows.Next() {
		post := &Post{}
		if err := rows.Scan(&post.ID, &post.UserID, &post.ImageKey, &post.EventID, &post.CreatedAt, &total); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_big_board_post")
		}
		posts = append(posts, post)
	}

	return posts, total, nil
}

/*
FindEventBySlug retrieves one event-linked submission by slug.
*/
func (repository *PostgresRepository) FindEventBySlug(context context.Context, slug string) (*Event, error) {
	const query = `
		SELECT e.id, e.post_id, e.title, e.slug, e.start_date, e.end_date, e.start_time,
		       p.image_key, e.created_at
		FROM core.big_board_events e
		JOIN core.big_board_posts p ON e.post_id = p.id
		WHERE e.slug = $1
	`
	event := &Event{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&event.ID, &event.PostID, &event.Title, &event.Slug,
		&event.StartDate, &event.EndDate, &event.StartTime,
		&event.ImageKey, &event.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_big_board_event_by_slug")
	}
	return event, nil
}

/*
CreatePost inserts a new flyer upload record.
*/
func (repository *PostgresRepository) CreatePost(context context.Context, post *Post) error {
	const query = `
		INSERT INTO core.big_board_posts (id, user_id, image_key, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`
	err := repository.db.QueryRow(context, query, post.ID, post.UserID, post.ImageKey).Scan(&post.CreatedAt)
	return dberr.Wrap(err, "create_big_board_post")
}

/*
CreateEvent links a lightweight event to an existing post, in a transaction
so the post's back-reference and the event row stay consistent.
*/
func (repository *PostgresRepository) CreateEvent(context context.Context, event *Event) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_big_board_event_tx")
	}
	defer transaction.Rollback(context)

	const insertQuery = `
		INSERT INTO core.big_board_events (id, post_id, title, slug, start_date, end_date, start_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`
	err = transaction.QueryRow(context, insertQuery,
		event.ID, event.PostID, event.Title, event.Slug,
		event.StartDate, event.EndDate, event.StartTime,
	).Scan(&event.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_big_board_event")
	}

	const backRefQuery = `UPDATE core.big_board_posts SET event_id = $2 WHERE id = $1`
	if _, err := transaction.Exec(context, backRefQuery, event.PostID, event.ID); err != nil {
		return dberr.Wrap(err, "link_big_board_post")
	}

	return transaction.Commit(context)
}

/*
DeletePost removes a post and, via ON DELETE CASCADE, its linked event.
*/
func (repository *PostgresRepository) DeletePost(context context.Context, id string) error {
	const query = `DELETE FROM core.big_board_posts WHERE id = $1`
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_big_board_post")
}
