// Copyright (c) 2026 Our Philly. All rights reserved.

package digest

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ourphilly/ourphilly/internal/platform/dberr"
)

// PostgresSubscriberRepository implements [SubscriberRepository] using pgx.
type PostgresSubscriberRepository struct {
	db *pgxpool.Pool
}

// NewPostgresSubscriberRepository constructs a PostgreSQL backed subscriber store.
func NewPostgresSubscriberRepository(db *pgxpool.Pool) *PostgresSubscriberRepository {
	return &PostgresSubscriberRepository{db: db}
}

/*
ListAll returns every newsletter subscriber.
*/
func (repository *PostgresSubscriberRepository) ListAll(context context.Context) ([]*Subscriber, error) {
	const query = `
		SELECT email, created_at
		FROM core.newsletter_subscribers
		ORDER BY created_at ASC
	`
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_subscribers")
	}
	defer rows.Close()

	var subscribers []*Subscriber
	for rows.Next() {
		subscriber := &Subscriber{}
		if err := rows.Scan(&subscriber.Email, &subscriber.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_subscriber")
		}
		subscribers = append(subscribers, subscriber)
	}
	return subscribers, nil
}

/*
Subscribe records a signup, idempotently.
*/
func (repository *PostgresSubscriberRepository) Subscribe(context context.Context, email string) error {
	const query = `
		INSERT INTO core.newsletter_subscribers (email, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (email) DO NOTHING
	`
	_, err := repository.db.Exec(context, query, email)
	return dberr.Wrap(err, "subscribe")
}

/*
Unsubscribe removes a signup.
*/
func (repository *PostgresSubscriberRepository) Unsubscribe(context context.Context, email string) error {
	const query = `DELETE FROM core.newsletter_subscribers WHERE email = $1`
	_, err := repository.db.Exec(context, query, email)
	return dberr.Wrap(err, "unsubscribe")
}
