// Copyright (c) 2026 Our Philly. All rights reserved.

/*
Package event manages one-off venue events.

These are the plain rows of the events catalogue: a single listing with ISO
dates, optional times, and a venue reference. Traditions, big-board
submissions, group events, and recurring series live in their own packages;
this one holds only the simple case.
*/
package event

import "time"

// Event represents a single one-off listing tied to a venue.
type Event struct {
	ID          string     `json:"id"` // UUIDv7
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Slug        string     `json:"slug"`
	VenueID     *string    `json:"venue_id,omitempty"`
	VenueSlug   *string    `json:"venue_slug,omitempty"`
	StartDate   string     `json:"start_date"` // YYYY-MM-DD
	EndDate     *string    `json:"end_date,omitempty"`
	StartTime   *string    `json:"start_time,omitempty"` // HH:MM, 24h
	EndTime     *string    `json:"end_time,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}
