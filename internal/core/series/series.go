// Copyright (c) 2026 Our Philly. All rights reserved.

/*
Package series manages recurring event series and their occurrence expansion.

A series stores an iCalendar RRULE string plus an anchor start date. It never
stores individual occurrences; those are computed on demand for whatever date
window the caller asks about. An occurrence is identified by the composite key
"<seriesID>::<YYYY-MM-DD>", which stays stable across re-expansions.
*/
package series

import "time"

// Series is a recurring listing, e.g. a weekly run club or monthly market.
type Series struct {
	ID          string  `json:"id"` // UUIDv7
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`

	// RRule is the raw iCalendar recurrence rule, e.g.
	// "FREQ=WEEKLY;BYDAY=MO". A malformed rule yields zero occurrences,
	// never an error.
	RRule string `json:"rrule"`

	StartDate string  `json:"start_date"` // YYYY-MM-DD anchor (DTSTART)
	StartTime *string `json:"start_time,omitempty"`
	EndDate   *string `json:"end_date,omitempty"` // inclusive recurrence bound

	Address  *string `json:"address,omitempty"`
	ImageKey *string `json:"-"`
	ImageURL *string `json:"image_url,omitempty"`

	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// Occurrence is one concrete date a series lands on.
type Occurrence struct {
	// ID is "<seriesID>::<YYYY-MM-DD>".
	ID       string `json:"id"`
	SeriesID string `json:"series_id"`

	Date      string  `json:"date"` // YYYY-MM-DD
	StartTime *string `json:"start_time,omitempty"`

	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}
