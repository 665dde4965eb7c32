// Copyright (c) 2026 Our Philly. All rights reserved.

/*
Package bigboard manages community flyer submissions.

A big-board post is a user-uploaded image identified by its storage key. A
post may be linked 1:1 to a lightweight big-board event (title plus dates);
posts without an event still appear in the community grid but never in the
date-windowed feed.

# Image Resolution

An event's display image is resolved from its linked post's storage key at
read time, never stored redundantly. The key is not a URL; resolution goes
through [storage.Resolver].
*/
package bigboard

import "time"

// Post is a community flyer upload.
type Post struct {
	ID        string  `json:"id"` // UUIDv7
	UserID    string  `json:"user_id"`
	ImageKey  string  `json:"-"`         // storage key, never exposed raw
	ImageURL  string  `json:"image_url"` // resolved public URL
	EventID   *string `json:"event_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Event is the lightweight record a post may be linked to.
type Event struct {
	ID        string  `json:"id"` // UUIDv7
	PostID    string  `json:"post_id"`
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	StartDate string  `json:"start_date"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`
	StartTime *string `json:"start_time,omitempty"`

	// ImageKey is hydrated from the linked post in queries; see package doc.
	ImageKey string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
