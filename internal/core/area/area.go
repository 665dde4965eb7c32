// Copyright (c) 2026 Our Philly. All rights reserved.

/*
Package area manages the neighborhood directory.

Areas are near-static reference data (Fishtown, South Philly, ...). Groups
and venues point at an area by ID; feed rows want the display name. The
name lookup is read-through cached in Redis and degrades to the database
silently, so a cache outage never touches correctness.
*/
package area

import "time"

// Area is one neighborhood or district.
type Area struct {
	ID        string    `json:"id"` // UUIDv7
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}
