// Copyright (c) 2026 Our Philly. All rights reserved.

/*
Package group manages community groups and their events.

It handles the lifecycle of local organizations, from discovery and following
to the events each group hosts.

# Core Responsibility

  - Organization: Defines the [Group] entity and its metadata.
  - Events: Manages [Event] rows, each belonging to exactly one group.
  - Social: Tracks follower counts for discovery ranking.

A group event has no image of its own; the group's avatar and name provide
the display identity, which is why window queries denormalize both.
*/
package group

import "time"

// # Core Entities

// Group represents a local organization that hosts events.
type Group struct {
	ID          string     `json:"id"` // UUIDv7
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description,omitempty"`
	Website     *string    `json:"website,omitempty"`
	Instagram   *string    `json:"instagram,omitempty"`
	AreaID      *string    `json:"area_id,omitempty"`
	ImageKey    *string    `json:"-"`
	ImageURL    *string    `json:"image_url,omitempty"`
	IsActive    bool       `json:"is_active"`
	FollowCount int        `json:"follow_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// Event is a listing hosted by a group.
type Event struct {
	ID          string  `json:"id"` // UUIDv7
	GroupID     string  `json:"group_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     *string `json:"end_date,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`

	// Denormalized from the owning group for display.
	GroupName     string  `json:"group_name"`
	GroupSlug     string  `json:"group_slug"`
	GroupImageKey *string `json:"-"`
	GroupImageURL string  `json:"group_image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// # Search & Filtering

// Filter holds parameters for searching and listing groups.
type Filter struct {
	Query    string `json:"q"`
	AreaID   *string
	IsActive *bool
	Sort     string `json:"sort"` // name, followcount, createdat
}
