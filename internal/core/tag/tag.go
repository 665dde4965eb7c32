// Copyright (c) 2026 Our Philly. All rights reserved.

/*
Package tag manages the taxonomy used to label events, groups, and
traditions, including seasonal activation.

Most tags are evergreen. A seasonal tag carries either a recurrence rule
(e.g. a yearly St. Patrick's rule) or explicit season bounds; such a tag is
shown in pickers and filters only around its occurrence, so "Christmas"
stops cluttering June. The activation window math lives in active.go.
*/
package tag

import "time"

// Tag is one label in the site-wide taxonomy.
type Tag struct {
	ID          string  `json:"id"` // UUIDv7
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`

	// RRule, when set, makes the tag seasonal around a recurring date.
	RRule *string `json:"rrule,omitempty"`

	// SeasonStart/SeasonEnd, when both set, make the tag seasonal over a
	// fixed date range. YYYY-MM-DD.
	SeasonStart *string `json:"season_start,omitempty"`
	SeasonEnd   *string `json:"season_end,omitempty"`

	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Seasonal reports whether the tag has any activation constraint at all.
func (tag *Tag) Seasonal() bool {
	if tag.RRule != nil && *tag.RRule != "" {
		return true
	}
	return tag.SeasonStart != nil && tag.SeasonEnd != nil
}

// TaggableType identifies which table a tagging points into.
type TaggableType string

const (
	TaggableEvent     TaggableType = "event"
	TaggableGroup     TaggableType = "group"
	TaggableTradition TaggableType = "tradition"
	TaggableBigBoard  TaggableType = "big_board"
	TaggableSeries    TaggableType = "series"
)

// Tagging links a tag to one entity.
type Tagging struct {
	TagID        string       `json:"tag_id"`
	TaggableType TaggableType `json:"taggable_type"`
	TaggableID   string       `json:"taggable_id"`
	CreatedAt    time.Time    `json:"created_at"`
}
