// Copyright (c) 2026 Our Philly. All rights reserved.

/*
Package feed assembles the unified happenings feed.

Five internal sources (big-board submissions, traditions, single-day
events, recurring series, group events) plus the sports API are fetched
concurrently, normalized into one [Item] shape, and merged in a fixed
order with a stable date sort. A source that fails contributes nothing;
the feed itself never errors because one upstream had a bad day.
*/
package feed

import (
	"fmt"
	"time"

	"github.com/ourphilly/ourphilly/internal/calendar"
	"github.com/ourphilly/ourphilly/internal/core/bigboard"
	"github.com/ourphilly/ourphilly/internal/core/event"
	"github.com/ourphilly/ourphilly/internal/core/group"
	"github.com/ourphilly/ourphilly/internal/core/series"
	"github.com/ourphilly/ourphilly/internal/core/tradition"
	"github.com/ourphilly/ourphilly/internal/sports"
	"github.com/ourphilly/ourphilly/pkg/pointer"
)

// Badge is the label a feed card wears for its provenance.
type Badge string

const (
	BadgeTradition  Badge = "Tradition"
	BadgeSubmission Badge = "Submission"
	BadgeGroupEvent Badge = "Group Event"
)

// Source table identifiers carried on every item so clients can route
// interactions back to the right domain.
const (
	SourceBigBoard   = "big_board_events"
	SourceTraditions = "traditions"
	SourceEvents     = "all_events"
	SourceSeries     = "recurring_events"
	SourceGroups     = "group_events"
	SourceSports     = "sports_games"
)

// Item is one card in the feed, whatever its origin.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`

	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date,omitempty"`
	StartTime string `json:"start_time,omitempty"` // HH:MM, 24h

	Badges []Badge `json:"badges,omitempty"`

	// DetailPath is the site-internal route for the card; sports games
	// link out through ExternalURL instead.
	DetailPath  string `json:"detail_path,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`

	// GroupName is set on group-hosted items only.
	GroupName string `json:"group_name,omitempty"`

	SourceTable string `json:"source_table"`
}

// # Normalization

func fromBigBoard(source *bigboard.Event, imageURL string) Item {
	return Item{
		ID:          source.ID,
		Title:       source.Title,
		ImageURL:    imageURL,
		StartDate:   source.StartDate,
		EndDate:     pointer.Val(source.EndDate),
		StartTime:   pointer.Val(source.StartTime),
		Badges:      []Badge{BadgeSubmission},
		DetailPath:  "/big-board/" + source.Slug,
		SourceTable: SourceBigBoard,
	}
}

func fromTradition(source *tradition.Tradition, location *time.Location) (Item, bool) {
	start, end, ok := source.Span(location)
	if !ok {
		return Item{}, false
	}

	item := Item{
		ID:          source.ID,
		Title:       source.Name,
		Description: pointer.Val(source.Description),
		ImageURL:    pointer.Val(source.ImageURL),
		StartDate:   calendar.FormatISODate(start),
		Badges:      []Badge{BadgeTradition},
		DetailPath:  "/events/" + source.Slug,
		SourceTable: SourceTraditions,
	}
	if !end.Equal(start) {
		item.EndDate = calendar.FormatISODate(end)
	}
	return item, true
}

func fromEvent(source *event.Event) Item {
	item := Item{
		ID:          source.ID,
		Title:       source.Name,
		Description: pointer.Val(source.Description),
		ImageURL:    pointer.Val(source.ImageURL),
		StartDate:   source.StartDate,
		EndDate:     pointer.Val(source.EndDate),
		StartTime:   pointer.Val(source.StartTime),
		DetailPath:  "/events/" + source.Slug,
		SourceTable: SourceEvents,
	}
	if source.VenueSlug != nil {
		item.DetailPath = fmt.Sprintf("/venues/%s/%s", *source.VenueSlug, source.Slug)
	}
	return item
}

func fromOccurrence(source series.Occurrence) Item {
	return Item{
		ID:          source.ID,
		Title:       source.Name,
		Description: pointer.Val(source.Description),
		ImageURL:    pointer.Val(source.ImageURL),
		StartDate:   source.Date,
		StartTime:   pointer.Val(source.StartTime),
		DetailPath:  fmt.Sprintf("/series/%s/%s", source.Slug, source.Date),
		SourceTable: SourceSeries,
	}
}

func fromGroupEvent(source *group.Event) Item {
	return Item{
		ID:          source.ID,
		Title:       source.Title,
		Description: pointer.Val(source.Description),
		ImageURL:    source.GroupImageURL,
		StartDate:   source.StartDate,
		EndDate:     pointer.Val(source.EndDate),
		StartTime:   pointer.Val(source.StartTime),
		Badges:      []Badge{BadgeGroupEvent},
		DetailPath:  "/groups/" + source.GroupSlug,
		GroupName:   source.GroupName,
		SourceTable: SourceGroups,
	}
}

func fromSports(source *sports.Event) Item {
	return Item{
		ID:          source.ID,
		Title:       source.Title,
		StartDate:   source.Date,
		StartTime:   source.StartTime,
		Description: source.Venue,
		ExternalURL: source.URL,
		SourceTable: SourceSports,
	}
}
