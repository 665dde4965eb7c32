// Copyright (c) 2026 Our Philly. All rights reserved.

/*
Package sports pulls Philadelphia pro sports home games from the ticketing
API and shapes them like local listings.

Games are never stored; each feed request fans out to the upstream API per
team and flattens the results. Synthetic IDs carry an "sg-" prefix so they
can never collide with UUIDs from our own tables.
*/
package sports

import "time"

// The teams whose home games show up in the feed.
var teamSlugs = []string{
	"philadelphia-phillies",
	"philadelphia-76ers",
	"philadelphia-eagles",
	"philadelphia-flyers",
	"philadelphia-union",
}

// Event is one home game, normalized from the upstream payload.
type Event struct {
	// ID is "sg-" plus the upstream numeric event ID.
	ID    string `json:"id"`
	Title string `json:"title"`

	Date      string `json:"date"` // YYYY-MM-DD, venue-local
	StartTime string `json:"start_time,omitempty"`

	Team  string `json:"team"`
	Venue string `json:"venue,omitempty"`

	// URL is the upstream ticketing page; sports rows link out instead of
	// having a detail page of our own.
	URL string `json:"url,omitempty"`
}

// StartsAt reconstructs the venue-local start from the split date and time.
func (event *Event) StartsAt(location *time.Location) (time.Time, bool) {
	layout := "2006-01-02"
	value := event.Date
	if event.StartTime != "" {
		layout = "2006-01-02 15:04"
		value = event.Date + " " + event.StartTime
	}
	t, err := time.ParseInLocation(layout, value, location)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
