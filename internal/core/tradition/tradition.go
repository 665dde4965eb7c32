// Copyright (c) 2026 Our Philly. All rights reserved.

/*
Package tradition manages the legacy curated events table.

Tradition rows predate the ISO-dated catalogue and store their dates as free
text: a "Dates" column that must contain at least one M/D/YYYY token, and an
"End Date" column that may be empty (meaning single-day) or hold more free
text. Parsing is delegated to the calendar package and fails closed; a row
whose Dates column yields no token is excluded from the feed but remains
visible to admin screens for repair.
*/
package tradition

import (
	"time"

	"github.com/ourphilly/ourphilly/internal/calendar"
)

// Tradition is one row of the legacy curated table.
//
// The quoted column names with spaces ("Dates", "End Date") are preserved in
// the schema; the struct uses Go names.
type Tradition struct {
	ID          string  `json:"id"` // UUIDv7
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Slug        string  `json:"slug"`
	Dates       string  `json:"dates"` // free text, primary date source
	EndDate     *string `json:"end_date,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Span resolves the tradition's free-text dates into a concrete range.
//
// Absence of an End Date, or an End Date with no parseable token, means
// single-day. A Dates column with no token fails the whole row (ok=false).
func (t *Tradition) Span(loc *time.Location) (start, end time.Time, ok bool) {
	start, ok = calendar.ParseMonthDayYearLike(t.Dates, loc)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	end = start
	if t.EndDate != nil {
		if parsed, endOK := calendar.ParseMonthDayYearLike(*t.EndDate, loc); endOK {
			end = parsed
		}
	}

	// Inverted ranges are invalid upstream data, not something to repair here.
	if end.Before(start) {
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}
