// Copyright (c) 2026 Our Philly. All rights reserved.

package feed

import (
	"slices"
	"strings"
	"time"

	"github.com/ourphilly/ourphilly/internal/calendar"
	"github.com/ourphilly/ourphilly/pkg/slice"
)

// Result is one assembled feed response.
type Result struct {
	// Items is the merged, sorted, possibly truncated card list.
	Items []Item `json:"items"`

	// Total counts every item in the window before truncation.
	Total int `json:"total"`

	// TraditionCount counts tradition items in the window before
	// truncation; the UI leads with it ("N Philly traditions this week").
	TraditionCount int `json:"tradition_count"`
}

// Aggregate merges the per-source slices into one feed for the window.
//
// Every item is checked against the window even though most sources already
// query by it: the sports schedule comes from an API whose filtering this
// system does not control, and an item whose start date fails to parse is
// excluded rather than guessed at.
//
// Concatenation order is fixed (big board, traditions, single-day events,
// recurring series, group events, sports) and the sort is stable, so items
// on the same date at the same time keep that source order deterministically.
// Items sort by start date, then start time with untimed items first, both
// as plain string comparisons on the normalized formats.
//
// A positive limit truncates Items after sorting; Total and TraditionCount
// always describe the full window. The input slices are not modified.
func Aggregate(window calendar.Window, sources Sources, limit int) Result {
	size := len(sources.BigBoard) + len(sources.Traditions) + len(sources.Events) +
		len(sources.Series) + len(sources.Groups) + len(sources.Sports)

	merged := make([]Item, 0, size)
	merged = append(merged, sources.BigBoard...)
	merged = append(merged, sources.Traditions...)
	merged = append(merged, sources.Events...)
	merged = append(merged, sources.Series...)
	merged = append(merged, sources.Groups...)
	merged = append(merged, sources.Sports...)

	location := window.Start.Location()
	merged = slice.Filter(merged, func(item Item) bool {
		return overlapsWindow(item, window, location)
	})

	slices.SortStableFunc(merged, compareItems)

	result := Result{
		Total:          len(merged),
		TraditionCount: countTraditions(merged),
	}

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	result.Items = merged
	return result
}

// overlapsWindow reports whether the item's date span intersects the window.
// A missing or unparseable end date collapses the span to its start day.
func overlapsWindow(item Item, window calendar.Window, location *time.Location) bool {
	start, ok := calendar.ParseISODateLocal(item.StartDate, location)
	if !ok {
		return false
	}

	end := start
	if item.EndDate != "" {
		if parsed, ok := calendar.ParseISODateLocal(item.EndDate, location); ok {
			end = parsed
		}
	}

	return window.Overlaps(start, end)
}

func compareItems(a, b Item) int {
	if byDate := strings.Compare(a.StartDate, b.StartDate); byDate != 0 {
		return byDate
	}
	// Same day: untimed (all-day) items lead, then lexical HH:MM order.
	return strings.Compare(a.StartTime, b.StartTime)
}

func countTraditions(items []Item) int {
	count := 0
	for _, item := range items {
		if slices.Contains(item.Badges, BadgeTradition) {
			count++
		}
	}
	return count
}
