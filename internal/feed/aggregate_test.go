// Copyright (c) 2026 Our Philly. All rights reserved.

package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourphilly/ourphilly/internal/calendar"
)

func item(id, date, startTime string, badges ...Badge) Item {
	return Item{ID: id, Title: id, StartDate: date, StartTime: startTime, Badges: badges}
}

// juneWindow covers all of June 2025, which every dated fixture below falls in.
func juneWindow() calendar.Window {
	return calendar.MonthWindow(2025, time.June, time.UTC)
}

func TestAggregate_SortsByDateThenTime(t *testing.T) {
	sources := Sources{
		Events: []Item{
			item("late", "2025-06-14", "20:00"),
			item("next-day", "2025-06-15", "09:00"),
		},
		Groups: []Item{
			item("morning", "2025-06-14", "09:30"),
			item("all-day", "2025-06-14", ""),
		},
	}

	result := Aggregate(juneWindow(), sources, 0)

	require.Len(t, result.Items, 4)
	assert.Equal(t, "all-day", result.Items[0].ID, "untimed items lead their day")
	assert.Equal(t, "morning", result.Items[1].ID)
	assert.Equal(t, "late", result.Items[2].ID)
	assert.Equal(t, "next-day", result.Items[3].ID)
}

func TestAggregate_TieBreaksBySourceOrder(t *testing.T) {
	// Identical date and time everywhere: the stable sort must preserve
	// the fixed concatenation order.
	sources := Sources{
		BigBoard:   []Item{item("board", "2025-06-14", "18:00")},
		Traditions: []Item{item("tradition", "2025-06-14", "18:00", BadgeTradition)},
		Events:     []Item{item("single", "2025-06-14", "18:00")},
		Series:     []Item{item("recurring", "2025-06-14", "18:00")},
		Groups:     []Item{item("grouped", "2025-06-14", "18:00", BadgeGroupEvent)},
		Sports:     []Item{item("game", "2025-06-14", "18:00")},
	}

	result := Aggregate(juneWindow(), sources, 0)

	wantOrder := []string{"board", "tradition", "single", "recurring", "grouped", "game"}
	require.Len(t, result.Items, len(wantOrder))
	for index, want := range wantOrder {
		assert.Equal(t, want, result.Items[index].ID)
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	sources := Sources{
		BigBoard: []Item{item("b1", "2025-06-14", ""), item("b2", "2025-06-13", "10:00")},
		Events:   []Item{item("e1", "2025-06-14", ""), item("e2", "2025-06-13", "10:00")},
		Sports:   []Item{item("s1", "2025-06-15", "19:00")},
	}

	first := Aggregate(juneWindow(), sources, 0)
	second := Aggregate(juneWindow(), sources, 0)

	assert.Equal(t, first, second)
}

func TestAggregate_DropsItemsOutsideWindow(t *testing.T) {
	// Most sources query by window, but the sports API's filtering is not
	// ours to trust, so the aggregator re-checks every item.
	multiDay := item("spills-in", "2025-05-30", "")
	multiDay.EndDate = "2025-06-02"

	sources := Sources{
		Events: []Item{item("in-window", "2025-06-14", "09:00"), multiDay},
		Sports: []Item{
			item("stale-game", "2025-07-02", "19:00"),
			item("undated-game", "TBD", ""),
		},
	}

	result := Aggregate(juneWindow(), sources, 0)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "spills-in", result.Items[0].ID, "a span overlapping the window start stays")
	assert.Equal(t, "in-window", result.Items[1].ID)
	assert.Equal(t, 2, result.Total, "excluded items do not count toward the total")
}

func TestAggregate_TruncationKeepsFullCounts(t *testing.T) {
	sources := Sources{
		Traditions: []Item{
			item("t1", "2025-06-13", "", BadgeTradition),
			item("t2", "2025-06-15", "", BadgeTradition),
		},
		Events: []Item{
			item("e1", "2025-06-14", "09:00"),
			item("e2", "2025-06-14", "12:00"),
			item("e3", "2025-06-16", "12:00"),
		},
	}

	result := Aggregate(juneWindow(), sources, 2)

	assert.Len(t, result.Items, 2)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 2, result.TraditionCount, "counts cover the window, not the truncated page")
	assert.Equal(t, "t1", result.Items[0].ID)
	assert.Equal(t, "e1", result.Items[1].ID)
}

func TestAggregate_DoesNotMutateInputs(t *testing.T) {
	bigBoard := []Item{item("b2", "2025-06-15", ""), item("b1", "2025-06-13", "")}
	sources := Sources{BigBoard: bigBoard}

	_ = Aggregate(juneWindow(), sources, 1)

	assert.Equal(t, "b2", bigBoard[0].ID)
	assert.Equal(t, "b1", bigBoard[1].ID)
}

func TestAggregate_EmptySources(t *testing.T) {
	result := Aggregate(juneWindow(), Sources{}, 24)

	assert.Empty(t, result.Items)
	assert.Zero(t, result.Total)
	assert.Zero(t, result.TraditionCount)
}
