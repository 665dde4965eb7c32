// Copyright (c) 2026 Our Philly. All rights reserved.

package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourphilly/ourphilly/internal/calendar"
)

var philly = mustLoad("America/New_York")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func TestParseISODateLocal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		year  int
		month time.Month
		day   int
	}{
		{"valid", "2025-07-04", true, 2025, time.July, 4},
		{"valid_new_year", "2026-01-01", true, 2026, time.January, 1},
		{"month_overflow", "2025-13-01", false, 0, 0, 0},
		{"day_overflow", "2025-02-30", false, 0, 0, 0},
		{"not_a_date", "next tuesday", false, 0, 0, 0},
		{"empty", "", false, 0, 0, 0},
		{"slash_dialect", "7/4/2025", false, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := calendar.ParseISODateLocal(tt.input, philly)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}

			assert.Equal(t, tt.year, got.Year())
			assert.Equal(t, tt.month, got.Month())
			assert.Equal(t, tt.day, got.Day())

			// Local midnight, never a timezone-shifted instant.
			assert.Equal(t, 0, got.Hour())
			assert.Equal(t, philly, got.Location())
		})
	}
}

func TestParseMonthDayYearLike_RoundTrip(t *testing.T) {
	// Re-formatting must reproduce the numeric components of the first token.
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare", "5/3/2025", "5/3/2025"},
		{"leading_zeros", "05/03/2025", "5/3/2025"},
		{"range_through", "5/3/2025 through 5/5/2025", "5/3/2025"},
		{"range_en_dash", "5/3/2025 – 5/5/2025", "5/3/2025"},
		{"range_hyphen", "5/3/2025 - 5/5/2025", "5/3/2025"},
		{"embedded_prose", "Every year on 12/31/2025 at midnight", "12/31/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := calendar.ParseMonthDayYearLike(tt.input, philly)
			require.True(t, ok)
			assert.Equal(t, tt.want, calendar.FormatMonthDayYear(got))
		})
	}
}

func TestParseMonthDayYearLike_FailsClosed(t *testing.T) {
	for _, input := range []string{"", "TBD", "early summer", "2025-05-03", "13/1/2025"} {
		_, ok := calendar.ParseMonthDayYearLike(input, philly)
		assert.False(t, ok, "input %q must not parse", input)
	}
}

func TestWeekendWindow_SpansExactlyTwoDays(t *testing.T) {
	// Anchor week: Mon 2025-06-02 .. Sun 2025-06-08. The expected weekend for
	// every one of those days is Fri 2025-06-06 .. Sun 2025-06-08, except that
	// Sunday 2025-06-01 belongs to the PREVIOUS weekend (Fri 2025-05-30).
	tests := []struct {
		name       string
		now        time.Time
		wantFriday time.Time
	}{
		{"sunday_stays_back", date(2025, 6, 1), date(2025, 5, 30)},
		{"monday", date(2025, 6, 2), date(2025, 6, 6)},
		{"tuesday", date(2025, 6, 3), date(2025, 6, 6)},
		{"wednesday", date(2025, 6, 4), date(2025, 6, 6)},
		{"thursday", date(2025, 6, 5), date(2025, 6, 6)},
		{"friday_starts_today", date(2025, 6, 6), date(2025, 6, 6)},
		{"saturday_stays_back", date(2025, 6, 7), date(2025, 6, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := calendar.WeekendWindow(tt.now)

			assert.Equal(t, tt.wantFriday, w.Start)
			assert.Equal(t, time.Friday, w.Start.Weekday())
			assert.Equal(t, time.Sunday, w.End.Weekday())

			// Friday 00:00 to Sunday 23:59:59.999 for every day-of-week input.
			span := w.End.Sub(w.Start)
			assert.Equal(t, 2*24*time.Hour+23*time.Hour+59*time.Minute+59*time.Second+999*time.Millisecond, span)
		})
	}
}

func TestMonthWindow(t *testing.T) {
	w := calendar.MonthWindow(2025, time.February, philly)

	assert.Equal(t, date(2025, 2, 1), w.Start)
	assert.Equal(t, 28, w.End.Day())
	assert.Equal(t, 23, w.End.Hour())

	leap := calendar.MonthWindow(2024, time.February, philly)
	assert.Equal(t, 29, leap.End.Day())
}

func TestWindow_Overlaps(t *testing.T) {
	w := calendar.Window{Start: date(2025, 7, 4), End: date(2025, 7, 6)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"inside", date(2025, 7, 5), date(2025, 7, 5), true},
		{"spans_whole_window", date(2025, 7, 1), date(2025, 7, 31), true},
		{"ends_on_window_start", date(2025, 7, 1), date(2025, 7, 4), true},
		{"starts_on_window_end", date(2025, 7, 6), date(2025, 7, 9), true},
		{"before", date(2025, 7, 1), date(2025, 7, 3), false},
		{"after", date(2025, 7, 7), date(2025, 7, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Overlaps(tt.start, tt.end))
		})
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, philly)
}
