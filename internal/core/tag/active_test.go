// Copyright (c) 2026 Our Philly. All rights reserved.

package tag

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ourphilly/ourphilly/pkg/pointer"
)

var philly, _ = time.LoadLocation("America/New_York")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func day(value string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", value, philly)
	return t
}

func TestTag_ActiveOn_Evergreen(t *testing.T) {
	evergreen := &Tag{ID: "t1", Name: "Free Food"}
	assert.True(t, evergreen.ActiveOn(day("2025-06-15"), philly, discardLogger()))
}

func TestTag_ActiveOn_RuleWindow(t *testing.T) {
	stPatricks := &Tag{
		ID:    "t2",
		Name:  "St. Patrick's",
		RRule: pointer.To("FREQ=YEARLY;BYMONTH=3;BYMONTHDAY=17"),
	}

	tests := []struct {
		name string
		day  string
		want bool
	}{
		{"eight_days_before", "2025-03-09", false},
		{"week_before_opens_window", "2025-03-10", true},
		{"day_of", "2025-03-17", true},
		{"day_after", "2025-03-18", false},
		{"two_days_after", "2025-03-19", false},
		{"midsummer", "2025-07-01", false},
		{"next_year_window", "2026-03-12", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stPatricks.ActiveOn(day(tt.day), philly, discardLogger()))
		})
	}
}

func TestTag_ActiveOn_SeasonBounds(t *testing.T) {
	holiday := &Tag{
		ID:          "t3",
		Name:        "Holiday Markets",
		SeasonStart: pointer.To("2025-11-28"),
		SeasonEnd:   pointer.To("2025-12-31"),
	}

	tests := []struct {
		name string
		day  string
		want bool
	}{
		{"eight_days_before_start", "2025-11-20", false},
		{"week_before_start", "2025-11-21", true},
		{"mid_season", "2025-12-15", true},
		{"last_day", "2025-12-31", true},
		{"day_after_end", "2026-01-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, holiday.ActiveOn(day(tt.day), philly, discardLogger()))
		})
	}
}

func TestTag_ActiveOn_SingleDaySeason(t *testing.T) {
	oneDay := &Tag{
		ID:          "t4",
		Name:        "Broad Street Run",
		SeasonStart: pointer.To("2025-05-04"),
		SeasonEnd:   pointer.To("2025-05-04"),
	}

	assert.True(t, oneDay.ActiveOn(day("2025-04-27"), philly, discardLogger()), "week before")
	assert.True(t, oneDay.ActiveOn(day("2025-05-04"), philly, discardLogger()), "day of")
	assert.False(t, oneDay.ActiveOn(day("2025-05-05"), philly, discardLogger()), "day after")
	assert.False(t, oneDay.ActiveOn(day("2025-04-26"), philly, discardLogger()), "eight days before")
}

func TestTag_ActiveOn_MalformedSeasonalIsInactive(t *testing.T) {
	tests := []struct {
		name string
		tag  *Tag
	}{
		{"bad_rrule", &Tag{ID: "t5", Name: "Broken", RRule: pointer.To("EVERY=SOMETIMES")}},
		{"bad_bounds", &Tag{ID: "t6", Name: "Broken", SeasonStart: pointer.To("spring"), SeasonEnd: pointer.To("fall")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.tag.ActiveOn(day("2025-06-15"), philly, discardLogger()))
		})
	}
}

func TestTag_Seasonal(t *testing.T) {
	assert.False(t, (&Tag{Name: "Evergreen"}).Seasonal())
	assert.True(t, (&Tag{Name: "Rule", RRule: pointer.To("FREQ=YEARLY")}).Seasonal())
	assert.True(t, (&Tag{Name: "Bounds", SeasonStart: pointer.To("2025-01-01"), SeasonEnd: pointer.To("2025-02-01")}).Seasonal())
	assert.False(t, (&Tag{Name: "HalfBounds", SeasonStart: pointer.To("2025-01-01")}).Seasonal())
}
