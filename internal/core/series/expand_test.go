// Copyright (c) 2026 Our Philly. All rights reserved.

package series

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourphilly/ourphilly/pkg/pointer"
)

var philly, _ = time.LoadLocation("America/New_York")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func window(startDate, endDate string) (time.Time, time.Time) {
	start, _ := time.ParseInLocation("2006-01-02", startDate, philly)
	end, _ := time.ParseInLocation("2006-01-02", endDate, philly)
	return start, end.Add(24*time.Hour - time.Millisecond)
}

func TestExpand_WeeklyRule(t *testing.T) {
	weekly := &Series{
		ID:        "run-club",
		Name:      "Schuylkill Run Club",
		Slug:      "schuylkill-run-club",
		RRule:     "FREQ=WEEKLY;BYDAY=MO",
		StartDate: "2025-01-06",
		StartTime: pointer.To("18:00"),
	}

	start, end := window("2025-03-01", "2025-03-31")
	occurrences := Expand(weekly, start, end, philly, discardLogger())

	// March 2025 has five Mondays.
	require.Len(t, occurrences, 5)

	wantDates := []string{"2025-03-03", "2025-03-10", "2025-03-17", "2025-03-24", "2025-03-31"}
	for index, occurrence := range occurrences {
		assert.Equal(t, wantDates[index], occurrence.Date)
		assert.Equal(t, "run-club::"+wantDates[index], occurrence.ID)
		assert.Equal(t, "Schuylkill Run Club", occurrence.Name)
		require.NotNil(t, occurrence.StartTime)
		assert.Equal(t, "18:00", *occurrence.StartTime)
	}
}

func TestExpand_AnchorInsideWindow(t *testing.T) {
	weekly := &Series{
		ID:        "s1",
		RRule:     "FREQ=WEEKLY;BYDAY=WE",
		StartDate: "2025-03-12",
	}

	// The anchor lands mid-window: no occurrences before it.
	start, end := window("2025-03-01", "2025-03-31")
	occurrences := Expand(weekly, start, end, philly, discardLogger())

	require.Len(t, occurrences, 3)
	assert.Equal(t, "2025-03-12", occurrences[0].Date)
	assert.Equal(t, "2025-03-26", occurrences[2].Date)
}

func TestExpand_EndDateBoundsRecurrence(t *testing.T) {
	bounded := &Series{
		ID:        "s2",
		RRule:     "FREQ=WEEKLY;BYDAY=MO",
		StartDate: "2025-03-03",
		EndDate:   pointer.To("2025-03-17"),
	}

	start, end := window("2025-03-01", "2025-03-31")
	occurrences := Expand(bounded, start, end, philly, discardLogger())

	require.Len(t, occurrences, 3)
	assert.Equal(t, "2025-03-17", occurrences[2].Date)
}

func TestExpand_MalformedRuleYieldsNothing(t *testing.T) {
	tests := []struct {
		name   string
		series *Series
	}{
		{"garbage_rrule", &Series{ID: "s3", RRule: "NOT A RULE", StartDate: "2025-01-06"}},
		{"garbage_anchor", &Series{ID: "s4", RRule: "FREQ=WEEKLY;BYDAY=MO", StartDate: "soon"}},
	}

	start, end := window("2025-03-01", "2025-03-31")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Expand(tt.series, start, end, philly, discardLogger()))
		})
	}
}

func TestExpand_DailyRuleIsCapped(t *testing.T) {
	daily := &Series{
		ID:        "s5",
		RRule:     "FREQ=DAILY",
		StartDate: "2020-01-01",
	}

	start, _ := time.ParseInLocation("2006-01-02", "2020-01-01", philly)
	end := start.AddDate(5, 0, 0)
	occurrences := Expand(daily, start, end, philly, discardLogger())

	assert.Len(t, occurrences, maxOccurrencesPerSeries)
}

func TestNextOccurrence(t *testing.T) {
	weekly := &Series{
		ID:        "s6",
		RRule:     "FREQ=WEEKLY;BYDAY=SA",
		StartDate: "2025-01-04",
	}

	// A Wednesday; the next Saturday is 2025-03-08.
	after, _ := time.ParseInLocation("2006-01-02", "2025-03-05", philly)
	next, ok := NextOccurrence(weekly, after, philly, discardLogger())

	require.True(t, ok)
	assert.Equal(t, "2025-03-08", next.Format("2006-01-02"))
}

func TestNextOccurrence_ExhaustedRule(t *testing.T) {
	ended := &Series{
		ID:        "s7",
		RRule:     "FREQ=WEEKLY;BYDAY=SA",
		StartDate: "2024-01-06",
		EndDate:   pointer.To("2024-06-29"),
	}

	after, _ := time.ParseInLocation("2006-01-02", "2025-01-01", philly)
	_, ok := NextOccurrence(ended, after, philly, discardLogger())
	assert.False(t, ok)
}

func TestService_NextOccurrenceDate(t *testing.T) {
	service := NewService(nil, nil, philly, discardLogger())
	service.now = func() time.Time {
		return time.Date(2025, 3, 5, 12, 0, 0, 0, philly)
	}

	weekly := &Series{
		ID:        "s8",
		RRule:     "FREQ=WEEKLY;BYDAY=SA",
		StartDate: "2025-01-04",
	}
	date := service.NextOccurrenceDate(weekly)
	require.NotNil(t, date)
	assert.Equal(t, "2025-03-08", *date)

	ended := &Series{
		ID:        "s9",
		RRule:     "FREQ=WEEKLY;BYDAY=SA",
		StartDate: "2024-01-06",
		EndDate:   pointer.To("2024-06-29"),
	}
	assert.Nil(t, service.NextOccurrenceDate(ended), "an exhausted rule has no next date")
}

func TestWeekdays(t *testing.T) {
	tests := []struct {
		name  string
		rrule string
		want  []string
	}{
		{"single_day", "FREQ=WEEKLY;BYDAY=MO", []string{"Monday"}},
		{"multiple_days", "FREQ=WEEKLY;BYDAY=TU,TH", []string{"Tuesday", "Thursday"}},
		{"no_byday", "FREQ=DAILY", nil},
		{"malformed", "nope", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Weekdays(tt.rrule))
		})
	}
}
