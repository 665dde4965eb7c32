// Copyright (c) 2026 Our Philly. All rights reserved.

package digest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourphilly/ourphilly/internal/core/bigboard"
	"github.com/ourphilly/ourphilly/internal/core/event"
	"github.com/ourphilly/ourphilly/internal/core/group"
	"github.com/ourphilly/ourphilly/internal/core/series"
	"github.com/ourphilly/ourphilly/internal/core/tag"
	"github.com/ourphilly/ourphilly/internal/core/tradition"
	"github.com/ourphilly/ourphilly/internal/feed"
	"github.com/ourphilly/ourphilly/internal/sports"
)

var philly, _ = time.LoadLocation("America/New_York")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Quiet single-source stubs so Build runs against a real fetcher.

type stubBigBoard struct{}

func (stubBigBoard) ListEventsInWindow(context.Context, time.Time, time.Time) ([]*bigboard.Event, error) {
	return nil, nil
}
func (stubBigBoard) ImageURL(*bigboard.Event) string { return "" }

type stubTraditions struct{}

func (stubTraditions) ListInWindow(context.Context, time.Time, time.Time) ([]*tradition.Tradition, error) {
	return nil, nil
}

type stubEvents struct{ rows []*event.Event }

func (s stubEvents) ListInWindow(context.Context, time.Time, time.Time) ([]*event.Event, error) {
	return s.rows, nil
}

type stubSeries struct{}

func (stubSeries) ListOccurrencesInWindow(context.Context, time.Time, time.Time) ([]series.Occurrence, error) {
	return nil, nil
}

type stubGroups struct{}

func (stubGroups) ListEventsInWindow(context.Context, time.Time, time.Time) ([]*group.Event, error) {
	return nil, nil
}

type stubSports struct{}

func (stubSports) ListEventsInWindow(context.Context, time.Time, time.Time) ([]*sports.Event, error) {
	return nil, nil
}

type stubTags struct{ tags []*tag.Tag }

func (s stubTags) ListActive(context.Context) ([]*tag.Tag, error) { return s.tags, nil }

func TestService_BuildReportsFullWeekTotal(t *testing.T) {
	rows := make([]*event.Event, 0, 45)
	for index := 0; index < 45; index++ {
		rows = append(rows, &event.Event{
			ID:        fmt.Sprintf("e%02d", index),
			Name:      fmt.Sprintf("Happening %02d", index),
			Slug:      fmt.Sprintf("happening-%02d", index),
			StartDate: "2025-06-14",
		})
	}

	fetcher := feed.NewFetcher(
		stubBigBoard{}, stubTraditions{}, stubEvents{rows: rows},
		stubSeries{}, stubGroups{}, stubSports{},
		philly, discardLogger(),
	)

	service := NewService(fetcher, stubTags{}, nil, nil, philly, discardLogger())
	service.now = func() time.Time {
		return time.Date(2025, 6, 13, 8, 0, 0, 0, philly)
	}

	issue, err := service.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-06-13", issue.WeekStart)
	assert.Equal(t, "2025-06-19", issue.WeekEnd)
	assert.Len(t, issue.Items, 40, "the rendered list stops at the cap")
	assert.Equal(t, 45, issue.Total, "the total counts the whole week, not the rendered page")
}
