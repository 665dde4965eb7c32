// Copyright (c) 2026 Our Philly. All rights reserved.

package feed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ourphilly/ourphilly/internal/calendar"
	"github.com/ourphilly/ourphilly/internal/core/bigboard"
	"github.com/ourphilly/ourphilly/internal/core/event"
	"github.com/ourphilly/ourphilly/internal/core/group"
	"github.com/ourphilly/ourphilly/internal/core/series"
	"github.com/ourphilly/ourphilly/internal/core/tradition"
	"github.com/ourphilly/ourphilly/internal/sports"
)

var philly, _ = time.LoadLocation("America/New_York")

type stubSources struct {
	bigBoardErr error
	eventsErr   error
}

func (s *stubSources) ListEventsInWindow(context.Context, time.Time, time.Time) ([]*bigboard.Event, error) {
	if s.bigBoardErr != nil {
		return nil, s.bigBoardErr
	}
	return []*bigboard.Event{{ID: "bb-1", Title: "Flyer Night", Slug: "flyer-night", StartDate: "2025-06-14"}}, nil
}

func (s *stubSources) ImageURL(*bigboard.Event) string { return "https://img.example/flyer.png" }

type stubTraditions struct{}

func (stubTraditions) ListInWindow(context.Context, time.Time, time.Time) ([]*tradition.Tradition, error) {
	return []*tradition.Tradition{{ID: "tr-1", Name: "Odunde Festival", Slug: "odunde", Dates: "6/14/2025"}}, nil
}

type stubEvents struct{ err error }

func (s stubEvents) ListInWindow(context.Context, time.Time, time.Time) ([]*event.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*event.Event{{ID: "ev-1", Name: "Block Party", Slug: "block-party", StartDate: "2025-06-14"}}, nil
}

type stubSeries struct{}

func (stubSeries) ListOccurrencesInWindow(context.Context, time.Time, time.Time) ([]series.Occurrence, error) {
	return []series.Occurrence{{ID: "se-1::2025-06-14", SeriesID: "se-1", Date: "2025-06-14", Name: "Run Club", Slug: "run-club"}}, nil
}

type stubGroups struct{}

func (stubGroups) ListEventsInWindow(context.Context, time.Time, time.Time) ([]*group.Event, error) {
	return []*group.Event{{ID: "gr-1", Title: "Cleanup", GroupName: "Friends of the Park", GroupSlug: "friends", StartDate: "2025-06-14"}}, nil
}

type stubSports struct{}

func (stubSports) ListEventsInWindow(context.Context, time.Time, time.Time) ([]*sports.Event, error) {
	return []*sports.Event{{ID: "sg-1", Title: "Phillies vs Mets", Date: "2025-06-14"}}, nil
}

func newTestFetcher(stub *stubSources, events stubEvents) *Fetcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewFetcher(stub, stubTraditions{}, events, stubSeries{}, stubGroups{}, stubSports{}, philly, logger)
}

func testDayWindow() calendar.Window {
	day, _ := time.ParseInLocation("2006-01-02", "2025-06-14", philly)
	return calendar.DayWindow(day)
}

func TestFetcher_AllSourcesContribute(t *testing.T) {
	fetcher := newTestFetcher(&stubSources{}, stubEvents{})

	sources := fetcher.Fetch(context.Background(), testDayWindow())

	assert.Len(t, sources.BigBoard, 1)
	assert.Len(t, sources.Traditions, 1)
	assert.Len(t, sources.Events, 1)
	assert.Len(t, sources.Series, 1)
	assert.Len(t, sources.Groups, 1)
	assert.Len(t, sources.Sports, 1)

	assert.Equal(t, "https://img.example/flyer.png", sources.BigBoard[0].ImageURL)
	assert.Equal(t, []Badge{BadgeTradition}, sources.Traditions[0].Badges)
	assert.Equal(t, "/series/run-club/2025-06-14", sources.Series[0].DetailPath)
	assert.Equal(t, "Friends of the Park", sources.Groups[0].GroupName)
}

func TestFetcher_FailedSourceDegradesToEmpty(t *testing.T) {
	fetcher := newTestFetcher(
		&stubSources{bigBoardErr: errors.New("connection refused")},
		stubEvents{err: errors.New("timeout")},
	)

	sources := fetcher.Fetch(context.Background(), testDayWindow())

	assert.Empty(t, sources.BigBoard)
	assert.Empty(t, sources.Events)
	// The healthy sources are unaffected.
	assert.Len(t, sources.Traditions, 1)
	assert.Len(t, sources.Sports, 1)
}
