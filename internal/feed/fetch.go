// Copyright (c) 2026 Our Philly. All rights reserved.

package feed

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ourphilly/ourphilly/internal/calendar"
	"github.com/ourphilly/ourphilly/internal/core/bigboard"
	"github.com/ourphilly/ourphilly/internal/core/event"
	"github.com/ourphilly/ourphilly/internal/core/group"
	"github.com/ourphilly/ourphilly/internal/core/series"
	"github.com/ourphilly/ourphilly/internal/core/tradition"
	"github.com/ourphilly/ourphilly/internal/sports"
	"github.com/ourphilly/ourphilly/pkg/slice"
)

// The per-source contracts the fetcher needs; each is satisfied by the
// corresponding domain service.

type BigBoardSource interface {
	ListEventsInWindow(context context.Context, start, end time.Time) ([]*bigboard.Event, error)
	ImageURL(event *bigboard.Event) string
}

type TraditionSource interface {
	ListInWindow(context context.Context, start, end time.Time) ([]*tradition.Tradition, error)
}

type EventSource interface {
	ListInWindow(context context.Context, start, end time.Time) ([]*event.Event, error)
}

type SeriesSource interface {
	ListOccurrencesInWindow(context context.Context, start, end time.Time) ([]series.Occurrence, error)
}

type GroupSource interface {
	ListEventsInWindow(context context.Context, start, end time.Time) ([]*group.Event, error)
}

type SportsSource interface {
	ListEventsInWindow(context context.Context, start, end time.Time) ([]*sports.Event, error)
}

// Sources holds the normalized per-source results for one window, in the
// order they will be concatenated.
type Sources struct {
	BigBoard   []Item
	Traditions []Item
	Events     []Item
	Series     []Item
	Groups     []Item
	Sports     []Item
}

// Fetcher pulls all six sources for a window.
type Fetcher struct {
	bigBoard   BigBoardSource
	traditions TraditionSource
	events     EventSource
	series     SeriesSource
	groups     GroupSource
	sports     SportsSource

	location *time.Location
	logger   *slog.Logger
}

func NewFetcher(
	bigBoard BigBoardSource,
	traditions TraditionSource,
	events EventSource,
	seriesSource SeriesSource,
	groups GroupSource,
	sportsSource SportsSource,
	location *time.Location,
	logger *slog.Logger,
) *Fetcher {
	return &Fetcher{
		bigBoard:   bigBoard,
		traditions: traditions,
		events:     events,
		series:     seriesSource,
		groups:     groups,
		sports:     sportsSource,
		location:   location,
		logger:     logger,
	}
}

// Fetch loads every source concurrently for the window.
//
// A failing source is logged and contributes an empty slice; the feed
// degrades by omission, never by erroring out.
func (fetcher *Fetcher) Fetch(context context.Context, window calendar.Window) Sources {
	var sources Sources
	group, groupContext := errgroup.WithContext(context)

	group.Go(func() error {
		sources.BigBoard = fetcher.fetchBigBoard(groupContext, window)
		return nil
	})
	group.Go(func() error {
		sources.Traditions = fetcher.fetchTraditions(groupContext, window)
		return nil
	})
	group.Go(func() error {
		sources.Events = fetcher.fetchEvents(groupContext, window)
		return nil
	})
	group.Go(func() error {
		sources.Series = fetcher.fetchSeries(groupContext, window)
		return nil
	})
	group.Go(func() error {
		sources.Groups = fetcher.fetchGroups(groupContext, window)
		return nil
	})
	group.Go(func() error {
		sources.Sports = fetcher.fetchSports(groupContext, window)
		return nil
	})

	// No goroutine returns an error; Wait is for completion only.
	_ = group.Wait()
	return sources
}

func (fetcher *Fetcher) fetchBigBoard(context context.Context, window calendar.Window) []Item {
	rows, err := fetcher.bigBoard.ListEventsInWindow(context, window.Start, window.End)
	if err != nil {
		fetcher.logSourceFailure(SourceBigBoard, err)
		return nil
	}

	return slice.Map(rows, func(row *bigboard.Event) Item {
		return fromBigBoard(row, fetcher.bigBoard.ImageURL(row))
	})
}

func (fetcher *Fetcher) fetchTraditions(context context.Context, window calendar.Window) []Item {
	rows, err := fetcher.traditions.ListInWindow(context, window.Start, window.End)
	if err != nil {
		fetcher.logSourceFailure(SourceTraditions, err)
		return nil
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		if item, ok := fromTradition(row, fetcher.location); ok {
			items = append(items, item)
		}
	}
	return items
}

func (fetcher *Fetcher) fetchEvents(context context.Context, window calendar.Window) []Item {
	rows, err := fetcher.events.ListInWindow(context, window.Start, window.End)
	if err != nil {
		fetcher.logSourceFailure(SourceEvents, err)
		return nil
	}

	return slice.Map(rows, fromEvent)
}

func (fetcher *Fetcher) fetchSeries(context context.Context, window calendar.Window) []Item {
	occurrences, err := fetcher.series.ListOccurrencesInWindow(context, window.Start, window.End)
	if err != nil {
		fetcher.logSourceFailure(SourceSeries, err)
		return nil
	}

	return slice.Map(occurrences, fromOccurrence)
}

func (fetcher *Fetcher) fetchGroups(context context.Context, window calendar.Window) []Item {
	rows, err := fetcher.groups.ListEventsInWindow(context, window.Start, window.End)
	if err != nil {
		fetcher.logSourceFailure(SourceGroups, err)
		return nil
	}

	return slice.Map(rows, fromGroupEvent)
}

func (fetcher *Fetcher) fetchSports(context context.Context, window calendar.Window) []Item {
	rows, err := fetcher.sports.ListEventsInWindow(context, window.Start, window.End)
	if err != nil {
		fetcher.logSourceFailure(SourceSports, err)
		return nil
	}

	return slice.Map(rows, fromSports)
}

func (fetcher *Fetcher) logSourceFailure(source string, err error) {
	fetcher.logger.Error("feed_source_failed",
		slog.String("source", source),
		slog.String("error", err.Error()),
	)
}
