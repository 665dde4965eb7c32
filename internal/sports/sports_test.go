// Copyright (c) 2026 Our Philly. All rights reserved.

package sports

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var philly, _ = time.LoadLocation("America/New_York")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testWindow() (time.Time, time.Time) {
	start, _ := time.ParseInLocation("2006-01-02", "2025-04-01", philly)
	return start, start.AddDate(0, 1, 0)
}

func TestClient_ListEventsInWindow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "test-key", request.URL.Query().Get("client_id"))

		team := request.URL.Query().Get("performers.slug")
		payload := map[string]any{
			"events": []map[string]any{},
			"meta":   map[string]any{"total": 0, "page": 1, "per_page": 50},
		}
		if team == "philadelphia-phillies" {
			payload = map[string]any{
				"events": []map[string]any{
					{
						"id":             7001001,
						"title":          "Phillies at Home",
						"datetime_local": "2025-04-08T18:40:00",
						"url":            "https://tickets.example/7001001",
						"venue":          map[string]any{"name": "Citizens Bank Park"},
					},
					{
						"id":             7001002,
						"title":          "Phillies Day Game",
						"datetime_local": "2025-04-09T13:05:00",
						"time_tbd":       true,
						"venue":          map[string]any{"name": "Citizens Bank Park"},
					},
				},
				"meta": map[string]any{"total": 2, "page": 1, "per_page": 50},
			}
		}
		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(payload)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", philly, discardLogger())
	start, end := testWindow()

	events, err := client.ListEventsInWindow(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "sg-7001001", events[0].ID)
	assert.Equal(t, "2025-04-08", events[0].Date)
	assert.Equal(t, "18:40", events[0].StartTime)
	assert.Equal(t, "Citizens Bank Park", events[0].Venue)
	assert.Equal(t, "philadelphia-phillies", events[0].Team)

	// TBD games keep their date but drop the time.
	assert.Equal(t, "sg-7001002", events[1].ID)
	assert.Empty(t, events[1].StartTime)
}

func TestClient_Pagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		team := request.URL.Query().Get("performers.slug")
		page := request.URL.Query().Get("page")

		payload := map[string]any{
			"events": []map[string]any{},
			"meta":   map[string]any{"total": 0, "page": 1, "per_page": 50},
		}
		if team == "philadelphia-union" {
			id := 8000000
			if page == "2" {
				id = 8000001
			}
			payload = map[string]any{
				"events": []map[string]any{
					{
						"id":             id,
						"title":          fmt.Sprintf("Union Match %s", page),
						"datetime_local": "2025-04-12T19:30:00",
						"venue":          map[string]any{"name": "Subaru Park"},
					},
				},
				"meta": map[string]any{"total": 51, "page": pageNumber(page), "per_page": 50},
			}
		}
		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(payload)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", philly, discardLogger())
	start, end := testWindow()

	events, err := client.ListEventsInWindow(context.Background(), start, end)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestClient_UpstreamErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", philly, discardLogger())
	start, end := testWindow()

	_, err := client.ListEventsInWindow(context.Background(), start, end)
	assert.Error(t, err)
}

func TestClient_DisabledWithoutKey(t *testing.T) {
	client := NewClient("http://unused.invalid", "", philly, discardLogger())
	start, end := testWindow()

	events, err := client.ListEventsInWindow(context.Background(), start, end)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.False(t, client.Enabled())
}

func TestEvent_StartsAt(t *testing.T) {
	timed := &Event{Date: "2025-04-08", StartTime: "18:40"}
	at, ok := timed.StartsAt(philly)
	require.True(t, ok)
	assert.Equal(t, "2025-04-08 18:40", at.Format("2006-01-02 15:04"))

	dateOnly := &Event{Date: "2025-04-08"}
	at, ok = dateOnly.StartsAt(philly)
	require.True(t, ok)
	assert.Equal(t, "2025-04-08 00:00", at.Format("2006-01-02 15:04"))

	_, ok = (&Event{Date: "soon"}).StartsAt(philly)
	assert.False(t, ok)
}

func pageNumber(value string) int {
	if value == "" {
		return 1
	}
	n, _ := strconv.Atoi(value)
	return n
}
