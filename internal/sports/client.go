// Copyright (c) 2026 Our Philly. All rights reserved.

package sports

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ourphilly/ourphilly/internal/platform/constants"
)

const (
	perPage  = 50
	maxPages = 4 // per team per request; a season window never needs more
)

// Client talks to the ticketing API.
type Client struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
	location   *time.Location
	logger     *slog.Logger
}

func NewClient(baseURL, clientID string, location *time.Location, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		clientID: clientID,
		httpClient: &http.Client{
			Timeout: constants.OutboundFetchTimeout,
		},
		location: location,
		logger:   logger,
	}
}

// Enabled reports whether the client is configured; without an API key the
// sports source contributes nothing instead of failing.
func (client *Client) Enabled() bool {
	return client.clientID != ""
}

// upstream payload shapes, trimmed to what we read.
type apiResponse struct {
	Events []apiEvent `json:"events"`
	Meta   apiMeta    `json:"meta"`
}

type apiMeta struct {
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

type apiEvent struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	DatetimeLocal string `json:"datetime_local"` // 2006-01-02T15:04:05
	TimeTBD       bool   `json:"time_tbd"`
	URL           string `json:"url"`
	Venue         struct {
		Name string `json:"name"`
	} `json:"venue"`
}

// ListEventsInWindow returns home games for all tracked teams whose local
// start date falls inside [start, end]. Teams are fetched concurrently; a
// failure for one team fails the whole call, and the caller decides whether
// to degrade.
func (client *Client) ListEventsInWindow(context context.Context, start, end time.Time) ([]*Event, error) {
	if !client.Enabled() {
		return nil, nil
	}

	results := make([][]*Event, len(teamSlugs))
	group, groupContext := errgroup.WithContext(context)

	for index, team := range teamSlugs {
		group.Go(func() error {
			events, err := client.fetchTeam(groupContext, team, start, end)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", team, err)
			}
			results[index] = events
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var flattened []*Event
	for _, events := range results {
		flattened = append(flattened, events...)
	}
	return flattened, nil
}

func (client *Client) fetchTeam(context context.Context, team string, start, end time.Time) ([]*Event, error) {
	var events []*Event

	for page := 1; page <= maxPages; page++ {
		response, err := client.fetchPage(context, team, start, end, page)
		if err != nil {
			return nil, err
		}

		for _, raw := range response.Events {
			event, ok := client.normalize(raw, team)
			if !ok {
				continue
			}
			events = append(events, event)
		}

		if response.Meta.Page*response.Meta.PerPage >= response.Meta.Total {
			break
		}
	}
	return events, nil
}

func (client *Client) fetchPage(context context.Context, team string, start, end time.Time, page int) (*apiResponse, error) {
	endpoint, err := url.Parse(client.baseURL + "/events")
	if err != nil {
		return nil, err
	}

	query := endpoint.Query()
	query.Set("client_id", client.clientID)
	query.Set("performers.slug", team)
	query.Set("datetime_local.gte", start.Format("2006-01-02"))
	query.Set("datetime_local.lte", end.Format("2006-01-02"))
	query.Set("per_page", strconv.Itoa(perPage))
	query.Set("page", strconv.Itoa(page))
	endpoint.RawQuery = query.Encode()

	request, err := http.NewRequestWithContext(context, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d", response.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (client *Client) normalize(raw apiEvent, team string) (*Event, bool) {
	startsAt, err := time.ParseInLocation("2006-01-02T15:04:05", raw.DatetimeLocal, client.location)
	if err != nil {
		client.logger.Warn("sports_datetime_unparseable",
			slog.Int64("upstream_id", raw.ID),
			slog.String("datetime_local", raw.DatetimeLocal),
		)
		return nil, false
	}

	event := &Event{
		ID:    fmt.Sprintf("sg-%d", raw.ID),
		Title: raw.Title,
		Date:  startsAt.Format("2006-01-02"),
		Team:  team,
		Venue: raw.Venue.Name,
		URL:   raw.URL,
	}
	if !raw.TimeTBD {
		event.StartTime = startsAt.Format("15:04")
	}
	return event, true
}
