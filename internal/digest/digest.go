// Copyright (c) 2026 Our Philly. All rights reserved.

/*
Package digest builds and sends the weekly email digest.

Every Wednesday morning the digest collects the coming week's happenings
from the same aggregation pipeline the feed uses, leads with the active
seasonal tags, renders HTML, and dispatches one email per newsletter
subscriber through the transactional email API. An admin endpoint can
trigger the same run on demand.
*/
package digest

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/ourphilly/ourphilly/internal/calendar"
	"github.com/ourphilly/ourphilly/internal/core/tag"
	"github.com/ourphilly/ourphilly/internal/feed"
)

// Digest is one assembled weekly issue.
type Digest struct {
	WeekStart string // YYYY-MM-DD
	WeekEnd   string

	// Total counts every happening in the week, even past the render cap;
	// it is what the subject line reports.
	Total          int
	TraditionCount int
	Items          []feed.Item
	ActiveTags     []*tag.Tag
}

// TagSource is the slice of the tag service the digest needs.
type TagSource interface {
	ListActive(context context.Context) ([]*tag.Tag, error)
}

type Service struct {
	fetcher     *feed.Fetcher
	tags        TagSource
	subscribers SubscriberRepository
	sender      *Sender
	location    *time.Location
	logger      *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

func NewService(
	fetcher *feed.Fetcher,
	tags TagSource,
	subscribers SubscriberRepository,
	sender *Sender,
	location *time.Location,
	logger *slog.Logger,
) *Service {
	return &Service{
		fetcher:     fetcher,
		tags:        tags,
		subscribers: subscribers,
		sender:      sender,
		location:    location,
		logger:      logger,
		now:         time.Now,
	}
}

// Build assembles the issue covering the next seven days.
func (service *Service) Build(context context.Context) (*Digest, error) {
	now := service.now().In(service.location)
	start := calendar.DayWindow(now).Start
	end := calendar.DayWindow(now.AddDate(0, 0, 6)).End
	window := calendar.Window{Start: start, End: end}

	sources := service.fetcher.Fetch(context, window)
	result := feed.Aggregate(window, sources, digestItemCap)

	activeTags, err := service.tags.ListActive(context)
	if err != nil {
		// The digest is still worth sending without the tag rail.
		service.logger.Warn("digest_tags_unavailable", slog.String("error", err.Error()))
		activeTags = nil
	}

	return &Digest{
		WeekStart:      calendar.FormatISODate(start),
		WeekEnd:        calendar.FormatISODate(end),
		Total:          result.Total,
		TraditionCount: result.TraditionCount,
		Items:          result.Items,
		ActiveTags:     activeTags,
	}, nil
}

// SendWeekly builds the issue and emails every subscriber. Individual
// delivery failures are logged and skipped; one bad address never blocks
// the rest of the list.
func (service *Service) SendWeekly(context context.Context) error {
	issue, err := service.Build(context)
	if err != nil {
		return err
	}

	html, err := render(issue)
	if err != nil {
		return fmt.Errorf("render digest: %w", err)
	}

	recipients, err := service.subscribers.ListAll(context)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("This week in Philly: %d traditions, %d happenings", issue.TraditionCount, issue.Total)

	sent := 0
	for _, recipient := range recipients {
		if err := service.sender.Send(context, recipient.Email, subject, html); err != nil {
			service.logger.Error("digest_delivery_failed",
				slog.String("email", recipient.Email),
				slog.String("error", err.Error()),
			)
			continue
		}
		sent++
	}

	service.logger.Info("digest_sent",
		slog.String("week_start", issue.WeekStart),
		slog.Int("recipients", sent),
		slog.Int("items", len(issue.Items)),
	)
	return nil
}

const digestItemCap = 40

var digestTemplate = template.Must(template.New("digest").Parse(`<!doctype html>
<html>
<body>
<h1>This week in Philly</h1>
<p>{{.WeekStart}} &ndash; {{.WeekEnd}}</p>
{{if .ActiveTags}}
<p>In season:
{{range $index, $tag := .ActiveTags}}{{if $index}}, {{end}}{{$tag.Name}}{{end}}
</p>
{{end}}
{{if .TraditionCount}}<p><strong>{{.TraditionCount}}</strong> Philly traditions this week.</p>{{end}}
<ul>
{{range .Items}}
  <li>
    <strong>{{.Title}}</strong>
    &mdash; {{.StartDate}}{{if .StartTime}} at {{.StartTime}}{{end}}
    {{if .GroupName}}<em>({{.GroupName}})</em>{{end}}
  </li>
{{end}}
</ul>
</body>
</html>`))

func render(issue *Digest) (string, error) {
	var buffer bytes.Buffer
	if err := digestTemplate.Execute(&buffer, issue); err != nil {
		return "", err
	}
	return buffer.String(), nil
}
