// Copyright (c) 2026 Our Philly. All rights reserved.

package series

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/ourphilly/ourphilly/internal/calendar"
)

// Each expansion is bounded; a runaway DAILY rule over a month stays far
// below this.
const maxOccurrencesPerSeries = 500

// OccurrenceID builds the stable composite identity for one expansion hit.
func OccurrenceID(seriesID string, date time.Time) string {
	return fmt.Sprintf("%s::%s", seriesID, calendar.FormatISODate(date))
}

// Expand computes the concrete dates a series lands on within [start, end],
// both inclusive, in the given location.
//
// A malformed RRULE or anchor date is treated as "no occurrences": the
// problem is logged and an empty slice returned, so one bad row can never
// take down a feed response.
func Expand(series *Series, start, end time.Time, location *time.Location, logger *slog.Logger) []Occurrence {
	anchor, ok := anchorStart(series, location)
	if !ok {
		logger.Warn("series_anchor_unparseable",
			slog.String("series_id", series.ID),
			slog.String("start_date", series.StartDate),
		)
		return nil
	}

	rule, err := rrule.StrToRRule(series.RRule)
	if err != nil {
		logger.Warn("series_rrule_unparseable",
			slog.String("series_id", series.ID),
			slog.String("rrule", series.RRule),
			slog.String("error", err.Error()),
		)
		return nil
	}
	rule.DTStart(anchor)

	var set rrule.Set
	set.RRule(rule)

	// The recurrence stops at the series end date when one is set.
	rangeEnd := end
	if series.EndDate != nil {
		if until, ok := calendar.ParseISODateLocal(*series.EndDate, location); ok {
			untilEnd := until.Add(24*time.Hour - time.Nanosecond)
			if untilEnd.Before(rangeEnd) {
				rangeEnd = untilEnd
			}
		}
	}
	if rangeEnd.Before(start) {
		return nil
	}

	times := set.Between(start, rangeEnd, true)
	if len(times) > maxOccurrencesPerSeries {
		times = times[:maxOccurrencesPerSeries]
	}

	occurrences := make([]Occurrence, 0, len(times))
	for _, hit := range times {
		local := hit.In(location)
		occurrences = append(occurrences, Occurrence{
			ID:          OccurrenceID(series.ID, local),
			SeriesID:    series.ID,
			Date:        calendar.FormatISODate(local),
			StartTime:   series.StartTime,
			Name:        series.Name,
			Slug:        series.Slug,
			Description: series.Description,
			Address:     series.Address,
			ImageURL:    series.ImageURL,
		})
	}
	return occurrences
}

// NextOccurrence returns the first date the series lands on at or after the
// given moment, false when the rule never fires again.
func NextOccurrence(series *Series, after time.Time, location *time.Location, logger *slog.Logger) (time.Time, bool) {
	horizon := after.AddDate(2, 0, 0)
	hits := Expand(series, after, horizon, location, logger)
	if len(hits) == 0 {
		return time.Time{}, false
	}
	date, ok := calendar.ParseISODateLocal(hits[0].Date, location)
	if !ok {
		return time.Time{}, false
	}
	return date, true
}

// Weekdays lists the human-readable day names a weekly rule fires on, in
// Monday-first order. Non-weekly or malformed rules yield nil.
func Weekdays(rruleText string) []string {
	rule, err := rrule.StrToRRule(rruleText)
	if err != nil {
		return nil
	}

	names := map[string]string{
		"MO": "Monday", "TU": "Tuesday", "WE": "Wednesday", "TH": "Thursday",
		"FR": "Friday", "SA": "Saturday", "SU": "Sunday",
	}

	var out []string
	for _, weekday := range rule.OrigOptions.Byweekday {
		token := weekday.String()
		if len(token) > 2 {
			// Strip an ordinal prefix like "+2" or "-1".
			token = token[len(token)-2:]
		}
		if name, ok := names[token]; ok && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}


func anchorStart(series *Series, location *time.Location) (time.Time, bool) {
	day, ok := calendar.ParseISODateLocal(series.StartDate, location)
	if !ok {
		return time.Time{}, false
	}

	// Fold the start time into the anchor so DTSTART carries it; occurrence
	// identity only uses the date part.
	if series.StartTime != nil {
		parts := strings.SplitN(*series.StartTime, ":", 3)
		if len(parts) >= 2 {
			var hour, minute int
			if _, err := fmt.Sscanf(parts[0]+" "+parts[1], "%d %d", &hour, &minute); err == nil {
				day = day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
			}
		}
	}
	return day, true
}
