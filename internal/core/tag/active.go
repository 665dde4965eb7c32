// Copyright (c) 2026 Our Philly. All rights reserved.

package tag

import (
	"log/slog"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/ourphilly/ourphilly/internal/calendar"
)

// A seasonal tag surfaces a week before its occurrence and drops off at
// midnight after the day itself, so "St. Patrick's" shows up while people
// plan and disappears once it has passed.
const (
	activationLeadDays = 7
	// The activation window ends exclusively one day past the occurrence.
	activationWindowTrail = 1
)

// Recurrence anchor for tags. Tag rules describe calendar patterns like
// "yearly on March 17", so any anchor well in the past works.
var tagRuleEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ActiveOn reports whether the tag should be surfaced on the given day.
//
// Evergreen tags are always active. A rule-based tag is active from a week
// before its next occurrence through the occurrence day itself; a
// bounds-based tag from a week before its season start through its season
// end, inclusive. A seasonal tag whose rule or bounds cannot be parsed is
// inactive, never erroneous.
func (tag *Tag) ActiveOn(today time.Time, location *time.Location, logger *slog.Logger) bool {
	if !tag.Seasonal() {
		return true
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, location)

	if tag.RRule != nil && *tag.RRule != "" {
		return tag.activeByRule(day, location, logger)
	}
	return tag.activeByBounds(day, location, logger)
}

func (tag *Tag) activeByRule(day time.Time, location *time.Location, logger *slog.Logger) bool {
	rule, err := rrule.StrToRRule(*tag.RRule)
	if err != nil {
		logger.Warn("tag_rrule_unparseable",
			slog.String("tag_id", tag.ID),
			slog.String("rrule", *tag.RRule),
			slog.String("error", err.Error()),
		)
		return false
	}
	rule.DTStart(tagRuleEpoch.In(location))

	// Search from just past the trailing edge of a finished window, so an
	// occurrence whose window still covers today is found even though the
	// occurrence itself is in the past.
	searchStart := day.AddDate(0, 0, -(activationLeadDays + activationWindowTrail))
	occurrence := rule.After(searchStart, true)
	if occurrence.IsZero() {
		return false
	}

	occurrenceDay := time.Date(occurrence.Year(), occurrence.Month(), occurrence.Day(), 0, 0, 0, 0, location)
	windowStart := occurrenceDay.AddDate(0, 0, -activationLeadDays)
	windowEnd := occurrenceDay.AddDate(0, 0, activationWindowTrail) // exclusive

	return !day.Before(windowStart) && day.Before(windowEnd)
}

func (tag *Tag) activeByBounds(day time.Time, location *time.Location, logger *slog.Logger) bool {
	start, okStart := calendar.ParseISODateLocal(*tag.SeasonStart, location)
	end, okEnd := calendar.ParseISODateLocal(*tag.SeasonEnd, location)
	if !okStart || !okEnd {
		logger.Warn("tag_season_unparseable",
			slog.String("tag_id", tag.ID),
			slog.String("season_start", *tag.SeasonStart),
			slog.String("season_end", *tag.SeasonEnd),
		)
		return false
	}

	windowStart := start.AddDate(0, 0, -activationLeadDays)
	return !day.Before(windowStart) && !day.After(end)
}
