// Copyright (c) 2026 Our Philly. All rights reserved.

/*
Package calendar provides timezone-correct day boundaries and parsers for the
date string dialects found across the event tables.

Two dialects exist in the data:

  - ISO "YYYY-MM-DD" on events, big-board events, group events, and series.
  - Free-text "M/D/YYYY" on legacy tradition rows, possibly embedded in range
    text ("5/3/2025 through 5/5/2025", "5/3/2025 – 5/5/2025").

Both parsers construct the result at local midnight by integer split. A
timezone-shifting constructor (time.Parse into UTC, then converting) would
move dates across midnight for zones west of UTC, so it is never used here.

Unparseable input fails closed: callers receive ok=false and must exclude the
record rather than guess.
*/
package calendar

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthDayYear matches the first M/D/YYYY token in free text.
var monthDayYear = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)

// Window is an inclusive date range used to filter aggregated events.
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the inclusive range [startA, endA] intersects the
// window. Both boundaries count: an event ending exactly at Window.Start is in.
func (w Window) Overlaps(startA, endA time.Time) bool {
	return !startA.After(w.End) && !endA.Before(w.Start)
}

// # Parsing

// ParseISODateLocal parses "YYYY-MM-DD" into midnight in loc.
//
// Returns ok=false on malformed input, including correctly shaped strings
// with out-of-range components ("2025-13-40").
func ParseISODateLocal(s string, loc *time.Location) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, false
	}
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)

	// time.Date normalizes overflow (Feb 30 -> Mar 2); reject those.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}

	return t, true
}

// ParseMonthDayYearLike extracts the first "M/D/YYYY" token from free text.
//
// Tradition rows store dates as prose, sometimes as a range joined by
// "through", an en dash, or a hyphen. Only the first token matters here;
// the end of a range lives in a separate column.
func ParseMonthDayYearLike(s string, loc *time.Location) (time.Time, bool) {
	match := monthDayYear.FindStringSubmatch(s)
	if match == nil {
		return time.Time{}, false
	}

	month, _ := strconv.Atoi(match[1])
	day, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}

	return t, true
}

// FormatMonthDayYear renders t as "M/D/YYYY" without leading zeros.
func FormatMonthDayYear(t time.Time) string {
	return strconv.Itoa(int(t.Month())) + "/" + strconv.Itoa(t.Day()) + "/" + strconv.Itoa(t.Year())
}

// FormatISODate renders t as "YYYY-MM-DD".
func FormatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// # Windows

// DayWindow returns the window covering the calendar day containing now.
func DayWindow(now time.Time) Window {
	start := midnight(now)
	return Window{Start: start, End: endOfDay(start)}
}

// TomorrowWindow returns the window covering the day after now.
func TomorrowWindow(now time.Time) Window {
	start := midnight(now).AddDate(0, 0, 1)
	return Window{Start: start, End: endOfDay(start)}
}

// fridayOffset maps a weekday to the day delta reaching the anchor Friday.
//
// Saturday and Sunday reach BACK to the Friday that opened the current
// weekend, so the window does not roll forward mid-weekend.
var fridayOffset = map[time.Weekday]int{
	time.Sunday:    -2,
	time.Monday:    4,
	time.Tuesday:   3,
	time.Wednesday: 2,
	time.Thursday:  1,
	time.Friday:    0,
	time.Saturday:  -1,
}

// WeekendWindow returns Friday 00:00 through Sunday 23:59:59.999 of the
// current or upcoming weekend.
func WeekendWindow(now time.Time) Window {
	friday := midnight(now).AddDate(0, 0, fridayOffset[now.Weekday()])
	sunday := friday.AddDate(0, 0, 2)
	return Window{Start: friday, End: endOfDay(sunday)}
}

// MonthWindow returns the 1st 00:00 through last-day 23:59:59.999 of the
// given calendar month in loc.
func MonthWindow(year int, month time.Month, loc *time.Location) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := start.AddDate(0, 1, -1)
	return Window{Start: start, End: endOfDay(last)}
}

// # Internal helpers

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(dayStart time.Time) time.Time {
	return time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), 23, 59, 59, 999_000_000, dayStart.Location())
}
