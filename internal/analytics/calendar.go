package analytics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pe51k/tagtally/internal/domain"
)

var (
	// ErrInvalidPeriodKey indicates a period key string that cannot be
	// mapped back to period bounds for the calendar's granularity.
	ErrInvalidPeriodKey = errors.New("invalid period key")
)

// Calendar computes half-open period bounds and canonical string keys for
// one granularity in a fixed location. Periods of a granularity partition
// the timeline: a period's End is always the next period's Start.
//
// Key formats: "2006-01-02" for days, "2006-W02" for weeks (year and week
// number taken from the Monday of the week, week 1 starting at the first
// Monday of that year), "2006-01" for months. Keys sort chronologically.
type Calendar struct {
	Granularity domain.Granularity
	Loc         *time.Location
}

// NewCalendar builds a Calendar. A nil location defaults to time.Local,
// matching how the record store's local-midnight day boundaries behave.
func NewCalendar(g domain.Granularity, loc *time.Location) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{Granularity: g, Loc: loc}
}

func (c Calendar) location() *time.Location {
	if c.Loc == nil {
		return time.Local
	}
	return c.Loc
}

// Bounds returns the [start, end) of the period containing t. Unrecognized
// granularities use day semantics.
func (c Calendar) Bounds(t time.Time) (time.Time, time.Time) {
	t = t.In(c.location())
	switch c.Granularity {
	case domain.GranularityWeek:
		start := startOfWeek(t)
		return start, start.AddDate(0, 0, 7)
	case domain.GranularityMonth:
		start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		return start, start.AddDate(0, 1, 0)
	default:
		start := startOfDay(t)
		return start, start.AddDate(0, 0, 1)
	}
}

// Key returns the canonical string key of the period containing t.
func (c Calendar) Key(t time.Time) string {
	t = t.In(c.location())
	switch c.Granularity {
	case domain.GranularityWeek:
		monday := startOfWeek(t)
		return fmt.Sprintf("%04d-W%02d", monday.Year(), weekNumber(monday))
	case domain.GranularityMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// BoundsForKey is the inverse of Key: it returns the [start, end) bounds
// identified by a canonical key. Malformed keys yield ErrInvalidPeriodKey.
func (c Calendar) BoundsForKey(key string) (time.Time, time.Time, error) {
	loc := c.location()
	switch c.Granularity {
	case domain.GranularityWeek:
		year, week, err := parseWeekKey(key)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start := firstMonday(year, loc).AddDate(0, 0, (week-1)*7)
		// Reject week numbers that fall outside the keyed year.
		if c.Key(start) != key {
			return time.Time{}, time.Time{}, fmt.Errorf("week %q: %w", key, ErrInvalidPeriodKey)
		}
		return start, start.AddDate(0, 0, 7), nil
	case domain.GranularityMonth:
		start, err := time.ParseInLocation("2006-01", key, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("month %q: %w", key, ErrInvalidPeriodKey)
		}
		return start, start.AddDate(0, 1, 0), nil
	default:
		start, err := time.ParseInLocation("2006-01-02", key, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("day %q: %w", key, ErrInvalidPeriodKey)
		}
		return start, start.AddDate(0, 0, 1), nil
	}
}

func parseWeekKey(key string) (year, week int, err error) {
	parts := strings.Split(key, "-W")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("week %q: %w", key, ErrInvalidPeriodKey)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("week %q: %w", key, ErrInvalidPeriodKey)
	}
	week, err = strconv.Atoi(parts[1])
	if err != nil || week < 1 {
		return 0, 0, fmt.Errorf("week %q: %w", key, ErrInvalidPeriodKey)
	}
	return year, week, nil
}

// startOfDay returns midnight of t's calendar date in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startOfWeek returns midnight of the Monday on or before t.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// firstMonday returns midnight of the first Monday of the given year.
func firstMonday(year int, loc *time.Location) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	offset := (8 - int(jan1.Weekday())) % 7
	return jan1.AddDate(0, 0, offset)
}

// weekNumber returns the 1-based week number of a Monday within its year.
func weekNumber(monday time.Time) int {
	fm := firstMonday(monday.Year(), monday.Location())
	return calendarDaysBetween(fm, monday)/7 + 1
}

// calendarDaysBetween counts calendar days from a to b, immune to DST
// making individual local days 23 or 25 hours long.
func calendarDaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
