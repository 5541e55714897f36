package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pe51k/tagtally/internal/domain"
)

// PeriodLabel renders a canonical period key as a human-readable label:
// "Jan 05, 2024" for days, "Week 2, 2024" for weeks, "January 2024" for
// months. Pure presentation; keys that fail to parse are returned verbatim
// so a malformed key stays visible instead of crashing the report.
func PeriodLabel(key string, g domain.Granularity) string {
	switch g {
	case domain.GranularityWeek:
		parts := strings.Split(key, "-W")
		if len(parts) != 2 {
			return key
		}
		week, err := strconv.Atoi(parts[1])
		if err != nil {
			return key
		}
		return fmt.Sprintf("Week %d, %s", week, parts[0])
	case domain.GranularityMonth:
		t, err := time.Parse("2006-01", key)
		if err != nil {
			return key
		}
		return t.Format("January 2006")
	default:
		t, err := time.Parse("2006-01-02", key)
		if err != nil {
			return key
		}
		return t.Format("Jan 02, 2006")
	}
}

// FormatDuration converts a duration into a compact "2h 30m" form.
// Sub-minute durations show as "0m"; zero stays "0m".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}
	total := int(d.Minutes())
	h := total / 60
	m := total % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatHours renders a duration as decimal hours, e.g. "2.5h".
func FormatHours(d time.Duration) string {
	return fmt.Sprintf("%.1fh", d.Hours())
}

// FormatShare renders part/whole as a percentage, "-" when whole is zero.
func FormatShare(part, whole time.Duration) string {
	if whole <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", float64(part)/float64(whole)*100)
}

// HumanDate returns a short absolute date, e.g. "Jan 8, 2024".
func HumanDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
