package analytics

import (
	"testing"
	"time"

	"github.com/pe51k/tagtally/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumContributions(contribs []Contribution) time.Duration {
	var total time.Duration
	for _, c := range contribs {
		total += c.Duration
	}
	return total
}

func TestSplit_SinglePeriod(t *testing.T) {
	cal := NewCalendar(domain.GranularityDay, time.UTC)
	start := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	end := start.Add(150 * time.Minute)

	contribs := Split(start, end, cal)

	require.Len(t, contribs, 1)
	assert.Equal(t, "2024-01-08", contribs[0].PeriodKey)
	assert.Equal(t, 150*time.Minute, contribs[0].Duration)
}

func TestSplit_CrossesMidnight(t *testing.T) {
	cal := NewCalendar(domain.GranularityDay, time.UTC)
	start := time.Date(2024, 1, 8, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 9, 1, 0, 0, 0, time.UTC)

	contribs := Split(start, end, cal)

	require.Len(t, contribs, 2)
	assert.Equal(t, Contribution{PeriodKey: "2024-01-08", Duration: time.Hour}, contribs[0])
	assert.Equal(t, Contribution{PeriodKey: "2024-01-09", Duration: time.Hour}, contribs[1])
}

func TestSplit_SpansManyPeriods(t *testing.T) {
	cal := NewCalendar(domain.GranularityDay, time.UTC)
	start := time.Date(2024, 1, 8, 18, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 12, 6, 0, 0, 0, time.UTC)

	contribs := Split(start, end, cal)

	require.Len(t, contribs, 5)
	assert.Equal(t, 6*time.Hour, contribs[0].Duration)
	assert.Equal(t, 24*time.Hour, contribs[1].Duration)
	assert.Equal(t, 24*time.Hour, contribs[2].Duration)
	assert.Equal(t, 24*time.Hour, contribs[3].Duration)
	assert.Equal(t, 6*time.Hour, contribs[4].Duration)
	assert.Equal(t, end.Sub(start), sumContributions(contribs))
}

func TestSplit_ZeroLength(t *testing.T) {
	cal := NewCalendar(domain.GranularityDay, time.UTC)
	at := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

	contribs := Split(at, at, cal)

	require.Len(t, contribs, 1, "degenerate records stay visible to aggregations")
	assert.Equal(t, "2024-01-10", contribs[0].PeriodKey)
	assert.Equal(t, time.Duration(0), contribs[0].Duration)
}

func TestSplit_BoundaryAligned(t *testing.T) {
	cal := NewCalendar(domain.GranularityDay, time.UTC)
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	contribs := Split(start, end, cal)

	require.Len(t, contribs, 1, "an exact-day interval belongs to one period only")
	assert.Equal(t, 24*time.Hour, contribs[0].Duration)
}

func TestSplit_DurationConservation(t *testing.T) {
	intervals := []struct {
		name       string
		start, end time.Time
	}{
		{"sub-second", time.Date(2024, 1, 8, 10, 0, 0, 250_000_000, time.UTC), time.Date(2024, 1, 8, 10, 0, 1, 750_000_000, time.UTC)},
		{"across week boundary", time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC), time.Date(2024, 1, 9, 8, 30, 0, 0, time.UTC)},
		{"across month boundary", time.Date(2024, 1, 30, 6, 0, 0, 0, time.UTC), time.Date(2024, 2, 2, 18, 0, 0, 0, time.UTC)},
		{"across year boundary", time.Date(2024, 12, 28, 0, 0, 0, 1, time.UTC), time.Date(2025, 1, 3, 23, 59, 59, 999_999_999, time.UTC)},
		{"three-plus months", time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC), time.Date(2024, 7, 2, 19, 15, 0, 0, time.UTC)},
	}

	for _, g := range []domain.Granularity{domain.GranularityDay, domain.GranularityWeek, domain.GranularityMonth} {
		cal := NewCalendar(g, time.UTC)
		for _, iv := range intervals {
			contribs := Split(iv.start, iv.end, cal)
			assert.Equal(t, iv.end.Sub(iv.start), sumContributions(contribs),
				"%s / %s: split must conserve total duration exactly", g, iv.name)
		}
	}
}

func TestSplit_DurationConservation_DST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-10 is the spring-forward date: that local day is 23 hours.
	cal := NewCalendar(domain.GranularityDay, loc)
	start := time.Date(2024, 3, 9, 12, 0, 0, 0, loc)
	end := time.Date(2024, 3, 11, 12, 0, 0, 0, loc)

	contribs := Split(start, end, cal)

	require.Len(t, contribs, 3)
	assert.Equal(t, 23*time.Hour, contribs[1].Duration, "the DST day is one hour short")
	assert.Equal(t, end.Sub(start), sumContributions(contribs))
}
