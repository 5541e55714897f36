package service

import (
	"context"
	"time"

	"github.com/pe51k/tagtally/internal/domain"
)

// RangeFilter bounds a report to records within [Start, End]. A nil endpoint
// leaves that side of the range open.
type RangeFilter struct {
	Start *time.Time
	End   *time.Time
}

// Summary holds headline stats for the filtered dataset.
type Summary struct {
	RecordCount    int
	SkippedRecords int // records missing an endpoint
	TotalDuration  time.Duration
	AvgDuration    time.Duration
	UniqueTags     int
	FirstStart     *time.Time
	LastEnd        *time.Time
}

// PeriodMatrix is the period × tag duration matrix behind the stacked bar
// view. Periods and Tags are sorted; period keys sort chronologically by
// construction.
type PeriodMatrix struct {
	Granularity    domain.Granularity
	Periods        []string
	Tags           []string
	Cells          map[string]map[string]time.Duration
	SkippedRecords int
}

// Cell returns the duration for a period/tag pair, zero when absent.
func (m *PeriodMatrix) Cell(period, tag string) time.Duration {
	return m.Cells[period][tag]
}

// PeriodTotal returns the summed duration of all tags in one period.
func (m *PeriodMatrix) PeriodTotal(period string) time.Duration {
	var total time.Duration
	for _, d := range m.Cells[period] {
		total += d
	}
	return total
}

// SunburstView is the flattened tag hierarchy for the drill-down view,
// plus any conservation issues found in the projection.
type SunburstView struct {
	MaxDepth int
	Rows     []domain.SunburstRow
	Total    time.Duration
	Issues   []string
}

// ReportService produces the analytics views consumed by the CLI and the
// dashboard. Fetched records are memoized per range filter; the analytics
// core itself stays stateless.
type ReportService interface {
	Summary(ctx context.Context, f RangeFilter) (*Summary, error)
	PeriodMatrix(ctx context.Context, f RangeFilter, g domain.Granularity) (*PeriodMatrix, error)
	Sunburst(ctx context.Context, f RangeFilter, maxDepth int) (*SunburstView, error)
	// DataRange returns the earliest start and latest end in the store,
	// used to default the filter range.
	DataRange(ctx context.Context) (time.Time, time.Time, error)
	// Invalidate drops memoized fetches, forcing the next call to re-read
	// the store.
	Invalidate()
}

// SeedService populates the store with demo records so the reports are
// usable without an existing Timetagger installation.
type SeedService interface {
	SeedDemo(ctx context.Context, days int) (int, error)
}
