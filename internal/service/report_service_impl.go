package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pe51k/tagtally/internal/analytics"
	"github.com/pe51k/tagtally/internal/domain"
	"github.com/pe51k/tagtally/internal/repository"
)

type reportService struct {
	records  repository.RecordRepo
	loc      *time.Location
	observer UseCaseObserver

	mu    sync.Mutex
	cache map[string][]domain.Record
}

// NewReportService creates a ReportService over the given record repo.
// Period boundaries are computed in loc (nil means local time).
func NewReportService(records repository.RecordRepo, loc *time.Location, observers ...UseCaseObserver) ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &reportService{
		records:  records,
		loc:      loc,
		observer: observerOrNoop(observers),
		cache:    make(map[string][]domain.Record),
	}
}

func (s *reportService) Summary(ctx context.Context, f RangeFilter) (*Summary, error) {
	started := time.Now()

	records, err := s.fetch(ctx, f)
	if err != nil {
		s.observe(ctx, "summary", started, err, nil)
		return nil, err
	}

	sum := &Summary{RecordCount: len(records)}
	uniqueTags := make(map[string]bool)
	complete := 0

	for _, r := range records {
		for _, tag := range r.Tags {
			uniqueTags[tag] = true
		}
		if !r.HasEndpoints() {
			sum.SkippedRecords++
			continue
		}
		complete++
		sum.TotalDuration += r.Duration()
		if sum.FirstStart == nil || r.Start.Before(*sum.FirstStart) {
			sum.FirstStart = r.Start
		}
		if sum.LastEnd == nil || r.End.After(*sum.LastEnd) {
			sum.LastEnd = r.End
		}
	}
	sum.UniqueTags = len(uniqueTags)
	if complete > 0 {
		sum.AvgDuration = sum.TotalDuration / time.Duration(complete)
	}

	s.observe(ctx, "summary", started, nil, map[string]any{
		"records": sum.RecordCount,
		"skipped": sum.SkippedRecords,
	})
	return sum, nil
}

func (s *reportService) PeriodMatrix(ctx context.Context, f RangeFilter, g domain.Granularity) (*PeriodMatrix, error) {
	started := time.Now()

	records, err := s.fetch(ctx, f)
	if err != nil {
		s.observe(ctx, "period_matrix", started, err, nil)
		return nil, err
	}

	cal := analytics.NewCalendar(g, s.loc)
	cells, skipped := analytics.PeriodTagTotals(records, cal)

	matrix := &PeriodMatrix{
		Granularity:    g,
		Cells:          cells,
		SkippedRecords: skipped,
	}

	tagSet := make(map[string]bool)
	for period, byTag := range cells {
		matrix.Periods = append(matrix.Periods, period)
		for tag := range byTag {
			tagSet[tag] = true
		}
	}
	sort.Strings(matrix.Periods)
	for tag := range tagSet {
		matrix.Tags = append(matrix.Tags, tag)
	}
	sort.Strings(matrix.Tags)

	s.observe(ctx, "period_matrix", started, nil, map[string]any{
		"granularity": string(g),
		"periods":     len(matrix.Periods),
		"tags":        len(matrix.Tags),
		"skipped":     skipped,
	})
	return matrix, nil
}

func (s *reportService) Sunburst(ctx context.Context, f RangeFilter, maxDepth int) (*SunburstView, error) {
	started := time.Now()

	records, err := s.fetch(ctx, f)
	if err != nil {
		s.observe(ctx, "sunburst", started, err, nil)
		return nil, err
	}

	root := analytics.BuildHierarchy(records, maxDepth)
	rows := analytics.FlattenSunburst(root, maxDepth)
	issues := analytics.ConservationIssues(rows)

	s.observe(ctx, "sunburst", started, nil, map[string]any{
		"max_depth":          maxDepth,
		"rows":               len(rows),
		"conservation_flags": len(issues),
	})
	return &SunburstView{
		MaxDepth: maxDepth,
		Rows:     rows,
		Total:    root.Value(),
		Issues:   issues,
	}, nil
}

func (s *reportService) DataRange(ctx context.Context) (time.Time, time.Time, error) {
	start, end, err := s.records.TimeRange(ctx)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("determining data range: %w", err)
	}
	return start, end, nil
}

func (s *reportService) Invalidate() {
	s.mu.Lock()
	s.cache = make(map[string][]domain.Record)
	s.mu.Unlock()
}

// fetch loads records for the filter, memoizing per range so that the
// summary, matrix and sunburst views of one report share a single read.
func (s *reportService) fetch(ctx context.Context, f RangeFilter) ([]domain.Record, error) {
	key := rangeKey(f)

	s.mu.Lock()
	cached, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	records, err := s.records.FetchRecords(ctx, f.Start, f.End)
	if err != nil {
		return nil, fmt.Errorf("fetching records: %w", err)
	}

	s.mu.Lock()
	s.cache[key] = records
	s.mu.Unlock()
	return records, nil
}

func rangeKey(f RangeFilter) string {
	start, end := "-", "-"
	if f.Start != nil {
		start = fmt.Sprintf("%d", f.Start.Unix())
	}
	if f.End != nil {
		end = fmt.Sprintf("%d", f.End.Unix())
	}
	return start + ".." + end
}

func (s *reportService) observe(ctx context.Context, name string, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
