package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pe51k/tagtally/internal/domain"
	"github.com/pe51k/tagtally/internal/repository"
)

type seedService struct {
	records repository.RecordRepo
	loc     *time.Location
}

// NewSeedService creates a SeedService writing demo records through the repo.
func NewSeedService(records repository.RecordRepo, loc *time.Location) SeedService {
	if loc == nil {
		loc = time.Local
	}
	return &seedService{records: records, loc: loc}
}

// demo entry templates spread across a typical day; the overnight entry
// exercises period splitting in the resulting reports.
var demoEntries = []struct {
	description string
	startHour   int
	minutes     int
	everyNDays  int
}{
	{"#work #projA deep focus", 9, 150, 1},
	{"#work #meetings standup", 12, 30, 1},
	{"#work #projB code review", 14, 90, 2},
	{"#life #gym strength", 18, 60, 2},
	{"reading before bed", 21, 45, 3},
	{"#work #projA late shift", 23, 120, 5},
}

// SeedDemo inserts demo records covering the last `days` days, newest day
// first. Returns the number of records created.
func (s *seedService) SeedDemo(ctx context.Context, days int) (int, error) {
	if days < 1 {
		days = 14
	}

	today := time.Now().In(s.loc)
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.loc)

	created := 0
	for d := 0; d < days; d++ {
		day := midnight.AddDate(0, 0, -d)
		for _, e := range demoEntries {
			if d%e.everyNDays != 0 {
				continue
			}
			start := day.Add(time.Duration(e.startHour) * time.Hour)
			end := start.Add(time.Duration(e.minutes) * time.Minute)

			rec := &domain.Record{
				Key:         uuid.NewString(),
				Start:       &start,
				End:         &end,
				Description: e.description,
				Tags:        domain.ExtractTags(e.description),
			}
			if err := s.records.Create(ctx, rec); err != nil {
				return created, fmt.Errorf("seeding day %s: %w", day.Format("2006-01-02"), err)
			}
			created++
		}
	}
	return created, nil
}
