package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pe51k/tagtally/internal/domain"
)

// ErrNoRecords indicates the store holds no usable records for a query that
// needs at least one (e.g. deriving the default report range).
var ErrNoRecords = errors.New("no records found")

// RecordRepo is the read API over the time-tracking record store. Records
// come back with tags already extracted from their descriptions, ready for
// the aggregators. Nil range endpoints leave that side of the range open.
type RecordRepo interface {
	FetchRecords(ctx context.Context, start, end *time.Time) ([]domain.Record, error)
	Count(ctx context.Context) (int, error)
	// TimeRange returns the earliest start and latest end across all records.
	TimeRange(ctx context.Context) (time.Time, time.Time, error)
	// Create inserts a record; used by the demo seeder.
	Create(ctx context.Context, r *domain.Record) error
}
