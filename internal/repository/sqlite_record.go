package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pe51k/tagtally/internal/domain"
)

// recordBlob is the JSON payload stored in the records._ob column. Only the
// fields this tool reads are mapped; everything else in the blob is ignored.
type recordBlob struct {
	Key         string  `json:"key"`
	Start       float64 `json:"t1"`
	End         float64 `json:"t2"`
	Description string  `json:"ds"`
	ModifiedAt  float64 `json:"mt,omitempty"`
	ServerTime  float64 `json:"st,omitempty"`
}

// SQLiteRecordRepo implements RecordRepo over a Timetagger SQLite store.
// Timestamps in the store are Unix epoch seconds; they are materialized
// into the repo's location so period boundaries fall on local midnights.
type SQLiteRecordRepo struct {
	db  *sql.DB
	loc *time.Location
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo. A nil location
// defaults to time.Local.
func NewSQLiteRecordRepo(db *sql.DB, loc *time.Location) *SQLiteRecordRepo {
	if loc == nil {
		loc = time.Local
	}
	return &SQLiteRecordRepo{db: db, loc: loc}
}

// FetchRecords returns parsed records ordered by start descending, tags
// extracted. Rows with a malformed _ob blob are skipped rather than failing
// the whole fetch; partial data is expected from upstream.
func (r *SQLiteRecordRepo) FetchRecords(ctx context.Context, start, end *time.Time) ([]domain.Record, error) {
	query := `SELECT _ob, t1, t2 FROM records WHERE 1=1`
	var args []any
	if start != nil {
		query += ` AND t1 >= ?`
		args = append(args, start.Unix())
	}
	if end != nil {
		query += ` AND t2 <= ?`
		args = append(args, end.Unix())
	}
	query += ` ORDER BY t1 DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var ob string
		var t1, t2 sql.NullInt64
		if err := rows.Scan(&ob, &t1, &t2); err != nil {
			return nil, fmt.Errorf("scanning record row: %w", err)
		}

		var blob recordBlob
		if err := sonic.Unmarshal([]byte(ob), &blob); err != nil {
			// Malformed payload; skip the row.
			continue
		}

		records = append(records, domain.Record{
			Key:         blob.Key,
			Start:       epochToTime(t1, r.loc),
			End:         epochToTime(t2, r.loc),
			Description: blob.Description,
			Tags:        domain.ExtractTags(blob.Description),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

func (r *SQLiteRecordRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

// TimeRange returns the earliest start and latest end across all records
// that have both endpoints. ErrNoRecords when the store is empty.
func (r *SQLiteRecordRepo) TimeRange(ctx context.Context) (time.Time, time.Time, error) {
	var minT1, maxT2 sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT MIN(t1), MAX(t2) FROM records WHERE t1 > 0 AND t2 > 0`,
	).Scan(&minT1, &maxT2)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("querying record time range: %w", err)
	}
	if !minT1.Valid || !maxT2.Valid {
		return time.Time{}, time.Time{}, ErrNoRecords
	}
	return time.Unix(minT1.Int64, 0).In(r.loc), time.Unix(maxT2.Int64, 0).In(r.loc), nil
}

// Create inserts a record. Both endpoints are required: the store keeps
// t1/t2 duplicated outside the blob for range queries.
func (r *SQLiteRecordRepo) Create(ctx context.Context, rec *domain.Record) error {
	if !rec.HasEndpoints() {
		return fmt.Errorf("creating record %q: both endpoints required", rec.Key)
	}

	now := float64(time.Now().Unix())
	blob := recordBlob{
		Key:         rec.Key,
		Start:       float64(rec.Start.Unix()),
		End:         float64(rec.End.Unix()),
		Description: rec.Description,
		ModifiedAt:  now,
		ServerTime:  now,
	}
	payload, err := sonic.Marshal(blob)
	if err != nil {
		return fmt.Errorf("encoding record blob: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO records (key, st, t1, t2, _ob) VALUES (?, ?, ?, ?, ?)`,
		rec.Key, now, rec.Start.Unix(), rec.End.Unix(), string(payload),
	)
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}
	return nil
}

// epochToTime converts an epoch-seconds column value into the repo's
// location. NULL or zero means the endpoint is missing.
func epochToTime(v sql.NullInt64, loc *time.Location) *time.Time {
	if !v.Valid || v.Int64 == 0 {
		return nil
	}
	t := time.Unix(v.Int64, 0).In(loc)
	return &t
}
