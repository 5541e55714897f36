package analytics

import "time"

// Contribution is one period's share of a split record interval.
type Contribution struct {
	PeriodKey string
	Duration  time.Duration
}

// Split partitions the half-open interval [start, end) into one contribution
// per period of the calendar it overlaps. The contributions are contiguous
// cursor walks over period bounds, so their durations sum to exactly
// end - start (integer nanosecond arithmetic, no rounding).
//
// A degenerate interval (end <= start) yields a single zero-duration
// contribution for the period containing start, so record-counting
// aggregations still see it. Callers must not pass records with missing
// endpoints; skipping those is the aggregator's job.
func Split(start, end time.Time, cal Calendar) []Contribution {
	if !end.After(start) {
		return []Contribution{{PeriodKey: cal.Key(start)}}
	}

	var out []Contribution
	cursor := start
	for cursor.Before(end) {
		_, periodEnd := cal.Bounds(cursor)

		overlapEnd := end
		if periodEnd.Before(overlapEnd) {
			overlapEnd = periodEnd
		}
		if d := overlapEnd.Sub(cursor); d > 0 {
			out = append(out, Contribution{PeriodKey: cal.Key(cursor), Duration: d})
		}

		cursor = periodEnd
	}
	return out
}
