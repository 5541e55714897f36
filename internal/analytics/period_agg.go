package analytics

import (
	"time"

	"github.com/pe51k/tagtally/internal/domain"
)

// PeriodTagTotals groups split record durations by period key and level-1
// tag, producing the period × tag duration matrix behind the stacked bar
// view. Only the first tag of each record is considered; untagged records
// land under domain.NoTags. Records missing either endpoint are skipped
// and counted, not treated as errors: partial rows are expected upstream.
func PeriodTagTotals(records []domain.Record, cal Calendar) (map[string]map[string]time.Duration, int) {
	grouped := make(map[string]map[string]time.Duration)
	skipped := 0

	for _, r := range records {
		if !r.HasEndpoints() {
			skipped++
			continue
		}
		tag := r.FirstTag()

		for _, c := range Split(*r.Start, *r.End, cal) {
			byTag := grouped[c.PeriodKey]
			if byTag == nil {
				byTag = make(map[string]time.Duration)
				grouped[c.PeriodKey] = byTag
			}
			byTag[tag] += c.Duration
		}
	}

	return grouped, skipped
}
