package domain

import "time"

// NoTags is the reserved bucket for records whose description carries no tags.
const NoTags = "No tags"

// Record is one tracked activity fetched from the record store.
// Start or End may be nil when the stored row lacks that endpoint;
// such records are skipped by the period aggregators.
type Record struct {
	Key         string
	Start       *time.Time
	End         *time.Time
	Description string
	Tags        []string
}

// Duration returns End - Start, or zero if either endpoint is missing.
func (r Record) Duration() time.Duration {
	if r.Start == nil || r.End == nil {
		return 0
	}
	return r.End.Sub(*r.Start)
}

// HasEndpoints reports whether both Start and End are present.
func (r Record) HasEndpoints() bool {
	return r.Start != nil && r.End != nil
}

// FirstTag returns the record's level-1 tag, or NoTags when untagged.
func (r Record) FirstTag() string {
	if len(r.Tags) == 0 {
		return NoTags
	}
	return r.Tags[0]
}

type Granularity string

const (
	GranularityDay   Granularity = "days"
	GranularityWeek  Granularity = "weeks"
	GranularityMonth Granularity = "months"
)

// ValidGranularities is the canonical set of accepted granularity strings.
var ValidGranularities = map[string]bool{
	"days": true, "weeks": true, "months": true,
}

// ParseGranularity maps a user-supplied string to a Granularity.
// Unrecognized values fall back to day buckets so a bad flag or config
// entry degrades to a usable report instead of an error.
func ParseGranularity(s string) Granularity {
	if ValidGranularities[s] {
		return Granularity(s)
	}
	return GranularityDay
}
