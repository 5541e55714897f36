package analytics

import (
	"testing"
	"time"

	"github.com/pe51k/tagtally/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHierarchy_WritesToTerminalNodeOnly(t *testing.T) {
	records := []domain.Record{
		rec("#work #projA", time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 11, 0, 0, 0, time.UTC)),
		rec("#work #projB", time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 13, 0, 0, 0, time.UTC)),
	}

	root := BuildHierarchy(records, 3)

	work := root.Children["work"]
	require.NotNil(t, work)
	assert.Equal(t, time.Duration(0), work.SelfTotal, "interior nodes accumulate nothing on write")
	assert.Equal(t, 2*time.Hour, work.Children["projA"].SelfTotal)
	assert.Equal(t, time.Hour, work.Children["projB"].SelfTotal)
	assert.Equal(t, 3*time.Hour, work.Value())
}

func TestBuildHierarchy_DepthTruncation(t *testing.T) {
	records := []domain.Record{
		rec("#work #projA #api", time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)),
	}

	root := BuildHierarchy(records, 2)

	projA := root.Children["work"].Children["projA"]
	require.NotNil(t, projA)
	assert.Empty(t, projA.Children, "third-level tag folded away by truncation")
	assert.Equal(t, time.Hour, projA.SelfTotal)
}

func TestBuildHierarchy_TaglessRecords(t *testing.T) {
	records := []domain.Record{
		rec("reading mail", time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 9, 30, 0, 0, time.UTC)),
		rec("", time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 10, 15, 0, 0, time.UTC)),
	}

	root := BuildHierarchy(records, 3)

	noTags := root.Children[domain.NoTags]
	require.NotNil(t, noTags)
	assert.Equal(t, 45*time.Minute, noTags.SelfTotal)
}

func TestBuildHierarchy_MixedDepthsSumBothBuckets(t *testing.T) {
	// One record ends exactly where another record's longer path continues:
	// the node carries both a self-total and children, and Value sums both.
	records := []domain.Record{
		rec("#work", time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)),
		rec("#work #projA", time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)),
	}

	root := BuildHierarchy(records, 3)

	work := root.Children["work"]
	assert.Equal(t, time.Hour, work.SelfTotal)
	assert.Equal(t, 2*time.Hour, work.Children["projA"].Value())
	assert.Equal(t, 3*time.Hour, work.Value(), "direct time plus descendant time, no double count")
}

func TestBuildHierarchy_RootValueInvariantUnderDepth(t *testing.T) {
	records := []domain.Record{
		rec("#work #projA #api #auth", time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 11, 0, 0, 0, time.UTC)),
		rec("#work #projB", time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 13, 30, 0, 0, time.UTC)),
		rec("#life", time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC), time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC)),
		rec("untagged", time.Date(2024, 1, 9, 11, 0, 0, 0, time.UTC), time.Date(2024, 1, 9, 11, 20, 0, 0, time.UTC)),
	}
	want := 2*time.Hour + 90*time.Minute + time.Hour + 20*time.Minute

	for _, depth := range []int{1, 2, 3, 4, 0} {
		root := BuildHierarchy(records, depth)
		assert.Equal(t, want, root.Value(), "total duration must not depend on max depth (depth=%d)", depth)
	}
}
