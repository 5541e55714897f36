package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/pe51k/tagtally/internal/domain"
	"github.com/pe51k/tagtally/internal/repository"
	"github.com/pe51k/tagtally/internal/service"
	"github.com/pe51k/tagtally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires an App against an in-memory store seeded with a small,
// known dataset: two tagged records on Mon 2024-01-08 and one untagged
// record on Tue 2024-01-09.
func newTestApp(t *testing.T) *App {
	t.Helper()

	database := testutil.NewTestDB(t)
	testutil.InsertRawRecord(t, database, "r1", "#work #projA morning",
		time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC).Unix(),
		time.Date(2024, 1, 8, 11, 30, 0, 0, time.UTC).Unix())
	testutil.InsertRawRecord(t, database, "r2", "#work #projB review",
		time.Date(2024, 1, 8, 14, 0, 0, 0, time.UTC).Unix(),
		time.Date(2024, 1, 8, 15, 0, 0, 0, time.UTC).Unix())
	testutil.InsertRawRecord(t, database, "r3", "walk outside",
		time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC).Unix(),
		time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC).Unix())

	repo := repository.NewSQLiteRecordRepo(database, time.UTC)
	return &App{
		Reports:            service.NewReportService(repo, time.UTC),
		Seeder:             service.NewSeedService(repo, time.UTC),
		DefaultGranularity: domain.GranularityDay,
		MaxTagDepth:        2,
		Location:           time.UTC,
		IsInteractive:      func() bool { return false },
	}
}

func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true

	err := root.Execute()
	return buf.String(), err
}

func TestSummaryCmd(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "summary")
	require.NoError(t, err)

	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "4h 30m")
	assert.Contains(t, out, "Jan 8, 2024")
}

func TestSummaryCmd_RangeFilter(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "summary", "--from", "2024-01-09", "--to", "2024-01-09")
	require.NoError(t, err)

	// Only the Tuesday walk falls in range.
	assert.Contains(t, out, "1h")
	assert.NotContains(t, out, "4h 30m")
}

func TestSummaryCmd_RejectsBadDate(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "summary", "--from", "January 8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing --from")
}

func TestSummaryCmd_RejectsInvertedRange(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "summary", "--from", "2024-01-09", "--to", "2024-01-08")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before")
}

func TestPeriodsCmd(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "periods", "--no-chart")
	require.NoError(t, err)

	assert.Contains(t, out, "TIME BY DAYS")
	assert.Contains(t, out, "Jan 08, 2024")
	assert.Contains(t, out, "Jan 09, 2024")
	assert.Contains(t, out, "work")
	assert.Contains(t, out, domain.NoTags)
	assert.Contains(t, out, "3.5h")
}

func TestPeriodsCmd_GranularityFlag(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "periods", "-g", "weeks", "--no-chart")
	require.NoError(t, err)

	assert.Contains(t, out, "TIME BY WEEKS")
	assert.Contains(t, out, "Week 2, 2024")
	// Both days collapse into one week row totalling 4.5 hours.
	assert.Contains(t, out, "4.5h")
}

func TestPeriodsCmd_UnknownGranularityFallsBack(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "periods", "-g", "fortnights", "--no-chart")
	require.NoError(t, err)
	assert.Contains(t, out, "TIME BY DAYS")
}

func TestPeriodsCmd_Chart(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "periods")
	require.NoError(t, err)

	assert.Contains(t, out, "█")
	assert.Contains(t, out, "■ work")
}

func TestTagsCmd(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "tags")
	require.NoError(t, err)

	assert.Contains(t, out, "TAG HIERARCHY")
	assert.Contains(t, out, "work")
	assert.Contains(t, out, "projA")
	assert.Contains(t, out, "projB")
	assert.Contains(t, out, domain.NoTags)
	assert.Contains(t, out, "├─")
	assert.Contains(t, out, "└─")
	assert.Contains(t, out, "4.5h")
}

func TestTagsCmd_DepthOne(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "tags", "--depth", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "work")
	assert.NotContains(t, out, "projA", "depth 1 folds project tags into their parent")
}

func TestSeedCmd(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecordRepo(database, time.UTC)
	app := &App{
		Reports:            service.NewReportService(repo, time.UTC),
		Seeder:             service.NewSeedService(repo, time.UTC),
		DefaultGranularity: domain.GranularityDay,
		MaxTagDepth:        2,
		Location:           time.UTC,
		IsInteractive:      func() bool { return false },
	}

	out, err := runCommand(t, app, "seed", "--days", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	// Seeded data must flow into the reports immediately.
	summaryOut, err := runCommand(t, app, "summary")
	require.NoError(t, err)
	assert.NotContains(t, summaryOut, "Records      0")
}

func TestInteractiveFlagRequiresTerminal(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "summary", "--interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}
