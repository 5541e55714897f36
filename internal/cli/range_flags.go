package cli

import (
	"fmt"
	"time"

	"github.com/pe51k/tagtally/internal/service"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// rangeFlags are the shared --from/--to/--interactive flags that scope a
// report to a date range. Empty flags leave the range open on that side.
type rangeFlags struct {
	from        string
	to          string
	interactive bool
}

func (rf *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rf.from, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&rf.to, "to", "", "End date (YYYY-MM-DD, inclusive)")
	cmd.Flags().BoolVarP(&rf.interactive, "interactive", "i", false, "Pick the date range in a form")
}

// resolve turns the flag values into a RangeFilter. With --interactive a
// form is shown, prefilled from the store's data range. The --to date is
// extended to end of day so "to 2024-01-08" includes all of that day.
func (rf *rangeFlags) resolve(app *App) (service.RangeFilter, error) {
	if rf.interactive {
		if app.IsInteractive != nil && !app.IsInteractive() {
			return service.RangeFilter{}, fmt.Errorf("--interactive requires a terminal")
		}
		return promptDateRange(app, rf.from, rf.to)
	}
	return parseRange(rf.from, rf.to, app.Loc())
}

func parseRange(from, to string, loc *time.Location) (service.RangeFilter, error) {
	var f service.RangeFilter

	if from != "" {
		t, err := time.ParseInLocation(dateLayout, from, loc)
		if err != nil {
			return f, fmt.Errorf("parsing --from %q: %w", from, err)
		}
		f.Start = &t
	}
	if to != "" {
		t, err := time.ParseInLocation(dateLayout, to, loc)
		if err != nil {
			return f, fmt.Errorf("parsing --to %q: %w", to, err)
		}
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		f.End = &end
	}
	if f.Start != nil && f.End != nil && f.End.Before(*f.Start) {
		return f, fmt.Errorf("--to %s is before --from %s", to, from)
	}
	return f, nil
}
