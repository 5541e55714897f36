package cli

import (
	"time"

	"github.com/pe51k/tagtally/internal/domain"
	"github.com/pe51k/tagtally/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service interfaces and defaults used by CLI commands.
type App struct {
	Reports service.ReportService
	Seeder  service.SeedService

	DefaultGranularity domain.Granularity
	MaxTagDepth        int
	Location           *time.Location

	// IsInteractive reports whether stdin is a terminal. Commands that
	// prompt check it before opening a form.
	IsInteractive func() bool
}

// Loc returns the configured timezone, falling back to the local one.
func (a *App) Loc() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

// NewRootCmd creates the top-level "tagtally" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tagtally",
		Short: "Time tracking analytics for Timetagger databases",
	}

	root.AddCommand(
		newSummaryCmd(app),
		newPeriodsCmd(app),
		newTagsCmd(app),
		newSeedCmd(app),
		newDashboardCmd(app),
	)

	return root
}
