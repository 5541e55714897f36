package cli

import (
	"context"
	"fmt"

	"github.com/pe51k/tagtally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with demo records",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Seeder.SeedDemo(context.Background(), days)
			if err != nil {
				return err
			}
			app.Reports.Invalidate()
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s demo record(s)\n", formatter.Bold(fmt.Sprintf("%d", created)))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "Number of days of demo data to generate")
	return cmd
}
