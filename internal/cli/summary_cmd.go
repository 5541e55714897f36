package cli

import (
	"context"
	"fmt"

	"github.com/pe51k/tagtally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var rf rangeFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show headline stats for the tracked time",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := rf.resolve(app)
			if err != nil {
				return err
			}

			s, err := app.Reports.Summary(context.Background(), filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Summary"))
			fmt.Fprintf(out, "%s %d\n", formatter.Dim("Records     "), s.RecordCount)
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("Total time  "), formatter.Bold(formatter.FormatDuration(s.TotalDuration)))
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("Avg record  "), formatter.FormatDuration(s.AvgDuration))
			fmt.Fprintf(out, "%s %d\n", formatter.Dim("Unique tags "), s.UniqueTags)
			if s.FirstStart != nil && s.LastEnd != nil {
				fmt.Fprintf(out, "%s %s to %s\n", formatter.Dim("Range       "),
					formatter.HumanDate(s.FirstStart.In(app.Loc())),
					formatter.HumanDate(s.LastEnd.In(app.Loc())))
			}
			if s.SkippedRecords > 0 {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d record(s) without both endpoints were skipped", s.SkippedRecords)))
			}
			return nil
		},
	}

	rf.register(cmd)
	return cmd
}
