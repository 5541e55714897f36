package cli

import (
	"context"
	"fmt"

	"github.com/pe51k/tagtally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTagsCmd(app *App) *cobra.Command {
	var rf rangeFlags
	var depth int

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Show the tag hierarchy as a drill-down tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := rf.resolve(app)
			if err != nil {
				return err
			}

			d := app.MaxTagDepth
			if cmd.Flags().Changed("depth") {
				d = depth
			}

			view, err := app.Reports.Sunburst(context.Background(), filter, d)
			if err != nil {
				return err
			}

			title := "Tag hierarchy"
			if view.MaxDepth > 0 {
				title = fmt.Sprintf("Tag hierarchy (depth %d)", view.MaxDepth)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(title))
			fmt.Fprint(out, formatter.RenderTagTree(view.Rows, view.Total))
			fmt.Fprintf(out, "\n%s %s\n", formatter.Dim("Total"), formatter.Bold(formatter.FormatHours(view.Total)))
			for _, issue := range view.Issues {
				fmt.Fprintln(out, formatter.StyleRed.Render("! "+issue))
			}
			return nil
		},
	}

	rf.register(cmd)
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Maximum tag depth (0 for unlimited)")
	return cmd
}
