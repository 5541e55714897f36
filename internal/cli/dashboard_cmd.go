package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var rf rangeFlags

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive analytics dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the dashboard requires a terminal")
			}

			filter, err := rf.resolve(app)
			if err != nil {
				return err
			}

			model := newDashboardModel(app, filter)
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	rf.register(cmd)
	return cmd
}
