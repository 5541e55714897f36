package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pe51k/tagtally/internal/cli/formatter"
	"github.com/pe51k/tagtally/internal/domain"
	"github.com/pe51k/tagtally/internal/service"
	"github.com/spf13/cobra"
)

const barWidth = 40

func newPeriodsCmd(app *App) *cobra.Command {
	var rf rangeFlags
	var granularity string
	var noChart bool

	cmd := &cobra.Command{
		Use:   "periods",
		Short: "Show time per period broken down by first tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := rf.resolve(app)
			if err != nil {
				return err
			}

			g := app.DefaultGranularity
			if cmd.Flags().Changed("granularity") {
				g = domain.ParseGranularity(granularity)
			}

			m, err := app.Reports.PeriodMatrix(context.Background(), filter, g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(fmt.Sprintf("Time by %s", g)))

			if len(m.Periods) == 0 {
				fmt.Fprintln(out, formatter.Dim("no records in range"))
				return nil
			}

			fmt.Fprint(out, renderPeriodTable(m, g))
			if !noChart {
				fmt.Fprintln(out)
				fmt.Fprint(out, renderPeriodChart(m, g))
			}
			if m.SkippedRecords > 0 {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d record(s) without both endpoints were skipped", m.SkippedRecords)))
			}
			return nil
		},
	}

	rf.register(cmd)
	cmd.Flags().StringVarP(&granularity, "granularity", "g", "", "Period granularity: days, weeks or months")
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "Skip the stacked bar chart")
	return cmd
}

func renderPeriodTable(m *service.PeriodMatrix, g domain.Granularity) string {
	headers := make([]string, 0, len(m.Tags)+2)
	headers = append(headers, "Period")
	headers = append(headers, m.Tags...)
	headers = append(headers, "Total")

	rows := make([][]string, 0, len(m.Periods))
	for _, p := range m.Periods {
		row := make([]string, 0, len(headers))
		row = append(row, formatter.PeriodLabel(p, g))
		for _, tag := range m.Tags {
			if d := m.Cell(p, tag); d > 0 {
				row = append(row, formatter.FormatHours(d))
			} else {
				row = append(row, formatter.Dim("-"))
			}
		}
		row = append(row, formatter.Bold(formatter.FormatHours(m.PeriodTotal(p))))
		rows = append(rows, row)
	}

	return formatter.RenderTable(headers, rows)
}

// renderPeriodChart prints one stacked bar per period, all scaled against
// the busiest period, followed by a tag legend.
func renderPeriodChart(m *service.PeriodMatrix, g domain.Granularity) string {
	var scale time.Duration
	for _, p := range m.Periods {
		if t := m.PeriodTotal(p); t > scale {
			scale = t
		}
	}
	if scale <= 0 {
		return ""
	}

	labelWidth := 0
	for _, p := range m.Periods {
		if w := len(formatter.PeriodLabel(p, g)); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for _, p := range m.Periods {
		segments := make([]formatter.BarSegment, 0, len(m.Tags))
		for i, tag := range m.Tags {
			if d := m.Cell(p, tag); d > 0 {
				segments = append(segments, formatter.BarSegment{Series: i, Duration: d})
			}
		}
		label := formatter.PeriodLabel(p, g)
		b.WriteString(formatter.Dim(label))
		b.WriteString(strings.Repeat(" ", labelWidth-len(label)))
		b.WriteString("  ")
		b.WriteString(formatter.RenderStackedBar(segments, m.PeriodTotal(p), scale, barWidth))
		b.WriteString(" " + formatter.FormatHours(m.PeriodTotal(p)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for i, tag := range m.Tags {
		b.WriteString(formatter.LegendEntry(i, tag))
		b.WriteString("  ")
	}
	b.WriteString("\n")

	return b.String()
}
