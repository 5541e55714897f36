package formatter

import (
	"strings"
	"time"
)

const barBlock = "█"

// BarSegment is one tag's share of a period bar. Series indexes into the
// chart palette and must be stable across periods so each tag keeps its
// color down the chart.
type BarSegment struct {
	Series   int
	Duration time.Duration
}

// RenderStackedBar renders one period's tag durations as a horizontal
// stacked bar. Widths are proportional to scale (the longest period total
// across the chart), so bars are comparable between rows. Segments too
// small for a full cell are dropped rather than rounded up, keeping the
// bar length honest.
func RenderStackedBar(segments []BarSegment, total time.Duration, scale time.Duration, width int) string {
	if width < 1 || total <= 0 || scale <= 0 {
		return ""
	}

	var b strings.Builder
	for _, seg := range segments {
		cells := int(float64(seg.Duration) / float64(scale) * float64(width))
		if cells <= 0 {
			continue
		}
		b.WriteString(SeriesStyle(seg.Series).Render(strings.Repeat(barBlock, cells)))
	}
	return b.String()
}

// LegendEntry renders a colored swatch followed by the tag name, for the
// legend printed under a stacked bar chart.
func LegendEntry(series int, tag string) string {
	return SeriesStyle(series).Render("■") + " " + tag
}
