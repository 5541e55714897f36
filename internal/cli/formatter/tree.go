package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pe51k/tagtally/internal/analytics"
	"github.com/pe51k/tagtally/internal/domain"
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTagTree renders flattened sunburst rows as an indented tree with
// box-drawing connectors. Each node shows its total hours and, for child
// nodes, its share of the parent. The rows must be in the flattener's
// depth-first order: a node's children follow it immediately.
func RenderTagTree(rows []domain.SunburstRow, total time.Duration) string {
	if len(rows) == 0 {
		return Dim("no tag data")
	}

	values := make(map[string]time.Duration, len(rows))
	for _, r := range rows {
		values[r.ID] = r.Value
	}

	// A row is the last child of its parent when no later row shares the
	// same parent.
	lastChild := make(map[string]bool, len(rows))
	seenParent := make(map[string]int, len(rows))
	for i, r := range rows {
		seenParent[r.Parent] = i
	}
	for i, r := range rows {
		if seenParent[r.Parent] == i {
			lastChild[r.ID] = true
		}
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(rows))
	maxContentWidth := 0

	for idx, r := range rows {
		depth := strings.Count(r.ID, analytics.IDSeparator)

		var prefix string
		if depth > 0 {
			for i := 1; i < depth; i++ {
				prefix += treePipe
			}
			if lastChild[r.ID] {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		label := SeriesStyle(depth).Render(r.Label)
		if r.Label == domain.NoTags {
			label = Dim(r.Label)
		}
		content := prefix + label
		lines[idx].content = content

		badge := FormatHours(r.Value)
		if r.Parent != "" {
			badge += "  " + FormatShare(r.Value, values[r.Parent])
		} else if total > 0 {
			badge += "  " + FormatShare(r.Value, total)
		}
		lines[idx].badge = StyleDim.Render(badge)

		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		pad := maxContentWidth - lipgloss.Width(li.content)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
	}

	return b.String()
}
