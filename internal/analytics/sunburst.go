package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/pe51k/tagtally/internal/domain"
)

// IDSeparator joins parent and child tag names into sunburst row ids.
const IDSeparator = " > "

// FlattenSunburst converts a tag tree into parallel rows for a drill-down
// radial chart. Depth-first from the root, children in sorted name order for
// deterministic output. Zero-value nodes are suppressed to avoid degenerate
// chart segments; suppressing a node suppresses its (necessarily zero)
// subtree. Traversal stops at maxDepth, where TagNode.Value already folds
// all deeper structure into the emitted value. maxDepth <= 0 means no limit.
func FlattenSunburst(root *domain.TagNode, maxDepth int) []domain.SunburstRow {
	var rows []domain.SunburstRow

	var walk func(node *domain.TagNode, parentID string, depth int)
	walk = func(node *domain.TagNode, parentID string, depth int) {
		for _, name := range sortedChildNames(node) {
			child := node.Children[name]
			value := child.Value()
			if value <= 0 {
				continue
			}

			id := name
			if parentID != "" {
				id = parentID + IDSeparator + name
			}
			rows = append(rows, domain.SunburstRow{
				ID:     id,
				Label:  name,
				Parent: parentID,
				Value:  value,
			})

			if (maxDepth <= 0 || depth < maxDepth) && len(child.Children) > 0 {
				walk(child, id, depth+1)
			}
		}
	}

	walk(root, "", 1)
	return rows
}

// ConservationIssues verifies the branch-values-as-totals property over
// flattened rows: the values of a row's direct children may never exceed the
// row's own value. They fall short of it exactly when the node carries a
// self-total alongside children (time recorded at that tag level itself).
// Violations point at a data or configuration problem and are reported as
// strings for logging rather than raised as errors.
func ConservationIssues(rows []domain.SunburstRow) []string {
	childSums := make(map[string]time.Duration)
	for _, r := range rows {
		if r.Parent != "" {
			childSums[r.Parent] += r.Value
		}
	}

	var issues []string
	for _, r := range rows {
		if sum, ok := childSums[r.ID]; ok && sum > r.Value {
			issues = append(issues, fmt.Sprintf(
				"node %q: children sum %s exceeds node value %s", r.ID, sum, r.Value))
		}
	}
	return issues
}

func sortedChildNames(node *domain.TagNode) []string {
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
