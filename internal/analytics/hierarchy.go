package analytics

import "github.com/pe51k/tagtally/internal/domain"

// BuildHierarchy groups whole-record durations into a tag tree. Each
// record's ordered tags, truncated to maxDepth entries, form a path from the
// root; the record's full duration is added to the SelfTotal of the terminal
// node of that path only. Intermediate nodes are created empty and
// accumulate nothing on write; their totals are derived on read through
// TagNode.Value. Tagless records accumulate under the domain.NoTags branch.
//
// maxDepth <= 0 disables truncation.
func BuildHierarchy(records []domain.Record, maxDepth int) *domain.TagNode {
	root := domain.NewTagNode()

	for _, r := range records {
		tags := r.Tags
		if maxDepth > 0 && len(tags) > maxDepth {
			tags = tags[:maxDepth]
		}

		if len(tags) == 0 {
			root.Child(domain.NoTags).SelfTotal += r.Duration()
			continue
		}

		node := root
		for _, tag := range tags {
			node = node.Child(tag)
		}
		node.SelfTotal += r.Duration()
	}

	return root
}
