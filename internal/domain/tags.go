package domain

import "regexp"

// tagPattern matches "#" followed by one or more word characters.
// Tag bodies are taken verbatim; no case folding or normalization.
var tagPattern = regexp.MustCompile(`#(\w+)`)

// ExtractTags pulls ordered tag tokens out of a free-text description.
// Tags are returned without the leading "#", in order of first appearance,
// duplicates included. An empty description yields nil.
func ExtractTags(description string) []string {
	if description == "" {
		return nil
	}
	matches := tagPattern.FindAllStringSubmatch(description, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}
