package domain

import "time"

// TagNode is one node of the tag hierarchy. A record's ordered tags form a
// path through the tree; the record's whole duration is written to the
// SelfTotal of the terminal node of its (depth-truncated) path. Interior
// totals are derived on read via Value, never maintained incrementally.
type TagNode struct {
	Children  map[string]*TagNode
	SelfTotal time.Duration
}

// NewTagNode returns an empty node with an initialized child map.
func NewTagNode() *TagNode {
	return &TagNode{Children: make(map[string]*TagNode)}
}

// Child returns the named child, creating it if absent.
func (n *TagNode) Child(name string) *TagNode {
	if n.Children == nil {
		n.Children = make(map[string]*TagNode)
	}
	c, ok := n.Children[name]
	if !ok {
		c = NewTagNode()
		n.Children[name] = c
	}
	return c
}

// Value returns the total duration attributed to this node: its own
// SelfTotal plus the Value of every child. For leaves this is just the
// SelfTotal. A node can carry both when depth truncation ends one record's
// path exactly where another record's longer path continues; summing both
// keeps the root total invariant under depth changes.
func (n *TagNode) Value() time.Duration {
	total := n.SelfTotal
	for _, c := range n.Children {
		total += c.Value()
	}
	return total
}

// SunburstRow is one flattened node of the tag hierarchy, shaped for a
// drill-down radial chart: parent values equal the sum of their children
// (branch-values-as-totals), except for self-total carried at the parent.
type SunburstRow struct {
	ID     string
	Label  string
	Parent string
	Value  time.Duration
}
