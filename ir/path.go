package ir

import (
	"strconv"
	"strings"
)

// Path renders the location of n in its tree, for diff reasons and
// rendering.  Elements are addressed by label, repeated siblings by
// index.
func (n *Node) Path() string {
	if n.Parent == nil {
		return "$"
	}
	prefix := n.Parent.Path()
	switch n.Kind {
	case TextKind:
		return prefix + ".#text"
	case CommentKind:
		return prefix + ".#comment"
	}
	label := n.Label
	if strings.IndexAny(label, "'.$[]") != -1 {
		label = "'" + strings.Replace(label, "'", "\\'", -1) + "'"
	}
	// disambiguate repeated sibling labels by position
	idx, count := 0, 0
	for _, sib := range n.Parent.Children {
		if sib.Kind == n.Kind && sib.Label == n.Label {
			if sib == n {
				idx = count
			}
			count++
		}
	}
	if count > 1 {
		return prefix + "." + label + "[" + strconv.Itoa(idx) + "]"
	}
	return prefix + "." + label
}
