package ir

import (
	"sort"
	"strconv"
	"strings"
)

// Signature is a structural fingerprint used to find match candidates
// cheaply.  Equal signatures mean two nodes are candidates for
// matching, not that they are identical: attribute values never
// participate, so a node whose values changed still lands in the same
// bucket as its counterpart.
type Signature string

// Sig computes the signature of n.  The attribute shape covers sorted
// attribute names only, with xmlns declarations excluded.  When
// withChildCount is set the number of children participates as well,
// which tightens buckets at the cost of missing matches across
// insertions.
func Sig(n *Node, withChildCount bool) Signature {
	var b strings.Builder
	b.WriteString(n.Kind.String())
	b.WriteByte('|')
	b.WriteString(n.Label)
	// leaves carry their containing element's label so text under
	// <a> never buckets with text under <b>
	if n.Kind.IsLeaf() && n.Parent != nil {
		b.WriteString("|@")
		b.WriteString(n.Parent.Label)
	}
	if len(n.Attrs) != 0 {
		names := make([]string, 0, len(n.Attrs))
		for _, a := range n.Attrs {
			if isNSDecl(a.Name) {
				continue
			}
			names = append(names, a.Name)
		}
		sort.Strings(names)
		b.WriteByte('|')
		b.WriteString(strings.Join(names, ","))
	}
	if withChildCount {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(len(n.Children)))
	}
	return Signature(b.String())
}
