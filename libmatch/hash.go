package libmatch

import (
	"hash/fnv"
	"sort"
	"strconv"

	"github.com/lutaml/canon/ir"
)

// subtreeHashes computes a content hash for every node of the tree,
// bottom up.  Two nodes hash equal when their subtrees are identical
// in labels, values, attributes and child order, which lets the exact
// phase recognize unchanged subtrees that merely moved.
func subtreeHashes(t *ir.Node, into map[*ir.Node]uint64) uint64 {
	h := fnv.New64a()
	h.Write([]byte(t.Kind.String()))
	h.Write([]byte{'|'})
	h.Write([]byte(t.Label))
	h.Write([]byte{'|'})
	h.Write([]byte(t.Value))
	if len(t.Attrs) != 0 {
		attrs := make([]string, len(t.Attrs))
		for i, a := range t.Attrs {
			attrs[i] = a.Name + "=" + a.Value
		}
		sort.Strings(attrs)
		for _, a := range attrs {
			h.Write([]byte{'|'})
			h.Write([]byte(a))
		}
	}
	for _, c := range t.Children {
		sub := subtreeHashes(c, into)
		h.Write([]byte{'|'})
		h.Write([]byte(strconv.FormatUint(sub, 16)))
	}
	sum := h.Sum64()
	into[t] = sum
	return sum
}
