package libdiff

import "github.com/lutaml/canon/ir"

// DiffNode is one enumerated difference between the two trees.
// Node1 == nil means an insertion, Node2 == nil a deletion.
//
// Normative, Informative and Formatting are written exactly once by
// Classify before any downstream read; Dimension, node presence and
// the compared values are always safely readable even if later
// rendering of the richer detail fails.
type DiffNode struct {
	Node1 *ir.Node
	Node2 *ir.Node

	Dimension Dimension
	Reason    string

	// Value1 and Value2 hold the two compared values for value-like
	// dimensions (text, comments, attribute values); classification
	// re-derives normativity from them.
	Value1 string
	Value2 string

	// Sensitive marks text whose surrounding whitespace is
	// significant; the classifier compares it strictly unless the
	// behavior is an explicit ignore.
	Sensitive bool

	Normative   bool
	Informative bool
	Formatting  bool
}

func (d *DiffNode) IsInsertion() bool { return d.Node1 == nil }
func (d *DiffNode) IsDeletion() bool  { return d.Node2 == nil }

// Label returns the element name a difference is reported against,
// falling back to the containing element for text and comment nodes.
func (d *DiffNode) Label() string {
	n := d.Node1
	if n == nil {
		n = d.Node2
	}
	if n == nil {
		return ""
	}
	return n.Elem().Label
}
