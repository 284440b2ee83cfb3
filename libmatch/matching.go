package libmatch

import (
	"fmt"

	"github.com/lutaml/canon/ir"
)

// Matching is a partial injection between the nodes of two trees.  It
// is built once per comparison and read-only afterward.
type Matching struct {
	fwd map[*ir.Node]*ir.Node
	rev map[*ir.Node]*ir.Node
}

func NewMatching() *Matching {
	return &Matching{
		fwd: map[*ir.Node]*ir.Node{},
		rev: map[*ir.Node]*ir.Node{},
	}
}

// Add records n1 ↔ n2.  A node may appear as a match endpoint at most
// once per side; violating that is an internal defect, not a user
// error.
func (m *Matching) Add(n1, n2 *ir.Node) {
	if _, ok := m.fwd[n1]; ok {
		panic(fmt.Sprintf("node %s already matched", n1.Path()))
	}
	if _, ok := m.rev[n2]; ok {
		panic(fmt.Sprintf("node %s already matched", n2.Path()))
	}
	m.fwd[n1] = n2
	m.rev[n2] = n1
}

func (m *Matching) Matched1(n *ir.Node) bool {
	_, ok := m.fwd[n]
	return ok
}

func (m *Matching) Matched2(n *ir.Node) bool {
	_, ok := m.rev[n]
	return ok
}

// Partner1 returns the tree₂ node matched to n, or nil.
func (m *Matching) Partner1(n *ir.Node) *ir.Node {
	return m.fwd[n]
}

// Partner2 returns the tree₁ node matched to n, or nil.
func (m *Matching) Partner2(n *ir.Node) *ir.Node {
	return m.rev[n]
}

func (m *Matching) Len() int {
	return len(m.fwd)
}
