package libdiff

import (
	"fmt"
	"strings"

	"github.com/lutaml/canon/ir"
	"github.com/lutaml/canon/libmatch"
)

// Construct enumerates every difference between the two trees under
// the given matching.  Scanning never stops at the first difference:
// N independently differing sibling pairs yield exactly N DiffNodes
// of the matching dimension, each paired to its own counterpart.
//
// The returned DiffNodes are unclassified; run Classify before
// reading the normative/informative/formatting flags.
func Construct(t1, t2 *ir.Node, m *libmatch.Matching, res *Resolved, ws *WhitespaceConfig) []*DiffNode {
	c := &constructor{m: m, res: res, ws: ws}
	t1.Walk(func(n1 *ir.Node) bool {
		if !m.Matched1(n1) {
			c.removed(n1)
			// one DiffNode covers the whole unmatched subtree
			return false
		}
		c.pair(n1, m.Partner1(n1))
		return true
	})
	t2.Walk(func(n2 *ir.Node) bool {
		if !m.Matched2(n2) {
			c.added(n2)
			return false
		}
		return true
	})
	return c.diffs
}

type constructor struct {
	m     *libmatch.Matching
	res   *Resolved
	ws    *WhitespaceConfig
	diffs []*DiffNode
}

func (c *constructor) emit(d *DiffNode) {
	c.diffs = append(c.diffs, d)
}

func (c *constructor) removed(n1 *ir.Node) {
	if n1.Kind == ir.TextKind && IsBlank(n1.Value) {
		// indentation-only text present on one side is a
		// serialization artifact, not missing structure
		c.emit(&DiffNode{
			Node1:     n1,
			Dimension: StructuralWhitespace,
			Value1:    n1.Value,
			Reason:    "whitespace removed at " + n1.Path(),
		})
		return
	}
	c.emit(&DiffNode{
		Node1:     n1,
		Dimension: ElementStructure,
		Value1:    n1.Value,
		Reason:    fmt.Sprintf("%s removed at %s", describe(n1), n1.Path()),
	})
}

func (c *constructor) added(n2 *ir.Node) {
	if n2.Kind == ir.TextKind && IsBlank(n2.Value) {
		c.emit(&DiffNode{
			Node2:     n2,
			Dimension: StructuralWhitespace,
			Value2:    n2.Value,
			Reason:    "whitespace added at " + n2.Path(),
		})
		return
	}
	c.emit(&DiffNode{
		Node2:     n2,
		Dimension: ElementStructure,
		Value2:    n2.Value,
		Reason:    fmt.Sprintf("%s added at %s", describe(n2), n2.Path()),
	})
}

func describe(n *ir.Node) string {
	switch n.Kind {
	case ir.ElementKind:
		return "element <" + n.Label + ">"
	case ir.TextKind:
		return "text"
	case ir.CommentKind:
		return "comment"
	case ir.ProcInstKind:
		return "processing instruction <?" + n.Label + "?>"
	default:
		return "node"
	}
}

func (c *constructor) pair(n1, n2 *ir.Node) {
	// a node whose parents are both matched, but not to each other,
	// moved across parents
	if n1.Parent != nil && n2.Parent != nil &&
		c.m.Matched1(n1.Parent) && c.m.Partner1(n1.Parent) != n2.Parent {
		c.emit(&DiffNode{
			Node1:     n1,
			Node2:     n2,
			Dimension: ElementPosition,
			Reason:    fmt.Sprintf("%s moved from %s to %s", describe(n1), n1.Parent.Path(), n2.Parent.Path()),
		})
	}
	switch n1.Kind {
	case ir.TextKind:
		c.text(n1, n2)
	case ir.CommentKind:
		c.comment(n1, n2)
	case ir.ElementKind:
		if c.res.Has(AttributePresence) {
			c.attributes(n1, n2)
		}
		if c.res.Has(NamespaceDeclarations) {
			c.nsDecls(n1, n2)
		}
		if c.res.Has(NamespaceURI) && n1.NSURI != n2.NSURI {
			c.emit(&DiffNode{
				Node1:     n1,
				Node2:     n2,
				Dimension: NamespaceURI,
				Value1:    n1.NSURI,
				Value2:    n2.NSURI,
				Reason:    fmt.Sprintf("namespace of <%s> differs: %q vs %q", n1.Label, n1.NSURI, n2.NSURI),
			})
		}
		c.childOrder(n1, n2)
	case ir.ProcInstKind:
		if n1.Value != n2.Value {
			c.emit(&DiffNode{
				Node1:     n1,
				Node2:     n2,
				Dimension: TextContent,
				Value1:    n1.Value,
				Value2:    n2.Value,
				Reason:    fmt.Sprintf("processing instruction <?%s?> differs", n1.Label),
			})
		}
	case ir.DocumentKind:
		c.childOrder(n1, n2)
	}
}

func (c *constructor) text(n1, n2 *ir.Node) {
	v1, v2 := n1.Value, n2.Value
	if v1 == v2 {
		return
	}
	sensitive := c.ws.SensitiveAt(n1)
	dim := TextContent
	if !sensitive && NormalizeText(v1) == NormalizeText(v2) {
		dim = StructuralWhitespace
	}
	reason := "text content differs at " + n1.Path()
	if dim == StructuralWhitespace {
		reason = "whitespace differs at " + n1.Path()
	}
	c.emit(&DiffNode{
		Node1:     n1,
		Node2:     n2,
		Dimension: dim,
		Value1:    v1,
		Value2:    v2,
		Sensitive: sensitive,
		Reason:    reason,
	})
}

func (c *constructor) comment(n1, n2 *ir.Node) {
	if n1.Value == n2.Value {
		return
	}
	c.emit(&DiffNode{
		Node1:     n1,
		Node2:     n2,
		Dimension: Comments,
		Value1:    n1.Value,
		Value2:    n2.Value,
		Reason:    "comment differs at " + n1.Path(),
	})
}

// attributes compares ordinary attributes; xmlns declarations are
// handled by nsDecls so the same change is never reported twice.
func (c *constructor) attributes(n1, n2 *ir.Node) {
	a1, a2 := n1.PlainAttrs(), n2.PlainAttrs()
	c.attrDiffs(n1, n2, a1, a2, AttributePresence, AttributeValues, AttributeOrder)
}

func (c *constructor) nsDecls(n1, n2 *ir.Node) {
	a1, a2 := n1.NSDecls(), n2.NSDecls()
	c.attrDiffs(n1, n2, a1, a2, NamespaceDeclarations, NamespaceDeclarations, NamespaceDeclarations)
}

func (c *constructor) attrDiffs(n1, n2 *ir.Node, a1, a2 []ir.Attr, presenceDim, valueDim, orderDim Dimension) {
	m1 := attrMap(a1)
	m2 := attrMap(a2)

	var missing, added []string
	for _, a := range a1 {
		if _, ok := m2[a.Name]; !ok {
			missing = append(missing, a.Name)
		}
	}
	for _, a := range a2 {
		if _, ok := m1[a.Name]; !ok {
			added = append(added, a.Name)
		}
	}
	if len(missing) != 0 || len(added) != 0 {
		c.emit(&DiffNode{
			Node1:     n1,
			Node2:     n2,
			Dimension: presenceDim,
			Value1:    strings.Join(missing, " "),
			Value2:    strings.Join(added, " "),
			Reason:    presenceReason(n1.Label, missing, added, presenceDim),
		})
	}

	// one DiffNode per changed key
	changed := false
	for _, a := range a1 {
		v2, ok := m2[a.Name]
		if !ok || v2 == a.Value {
			continue
		}
		changed = true
		c.emit(&DiffNode{
			Node1:     n1,
			Node2:     n2,
			Dimension: valueDim,
			Value1:    a.Value,
			Value2:    v2,
			Reason:    fmt.Sprintf("attribute %q of <%s> differs: %q vs %q", a.Name, n1.Label, a.Value, v2),
		})
	}

	if len(missing) != 0 || len(added) != 0 || changed {
		return
	}
	names1 := attrNames(a1)
	names2 := attrNames(a2)
	if len(names1) == len(names2) && strings.Join(names1, " ") != strings.Join(names2, " ") {
		c.emit(&DiffNode{
			Node1:     n1,
			Node2:     n2,
			Dimension: orderDim,
			Value1:    strings.Join(names1, " "),
			Value2:    strings.Join(names2, " "),
			Reason:    fmt.Sprintf("attribute order of <%s> differs: [%s] vs [%s]", n1.Label, strings.Join(names1, " "), strings.Join(names2, " ")),
		})
	}
}

func presenceReason(label string, missing, added []string, dim Dimension) string {
	what := "attributes"
	if dim == NamespaceDeclarations {
		what = "namespace declarations"
	}
	var parts []string
	if len(missing) != 0 {
		parts = append(parts, fmt.Sprintf("%s removed: [%s]", what, strings.Join(missing, " ")))
	}
	if len(added) != 0 {
		parts = append(parts, fmt.Sprintf("%s added: [%s]", what, strings.Join(added, " ")))
	}
	return fmt.Sprintf("<%s>: %s", label, strings.Join(parts, "; "))
}

func attrMap(attrs []ir.Attr) map[string]string {
	res := make(map[string]string, len(attrs))
	for _, a := range attrs {
		res[a.Name] = a.Value
	}
	return res
}

func attrNames(attrs []ir.Attr) []string {
	res := make([]string, len(attrs))
	for i, a := range attrs {
		res[i] = a.Name
	}
	return res
}

// childOrder reports matched children of n1 whose relative order
// changed under n2.  A longest increasing subsequence over the
// partner indexes keeps the stable majority quiet and flags only the
// movers.  Mappings (JSON/YAML objects, all child labels distinct)
// report key_order; everything else reports element_position.
func (c *constructor) childOrder(n1, n2 *ir.Node) {
	type moved struct {
		c1, c2 *ir.Node
		to     int
	}
	var seq []moved
	for _, c1 := range n1.Children {
		p := c.m.Partner1(c1)
		if p == nil || p.Parent != n2 {
			continue
		}
		seq = append(seq, moved{c1, p, p.ParentIndex})
	}
	if len(seq) < 2 {
		return
	}
	idxs := make([]int, len(seq))
	for i, mv := range seq {
		idxs[i] = mv.to
	}
	stable := lis(idxs)

	dim := ElementPosition
	if c.res.Has(KeyOrder) && mappingLike(n1) && mappingLike(n2) {
		dim = KeyOrder
	}
	for i, mv := range seq {
		if stable[i] {
			continue
		}
		reason := fmt.Sprintf("%s moved within <%s>", describe(mv.c1), n1.Label)
		if dim == KeyOrder {
			reason = fmt.Sprintf("key %q moved within %s", mv.c1.Label, n1.Path())
		}
		c.emit(&DiffNode{
			Node1:     mv.c1,
			Node2:     mv.c2,
			Dimension: dim,
			Reason:    reason,
		})
	}
}

// mappingLike reports whether every element child has a distinct
// label, the shape JSON/YAML adapters produce for objects.
func mappingLike(n *ir.Node) bool {
	seen := map[string]bool{}
	elems := 0
	for _, c := range n.Children {
		if c.Kind != ir.ElementKind {
			continue
		}
		elems++
		if seen[c.Label] {
			return false
		}
		seen[c.Label] = true
	}
	return elems > 0
}

// lis marks the elements of idxs belonging to one longest strictly
// increasing subsequence.
func lis(idxs []int) []bool {
	n := len(idxs)
	length := make([]int, n)
	prev := make([]int, n)
	best, bestEnd := 0, -1
	for i := 0; i < n; i++ {
		length[i] = 1
		prev[i] = -1
		for j := 0; j < i; j++ {
			if idxs[j] < idxs[i] && length[j]+1 > length[i] {
				length[i] = length[j] + 1
				prev[i] = j
			}
		}
		if length[i] > best {
			best = length[i]
			bestEnd = i
		}
	}
	res := make([]bool, n)
	for i := bestEnd; i != -1; i = prev[i] {
		res[i] = true
	}
	return res
}
