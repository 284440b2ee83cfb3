package ir

import "strings"

// Attr is a single element attribute.  Attribute order on a node is
// document order and is preserved throughout.
type Attr struct {
	Name  string
	Value string
}

// Node is the single tree representation shared by every format.
// Adapters convert XML, HTML, JSON and YAML input into this shape
// once; the comparison pipeline never branches on the input format's
// native node types.
//
// Children own their subtrees; Parent is a non-owning back reference
// maintained by Append, so upward traversal is acyclic by
// construction.
type Node struct {
	Kind  Kind
	Label string
	Value string

	Attrs []Attr

	NSPrefix string
	NSURI    string

	Children    []*Node
	Parent      *Node
	ParentIndex int
}

func Document() *Node {
	return &Node{Kind: DocumentKind, Label: "#document"}
}

func Element(label string) *Node {
	return &Node{Kind: ElementKind, Label: label}
}

func Text(v string) *Node {
	return &Node{Kind: TextKind, Label: "#text", Value: v}
}

func Comment(v string) *Node {
	return &Node{Kind: CommentKind, Label: "#comment", Value: v}
}

func ProcInst(target, v string) *Node {
	return &Node{Kind: ProcInstKind, Label: target, Value: v}
}

// Append adds children to n, wiring parent back references.
// It returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.Parent = n
		c.ParentIndex = len(n.Children)
		n.Children = append(n.Children, c)
	}
	return n
}

func (n *Node) WithAttrs(attrs ...Attr) *Node {
	n.Attrs = append(n.Attrs, attrs...)
	return n
}

func (n *Node) WithNS(prefix, uri string) *Node {
	n.NSPrefix = prefix
	n.NSURI = uri
	return n
}

// Attr returns the value of the named attribute and whether it is
// present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// PlainAttrs returns attributes excluding xmlns declarations, in
// document order.
func (n *Node) PlainAttrs() []Attr {
	var res []Attr
	for _, a := range n.Attrs {
		if isNSDecl(a.Name) {
			continue
		}
		res = append(res, a)
	}
	return res
}

// NSDecls returns the xmlns declarations of n, in document order.
func (n *Node) NSDecls() []Attr {
	var res []Attr
	for _, a := range n.Attrs {
		if isNSDecl(a.Name) {
			res = append(res, a)
		}
	}
	return res
}

func isNSDecl(name string) bool {
	return name == "xmlns" || strings.HasPrefix(name, "xmlns:")
}

// Clone deep-copies n.  The clone's Parent is nil.
func (n *Node) Clone() *Node {
	res := &Node{
		Kind:     n.Kind,
		Label:    n.Label,
		Value:    n.Value,
		NSPrefix: n.NSPrefix,
		NSURI:    n.NSURI,
	}
	if len(n.Attrs) != 0 {
		res.Attrs = make([]Attr, len(n.Attrs))
		copy(res.Attrs, n.Attrs)
	}
	for _, c := range n.Children {
		res.Append(c.Clone())
	}
	return res
}

func (n *Node) Root() *Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Walk visits n and its subtree in document order.  Returning false
// from fn prunes the subtree below the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Text returns the concatenated text content of n's subtree.
func (n *Node) Text() string {
	if n.Kind == TextKind {
		return n.Value
	}
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Kind == TextKind {
			b.WriteString(c.Value)
		}
		return true
	})
	return b.String()
}

// Elem returns the element whose content n represents: n itself for
// elements, the parent element for text and comment nodes.
func (n *Node) Elem() *Node {
	if n.Kind == ElementKind || n.Parent == nil {
		return n
	}
	return n.Parent
}
