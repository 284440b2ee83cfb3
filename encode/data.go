package encode

import (
	"strconv"
	"strings"

	"github.com/lutaml/canon/ir"
)

// data renders the synthetic tree shape the JSON and YAML parsers
// produce: mapping keys become elements named after the key, sequence
// entries become "item" elements, scalars become text children.
func (e *encoder) data(n *ir.Node, depth int) {
	if n.Kind == ir.DocumentKind {
		for _, c := range n.Children {
			e.data(c, depth)
		}
		return
	}
	if e.cfg.Format.IsJSON() {
		e.jsonNode("", n, depth, "")
		return
	}
	e.yamlNode("", n, depth)
}

type shape int

const (
	scalarShape shape = iota
	seqShape
	mapShape
)

func nodeShape(n *ir.Node) shape {
	elems := 0
	items := 0
	for _, c := range n.Children {
		if c.Kind != ir.ElementKind {
			continue
		}
		elems++
		if c.Label == "item" {
			items++
		}
	}
	if elems == 0 {
		return scalarShape
	}
	if items == elems {
		return seqShape
	}
	return mapShape
}

func scalarText(n *ir.Node) string {
	for _, c := range n.Children {
		if c.Kind == ir.TextKind {
			return c.Value
		}
	}
	return ""
}

func elemChildren(n *ir.Node) []*ir.Node {
	var out []*ir.Node
	for _, c := range n.Children {
		if c.Kind == ir.ElementKind {
			out = append(out, c)
		}
	}
	return out
}

func (e *encoder) jsonNode(prefix string, n *ir.Node, depth int, comma string) {
	switch nodeShape(n) {
	case scalarShape:
		e.printf(depth, prefix+e.value(jsonScalar(scalarText(n)))+comma)
	case seqShape:
		e.printf(depth, prefix+"[")
		kids := elemChildren(n)
		for i, c := range kids {
			e.jsonNode("", c, depth+1, commaUnless(i == len(kids)-1))
		}
		e.printf(depth, "]"+comma)
	case mapShape:
		e.printf(depth, prefix+"{")
		kids := elemChildren(n)
		for i, c := range kids {
			key := `"` + e.label(c.Label) + `": `
			e.jsonNode(key, c, depth+1, commaUnless(i == len(kids)-1))
		}
		e.printf(depth, "}"+comma)
	}
}

func commaUnless(last bool) string {
	if last {
		return ""
	}
	return ","
}

// jsonScalar re-quotes a lexical token unless it is a bare JSON
// literal.
func jsonScalar(v string) string {
	switch v {
	case "true", "false", "null":
		return v
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return v
	}
	return strconv.Quote(v)
}

func (e *encoder) yamlNode(prefix string, n *ir.Node, depth int) {
	for _, c := range n.Children {
		if c.Kind == ir.CommentKind {
			e.printf(depth, "#"+c.Value)
		}
	}
	switch nodeShape(n) {
	case scalarShape:
		e.printf(depth, prefix+e.value(yamlScalar(scalarText(n))))
	case seqShape:
		d := depth
		if prefix != "" {
			e.printf(depth, prefix)
			d = depth + 1
		}
		for _, c := range elemChildren(n) {
			if nodeShape(c) == scalarShape {
				e.printf(d, "- "+e.value(yamlScalar(scalarText(c))))
				continue
			}
			e.printf(d, "-")
			e.yamlNode("", c, d+1)
		}
	case mapShape:
		d := depth
		if prefix != "" {
			e.printf(depth, prefix)
			d = depth + 1
		}
		for _, c := range elemChildren(n) {
			key := e.label(c.Label) + ":"
			if nodeShape(c) == scalarShape {
				e.printf(d, key+" "+e.value(yamlScalar(scalarText(c))))
				continue
			}
			e.yamlNode(key, c, d)
		}
	}
}

// yamlScalar quotes only when the plain form would be ambiguous.
func yamlScalar(v string) string {
	if v == "" {
		return `""`
	}
	if strings.ContainsAny(v, ":#{}[]\n\"'") ||
		v != strings.TrimSpace(v) {
		return strconv.Quote(v)
	}
	return v
}
