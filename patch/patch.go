// Package patch turns the normative differences of a JSON comparison
// into an RFC 6902 patch that rewrites document₁ into an equivalent
// of document₂.
package patch

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/lutaml/canon/ir"
	"github.com/lutaml/canon/libdiff"
)

// Operation is one RFC 6902 patch operation.
type Operation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value,omitempty"`
}

// Generate derives patch operations from classified differences.
// Only normative differences participate; informative reorderings and
// formatting never change the document's meaning.
func Generate(diffs []*libdiff.DiffNode) []Operation {
	var ops []Operation
	for _, d := range diffs {
		if !d.Normative {
			continue
		}
		switch d.Dimension {
		case libdiff.ElementStructure:
			if d.IsDeletion() {
				ops = append(ops, Operation{Op: "remove", Path: Pointer(d.Node1)})
				continue
			}
			ops = append(ops, Operation{
				Op:    "add",
				Path:  Pointer(d.Node2),
				Value: Value(d.Node2),
			})
		case libdiff.TextContent:
			ops = append(ops, Operation{
				Op:    "replace",
				Path:  Pointer(d.Node2),
				Value: scalarValue(d.Value2),
			})
		case libdiff.KeyOrder, libdiff.ElementPosition:
			// order is representation, not content, for data trees
		}
	}
	return ops
}

// Apply runs the operations against a serialized JSON document.
func Apply(doc []byte, ops []Operation) ([]byte, error) {
	raw, err := json.Marshal(ops)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	out, err := p.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return out, nil
}

// Pointer returns the RFC 6901 JSON pointer of a node in the
// synthetic data tree: key elements contribute their label, sequence
// items their index, text nodes point at their container.
func Pointer(n *ir.Node) string {
	if n.Kind == ir.TextKind || n.Kind == ir.CommentKind {
		n = n.Parent
	}
	var segs []string
	for ; n != nil && n.Parent != nil; n = n.Parent {
		if n.Kind != ir.ElementKind || n.Label == "document" {
			continue
		}
		if n.Label == "item" {
			segs = append(segs, strconv.Itoa(itemIndex(n)))
			continue
		}
		segs = append(segs, escapePointer(n.Label))
	}
	if len(segs) == 0 {
		return ""
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return "/" + strings.Join(segs, "/")
}

func itemIndex(n *ir.Node) int {
	idx := 0
	for _, c := range n.Parent.Children {
		if c == n {
			return idx
		}
		if c.Kind == ir.ElementKind && c.Label == "item" {
			idx++
		}
	}
	return idx
}

func escapePointer(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// Value converts a subtree of the synthetic data shape back into the
// JSON value it represents.
func Value(n *ir.Node) interface{} {
	var elems, items []*ir.Node
	for _, c := range n.Children {
		if c.Kind != ir.ElementKind {
			continue
		}
		elems = append(elems, c)
		if c.Label == "item" {
			items = append(items, c)
		}
	}
	if len(elems) == 0 {
		return scalarValue(n.Text())
	}
	if len(items) == len(elems) {
		out := make([]interface{}, len(items))
		for i, c := range items {
			out[i] = Value(c)
		}
		return out
	}
	out := make(map[string]interface{}, len(elems))
	for _, c := range elems {
		out[c.Label] = Value(c)
	}
	return out
}

// scalarValue re-types a lexical token.
func scalarValue(v string) interface{} {
	switch v {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}
