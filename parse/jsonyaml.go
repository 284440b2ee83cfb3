package parse

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/lutaml/canon/ir"
)

// parseData handles both JSON and YAML through one AST: JSON is valid
// YAML, and the yaml parser keeps key order and comments, which the
// stock encoding/json map decoding would lose.
//
// The synthetic tree shape is fixed: the document value becomes a
// "document" element, mapping keys become elements named after the
// key, sequence entries become "item" elements and scalars become
// text children holding the lexical token.
func parseData(data []byte) (*ir.Node, error) {
	file, err := parser.ParseBytes(data, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	doc := ir.Document()
	for _, d := range file.Docs {
		if d.Body == nil {
			continue
		}
		root := ir.Element("document")
		doc.Append(root)
		convertData(root, d.Body)
	}
	return doc, nil
}

func convertData(parent *ir.Node, n ast.Node) {
	attachComment(parent, n)
	switch t := n.(type) {
	case *ast.MappingNode:
		for _, kv := range t.Values {
			convertData(parent, kv)
		}
	case *ast.MappingValueNode:
		key := ir.Element(t.Key.GetToken().Value)
		parent.Append(key)
		convertData(key, t.Value)
	case *ast.SequenceNode:
		for _, v := range t.Values {
			item := ir.Element("item")
			parent.Append(item)
			convertData(item, v)
		}
	case *ast.AnchorNode:
		convertData(parent, t.Value)
	case *ast.TagNode:
		convertData(parent, t.Value)
	default:
		parent.Append(ir.Text(n.GetToken().Value))
	}
}

// attachComment keeps comment lines as comment children so the
// comments dimension sees them.
func attachComment(parent *ir.Node, n ast.Node) {
	group := n.GetComment()
	if group == nil {
		return
	}
	for _, c := range group.Comments {
		parent.Append(ir.Comment(c.Token.Value))
	}
}
