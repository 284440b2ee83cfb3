package parse

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"

	"github.com/lutaml/canon/ir"
)

// parseHTML converts the parsed DOM, keeping attribute order and
// comments.  The html package inserts the implied html/head/body
// skeleton; both sides of a comparison get the same treatment so the
// skeleton never differs on its own.
func parseHTML(data []byte) (*ir.Node, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	doc := ir.Document()
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		convertHTML(doc, c)
	}
	return doc, nil
}

func convertHTML(parent *ir.Node, n *html.Node) {
	switch n.Type {
	case html.ElementNode:
		el := ir.Element(n.Data)
		if n.Namespace != "" {
			el.NSPrefix = n.Namespace
		}
		for _, a := range n.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			el.WithAttrs(ir.Attr{Name: name, Value: a.Val})
		}
		parent.Append(el)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			convertHTML(el, c)
		}
	case html.TextNode:
		parent.Append(ir.Text(n.Data))
	case html.CommentNode:
		parent.Append(ir.Comment(n.Data))
	case html.DoctypeNode:
		// framing, not content
	}
}
