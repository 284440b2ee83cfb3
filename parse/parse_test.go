package parse

import (
	"errors"
	"testing"

	"github.com/lutaml/canon/format"
	"github.com/lutaml/canon/ir"
)

func mustParse(t *testing.T, src string, f format.Format) *ir.Node {
	t.Helper()
	n, err := Parse([]byte(src), f)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return n
}

func findElem(n *ir.Node, label string) *ir.Node {
	var found *ir.Node
	n.Walk(func(c *ir.Node) bool {
		if found == nil && c.Kind == ir.ElementKind && c.Label == label {
			found = c
		}
		return found == nil
	})
	return found
}

func TestParseXMLAttributeOrder(t *testing.T) {
	doc := mustParse(t, `<a b="1" a="2" c="3"/>`, format.XMLFormat)
	el := findElem(doc, "a")
	if el == nil {
		t.Fatal("no <a>")
	}
	var names []string
	for _, a := range el.Attrs {
		names = append(names, a.Name)
	}
	if len(names) != 3 || names[0] != "b" || names[1] != "a" || names[2] != "c" {
		t.Errorf("attribute order %v", names)
	}
}

func TestParseXMLNamespaces(t *testing.T) {
	doc := mustParse(t, `<r xmlns="urn:d" xmlns:p="urn:p"><p:x/><y/></r>`, format.XMLFormat)
	r := findElem(doc, "r")
	if r.NSURI != "urn:d" {
		t.Errorf("default ns %q", r.NSURI)
	}
	if got := len(r.NSDecls()); got != 2 {
		t.Errorf("%d xmlns declarations", got)
	}
	if got := len(r.PlainAttrs()); got != 0 {
		t.Errorf("%d plain attributes", got)
	}
	x := findElem(doc, "x")
	if x.NSPrefix != "p" || x.NSURI != "urn:p" {
		t.Errorf("prefixed element ns %q %q", x.NSPrefix, x.NSURI)
	}
	y := findElem(doc, "y")
	if y.NSURI != "urn:d" {
		t.Errorf("inherited default ns %q", y.NSURI)
	}
}

func TestParseXMLCommentsAndText(t *testing.T) {
	doc := mustParse(t, "<a>\n  <!--note-->\n  <b>hi</b>\n</a>", format.XMLFormat)
	var comments, texts int
	doc.Walk(func(n *ir.Node) bool {
		switch n.Kind {
		case ir.CommentKind:
			comments++
		case ir.TextKind:
			texts++
		}
		return true
	})
	if comments != 1 {
		t.Errorf("%d comments", comments)
	}
	// whitespace between elements is kept as text nodes
	if texts < 3 {
		t.Errorf("%d text nodes", texts)
	}
	if got := findElem(doc, "b").Text(); got != "hi" {
		t.Errorf("text %q", got)
	}
}

func TestParseXMLDeclarationSkipped(t *testing.T) {
	doc := mustParse(t, `<?xml version="1.0"?><a/>`, format.XMLFormat)
	doc.Walk(func(n *ir.Node) bool {
		if n.Kind == ir.ProcInstKind {
			t.Error("xml declaration kept as a node")
		}
		return true
	})
}

func TestParseXMLErrors(t *testing.T) {
	for _, src := range []string{"<a><b></a>", "<a>", "</a>"} {
		if _, err := Parse([]byte(src), format.XMLFormat); !errors.Is(err, ErrParse) {
			t.Errorf("%q: err %v", src, err)
		}
	}
}

func TestParseHTML(t *testing.T) {
	doc := mustParse(t, `<p class="x">one<br>two</p>`, format.HTMLFormat)
	p := findElem(doc, "p")
	if p == nil {
		t.Fatal("no <p>")
	}
	if v, ok := p.Attr("class"); !ok || v != "x" {
		t.Errorf("class attr %q %t", v, ok)
	}
	if findElem(doc, "br") == nil {
		t.Error("no <br>")
	}
	if findElem(doc, "body") == nil {
		t.Error("implied skeleton missing")
	}
}

func TestParseJSON(t *testing.T) {
	doc := mustParse(t, `{"name": "demo", "tags": ["x", "y"], "n": 3}`, format.JSONFormat)
	root := findElem(doc, "document")
	if root == nil {
		t.Fatal("no document element")
	}
	var labels []string
	for _, c := range root.Children {
		labels = append(labels, c.Label)
	}
	if len(labels) != 3 || labels[0] != "name" || labels[1] != "tags" || labels[2] != "n" {
		t.Errorf("key order %v", labels)
	}
	tags := findElem(doc, "tags")
	if len(tags.Children) != 2 || tags.Children[0].Label != "item" {
		t.Errorf("sequence shape %v", tags.Children)
	}
	if got := tags.Children[1].Text(); got != "y" {
		t.Errorf("item text %q", got)
	}
	if got := findElem(doc, "n").Text(); got != "3" {
		t.Errorf("lexical number %q", got)
	}
}

func TestParseYAMLComments(t *testing.T) {
	src := "# header\nname: demo\nitems:\n  - a\n  - b\n"
	doc := mustParse(t, src, format.YAMLFormat)
	if findElem(doc, "name") == nil || findElem(doc, "items") == nil {
		t.Fatal("keys missing")
	}
	var comments int
	doc.Walk(func(n *ir.Node) bool {
		if n.Kind == ir.CommentKind {
			comments++
		}
		return true
	})
	if comments == 0 {
		t.Error("comment dropped")
	}
}

func TestParseDataBadInput(t *testing.T) {
	if _, err := Parse([]byte("{unclosed: ["), format.JSONFormat); !errors.Is(err, ErrParse) {
		t.Errorf("err %v", err)
	}
}
