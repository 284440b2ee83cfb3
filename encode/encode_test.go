package encode

import (
	"testing"

	"github.com/lutaml/canon/format"
	"github.com/lutaml/canon/ir"
)

func TestEncodeXML(t *testing.T) {
	doc := ir.Document().Append(
		ir.Element("greeting").WithAttrs(ir.Attr{Name: "lang", Value: "en"}).Append(
			ir.Text("\n  "),
			ir.Element("word").Append(ir.Text("hello")),
			ir.Comment(" salutation "),
			ir.Element("empty"),
			ir.Text("\n"),
		),
	)
	want := `<greeting lang="en">
  <word>hello</word>
  <!-- salutation -->
  <empty/>
</greeting>
`
	if got := String(doc); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	mk := func(ws string) *ir.Node {
		return ir.Document().Append(
			ir.Element("a").Append(
				ir.Text(ws),
				ir.Element("b").Append(ir.Text("x")),
			),
		)
	}
	if String(mk("\n\t")) != String(mk("  ")) {
		t.Error("blank text placement must not change the encoding")
	}
}

func TestEncodeHTMLVoid(t *testing.T) {
	doc := ir.Document().Append(
		ir.Element("p").Append(
			ir.Element("br"),
			ir.Element("span"),
		),
	)
	want := "<p>\n  <br>\n  <span></span>\n</p>\n"
	if got := String(doc, As(format.HTMLFormat)); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeEscaping(t *testing.T) {
	doc := ir.Document().Append(
		ir.Element("a").WithAttrs(ir.Attr{Name: "q", Value: `say "hi" & <go>`}).Append(
			ir.Text("1 < 2 & 3 > 2"),
		),
	)
	want := `<a q="say &quot;hi&quot; &amp; &lt;go>">1 &lt; 2 &amp; 3 &gt; 2</a>` + "\n"
	if got := String(doc); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func dataDoc() *ir.Node {
	return ir.Document().Append(
		ir.Element("document").Append(
			ir.Element("name").Append(ir.Text("demo")),
			ir.Element("count").Append(ir.Text("3")),
			ir.Element("tags").Append(
				ir.Element("item").Append(ir.Text("x")),
				ir.Element("item").Append(ir.Text("y")),
			),
			ir.Element("nested").Append(
				ir.Element("on").Append(ir.Text("true")),
			),
		),
	)
}

func TestEncodeJSON(t *testing.T) {
	want := `{
  "name": "demo",
  "count": 3,
  "tags": [
    "x",
    "y"
  ],
  "nested": {
    "on": true
  }
}
`
	if got := String(dataDoc(), As(format.JSONFormat)); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeYAML(t *testing.T) {
	want := `name: demo
count: 3
tags:
  - x
  - y
nested:
  on: true
`
	if got := String(dataDoc(), As(format.YAMLFormat)); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestYAMLScalarQuoting(t *testing.T) {
	cases := map[string]string{
		"plain":   "plain",
		"":        `""`,
		"a: b":    `"a: b"`,
		" padded": `" padded"`,
	}
	for in, want := range cases {
		if got := yamlScalar(in); got != want {
			t.Errorf("yamlScalar(%q) = %q, want %q", in, got, want)
		}
	}
}
