package encode

import (
	"strings"

	"github.com/lutaml/canon/ir"
)

// voidElements never take a closing tag in HTML output.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "source": true, "track": true,
	"wbr": true,
}

func (e *encoder) markup(n *ir.Node, depth int) {
	switch n.Kind {
	case ir.DocumentKind:
		for _, c := range n.Children {
			e.markup(c, depth)
		}
	case ir.ElementKind:
		e.element(n, depth)
	case ir.TextKind:
		if strings.TrimSpace(n.Value) == "" {
			// inter-element whitespace is re-created by indentation
			return
		}
		e.printf(depth, e.value(escapeText(strings.TrimSpace(n.Value))))
	case ir.CommentKind:
		e.printf(depth, "<!--"+n.Value+"-->")
	case ir.ProcInstKind:
		e.printf(depth, "<?"+n.Label+" "+n.Value+"?>")
	}
}

func (e *encoder) element(n *ir.Node, depth int) {
	open := e.openTag(n)
	if e.cfg.Format.IsHTML() && voidElements[n.Label] && len(n.Children) == 0 {
		e.printf(depth, open+">")
		return
	}
	if len(n.Children) == 0 {
		if e.cfg.Format.IsHTML() {
			e.printf(depth, open+"></"+e.label(n.Label)+">")
		} else {
			e.printf(depth, open+"/>")
		}
		return
	}
	if text, ok := onlyText(n); ok {
		e.printf(depth, open+">"+e.value(escapeText(text))+"</"+e.label(n.Label)+">")
		return
	}
	e.printf(depth, open+">")
	for _, c := range n.Children {
		e.markup(c, depth+1)
	}
	e.printf(depth, "</"+e.label(n.Label)+">")
}

func (e *encoder) openTag(n *ir.Node) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.label(n.Label))
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(e.value(escapeAttr(a.Value)))
		b.WriteByte('"')
	}
	return b.String()
}

// onlyText reports whether the element holds exactly one non-blank
// text child, the shape rendered inline.
func onlyText(n *ir.Node) (string, bool) {
	if len(n.Children) != 1 || n.Children[0].Kind != ir.TextKind {
		return "", false
	}
	v := n.Children[0].Value
	if strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }
