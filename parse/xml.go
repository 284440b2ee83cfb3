package parse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/lutaml/canon/ir"
)

// parseXML tokenizes with RawToken so attribute order, namespace
// prefixes and xmlns declarations survive exactly as written.
// Namespace URIs are resolved against a scope stack maintained here.
func parseXML(data []byte) (*ir.Node, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	doc := ir.Document()
	cur := doc
	scopes := []map[string]string{{
		"xml": "http://www.w3.org/XML/1998/namespace",
	}}

	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			scope := pushScope(scopes[len(scopes)-1], t.Attr)
			scopes = append(scopes, scope)
			el := ir.Element(rawName(t.Name))
			if t.Name.Space != "" {
				el.Label = t.Name.Local
				el.NSPrefix = t.Name.Space
			}
			el.NSURI = scope[t.Name.Space]
			for _, a := range t.Attr {
				el.WithAttrs(ir.Attr{Name: rawName(a.Name), Value: a.Value})
			}
			cur.Append(el)
			cur = el
		case xml.EndElement:
			if cur.Parent == nil {
				return nil, fmt.Errorf("%w: unexpected </%s>", ErrParse, rawName(t.Name))
			}
			scopes = scopes[:len(scopes)-1]
			cur = cur.Parent
		case xml.CharData:
			cur.Append(ir.Text(string(t)))
		case xml.Comment:
			cur.Append(ir.Comment(string(t)))
		case xml.ProcInst:
			// the <?xml?> declaration is serialization framing
			if t.Target == "xml" {
				continue
			}
			cur.Append(ir.ProcInst(t.Target, strings.TrimSpace(string(t.Inst))))
		case xml.Directive:
			// DOCTYPE and friends carry no comparable content
		}
	}
	if cur != doc {
		return nil, fmt.Errorf("%w: unclosed element <%s>", ErrParse, cur.Label)
	}
	return doc, nil
}

// rawName joins a prefixed name back into its written form.  RawToken
// leaves the prefix in Space without resolving it.
func rawName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func pushScope(parent map[string]string, attrs []xml.Attr) map[string]string {
	declares := false
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			declares = true
			break
		}
	}
	if !declares {
		return parent
	}
	scope := make(map[string]string, len(parent)+1)
	for k, v := range parent {
		scope[k] = v
	}
	for _, a := range attrs {
		if a.Name.Space == "xmlns" {
			scope[a.Name.Local] = a.Value
		} else if a.Name.Space == "" && a.Name.Local == "xmlns" {
			scope[""] = a.Value
		}
	}
	return scope
}
