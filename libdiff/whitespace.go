package libdiff

import "github.com/lutaml/canon/ir"

// WhitespaceConfig decides whether surrounding whitespace is
// significant for a given node.  Priority, highest first: xml:space
// (when RespectXMLSpace) > Sensitive whitelist > Insensitive
// blacklist > the format's built-in defaults.
type WhitespaceConfig struct {
	RespectXMLSpace bool
	// Sensitive lists element names whose whitespace is always
	// significant.
	Sensitive []string
	// Insensitive lists element names whose whitespace is never
	// significant; it overrides the format defaults.
	Insensitive []string
	// DefaultSensitive is the format's built-in sensitive element
	// set (HTML: pre, code, textarea, script, style; XML: none).
	DefaultSensitive []string
}

// SensitiveAt reports whether whitespace around n is significant.
// Text and comment nodes are judged by their containing element.
func (c *WhitespaceConfig) SensitiveAt(n *ir.Node) bool {
	if c == nil {
		return false
	}
	elem := n.Elem()
	if c.RespectXMLSpace {
		for e := elem; e != nil; e = e.Parent {
			v, ok := e.Attr("xml:space")
			if !ok {
				continue
			}
			switch v {
			case "preserve":
				return true
			case "default":
				return false
			}
		}
	}
	if contains(c.Sensitive, elem.Label) {
		return true
	}
	if contains(c.Insensitive, elem.Label) {
		return false
	}
	return contains(c.DefaultSensitive, elem.Label)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
