package format

import (
	"errors"
	"fmt"

	"github.com/lutaml/canon/libdiff"
)

type Format int

const (
	XMLFormat Format = iota
	HTMLFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"x":    XMLFormat,
		"xml":  XMLFormat,
		"h":    HTMLFormat,
		"html": HTMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case XMLFormat:
		return []byte("xml"), nil
	case HTMLFormat:
		return []byte("html"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsXML() bool  { return f == XMLFormat }
func (f Format) IsHTML() bool { return f == HTMLFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// IsMarkup reports whether the format has attributes and namespaces.
// JSON and YAML instead carry the key_order dimension.
func (f Format) IsMarkup() bool {
	return f == XMLFormat || f == HTMLFormat
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case XMLFormat:
		return ".xml"
	case HTMLFormat:
		return ".html"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FromSuffix guesses a format from a file name.
func FromSuffix(name string) (Format, error) {
	for _, f := range AllFormats() {
		if len(name) >= len(f.Suffix()) && name[len(name)-len(f.Suffix()):] == f.Suffix() {
			return f, nil
		}
	}
	if len(name) >= 4 && name[len(name)-4:] == ".yml" {
		return YAMLFormat, nil
	}
	if len(name) >= 4 && name[len(name)-4:] == ".htm" {
		return HTMLFormat, nil
	}
	return 0, fmt.Errorf("%w: unrecognized suffix in %q", ErrBadFormat, name)
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{XMLFormat, HTMLFormat, JSONFormat, YAMLFormat}
}

// Dimensions returns the comparison dimensions applicable to this
// format.
func (f Format) Dimensions() []libdiff.Dimension {
	if f.IsMarkup() {
		return []libdiff.Dimension{
			libdiff.TextContent,
			libdiff.StructuralWhitespace,
			libdiff.AttributePresence,
			libdiff.AttributeOrder,
			libdiff.AttributeValues,
			libdiff.ElementPosition,
			libdiff.ElementStructure,
			libdiff.Comments,
			libdiff.NamespaceURI,
			libdiff.NamespaceDeclarations,
		}
	}
	return []libdiff.Dimension{
		libdiff.TextContent,
		libdiff.StructuralWhitespace,
		libdiff.ElementPosition,
		libdiff.ElementStructure,
		libdiff.Comments,
		libdiff.KeyOrder,
	}
}

// SensitiveElements returns the element names whose whitespace is
// significant by default.
func (f Format) SensitiveElements() []string {
	if f == HTMLFormat {
		return []string{"pre", "code", "textarea", "script", "style"}
	}
	return nil
}
