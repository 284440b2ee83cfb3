package libdiff

import "fmt"

// Dimension is a named comparison axis with its own configurable
// behavior.
type Dimension int

const (
	TextContent Dimension = iota
	StructuralWhitespace
	AttributePresence
	AttributeOrder
	AttributeValues
	ElementPosition
	ElementStructure
	Comments
	NamespaceURI
	NamespaceDeclarations
	KeyOrder
)

var dimensionNames = map[Dimension]string{
	TextContent:           "text_content",
	StructuralWhitespace:  "structural_whitespace",
	AttributePresence:     "attribute_presence",
	AttributeOrder:        "attribute_order",
	AttributeValues:       "attribute_values",
	ElementPosition:       "element_position",
	ElementStructure:      "element_structure",
	Comments:              "comments",
	NamespaceURI:          "namespace_uri",
	NamespaceDeclarations: "namespace_declarations",
	KeyOrder:              "key_order",
}

func (d Dimension) String() string {
	s, ok := dimensionNames[d]
	if ok {
		return s
	}
	return "<unknown dimension>"
}

func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Dimension) UnmarshalText(b []byte) error {
	dd, err := ParseDimension(string(b))
	if err != nil {
		return err
	}
	*d = dd
	return nil
}

// ParseDimension resolves a dimension name.  Unknown names are a
// configuration error, never silently defaulted.
func ParseDimension(v string) (Dimension, error) {
	for d, name := range dimensionNames {
		if name == v {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown dimension %q", ErrConfiguration, v)
}

func Dimensions() []Dimension {
	return []Dimension{
		TextContent,
		StructuralWhitespace,
		AttributePresence,
		AttributeOrder,
		AttributeValues,
		ElementPosition,
		ElementStructure,
		Comments,
		NamespaceURI,
		NamespaceDeclarations,
		KeyOrder,
	}
}

// Behavior is the configured comparison behavior of one dimension.
type Behavior int

const (
	// Strict requires exact equality.
	Strict Behavior = iota
	// Strip trims surrounding whitespace before comparing; never
	// normative.
	Strip
	// Compact collapses internal whitespace runs before comparing;
	// never normative.
	Compact
	// Normalize trims and collapses, then compares; normative when
	// values still differ after normalization.
	Normalize
	// Ignore never compares; never normative.
	Ignore
)

var behaviorNames = map[Behavior]string{
	Strict:    "strict",
	Strip:     "strip",
	Compact:   "compact",
	Normalize: "normalize",
	Ignore:    "ignore",
}

func (b Behavior) String() string {
	s, ok := behaviorNames[b]
	if ok {
		return s
	}
	return "<unknown behavior>"
}

func (b Behavior) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Behavior) UnmarshalText(d []byte) error {
	bb, err := ParseBehavior(string(d))
	if err != nil {
		return err
	}
	*b = bb
	return nil
}

func ParseBehavior(v string) (Behavior, error) {
	for b, name := range behaviorNames {
		if name == v {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown behavior %q", ErrConfiguration, v)
}
