package ir

import "fmt"

type Kind int

const (
	DocumentKind Kind = iota
	ElementKind
	TextKind
	CommentKind
	ProcInstKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		DocumentKind: "Document",
		ElementKind:  "Element",
		TextKind:     "Text",
		CommentKind:  "Comment",
		ProcInstKind: "ProcInst",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Document": DocumentKind,
		"Element":  ElementKind,
		"Text":     TextKind,
		"Comment":  CommentKind,
		"ProcInst": ProcInstKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		DocumentKind,
		ElementKind,
		TextKind,
		CommentKind,
		ProcInstKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case DocumentKind, ElementKind:
		return false
	default:
		return true
	}
}
