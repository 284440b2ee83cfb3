package parse

import (
	"errors"
	"fmt"
	"os"

	"github.com/lutaml/canon/format"
	"github.com/lutaml/canon/ir"
)

var ErrParse = errors.New("parse error")

// Parse converts serialized input into the shared tree representation
// for the given format.
func Parse(data []byte, f format.Format) (*ir.Node, error) {
	switch f {
	case format.XMLFormat:
		return parseXML(data)
	case format.HTMLFormat:
		return parseHTML(data)
	case format.JSONFormat, format.YAMLFormat:
		return parseData(data)
	default:
		return nil, fmt.Errorf("%w: format %s", ErrParse, f)
	}
}

// File reads and parses path, guessing the format from the suffix.
func File(path string) (*ir.Node, format.Format, error) {
	f, err := format.FromSuffix(path)
	if err != nil {
		return nil, 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	n, err := Parse(data, f)
	return n, f, err
}
