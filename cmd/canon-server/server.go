package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"go.lsp.dev/jsonrpc2"

	canon "github.com/lutaml/canon"
	"github.com/lutaml/canon/format"
	"github.com/lutaml/canon/libdiff"
)

type Server struct {
	conn   jsonrpc2.Conn
	logger *log.Logger
}

// CompareParams is the request payload of canon/compare and
// canon/equivalent.
type CompareParams struct {
	Format     string            `json:"format"`
	Document1  string            `json:"document1"`
	Document2  string            `json:"document2"`
	Profile    string            `json:"profile,omitempty"`
	Preprocess string            `json:"preprocess,omitempty"`
	Dimensions map[string]string `json:"dimensions,omitempty"`
}

type Diff struct {
	Dimension   string `json:"dimension"`
	Reason      string `json:"reason"`
	Value1      string `json:"value1,omitempty"`
	Value2      string `json:"value2,omitempty"`
	Normative   bool   `json:"normative"`
	Informative bool   `json:"informative"`
	Formatting  bool   `json:"formatting"`
}

type CompareResult struct {
	Equivalent bool   `json:"equivalent"`
	Diffs      []Diff `json:"diffs"`
}

type EquivalentResult struct {
	Equivalent bool `json:"equivalent"`
}

func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	s.logger.Debug("request", "method", req.Method())
	switch req.Method() {
	case "canon/compare":
		res, err := s.compare(req)
		return reply(ctx, res, err)
	case "canon/equivalent":
		res, err := s.compare(req)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, &EquivalentResult{Equivalent: res.Equivalent}, nil)
	case "shutdown":
		err := reply(ctx, nil, nil)
		s.conn.Close()
		return err
	default:
		return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
	}
}

func (s *Server) compare(req jsonrpc2.Request) (*CompareResult, error) {
	var params CompareParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err)
	}
	f, err := format.ParseFormat(params.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err)
	}
	var opts []canon.Option
	if params.Profile != "" || params.Preprocess != "" || len(params.Dimensions) != 0 {
		opts = append(opts, canon.Call(&canon.Options{
			Profile:    params.Profile,
			Preprocess: params.Preprocess,
			Dimensions: params.Dimensions,
		}))
	}
	r, err := canon.CompareBytes([]byte(params.Document1), []byte(params.Document2), f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err)
	}
	s.logger.Info("compared",
		"format", f,
		"diffs", len(r.Diffs),
		"equivalent", r.Equivalent)
	return &CompareResult{
		Equivalent: r.Equivalent,
		Diffs:      wireDiffs(r.Diffs),
	}, nil
}

func wireDiffs(diffs []*libdiff.DiffNode) []Diff {
	out := make([]Diff, len(diffs))
	for i, d := range diffs {
		out[i] = Diff{
			Dimension:   d.Dimension.String(),
			Reason:      d.Reason,
			Value1:      d.Value1,
			Value2:      d.Value2,
			Normative:   d.Normative,
			Informative: d.Informative,
			Formatting:  d.Formatting,
		}
	}
	return out
}
