package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"go.lsp.dev/jsonrpc2"
)

func testServer() *Server {
	return &Server{logger: log.New(io.Discard)}
}

func call(t *testing.T, params CompareParams) (*CompareResult, error) {
	t.Helper()
	req, err := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), "canon/compare", params)
	if err != nil {
		t.Fatal(err)
	}
	return testServer().compare(req)
}

func TestCompareEquivalent(t *testing.T) {
	res, err := call(t, CompareParams{
		Format:    "xml",
		Document1: "<a><b>hi</b></a>",
		Document2: "<a>\n  <b>hi</b>\n</a>",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Equivalent {
		t.Error("whitespace-only change must be equivalent")
	}
	if len(res.Diffs) == 0 {
		t.Error("informative diffs still reported")
	}
}

func TestCompareNormative(t *testing.T) {
	res, err := call(t, CompareParams{
		Format:    "json",
		Document1: `{"x": 1}`,
		Document2: `{"x": 2}`,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Equivalent {
		t.Error("value change must break equivalence")
	}
	if res.Diffs[0].Dimension != "text_content" || !res.Diffs[0].Normative {
		t.Errorf("diff %+v", res.Diffs[0])
	}
}

func TestCompareCallOptions(t *testing.T) {
	res, err := call(t, CompareParams{
		Format:     "xml",
		Document1:  "<a>hello  world</a>",
		Document2:  "<a>hello world</a>",
		Dimensions: map[string]string{"text_content": "normalize"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Equivalent {
		t.Error("normalize override ignored")
	}
}

func TestCompareBadParams(t *testing.T) {
	if _, err := call(t, CompareParams{Format: "tsv"}); err == nil {
		t.Error("unknown format must fail")
	}
	if _, err := call(t, CompareParams{
		Format:     "xml",
		Document1:  "<a/>",
		Document2:  "<a/>",
		Dimensions: map[string]string{"text_content": "bogus"},
	}); err == nil {
		t.Error("unknown behavior must fail")
	}
}
