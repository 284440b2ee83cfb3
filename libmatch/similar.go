package libmatch

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/lutaml/canon/ir"
)

// similarity scores a candidate pair in [0, 1].  Label and kind
// equality is a precondition checked by the caller.  The combination
// is monotonic in each component; weights favor content over
// position.
func similarity(n1, n2 *ir.Node, pos1, pos2 map[*ir.Node]int) float64 {
	const (
		wAttrs    = 0.35
		wText     = 0.30
		wSubtree  = 0.20
		wPosition = 0.15
	)
	return wAttrs*attrSimilarity(n1, n2) +
		wText*textSimilarity(n1.Text(), n2.Text()) +
		wSubtree*subtreeSimilarity(n1, n2) +
		wPosition*(1-skew(pos1[n1], pos2[n2], len(pos1), len(pos2)))
}

// attrSimilarity is the Jaccard index over name=value attribute
// pairs, xmlns declarations excluded.
func attrSimilarity(n1, n2 *ir.Node) float64 {
	a1 := n1.PlainAttrs()
	a2 := n2.PlainAttrs()
	if len(a1) == 0 && len(a2) == 0 {
		return 1
	}
	set := make(map[ir.Attr]int, len(a1))
	for _, a := range a1 {
		set[a]++
	}
	inter := 0
	for _, a := range a2 {
		if set[a] > 0 {
			set[a]--
			inter++
		}
	}
	union := len(a1) + len(a2) - inter
	return float64(inter) / float64(union)
}

// textSimilarity is a Levenshtein ratio over the flattened text
// content of both subtrees.
func textSimilarity(t1, t2 string) float64 {
	if t1 == t2 {
		return 1
	}
	if t1 == "" || t2 == "" {
		return 0
	}
	d := fuzzy.LevenshteinDistance(t1, t2)
	n := max(len([]rune(t1)), len([]rune(t2)))
	return 1 - float64(d)/float64(n)
}

// subtreeSimilarity is the Jaccard index over the multisets of child
// signatures.
func subtreeSimilarity(n1, n2 *ir.Node) float64 {
	if len(n1.Children) == 0 && len(n2.Children) == 0 {
		return 1
	}
	set := make(map[ir.Signature]int, len(n1.Children))
	for _, c := range n1.Children {
		set[ir.Sig(c, false)]++
	}
	inter := 0
	for _, c := range n2.Children {
		sig := ir.Sig(c, false)
		if set[sig] > 0 {
			set[sig]--
			inter++
		}
	}
	union := len(n1.Children) + len(n2.Children) - inter
	return float64(inter) / float64(union)
}
