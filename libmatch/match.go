package libmatch

import (
	"sort"

	"github.com/lutaml/canon/ir"
)

type Config struct {
	// MinScore is the acceptance threshold for similarity-phase
	// pairs; candidates scoring below it stay unmatched and are
	// reported as delete+insert rather than modify.
	MinScore float64
	// ChildCount includes child counts in hash-phase signatures.
	ChildCount bool
}

type Option func(*Config)

func MinScore(v float64) Option {
	return func(c *Config) { c.MinScore = v }
}
func ChildCount(v bool) Option {
	return func(c *Config) { c.ChildCount = v }
}

const defaultMinScore = 0.5

// Match computes a correspondence between the nodes of t1 and t2.
//
// The hash phase runs in two passes.  The exact pass buckets nodes by
// full subtree content hash, so unchanged subtrees match even when
// they moved.  The loose pass buckets the remainder by structural
// signature only (label and attribute shape, never attribute values),
// so a node whose values changed still finds its counterpart.  Both
// passes pair multi-candidate buckets by relative document order,
// which keeps runs of same-shaped siblings from cross-matching.
// Phase 2 scores the leftovers pairwise and accepts the best pairs
// above Config.MinScore.
func Match(t1, t2 *ir.Node, opts ...Option) *Matching {
	cfg := &Config{MinScore: defaultMinScore}
	for _, opt := range opts {
		opt(cfg)
	}

	m := NewMatching()
	if t1.Kind == ir.DocumentKind && t2.Kind == ir.DocumentKind {
		m.Add(t1, t2)
	}

	nodes1 := collect(t1)
	nodes2 := collect(t2)
	exactPhase(m, t1, t2, nodes1, nodes2)
	hashPhase(m, nodes1, nodes2, cfg)
	similarityPhase(m, nodes1, nodes2, cfg)
	return m
}

func exactPhase(m *Matching, t1, t2 *ir.Node, nodes1, nodes2 []*ir.Node) {
	hashes := map[*ir.Node]uint64{}
	subtreeHashes(t1, hashes)
	subtreeHashes(t2, hashes)

	buckets2 := map[uint64][]*ir.Node{}
	for _, n := range nodes2 {
		buckets2[hashes[n]] = append(buckets2[hashes[n]], n)
	}
	// Walking the left side in document order keeps the phase
	// deterministic and consumes ancestor subtrees before their
	// descendants, so a whole-subtree match always wins over a
	// partial one.  Each node takes the first still-unmatched
	// content-equal counterpart in document order.
	for _, n1 := range nodes1 {
		if m.Matched1(n1) {
			continue
		}
		for _, n2 := range buckets2[hashes[n1]] {
			if m.Matched2(n2) {
				continue
			}
			matchSubtree(m, n1, n2)
			break
		}
	}
}

// matchSubtree pairs two content-equal subtrees node by node, so
// descendants of an exact match never pair into other buckets.
func matchSubtree(m *Matching, n1, n2 *ir.Node) {
	if !m.Matched1(n1) && !m.Matched2(n2) {
		m.Add(n1, n2)
	}
	for i := range n1.Children {
		matchSubtree(m, n1.Children[i], n2.Children[i])
	}
}

// collect returns the tree's nodes in document order, skipping the
// document node itself.
func collect(t *ir.Node) []*ir.Node {
	var res []*ir.Node
	t.Walk(func(n *ir.Node) bool {
		if n.Kind != ir.DocumentKind {
			res = append(res, n)
		}
		return true
	})
	return res
}

func hashPhase(m *Matching, nodes1, nodes2 []*ir.Node, cfg *Config) {
	buckets1 := bucket(nodes1, cfg.ChildCount, m.Matched1)
	buckets2 := bucket(nodes2, cfg.ChildCount, m.Matched2)
	for sig, cands1 := range buckets1 {
		cands2 := buckets2[sig]
		if len(cands2) == 0 {
			continue
		}
		// order-preserving assignment within the bucket
		n := min(len(cands1), len(cands2))
		for i := 0; i < n; i++ {
			m.Add(cands1[i], cands2[i])
		}
	}
}

func bucket(nodes []*ir.Node, childCount bool, matched func(*ir.Node) bool) map[ir.Signature][]*ir.Node {
	res := map[ir.Signature][]*ir.Node{}
	for _, n := range nodes {
		if matched(n) {
			continue
		}
		sig := ir.Sig(n, childCount)
		res[sig] = append(res[sig], n)
	}
	return res
}

func similarityPhase(m *Matching, nodes1, nodes2 []*ir.Node, cfg *Config) {
	pos1 := positions(nodes1)
	pos2 := positions(nodes2)

	// label equality is required, so group leftovers by kind+label
	type key struct {
		kind  ir.Kind
		label string
	}
	rem2 := map[key][]*ir.Node{}
	for _, n2 := range nodes2 {
		if m.Matched2(n2) {
			continue
		}
		k := key{n2.Kind, n2.Label}
		rem2[k] = append(rem2[k], n2)
	}

	type cand struct {
		n1, n2 *ir.Node
		score  float64
	}
	var cands []cand
	for _, n1 := range nodes1 {
		if m.Matched1(n1) {
			continue
		}
		for _, n2 := range rem2[key{n1.Kind, n1.Label}] {
			s := similarity(n1, n2, pos1, pos2)
			if s < cfg.MinScore {
				continue
			}
			cands = append(cands, cand{n1, n2, s})
		}
	}

	// Greedy assignment, best score first; equal scores prefer the
	// pair with the smallest relative position skew so assignments
	// tend to be order preserving.  Greedy over optimal bipartite is
	// a deliberate trade: the score gap between a right and a wrong
	// pairing dwarfs assignment-order effects on real documents.
	sortCands := func(i, j int) bool {
		a, b := &cands[i], &cands[j]
		if a.score != b.score {
			return a.score > b.score
		}
		sa := skew(pos1[a.n1], pos2[a.n2], len(pos1), len(pos2))
		sb := skew(pos1[b.n1], pos2[b.n2], len(pos1), len(pos2))
		if sa != sb {
			return sa < sb
		}
		if pos1[a.n1] != pos1[b.n1] {
			return pos1[a.n1] < pos1[b.n1]
		}
		return pos2[a.n2] < pos2[b.n2]
	}
	sort.Slice(cands, sortCands)
	for i := range cands {
		c := &cands[i]
		if m.Matched1(c.n1) || m.Matched2(c.n2) {
			continue
		}
		m.Add(c.n1, c.n2)
	}
}

func positions(nodes []*ir.Node) map[*ir.Node]int {
	res := make(map[*ir.Node]int, len(nodes))
	for i, n := range nodes {
		res[n] = i
	}
	return res
}

func skew(p1, p2, n1, n2 int) float64 {
	a := float64(p1) / float64(max(n1, 1))
	b := float64(p2) / float64(max(n2, 1))
	if a > b {
		return a - b
	}
	return b - a
}
