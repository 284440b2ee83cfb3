package libdiff

import "fmt"

// Preprocess is the per-call preprocessing mode applied to the text
// dimensions before explicit overrides.
type Preprocess int

const (
	PreprocessNone Preprocess = iota
	PreprocessStrip
	PreprocessNormalize
)

var preprocessNames = map[Preprocess]string{
	PreprocessNone:      "none",
	PreprocessStrip:     "strip",
	PreprocessNormalize: "normalize",
}

func (p Preprocess) String() string {
	s, ok := preprocessNames[p]
	if ok {
		return s
	}
	return "<unknown preprocess>"
}

func ParsePreprocess(v string) (Preprocess, error) {
	for p, name := range preprocessNames {
		if name == v {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown preprocessing %q", ErrConfiguration, v)
}

// Resolved is the per-dimension behavior table a comparison runs
// under.  It is a pure value, recomputed per call and never cached
// globally.  The key set is the applicable dimension set of the
// document format.
type Resolved struct {
	Behaviors  map[Dimension]Behavior
	Preprocess Preprocess
}

// Behavior returns the configured behavior of d.  Dimensions outside
// the format's applicable set compare strictly; DiffNodes for them
// are not constructed in the first place.
func (r *Resolved) Behavior(d Dimension) Behavior {
	b, ok := r.Behaviors[d]
	if !ok {
		return Strict
	}
	return b
}

// Has reports whether d is in the applicable dimension set.
func (r *Resolved) Has(d Dimension) bool {
	_, ok := r.Behaviors[d]
	return ok
}

func (r *Resolved) Clone() *Resolved {
	res := &Resolved{
		Behaviors:  make(map[Dimension]Behavior, len(r.Behaviors)),
		Preprocess: r.Preprocess,
	}
	for d, b := range r.Behaviors {
		res.Behaviors[d] = b
	}
	return res
}
