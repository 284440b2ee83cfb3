package canon

import (
	"fmt"

	"github.com/lutaml/canon/format"
	"github.com/lutaml/canon/libdiff"
)

// Options is one layer of comparison settings.  Layers stack: format
// defaults, then the global layer, then the per-call layer, with the
// explicit Dimensions overrides of each layer winning over its
// profile and preprocessing.
type Options struct {
	// Profile names a built-in or configured profile.
	Profile string
	// Preprocess is "none", "strip" or "normalize".
	Preprocess string
	// Dimensions maps dimension names to behavior names.
	Dimensions map[string]string
}

// Profiles maps profile names to dimension→behavior tables.
type Profiles map[string]map[string]string

// formatDefaults returns the complete behavior table of a format.
// Every dimension applicable to the format has an entry.
func formatDefaults(f format.Format) map[libdiff.Dimension]libdiff.Behavior {
	if f.IsMarkup() {
		m := map[libdiff.Dimension]libdiff.Behavior{
			libdiff.TextContent:           libdiff.Strict,
			libdiff.StructuralWhitespace:  libdiff.Normalize,
			libdiff.AttributePresence:     libdiff.Strict,
			libdiff.AttributeOrder:        libdiff.Ignore,
			libdiff.AttributeValues:       libdiff.Strict,
			libdiff.ElementPosition:       libdiff.Strict,
			libdiff.ElementStructure:      libdiff.Strict,
			libdiff.Comments:              libdiff.Strict,
			libdiff.NamespaceURI:          libdiff.Strict,
			libdiff.NamespaceDeclarations: libdiff.Ignore,
		}
		if f.IsHTML() {
			m[libdiff.TextContent] = libdiff.Normalize
			m[libdiff.StructuralWhitespace] = libdiff.Ignore
			m[libdiff.Comments] = libdiff.Ignore
			m[libdiff.NamespaceURI] = libdiff.Ignore
		}
		return m
	}
	return map[libdiff.Dimension]libdiff.Behavior{
		libdiff.TextContent:          libdiff.Strict,
		libdiff.StructuralWhitespace: libdiff.Ignore,
		libdiff.ElementPosition:      libdiff.Strict,
		libdiff.ElementStructure:     libdiff.Strict,
		libdiff.Comments:             libdiff.Ignore,
		libdiff.KeyOrder:             libdiff.Ignore,
	}
}

// relaxedProfile holds the dimensions the built-in "relaxed" profile
// loosens; dimensions it does not name keep their defaults.
var relaxedProfile = map[libdiff.Dimension]libdiff.Behavior{
	libdiff.TextContent:           libdiff.Normalize,
	libdiff.StructuralWhitespace:  libdiff.Ignore,
	libdiff.AttributeOrder:        libdiff.Ignore,
	libdiff.KeyOrder:              libdiff.Ignore,
	libdiff.Comments:              libdiff.Ignore,
	libdiff.NamespaceDeclarations: libdiff.Ignore,
}

// Resolve folds the option layers into one behavior table for the
// format.  Layer order is format defaults, then each given layer in
// order; within a layer the profile applies first, then
// preprocessing, then the explicit dimension overrides.  Any unknown
// profile, preprocessing mode, dimension or behavior name fails with
// ErrConfiguration before any comparison work happens.
func Resolve(f format.Format, profiles Profiles, layers ...*Options) (*libdiff.Resolved, error) {
	res := &libdiff.Resolved{Behaviors: formatDefaults(f)}
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if err := applyProfile(res, layer.Profile, profiles); err != nil {
			return nil, err
		}
		if err := applyPreprocess(res, layer.Preprocess); err != nil {
			return nil, err
		}
		if err := applyDimensions(res, layer.Dimensions); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func applyProfile(res *libdiff.Resolved, name string, profiles Profiles) error {
	switch name {
	case "":
		return nil
	case "strict":
		for d := range res.Behaviors {
			res.Behaviors[d] = libdiff.Strict
		}
		return nil
	case "relaxed":
		for d, b := range relaxedProfile {
			if res.Has(d) {
				res.Behaviors[d] = b
			}
		}
		return nil
	}
	table, ok := profiles[name]
	if !ok {
		return fmt.Errorf("%w: unknown profile %q", libdiff.ErrConfiguration, name)
	}
	return applyDimensions(res, table)
}

func applyPreprocess(res *libdiff.Resolved, name string) error {
	if name == "" {
		return nil
	}
	p, err := libdiff.ParsePreprocess(name)
	if err != nil {
		return err
	}
	res.Preprocess = p
	switch p {
	case libdiff.PreprocessStrip:
		res.Behaviors[libdiff.TextContent] = libdiff.Strip
		res.Behaviors[libdiff.StructuralWhitespace] = libdiff.Strip
	case libdiff.PreprocessNormalize:
		res.Behaviors[libdiff.TextContent] = libdiff.Normalize
		res.Behaviors[libdiff.StructuralWhitespace] = libdiff.Normalize
	}
	return nil
}

func applyDimensions(res *libdiff.Resolved, dims map[string]string) error {
	for name, bh := range dims {
		d, err := libdiff.ParseDimension(name)
		if err != nil {
			return err
		}
		b, err := libdiff.ParseBehavior(bh)
		if err != nil {
			return err
		}
		// overrides for dimensions the format does not carry are
		// accepted and ignored, so one profile can serve every format
		if res.Has(d) {
			res.Behaviors[d] = b
		}
	}
	return nil
}
