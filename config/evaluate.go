package config

import (
	"github.com/npillmayer/poptip/dom/w3cdom"
)

// Evaluate derives the effective configuration of a popper instance from
// a base configuration (compiled defaults merged with explicit properties).
// base is not modified. In order:
//
//  1. unless option performance is set, declarative attributes of ref are
//     applied on top of base
//  2. if option arrow is set, animateFill is switched off; a filling backdrop
//     cannot be combined with an arrow
//  3. a Resolver for appendTo is called with ref and replaced by its result
//  4. a Resolver for content is treated the same way
//
// Missing attributes are not an error. Malformed JSON-like attribute values are:
// the error (wrapping ErrMalformedAttribute) is returned together with base.
func Evaluate(ref w3cdom.Element, base Config) (Config, error) {
	cfg := base.clone()
	if !cfg.Bool("performance") {
		attrs, err := ParseAttributes(ref, DefaultSchema)
		if err != nil {
			return base, err
		}
		cfg = cfg.With(attrs)
	}
	if cfg.Bool("arrow") {
		cfg.props["animateFill"] = false
	}
	for _, key := range []string{"appendTo", "content"} {
		d, ok := cfg.props[key].(Dynamic)
		if !ok {
			continue
		}
		var resolve Resolver
		switch m := d.Match(); m {
		case m.Right(&resolve):
			var v any
			if resolve != nil {
				v = resolve(ref)
			}
			cfg.props[key] = Literal(v)
			tracer().Debugf("resolved option %s", key)
		}
	}
	return cfg, nil
}
