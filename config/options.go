package config

import (
	"github.com/npillmayer/poptip/dom/w3cdom"
)

// Kind is the expected kind of value for an option.
type Kind uint8

// Option kinds. Attribute coercion is driven by the attribute's text, not by
// the kind (see ParseAttributes); kinds matter for
// KindSelector, which is never read as a JSON array, and for KindDynamic,
// which may hold a Resolver.
const (
	KindBool Kind = iota
	KindNumber
	KindString
	KindList     // JSON array, e.g. delay="[100, 50]"
	KindSelector // CSS selector, may start with '['
	KindDynamic  // value or Resolver
)

// Option describes a recognized configuration option.
type Option struct {
	Name    string
	Kind    Kind
	Default any
}

// Schema is the closed set of recognized options.
type Schema []Option

// Lookup finds an option by name.
func (s Schema) Lookup(name string) (Option, bool) {
	for _, opt := range s {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// DefaultSchema lists all options known to poptip, together with their
// compiled defaults. Numbers are float64, lists are []any, mirroring what
// attribute parsing produces.
var DefaultSchema = Schema{
	{"a11y", KindBool, true},
	{"allowHTML", KindBool, true},
	{"animateFill", KindBool, true},
	{"animation", KindString, "shift-away"},
	{"appendTo", KindDynamic, ResolvedBy(documentBody)},
	{"aria", KindString, "describedby"},
	{"arrow", KindBool, false},
	{"arrowTransform", KindString, ""},
	{"arrowType", KindString, "sharp"},
	{"boundary", KindString, "scrollParent"},
	{"content", KindDynamic, Literal("")},
	{"delay", KindList, []any{0.0, 20.0}},
	{"distance", KindNumber, 10.0},
	{"duration", KindList, []any{325.0, 275.0}},
	{"flip", KindBool, true},
	{"flipBehavior", KindString, "flip"},
	{"followCursor", KindBool, false},
	{"hideOnClick", KindBool, true},
	{"inertia", KindBool, false},
	{"interactive", KindBool, false},
	{"interactiveBorder", KindNumber, 2.0},
	{"interactiveDebounce", KindNumber, 0.0},
	{"lazy", KindBool, true},
	{"maxWidth", KindString, ""},
	{"multiple", KindBool, false},
	{"offset", KindNumber, 0.0},
	{"performance", KindBool, false},
	{"placement", KindString, "top"},
	{"role", KindString, "tooltip"},
	{"showOnInit", KindBool, false},
	{"size", KindString, "regular"},
	{"sticky", KindBool, false},
	{"target", KindSelector, ""},
	{"theme", KindString, "dark"},
	{"touch", KindBool, true},
	{"trigger", KindString, "mouseenter focus"},
	{"updateDuration", KindNumber, 0.0},
	{"zIndex", KindNumber, 9999.0},
}

// documentBody is the default mount point: the body of the reference's
// document, or the document root if there is no body.
func documentBody(ref w3cdom.Element) any {
	if ref == nil {
		return nil
	}
	doc := ref.OwnerDocument()
	if body := doc.QuerySelector("body"); body != nil {
		return body
	}
	return doc
}
